package etf

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

func DeriveEtfTokenPDA(programID, etfMint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{[]byte("etf-token"), etfMint.Bytes()}, programID)
}

func DeriveOrderStatePDA(programID, etfMint, user solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{[]byte("order-state"), etfMint.Bytes(), user.Bytes()}, programID)
}

func DeriveTransferredTokensPDA(programID, orderState solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{[]byte("transferred-tokens"), orderState.Bytes()}, programID)
}

// DeriveVaultAuthorityPDA is the owner of every underlying vault of a basket.
func DeriveVaultAuthorityPDA(programID, etfMint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{[]byte("vault-authority"), etfMint.Bytes()}, programID)
}

func AssociatedTokenAddress(owner, mint solana.PublicKey) (solana.PublicKey, error) {
	ata, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("derive associated token account for %s: %w", mint, err)
	}
	return ata, nil
}

// Accounts is the fixed account set of one user's order on one basket.
type Accounts struct {
	ProgramID         solana.PublicKey
	EtfMint           solana.PublicKey
	User              solana.PublicKey
	EtfToken          solana.PublicKey
	OrderState        solana.PublicKey
	TransferredTokens solana.PublicKey
	VaultAuthority    solana.PublicKey
}

func DeriveAccounts(programID, etfMint, user solana.PublicKey) (Accounts, error) {
	etfToken, _, err := DeriveEtfTokenPDA(programID, etfMint)
	if err != nil {
		return Accounts{}, fmt.Errorf("derive etf token PDA: %w", err)
	}
	orderState, _, err := DeriveOrderStatePDA(programID, etfMint, user)
	if err != nil {
		return Accounts{}, fmt.Errorf("derive order state PDA: %w", err)
	}
	transferred, _, err := DeriveTransferredTokensPDA(programID, orderState)
	if err != nil {
		return Accounts{}, fmt.Errorf("derive transferred tokens PDA: %w", err)
	}
	vaultAuthority, _, err := DeriveVaultAuthorityPDA(programID, etfMint)
	if err != nil {
		return Accounts{}, fmt.Errorf("derive vault authority PDA: %w", err)
	}
	return Accounts{
		ProgramID:         programID,
		EtfMint:           etfMint,
		User:              user,
		EtfToken:          etfToken,
		OrderState:        orderState,
		TransferredTokens: transferred,
		VaultAuthority:    vaultAuthority,
	}, nil
}
