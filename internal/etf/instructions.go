package etf

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"math/big"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	computebudget "github.com/gagliardetto/solana-go/programs/compute-budget"
	"github.com/gagliardetto/solana-go/programs/token"
)

var (
	initOrderStateDisc = anchorInstructionDiscriminator("init_order_state")
	startOrderDisc     = anchorInstructionDiscriminator("start_order")
	cohereDisc         = anchorInstructionDiscriminator("cohere")
	decohereDisc       = anchorInstructionDiscriminator("decohere")
	finalizeOrderDisc  = anchorInstructionDiscriminator("finalize_order")
	cancelCohereDisc   = anchorInstructionDiscriminator("cancel_cohere")
	cancelDecohereDisc = anchorInstructionDiscriminator("cancel_decohere")
	cancelOrderDisc    = anchorInstructionDiscriminator("cancel_order")
)

func NewInitOrderStateInstruction(accounts Accounts) solana.Instruction {
	return solana.NewInstruction(accounts.ProgramID, solana.AccountMetaSlice{
		solana.NewAccountMeta(accounts.User, true, true),
		solana.NewAccountMeta(accounts.EtfToken, false, false),
		solana.NewAccountMeta(accounts.OrderState, true, false),
		solana.NewAccountMeta(accounts.TransferredTokens, true, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
	}, initOrderStateDisc[:])
}

type startOrderArgs struct {
	OrderType OrderType
	Amount    uint64
}

func NewStartOrderInstruction(accounts Accounts, orderType OrderType, amount uint64) (solana.Instruction, error) {
	data, err := instructionData(startOrderDisc, startOrderArgs{OrderType: orderType, Amount: amount})
	if err != nil {
		return nil, fmt.Errorf("encode start_order: %w", err)
	}
	return solana.NewInstruction(accounts.ProgramID, solana.AccountMetaSlice{
		solana.NewAccountMeta(accounts.User, true, true),
		solana.NewAccountMeta(accounts.EtfToken, false, false),
		solana.NewAccountMeta(accounts.OrderState, true, false),
		solana.NewAccountMeta(accounts.TransferredTokens, true, false),
	}, data), nil
}

// TransferDirection selects the per-underlying leg instruction.
type TransferDirection uint8

const (
	Cohere TransferDirection = iota
	Decohere
	CancelCohere
	CancelDecohere
)

func (d TransferDirection) discriminator() [8]byte {
	switch d {
	case Decohere:
		return decohereDisc
	case CancelCohere:
		return cancelCohereDisc
	case CancelDecohere:
		return cancelDecohereDisc
	default:
		return cohereDisc
	}
}

func (d TransferDirection) String() string {
	switch d {
	case Cohere:
		return "cohere"
	case Decohere:
		return "decohere"
	case CancelCohere:
		return "cancel_cohere"
	case CancelDecohere:
		return "cancel_decohere"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Inbound reports whether the leg moves tokens from the user into the vault.
func (d TransferDirection) Inbound() bool {
	return d == Cohere || d == CancelDecohere
}

type transferArgs struct {
	Index uint8
}

func NewTransferInstruction(accounts Accounts, direction TransferDirection, index int, mint solana.PublicKey) (solana.Instruction, error) {
	if index < 0 || index > 255 {
		return nil, fmt.Errorf("underlying index %d out of range", index)
	}
	userATA, err := AssociatedTokenAddress(accounts.User, mint)
	if err != nil {
		return nil, err
	}
	vaultATA, err := AssociatedTokenAddress(accounts.VaultAuthority, mint)
	if err != nil {
		return nil, err
	}
	data, err := instructionData(direction.discriminator(), transferArgs{Index: uint8(index)})
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", direction, err)
	}
	return solana.NewInstruction(accounts.ProgramID, solana.AccountMetaSlice{
		solana.NewAccountMeta(accounts.User, true, true),
		solana.NewAccountMeta(accounts.EtfToken, false, false),
		solana.NewAccountMeta(accounts.OrderState, true, false),
		solana.NewAccountMeta(accounts.TransferredTokens, true, false),
		solana.NewAccountMeta(accounts.VaultAuthority, false, false),
		solana.NewAccountMeta(mint, false, false),
		solana.NewAccountMeta(userATA, true, false),
		solana.NewAccountMeta(vaultATA, true, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
	}, data), nil
}

func NewFinalizeOrderInstruction(accounts Accounts) (solana.Instruction, error) {
	userEtfATA, err := AssociatedTokenAddress(accounts.User, accounts.EtfMint)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(accounts.ProgramID, solana.AccountMetaSlice{
		solana.NewAccountMeta(accounts.User, true, true),
		solana.NewAccountMeta(accounts.EtfMint, true, false),
		solana.NewAccountMeta(accounts.EtfToken, false, false),
		solana.NewAccountMeta(accounts.OrderState, true, false),
		solana.NewAccountMeta(accounts.TransferredTokens, true, false),
		solana.NewAccountMeta(userEtfATA, true, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
	}, finalizeOrderDisc[:]), nil
}

func NewCancelOrderInstruction(accounts Accounts) solana.Instruction {
	return solana.NewInstruction(accounts.ProgramID, solana.AccountMetaSlice{
		solana.NewAccountMeta(accounts.User, true, true),
		solana.NewAccountMeta(accounts.EtfToken, false, false),
		solana.NewAccountMeta(accounts.OrderState, true, false),
		solana.NewAccountMeta(accounts.TransferredTokens, true, false),
	}, cancelOrderDisc[:])
}

// NewCreateIdempotentATAInstruction creates owner's token account for mint
// unless it already exists.
func NewCreateIdempotentATAInstruction(payer, owner, mint solana.PublicKey) (solana.Instruction, error) {
	ata, err := AssociatedTokenAddress(owner, mint)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(solana.SPLAssociatedTokenAccountProgramID, solana.AccountMetaSlice{
		solana.NewAccountMeta(payer, true, true),
		solana.NewAccountMeta(ata, true, false),
		solana.NewAccountMeta(owner, false, false),
		solana.NewAccountMeta(mint, false, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
	}, []byte{1}), nil
}

// NewApproveInstruction lets the vault authority pull amount of mint out of
// the user's token account.
func NewApproveInstruction(accounts Accounts, mint solana.PublicKey, amount uint64) (solana.Instruction, error) {
	userATA, err := AssociatedTokenAddress(accounts.User, mint)
	if err != nil {
		return nil, err
	}
	ix, err := token.NewApproveInstruction(amount, userATA, accounts.VaultAuthority, accounts.User, nil).ValidateAndBuild()
	if err != nil {
		return nil, fmt.Errorf("build approve instruction: %w", err)
	}
	return ix, nil
}

// ComputeBudget prefixes every bundle when set. Zero values are omitted.
type ComputeBudget struct {
	UnitLimit              uint32
	UnitPriceMicroLamports uint64
}

func (c ComputeBudget) Instructions() ([]solana.Instruction, error) {
	instructions := make([]solana.Instruction, 0, 2)
	if c.UnitLimit > 0 {
		ix, err := computebudget.NewSetComputeUnitLimitInstruction(c.UnitLimit).ValidateAndBuild()
		if err != nil {
			return nil, fmt.Errorf("build compute unit limit instruction: %w", err)
		}
		instructions = append(instructions, ix)
	}
	if c.UnitPriceMicroLamports > 0 {
		ix, err := computebudget.NewSetComputeUnitPriceInstruction(c.UnitPriceMicroLamports).ValidateAndBuild()
		if err != nil {
			return nil, fmt.Errorf("build compute unit price instruction: %w", err)
		}
		instructions = append(instructions, ix)
	}
	return instructions, nil
}

// UnderlyingAmount is the native amount of one underlying backing amount
// native units of a basket with the given decimals.
func UnderlyingAmount(amount, weight uint64, decimals uint8) (uint64, error) {
	return mulDivFloor(amount, weight, pow10(decimals))
}

func mulDivFloor(a, b, denominator uint64) (uint64, error) {
	if denominator == 0 {
		return 0, fmt.Errorf("division by zero")
	}
	left := new(big.Int).SetUint64(a)
	right := new(big.Int).SetUint64(b)
	left.Mul(left, right)
	left.Div(left, new(big.Int).SetUint64(denominator))
	if !left.IsUint64() {
		return 0, fmt.Errorf("mulDiv overflow")
	}
	return left.Uint64(), nil
}

func pow10(decimals uint8) uint64 {
	out := uint64(1)
	for i := uint8(0); i < decimals; i++ {
		out *= 10
	}
	return out
}

func instructionData(discriminator [8]byte, args any) ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := bin.NewBorshEncoder(buf)
	if err := enc.WriteBytes(discriminator[:], false); err != nil {
		return nil, err
	}
	if err := enc.Encode(args); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func anchorInstructionDiscriminator(ixName string) [8]byte {
	hash := sha256.Sum256([]byte("global:" + ixName))
	var out [8]byte
	copy(out[:], hash[:8])
	return out
}
