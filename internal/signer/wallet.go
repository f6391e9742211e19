package signer

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

var ErrUserRejected = errors.New("user rejected signing")

// KeypairWallet signs with a local keypair.
type KeypairWallet struct {
	key solana.PrivateKey
}

func NewKeypairWallet(key solana.PrivateKey) *KeypairWallet {
	return &KeypairWallet{key: key}
}

// LoadKeypairWallet reads a solana-keygen JSON file.
func LoadKeypairWallet(path string) (*KeypairWallet, error) {
	key, err := solana.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return nil, fmt.Errorf("load keypair %q: %w", path, err)
	}
	return NewKeypairWallet(key), nil
}

func (w *KeypairWallet) PublicKey() solana.PublicKey {
	return w.key.PublicKey()
}

func (w *KeypairWallet) SignAll(ctx context.Context, txs []*solana.Transaction) error {
	signed := make([][]solana.Signature, len(txs))
	for i, tx := range txs {
		if err := ctx.Err(); err != nil {
			return err
		}
		sigs, err := signatures(tx, w.key)
		if err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
		signed[i] = sigs
	}
	for i, tx := range txs {
		tx.Signatures = signed[i]
	}
	return nil
}

// signatures returns the transaction's signature slots with keys applied.
// The transaction itself is not modified.
func signatures(tx *solana.Transaction, keys ...solana.PrivateKey) ([]solana.Signature, error) {
	required := int(tx.Message.Header.NumRequiredSignatures)
	if len(tx.Message.AccountKeys) < required {
		return nil, fmt.Errorf("message declares %d signers but has %d accounts", required, len(tx.Message.AccountKeys))
	}

	out := make([]solana.Signature, required)
	copy(out, tx.Signatures)

	message, err := tx.Message.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}

	for _, key := range keys {
		pub := key.PublicKey()
		idx := -1
		for i := 0; i < required; i++ {
			if tx.Message.AccountKeys[i].Equals(pub) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("%s is not a required signer", pub)
		}
		sig, err := key.Sign(message)
		if err != nil {
			return nil, fmt.Errorf("sign with %s: %w", pub, err)
		}
		out[idx] = sig
	}
	return out, nil
}
