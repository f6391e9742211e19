package signer

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Wallet signs a batch of transactions as the fee payer. Either every
	// transaction in the batch is signed or none is.
	Wallet interface {
		PublicKey() solana.PublicKey
		SignAll(ctx context.Context, txs []*solana.Transaction) error
	}

	BlockhashSource interface {
		LatestBlockhash(ctx context.Context) (solana.Hash, error)
	}
)
