package order

import (
	"context"

	"github.com/coldbell/etf/backend/internal/sender"
	"github.com/coldbell/etf/backend/internal/txn"
	"github.com/gagliardetto/solana-go"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// AccountReader returns raw account data, or ledger.ErrAccountNotFound.
	AccountReader interface {
		AccountData(ctx context.Context, account solana.PublicKey) ([]byte, error)
	}

	Signer interface {
		PublicKey() solana.PublicKey
		SignAll(ctx context.Context, requests []txn.Request) ([]txn.SignedRequest, error)
	}

	Submitter interface {
		SendWaves(ctx context.Context, waves []txn.Wave, opts sender.SendOptions) ([]txn.Outcome, error)
	}
)
