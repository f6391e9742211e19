package coordinator

import (
	"context"

	"github.com/coldbell/etf/backend/internal/sender"
	"github.com/coldbell/etf/backend/internal/swap"
	"github.com/coldbell/etf/backend/internal/txn"
	"github.com/gagliardetto/solana-go"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Aggregator interface {
		Quote(ctx context.Context, in, out solana.PublicKey, amount uint64, slippageBps int) (swap.Route, bool)
		Transaction(ctx context.Context, user solana.PublicKey, route swap.Route) (*solana.Transaction, bool)
	}

	Signer interface {
		PublicKey() solana.PublicKey
		SignAll(ctx context.Context, requests []txn.Request) ([]txn.SignedRequest, error)
	}

	Submitter interface {
		SendWaves(ctx context.Context, waves []txn.Wave, opts sender.SendOptions) ([]txn.Outcome, error)
	}
)
