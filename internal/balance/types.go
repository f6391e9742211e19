package balance

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	TokenAccountReader interface {
		TokenAccountBalance(ctx context.Context, account solana.PublicKey) (uint64, error)
	}

	// Source reports the owner's balance of a mint in native units.
	Source interface {
		Balance(ctx context.Context, mint solana.PublicKey) (uint64, error)
	}

	Metrics interface {
		ObserveSettle(settled bool, attempts int, started time.Time)
	}
)

type nopMetrics struct{}

func (nopMetrics) ObserveSettle(bool, int, time.Time) {}
