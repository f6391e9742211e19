package basket

import (
	"context"

	"github.com/coldbell/etf/backend/internal/coordinator"
	"github.com/coldbell/etf/backend/internal/order"
	"github.com/gagliardetto/solana-go"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	AccountReader interface {
		AccountData(ctx context.Context, account solana.PublicKey) ([]byte, error)
	}

	Sources interface {
		SourceInAll(ctx context.Context, legs []coordinator.SourceLeg, hooks coordinator.LegHooks) (coordinator.Fill, error)
		SourceOutAll(ctx context.Context, legs []coordinator.SourceLeg, hooks coordinator.LegHooks) (coordinator.Fill, error)
	}

	Orders interface {
		ExecuteOrder(ctx context.Context, params order.ExecuteParams) (order.Result, error)
	}
)
