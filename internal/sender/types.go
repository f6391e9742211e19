package sender

import (
	"context"
	"time"

	"github.com/coldbell/etf/backend/internal/ledger"
	"github.com/coldbell/etf/backend/internal/txn"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Transport interface {
		BroadcastRaw(ctx context.Context, raw []byte) (solana.Signature, error)
		SignatureStatus(ctx context.Context, sig solana.Signature) (*ledger.SignatureStatus, error)
		SubscribeSignature(ctx context.Context, sig solana.Signature, commitment rpc.CommitmentType) (ledger.Subscription, error)
		Simulate(ctx context.Context, raw []byte) (*ledger.SimulationResult, error)
	}

	Metrics interface {
		ObserveRebroadcast(tag txn.Tag, err error)
		ObserveOutcome(outcome txn.Outcome, started time.Time)
	}
)

type nopMetrics struct{}

func (nopMetrics) ObserveRebroadcast(txn.Tag, error)     {}
func (nopMetrics) ObserveOutcome(txn.Outcome, time.Time) {}
