package coordinator

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/coldbell/etf/backend/internal/balance"
	"github.com/coldbell/etf/backend/internal/events"
	"github.com/coldbell/etf/backend/internal/sender"
	"github.com/coldbell/etf/backend/internal/txn"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrMixedOutputs = errors.New("sink legs must share one output mint")

// SourceLeg swaps AmountIn of InputMint into OutputMint. Weight is the
// basket's native weight of the underlying the leg serves.
type SourceLeg struct {
	AmountIn    uint64
	InputMint   solana.PublicKey
	OutputMint  solana.PublicKey
	Weight      uint64
	SlippageBps int
}

type LegSettlement struct {
	Leg       SourceLeg
	Signature solana.Signature
	Post      uint64
	Delta     int64
}

// LegHooks observe single legs. OnLegSettled is not called for a leg whose
// balance never moved.
type LegHooks struct {
	OnLegSent    func(ctx context.Context, leg SourceLeg, sig solana.Signature) error
	OnLegSettled func(ctx context.Context, settlement LegSettlement) error
}

// Fill is the realized result of a source or sink run. Ratio is set by
// SourceInAll and Amount by SourceOutAll; both only when Defined.
type Fill struct {
	Ratio   decimal.Decimal
	Amount  int64
	Defined bool
	Settled []LegSettlement
	Skipped []SourceLeg
}

type Config struct {
	Timeout    time.Duration
	Commitment rpc.CommitmentType
	Settle     balance.Settings
	StrictSink bool
}

type Coordinator struct {
	cfg        Config
	aggregator Aggregator
	signer     Signer
	submitter  Submitter
	balances   balance.Source
	metrics    balance.Metrics
	logger     *zap.Logger
}

func New(
	cfg Config,
	aggregator Aggregator,
	signer Signer,
	submitter Submitter,
	balances balance.Source,
	metrics balance.Metrics,
	logger *zap.Logger,
) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		cfg:        cfg,
		aggregator: aggregator,
		signer:     signer,
		submitter:  submitter,
		balances:   balances,
		metrics:    metrics,
		logger:     logger.Named("coordinator"),
	}
}

type direction uint8

const (
	sourceIn direction = iota
	sourceOut
)

type plannedLeg struct {
	leg SourceLeg
	tx  *solana.Transaction
}

// SourceInAll swaps into every underlying and reports the bottleneck ratio:
// the minimum of delta/weight over the legs that settled.
func (c *Coordinator) SourceInAll(ctx context.Context, legs []SourceLeg, hooks LegHooks) (Fill, error) {
	fill, err := c.run(ctx, legs, hooks, sourceIn)
	if len(fill.Settled) == 0 {
		return fill, err
	}

	var minRatio *decimal.Decimal
	for _, settled := range fill.Settled {
		if settled.Leg.Weight == 0 {
			continue
		}
		ratio := decimal.NewFromInt(settled.Delta).Div(decimalFromUint64(settled.Leg.Weight))
		if minRatio == nil || ratio.LessThan(*minRatio) {
			r := ratio
			minRatio = &r
		}
	}
	if minRatio != nil {
		fill.Ratio = *minRatio
		fill.Defined = true
	}
	return fill, err
}

// SourceOutAll swaps every leg into one shared output mint and reports the
// realized native delta of that mint.
func (c *Coordinator) SourceOutAll(ctx context.Context, legs []SourceLeg, hooks LegHooks) (Fill, error) {
	for i := 1; i < len(legs); i++ {
		if !legs[i].OutputMint.Equals(legs[0].OutputMint) {
			return Fill{}, fmt.Errorf("%w: %s and %s", ErrMixedOutputs, legs[0].OutputMint, legs[i].OutputMint)
		}
	}

	fill, err := c.run(ctx, legs, hooks, sourceOut)
	if len(fill.Settled) == 0 {
		return fill, err
	}
	// deltas are cumulative against one pre snapshot, so the largest is the total
	for _, settled := range fill.Settled {
		if !fill.Defined || settled.Delta > fill.Amount {
			fill.Amount = settled.Delta
			fill.Defined = true
		}
	}
	return fill, err
}

func (c *Coordinator) run(ctx context.Context, legs []SourceLeg, hooks LegHooks, dir direction) (Fill, error) {
	planned, skipped := c.plan(ctx, legs)
	fill := Fill{Skipped: skipped}
	if len(planned) == 0 {
		c.logger.Info("no leg has a route", zap.Int("legs", len(legs)))
		return fill, nil
	}

	tagKind, mode := txn.TagSourceIn, balance.SettleChanged
	if dir == sourceOut {
		tagKind = txn.TagSourceOut
		if c.cfg.StrictSink {
			mode = balance.SettleStrict
		}
	}

	requests := make([]txn.Request, len(planned))
	for i, p := range planned {
		requests[i] = txn.Request{Transaction: p.tx, Tag: txn.AssetTag(tagKind, p.leg.OutputMint)}
	}
	signed, err := c.signer.SignAll(ctx, requests)
	if err != nil {
		return fill, err
	}

	tracker := balance.NewTracker(c.balances, c.cfg.Settle, c.metrics, c.logger)
	for _, p := range planned {
		if err := tracker.SnapshotPre(ctx, p.leg.OutputMint); err != nil {
			c.logger.Warn("pre balance unavailable, leg will not count",
				zap.Stringer("mint", p.leg.OutputMint),
				zap.Error(err),
			)
		}
	}

	bySignature := make(map[solana.Signature]SourceLeg, len(signed))
	for i, s := range signed {
		bySignature[s.Signature] = planned[i].leg
	}

	var mu sync.Mutex
	callHooks := &events.Hooks{
		OnPostSend: func(ctx context.Context, event events.Event) error {
			leg, ok := bySignature[event.Signature]
			if !ok || hooks.OnLegSent == nil {
				return nil
			}
			return hooks.OnLegSent(ctx, leg, event.Signature)
		},
		OnFinished: func(ctx context.Context, event events.Event) error {
			leg, ok := bySignature[event.Signature]
			if !ok {
				return nil
			}
			post, settled := tracker.AwaitSettled(ctx, leg.OutputMint, mode)
			if !settled {
				return nil
			}
			delta, _ := tracker.Delta(leg.OutputMint)
			settlement := LegSettlement{Leg: leg, Signature: event.Signature, Post: post, Delta: delta}

			mu.Lock()
			fill.Settled = append(fill.Settled, settlement)
			mu.Unlock()

			if hooks.OnLegSettled == nil {
				return nil
			}
			return hooks.OnLegSettled(ctx, settlement)
		},
	}

	_, err = c.submitter.SendWaves(ctx, []txn.Wave{signed}, sender.SendOptions{
		Timeout:    c.cfg.Timeout,
		Commitment: c.cfg.Commitment,
		Hooks:      callHooks,
	})

	mu.Lock()
	defer mu.Unlock()
	return fill, err
}

// plan quotes and builds every leg concurrently. Legs without a route or a
// swap transaction come back in skipped.
func (c *Coordinator) plan(ctx context.Context, legs []SourceLeg) ([]plannedLeg, []SourceLeg) {
	txs := make([]*solana.Transaction, len(legs))
	user := c.signer.PublicKey()

	var g errgroup.Group
	for i, leg := range legs {
		i, leg := i, leg
		g.Go(func() error {
			route, ok := c.aggregator.Quote(ctx, leg.InputMint, leg.OutputMint, leg.AmountIn, leg.SlippageBps)
			if !ok {
				return nil
			}
			tx, ok := c.aggregator.Transaction(ctx, user, route)
			if !ok {
				return nil
			}
			txs[i] = tx
			return nil
		})
	}
	_ = g.Wait()

	var (
		planned []plannedLeg
		skipped []SourceLeg
	)
	for i, leg := range legs {
		if txs[i] == nil {
			c.logger.Info("leg skipped", zap.Stringer("input_mint", leg.InputMint), zap.Stringer("output_mint", leg.OutputMint))
			skipped = append(skipped, leg)
			continue
		}
		planned = append(planned, plannedLeg{leg: leg, tx: txs[i]})
	}
	return planned, skipped
}

func decimalFromUint64(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}
