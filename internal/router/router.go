package router

import (
	"context"
	"fmt"
	"sync"

	"github.com/coldbell/etf/backend/internal/sender"
	"github.com/coldbell/etf/backend/internal/txn"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Sender interface {
	Send(ctx context.Context, req txn.SignedRequest, opts sender.SendOptions) (txn.Outcome, error)
}

// Router submits waves in order. Inside a wave every distinct tag runs in
// parallel and bundles sharing a tag run one after another.
type Router struct {
	sender Sender
	logger *zap.Logger
}

func New(s Sender, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{sender: s, logger: logger.Named("router")}
}

// SendWaves returns the outcomes of every bundle that was sent, in input
// order. The first error stops later waves; the failing wave is still joined.
func (r *Router) SendWaves(ctx context.Context, waves []txn.Wave, opts sender.SendOptions) ([]txn.Outcome, error) {
	var outcomes []txn.Outcome
	for waveIdx, wave := range waves {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		waveOutcomes, err := r.sendWave(ctx, wave, opts)
		outcomes = append(outcomes, waveOutcomes...)
		if err != nil {
			r.logger.Warn("wave failed, aborting remaining waves",
				zap.Int("wave", waveIdx+1),
				zap.Int("waves", len(waves)),
				zap.Error(err),
			)
			return outcomes, err
		}
	}
	return outcomes, nil
}

func (r *Router) sendWave(ctx context.Context, wave txn.Wave, opts sender.SendOptions) ([]txn.Outcome, error) {
	lanes := groupByTag(wave)
	slots := make([]*txn.Outcome, len(wave))

	var (
		g  errgroup.Group
		mu sync.Mutex
	)
	for _, lane := range lanes {
		lane := lane
		g.Go(func() error {
			for _, idx := range lane {
				outcome, err := r.sender.Send(ctx, wave[idx], opts)
				if err != nil {
					if outcome.Status != 0 {
						mu.Lock()
						slots[idx] = &outcome
						mu.Unlock()
					}
					return fmt.Errorf("send %s: %w", wave[idx].Tag, err)
				}
				mu.Lock()
				slots[idx] = &outcome
				mu.Unlock()
			}
			return nil
		})
	}
	err := g.Wait()

	out := make([]txn.Outcome, 0, len(wave))
	for _, slot := range slots {
		if slot != nil {
			out = append(out, *slot)
		}
	}
	return out, err
}

// groupByTag returns wave indexes per tag, tags in order of first appearance.
func groupByTag(wave txn.Wave) [][]int {
	var (
		lanes [][]int
		index = make(map[txn.Tag]int)
	)
	for i, req := range wave {
		lane, ok := index[req.Tag]
		if !ok {
			lane = len(lanes)
			index[req.Tag] = lane
			lanes = append(lanes, nil)
		}
		lanes[lane] = append(lanes[lane], i)
	}
	return lanes
}
