package balance

import (
	"context"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

type SettleMode uint8

const (
	// SettleChanged waits for post != pre.
	SettleChanged SettleMode = iota
	// SettleStrict also requires post to exceed the last recorded post of
	// the same mint.
	SettleStrict
)

type Settings struct {
	Attempts int
	Interval time.Duration
}

func DefaultSettings() Settings {
	return Settings{Attempts: 10, Interval: 500 * time.Millisecond}
}

// Tracker holds pre and post balances for one operation. Create a new one
// per call.
type Tracker struct {
	source   Source
	settings Settings
	metrics  Metrics
	logger   *zap.Logger

	mu   sync.Mutex
	pre  map[solana.PublicKey]uint64
	post map[solana.PublicKey]uint64
}

func NewTracker(source Source, settings Settings, metrics Metrics, logger *zap.Logger) *Tracker {
	defaults := DefaultSettings()
	if settings.Attempts <= 0 {
		settings.Attempts = defaults.Attempts
	}
	if settings.Interval <= 0 {
		settings.Interval = defaults.Interval
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{
		source:   source,
		settings: settings,
		metrics:  metrics,
		logger:   logger.Named("balance"),
		pre:      make(map[solana.PublicKey]uint64),
		post:     make(map[solana.PublicKey]uint64),
	}
}

// SnapshotPre records the current balance unless one is already recorded.
func (t *Tracker) SnapshotPre(ctx context.Context, mint solana.PublicKey) error {
	t.mu.Lock()
	_, seen := t.pre[mint]
	t.mu.Unlock()
	if seen {
		return nil
	}

	amount, err := t.source.Balance(ctx, mint)
	if err != nil {
		return err
	}

	t.mu.Lock()
	if _, seen := t.pre[mint]; !seen {
		t.pre[mint] = amount
	}
	t.mu.Unlock()
	return nil
}

// AwaitSettled polls the balance until it moves off the pre snapshot, at most
// Settings.Attempts times. It reports false when the balance never moved, the
// pre snapshot is missing, or ctx ended. Read errors use up an attempt.
func (t *Tracker) AwaitSettled(ctx context.Context, mint solana.PublicKey, mode SettleMode) (uint64, bool) {
	t.mu.Lock()
	pre, ok := t.pre[mint]
	t.mu.Unlock()
	if !ok {
		t.logger.Warn("settle requested without pre balance", zap.Stringer("mint", mint))
		return 0, false
	}

	started := time.Now()
	timer := time.NewTimer(t.settings.Interval)
	defer timer.Stop()

	for attempt := 1; attempt <= t.settings.Attempts; attempt++ {
		select {
		case <-ctx.Done():
			t.metrics.ObserveSettle(false, attempt-1, started)
			return 0, false
		case <-timer.C:
		}

		amount, err := t.source.Balance(ctx, mint)
		if err != nil {
			t.logger.Debug("balance read failed", zap.Stringer("mint", mint), zap.Int("attempt", attempt), zap.Error(err))
		} else if t.commitPost(mint, pre, amount, mode) {
			t.metrics.ObserveSettle(true, attempt, started)
			return amount, true
		}
		timer.Reset(t.settings.Interval)
	}

	t.logger.Info("balance did not settle",
		zap.Stringer("mint", mint),
		zap.Uint64("pre", pre),
		zap.Int("attempts", t.settings.Attempts),
	)
	t.metrics.ObserveSettle(false, t.settings.Attempts, started)
	return 0, false
}

func (t *Tracker) commitPost(mint solana.PublicKey, pre, amount uint64, mode SettleMode) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if amount == pre {
		return false
	}
	if last, seen := t.post[mint]; mode == SettleStrict && seen && amount <= last {
		return false
	}
	t.post[mint] = amount
	return true
}

// Delta is post - pre. It is false until both sides are recorded.
func (t *Tracker) Delta(mint solana.PublicKey) (int64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	pre, okPre := t.pre[mint]
	post, okPost := t.post[mint]
	if !okPre || !okPost {
		return 0, false
	}
	return int64(post) - int64(pre), true
}

func (t *Tracker) Pre(mint solana.PublicKey) (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	amount, ok := t.pre[mint]
	return amount, ok
}
