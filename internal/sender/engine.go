package sender

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/coldbell/etf/backend/internal/events"
	"github.com/coldbell/etf/backend/internal/ledger"
	"github.com/coldbell/etf/backend/internal/txn"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

const (
	programLogPrefix    = "Program log: "
	anchorMessageMarker = "Error Message: "
	genericFailure      = "transaction failed"
)

type Config struct {
	ResubmitDelay       time.Duration
	ResubmitInterval    time.Duration
	PollInitialInterval time.Duration
	PollMaxInterval     time.Duration
	Commitment          rpc.CommitmentType
}

func DefaultConfig() Config {
	return Config{
		ResubmitDelay:       500 * time.Millisecond,
		ResubmitInterval:    time.Second,
		PollInitialInterval: 400 * time.Millisecond,
		PollMaxInterval:     1600 * time.Millisecond,
		Commitment:          rpc.CommitmentConfirmed,
	}
}

type SendOptions struct {
	// Timeout of zero returns right after the first broadcast.
	Timeout    time.Duration
	Commitment rpc.CommitmentType
	Hooks      *events.Hooks
}

// Engine broadcasts signed transactions and waits for them to land.
type Engine struct {
	cfg       Config
	transport Transport
	bus       *events.Bus
	metrics   Metrics
	logger    *zap.Logger
}

func NewEngine(cfg Config, transport Transport, bus *events.Bus, metrics Metrics, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	defaults := DefaultConfig()
	if cfg.ResubmitDelay <= 0 {
		cfg.ResubmitDelay = defaults.ResubmitDelay
	}
	if cfg.ResubmitInterval <= 0 {
		cfg.ResubmitInterval = defaults.ResubmitInterval
	}
	if cfg.PollInitialInterval <= 0 {
		cfg.PollInitialInterval = defaults.PollInitialInterval
	}
	if cfg.PollMaxInterval < cfg.PollInitialInterval {
		cfg.PollMaxInterval = cfg.PollInitialInterval
	}
	if cfg.Commitment == "" {
		cfg.Commitment = defaults.Commitment
	}
	if bus == nil {
		bus = events.NewBus(logger)
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Engine{
		cfg:       cfg,
		transport: transport,
		bus:       bus,
		metrics:   metrics,
		logger:    logger.Named("sender"),
	}
}

func (e *Engine) Bus() *events.Bus {
	return e.bus
}

type confirmation struct {
	slot uint64
	err  any
}

// Send submits one signed transaction. Errors other than a cancelled ctx are
// *txn.ProgramFailureError or *txn.TimeoutError and come with the matching
// outcome.
func (e *Engine) Send(ctx context.Context, req txn.SignedRequest, opts SendOptions) (txn.Outcome, error) {
	started := time.Now()
	commitment := opts.Commitment
	if commitment == "" {
		commitment = e.cfg.Commitment
	}
	callbackTag := req.CallbackTag()
	logger := e.logger.With(zap.Stringer("tag", req.Tag), zap.Stringer("signature", req.Signature))

	sig, err := e.transport.BroadcastRaw(ctx, req.Payload)
	if err != nil {
		if ctx.Err() != nil {
			return txn.Outcome{}, ctx.Err()
		}
		outcome := txn.Failed(req.Tag, req.Signature, txn.FailureBroadcast, err.Error())
		var preflight *ledger.PreflightError
		if errors.As(err, &preflight) {
			outcome = txn.Failed(req.Tag, req.Signature, txn.FailureProgram, preflightMessage(preflight))
		}
		logger.Warn("broadcast failed", zap.String("message", outcome.Message), zap.Error(err))
		e.complete(ctx, opts.Hooks, callbackTag, outcome, started)
		return outcome, txn.OutcomeError(outcome, err)
	}
	if sig.IsZero() {
		sig = req.Signature
	}

	e.bus.Dispatch(ctx, opts.Hooks, events.Event{Kind: events.KindPostSend, Tag: callbackTag, Signature: sig})

	if opts.Timeout <= 0 {
		outcome := txn.Confirmed(req.Tag, sig)
		e.metrics.ObserveOutcome(outcome, started)
		return outcome, nil
	}

	res, ok := e.await(ctx, req, sig, commitment, opts.Timeout)
	if !ok {
		if ctx.Err() != nil {
			return txn.Outcome{}, ctx.Err()
		}
		outcome := txn.TimedOut(req.Tag, sig)
		logger.Warn("confirmation timed out", zap.Duration("timeout", opts.Timeout))
		e.complete(ctx, opts.Hooks, callbackTag, outcome, started)
		return outcome, txn.OutcomeError(outcome, nil)
	}

	if res.err != nil {
		message := e.explainFailure(ctx, req.Payload, res.err)
		outcome := txn.Failed(req.Tag, sig, txn.FailureProgram, message)
		outcome.Slot = res.slot
		logger.Warn("transaction failed", zap.String("message", message), zap.Any("err", res.err))
		e.complete(ctx, opts.Hooks, callbackTag, outcome, started)
		return outcome, txn.OutcomeError(outcome, errors.New(rawError(res.err)))
	}

	outcome := txn.Confirmed(req.Tag, sig)
	outcome.Slot = res.slot
	logger.Debug("transaction confirmed", zap.Uint64("slot", res.slot), zap.Duration("elapsed", time.Since(started)))
	e.complete(ctx, opts.Hooks, callbackTag, outcome, started)
	return outcome, nil
}

// await runs the resubmission loop and both confirmation paths under one
// deadline. All three are stopped and joined before it returns.
func (e *Engine) await(
	ctx context.Context,
	req txn.SignedRequest,
	sig solana.Signature,
	commitment rpc.CommitmentType,
	timeout time.Duration,
) (confirmation, bool) {
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	results := make(chan confirmation, 2)
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		e.resubmit(waitCtx, req)
	}()
	go func() {
		defer wg.Done()
		e.subscribe(waitCtx, sig, commitment, results)
	}()
	go func() {
		defer wg.Done()
		e.poll(waitCtx, sig, commitment, results)
	}()

	var (
		res confirmation
		ok  bool
	)
	select {
	case res = <-results:
		ok = true
	case <-waitCtx.Done():
		select {
		case res = <-results:
			ok = true
		default:
		}
	}
	cancel()
	wg.Wait()
	return res, ok
}

func (e *Engine) resubmit(ctx context.Context, req txn.SignedRequest) {
	timer := time.NewTimer(e.cfg.ResubmitDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	ticker := time.NewTicker(e.cfg.ResubmitInterval)
	defer ticker.Stop()
	for {
		_, err := e.transport.BroadcastRaw(ctx, req.Payload)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			e.logger.Debug("rebroadcast failed", zap.Stringer("signature", req.Signature), zap.Error(err))
		}
		e.metrics.ObserveRebroadcast(req.Tag, err)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (e *Engine) subscribe(ctx context.Context, sig solana.Signature, commitment rpc.CommitmentType, results chan<- confirmation) {
	sub, err := e.transport.SubscribeSignature(ctx, sig, commitment)
	if err != nil {
		if ctx.Err() == nil {
			e.logger.Warn("signature subscription unavailable, polling only", zap.Stringer("signature", sig), zap.Error(err))
		}
		return
	}
	defer func() {
		if err := sub.Unsubscribe(); err != nil {
			e.logger.Warn("signature unsubscribe failed", zap.Stringer("signature", sig), zap.Error(err))
		}
	}()

	select {
	case <-ctx.Done():
	case res, ok := <-sub.Result():
		if ok {
			results <- confirmation{slot: res.Slot, err: res.Err}
		}
	}
}

func (e *Engine) poll(ctx context.Context, sig solana.Signature, commitment rpc.CommitmentType, results chan<- confirmation) {
	schedule := newPollBackOff(e.cfg.PollInitialInterval, e.cfg.PollMaxInterval)
	timer := time.NewTimer(schedule.NextBackOff())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		status, err := e.transport.SignatureStatus(ctx, sig)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return
			}
			e.logger.Debug("signature status query failed", zap.Stringer("signature", sig), zap.Error(err))
		case status == nil:
		case status.Err != nil:
			results <- confirmation{slot: status.Slot, err: status.Err}
			return
		case ledger.Reached(status.Confirmation, commitment):
			results <- confirmation{slot: status.Slot}
			return
		}
		timer.Reset(schedule.NextBackOff())
	}
}

func newPollBackOff(initial, ceiling time.Duration) *backoff.ExponentialBackOff {
	schedule := backoff.NewExponentialBackOff()
	schedule.InitialInterval = initial
	schedule.Multiplier = 2
	schedule.RandomizationFactor = 0
	schedule.MaxInterval = ceiling
	schedule.MaxElapsedTime = 0
	schedule.Reset()
	return schedule
}

func (e *Engine) complete(ctx context.Context, hooks *events.Hooks, tag txn.Tag, outcome txn.Outcome, started time.Time) {
	e.metrics.ObserveOutcome(outcome, started)

	kind := events.KindFinished
	switch outcome.Status {
	case txn.OutcomeFailed:
		kind = events.KindFailed
	case txn.OutcomeTimedOut:
		kind = events.KindTimedOut
	}
	e.bus.Dispatch(ctx, hooks, events.Event{
		Kind:      kind,
		Tag:       tag,
		Signature: outcome.Signature,
		Message:   outcome.Message,
	})
}

// explainFailure turns an on-chain error into a readable message by
// simulating the same payload.
func (e *Engine) explainFailure(ctx context.Context, payload []byte, onChainErr any) string {
	sim, err := e.transport.Simulate(ctx, payload)
	if err != nil || sim == nil {
		if err == nil {
			err = errors.New("empty simulation result")
		}
		e.logger.Warn("simulation for failure details failed", zap.Error(err))
		return genericFailure
	}
	if message, ok := programLogMessage(sim.Logs); ok {
		return message
	}
	return rawError(onChainErr)
}

// preflightMessage explains a transaction the node rejected at preflight from
// the logs of that simulation.
func preflightMessage(preflight *ledger.PreflightError) string {
	if message, ok := programLogMessage(preflight.Logs); ok {
		return message
	}
	if preflight.Err != nil {
		return rawError(preflight.Err)
	}
	return preflight.Message
}

// programLogMessage returns the last "Program log: " line, reduced to the
// Anchor error message when the line carries one.
func programLogMessage(logs []string) (string, bool) {
	for i := len(logs) - 1; i >= 0; i-- {
		line := logs[i]
		if !strings.HasPrefix(line, programLogPrefix) {
			continue
		}
		message := strings.TrimPrefix(line, programLogPrefix)
		if idx := strings.Index(message, anchorMessageMarker); idx >= 0 {
			message = strings.TrimSuffix(message[idx+len(anchorMessageMarker):], ".")
		}
		message = strings.TrimSpace(message)
		if message == "" {
			continue
		}
		return message, true
	}
	return "", false
}

func rawError(value any) string {
	switch v := value.(type) {
	case nil:
		return genericFailure
	case string:
		return v
	case error:
		return v.Error()
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return string(encoded)
}
