package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/coldbell/etf/backend/internal/events"
	"go.uber.org/zap"
)

type Status string

const (
	StatusSent      Status = "sent"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
	StatusTimedOut  Status = "timed_out"
)

type Submission struct {
	Signature string
	Tag       string
	Status    Status
	Message   string
	SentAt    time.Time
	At        time.Time
}

const defaultRecordTimeout = 2 * time.Second

type Recorder interface {
	Record(ctx context.Context, sub Submission) error
}

// Journal writes every lifecycle event of the engine to a Recorder so that
// timed out transactions can be looked up later.
// The bus waits for its listeners, so each write is bounded by a timeout to
// keep a slow database from stalling sends.
type Journal struct {
	recorder Recorder
	timeout  time.Duration
	logger   *zap.Logger
}

func New(recorder Recorder, logger *zap.Logger) *Journal {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Journal{recorder: recorder, timeout: defaultRecordTimeout, logger: logger.Named("journal")}
}

// WithTimeout bounds every Record call by d.
func (j *Journal) WithTimeout(d time.Duration) *Journal {
	if d > 0 {
		j.timeout = d
	}
	return j
}

// Attach subscribes the journal to bus and returns the unsubscribe func.
func (j *Journal) Attach(bus *events.Bus) func() {
	return bus.Subscribe(j.Listen)
}

func (j *Journal) Listen(ctx context.Context, event events.Event) error {
	sub, ok := submissionFromEvent(event)
	if !ok {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()
	if err := j.recorder.Record(ctx, sub); err != nil {
		return fmt.Errorf("journal %s %s: %w", sub.Status, sub.Signature, err)
	}
	j.logger.Debug("submission journaled",
		zap.String("signature", sub.Signature),
		zap.String("status", string(sub.Status)),
	)
	return nil
}

func submissionFromEvent(event events.Event) (Submission, bool) {
	var status Status
	switch event.Kind {
	case events.KindPostSend:
		status = StatusSent
	case events.KindFinished:
		status = StatusConfirmed
	case events.KindFailed:
		status = StatusFailed
	case events.KindTimedOut:
		status = StatusTimedOut
	default:
		return Submission{}, false
	}
	if event.Signature.IsZero() {
		return Submission{}, false
	}
	at := event.At
	if at.IsZero() {
		at = time.Now()
	}
	return Submission{
		Signature: event.Signature.String(),
		Tag:       event.Tag.String(),
		Status:    status,
		Message:   event.Message,
		SentAt:    at,
		At:        at,
	}, true
}
