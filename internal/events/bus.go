package events

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/coldbell/etf/backend/internal/txn"
	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

type Kind uint8

const (
	KindPostSend Kind = iota + 1
	KindFinished
	KindFailed
	KindTimedOut
)

func (k Kind) String() string {
	switch k {
	case KindPostSend:
		return "post_send"
	case KindFinished:
		return "finished"
	case KindFailed:
		return "failed"
	case KindTimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind      Kind
	Tag       txn.Tag
	Signature solana.Signature
	Message   string
	At        time.Time
}

type Listener func(ctx context.Context, event Event) error

// Hooks are call-scoped listeners for a single send.
type Hooks struct {
	OnPostSend Listener
	OnFinished Listener
}

func (h *Hooks) listenerFor(kind Kind) Listener {
	if h == nil {
		return nil
	}
	switch kind {
	case KindPostSend:
		return h.OnPostSend
	case KindFinished:
		return h.OnFinished
	default:
		return nil
	}
}

// Bus fans events out to instance-level listeners.
type Bus struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners map[uint64]Listener
	logger    *zap.Logger
}

func NewBus(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{
		listeners: make(map[uint64]Listener),
		logger:    logger.Named("events"),
	}
}

// Subscribe registers a listener. The returned func removes only that listener.
func (b *Bus) Subscribe(listener Listener) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.listeners[id] = listener
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.listeners, id)
			b.mu.Unlock()
		})
	}
}

func (b *Bus) snapshot() []Listener {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ids := make([]uint64, 0, len(b.listeners))
	for id := range b.listeners {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]Listener, 0, len(ids))
	for _, id := range ids {
		out = append(out, b.listeners[id])
	}
	return out
}

// Dispatch runs the call hook matching the event kind and every bus listener
// concurrently and waits for all of them. Listener failures are logged only.
func (b *Bus) Dispatch(ctx context.Context, hooks *Hooks, event Event) {
	if event.At.IsZero() {
		event.At = time.Now()
	}

	listeners := b.snapshot()
	if hook := hooks.listenerFor(event.Kind); hook != nil {
		listeners = append(listeners, hook)
	}
	if len(listeners) == 0 {
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(listeners))
	for _, listener := range listeners {
		go func(listener Listener) {
			defer wg.Done()
			if err := invoke(ctx, listener, event); err != nil {
				b.logger.Warn("event listener failed",
					zap.Stringer("kind", event.Kind),
					zap.Stringer("tag", event.Tag),
					zap.Stringer("signature", event.Signature),
					zap.Error(err),
				)
			}
		}(listener)
	}
	wg.Wait()
}

func invoke(ctx context.Context, listener Listener, event Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("listener panic: %v", r)
		}
	}()
	return listener(ctx, event)
}
