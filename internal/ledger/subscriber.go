package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/ws"
	"go.uber.org/zap"
)

// SignatureSubscriber multiplexes signatureSubscribe streams over one
// websocket connection. The connection is dialed on first use and redialed
// after it breaks.
type SignatureSubscriber struct {
	endpoint string
	logger   *zap.Logger

	mu     sync.Mutex
	client *ws.Client
}

func NewSignatureSubscriber(endpoint string, logger *zap.Logger) *SignatureSubscriber {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SignatureSubscriber{
		endpoint: endpoint,
		logger:   logger.Named("ws"),
	}
}

func (s *SignatureSubscriber) connect(ctx context.Context) (*ws.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		return s.client, nil
	}
	client, err := ws.Connect(ctx, s.endpoint)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", s.endpoint, err)
	}
	s.client = client
	return client, nil
}

// drop forgets a broken connection so the next Subscribe redials.
func (s *SignatureSubscriber) drop(client *ws.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != client {
		return
	}
	s.client = nil
	client.Close()
}

func (s *SignatureSubscriber) Close() {
	s.mu.Lock()
	client := s.client
	s.client = nil
	s.mu.Unlock()
	if client != nil {
		client.Close()
	}
}

// Subscribe resolves once the cluster reports the signature at the requested
// commitment. The subscription stops when ctx is done.
func (s *SignatureSubscriber) Subscribe(ctx context.Context, sig solana.Signature, commitment rpc.CommitmentType) (Subscription, error) {
	client, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	stream, err := client.SignatureSubscribe(sig, commitment)
	if err != nil {
		s.drop(client)
		return nil, fmt.Errorf("signatureSubscribe: %w", err)
	}

	sub := &signatureSubscription{
		stream: stream,
		result: make(chan SignatureResult, 1),
		logger: s.logger.With(zap.Stringer("signature", sig)),
	}
	go sub.wait(ctx, func() { s.drop(client) })
	return sub, nil
}

type signatureSubscription struct {
	stream *ws.SignatureSubscription
	result chan SignatureResult
	logger *zap.Logger

	once sync.Once
}

func (s *signatureSubscription) Result() <-chan SignatureResult {
	return s.result
}

func (s *signatureSubscription) wait(ctx context.Context, broken func()) {
	defer close(s.result)
	res, err := s.stream.Recv(ctx)
	switch {
	case err != nil:
		if ctx.Err() != nil || errors.Is(err, ws.ErrSubscriptionClosed) {
			return
		}
		s.logger.Debug("signature stream ended", zap.Error(err))
		broken()
	case res == nil:
		// unsubscribed before a notification arrived
	default:
		s.result <- SignatureResult{Slot: res.Context.Slot, Err: res.Value.Err}
	}
}

// Unsubscribe is safe to call more than once.
func (s *signatureSubscription) Unsubscribe() error {
	s.once.Do(s.stream.Unsubscribe)
	return nil
}
