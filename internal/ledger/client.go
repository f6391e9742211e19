package ledger

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

type Config struct {
	RPCURL        string
	WSURL         string
	Commitment    rpc.CommitmentType
	SkipPreflight bool
	MaxRetries    *uint
	MaxRPS        int
}

// Client is the ledger transport: JSON-RPC calls go through a shared rate
// limiter, signature subscriptions go over the websocket endpoint.
type Client struct {
	cfg        Config
	rpc        *rpc.Client
	subscriber *SignatureSubscriber
	limiter    ratelimit.Limiter
	metrics    Metrics
	logger     *zap.Logger
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Commitment == "" {
		cfg.Commitment = rpc.CommitmentConfirmed
	}
	limiter := ratelimit.NewUnlimited()
	if cfg.MaxRPS > 0 {
		limiter = ratelimit.New(cfg.MaxRPS)
	}
	logger = logger.Named("ledger")
	return &Client{
		cfg:        cfg,
		rpc:        rpc.New(cfg.RPCURL),
		subscriber: NewSignatureSubscriber(cfg.WSURL, logger),
		limiter:    limiter,
		metrics:    nopMetrics{},
		logger:     logger,
	}
}

// WithMetrics records every JSON-RPC call on m.
func (c *Client) WithMetrics(m Metrics) *Client {
	if m != nil {
		c.metrics = m
	}
	return c
}

func (c *Client) observe(operation string, started time.Time, err *error) {
	c.metrics.Observe(operation, *err, started)
}

func (c *Client) Commitment() rpc.CommitmentType {
	return c.cfg.Commitment
}

func (c *Client) BroadcastRaw(ctx context.Context, raw []byte) (_ solana.Signature, err error) {
	c.limiter.Take()
	defer c.observe("send_raw_transaction", time.Now(), &err)
	opts := rpc.TransactionOpts{
		SkipPreflight:       c.cfg.SkipPreflight,
		PreflightCommitment: c.cfg.Commitment,
	}
	if c.cfg.MaxRetries != nil {
		retries := *c.cfg.MaxRetries
		opts.MaxRetries = &retries
	}
	sig, err := c.rpc.SendRawTransactionWithOpts(ctx, raw, opts)
	if err != nil {
		if preflight, ok := asPreflightError(err); ok {
			return solana.Signature{}, preflight
		}
		return solana.Signature{}, fmt.Errorf("send raw transaction: %w", err)
	}
	return sig, nil
}

// asPreflightError recognizes a sendTransaction rejection that carries the
// simulation result of the failed preflight.
func asPreflightError(err error) (*PreflightError, bool) {
	var rpcErr *jsonrpc.RPCError
	if !errors.As(err, &rpcErr) {
		return nil, false
	}
	data, ok := rpcErr.Data.(map[string]any)
	if !ok {
		return nil, false
	}
	txErr, hasErr := data["err"]
	rawLogs, hasLogs := data["logs"]
	if !hasErr && !hasLogs {
		return nil, false
	}
	preflight := &PreflightError{Code: rpcErr.Code, Message: rpcErr.Message, Err: txErr}
	if lines, ok := rawLogs.([]any); ok {
		for _, line := range lines {
			if text, ok := line.(string); ok {
				preflight.Logs = append(preflight.Logs, text)
			}
		}
	}
	return preflight, true
}

// SignatureStatus returns nil when the cluster has not seen the signature yet.
func (c *Client) SignatureStatus(ctx context.Context, sig solana.Signature) (_ *SignatureStatus, err error) {
	c.limiter.Take()
	defer c.observe("get_signature_statuses", time.Now(), &err)
	out, err := c.rpc.GetSignatureStatuses(ctx, true, sig)
	if err != nil {
		return nil, fmt.Errorf("get signature status: %w", err)
	}
	if out == nil || len(out.Value) == 0 || out.Value[0] == nil {
		return nil, nil
	}
	status := out.Value[0]
	return &SignatureStatus{
		Slot:         status.Slot,
		Confirmation: status.ConfirmationStatus,
		Err:          status.Err,
	}, nil
}

// Close drops the websocket connection used by signature subscriptions.
func (c *Client) Close() error {
	c.subscriber.Close()
	return nil
}

func (c *Client) SubscribeSignature(ctx context.Context, sig solana.Signature, commitment rpc.CommitmentType) (Subscription, error) {
	if c.cfg.WSURL == "" {
		return nil, errors.New("websocket endpoint not configured")
	}
	return c.subscriber.Subscribe(ctx, sig, commitment)
}

func (c *Client) Simulate(ctx context.Context, raw []byte) (_ *SimulationResult, err error) {
	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
	if err != nil {
		return nil, fmt.Errorf("decode transaction: %w", err)
	}

	c.limiter.Take()
	defer c.observe("simulate_transaction", time.Now(), &err)
	out, err := c.rpc.SimulateTransactionWithOpts(ctx, tx, &rpc.SimulateTransactionOpts{
		Commitment:             c.cfg.Commitment,
		ReplaceRecentBlockhash: true,
	})
	if err != nil {
		return nil, fmt.Errorf("simulate transaction: %w", err)
	}
	if out == nil || out.Value == nil {
		return nil, errors.New("simulate transaction: empty result")
	}
	return &SimulationResult{Err: out.Value.Err, Logs: out.Value.Logs}, nil
}

// TokenAccountBalance returns the raw amount held by a token account.
func (c *Client) TokenAccountBalance(ctx context.Context, account solana.PublicKey) (_ uint64, err error) {
	c.limiter.Take()
	defer c.observe("get_token_account_balance", time.Now(), &err)
	out, err := c.rpc.GetTokenAccountBalance(ctx, account, c.cfg.Commitment)
	if err != nil {
		if isNotFound(err) {
			return 0, ErrAccountNotFound
		}
		return 0, fmt.Errorf("get token account balance %s: %w", account, err)
	}
	if out == nil || out.Value == nil {
		return 0, ErrAccountNotFound
	}
	amount, err := strconv.ParseUint(out.Value.Amount, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse token amount %q: %w", out.Value.Amount, err)
	}
	return amount, nil
}

func (c *Client) AccountData(ctx context.Context, account solana.PublicKey) (_ []byte, err error) {
	c.limiter.Take()
	defer c.observe("get_account_info", time.Now(), &err)
	out, err := c.rpc.GetAccountInfoWithOpts(ctx, account, &rpc.GetAccountInfoOpts{
		Commitment: c.cfg.Commitment,
	})
	if err != nil {
		if isNotFound(err) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account %s: %w", account, err)
	}
	if out == nil || out.Value == nil {
		return nil, ErrAccountNotFound
	}
	return out.Value.Data.GetBinary(), nil
}

func (c *Client) LatestBlockhash(ctx context.Context) (_ solana.Hash, err error) {
	c.limiter.Take()
	defer c.observe("get_latest_blockhash", time.Now(), &err)
	out, err := c.rpc.GetLatestBlockhash(ctx, c.cfg.Commitment)
	if err != nil {
		return solana.Hash{}, fmt.Errorf("get latest blockhash: %w", err)
	}
	return out.Value.Blockhash, nil
}

func isNotFound(err error) bool {
	if errors.Is(err, rpc.ErrNotFound) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "could not find account") || strings.Contains(msg, "not found")
}
