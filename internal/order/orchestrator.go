package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coldbell/etf/backend/internal/bundler"
	"github.com/coldbell/etf/backend/internal/etf"
	"github.com/coldbell/etf/backend/internal/events"
	"github.com/coldbell/etf/backend/internal/ledger"
	"github.com/coldbell/etf/backend/internal/sender"
	"github.com/coldbell/etf/backend/internal/txn"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

var (
	ErrUnknownBasket  = errors.New("basket token account not found")
	ErrNoPendingOrder = errors.New("no pending order")
	ErrZeroAmount     = errors.New("order amount must be positive")
)

type Config struct {
	ProgramID     solana.PublicKey
	Timeout       time.Duration
	Commitment    rpc.CommitmentType
	MaxTxSize     int
	ComputeBudget etf.ComputeBudget
}

type ExecuteParams struct {
	EtfMint solana.PublicKey
	Type    etf.OrderType
	// Amount is in native basket units. It is ignored when a pending order
	// is resumed.
	Amount uint64
	Hooks  *events.Hooks
}

type Result struct {
	Type     etf.OrderType
	Amount   uint64
	Resumed  bool
	Legs     int
	Bundles  int
	Waves    int
	Outcomes []txn.Outcome
}

// PendingOrder is the on-chain view of an order that has started but not
// finalized.
type PendingOrder struct {
	Accounts    etf.Accounts
	Token       *etf.EtfToken
	State       *etf.OrderState
	Transferred *etf.TransferredTokens
}

// Remaining counts the legs that still have to move.
func (p *PendingOrder) Remaining() int {
	remaining := 0
	for i := range p.Token.Underlyings {
		if !p.Transferred.IsTransferred(i) {
			remaining++
		}
	}
	return remaining
}

type Orchestrator struct {
	cfg       Config
	chain     AccountReader
	signer    Signer
	submitter Submitter
	bundler   *bundler.Bundler
	logger    *zap.Logger
}

func New(cfg Config, chain AccountReader, signer Signer, submitter Submitter, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		cfg:       cfg,
		chain:     chain,
		signer:    signer,
		submitter: submitter,
		bundler:   bundler.New(signer.PublicKey(), cfg.MaxTxSize),
		logger:    logger.Named("order"),
	}
}

type onChain struct {
	accounts    etf.Accounts
	token       *etf.EtfToken
	state       *etf.OrderState
	transferred *etf.TransferredTokens
}

// ExecuteOrder drives the caller's order on one basket to finalization. A
// missing order is initialized and started, a settled one is started again,
// and a pending one is resumed with its on-chain type and amount. Legs the
// transferred bitmap already marks are not sent again.
func (o *Orchestrator) ExecuteOrder(ctx context.Context, params ExecuteParams) (Result, error) {
	chain, err := o.load(ctx, params.EtfMint)
	if err != nil {
		return Result{}, err
	}
	logger := o.logger.With(zap.Stringer("etf_mint", params.EtfMint), zap.Stringer("user", chain.accounts.User))

	result := Result{Type: params.Type, Amount: params.Amount}
	var head []solana.Instruction
	switch {
	case chain.state == nil:
		start, err := o.startInstruction(chain.accounts, params)
		if err != nil {
			return Result{}, err
		}
		head = []solana.Instruction{etf.NewInitOrderStateInstruction(chain.accounts), start}
		chain.transferred = nil
	case !chain.state.Pending():
		start, err := o.startInstruction(chain.accounts, params)
		if err != nil {
			return Result{}, err
		}
		head = []solana.Instruction{start}
		chain.transferred = nil
	default:
		result.Type = chain.state.Type
		result.Amount = chain.state.Amount
		result.Resumed = true
		logger.Info("resuming pending order",
			zap.Stringer("type", result.Type),
			zap.Uint64("amount", result.Amount),
		)
	}

	direction := etf.Cohere
	if result.Type == etf.OrderTypeDeconstruction {
		direction = etf.Decohere
	}

	var groups [][]solana.Instruction
	if len(head) > 0 {
		groups = append(groups, head)
	}
	for i, underlying := range chain.token.Underlyings {
		if chain.transferred.IsTransferred(i) {
			continue
		}
		group, err := o.legGroup(chain, direction, i, underlying, result.Amount)
		if err != nil {
			return Result{}, err
		}
		groups = append(groups, group)
		result.Legs++
	}
	finalize, err := o.finalizeGroup(chain, result.Type, result.Amount)
	if err != nil {
		return Result{}, err
	}
	groups = append(groups, finalize)

	bundles, err := o.bundle(groups)
	if err != nil {
		return Result{}, err
	}
	layout := orderLayout(bundles)
	result.Bundles, result.Waves = len(bundles), len(layout)

	logger.Info("submitting order",
		zap.Stringer("type", result.Type),
		zap.Int("legs", result.Legs),
		zap.Int("bundles", result.Bundles),
		zap.Int("waves", result.Waves),
	)
	result.Outcomes, err = o.submit(ctx, layout, params.Hooks)
	return result, err
}

// CancelOrder reverses the legs of a pending order that already moved and
// closes the order.
func (o *Orchestrator) CancelOrder(ctx context.Context, etfMint solana.PublicKey, hooks *events.Hooks) (Result, error) {
	chain, err := o.load(ctx, etfMint)
	if err != nil {
		return Result{}, err
	}
	if !chain.state.Pending() {
		return Result{}, fmt.Errorf("cancel order on %s: %w", etfMint, ErrNoPendingOrder)
	}

	result := Result{Type: chain.state.Type, Amount: chain.state.Amount}
	direction := etf.CancelCohere
	if result.Type == etf.OrderTypeDeconstruction {
		direction = etf.CancelDecohere
	}

	var groups [][]solana.Instruction
	for i, underlying := range chain.token.Underlyings {
		if !chain.transferred.IsTransferred(i) {
			continue
		}
		group, err := o.legGroup(chain, direction, i, underlying, result.Amount)
		if err != nil {
			return Result{}, err
		}
		groups = append(groups, group)
		result.Legs++
	}
	groups = append(groups, []solana.Instruction{etf.NewCancelOrderInstruction(chain.accounts)})

	bundles, err := o.bundle(groups)
	if err != nil {
		return Result{}, err
	}
	layout := cancelLayout(bundles)
	result.Bundles, result.Waves = len(bundles), len(layout)

	o.logger.Info("cancelling order",
		zap.Stringer("etf_mint", etfMint),
		zap.Stringer("type", result.Type),
		zap.Int("reversed_legs", result.Legs),
	)
	result.Outcomes, err = o.submit(ctx, layout, hooks)
	return result, err
}

// PendingOrder returns nil when the signer has no pending order on etfMint.
func (o *Orchestrator) PendingOrder(ctx context.Context, etfMint solana.PublicKey) (*PendingOrder, error) {
	chain, err := o.load(ctx, etfMint)
	if err != nil {
		return nil, err
	}
	if !chain.state.Pending() {
		return nil, nil
	}
	return &PendingOrder{
		Accounts:    chain.accounts,
		Token:       chain.token,
		State:       chain.state,
		Transferred: chain.transferred,
	}, nil
}

func (o *Orchestrator) load(ctx context.Context, etfMint solana.PublicKey) (*onChain, error) {
	accounts, err := etf.DeriveAccounts(o.cfg.ProgramID, etfMint, o.signer.PublicKey())
	if err != nil {
		return nil, err
	}

	tokenData, err := o.chain.AccountData(ctx, accounts.EtfToken)
	if errors.Is(err, ledger.ErrAccountNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBasket, etfMint)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch etf token %s: %w", accounts.EtfToken, err)
	}
	token, err := etf.DecodeEtfToken(tokenData)
	if err != nil {
		return nil, err
	}

	chain := &onChain{accounts: accounts, token: token}

	stateData, err := o.chain.AccountData(ctx, accounts.OrderState)
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		return chain, nil
	case err != nil:
		return nil, fmt.Errorf("fetch order state %s: %w", accounts.OrderState, err)
	}
	if chain.state, err = etf.DecodeOrderState(stateData); err != nil {
		return nil, err
	}

	transferredData, err := o.chain.AccountData(ctx, accounts.TransferredTokens)
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		return chain, nil
	case err != nil:
		return nil, fmt.Errorf("fetch transferred tokens %s: %w", accounts.TransferredTokens, err)
	}
	if chain.transferred, err = etf.DecodeTransferredTokens(transferredData); err != nil {
		return nil, err
	}
	return chain, nil
}

func (o *Orchestrator) startInstruction(accounts etf.Accounts, params ExecuteParams) (solana.Instruction, error) {
	if params.Amount == 0 {
		return nil, ErrZeroAmount
	}
	return etf.NewStartOrderInstruction(accounts, params.Type, params.Amount)
}

// legGroup is the self-contained instruction group moving one underlying:
// create the receiving token account, approve the vault when tokens leave
// the user, then the program instruction.
func (o *Orchestrator) legGroup(chain *onChain, direction etf.TransferDirection, index int, underlying etf.Underlying, amount uint64) ([]solana.Instruction, error) {
	accounts := chain.accounts
	receiver := accounts.User
	if direction.Inbound() {
		receiver = accounts.VaultAuthority
	}
	create, err := etf.NewCreateIdempotentATAInstruction(accounts.User, receiver, underlying.Mint)
	if err != nil {
		return nil, err
	}
	group := []solana.Instruction{create}

	if direction.Inbound() {
		legAmount, err := etf.UnderlyingAmount(amount, underlying.Weight, chain.token.Decimals)
		if err != nil {
			return nil, fmt.Errorf("leg %d amount: %w", index, err)
		}
		approve, err := etf.NewApproveInstruction(accounts, underlying.Mint, legAmount)
		if err != nil {
			return nil, err
		}
		group = append(group, approve)
	}

	transfer, err := etf.NewTransferInstruction(accounts, direction, index, underlying.Mint)
	if err != nil {
		return nil, err
	}
	return append(group, transfer), nil
}

func (o *Orchestrator) finalizeGroup(chain *onChain, orderType etf.OrderType, amount uint64) ([]solana.Instruction, error) {
	accounts := chain.accounts
	create, err := etf.NewCreateIdempotentATAInstruction(accounts.User, accounts.User, accounts.EtfMint)
	if err != nil {
		return nil, err
	}
	group := []solana.Instruction{create}
	if orderType == etf.OrderTypeDeconstruction {
		approve, err := etf.NewApproveInstruction(accounts, accounts.EtfMint, amount)
		if err != nil {
			return nil, err
		}
		group = append(group, approve)
	}
	finalize, err := etf.NewFinalizeOrderInstruction(accounts)
	if err != nil {
		return nil, err
	}
	return append(group, finalize), nil
}

// submit signs every bundle of every wave in one wallet round trip and
// hands the waves to the submitter.
func (o *Orchestrator) submit(ctx context.Context, layout [][]txn.Request, hooks *events.Hooks) ([]txn.Outcome, error) {
	var requests []txn.Request
	for _, wave := range layout {
		requests = append(requests, wave...)
	}
	signed, err := o.signer.SignAll(ctx, requests)
	if err != nil {
		return nil, err
	}

	waves := make([]txn.Wave, 0, len(layout))
	offset := 0
	for _, wave := range layout {
		waves = append(waves, txn.Wave(signed[offset:offset+len(wave)]))
		offset += len(wave)
	}
	return o.submitter.SendWaves(ctx, waves, sender.SendOptions{
		Timeout:    o.cfg.Timeout,
		Commitment: o.cfg.Commitment,
		Hooks:      hooks,
	})
}
