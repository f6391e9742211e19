package basket

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/coldbell/etf/backend/internal/coordinator"
	"github.com/coldbell/etf/backend/internal/etf"
	"github.com/coldbell/etf/backend/internal/events"
	"github.com/coldbell/etf/backend/internal/order"
	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrNothingAcquired = errors.New("no underlying was acquired")

type BuyParams struct {
	EtfMint     solana.PublicKey
	QuoteMint   solana.PublicKey
	QuoteAmount uint64
	SlippageBps int
	LegHooks    coordinator.LegHooks
	OrderHooks  *events.Hooks
}

type BuyResult struct {
	Fill  coordinator.Fill
	Order order.Result
}

type SellParams struct {
	EtfMint     solana.PublicKey
	QuoteMint   solana.PublicKey
	Amount      uint64
	SlippageBps int
	LegHooks    coordinator.LegHooks
	OrderHooks  *events.Hooks
}

type SellResult struct {
	Order order.Result
	Fill  coordinator.Fill
}

// Service buys and sells whole baskets against one quote asset.
type Service struct {
	programID solana.PublicKey
	chain     AccountReader
	sources   Sources
	orders    Orders
	logger    *zap.Logger
}

func NewService(programID solana.PublicKey, chain AccountReader, sources Sources, orders Orders, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		programID: programID,
		chain:     chain,
		sources:   sources,
		orders:    orders,
		logger:    logger.Named("basket"),
	}
}

// Buy splits QuoteAmount evenly across the underlyings, swaps into each of
// them and constructs as many basket units as the scarcest underlying
// allows. An underlying that is the quote asset itself is not swapped; its
// share counts toward the ratio as held.
func (s *Service) Buy(ctx context.Context, params BuyParams) (BuyResult, error) {
	token, err := s.token(ctx, params.EtfMint)
	if err != nil {
		return BuyResult{}, err
	}
	if len(token.Underlyings) == 0 {
		return BuyResult{}, fmt.Errorf("basket %s has no underlyings", params.EtfMint)
	}

	count := uint64(len(token.Underlyings))
	share := params.QuoteAmount / count
	rest := params.QuoteAmount % count
	var (
		legs []coordinator.SourceLeg
		held *decimal.Decimal
	)
	for i, u := range token.Underlyings {
		amountIn := share
		if i == len(token.Underlyings)-1 {
			amountIn += rest
		}
		if u.Mint.Equals(params.QuoteMint) {
			if u.Weight == 0 {
				continue
			}
			ratio := decimal.NewFromBigInt(new(big.Int).SetUint64(amountIn), 0).
				Div(decimal.NewFromBigInt(new(big.Int).SetUint64(u.Weight), 0))
			if held == nil || ratio.LessThan(*held) {
				held = &ratio
			}
			continue
		}
		legs = append(legs, coordinator.SourceLeg{
			AmountIn:    amountIn,
			InputMint:   params.QuoteMint,
			OutputMint:  u.Mint,
			Weight:      u.Weight,
			SlippageBps: params.SlippageBps,
		})
	}

	var fill coordinator.Fill
	if len(legs) > 0 {
		fill, err = s.sources.SourceInAll(ctx, legs, params.LegHooks)
		if err != nil {
			return BuyResult{Fill: fill}, fmt.Errorf("source underlyings: %w", err)
		}
		if !fill.Defined {
			return BuyResult{Fill: fill}, ErrNothingAcquired
		}
	}
	if held != nil && (!fill.Defined || held.LessThan(fill.Ratio)) {
		fill.Ratio = *held
		fill.Defined = true
	}
	result := BuyResult{Fill: fill}
	if !fill.Defined {
		return result, ErrNothingAcquired
	}

	amount := fill.Ratio.Shift(int32(token.Decimals)).Floor()
	if amount.Sign() <= 0 || !amount.BigInt().IsUint64() {
		s.logger.Warn("acquired underlyings do not cover one basket unit",
			zap.Stringer("etf_mint", params.EtfMint),
			zap.String("ratio", fill.Ratio.String()),
		)
		return result, ErrNothingAcquired
	}

	s.logger.Info("constructing basket",
		zap.Stringer("etf_mint", params.EtfMint),
		zap.String("ratio", fill.Ratio.String()),
		zap.Uint64("amount", amount.BigInt().Uint64()),
		zap.Int("settled_legs", len(fill.Settled)),
		zap.Int("skipped_legs", len(fill.Skipped)),
	)
	result.Order, err = s.orders.ExecuteOrder(ctx, order.ExecuteParams{
		EtfMint: params.EtfMint,
		Type:    etf.OrderTypeConstruction,
		Amount:  amount.BigInt().Uint64(),
		Hooks:   params.OrderHooks,
	})
	return result, err
}

// Sell deconstructs Amount basket units and swaps every released underlying
// into QuoteMint.
func (s *Service) Sell(ctx context.Context, params SellParams) (SellResult, error) {
	token, err := s.token(ctx, params.EtfMint)
	if err != nil {
		return SellResult{}, err
	}

	orderResult, err := s.orders.ExecuteOrder(ctx, order.ExecuteParams{
		EtfMint: params.EtfMint,
		Type:    etf.OrderTypeDeconstruction,
		Amount:  params.Amount,
		Hooks:   params.OrderHooks,
	})
	result := SellResult{Order: orderResult}
	if err != nil {
		return result, fmt.Errorf("deconstruct basket: %w", err)
	}

	// a resumed order releases what is on chain, not what was asked for
	amount := orderResult.Amount
	if amount == 0 {
		amount = params.Amount
	}

	legs := make([]coordinator.SourceLeg, 0, len(token.Underlyings))
	for _, u := range token.Underlyings {
		legAmount, err := etf.UnderlyingAmount(amount, u.Weight, token.Decimals)
		if err != nil {
			return result, err
		}
		if legAmount == 0 || u.Mint.Equals(params.QuoteMint) {
			continue
		}
		legs = append(legs, coordinator.SourceLeg{
			AmountIn:    legAmount,
			InputMint:   u.Mint,
			OutputMint:  params.QuoteMint,
			Weight:      u.Weight,
			SlippageBps: params.SlippageBps,
		})
	}
	if len(legs) == 0 {
		return result, nil
	}

	result.Fill, err = s.sources.SourceOutAll(ctx, legs, params.LegHooks)
	if err != nil {
		return result, fmt.Errorf("sink underlyings: %w", err)
	}
	s.logger.Info("basket sold",
		zap.Stringer("etf_mint", params.EtfMint),
		zap.Uint64("amount", amount),
		zap.Int64("proceeds", result.Fill.Amount),
		zap.Bool("proceeds_known", result.Fill.Defined),
	)
	return result, nil
}

func (s *Service) token(ctx context.Context, etfMint solana.PublicKey) (*etf.EtfToken, error) {
	key, _, err := etf.DeriveEtfTokenPDA(s.programID, etfMint)
	if err != nil {
		return nil, fmt.Errorf("derive etf token PDA: %w", err)
	}
	data, err := s.chain.AccountData(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("fetch basket %s: %w", etfMint, err)
	}
	return etf.DecodeEtfToken(data)
}
