package swap

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gagliardetto/solana-go"
	"github.com/ilkamo/jupiter-go/jupiter"
	"go.uber.org/zap"
)

// Route is a priced swap path returned by the aggregator.
type Route struct {
	Quote      *jupiter.QuoteResponse
	InputMint  solana.PublicKey
	OutputMint solana.PublicKey
	InAmount   uint64
	OutAmount  uint64
}

// Client talks to a Jupiter-compatible aggregator. Every failure is logged
// and reported as "no result"; callers skip the leg.
type Client struct {
	api    *jupiter.ClientWithResponses
	logger *zap.Logger
}

func NewClient(endpoint string, logger *zap.Logger) (*Client, error) {
	if endpoint == "" {
		endpoint = jupiter.DefaultAPIURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	api, err := jupiter.NewClientWithResponses(endpoint)
	if err != nil {
		return nil, err
	}
	return &Client{api: api, logger: logger.Named("swap")}, nil
}

func (c *Client) Quote(ctx context.Context, in, out solana.PublicKey, amount uint64, slippageBps int) (Route, bool) {
	logger := c.logger.With(zap.Stringer("input_mint", in), zap.Stringer("output_mint", out), zap.Uint64("amount", amount))
	if amount == 0 {
		logger.Debug("skip quote for zero amount")
		return Route{}, false
	}

	slippage := jupiter.SlippageParameter(slippageBps)
	resp, err := c.api.GetQuoteWithResponse(ctx, &jupiter.GetQuoteParams{
		InputMint:   in.String(),
		OutputMint:  out.String(),
		Amount:      int(amount),
		SlippageBps: &slippage,
	})
	if err != nil {
		logger.Warn("quote request failed", zap.Error(err))
		return Route{}, false
	}
	if resp.StatusCode() != http.StatusOK || resp.JSON200 == nil {
		logger.Warn("no route", zap.Int("status", resp.StatusCode()), zap.ByteString("body", resp.Body))
		return Route{}, false
	}

	quote := resp.JSON200
	outAmount, err := strconv.ParseUint(quote.OutAmount, 10, 64)
	if err != nil || outAmount == 0 {
		logger.Warn("route without output", zap.String("out_amount", quote.OutAmount), zap.Error(err))
		return Route{}, false
	}
	inAmount, err := strconv.ParseUint(quote.InAmount, 10, 64)
	if err != nil {
		inAmount = amount
	}
	return Route{
		Quote:      quote,
		InputMint:  in,
		OutputMint: out,
		InAmount:   inAmount,
		OutAmount:  outAmount,
	}, true
}

// Transaction asks the aggregator to serialize the swap for user. The result
// is unsigned.
func (c *Client) Transaction(ctx context.Context, user solana.PublicKey, route Route) (*solana.Transaction, bool) {
	logger := c.logger.With(zap.Stringer("input_mint", route.InputMint), zap.Stringer("output_mint", route.OutputMint))
	if route.Quote == nil {
		logger.Warn("swap requested without quote")
		return nil, false
	}

	resp, err := c.api.PostSwapWithResponse(ctx, jupiter.PostSwapJSONRequestBody{
		QuoteResponse: *route.Quote,
		UserPublicKey: user.String(),
	})
	if err != nil {
		logger.Warn("swap request failed", zap.Error(err))
		return nil, false
	}
	if resp.StatusCode() != http.StatusOK || resp.JSON200 == nil {
		logger.Warn("swap unavailable", zap.Int("status", resp.StatusCode()), zap.ByteString("body", resp.Body))
		return nil, false
	}

	tx := solana.Transaction{}
	if err := tx.UnmarshalBase64(resp.JSON200.SwapTransaction); err != nil {
		logger.Warn("decode swap transaction", zap.Error(err))
		return nil, false
	}
	return &tx, true
}
