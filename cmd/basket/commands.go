package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/coldbell/etf/backend/internal/basket"
	"github.com/coldbell/etf/backend/internal/coordinator"
	"github.com/coldbell/etf/backend/internal/etf"
	"github.com/coldbell/etf/backend/internal/order"
	"github.com/coldbell/etf/backend/internal/registry"
	"github.com/coldbell/etf/backend/internal/txn"
	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

var errNoRegistry = errors.New("REGISTRY_API_URL is not configured")

func pubkey(name, value string) (solana.PublicKey, error) {
	pk, err := solana.PublicKeyFromBase58(value)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return pk, nil
}

// mintFlag is the --etf-mint option shared by the order commands.
type mintFlag struct {
	EtfMint string `long:"etf-mint" required:"true" description:"basket mint"`
}

func (f mintFlag) mint() (solana.PublicKey, error) {
	return pubkey("etf-mint", f.EtfMint)
}

type tradeFlags struct {
	mintFlag
	QuoteMint   string `long:"quote-mint" required:"true" description:"quote asset mint"`
	Amount      uint64 `long:"amount" required:"true" description:"amount in native units"`
	SlippageBps int    `long:"slippage-bps" default:"50" description:"swap slippage in basis points"`
}

func (f tradeFlags) mints() (etfMint, quoteMint solana.PublicKey, err error) {
	if etfMint, err = f.mint(); err != nil {
		return
	}
	quoteMint, err = pubkey("quote-mint", f.QuoteMint)
	return
}

type buyCommand struct {
	tradeFlags
}

func (c *buyCommand) Execute([]string) error {
	s := current
	etfMint, quoteMint, err := c.mints()
	if err != nil {
		return err
	}
	result, err := s.client.Baskets.Buy(s.ctx, basket.BuyParams{
		EtfMint:     etfMint,
		QuoteMint:   quoteMint,
		QuoteAmount: c.Amount,
		SlippageBps: c.SlippageBps,
		LegHooks:    legHooks(s.logger),
	})
	if err != nil {
		return err
	}
	fmt.Printf("constructed %d (ratio %s, %d legs settled, %d skipped)\n",
		result.Order.Amount, result.Fill.Ratio, len(result.Fill.Settled), len(result.Fill.Skipped))
	printOutcomes(result.Order.Outcomes)
	return nil
}

type sellCommand struct {
	tradeFlags
}

func (c *sellCommand) Execute([]string) error {
	s := current
	etfMint, quoteMint, err := c.mints()
	if err != nil {
		return err
	}
	result, err := s.client.Baskets.Sell(s.ctx, basket.SellParams{
		EtfMint:     etfMint,
		QuoteMint:   quoteMint,
		Amount:      c.Amount,
		SlippageBps: c.SlippageBps,
		LegHooks:    legHooks(s.logger),
	})
	if err != nil {
		return err
	}
	printOutcomes(result.Order.Outcomes)
	if result.Fill.Defined {
		fmt.Printf("deconstructed %d, received %d\n", result.Order.Amount, result.Fill.Amount)
	} else {
		fmt.Printf("deconstructed %d, no swap settled\n", result.Order.Amount)
	}
	return nil
}

type cancelCommand struct {
	mintFlag
}

func (c *cancelCommand) Execute([]string) error {
	s := current
	etfMint, err := c.mint()
	if err != nil {
		return err
	}
	result, err := s.client.Orders.CancelOrder(s.ctx, etfMint, nil)
	if err != nil {
		return err
	}
	printOutcomes(result.Outcomes)
	return nil
}

type resumeCommand struct {
	mintFlag
}

func (c *resumeCommand) Execute([]string) error {
	s := current
	etfMint, err := c.mint()
	if err != nil {
		return err
	}
	pending, err := s.client.Orders.PendingOrder(s.ctx, etfMint)
	if err != nil {
		return err
	}
	if pending == nil {
		return order.ErrNoPendingOrder
	}
	result, err := s.client.Orders.ExecuteOrder(s.ctx, order.ExecuteParams{
		EtfMint: etfMint,
		Type:    pending.State.Type,
		Amount:  pending.State.Amount,
	})
	if err != nil {
		return err
	}
	printOutcomes(result.Outcomes)
	return nil
}

type statusCommand struct {
	mintFlag
}

func (c *statusCommand) Execute([]string) error {
	s := current
	etfMint, err := c.mint()
	if err != nil {
		return err
	}
	pending, err := s.client.Orders.PendingOrder(s.ctx, etfMint)
	if err != nil {
		return err
	}
	if pending == nil {
		fmt.Println("no pending order")
		return nil
	}
	fmt.Printf("%s of %d pending, %d of %d legs left\n",
		pending.State.Type, pending.State.Amount, pending.Remaining(), len(pending.Token.Underlyings))
	for i, u := range pending.Token.Underlyings {
		fmt.Printf("  %-44s weight=%d transferred=%t\n", u.Mint, u.Weight, pending.Transferred.IsTransferred(i))
	}
	return nil
}

type listCommand struct{}

func (c *listCommand) Execute([]string) error {
	s := current
	if s.client.Registry == nil {
		return errNoRegistry
	}
	listings, ok := s.client.Registry.List(s.ctx)
	if !ok {
		return errors.New("registry unavailable")
	}
	for _, l := range listings {
		fmt.Printf("%s  %-8s %-24s %s (%d components)\n", l.ID, l.Symbol, l.Name, l.EtfMint, len(l.Components))
	}
	return nil
}

type publishCommand struct {
	mintFlag
	Name        string `long:"name" required:"true"`
	Symbol      string `long:"symbol" required:"true"`
	Description string `long:"description"`
}

// Execute publishes the on-chain underlying table so the listing cannot
// drift from the program.
func (c *publishCommand) Execute([]string) error {
	s := current
	if s.client.Registry == nil {
		return errNoRegistry
	}
	etfMint, err := c.mint()
	if err != nil {
		return err
	}
	token, err := loadEtfToken(s.ctx, s, etfMint)
	if err != nil {
		return err
	}
	listing := registry.Listing{
		EtfMint:     etfMint.String(),
		Name:        c.Name,
		Symbol:      c.Symbol,
		Description: c.Description,
		Creator:     s.client.Signer.PublicKey().String(),
	}
	for _, u := range token.Underlyings {
		listing.Components = append(listing.Components, registry.Component{Mint: u.Mint.String(), Weight: u.Weight})
	}
	created, ok := s.client.Registry.Create(s.ctx, listing)
	if !ok {
		return errors.New("registry rejected the listing")
	}
	fmt.Println(created.ID)
	return nil
}

type unlistCommand struct {
	ID string `long:"id" required:"true" description:"registry listing id"`
}

func (c *unlistCommand) Execute([]string) error {
	s := current
	if s.client.Registry == nil {
		return errNoRegistry
	}
	if !s.client.Registry.Delete(s.ctx, c.ID) {
		return fmt.Errorf("listing %s was not removed", c.ID)
	}
	return nil
}

func loadEtfToken(ctx context.Context, s *session, etfMint solana.PublicKey) (*etf.EtfToken, error) {
	key, _, err := etf.DeriveEtfTokenPDA(s.client.ProgramID(), etfMint)
	if err != nil {
		return nil, err
	}
	data, err := s.client.Ledger.AccountData(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load basket %s: %w", etfMint, err)
	}
	return etf.DecodeEtfToken(data)
}

func legHooks(logger *zap.Logger) coordinator.LegHooks {
	return coordinator.LegHooks{
		OnLegSent: func(_ context.Context, leg coordinator.SourceLeg, sig solana.Signature) error {
			logger.Info("swap sent", zap.Stringer("output_mint", leg.OutputMint), zap.Stringer("signature", sig))
			return nil
		},
		OnLegSettled: func(_ context.Context, s coordinator.LegSettlement) error {
			logger.Info("swap settled", zap.Stringer("output_mint", s.Leg.OutputMint), zap.Int64("delta", s.Delta))
			return nil
		},
	}
}

func printOutcomes(outcomes []txn.Outcome) {
	for _, o := range outcomes {
		fmt.Printf("  %-20s %-10s %s\n", o.Tag, o.Status, o.Signature)
	}
}
