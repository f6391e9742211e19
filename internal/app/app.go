package app

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/coldbell/etf/backend/internal/balance"
	"github.com/coldbell/etf/backend/internal/basket"
	"github.com/coldbell/etf/backend/internal/config"
	"github.com/coldbell/etf/backend/internal/coordinator"
	"github.com/coldbell/etf/backend/internal/etf"
	"github.com/coldbell/etf/backend/internal/events"
	"github.com/coldbell/etf/backend/internal/journal"
	"github.com/coldbell/etf/backend/internal/ledger"
	"github.com/coldbell/etf/backend/internal/metrics"
	"github.com/coldbell/etf/backend/internal/order"
	"github.com/coldbell/etf/backend/internal/registry"
	"github.com/coldbell/etf/backend/internal/router"
	"github.com/coldbell/etf/backend/internal/sender"
	"github.com/coldbell/etf/backend/internal/signer"
	"github.com/coldbell/etf/backend/internal/swap"
	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

// App is one wallet's view of the basket program with every component
// wired to the same ledger client and event bus.
type App struct {
	Ledger      *ledger.Client
	Bus         *events.Bus
	Engine      *sender.Engine
	Router      *router.Router
	Signer      *signer.Gateway
	Orders      *order.Orchestrator
	Coordinator *coordinator.Coordinator
	Baskets     *basket.Service
	Registry    *registry.Client

	// Journal is nil unless a DSN is configured.
	Journal *journal.Store

	programID solana.PublicKey
	closers   []func() error
	logger    *zap.Logger
}

func New(ctx context.Context, cfg config.ClientConfig, logger *zap.Logger) (*App, error) {
	wallet, err := signer.LoadKeypairWallet(cfg.KeypairPath)
	if err != nil {
		return nil, err
	}
	return NewWithWallet(ctx, cfg, wallet, logger)
}

func NewWithWallet(ctx context.Context, cfg config.ClientConfig, wallet signer.Wallet, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{programID: cfg.ProgramID, logger: logger}

	a.Ledger = ledger.NewClient(ledger.Config{
		RPCURL:        cfg.RPCURL,
		WSURL:         cfg.WSURL,
		Commitment:    cfg.Commitment,
		SkipPreflight: cfg.SkipPreflight,
		MaxRetries:    cfg.MaxRetries,
		MaxRPS:        cfg.MaxRPS,
	}, logger).WithMetrics(metrics.NewRPCClient(clusterLabel(cfg.RPCURL)))
	a.closers = append(a.closers, a.Ledger.Close)

	a.Bus = events.NewBus(logger)
	a.Engine = sender.NewEngine(sender.Config{
		ResubmitDelay:       cfg.ResubmitDelay,
		ResubmitInterval:    cfg.ResubmitInterval,
		PollInitialInterval: cfg.PollInitialInterval,
		PollMaxInterval:     cfg.PollMaxInterval,
		Commitment:          cfg.Commitment,
	}, a.Ledger, a.Bus, metrics.NewSender(), logger)
	a.Router = router.New(a.Engine, logger)
	a.Signer = signer.NewGateway(wallet, a.Ledger, logger)

	a.Orders = order.New(order.Config{
		ProgramID:  cfg.ProgramID,
		Timeout:    cfg.TxTimeout,
		Commitment: cfg.Commitment,
		MaxTxSize:  cfg.MaxTxSize,
		ComputeBudget: etf.ComputeBudget{
			UnitLimit:              cfg.ComputeUnitLimit,
			UnitPriceMicroLamports: cfg.ComputeUnitPriceMicroLamports,
		},
	}, a.Ledger, a.Signer, a.Router, logger)

	aggregator, err := swap.NewClient(cfg.SwapAPIURL, logger)
	if err != nil {
		return nil, fmt.Errorf("init swap client: %w", err)
	}
	a.Coordinator = coordinator.New(coordinator.Config{
		Timeout:    cfg.TxTimeout,
		Commitment: cfg.Commitment,
		Settle:     balance.Settings{Attempts: cfg.SettleAttempts, Interval: cfg.SettleInterval},
		StrictSink: cfg.StrictSinkSettlement,
	}, aggregator, a.Signer, a.Router, balance.NewOracle(a.Ledger, wallet.PublicKey()), metrics.NewBalance(), logger)

	a.Baskets = basket.NewService(cfg.ProgramID, a.Ledger, a.Coordinator, a.Orders, logger)
	if cfg.RegistryAPIURL != "" {
		a.Registry = registry.NewClient(cfg.RegistryAPIURL, logger)
	}

	if cfg.JournalDSN != "" {
		store, err := journal.NewStore(ctx, cfg.JournalDSN)
		if err != nil {
			return nil, fmt.Errorf("init journal: %w", err)
		}
		a.Journal = store
		detach := journal.New(store, logger).Attach(a.Bus)
		a.closers = append(a.closers, func() error {
			detach()
			return store.Close()
		})
	}

	logger.Info("basket client ready",
		zap.Stringer("wallet", wallet.PublicKey()),
		zap.Stringer("program", cfg.ProgramID),
		zap.String("rpc", cfg.RPCURL),
		zap.String("commitment", string(cfg.Commitment)),
		zap.Bool("journal", a.Journal != nil),
		zap.Bool("registry", a.Registry != nil),
	)
	return a, nil
}

func (a *App) ProgramID() solana.PublicKey {
	return a.programID
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func clusterLabel(rpcURL string) string {
	u, err := url.Parse(rpcURL)
	if err != nil || u.Hostname() == "" {
		return "unknown"
	}
	return u.Hostname()
}
