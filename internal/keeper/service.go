package keeper

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/coldbell/etf/backend/internal/order"
	"github.com/gagliardetto/solana-go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks_test.go -package=keeper

type Orders interface {
	PendingOrder(ctx context.Context, etfMint solana.PublicKey) (*order.PendingOrder, error)
	ExecuteOrder(ctx context.Context, params order.ExecuteParams) (order.Result, error)
}

type Metrics interface {
	ObserveResume(err error)
	ObserveTick(pending int, at time.Time)
}

type nopMetrics struct{}

func (nopMetrics) ObserveResume(error)        {}
func (nopMetrics) ObserveTick(int, time.Time) {}

type Config struct {
	PollInterval time.Duration
	EtfMints     []solana.PublicKey
	// MetricsAddr of "" disables the http listener.
	MetricsAddr string
}

type TickSummary struct {
	Checked int
	Pending int
	Resumed int
	Failed  int
}

// Service resumes orders the wallet left pending on its baskets, for
// example after a client crashed between the transfer and finalize waves.
type Service struct {
	cfg     Config
	orders  Orders
	metrics Metrics
	logger  *zap.Logger

	lastTick atomic.Int64
}

func New(cfg Config, orders Orders, metrics Metrics, logger *zap.Logger) *Service {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 30 * time.Second
	}
	return &Service{cfg: cfg, orders: orders, metrics: metrics, logger: logger.Named("keeper")}
}

func (s *Service) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	var server *http.Server
	if s.cfg.MetricsAddr != "" {
		server = &http.Server{
			Addr:              s.cfg.MetricsAddr,
			Handler:           s.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			err := server.ListenAndServe()
			if errors.Is(err, http.ErrServerClosed) {
				err = nil
			}
			errCh <- err
		}()
	}

	s.logger.Info("keeper started",
		zap.Int("baskets", len(s.cfg.EtfMints)),
		zap.Duration("poll_interval", s.cfg.PollInterval),
		zap.String("metrics_addr", s.cfg.MetricsAddr),
	)

	s.Tick(ctx)

	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("keeper stopped")
			if server == nil {
				return nil
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case err := <-errCh:
			return err
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick checks every configured basket once. A failing basket is logged and
// does not stop the others.
func (s *Service) Tick(ctx context.Context) TickSummary {
	var summary TickSummary
	for _, mint := range s.cfg.EtfMints {
		if ctx.Err() != nil {
			break
		}
		summary.Checked++

		pending, err := s.orders.PendingOrder(ctx, mint)
		if err != nil {
			summary.Failed++
			s.logger.Warn("pending order lookup failed", zap.Stringer("etf_mint", mint), zap.Error(err))
			continue
		}
		if pending == nil {
			continue
		}
		summary.Pending++

		logger := s.logger.With(
			zap.Stringer("etf_mint", mint),
			zap.Stringer("type", pending.State.Type),
			zap.Uint64("amount", pending.State.Amount),
			zap.Int("remaining_legs", pending.Remaining()),
		)
		logger.Info("resuming pending order")

		result, err := s.orders.ExecuteOrder(ctx, order.ExecuteParams{
			EtfMint: mint,
			Type:    pending.State.Type,
			Amount:  pending.State.Amount,
		})
		s.metrics.ObserveResume(err)
		if err != nil {
			summary.Failed++
			logger.Warn("resume failed", zap.Error(err))
			continue
		}
		summary.Resumed++
		logger.Info("order resumed", zap.Int("bundles", result.Bundles), zap.Int("waves", result.Waves))
	}

	now := time.Now()
	s.lastTick.Store(now.Unix())
	s.metrics.ObserveTick(summary.Pending, now)
	s.logger.Info("keeper tick complete",
		zap.Int("checked", summary.Checked),
		zap.Int("pending", summary.Pending),
		zap.Int("resumed", summary.Resumed),
		zap.Int("failed", summary.Failed),
	)
	return summary
}

func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// handleHealth reports unhealthy once no tick completed for three poll
// intervals.
func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	last := s.lastTick.Load()
	if last == 0 || time.Since(time.Unix(last, 0)) > 3*s.cfg.PollInterval {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("stale\n"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}
