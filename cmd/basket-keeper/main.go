package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/coldbell/etf/backend/internal/app"
	"github.com/coldbell/etf/backend/internal/config"
	"github.com/coldbell/etf/backend/internal/keeper"
	"github.com/coldbell/etf/backend/internal/logging"
	"github.com/coldbell/etf/backend/internal/metrics"
	"github.com/jessevdk/go-flags"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

type options struct {
	ConfigFile string `long:"config" env:"CONFIG_FILE" description:"YAML config file; defaults to config/config-<CONFIG_PHASE>.yaml"`
	Once       bool   `long:"once" description:"run a single tick and exit"`
}

func main() {
	var opts options
	if _, err := flags.ParseArgs(&opts, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if opts.ConfigFile != "" {
		_ = os.Setenv("CONFIG_FILE", opts.ConfigFile)
	}

	bootstrap := zap.NewExample()

	cfg, err := config.LoadKeeperConfig()
	if err != nil {
		bootstrap.Fatal("failed to load config", zap.Error(err))
	}

	logger, closeLogger, err := logging.New("basket-keeper", cfg.Log)
	if err != nil {
		bootstrap.Fatal("failed to initialize logger", zap.Error(err))
	}
	defer func() {
		if closeErr := closeLogger(); closeErr != nil {
			bootstrap.Error("failed to close logger", zap.Error(closeErr))
		}
	}()

	if source, sourceErr := config.CurrentConfigSource(); sourceErr == nil {
		logger.Info("configuration loaded",
			zap.String("phase", source.Phase),
			zap.String("path", source.Path),
			zap.Bool("loaded", source.Loaded),
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, opts.Once, logger); err != nil {
		logger.Error("keeper exited with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.KeeperConfig, once bool, logger *zap.Logger) error {
	client, err := app.New(ctx, cfg.Client, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Warn("close client", zap.Error(err))
		}
	}()

	svc := keeper.New(keeper.Config{
		PollInterval: cfg.PollInterval,
		EtfMints:     cfg.EtfMints,
		MetricsAddr:  cfg.MetricsAddr,
	}, client.Orders, metrics.NewKeeper(), logger)

	if once {
		summary := svc.Tick(ctx)
		if summary.Failed > 0 {
			return fmt.Errorf("%d of %d baskets failed", summary.Failed, summary.Checked)
		}
		return nil
	}
	return svc.Run(ctx)
}
