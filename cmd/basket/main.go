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
	"github.com/coldbell/etf/backend/internal/logging"
	"github.com/jessevdk/go-flags"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

type options struct {
	ConfigFile string `long:"config" env:"CONFIG_FILE" description:"YAML config file; defaults to config/config-<CONFIG_PHASE>.yaml"`

	Buy     buyCommand     `command:"buy" description:"swap the quote asset into every underlying and construct the basket"`
	Sell    sellCommand    `command:"sell" description:"deconstruct the basket and swap every underlying back"`
	Cancel  cancelCommand  `command:"cancel" description:"reverse the transferred legs of a pending order and close it"`
	Resume  resumeCommand  `command:"resume" description:"finish a pending order"`
	Status  statusCommand  `command:"status" description:"show the pending order of a basket"`
	List    listCommand    `command:"list" description:"list registry baskets"`
	Publish publishCommand `command:"publish" description:"publish a basket to the registry"`
	Unlist  unlistCommand  `command:"unlist" description:"remove a basket from the registry"`
}

// session is built once flags are parsed and shared by the command that runs.
type session struct {
	ctx    context.Context
	client *app.App
	logger *zap.Logger
}

var current *session

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if cmd == nil {
			return nil
		}
		if opts.ConfigFile != "" {
			_ = os.Setenv("CONFIG_FILE", opts.ConfigFile)
		}
		return withSession(func() error { return cmd.Execute(args) })
	}

	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}

func withSession(fn func() error) error {
	cfg, err := config.LoadClientConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, closeLogger, err := logging.New("basket", cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = closeLogger() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Warn("close client", zap.Error(err))
		}
	}()

	current = &session{ctx: ctx, client: client, logger: logger}
	return fn()
}
