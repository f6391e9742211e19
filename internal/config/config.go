package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

const defaultMaxTxSize = 1232

type LogConfig struct {
	Level      string
	Format     string
	Output     string
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// ClientConfig carries everything a basket client needs to talk to the
// cluster, the swap aggregator and the registry.
type ClientConfig struct {
	RPCURL      string
	WSURL       string
	Commitment  rpc.CommitmentType
	KeypairPath string
	ProgramID   solana.PublicKey

	SkipPreflight bool
	MaxRetries    *uint
	MaxRPS        int

	TxTimeout           time.Duration
	ResubmitDelay       time.Duration
	ResubmitInterval    time.Duration
	PollInitialInterval time.Duration
	PollMaxInterval     time.Duration

	MaxTxSize                     int
	ComputeUnitLimit              uint32
	ComputeUnitPriceMicroLamports uint64

	SettleAttempts       int
	SettleInterval       time.Duration
	StrictSinkSettlement bool

	SwapAPIURL     string
	RegistryAPIURL string
	JournalDSN     string

	Log LogConfig
}

type KeeperConfig struct {
	Client       ClientConfig
	PollInterval time.Duration
	EtfMints     []solana.PublicKey
	MetricsAddr  string
	Log          LogConfig
}

func LoadClientConfig() (ClientConfig, error) {
	if err := ensureRuntimeConfigLoaded(); err != nil {
		return ClientConfig{}, err
	}

	cfg := ClientConfig{
		RPCURL:         envOrDefault("SOLANA_RPC_URL", "http://127.0.0.1:8899"),
		SwapAPIURL:     envOrDefault("SWAP_API_URL", ""),
		RegistryAPIURL: envOrDefault("REGISTRY_API_URL", ""),
		JournalDSN:     envOrDefault("CLIENT_JOURNAL_DSN", ""),
	}

	var err error
	if cfg.WSURL, err = wsURLFor(envOrDefault("SOLANA_WS_URL", ""), cfg.RPCURL); err != nil {
		return ClientConfig{}, err
	}
	if cfg.Commitment, err = envCommitment("SOLANA_COMMITMENT", rpc.CommitmentConfirmed); err != nil {
		return ClientConfig{}, err
	}
	if cfg.ProgramID, err = envPubkey("ETF_PROGRAM_ID", solana.PublicKey{}); err != nil {
		return ClientConfig{}, err
	}
	if cfg.ProgramID.IsZero() {
		return ClientConfig{}, errors.New("ETF_PROGRAM_ID is required")
	}
	keypair := envOrDefault("CLIENT_KEYPAIR_PATH", envOrDefault("SOLANA_KEYPAIR_PATH", "~/.config/solana/id.json"))
	if cfg.KeypairPath, err = expandHomePath(keypair); err != nil {
		return ClientConfig{}, fmt.Errorf("expand keypair path: %w", err)
	}

	if cfg.SkipPreflight, err = envBool("CLIENT_SKIP_PREFLIGHT", true); err != nil {
		return ClientConfig{}, err
	}
	if cfg.MaxRetries, err = envOptionalUint("CLIENT_MAX_RETRIES"); err != nil {
		return ClientConfig{}, err
	}
	if cfg.MaxRPS, err = envInt("CLIENT_RPC_MAX_RPS", 20); err != nil {
		return ClientConfig{}, err
	}

	durations := []struct {
		key      string
		fallback time.Duration
		dst      *time.Duration
	}{
		{"CLIENT_TX_TIMEOUT", 60 * time.Second, &cfg.TxTimeout},
		{"CLIENT_RESUBMIT_DELAY", 500 * time.Millisecond, &cfg.ResubmitDelay},
		{"CLIENT_RESUBMIT_INTERVAL", time.Second, &cfg.ResubmitInterval},
		{"CLIENT_POLL_INITIAL_INTERVAL", 400 * time.Millisecond, &cfg.PollInitialInterval},
		{"CLIENT_POLL_MAX_INTERVAL", 1600 * time.Millisecond, &cfg.PollMaxInterval},
		{"CLIENT_SETTLE_INTERVAL", 500 * time.Millisecond, &cfg.SettleInterval},
	}
	for _, d := range durations {
		if *d.dst, err = envDuration(d.key, d.fallback); err != nil {
			return ClientConfig{}, err
		}
	}
	if cfg.PollMaxInterval < cfg.PollInitialInterval {
		return ClientConfig{}, fmt.Errorf("invalid CLIENT_POLL_MAX_INTERVAL: %s is below CLIENT_POLL_INITIAL_INTERVAL %s", cfg.PollMaxInterval, cfg.PollInitialInterval)
	}

	if cfg.MaxTxSize, err = envInt("CLIENT_MAX_TX_SIZE", defaultMaxTxSize); err != nil {
		return ClientConfig{}, err
	}
	if cfg.ComputeUnitLimit, err = envUint32("CLIENT_COMPUTE_UNIT_LIMIT", 0); err != nil {
		return ClientConfig{}, err
	}
	if cfg.ComputeUnitPriceMicroLamports, err = envUint64("CLIENT_COMPUTE_UNIT_PRICE_MICROLAMPORTS", 0); err != nil {
		return ClientConfig{}, err
	}
	if cfg.SettleAttempts, err = envInt("CLIENT_SETTLE_ATTEMPTS", 10); err != nil {
		return ClientConfig{}, err
	}
	if cfg.StrictSinkSettlement, err = envBool("CLIENT_STRICT_SINK_SETTLEMENT", true); err != nil {
		return ClientConfig{}, err
	}

	if cfg.Log, err = buildLogConfig("CLIENT", "basket-client"); err != nil {
		return ClientConfig{}, err
	}
	return cfg, nil
}

func LoadKeeperConfig() (KeeperConfig, error) {
	client, err := LoadClientConfig()
	if err != nil {
		return KeeperConfig{}, err
	}

	cfg := KeeperConfig{
		Client:      client,
		MetricsAddr: envOrDefault("KEEPER_METRICS_ADDR", ":9464"),
	}
	if cfg.PollInterval, err = envDuration("KEEPER_POLL_INTERVAL", 30*time.Second); err != nil {
		return KeeperConfig{}, err
	}
	if cfg.EtfMints, err = envPubkeyList("KEEPER_ETF_MINTS"); err != nil {
		return KeeperConfig{}, err
	}
	if len(cfg.EtfMints) == 0 {
		return KeeperConfig{}, errors.New("KEEPER_ETF_MINTS is required")
	}
	if cfg.Log, err = buildLogConfig("KEEPER", "basket-keeper"); err != nil {
		return KeeperConfig{}, err
	}
	return cfg, nil
}

// buildLogConfig reads <PREFIX>_LOG_* first and falls back to the shared
// LOG_* keys.
func buildLogConfig(prefix, serviceName string) (LogConfig, error) {
	key := func(name string) string {
		if v := envOrDefault(prefix+"_LOG_"+name, ""); v != "" {
			return prefix + "_LOG_" + name
		}
		return "LOG_" + name
	}

	cfg := LogConfig{
		Level:    strings.ToLower(envOrDefault(key("LEVEL"), "info")),
		Format:   strings.ToLower(envOrDefault(key("FORMAT"), "text")),
		Output:   strings.ToLower(envOrDefault(key("OUTPUT"), "console")),
		FilePath: envOrDefault(key("FILE_PATH"), ".docker/"+serviceName+"/"+serviceName+".log"),
	}

	var err error
	if cfg.MaxSizeMB, err = envInt(key("MAX_SIZE_MB"), 100); err != nil {
		return LogConfig{}, err
	}
	if cfg.MaxBackups, err = envInt(key("MAX_BACKUPS"), 5); err != nil {
		return LogConfig{}, err
	}
	if cfg.MaxAgeDays, err = envInt(key("MAX_AGE_DAYS"), 14); err != nil {
		return LogConfig{}, err
	}
	return cfg, nil
}

// wsURLFor derives the websocket endpoint from the RPC endpoint when none is
// configured. The local validator serves websockets one port above RPC.
func wsURLFor(explicit, rpcURL string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	u, err := url.Parse(rpcURL)
	if err != nil {
		return "", fmt.Errorf("invalid SOLANA_RPC_URL: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("invalid SOLANA_RPC_URL: unsupported scheme %q", u.Scheme)
	}
	if u.Port() == "8899" {
		u.Host = u.Hostname() + ":8900"
	}
	return u.String(), nil
}
