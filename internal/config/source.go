package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"gopkg.in/yaml.v3"
)

type ConfigSource struct {
	Phase  string
	Path   string
	Loaded bool
}

type runtimeConfig struct {
	source ConfigSource
	values map[string]string
}

var (
	runtimeOnce sync.Once
	runtimeCfg  runtimeConfig
	runtimeErr  error
)

func CurrentConfigSource() (ConfigSource, error) {
	if err := ensureRuntimeConfigLoaded(); err != nil {
		return ConfigSource{}, err
	}
	return runtimeCfg.source, nil
}

func ensureRuntimeConfigLoaded() error {
	runtimeOnce.Do(func() {
		phase := strings.TrimSpace(os.Getenv("CONFIG_PHASE"))
		if phase == "" {
			phase = "local"
		}
		runtimeCfg, runtimeErr = loadRuntimeConfig(phase, strings.TrimSpace(os.Getenv("CONFIG_FILE")))
	})
	return runtimeErr
}

// loadRuntimeConfig reads config/config-<phase>.yaml unless path is set. A
// missing implicit file is not an error; a missing explicit one is.
func loadRuntimeConfig(phase, path string) (runtimeConfig, error) {
	out := runtimeConfig{source: ConfigSource{Phase: phase}, values: map[string]string{}}

	explicit := path != ""
	if !explicit {
		path = filepath.Join("config", "config-"+phase+".yaml")
	}

	body, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return out, nil
		}
		return out, fmt.Errorf("read config file %q: %w", path, err)
	}

	raw := make(map[string]any)
	if err := yaml.Unmarshal(body, &raw); err != nil {
		return out, fmt.Errorf("parse config file %q: %w", path, err)
	}
	values, err := flattenConfig(raw)
	if err != nil {
		return out, fmt.Errorf("flatten config file %q: %w", path, err)
	}

	out.values = values
	out.source.Loaded = true
	out.source.Path = path
	if abs, err := filepath.Abs(path); err == nil {
		out.source.Path = abs
	}
	return out, nil
}

// flattenConfig turns nested YAML into UPPER_SNAKE keys, so
// client: {tx_timeout: 30s} is read as CLIENT_TX_TIMEOUT. Lists become CSV.
func flattenConfig(raw map[string]any) (map[string]string, error) {
	out := make(map[string]string)
	for key, value := range raw {
		if err := flattenValue(normalizeKeySegment(key), value, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func flattenValue(prefix string, value any, out map[string]string) error {
	if prefix == "" {
		return nil
	}
	child := func(key string) string {
		segment := normalizeKeySegment(key)
		if segment == "" {
			return ""
		}
		return prefix + "_" + segment
	}

	switch typed := value.(type) {
	case nil:
		return nil
	case map[string]any:
		for key, v := range typed {
			if err := flattenValue(child(key), v, out); err != nil {
				return err
			}
		}
	case map[any]any:
		for key, v := range typed {
			text, ok := key.(string)
			if !ok {
				return fmt.Errorf("unsupported map key type %T under %q", key, prefix)
			}
			if err := flattenValue(child(text), v, out); err != nil {
				return err
			}
		}
	case []any:
		parts := make([]string, 0, len(typed))
		for _, item := range typed {
			switch scalar := item.(type) {
			case string:
				if s := strings.TrimSpace(scalar); s != "" {
					parts = append(parts, s)
				}
			case bool, int, int64, uint64, float64:
				parts = append(parts, fmt.Sprint(scalar))
			default:
				return fmt.Errorf("unsupported list item type %T under %q", item, prefix)
			}
		}
		out[prefix] = strings.Join(parts, ",")
	default:
		out[prefix] = fmt.Sprint(typed)
	}
	return nil
}

func normalizeKeySegment(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	pending := false
	for _, r := range strings.TrimSpace(raw) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		pending = true
	}
	return b.String()
}

// valueForKey prefers the process environment over the YAML file.
func valueForKey(key string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	if err := ensureRuntimeConfigLoaded(); err != nil {
		return ""
	}
	return strings.TrimSpace(runtimeCfg.values[key])
}

func envOrDefault(key, fallback string) string {
	if value := valueForKey(key); value != "" {
		return value
	}
	return fallback
}

// parseEnv returns fallback for an unset key and wraps parse failures with
// the key name.
func parseEnv[T any](key string, fallback T, parse func(string) (T, error)) (T, error) {
	raw := valueForKey(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := parse(raw)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func envPubkey(key string, fallback solana.PublicKey) (solana.PublicKey, error) {
	return parseEnv(key, fallback, solana.PublicKeyFromBase58)
}

func envPubkeyList(key string) ([]solana.PublicKey, error) {
	var out []solana.PublicKey
	for _, raw := range parseCSV(valueForKey(key)) {
		pk, err := solana.PublicKeyFromBase58(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s entry %q: %w", key, raw, err)
		}
		out = append(out, pk)
	}
	return out, nil
}

func envCommitment(key string, fallback rpc.CommitmentType) (rpc.CommitmentType, error) {
	return parseEnv(key, fallback, func(raw string) (rpc.CommitmentType, error) {
		switch c := rpc.CommitmentType(strings.ToLower(raw)); c {
		case rpc.CommitmentProcessed, rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
			return c, nil
		}
		return "", fmt.Errorf("%q (expected processed|confirmed|finalized)", raw)
	})
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	return parseEnv(key, fallback, func(raw string) (time.Duration, error) {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return 0, err
		}
		if d <= 0 {
			return 0, errors.New("must be > 0")
		}
		return d, nil
	})
}

func envInt(key string, fallback int) (int, error) {
	return parseEnv(key, fallback, func(raw string) (int, error) {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, err
		}
		if v <= 0 {
			return 0, errors.New("must be > 0")
		}
		return v, nil
	})
}

func envUint64(key string, fallback uint64) (uint64, error) {
	return parseEnv(key, fallback, func(raw string) (uint64, error) {
		return strconv.ParseUint(raw, 10, 64)
	})
}

func envUint32(key string, fallback uint32) (uint32, error) {
	return parseEnv(key, fallback, func(raw string) (uint32, error) {
		v, err := strconv.ParseUint(raw, 10, 32)
		return uint32(v), err
	})
}

func envOptionalUint(key string) (*uint, error) {
	return parseEnv(key, (*uint)(nil), func(raw string) (*uint, error) {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		out := uint(v)
		return &out, nil
	})
}

func envBool(key string, fallback bool) (bool, error) {
	return parseEnv(key, fallback, strconv.ParseBool)
}

func parseCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if value := strings.TrimSpace(part); value != "" {
			out = append(out, value)
		}
	}
	return out
}

func expandHomePath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/")), nil
}
