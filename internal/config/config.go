// Package config loads the navstack CLI configuration from YAML or TOML.
package config

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Config is the top-level CLI configuration.
type Config struct {
	Log   string      `yaml:"log" toml:"log" json:"log"`
	Store StoreConfig `yaml:"store" toml:"store" json:"store"`
	Serve ServeConfig `yaml:"serve" toml:"serve" json:"serve"`
	Demo  DemoConfig  `yaml:"demo" toml:"demo" json:"demo"`
}

// StoreConfig selects and configures the snapshot store.
type StoreConfig struct {
	Driver   string         `yaml:"driver" toml:"driver" json:"driver"`
	Dir      string         `yaml:"dir" toml:"dir" json:"dir"`
	Redis    RedisConfig    `yaml:"redis" toml:"redis" json:"redis"`
	Postgres PostgresConfig `yaml:"postgres" toml:"postgres" json:"postgres"`

	Encryption EncryptionConfig `yaml:"encryption" toml:"encryption" json:"-"`
}

// EncryptionConfig holds base64 encoded AES-256 keys. An empty Key leaves
// snapshots in plain JSON.
type EncryptionConfig struct {
	Key          string   `yaml:"key" toml:"key"`
	FallbackKeys []string `yaml:"fallback_keys" toml:"fallback_keys"`
}

// Enabled reports whether snapshots are encrypted.
func (e EncryptionConfig) Enabled() bool {
	return e.Key != ""
}

// Decode returns the raw active and fallback keys.
func (e EncryptionConfig) Decode() (active []byte, fallback [][]byte, err error) {
	active, err = decodeKey(e.Key)
	if err != nil {
		return nil, nil, fmt.Errorf("store.encryption.key: %w", err)
	}
	for i, k := range e.FallbackKeys {
		raw, err := decodeKey(k)
		if err != nil {
			return nil, nil, fmt.Errorf("store.encryption.fallback_keys[%d]: %w", i, err)
		}
		fallback = append(fallback, raw)
	}
	return active, fallback, nil
}

func decodeKey(s string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("key must decode to 32 bytes, got %d", len(raw))
	}
	return raw, nil
}

type RedisConfig struct {
	Addr     string        `yaml:"addr" toml:"addr" json:"addr"`
	Password string        `yaml:"password" toml:"password" json:"-"`
	DB       int           `yaml:"db" toml:"db" json:"db"`
	Prefix   string        `yaml:"prefix" toml:"prefix" json:"prefix"`
	TTL      time.Duration `yaml:"ttl" toml:"ttl" json:"ttl"`
}

type PostgresConfig struct {
	DSN   string `yaml:"dsn" toml:"dsn" json:"-"`
	Table string `yaml:"table" toml:"table" json:"table"`
}

// ServeConfig configures the HTTP inspector.
type ServeConfig struct {
	Port int `yaml:"port" toml:"port" json:"port"`
	// Redact lists regular expressions of screen argument keys masked by the inspector.
	Redact []string `yaml:"redact" toml:"redact" json:"redact"`
}

// DemoConfig configures the demo application.
type DemoConfig struct {
	IgnoreDuplicateTags bool          `yaml:"ignore_duplicate_tags" toml:"ignore_duplicate_tags" json:"ignore_duplicate_tags"`
	ResetAfter          time.Duration `yaml:"reset_after" toml:"reset_after" json:"reset_after"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log: "info",
		Store: StoreConfig{
			Driver: DriverFile,
			Dir:    filepath.Join(".navstack", "snapshots"),
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "navstack:snapshot:",
			},
			Postgres: PostgresConfig{
				Table: "navstack_snapshots",
			},
		},
		Serve: ServeConfig{Port: 8080},
		Demo: DemoConfig{
			ResetAfter: 3 * time.Second,
		},
	}
}

// Load reads path on top of Default. The format follows the extension:
// .toml for TOML, .json for JSON, YAML otherwise.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	return cfg, cfg.Validate()
}

// Validate checks the store driver and required connection settings.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverFile, DriverRedis:
	case DriverPostgres:
		if c.Store.Postgres.DSN == "" {
			return fmt.Errorf("store.postgres.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Store.Encryption.Enabled() {
		if _, _, err := c.Store.Encryption.Decode(); err != nil {
			return err
		}
	}
	return nil
}
