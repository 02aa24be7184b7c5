// Package config loads the bot configuration from an optional config.yaml,
// a .env file and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Ledger backends
const (
	LedgerBackendFile  = "file"
	LedgerBackendRedis = "redis"
)

// Config holds all application configuration.
type Config struct {
	Discord DiscordConfig `mapstructure:"discord"`
	Ledger  LedgerConfig  `mapstructure:"ledger"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Gamble  GambleConfig  `mapstructure:"gamble"`
	Log     LogConfig     `mapstructure:"log"`
}

// DiscordConfig holds Discord connection configuration.
type DiscordConfig struct {
	Token          string        `mapstructure:"token"`
	HandlerTimeout time.Duration `mapstructure:"handler_timeout"`
}

// LedgerConfig selects where the running totals are stored.
type LedgerConfig struct {
	Backend string `mapstructure:"backend"`
	Dir     string `mapstructure:"dir"`
}

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// GambleConfig holds the gamble game configuration.
type GambleConfig struct {
	GameName  string   `mapstructure:"game_name"`
	Starters  []string `mapstructure:"starters"`
	TrialMode bool     `mapstructure:"trial_mode"`
	MagicRoll bool     `mapstructure:"magic_roll"`
	Seed      int64    `mapstructure:"seed"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// Load reads configuration from file and environment variables.
// Environment variables use underscores, e.g. DISCORD_TOKEN, LEDGER_BACKEND,
// GAMBLE_STARTERS (comma separated).
func Load(configPath string) (*Config, error) {
	// A missing .env is fine, the environment may already be set
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Gamble.Starters = splitList(cfg.Gamble.Starters)

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("discord.token", "")
	v.SetDefault("discord.handler_timeout", "30s")

	v.SetDefault("ledger.backend", LedgerBackendFile)
	v.SetDefault("ledger.dir", "stats")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("gamble.game_name", "gamble")
	v.SetDefault("gamble.starters", []string{})
	v.SetDefault("gamble.trial_mode", false)
	v.SetDefault("gamble.magic_roll", false)
	v.SetDefault("gamble.seed", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)
}

// Validate checks the configuration needed to run the bot.
func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return errors.New("discord token is required (DISCORD_TOKEN)")
	}

	return c.ValidateLedger()
}

// ValidateLedger checks only the ledger settings, enough for offline commands.
func (c *Config) ValidateLedger() error {
	switch c.Ledger.Backend {
	case LedgerBackendFile:
		if c.Ledger.Dir == "" {
			return errors.New("ledger dir is required for the file backend")
		}
	case LedgerBackendRedis:
		if c.Redis.Addr == "" {
			return errors.New("redis addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown ledger backend %q", c.Ledger.Backend)
	}

	if c.Gamble.GameName == "" {
		return errors.New("gamble game name is required")
	}

	return nil
}

// splitList flattens comma separated values, which is how lists arrive from the environment.
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
