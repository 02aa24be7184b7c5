package main

import (
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/gamblebot/internal/config"
	"github.com/KirkDiggler/gamblebot/internal/repositories/ledger"
)

var (
	configPath string
	cfg        *config.Config
)

// newRootCmd creates the root command. Without a subcommand it runs the bot.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gamblebot",
		Short: "Discord bot for the gamble dice game",
		Long: `gamblebot runs the gamble dice game on Discord.

Players enter a pot with !enter, roll against a shared max with !roll and the
lowest roller owes the highest roller the difference. Running totals are kept
in a ledger stored on disk or in Redis.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded

			setupLogger(cmd.ErrOrStderr(), cfg.Log)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot(cmd.Context())
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Directory containing config.yaml")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func setupLogger(w io.Writer, logCfg config.LogConfig) {
	level, err := zerolog.ParseLevel(logCfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if logCfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
	} else {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	}
}

// newLedgerRepo builds the configured ledger backend. The returned func
// releases any connection it opened.
func newLedgerRepo(cfg *config.Config) (ledger.Repository, func(), error) {
	switch cfg.Ledger.Backend {
	case config.LedgerBackendRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		repo, err := ledger.NewRedis(&ledger.RedisConfig{
			RedisClient: redisClient,
		})
		if err != nil {
			_ = redisClient.Close()
			return nil, nil, fmt.Errorf("failed to create redis ledger repository: %w", err)
		}

		closeFn := func() {
			if err := redisClient.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close redis client")
			}
		}
		return repo, closeFn, nil

	case config.LedgerBackendFile:
		repo, err := ledger.NewFile(&ledger.FileConfig{
			Dir: cfg.Ledger.Dir,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create file ledger repository: %w", err)
		}
		return repo, func() {}, nil
	}

	return nil, nil, fmt.Errorf("unknown ledger backend %q", cfg.Ledger.Backend)
}
