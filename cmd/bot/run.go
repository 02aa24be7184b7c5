package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/gamblebot/internal/common/clock"
	"github.com/KirkDiggler/gamblebot/internal/common/uuid"
	"github.com/KirkDiggler/gamblebot/internal/dice"
	"github.com/KirkDiggler/gamblebot/internal/handlers/discord"
	"github.com/KirkDiggler/gamblebot/internal/services/game"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Connect to Discord and run the bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot(cmd.Context())
		},
	}
}

func runBot(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	ledgerRepo, closeLedger, err := newLedgerRepo(cfg)
	if err != nil {
		return err
	}
	defer closeLedger()

	session, err := discord.NewSession(cfg.Discord.Token)
	if err != nil {
		return err
	}

	messenger, err := discord.NewChannelMessenger(session)
	if err != nil {
		return err
	}

	gameSvc, err := game.New(&game.Config{
		GameName:      cfg.Gamble.GameName,
		Starters:      cfg.Gamble.Starters,
		TrialMode:     cfg.Gamble.TrialMode,
		MagicRoll:     cfg.Gamble.MagicRoll,
		LedgerRepo:    ledgerRepo,
		Messenger:     messenger,
		DiceRoller:    dice.New(&dice.Config{Seed: cfg.Gamble.Seed}),
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	gamblePlugin, err := discord.NewGamblePlugin(gameSvc)
	if err != nil {
		return err
	}

	bot, err := discord.New(&discord.Config{
		Session:        session,
		Messenger:      messenger,
		Plugins:        []discord.Plugin{gamblePlugin},
		HandlerTimeout: cfg.Discord.HandlerTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord bot: %w", err)
	}

	if err := bot.Start(); err != nil {
		return err
	}

	log.Info().
		Str("ledger_backend", cfg.Ledger.Backend).
		Str("game_name", cfg.Gamble.GameName).
		Bool("trial_mode", cfg.Gamble.TrialMode).
		Msg("Bot is now running. Press CTRL-C to exit.")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()
	<-ctx.Done()

	if err := bot.Stop(); err != nil {
		log.Error().Err(err).Msg("error stopping bot")
	}

	log.Info().Msg("Bot has been shut down")
	return nil
}
