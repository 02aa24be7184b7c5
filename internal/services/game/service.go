package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/gamblebot/internal/common/clock"
	"github.com/KirkDiggler/gamblebot/internal/common/uuid"
	"github.com/KirkDiggler/gamblebot/internal/dice"
	"github.com/KirkDiggler/gamblebot/internal/models"
	ledgerRepo "github.com/KirkDiggler/gamblebot/internal/repositories/ledger"
	"github.com/KirkDiggler/gamblebot/internal/services/messaging"
)

// service implements the Service interface
type service struct {
	gameName  string
	starters  []string
	trialMode bool
	magicRoll bool

	ledgerRepo    ledgerRepo.Repository
	messenger     Messenger
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID

	// mu guards current for the whole of every command, including ledger writes
	mu      sync.Mutex
	current *models.Game
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.LedgerRepo == nil {
		return nil, ErrNilLedgerRepo
	}

	if cfg.Messenger == nil {
		return nil, ErrNilMessenger
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	gameName := cfg.GameName
	if gameName == "" {
		gameName = DefaultGameName
	}

	return &service{
		gameName:      gameName,
		starters:      append([]string(nil), cfg.Starters...),
		trialMode:     cfg.TrialMode,
		magicRoll:     cfg.MagicRoll,
		ledgerRepo:    cfg.LedgerRepo,
		messenger:     cfg.Messenger,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// HandleCommand routes a parsed chat command to the matching game operation
func (s *service) HandleCommand(ctx context.Context, input *HandleCommandInput) error {
	if input == nil {
		return ErrNilInput
	}

	cmd, ok := ParseCommand(input.Command)
	if !ok {
		return nil
	}

	// Stats are independent of any game
	if cmd == CommandStats {
		return s.showStats(ctx, input)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil && s.current.ChannelID != input.Channel.ID {
		return s.send(ctx, input.Channel.ID, messaging.GameInProgress(s.current.ChannelID))
	}

	if s.current == nil && cmd != CommandStart {
		return nil
	}

	switch cmd {
	case CommandStart:
		return s.start(ctx, input)
	case CommandEnter:
		return s.enter(ctx, input)
	case CommandWithdraw:
		return s.withdraw(ctx, input)
	case CommandPlay:
		return s.play(ctx, input)
	case CommandRoll:
		return s.roll(ctx, input)
	case CommandCancel:
		return s.cancel(ctx, input)
	}

	return nil
}

// GetCurrentGame returns a snapshot of the active game
func (s *service) GetCurrentGame(ctx context.Context, input *GetCurrentGameInput) (*GetCurrentGameOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return &GetCurrentGameOutput{}, nil
	}

	snapshot := *s.current
	snapshot.Players = make([]*models.PlayerEntry, len(s.current.Players))
	for i, p := range s.current.Players {
		entry := *p
		snapshot.Players[i] = &entry
	}

	return &GetCurrentGameOutput{
		Game: &snapshot,
	}, nil
}

// GetStandings returns the running totals from the ledger
func (s *service) GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error) {
	output, err := s.ledgerRepo.GetLedger(ctx, &ledgerRepo.GetLedgerInput{
		GameName: s.gameName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	return &GetStandingsOutput{
		Entries: output.Ledger.Standings(),
	}, nil
}

func (s *service) showStats(ctx context.Context, input *HandleCommandInput) error {
	standings, err := s.GetStandings(ctx, &GetStandingsInput{})
	if err != nil {
		return err
	}

	entries := make([]messaging.StandingEntry, len(standings.Entries))
	for i, e := range standings.Entries {
		entries[i] = messaging.StandingEntry{
			PlayerID: e.ID,
			Score:    e.Score,
		}
	}

	return s.send(ctx, input.Channel.ID, messaging.RunningTotals(entries))
}

func (s *service) send(ctx context.Context, channelID, content string) error {
	if err := s.messenger.Send(ctx, channelID, content); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// resolve finishes the game once every entrant has rolled. The slot is
// cleared before the ledger write so a failed write cannot leave a game
// nobody can roll in.
func (s *service) resolve(ctx context.Context, g *models.Game) error {
	if !g.AllRolled() {
		return nil
	}

	loser, winner := selectExtremes(g.Players)
	payout := winner.Roll - loser.Roll

	s.current = nil

	logger := log.With().
		Str("game_id", g.ID).
		Str("loser_id", loser.PlayerID).
		Str("winner_id", winner.PlayerID).
		Int64("payout", payout).
		Logger()

	if g.MagicRollUsed {
		logger.Warn().Msg("magic roll used, result not recorded")
	} else {
		_, err := s.ledgerRepo.RecordResult(ctx, &ledgerRepo.RecordResultInput{
			GameName: s.gameName,
			Winner: ledgerRepo.Participant{
				ID:          winner.PlayerID,
				DisplayName: winner.DisplayName,
			},
			Loser: ledgerRepo.Participant{
				ID:          loser.PlayerID,
				DisplayName: loser.DisplayName,
			},
			Payout: payout,
		})
		if err != nil {
			return fmt.Errorf("%w: game %s, %s owes %s %d: %w",
				ErrLedgerUpdate, g.ID, loser.PlayerID, winner.PlayerID, payout, err)
		}
	}

	logger.Info().
		Dur("duration", s.clock.Now().Sub(g.CreatedAt)).
		Msg("game resolved")

	return s.send(ctx, g.ChannelID, messaging.Outcome(&messaging.OutcomeInput{
		LoserID:   loser.PlayerID,
		WinnerID:  winner.PlayerID,
		Payout:    payout,
		TrialMode: s.trialMode,
	}))
}
