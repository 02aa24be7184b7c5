package game

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/gamblebot/internal/models"
	"github.com/KirkDiggler/gamblebot/internal/services/messaging"
)

// start creates the game in the collecting phase
func (s *service) start(ctx context.Context, input *HandleCommandInput) error {
	channelID := input.Channel.ID

	if !s.isStarter(input.Author.ID) {
		return s.send(ctx, channelID, messaging.NotAllowedToStart(input.Author.ID, s.starters))
	}

	if s.current != nil {
		return s.send(ctx, channelID, messaging.GameInProgress(s.current.ChannelID))
	}

	if input.Channel.Name == "" {
		return s.send(ctx, channelID, messaging.ChannelRequired())
	}

	if len(input.Args) == 0 || input.Args[0] == "" {
		return s.send(ctx, channelID, messaging.MaxRollRequired())
	}

	maxRoll, err := strconv.ParseInt(input.Args[0], 10, 64)
	if err != nil {
		return s.send(ctx, channelID, messaging.MaxRollNotInteger())
	}

	if maxRoll < 1 {
		return s.send(ctx, channelID, messaging.MaxRollNotPositive())
	}

	game := &models.Game{
		ID:          s.uuidGenerator.NewUUID(),
		MaxRoll:     maxRoll,
		GameMaster:  input.Author,
		ChannelID:   channelID,
		ChannelName: input.Channel.Name,
		Phase:       models.GamePhaseCollecting,
		Players:     []*models.PlayerEntry{},
		CreatedAt:   s.clock.Now(),
	}
	s.current = game

	log.Info().
		Str("game_id", game.ID).
		Str("channel", game.ChannelName).
		Str("game_master_id", game.GameMaster.ID).
		Int64("max_roll", game.MaxRoll).
		Msg("game started")

	return s.send(ctx, channelID, messaging.Announcement(&messaging.AnnouncementInput{
		MaxRoll:      game.MaxRoll,
		GameMasterID: game.GameMaster.ID,
		TrialMode:    s.trialMode,
	}))
}

// enter adds the author to the game. Entering again keeps the original position.
func (s *service) enter(ctx context.Context, input *HandleCommandInput) error {
	g := s.current
	author := input.Author

	if !g.Phase.IsCollecting() {
		return s.send(ctx, g.ChannelID, messaging.CannotEnter(author.ID))
	}

	if existing := g.GetPlayer(author.ID); existing != nil {
		existing.DisplayName = author.DisplayName
		existing.Username = author.Username
	} else {
		g.Players = append(g.Players, &models.PlayerEntry{
			PlayerID:    author.ID,
			DisplayName: author.DisplayName,
			Username:    author.Username,
		})
	}

	return s.send(ctx, g.ChannelID, messaging.Entered(author.ID))
}

// withdraw removes the author from the game if they entered
func (s *service) withdraw(ctx context.Context, input *HandleCommandInput) error {
	g := s.current
	authorID := input.Author.ID

	if !g.Phase.IsCollecting() {
		return s.send(ctx, g.ChannelID, messaging.CannotWithdraw(authorID))
	}

	g.Players = slices.DeleteFunc(g.Players, func(p *models.PlayerEntry) bool {
		return p.PlayerID == authorID
	})

	return s.send(ctx, g.ChannelID, messaging.Withdrawn(authorID))
}

// play closes entries and starts the rolls. Once rolling it reports who still has to roll.
func (s *service) play(ctx context.Context, input *HandleCommandInput) error {
	g := s.current

	if input.Author.ID != g.GameMaster.ID {
		return s.send(ctx, g.ChannelID, messaging.OnlyGameMasterCanPlay(input.Author.ID, g.GameMaster.ID))
	}

	if g.Phase.IsRolling() {
		return s.send(ctx, g.ChannelID, messaging.StillNeedToRoll(playerIDs(g.PendingPlayers())))
	}

	if len(g.Players) < 2 {
		return s.send(ctx, g.ChannelID, messaging.NotEnoughPlayers(len(g.Players)))
	}

	g.Phase = models.GamePhaseRolling

	log.Info().
		Str("game_id", g.ID).
		Int("players", len(g.Players)).
		Msg("rolling started")

	return s.send(ctx, g.ChannelID, messaging.RollingStarted(playerIDs(g.Players), g.MaxRoll))
}

// roll records the author's one roll and resolves the game when everyone has rolled
func (s *service) roll(ctx context.Context, input *HandleCommandInput) error {
	g := s.current
	author := input.Author

	if !g.Phase.IsRolling() {
		return s.send(ctx, g.ChannelID, messaging.RollNotStarted(author.ID, g.GameMaster.ID))
	}

	player := g.GetPlayer(author.ID)
	if player == nil {
		return s.send(ctx, g.ChannelID, messaging.NotInGame(author.ID))
	}

	if len(input.Args) > 0 && input.Args[0] != "" {
		requested, err := strconv.ParseInt(input.Args[0], 10, 64)
		if err != nil || requested != g.MaxRoll {
			return s.send(ctx, g.ChannelID, messaging.WrongMax(author.ID, g.MaxRoll))
		}
	}

	if player.HasRolled() {
		return s.send(ctx, g.ChannelID, messaging.AlreadyRolled(author.ID, player.Roll))
	}

	value := s.diceRoller.Roll(g.MaxRoll)

	if s.magicRoll {
		if magic, ok := magicNumber(author.Username); ok && magic == g.MaxRoll {
			value = g.MaxRoll
			g.MagicRollUsed = true

			log.Warn().
				Str("game_id", g.ID).
				Str("player_id", author.ID).
				Msg("magic roll override applied")
		}
	}

	player.Roll = value

	sendErr := s.send(ctx, g.ChannelID, messaging.Rolled(author.ID, value, value == g.MaxRoll))

	return errors.Join(sendErr, s.resolve(ctx, g))
}

// cancel discards the game without touching the ledger
func (s *service) cancel(ctx context.Context, input *HandleCommandInput) error {
	g := s.current

	if input.Author.ID != g.GameMaster.ID {
		return s.send(ctx, g.ChannelID, messaging.OnlyGameMasterCanCancel(g.GameMaster.ID))
	}

	s.current = nil

	log.Info().
		Str("game_id", g.ID).
		Msg("game cancelled")

	return s.send(ctx, g.ChannelID, messaging.Cancelled())
}

func (s *service) isStarter(userID string) bool {
	// Empty list means anyone may start a game
	if len(s.starters) == 0 {
		return true
	}
	return slices.Contains(s.starters, userID)
}

// selectExtremes returns the lowest and highest rollers. Ties go to whoever
// entered first, independently for each end, so when every roll is equal the
// first entrant is both.
func selectExtremes(players []*models.PlayerEntry) (loser, winner *models.PlayerEntry) {
	for _, p := range players {
		if loser == nil || p.Roll < loser.Roll {
			loser = p
		}
		if winner == nil || p.Roll > winner.Roll {
			winner = p
		}
	}
	return loser, winner
}

// magicNumber concatenates the alphabet positions of a username's letters,
// e.g. "Volkner" is 22 15 12 11 14 5 18 = 2215121114518.
// Usernames without letters or whose number overflows have none.
func magicNumber(username string) (int64, bool) {
	var digits strings.Builder
	for _, r := range strings.ToLower(username) {
		if r >= 'a' && r <= 'z' {
			digits.WriteString(strconv.Itoa(int(r-'a') + 1))
		}
	}

	if digits.Len() == 0 {
		return 0, false
	}

	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}

	return n, true
}

func playerIDs(players []*models.PlayerEntry) []string {
	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = p.PlayerID
	}
	return ids
}
