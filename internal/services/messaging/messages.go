package messaging

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/gamblebot/internal/common/format"
)

const trialBanner = `**While in test mode, all games are "for fun." The loser does not have to payout (in case there are bugs).**`

// AnnouncementInput describes a newly started game
type AnnouncementInput struct {
	MaxRoll      int64
	GameMasterID string
	TrialMode    bool
}

// Announcement is posted when a game starts
func Announcement(input *AnnouncementInput) string {
	lines := []string{
		fmt.Sprintf("@here **Let's gamble!** :moneybag: Playing for %s gold.", format.Number(input.MaxRoll)),
		"",
		"Type `!enter` to play, `!withdraw` to withdraw.",
		"",
		fmt.Sprintf("When everyone has entered, %s types `!play` to start the rolling.", Mention(input.GameMasterID)),
		"",
		"The person with the lowest roll will pay the person with the highest roll the difference of their two rolls.",
	}

	if input.TrialMode {
		lines = append(lines, "", trialBanner)
	}

	return strings.Join(lines, "\n")
}

// GameInProgress names the channel that owns the active game
func GameInProgress(channelID string) string {
	return fmt.Sprintf("A game is already on-going in %s", ChannelMention(channelID))
}

// NotAllowedToStart lists who may start games
func NotAllowedToStart(userID string, starterIDs []string) string {
	return fmt.Sprintf("%s only %s can start a game", Mention(userID), MentionList(starterIDs))
}

// ChannelRequired is sent when a game is started outside a named channel
func ChannelRequired() string {
	return "You must play this game in a channel"
}

// MaxRollRequired is sent when no max was given to start a game
func MaxRollRequired() string {
	return "You must specify the max amount to roll for, i.e. `!gamble 1000`"
}

// MaxRollNotInteger is sent when the max does not parse as an integer
func MaxRollNotInteger() string {
	return "The max amount must be an integer, i.e. `!gamble 1000`"
}

// MaxRollNotPositive is sent when the max is zero or negative
func MaxRollNotPositive() string {
	return "The max amount must be a positive integer, i.e. `!gamble 1000`"
}

// Entered confirms an entry
func Entered(userID string) string {
	return fmt.Sprintf("%s has entered", Mention(userID))
}

// CannotEnter is sent when entries are closed
func CannotEnter(userID string) string {
	return fmt.Sprintf("%s you can't enter, rolls have started", Mention(userID))
}

// Withdrawn confirms a withdrawal
func Withdrawn(userID string) string {
	return fmt.Sprintf("%s has withdrawn", Mention(userID))
}

// CannotWithdraw is sent when entries are closed
func CannotWithdraw(userID string) string {
	return fmt.Sprintf("%s you can't withdraw, rolls have started", Mention(userID))
}

// OnlyGameMasterCanPlay is sent when someone else tries to start the rolls
func OnlyGameMasterCanPlay(userID, gameMasterID string) string {
	return fmt.Sprintf("%s Only %s can start the roll.", Mention(userID), Mention(gameMasterID))
}

// StillNeedToRoll lists the players that have not rolled, in entry order
func StillNeedToRoll(userIDs []string) string {
	return fmt.Sprintf("Some people still need to roll:\n\n%s", MentionList(userIDs))
}

// NotEnoughPlayers is sent when the rolls are started too early
func NotEnoughPlayers(count int) string {
	return fmt.Sprintf("Must have at least 2 people enter, only %d have entered so far.", count)
}

// RollingStarted lists the players and how to roll. The max is left unformatted
// so it can be typed back as a command argument.
func RollingStarted(userIDs []string, maxRoll int64) string {
	return fmt.Sprintf("These are the people playing:\n\n%s\n\n**Type `!roll %s` to roll**",
		MentionList(userIDs), strconv.FormatInt(maxRoll, 10))
}

// RollNotStarted is sent when someone rolls before the game master starts the rolls
func RollNotStarted(userID, gameMasterID string) string {
	return fmt.Sprintf("%s you can't roll until %s types `!play`", Mention(userID), Mention(gameMasterID))
}

// NotInGame is sent when a player who never entered tries to roll
func NotInGame(userID string) string {
	return fmt.Sprintf("%s you are not in this game", Mention(userID))
}

// WrongMax is sent when a roll names a different max than the game
func WrongMax(userID string, maxRoll int64) string {
	return fmt.Sprintf("%s you must roll out of %s", Mention(userID), strconv.FormatInt(maxRoll, 10))
}

// AlreadyRolled echoes the recorded roll
func AlreadyRolled(userID string, roll int64) string {
	return fmt.Sprintf("%s you have already rolled a %s!", Mention(userID), format.Number(roll))
}

// Rolled announces a fresh roll
func Rolled(userID string, roll int64, criticalHit bool) string {
	msg := fmt.Sprintf("%s rolled a %s.", Mention(userID), format.Number(roll))
	if criticalHit {
		msg += " **It's a critical hit!**"
	}
	return msg
}

// OutcomeInput describes a resolved game
type OutcomeInput struct {
	LoserID   string
	WinnerID  string
	Payout    int64
	TrialMode bool
}

// Outcome announces who owes whom
func Outcome(input *OutcomeInput) string {
	owes := fmt.Sprintf("**%s owes %s %s gold.**", Mention(input.LoserID), Mention(input.WinnerID), format.Number(input.Payout))
	if input.TrialMode {
		return fmt.Sprintf("Everyone has rolled! ~~%s~~ No one pays out in test mode.", owes)
	}
	return fmt.Sprintf("Everyone has rolled! %s", owes)
}

// OnlyGameMasterCanCancel is sent when someone else tries to cancel
func OnlyGameMasterCanCancel(gameMasterID string) string {
	return fmt.Sprintf("Only %s can cancel the game.", Mention(gameMasterID))
}

// Cancelled confirms a cancellation
func Cancelled() string {
	return "Game cancelled."
}

// StandingEntry is one row of the running totals
type StandingEntry struct {
	PlayerID string
	Score    int64
}

// RunningTotals renders the ledger standings
func RunningTotals(entries []StandingEntry) string {
	if len(entries) == 0 {
		return "**Running Totals:**\n\nNo games have been played yet."
	}

	rows := make([]string, len(entries))
	for i, e := range entries {
		rows[i] = fmt.Sprintf("%s: %s", Mention(e.PlayerID), format.Number(e.Score))
	}
	return fmt.Sprintf("**Running Totals:**\n\n%s", strings.Join(rows, "\n"))
}
