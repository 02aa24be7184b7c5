package discord

import (
	"context"
	"errors"

	"github.com/KirkDiggler/gamblebot/internal/models"
	"github.com/KirkDiggler/gamblebot/internal/services/game"
)

// GamblePlugin forwards command messages to the gamble game
type GamblePlugin struct {
	gameService game.Service
}

// NewGamblePlugin creates the plugin for the gamble game
func NewGamblePlugin(gameService game.Service) (*GamblePlugin, error) {
	if gameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	return &GamblePlugin{
		gameService: gameService,
	}, nil
}

// Name returns the plugin name
func (p *GamblePlugin) Name() string {
	return "gamble"
}

// HandleMessage passes the command to the game service
func (p *GamblePlugin) HandleMessage(ctx context.Context, msg *models.CommandMessage) error {
	return p.gameService.HandleCommand(ctx, &game.HandleCommandInput{
		Command: msg.Command,
		Args:    msg.Args,
		Author:  msg.Author,
		Channel: msg.Channel,
	})
}
