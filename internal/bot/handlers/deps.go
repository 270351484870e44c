package handlers

import (
	"context"
	"log/slog"

	"github.com/Sanyamodi/arogya-sakhi-bot/internal/config"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/database"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/dialogue"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/i18n"
)

// Dialogue processes one inbound text message for a chat.
type Dialogue interface {
	Handle(ctx context.Context, msg dialogue.Message)
}

// Sender delivers a plain-text reply.
type Sender interface {
	Send(ctx context.Context, chatID int64, text string, keyboard i18n.Keyboard) error
}

// StatsSource returns the aggregate counters shown to the operator.
type StatsSource interface {
	Stats(ctx context.Context) (*database.Stats, error)
}

// HandlerDeps provides dependencies for Telegram update handlers.
type HandlerDeps struct {
	Logger   *slog.Logger
	Config   *config.Config
	Dialogue Dialogue
	Sender   Sender
	Stats    StatsSource
}
