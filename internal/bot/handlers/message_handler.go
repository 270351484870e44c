package handlers

import (
	"context"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/Sanyamodi/arogya-sakhi-bot/internal/dialogue"
)

// NewMessageHandler forwards every text message, commands included, to the
// dialogue engine.
func NewMessageHandler(deps HandlerDeps) tgbot.HandlerFunc {
	return messageHandler{deps}.Handle
}

type messageHandler struct {
	deps HandlerDeps
}

func (h messageHandler) Handle(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.Text == "" {
		return
	}
	log := h.deps.Logger.With("handler", "message", "chat_id", msg.Chat.ID)

	if b != nil {
		if _, err := b.SendChatAction(ctx, &tgbot.SendChatActionParams{
			ChatID: msg.Chat.ID,
			Action: models.ChatActionTyping,
		}); err != nil {
			log.WarnContext(ctx, "Failed to send typing action", "error", err)
		}
	}

	in := dialogue.Message{ChatID: msg.Chat.ID, Text: msg.Text}
	if msg.From != nil {
		in.SenderName = msg.From.FirstName
	}
	h.deps.Dialogue.Handle(ctx, in)
}
