package handlers

import (
	"context"
	"fmt"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewStatsHandler reports the aggregate usage counters to the operator.
func NewStatsHandler(deps HandlerDeps) tgbot.HandlerFunc {
	return statsHandler{deps}.Handle
}

type statsHandler struct {
	deps HandlerDeps
}

func (h statsHandler) Handle(ctx context.Context, _ *tgbot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	log := h.deps.Logger.With("handler", "stats", "chat_id", chatID)

	var text string
	stats, err := h.deps.Stats.Stats(ctx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to load stats", "error", err)
		text = "Failed to load statistics."
	} else {
		text = fmt.Sprintf("Users: %d\nComplete profiles: %d\nConsultations: %d\nDoctor referrals: %d",
			stats.TotalUsers, stats.CompleteProfiles, stats.Consultations, stats.Referrals)
	}

	if err := h.deps.Sender.Send(ctx, chatID, text, nil); err != nil {
		log.ErrorContext(ctx, "Failed to send stats", "error", err)
	}
}
