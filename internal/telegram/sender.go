package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/Sanyamodi/arogya-sakhi-bot/internal/i18n"
)

const (
	sendMessageTimeout = 10 * time.Second

	// MaxMessageRunes is the Telegram limit for one text message.
	MaxMessageRunes = 4096
)

// MessageAPI is the subset of *bot.Bot used to deliver messages.
type MessageAPI interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// Sender delivers plain-text messages with optional reply keyboards.
type Sender struct {
	api MessageAPI
	log *slog.Logger
}

// NewSender creates a Sender on top of api, usually a *bot.Bot.
func NewSender(api MessageAPI, logger *slog.Logger) *Sender {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sender{api: api, log: logger.With("component", "telegram_sender")}
}

// Send delivers text to chatID. Text longer than MaxMessageRunes is split
// on line boundaries and the keyboard is attached to the last part.
func (s *Sender) Send(ctx context.Context, chatID int64, text string, keyboard i18n.Keyboard) error {
	if text == "" {
		return fmt.Errorf("refusing to send empty message to chat %d", chatID)
	}

	parts := SplitMessage(text, MaxMessageRunes)
	if len(parts) == 0 {
		return fmt.Errorf("refusing to send blank message to chat %d", chatID)
	}
	for i, part := range parts {
		params := &bot.SendMessageParams{ChatID: chatID, Text: part}
		if i == len(parts)-1 && keyboard != nil {
			params.ReplyMarkup = ReplyKeyboard(keyboard)
		}

		sendCtx, cancel := context.WithTimeout(ctx, sendMessageTimeout)
		sent, err := s.api.SendMessage(sendCtx, params)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to send message to chat %d: %w", chatID, err)
		}
		if sent != nil {
			s.log.DebugContext(ctx, "Sent message", "chat_id", chatID, "message_id", sent.ID, "part", i+1, "parts", len(parts))
		}
	}
	return nil
}

// ReplyKeyboard converts a caption grid into a resizable reply keyboard.
func ReplyKeyboard(kb i18n.Keyboard) *models.ReplyKeyboardMarkup {
	rows := make([][]models.KeyboardButton, 0, len(kb))
	for _, captions := range kb {
		row := make([]models.KeyboardButton, 0, len(captions))
		for _, c := range captions {
			row = append(row, models.KeyboardButton{Text: c})
		}
		rows = append(rows, row)
	}
	return &models.ReplyKeyboardMarkup{Keyboard: rows, ResizeKeyboard: true}
}

// SplitMessage breaks text into chunks of at most limit runes, preferring
// to cut after a newline. Blank chunks are dropped.
func SplitMessage(text string, limit int) []string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var parts []string
	runes := []rune(text)
	for len(runes) > limit {
		cut := limit
		if i := lastIndexRune(runes[:limit], '\n'); i > 0 {
			cut = i + 1
		}
		if part := strings.TrimRight(string(runes[:cut]), "\n"); strings.TrimSpace(part) != "" {
			parts = append(parts, part)
		}
		runes = runes[cut:]
	}
	if rest := string(runes); strings.TrimSpace(rest) != "" {
		parts = append(parts, rest)
	}
	return parts
}

func lastIndexRune(rs []rune, r rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i] == r {
			return i
		}
	}
	return -1
}
