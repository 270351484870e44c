package telegram_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/Sanyamodi/arogya-sakhi-bot/internal/i18n"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/telegram"
)

type fakeAPI struct {
	mu     sync.Mutex
	params []*bot.SendMessageParams
	err    error
}

func (f *fakeAPI) SendMessage(_ context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.params = append(f.params, params)
	return &models.Message{ID: len(f.params)}, nil
}

func TestSender_Send(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	s := telegram.NewSender(api, nil)

	kb := i18n.MainKeyboard(i18n.English)
	if err := s.Send(context.Background(), 42, "hello", kb); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if len(api.params) != 1 {
		t.Fatalf("SendMessage calls = %d, want 1", len(api.params))
	}
	p := api.params[0]
	if p.ChatID != int64(42) || p.Text != "hello" {
		t.Errorf("SendMessage params = %v/%q, want 42/%q", p.ChatID, p.Text, "hello")
	}
	if p.ParseMode != "" {
		t.Errorf("ParseMode = %q, want plain text", p.ParseMode)
	}
	markup, ok := p.ReplyMarkup.(*models.ReplyKeyboardMarkup)
	if !ok {
		t.Fatalf("ReplyMarkup = %T, want *models.ReplyKeyboardMarkup", p.ReplyMarkup)
	}
	if len(markup.Keyboard) != len(kb) || !markup.ResizeKeyboard {
		t.Errorf("keyboard rows = %d resize = %v, want %d true", len(markup.Keyboard), markup.ResizeKeyboard, len(kb))
	}
}

func TestSender_SendWithoutKeyboard(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	s := telegram.NewSender(api, nil)
	if err := s.Send(context.Background(), 1, "hi", nil); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if api.params[0].ReplyMarkup != nil {
		t.Errorf("ReplyMarkup = %v, want nil", api.params[0].ReplyMarkup)
	}
}

func TestSender_SendLongMessage(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	s := telegram.NewSender(api, nil)

	line := strings.Repeat("क", 99) + "\n"
	text := strings.Repeat(line, 100)
	if err := s.Send(context.Background(), 7, text, i18n.MainKeyboard(i18n.Hindi)); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if len(api.params) != 3 {
		t.Fatalf("SendMessage calls = %d, want 3", len(api.params))
	}
	for i, p := range api.params {
		if n := utf8.RuneCountInString(p.Text); n > telegram.MaxMessageRunes {
			t.Errorf("part %d has %d runes, want <= %d", i, n, telegram.MaxMessageRunes)
		}
		if last := i == len(api.params)-1; (p.ReplyMarkup != nil) != last {
			t.Errorf("part %d keyboard attached = %v, want %v", i, p.ReplyMarkup != nil, last)
		}
	}
}

func TestSender_SendErrors(t *testing.T) {
	t.Parallel()

	s := telegram.NewSender(&fakeAPI{}, nil)
	if err := s.Send(context.Background(), 1, "", nil); err == nil {
		t.Errorf("Send(empty) error = nil, want error")
	}

	apiErr := errors.New("forbidden: bot was blocked by the user")
	s = telegram.NewSender(&fakeAPI{err: apiErr}, nil)
	if err := s.Send(context.Background(), 1, "hi", nil); !errors.Is(err, apiErr) {
		t.Errorf("Send() error = %v, want wrapping %v", err, apiErr)
	}
}

func TestSplitMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{"short", "abc", 10, []string{"abc"}},
		{"exact", "abcde", 5, []string{"abcde"}},
		{"hard cut", "abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"newline cut", "ab\ncd\nef", 6, []string{"ab\ncd", "ef"}},
		{"runes", "नमस्ते", 3, []string{"नमस", "्ते"}},
		{"no limit", "abc", 0, []string{"abc"}},
		{"blank chunks dropped", "abc\n\n\n\n\ndef", 3, []string{"abc", "def"}},
		{"blank tail dropped", "abc\n\n\n\n", 3, []string{"abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := telegram.SplitMessage(tt.text, tt.limit)
			for _, part := range got {
				if strings.TrimSpace(part) == "" {
					t.Errorf("SplitMessage(%q, %d) produced a blank part", tt.text, tt.limit)
				}
			}
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("SplitMessage(%q, %d) = %q, want %q", tt.text, tt.limit, got, tt.want)
			}
		})
	}
}
