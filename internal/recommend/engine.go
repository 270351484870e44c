package recommend

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Sanyamodi/arogya-sakhi-bot/internal/ai"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/database"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/i18n"
)

// Failure reasons embedded in the localized error message.
const (
	ReasonNoAPIKey     = "API key not configured"
	ReasonNoSymptoms   = "No symptoms provided"
	ReasonTimeout      = "Request timed out"
	ReasonCancelled    = "Request cancelled"
	ReasonUnavailable  = "Service unavailable"
	defaultCallTimeout = 30 * time.Second
)

// Kind tags the result of a recommendation attempt.
type Kind int

const (
	// KindAdvice carries normalized advice and has been logged as a consultation.
	KindAdvice Kind = iota
	// KindBlocked means the backend's safety filter withheld the answer.
	KindBlocked
	// KindFailed covers configuration, input, transport and parse failures.
	KindFailed
)

func (k Kind) String() string {
	switch k {
	case KindAdvice:
		return "advice"
	case KindBlocked:
		return "blocked"
	case KindFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the user-facing result of Recommend. Text is always localized
// and ready to send.
type Outcome struct {
	Kind           Kind
	Text           string
	Referral       bool
	Severity       string
	Reason         string
	ConsultationID string
}

// ConsultationWriter appends consultation records.
type ConsultationWriter interface {
	SaveConsultation(ctx context.Context, c *database.Consultation) error
}

// Engine produces recommendations. A nil client is valid and yields a
// configuration error for every request.
type Engine struct {
	client  ai.Client
	store   ConsultationWriter
	params  ai.GenerationParams
	timeout time.Duration
	log     *slog.Logger
}

// NewEngine creates an Engine. A non-positive timeout selects 30 seconds.
func NewEngine(client ai.Client, store ConsultationWriter, params ai.GenerationParams, timeout time.Duration, log *slog.Logger) *Engine {
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		client:  client,
		store:   store,
		params:  params,
		timeout: timeout,
		log:     log.With("component", "recommend"),
	}
}

type completion struct {
	resp *ai.Response
	err  error
}

// Recommend asks the backend for advice on symptoms. It never returns an
// error: every failure is mapped to a localized Outcome. Only KindAdvice
// outcomes are persisted, and a persistence failure does not change the
// outcome.
func (e *Engine) Recommend(ctx context.Context, chatID int64, symptoms string, profile *database.Profile, lang string) Outcome {
	log := e.log.With("chat_id", chatID, "language", lang)

	if e.client == nil {
		log.ErrorContext(ctx, "Completion backend not configured")
		return failed(lang, ReasonNoAPIKey)
	}
	symptoms = strings.TrimSpace(symptoms)
	if symptoms == "" {
		return failed(lang, ReasonNoSymptoms)
	}

	req := ai.Request{Prompt: BuildPrompt(symptoms, profile, lang), Params: e.params}
	log.DebugContext(ctx, "Requesting recommendation", "prompt_len", len(req.Prompt))

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	done := make(chan completion, 1)
	go func() {
		resp, err := e.client.Complete(callCtx, req)
		done <- completion{resp: resp, err: err}
	}()

	var res completion
	select {
	case res = <-done:
	case <-callCtx.Done():
		res.err = callCtx.Err()
	}

	switch {
	case res.err == nil && res.resp != nil:
	case errors.Is(res.err, ai.ErrBlocked):
		log.WarnContext(ctx, "Recommendation blocked by safety filter")
		return Outcome{Kind: KindBlocked, Text: i18n.Text(lang, i18n.KeySafetyBlocked), Reason: res.err.Error()}
	case res.err == nil, errors.Is(res.err, ai.ErrEmptyResponse):
		log.WarnContext(ctx, "Recommendation response had no usable content")
		return Outcome{Kind: KindFailed, Text: i18n.Text(lang, i18n.KeyAIUnparseable), Reason: "empty response"}
	case errors.Is(res.err, context.DeadlineExceeded):
		log.ErrorContext(ctx, "Recommendation timed out", "timeout", e.timeout)
		return failed(lang, ReasonTimeout)
	case errors.Is(res.err, context.Canceled):
		log.WarnContext(ctx, "Recommendation cancelled")
		return failed(lang, ReasonCancelled)
	default:
		log.ErrorContext(ctx, "Recommendation request failed", "error", res.err)
		return failed(lang, ReasonUnavailable)
	}

	text := Normalize(res.resp.Text)
	if text == "" {
		log.WarnContext(ctx, "Recommendation empty after normalization")
		return Outcome{Kind: KindFailed, Text: i18n.Text(lang, i18n.KeyAIUnparseable), Reason: "empty response"}
	}

	out := Outcome{
		Kind:     KindAdvice,
		Text:     text,
		Referral: ClassifyReferral(text),
		Severity: ExtractSeverity(text),
	}

	record := &database.Consultation{
		ChatID:            chatID,
		Language:          lang,
		Symptoms:          symptoms,
		Recommendation:    text,
		Severity:          out.Severity,
		DoctorRecommended: out.Referral,
	}
	if e.store != nil {
		if err := e.store.SaveConsultation(ctx, record); err != nil {
			log.ErrorContext(ctx, "Failed to save consultation", "error", err)
		} else {
			out.ConsultationID = record.ID
		}
	}

	log.InfoContext(ctx, "Recommendation delivered",
		"referral", out.Referral,
		"severity", out.Severity,
		"finish_reason", res.resp.FinishReason)
	return out
}

func failed(lang, reason string) Outcome {
	return Outcome{Kind: KindFailed, Text: i18n.Format(lang, i18n.KeyAIError, reason), Reason: reason}
}
