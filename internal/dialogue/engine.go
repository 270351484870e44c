// Package dialogue implements the per-chat conversation state machine that
// collects health profiles and runs symptom consultations.
package dialogue

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/Sanyamodi/arogya-sakhi-bot/internal/database"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/i18n"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/recommend"
)

const defaultHistoryLimit = 5

// Sender delivers an outbound message. A nil keyboard leaves the chat's
// current keyboard unchanged.
type Sender interface {
	Send(ctx context.Context, chatID int64, text string, keyboard i18n.Keyboard) error
}

// Store is the persistence the engine needs. Getters return nil, nil for
// unknown chats.
type Store interface {
	GetSession(ctx context.Context, chatID int64) (*database.Session, error)
	SaveSession(ctx context.Context, session *database.Session) error
	ListStaleSessions(ctx context.Context, cutoff time.Time) ([]*database.Session, error)
	GetProfile(ctx context.Context, chatID int64) (*database.Profile, error)
	SaveProfile(ctx context.Context, profile *database.Profile) error
	ListConsultations(ctx context.Context, chatID int64, limit int) ([]*database.Consultation, error)
}

// Recommender produces consultation advice.
type Recommender interface {
	Recommend(ctx context.Context, chatID int64, symptoms string, profile *database.Profile, lang string) recommend.Outcome
}

// Message is one inbound text message.
type Message struct {
	ChatID     int64
	Text       string
	SenderName string
}

// Config tunes the engine.
type Config struct {
	// HistoryLimit caps the consultations listed by the history action.
	HistoryLimit int
}

// Engine routes inbound messages through global commands and the per-state
// handlers. Messages of one chat are processed one at a time; different
// chats run concurrently.
type Engine struct {
	store       Store
	sender      Sender
	recommender Recommender
	log         *slog.Logger
	cfg         Config

	locks    *chatLocks
	handlers map[State]func(*turn)

	// Profile edit buffers. An entry is read or written only while the
	// owning chat's lock is held; bufMu guards the map itself.
	bufMu   sync.Mutex
	buffers map[int64]*database.Profile
}

// NewEngine creates an Engine.
func NewEngine(store Store, sender Sender, recommender Recommender, cfg Config, log *slog.Logger) *Engine {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = defaultHistoryLimit
	}
	if log == nil {
		log = slog.Default()
	}
	e := &Engine{
		store:       store,
		sender:      sender,
		recommender: recommender,
		log:         log.With("component", "dialogue"),
		cfg:         cfg,
		locks:       newChatLocks(),
		buffers:     make(map[int64]*database.Profile),
	}
	e.handlers = map[State]func(*turn){
		AwaitingSymptoms:        e.handleSymptoms,
		ProfileName:             e.handleName,
		ProfileAge:              e.handleAge,
		ProfileGender:           e.handleGender,
		ProfileWeight:           e.handleWeight,
		ProfileHeight:           e.handleHeight,
		ProfileBloodGroup:       e.handleBloodGroup,
		ProfileAllergies:        e.handleAllergies,
		ProfileDiseases:         e.handleDiseases,
		ProfileMedications:      e.handleMedications,
		ProfileEmergencyContact: e.handleEmergencyContact,
	}
	return e
}

// turn is the context of one inbound message.
type turn struct {
	ctx     context.Context
	chatID  int64
	text    string
	name    string
	session *database.Session
	log     *slog.Logger
}

func (t *turn) lang() string {
	return t.session.Language
}

// Handle processes one inbound message. Failures are logged and, where the
// user needs to know, reported as localized text; Handle never panics.
func (e *Engine) Handle(ctx context.Context, msg Message) {
	unlock := e.locks.lock(msg.ChatID)
	defer unlock()

	log := e.log.With("chat_id", msg.ChatID)
	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "Recovered from panic while handling message",
				"panic", r, "stack", string(debug.Stack()))
		}
	}()

	t := &turn{
		ctx:    ctx,
		chatID: msg.ChatID,
		text:   strings.TrimSpace(msg.Text),
		name:   strings.TrimSpace(msg.SenderName),
		log:    log,
	}
	t.session = e.loadSession(t)

	if e.handleGlobal(t) {
		return
	}

	state, err := ParseState(t.session.CurrentState)
	if err != nil {
		log.ErrorContext(ctx, "Resetting unreadable dialogue state", "error", err)
		e.dropBuffer(t.chatID)
		e.setState(t, Idle)
		e.reply(t, i18n.Text(t.lang(), i18n.KeyIdleFallback), i18n.MainKeyboard(t.lang()))
		return
	}

	if state == Idle {
		e.reply(t, i18n.Text(t.lang(), i18n.KeyIdleFallback), nil)
		return
	}

	handler, ok := e.handlers[state]
	if !ok {
		log.ErrorContext(ctx, "No handler for dialogue state", "state", state)
		e.setState(t, Idle)
		e.reply(t, i18n.Text(t.lang(), i18n.KeyIdleFallback), i18n.MainKeyboard(t.lang()))
		return
	}
	handler(t)
}

// ExpireStaleFlows returns chats whose flow has not advanced for olderThan
// to Idle and drops their edit buffers. It reports how many were reset.
func (e *Engine) ExpireStaleFlows(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	stale, err := e.store.ListStaleSessions(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to list stale sessions: %w", err)
	}

	reset := 0
	for _, s := range stale {
		if err := ctx.Err(); err != nil {
			return reset, err
		}
		ok, err := e.expireFlow(ctx, s.ChatID, cutoff)
		if err != nil {
			e.log.WarnContext(ctx, "Failed to expire stale flow", "chat_id", s.ChatID, "error", err)
			continue
		}
		if ok {
			reset++
		}
	}

	if reset > 0 {
		e.log.InfoContext(ctx, "Expired stale dialogue flows", "count", reset, "older_than", olderThan)
	}
	return reset, nil
}

func (e *Engine) expireFlow(ctx context.Context, chatID int64, cutoff time.Time) (bool, error) {
	unlock := e.locks.lock(chatID)
	defer unlock()

	// Re-read under the lock: the chat may have moved on since the listing.
	session, err := e.store.GetSession(ctx, chatID)
	if err != nil {
		return false, err
	}
	if session == nil || !session.CurrentState.Valid || !session.UpdatedAt.Before(cutoff) {
		return false, nil
	}

	session.CurrentState = Idle.Persisted()
	if err := e.store.SaveSession(ctx, session); err != nil {
		return false, err
	}
	e.dropBuffer(chatID)
	return true, nil
}

func (e *Engine) loadSession(t *turn) *database.Session {
	session, err := e.store.GetSession(t.ctx, t.chatID)
	if err != nil {
		t.log.ErrorContext(t.ctx, "Failed to load session, using defaults", "error", err)
		return database.NewSession(t.chatID)
	}
	if session == nil {
		return database.NewSession(t.chatID)
	}
	if !i18n.Supported(session.Language) {
		session.Language = database.DefaultLanguage
	}
	return session
}

func (e *Engine) saveSession(t *turn) {
	if err := e.store.SaveSession(t.ctx, t.session); err != nil {
		t.log.ErrorContext(t.ctx, "Failed to save session", "error", err)
	}
}

func (e *Engine) setState(t *turn, s State) {
	t.session.CurrentState = s.Persisted()
	e.saveSession(t)
}

func (e *Engine) loadProfile(t *turn) *database.Profile {
	profile, err := e.store.GetProfile(t.ctx, t.chatID)
	if err != nil {
		t.log.ErrorContext(t.ctx, "Failed to load profile, using an empty one", "error", err)
		return database.NewProfile(t.chatID)
	}
	if profile == nil {
		return database.NewProfile(t.chatID)
	}
	return profile
}

func (e *Engine) reply(t *turn, text string, keyboard i18n.Keyboard) {
	if err := e.sender.Send(t.ctx, t.chatID, text, keyboard); err != nil {
		t.log.ErrorContext(t.ctx, "Failed to send message", "error", err)
	}
}

func (e *Engine) buffer(chatID int64) *database.Profile {
	e.bufMu.Lock()
	defer e.bufMu.Unlock()
	return e.buffers[chatID]
}

func (e *Engine) setBuffer(chatID int64, p *database.Profile) {
	e.bufMu.Lock()
	defer e.bufMu.Unlock()
	e.buffers[chatID] = p
}

func (e *Engine) dropBuffer(chatID int64) {
	e.bufMu.Lock()
	defer e.bufMu.Unlock()
	delete(e.buffers, chatID)
}

// PendingEdits returns the number of chats with an open profile edit.
func (e *Engine) PendingEdits() int {
	e.bufMu.Lock()
	defer e.bufMu.Unlock()
	return len(e.buffers)
}
