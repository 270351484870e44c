package dialogue_test

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Sanyamodi/arogya-sakhi-bot/internal/database"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/dialogue"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/i18n"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/recommend"
)

type memStore struct {
	mu            sync.Mutex
	sessions      map[int64]*database.Session
	profiles      map[int64]*database.Profile
	consultations []*database.Consultation

	saveProfileErr error
	getSessionErr  error
}

func newMemStore() *memStore {
	return &memStore{
		sessions: make(map[int64]*database.Session),
		profiles: make(map[int64]*database.Profile),
	}
}

func (s *memStore) GetSession(_ context.Context, chatID int64) (*database.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getSessionErr != nil {
		return nil, s.getSessionErr
	}
	sess, ok := s.sessions[chatID]
	if !ok {
		return nil, nil
	}
	c := *sess
	return &c, nil
}

func (s *memStore) SaveSession(ctx context.Context, session *database.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	session.UpdatedAt = time.Now().UTC()
	c := *session
	s.sessions[session.ChatID] = &c
	return nil
}

func (s *memStore) ListStaleSessions(_ context.Context, cutoff time.Time) ([]*database.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*database.Session
	for _, sess := range s.sessions {
		if sess.CurrentState.Valid && sess.UpdatedAt.Before(cutoff) {
			c := *sess
			out = append(out, &c)
		}
	}
	return out, nil
}

func (s *memStore) GetProfile(_ context.Context, chatID int64) (*database.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[chatID]
	if !ok {
		return nil, nil
	}
	return p.Clone(), nil
}

func (s *memStore) SaveProfile(_ context.Context, p *database.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveProfileErr != nil {
		return s.saveProfileErr
	}
	s.profiles[p.ChatID] = p.Clone()
	return nil
}

func (s *memStore) SaveConsultation(_ context.Context, c *database.Consultation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = fmt.Sprintf("c-%d", len(s.consultations)+1)
	c.CreatedAt = time.Now().UTC()
	s.consultations = append(s.consultations, c)
	return nil
}

func (s *memStore) ListConsultations(_ context.Context, chatID int64, limit int) ([]*database.Consultation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*database.Consultation
	for i := len(s.consultations) - 1; i >= 0 && len(out) < limit; i-- {
		if s.consultations[i].ChatID == chatID {
			out = append(out, s.consultations[i])
		}
	}
	return out, nil
}

func (s *memStore) state(t *testing.T, chatID int64) dialogue.State {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[chatID]
	if !ok {
		return dialogue.Idle
	}
	st, err := dialogue.ParseState(sess.CurrentState)
	if err != nil {
		t.Fatalf("stored state: %v", err)
	}
	return st
}

func (s *memStore) setSession(chatID int64, lang string, state sql.NullString, updated time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = &database.Session{ChatID: chatID, Language: lang, CurrentState: state, UpdatedAt: updated}
}

func (s *memStore) profile(chatID int64) *database.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profiles[chatID].Clone()
}

func (s *memStore) consultationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.consultations)
}

type sent struct {
	chatID   int64
	text     string
	keyboard i18n.Keyboard
}

type recordingSender struct {
	mu   sync.Mutex
	msgs []sent
}

func (r *recordingSender) Send(ctx context.Context, chatID int64, text string, keyboard i18n.Keyboard) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, sent{chatID: chatID, text: text, keyboard: keyboard})
	return nil
}

// take returns and clears the recorded messages.
func (r *recordingSender) take() []sent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.msgs
	r.msgs = nil
	return out
}

type stubRecommender struct {
	mu      sync.Mutex
	outcome recommend.Outcome
	calls   int
	block   chan struct{}
	started chan struct{}
}

func (s *stubRecommender) Recommend(context.Context, int64, string, *database.Profile, string) recommend.Outcome {
	s.mu.Lock()
	s.calls++
	out := s.outcome
	block, started := s.block, s.started
	s.mu.Unlock()

	if started != nil {
		close(started)
	}
	if block != nil {
		<-block
	}
	return out
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func completeProfile(chatID int64) *database.Profile {
	p := &database.Profile{
		ChatID:    chatID,
		FirstName: "Asha",
		Age:       intPtr(30),
		Gender:    database.GenderFemale,
		Weight:    floatPtr(65.5),
		Height:    floatPtr(165),
	}
	p.RecomputeStatus()
	return p
}

type harness struct {
	store  *memStore
	sender *recordingSender
	rec    *stubRecommender
	engine *dialogue.Engine
}

func newHarness() *harness {
	h := &harness{
		store:  newMemStore(),
		sender: &recordingSender{},
		rec:    &stubRecommender{},
	}
	h.engine = dialogue.NewEngine(h.store, h.sender, h.rec, dialogue.Config{HistoryLimit: 5}, nil)
	return h
}

// say handles text for chatID and returns the replies it produced.
func (h *harness) say(chatID int64, text string) []sent {
	h.engine.Handle(context.Background(), dialogue.Message{ChatID: chatID, Text: text, SenderName: "Asha"})
	return h.sender.take()
}

func texts(msgs []sent) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.text
	}
	return out
}
