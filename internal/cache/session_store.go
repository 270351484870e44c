package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sanyamodi/arogya-sakhi-bot/internal/database"
)

// DefaultSessionTTL applies when no TTL is configured.
const DefaultSessionTTL = 24 * time.Hour

const keyPrefix = "arogya:session:"

type cachedSession struct {
	ChatID    int64     `json:"chat_id"`
	Language  string    `json:"language"`
	State     *string   `json:"state,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SessionStore wraps a database.Store and serves sessions from Redis.
// Writes go to SQL first and then refresh the cache. Redis failures are
// logged and fall through to SQL, which stays the source of truth.
type SessionStore struct {
	database.Store
	rdb *redis.Client
	ttl time.Duration
	log *slog.Logger
}

// NewSessionStore decorates store with a Redis session cache.
func NewSessionStore(store database.Store, rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionStore{
		Store: store,
		rdb:   rdb,
		ttl:   ttl,
		log:   logger.With("component", "session_cache"),
	}
}

func sessionKey(chatID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, chatID)
}

// GetSession returns the cached session, loading it from SQL on a miss.
func (s *SessionStore) GetSession(ctx context.Context, chatID int64) (*database.Session, error) {
	raw, err := s.rdb.Get(ctx, sessionKey(chatID)).Bytes()
	switch {
	case err == nil:
		var c cachedSession
		if err := json.Unmarshal(raw, &c); err == nil {
			return c.session(), nil
		}
		s.log.WarnContext(ctx, "Discarding undecodable cached session", "chat_id", chatID, "error", err)
	case errors.Is(err, redis.Nil):
	default:
		s.log.WarnContext(ctx, "Session cache read failed", "chat_id", chatID, "error", err)
	}

	session, err := s.Store.GetSession(ctx, chatID)
	if err != nil || session == nil {
		return session, err
	}
	s.put(ctx, session)
	return session, nil
}

// SaveSession writes the session to SQL and then to the cache.
func (s *SessionStore) SaveSession(ctx context.Context, session *database.Session) error {
	if err := s.Store.SaveSession(ctx, session); err != nil {
		s.evict(ctx, session)
		return err
	}
	s.put(ctx, session)
	return nil
}

func (s *SessionStore) put(ctx context.Context, session *database.Session) {
	raw, err := json.Marshal(fromSession(session))
	if err != nil {
		s.log.WarnContext(ctx, "Failed to encode session for cache", "chat_id", session.ChatID, "error", err)
		s.evict(ctx, session)
		return
	}
	if err := s.rdb.Set(ctx, sessionKey(session.ChatID), raw, s.ttl).Err(); err != nil {
		s.log.WarnContext(ctx, "Session cache write failed", "chat_id", session.ChatID, "error", err)
		s.evict(ctx, session)
	}
}

func (s *SessionStore) evict(ctx context.Context, session *database.Session) {
	if session == nil {
		return
	}
	if err := s.rdb.Del(ctx, sessionKey(session.ChatID)).Err(); err != nil {
		s.log.WarnContext(ctx, "Session cache eviction failed", "chat_id", session.ChatID, "error", err)
	}
}

func fromSession(s *database.Session) cachedSession {
	c := cachedSession{
		ChatID:    s.ChatID,
		Language:  s.Language,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.CurrentState.Valid {
		state := s.CurrentState.String
		c.State = &state
	}
	return c
}

func (c cachedSession) session() *database.Session {
	s := &database.Session{
		ChatID:    c.ChatID,
		Language:  c.Language,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.State != nil {
		s.CurrentState = sql.NullString{String: *c.State, Valid: true}
	}
	return s
}
