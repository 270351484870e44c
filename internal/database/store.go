package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Store defines the persistence operations used by the bot.
// Getters return nil, nil when the requested row does not exist.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// GetSession returns the session of a chat.
	GetSession(ctx context.Context, chatID int64) (*Session, error)

	// SaveSession inserts or replaces the session of a chat.
	SaveSession(ctx context.Context, session *Session) error

	// ListStaleSessions returns sessions in a non-idle state last updated before cutoff.
	ListStaleSessions(ctx context.Context, cutoff time.Time) ([]*Session, error)

	// GetProfile returns the profile of a chat.
	GetProfile(ctx context.Context, chatID int64) (*Profile, error)

	// SaveProfile validates and inserts or replaces the profile of a chat.
	SaveProfile(ctx context.Context, profile *Profile) error

	// SaveConsultation appends a consultation record.
	SaveConsultation(ctx context.Context, consultation *Consultation) error

	// ListConsultations returns up to limit consultations of a chat, newest first.
	ListConsultations(ctx context.Context, chatID int64, limit int) ([]*Consultation, error)

	// Stats returns aggregate counters.
	Stats(ctx context.Context) (*Stats, error)

	// RunSQLMaintenance performs database maintenance (VACUUM).
	RunSQLMaintenance(ctx context.Context) error
}

type sqlxStore struct {
	db       *sqlx.DB
	logger   *slog.Logger
	validate *validator.Validate
}

// NewStore creates a Store backed by sqlx.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:       db,
		logger:   logger.With("component", "store"),
		validate: validator.New(),
	}
}

func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlxStore) GetSession(ctx context.Context, chatID int64) (*Session, error) {
	if chatID == 0 {
		return nil, fmt.Errorf("chat_id cannot be zero")
	}

	var session Session
	query := `SELECT chat_id, language, current_state, created_at, updated_at
	          FROM user_sessions WHERE chat_id = ?`

	err := s.db.GetContext(ctx, &session, query, chatID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		s.logger.ErrorContext(ctx, "Error getting session", "chat_id", chatID, "error", err)
		return nil, fmt.Errorf("failed to get session for chat %d: %w", chatID, err)
	}
	return &session, nil
}

func (s *sqlxStore) SaveSession(ctx context.Context, session *Session) error {
	if session == nil {
		return fmt.Errorf("cannot save nil session")
	}
	if session.ChatID == 0 {
		return fmt.Errorf("session must have a non-zero chat_id")
	}
	if session.Language == "" {
		session.Language = DefaultLanguage
	}

	now := time.Now().UTC()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now

	query := `
        INSERT INTO user_sessions (chat_id, language, current_state, created_at, updated_at)
        VALUES (:chat_id, :language, :current_state, :created_at, :updated_at)
        ON CONFLICT(chat_id) DO UPDATE SET
            language = excluded.language,
            current_state = excluded.current_state,
            updated_at = excluded.updated_at;
    `
	if _, err := s.db.NamedExecContext(ctx, query, session); err != nil {
		s.logger.ErrorContext(ctx, "Error saving session", "chat_id", session.ChatID, "error", err)
		return fmt.Errorf("failed to save session for chat %d: %w", session.ChatID, err)
	}

	s.logger.DebugContext(ctx, "Session saved", "chat_id", session.ChatID,
		"language", session.Language, "state", session.CurrentState.String)
	return nil
}

func (s *sqlxStore) ListStaleSessions(ctx context.Context, cutoff time.Time) ([]*Session, error) {
	var sessions []*Session
	query := `SELECT chat_id, language, current_state, created_at, updated_at
	          FROM user_sessions WHERE current_state IS NOT NULL`

	if err := s.db.SelectContext(ctx, &sessions, query); err != nil {
		s.logger.ErrorContext(ctx, "Error listing active sessions", "error", err)
		return nil, fmt.Errorf("failed to list active sessions: %w", err)
	}

	stale := sessions[:0]
	for _, session := range sessions {
		if session.UpdatedAt.Before(cutoff) {
			stale = append(stale, session)
		}
	}
	return stale, nil
}

func (s *sqlxStore) GetProfile(ctx context.Context, chatID int64) (*Profile, error) {
	if chatID == 0 {
		return nil, fmt.Errorf("chat_id cannot be zero")
	}

	var profile Profile
	query := `SELECT chat_id, first_name, last_name, age, gender, weight, height, blood_group,
	                 allergies, previous_diseases, current_medications, emergency_contact,
	                 status, created_at, updated_at
	          FROM user_profiles WHERE chat_id = ?`

	err := s.db.GetContext(ctx, &profile, query, chatID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		s.logger.DebugContext(ctx, "No profile found", "chat_id", chatID)
		return nil, nil
	case err != nil:
		s.logger.ErrorContext(ctx, "Error getting profile", "chat_id", chatID, "error", err)
		return nil, fmt.Errorf("failed to get profile for chat %d: %w", chatID, err)
	}
	return &profile, nil
}

func (s *sqlxStore) SaveProfile(ctx context.Context, profile *Profile) error {
	if profile == nil {
		return fmt.Errorf("cannot save nil profile")
	}
	if profile.Status != ProfileUpdating {
		profile.RecomputeStatus()
	}
	if err := s.validate.Struct(profile); err != nil {
		return fmt.Errorf("invalid profile for chat %d: %w", profile.ChatID, err)
	}

	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to begin transaction for saving profile", "chat_id", profile.ChatID, "error", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if tx != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
				s.logger.WarnContext(ctx, "Error rolling back transaction", "error", rollbackErr)
			}
		}
	}()

	query := `
        INSERT INTO user_profiles (chat_id, first_name, last_name, age, gender, weight, height, blood_group,
                                   allergies, previous_diseases, current_medications, emergency_contact,
                                   status, created_at, updated_at)
        VALUES (:chat_id, :first_name, :last_name, :age, :gender, :weight, :height, :blood_group,
                :allergies, :previous_diseases, :current_medications, :emergency_contact,
                :status, :created_at, :updated_at)
        ON CONFLICT(chat_id) DO UPDATE SET
            first_name = excluded.first_name,
            last_name = excluded.last_name,
            age = excluded.age,
            gender = excluded.gender,
            weight = excluded.weight,
            height = excluded.height,
            blood_group = excluded.blood_group,
            allergies = excluded.allergies,
            previous_diseases = excluded.previous_diseases,
            current_medications = excluded.current_medications,
            emergency_contact = excluded.emergency_contact,
            status = excluded.status,
            updated_at = excluded.updated_at;
    `
	if _, err := tx.NamedExecContext(ctx, query, profile); err != nil {
		s.logger.ErrorContext(ctx, "Error saving profile", "chat_id", profile.ChatID, "error", err)
		return fmt.Errorf("failed to save profile for chat %d: %w", profile.ChatID, err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.ErrorContext(ctx, "Failed to commit profile", "chat_id", profile.ChatID, "error", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	tx = nil

	s.logger.DebugContext(ctx, "Profile saved", "chat_id", profile.ChatID, "status", profile.Status)
	return nil
}

func (s *sqlxStore) SaveConsultation(ctx context.Context, c *Consultation) error {
	if c == nil {
		return fmt.Errorf("cannot save nil consultation")
	}
	if c.ChatID == 0 {
		return fmt.Errorf("consultation must have a non-zero chat_id")
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	query := `
        INSERT INTO health_consultations (id, chat_id, language, symptoms, recommendation, severity,
                                          doctor_recommended, consultation_time)
        VALUES (:id, :chat_id, :language, :symptoms, :recommendation, :severity,
                :doctor_recommended, :consultation_time);
    `
	if _, err := s.db.NamedExecContext(ctx, query, c); err != nil {
		s.logger.ErrorContext(ctx, "Error saving consultation", "chat_id", c.ChatID, "error", err)
		return fmt.Errorf("failed to save consultation for chat %d: %w", c.ChatID, err)
	}

	s.logger.DebugContext(ctx, "Consultation saved", "chat_id", c.ChatID, "consultation_id", c.ID,
		"doctor_recommended", c.DoctorRecommended)
	return nil
}

func (s *sqlxStore) ListConsultations(ctx context.Context, chatID int64, limit int) ([]*Consultation, error) {
	if chatID == 0 {
		return nil, fmt.Errorf("chat_id cannot be zero")
	}
	if limit <= 0 {
		limit = 5
	} else if limit > 100 {
		limit = 100
	}

	var consultations []*Consultation
	query := `SELECT id, chat_id, language, symptoms, recommendation, severity, doctor_recommended, consultation_time
	          FROM health_consultations
	          WHERE chat_id = ?
	          ORDER BY seq DESC
	          LIMIT ?`

	if err := s.db.SelectContext(ctx, &consultations, query, chatID, limit); err != nil {
		s.logger.ErrorContext(ctx, "Error listing consultations", "chat_id", chatID, "error", err)
		return nil, fmt.Errorf("failed to list consultations for chat %d: %w", chatID, err)
	}
	return consultations, nil
}

func (s *sqlxStore) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	query := `
        SELECT
            (SELECT COUNT(*) FROM user_sessions) AS total_users,
            (SELECT COUNT(*) FROM user_profiles WHERE status = 'complete') AS complete_profiles,
            (SELECT COUNT(*) FROM health_consultations) AS consultations,
            (SELECT COUNT(*) FROM health_consultations WHERE doctor_recommended = 1) AS referrals;
    `
	if err := s.db.GetContext(ctx, &stats, query); err != nil {
		s.logger.ErrorContext(ctx, "Error computing stats", "error", err)
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return &stats, nil
}

func (s *sqlxStore) RunSQLMaintenance(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	s.logger.InfoContext(ctx, "Starting database maintenance (VACUUM)")

	// VACUUM cannot run inside a transaction.
	_, err := s.db.ExecContext(ctx, "VACUUM;")
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		s.logger.WarnContext(ctx, "VACUUM timed out or was cancelled", "error", err)
		return fmt.Errorf("database maintenance (VACUUM) timed out: %w", err)
	case err != nil:
		s.logger.ErrorContext(ctx, "Database maintenance (VACUUM) failed", "error", err)
		return fmt.Errorf("failed to execute VACUUM: %w", err)
	}

	s.logger.InfoContext(ctx, "Database maintenance (VACUUM) completed")
	return nil
}
