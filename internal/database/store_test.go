package database_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/Sanyamodi/arogya-sakhi-bot/internal/database"
)

func newTestStore(t *testing.T) database.Store {
	t.Helper()

	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewDB() error = %v", err)
	}
	t.Cleanup(func() { database.CloseDB(db) })

	return database.NewStore(db, nil)
}

func intPtr(v int) *int             { return &v }
func floatPtr(v float64) *float64   { return &v }
func state(s string) sql.NullString { return sql.NullString{String: s, Valid: true} }

func TestStore_SessionRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	got, err := store.GetSession(ctx, 42)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if got != nil {
		t.Fatalf("GetSession() = %+v, want nil for unknown chat", got)
	}

	session := database.NewSession(42)
	session.Language = "hi"
	session.CurrentState = state("PROFILE_AGE")
	if err := store.SaveSession(ctx, session); err != nil {
		t.Fatalf("SaveSession() error = %v", err)
	}

	got, err = store.GetSession(ctx, 42)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if got.Language != "hi" || got.CurrentState != state("PROFILE_AGE") {
		t.Errorf("GetSession() = %+v, want language hi and state PROFILE_AGE", got)
	}

	got.CurrentState = sql.NullString{}
	if err := store.SaveSession(ctx, got); err != nil {
		t.Fatalf("SaveSession() error = %v", err)
	}
	got, err = store.GetSession(ctx, 42)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if got.CurrentState.Valid {
		t.Errorf("CurrentState = %q, want NULL after reset", got.CurrentState.String)
	}
}

func TestStore_ListStaleSessions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	active := database.NewSession(1)
	active.CurrentState = state("AWAITING_SYMPTOMS")
	idle := database.NewSession(2)
	for _, s := range []*database.Session{active, idle} {
		if err := store.SaveSession(ctx, s); err != nil {
			t.Fatalf("SaveSession() error = %v", err)
		}
	}

	stale, err := store.ListStaleSessions(ctx, time.Now().UTC().Add(time.Minute))
	if err != nil {
		t.Fatalf("ListStaleSessions() error = %v", err)
	}
	if len(stale) != 1 || stale[0].ChatID != 1 {
		t.Errorf("ListStaleSessions() = %+v, want only chat 1", stale)
	}

	stale, err = store.ListStaleSessions(ctx, time.Now().UTC().Add(-time.Hour))
	if err != nil {
		t.Fatalf("ListStaleSessions() error = %v", err)
	}
	if len(stale) != 0 {
		t.Errorf("ListStaleSessions() returned %d sessions, want 0 for a past cutoff", len(stale))
	}
}

func TestStore_ProfileRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	profile := database.NewProfile(7)
	profile.FirstName = "Asha"
	profile.LastName = "Rao"
	profile.Age = intPtr(30)
	profile.Gender = database.GenderFemale
	profile.Weight = floatPtr(65.5)
	profile.Height = floatPtr(165)
	profile.Allergies = database.StringList{"dust", "pollen"}
	profile.RecomputeStatus()

	if err := store.SaveProfile(ctx, profile); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}

	got, err := store.GetProfile(ctx, 7)
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if got == nil {
		t.Fatal("GetProfile() = nil, want profile")
	}
	if got.Status != database.ProfileComplete {
		t.Errorf("Status = %q, want %q", got.Status, database.ProfileComplete)
	}
	if got.Age == nil || *got.Age != 30 {
		t.Errorf("Age = %v, want 30", got.Age)
	}
	if got.BloodGroup != "" {
		t.Errorf("BloodGroup = %q, want empty", got.BloodGroup)
	}
	if len(got.Allergies) != 2 || got.Allergies[1] != "pollen" {
		t.Errorf("Allergies = %v, want [dust pollen]", got.Allergies)
	}
	if got.PreviousDiseases != nil {
		t.Errorf("PreviousDiseases = %v, want nil", got.PreviousDiseases)
	}
}

func TestStore_SaveProfileRecomputesStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	p := database.NewProfile(11)
	p.FirstName = "Ravi"
	p.Status = database.ProfileComplete
	if err := store.SaveProfile(ctx, p); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}
	got, err := store.GetProfile(ctx, 11)
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if got.Status != database.ProfileIncomplete {
		t.Errorf("Status = %q, want %q for a profile missing required fields", got.Status, database.ProfileIncomplete)
	}
}

func TestStore_SaveProfileRejectsOutOfRange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	tests := []struct {
		name   string
		mutate func(p *database.Profile)
	}{
		{name: "age too high", mutate: func(p *database.Profile) { p.Age = intPtr(121) }},
		{name: "weight too low", mutate: func(p *database.Profile) { p.Weight = floatPtr(9.9) }},
		{name: "height too high", mutate: func(p *database.Profile) { p.Height = floatPtr(250.5) }},
		{name: "unknown gender", mutate: func(p *database.Profile) { p.Gender = "robot" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := database.NewProfile(9)
			tt.mutate(p)
			if err := store.SaveProfile(ctx, p); err == nil {
				t.Errorf("SaveProfile() error = nil, want validation error")
			}
		})
	}
}

func TestStore_ConsultationsNewestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	for i, symptoms := range []string{"headache", "fever", "cough"} {
		c := &database.Consultation{
			ChatID:            5,
			Symptoms:          symptoms,
			Recommendation:    "rest",
			DoctorRecommended: i == 1,
		}
		if err := store.SaveConsultation(ctx, c); err != nil {
			t.Fatalf("SaveConsultation() error = %v", err)
		}
		if c.ID == "" {
			t.Errorf("SaveConsultation() did not assign an id")
		}
	}

	got, err := store.ListConsultations(ctx, 5, 2)
	if err != nil {
		t.Fatalf("ListConsultations() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListConsultations() returned %d rows, want 2", len(got))
	}
	if got[0].Symptoms != "cough" || got[1].Symptoms != "fever" {
		t.Errorf("ListConsultations() order = [%s %s], want [cough fever]", got[0].Symptoms, got[1].Symptoms)
	}
	if !got[1].DoctorRecommended {
		t.Errorf("DoctorRecommended = false, want true for fever")
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Consultations != 3 || stats.Referrals != 1 {
		t.Errorf("Stats() = %+v, want 3 consultations and 1 referral", stats)
	}
}

func TestStore_RunSQLMaintenance(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	if err := store.RunSQLMaintenance(context.Background()); err != nil {
		t.Errorf("RunSQLMaintenance() error = %v", err)
	}
}

func TestStore_Stats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	for _, chatID := range []int64{1, 2, 3} {
		if err := store.SaveSession(ctx, database.NewSession(chatID)); err != nil {
			t.Fatalf("SaveSession() error = %v", err)
		}
	}

	complete := database.NewProfile(1)
	complete.FirstName = "Asha"
	complete.Age = intPtr(30)
	complete.Gender = database.GenderFemale
	complete.Weight = floatPtr(65.5)
	complete.Height = floatPtr(165)
	partial := database.NewProfile(2)
	partial.FirstName = "Ravi"
	for _, p := range []*database.Profile{complete, partial} {
		if err := store.SaveProfile(ctx, p); err != nil {
			t.Fatalf("SaveProfile() error = %v", err)
		}
	}

	for i := 0; i < 3; i++ {
		c := &database.Consultation{ChatID: 1, Symptoms: "fever", Recommendation: "rest", DoctorRecommended: i == 0}
		if err := store.SaveConsultation(ctx, c); err != nil {
			t.Fatalf("SaveConsultation() error = %v", err)
		}
	}

	got, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	want := database.Stats{TotalUsers: 3, CompleteProfiles: 1, Consultations: 3, Referrals: 1}
	if *got != want {
		t.Errorf("Stats() = %+v, want %+v", *got, want)
	}
}
