package database

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// DefaultLanguage is the language assigned to new sessions.
const DefaultLanguage = "en"

// Session holds the per-chat language preference and the dialogue state
// driving the next inbound message. A NULL CurrentState means idle.
type Session struct {
	ChatID       int64          `db:"chat_id"`
	Language     string         `db:"language"`
	CurrentState sql.NullString `db:"current_state"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// NewSession returns an idle session with the default language.
func NewSession(chatID int64) *Session {
	return &Session{ChatID: chatID, Language: DefaultLanguage}
}

// ProfileStatus is the completeness flag of a Profile.
type ProfileStatus string

const (
	ProfileIncomplete ProfileStatus = "incomplete"
	ProfileComplete   ProfileStatus = "complete"
	ProfileUpdating   ProfileStatus = "updating"
)

// Stored gender codes.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// StringList is a list of free-text items persisted as a JSON array.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal string list: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("unsupported type %T for string list", src)
	}
	if len(raw) == 0 {
		*l = nil
		return nil
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("failed to unmarshal string list: %w", err)
	}
	if len(items) == 0 {
		items = nil
	}
	*l = items
	return nil
}

// Profile is the structured health record of one chat.
// Optional numeric fields are nil when absent; optional strings are empty.
type Profile struct {
	ChatID             int64         `db:"chat_id"             validate:"required"`
	FirstName          string        `db:"first_name"          validate:"max=256"`
	LastName           string        `db:"last_name"           validate:"max=256"`
	Age                *int          `db:"age"                 validate:"omitempty,min=1,max=120"`
	Gender             string        `db:"gender"              validate:"omitempty,oneof=male female other"`
	Weight             *float64      `db:"weight"              validate:"omitempty,min=10,max=300"`
	Height             *float64      `db:"height"              validate:"omitempty,min=50,max=250"`
	BloodGroup         string        `db:"blood_group"         validate:"max=16"`
	Allergies          StringList    `db:"allergies"`
	PreviousDiseases   StringList    `db:"previous_diseases"`
	CurrentMedications StringList    `db:"current_medications"`
	EmergencyContact   string        `db:"emergency_contact"   validate:"max=256"`
	Status             ProfileStatus `db:"status"              validate:"oneof=incomplete complete updating"`
	CreatedAt          time.Time     `db:"created_at"`
	UpdatedAt          time.Time     `db:"updated_at"`
}

// NewProfile returns an empty, incomplete profile for chatID.
func NewProfile(chatID int64) *Profile {
	return &Profile{ChatID: chatID, Status: ProfileIncomplete}
}

// IsComplete reports whether name, age, gender, weight and height are all present.
func (p *Profile) IsComplete() bool {
	if p == nil {
		return false
	}
	return p.FirstName != "" && p.Age != nil && p.Gender != "" && p.Weight != nil && p.Height != nil
}

// RecomputeStatus sets Status from the current field values.
func (p *Profile) RecomputeStatus() {
	if p.IsComplete() {
		p.Status = ProfileComplete
	} else {
		p.Status = ProfileIncomplete
	}
}

// BMI returns weight / (height in metres)^2, or 0 when either value is absent.
func (p *Profile) BMI() float64 {
	if p == nil || p.Weight == nil || p.Height == nil || *p.Height <= 0 {
		return 0
	}
	m := *p.Height / 100
	bmi := *p.Weight / (m * m)
	if math.IsNaN(bmi) || math.IsInf(bmi, 0) {
		return 0
	}
	return bmi
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	if p.Age != nil {
		v := *p.Age
		c.Age = &v
	}
	if p.Weight != nil {
		v := *p.Weight
		c.Weight = &v
	}
	if p.Height != nil {
		v := *p.Height
		c.Height = &v
	}
	c.Allergies = append(StringList(nil), p.Allergies...)
	c.PreviousDiseases = append(StringList(nil), p.PreviousDiseases...)
	c.CurrentMedications = append(StringList(nil), p.CurrentMedications...)
	return &c
}

// BMI category identifiers returned by BMICategory.
const (
	BMIUnderweight = "underweight"
	BMINormal      = "normal"
	BMIOverweight  = "overweight"
	BMIObese       = "obese"
)

// BMICategory classifies a body-mass index value.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// Consultation is an immutable record of one symptom submission and the
// recommendation produced for it.
type Consultation struct {
	ID                string    `db:"id"`
	ChatID            int64     `db:"chat_id"`
	Language          string    `db:"language"`
	Symptoms          string    `db:"symptoms"`
	Recommendation    string    `db:"recommendation"`
	Severity          string    `db:"severity"`
	DoctorRecommended bool      `db:"doctor_recommended"`
	CreatedAt         time.Time `db:"consultation_time"`
}

// Stats aggregates counters exposed on the operational HTTP surface.
type Stats struct {
	TotalUsers       int `db:"total_users"       json:"total_users"`
	CompleteProfiles int `db:"complete_profiles" json:"complete_profiles"`
	Consultations    int `db:"consultations"     json:"consultations"`
	Referrals        int `db:"referrals"         json:"referrals"`
}
