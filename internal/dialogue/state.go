package dialogue

import (
	"database/sql"
	"fmt"
)

// State is the position of a chat in a dialogue flow.
type State int

const (
	Idle State = iota
	AwaitingSymptoms
	ProfileName
	ProfileAge
	ProfileGender
	ProfileWeight
	ProfileHeight
	ProfileBloodGroup
	ProfileAllergies
	ProfileDiseases
	ProfileMedications
	ProfileEmergencyContact
)

var stateNames = map[State]string{
	AwaitingSymptoms:        "AWAITING_SYMPTOMS",
	ProfileName:             "PROFILE_NAME",
	ProfileAge:              "PROFILE_AGE",
	ProfileGender:           "PROFILE_GENDER",
	ProfileWeight:           "PROFILE_WEIGHT",
	ProfileHeight:           "PROFILE_HEIGHT",
	ProfileBloodGroup:       "PROFILE_BLOOD_GROUP",
	ProfileAllergies:        "PROFILE_ALLERGIES",
	ProfileDiseases:         "PROFILE_DISEASES",
	ProfileMedications:      "PROFILE_MEDICATIONS",
	ProfileEmergencyContact: "PROFILE_EMERGENCY",
}

var statesByName = func() map[string]State {
	m := make(map[string]State, len(stateNames))
	for s, name := range stateNames {
		m[name] = s
	}
	return m
}()

func (s State) String() string {
	if s == Idle {
		return "IDLE"
	}
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// InProfileFlow reports whether s collects a profile field.
func (s State) InProfileFlow() bool {
	return s >= ProfileName && s <= ProfileEmergencyContact
}

// ParseState decodes a persisted state. NULL decodes to Idle; an unknown
// name is an error.
func ParseState(v sql.NullString) (State, error) {
	if !v.Valid || v.String == "" {
		return Idle, nil
	}
	if s, ok := statesByName[v.String]; ok {
		return s, nil
	}
	return Idle, fmt.Errorf("unknown dialogue state %q", v.String)
}

// Persisted encodes s for storage. Idle encodes to NULL.
func (s State) Persisted() sql.NullString {
	if s == Idle {
		return sql.NullString{}
	}
	return sql.NullString{String: stateNames[s], Valid: true}
}
