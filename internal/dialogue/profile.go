package dialogue

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Sanyamodi/arogya-sakhi-bot/internal/database"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/i18n"
)

// Accepted ranges for numeric profile fields.
const (
	MinAge    = 1
	MaxAge    = 120
	MinWeight = 10.0
	MaxWeight = 300.0
	MinHeight = 50.0
	MaxHeight = 250.0
)

// Free-text fields are clipped to the lengths the store accepts.
const (
	maxNameRunes       = 256
	maxBloodGroupRunes = 16
	maxContactRunes    = 256
)

var genderChoices = map[string]string{
	"1": database.GenderMale,
	"2": database.GenderFemale,
	"3": database.GenderOther,
}

// editBuffer returns the chat's edit buffer. When it is missing the flow
// cannot continue: the chat is reset to Idle and told to start over.
func (e *Engine) editBuffer(t *turn) (*database.Profile, bool) {
	if buf := e.buffer(t.chatID); buf != nil {
		return buf, true
	}
	t.log.ErrorContext(t.ctx, "Profile edit buffer missing mid-flow", "state", t.session.CurrentState.String)
	e.setState(t, Idle)
	e.reply(t, i18n.Text(t.lang(), i18n.KeyFlowInterrupted), i18n.MainKeyboard(t.lang()))
	return nil, false
}

func (e *Engine) advance(t *turn, next State, promptKey string) {
	e.setState(t, next)
	e.reply(t, i18n.Text(t.lang(), promptKey), nil)
}

func (e *Engine) reprompt(t *turn, key string) {
	e.reply(t, i18n.Text(t.lang(), key), nil)
}

func (e *Engine) handleName(t *turn) {
	buf, ok := e.editBuffer(t)
	if !ok {
		return
	}
	first, last, _ := strings.Cut(t.text, " ")
	buf.FirstName = clip(strings.TrimSpace(first), maxNameRunes)
	buf.LastName = clip(strings.TrimSpace(last), maxNameRunes)
	e.advance(t, ProfileAge, i18n.KeyEnterAge)
}

func (e *Engine) handleAge(t *turn) {
	buf, ok := e.editBuffer(t)
	if !ok {
		return
	}
	age, err := strconv.Atoi(t.text)
	if err != nil {
		e.reprompt(t, i18n.KeyInvalidAgeNumber)
		return
	}
	if age < MinAge || age > MaxAge {
		e.reprompt(t, i18n.KeyInvalidAgeRange)
		return
	}
	buf.Age = &age
	e.advance(t, ProfileGender, i18n.KeySelectGender)
}

func (e *Engine) handleGender(t *turn) {
	buf, ok := e.editBuffer(t)
	if !ok {
		return
	}
	gender, ok := genderChoices[t.text]
	if !ok {
		e.reprompt(t, i18n.KeySelectGender)
		return
	}
	buf.Gender = gender
	e.advance(t, ProfileWeight, i18n.KeyEnterWeight)
}

func (e *Engine) handleWeight(t *turn) {
	buf, ok := e.editBuffer(t)
	if !ok {
		return
	}
	weight, ok := parseDecimal(t.text)
	if !ok {
		e.reprompt(t, i18n.KeyInvalidWeightNumber)
		return
	}
	if weight < MinWeight || weight > MaxWeight {
		e.reprompt(t, i18n.KeyInvalidWeightRange)
		return
	}
	buf.Weight = &weight
	e.advance(t, ProfileHeight, i18n.KeyEnterHeight)
}

func (e *Engine) handleHeight(t *turn) {
	buf, ok := e.editBuffer(t)
	if !ok {
		return
	}
	height, ok := parseDecimal(t.text)
	if !ok {
		e.reprompt(t, i18n.KeyInvalidHeightNumber)
		return
	}
	if height < MinHeight || height > MaxHeight {
		e.reprompt(t, i18n.KeyInvalidHeightRange)
		return
	}
	buf.Height = &height
	e.advance(t, ProfileBloodGroup, i18n.KeyEnterBloodGroup)
}

func (e *Engine) handleBloodGroup(t *turn) {
	buf, ok := e.editBuffer(t)
	if !ok {
		return
	}
	if isKeyword(t.text, "skip") {
		buf.BloodGroup = ""
	} else {
		buf.BloodGroup = clip(strings.ToUpper(t.text), maxBloodGroupRunes)
	}
	e.advance(t, ProfileAllergies, i18n.KeyEnterAllergies)
}

func (e *Engine) handleAllergies(t *turn) {
	buf, ok := e.editBuffer(t)
	if !ok {
		return
	}
	buf.Allergies = parseList(t.text)
	e.advance(t, ProfileDiseases, i18n.KeyEnterDiseases)
}

func (e *Engine) handleDiseases(t *turn) {
	buf, ok := e.editBuffer(t)
	if !ok {
		return
	}
	buf.PreviousDiseases = parseList(t.text)
	e.advance(t, ProfileMedications, i18n.KeyEnterMedications)
}

func (e *Engine) handleMedications(t *turn) {
	buf, ok := e.editBuffer(t)
	if !ok {
		return
	}
	buf.CurrentMedications = parseList(t.text)
	e.advance(t, ProfileEmergencyContact, i18n.KeyEnterEmergency)
}

func (e *Engine) handleEmergencyContact(t *turn) {
	buf, ok := e.editBuffer(t)
	if !ok {
		return
	}
	if isKeyword(t.text, "skip") {
		buf.EmergencyContact = ""
	} else {
		buf.EmergencyContact = clip(t.text, maxContactRunes)
	}
	e.commitProfile(t, buf)
}

// commitProfile persists the buffer. On failure the chat stays on the last
// step with its buffer so that resending the answer retries the commit.
func (e *Engine) commitProfile(t *turn, buf *database.Profile) {
	buf.RecomputeStatus()
	if err := e.store.SaveProfile(t.ctx, buf); err != nil {
		t.log.ErrorContext(t.ctx, "Failed to save profile", "error", err)
		e.reply(t, i18n.Text(t.lang(), i18n.KeyProfileSaveFailed), nil)
		return
	}

	e.dropBuffer(t.chatID)
	e.setState(t, Idle)
	t.log.InfoContext(t.ctx, "Profile saved", "status", buf.Status)

	e.reply(t, renderProfileSummary(buf, t.lang()), i18n.MainKeyboard(t.lang()))
	if !buf.IsComplete() {
		e.reply(t, i18n.Text(t.lang(), i18n.KeyProfileIncomplete), nil)
	}
}

func parseDecimal(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func isKeyword(s, keyword string) bool {
	return strings.EqualFold(strings.TrimSpace(s), keyword)
}

// parseList splits a comma-separated answer. "none" clears the list.
func parseList(s string) database.StringList {
	if isKeyword(s, "none") {
		return nil
	}
	var items database.StringList
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
