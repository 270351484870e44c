package dialogue

import (
	"strconv"
	"strings"

	"github.com/Sanyamodi/arogya-sakhi-bot/internal/database"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/i18n"
)

func fullName(p *database.Profile) string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func formatMeasure(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func renderProfileSummary(p *database.Profile, lang string) string {
	age := 0
	if p.Age != nil {
		age = *p.Age
	}
	bmi := p.BMI()
	blood := p.BloodGroup
	if blood == "" {
		blood = i18n.Text(lang, i18n.KeyNotProvided)
	}
	return i18n.Format(lang, i18n.KeyProfileCompleted,
		fullName(p),
		age,
		i18n.GenderLabel(lang, p.Gender),
		bmi,
		i18n.BMILabel(lang, database.BMICategory(bmi)),
		blood,
	)
}

// renderProfileCard expects a complete profile.
func renderProfileCard(p *database.Profile, lang string) string {
	var b strings.Builder
	b.WriteString(i18n.Text(lang, i18n.KeyCardTitle))
	b.WriteString(i18n.Text(lang, i18n.KeyCardBasic))
	b.WriteString(i18n.Format(lang, i18n.KeyCardName, fullName(p)))
	b.WriteString(i18n.Format(lang, i18n.KeyCardAge, *p.Age))
	b.WriteString(i18n.Format(lang, i18n.KeyCardGender, i18n.GenderLabel(lang, p.Gender)))
	b.WriteString(i18n.Format(lang, i18n.KeyCardWeight, formatMeasure(p.Weight)))
	b.WriteString(i18n.Format(lang, i18n.KeyCardHeight, formatMeasure(p.Height)))
	bmi := p.BMI()
	b.WriteString(i18n.Format(lang, i18n.KeyCardBMI, bmi, i18n.BMILabel(lang, database.BMICategory(bmi))))
	if p.BloodGroup != "" {
		b.WriteString(i18n.Format(lang, i18n.KeyCardBloodGroup, p.BloodGroup))
	}

	lists := []struct {
		key   string
		items database.StringList
	}{
		{i18n.KeyCardAllergies, p.Allergies},
		{i18n.KeyCardDiseases, p.PreviousDiseases},
		{i18n.KeyCardMedications, p.CurrentMedications},
	}
	for _, l := range lists {
		if len(l.items) == 0 {
			continue
		}
		b.WriteString(i18n.Text(lang, l.key))
		for _, item := range l.items {
			b.WriteString("• ")
			b.WriteString(item)
			b.WriteString("\n")
		}
	}

	if p.EmergencyContact != "" {
		b.WriteString(i18n.Format(lang, i18n.KeyCardEmergency, p.EmergencyContact))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderHistory(consultations []*database.Consultation, lang string) string {
	var b strings.Builder
	b.WriteString(i18n.Text(lang, i18n.KeyHistoryHeader))
	for _, c := range consultations {
		b.WriteString(i18n.Format(lang, i18n.KeyHistoryDate, c.CreatedAt.Format("2006-01-02")))
		b.WriteString(i18n.Format(lang, i18n.KeyHistorySymptoms, c.Symptoms))
		if c.DoctorRecommended {
			b.WriteString(i18n.Text(lang, i18n.KeyHistoryReferral))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
