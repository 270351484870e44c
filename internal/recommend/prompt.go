// Package recommend turns a symptom description and a profile snapshot into
// formatted, localized advice using a text completion backend.
package recommend

import (
	"fmt"
	"strings"

	"github.com/Sanyamodi/arogya-sakhi-bot/internal/database"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/i18n"
)

type sectionKind int

const (
	sectionSeverity sectionKind = iota
	sectionHomeRemedies
	sectionMedication
	sectionWarningSigns
	sectionConsultDoctor
	sectionImportant
)

// section is one header of the advice template. The same table drives the
// prompt and the header recognition in Normalize.
type section struct {
	kind    sectionKind
	emoji   string
	label   string
	pattern string // accepted spellings of label, as a regexp fragment
	hint    string // prompt-only qualifier after the label
	inline  string // prompt text on the header line
	items   []string
	bare    bool // prompt omits the emoji
}

var sections = map[string][]section{
	i18n.English: {
		{
			kind: sectionSeverity, emoji: "🔍", label: "SEVERITY LEVEL", pattern: `SEVERITY(?:\s+LEVEL)?`,
			inline: "(Low/Moderate/High/Emergency)",
		},
		{
			kind: sectionHomeRemedies, emoji: "🏠", label: "HOME REMEDIES", pattern: `HOME\s+REMEDIES`,
			items: []string{"Immediate relief measures", "Natural treatments", "Dietary recommendations", "Lifestyle modifications"},
		},
		{
			kind: sectionMedication, emoji: "💊", label: "MEDICATION SUGGESTIONS", pattern: `MEDICATION\s+SUGGESTIONS`,
			hint:  " (Over-the-counter)",
			items: []string{"Pain relievers/fever reducers", "Dosage and timing", "Precautions and contraindications"},
		},
		{
			kind: sectionWarningSigns, emoji: "⚠️", label: "WARNING SIGNS", pattern: `WARNING\s+SIGNS`,
			items: []string{"When to seek immediate medical attention", "Emergency symptoms to watch for"},
		},
		{
			kind: sectionConsultDoctor, emoji: "📞", label: "WHEN TO CONSULT A DOCTOR", pattern: `WHEN\s+TO\s+CONSULT(?:\s+A\s+DOCTOR)?`,
			items: []string{"If symptoms worsen", "Timeline for medical consultation"},
		},
		{
			kind: sectionImportant, emoji: "⚠️", label: "IMPORTANT", pattern: `IMPORTANT`, bare: true,
			inline: "This is general medical advice only. Seek immediate professional medical care for serious conditions.",
		},
	},
	i18n.Hindi: {
		{
			kind: sectionSeverity, emoji: "🔍", label: "गंभीरता का स्तर", pattern: `गंभीरता\s+का\s+स्तर`,
			inline: "(कम/मध्यम/उच्च/आपातकाल)",
		},
		{
			kind: sectionHomeRemedies, emoji: "🏠", label: "घरेलू उपचार", pattern: `घरेलू\s+उपचार`,
			items: []string{"तुरंत राहत के लिए क्या करें", "प्राकृतिक उपचार", "आहार संबंधी सुझाव", "जीवनशैली में बदलाव"},
		},
		{
			kind: sectionMedication, emoji: "💊", label: "दवा सुझाव", pattern: `दवा\s+सुझाव`,
			hint:  " (बिना पर्चे वाली)",
			items: []string{"दर्द निवारक दवाएं", "खुराक और समय", "सावधानियां"},
		},
		{
			kind: sectionWarningSigns, emoji: "⚠️", label: "चेतावनी संकेत", pattern: `चेतावनी\s+संकेत`,
			items: []string{"तुरंत डॉक्टर से मिलें यदि", "आपातकालीन स्थितियां"},
		},
		{
			kind: sectionConsultDoctor, emoji: "📞", label: "कब डॉक्टर से संपर्क करें", pattern: `कब\s+डॉक्टर\s+से\s+संपर्क\s+करें`,
			items: []string{"लक्षण बिगड़ने पर", "कितने दिन बाद"},
		},
		{
			kind: sectionImportant, emoji: "⚠️", label: "महत्वपूर्ण", pattern: `महत्वपूर्ण`, bare: true,
			inline: "यह केवल सामान्य सलाह है। गंभीर स्थिति में तुरंत चिकित्सक से संपर्क करें।",
		},
	},
}

type promptText struct {
	persona      string
	patient      string
	age          string
	gender       string
	bmi          string
	allergies    string
	medications  string
	symptoms     string
	instructions string
}

var promptTexts = map[string]promptText{
	i18n.English: {
		persona:      "You are an experienced doctor. Provide detailed medical advice for the patient's symptoms.\n\n",
		patient:      "Patient Information:\n",
		age:          "- Age: %d years\n",
		gender:       "- Gender: %s\n",
		bmi:          "- BMI: %.1f\n",
		allergies:    "- Allergies: %s\n",
		medications:  "- Current Medications: %s\n",
		symptoms:     "Symptoms: %s\n\n",
		instructions: "Please provide detailed advice in the following format:\n\n",
	},
	i18n.Hindi: {
		persona:      "आप एक अनुभवी डॉक्टर हैं। मरीज के लक्षणों के लिए विस्तृत सलाह दें।\n\n",
		patient:      "मरीज की जानकारी:\n",
		age:          "- उम्र: %d साल\n",
		gender:       "- लिंग: %s\n",
		bmi:          "- BMI: %.1f\n",
		allergies:    "- एलर्जी: %s\n",
		medications:  "- वर्तमान दवाएं: %s\n",
		symptoms:     "लक्षण: %s\n\n",
		instructions: "कृपया निम्नलिखित प्रारूप में विस्तृत सलाह दें:\n\n",
	},
}

// BuildPrompt renders the localized consultation prompt. Lines of the patient
// block are omitted when the profile lacks the corresponding datum, and the
// block itself is omitted when nothing is known.
func BuildPrompt(symptoms string, profile *database.Profile, lang string) string {
	if _, ok := promptTexts[lang]; !ok {
		lang = i18n.English
	}
	t := promptTexts[lang]

	var b strings.Builder
	b.WriteString(t.persona)
	b.WriteString(patientBlock(t, profile, lang))
	fmt.Fprintf(&b, t.symptoms, strings.TrimSpace(symptoms))
	b.WriteString(t.instructions)

	secs := sections[lang]
	for i, s := range secs {
		if !s.bare {
			b.WriteString(s.emoji)
			b.WriteString(" ")
		}
		b.WriteString(s.label)
		b.WriteString(s.hint)
		b.WriteString(":")
		if s.inline != "" {
			b.WriteString(" ")
			b.WriteString(s.inline)
		}
		for _, item := range s.items {
			b.WriteString("\n- ")
			b.WriteString(item)
		}
		if i < len(secs)-1 {
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

func patientBlock(t promptText, p *database.Profile, lang string) string {
	if p == nil {
		return ""
	}

	var lines strings.Builder
	if p.Age != nil {
		fmt.Fprintf(&lines, t.age, *p.Age)
	}
	if p.Gender != "" {
		fmt.Fprintf(&lines, t.gender, i18n.GenderLabel(lang, p.Gender))
	}
	if bmi := p.BMI(); bmi > 0 {
		fmt.Fprintf(&lines, t.bmi, bmi)
	}
	if len(p.Allergies) > 0 {
		fmt.Fprintf(&lines, t.allergies, strings.Join(p.Allergies, ", "))
	}
	if len(p.CurrentMedications) > 0 {
		fmt.Fprintf(&lines, t.medications, strings.Join(p.CurrentMedications, ", "))
	}

	if lines.Len() == 0 {
		return ""
	}
	return t.patient + lines.String() + "\n"
}
