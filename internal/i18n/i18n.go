// Package i18n holds the localized message table, menu captions and reply
// keyboard layouts for English and Hindi.
package i18n

import "fmt"

// Supported language tags.
const (
	English = "en"
	Hindi   = "hi"
)

// Text returns the template for key in lang. Missing languages or keys fall
// back to English, and finally to the key itself.
func Text(lang, key string) string {
	if table, ok := messages[lang]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[English][key]; ok {
		return msg
	}
	return key
}

// Format looks up key and substitutes args with fmt.Sprintf.
func Format(lang, key string, args ...any) string {
	return fmt.Sprintf(Text(lang, key), args...)
}

// Supported reports whether lang has its own message table.
func Supported(lang string) bool {
	_, ok := messages[lang]
	return ok
}

// Action identifies a main-menu button independent of its language.
type Action int

const (
	ActionNone Action = iota
	ActionConsultation
	ActionMyProfile
	ActionUpdateProfile
	ActionHistory
	ActionHelp
	ActionLanguage
)

var captions = map[string]map[Action]string{
	English: {
		ActionConsultation:  "🏥 Health Consultation",
		ActionMyProfile:     "👤 My Profile",
		ActionUpdateProfile: "📝 Update Profile",
		ActionHistory:       "📊 Health History",
		ActionHelp:          "ℹ️ Help",
		ActionLanguage:      "🌐 Language",
	},
	Hindi: {
		ActionConsultation:  "🏥 स्वास्थ्य परामर्श",
		ActionMyProfile:     "👤 मेरी प्रोफाइल",
		ActionUpdateProfile: "📝 प्रोफाइल अपडेट करें",
		ActionHistory:       "📊 स्वास्थ्य इतिहास",
		ActionHelp:          "ℹ️ सहायता",
		ActionLanguage:      "🌐 भाषा",
	},
}

// Language selector captions.
const (
	CaptionEnglish = "🇺🇸 English"
	CaptionHindi   = "🇮🇳 हिंदी"
)

var captionIndex = func() map[string]Action {
	idx := make(map[string]Action)
	for _, table := range captions {
		for action, caption := range table {
			idx[caption] = action
		}
	}
	return idx
}()

// Caption returns the button caption of action in lang.
func Caption(lang string, action Action) string {
	if table, ok := captions[lang]; ok {
		if c, ok := table[action]; ok {
			return c
		}
	}
	return captions[English][action]
}

// ParseCaption matches text exactly against the main-menu captions of every language.
func ParseCaption(text string) (Action, bool) {
	action, ok := captionIndex[text]
	return action, ok
}

// ParseLanguageCaption matches text exactly against the language selector captions.
func ParseLanguageCaption(text string) (string, bool) {
	switch text {
	case CaptionEnglish:
		return English, true
	case CaptionHindi:
		return Hindi, true
	}
	return "", false
}

// Keyboard is a reply keyboard layout: rows of button captions.
type Keyboard [][]string

// MainKeyboard returns the six-button main menu in three rows.
func MainKeyboard(lang string) Keyboard {
	return Keyboard{
		{Caption(lang, ActionConsultation), Caption(lang, ActionMyProfile)},
		{Caption(lang, ActionUpdateProfile), Caption(lang, ActionHistory)},
		{Caption(lang, ActionHelp), Caption(lang, ActionLanguage)},
	}
}

// LanguageKeyboard returns the two-button language selector.
func LanguageKeyboard() Keyboard {
	return Keyboard{{CaptionEnglish, CaptionHindi}}
}

var genderKeys = map[string]string{
	"male":   KeyGenderMale,
	"female": KeyGenderFemale,
	"other":  KeyGenderOther,
}

// GenderLabel renders a stored gender code (male, female, other) in lang.
// Unknown codes are returned unchanged.
func GenderLabel(lang, code string) string {
	if key, ok := genderKeys[code]; ok {
		return Text(lang, key)
	}
	return code
}

var bmiKeys = map[string]string{
	"underweight": KeyBMIUnderweight,
	"normal":      KeyBMINormal,
	"overweight":  KeyBMIOverweight,
	"obese":       KeyBMIObese,
}

// BMILabel renders a BMI category identifier in lang.
func BMILabel(lang, category string) string {
	if key, ok := bmiKeys[category]; ok {
		return Text(lang, key)
	}
	return category
}
