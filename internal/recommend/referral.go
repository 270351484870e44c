package recommend

import (
	"strings"
	"unicode/utf8"
)

var referralKeywords = []string{
	"doctor",
	"emergency",
	"hospital",
	"urgent",
	"डॉक्टर",
	"आपातकाल",
	"अस्पताल",
}

// ClassifyReferral reports whether text mentions any referral keyword,
// case-insensitively. It is a keyword heuristic with known false positives:
// the canonical "when to consult a doctor" header alone satisfies it, and a
// negated mention ("no need for a doctor") counts as a referral.
func ClassifyReferral(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range referralKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

const maxSeverityRunes = 32

// ExtractSeverity returns the value following the severity header of a
// normalized recommendation, or "" when the backend left it blank or echoed
// the template placeholder.
func ExtractSeverity(text string) string {
	for _, line := range strings.Split(text, "\n") {
		_, kind, rest, ok := matchHeader(strings.TrimSpace(line))
		if !ok || kind != sectionSeverity {
			continue
		}

		rest = strings.TrimSpace(strings.Trim(rest, "*"))
		if rest == "" || (strings.HasPrefix(rest, "(") && strings.Contains(rest, "/")) {
			return ""
		}
		if utf8.RuneCountInString(rest) > maxSeverityRunes {
			rest = string([]rune(rest)[:maxSeverityRunes])
		}
		return rest
	}
	return ""
}
