package recommend

import (
	"regexp"
	"strings"

	"github.com/Sanyamodi/arogya-sakhi-bot/internal/i18n"
)

type headerMatcher struct {
	kind      sectionKind
	re        *regexp.Regexp
	canonical string
}

var (
	boldRe      = regexp.MustCompile(`\*{2,}([^*\n]+?)\*{2,}`)
	strayStarRe = regexp.MustCompile(`\*{2,}`)
	bulletRe    = regexp.MustCompile(`^[*•-]\s+(.*)$`)

	headerMatchers = compileHeaders()
)

func compileHeaders() []headerMatcher {
	var out []headerMatcher
	for _, lang := range []string{i18n.English, i18n.Hindi} {
		for _, s := range sections[lang] {
			emoji := regexp.QuoteMeta(strings.TrimSuffix(s.emoji, "\uFE0F"))
			re := regexp.MustCompile(`(?i)^(?:#{1,6}\s*)?\**\s*(?:` + emoji + `\x{FE0F}?\s*)?\**\s*(?:` + s.pattern +
				`)(?:\s*\([^)]*\))?\s*\**\s*:\s*\**\s*(.*)$`)
			out = append(out, headerMatcher{
				kind:      s.kind,
				re:        re,
				canonical: s.emoji + " *" + s.label + ":*",
			})
		}
	}
	return out
}

// matchHeader returns the canonical form of line when it is a recognized
// section header, along with the section and the text following the colon.
func matchHeader(line string) (canonical string, kind sectionKind, rest string, ok bool) {
	for _, h := range headerMatchers {
		m := h.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		rest = strings.TrimSpace(m[1])
		canonical = h.canonical
		if rest != "" {
			canonical += " " + rest
		}
		return canonical, h.kind, rest, true
	}
	return "", 0, "", false
}

// Normalize rewrites raw backend text for chat display. Double-asterisk
// emphasis becomes single, list markers become "•", recognized section
// headers of either language take a canonical form, and every header is
// preceded by exactly one blank line. Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	var out []string
	pendingBlank := false
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = boldRe.ReplaceAllString(line, "*$1*")
		line = strings.TrimSpace(strayStarRe.ReplaceAllString(line, ""))

		if line == "" {
			pendingBlank = true
			continue
		}

		header := false
		if canonical, _, _, ok := matchHeader(line); ok {
			line = canonical
			header = true
		} else if m := bulletRe.FindStringSubmatch(line); m != nil {
			line = "• " + strings.TrimSpace(m[1])
		}

		if len(out) > 0 && (pendingBlank || header) {
			out = append(out, "")
		}
		pendingBlank = false
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}
