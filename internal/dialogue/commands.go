package dialogue

import (
	"strings"

	"github.com/Sanyamodi/arogya-sakhi-bot/internal/database"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/i18n"
)

// Slash commands recognized in every state.
const (
	CommandStart  = "start"
	CommandHelp   = "help"
	CommandCancel = "cancel"
)

// parseCommand returns the lower-cased command of text without the leading
// slash, any @botname suffix and any arguments.
func parseCommand(text string) (string, bool) {
	if !strings.HasPrefix(text, "/") {
		return "", false
	}
	cmd, _, _ := strings.Cut(text[1:], " ")
	cmd, _, _ = strings.Cut(cmd, "@")
	if cmd == "" {
		return "", false
	}
	return strings.ToLower(cmd), true
}

// handleGlobal runs text as a global command or menu action and reports
// whether it did.
func (e *Engine) handleGlobal(t *turn) bool {
	if cmd, ok := parseCommand(t.text); ok {
		switch cmd {
		case CommandStart:
			e.start(t)
			return true
		case CommandHelp:
			e.help(t)
			return true
		case CommandCancel:
			e.cancel(t)
			return true
		}
		return false
	}

	if lang, ok := i18n.ParseLanguageCaption(t.text); ok {
		e.selectLanguage(t, lang)
		return true
	}

	action, ok := i18n.ParseCaption(t.text)
	if !ok {
		return false
	}
	switch action {
	case i18n.ActionConsultation:
		e.startConsultation(t)
	case i18n.ActionMyProfile:
		e.showProfile(t)
	case i18n.ActionUpdateProfile:
		e.startProfileUpdate(t)
	case i18n.ActionHistory:
		e.showHistory(t)
	case i18n.ActionHelp:
		e.help(t)
	case i18n.ActionLanguage:
		e.reply(t, i18n.Text(t.lang(), i18n.KeyChooseLanguage), i18n.LanguageKeyboard())
	default:
		return false
	}
	return true
}

func (e *Engine) start(t *turn) {
	e.saveSession(t)
	t.log.InfoContext(t.ctx, "Start command received")
	e.reply(t, i18n.Format(t.lang(), i18n.KeyStartGreeting, t.name), i18n.LanguageKeyboard())
}

func (e *Engine) help(t *turn) {
	e.reply(t, i18n.Text(t.lang(), i18n.KeyHelp), i18n.MainKeyboard(t.lang()))
}

func (e *Engine) cancel(t *turn) {
	e.dropBuffer(t.chatID)
	e.setState(t, Idle)
	e.reply(t, i18n.Text(t.lang(), i18n.KeyFlowCancelled), i18n.MainKeyboard(t.lang()))
}

func (e *Engine) selectLanguage(t *turn, lang string) {
	t.session.Language = lang
	e.saveSession(t)
	t.log.InfoContext(t.ctx, "Language selected", "language", lang)

	e.reply(t, i18n.Text(lang, i18n.KeyLanguageSelected), i18n.MainKeyboard(lang))
	if !e.loadProfile(t).IsComplete() {
		e.reply(t, i18n.Text(lang, i18n.KeyProfileIncomplete), nil)
	}
}

func (e *Engine) startConsultation(t *turn) {
	if !e.loadProfile(t).IsComplete() {
		e.reply(t, i18n.Text(t.lang(), i18n.KeyProfileIncomplete), nil)
		return
	}
	e.dropBuffer(t.chatID)
	e.setState(t, AwaitingSymptoms)
	e.reply(t, i18n.Text(t.lang(), i18n.KeyConsultationStart), nil)
}

func (e *Engine) showProfile(t *turn) {
	profile := e.loadProfile(t)
	if !profile.IsComplete() {
		e.reply(t, i18n.Text(t.lang(), i18n.KeyProfileIncomplete), nil)
		return
	}
	e.reply(t, renderProfileCard(profile, t.lang()), nil)
}

// startProfileUpdate seeds the edit buffer from the stored profile so that
// fields the user does not reach keep their values.
func (e *Engine) startProfileUpdate(t *turn) {
	buf := e.loadProfile(t).Clone()
	buf.ChatID = t.chatID
	buf.Status = database.ProfileUpdating
	e.setBuffer(t.chatID, buf)

	e.setState(t, ProfileName)
	e.reply(t, i18n.Text(t.lang(), i18n.KeyProfileSetup), nil)
}

func (e *Engine) showHistory(t *turn) {
	consultations, err := e.store.ListConsultations(t.ctx, t.chatID, e.cfg.HistoryLimit)
	if err != nil {
		t.log.ErrorContext(t.ctx, "Failed to list consultations", "error", err)
		consultations = nil
	}
	if len(consultations) == 0 {
		e.reply(t, i18n.Text(t.lang(), i18n.KeyHistoryEmpty), nil)
		return
	}
	e.reply(t, renderHistory(consultations, t.lang()), nil)
}
