package dialogue

import (
	"context"
	"time"

	"github.com/Sanyamodi/arogya-sakhi-bot/internal/i18n"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/recommend"
)

// finishTimeout bounds the reset and the closing replies of a consultation
// once the request context is gone.
const finishTimeout = 5 * time.Second

// handleSymptoms runs one consultation. The chat returns to Idle and gets
// the main menu on every exit path, including a panic in the recommender
// and a request context cancelled by shutdown.
func (e *Engine) handleSymptoms(t *turn) {
	defer func() {
		defer t.detach()()
		e.setState(t, Idle)
		e.reply(t, i18n.Text(t.lang(), i18n.KeyAnythingElse), i18n.MainKeyboard(t.lang()))
	}()

	e.reply(t, i18n.Text(t.lang(), i18n.KeyAnalyzingSymptoms), nil)

	profile := e.loadProfile(t)
	out := e.recommender.Recommend(t.ctx, t.chatID, t.text, profile, t.lang())
	t.log.InfoContext(t.ctx, "Consultation finished", "outcome", out.Kind, "referral", out.Referral)

	defer t.detach()()

	if out.Kind != recommend.KindAdvice {
		e.reply(t, out.Text, nil)
		return
	}
	e.reply(t, i18n.Text(t.lang(), i18n.KeyRecommendation)+out.Text, nil)
	if out.Referral {
		e.reply(t, i18n.Text(t.lang(), i18n.KeyDoctorReferral), nil)
	}
}

// detach swaps the turn context for one that survives cancellation of the
// request context, bounded by finishTimeout.
func (t *turn) detach() context.CancelFunc {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(t.ctx), finishTimeout)
	t.ctx = ctx
	return cancel
}
