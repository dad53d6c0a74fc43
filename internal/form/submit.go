package form

import (
	"github.com/izzat1998/exhibition-bot/core/logger"
	"github.com/izzat1998/exhibition-bot/core/telegram/format"
	"github.com/izzat1998/exhibition-bot/core/telegram/helpers"
	"github.com/izzat1998/exhibition-bot/core/telegram/keyboard"
	"github.com/izzat1998/exhibition-bot/internal/lead"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// showConfirmation presents the review screen with the full summary and the
// submission controls.
func (f *Flow) showConfirmation(c tele.Context, d *lead.Draft, prefix string, edit bool) error {
	f.mgr.SetState(keyOf(c), stateConfirm)

	text := lead.Summary(d) + "\n\n<b>✅ Lead Information Complete</b>\n\nPlease review the information above and confirm if it's correct."
	if prefix != "" {
		text = prefix + "\n\n" + text
	}
	markup := keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{{Text: "✅ Confirm", Unique: cbConfirm}},
		[]keyboard.InlineBtn{{Text: "❌ Cancel", Unique: cbCancel}},
		[]keyboard.InlineBtn{{Text: "🔄 Restart", Unique: cbRestart}},
	)
	if edit {
		return helpers.EditOrSendHTML(c, text, markup)
	}
	return helpers.SendHTML(c, text, markup)
}

// confirmStep handles text typed while the review screen is up.
func (f *Flow) confirmStep() tele.HandlerFunc {
	return func(c tele.Context) error {
		d := f.draft(keyOf(c))
		return f.showConfirmation(c, d, "Please use the buttons below to confirm, cancel or restart.", false)
	}
}

// onConfirm submits the collected lead to the backend.
func (f *Flow) onConfirm(c tele.Context) error {
	key := keyOf(c)
	if f.mgr.GetState(key) != stateConfirm {
		return c.Respond(&tele.CallbackResponse{Text: "This action is not available right now."})
	}
	_ = c.Respond()
	_ = helpers.EditOrSendHTML(c, "<b>⏳ Processing...</b>\n\nSubmitting your lead information. Please wait.")
	return f.submit(c)
}

// onTryAgain resubmits after a failed attempt. The draft is kept across
// failures so nothing has to be re-entered.
func (f *Flow) onTryAgain(c tele.Context) error {
	key := keyOf(c)
	if f.mgr.GetState(key) != stateConfirm {
		return c.Respond(&tele.CallbackResponse{Text: "This action is not available right now."})
	}
	_ = c.Respond(&tele.CallbackResponse{Text: "Retrying submission..."})
	_ = helpers.EditOrSendHTML(c, "<b>⏳ Processing...</b>\n\nSubmitting your lead information. Please wait.")
	return f.submit(c)
}

func (f *Flow) submit(c tele.Context) error {
	key := keyOf(c)
	d := f.draft(key)
	ctx := helpers.BuildContext(c)
	telegramID := c.Sender().ID
	payload := BuildPayload(telegramID, d)

	// A card photo that cannot be fetched any more degrades the submission
	// to text only instead of blocking it.
	var photo []byte
	if d.BusinessCardPhoto != "" {
		content, err := f.files.Download(ctx, d.BusinessCardPhoto)
		if err != nil {
			logger.Warn(ctx, "form", "submit.photo_download_failed", slog.String("err", err.Error()))
		} else {
			photo = content
		}
	}

	res, err := f.backend.CreateLead(ctx, payload, photo)
	if f.journal != nil {
		detail := res.Detail
		if err != nil && detail == "" {
			detail = err.Error()
		}
		if jerr := f.journal.Record(ctx, telegramID, payload, res.Status, detail); jerr != nil {
			logger.Error(ctx, "form", "submit.journal_failed", slog.String("err", jerr.Error()))
		}
	}

	if err != nil || !res.OK() {
		detail := res.Detail
		if detail == "" {
			if err != nil {
				detail = err.Error()
			} else {
				detail = "Unknown error"
			}
		}
		logger.Warn(ctx, "form", "submit.rejected",
			slog.Int("status", res.Status),
			slog.String("detail", detail),
		)
		text := "<b>❌ Error!</b>\n\nThere was a problem submitting your lead information. Error: " +
			format.EscapeHTML(detail) + "\n\nYour answers are kept, you can retry."
		markup := keyboard.InlineButtonsRows(
			[]keyboard.InlineBtn{{Text: "🔄 Try Again", Unique: cbTryAgain}},
			[]keyboard.InlineBtn{{Text: "❌ Cancel", Unique: cbCancel}},
		)
		return helpers.EditOrSendHTML(c, text, markup)
	}

	logger.Info(ctx, "form", "submit.accepted",
		slog.Int("status", res.Status),
		slog.Int("directions", len(payload.ShipmentDirections)),
	)
	f.endConversation(key)
	return helpers.EditOrSendHTML(c, "<b>✅ Success!</b>\n\nThank you! Your lead information has been submitted successfully.")
}

// onCancel abandons the submission and drops the draft.
func (f *Flow) onCancel(c tele.Context) error {
	_ = c.Respond()
	f.endConversation(keyOf(c))
	return helpers.EditOrSendHTML(c, "<b>❌ Cancelled</b>\n\nLead submission cancelled. You can start again with the /lead command.")
}

// onRestart throws the draft away and begins the form from the first step.
func (f *Flow) onRestart(c tele.Context) error {
	key := keyOf(c)
	_ = c.Respond(&tele.CallbackResponse{Text: "Restarting the form..."})

	f.endConversation(key)
	f.resetDraft(key)
	f.setStep(key, lead.StepBusinessCard)

	text := "📋 <b>Lead Information Form Restarted</b>\n\n" +
		"Let's start by uploading your business card for automatic information extraction.\n\n" +
		stepPrompt(lead.StepBusinessCard)
	return helpers.EditOrSendHTML(c, text)
}
