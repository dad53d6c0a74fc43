package form

import (
	"strconv"
	"strings"

	"github.com/izzat1998/exhibition-bot/core/logger"
	"github.com/izzat1998/exhibition-bot/core/telegram/callbacks"
	"github.com/izzat1998/exhibition-bot/core/telegram/format"
	"github.com/izzat1998/exhibition-bot/core/telegram/helpers"
	"github.com/izzat1998/exhibition-bot/core/telegram/keyboard"
	"github.com/izzat1998/exhibition-bot/internal/api"
	"github.com/izzat1998/exhibition-bot/internal/lead"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

const exhibitionsKey = "exhibitions"

// StartLead begins a fresh lead conversation. When the backend lists active
// exhibitions the user picks one first; when the list cannot be fetched or
// is empty the form starts without an exhibition binding.
func (f *Flow) StartLead(c tele.Context) error {
	key := keyOf(c)
	f.endConversation(key)
	d := f.resetDraft(key)

	ctx := helpers.BuildContext(c)
	exhibitions, err := f.backend.Exhibitions(ctx)
	if err != nil || len(exhibitions) == 0 {
		if err != nil {
			logger.Warn(ctx, "form", "exhibitions.fetch_failed", slog.String("err", err.Error()))
		}
		return f.startForm(c, d, "", false)
	}

	f.mgr.SetTemp(key, exhibitionsKey, exhibitions)
	f.mgr.SetState(key, stateFor(lead.StepExhibition))

	rows := make([][]keyboard.InlineBtn, 0, len(exhibitions))
	for _, ex := range exhibitions {
		rows = append(rows, []keyboard.InlineBtn{{
			Text:   ex.Name,
			Unique: cbExhibition,
			Data:   strconv.FormatInt(ex.ID, 10),
		}})
	}
	text := "📋 <b>Lead Information Form</b>\n\nPlease select the exhibition this lead belongs to:"
	return helpers.SendHTML(c, text, keyboard.InlineButtonsRows(rows...))
}

// startForm opens the first step of the form proper.
func (f *Flow) startForm(c tele.Context, d *lead.Draft, prefix string, edit bool) error {
	f.setStep(keyOf(c), lead.StepBusinessCard)

	text := "📋 <b>Lead Information Form</b>\n\n" +
		"Let's start by uploading your business card for automatic information extraction.\n\n" +
		stepPrompt(lead.StepBusinessCard)
	if prefix != "" {
		text = prefix + "\n\n" + text
	}
	if edit {
		return helpers.EditOrSendHTML(c, text)
	}
	return helpers.SendHTML(c, text)
}

// onExhibition records the picked exhibition and opens the form.
func (f *Flow) onExhibition(c tele.Context) error {
	key := keyOf(c)
	step, ok := f.currentStep(key)
	if !ok || step != lead.StepExhibition {
		return c.Respond(&tele.CallbackResponse{Text: "This action is not available right now."})
	}

	id := callbacks.CallbackPayload(c)
	if id == "" {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown exhibition.", ShowAlert: true})
	}

	d := f.draft(key)
	d.ExhibitionID = id
	_ = c.Respond()

	prefix := ""
	if v, ok := f.mgr.GetTemp(key, exhibitionsKey); ok {
		if list, ok := v.([]api.Exhibition); ok {
			for _, ex := range list {
				if strconv.FormatInt(ex.ID, 10) == id {
					prefix = "Exhibition: <b>" + format.EscapeHTML(ex.Name) + "</b>"
					break
				}
			}
		}
	}
	return f.startForm(c, d, prefix, true)
}

// exhibitionStep handles text typed while the exhibition menu is up.
func (f *Flow) exhibitionStep() tele.HandlerFunc {
	return func(c tele.Context) error {
		if msg := c.Message(); msg != nil && strings.EqualFold(strings.TrimSpace(msg.Text), "skip") {
			return f.startForm(c, f.draft(keyOf(c)), "", false)
		}
		return helpers.SendHTML(c, "Please pick an exhibition using the buttons above, or type 'skip' to continue without one.")
	}
}
