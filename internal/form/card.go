package form

import (
	"strings"

	"github.com/izzat1998/exhibition-bot/core/logger"
	"github.com/izzat1998/exhibition-bot/core/telegram/format"
	"github.com/izzat1998/exhibition-bot/core/telegram/helpers"
	"github.com/izzat1998/exhibition-bot/core/telegram/keyboard"
	"github.com/izzat1998/exhibition-bot/internal/lead"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// businessCardStep handles the business-card state. The same state serves
// both the opening prompt and the end-of-form prompt for users who skipped
// the card at the start; which one it is follows from what the draft already
// holds.
func (f *Flow) businessCardStep() tele.HandlerFunc {
	return func(c tele.Context) error {
		msg := c.Message()
		if msg == nil {
			return nil
		}
		if msg.Photo != nil {
			return f.handleCardPhoto(c, msg.Photo)
		}

		text := strings.TrimSpace(msg.Text)
		switch {
		case strings.EqualFold(text, "skip"):
			return f.skipCard(c)
		case strings.EqualFold(text, "back"):
			return f.goBack(c)
		default:
			return helpers.SendHTML(c, "Please upload a photo of your business card, or type 'skip' to fill the form manually.")
		}
	}
}

// handleCardPhoto downloads the photo, runs OCR and branches on whether this
// is the opening upload. Whether it is the opening upload must be decided
// before the extraction touches the draft.
func (f *Flow) handleCardPhoto(c tele.Context, photo *tele.Photo) error {
	key := keyOf(c)
	d := f.draft(key)
	initial := d.Empty()

	d.BusinessCardPhoto = photo.FileID
	d.BusinessCardSkipped = false

	_ = helpers.SendHTML(c, "<b>⏳ Processing business card...</b> This may take a moment.")

	ctx := helpers.BuildContext(c)
	var ext lead.ExtractedData
	content, err := f.files.Download(ctx, photo.FileID)
	if err == nil {
		ext, err = f.backend.BusinessCardOCR(ctx, content)
	}

	if err != nil || !ext.HasData() {
		if err != nil {
			logger.Warn(ctx, "form", "card.ocr_failed", slog.String("err", err.Error()))
		}
		_ = helpers.SendHTML(c, "<b>⚠️ Could not extract information from the business card.</b>")
		if initial {
			return f.askStep(c, d, lead.StepFullName, "Let's fill in the form manually.", false)
		}
		return f.showConfirmation(c, d, "", false)
	}

	if !initial {
		// Late upload: the fields are already collected, only keep the
		// extraction for reference and move to review.
		d.Extracted = ext
		prefix := "<b>✅ Business card processed.</b> Extracted (for reference):\n" + extractionPreview(ext)
		return f.showConfirmation(c, d, prefix, false)
	}

	lead.ApplyExtraction(d, ext)
	f.setStep(key, lead.StepOCRConfirm)

	markup := keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{{Text: "✅ Confirm and Continue", Unique: cbOCRUse}},
		[]keyboard.InlineBtn{{Text: "✏️ Edit Step by Step", Unique: cbOCREdit}},
		[]keyboard.InlineBtn{{Text: "⬅️ Back", Unique: cbBack}},
	)
	text := "<b>✅ Information extracted:</b>\n\n" + extractionPreview(ext) + "\n\nPlease confirm or choose to edit."
	return helpers.SendHTML(c, text, markup)
}

// extractionPreview lists the fields OCR managed to read.
func extractionPreview(ext lead.ExtractedData) string {
	var lines []string
	if v := ext.FullName(); v != "" {
		lines = append(lines, "📝 Name: "+format.EscapeHTML(v))
	}
	if v := ext.Position(); v != "" {
		lines = append(lines, "🏢 Position: "+format.EscapeHTML(v))
	}
	if v := ext.Phone(); v != "" {
		lines = append(lines, "📱 Phone: "+format.EscapeHTML(v))
	}
	if v := ext.Email(); v != "" {
		lines = append(lines, "📧 Email: "+format.EscapeHTML(v))
	}
	if v := ext.CompanyName(); v != "" {
		lines = append(lines, "🏭 Company: "+format.EscapeHTML(v))
	}
	return strings.Join(lines, "\n")
}

// askFinalCard prompts for the business card once the rest of the form is
// complete and the card was neither uploaded nor skipped.
func (f *Flow) askFinalCard(c tele.Context, d *lead.Draft, prefix string, edit bool) error {
	f.setStep(keyOf(c), lead.StepBusinessCard)

	text := "<b>Final Step: Business Card</b>\n\nPlease upload a photo of your business card or use the button below to skip this step."
	if prefix != "" {
		text = prefix + "\n\n" + text
	}
	markup := keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{{Text: "Skip Business Card", Unique: cbCardSkip}},
	)
	if edit {
		return helpers.EditOrSendHTML(c, text, markup)
	}
	return helpers.SendHTML(c, text, markup)
}

// skipCard records an explicit skip. At the start it drops into manual form
// filling; at the end it goes straight to review.
func (f *Flow) skipCard(c tele.Context) error {
	key := keyOf(c)
	d := f.draft(key)
	initial := d.Empty()

	d.BusinessCardSkipped = true
	d.BusinessCardPhoto = ""

	if initial {
		_ = helpers.SendHTML(c, "<b>Manual form filling selected.</b>\n\nLet's proceed with the form step by step.")
		return f.askStep(c, d, lead.StepFullName, "", false)
	}
	_ = helpers.SendText(c, "Business card photo upload skipped.")
	return f.showConfirmation(c, d, "", false)
}

// onCardSkip is the inline skip button of the end-of-form card prompt.
func (f *Flow) onCardSkip(c tele.Context) error {
	step, ok := f.currentStep(keyOf(c))
	if !ok || step != lead.StepBusinessCard {
		return c.Respond(&tele.CallbackResponse{Text: "This action is not available right now."})
	}
	_ = c.Respond()
	return f.skipCard(c)
}

// ocrConfirmStep handles text typed while the confirmation buttons are up.
func (f *Flow) ocrConfirmStep() tele.HandlerFunc {
	return func(c tele.Context) error {
		if msg := c.Message(); msg != nil && strings.EqualFold(strings.TrimSpace(msg.Text), "back") {
			return f.goBack(c)
		}
		return helpers.SendHTML(c, "Please confirm the extracted information or choose to edit it using the buttons above.")
	}
}

// onOCRUse accepts the extracted values and jumps past the contact steps the
// extraction managed to fill.
func (f *Flow) onOCRUse(c tele.Context) error {
	key := keyOf(c)
	step, ok := f.currentStep(key)
	if !ok || step != lead.StepOCRConfirm {
		return c.Respond(&tele.CallbackResponse{Text: "This action is not available right now."})
	}
	_ = c.Respond(&tele.CallbackResponse{Text: "Data confirmed! Proceeding..."})

	d := f.draft(key)
	return f.enterStep(c, d, lead.NextAfterConfirm(d), "", true)
}

// onOCREdit discards the auto-filled contact fields and walks them step by
// step, with the extraction kept for one-tap suggestions.
func (f *Flow) onOCREdit(c tele.Context) error {
	key := keyOf(c)
	step, ok := f.currentStep(key)
	if !ok || step != lead.StepOCRConfirm {
		return c.Respond(&tele.CallbackResponse{Text: "This action is not available right now."})
	}
	_ = c.Respond(&tele.CallbackResponse{Text: "Continuing with step-by-step process..."})

	d := f.draft(key)
	d.ResetAutoFilled()
	return f.askStep(c, d, lead.StepFullName, "", true)
}
