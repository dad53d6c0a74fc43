package form

import (
	"fmt"

	"github.com/izzat1998/exhibition-bot/core/telegram/helpers"
	"github.com/izzat1998/exhibition-bot/core/telegram/keyboard"
	"github.com/izzat1998/exhibition-bot/internal/lead"

	tele "gopkg.in/telebot.v4"
)

// Callback uniques. Telebot encodes buttons as "\f<unique>|<payload>"; the
// suggestion token budgets in the lead package assume these prefixes stay
// short.
const (
	cbBack        = "lead_back"
	cbSuggest     = "lead_suggest"
	cbCompanyType = "lead_company_type"
	cbTransport   = "lead_transport"
	cbMeeting     = "lead_meeting"
	cbDirection   = "lead_direction"
	cbDirDone     = "lead_dir_done"
	cbDirRetry    = "lead_dir_retry"
	cbCardSkip    = "lead_card_skip"
	cbOCRUse      = "lead_ocr_use"
	cbOCREdit     = "lead_ocr_edit"
	cbConfirm     = "lead_confirm"
	cbCancel      = "lead_cancel"
	cbRestart     = "lead_restart"
	cbTryAgain    = "lead_try_again"
	cbExhibition  = "lead_exhibition"
	cbRegCompany  = "reg_company"
	cbRegRetry    = "reg_retry"
)

var stepPrompts = map[lead.Step]string{
	lead.StepBusinessCard: "Please upload a photo of your business card, or type 'skip' to fill the form manually.",
	lead.StepFullName:     "What is your full name?",
	lead.StepPosition:     "What is the position in the company?",
	lead.StepPhone:        "What is the phone number?",
	lead.StepEmail:        "What is the email address?",
	lead.StepCompanyName:  "What is the company name?",
	lead.StepSphere:       "What is the company's sphere of activity?",
	lead.StepCompanyType:  "What is the company type?",
	lead.StepCargo:        "What type of cargo do you handle?",
	lead.StepTransport:    "What is the preferred mode of transport?",
	lead.StepVolume:       "What is your monthly shipment volume?",
	lead.StepDirections:   "Please select the shipment directions (you can select multiple):",
	lead.StepComments:     "Do you have any additional comments? (Type 'none' if you don't have any)",
	lead.StepMeetingPlace: "Where did the meeting take place?",
}

// stepPrompt renders the numbered prompt line for a step.
func stepPrompt(step lead.Step) string {
	return fmt.Sprintf("<b>Step %d/%d:</b> %s", lead.Number(step), lead.TotalSteps, stepPrompts[step])
}

// stepMarkup builds the inline keyboard for a step: an optional one-tap
// suggestion, the step's fixed choices, and a back button everywhere but the
// first step.
func (f *Flow) stepMarkup(d *lead.Draft, step lead.Step) *tele.ReplyMarkup {
	var rows [][]keyboard.InlineBtn

	if row, ok := suggestionRow(d, step); ok {
		rows = append(rows, row)
	}

	switch step {
	case lead.StepCompanyType:
		rows = append(rows, choiceRows(lead.CompanyTypeChoices, cbCompanyType)...)
	case lead.StepTransport:
		rows = append(rows, choiceRows(lead.TransportChoices, cbTransport)...)
	case lead.StepMeetingPlace:
		rows = append(rows, choiceRows(lead.MeetingPlaceChoices, cbMeeting)...)
	case lead.StepDirections:
		rows = append(rows, directionRows(d)...)
	}

	if step != lead.StepBusinessCard {
		rows = append(rows, []keyboard.InlineBtn{{Text: "⬅️ Back", Unique: cbBack}})
	}

	if len(rows) == 0 {
		return nil
	}
	return keyboard.InlineButtonsRows(rows...)
}

// suggestionRow offers the extracted value for the step's field, if the OCR
// cache has one. The callback payload carries a truncated token; the handler
// resolves the full value from the cache.
func suggestionRow(d *lead.Draft, step lead.Step) ([]keyboard.InlineBtn, bool) {
	field, ok := lead.SuggestionFor(step)
	if !ok {
		return nil, false
	}
	value := field.Value(d.Extracted)
	if value == "" {
		return nil, false
	}
	return []keyboard.InlineBtn{{
		Text:   "Use: " + value,
		Unique: cbSuggest,
		Data:   lead.EncodeSuggestion(field, value),
	}}, true
}

func choiceRows(choices []lead.Choice, unique string) [][]keyboard.InlineBtn {
	rows := make([][]keyboard.InlineBtn, 0, len(choices))
	for _, ch := range choices {
		rows = append(rows, []keyboard.InlineBtn{{Text: ch.Label, Unique: unique, Data: ch.Value}})
	}
	return rows
}

// directionRows renders the direction menu with a check mark on selected
// entries and the Done row beneath.
func directionRows(d *lead.Draft) [][]keyboard.InlineBtn {
	rows := make([][]keyboard.InlineBtn, 0, len(d.Available)+1)
	for _, dir := range d.Available {
		label := dir.Name
		if d.Directions.Has(dir.ID) {
			label = "✅ " + label
		}
		rows = append(rows, []keyboard.InlineBtn{{Text: label, Unique: cbDirection, Data: dir.ID}})
	}
	rows = append(rows, []keyboard.InlineBtn{{Text: "✅ Done", Unique: cbDirDone}})
	return rows
}

// askStep moves the conversation to step and shows its prompt under the
// running summary. prefix, when set, is an already-HTML-safe line confirming
// what the previous input did. edit replaces the triggering button message
// in place; otherwise a new message is sent.
func (f *Flow) askStep(c tele.Context, d *lead.Draft, step lead.Step, prefix string, edit bool) error {
	text := lead.Summary(d) + "\n\n" + stepPrompt(step)
	if prefix != "" {
		text = prefix + "\n\n" + text
	}

	f.setStep(keyOf(c), step)

	markup := f.stepMarkup(d, step)
	if edit {
		return helpers.EditOrSendHTML(c, text, markup)
	}
	return helpers.SendHTML(c, text, markup)
}
