package form

import (
	"github.com/izzat1998/exhibition-bot/core/telegram/callbacks"
	"github.com/izzat1998/exhibition-bot/core/telegram/format"
	"github.com/izzat1998/exhibition-bot/internal/lead"

	tele "gopkg.in/telebot.v4"
)

// choiceHandler builds the callback handler for a fixed-choice step. The
// payload carries the machine value; the confirmation line shows its label.
func (f *Flow) choiceHandler(step lead.Step, choices []lead.Choice, caption string, assign func(*lead.Draft, string)) tele.HandlerFunc {
	return func(c tele.Context) error {
		key := keyOf(c)
		current, ok := f.currentStep(key)
		if !ok || current != step {
			return c.Respond(&tele.CallbackResponse{Text: "This action is not available right now."})
		}

		value := callbacks.CallbackPayload(c)
		known := false
		for _, ch := range choices {
			if ch.Value == value {
				known = true
				break
			}
		}
		if !known {
			return c.Respond(&tele.CallbackResponse{Text: "Unknown option.", ShowAlert: true})
		}

		d := f.draft(key)
		assign(d, value)
		_ = c.Respond()

		label := lead.ChoiceLabel(choices, value)
		prefix := caption + ": <b>" + format.EscapeHTML(label) + "</b>"
		return f.advance(c, step, prefix, true)
	}
}

func (f *Flow) onCompanyType() tele.HandlerFunc {
	return f.choiceHandler(lead.StepCompanyType, lead.CompanyTypeChoices, "Selected company type",
		func(d *lead.Draft, v string) { d.CompanyType = v })
}

func (f *Flow) onTransport() tele.HandlerFunc {
	return f.choiceHandler(lead.StepTransport, lead.TransportChoices, "Selected transport mode",
		func(d *lead.Draft, v string) { d.ModeOfTransport = v })
}

func (f *Flow) onMeetingPlace() tele.HandlerFunc {
	return f.choiceHandler(lead.StepMeetingPlace, lead.MeetingPlaceChoices, "Meeting place saved",
		func(d *lead.Draft, v string) { d.MeetingPlace = v })
}
