package form

import (
	"strings"

	"github.com/izzat1998/exhibition-bot/core/telegram/format"
	"github.com/izzat1998/exhibition-bot/core/telegram/helpers"
	"github.com/izzat1998/exhibition-bot/internal/lead"

	tele "gopkg.in/telebot.v4"
)

// textField describes a free-text step: where an accepted answer lands and
// the error shown when the input is rejected.
type textField struct {
	assign func(d *lead.Draft, v string)
	check  func(v string) string
}

func required(label string) func(string) string {
	return func(v string) string {
		if lead.IsBlank(v) {
			return "❌ <b>Error:</b> " + label + " cannot be empty."
		}
		return ""
	}
}

var textFields = map[lead.Step]textField{
	lead.StepFullName: {
		assign: func(d *lead.Draft, v string) { d.FullName = v },
		check: func(v string) string {
			if lead.IsBlank(v) {
				return "❌ <b>Error:</b> Name cannot be empty. Please enter your full name."
			}
			return ""
		},
	},
	lead.StepPosition: {
		assign: func(d *lead.Draft, v string) { d.Position = v },
		check:  required("Position"),
	},
	lead.StepPhone: {
		assign: func(d *lead.Draft, v string) { d.PhoneNumber = v },
		check: func(v string) string {
			if lead.IsBlank(v) {
				return "❌ <b>Error:</b> Phone number cannot be empty."
			}
			if !lead.ValidPhone(v) {
				return "❌ <b>Error:</b> Invalid phone number format."
			}
			return ""
		},
	},
	lead.StepEmail: {
		assign: func(d *lead.Draft, v string) { d.Email = v },
		check: func(v string) string {
			if lead.IsBlank(v) {
				return "❌ <b>Error:</b> Email cannot be empty."
			}
			if !lead.ValidEmail(v) {
				return "❌ <b>Error:</b> Invalid email format."
			}
			return ""
		},
	},
	lead.StepCompanyName: {
		assign: func(d *lead.Draft, v string) { d.CompanyName = v },
		check:  required("Company name"),
	},
	lead.StepSphere: {
		assign: func(d *lead.Draft, v string) { d.SphereOfActivity = v },
		check:  required("Sphere of activity"),
	},
	lead.StepCargo: {
		assign: func(d *lead.Draft, v string) { d.Cargo = v },
		check:  required("Cargo information"),
	},
	lead.StepVolume: {
		assign: func(d *lead.Draft, v string) { d.ShipmentVolume = v },
		check:  required("Shipment volume"),
	},
}

// textStep builds the handler for a free-text step. "back" always navigates;
// anything else is validated, stored and advances the form.
func (f *Flow) textStep(step lead.Step) tele.HandlerFunc {
	field := textFields[step]
	return func(c tele.Context) error {
		msg := c.Message()
		if msg == nil || msg.Text == "" {
			return helpers.SendHTML(c, "Please send the answer as a text message.")
		}
		text := strings.TrimSpace(msg.Text)
		if strings.EqualFold(text, "back") {
			return f.goBack(c)
		}
		if errText := field.check(text); errText != "" {
			return helpers.SendHTML(c, errText)
		}
		field.assign(f.draft(keyOf(c)), text)
		return f.advance(c, step, "", false)
	}
}

// commentsStep stores the free-form comment, treating "none" as an explicit
// empty comment so the step still counts as answered.
func (f *Flow) commentsStep() tele.HandlerFunc {
	return func(c tele.Context) error {
		msg := c.Message()
		if msg == nil || msg.Text == "" {
			return helpers.SendHTML(c, "Please send the answer as a text message.")
		}
		text := strings.TrimSpace(msg.Text)
		if strings.EqualFold(text, "back") {
			return f.goBack(c)
		}

		d := f.draft(keyOf(c))
		prefix := "No comments added."
		if !strings.EqualFold(text, "none") {
			d.Comments = text
			prefix = "Comments saved: <b>" + format.EscapeHTML(text) + "</b>"
		} else {
			d.Comments = ""
		}
		return f.advance(c, lead.StepComments, prefix, false)
	}
}

// buttonsOnly handles stray text at steps answered with inline buttons.
func (f *Flow) buttonsOnly(step lead.Step) tele.HandlerFunc {
	return func(c tele.Context) error {
		if msg := c.Message(); msg != nil && strings.EqualFold(strings.TrimSpace(msg.Text), "back") {
			return f.goBack(c)
		}
		d := f.draft(keyOf(c))
		return f.askStep(c, d, step, "Please use the buttons below.", false)
	}
}

// advance moves the conversation past a completed step. After the final step
// the form either asks for the still-missing business card or shows the
// review screen.
func (f *Flow) advance(c tele.Context, from lead.Step, prefix string, edit bool) error {
	d := f.draft(keyOf(c))
	next, ok := lead.Next(from)
	if !ok {
		if !d.CardResolved() {
			return f.askFinalCard(c, d, prefix, edit)
		}
		return f.showConfirmation(c, d, prefix, edit)
	}
	return f.enterStep(c, d, next, prefix, edit)
}

// enterStep routes to the step's prompt, with the directions step fetching
// its menu from the backend first.
func (f *Flow) enterStep(c tele.Context, d *lead.Draft, step lead.Step, prefix string, edit bool) error {
	if step == lead.StepDirections {
		refresh := len(d.Available) == 0
		return f.enterDirections(c, d, prefix, edit, refresh)
	}
	return f.askStep(c, d, step, prefix, edit)
}
