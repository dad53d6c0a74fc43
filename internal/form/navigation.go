package form

import (
	"github.com/izzat1998/exhibition-bot/core/telegram/helpers"
	"github.com/izzat1998/exhibition-bot/internal/lead"

	tele "gopkg.in/telebot.v4"
)

// goBack moves the conversation one step back in the fixed order. The
// transient confirmation screen returns to the business-card step; the first
// step has nowhere to go.
func (f *Flow) goBack(c tele.Context) error {
	key := keyOf(c)
	step, ok := f.currentStep(key)
	if !ok {
		if c.Callback() != nil {
			return c.Respond(&tele.CallbackResponse{Text: "Cannot go back from this state."})
		}
		return nil
	}

	prev, ok := lead.Prev(step)
	if !ok {
		if c.Callback() != nil {
			return c.Respond(&tele.CallbackResponse{Text: "You are at the first step already.", ShowAlert: true})
		}
		return helpers.SendText(c, "You are at the first step already.")
	}

	if c.Callback() != nil {
		_ = c.Respond(&tele.CallbackResponse{Text: "Moved back to the previous step."})
	}

	d := f.draft(key)
	// The photo prompt always goes out as a fresh message so the message
	// being edited does not lose its context.
	if prev == lead.StepBusinessCard {
		return f.askStep(c, d, prev, "", false)
	}
	return f.enterStep(c, d, prev, "", c.Callback() != nil)
}

// onBack handles the inline back button.
func (f *Flow) onBack(c tele.Context) error {
	return f.goBack(c)
}
