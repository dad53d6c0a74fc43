package form

import (
	"strings"

	"github.com/izzat1998/exhibition-bot/core/logger"
	"github.com/izzat1998/exhibition-bot/core/telegram/callbacks"
	"github.com/izzat1998/exhibition-bot/core/telegram/format"
	"github.com/izzat1998/exhibition-bot/core/telegram/helpers"
	"github.com/izzat1998/exhibition-bot/core/telegram/keyboard"
	"github.com/izzat1998/exhibition-bot/internal/lead"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// enterDirections shows the multi-select directions menu, fetching it from
// the backend when refresh is set or nothing is cached yet. On a fetch
// failure the conversation stays at its current step so the retry button can
// run the fetch again.
func (f *Flow) enterDirections(c tele.Context, d *lead.Draft, prefix string, edit, refresh bool) error {
	if refresh || len(d.Available) == 0 {
		ctx := helpers.BuildContext(c)
		dirs, err := f.backend.ShipmentDirections(ctx)
		if err != nil {
			logger.Warn(ctx, "form", "directions.fetch_failed", slog.String("err", err.Error()))
			text := lead.Summary(d) + "\n\n❌ Unable to fetch shipment directions. Please try again later or go back."
			markup := keyboard.InlineButtonsRows(
				[]keyboard.InlineBtn{{Text: "🔄 Try Again", Unique: cbDirRetry}},
				[]keyboard.InlineBtn{{Text: "⬅️ Back", Unique: cbBack}},
			)
			if edit {
				return helpers.EditOrSendHTML(c, text, markup)
			}
			return helpers.SendHTML(c, text, markup)
		}
		if len(dirs) == 0 {
			text := lead.Summary(d) + "\n\n❌ No shipment directions available. Please try again later."
			markup := keyboard.InlineButtonsRows(
				[]keyboard.InlineBtn{{Text: "⬅️ Back", Unique: cbBack}},
			)
			if edit {
				return helpers.EditOrSendHTML(c, text, markup)
			}
			return helpers.SendHTML(c, text, markup)
		}
		d.Available = dirs
		d.Directions.Clear()
	}
	return f.askStep(c, d, lead.StepDirections, prefix, edit)
}

// onDirectionsRetry re-runs the directions fetch after a failure.
func (f *Flow) onDirectionsRetry(c tele.Context) error {
	key := keyOf(c)
	step, ok := f.currentStep(key)
	if !ok || (step != lead.StepVolume && step != lead.StepDirections) {
		return c.Respond(&tele.CallbackResponse{Text: "This action is not available right now."})
	}
	_ = c.Respond(&tele.CallbackResponse{Text: "Retrying to fetch shipment directions..."})
	return f.enterDirections(c, f.draft(key), "", true, true)
}

// onDirectionToggle flips one direction in or out of the selection and
// redraws the menu in place.
func (f *Flow) onDirectionToggle(c tele.Context) error {
	key := keyOf(c)
	step, ok := f.currentStep(key)
	if !ok || step != lead.StepDirections {
		return c.Respond(&tele.CallbackResponse{Text: "This action is not available right now."})
	}

	id := callbacks.CallbackPayload(c)
	d := f.draft(key)
	selected := d.Directions.Toggle(id)

	name := "Direction " + id
	for _, dir := range d.Available {
		if dir.ID == id {
			name = dir.Name
			break
		}
	}
	action := "removed from"
	if selected {
		action = "added to"
	}

	_ = c.Respond()
	prefix := "<b>" + format.EscapeHTML(name) + "</b> " + action + " your selected directions."
	return f.askStep(c, d, lead.StepDirections, prefix, true)
}

// onDirectionsDone leaves the menu, requiring at least one selection.
func (f *Flow) onDirectionsDone(c tele.Context) error {
	key := keyOf(c)
	step, ok := f.currentStep(key)
	if !ok || step != lead.StepDirections {
		return c.Respond(&tele.CallbackResponse{Text: "This action is not available right now."})
	}

	d := f.draft(key)
	if d.Directions.Len() == 0 {
		return c.Respond(&tele.CallbackResponse{Text: "Please select at least one shipment direction.", ShowAlert: true})
	}

	_ = c.Respond()
	names := d.Directions.Names(d.Available)
	prefix := "Selected directions: <b>" + format.EscapeHTML(strings.Join(names, ", ")) + "</b>"
	return f.advance(c, lead.StepDirections, prefix, true)
}
