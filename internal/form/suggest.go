package form

import (
	"strings"

	"github.com/izzat1998/exhibition-bot/core/telegram/callbacks"
	"github.com/izzat1998/exhibition-bot/internal/lead"

	tele "gopkg.in/telebot.v4"
)

// onSuggestion applies a one-tap suggestion. The callback token may be
// truncated to fit the callback-data limit, so the stored value is resolved
// from the extraction cache and the token only serves as a fallback.
func (f *Flow) onSuggestion(c tele.Context) error {
	field, token, ok := lead.DecodeSuggestion(callbacks.CallbackPayload(c))
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid suggestion format.", ShowAlert: true})
	}

	key := keyOf(c)
	step, active := f.currentStep(key)
	if !active || step != field.Step() {
		return c.Respond(&tele.CallbackResponse{Text: "This suggestion is no longer available."})
	}

	d := f.draft(key)
	value := field.Value(d.Extracted)
	if value == "" {
		value = strings.TrimSuffix(token, "...")
	}
	field.Apply(d, value)

	_ = c.Respond(&tele.CallbackResponse{Text: "Value applied."})
	return f.advance(c, step, "", true)
}
