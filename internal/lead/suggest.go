package lead

import (
	"strings"
	"unicode/utf8"
)

// SuggestField is the closed set of fields a one-tap "use extracted value"
// suggestion can target.
type SuggestField string

const (
	SuggestName     SuggestField = "name"
	SuggestPosition SuggestField = "position"
	SuggestPhone    SuggestField = "phone"
	SuggestEmail    SuggestField = "email"
	SuggestCompany  SuggestField = "company"
)

// suggestionSuffix marks a truncated suggestion token.
const suggestionSuffix = "..."

// suggestionBudget caps the token's UTF-8 byte length per field. Telegram
// limits callback data to 64 bytes; the budgets leave room for the routing
// prefix in front of the value.
var suggestionBudget = map[SuggestField]int{
	SuggestName:     38,
	SuggestPosition: 30,
	SuggestPhone:    35,
	SuggestEmail:    35,
	SuggestCompany:  30,
}

// suggestionSteps binds each suggestion field to the form step it fills.
var suggestionSteps = map[SuggestField]Step{
	SuggestName:     StepFullName,
	SuggestPosition: StepPosition,
	SuggestPhone:    StepPhone,
	SuggestEmail:    StepEmail,
	SuggestCompany:  StepCompanyName,
}

// SuggestionFor returns the suggestion field belonging to a form step, if the
// step has one.
func SuggestionFor(step Step) (SuggestField, bool) {
	for f, st := range suggestionSteps {
		if st == step {
			return f, true
		}
	}
	return "", false
}

// Step returns the form step the suggestion fills.
func (f SuggestField) Step() Step {
	return suggestionSteps[f]
}

// Budget returns the token byte budget of the field, defaulting conservatively
// for unknown fields.
func (f SuggestField) Budget() int {
	if b, ok := suggestionBudget[f]; ok {
		return b
	}
	return 30
}

// Value resolves the live extracted value of the field from the cache.
func (f SuggestField) Value(ext ExtractedData) string {
	switch f {
	case SuggestName:
		return ext.FullName()
	case SuggestPosition:
		return ext.Position()
	case SuggestPhone:
		return ext.Phone()
	case SuggestEmail:
		return ext.Email()
	case SuggestCompany:
		return ext.CompanyName()
	}
	return ""
}

// Apply writes value into the draft slot the field targets.
func (f SuggestField) Apply(d *Draft, value string) {
	switch f {
	case SuggestName:
		d.FullName = value
	case SuggestPosition:
		d.Position = value
	case SuggestPhone:
		d.PhoneNumber = value
	case SuggestEmail:
		d.Email = value
	case SuggestCompany:
		d.CompanyName = value
	}
}

// EncodeSuggestion produces the callback payload "<field>:<token>" where the
// token is the value truncated to the field's byte budget.
func EncodeSuggestion(f SuggestField, value string) string {
	return string(f) + ":" + TruncateToken(value, f.Budget())
}

// DecodeSuggestion splits a suggestion payload into field and display token.
// The token is never trusted as the stored value; callers resolve the live
// value from the extraction cache via Value.
func DecodeSuggestion(payload string) (SuggestField, string, bool) {
	field, token, ok := strings.Cut(payload, ":")
	if !ok {
		return "", "", false
	}
	f := SuggestField(field)
	if _, known := suggestionSteps[f]; !known {
		return "", "", false
	}
	return f, token, true
}

// TruncateToken trims value to at most maxBytes bytes of UTF-8, cutting only
// on whole-rune boundaries and appending "..." when something was dropped.
// When the budget cannot even hold the suffix the value is hard-truncated to
// the raw budget as a last resort, rune safety be damned.
func TruncateToken(value string, maxBytes int) string {
	if len(value) <= maxBytes {
		return value
	}

	room := maxBytes - len(suggestionSuffix)
	if room <= 0 {
		return value[:maxBytes]
	}

	cut := 0
	for i, r := range value {
		if i+utf8.RuneLen(r) > room {
			break
		}
		cut = i + utf8.RuneLen(r)
	}
	return value[:cut] + suggestionSuffix
}
