package lead

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateTokenShortValue(t *testing.T) {
	if got := TruncateToken("short", 38); got != "short" {
		t.Fatalf("short value must pass through, got %q", got)
	}
}

func TestTruncateTokenByteBudget(t *testing.T) {
	long := strings.Repeat("a", 60)
	got := TruncateToken(long, 38)
	if len(got) > 38 {
		t.Fatalf("token %q exceeds 38 bytes (%d)", got, len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("truncated token %q must carry the suffix", got)
	}
}

func TestTruncateTokenRuneBoundary(t *testing.T) {
	// Cyrillic runes are two bytes each; the cut must never split one.
	long := strings.Repeat("ж", 40)
	for budget := 4; budget <= 40; budget++ {
		got := TruncateToken(long, budget)
		if len(got) > budget {
			t.Fatalf("budget %d: token is %d bytes", budget, len(got))
		}
		if !utf8.ValidString(got) {
			t.Fatalf("budget %d: token %q is not valid UTF-8", budget, got)
		}
	}
}

func TestTruncateTokenTinyBudget(t *testing.T) {
	// Budgets smaller than the suffix fall back to a hard byte cut.
	got := TruncateToken("abcdefgh", 2)
	if got != "ab" {
		t.Fatalf("expected hard cut %q, got %q", "ab", got)
	}
}

func TestSuggestionRoundTrip(t *testing.T) {
	ext := ExtractedData{
		"full_name": "Dr. Maximilian Aleksandrovich Oberhauser-Steinbrecher III",
	}
	payload := EncodeSuggestion(SuggestName, ext.FullName())

	field, token, ok := DecodeSuggestion(payload)
	if !ok {
		t.Fatalf("payload %q did not decode", payload)
	}
	if field != SuggestName {
		t.Fatalf("decoded field %q, expected %q", field, SuggestName)
	}
	if token == ext.FullName() {
		t.Fatal("token should have been truncated for this value")
	}
	// The stored value always comes from the live cache, not the token.
	if got := field.Value(ext); got != ext.FullName() {
		t.Fatalf("resolved value %q, expected original", got)
	}
}

func TestDecodeSuggestionRejectsGarbage(t *testing.T) {
	for _, payload := range []string{"", "name", "unknown:value"} {
		if _, _, ok := DecodeSuggestion(payload); ok {
			t.Fatalf("payload %q must not decode", payload)
		}
	}
}

func TestSuggestionForSteps(t *testing.T) {
	cases := map[Step]SuggestField{
		StepFullName:    SuggestName,
		StepPosition:    SuggestPosition,
		StepPhone:       SuggestPhone,
		StepEmail:       SuggestEmail,
		StepCompanyName: SuggestCompany,
	}
	for step, want := range cases {
		got, ok := SuggestionFor(step)
		if !ok || got != want {
			t.Fatalf("SuggestionFor(%s) = %s, expected %s", step, got, want)
		}
	}
	if _, ok := SuggestionFor(StepCargo); ok {
		t.Fatal("cargo step has no suggestion")
	}
}

func TestSuggestApply(t *testing.T) {
	d := NewDraft()
	SuggestPhone.Apply(d, "+998 90 123 45 67")
	if d.PhoneNumber != "+998 90 123 45 67" {
		t.Fatalf("phone not applied: %q", d.PhoneNumber)
	}
}
