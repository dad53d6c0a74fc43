package form

import (
	"strings"
	"testing"

	"github.com/izzat1998/exhibition-bot/internal/lead"
)

func TestStepPromptNumbering(t *testing.T) {
	cases := []struct {
		step lead.Step
		want string
	}{
		{lead.StepBusinessCard, "<b>Step 1/14:</b>"},
		{lead.StepFullName, "<b>Step 2/14:</b>"},
		{lead.StepDirections, "<b>Step 12/14:</b>"},
		{lead.StepMeetingPlace, "<b>Step 14/14:</b>"},
	}
	for _, tc := range cases {
		got := stepPrompt(tc.step)
		if !strings.HasPrefix(got, tc.want) {
			t.Errorf("stepPrompt(%s) = %q, want prefix %q", tc.step, got, tc.want)
		}
	}
}

func TestSuggestionRowFromExtraction(t *testing.T) {
	d := lead.NewDraft()
	d.Extracted = lead.ExtractedData{"full_name": "Aziza Rakhimova"}

	row, ok := suggestionRow(d, lead.StepFullName)
	if !ok {
		t.Fatal("expected a suggestion row for the full-name step")
	}
	if row[0].Text != "Use: Aziza Rakhimova" {
		t.Errorf("button text = %q", row[0].Text)
	}
	if row[0].Unique != cbSuggest {
		t.Errorf("button unique = %q, want %q", row[0].Unique, cbSuggest)
	}
	if row[0].Data != "name:Aziza Rakhimova" {
		t.Errorf("button data = %q", row[0].Data)
	}
}

func TestSuggestionRowAbsentWithoutValue(t *testing.T) {
	d := lead.NewDraft()
	if _, ok := suggestionRow(d, lead.StepFullName); ok {
		t.Fatal("no extraction cached, expected no suggestion row")
	}
	d.Extracted = lead.ExtractedData{"email": "a@b.co"}
	if _, ok := suggestionRow(d, lead.StepPhone); ok {
		t.Fatal("no phone extracted, expected no suggestion row")
	}
	if _, ok := suggestionRow(d, lead.StepCargo); ok {
		t.Fatal("cargo step has no suggestion field")
	}
}

func TestDirectionRowsMarkSelection(t *testing.T) {
	d := lead.NewDraft()
	d.Available = []lead.Direction{
		{ID: "1", Name: "China"},
		{ID: "2", Name: "Europe"},
	}
	d.Directions.Toggle("2")

	rows := directionRows(d)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 2 directions + done", len(rows))
	}
	if rows[0][0].Text != "China" {
		t.Errorf("unselected row text = %q", rows[0][0].Text)
	}
	if rows[1][0].Text != "✅ Europe" {
		t.Errorf("selected row text = %q", rows[1][0].Text)
	}
	if rows[2][0].Unique != cbDirDone {
		t.Errorf("last row unique = %q, want %q", rows[2][0].Unique, cbDirDone)
	}
}

func TestStepMarkupBackButton(t *testing.T) {
	f := &Flow{}
	d := lead.NewDraft()

	if m := f.stepMarkup(d, lead.StepBusinessCard); m != nil {
		t.Fatalf("first step should carry no keyboard, got %d rows", len(m.InlineKeyboard))
	}

	m := f.stepMarkup(d, lead.StepFullName)
	if m == nil {
		t.Fatal("expected a keyboard with a back button")
	}
	last := m.InlineKeyboard[len(m.InlineKeyboard)-1]
	if last[0].Text != "⬅️ Back" {
		t.Errorf("last row = %q, want the back button", last[0].Text)
	}
}

func TestStepMarkupChoiceRows(t *testing.T) {
	f := &Flow{}
	d := lead.NewDraft()

	m := f.stepMarkup(d, lead.StepTransport)
	if m == nil {
		t.Fatal("expected transport keyboard")
	}
	// Five transport modes plus the back row.
	if len(m.InlineKeyboard) != len(lead.TransportChoices)+1 {
		t.Fatalf("got %d rows, want %d", len(m.InlineKeyboard), len(lead.TransportChoices)+1)
	}
	if m.InlineKeyboard[0][0].Text != "Wagons" {
		t.Errorf("first choice = %q", m.InlineKeyboard[0][0].Text)
	}
}
