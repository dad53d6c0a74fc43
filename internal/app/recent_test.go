package app

import (
	"strings"
	"testing"
	"time"

	"github.com/izzat1998/exhibition-bot/internal/journal"
)

func TestFormatRecentEmpty(t *testing.T) {
	got := formatRecent(42, nil)
	if got != "No recorded submissions for <b>42</b>." {
		t.Fatalf("unexpected empty-journal text: %q", got)
	}
}

func TestFormatRecentEntries(t *testing.T) {
	when := time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC)
	entries := []journal.Entry{
		{Status: 201, Accepted: true, CreatedAt: when},
		{Status: 400, Accepted: false, Detail: "phone <invalid>", CreatedAt: when},
	}

	got := formatRecent(42, entries)

	if !strings.Contains(got, "Latest submissions for <b>42</b>:") {
		t.Errorf("missing header in %q", got)
	}
	if !strings.Contains(got, "✅ 2026-08-30 14:05 — status 201") {
		t.Errorf("missing accepted line in %q", got)
	}
	if !strings.Contains(got, "❌ 2026-08-30 14:05 — status 400: phone &lt;invalid&gt;") {
		t.Errorf("missing rejected line with escaped detail in %q", got)
	}
}
