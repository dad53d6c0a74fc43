package lead

import (
	"fmt"
	"strings"
	"testing"
)

func TestSummaryEmptyDraft(t *testing.T) {
	s := Summary(NewDraft())
	if !strings.Contains(s, "0/14 fields") {
		t.Fatalf("empty draft summary should report 0/14:\n%s", s)
	}
	if !strings.Contains(s, "] 0%") {
		t.Fatalf("empty draft summary should report 0%%:\n%s", s)
	}
}

func TestSummaryCountsAndPercentage(t *testing.T) {
	d := NewDraft()
	d.FullName = "Jane Roe"
	d.Position = "CTO"
	d.PhoneNumber = "+1 555 0100"
	d.Email = "jane@example.com"
	d.CompanyName = "Roe Logistics"
	d.Available = []Direction{{ID: "1", Name: "Central Asia"}, {ID: "2", Name: "Europe"}}
	d.Directions.Toggle("2")
	d.BusinessCardPhoto = "file-abc"

	filled := FilledCount(d)
	if filled != 7 {
		t.Fatalf("FilledCount = %d, expected 7", filled)
	}

	s := Summary(d)
	if !strings.Contains(s, fmt.Sprintf("%d/14 fields", filled)) {
		t.Fatalf("summary does not report %d/14:\n%s", filled, s)
	}
	pct := filled * 100 / 14
	if !strings.Contains(s, fmt.Sprintf("] %d%%", pct)) {
		t.Fatalf("summary does not report %d%%:\n%s", pct, s)
	}
	bar := strings.Repeat("█", pct/10) + strings.Repeat("░", 10-pct/10)
	if !strings.Contains(s, "["+bar+"]") {
		t.Fatalf("summary bar mismatch, expected [%s]:\n%s", bar, s)
	}
}

func TestSummaryRendersChoiceLabels(t *testing.T) {
	d := NewDraft()
	d.CompanyType = "importer_exporter"
	d.ModeOfTransport = "lcl"
	s := Summary(d)
	if !strings.Contains(s, "Importer/Exporter") {
		t.Fatalf("summary should show the company-type label:\n%s", s)
	}
	if strings.Contains(s, "importer_exporter") {
		t.Fatalf("summary must not leak the raw code:\n%s", s)
	}
	if !strings.Contains(s, "LCL") {
		t.Fatalf("summary should show the transport label:\n%s", s)
	}
}

func TestSummaryEscapesUserInput(t *testing.T) {
	d := NewDraft()
	d.FullName = "<script>alert(1)</script>"
	s := Summary(d)
	if strings.Contains(s, "<script>") {
		t.Fatalf("summary must escape user input:\n%s", s)
	}
}

func TestSummaryDirectionsNames(t *testing.T) {
	d := NewDraft()
	d.Available = []Direction{{ID: "10", Name: "CIS"}, {ID: "11", Name: "China"}}
	d.Directions.Toggle("11")
	d.Directions.Toggle("10")
	s := Summary(d)
	// Rendering keeps the menu order regardless of click order.
	if !strings.Contains(s, "CIS, China") {
		t.Fatalf("summary should list direction names in menu order:\n%s", s)
	}
}

func TestSummaryIdempotent(t *testing.T) {
	d := NewDraft()
	d.FullName = "A"
	d.Cargo = "steel"
	if Summary(d) != Summary(d) {
		t.Fatal("summary must be a pure function of the draft")
	}
}
