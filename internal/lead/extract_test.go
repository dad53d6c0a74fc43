package lead

import "testing"

func fullExtraction() ExtractedData {
	return ExtractedData{
		"full_name":    "Jane Roe",
		"position":     "CTO",
		"phone":        "+1 555 0100",
		"email":        "jane@example.com",
		"company_name": "Roe Logistics",
	}
}

func TestApplyExtractionAllFieldsValid(t *testing.T) {
	d := NewDraft()
	all := ApplyExtraction(d, fullExtraction())
	if !all {
		t.Fatal("all contact fields present, expected true")
	}
	if d.FullName != "Jane Roe" || d.PhoneNumber != "+1 555 0100" || d.Email != "jane@example.com" {
		t.Fatalf("draft not pre-filled: %+v", d)
	}
	if next := NextAfterConfirm(d); next != StepSphere {
		t.Fatalf("confirm should land on sphere step, got %s", next)
	}
}

func TestApplyExtractionInvalidPhoneLeftUnset(t *testing.T) {
	ext := fullExtraction()
	ext["phone"] = "call me"
	d := NewDraft()
	all := ApplyExtraction(d, ext)
	if all {
		t.Fatal("invalid phone must clear the all-present flag")
	}
	if d.PhoneNumber != "" {
		t.Fatalf("invalid phone must stay unset, got %q", d.PhoneNumber)
	}
	if d.FullName == "" || d.Email == "" || d.CompanyName == "" {
		t.Fatalf("other fields should still be filled: %+v", d)
	}
	if next := NextAfterConfirm(d); next != StepPhone {
		t.Fatalf("confirm should land on phone step, got %s", next)
	}
}

func TestApplyExtractionInvalidEmailLeftUnset(t *testing.T) {
	ext := fullExtraction()
	ext["email"] = "nonsense"
	d := NewDraft()
	if ApplyExtraction(d, ext) {
		t.Fatal("invalid email must clear the all-present flag")
	}
	if d.Email != "" {
		t.Fatalf("invalid email must stay unset, got %q", d.Email)
	}
	if next := NextAfterConfirm(d); next != StepEmail {
		t.Fatalf("confirm should land on email step, got %s", next)
	}
}

func TestApplyExtractionPhoneNumberKeyFallback(t *testing.T) {
	ext := ExtractedData{"phone_number": "+998 71 200 00 00"}
	d := NewDraft()
	ApplyExtraction(d, ext)
	if d.PhoneNumber != "+998 71 200 00 00" {
		t.Fatalf("phone_number key not honoured, got %q", d.PhoneNumber)
	}
}

func TestResetAutoFilledKeepsExtractionCache(t *testing.T) {
	d := NewDraft()
	ApplyExtraction(d, fullExtraction())
	d.ResetAutoFilled()
	if d.FullName != "" || d.Email != "" {
		t.Fatalf("reset should clear contact fields: %+v", d)
	}
	if d.Extracted.FullName() != "Jane Roe" {
		t.Fatal("reset must keep the extraction cache for suggestions")
	}
}

func TestHasData(t *testing.T) {
	if (ExtractedData{}).HasData() {
		t.Fatal("empty extraction has no data")
	}
	if (ExtractedData{"full_name": ""}).HasData() {
		t.Fatal("blank values do not count as data")
	}
	if !(ExtractedData{"email": "a@b.co"}).HasData() {
		t.Fatal("expected data present")
	}
}
