package lead

import "testing"

func TestIsBlank(t *testing.T) {
	for _, s := range []string{"", " ", "\t\n "} {
		if !IsBlank(s) {
			t.Fatalf("%q should be blank", s)
		}
	}
	if IsBlank(" x ") {
		t.Fatal("non-empty text is not blank")
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "jane.roe+tag@example.com", "x_1@sub.domain.org"}
	for _, e := range valid {
		if !ValidEmail(e) {
			t.Fatalf("%q should be valid", e)
		}
	}
	invalid := []string{"", "plain", "a@b", "a @b.co", "@example.com", "a@.com"}
	for _, e := range invalid {
		if ValidEmail(e) {
			t.Fatalf("%q should be invalid", e)
		}
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{"+998901234567", "555-0100", "(01) 23 45 67", "123456"}
	for _, p := range valid {
		if !ValidPhone(p) {
			t.Fatalf("%q should be valid", p)
		}
	}
	invalid := []string{"", "12345", "call me", "123456x"}
	for _, p := range invalid {
		if ValidPhone(p) {
			t.Fatalf("%q should be invalid", p)
		}
	}
}
