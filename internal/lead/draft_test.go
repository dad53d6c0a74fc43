package lead

import "testing"

func TestEmptyFreshDraft(t *testing.T) {
	if !NewDraft().Empty() {
		t.Fatal("fresh draft should be empty")
	}
}

func TestEmptyIgnoresPhotoAndCaches(t *testing.T) {
	d := NewDraft()
	d.BusinessCardPhoto = "file-123"
	d.Extracted = ExtractedData{"full_name": "Someone"}
	d.ExhibitionID = "7"
	if !d.Empty() {
		t.Fatal("a stale photo reference and caches alone should still count as an empty form")
	}
}

func TestEmptyAnyFilledField(t *testing.T) {
	cases := map[string]func(*Draft){
		"full name":  func(d *Draft) { d.FullName = "A" },
		"comments":   func(d *Draft) { d.Comments = "note" },
		"directions": func(d *Draft) { d.Directions.Toggle("1") },
	}
	for name, fill := range cases {
		d := NewDraft()
		fill(d)
		if d.Empty() {
			t.Errorf("%s set, expected Empty() = false", name)
		}
	}
}

func TestCardResolved(t *testing.T) {
	d := NewDraft()
	if d.CardResolved() {
		t.Fatal("nothing resolved yet")
	}
	d.BusinessCardSkipped = true
	if !d.CardResolved() {
		t.Fatal("explicit skip resolves the card slot")
	}
	d = NewDraft()
	d.BusinessCardPhoto = "file-123"
	if !d.CardResolved() {
		t.Fatal("uploaded photo resolves the card slot")
	}
}
