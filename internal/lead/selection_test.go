package lead

import "testing"

func TestToggleAddsAndRemoves(t *testing.T) {
	var s SelectionSet
	if !s.Toggle("1") {
		t.Fatal("first toggle must select")
	}
	if !s.Has("1") || s.Len() != 1 {
		t.Fatalf("expected {1}, got %v", s.IDs())
	}
	if s.Toggle("1") {
		t.Fatal("second toggle must deselect")
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty set, got %v", s.IDs())
	}
}

func TestTogglePairIsIdentity(t *testing.T) {
	var s SelectionSet
	s.Toggle("1")
	s.Toggle("2")
	before := s.IDs()

	s.Toggle("3")
	s.Toggle("3")

	after := s.IDs()
	if len(after) != len(before) {
		t.Fatalf("toggle pair changed the set: %v -> %v", before, after)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("toggle pair changed order: %v -> %v", before, after)
		}
	}
}

func TestIDsPreserveInsertionOrder(t *testing.T) {
	var s SelectionSet
	s.Toggle("5")
	s.Toggle("2")
	s.Toggle("9")
	got := s.IDs()
	want := []string{"5", "2", "9"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("IDs() = %v, expected %v", got, want)
		}
	}
}

func TestNamesSkipsUnknownIDs(t *testing.T) {
	var s SelectionSet
	s.Toggle("1")
	s.Toggle("404")
	names := s.Names([]Direction{{ID: "1", Name: "Europe"}})
	if len(names) != 1 || names[0] != "Europe" {
		t.Fatalf("Names = %v, expected [Europe]", names)
	}
}

func TestClear(t *testing.T) {
	var s SelectionSet
	s.Toggle("1")
	s.Clear()
	if s.Len() != 0 {
		t.Fatal("clear must empty the set")
	}
}
