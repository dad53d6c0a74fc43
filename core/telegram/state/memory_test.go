package state

import "testing"

func TestStateLifecycle(t *testing.T) {
	m := NewMemoryManager()
	key := Key{ChatID: 10, UserID: 10}

	if m.GetState(key) != StateIdle {
		t.Fatalf("fresh conversation state = %q, want idle", m.GetState(key))
	}
	if m.InProgress(key) {
		t.Fatal("fresh conversation should not be in progress")
	}

	m.SetState(key, State("full_name"))
	if m.GetState(key) != State("full_name") {
		t.Fatalf("state = %q, want full_name", m.GetState(key))
	}
	if !m.InProgress(key) {
		t.Fatal("conversation with a state should be in progress")
	}

	m.ClearState(key)
	if m.GetState(key) != StateIdle || m.InProgress(key) {
		t.Fatal("ClearState should reset to idle")
	}
}

func TestConversationsAreIsolatedByKey(t *testing.T) {
	m := NewMemoryManager()
	a := Key{ChatID: 1, UserID: 1}
	b := Key{ChatID: 1, UserID: 2}

	m.SetState(a, State("email"))
	m.SetTemp(a, "x", "one")

	if m.GetState(b) != StateIdle {
		t.Fatal("second conversation inherited state from the first")
	}
	if _, ok := m.GetTemp(b, "x"); ok {
		t.Fatal("second conversation inherited temp data from the first")
	}
}

func TestTempData(t *testing.T) {
	m := NewMemoryManager()
	key := Key{ChatID: 5, UserID: 5}

	m.SetTemp(key, "company_id", int64(77))
	if v, ok := m.GetTempInt64(key, "company_id"); !ok || v != 77 {
		t.Fatalf("GetTempInt64 = %d, %v", v, ok)
	}

	m.SetTemp(key, "name", "Aziz")
	if _, ok := m.GetTempInt64(key, "name"); ok {
		t.Fatal("GetTempInt64 should reject non-int64 values")
	}

	m.ClearTemp(key, "company_id")
	if _, ok := m.GetTemp(key, "company_id"); ok {
		t.Fatal("ClearTemp left the value behind")
	}
}

func TestClearDropsEverything(t *testing.T) {
	m := NewMemoryManager()
	key := Key{ChatID: 2, UserID: 2}

	m.SetState(key, State("comments"))
	m.SetTemp(key, "draft", "data")
	m.Clear(key)

	if m.GetState(key) != StateIdle {
		t.Fatal("Clear should drop the state")
	}
	if _, ok := m.GetTemp(key, "draft"); ok {
		t.Fatal("Clear should drop temp data")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	m := NewMemoryManager()
	key := Key{ChatID: 3, UserID: 3}
	m.SetState(key, State("cargo"))

	s := m.Get(key)
	s.State = State("tampered")

	if m.GetState(key) != State("cargo") {
		t.Fatal("mutating the returned session leaked into the manager")
	}
}
