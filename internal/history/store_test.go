package history

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_AddAndGetRecent(t *testing.T) {
	s := newTestStore(t)

	entries := []Entry{
		{Query: "react hooks after:2024-01-01", FilterCount: 1, ResultCount: 20},
		{Query: `"best practices" -beginner`, FilterCount: 2, ResultCount: 7},
		{Query: "channel:fireship", FilterCount: 1, ResultCount: 50},
	}
	for _, e := range entries {
		if err := s.Add(e); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	recent, err := s.GetRecent(10)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(recent))
	}
	// Newest first
	if recent[0].Query != "channel:fireship" {
		t.Errorf("expected newest entry first, got %q", recent[0].Query)
	}
	if recent[0].ResultCount != 50 {
		t.Errorf("expected result count 50, got %d", recent[0].ResultCount)
	}
}

func TestStore_GetRecentLimit(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 5; i++ {
		_ = s.Add(Entry{Query: "q", FilterCount: 0})
	}

	recent, err := s.GetRecent(2)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("expected 2 entries, got %d", len(recent))
	}
}

func TestStore_Search(t *testing.T) {
	s := newTestStore(t)
	_ = s.Add(Entry{Query: "react hooks"})
	_ = s.Add(Entry{Query: "go generics"})
	_ = s.Add(Entry{Query: "react server components"})

	found, err := s.Search("react", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(found) != 2 {
		t.Errorf("expected 2 matches, got %d", len(found))
	}

	none, err := s.Search("zig", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no matches, got %d", len(none))
	}
}

func TestStore_Prune(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 10; i++ {
		_ = s.Add(Entry{Query: "q"})
	}

	if err := s.Prune(4); err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	recent, err := s.GetRecent(100)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(recent) != 4 {
		t.Errorf("expected 4 entries after prune, got %d", len(recent))
	}
}
