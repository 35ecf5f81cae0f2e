package query

import (
	"testing"

	"github.com/tubesift/tubesift/internal/models"
)

func findFilter(filters []models.ActiveFilter, id models.FilterID) (models.ActiveFilter, bool) {
	for _, f := range filters {
		if f.ID == id {
			return f, true
		}
	}
	return models.ActiveFilter{}, false
}

func TestParseQueryFilters_Empty(t *testing.T) {
	if got := ParseQueryFilters(""); len(got) != 0 {
		t.Errorf("expected no filters, got %v", got)
	}
	if got := ParseQueryFilters("plain search words"); len(got) != 0 {
		t.Errorf("expected no filters, got %v", got)
	}
}

func TestParseQueryFilters_PrefixOperators(t *testing.T) {
	filters := ParseQueryFilters("react after:2024-01-01 before:2024-12-31 intitle:hooks channel:fireship #webdev")

	cases := []struct {
		id       models.FilterID
		expected string
	}{
		{models.FilterAfter, "2024-01-01"},
		{models.FilterBefore, "2024-12-31"},
		{models.FilterInTitle, "hooks"},
		{models.FilterChannel, "fireship"},
		{models.FilterHashtag, "webdev"},
	}
	for _, tc := range cases {
		f, ok := findFilter(filters, tc.id)
		if !ok {
			t.Errorf("expected %s filter, not found", tc.id)
			continue
		}
		if f.Value != tc.expected {
			t.Errorf("%s: expected '%s', got '%s'", tc.id, tc.expected, f.Value)
		}
	}
}

func TestParseQueryFilters_FirstMatchWins(t *testing.T) {
	filters := ParseQueryFilters("after:2024-01-01 after:2025-01-01 #first #second")

	f, _ := findFilter(filters, models.FilterAfter)
	if f.Value != "2024-01-01" {
		t.Errorf("expected first after value '2024-01-01', got '%s'", f.Value)
	}
	f, _ = findFilter(filters, models.FilterHashtag)
	if f.Value != "first" {
		t.Errorf("expected first hashtag 'first', got '%s'", f.Value)
	}
}

func TestParseQueryFilters_EveryQuotedSpanIsSeparate(t *testing.T) {
	filters := ParseQueryFilters(`"best practices" middle "clean code"`)

	var exact []string
	for _, f := range filters {
		if f.ID == models.FilterExact {
			exact = append(exact, f.Value)
		}
	}
	if len(exact) != 2 {
		t.Fatalf("expected 2 exact filters, got %d", len(exact))
	}
	if exact[0] != "best practices" || exact[1] != "clean code" {
		t.Errorf("expected ['best practices', 'clean code'], got %v", exact)
	}
}

func TestParseQueryFilters_ExcludeWordsMerged(t *testing.T) {
	filters := ParseQueryFilters("-tutorial react -beginner")

	f, ok := findFilter(filters, models.FilterExclude)
	if !ok {
		t.Fatal("expected exclude filter, not found")
	}
	if f.Value != "tutorial beginner" {
		t.Errorf("expected 'tutorial beginner', got '%s'", f.Value)
	}
}

func TestParseQueryFilters_ExcludeAtStart(t *testing.T) {
	filters := ParseQueryFilters("-shorts")

	f, ok := findFilter(filters, models.FilterExclude)
	if !ok {
		t.Fatal("expected exclude filter, not found")
	}
	if f.Value != "shorts" {
		t.Errorf("expected 'shorts', got '%s'", f.Value)
	}
}

func TestParseQueryFilters_HyphenInsideWordIgnored(t *testing.T) {
	filters := ParseQueryFilters("re-watch compilation")

	if _, ok := findFilter(filters, models.FilterExclude); ok {
		t.Error("hyphen inside a word should not produce an exclude filter")
	}
}

func TestParseQueryFilters_FixedScanOrder(t *testing.T) {
	// Token order in the string is deliberately reversed relative to the
	// catalog; output order must still follow the catalog.
	filters := ParseQueryFilters(`#tag channel:c -x "quoted" intitle:t before:2 after:1`)

	expected := []models.FilterID{
		models.FilterAfter,
		models.FilterBefore,
		models.FilterInTitle,
		models.FilterExact,
		models.FilterExclude,
		models.FilterChannel,
		models.FilterHashtag,
	}
	if len(filters) != len(expected) {
		t.Fatalf("expected %d filters, got %d: %v", len(expected), len(filters), filters)
	}
	for i, id := range expected {
		if filters[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, filters[i].ID)
		}
	}
}

func TestRoundTrip_SingleOperators(t *testing.T) {
	cases := []models.ActiveFilter{
		{ID: models.FilterAfter, Value: "2024-06-15"},
		{ID: models.FilterBefore, Value: "2024-12-31"},
		{ID: models.FilterInTitle, Value: "tutorial"},
		{ID: models.FilterChannel, Value: "fireship"},
		{ID: models.FilterHashtag, Value: "webdev"},
		{ID: models.FilterExact, Value: "how to mass delete"},
		{ID: models.FilterExclude, Value: "beginner"},
		{ID: models.FilterExclude, Value: "tutorial beginner"},
	}
	for _, original := range cases {
		parsed := ParseQueryFilters(BuildQueryString([]models.ActiveFilter{original}))
		f, ok := findFilter(parsed, original.ID)
		if !ok {
			t.Errorf("%s: round-trip lost the filter", original.ID)
			continue
		}
		if f.Value != original.Value {
			t.Errorf("%s: round-trip expected '%s', got '%s'", original.ID, original.Value, f.Value)
		}
	}
}

func TestRoundTrip_CombinedQuery(t *testing.T) {
	original := []models.ActiveFilter{
		{ID: models.FilterAfter, Value: "2024-01-01"},
		{ID: models.FilterExact, Value: "best practices"},
		{ID: models.FilterExclude, Value: "beginner shorts"},
		{ID: models.FilterChannel, Value: "fireship"},
	}
	parsed := ParseQueryFilters(BuildQueryString(original))

	for _, want := range original {
		f, ok := findFilter(parsed, want.ID)
		if !ok {
			t.Errorf("%s: missing after round-trip", want.ID)
			continue
		}
		if f.Value != want.Value {
			t.Errorf("%s: expected '%s', got '%s'", want.ID, want.Value, f.Value)
		}
	}
}
