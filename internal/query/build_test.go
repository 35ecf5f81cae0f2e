package query

import (
	"testing"

	"github.com/tubesift/tubesift/internal/models"
)

func TestBuildQueryString_Empty(t *testing.T) {
	if got := BuildQueryString(nil); got != "" {
		t.Errorf("expected empty string, got '%s'", got)
	}
	if got := BuildQueryString([]models.ActiveFilter{}); got != "" {
		t.Errorf("expected empty string, got '%s'", got)
	}
}

func TestBuildQueryString_InertValues(t *testing.T) {
	for _, desc := range Catalog() {
		if got := BuildQueryString([]models.ActiveFilter{{ID: desc.ID, Value: ""}}); got != "" {
			t.Errorf("%s with empty value: expected empty string, got '%s'", desc.ID, got)
		}
		if got := BuildQueryString([]models.ActiveFilter{{ID: desc.ID, Value: "  "}}); got != "" {
			t.Errorf("%s with whitespace value: expected empty string, got '%s'", desc.ID, got)
		}
	}
}

func TestBuildQueryString_PrefixOperators(t *testing.T) {
	cases := []struct {
		id       models.FilterID
		value    string
		expected string
	}{
		{models.FilterAfter, "2024-06-15", "after:2024-06-15"},
		{models.FilterBefore, "2024-12-31", "before:2024-12-31"},
		{models.FilterInTitle, "tutorial", "intitle:tutorial"},
		{models.FilterChannel, "fireship", "channel:fireship"},
		{models.FilterHashtag, "webdev", "#webdev"},
	}
	for _, tc := range cases {
		got := BuildQueryString([]models.ActiveFilter{{ID: tc.id, Value: tc.value}})
		if got != tc.expected {
			t.Errorf("%s: expected '%s', got '%s'", tc.id, tc.expected, got)
		}
	}
}

func TestBuildQueryString_Exact(t *testing.T) {
	got := BuildQueryString([]models.ActiveFilter{{ID: models.FilterExact, Value: "how to mass delete"}})
	if got != `"how to mass delete"` {
		t.Errorf(`expected '"how to mass delete"', got '%s'`, got)
	}
}

func TestBuildQueryString_ExcludeExpandsPerWord(t *testing.T) {
	got := BuildQueryString([]models.ActiveFilter{{ID: models.FilterExclude, Value: "tutorial beginner"}})
	if got != "-tutorial -beginner" {
		t.Errorf("expected '-tutorial -beginner', got '%s'", got)
	}
}

func TestBuildQueryString_TrimsValues(t *testing.T) {
	got := BuildQueryString([]models.ActiveFilter{{ID: models.FilterAfter, Value: "  2024-01-01  "}})
	if got != "after:2024-01-01" {
		t.Errorf("expected 'after:2024-01-01', got '%s'", got)
	}
}

func TestBuildQueryString_UnknownIDDropped(t *testing.T) {
	got := BuildQueryString([]models.ActiveFilter{
		{ID: "bogus", Value: "x"},
		{ID: models.FilterAfter, Value: "2024-01-01"},
	})
	if got != "after:2024-01-01" {
		t.Errorf("expected 'after:2024-01-01', got '%s'", got)
	}
}

func TestBuildQueryString_PreservesInputOrder(t *testing.T) {
	got := BuildQueryString([]models.ActiveFilter{
		{ID: models.FilterChannel, Value: "fireship"},
		{ID: models.FilterAfter, Value: "2024-01-01"},
		{ID: models.FilterExclude, Value: "beginner"},
	})
	if got != "channel:fireship after:2024-01-01 -beginner" {
		t.Errorf("expected 'channel:fireship after:2024-01-01 -beginner', got '%s'", got)
	}
}
