package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tubesift/tubesift/internal/models"
)

func TestEscape(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"hello", "hello"},
		{"no special chars here", "no special chars here"},
		{"a,b", `"a,b"`},
		{`say "hello"`, `"say ""hello"""`},
		{"line\nbreak", "\"line\nbreak\""},
		{"carriage\rreturn", "\"carriage\rreturn\""},
		{`"`, `""""`},
	}
	for _, tc := range cases {
		if got := Escape(tc.in); got != tc.expected {
			t.Errorf("Escape(%q): expected %q, got %q", tc.in, tc.expected, got)
		}
	}
}

func testResults() []models.SearchResult {
	return []models.SearchResult{
		{
			Title:     `How to "mass delete" videos, fast`,
			Channel:   "Fireship",
			URL:       "https://example.com/watch?v=abc123",
			Duration:  "12:34",
			Views:     1500000,
			Published: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:    "React hooks explained",
			Channel:  "Some, Channel",
			URL:      "https://example.com/watch?v=def456",
			Duration: "8:02",
			Views:    42,
		},
	}
}

func TestWriteCSV_ReadableByStandardReader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, testResults()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("standard reader rejected output: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0][0] != "Title" || records[0][5] != "Published" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][0] != `How to "mass delete" videos, fast` {
		t.Errorf("quoted title did not survive round-trip: %q", records[1][0])
	}
	if records[1][4] != "1500000" {
		t.Errorf("expected views '1500000', got %q", records[1][4])
	}
	if records[1][5] != "2024-06-15" {
		t.Errorf("expected published '2024-06-15', got %q", records[1][5])
	}
	if records[2][5] != "" {
		t.Errorf("zero published time should export empty, got %q", records[2][5])
	}
}

func TestWriteCSV_CRLFRecords(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "\r\n") {
		t.Error("records should terminate with CRLF")
	}
}

func TestExportToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	if err := ExportToCSV(testResults(), path); err != nil {
		t.Fatalf("ExportToCSV failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open CSV: %v", err)
	}
	defer func() { _ = file.Close() }()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("failed to read CSV: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("expected 3 records, got %d", len(records))
	}
}

func TestExportToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	if err := ExportToJSON(testResults(), path); err != nil {
		t.Fatalf("ExportToJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read JSON: %v", err)
	}
	var parsed []models.SearchResult
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("expected 2 results, got %d", len(parsed))
	}
	if parsed[0].Channel != "Fireship" {
		t.Errorf("expected channel 'Fireship', got %q", parsed[0].Channel)
	}
	if !strings.Contains(string(data), "\n") {
		t.Error("JSON should be pretty-printed")
	}
}

func TestExportPresetsToCSV(t *testing.T) {
	presets := []models.Preset{
		{
			ID:          "p1",
			Name:        "No beginner stuff",
			Description: "skips tutorials, with \"quotes\"",
			Query:       "-tutorial -beginner after:2024-01-01",
			Filters: []models.ActiveFilter{
				{ID: models.FilterExclude, Value: "tutorial beginner"},
				{ID: models.FilterAfter, Value: "2024-01-01"},
			},
			CreatedAt:  time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			UpdatedAt:  time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC),
			UsageCount: 3,
		},
	}

	path := filepath.Join(t.TempDir(), "presets.csv")
	if err := ExportPresetsToCSV(presets, path); err != nil {
		t.Fatalf("ExportPresetsToCSV failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open CSV: %v", err)
	}
	defer func() { _ = file.Close() }()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("failed to read CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	row := records[1]
	if row[0] != "No beginner stuff" {
		t.Errorf("expected name 'No beginner stuff', got %q", row[0])
	}
	if row[3] != "exclude=tutorial beginner; after=2024-01-01" {
		t.Errorf("unexpected filters column: %q", row[3])
	}
	if row[7] != "3" {
		t.Errorf("expected usage count '3', got %q", row[7])
	}
}
