package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tubesift/tubesift/internal/models"
)

// Escape returns value as an RFC 4180 safe CSV field. Values containing a
// comma, double quote, LF or CR are wrapped in double quotes with embedded
// quotes doubled; everything else passes through unchanged, the empty
// string included.
func Escape(value string) string {
	if strings.ContainsAny(value, ",\"\n\r") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

var resultHeader = []string{"Title", "Channel", "URL", "Duration", "Views", "Published"}

// WriteCSV writes search results as CSV, one field at a time through
// Escape, CRLF record terminators.
func WriteCSV(w io.Writer, results []models.SearchResult) error {
	if err := writeRecord(w, resultHeader); err != nil {
		return err
	}
	for _, r := range results {
		published := ""
		if !r.Published.IsZero() {
			published = r.Published.Format("2006-01-02")
		}
		record := []string{
			r.Title,
			r.Channel,
			r.URL,
			r.Duration,
			strconv.FormatInt(r.Views, 10),
			published,
		}
		if err := writeRecord(w, record); err != nil {
			return err
		}
	}
	return nil
}

func writeRecord(w io.Writer, fields []string) error {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = Escape(f)
	}
	_, err := io.WriteString(w, strings.Join(escaped, ",")+"\r\n")
	return err
}

// ExportToCSV exports search results to a CSV file
func ExportToCSV(results []models.SearchResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := WriteCSV(file, results); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

// ExportToJSON exports search results to a pretty-printed JSON file
func ExportToJSON(results []models.SearchResult, path string) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results to JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}
	return nil
}

var presetHeader = []string{"Name", "Description", "Query", "Filters", "Created", "Updated", "Last Used", "Usage Count"}

// ExportPresetsToCSV exports saved filter presets to a CSV file
func ExportPresetsToCSV(presets []models.Preset, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := writeRecord(file, presetHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, p := range presets {
		filters := make([]string, 0, len(p.Filters))
		for _, f := range p.Filters {
			filters = append(filters, fmt.Sprintf("%s=%s", f.ID, f.Value))
		}
		lastUsed := ""
		if !p.LastUsed.IsZero() {
			lastUsed = p.LastUsed.Format("2006-01-02 15:04:05")
		}
		record := []string{
			p.Name,
			p.Description,
			p.Query,
			strings.Join(filters, "; "),
			p.CreatedAt.Format("2006-01-02 15:04:05"),
			p.UpdatedAt.Format("2006-01-02 15:04:05"),
			lastUsed,
			strconv.Itoa(p.UsageCount),
		}
		if err := writeRecord(file, record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	return nil
}
