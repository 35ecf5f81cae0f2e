package query

import (
	"strings"

	"github.com/tubesift/tubesift/internal/models"
)

// PreviewOptions adjusts preview rendering
type PreviewOptions struct {
	// ExcludeShorts appends a trailing "NOT Shorts" line, even when no
	// filters are active.
	ExcludeShorts bool
}

// BuildPreviewLines derives display rows from active filters, in input
// order, skipping inert entries. The first emitted line has an empty
// connector and later lines connect with AND, except exclude lines which
// always carry NOT (one line per excluded word), even in first position.
func BuildPreviewLines(filters []models.ActiveFilter, opts PreviewOptions) []models.PreviewLine {
	var lines []models.PreviewLine
	emitted := false

	for _, f := range filters {
		desc, ok := catalog[f.ID]
		if !ok {
			continue
		}
		value := strings.TrimSpace(f.Value)
		if value == "" {
			continue
		}

		if f.ID == models.FilterExclude {
			for _, word := range strings.Fields(value) {
				lines = append(lines, models.PreviewLine{Connector: "NOT", Label: desc.Label, Value: word})
			}
			emitted = true
			continue
		}

		connector := "AND"
		if !emitted {
			connector = ""
		}
		display := value
		switch f.ID {
		case models.FilterExact:
			display = `"` + value + `"`
		case models.FilterHashtag:
			display = "#" + value
		}
		lines = append(lines, models.PreviewLine{Connector: connector, Label: desc.Label, Value: display})
		emitted = true
	}

	if opts.ExcludeShorts {
		lines = append(lines, models.PreviewLine{Connector: "NOT", Label: "Shorts", Value: ""})
	}
	return lines
}
