package query

import (
	"strings"

	"github.com/tubesift/tubesift/internal/models"
)

// BuildQueryString renders active filters into a single space-joined query
// string, preserving input order. Entries with unknown ids or empty values
// are skipped silently. An exclude entry expands to one "-word" token per
// word of its value.
//
// Exact values are wrapped in double quotes without escaping; a value that
// itself contains a quote will not survive a later reparse. Known
// limitation, callers validate values before handing them in.
func BuildQueryString(filters []models.ActiveFilter) string {
	var tokens []string
	for _, f := range filters {
		desc, ok := catalog[f.ID]
		if !ok {
			continue
		}
		value := strings.TrimSpace(f.Value)
		if value == "" {
			continue
		}

		switch f.ID {
		case models.FilterExact:
			tokens = append(tokens, `"`+value+`"`)
		case models.FilterExclude:
			for _, word := range strings.Fields(value) {
				tokens = append(tokens, "-"+word)
			}
		default:
			tokens = append(tokens, desc.Token+value)
		}
	}
	return strings.Join(tokens, " ")
}
