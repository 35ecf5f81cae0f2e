package query

import (
	"regexp"
	"strings"

	"github.com/tubesift/tubesift/internal/models"
)

// Operator extraction patterns. Values are greedy non-whitespace runs, so
// captures never need trimming. The dash pattern only fires when the dash
// starts a whitespace-delimited token; a hyphen inside a word like
// "re-watch" is plain text.
var (
	afterRe   = regexp.MustCompile(`after:(\S+)`)
	beforeRe  = regexp.MustCompile(`before:(\S+)`)
	intitleRe = regexp.MustCompile(`intitle:(\S+)`)
	exactRe   = regexp.MustCompile(`"([^"]*)"`)
	excludeRe = regexp.MustCompile(`(?:^|\s)-(\S+)`)
	channelRe = regexp.MustCompile(`channel:(\S+)`)
	hashtagRe = regexp.MustCompile(`#(\S+)`)
)

// firstMatchRules are the operators where only the first occurrence counts
// during parsing. Order matters: results always come back in catalog order.
var firstMatchRules = []struct {
	id models.FilterID
	re *regexp.Regexp
}{
	{models.FilterAfter, afterRe},
	{models.FilterBefore, beforeRe},
	{models.FilterInTitle, intitleRe},
}

// ParseQueryFilters extracts structured filters from a raw query string.
//
// Filters come back in fixed catalog order (after, before, intitle, exact,
// exclude, channel, hashtag) regardless of where the operators appear in
// the input. That is the contract: structured re-display needs one
// representative value per operator, not a faithful re-serialization.
// Every quoted span becomes its own exact entry; every dash word is merged
// into a single exclude entry, words space-joined in order of appearance.
func ParseQueryFilters(raw string) []models.ActiveFilter {
	var filters []models.ActiveFilter

	for _, rule := range firstMatchRules {
		if m := rule.re.FindStringSubmatch(raw); m != nil {
			filters = append(filters, models.ActiveFilter{ID: rule.id, Value: m[1]})
		}
	}

	for _, m := range exactRe.FindAllStringSubmatch(raw, -1) {
		filters = append(filters, models.ActiveFilter{ID: models.FilterExact, Value: m[1]})
	}

	if matches := excludeRe.FindAllStringSubmatch(raw, -1); len(matches) > 0 {
		words := make([]string, 0, len(matches))
		for _, m := range matches {
			words = append(words, m[1])
		}
		filters = append(filters, models.ActiveFilter{ID: models.FilterExclude, Value: strings.Join(words, " ")})
	}

	if m := channelRe.FindStringSubmatch(raw); m != nil {
		filters = append(filters, models.ActiveFilter{ID: models.FilterChannel, Value: m[1]})
	}
	if m := hashtagRe.FindStringSubmatch(raw); m != nil {
		filters = append(filters, models.ActiveFilter{ID: models.FilterHashtag, Value: m[1]})
	}

	return filters
}
