package query

import (
	"regexp"
	"strings"
)

// stripPatterns in removal order: prefix operators, quoted spans, channel,
// hashtag, then dash tokens. Unlike parsing, stripping removes EVERY
// occurrence of every operator so the remainder carries zero trace of them.
var stripPatterns = []*regexp.Regexp{
	afterRe,
	beforeRe,
	intitleRe,
	exactRe,
	channelRe,
	hashtagRe,
	excludeRe,
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// StripOperators removes every recognized operator span from the query and
// normalizes whitespace: runs collapse to a single space, leading and
// trailing whitespace is trimmed. Idempotent.
func StripOperators(raw string) string {
	out := raw
	for _, re := range stripPatterns {
		out = re.ReplaceAllString(out, "")
	}
	out = whitespaceRe.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}
