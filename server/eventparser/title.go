package eventparser

import (
	"regexp"
	"strings"
	"unicode"
)

// strippedPatterns are the time and date expressions removed from the input
// when deriving a title. Removal is blind substring removal of every match
// of every pattern, independent of which match actually produced the event's
// date/time. That can strip coincidental numeric runs (a year like "2025"
// looks like a compact clock time); this is a known heuristic limitation the
// rest of the product depends on, so it is kept as-is.
var strippedPatterns = []*regexp.Regexp{
	timeMeridiemMinutes,
	timeMeridiem,
	time24Colon,
	time24Compact,
	dateRelative,
	dateNextWeekday,
	dateThisWeekday,
	dateBareWeekday,
}

var (
	strayPrepositions = regexp.MustCompile(`(?i)\b(at|on|for|with|in)\b`)
	whitespaceRun     = regexp.MustCompile(`\s+`)
)

// extractTitle strips recognized time/date substrings and stray prepositions
// from text, collapses whitespace, and capitalizes the remainder. Returns ""
// when nothing title-worthy remains.
func extractTitle(text string) string {
	title := text
	for _, pattern := range strippedPatterns {
		title = pattern.ReplaceAllString(title, " ")
	}
	title = strayPrepositions.ReplaceAllString(title, " ")
	title = whitespaceRun.ReplaceAllString(title, " ")
	title = strings.TrimSpace(title)
	return capitalize(title)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
