package eventparser

import "strings"

// categoryTable pairs a category name with its keyword vocabulary. Keywords
// are matched as substrings of the lower-cased input, in listed order.
type categoryTable struct {
	name     string
	keywords []string
}

// categoryTables is evaluated in enumeration order; the first category with
// any matching keyword wins.
var categoryTables = []categoryTable{
	{"medical", []string{"doctor", "dentist", "appointment", "checkup", "hospital", "pharmacy", "vaccine", "therapy", "orthodontist"}},
	{"work", []string{"meeting", "interview", "deadline", "presentation", "conference", "standup", "office", "work"}},
	{"personal", []string{"gym", "workout", "haircut", "salon", "errand", "bank", "shopping"}},
	{"kids", []string{"school", "daycare", "soccer", "practice", "playdate", "recital", "pickup", "homework", "tutoring"}},
	{"household", []string{"plumber", "electrician", "repair", "cleaning", "maintenance", "delivery", "lawn", "garbage"}},
	{"social", []string{"dinner", "lunch", "coffee", "party", "birthday", "brunch", "drinks", "movie", "game night"}},
}

// detectCategory returns the first category whose any keyword appears in the
// lower-cased text, or "" when no table matches.
func detectCategory(text string) string {
	lowered := strings.ToLower(text)
	for _, table := range categoryTables {
		for _, keyword := range table.keywords {
			if strings.Contains(lowered, keyword) {
				return table.name
			}
		}
	}
	return ""
}
