package service

import (
	"regexp"
	"strings"

	"pocketsmart/internal/models"
)

// defaultQuery stands in when the conversation carries no user turn at all,
// so classification always has something to work with.
const defaultQuery = "Tell me how to improve my monthly budget."

const (
	defaultCategory     = "product"
	defaultBudget       = 10000.0
	defaultRequirements = "No specific requirements"
)

var (
	recommendRe    = regexp.MustCompile(`(?i)recommend the best\s+(.+?)\s+within a budget of rs\s*([\d,]+(?:\.\d+)?)`)
	requirementsRe = regexp.MustCompile(`(?i)requirements:\s*(.+?)\.\s*provide 3 options`)
)

// Classification is the result of intent detection on a user query, plus
// the fields extracted for the matched intent.
type Classification struct {
	Intent       models.Intent
	Query        string // original text, echoed by the generic template
	Category     string
	Budget       float64
	Requirements string
}

// intentRules is the classifier's priority order: rules are tried top to
// bottom against a lower-cased copy of the query and the first match wins.
var intentRules = []struct {
	intent models.Intent
	match  func(q string) bool
}{
	{models.IntentRecommendation, func(q string) bool {
		return strings.Contains(q, "recommend") && strings.Contains(q, "budget")
	}},
	{models.IntentGreeting, func(q string) bool {
		return containsAny(q, "hi", "hello", "hey")
	}},
	{models.IntentBudgeting, func(q string) bool {
		return strings.Contains(q, "budget")
	}},
	{models.IntentSaving, func(q string) bool {
		return containsAny(q, "save", "saving", "savings")
	}},
	{models.IntentInvesting, func(q string) bool {
		return containsAny(q, "invest", "investment", "mutual fund", "sip", "stock")
	}},
	{models.IntentDebt, func(q string) bool {
		return containsAny(q, "debt", "loan", "emi", "credit card")
	}},
}

// Classify assigns a query to an intent and extracts intent-specific
// fields. It is total and deterministic: the same text always yields the
// same result, and no input can make it fail.
func Classify(query string) Classification {
	query = strings.TrimSpace(query)
	if query == "" {
		query = defaultQuery
	}

	c := Classification{Intent: models.IntentGeneric, Query: query}

	lower := strings.ToLower(query)
	for _, r := range intentRules {
		if r.match(lower) {
			c.Intent = r.intent
			break
		}
	}

	if c.Intent == models.IntentRecommendation {
		c.Category = defaultCategory
		c.Budget = defaultBudget
		c.Requirements = defaultRequirements

		// Patterns run against the original text so captured casing survives.
		if m := recommendRe.FindStringSubmatch(query); m != nil {
			if cat := strings.TrimSpace(m[1]); cat != "" {
				c.Category = cat
			}
			if budget := CleanNumeric(m[2]); budget > 0 {
				c.Budget = budget
			}
		}
		if m := requirementsRe.FindStringSubmatch(query); m != nil {
			if reqs := strings.TrimSpace(m[1]); reqs != "" {
				c.Requirements = reqs
			}
		}
	}

	return c
}

func containsAny(q string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(q, w) {
			return true
		}
	}
	return false
}
