package cite

import (
	"strings"
	"unicode"
)

// Counts tallies citations per jurisdiction plus a running total.
type Counts map[string]int

func newCounts() Counts {
	c := make(Counts, len(Jurisdictions)+1)
	for _, j := range Jurisdictions {
		c[j] = 0
	}
	c["total"] = 0
	return c
}

// Classify maps a reporter code to its jurisdiction by bidirectional
// substring containment, Singapore checked first. Unknown reporters fall
// through to OTHER.
func Classify(reporter string) string {
	clean := strings.ToUpper(strings.TrimSpace(reporter))
	for _, set := range reporterSets {
		for _, rep := range set.reporters {
			r := strings.ToUpper(rep)
			if strings.Contains(clean, r) || strings.Contains(r, clean) {
				return set.jurisdiction
			}
		}
	}
	return JurisdictionOther
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// CountByJurisdiction counts case citations per jurisdiction, returning
// both total occurrences and unique citations keyed on the normalised
// citation string. Reporters shorter than two characters or purely numeric
// are skipped.
func CountByJurisdiction(text string) (total, unique Counts) {
	total = newCounts()
	unique = newCounts()
	seen := map[string]bool{}

	for _, c := range Find(text) {
		if len(c.Reporter) < 2 || isAllDigits(c.Reporter) {
			continue
		}
		j := Classify(c.Reporter)
		total[j]++
		total["total"]++
		key := c.Key()
		if !seen[key] {
			seen[key] = true
			unique[j]++
			unique["total"]++
		}
	}
	return total, unique
}
