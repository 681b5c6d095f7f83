// Package cite finds, classifies and strips case-law citations and
// academic references in judgment text.
package cite

import (
	"fmt"
	"regexp"
	"strings"
)

// casePatternRe matches both citation shapes:
//
//	[year] REPORTER number    e.g. [2017] SGCA 24, [2020] 1 AC 123 (reporter part)
//	(year) volume REPORTER number   e.g. (2005) 224 CLR 123
var casePatternRe = regexp.MustCompile(
	`\[(\d{4})\]\s*([A-Z][A-Za-z]*(?:\s*\([A-Za-z]+\))?)\s*(\d+)|` +
		`\((\d{4})\)\s*(\d+)\s+([A-Z][A-Za-z]+(?:\s*\d*[A-Za-z]*)?)\s*(\d+)`)

// Citation is one matched case citation.
type Citation struct {
	Year     string
	Volume   string // round form only
	Reporter string
	Number   string
	Round    bool // (year) vol REPORTER num shape
}

// Key returns the normalised deduplication key for the citation.
func (c Citation) Key() string {
	if c.Round {
		return fmt.Sprintf("(%s) %s %s %s", c.Year, c.Volume, c.Reporter, c.Number)
	}
	return fmt.Sprintf("[%s] %s %s", c.Year, c.Reporter, c.Number)
}

// Find returns every case citation in text, in document order.
func Find(text string) []Citation {
	var out []Citation
	for _, m := range casePatternRe.FindAllStringSubmatch(text, -1) {
		if m[1] != "" {
			out = append(out, Citation{
				Year:     m[1],
				Reporter: strings.TrimSpace(m[2]),
				Number:   m[3],
			})
		} else {
			out = append(out, Citation{
				Year:     m[4],
				Volume:   m[5],
				Reporter: strings.TrimSpace(m[6]),
				Number:   m[7],
				Round:    true,
			})
		}
	}
	return out
}
