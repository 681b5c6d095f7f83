package clean

import (
	"regexp"
	"strings"
)

var (
	hyphenLineBreakRe = regexp.MustCompile(`([a-z])-\s*\n\s*([a-z])`)
	hyphenSpaceRe     = regexp.MustCompile(`([a-z])- ([a-z])`)
)

// RepairHyphenatedLineBreaks merges words hyphenated across line breaks:
// "juris-\ndiction" becomes "jurisdiction".
func RepairHyphenatedLineBreaks(text string) string {
	text = hyphenLineBreakRe.ReplaceAllString(text, "$1$2")
	return hyphenSpaceRe.ReplaceAllString(text, "$1$2")
}

// suffixRule merges "<stem> <suffix>" into "<stem><suffix>" when the stem
// passes the rule's guard. Words in except never merge with the suffix.
type suffixRule struct {
	suffix  string
	minStem int
	except  map[string]bool
}

var suffixRules = []suffixRule{
	{suffix: "tion", minStem: 3},
	{suffix: "tions", minStem: 3},
	{suffix: "ment", minStem: 3, except: map[string]bool{"a": true, "the": true}},
	{suffix: "ments", minStem: 3},
	{suffix: "ing", minStem: 4, except: map[string]bool{
		"be": true, "been": true, "am": true, "is": true, "are": true,
		"was": true, "were": true, "the": true, "a": true, "an": true,
		"of": true, "in": true, "by": true, "on": true, "for": true,
	}},
	{suffix: "able", minStem: 4, except: map[string]bool{
		"be": true, "been": true, "is": true, "are": true, "was": true,
		"were": true, "being": true, "not": true, "the": true, "an": true,
	}},
	{suffix: "aged", minStem: 4, except: map[string]bool{
		"be": true, "been": true, "is": true, "are": true, "was": true,
		"were": true, "the": true, "an": true, "a": true,
	}},
	{suffix: "ages", minStem: 4, except: map[string]bool{
		"the": true, "these": true, "those": true, "all": true,
		"of": true, "dark": true, "middle": true,
	}},
	{suffix: "ness", minStem: 4},
	{suffix: "ful", minStem: 4, except: map[string]bool{"a": true, "the": true, "in": true}},
	{suffix: "ity", minStem: 4},
	{suffix: "ities", minStem: 4},
	{suffix: "ance", minStem: 4, except: map[string]bool{"in": true, "the": true}},
	{suffix: "ence", minStem: 4, except: map[string]bool{"the": true, "in": true}},
	{suffix: "ship", minStem: 4, except: map[string]bool{"a": true, "the": true, "his": true, "her": true}},
}

var wordPairRe = regexp.MustCompile(`\b([a-z]+) ([a-z]+)\b`)

// RepairBrokenWords merges words broken by a space before a common suffix,
// e.g. "jurisdic tion" -> "jurisdiction". Guard lists keep real two-word
// phrases intact ("been able" is never merged).
func RepairBrokenWords(text string) string {
	return wordPairRe.ReplaceAllStringFunc(text, func(m string) string {
		parts := strings.SplitN(m, " ", 2)
		stem, tail := parts[0], parts[1]
		for _, r := range suffixRules {
			if tail != r.suffix {
				continue
			}
			if len(stem) < r.minStem {
				return m
			}
			if r.except != nil && r.except[stem] {
				return m
			}
			return stem + tail
		}
		return m
	})
}
