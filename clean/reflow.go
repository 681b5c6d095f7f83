package clean

import (
	"regexp"
	"strings"
)

var (
	lonelyParaNumRe   = regexp.MustCompile(`^(\d{1,3})\.\s*$`)
	lonelyBracketRe   = regexp.MustCompile(`^(["\x{201c}])?\(\s*([0-9]{1,3}|[a-zA-Z])\s*\)\s*(["\x{201d}])?\s*$`)
	dividerRe         = regexp.MustCompile(`^[-=]{5,}`)
	numberedParaRe    = regexp.MustCompile(`^\d{1,3}\.\s+[A-Z]`)
	openPunctNextRe   = regexp.MustCompile(`^[A-Z][a-z]+\s*[\(\[,]`)
	markerOrBracketRe = regexp.MustCompile(`^[\(\[]`)
)

// Titles that cannot end a sentence: a line ending in one of these always
// continues on the next line.
var joinTitles = map[string]bool{
	"Mr": true, "Mrs": true, "Ms": true, "Dr": true, "Prof": true,
	"Rev": true, "Sir": true, "Dame": true, "Lord": true, "Lady": true,
	"Justice": true, "Judge": true, "Chief": true,
}

// Function words that cannot end a sentence.
var mustContinue = map[string]bool{
	"the": true, "a": true, "an": true, "of": true, "in": true, "to": true,
	"for": true, "with": true, "by": true, "as": true, "at": true,
	"on": true, "from": true, "into": true, "upon": true, "under": true,
	"over": true, "between": true, "through": true, "during": true,
	"before": true, "after": true, "about": true, "against": true,
	"without": true, "within": true, "and": true, "or": true, "but": true,
	"nor": true, "that": true, "which": true, "who": true, "whom": true,
	"whose": true, "where": true, "when": true, "while": true,
	"whether": true, "if": true, "unless": true, "although": true,
	"because": true, "since": true, "so": true, "yet": true, "both": true,
	"either": true, "neither": true, "not": true, "also": true,
	"only": true, "than": true, "such": true, "this": true, "these": true,
	"those": true, "its": true, "his": true, "her": true, "their": true,
	"our": true, "my": true, "your": true,
}

func isSectionMarker(line string) bool {
	switch strings.TrimSpace(line) {
	case sectionHeadnotes, sectionCoreJudgment, sectionFootnotes:
		return true
	}
	return dividerRe.MatchString(strings.TrimSpace(line))
}

// ReflowLonelyNumberedParas rewrites a paragraph number stranded on its own
// line onto the start of the next content line:
//
//	12.
//	<blank>
//	The appellant submits...   ->   12. The appellant submits...
func ReflowLonelyNumberedParas(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		m := lonelyParaNumRe.FindStringSubmatch(strings.TrimSpace(lines[i]))
		if m != nil {
			j := i + 1
			for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
				j++
			}
			if j < len(lines) {
				out = append(out, m[1]+". "+strings.TrimSpace(lines[j]))
				i = j
				continue
			}
		}
		out = append(out, lines[i])
	}
	return strings.Join(out, "\n")
}

// ReflowLonelyBracketMarkers does the same for stranded bracket markers like
// "(2)" or `"(a)`, preserving any quote characters around the marker.
func ReflowLonelyBracketMarkers(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		m := lonelyBracketRe.FindStringSubmatch(strings.TrimSpace(lines[i]))
		if m != nil {
			j := i + 1
			for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
				j++
			}
			if j < len(lines) {
				joined := m[1] + "(" + m[2] + ")" + m[3] + " " + strings.TrimSpace(lines[j])
				out = append(out, strings.TrimRight(joined, " "))
				i = j
				continue
			}
		}
		out = append(out, lines[i])
	}
	return strings.Join(out, "\n")
}

// columnWidth is the minimum line length for the column-boundary join
// heuristic: long lines without terminal punctuation are assumed to have
// been wrapped at a PDF column edge.
const columnWidth = 70

// JoinMidSentenceBreaks joins lines broken mid-sentence. A line is joined
// with the following content line when it ends in a title, a function word
// that cannot end a sentence, or a trailing comma; when it lacks terminal
// punctuation and the next line begins lowercase or with an opening
// quote/parenthesis; or under the column-width heuristic for long lines.
func JoinMidSentenceBreaks(text string) string {
	lines := strings.Split(text, "\n")
	var result []string
	i := 0
	for i < len(lines) {
		line := strings.TrimRight(lines[i], " \t")
		stripped := strings.TrimSpace(line)
		if stripped == "" || isSectionMarker(stripped) {
			result = append(result, line)
			i++
			continue
		}

		words := strings.Fields(stripped)
		lastWord := words[len(words)-1]
		lastClean := strings.TrimRight(lastWord, ".,;:!?")
		secondLast := ""
		if len(words) >= 2 {
			secondLast = strings.ToLower(strings.TrimRight(words[len(words)-2], ".,;:!?"))
		}

		shouldJoin := false
		maxBlanks := 0

		endsSentence := strings.ContainsAny(stripped[len(stripped)-1:], ".!?:;")

		switch {
		case joinTitles[lastClean] || joinTitles[strings.TrimRight(lastWord, ".")]:
			shouldJoin = true
			maxBlanks = 1
		case mustContinue[strings.ToLower(lastClean)]:
			shouldJoin = true
			maxBlanks = 1
		case strings.HasSuffix(stripped, ","):
			shouldJoin = true
			maxBlanks = 1
		case mustContinue[secondLast] && startsUpper(lastClean) && !endsSentence:
			shouldJoin = true
			maxBlanks = 1
		}

		if !shouldJoin && !endsSentence {
			j, blanks := nextContent(lines, i+1)
			if j < len(lines) && blanks <= 1 {
				next := strings.TrimSpace(lines[j])
				if next != "" && (startsLower(next) || strings.ContainsAny(next[:1], `("'`)) {
					shouldJoin = true
					maxBlanks = blanks
				} else if next != "" && openPunctNextRe.MatchString(next) {
					// A name continuation such as `Sekhon ("Mr Tejinder")`.
					shouldJoin = true
					maxBlanks = blanks
				}
			}
		}

		// Column-width heuristic: a long line with no terminal punctuation
		// directly followed by substantial content is a wrapped column line.
		if !shouldJoin && len(stripped) >= columnWidth &&
			!strings.ContainsAny(stripped[len(stripped)-1:], `.!?:;"`+"”"+`)`) {
			j, blanks := nextContent(lines, i+1)
			if j < len(lines) && blanks == 0 {
				next := strings.TrimSpace(lines[j])
				if len(next) > 10 && !numberedParaRe.MatchString(next) &&
					!markerOrBracketRe.MatchString(next) && !isSectionMarker(next) {
					shouldJoin = true
					maxBlanks = 0
				}
			}
		}

		if shouldJoin {
			j, blanks := nextContent(lines, i+1)
			if j < len(lines) && blanks <= maxBlanks {
				next := strings.TrimSpace(lines[j])
				if next != "" && !numberedParaRe.MatchString(next) && !isSectionMarker(next) {
					lines[j] = line + " " + next
					i = j
					continue
				}
			}
		}

		result = append(result, line)
		i++
	}
	return strings.Join(result, "\n")
}

// nextContent returns the index of the next non-blank line at or after
// start, and the number of blank lines skipped.
func nextContent(lines []string, start int) (int, int) {
	j := start
	blanks := 0
	for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
		blanks++
		j++
	}
	return j, blanks
}

func startsLower(s string) bool {
	return s != "" && s[0] >= 'a' && s[0] <= 'z'
}

func startsUpper(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}

var monthsAlt = `January|February|March|April|May|June|July|August|September|October|November|December`

var (
	dayMonthYearSplitRe = regexp.MustCompile(`(?i)(\d{1,2}\s+(?:` + monthsAlt + `))\s*\n\s*\n?\s*(\d{4})`)
	monthYearSplitRe    = regexp.MustCompile(`(?i)((?:` + monthsAlt + `))\s*\n\s*\n?\s*(\d{4})`)
)

// FixDateLineBreaks joins dates split across lines, e.g. "15 April\n2007"
// and "April\n\n2007".
func FixDateLineBreaks(text string) string {
	text = dayMonthYearSplitRe.ReplaceAllString(text, "$1 $2")
	return monthYearSplitRe.ReplaceAllString(text, "$1 $2")
}

var pageHeaderCiteRe = regexp.MustCompile(`^\[\d{4}\]\s*SG(?:CA|HC)`)

// FixPageBreakWordSplits rejoins words split across PDF pages, including the
// case where a header/citation line was inserted mid-word.
func FixPageBreakWordSplits(text string) string {
	lines := strings.Split(text, "\n")
	var result []string
	i := 0
	for i < len(lines) {
		line := strings.TrimRight(lines[i], " \t")
		if i+1 < len(lines) && endsLowerLetter(line) {
			next := strings.TrimSpace(lines[i+1])
			if pageHeaderCiteRe.MatchString(next) && i+2 < len(lines) {
				after := strings.TrimSpace(lines[i+2])
				if startsLower(after) {
					result = append(result, line+after)
					i += 3
					continue
				}
			} else if startsLower(next) && len(next) < 20 {
				result = append(result, line+next)
				i += 2
				continue
			}
		}
		result = append(result, lines[i])
		i++
	}
	return strings.Join(result, "\n")
}

func endsLowerLetter(s string) bool {
	s = strings.TrimRight(s, " \t")
	if s == "" {
		return false
	}
	c := s[len(s)-1]
	return c >= 'a' && c <= 'z'
}
