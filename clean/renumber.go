package clean

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	paraStartRe      = regexp.MustCompile(`^(\d+)\.\s+([A-Z])`)
	paraLineRe       = regexp.MustCompile(`^(\d{1,3})\.\s+(.+)$`)
	paraPrefixRe     = regexp.MustCompile(`^(\d{1,3})\.\s+`)
	dupParaBodyRe    = regexp.MustCompile(`^(\d{1,3})\.\s+(.{50,})`)
	standaloneNumRe  = regexp.MustCompile(`^\d{1,3}$`)
	missingPeriodRe  = regexp.MustCompile(`(?m)^(\d{1,3})\s+([A-Z][a-z]*)`)
	unnumberedOpenRe = regexp.MustCompile(`^[\(\["]`)
)

// FixParagraphNumbering restores paragraph numbers whose leading digit was
// lost ("1." where "21." belongs). A small number appearing after a larger
// one is lifted into the expected tens band, bumped past the last number
// when the band alone is not enough.
func FixParagraphNumbering(text string) string {
	lines := strings.Split(text, "\n")
	last := 0
	inCore := false
	for i, line := range lines {
		if strings.Contains(line, sectionCoreJudgment) {
			inCore = true
		}
		if !inCore {
			continue
		}
		s := strings.TrimSpace(line)
		m := paraStartRe.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		num, _ := strconv.Atoi(m[1])
		rest := strings.TrimSpace(s[len(m[1])+1:])

		if num < 10 && last >= 10 {
			expectedTens := (last / 10) * 10
			if last%10 >= num-1 {
				newNum := expectedTens + num
				if newNum <= last {
					newNum = expectedTens + 10 + num
				}
				lines[i] = fmt.Sprintf("%d. %s", newNum, rest)
				last = newNum
			} else {
				last = num
			}
		} else if num > last || num == 1 {
			last = num
		}
	}
	return strings.Join(lines, "\n")
}

// FixDuplicateParagraphNumbers renumbers a paragraph that repeats or falls
// below its predecessor to the next number in sequence.
func FixDuplicateParagraphNumbers(text string) string {
	lines := strings.Split(text, "\n")
	last := 0
	for i, line := range lines {
		s := strings.TrimSpace(line)
		m := paraLineRe.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		num, _ := strconv.Atoi(m[1])
		if num <= last {
			num = last + 1
			lines[i] = fmt.Sprintf("%d. %s", num, m[2])
		}
		last = num
	}
	return strings.Join(lines, "\n")
}

// FixStandaloneParagraphNumbers drops a bare number line that duplicates
// the numbered paragraph right after it.
func FixStandaloneParagraphNumbers(text string) string {
	lines := strings.Split(text, "\n")
	var out []string
	i := 0
	for i < len(lines) {
		s := strings.TrimSpace(lines[i])
		if standaloneNumRe.MatchString(s) {
			j, _ := nextContent(lines, i+1)
			if j < len(lines) {
				next := strings.TrimSpace(lines[j])
				if m := paraPrefixRe.FindStringSubmatch(next); m != nil && m[1] == s {
					i = j
					continue
				}
			}
		}
		out = append(out, lines[i])
		i++
	}
	return strings.Join(out, "\n")
}

// FixDuplicateContent removes numbered paragraphs repeated verbatim across
// page breaks. The duplicate key is the ordinal plus the first 100
// characters of the body.
func FixDuplicateContent(text string) string {
	lines := strings.Split(text, "\n")
	seen := map[string]bool{}
	var out []string
	for _, line := range lines {
		s := strings.TrimSpace(line)
		if m := dupParaBodyRe.FindStringSubmatch(s); m != nil {
			body := m[2]
			if len(body) > 100 {
				body = body[:100]
			}
			key := m[1] + "|" + body
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// AddMissingParagraphNumbers numbers long unnumbered paragraphs that follow
// a section header in the core judgment.
func AddMissingParagraphNumbers(text string) string {
	lines := strings.Split(text, "\n")
	last := 0
	inCore := false
	for i, line := range lines {
		if strings.Contains(line, sectionCoreJudgment) {
			inCore = true
		}
		if !inCore {
			continue
		}
		s := strings.TrimSpace(line)
		if m := paraPrefixRe.FindStringSubmatch(s); m != nil {
			last, _ = strconv.Atoi(m[1])
			continue
		}
		if len(s) <= 100 || !startsUpper(s) || unnumberedOpenRe.MatchString(s) {
			continue
		}
		prevIdx := i - 1
		for prevIdx >= 0 && strings.TrimSpace(lines[prevIdx]) == "" {
			prevIdx--
		}
		if prevIdx < 0 {
			continue
		}
		prev := strings.TrimSpace(lines[prevIdx])
		if len(prev) < 50 && !strings.HasSuffix(prev, ".") {
			last++
			lines[i] = fmt.Sprintf("%d. %s", last, s)
		}
	}
	return strings.Join(lines, "\n")
}

var monthNames = map[string]bool{
	"January": true, "February": true, "March": true, "April": true,
	"May": true, "June": true, "July": true, "August": true,
	"September": true, "October": true, "November": true, "December": true,
}

// FixParagraphPeriods restores the period in "1 The court..." while leaving
// dates like "26 April 2005" alone.
func FixParagraphPeriods(text string) string {
	return missingPeriodRe.ReplaceAllStringFunc(text, func(m string) string {
		g := missingPeriodRe.FindStringSubmatch(m)
		if monthNames[g[2]] {
			return m
		}
		return g[1] + ". " + g[2]
	})
}
