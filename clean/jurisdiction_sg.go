package clean

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SGCitationRe matches Singapore neutral citations.
var SGCitationRe = regexp.MustCompile(`\[\d{4}\]\s+SG(?:CA|HC)\s+\d+`)

var (
	pteLtdRe     = regexp.MustCompile(`\bPte\.?\s*\n+\s*Ltd\b`)
	sdnBhdRe     = regexp.MustCompile(`\bSdn\.?\s*\n+\s*Bhd\b`)
	wordLtdRe    = regexp.MustCompile(`\b(\w+)\s*\n+\s*Ltd\b`)
	privateLtdRe = regexp.MustCompile(`\bPrivate\s*\n+\s*Limited\b`)
	coLtdRe      = regexp.MustCompile(`\bCo\.?\s*\n+\s*Ltd\b`)
	incParenRe   = regexp.MustCompile(`\bInc\.?\s*\n+\s*\(`)
)

// FixSplitCompanyNames rejoins company suffixes split across lines
// (Pte Ltd, Sdn Bhd and friends).
func FixSplitCompanyNames(text string) string {
	text = pteLtdRe.ReplaceAllString(text, "Pte Ltd")
	text = sdnBhdRe.ReplaceAllString(text, "Sdn Bhd")
	text = wordLtdRe.ReplaceAllString(text, "$1 Ltd")
	text = privateLtdRe.ReplaceAllString(text, "Private Limited")
	text = coLtdRe.ReplaceAllString(text, "Co Ltd")
	return incParenRe.ReplaceAllString(text, "Inc (")
}

var (
	sgCaseYearRe     = regexp.MustCompile(`\[(\d{4})\]\s*SG[A-Z]+`)
	truncMonthYearRe = regexp.MustCompile(`(?i)(` + monthsAlt + `)\s+(19|20)\.\s*([^0-9]|$)`)
	truncPrepYearRe  = regexp.MustCompile(`(?i)\b(in|of|from|since|until|by)\s+(19|20)\.\s*([^0-9]|$)`)
	truncRevEdRe     = regexp.MustCompile(`(?i)(Cap\s+\d+,?\s*)(20)\.\s*(Rev\s*Ed)`)
	truncSuitYearRe  = regexp.MustCompile(`(?i)(CA|HC|OS|S|SUM|AD)\s+(\d+)\s+of\s+(20)\.\s*([^0-9]|$)`)
	truncCurrencyRe  = regexp.MustCompile(`(\$[\d,]+,\d)\.\s*([^0-9]|$)`)
	moneyUnitRe      = regexp.MustCompile(`(?i)(\$[\d,]+)\.\s+(million|billion|m\b|b\b|k\b|cm|mm|kg|g\b)`)
	measureUnitRe    = regexp.MustCompile(`(?i)(\d+)\.\s+(seconds?|minutes?|hours?|days?|weeks?|months?|years?|cm|mm|metres?|meters?|kg|grams?)`)
)

// caseYear reads the judgment year from the first Singapore neutral
// citation, defaulting when no citation is present.
func caseYear(text string) int {
	if m := sgCaseYearRe.FindStringSubmatch(text); m != nil {
		if y, err := strconv.Atoi(m[1]); err == nil {
			return y
		}
	}
	return 2020
}

// FixTruncatedYears repairs years cut to "19." or "20." by PDF extraction,
// inferring the missing digits from the judgment's own citation year.
func FixTruncatedYears(text string) string {
	year := caseYear(text)
	suffix := fmt.Sprintf("%04d", year)[2:]
	if year < 2000 {
		suffix = "20"
	}

	text = truncMonthYearRe.ReplaceAllStringFunc(text, func(m string) string {
		g := truncMonthYearRe.FindStringSubmatch(m)
		if g[2] == "20" {
			return g[1] + " 20" + suffix + g[3]
		}
		return g[1] + " 1990" + g[3]
	})
	text = truncPrepYearRe.ReplaceAllStringFunc(text, func(m string) string {
		g := truncPrepYearRe.FindStringSubmatch(m)
		if g[2] == "20" {
			return g[1] + " 20" + suffix + g[3]
		}
		return g[1] + " 1990" + g[3]
	})
	revYear := year
	if revYear > 2020 {
		revYear = 2020
	}
	text = truncRevEdRe.ReplaceAllString(text, fmt.Sprintf("${1}%04d $3", revYear))
	return truncSuitYearRe.ReplaceAllString(text, "$1 $2 of 20"+suffix+"$4")
}

// FixTruncatedNumbers marks monetary amounts whose tail digits were lost.
func FixTruncatedNumbers(text string) string {
	return truncCurrencyRe.ReplaceAllString(text, "$1[truncated]$2")
}

// FixMoneyTruncation removes orphan periods left by truncated decimals,
// e.g. "$6. million" -> "$6 million".
func FixMoneyTruncation(text string) string {
	text = moneyUnitRe.ReplaceAllString(text, "$1 $2")
	return measureUnitRe.ReplaceAllString(text, "$1 $2")
}

var sgJudgeNames = []string{
	"Chan Sek Keong", "Andrew Phang", "Chao Hick Tin", "Tay Yong Kwang",
	"Judith Prakash", "Sundaresh Menon", "Steven Chong", "Belinda Ang",
	"Quentin Loh", "Woo Bih Li", "V K Rajah", "Lee Seiu Kin",
}

var sgJudgeTitles = []string{"CJ", "JCA", "JA", "JAD", "J", "SJ"}

var sgJudgeMappings = []struct {
	short, full string
}{
	{"Andrew", "Andrew Phang Boon Leong JA"},
	{"Chan", "Chan Sek Keong CJ"},
	{"Chao", "Chao Hick Tin JA"},
	{"Tay", "Tay Yong Kwang JCA"},
	{"Judith", "Judith Prakash JCA"},
	{"Sundaresh", "Sundaresh Menon CJ"},
	{"V K", "V K Rajah JA"},
	{"Steven", "Steven Chong JCA"},
	{"Woo", "Woo Bih Li J"},
	{"Belinda", "Belinda Ang Saw Ean JCA"},
	{"Quentin", "Quentin Loh J"},
}

var (
	vkRajahRe1 = regexp.MustCompile(`\bV\s+K\s*\n+\s*Rajah\b`)
	vkRajahRe2 = regexp.MustCompile(`\bV\s*\n+\s*K\s+Rajah\b`)
	vkRajahRe3 = regexp.MustCompile(`\bV\s+K\s+Rajah\s*\n+\s*(JA|JAD|J)\b`)
)

// FixSGJudgeNameSplits rejoins known Singapore judge names split across
// lines, including the name-before-title split.
func FixSGJudgeNameSplits(text string) string {
	text = vkRajahRe1.ReplaceAllString(text, "V K Rajah")
	text = vkRajahRe2.ReplaceAllString(text, "V K Rajah")
	text = vkRajahRe3.ReplaceAllString(text, "V K Rajah $1")
	for _, name := range sgJudgeNames {
		for _, title := range sgJudgeTitles {
			re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\s*\n+\s*` + title + `\b`)
			text = re.ReplaceAllString(text, name+" "+title)
		}
	}
	return text
}

// FixTruncatedJudgeNames restores attribution lines whose judge name was
// cut to a single word at the start of the core judgment.
func FixTruncatedJudgeNames(text string) string {
	for _, m := range sgJudgeMappings {
		re := regexp.MustCompile(`(?i)(CORE JUDGMENT\s*\n-+\n\s*\n)` + regexp.QuoteMeta(m.short) + `\s+(1\.|Introduction|Background)`)
		text = re.ReplaceAllString(text, "${1}"+m.full+" (delivering the judgment of the court):\n\n$2")

		re2 := regexp.MustCompile(`(CORE JUDGMENT\s*\n-+\n\s*\n)(` + regexp.QuoteMeta(m.short) + `)\s+(\d{1,2})\.\s+([A-Z])`)
		text = re2.ReplaceAllString(text, "${1}"+m.full+" (delivering the judgment of the court):\n\n$3. $4")
	}
	return text
}

var (
	judgeBeforeCoreRe = regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s+(?:CJ|JCA|JA|JAD|J|SJ)\s*\([^)]*delivering[^)]*\):?)\s*\n*(-+\s*\n*CORE JUDGMENT\s*\n*-+)`)
	coreStartsParaRe  = regexp.MustCompile(`(CORE JUDGMENT\s*\n-+\n)\s*(\d+)\.\s+([A-Z])`)
	coramRe           = regexp.MustCompile(`Coram\s*:\s*([^\n]+)`)
	judgesHeaderRe    = regexp.MustCompile(`Judges?\s*:\s*([^\n]+)`)
)

// EnsureJudgeAttribution places the delivering-judge line directly after the
// core judgment divider, synthesizing one from the Coram line when the text
// jumps straight into paragraph 1.
func EnsureJudgeAttribution(text string) string {
	if m := judgeBeforeCoreRe.FindStringSubmatch(text); m != nil {
		judgeLine := strings.TrimSpace(m[1])
		if !strings.HasSuffix(judgeLine, ":") {
			judgeLine += ":"
		}
		text = judgeBeforeCoreRe.ReplaceAllString(text, "$2\n\n"+judgeLine)
	}

	m := coreStartsParaRe.FindStringSubmatchIndex(text)
	if m == nil {
		return text
	}
	end := m[1]
	window := text[end-1 : min(end+200, len(text))]
	if strings.Contains(strings.ToLower(window), "delivering") {
		return text
	}

	var judges string
	if cm := coramRe.FindStringSubmatch(text); cm != nil {
		judges = strings.TrimSpace(cm[1])
	} else if hm := judgesHeaderRe.FindStringSubmatch(text); hm != nil {
		judges = strings.TrimSpace(hm[1])
	}
	if judges == "" {
		return text
	}
	first := strings.TrimSpace(strings.SplitN(judges, ";", 2)[0])
	first = strings.TrimSpace(strings.SplitN(first, ",", 2)[0])

	groups := coreStartsParaRe.FindStringSubmatch(text)
	newStart := groups[1] + "\n" + first + " (delivering the judgment of the court):\n\n" + groups[2] + ". " + groups[3]
	return text[:m[0]] + newStart + text[m[1]:]
}

var (
	caseLineRe   = regexp.MustCompile(`CASE:\s*([^\n]+)`)
	sgCiteInfoRe = regexp.MustCompile(`\[(\d{4})\]\s*SG(?:CA|HC)\s*(\d+)`)
	sgCiteTailRe = regexp.MustCompile(`\s*\[\d{4}\]\s*SG(?:CA|HC)\s*\d+\s*`)
)

var referenceIndicators = []string{
	" in [", " see [", " at [", "cited in", "reported at",
	"decision in", "judgment in", "case of", "appeal from",
	"reported in", "affirmed in", "overruled in",
}

// RemoveCaseCitationFromCore strips the case's own name-plus-citation lines
// that recur inside the core judgment as page furniture, while leaving real
// cross-references to the case untouched.
func RemoveCaseCitationFromCore(text string) string {
	cm := caseLineRe.FindStringSubmatch(text)
	if cm == nil {
		return text
	}
	caseName := strings.TrimSpace(cm[1])
	ci := sgCiteInfoRe.FindStringSubmatch(caseName)
	if ci == nil {
		return text
	}
	year, num := ci[1], ci[2]

	coreIdx := strings.Index(text, sectionCoreJudgment)
	if coreIdx < 0 {
		return text
	}
	before, core := text[:coreIdx], text[coreIdx:]

	nameOnly := strings.TrimSpace(sgCiteTailRe.ReplaceAllString(caseName, ""))
	patterns := []*regexp.Regexp{
		regexp.MustCompile(regexp.QuoteMeta(nameOnly) + `\s*\[` + year + `\]\s*SG(?:CA|HC)\s*` + num + `\.?`),
		regexp.MustCompile(`\n\s*\[` + year + `\]\s*SG(?:CA|HC)\s*` + num + `\.?\s*\n`),
	}

	for _, re := range patterns {
		locs := re.FindAllStringIndex(core, -1)
		for i := len(locs) - 1; i >= 0; i-- {
			loc := locs[i]
			start := loc[0] - 50
			if start < 0 {
				start = 0
			}
			preceding := strings.ToLower(core[start:loc[0]])
			isReference := false
			for _, ind := range referenceIndicators {
				if strings.Contains(preceding, ind) {
					isReference = true
					break
				}
			}
			if isReference {
				continue
			}
			after := strings.TrimSpace(core[loc[1]:min(loc[1]+50, len(core))])
			if after != "" {
				core = core[:loc[0]] + " " + core[loc[1]:]
			} else {
				core = core[:loc[0]] + core[loc[1]:]
			}
		}
	}
	core = doubleSpaceRe.ReplaceAllString(core, " ")
	core = blankRunsRe.ReplaceAllString(core, "\n\n")
	return before + core
}

var sgHeaderCiteInfoRe = regexp.MustCompile(`\[(\d{4})\]\s*(SG(?:HC|DC|MC))\s+(\d+)`)

var caseNameVRe = regexp.MustCompile(`(?i)\bv\b`)

// RemoveSGPageHeaders removes recurring page headers in SGHC/SGDC/SGMC
// PDFs: a short case-name line followed by the citation with the page
// number fused onto it and the paragraph continuation on the same line.
func RemoveSGPageHeaders(text string) string {
	header := text
	if len(header) > 800 {
		header = header[:800]
	}
	info := sgHeaderCiteInfoRe.FindStringSubmatch(header)
	if info == nil {
		return removeSGPageHeadersSimple(text, SGCitationRe)
	}
	year, court, num := info[1], info[2], info[3]
	fusedRe := regexp.MustCompile(`^\[` + year + `\]\s*` + court + `\s*` + num + `(\d{1,4})\s*(.*)`)

	lines := strings.Split(text, "\n")
	var result []string
	i := 0
	appendContinuation := func(continuation string) {
		if continuation == "" {
			return
		}
		if len(result) > 0 && strings.TrimSpace(result[len(result)-1]) != "" {
			prev := strings.TrimRight(result[len(result)-1], " \t")
			if prev != "" && strings.ContainsAny(prev[len(prev)-1:], `abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789,;:-("'`) {
				result[len(result)-1] = prev + " " + continuation
				return
			}
		}
		result = append(result, continuation)
	}

	for i < len(lines) {
		if i < 15 {
			result = append(result, lines[i])
			i++
			continue
		}
		line := strings.TrimSpace(lines[i])

		if i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if m := fusedRe.FindStringSubmatch(next); m != nil {
				isCaseName := caseNameVRe.MatchString(line) &&
					!regexp.MustCompile(`^\d+\.`).MatchString(line) &&
					len(line) < 120 &&
					!strings.ContainsAny(lastChar(line), ".;:,") &&
					!strings.HasPrefix(line, "(")
				if isCaseName {
					appendContinuation(strings.TrimSpace(m[2]))
					i += 2
					continue
				}
			}
		}

		if m := fusedRe.FindStringSubmatch(line); m != nil && i > 15 {
			prev := ""
			if i > 0 {
				prev = strings.TrimSpace(lines[i-1])
			}
			if !(caseNameVRe.MatchString(prev) && len(prev) < 120) {
				appendContinuation(strings.TrimSpace(m[2]))
				i++
				continue
			}
		}

		exactCiteRe := regexp.MustCompile(`^\[\d{4}\]\s*` + court + `\s*\d+\.?$`)
		if exactCiteRe.MatchString(line) && i > 10 {
			prevBlank := i == 0 || strings.TrimSpace(lines[i-1]) == ""
			nextBlank := i+1 >= len(lines) || strings.TrimSpace(lines[i+1]) == ""
			if !prevBlank && !nextBlank {
				if i+1 < len(lines) && !regexp.MustCompile(`^\s*at\s+\[`).MatchString(lines[i+1]) {
					i++
					continue
				}
			} else {
				i++
				continue
			}
		}

		result = append(result, lines[i])
		i++
	}
	return strings.Join(result, "\n")
}

func removeSGPageHeadersSimple(text string, citationRe *regexp.Regexp) string {
	exact := regexp.MustCompile(`^` + citationRe.String() + `\.?$`)
	lines := strings.Split(text, "\n")
	var out []string
	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		if i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if exact.MatchString(next) && caseNameVRe.MatchString(line) &&
				!regexp.MustCompile(`^\d+\.`).MatchString(line) &&
				len(line) < 100 && !strings.ContainsAny(lastChar(line), ".;:") {
				i += 2
				continue
			}
		}

		if exact.MatchString(line) && i > 10 {
			prevBlank := i == 0 || strings.TrimSpace(lines[i-1]) == ""
			nextBlank := i+1 >= len(lines) || strings.TrimSpace(lines[i+1]) == ""
			if !prevBlank && !nextBlank {
				if i+1 < len(lines) && !regexp.MustCompile(`^\s*at\s+\[`).MatchString(lines[i+1]) {
					i++
					continue
				}
			} else {
				i++
				continue
			}
		}

		out = append(out, lines[i])
		i++
	}
	return strings.Join(out, "\n")
}

func lastChar(s string) string {
	if s == "" {
		return ""
	}
	return s[len(s)-1:]
}

var sgEditorialNoticeRe = regexp.MustCompile(`(?is)This judgment is subject to final editorial corrections.*?the Singapore Law\s*Reports\.`)

// RemoveSGEditorialNotice drops the standard editorial notice at the start
// of Singapore judgments.
func RemoveSGEditorialNotice(text string) string {
	return sgEditorialNoticeRe.ReplaceAllString(text, "")
}

var mergedDateYearRe = regexp.MustCompile(`(?i)(\d{4})(\d{1,2})\s+(` + monthsAlt + `)\s+(\d{4})`)

// FixSGDateFormatting separates hearing and judgment dates fused by PDF
// extraction, e.g. "202413 January 2025" -> "2024\n13 January 2025".
func FixSGDateFormatting(text string) string {
	text = FixDatePeriods(text)
	return mergedDateYearRe.ReplaceAllString(text, "$1\n$2 $3 $4")
}

var sgCopyrightRe = regexp.MustCompile(`(?is)\s*Copyright\s*©\s*Government\s+of\s+Singapore\.?\s*.*$`)

// RemoveSGCopyrightNotice removes the Government of Singapore copyright
// notice and everything after it.
func RemoveSGCopyrightNotice(text string) string {
	return strings.TrimRight(sgCopyrightRe.ReplaceAllString(text, ""), " \t\n")
}

var (
	footnoteLineStartRe = regexp.MustCompile(`^\[\d+\]`)
	seeLineRe           = regexp.MustCompile(`(?i)^See\s+`)
	atParaLineRe        = regexp.MustCompile(`(?i)^At\s+para`)
)

// RemoveSGFootnotesSection removes the trailing footnote block of a
// Singapore judgment: two or more consecutive lines starting with [n].
func RemoveSGFootnotesSection(text string) string {
	lines := strings.Split(text, "\n")

	footnoteStart := -1
	consecutive := 0
	for i := len(lines) - 1; i >= 0; i-- {
		s := strings.TrimSpace(lines[i])
		if footnoteLineStartRe.MatchString(s) {
			consecutive++
			footnoteStart = i
		} else if s != "" && consecutive > 0 {
			if consecutive >= 2 {
				break
			}
			consecutive = 0
			footnoteStart = -1
		}
	}

	if footnoteStart == -1 || consecutive < 2 {
		return strings.TrimRight(text, " \t\n")
	}

	startRemoval := footnoteStart
	lo := footnoteStart - 5
	if lo < 0 {
		lo = 0
	}
	for i := lo; i < footnoteStart; i++ {
		s := strings.TrimSpace(lines[i])
		if seeLineRe.MatchString(s) || atParaLineRe.MatchString(s) || footnoteLineStartRe.MatchString(s) {
			startRemoval = i
			break
		}
	}
	return strings.TrimRight(strings.Join(lines[:startRemoval], "\n"), " \t\n")
}

var runOnParaRe = regexp.MustCompile(`([.!?])\s+(\d{1,3})\.\s+([A-Z])`)

var sgHeaderWords = []string{
	"Introduction", "Background", "Facts", "Issues", "Analysis",
	"Discussion", "Conclusion", "Decision", "Judgment", "Summary",
	"Preliminary", "Overview", "History", "Submissions", "Evidence",
}

// FixSGParagraphFormatting breaks run-on numbered paragraphs apart and
// separates section headers fused with the following sentence.
func FixSGParagraphFormatting(text string) string {
	text = runOnParaRe.ReplaceAllString(text, "$1\n\n$2. $3")

	for _, header := range sgHeaderWords {
		re := regexp.MustCompile(`\b(` + header + `)\s+([A-Z][a-z])`)
		locs := re.FindAllStringSubmatchIndex(text, -1)
		for i := len(locs) - 1; i >= 0; i-- {
			loc := locs[i]
			start := loc[0]
			if start == 0 {
				continue
			}
			lo := start - 5
			if lo < 0 {
				lo = 0
			}
			preceding := strings.TrimSpace(text[lo:start])
			if preceding == "" || !strings.ContainsAny(preceding[len(preceding)-1:], ".!?:") {
				continue
			}
			text = text[:loc[2]] + text[loc[2]:loc[3]] + "\n\n" + text[loc[4]:loc[5]] + text[loc[5]:]
		}
	}
	return text
}

var sgMetadataFields = []string{
	"Case Number", "Decision Date", "Tribunal/Court", "Coram",
	`Counsel Name\(s\)`, "Parties", "Court", "Judge", "Hearing Date",
}

// FixSGHeadnotesFormatting joins metadata field names with values split
// onto the following line ("Case Number\n: Suit No 682 of 2018").
func FixSGHeadnotesFormatting(text string) string {
	for _, field := range sgMetadataFields {
		re := regexp.MustCompile(`(?i)(` + field + `)\s*\n\s*:\s*`)
		text = re.ReplaceAllString(text, "$1: ")
	}
	colonValueRe := regexp.MustCompile(`(?i)(Case Number|Decision Date|Tribunal/Court|Coram|Court|Judge):\s*\n\s*`)
	return colonValueRe.ReplaceAllString(text, "$1: ")
}

var (
	prepMonthBreakRe = regexp.MustCompile(`(?i)\b(in|on|by|from|until|before|after|during)\s*\n\s*\n\s*(` + monthsAlt + `)`)
	lowerContinueRe  = regexp.MustCompile(`\b([a-z]+)\s*\n\s*\n\s*([a-z]{2,})`)
)

// FixSGBrokenSentences joins sentences split by a spurious blank line in
// SGHC PDFs (a preposition left dangling before a month, or a lowercase
// continuation after the break).
func FixSGBrokenSentences(text string) string {
	text = prepMonthBreakRe.ReplaceAllString(text, "$1 $2")
	return lowerContinueRe.ReplaceAllString(text, "$1 $2")
}
