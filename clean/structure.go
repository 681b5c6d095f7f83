package clean

import (
	"regexp"
	"strings"
)

var mergedHeaderRes = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^(Introduction\.)\s+([A-Z][a-z]|[A-Z]\s+[a-z])`),
	regexp.MustCompile(`(?im)^(Background\s+facts?\.)\s+([A-Z][a-z]|[A-Z]\s+[a-z])`),
	regexp.MustCompile(`(?im)^(Background\.)\s+([A-Z][a-z]|[A-Z]\s+[a-z])`),
	regexp.MustCompile(`(?im)^(The\s+facts?\.)\s+([A-Z][a-z]|[A-Z]\s+[a-z])`),
	regexp.MustCompile(`(?im)^(Facts\.)\s+([A-Z][a-z]|[A-Z]\s+[a-z])`),
	regexp.MustCompile(`(?im)^(General\s+principles?\.)\s+([A-Z][a-z]|[A-Z]\s+[a-z])`),
	regexp.MustCompile(`(?im)^(Our\s+decision\.)\s+([A-Z][a-z]|[A-Z]\s+[a-z])`),
	regexp.MustCompile(`(?im)^(Our\s+view\.)\s+([A-Z][a-z]|[A-Z]\s+[a-z])`),
	regexp.MustCompile(`(?im)^(Conclusion\.)\s+([A-Z][a-z]|[A-Z]\s+[a-z])`),
	regexp.MustCompile(`(?im)^(Analysis\.)\s+([A-Z][a-z]|[A-Z]\s+[a-z])`),
	regexp.MustCompile(`(?im)^(Discussion\.)\s+([A-Z][a-z]|[A-Z]\s+[a-z])`),
	regexp.MustCompile(`(?im)^(Issues?\s+on\s+appeal\.)\s+([A-Z][a-z]|[A-Z]\s+[a-z])`),
	regexp.MustCompile(`(?im)^(The\s+decision\s+below\.)\s+([A-Z][a-z]|[A-Z]\s+[a-z])`),
	regexp.MustCompile(`(?im)^(Procedural\s+history\.)\s+([A-Z][a-z]|[A-Z]\s+[a-z])`),
	regexp.MustCompile(`(?im)^(Preliminary\s+(?:matters?|issues?|observations?)\.)\s+([A-Z][a-z]|[A-Z]\s+[a-z])`),
}

// FixMergedHeaders splits common section headers off the paragraph text
// fused onto them ("Introduction. The application..." over two lines).
func FixMergedHeaders(text string) string {
	for _, re := range mergedHeaderRes {
		text = re.ReplaceAllStringFunc(text, func(m string) string {
			g := re.FindStringSubmatch(m)
			return strings.TrimSuffix(g[1], ".") + "\n\n" + g[2]
		})
	}
	return text
}

var inlineHeadingPatterns = []string{
	`The\s+(?:appropriate|relevant|applicable)\s+\w+(?:\s+\w+){1,8}`,
	`Precedents?\s+for\s+(?:the\s+)?\w+(?:\s+\w+){1,6}`,
	`Whether\s+\w+(?:\s+\w+){1,8}`,
	`Our\s+(?:decision|view|analysis|conclusion)\s+on\s+\w+(?:\s+\w+){0,6}`,
	`The\s+(?:law|facts?|issues?|background)\s+(?:on|relating to|concerning)\s+\w+(?:\s+\w+){0,6}`,
	`Division\s+of\s+(?:the\s+)?matrimonial\s+assets?`,
	`Maintenance\s+of\s+the\s+\w+(?:\s+and\s+\w+)*`,
	`Principles?\s+governing\s+\w+(?:\s+\w+){0,6}`,
}

var inlineHeadingRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(inlineHeadingPatterns))
	for _, p := range inlineHeadingPatterns {
		res = append(res, regexp.MustCompile(`(?i)([.!?])\s+(`+p+`)\.?\s+(\d+\.\s+|\n|[A-Z][a-z])`))
	}
	return res
}()

// FixInlineSectionHeadings moves section headings fused onto the end of a
// paragraph onto their own line.
func FixInlineSectionHeadings(text string) string {
	for _, re := range inlineHeadingRes {
		text = re.ReplaceAllStringFunc(text, func(m string) string {
			g := re.FindStringSubmatch(m)
			return g[1] + "\n\n" + strings.TrimSpace(g[2]) + "\n\n" + g[3]
		})
	}
	return text
}

var headingParaMergeRe = regexp.MustCompile(`([A-Z][a-z]+(?:\s+[a-z]+){2,10})\.\s*(\d{1,3})\.\s+([A-Z])`)

var headingKeywords = []string{
	"precedent", "division", "maintenance", "principle", "whether",
	"appropriate", "relevant", "applicable", "our decision", "our view",
	"the law", "the facts", "background", "conclusion", "analysis",
}

// FixHeadingParagraphMerge separates a heading followed directly by a
// numbered paragraph on the same line ("Precedents for division. 16. In
// MZ v NA...").
func FixHeadingParagraphMerge(text string) string {
	return headingParaMergeRe.ReplaceAllStringFunc(text, func(m string) string {
		g := headingParaMergeRe.FindStringSubmatch(m)
		lower := strings.ToLower(g[1])
		for _, kw := range headingKeywords {
			if strings.Contains(lower, kw) {
				return g[1] + "\n\n" + g[2] + ". " + g[3]
			}
		}
		return m
	})
}

var (
	listAfterColonRe = regexp.MustCompile(`([.;:])\s*\n(\([a-z]\))`)
	listRomanRe      = regexp.MustCompile(`(?i)([.;])\s+(\([ivxlc]+\))`)
	listNumberRe     = regexp.MustCompile(`([.;])\s+(\(\d+\))`)
)

// FixListSpacing separates top-level list items onto their own lines.
func FixListSpacing(text string) string {
	text = listAfterColonRe.ReplaceAllString(text, "$1\n\n$2")
	text = listRomanRe.ReplaceAllString(text, "$1\n$2")
	return listNumberRe.ReplaceAllString(text, "$1\n$2")
}

// FixBlockQuotes indents quoted blocks and isolates them with blank lines.
func FixBlockQuotes(text string) string {
	lines := strings.Split(text, "\n")
	var out []string
	inQuote := false
	for _, line := range lines {
		s := strings.TrimSpace(line)

		if !inQuote && strings.HasPrefix(s, `"`) && len(s) > 50 {
			inQuote = true
			out = append(out, "", "    "+s)
			continue
		}
		if inQuote {
			switch {
			case strings.HasSuffix(s, `"`) || strings.HasSuffix(s, `."`):
				out = append(out, "    "+s, "")
				inQuote = false
			case s != "" && !paraPrefixRe.MatchString(s):
				out = append(out, "    "+s)
			default:
				inQuote = false
				out = append(out, line)
			}
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

var lineEndPunctRe = regexp.MustCompile(`[.!?:;,]\s*$`)

// FixOddLineBreaks joins a line with no terminal punctuation to a lowercase
// continuation on the next line.
func FixOddLineBreaks(text string) string {
	lines := strings.Split(text, "\n")
	var out []string
	i := 0
	for i < len(lines) {
		line := lines[i]
		s := strings.TrimSpace(line)
		if s != "" && len(s) > 20 &&
			!lineEndPunctRe.MatchString(line) &&
			!dividerRe.MatchString(s) &&
			i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if startsLower(next) {
				out = append(out, strings.TrimRight(line, " \t")+" "+next)
				i += 2
				continue
			}
		}
		out = append(out, line)
		i++
	}
	return strings.Join(out, "\n")
}

var (
	titleHeadingRe = regexp.MustCompile(`^(?:[A-Z][a-z]+(?:\s+(?:of|the|and|in|on|for|to|at|by|a|an|or|is|as|with|from)\s+)?(?:[A-Za-z]+\s*){0,8}|[A-Z][A-Z\s]+[A-Z]|(?:Issue|Ground|Stage|Phase|Step|Part|Chapter|Section|Annex)\s+\d+)$`)
	spacingHeadRe  = regexp.MustCompile(`^(?:[A-Z][a-z]+(?:\s+[a-z]+)*(?:\s+[A-Z][a-z]+)*|[A-Z][A-Z\s]+[A-Z]|The\s+\w+(?:'s)?\s+\w+(?:\s+\w+){0,5}|(?:Issue|Ground|Stage|Phase|Step)\s+\d+)$`)
	subItemRe      = regexp.MustCompile(`^\([a-z]+\)\s`)
	subItemHeadRe  = regexp.MustCompile(`^\([a-z]+\)`)
)

// EnsureHeadingSpacing puts blank lines around section headings in the core
// judgment. A heading is a short line in Title Case or ALL CAPS without
// trailing punctuation.
func EnsureHeadingSpacing(text string) string {
	lines := strings.Split(text, "\n")
	var out []string
	inCore := false
	for i, line := range lines {
		s := strings.TrimSpace(line)
		if strings.Contains(s, sectionCoreJudgment) {
			inCore = true
			out = append(out, line)
			continue
		}
		if !inCore || s == "" || dividerRe.MatchString(s) {
			out = append(out, line)
			continue
		}
		isHeading := len(s) > 3 && len(s) < 80 &&
			!strings.ContainsAny(s[len(s)-1:], ".,;:!?") &&
			!(s[0] >= '0' && s[0] <= '9') &&
			!strings.ContainsAny(s[:1], "([") &&
			titleHeadingRe.MatchString(s)
		if isHeading && len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
			out = append(out, "")
		}
		out = append(out, line)
		if isHeading && i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" {
			out = append(out, "")
		}
	}
	return regexp.MustCompile(`\n{3,}`).ReplaceAllString(strings.Join(out, "\n"), "\n\n")
}

// EnsureParagraphSpacing puts a blank line before each numbered paragraph,
// heading and newly opened sub-item list in the core judgment.
func EnsureParagraphSpacing(text string) string {
	lines := strings.Split(text, "\n")
	var out []string
	inCore := false
	for i, line := range lines {
		s := strings.TrimSpace(line)
		if strings.Contains(s, sectionCoreJudgment) {
			inCore = true
			out = append(out, line)
			continue
		}
		if !inCore || s == "" || dividerRe.MatchString(s) {
			out = append(out, line)
			continue
		}

		isNumberedPara := numberedParaRe.MatchString(s)
		isHeading := len(s) < 80 &&
			!strings.ContainsAny(s[len(s)-1:], ".,;:!?") &&
			!(s[0] >= '0' && s[0] <= '9') &&
			!strings.ContainsAny(s[:1], "([") &&
			spacingHeadRe.MatchString(s)
		isSubItem := subItemRe.MatchString(s)

		prevNonBlank := len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != ""
		if (isNumberedPara || isHeading) && prevNonBlank {
			out = append(out, "")
		} else if isSubItem && prevNonBlank {
			prev := strings.TrimSpace(out[len(out)-1])
			if !strings.HasSuffix(prev, ":") && !subItemHeadRe.MatchString(prev) {
				out = append(out, "")
			}
		}
		out = append(out, line)
		if isHeading && i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" {
			out = append(out, "")
		}
	}
	return regexp.MustCompile(`\n{3,}`).ReplaceAllString(strings.Join(out, "\n"), "\n\n")
}

var (
	equalsHeaderRe  = regexp.MustCompile(`(?m)^={10,}`)
	malformedCaseRe = regexp.MustCompile(`^[=\s]*CASE:[^\n]+[=\s]*`)
)

// FixHeaderFormat rebuilds the ====-framed CASE header when it is missing
// or malformed.
func FixHeaderFormat(text string) string {
	if equalsHeaderRe.MatchString(text) {
		return text
	}
	cm := caseLineRe.FindStringSubmatch(text)
	if cm == nil {
		return text
	}
	rule := strings.Repeat("=", 70)
	header := rule + "\nCASE: " + strings.TrimSpace(cm[1]) + "\n" + rule
	if loc := malformedCaseRe.FindStringIndex(text); loc != nil {
		return text[:loc[0]] + header + "\n" + text[loc[1]:]
	}
	return text
}

var (
	suffixNextWordRe = regexp.MustCompile(`([a-z]{2,})(ed|ing|ly|al|ous|ive|ful|ment|ness|ion|ble|ant|ent)(the|of|in|on|at|to|for|with|by|from|as|or|and|that|this|into|was|is|are|be|been|has|had|have|which|these|those|its|if|but|not|no|so|such|also|only|even|just|more|most|some|any|all|each|both|few|many|much|other|same|own|well|now|then|here|there|when|where|how|why|what|who|whom|whose|an|a|short|long|new|old|first|last|next|high|low|under|over|after|before|during|within|without|between|among|against|through|across|along|around|behind|beyond)\b`)
	suffixVowelRe    = regexp.MustCompile(`([a-z]{2,})(ous|ive|ful|ment|ness|ion|ble|ant|ent|ing|ed|ly|al)(a[a-z]{3,}|e[a-z]{3,}|i[a-z]{3,}|o[a-z]{3,}|u[a-z]{3,})`)
	camelSplitRe     = regexp.MustCompile(`([a-z]{3,})([A-Z][a-z]{2,})`)
	maybeRe          = regexp.MustCompile(`(?i)\bmaybe\b([^\s,.])`)
)

var knownConcatenations = []struct {
	re  *regexp.Regexp
	sub string
}{
	{regexp.MustCompile(`(?i)\bdonot\b`), "do not"},
	{regexp.MustCompile(`\bCoOffenders\b`), "Co-Offenders"},
	{regexp.MustCompile(`(?i)\bcooffenders\b`), "co-offenders"},
	{regexp.MustCompile(`(?i)\bcareby\b`), "care by"},
	{regexp.MustCompile(`\bprotectMr\b`), "protect Mr"},
	{regexp.MustCompile(`\bprotectMs\b`), "protect Ms"},
	{regexp.MustCompile(`\bprotectMrs\b`), "protect Mrs"},
	{regexp.MustCompile(`(?i)\bcannotbe\b`), "cannot be"},
	{regexp.MustCompile(`(?i)\bwouldbe\b`), "would be"},
	{regexp.MustCompile(`(?i)\bcouldbe\b`), "could be"},
	{regexp.MustCompile(`(?i)\bshouldbe\b`), "should be"},
	{regexp.MustCompile(`(?i)\bmustbe\b`), "must be"},
	{regexp.MustCompile(`(?i)\bwillbe\b`), "will be"},
	{regexp.MustCompile(`(?i)\bescrowagreement\b`), "escrow agreement"},
}

// FixWordConcatenation splits words fused when PDF line breaks were dropped
// without a space ("claimedinto" -> "claimed into").
func FixWordConcatenation(text string) string {
	text = suffixNextWordRe.ReplaceAllString(text, "$1$2 $3")
	text = suffixVowelRe.ReplaceAllString(text, "$1$2 $3")
	text = camelSplitRe.ReplaceAllString(text, "$1 $2")
	for _, fix := range knownConcatenations {
		text = fix.re.ReplaceAllString(text, fix.sub)
	}
	return maybeRe.ReplaceAllString(text, "may be$1")
}
