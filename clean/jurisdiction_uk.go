package clean

import (
	"regexp"
	"strconv"
	"strings"
)

// UKCitationRe matches UK neutral citations.
var UKCitationRe = regexp.MustCompile(`\[\d{4}\]\s+UK(?:SC|HL)\s+\d+`)

var encodingReplacer = strings.NewReplacer(
	"’", "'", "‘", "'", "“", `"`, "”", `"`,
	"—", "-", "–", "-", " ", " ", "­", "",
	"&nbsp;", " ", "&amp;", "&", "&lt;", "<", "&gt;", ">",
	"&ndash;", "-", "&mdash;", "-", "&lsquo;", "'", "&rsquo;", "'",
	"&ldquo;", `"`, "&rdquo;", `"`,
)

// FixEncoding normalizes smart quotes, dashes and leftover HTML entities.
func FixEncoding(text string) string {
	return encodingReplacer.Replace(text)
}

var (
	lordHyphenSplitRe     = regexp.MustCompile(`(LORD\s+[A-Z]+)\s*\n+\s*(-[A-Z]+)`)
	lordOfLCSplitRe       = regexp.MustCompile(`(LORD\s+[A-Z]+\s+OF\s+[A-Z]+)\s+L\n+\.C\.`)
	lordLCSplitRe         = regexp.MustCompile(`(LORD\s+[A-Z]+)\s+L\n+\.C\.`)
	ladyHyphenSplitRe     = regexp.MustCompile(`(LADY\s+[A-Z]+)\s*\n+\s*(-[A-Z]+)`)
	baronessHyphenSplitRe = regexp.MustCompile(`(BARONESS\s+[A-Z]+)\s*\n+\s*(-[A-Z]+)`)
)

// FixSplitLordNames rejoins Law Lord names split across lines in the HTML
// source, e.g. "LORD BROWNE\n-WILKINSON".
func FixSplitLordNames(text string) string {
	text = lordHyphenSplitRe.ReplaceAllString(text, "$1$2")
	text = lordOfLCSplitRe.ReplaceAllString(text, "$1 L.C.")
	text = lordLCSplitRe.ReplaceAllString(text, "$1 L.C.")
	text = ladyHyphenSplitRe.ReplaceAllString(text, "$1$2")
	return baronessHyphenSplitRe.ReplaceAllString(text, "$1$2")
}

var (
	youAreHereRe = regexp.MustCompile(`(?is)You are here:.*?(\n\n|\z)`)
	citeAsRe     = regexp.MustCompile(`(?is)Cite as:.*?(\n\n|\z)`)
	urlLineRe    = regexp.MustCompile(`(?is)URL:.*?(\n\n|\z)`)
	judgmentsRe  = regexp.MustCompile(`Judgments\s*-\s*`)
	holDecideRe  = regexp.MustCompile(`(?im)^House of Lords Decisions\s*\n`)
)

// RemoveUKSourceBoilerplate strips database navigation chrome from UK
// judgments scraped from case-law databases.
func RemoveUKSourceBoilerplate(text string) string {
	text = youAreHereRe.ReplaceAllString(text, "$1")
	text = citeAsRe.ReplaceAllString(text, "$1")
	text = urlLineRe.ReplaceAllString(text, "$1")
	text = judgmentsRe.ReplaceAllString(text, "")
	return holDecideRe.ReplaceAllString(text, "")
}

var (
	copyrightPolicyRe = regexp.MustCompile(`(?is)\s*Copyright Policy\s*\|.*$`)
	crownEntityRe     = regexp.MustCompile(`(?i)\s*&copy;?\s*\d{4}\s*Crown Copyright\.?\s*$`)
	crownSymbolRe     = regexp.MustCompile(`(?i)\s*©\s*\d{4}\s*Crown Copyright\.?\s*$`)
)

// RemoveUKSourceFooter strips database footers and Crown copyright notices.
func RemoveUKSourceFooter(text string) string {
	text = copyrightPolicyRe.ReplaceAllString(text, "")
	text = crownEntityRe.ReplaceAllString(text, "")
	return strings.TrimSpace(crownSymbolRe.ReplaceAllString(text, ""))
}

var lordHeaderRe = regexp.MustCompile(`\b((?:LORD|LADY|BARONESS)\s+[A-Z][A-Z]+(?:-[A-Z]+)?(?:\s+OF\s+[A-Z][A-Z]+(?:\s+[A-Z]+)?)?(?:\s+L\.?C\.?)?)\b`)

// FormatLordHeaders isolates LORD/LADY/BARONESS speech headers onto their
// own lines.
func FormatLordHeaders(text string) string {
	return lordHeaderRe.ReplaceAllStringFunc(text, func(m string) string {
		for _, part := range strings.Fields(m) {
			switch part {
			case "LORD", "LADY", "BARONESS", "OF", "L.C.", "LC":
				continue
			}
			if part != strings.ToUpper(part) {
				return m
			}
		}
		return "\n\n" + m + "\n\n"
	})
}

var (
	opinionsOfLordsRe = regexp.MustCompile(`(?i)OPINIONS OF THE LORDS OF APPEAL FOR JUDGMENT IN THE CAUSE`)
	houseOfLordsRe    = regexp.MustCompile(`(?i)HOUSE OF LORDS`)
)

// CleanHeadnotesGarbageUK drops leading chrome from UK headnotes, keyed on
// the judgment year: from 2003 the opinions banner opens the headnotes,
// earlier judgments open with "HOUSE OF LORDS".
func CleanHeadnotesGarbageUK(headnotes string, year int) string {
	var loc []int
	if year >= 2003 {
		loc = opinionsOfLordsRe.FindStringIndex(headnotes)
	} else {
		loc = houseOfLordsRe.FindStringIndex(headnotes)
	}
	if loc != nil {
		headnotes = headnotes[loc[0]:]
	}
	return strings.TrimSpace(headnotes)
}

var (
	lordMyLordsRe    = regexp.MustCompile(`(?i)\n((?:LORD|LADY|BARONESS)\s+[A-Z][A-Z]+(?:-[A-Z]+)?(?:\s+OF\s+[A-Z][A-Z\s]+)?(?:\s+L\.?C\.?)?)\s*\n+\s*My Lords`)
	lordStandaloneRe = regexp.MustCompile(`\n\s*((?:LORD|LADY|BARONESS)\s+[A-Z][A-Z]+(?:-[A-Z]+)?(?:\s+OF\s+[A-Z][A-Z\s]+)?(?:\s+L\.?C\.?)?)\s*\n`)
	myLordsRe        = regexp.MustCompile(`\bMy Lords,`)
)

// FindCoreJudgmentStartUK locates the offset where the first speech begins,
// preferring a LORD header followed by "My Lords", then any standalone LORD
// header, then a bare "My Lords,".
func FindCoreJudgmentStartUK(text string) int {
	if loc := lordMyLordsRe.FindStringIndex(text); loc != nil {
		return loc[0]
	}
	if loc := lordStandaloneRe.FindStringIndex(text); loc != nil {
		return loc[0]
	}
	if loc := myLordsRe.FindStringIndex(text); loc != nil {
		return loc[0]
	}
	return 0
}

var (
	ukYearRe   = regexp.MustCompile(`\[(\d{4})\]`)
	ukFlatWSRe = regexp.MustCompile(`\s+`)
)

// ukJudgmentYear reads the year from the first bracketed citation. UKHL
// numbering began in 2001, so recent judgments always carry one; bare
// headnote fragments default to the modern banner era.
func ukJudgmentYear(text string) int {
	if m := ukYearRe.FindStringSubmatch(text); m != nil {
		if y, err := strconv.Atoi(m[1]); err == nil {
			return y
		}
	}
	return 2003
}

func flattenUK(s string) string {
	return strings.TrimSpace(RepairSpaceSeparatedDigits(ukFlatWSRe.ReplaceAllString(s, " ")))
}

// SegmentHeadCoreUK splits a UK judgment into headnotes and flat core text.
// The first speech header wins when one is present; otherwise the split
// falls back to the first "1." marker in the flattened text. Headnote
// chrome before the era banner is trimmed using the judgment year.
func SegmentHeadCoreUK(text string) (string, string) {
	var head, coreFlat string
	if start := FindCoreJudgmentStartUK(text); start > 0 {
		head = strings.TrimSpace(text[:start])
		coreFlat = flattenUK(text[start:])
	} else {
		head, coreFlat = SegmentHeadCoreFlat(text)
	}
	return CleanHeadnotesGarbageUK(head, ukJudgmentYear(text)), coreFlat
}

var (
	committeeRe     = regexp.MustCompile(`(?is)(?:Appellate Committee|Appeal Committee)\s+comprised:\s*(.*?)(?:HOUSE OF LORDS|OPINIONS|\z)`)
	lordNameMixedRe = regexp.MustCompile(`(?i)((?:Lord|Lady|Baroness)\s+[A-Za-z]+(?:-[A-Za-z]+)?(?:\s+of\s+[A-Za-z\-]+)?)`)
	lordNameLineRe  = regexp.MustCompile(`(?im)^((?:Lord|Lady|Baroness)\s+[A-Za-z]+(?:-[A-Za-z]+)?(?:\s+of\s+[A-Za-z\-]+)?)\s*$`)
	lordSpeechRe    = regexp.MustCompile(`(?m)^\s*((?:LORD|LADY|BARONESS)\s+[A-Z][A-Z]+(?:-[A-Z]+)?(?:\s+OF\s+[A-Z][A-Z]+(?:\s+[A-Z]+)?)?(?:\s+L\.?C\.?)?)\s*$`)
	lcSuffixRe      = regexp.MustCompile(`\s+L\.?C\.?\s*$`)
)

// ExtractJudgesFromHeadnotesUK lists the Law Lords named in the headnotes,
// preferring the Appellate Committee block.
func ExtractJudgesFromHeadnotesUK(headnotes string) []string {
	var judges []string
	seen := map[string]bool{}

	if m := committeeRe.FindStringSubmatch(headnotes); m != nil {
		for _, nm := range lordNameMixedRe.FindAllStringSubmatch(m[1], -1) {
			name := strings.TrimSpace(nm[1])
			if name != "" && !seen[name] {
				seen[name] = true
				judges = append(judges, name)
			}
		}
		if len(judges) > 0 {
			return judges
		}
	}

	for _, nm := range lordNameLineRe.FindAllStringSubmatch(headnotes, -1) {
		name := strings.TrimSpace(nm[1])
		if name != "" && !seen[name] {
			seen[name] = true
			judges = append(judges, name)
		}
	}
	return judges
}

// ExtractJudgesFromCoreUK lists the Law Lords from the ALL-CAPS speech
// headers in the core judgment, title-cased.
func ExtractJudgesFromCoreUK(core string) []string {
	var judges []string
	seen := map[string]bool{}
	for _, m := range lordSpeechRe.FindAllStringSubmatch(core, -1) {
		name := lcSuffixRe.ReplaceAllString(strings.TrimSpace(m[1]), "")
		var words []string
		for _, w := range strings.Fields(name) {
			switch {
			case strings.EqualFold(w, "of"):
				words = append(words, "of")
			case strings.Contains(w, "-"):
				parts := strings.Split(w, "-")
				for i, p := range parts {
					parts[i] = titleCaseWord(p)
				}
				words = append(words, strings.Join(parts, "-"))
			default:
				words = append(words, titleCaseWord(w))
			}
		}
		name = strings.Join(words, " ")
		if !seen[name] {
			seen[name] = true
			judges = append(judges, name)
		}
	}
	return judges
}

func titleCaseWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}

var (
	ukHeadingRe     = regexp.MustCompile(`\(\s*(\d{1,3})\s*\)\s+([A-Z][^()\n]{0,80})`)
	ukSubparaRe     = regexp.MustCompile(`\(\s*(\d{1,3})\s*\)\s+(Whether|If|That|To|In|On|The|An|As|Where|When|Why|How|A\b|[A-Z])`)
	ukParaBoundryRe = regexp.MustCompile(`(\S)\s+(\d{1,3})\.\s+([A-Z"(])`)
	horizWSRunRe    = regexp.MustCompile(`[ \t]+`)
	blankRunUKRe    = regexp.MustCompile(`\n{3,}`)
)

var ukBadHeadingWords = []string{"section", "subsection", "schedule", "act", "chapter", "paragraph", "para"}

// isTrueHeadingUK distinguishes real section headings from numbered
// sub-paragraphs that happen to match the heading shape.
func isTrueHeadingUK(title string) bool {
	t := strings.TrimSpace(title)
	if len(strings.Fields(t)) > 10 {
		return false
	}
	lower := strings.ToLower(t)
	for _, w := range ukBadHeadingWords {
		if strings.Contains(lower, w) {
			return false
		}
	}
	return !strings.HasSuffix(t, ",") && !strings.HasSuffix(t, ";")
}

// RewriteCoreUK restructures flattened UK core text: section headings get
// their own blank-line-separated lines, paragraph numbers start new
// paragraphs, and sub-paragraph markers start new lines.
func RewriteCoreUK(coreFlat string) string {
	s := ukHeadingRe.ReplaceAllStringFunc(coreFlat, func(m string) string {
		g := ukHeadingRe.FindStringSubmatch(m)
		title := strings.TrimSpace(g[2])
		if isTrueHeadingUK(title) {
			return "\n\n(" + g[1] + ") " + title + "\n\n"
		}
		return m
	})
	s = ukParaBoundryRe.ReplaceAllString(s, "$1\n\n$2. $3")
	s = ukSubparaRe.ReplaceAllString(s, "\n($1) $2")
	s = horizWSRunRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(blankRunUKRe.ReplaceAllString(s, "\n\n"))
}
