package clean

import (
	"regexp"
	"strings"
)

// Section marker lines used in the rendered three-section layout.
const (
	sectionHeadnotes    = "HEADNOTES"
	sectionCoreJudgment = "CORE JUDGMENT"
	sectionFootnotes    = "FOOTNOTES"
)

// Segments holds a judgment split into its three regions.
type Segments struct {
	Headnotes string
	Core      string
	Footnotes string
}

var (
	headnotesDividerRe = regexp.MustCompile(`-{10,}\s*\n\s*HEADNOTES\s*\n\s*-{10,}`)
	coreDividerRe      = regexp.MustCompile(`-{10,}\s*\n\s*CORE JUDGMENT\s*\n\s*-{10,}`)
	footnotesDividerRe = regexp.MustCompile(`-{10,}\s*\n\s*FOOTNOTES\s*\n\s*-{10,}`)
	// Name-word separators stay on one line so a capitalized headnote word
	// before a blank line is never pulled into the attribution.
	judgeAttribRe = regexp.MustCompile(`\b([A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+){1,5}[ \t]+(?:CJ|JCA|JA|JAD|JC|J|SJ)[ \t]*:)`)
	firstParaRe        = regexp.MustCompile(`(?:^|\n)\s*1\.\s+[A-Z]`)
	firstParaFlatRe    = regexp.MustCompile(`\b1\.\s+\S`)
)

// Segment splits a judgment into headnotes, core and footnotes. Preference
// order: explicit dashed dividers when present, then the judge-attribution
// line, then the first "1." paragraph, then everything as core.
func Segment(text string) Segments {
	if headLoc := headnotesDividerRe.FindStringIndex(text); headLoc != nil {
		if coreLoc := coreDividerRe.FindStringIndex(text); coreLoc != nil && coreLoc[0] > headLoc[1] {
			seg := Segments{
				Headnotes: strings.TrimSpace(text[headLoc[1]:coreLoc[0]]),
			}
			rest := text[coreLoc[1]:]
			if footLoc := footnotesDividerRe.FindStringIndex(rest); footLoc != nil {
				seg.Core = strings.TrimSpace(rest[:footLoc[0]])
				seg.Footnotes = strings.TrimSpace(rest[footLoc[1]:])
			} else {
				seg.Core = strings.TrimSpace(rest)
			}
			return seg
		}
	}
	head, core := SegmentHeadCoreByJudge(text)
	return Segments{Headnotes: head, Core: core}
}

// SegmentHeadCoreByJudge splits at the judge attribution line that opens the
// judgment proper ("Andrew Phang Boon Leong JC:"). When no attribution is
// found it falls back to the first "1." paragraph, scanning backwards for a
// nearby attribution so the judge line stays with the core.
func SegmentHeadCoreByJudge(text string) (string, string) {
	if loc := judgeAttribRe.FindStringIndex(text); loc != nil {
		return strings.TrimSpace(text[:loc[0]]), strings.TrimSpace(text[loc[0]:])
	}

	if loc := firstParaRe.FindStringIndex(text); loc != nil {
		start := loc[0]
		lo := start - 200
		if lo < 0 {
			lo = 0
		}
		if j := judgeAttribRe.FindStringIndex(text[lo:start]); j != nil {
			start = lo + j[0]
		}
		return strings.TrimSpace(text[:start]), strings.TrimSpace(text[start:])
	}

	return "", text
}

// SegmentHeadCoreFlat flattens the text to a single line and splits at the
// first "1." marker. Used for UK judgments whose core is restructured from
// flat text afterwards.
func SegmentHeadCoreFlat(text string) (string, string) {
	flat := regexp.MustCompile(`\s+`).ReplaceAllString(text, " ")
	flat = RepairSpaceSeparatedDigits(flat)
	loc := firstParaFlatRe.FindStringIndex(flat)
	if loc == nil {
		return "", text
	}
	return strings.TrimSpace(flat[:loc[0]]), strings.TrimSpace(flat[loc[0]:])
}

// RemoveDuplicateSections keeps only the first HEADNOTES and the first
// CORE JUDGMENT divider when duplicates survive a merge of page fragments.
func RemoveDuplicateSections(text string) string {
	text = dropRepeatDividers(text, headnotesDividerRe)
	return dropRepeatDividers(text, coreDividerRe)
}

func dropRepeatDividers(text string, re *regexp.Regexp) string {
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) <= 1 {
		return text
	}
	var b strings.Builder
	prev := 0
	for i, loc := range locs {
		b.WriteString(text[prev:loc[0]])
		if i == 0 {
			b.WriteString(text[loc[0]:loc[1]])
		}
		prev = loc[1]
	}
	b.WriteString(text[prev:])
	return b.String()
}

var (
	coreBoundaryRe  = regexp.MustCompile(`-{10,}\s*\n\s*CORE JUDGMENT\s*\n\s*-{10,}`)
	sentenceEndRe   = regexp.MustCompile(`[.!?:]\s*$`)
	nextSentEndRe   = regexp.MustCompile(`[.!?]\s`)
	headnotesBlobRe = regexp.MustCompile(`(?s)(-{10,}\s*\nHEADNOTES\s*\n-{10,}\s*\n)(.*?)(-{10,}\s*\nCORE JUDGMENT)`)
)

// FixSplitContentAtCoreBoundary moves a sentence fragment that was cut by
// the CORE JUDGMENT divider back in front of it.
func FixSplitContentAtCoreBoundary(text string) string {
	loc := coreBoundaryRe.FindStringIndex(text)
	if loc == nil {
		return text
	}
	before := strings.TrimRight(text[:loc[0]], " \t\n")
	if before == "" || sentenceEndRe.MatchString(before) {
		return text
	}
	remaining := strings.TrimLeft(text[loc[1]:], "\n")
	if remaining == "" {
		return text
	}
	c := remaining[0]
	if !(c >= 'a' && c <= 'z') && c != ',' {
		return text
	}
	end := nextSentEndRe.FindStringIndex(remaining)
	if end == nil {
		return text
	}
	continuation := remaining[:end[1]]
	rest := remaining[end[1]:]
	divider := text[loc[0]:loc[1]]
	return before + continuation + "\n\n" + divider + "\n\n" + rest
}

// CleanHeadnotes tidies blank runs inside the headnotes block.
func CleanHeadnotes(text string) string {
	m := headnotesBlobRe.FindStringSubmatchIndex(text)
	if m == nil {
		return text
	}
	header := text[m[2]:m[3]]
	headnotes := text[m[4]:m[5]]
	headnotes = regexp.MustCompile(`\n{4,}`).ReplaceAllString(headnotes, "\n\n\n")
	headnotes = strings.TrimSpace(headnotes)
	return text[:m[0]] + header + headnotes + "\n\n" + text[m[6]:]
}
