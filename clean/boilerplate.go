package clean

import (
	"regexp"
	"strings"
)

var (
	noteRefRe        = regexp.MustCompile(`\[note:\s*\d+\]`)
	noteLineRe       = regexp.MustCompile(`^(o\s+)?\[note:\s*\d+\]`)
	bundleLineRe     = regexp.MustCompile(`(?i)^\d{1,2}\.\s+(?:Appellant|Respondent|Plaintiff|Defendant)'?s?\s+(?:Case|Skeletal|Submissions|Reply|Core Bundle|Written)`)
	versionMarkerRe  = regexp.MustCompile(`Version No \d+:\s*\d+\s+\w+\s+\d{4}\s*\(\d+:\d+\s*hrs?\)`)
	standalonePageRe = regexp.MustCompile(`^\d{1,3}$`)
	pageOfRe         = regexp.MustCompile(`(?i)^Page\s+\d+\s+of\s+\d+`)
	dottedLeaderRe   = regexp.MustCompile(`\.{5,}\s*\d+`)
	dottedTOCLineRe  = regexp.MustCompile(`[^\n]*\.{5,}\s*\d+[^\n]*\n?`)
	contentsLineRe   = regexp.MustCompile(`(?i)\n\s*(?:Table of )?Contents?\s*\n`)
)

// DeleteNoteReferences strips [note: N] markers and the submission-bundle
// reference lines that carry them.
func DeleteNoteReferences(text string) string {
	text = noteRefRe.ReplaceAllString(text, "")
	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, line := range lines {
		s := strings.TrimSpace(line)
		if bundleLineRe.MatchString(s) || noteLineRe.MatchString(s) {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// RemoveVersionMarkers drops PDF version stamps like
// "Version No 1: 22 Nov 2024 (10:26 hrs)".
func RemoveVersionMarkers(text string) string {
	return versionMarkerRe.ReplaceAllString(text, "")
}

// RemovePageNumbers drops standalone page-number lines and "Page N of M"
// markers.
func RemovePageNumbers(text string) string {
	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, line := range lines {
		s := strings.TrimSpace(line)
		if standalonePageRe.MatchString(s) || pageOfRe.MatchString(s) {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// RemoveTableOfContents removes table-of-contents lines with dotted leaders
// and reports whether a TOC was found.
func RemoveTableOfContents(text string) (string, bool) {
	hadTOC := false
	if dottedLeaderRe.MatchString(text) {
		hadTOC = true
		text = dottedTOCLineRe.ReplaceAllString(text, "")
	}
	text = contentsLineRe.ReplaceAllString(text, "\n")
	return CleanMultipleBlanks(text), hadTOC
}

// RemoveHeaderFooterCitations drops neutral-citation lines repeated as page
// headers or footers. A citation line is boilerplate only when isolated by a
// blank line on at least one side.
func RemoveHeaderFooterCitations(text string, citationRe *regexp.Regexp) string {
	lines := strings.Split(text, "\n")
	var out []string
	prevBlank := false
	for i, line := range lines {
		s := strings.TrimSpace(line)
		if citationRe.MatchString(s) && citationRe.FindString(s) == s {
			nextBlank := i+1 < len(lines) && strings.TrimSpace(lines[i+1]) == ""
			if prevBlank || nextBlank {
				prevBlank = true
				continue
			}
		}
		prevBlank = s == ""
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

var datePeriodRe = regexp.MustCompile(`(?i)(\d{1,2})\.\s*(` + monthsAlt + `)\s+(\d{4})`)

// FixDatePeriods repairs "15. April 2007" back to "15 April 2007".
func FixDatePeriods(text string) string {
	return datePeriodRe.ReplaceAllString(text, "$1 $2 $3")
}

var (
	brokenCiteDotRe = regexp.MustCompile(`\[(\d{4})\]\s*\n\s*\n(\d+)\.\s*SLR`)
	brokenCiteNumRe = regexp.MustCompile(`\[(\d{4})\]\s*\n\s*\n(\d+)\s+SLR`)
)

// FixBrokenCitations rejoins report citations split across a blank line,
// e.g. "[2014]\n\n4. SLR 723".
func FixBrokenCitations(text string) string {
	text = brokenCiteDotRe.ReplaceAllString(text, "[$1] $2 SLR")
	return brokenCiteNumRe.ReplaceAllString(text, "[$1] $2 SLR")
}

var (
	fusedAfterPeriodRe  = regexp.MustCompile(`([a-z])\.(\d{1,3})(\s|$)`)
	fusedAfterParenRe   = regexp.MustCompile(`\)(\d{1,3})(\s|$)`)
	fusedAfterBracketRe = regexp.MustCompile(`\](\d{1,3})([\s.,;:])`)
	fusedAfterQuoteRe   = regexp.MustCompile(`(["\x{201d}])(\d{1,3})(\s|$)`)
	fusedSuperscriptRe  = regexp.MustCompile(`([a-z])(\d{1,3})(\s+[A-Z])`)
)

// RemoveMergedFootnotes strips superscript footnote numbers fused after
// punctuation during PDF extraction: "the contract.20" -> "the contract.".
// Decimal numbers like "10.5" are untouched.
func RemoveMergedFootnotes(text string) string {
	text = fusedAfterPeriodRe.ReplaceAllString(text, "$1.$3")
	text = fusedAfterParenRe.ReplaceAllString(text, ")$2")
	text = fusedAfterBracketRe.ReplaceAllString(text, "]$2")
	text = fusedAfterQuoteRe.ReplaceAllString(text, "$1$3")
	return fusedSuperscriptRe.ReplaceAllString(text, "$1$3")
}

var (
	orphanMarkerRe  = regexp.MustCompile(`^\[\d{1,3}\]$`)
	orphanMarkersRe = regexp.MustCompile(`^(\[\d{1,3}\]\s*)+$`)
)

// RemoveOrphanedFootnoteMarkers drops lines that are nothing but footnote
// markers such as "[3]" or "[1] [2] [3]".
func RemoveOrphanedFootnoteMarkers(text string) string {
	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, line := range lines {
		s := strings.TrimSpace(line)
		if orphanMarkerRe.MatchString(s) || orphanMarkersRe.MatchString(s) {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

const footnoteAbbrevs = `AEIC|NEs|NE|AWS|RWS|DCS|PCS|DRS|PRS|SOC|DCC|FNBP|BOA|` +
	`PBOD|DBOD|ROA|AB|BA|CB|ACB|RCB|DCB|PCB|` +
	`PBD|DBD|JCB|JAEIC|` +
	`Transcript|Notes?\s+of\s+Evidence`

var strayFootnoteRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(?:` + footnoteAbbrevs + `)\b[^.]*?(?:at\s+(?:pp?\.?\s*\d|para|paras|\[\d|line|pg|page)|dated\s+\d)`),
	regexp.MustCompile(`(?i)^(?:Appellant|Respondent|Defendant|Plaintiff|Prosecution|Defence|Claimant|Applicant|Petitioner|Intervener|1st|2nd|3rd|4th|5th)\S*\s+(?:Written\s+)?(?:Submissions?|Skeletal\s+Arguments?|Closing|Reply|Opening)`),
	regexp.MustCompile(`(?i)^(?:NEs?\s*\(|Notes?\s+of\s+Evidence)`),
}

var (
	strayShortRefRe = regexp.MustCompile(`(?i)^(?:` + footnoteAbbrevs + `)\s+(?:at\s+|of\s+)`)
	strayPinRefRe   = regexp.MustCompile(`(?i)^(?:\d{1,4})?\s*(?:` + footnoteAbbrevs + `)\b.*?(?:at\s+(?:pp?\.?\s*\d|para|paras|\[\d|line|pg|page))`)
)

// RemoveStrayFootnotes drops short lines in the core judgment that are
// evidence or submission references (AEIC, NE, ROA and friends) rather than
// judgment text.
func RemoveStrayFootnotes(text string) string {
	lines := strings.Split(text, "\n")
	var out []string
	inCore := false
	for _, line := range lines {
		s := strings.TrimSpace(line)
		if strings.Contains(s, sectionCoreJudgment) {
			inCore = true
		}
		if !inCore || s == "" || len(s) > 200 {
			out = append(out, line)
			continue
		}

		isFootnote := false
		for _, re := range strayFootnoteRes {
			if re.MatchString(s) {
				isFootnote = true
				break
			}
		}
		if !isFootnote && len(s) < 80 && strayShortRefRe.MatchString(s) {
			isFootnote = true
		}
		if !isFootnote && len(s) < 120 && strayPinRefRe.MatchString(s) {
			isFootnote = true
		}
		if isFootnote {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

var headnotesHeaderRe = regexp.MustCompile(`-{10,}\s*\nHEADNOTES\s*\n-{10,}\s*\n`)

var dbMetadataRes = []*regexp.Regexp{
	regexp.MustCompile(`\nCase Number:`),
	regexp.MustCompile(`\nSuit No:`),
	regexp.MustCompile(`\nDecision Date:`),
	regexp.MustCompile(`\nTribunal/Court:`),
	regexp.MustCompile(`\nCoram:`),
	regexp.MustCompile(`\n[A-Z][a-z]+ v [A-Z]`),
}

var dbMarkers = []string{
	"Databases",
	"You are here:",
	"Database Search",
	"Name Search",
	"Recent Decisions",
	"District Court of Singapore",
	"Magistrate",
}

// RemoveSourceDatabaseBoilerplate strips database navigation chrome that
// sits between the HEADNOTES header and the first metadata line in files
// downloaded from case-law databases.
func RemoveSourceDatabaseBoilerplate(text string) string {
	loc := headnotesHeaderRe.FindStringIndex(text)
	if loc == nil {
		return text
	}
	start := loc[1]

	metaStart := -1
	for _, re := range dbMetadataRes {
		if m := re.FindStringIndex(text[start:]); m != nil {
			pos := start + m[0]
			if metaStart == -1 || pos < metaStart {
				metaStart = pos
			}
		}
	}
	if metaStart == -1 {
		return text
	}

	section := text[start:metaStart]
	for _, marker := range dbMarkers {
		if strings.Contains(section, marker) {
			return text[:start] + "\n" + strings.TrimLeft(text[metaStart:], " \t\n")
		}
	}
	return text
}
