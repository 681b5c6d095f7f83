package report

import (
	"regexp"
	"strings"
)

// neutralCourts matches the court codes that appear in neutral citations
// across the corpora.
const neutralCourts = `(?:SGCA|SGHC|SGHCF|SGDC|SGMC|UKSC|UKHL|UKPC|` +
	`EWCA(?:\s+(?:Civ|Crim))?|EWHC|` +
	`HCA|FCAFC|FCA|NSWCA|NSWSC|VSC|VSCA|QCA|QSC)`

var (
	caseLineRe      = regexp.MustCompile(`CASE:\s*(.+)`)
	neutralCiteRe   = regexp.MustCompile(`(\[\d{4}\]\s*` + neutralCourts + `\s*\d+)`)
	decisionDateRe  = regexp.MustCompile(`(?i)(?:Decision\s+Date|DATE|Date)\s*:\s*(.+?)(\n|$)`)
	headnotesSpanRe = regexp.MustCompile(`(?is)HEADNOTES.*?CORE JUDGMENT`)
	longDateRe      = regexp.MustCompile(`(?i)(\d{1,2}\s+(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4})`)
	citeYearRe      = regexp.MustCompile(`\[(\d{4})\]`)

	titleCiteTailRe = regexp.MustCompile(`\s*\[\d{4}\]\s*` + neutralCourts + `.*$`)
	titleSuffixRe   = regexp.MustCompile(`_cleaned_\d+\.\d+$`)
)

// Metadata holds the identifying fields extracted from a cleaned judgment.
type Metadata struct {
	Title    string
	Citation string
	Date     string
	Year     string
}

// ExtractMetadata pulls title, citation, date and year from a cleaned
// judgment. The filename is the fallback source for title and citation.
func ExtractMetadata(content, filename string) Metadata {
	var md Metadata

	if m := caseLineRe.FindStringSubmatch(content); m != nil {
		md.Title = strings.TrimSpace(m[1])
	} else {
		md.Title = strings.TrimSuffix(filename, ".txt")
	}

	// Citation from title, falling back to filename
	if m := neutralCiteRe.FindStringSubmatch(md.Title); m != nil {
		md.Citation = strings.TrimSpace(m[1])
	} else if m := neutralCiteRe.FindStringSubmatch(filename); m != nil {
		md.Citation = strings.TrimSpace(m[1])
	}

	if m := decisionDateRe.FindStringSubmatch(content); m != nil {
		md.Date = strings.TrimSpace(m[1])
	}
	if md.Date == "" {
		// Last long-form date in the headnotes block
		if span := headnotesSpanRe.FindString(content); span != "" {
			if dates := longDateRe.FindAllStringSubmatch(span, -1); dates != nil {
				md.Date = dates[len(dates)-1][1]
			}
		}
	}

	yearSource := md.Citation
	if yearSource == "" {
		yearSource = filename
	}
	if m := citeYearRe.FindStringSubmatch(yearSource); m != nil {
		md.Year = m[1]
	}

	return md
}

// CleanTitle removes the neutral citation tail and cleaner filename
// suffixes from a title.
func CleanTitle(title string) string {
	cleaned := titleCiteTailRe.ReplaceAllString(title, "")
	cleaned = titleSuffixRe.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}
