package cite

import (
	"regexp"
	"strings"
)

var (
	leadingParaNumRe = regexp.MustCompile(`(?m)^\s*\d{1,3}\.\s+`)
	bracketCiteRe    = regexp.MustCompile(`\[\s*\d{4}\s*\]\s+[A-Z][A-Za-z0-9]+\s+\d+\b`)

	pinpointParenRe = regexp.MustCompile(
		`\(at\s+(?:` +
			`pages?\s+\d+(?:\s*[-\x{2013}]\s*\d+)?` +
			`|pp?\.\s*\d+(?:\s*[-\x{2013}]\s*\d+)?` +
			`|\[\d+\](?:\s*[-\x{2013},]\s*\[\d+\])*` +
			`)\)`)
	pinpointParaRe = regexp.MustCompile(`\bat\s+\[\d+\](?:\s*[-\x{2013},]\s*\[\d+\])*`)
	pinpointPageRe = regexp.MustCompile(
		`\bat\s+(?:` +
			`pages?\s+\d+(?:\s*[-\x{2013}]\s*\d+)?` +
			`|pp?\.\s*\d+(?:\s*[-\x{2013}]\s*\d+)?` +
			`)`)

	neutralCiteRe = regexp.MustCompile(
		`\[\s*\d{4}\s*\]\s+` +
			`(?:UKSC|UKHL|UKPC|EWCA\s+(?:Civ|Crim)|EWHC|UKUT|` +
			`CSOH|CSIH|SGCA|SGHC|SGHCF|SGDC|SGMC|` +
			`HCA|FCAFC|FCA|NSWCA|NSWSC|VSC|VSCA|QCA|QSC|` +
			`NZSC|NZCA|NZHC|` +
			`ABCA|ABQB|ONCA|ONSC|BCCA|BCSC)` +
			`\s+\d+`)
	reportCiteRe = regexp.MustCompile(
		`\[\s*\d{4}\s*\]\s+\d+\s+` +
			`(?:AC|WLR|QB|KB|Ch|Fam|All\s+ER|SLR(?:\(R\))?|MLJ|` +
			`Lloyd|ICR|IRLR|Cr\s+App\s+R|BCLC|BCC|FSR|RPC|STC|WTLR|` +
			`NZLR|DLR|SCR|OR|BCLR|WWR)\s+\d+`)
	roundCiteRe = regexp.MustCompile(
		`\(\d{4}\)\s+\d+\s+` +
			`(?:CLR|ALR|ALJR|FLR|NSWLR|VR|SASR|WAR|` +
			`US|S\s+Ct|L\s+Ed|F\s+\d[a-z]+|F\s+Supp)\s+\d+`)

	footnoteAbbrevs = `AEIC|NEs?|AWS|RWS|DCS|PCS|DRS|PRS|SOC|DCC|FNBP|BOA|` +
		`PBOD|DBOD|ROA|ROP|AB|BA|CB|ACB|RCB|DCB|PCB|PA|` +
		`PBD|DBD|JCB|JAEIC`

	inlineFootnoteRefRe = regexp.MustCompile(
		`(?i)(?:See,?\s+(?:eg|also|generally),?\s+)?` +
			`(?:` + footnoteAbbrevs + `)` +
			`(?:\s+\w+)*?` +
			`\s+at\s+(?:pp?\.?\s*\d[\d\-\x{2013}\s]*` +
			`|paras?\s*\d[\d\-\x{2013}\s]*` +
			`|\[\d+\](?:\s*[-\x{2013},]\s*\[\d+\])*` +
			`|lines?\s*\d[\d\-\x{2013}\s]*` +
			`|pages?\s*\d[\d\-\x{2013}\s]*)` +
			`\.?`)
	inlineSubmissionRefRe = regexp.MustCompile(
		`(?i)(?:Appellant|Respondent|Defendant|Plaintiff|Prosecution|Defence|` +
			`Claimant|Applicant|Petitioner)'?s?\s+` +
			`(?:Written\s+)?(?:Submissions?|Skeletal\s+Arguments?|` +
			`Closing|Reply|Opening)\b[^.]*?\.`)
	inlineROPRefRe = regexp.MustCompile(
		`(?i)Record\s+of\s+[Pp]roceedings\s*\([^)]*\)\s+at\s+[^.]+\.`)

	wsRunRe = regexp.MustCompile(`\s+`)
)

// RemoveParaNumbers strips leading paragraph ordinals from each line.
func RemoveParaNumbers(text string) string {
	return leadingParaNumRe.ReplaceAllString(text, "")
}

// StripCitations removes neutral, law-report and round-bracket citations.
func StripCitations(text string) string {
	text = neutralCiteRe.ReplaceAllString(text, "")
	text = reportCiteRe.ReplaceAllString(text, "")
	return roundCiteRe.ReplaceAllString(text, "")
}

// StripInlineFootnoteRefs removes inline evidence, submission and record-of-
// proceedings references.
func StripInlineFootnoteRefs(text string) string {
	text = inlineFootnoteRefRe.ReplaceAllString(text, "")
	text = inlineSubmissionRefRe.ReplaceAllString(text, "")
	return inlineROPRefRe.ReplaceAllString(text, "")
}

// PrepareForMetrics strips everything that would distort readability
// scoring: paragraph numbers, citations of all three shapes, pinpoints and
// inline footnote references, then collapses whitespace.
func PrepareForMetrics(core string) string {
	t := RemoveParaNumbers(core)
	t = bracketCiteRe.ReplaceAllString(t, "")
	t = StripCitations(t)
	t = pinpointParenRe.ReplaceAllString(t, "")
	t = pinpointParaRe.ReplaceAllString(t, "")
	t = pinpointPageRe.ReplaceAllString(t, "")
	t = StripInlineFootnoteRefs(t)
	t = wsRunRe.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}
