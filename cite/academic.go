package cite

import (
	"regexp"
	"sort"
)

// Journal patterns match case-insensitively; book patterns are case
// sensitive because treatise and publisher names lose their meaning in
// lowercase ("all er" vs a party named All).
var journalPatterns = []string{
	`\(\d{4}\)\s+\d+\s+[A-Z][A-Za-z]+(?:\s+[A-Za-z]+)+\s+(?:Law|Legal|Journal|Review|Quarterly|University|Studies)\s+[A-Za-z]*\s*\d*`,
	`\d+\s+(?:Law\s+)?(?:Journal|Review|Quarterly|L\.?\s*J\.?|L\.?\s*Rev\.?|L\.?\s*Q\.?)`,
	`\b(?:LQR|MLR|CLJ|OJLS|CLP|Sing\.?\s*L\.?\s*Rev\.?|SJLS)\b`,
	`\b(?:Law\s+Quarterly\s+Review|Modern\s+Law\s+Review|Cambridge\s+Law\s+Journal|Oxford\s+Journal\s+of\s+Legal\s+Studies)\b`,
	`\b(?:Yale\s+L\.?\s*J\.?|Harv\.?\s*L\.?\s*Rev\.?|Stan\.?\s*L\.?\s*Rev\.?)\b`,
	`\b(?:Colum\.?\s*L\.?\s*Rev\.?|Mich\.?\s*L\.?\s*Rev\.?|Cornell\s+L\.?\s*Rev\.?)\b`,
	`\b(?:MULR|UNSWLJ|SydLR|UQLJ|UWALR|AdelLR|MonLR|MelbULawRw)\b`,
	`\b(?:AJLL|ABLR|AIAL\s+Forum|Fed(?:eral)?\s+L(?:aw)?\s+Rev(?:iew)?)\b`,
	`[A-Z][a-z]+,\s*"[^"]+"\s*\(\d{4}\)`,
	`\b(?:SAcLJ|Mal\.?\s*L\.?\s*R\.?|LMCLQ|JBL|ICLQ|AJCL|Sing\s+L\s+Rev)\b`,
	`"[^"]{10,}"\s*\(\d{4}\)\s+\d*\s*(?:SAcLJ|LQR|MLR|CLJ|OJLS|Sing\s+L\s+Rev|SJLS|LMCLQ|JBL|ICLQ)`,
	`"[^"]{15,}"\s*\(\d{4}\)`,
}

var bookPatterns = []string{
	`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*,\s+[A-Z][A-Za-z\s:]+\([A-Za-z\s]+,\s*\d{4}\)`,
	`[A-Z][a-z]+,\s+[A-Z][A-Za-z\s]+\(\d+(?:st|nd|rd|th)\s+[Ee]d(?:ition)?,\s*\d{4}\)`,
	`\b(?:Halsbury|Chitty|Dicey|McGregor|Treitel|Anson|Cheshire|Winfield|Salmond)\b`,
	`\b(?:Snell|Bowstead|Phipson|Archbold|Lewin|Scrutton|Gatley|Keating)\b`,
	`\b(?:MacGillivray|Underhill|Spry|Bennion|Colinvaux|Williston|Corbin)\b`,
	`\b(?:Oppenheim|Brownlie|Pomeroy|Craies|Stroud|Odgers)\b`,
	`\b(?:Clerk\s*&\s*Lindsell|Goff\s*&\s*Jones|Spencer\s+Bower|Smith\s*&\s*Hogan)\b`,
	`\b(?:Mustill\s*&\s*Boyd|Megarry\s*&\s*Wade|Wade\s*&\s*Forsyth|Cross\s*&\s*Tapper)\b`,
	`\b(?:Bullen\s*&\s*Leake|Charlesworth\s*&\s*Percy|de\s+Smith)\b`,
	`\bBenjamin'?s?\s+(?:Sale|on\s+Sale)`,
	`\bFleming'?s?\s+(?:Law\s+of\s+Torts|Torts)`,
	`\bGower'?s?\s+(?:Principles|Company|Modern\s+Company)`,
	`\bSingapore\s+Civil\s+Procedure\b`,
	`\bMallal'?s?\s+Digest\b`,
	`\((?:Oxford\s+University\s+Press|Cambridge\s+University\s+Press|Hart\s+Publishing|Sweet\s*&\s*Maxwell|LexisNexis|Academy\s+Publishing|Butterworths|Thomson\s+Reuters|Clarendon\s+Press|Stevens|Law\s+Book\s+Co),\s*(?:\d+(?:st|nd|rd|th)\s+[Ee]d(?:ition)?,?\s*)?\d{4}\)`,
	`\([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?\s+University\s+Press,\s*(?:\d+(?:st|nd|rd|th)\s+[Ee]d(?:ition)?,?\s*)?\d{4}\)`,
	`\b(?:Ratanlal|Sarkar|Gour)\b(?:\s*&\s*(?:Dhirajlal|Thakore))?\S*\s+(?:Law\s+of|Indian|on\s+)`,
}

var (
	journalRes = compileAll(journalPatterns, "(?i)")
	bookRes    = compileAll(bookPatterns, "")
)

func compileAll(patterns []string, prefix string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		res = append(res, regexp.MustCompile(prefix+p))
	}
	return res
}

type span struct {
	start, end int
}

// CountAcademicReferences counts distinct academic references (journal
// articles and books/treatises). Overlapping matches are resolved greedily:
// candidates sorted by start position, longest first on ties, and a
// candidate overlapping any accepted span is dropped.
func CountAcademicReferences(text string) int {
	var candidates []span
	for _, re := range journalRes {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			candidates = append(candidates, span{loc[0], loc[1]})
		}
	}
	for _, re := range bookRes {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			candidates = append(candidates, span{loc[0], loc[1]})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].start != candidates[j].start {
			return candidates[i].start < candidates[j].start
		}
		return candidates[i].end-candidates[i].start > candidates[j].end-candidates[j].start
	})

	var used []span
	for _, c := range candidates {
		overlaps := false
		for _, u := range used {
			if c.start < u.end && c.end > u.start {
				overlaps = true
				break
			}
		}
		if !overlaps {
			used = append(used, c)
		}
	}
	return len(used)
}
