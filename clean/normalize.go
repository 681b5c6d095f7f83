// Package clean repairs layout damage in machine-extracted judgment text and
// partitions documents into headnotes, core judgment and footnotes.
//
// Every function in this package is a pure text transformation: it never
// fails, and it returns its input unchanged when its precondition pattern
// does not match. Rules are composed into an explicit ordered pipeline (see
// pipeline.go) because later rules assume earlier repairs.
package clean

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// maxRepairPasses bounds the fixed-point loops in the digit repairs so that
// adversarial input cannot spin them forever.
const maxRepairPasses = 10

var (
	horizontalWSRe  = regexp.MustCompile(`[ \t]+`)
	blankRunsRe     = regexp.MustCompile(`\n{3,}`)
	endOfDocLineRe  = regexp.MustCompile(`(?im)^\s*End of Document\s*$`)
	endOfDocWordRe  = regexp.MustCompile(`(?i)\bEnd of Document\b`)
	digitNLDigitRe  = regexp.MustCompile(`(\d)\s*\n\s*(\d)`)
	digitNLDotRe    = regexp.MustCompile(`(\d)\s*\n\s*\.`)
	digitSpDigitRe  = regexp.MustCompile(`([0-9]) ([0-9])([^0-9]|$)`)
	digitSpDotRe    = regexp.MustCompile(`([0-9]) (\.)`)
	trailingSpaceRe = regexp.MustCompile(` +\n`)
	doubleSpaceRe   = regexp.MustCompile(`  +`)
)

// Normalize standardises whitespace and line breaks. Newlines are preserved
// so that the reflow rules and the digit-stack repair can still see line
// structure. Normalize is idempotent.
func Normalize(text string) string {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, " ", " ")
	text = horizontalWSRe.ReplaceAllString(text, " ")
	text = blankRunsRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// DeleteEndOfDocument hard-cuts at the literal "End of Document" marker,
// deleting it and everything below. Input is returned unchanged when the
// marker is absent.
func DeleteEndOfDocument(text string) string {
	if loc := endOfDocLineRe.FindStringIndex(text); loc != nil {
		return strings.TrimRight(text[:loc[0]], " \t\n")
	}
	if loc := endOfDocWordRe.FindStringIndex(text); loc != nil {
		return strings.TrimRight(text[:loc[0]], " \t\n")
	}
	return text
}

// RepairDigitStacks merges digits stacked vertically by PDF extraction:
//
//	2\n0\n1\n5  -> 2015
//	1\n0.      -> 10.
//
// Must run before paragraph detection.
func RepairDigitStacks(text string) string {
	merge := func(t string) string {
		for i := 0; i < maxRepairPasses; i++ {
			next := digitNLDigitRe.ReplaceAllString(t, "$1$2")
			if next == t {
				break
			}
			t = next
		}
		return t
	}
	t := merge(text)
	t = digitNLDotRe.ReplaceAllString(t, "$1.")
	return merge(t)
}

// RepairSpaceSeparatedDigits merges digit pairs split by a single space,
// e.g. "1 0." -> "10." and "page 1 2" -> "page 12". Runs of more than two
// split digits collapse pairwise.
func RepairSpaceSeparatedDigits(text string) string {
	t := text
	for i := 0; i < maxRepairPasses; i++ {
		next := digitSpDigitRe.ReplaceAllString(t, "$1$2$3")
		if next == t {
			break
		}
		t = next
	}
	return digitSpDotRe.ReplaceAllString(t, "$1$2")
}

// CleanMultipleBlanks collapses excess blank lines, trailing spaces and
// doubled spaces left behind by earlier rules.
func CleanMultipleBlanks(text string) string {
	text = regexp.MustCompile(`\n{4,}`).ReplaceAllString(text, "\n\n\n")
	text = trailingSpaceRe.ReplaceAllString(text, "\n")
	return doubleSpaceRe.ReplaceAllString(text, " ")
}
