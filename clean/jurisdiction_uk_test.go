package clean

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixEncoding(t *testing.T) {
	in := "The “contract” wasn’t signed — it lapsed. Smith &amp; Co."
	assert.Equal(t, `The "contract" wasn't signed - it lapsed. Smith & Co.`, FixEncoding(in))
}

func TestFixSplitLordNames(t *testing.T) {
	assert.Equal(t, "LORD BROWNE-WILKINSON",
		FixSplitLordNames("LORD BROWNE\n-WILKINSON"))
	assert.Equal(t, "LORD IRVINE OF LAIRG L.C.",
		FixSplitLordNames("LORD IRVINE OF LAIRG L\n.C."))
	assert.Equal(t, "LADY HALE said nothing here",
		FixSplitLordNames("LADY HALE said nothing here"))
}

func TestFormatLordHeaders(t *testing.T) {
	out := FormatLordHeaders("The speeches follow. LORD HOFFMANN My Lords, I agree.")
	assert.Contains(t, out, "\n\nLORD HOFFMANN\n\n")

	// Mixed-case references to a Lord are not speech headers.
	unchanged := "I agree with Lord Hoffmann on this point."
	assert.Equal(t, unchanged, FormatLordHeaders(unchanged))
}

func TestRemoveUKSourceBoilerplate(t *testing.T) {
	in := "You are here: BAILII >> Databases >> House of Lords\n\nJudgments - Regina v Smith"
	out := RemoveUKSourceBoilerplate(in)
	assert.NotContains(t, out, "You are here")
	assert.NotContains(t, out, "Judgments -")
	assert.Contains(t, out, "Regina v Smith")
}

func TestRemoveUKSourceFooter(t *testing.T) {
	in := "The appeal is dismissed.\n© 2004 Crown Copyright"
	assert.Equal(t, "The appeal is dismissed.", RemoveUKSourceFooter(in))
}

func TestCleanHeadnotesGarbageUK(t *testing.T) {
	in := "BAILII chrome here\nOPINIONS OF THE LORDS OF APPEAL FOR JUDGMENT IN THE CAUSE\nRegina v Smith"
	out := CleanHeadnotesGarbageUK(in, 2004)
	assert.True(t, strings.HasPrefix(out, "OPINIONS OF THE LORDS"))

	in = "navigation junk\nHOUSE OF LORDS\nRegina v Jones"
	out = CleanHeadnotesGarbageUK(in, 1998)
	assert.True(t, strings.HasPrefix(out, "HOUSE OF LORDS"))
}

func TestFindCoreJudgmentStartUK(t *testing.T) {
	text := "HOUSE OF LORDS\nRegina v Smith\nLORD BINGHAM OF CORNHILL\nMy Lords, the facts are these."
	idx := FindCoreJudgmentStartUK(text)
	assert.Equal(t, strings.Index(text, "\nLORD BINGHAM"), idx)

	assert.Equal(t, 0, FindCoreJudgmentStartUK("No speeches at all."))
}

func TestExtractJudgesFromCoreUK(t *testing.T) {
	core := strings.Join([]string{
		"LORD BROWNE-WILKINSON",
		"My Lords, I agree.",
		"LORD HOFFMANN",
		"My Lords, the issue is one of construction.",
		"LORD HOFFMANN",
		"I would also dismiss the cross-appeal.",
	}, "\n")
	judges := ExtractJudgesFromCoreUK(core)
	assert.Equal(t, []string{"Lord Browne-Wilkinson", "Lord Hoffmann"}, judges)
}

func TestExtractJudgesFromHeadnotesUK(t *testing.T) {
	head := "The Appellate Committee comprised:\nLord Bingham of Cornhill\nLord Steyn\nLady Hale\nHOUSE OF LORDS"
	judges := ExtractJudgesFromHeadnotesUK(head)
	assert.Equal(t, []string{"Lord Bingham of Cornhill", "Lord Steyn", "Lady Hale"}, judges)
}

func TestSegmentHeadCoreUKSpeechSplit(t *testing.T) {
	text := strings.Join([]string{
		"Database chrome to drop",
		"HOUSE OF LORDS",
		"Regina v Smith [1998] AC 20",
		"",
		"LORD BINGHAM OF CORNHILL",
		"My Lords, the facts are these.",
	}, "\n")

	head, core := SegmentHeadCoreUK(text)
	assert.True(t, strings.HasPrefix(head, "HOUSE OF LORDS"))
	assert.NotContains(t, head, "Database chrome")
	assert.Equal(t, "LORD BINGHAM OF CORNHILL My Lords, the facts are these.", core)
}

func TestSegmentHeadCoreUKFlatFallback(t *testing.T) {
	// No speech header, so the split falls back to the first "1." marker
	// in the flattened text.
	text := strings.Join([]string{
		"junk nav line",
		"OPINIONS OF THE LORDS OF APPEAL FOR JUDGMENT IN THE CAUSE",
		"Regina v Jones [2005] UKHL 40",
		"before the Appellate Committee",
		"1. The question is whether the notice was valid.",
	}, "\n")

	head, core := SegmentHeadCoreUK(text)
	assert.True(t, strings.HasPrefix(head, "OPINIONS OF THE LORDS"))
	assert.NotContains(t, head, "junk nav")
	assert.True(t, strings.HasPrefix(core, "1. The question"))
}

func TestRewriteCoreUK(t *testing.T) {
	in := "The contract was signed in May. 12. The second issue concerns repudiation."
	assert.Equal(t,
		"The contract was signed in May.\n\n12. The second issue concerns repudiation.",
		RewriteCoreUK(in))
}

func TestRewriteCoreUKHeadings(t *testing.T) {
	out := RewriteCoreUK("costs follow. (5) Disposition (a) The appeal is allowed.")
	assert.Contains(t, out, "\n(5) Disposition\n")
	assert.Contains(t, out, "(a) The appeal is allowed.")
}
