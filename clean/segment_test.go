package clean

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func rule(n int) string {
	return strings.Repeat("-", n)
}

func TestSegmentExplicitDividers(t *testing.T) {
	text := strings.Join([]string{
		rule(40),
		"HEADNOTES",
		rule(40),
		"",
		"Contract - Formation - Offer and acceptance",
		"",
		rule(40),
		"CORE JUDGMENT",
		rule(40),
		"",
		"1. The first paragraph.",
		"",
		rule(40),
		"FOOTNOTES",
		rule(40),
		"",
		"[1] Record of Proceedings at p 3.",
	}, "\n")

	seg := Segment(text)
	assert.Equal(t, "Contract - Formation - Offer and acceptance", seg.Headnotes)
	assert.Equal(t, "1. The first paragraph.", seg.Core)
	assert.Equal(t, "[1] Record of Proceedings at p 3.", seg.Footnotes)
}

func TestSegmentNoFootnotes(t *testing.T) {
	text := strings.Join([]string{
		rule(40),
		"HEADNOTES",
		rule(40),
		"",
		"Catchwords here.",
		"",
		rule(40),
		"CORE JUDGMENT",
		rule(40),
		"",
		"1. Only paragraph.",
	}, "\n")

	seg := Segment(text)
	assert.Equal(t, "Catchwords here.", seg.Headnotes)
	assert.Equal(t, "1. Only paragraph.", seg.Core)
	assert.Empty(t, seg.Footnotes)
}

func TestSegmentJudgeAttribution(t *testing.T) {
	text := "Tan v Lee [2014] SGCA 53\n\nContract - Mistake\n\n" +
		"Sundaresh Menon CJ:\n\n1. This appeal raises a short point."

	seg := Segment(text)
	assert.Equal(t, "Tan v Lee [2014] SGCA 53\n\nContract - Mistake", seg.Headnotes)
	assert.True(t, strings.HasPrefix(seg.Core, "Sundaresh Menon CJ:"))
	assert.Empty(t, seg.Footnotes)
}

func TestSegmentJudgeAttributionCatchwordBoundary(t *testing.T) {
	// Capitalized catchwords separated from the attribution by blank lines
	// stay in the headnotes; the split lands on the attribution line itself.
	text := "Tan v Lee [2014] SGCA 53\n\nContract - Formation - Unilateral Mistake\n\n" +
		"Andrew Phang Boon Leong JA:\n\n1. The facts."

	seg := Segment(text)
	assert.True(t, strings.HasSuffix(seg.Headnotes, "Unilateral Mistake"))
	assert.True(t, strings.HasPrefix(seg.Core, "Andrew Phang Boon Leong JA"))
}

func TestSegmentFirstParagraphFallback(t *testing.T) {
	text := "Catchwords only, no attribution line.\n\n1. The appeal concerns a lease."

	seg := Segment(text)
	assert.Equal(t, "Catchwords only, no attribution line.", seg.Headnotes)
	assert.Equal(t, "1. The appeal concerns a lease.", seg.Core)
}

func TestSegmentFallbackEverythingIsCore(t *testing.T) {
	text := "no recognisable structure in this fragment"

	seg := Segment(text)
	assert.Empty(t, seg.Headnotes)
	assert.Equal(t, text, seg.Core)
	assert.Empty(t, seg.Footnotes)
}

func TestSegmentHeadCoreFlat(t *testing.T) {
	text := "HOUSE OF LORDS\nsome headnote material\n1. My Lords, the question is short."
	head, core := SegmentHeadCoreFlat(text)
	assert.Equal(t, "HOUSE OF LORDS some headnote material", head)
	assert.True(t, strings.HasPrefix(core, "1. My Lords"))
}

func TestRemoveDuplicateSections(t *testing.T) {
	divider := rule(40) + "\nHEADNOTES\n" + rule(40)
	text := divider + "\nfirst block\n" + divider + "\nsecond block"

	out := RemoveDuplicateSections(text)
	assert.Equal(t, 1, strings.Count(out, "HEADNOTES"))
	assert.Contains(t, out, "first block")
	assert.Contains(t, out, "second block")
}

func TestFixSplitContentAtCoreBoundary(t *testing.T) {
	divider := rule(40) + "\nCORE JUDGMENT\n" + rule(40)
	text := "the hearing below was adjourned\n\n" + divider + "\n\n, and resumed in June. 1. First paragraph."

	out := FixSplitContentAtCoreBoundary(text)
	idx := strings.Index(out, "the hearing below was adjourned, and resumed in June. ")
	assert.GreaterOrEqual(t, idx, 0)
	assert.Less(t, idx, strings.Index(out, "CORE JUDGMENT"))
}

func TestSegmentRenderRoundTrip(t *testing.T) {
	seg := Segments{
		Headnotes: "Tort - Negligence - Duty of care",
		Core:      "1. The claimant slipped.\n\n2. The defendant knew.",
		Footnotes: "[1] Agreed bundle at p 44.",
	}

	again := Segment(RenderSections("Tan v Lee [2014] SGCA 53", seg))
	assert.Equal(t, seg, again)
}
