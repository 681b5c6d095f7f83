package clean

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReflowLonelyNumberedParas(t *testing.T) {
	in := "12.\n\nThe appellant submits that..."
	assert.Equal(t, "12. The appellant submits that...", ReflowLonelyNumberedParas(in))
}

func TestReflowLonelyNumberedParasMultiple(t *testing.T) {
	in := "1.\nFirst point.\n\n2.\n\n\nSecond point."
	want := "1. First point.\n\n2. Second point."
	assert.Equal(t, want, ReflowLonelyNumberedParas(in))
}

func TestReflowLonelyNumberedParasTrailingNumber(t *testing.T) {
	// A stranded number at end of text has nothing to join with.
	in := "Some text.\n42."
	assert.Equal(t, in, ReflowLonelyNumberedParas(in))
}

func TestReflowLonelyBracketMarkers(t *testing.T) {
	in := "(2)\n\nthe first ground of appeal;"
	assert.Equal(t, "(2) the first ground of appeal;", ReflowLonelyBracketMarkers(in))

	in = "(a)\nwhether the clause applies"
	assert.Equal(t, "(a) whether the clause applies", ReflowLonelyBracketMarkers(in))
}

func TestReflowLonelyBracketMarkersQuoted(t *testing.T) {
	in := "\"(b)\"\n\nthe second limb"
	assert.Equal(t, "\"(b)\" the second limb", ReflowLonelyBracketMarkers(in))
}

func TestJoinMidSentenceBreaks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"function word cannot end a sentence",
			"The court held that\nthe appeal must fail.",
			"The court held that the appeal must fail.",
		},
		{
			"trailing comma joins",
			"On 5 June 2011,\nthe parties met in Singapore.",
			"On 5 June 2011, the parties met in Singapore.",
		},
		{
			"lowercase continuation joins",
			"The appellant relied on the doctrine\nof frustration.",
			"The appellant relied on the doctrine of frustration.",
		},
		{
			"honorific joins",
			"The evidence of Mr\nTan was not challenged.",
			"The evidence of Mr Tan was not challenged.",
		},
		{
			"terminal punctuation blocks join",
			"The appeal is dismissed.\nCosts follow the event.",
			"The appeal is dismissed.\nCosts follow the event.",
		},
		{
			"numbered paragraph never absorbed",
			"so that\n12. The next paragraph begins.",
			"so that\n12. The next paragraph begins.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinMidSentenceBreaks(tt.in))
		})
	}
}

func TestJoinMidSentenceBreaksColumnWidth(t *testing.T) {
	long := "The respondent contended that the arbitration clause survived the novation"
	in := long + "\nand continued to bind the parties after completion."
	got := JoinMidSentenceBreaks(in)
	assert.Equal(t, long+" and continued to bind the parties after completion.", got)
}

func TestJoinMidSentenceBreaksKeepsMarkers(t *testing.T) {
	in := strings.Join([]string{
		strings.Repeat("-", 40),
		"CORE JUDGMENT",
		strings.Repeat("-", 40),
		"",
		"1. First paragraph.",
	}, "\n")
	assert.Equal(t, in, JoinMidSentenceBreaks(in))
}

func TestFixDateLineBreaks(t *testing.T) {
	assert.Equal(t, "15 April 2007", FixDateLineBreaks("15 April\n2007"))
	assert.Equal(t, "delivered in April 2007", FixDateLineBreaks("delivered in April\n\n2007"))
}

func TestFixPageBreakWordSplits(t *testing.T) {
	in := "the interlocu\n[2014] SGCA 53\ntory application was refused"
	assert.Equal(t, "the interlocutory application was refused", FixPageBreakWordSplits(in))

	in = "the applica\ntion for leave"
	assert.Equal(t, "the application for leave", FixPageBreakWordSplits(in))
}
