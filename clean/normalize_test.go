package clean

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	in := "The court\theld\r\nthat the appeal fails.\n\n\n\n1. First."
	got := Normalize(in)
	assert.Equal(t, "The court held\nthat the appeal fails.\n\n1. First.", got)
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"a\r\nb\rc",
		"x y   z",
		"line one\n\n\n\n\nline two\t\tend",
		"",
		"   padded   ",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestDeleteEndOfDocument(t *testing.T) {
	in := "The appeal is dismissed.\n\nEnd of Document\n\nDatabase chrome follows."
	assert.Equal(t, "The appeal is dismissed.", DeleteEndOfDocument(in))

	in = "12. Some paragraph. End of Document trailing text"
	assert.Equal(t, "12. Some paragraph.", DeleteEndOfDocument(in))

	unchanged := "No marker anywhere in this text."
	assert.Equal(t, unchanged, DeleteEndOfDocument(unchanged))
}

func TestRepairDigitStacks(t *testing.T) {
	assert.Equal(t, "[2015] SGCA 1", RepairDigitStacks("[2\n0\n1\n5] SGCA 1"))
	assert.Equal(t, "10. The point.", RepairDigitStacks("1\n0. The point."))
	assert.Equal(t, "5. Next.", RepairDigitStacks("5\n. Next."))

	unchanged := "Paragraph 12 stands alone.\nSo does 13."
	assert.Equal(t, unchanged, RepairDigitStacks(unchanged))
}

func TestRepairSpaceSeparatedDigits(t *testing.T) {
	assert.Equal(t, "10. The point.", RepairSpaceSeparatedDigits("1 0. The point."))
	assert.Equal(t, "at page 12", RepairSpaceSeparatedDigits("at page 1 2"))

	// Prose with digits either side of ordinary words is untouched.
	unchanged := "section 12 of the Act"
	assert.Equal(t, unchanged, RepairSpaceSeparatedDigits(unchanged))
}

func TestRepairDigitStacksAdversarialTerminates(t *testing.T) {
	long := ""
	for i := 0; i < 500; i++ {
		long += "1\n"
	}
	out := RepairDigitStacks(long)
	assert.NotEmpty(t, out)
}

func TestCleanMultipleBlanks(t *testing.T) {
	in := "a  b   \nc\n\n\n\n\n\nd"
	assert.Equal(t, "a b\nc\n\n\nd", CleanMultipleBlanks(in))
}
