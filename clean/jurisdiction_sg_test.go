package clean

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixSplitCompanyNames(t *testing.T) {
	assert.Equal(t, "Alpha Pte Ltd", FixSplitCompanyNames("Alpha Pte\nLtd"))
	assert.Equal(t, "Beta Sdn Bhd", FixSplitCompanyNames("Beta Sdn\nBhd"))
	assert.Equal(t, "Gamma Holdings Ltd", FixSplitCompanyNames("Gamma Holdings\nLtd"))
	assert.Equal(t, "Delta Private Limited", FixSplitCompanyNames("Delta Private\nLimited"))
}

func TestFixTruncatedYears(t *testing.T) {
	header := "Tan v Lee [2015] SGCA 30\n"

	out := FixTruncatedYears(header + "The lease was signed in 20.")
	assert.Contains(t, out, "signed in 2015")

	out = FixTruncatedYears(header + "Completion was due in January 20.")
	assert.Contains(t, out, "January 2015")

	out = FixTruncatedYears(header + "The parties married in 19.")
	assert.Contains(t, out, "married in 1990")

	out = FixTruncatedYears(header + "under the Evidence Act (Cap 97, 20. Rev Ed)")
	assert.Contains(t, out, "Cap 97, 2015 Rev Ed")

	out = FixTruncatedYears(header + "in CA 135 of 20.")
	assert.Contains(t, out, "CA 135 of 2015")
}

func TestFixTruncatedNumbers(t *testing.T) {
	assert.Equal(t, "The sum was $18,0[truncated]",
		FixTruncatedNumbers("The sum was $18,0."))

	unchanged := "The sum was $18,000.50 in total."
	assert.Equal(t, unchanged, FixTruncatedNumbers(unchanged))
}

func TestFixMoneyTruncation(t *testing.T) {
	assert.Equal(t, "damages of $6 million were awarded",
		FixMoneyTruncation("damages of $6. million were awarded"))
	assert.Equal(t, "lasted 30 seconds at most",
		FixMoneyTruncation("lasted 30. seconds at most"))
}

func TestFixSGJudgeNameSplits(t *testing.T) {
	assert.Equal(t, "Sundaresh Menon CJ delivered",
		FixSGJudgeNameSplits("Sundaresh Menon\nCJ delivered"))
	assert.Equal(t, "V K Rajah JA", FixSGJudgeNameSplits("V K\nRajah JA"))
	assert.Equal(t, "V K Rajah JA", FixSGJudgeNameSplits("V K Rajah\nJA"))
}

func TestEnsureJudgeAttribution(t *testing.T) {
	in := "Coram: Sundaresh Menon CJ; Andrew Phang Boon Leong JA\n\n" +
		rule(40) + "\nCORE JUDGMENT\n" + rule(40) + "\n\n1. The applicant sought leave."
	out := EnsureJudgeAttribution(in)
	assert.Contains(t, out, "Sundaresh Menon CJ (delivering the judgment of the court):")
	assert.Contains(t, out, "1. The applicant sought leave.")
}

func TestEnsureJudgeAttributionAlreadyPresent(t *testing.T) {
	in := "Coram: Sundaresh Menon CJ\n\n" +
		rule(40) + "\nCORE JUDGMENT\n" + rule(40) + "\n\n" +
		"Tay Yong Kwang JCA (delivering the judgment of the court):\n\n1. The facts."
	assert.Equal(t, in, EnsureJudgeAttribution(in))
}

func TestRemoveSGEditorialNotice(t *testing.T) {
	in := "This judgment is subject to final editorial corrections approved by the " +
		"court and/or redaction pursuant to the publisher's duty in compliance with " +
		"the law, for publication in LawNet and/or the Singapore Law Reports.\n\nTan v Lee"
	out := RemoveSGEditorialNotice(in)
	assert.NotContains(t, out, "editorial corrections")
	assert.Contains(t, out, "Tan v Lee")
}

func TestRemoveSGCopyrightNotice(t *testing.T) {
	in := "44. The appeal is dismissed.\n\nCopyright © Government of Singapore.\nAll rights reserved."
	assert.Equal(t, "44. The appeal is dismissed.", RemoveSGCopyrightNotice(in))
}

func TestFixSGHeadnotesFormatting(t *testing.T) {
	out := FixSGHeadnotesFormatting("Case Number\n: Suit No 682 of 2018")
	assert.Equal(t, "Case Number: Suit No 682 of 2018", out)

	out = FixSGHeadnotesFormatting("Decision Date:\n19 March 2019")
	assert.Equal(t, "Decision Date: 19 March 2019", out)
}

func TestFixSGDateFormatting(t *testing.T) {
	assert.Equal(t, "2024\n13 January 2025",
		FixSGDateFormatting("202413 January 2025"))
}

func TestRemoveSGFootnotesSection(t *testing.T) {
	in := "44. The appeal is dismissed.\n\n[1] See affidavit at para 3.\n[2] Transcript, day 2."
	assert.Equal(t, "44. The appeal is dismissed.", RemoveSGFootnotesSection(in))

	// A single bracketed line is not treated as a footnote block.
	in = "44. The appeal is dismissed.\n\n[1] See affidavit at para 3."
	assert.Equal(t, in, RemoveSGFootnotesSection(in))
}

func TestFixSGParagraphFormatting(t *testing.T) {
	out := FixSGParagraphFormatting("The appeal fails. 15. The second ground is hopeless.")
	assert.Equal(t, "The appeal fails.\n\n15. The second ground is hopeless.", out)

	out = FixSGParagraphFormatting("the facts are set out below. Background The dispute arose from a joint venture.")
	assert.Contains(t, out, "Background\n\nThe dispute arose")
}

func TestRemoveSGPageHeaders(t *testing.T) {
	lines := []string{
		"Tan v Lee",
		"[2019] SGHC 61",
		"Decision Date: 19 March 2019",
	}
	for i := 0; i < 13; i++ {
		lines = append(lines, "Background fact line for padding purposes.")
	}
	lines = append(lines,
		"The evidence showed that the",
		"[2019] SGHC 6112 defendant knew of the defect.",
		"The claim therefore succeeds.",
	)
	out := RemoveSGPageHeaders(strings.Join(lines, "\n"))
	assert.Contains(t, out, "the defendant knew of the defect.")
	assert.Equal(t, 1, strings.Count(out, "[2019] SGHC 61"))
}

func TestRemoveSGFootnoteLineHeaders(t *testing.T) {
	lines := []string{
		"Tan v Lee",
		"[2019] SGHC 61",
	}
	for i := 0; i < 15; i++ {
		lines = append(lines, "Background fact line for padding purposes.")
	}
	lines = append(lines,
		"The witness accepted that the",
		"[2019] SGHC 61",
		"defect was known before completion.",
	)
	out := RemoveSGPageHeaders(strings.Join(lines, "\n"))
	assert.Equal(t, 1, strings.Count(out, "[2019] SGHC 61"))
}
