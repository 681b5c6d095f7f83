package analyze

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cleanedJudgment = `======================================================================
CASE: Tan Ah Kow v Public Prosecutor [2014] SGCA 53
======================================================================

----------------------------------------
HEADNOTES
----------------------------------------

Decision Date: 28 October 2014

Criminal Law - Sentencing - Appeals

----------------------------------------
CORE JUDGMENT
----------------------------------------

1. This appeal concerns sentencing principles. The leading authority is
Public Prosecutor v Lim [2010] SGCA 12, which adopted the approach in
R v Howells [1998] AC 245.

2. We also considered Veen v The Queen (1988) 164 CLR 465 and the
earlier decision in Public Prosecutor v Lim [2010] SGCA 12.

----------------------------------------
FOOTNOTES
----------------------------------------

[1] See Andrew Ashworth, Sentencing and Criminal Justice (Cambridge
University Press, 6th Ed, 2015).
`

func TestExtractSections(t *testing.T) {
	s := ExtractSections(cleanedJudgment)

	assert.Contains(t, s.Headnotes, "Criminal Law - Sentencing")
	assert.NotContains(t, s.Headnotes, "CORE JUDGMENT")

	assert.Contains(t, s.Core, "1. This appeal concerns sentencing principles.")
	assert.Contains(t, s.Core, "Veen v The Queen")
	assert.NotContains(t, s.Core, "FOOTNOTES")
	assert.NotContains(t, s.Core, "Cambridge")

	assert.Contains(t, s.Footnotes, "Andrew Ashworth")
}

func TestExtractSections_NoFootnotes(t *testing.T) {
	content := `----------------------------------------
HEADNOTES
----------------------------------------

Head text.

----------------------------------------
CORE JUDGMENT
----------------------------------------

1. Core text runs to the end.
`
	s := ExtractSections(content)
	assert.Equal(t, "Head text.", s.Headnotes)
	assert.Equal(t, "1. Core text runs to the end.", s.Core)
	assert.Empty(t, s.Footnotes)
}

func TestAnalyze(t *testing.T) {
	a := New(nil)
	rec := a.Analyze(cleanedJudgment, "tan_ah_kow.txt", "SGCA", "SG")

	assert.Equal(t, "Tan Ah Kow v Public Prosecutor", rec.Title)
	assert.Equal(t, "[2014] SGCA 53", rec.Citation)
	assert.Equal(t, "28 October 2014", rec.Date)
	assert.Equal(t, "2014", rec.Year)
	assert.Equal(t, "SG", rec.Country)
	assert.Equal(t, "SGCA", rec.Court)
	assert.Equal(t, "tan_ah_kow.txt", rec.Filename)

	// [2010] SGCA 12 twice, [1999] 1 WLR 307 once, (1988) 164 CLR 465 once
	assert.Equal(t, 2, rec.CitationsSG)
	assert.Equal(t, 1, rec.CitationsUK)
	assert.Equal(t, 1, rec.CitationsAU)
	assert.Equal(t, 4, rec.CitationsTotal)
	assert.Equal(t, 3, rec.CitationsUnique)

	assert.Equal(t, 1, rec.AcademicReferences)

	assert.Greater(t, rec.CoreWordCount, 0)
	assert.Greater(t, rec.HeadnotesWordCount, 0)
	assert.Greater(t, rec.FKGradeLevel, 0.0)
	assert.Greater(t, rec.AvgSentenceLength, 0.0)
}

func TestAnalyze_CountInvariants(t *testing.T) {
	a := New(nil)
	rec := a.Analyze(cleanedJudgment, "tan_ah_kow.txt", "SGCA", "SG")

	assert.LessOrEqual(t, rec.CitationsUnique, rec.CitationsTotal)

	sum := rec.CitationsSG + rec.CitationsUK + rec.CitationsAU +
		rec.CitationsUSA + rec.CitationsCAN + rec.CitationsIND +
		rec.CitationsNZ + rec.CitationsEU + rec.CitationsOther
	assert.Equal(t, rec.CitationsTotal, sum)
}

func TestAnalyze_SGCAInlineHeaderRemoved(t *testing.T) {
	content := `CASE: Tan v Lee [2020] SGCA 7

----------------------------------------
HEADNOTES
----------------------------------------

Contract Law

----------------------------------------
CORE JUDGMENT
----------------------------------------

1. The question is whether the Tan v Lee  [2020] SGCA 7 clause binds
the parties. We cite Chwee Kin Keong v Digilandmall [2005] SGCA 2.
`
	a := New(nil)
	rec := a.Analyze(content, "tan_v_lee.txt", "SGCA", "SG")

	// The fused page header citation is stripped before counting, so
	// only the genuine reference remains.
	assert.Equal(t, 1, rec.CitationsSG)
	assert.Equal(t, 1, rec.CitationsTotal)
}

func TestAnalyzeFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "tan_ah_kow.txt")
	require.NoError(t, os.WriteFile(good, []byte(cleanedJudgment), 0o644))

	a := New(nil)
	records, err := a.AnalyzeFiles(context.Background(),
		[]string{good, filepath.Join(dir, "missing.txt")}, "SGCA", "SG", 4)
	require.NoError(t, err)

	// The unreadable file is skipped, not fatal
	require.Len(t, records, 1)
	assert.Equal(t, "tan_ah_kow.txt", records[0].Filename)
}
