package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountSyllables(t *testing.T) {
	cases := map[string]int{
		"the":      1,
		"contract": 2,
		"judgment": 2,
		"valid":    2,
		"court":    1,
		"appeal":   2,
		"a":        1,
	}
	for word, want := range cases {
		assert.Equal(t, want, CountSyllables(word), "word %q", word)
	}
	assert.Equal(t, 0, CountSyllables("123"))
}

func TestCountSyllablesSilentE(t *testing.T) {
	assert.Equal(t, 1, CountSyllables("time"))
	assert.Equal(t, 1, CountSyllables("clause"))
	// Single-syllable words keep the trailing e.
	assert.Equal(t, 1, CountSyllables("the"))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 5, WordCount("The appeal is dismissed today"))
	assert.Equal(t, 0, WordCount("   "))
	assert.Equal(t, 0, WordCount(""))
}

const plainSentence = "The court found the contract valid and the claim failed."

func TestFleschKincaid(t *testing.T) {
	// 10 words, 13 syllables, 1 sentence.
	wps := 10.0
	spw := 13.0 / 10.0
	wantGrade := round2(0.39*wps + 11.8*spw - 15.59)
	wantEase := round2(206.835 - 1.015*wps - 84.6*spw)

	grade, ease := FleschKincaid(plainSentence)
	assert.Equal(t, wantGrade, grade)
	assert.Equal(t, wantEase, ease)
}

func TestFleschKincaidEmpty(t *testing.T) {
	grade, ease := FleschKincaid("")
	assert.Zero(t, grade)
	assert.Zero(t, ease)
}

func TestSMOG(t *testing.T) {
	// No polysyllabic words: the additive constant remains.
	assert.Equal(t, 3.13, SMOG(plainSentence))
	assert.Zero(t, SMOG(""))
}

func TestAvgSentenceLength(t *testing.T) {
	assert.Equal(t, 10.0, AvgSentenceLength(plainSentence))
	assert.Zero(t, AvgSentenceLength(""))
}

func TestCompute(t *testing.T) {
	r := Compute(plainSentence)
	grade, ease := FleschKincaid(plainSentence)
	assert.Equal(t, grade, r.FKGrade)
	assert.Equal(t, ease, r.FKEase)
	assert.Equal(t, SMOG(plainSentence), r.SMOG)
	assert.Equal(t, 10.0, r.AvgSentenceLength)
}

func TestSplitSentencesLegalAbbreviations(t *testing.T) {
	sents, err := SplitSentences("The claim (see Tan v Lee) succeeded. Para. 5 applies.")
	require.NoError(t, err)
	assert.Len(t, sents, 2)
}

func TestSplitSentencesMultiPeriodAbbrevs(t *testing.T) {
	sents, err := SplitSentences("Some remedies, e.g. damages, were sought. The claim failed.")
	require.NoError(t, err)
	require.Len(t, sents, 2)
	assert.Contains(t, sents[0], "e.g. damages")
}

func TestSentenceCount(t *testing.T) {
	assert.Equal(t, 2, SentenceCount("The appeal fails. Costs follow the event."))
	assert.Equal(t, 1, SentenceCount("no terminal punctuation here"))
	assert.Zero(t, SentenceCount("  "))
}
