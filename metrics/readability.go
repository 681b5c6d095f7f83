package metrics

import (
	"math"
	"regexp"
	"strings"
)

const vowels = "aeiouy"

var (
	wordRe      = regexp.MustCompile(`\b\w+\b`)
	nonLetterRe = regexp.MustCompile(`[^a-z]`)
)

// CountSyllables counts syllables in a word by vowel-group counting, with
// a silent-e decrement. Never returns less than 1 for a word containing
// letters.
func CountSyllables(word string) int {
	w := nonLetterRe.ReplaceAllString(strings.ToLower(word), "")
	if w == "" {
		return 0
	}
	syll := 0
	prevVowel := false
	for _, ch := range w {
		isVowel := strings.ContainsRune(vowels, ch)
		if isVowel && !prevVowel {
			syll++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(w, "e") && syll > 1 {
		syll--
	}
	if syll < 1 {
		syll = 1
	}
	return syll
}

// WordCount counts word tokens in text.
func WordCount(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return len(wordRe.FindAllString(text, -1))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FleschKincaid returns the Flesch-Kincaid grade level and reading ease for
// text, both rounded to two decimals. Word and sentence denominators are
// floored at one.
func FleschKincaid(text string) (grade, ease float64) {
	if strings.TrimSpace(text) == "" {
		return 0, 0
	}
	words := wordRe.FindAllString(text, -1)
	wc := len(words)
	if wc < 1 {
		wc = 1
	}
	sc := SentenceCount(text)
	if sc < 1 {
		sc = 1
	}
	syll := 0
	for _, w := range words {
		syll += CountSyllables(w)
	}

	wps := float64(wc) / float64(sc)
	spw := float64(syll) / float64(wc)
	grade = round2(0.39*wps + 11.8*spw - 15.59)
	ease = round2(206.835 - 1.015*wps - 84.6*spw)
	return grade, ease
}

// SMOG returns the SMOG index for text, rounded to two decimals. Zero for
// empty text or when no sentences are found.
func SMOG(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	sents, err := SplitSentences(text)
	if err != nil || len(sents) == 0 {
		return 0
	}
	poly := 0
	for _, w := range wordRe.FindAllString(text, -1) {
		if CountSyllables(w) >= 3 {
			poly++
		}
	}
	return round2(1.0430*math.Sqrt(float64(poly)*(30/float64(len(sents)))) + 3.1291)
}

// AvgSentenceLength returns the mean words per sentence, rounded to two
// decimals.
func AvgSentenceLength(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	wc := WordCount(text)
	sc := SentenceCount(text)
	if sc < 1 {
		sc = 1
	}
	return round2(float64(wc) / float64(sc))
}

// Report bundles the readability metrics for a prepared text.
type Report struct {
	FKGrade           float64
	FKEase            float64
	SMOG              float64
	AvgSentenceLength float64
}

// Compute runs all readability metrics over text.
func Compute(text string) Report {
	grade, ease := FleschKincaid(text)
	return Report{
		FKGrade:           grade,
		FKEase:            ease,
		SMOG:              SMOG(text),
		AvgSentenceLength: AvgSentenceLength(text),
	}
}
