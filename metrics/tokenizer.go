// Package metrics computes readability metrics over judgment text using a
// sentence tokenizer tuned for legal writing.
package metrics

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// legalAbbreviations must not end a sentence. Punkt expects them lowercase
// without the trailing period.
var legalAbbreviations = []string{
	// case citation
	"v",
	// paragraph and section references
	"no", "nos", "para", "paras", "s", "ss", "r", "rr",
	"art", "arts", "ch", "cl", "sch", "pt", "reg", "regs",
	"pp", "p", "fn", "ed", "vol", "app",
	// latin and academic
	"eg", "ie", "cf", "al", "ibid", "op", "cit", "loc", "et", "seq",
	// company suffixes
	"pte", "sdn", "bhd", "pty", "inc", "ltd", "corp", "plc", "llc", "llp",
	// titles
	"dr", "mr", "mrs", "ms", "prof", "rev", "hon", "rt", "jr", "sr",
	"gen", "col", "sgt",
	// legal-specific
	"ex", "re", "dept", "div", "assn", "comm", "dist", "crim", "ors", "anor",
}

// Multi-period abbreviations Punkt cannot learn through its abbreviation
// table. They are swapped for soft-hyphen placeholders around tokenization.
const shy = "­"

var multiPeriodAbbrevs = []struct {
	re          *regexp.Regexp
	placeholder string
	original    string
}{
	{regexp.MustCompile(`(?i)\be\.g\.`), "e" + shy + "g" + shy, "e.g."},
	{regexp.MustCompile(`(?i)\bi\.e\.`), "i" + shy + "e" + shy, "i.e."},
	{regexp.MustCompile(`(?i)\bop\.\s*cit\.`), "op" + shy + "cit" + shy, "op. cit."},
	{regexp.MustCompile(`(?i)\bloc\.\s*cit\.`), "loc" + shy + "cit" + shy, "loc. cit."},
	{regexp.MustCompile(`(?i)\bet\s+al\.`), "et" + shy + "al" + shy, "et al."},
	{regexp.MustCompile(`(?i)\bet\s+seq\.`), "et" + shy + "seq" + shy, "et seq."},
}

var (
	tokenizerOnce sync.Once
	tokenizer     *sentences.DefaultSentenceTokenizer
	tokenizerErr  error
)

// legalTokenizer returns the shared Punkt tokenizer with the legal
// abbreviation table loaded. Built once.
func legalTokenizer() (*sentences.DefaultSentenceTokenizer, error) {
	tokenizerOnce.Do(func() {
		t, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			tokenizerErr = fmt.Errorf("loading sentence tokenizer: %w", err)
			return
		}
		for _, abbrev := range legalAbbreviations {
			t.AbbrevTypes.Add(abbrev)
		}
		tokenizer = t
	})
	return tokenizer, tokenizerErr
}

// SplitSentences tokenizes text into sentences, treating legal
// abbreviations and citations as non-terminal.
func SplitSentences(text string) ([]string, error) {
	t, err := legalTokenizer()
	if err != nil {
		return nil, err
	}

	protected := text
	for _, a := range multiPeriodAbbrevs {
		protected = a.re.ReplaceAllString(protected, a.placeholder)
	}

	var out []string
	for _, s := range t.Tokenize(protected) {
		restored := s.Text
		for _, a := range multiPeriodAbbrevs {
			restored = strings.ReplaceAll(restored, a.placeholder, a.original)
		}
		out = append(out, restored)
	}
	return out, nil
}

// SentenceCount returns the number of sentences in text, never less than
// one for non-empty input.
func SentenceCount(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	sents, err := SplitSentences(text)
	if err != nil || len(sents) == 0 {
		return 1
	}
	return len(sents)
}
