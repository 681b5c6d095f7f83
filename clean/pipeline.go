// Package clean repairs layout damage in plain-text renderings of court
// judgments: PDF extraction artifacts, broken paragraph numbering, page
// furniture and section structure. Rules are pure text transformations
// composed into per-jurisdiction pipelines.
package clean

import (
	"io"
	"log/slog"
)

// Rule is a single named cleaning step. Apply must be a pure function of
// its input.
type Rule struct {
	Name  string
	Apply func(string) string
}

// Stats counts which rules changed the document. A rule that fired maps to
// 1 regardless of how many sites it touched.
type Stats map[string]int

// Pipeline runs an ordered rule list over a document.
type Pipeline struct {
	rules  []Rule
	logger *slog.Logger
}

// NewPipeline builds a pipeline from rules. A nil logger disables rule
// tracing.
func NewPipeline(rules []Rule, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pipeline{rules: rules, logger: logger}
}

// Run applies every rule in order and reports which rules changed the text.
func (p *Pipeline) Run(text string) (string, Stats) {
	stats := Stats{}
	for _, rule := range p.rules {
		before := text
		text = rule.Apply(before)
		if text != before {
			stats[rule.Name] = 1
			p.logger.Debug("rule changed document", "rule", rule.Name)
		}
	}
	return text, stats
}

// Rules returns the pipeline's rule list in application order.
func (p *Pipeline) Rules() []Rule {
	return p.rules
}

// CommonRules are the jurisdiction-independent repairs, in the order they
// must run.
func CommonRules() []Rule {
	return []Rule{
		{"normalize", Normalize},
		{"end_of_document", DeleteEndOfDocument},
		{"note_references", DeleteNoteReferences},
		{"version_markers", RemoveVersionMarkers},
		{"page_numbers", RemovePageNumbers},
		{"date_periods", FixDatePeriods},
		{"table_of_contents", func(s string) string { out, _ := RemoveTableOfContents(s); return out }},
		{"split_company_names", FixSplitCompanyNames},
		{"broken_citations", FixBrokenCitations},
		{"digit_stacks", RepairDigitStacks},
		{"space_separated_digits", RepairSpaceSeparatedDigits},
		{"hyphenated_line_breaks", RepairHyphenatedLineBreaks},
		{"broken_words", RepairBrokenWords},
		{"word_concatenation", FixWordConcatenation},
		{"lonely_paragraph_numbers", ReflowLonelyNumberedParas},
		{"lonely_bracket_markers", ReflowLonelyBracketMarkers},
		{"date_line_breaks", FixDateLineBreaks},
		{"page_break_word_splits", FixPageBreakWordSplits},
	}
}

// SGRules are the Singapore-specific repairs.
func SGRules() []Rule {
	return []Rule{
		{"editorial_notice", RemoveSGEditorialNotice},
		{"sg_date_formatting", FixSGDateFormatting},
		{"header_footer_citations", func(s string) string {
			return RemoveHeaderFooterCitations(s, SGCitationRe)
		}},
		{"sg_page_headers", RemoveSGPageHeaders},
		{"case_citation_in_core", RemoveCaseCitationFromCore},
		{"judge_name_splits", FixSGJudgeNameSplits},
		{"truncated_judge_names", FixTruncatedJudgeNames},
		{"judge_attribution", EnsureJudgeAttribution},
		{"truncated_years", FixTruncatedYears},
		{"truncated_numbers", FixTruncatedNumbers},
		{"money_truncation", FixMoneyTruncation},
		{"sg_headnotes_formatting", FixSGHeadnotesFormatting},
		{"sg_paragraph_formatting", FixSGParagraphFormatting},
		{"sg_broken_sentences", FixSGBrokenSentences},
		{"merged_footnotes", RemoveMergedFootnotes},
		{"orphaned_footnote_markers", RemoveOrphanedFootnoteMarkers},
		{"stray_footnotes", RemoveStrayFootnotes},
		{"source_database_boilerplate", RemoveSourceDatabaseBoilerplate},
		{"copyright_notice", RemoveSGCopyrightNotice},
		{"footnotes_section", RemoveSGFootnotesSection},
	}
}

// UKRules are the UK-specific repairs.
func UKRules() []Rule {
	return []Rule{
		{"encoding", FixEncoding},
		{"split_lord_names", FixSplitLordNames},
		{"uk_source_boilerplate", RemoveUKSourceBoilerplate},
		{"uk_source_footer", RemoveUKSourceFooter},
		{"lord_headers", FormatLordHeaders},
		{"header_footer_citations", func(s string) string {
			return RemoveHeaderFooterCitations(s, UKCitationRe)
		}},
	}
}

// StructureRules restore paragraph and section structure. They run after
// the jurisdiction rules so numbering sees repaired text.
func StructureRules() []Rule {
	return []Rule{
		{"split_content_at_core_boundary", FixSplitContentAtCoreBoundary},
		{"duplicate_sections", RemoveDuplicateSections},
		{"merged_headers", FixMergedHeaders},
		{"inline_section_headings", FixInlineSectionHeadings},
		{"heading_paragraph_merge", FixHeadingParagraphMerge},
		{"mid_sentence_line_breaks", JoinMidSentenceBreaks},
		{"odd_line_breaks", FixOddLineBreaks},
		{"standalone_paragraph_numbers", FixStandaloneParagraphNumbers},
		{"paragraph_periods", FixParagraphPeriods},
		{"paragraph_numbering", FixParagraphNumbering},
		{"duplicate_paragraph_numbers", FixDuplicateParagraphNumbers},
		{"duplicate_content", FixDuplicateContent},
		{"missing_paragraph_numbers", AddMissingParagraphNumbers},
		{"block_quotes", FixBlockQuotes},
		{"list_spacing", FixListSpacing},
		{"heading_spacing", EnsureHeadingSpacing},
		{"paragraph_spacing", EnsureParagraphSpacing},
		{"headnotes_formatting", CleanHeadnotes},
		{"header_format", FixHeaderFormat},
		{"multiple_blanks", CleanMultipleBlanks},
	}
}

// RulesFor composes the full pipeline for a jurisdiction code ("SG", "UK"
// or anything else for the common rules only).
func RulesFor(jurisdiction string) []Rule {
	rules := CommonRules()
	switch jurisdiction {
	case "SG":
		rules = append(rules, SGRules()...)
	case "UK":
		rules = append(rules, UKRules()...)
	}
	return append(rules, StructureRules()...)
}
