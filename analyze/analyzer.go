// Package analyze orchestrates per-judgment signal extraction: section
// parsing, citation and academic counts, and readability metrics.
package analyze

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/casemetrics/casemetrics/cite"
	"github.com/casemetrics/casemetrics/metrics"
	"github.com/casemetrics/casemetrics/report"
)

var (
	headnotesSectionRe = regexp.MustCompile(`(?is)-{10,}\s*\n\s*HEADNOTES\s*\n\s*-{10,}\s*\n(.*?)\n\s*-{10,}\s*\n\s*CORE JUDGMENT`)
	coreSectionRe      = regexp.MustCompile(`(?is)-{10,}\s*\n\s*CORE JUDGMENT\s*\n\s*-{10,}\s*\n(.*?)(\n\s*-{10,}\s*\n\s*FOOTNOTES|\z)`)
	footnotesSectionRe = regexp.MustCompile(`(?is)-{10,}\s*\n\s*FOOTNOTES\s*\n\s*-{10,}\s*\n(.*)`)

	spaceRunRe = regexp.MustCompile(`\s+`)
)

// Sections holds the dashed-divider sections of a cleaned judgment.
type Sections struct {
	Headnotes string
	Core      string
	Footnotes string
}

// ExtractSections splits a cleaned judgment on its section dividers.
// Missing sections come back empty.
func ExtractSections(content string) Sections {
	var s Sections

	if m := headnotesSectionRe.FindStringSubmatch(content); m != nil {
		s.Headnotes = strings.TrimSpace(m[1])
	}
	if m := coreSectionRe.FindStringSubmatch(content); m != nil {
		s.Core = strings.TrimSpace(m[1])
	}
	if m := footnotesSectionRe.FindStringSubmatch(content); m != nil {
		s.Footnotes = strings.TrimSpace(m[1])
	}

	return s
}

// Analyzer computes analysis records for cleaned judgments.
type Analyzer struct {
	logger *slog.Logger
}

// New creates an Analyzer. A nil logger discards all output.
func New(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Analyzer{logger: logger}
}

// Analyze computes the record for one cleaned judgment. court and
// country label the record; court also selects court-specific repairs.
func (a *Analyzer) Analyze(content, filename, court, country string) *report.Record {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	md := report.ExtractMetadata(content, filename)
	sections := ExtractSections(content)
	title := report.CleanTitle(md.Title)

	core := sections.Core
	if court == "SGCA" && md.Citation != "" && title != "" {
		core = removeInlineCaseHeaders(core, title, md.Citation)
	}

	// Citation and academic counts run on the raw core plus footnotes
	citationText := core
	if sections.Footnotes != "" {
		citationText = core + "\n" + sections.Footnotes
	}
	totals, uniques := cite.CountByJurisdiction(citationText)
	academicRefs := cite.CountAcademicReferences(citationText)

	// Readability runs on the citation-stripped core
	prepared := cite.PrepareForMetrics(core)
	read := metrics.Compute(prepared)

	return &report.Record{
		Title:              title,
		Citation:           md.Citation,
		Date:               md.Date,
		Year:               md.Year,
		Country:            country,
		Court:              court,
		HeadnotesWordCount: metrics.WordCount(sections.Headnotes),
		CoreWordCount:      metrics.WordCount(core),
		FKGradeLevel:       read.FKGrade,
		FKReadingEase:      read.FKEase,
		SMOG:               read.SMOG,
		AvgSentenceLength:  read.AvgSentenceLength,
		CitationsTotal:     totals["total"],
		CitationsUnique:    uniques["total"],
		CitationsSG:        totals[cite.JurisdictionSG],
		CitationsUK:        totals[cite.JurisdictionUK],
		CitationsAU:        totals[cite.JurisdictionAU],
		CitationsUSA:       totals[cite.JurisdictionUSA],
		CitationsCAN:       totals[cite.JurisdictionCAN],
		CitationsIND:       totals[cite.JurisdictionIND],
		CitationsNZ:        totals[cite.JurisdictionNZ],
		CitationsEU:        totals[cite.JurisdictionEU],
		CitationsOther:     totals[cite.JurisdictionOther],
		AcademicReferences: academicRefs,
		Filename:           filename,
	}
}

// AnalyzeFile reads and analyzes one cleaned judgment file.
func (a *Analyzer) AnalyzeFile(path, court, country string) (*report.Record, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return a.Analyze(string(content), filepath.Base(path), court, country), nil
}

// AnalyzeFiles analyzes a batch of files concurrently, preserving input
// order in the result. Files that fail to read are logged and skipped.
func (a *Analyzer) AnalyzeFiles(ctx context.Context, paths []string, court, country string, workers int) ([]*report.Record, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]*report.Record, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rec, err := a.AnalyzeFile(path, court, country)
			if err != nil {
				a.logger.Warn("skipping unreadable file",
					slog.String("path", path),
					slog.String("error", err.Error()))
				return nil
			}

			results[i] = rec
			a.logger.Debug("analyzed",
				slog.String("file", rec.Filename),
				slog.Int("citations", rec.CitationsTotal))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Compact out skipped entries
	records := make([]*report.Record, 0, len(results))
	for _, r := range results {
		if r != nil {
			records = append(records, r)
		}
	}
	return records, nil
}

// removeInlineCaseHeaders strips page-header artifacts where the case
// name and citation were fused into the body text.
func removeInlineCaseHeaders(core, title, citation string) string {
	caseName := strings.TrimSpace(spaceRunRe.ReplaceAllString(title, " "))
	if caseName == "" || citation == "" {
		return core
	}

	tokens := strings.Fields(caseName)
	quoted := make([]string, 0, len(tokens))
	for _, t := range tokens {
		quoted = append(quoted, regexp.QuoteMeta(t))
	}
	if len(quoted) > 0 {
		pattern := `(?i)` + strings.Join(quoted, `\s+`) + `.{0,120}?` + regexp.QuoteMeta(citation)
		if re, err := regexp.Compile(pattern); err == nil {
			core = re.ReplaceAllString(core, "")
		}
	}

	// Bare citation occurrences go too
	core = regexp.MustCompile(regexp.QuoteMeta(citation)).ReplaceAllString(core, "")
	return core
}
