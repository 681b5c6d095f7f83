package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/casemetrics/casemetrics/analyze"
	"github.com/casemetrics/casemetrics/clean"
	"github.com/casemetrics/casemetrics/config"
	"github.com/casemetrics/casemetrics/report"
	"github.com/casemetrics/casemetrics/source"
	"github.com/casemetrics/casemetrics/source/parser"
)

// cleanVersion tags cleaned output filenames so reruns with a newer rule
// set do not silently overwrite older output.
const cleanVersion = "1.0"

var caseHeaderRe = regexp.MustCompile(`CASE:\s*([^\n]+)`)

// articleRegistry swaps in the article-extracting HTML parser for sources
// wrapped in portal navigation. The other parsers match the defaults.
var articleRegistry = func() *parser.Registry {
	r := parser.NewRegistry()
	r.Register(parser.NewArticleHTMLParser())
	return r
}()

// App wires configuration into the clean, analyze and watch flows.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewApp creates an App. A nil logger disables logging.
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &App{cfg: cfg, logger: logger}
}

// CleanFiles cleans every judgment file matched by the given paths or glob
// patterns into the output directory. Individual file failures are logged
// and skipped.
func (a *App) CleanFiles(ctx context.Context, patterns []string) error {
	files, err := source.Discover(patterns)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no judgment files matched")
	}

	if err := os.MkdirAll(a.cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	cleaned := 0
	for _, path := range files {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := a.cleanOne(path); err != nil {
			a.logger.Warn("Failed to clean judgment",
				"path", path,
				"error", err)
			continue
		}
		cleaned++
	}

	a.logger.Info("Cleaning complete",
		"files", len(files),
		"cleaned", cleaned,
		"failed", len(files)-cleaned)
	return nil
}

// cleanOne runs the full cleaning flow for a single file and writes the
// three-section output.
func (a *App) cleanOne(path string) error {
	doc, err := a.loadDocument(path)
	if err != nil {
		return err
	}

	jurisdiction := doc.Jurisdiction
	if j := a.cfg.Clean.Jurisdiction; j != "" && j != "auto" {
		jurisdiction = source.Jurisdiction(j)
	}

	format := doc.Format
	if f := a.cfg.Clean.Format; f != "" && f != "auto" {
		format = source.Format(f)
	}

	var seg clean.Segments
	switch format {
	case source.FormatHTML:
		seg = a.cleanHTML(doc.Content, jurisdiction)
	default:
		seg = a.cleanText(doc.Content, jurisdiction, path)
	}

	// Only re-emit a CASE header the source already carried.
	caseName := ""
	if m := caseHeaderRe.FindStringSubmatch(doc.Content); m != nil {
		caseName = strings.TrimSpace(m[1])
	}

	stem := strings.TrimSuffix(doc.Name, filepath.Ext(doc.Name))
	outPath := filepath.Join(a.cfg.Output.Dir, fmt.Sprintf("%s_cleaned_%s.txt", stem, cleanVersion))
	if err := os.WriteFile(outPath, []byte(clean.RenderSections(caseName, seg)), 0644); err != nil {
		return fmt.Errorf("write cleaned output: %w", err)
	}

	if a.cfg.Clean.WriteHTML {
		htmlPath := filepath.Join(a.cfg.Output.Dir, stem+"_cleaned.html")
		if err := os.WriteFile(htmlPath, []byte(clean.RenderHTML(doc.Name, seg)), 0644); err != nil {
			return fmt.Errorf("write html output: %w", err)
		}
	}
	if a.cfg.Clean.WriteMarkdown {
		md, err := clean.RenderMarkdown(doc.Name, seg)
		if err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		mdPath := filepath.Join(a.cfg.Output.Dir, stem+"_cleaned.md")
		if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
			return fmt.Errorf("write markdown output: %w", err)
		}
	}

	a.logger.Debug("Cleaned judgment",
		"path", path,
		"jurisdiction", jurisdiction,
		"format", format,
		"output", outPath)
	return nil
}

// loadDocument parses a judgment file, routing HTML through the article
// extractor when configured.
func (a *App) loadDocument(path string) (*source.Document, error) {
	if a.cfg.Clean.ExtractArticle {
		return articleRegistry.Load(path)
	}
	return parser.Load(path)
}

// cleanHTML repairs text projected from an HTML judgment. The repairs are
// lighter than the txt pipeline because HTML projection does not suffer
// PDF page furniture.
func (a *App) cleanHTML(content string, jurisdiction source.Jurisdiction) clean.Segments {
	text := clean.Normalize(content)
	text = clean.DeleteEndOfDocument(text)
	text = clean.FixSplitCompanyNames(text)
	text = clean.ReflowLonelyNumberedParas(text)
	text = clean.ReflowLonelyBracketMarkers(text)
	text = clean.RepairDigitStacks(text)

	if jurisdiction == source.JurisdictionUK {
		head, coreFlat := clean.SegmentHeadCoreUK(text)
		core := clean.FormatLordHeaders(clean.RewriteCoreUK(coreFlat))

		judges := clean.ExtractJudgesFromCoreUK(core)
		if len(judges) == 0 {
			judges = clean.ExtractJudgesFromHeadnotesUK(head)
		}
		if len(judges) > 0 {
			a.logger.Debug("Identified judges", "judges", strings.Join(judges, "; "))
		}

		return clean.Segments{Headnotes: head, Core: core}
	}
	return clean.Segment(text)
}

// cleanText runs the full per-jurisdiction rule pipeline over plain text
// (including text extracted from PDF).
func (a *App) cleanText(content string, jurisdiction source.Jurisdiction, path string) clean.Segments {
	pipeline := clean.NewPipeline(clean.RulesFor(string(jurisdiction)), a.logger)
	cleaned, stats := pipeline.Run(content)
	a.logger.Debug("Pipeline finished",
		"path", path,
		"rules_fired", len(stats))
	return clean.Segment(cleaned)
}

// AnalyzeFiles extracts metrics from cleaned judgment files and writes the
// report CSV, plus the report database when configured. With a configured
// court the court's input folders are used; otherwise the given paths.
func (a *App) AnalyzeFiles(ctx context.Context, patterns []string) error {
	court := a.cfg.Analyze.Court
	country := ""
	if court != "" {
		cc, ok := a.cfg.Courts[court]
		if !ok {
			return fmt.Errorf("court %q is not configured", court)
		}
		country = cc.Country
		if len(patterns) == 0 {
			patterns = cc.InputFolders
		}
	}
	if len(patterns) == 0 {
		return fmt.Errorf("no input paths: give paths or configure input folders for --court")
	}

	files, err := source.Discover(patterns)
	if err != nil {
		return err
	}
	files = textOnly(files)
	if len(files) == 0 {
		return fmt.Errorf("no .txt judgment files matched")
	}

	analyzer := analyze.New(a.logger)
	records, err := analyzer.AnalyzeFiles(ctx, files, court, country, a.cfg.Analyze.Workers)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no judgments could be analyzed")
	}

	csvPath := a.cfg.CSVPath()
	if err := report.WriteCSVFile(csvPath, records); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	a.logger.Info("Analysis complete",
		"files", len(files),
		"records", len(records),
		"csv", csvPath)

	if a.cfg.Output.Database != "" {
		store, err := report.OpenStore(a.cfg.Output.Database)
		if err != nil {
			return fmt.Errorf("open report database: %w", err)
		}
		defer store.Close()

		runID, err := store.SaveRun(court, records)
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		a.logger.Info("Saved analysis run",
			"run_id", runID,
			"database", a.cfg.Output.Database)
	}

	return nil
}

// Watch cleans judgment files in a directory as they are created or
// modified, until the context is cancelled.
func (a *App) Watch(ctx context.Context, dir string) error {
	if err := os.MkdirAll(a.cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	watcher, err := source.NewWatcher(dir, 0, a.logger)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Stop()

	if err := watcher.Start(ctx); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			if event.Operation == source.WatchOpDelete {
				continue
			}
			if err := a.cleanOne(event.AbsPath); err != nil {
				a.logger.Warn("Failed to clean changed judgment",
					"path", event.AbsPath,
					"error", err)
				continue
			}
			a.logger.Info("Cleaned changed judgment", "path", event.Path)
		}
	}
}

// textOnly keeps the .txt files from a discovered file list. Analysis runs
// on cleaned plain-text judgments only.
func textOnly(files []string) []string {
	var out []string
	for _, f := range files {
		if strings.EqualFold(filepath.Ext(f), ".txt") {
			out = append(out, f)
		}
	}
	return out
}
