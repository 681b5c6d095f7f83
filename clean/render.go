package clean

import (
	"fmt"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
)

const (
	headerRuleWidth  = 70
	sectionRuleWidth = 40
)

var headingLineRe = regexp.MustCompile(`^\(\s*\d{1,3}\s*\)\s+.+$`)

func sectionDivider(title string) string {
	rule := strings.Repeat("-", sectionRuleWidth)
	return rule + "\n" + title + "\n" + rule
}

// RenderSections lays a segmented judgment out in the dashed three-section
// format. The FOOTNOTES section is emitted only when footnotes exist.
func RenderSections(caseName string, seg Segments) string {
	var b strings.Builder
	if caseName != "" {
		rule := strings.Repeat("=", headerRuleWidth)
		fmt.Fprintf(&b, "%s\nCASE: %s\n%s\n\n", rule, caseName, rule)
	}
	b.WriteString(sectionDivider(sectionHeadnotes))
	b.WriteString("\n\n")
	if seg.Headnotes != "" {
		b.WriteString(seg.Headnotes)
		b.WriteString("\n\n")
	}
	b.WriteString(sectionDivider(sectionCoreJudgment))
	b.WriteString("\n\n")
	b.WriteString(seg.Core)
	if seg.Footnotes != "" {
		b.WriteString("\n\n")
		b.WriteString(sectionDivider(sectionFootnotes))
		b.WriteString("\n\n")
		b.WriteString(seg.Footnotes)
	}
	b.WriteString("\n")
	return b.String()
}

func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	return strings.ReplaceAll(s, ">", "&gt;")
}

var blockSplitRe = regexp.MustCompile(`\n{2,}`)

// coreToHTML converts core text into paragraph markup, bolding section
// heading lines.
func coreToHTML(core string) string {
	var out []string
	for _, block := range blockSplitRe.Split(strings.TrimSpace(core), -1) {
		line := strings.TrimSpace(block)
		if line == "" {
			continue
		}
		if headingLineRe.MatchString(line) {
			out = append(out, "<p><strong>"+escapeHTML(line)+"</strong></p>")
			continue
		}
		parts := strings.Split(line, "\n")
		for i, p := range parts {
			parts[i] = escapeHTML(p)
		}
		out = append(out, "<p>"+strings.Join(parts, "<br>")+"</p>")
	}
	return strings.Join(out, "\n")
}

const htmlStyle = `
    <style>
      body { font-family: Arial, sans-serif; line-height: 1.55; padding: 20px; }
      .header { font-weight: bold; font-size: 18px; margin-bottom: 20px; color: #333; }
      .section-title { font-weight: bold; font-size: 20px; margin: 16px 0 8px 0; }
      .headnotes { background:#fff7c2; padding:12px; border-left:5px solid #e0c200; margin-bottom:25px; white-space:pre-wrap; }
      .core { background:#e8f0ff; padding:12px; border-left:5px solid #3b6bd6; }
      .core p { margin: 0 0 12px 0; }
    </style>
`

// RenderHTML produces the styled two-panel review page for a segmented
// judgment.
func RenderHTML(caseFile string, seg Segments) string {
	headHTML := "No headnotes detected"
	if strings.TrimSpace(seg.Headnotes) != "" {
		headHTML = escapeHTML(seg.Headnotes)
	}
	coreHTML := "<p>No core detected</p>"
	if strings.TrimSpace(seg.Core) != "" {
		coreHTML = coreToHTML(seg.Core)
	}
	header := ""
	if caseFile != "" {
		header = fmt.Sprintf(`<div class="header">&lt;Start&gt; ##%s</div>`, escapeHTML(caseFile))
	}
	return fmt.Sprintf(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>Cleaned Judgment</title>%s</head>
<body>
  %s
  <div class="section-title">Headnotes</div>
  <div class="headnotes">%s</div>

  <div class="section-title">Core Judgment</div>
  <div class="core">
    %s
  </div>
  <div class="header">&lt;/Start&gt;</div>
</body>
</html>
`, htmlStyle, header, headHTML, coreHTML)
}

// RenderMarkdown converts the HTML review page into Markdown for diffing
// cleaned output in review tooling.
func RenderMarkdown(caseFile string, seg Segments) (string, error) {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())
	out, err := converter.ConvertString(RenderHTML(caseFile, seg))
	if err != nil {
		return "", fmt.Errorf("converting judgment to markdown: %w", err)
	}
	return out, nil
}
