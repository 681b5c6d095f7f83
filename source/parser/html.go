package parser

import (
	"bytes"
	"net/url"
	"path/filepath"
	"strings"

	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"

	"github.com/casemetrics/casemetrics/source"
)

// HTMLParser extracts judgment text from HTML pages. The default mode
// walks the DOM and projects every text node onto its own line, which
// preserves the line structure the cleaning rules depend on. With
// article extraction enabled it runs readability first and falls back
// to the DOM walk when the page has no identifiable article.
type HTMLParser struct {
	extractArticle bool
}

// NewHTMLParser creates an HTML parser using the plain DOM projection.
func NewHTMLParser() *HTMLParser {
	return &HTMLParser{}
}

// NewArticleHTMLParser creates an HTML parser that prefers readability
// article extraction.
func NewArticleHTMLParser() *HTMLParser {
	return &HTMLParser{extractArticle: true}
}

// Parse extracts plain text from an HTML judgment.
func (p *HTMLParser) Parse(filename string, content []byte) (*source.Document, error) {
	var text string

	if p.extractArticle {
		text = extractArticleText(filename, content)
	}
	if text == "" {
		text = projectText(content)
	}

	return &source.Document{
		Path:    filename,
		Name:    filepath.Base(filename),
		Format:  source.FormatHTML,
		Content: text,
	}, nil
}

// CanParse returns true if this parser can handle the given MIME type.
func (p *HTMLParser) CanParse(mimeType string) bool {
	switch mimeType {
	case "text/html", "application/xhtml+xml":
		return true
	default:
		return false
	}
}

// MimeType returns the primary MIME type for this parser.
func (p *HTMLParser) MimeType() string {
	return "text/html"
}

// strippedTags are removed from the DOM before text projection.
var strippedTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"svg":      true,
}

// projectText parses the HTML and joins every text node with a newline.
func projectText(content []byte) string {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return string(content)
	}

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && strippedTags[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			if t := n.Data; strings.TrimSpace(t) != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(parts, "\n")
}

// extractArticleText runs readability extraction, returning "" when no
// article content is found.
func extractArticleText(filename string, content []byte) string {
	pageURL := &url.URL{Scheme: "file", Path: "/" + filepath.ToSlash(filename)}

	article, err := readability.FromReader(bytes.NewReader(content), pageURL)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(article.TextContent)
}
