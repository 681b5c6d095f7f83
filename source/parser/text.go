// Package parser provides judgment text extraction for the supported
// source formats.
package parser

import (
	"path/filepath"

	"github.com/casemetrics/casemetrics/source"
)

// TextParser handles plain text judgments, typically produced by an
// upstream PDF extraction step.
type TextParser struct{}

// NewTextParser creates a new plain text parser.
func NewTextParser() *TextParser {
	return &TextParser{}
}

// Parse wraps the raw content in a Document.
func (p *TextParser) Parse(filename string, content []byte) (*source.Document, error) {
	return &source.Document{
		Path:    filename,
		Name:    filepath.Base(filename),
		Format:  source.FormatText,
		Content: string(content),
	}, nil
}

// CanParse returns true if this parser can handle the given MIME type.
func (p *TextParser) CanParse(mimeType string) bool {
	return mimeType == "text/plain"
}

// MimeType returns the primary MIME type for this parser.
func (p *TextParser) MimeType() string {
	return "text/plain"
}
