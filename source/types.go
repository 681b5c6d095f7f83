// Package source provides types and parsers for judgment ingestion.
package source

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Format identifies the on-disk format of a judgment file.
type Format string

const (
	FormatText    Format = "txt"
	FormatHTML    Format = "html"
	FormatPDF     Format = "pdf"
	FormatUnknown Format = "unknown"
)

// Jurisdiction identifies the court system a judgment comes from.
// It selects which repair rules apply during cleaning.
type Jurisdiction string

const (
	JurisdictionSG Jurisdiction = "SG"
	JurisdictionUK Jurisdiction = "UK"
)

var (
	ukCiteRe = regexp.MustCompile(`\[\d{4}\]\s+UK(?:SC|HL)`)
	sgCiteRe = regexp.MustCompile(`\[\d{4}\]\s+SG(?:CA|HC)`)
)

// Document represents a judgment file with its extracted text.
type Document struct {
	// Path is the original file path.
	Path string `json:"path"`

	// Name is the base filename.
	Name string `json:"name"`

	// Format is the detected source format.
	Format Format `json:"format"`

	// Jurisdiction is the detected court system.
	Jurisdiction Jurisdiction `json:"jurisdiction"`

	// Content is the extracted plain text.
	Content string `json:"content"`
}

// DetectFormat determines the file format from its extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTML
	case ".txt":
		return FormatText
	case ".pdf":
		return FormatPDF
	default:
		return FormatUnknown
	}
}

// DetectJurisdiction determines the jurisdiction from the file path,
// falling back to neutral citations in the content. UK is the default
// when neither gives a signal.
func DetectJurisdiction(path, content string) Jurisdiction {
	lower := strings.ToLower(path)

	if strings.Contains(lower, "uksc") || strings.Contains(lower, "ukhl") {
		return JurisdictionUK
	}
	if strings.Contains(lower, "sgca") || strings.Contains(lower, "sghc") {
		return JurisdictionSG
	}

	if content != "" {
		if ukCiteRe.MatchString(content) {
			return JurisdictionUK
		}
		if sgCiteRe.MatchString(content) {
			return JurisdictionSG
		}
	}

	return JurisdictionUK
}
