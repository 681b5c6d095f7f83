package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/casemetrics/casemetrics/source"
)

// Parser defines the interface for judgment parsers.
type Parser interface {
	// Parse extracts plain text from a judgment file.
	Parse(filename string, content []byte) (*source.Document, error)

	// CanParse returns true if this parser handles the given MIME type.
	CanParse(mimeType string) bool

	// MimeType returns the primary MIME type for this parser.
	MimeType() string
}

// Registry manages judgment parsers.
type Registry struct {
	mu      sync.RWMutex
	parsers map[string]Parser // keyed by primary MIME type
}

// DefaultRegistry is the global parser registry with default parsers.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a new parser registry with default parsers.
func NewRegistry() *Registry {
	r := &Registry{
		parsers: make(map[string]Parser),
	}

	// Register default parsers
	r.Register(NewTextParser())
	r.Register(NewHTMLParser())
	r.Register(NewPDFParser())

	return r
}

// Register adds a parser to the registry.
func (r *Registry) Register(p Parser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parsers[p.MimeType()] = p
}

// GetByMimeType returns a parser for the given MIME type.
func (r *Registry) GetByMimeType(mimeType string) Parser {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Direct match
	if p, ok := r.parsers[mimeType]; ok {
		return p
	}

	// Check if any parser can handle this type
	for _, p := range r.parsers {
		if p.CanParse(mimeType) {
			return p
		}
	}

	return nil
}

// GetByExtension returns a parser for a file based on its extension.
func (r *Registry) GetByExtension(filename string) Parser {
	mimeType := MimeTypeFromExtension(filepath.Ext(filename))
	return r.GetByMimeType(mimeType)
}

// Parse extracts text from a judgment using the appropriate parser.
func (r *Registry) Parse(filename string, content []byte) (*source.Document, error) {
	parser := r.GetByExtension(filename)
	if parser == nil {
		return nil, fmt.Errorf("no parser for file type: %s", filepath.Ext(filename))
	}
	return parser.Parse(filename, content)
}

// ListMimeTypes returns all registered MIME types.
func (r *Registry) ListMimeTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.parsers))
	for t := range r.parsers {
		types = append(types, t)
	}
	return types
}

// Load reads a judgment file from disk, parses it, and fills in the
// detected jurisdiction.
func (r *Registry) Load(path string) (*source.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := r.Parse(path, content)
	if err != nil {
		return nil, err
	}

	doc.Jurisdiction = source.DetectJurisdiction(path, doc.Content)
	return doc, nil
}

// Load loads a judgment through the default registry.
func Load(path string) (*source.Document, error) {
	return DefaultRegistry.Load(path)
}

// MimeTypeFromExtension returns the MIME type for a file extension.
func MimeTypeFromExtension(ext string) string {
	ext = strings.ToLower(ext)
	switch ext {
	case ".txt":
		return "text/plain"
	case ".html", ".htm":
		return "text/html"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// ExtensionFromMimeType returns a typical file extension for a MIME type.
func ExtensionFromMimeType(mimeType string) string {
	switch mimeType {
	case "text/plain":
		return ".txt"
	case "text/html":
		return ".html"
	case "application/pdf":
		return ".pdf"
	default:
		return ""
	}
}
