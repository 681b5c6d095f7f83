package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/casemetrics/casemetrics/source"
)

// PDFParser extracts judgment text directly from PDF files for the odd
// case where no upstream text extraction ran.
type PDFParser struct{}

// NewPDFParser creates a new PDF parser.
func NewPDFParser() *PDFParser {
	return &PDFParser{}
}

// Parse extracts text content from a PDF judgment. Pages are joined
// with a blank line so the page-header repair rules can still find the
// inserted headers.
func (p *PDFParser) Parse(filename string, content []byte) (*source.Document, error) {
	reader, err := pdf.NewReader(newBytesReaderAt(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}

	var textBuilder strings.Builder

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Some pages may fail to parse
			continue
		}

		if text != "" {
			if textBuilder.Len() > 0 {
				textBuilder.WriteString("\n\n")
			}
			textBuilder.WriteString(text)
		}
	}

	extractedText := textBuilder.String()
	if extractedText == "" {
		return nil, fmt.Errorf("no text content in PDF (%d pages)", numPages)
	}

	return &source.Document{
		Path:    filename,
		Name:    filepath.Base(filename),
		Format:  source.FormatPDF,
		Content: extractedText,
	}, nil
}

// CanParse returns true if this parser can handle the given MIME type.
func (p *PDFParser) CanParse(mimeType string) bool {
	return mimeType == "application/pdf"
}

// MimeType returns the primary MIME type for this parser.
func (p *PDFParser) MimeType() string {
	return "application/pdf"
}

// bytesReaderAt implements io.ReaderAt for a byte slice.
type bytesReaderAt struct {
	data []byte
}

func newBytesReaderAt(data []byte) *bytesReaderAt {
	return &bytesReaderAt{data: data}
}

func (r *bytesReaderAt) ReadAt(p []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, fmt.Errorf("negative offset")
	}
	if off >= int64(len(r.data)) {
		return 0, io.EOF
	}
	n = copy(p, r.data[off:])
	if n < len(p) {
		err = io.EOF
	}
	return n, err
}
