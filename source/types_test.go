package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"judgment.txt", FormatText},
		{"judgment.TXT", FormatText},
		{"judgment.html", FormatHTML},
		{"judgment.htm", FormatHTML},
		{"judgment.pdf", FormatPDF},
		{"judgment.docx", FormatUnknown},
		{"noextension", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.path))
		})
	}
}

func TestDetectJurisdiction(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		want    Jurisdiction
	}{
		{"uksc in path", "cases/UKSC_2015_11.html", "", JurisdictionUK},
		{"ukhl in path", "cases/ukhl_2004_12.html", "", JurisdictionUK},
		{"sgca in path", "cases/SGCA_2021_5.txt", "", JurisdictionSG},
		{"sghc in path", "cases/sghc_2020_10.txt", "", JurisdictionSG},
		{"uk citation in content", "cases/case1.txt", "before [2015] UKSC 11 after", JurisdictionUK},
		{"ukhl citation in content", "cases/case1.txt", "see [2004] UKHL 12", JurisdictionUK},
		{"sg citation in content", "cases/case2.txt", "see [2021] SGCA 5", JurisdictionSG},
		{"sghc citation in content", "cases/case2.txt", "see [2020] SGHC 42", JurisdictionSG},
		{"path wins over content", "cases/sgca_5.txt", "cites [2015] UKSC 11", JurisdictionSG},
		{"default UK", "cases/case3.txt", "no citations here", JurisdictionUK},
		{"default UK no content", "cases/case3.txt", "", JurisdictionUK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectJurisdiction(tt.path, tt.content))
		})
	}
}
