package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() *Record {
	return &Record{
		Title:              "Lim Meng Suang v Attorney-General",
		Citation:           "[2014] SGCA 53",
		Date:               "28 October 2014",
		Year:               "2014",
		Country:            "SG",
		Court:              "SGCA",
		HeadnotesWordCount: 120,
		CoreWordCount:      8543,
		FKGradeLevel:       13.42,
		FKReadingEase:      41.05,
		SMOG:               14.5,
		AvgSentenceLength:  24.31,
		CitationsTotal:     87,
		CitationsUnique:    41,
		CitationsSG:        30,
		CitationsUK:        40,
		CitationsAU:        10,
		CitationsOther:     7,
		AcademicReferences: 12,
		Filename:           "lim_meng_suang.txt",
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []*Record{sampleRecord()}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	header := rows[0]
	assert.Equal(t, Columns(), header)
	require.Len(t, rows[1], len(header))

	byCol := map[string]string{}
	for i, col := range header {
		byCol[col] = rows[1][i]
	}
	assert.Equal(t, "[2014] SGCA 53", byCol["Citation"])
	assert.Equal(t, "13.42", byCol["FK_Grade_Level"])
	assert.Equal(t, "14.50", byCol["SMOG"])
	assert.Equal(t, "87", byCol["Citations_Total"])
	assert.Equal(t, "41", byCol["Citations_Unique"])
	assert.Equal(t, "lim_meng_suang.txt", byCol["Filename"])
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "results.csv")
	require.NoError(t, WriteCSVFile(path, []*Record{sampleRecord(), sampleRecord()}))

	rows := readCSVFile(t, path)
	assert.Len(t, rows, 3)
}

func readCSVFile(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return rows
}
