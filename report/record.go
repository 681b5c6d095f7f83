// Package report assembles per-judgment analysis records and exports
// them as CSV or sqlite.
package report

import "strconv"

// Record holds the analysis result for one judgment.
type Record struct {
	Title              string
	Citation           string
	Date               string
	Year               string
	Country            string
	Court              string
	HeadnotesWordCount int
	CoreWordCount      int
	FKGradeLevel       float64
	FKReadingEase      float64
	SMOG               float64
	AvgSentenceLength  float64
	CitationsTotal     int
	CitationsUnique    int
	CitationsSG        int
	CitationsUK        int
	CitationsAU        int
	CitationsUSA       int
	CitationsCAN       int
	CitationsIND       int
	CitationsNZ        int
	CitationsEU        int
	CitationsOther     int
	AcademicReferences int
	Filename           string
}

// Columns returns the CSV header, in export order.
func Columns() []string {
	return []string{
		"Title",
		"Citation",
		"Date",
		"Year",
		"Country",
		"Court",
		"Headnotes_WordCount",
		"Core_WordCount",
		"FK_Grade_Level",
		"FK_Reading_Ease",
		"SMOG",
		"Avg_Sentence_Length",
		"Citations_Total",
		"Citations_Unique",
		"Citations_SG",
		"Citations_UK",
		"Citations_AU",
		"Citations_USA",
		"Citations_CAN",
		"Citations_IND",
		"Citations_NZ",
		"Citations_EU",
		"Citations_Other",
		"Academic_References",
		"Filename",
	}
}

// Row returns the record formatted as CSV fields, matching Columns.
func (r *Record) Row() []string {
	return []string{
		r.Title,
		r.Citation,
		r.Date,
		r.Year,
		r.Country,
		r.Court,
		strconv.Itoa(r.HeadnotesWordCount),
		strconv.Itoa(r.CoreWordCount),
		formatFloat(r.FKGradeLevel),
		formatFloat(r.FKReadingEase),
		formatFloat(r.SMOG),
		formatFloat(r.AvgSentenceLength),
		strconv.Itoa(r.CitationsTotal),
		strconv.Itoa(r.CitationsUnique),
		strconv.Itoa(r.CitationsSG),
		strconv.Itoa(r.CitationsUK),
		strconv.Itoa(r.CitationsAU),
		strconv.Itoa(r.CitationsUSA),
		strconv.Itoa(r.CitationsCAN),
		strconv.Itoa(r.CitationsIND),
		strconv.Itoa(r.CitationsNZ),
		strconv.Itoa(r.CitationsEU),
		strconv.Itoa(r.CitationsOther),
		strconv.Itoa(r.AcademicReferences),
		r.Filename,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
