package report

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    court TEXT,
    started_at TEXT,
    file_count INTEGER
);

CREATE TABLE IF NOT EXISTS results (
    id INTEGER PRIMARY KEY,
    run_id TEXT REFERENCES runs(id),
    title TEXT,
    citation TEXT,
    date TEXT,
    year TEXT,
    country TEXT,
    court TEXT,
    headnotes_word_count INTEGER,
    core_word_count INTEGER,
    fk_grade_level REAL,
    fk_reading_ease REAL,
    smog REAL,
    avg_sentence_length REAL,
    citations_total INTEGER,
    citations_unique INTEGER,
    citations_sg INTEGER,
    citations_uk INTEGER,
    citations_au INTEGER,
    citations_usa INTEGER,
    citations_can INTEGER,
    citations_ind INTEGER,
    citations_nz INTEGER,
    citations_eu INTEGER,
    citations_other INTEGER,
    academic_references INTEGER,
    filename TEXT
);
`

// Store persists analysis runs in a sqlite database.
type Store struct {
	db *sql.DB
}

// OpenStore opens (and initialises) the report database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun stores the records of one analysis run and returns the run ID.
func (s *Store) SaveRun(court string, records []*Record) (string, error) {
	runID := uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO runs(id, court, started_at, file_count) VALUES(?,?,?,?)`,
		runID, court, time.Now().UTC().Format(time.RFC3339), len(records),
	); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for _, r := range records {
		if _, err := tx.Exec(
			`INSERT INTO results(
				run_id, title, citation, date, year, country, court,
				headnotes_word_count, core_word_count,
				fk_grade_level, fk_reading_ease, smog, avg_sentence_length,
				citations_total, citations_unique,
				citations_sg, citations_uk, citations_au, citations_usa,
				citations_can, citations_ind, citations_nz, citations_eu,
				citations_other, academic_references, filename
			) VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			runID, r.Title, r.Citation, r.Date, r.Year, r.Country, r.Court,
			r.HeadnotesWordCount, r.CoreWordCount,
			r.FKGradeLevel, r.FKReadingEase, r.SMOG, r.AvgSentenceLength,
			r.CitationsTotal, r.CitationsUnique,
			r.CitationsSG, r.CitationsUK, r.CitationsAU, r.CitationsUSA,
			r.CitationsCAN, r.CitationsIND, r.CitationsNZ, r.CitationsEU,
			r.CitationsOther, r.AcademicReferences, r.Filename,
		); err != nil {
			return "", fmt.Errorf("insert result for %s: %w", r.Filename, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit tx: %w", err)
	}
	return runID, nil
}

// CountResults returns the number of stored results for a run.
func (s *Store) CountResults(runID string) (int, error) {
	row := s.db.QueryRow(`SELECT COUNT(*) FROM results WHERE run_id = ?`, runID)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}
