package skills

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/skillvector/skillvector/internal/engine"
)

// AnalysisRecord is one persisted analysis: truncated inputs plus the
// full result as JSON.
type AnalysisRecord struct {
	ID         int64   `json:"id"`
	RequestID  string  `json:"request_id"`
	ResumeText string  `json:"resume_text"`
	JobText    string  `json:"job_text"`
	MatchScore float64 `json:"match_score"`
	Priority   string  `json:"priority"`
	ResultJSON string  `json:"result_json"`
	CreatedAt  string  `json:"created_at"`
}

// AnalysisStore persists completed analyses. Both the SQLite and the
// Postgres backends implement it; persistence failures are reported but
// callers treat them as non-fatal.
type AnalysisStore interface {
	SaveAnalysis(ctx context.Context, result *AnalysisResult, resume, job string) error
	RecentAnalyses(ctx context.Context, limit int) ([]AnalysisRecord, error)
}

// Stored inputs are truncated so the history table stays browseable.
const storedInputLimit = 1000

var (
	analysisDB   *sql.DB
	analysisOnce sync.Once
	analysisErr  error
)

// SQLiteStore keeps analysis history in a local SQLite file under
// ~/.skillvector. The zero value is usable.
type SQLiteStore struct{}

func openAnalysisDB() (*sql.DB, error) {
	analysisOnce.Do(func() {
		dir := filepath.Join(os.Getenv("HOME"), ".skillvector")
		if err := os.MkdirAll(dir, 0750); err != nil {
			analysisErr = fmt.Errorf("history: mkdir %s: %w", dir, err)
			return
		}
		dbPath := filepath.Join(dir, "analyses.db")
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			analysisErr = fmt.Errorf("history: open db: %w", err)
			return
		}
		db.SetMaxOpenConns(1) // SQLite: single writer
		if err := initAnalysisSchema(db); err != nil {
			analysisErr = fmt.Errorf("history: init schema: %w", err)
			return
		}
		analysisDB = db
	})
	return analysisDB, analysisErr
}

func initAnalysisSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS analyses (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		request_id  TEXT NOT NULL,
		resume_text TEXT NOT NULL,
		job_text    TEXT NOT NULL,
		match_score REAL NOT NULL,
		priority    TEXT NOT NULL,
		result_json TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`)
	return err
}

// SaveAnalysis appends one analysis row. History is append-only.
func (SQLiteStore) SaveAnalysis(_ context.Context, result *AnalysisResult, resume, job string) error {
	db, err := openAnalysisDB()
	if err != nil {
		return err
	}

	blob, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("history: marshal result: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = db.Exec(
		`INSERT INTO analyses (request_id, resume_text, job_text, match_score, priority, result_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		result.RequestID,
		engine.TruncateRunes(resume, storedInputLimit, "..."),
		engine.TruncateRunes(job, storedInputLimit, "..."),
		result.MatchScore, result.LearningPriority, string(blob), now,
	)
	if err != nil {
		return fmt.Errorf("history: insert: %w", err)
	}
	engine.IncrAnalysesSaved()
	return nil
}

// RecentAnalyses returns the newest rows first.
func (SQLiteStore) RecentAnalyses(_ context.Context, limit int) ([]AnalysisRecord, error) {
	db, err := openAnalysisDB()
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := db.Query(
		`SELECT id, request_id, resume_text, job_text, match_score, priority, result_json, created_at
		 FROM analyses ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		var r AnalysisRecord
		if err := rows.Scan(&r.ID, &r.RequestID, &r.ResumeText, &r.JobText,
			&r.MatchScore, &r.Priority, &r.ResultJSON, &r.CreatedAt); err != nil {
			continue
		}
		records = append(records, r)
	}
	if records == nil {
		records = []AnalysisRecord{}
	}
	return records, nil
}
