package skills

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillvector/skillvector/internal/engine"
)

// PostgresStore keeps analysis history in Postgres, for deployments
// where a shared database is available. Selected in main when
// DATABASE_URL is set.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgresStore creates the pgx pool and ensures the schema.
func ConnectPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	store := &PostgresStore{pool: pool}
	if err := store.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	slog.Info("analysis postgres connected", slog.String("addr", config.ConnConfig.Host))
	return store, nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS analyses (
		id          BIGSERIAL PRIMARY KEY,
		request_id  TEXT NOT NULL,
		resume_text TEXT NOT NULL,
		job_text    TEXT NOT NULL,
		match_score DOUBLE PRECISION NOT NULL,
		priority    TEXT NOT NULL,
		result_json JSONB NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	return err
}

// SaveAnalysis appends one analysis row.
func (s *PostgresStore) SaveAnalysis(ctx context.Context, result *AnalysisResult, resume, job string) error {
	blob, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("history: marshal result: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO analyses (request_id, resume_text, job_text, match_score, priority, result_json, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		result.RequestID,
		engine.TruncateRunes(resume, storedInputLimit, "..."),
		engine.TruncateRunes(job, storedInputLimit, "..."),
		result.MatchScore, result.LearningPriority, string(blob), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("history: insert: %w", err)
	}
	engine.IncrAnalysesSaved()
	return nil
}

// RecentAnalyses returns the newest rows first.
func (s *PostgresStore) RecentAnalyses(ctx context.Context, limit int) ([]AnalysisRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, request_id, resume_text, job_text, match_score, priority, result_json::text, created_at
		 FROM analyses ORDER BY id DESC LIMIT $1`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		var r AnalysisRecord
		var createdAt time.Time
		if err := rows.Scan(&r.ID, &r.RequestID, &r.ResumeText, &r.JobText,
			&r.MatchScore, &r.Priority, &r.ResultJSON, &createdAt); err != nil {
			continue
		}
		r.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		records = append(records, r)
	}
	if records == nil {
		records = []AnalysisRecord{}
	}
	return records, nil
}
