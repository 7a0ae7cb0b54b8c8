package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const analysisColumns = `id, user_id, job_id, category, locale, source, result, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// Upsert inserts the analysis or replaces the row for the same (user_id, job_id).
func (r *PGRepo) Upsert(ctx context.Context, analysis Analysis) (Analysis, error) {
	const query = `
INSERT INTO resume_analyses (
	id, user_id, job_id, category, locale, source, score, match_percentage, result, created_at, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (user_id, job_id) DO UPDATE SET
	category = EXCLUDED.category,
	locale = EXCLUDED.locale,
	source = EXCLUDED.source,
	score = EXCLUDED.score,
	match_percentage = EXCLUDED.match_percentage,
	result = EXCLUDED.result,
	updated_at = EXCLUDED.updated_at
RETURNING id, created_at, updated_at`

	payload, err := json.Marshal(analysis.Result)
	if err != nil {
		return Analysis{}, fmt.Errorf("marshal analysis result: %w", err)
	}
	err = r.DB.QueryRowContext(ctx, query,
		analysis.ID,
		analysis.UserID,
		analysis.JobID,
		analysis.Category,
		analysis.Locale,
		analysis.Source,
		analysis.Result.Score,
		analysis.Result.MatchPercentage,
		payload,
		analysis.CreatedAt,
		analysis.UpdatedAt,
	).Scan(&analysis.ID, &analysis.CreatedAt, &analysis.UpdatedAt)
	if err != nil {
		return Analysis{}, fmt.Errorf("upsert analysis: %w", err)
	}
	return analysis, nil
}

// GetByUserJob returns the analysis a user holds for a job.
func (r *PGRepo) GetByUserJob(ctx context.Context, userID, jobID string) (Analysis, error) {
	query := `SELECT ` + analysisColumns + `
FROM resume_analyses
WHERE user_id = $1 AND job_id = $2
LIMIT 1`
	a, err := scanAnalysis(r.DB.QueryRowContext(ctx, query, userID, jobID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	return a, nil
}

// ListByUser returns analyses for a user, most recently updated first.
// A limit of zero means no limit.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Analysis, error) {
	query := `SELECT ` + analysisColumns + `
FROM resume_analyses
WHERE user_id = $1
ORDER BY updated_at DESC, job_id ASC
LIMIT $2 OFFSET $3`
	if offset < 0 {
		offset = 0
	}
	var limitArg any
	if limit > 0 {
		limitArg = limit
	}

	rows, err := r.DB.QueryContext(ctx, query, userID, limitArg, offset)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()

	out := []Analysis{}
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	return out, nil
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var a Analysis
	var payload []byte
	if err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.JobID,
		&a.Category,
		&a.Locale,
		&a.Source,
		&payload,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return Analysis{}, err
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &a.Result); err != nil {
			return Analysis{}, fmt.Errorf("decode analysis %s result: %w", a.ID, err)
		}
	}
	return a, nil
}
