package analyses

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores analyses in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	byUser map[string]map[string]Analysis
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byUser: make(map[string]map[string]Analysis)}
}

// Upsert stores the analysis, replacing any previous one for the same job.
func (r *MemoryRepo) Upsert(ctx context.Context, analysis Analysis) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	jobs, ok := r.byUser[analysis.UserID]
	if !ok {
		jobs = make(map[string]Analysis)
		r.byUser[analysis.UserID] = jobs
	}
	if existing, ok := jobs[analysis.JobID]; ok {
		analysis.ID = existing.ID
		analysis.CreatedAt = existing.CreatedAt
	}
	jobs[analysis.JobID] = analysis
	return analysis, nil
}

// GetByUserJob returns the analysis a user holds for a job.
func (r *MemoryRepo) GetByUserJob(ctx context.Context, userID, jobID string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	analysis, ok := r.byUser[userID][jobID]
	if !ok {
		return Analysis{}, ErrNotFound
	}
	return analysis, nil
}

// ListByUser returns analyses for a user, most recently updated first, with limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	analyses := make([]Analysis, 0, len(r.byUser[userID]))
	for _, a := range r.byUser[userID] {
		analyses = append(analyses, a)
	}
	r.mu.RUnlock()

	if offset >= len(analyses) {
		return []Analysis{}, nil
	}
	sort.Slice(analyses, func(i, j int) bool {
		if !analyses[i].UpdatedAt.Equal(analyses[j].UpdatedAt) {
			return analyses[i].UpdatedAt.After(analyses[j].UpdatedAt)
		}
		return analyses[i].JobID < analyses[j].JobID
	})

	end := len(analyses)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return analyses[offset:end], nil
}
