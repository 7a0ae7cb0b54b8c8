package analyses

import "context"

// Repo defines persistence operations for analyses.
type Repo interface {
	// Upsert stores the analysis keyed by (UserID, JobID). An existing row keeps
	// its ID and CreatedAt; everything else is replaced. The stored row is returned.
	Upsert(ctx context.Context, analysis Analysis) (Analysis, error)
	GetByUserJob(ctx context.Context, userID, jobID string) (Analysis, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Analysis, error)
}
