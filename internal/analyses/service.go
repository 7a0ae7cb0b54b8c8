package analyses

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-match/internal/extract"
	"resume-match/internal/matching"
	"resume-match/internal/shared/metrics"
	"resume-match/internal/shared/telemetry"
)

// Service runs the matching pipeline and persists the outcome per (user, job).
type Service struct {
	Repo          Repo
	DefaultLocale string
	Now           func() time.Time
	NewID         func() string

	// AnalyzerFor overrides analyzer construction; nil uses matching.NewAnalyzer.
	AnalyzerFor func(locale string) matching.Analyzer
}

// NewService constructs a Service with wall-clock time and random UUIDs.
func NewService(repo Repo, defaultLocale string) *Service {
	return &Service{Repo: repo, DefaultLocale: defaultLocale}
}

// Analyze scores pasted résumé text and stores the result. The matching step
// never fails; internal errors degrade to the fail-soft result.
func (s *Service) Analyze(ctx context.Context, in AnalyzeInput) (Analysis, error) {
	if err := validateIdentity(in.UserID, in.JobID); err != nil {
		return Analysis{}, err
	}
	return s.run(ctx, in.UserID, in.JobID, in.ResumeText, in.Job, in.Locale, SourceText)
}

// AnalyzeDocument extracts text from an uploaded file and analyzes it.
func (s *Service) AnalyzeDocument(ctx context.Context, in DocumentInput) (Analysis, error) {
	if err := validateIdentity(in.UserID, in.JobID); err != nil {
		return Analysis{}, err
	}

	mimeType := in.MimeType
	if strings.TrimSpace(mimeType) == "" {
		mimeType = extract.MimeFromFileName(in.FileName)
	}
	text, err := extract.ExtractTextFromBytes(ctx, in.Data, mimeType, in.FileName)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Analysis{}, ctxErr
		}
		metrics.IncExtractFailed()
		telemetry.Warn("analysis.extract_failed", map[string]any{
			"user_id":   in.UserID,
			"job_id":    in.JobID,
			"file_name": in.FileName,
			"mime_type": mimeType,
			"error":     err.Error(),
		})
		return Analysis{}, fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}
	if strings.TrimSpace(text) == "" {
		metrics.IncExtractFailed()
		return Analysis{}, fmt.Errorf("%w: no text found in %s", ErrUnreadableDocument, in.FileName)
	}

	return s.run(ctx, in.UserID, in.JobID, text, in.Job, in.Locale, SourceUpload)
}

// Get returns the analysis a user holds for a job.
func (s *Service) Get(ctx context.Context, userID, jobID string) (Analysis, error) {
	if err := validateIdentity(userID, jobID); err != nil {
		return Analysis{}, err
	}
	return s.Repo.GetByUserJob(ctx, userID, strings.TrimSpace(jobID))
}

// List returns analyses for a user, most recently updated first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Analysis, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// ResolveLocale returns locale when rules exist for it, else the service default.
func (s *Service) ResolveLocale(locale string) string {
	available := matching.Locales()
	for _, candidate := range []string{locale, s.DefaultLocale} {
		candidate = strings.ToLower(strings.TrimSpace(candidate))
		if slices.Contains(available, candidate) {
			return candidate
		}
	}
	return matching.DefaultLocale
}

func (s *Service) run(ctx context.Context, userID, jobID, text string, job matching.JobDescriptor, locale, source string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	locale = s.ResolveLocale(locale)
	jobID = strings.TrimSpace(jobID)

	start := time.Now()
	result, err := s.analyzer(locale).TryAnalyze(text, job)
	durationMs := float64(time.Since(start).Microseconds()) / 1000.0
	metrics.ObserveAnalysisDurationMs(durationMs)
	if err != nil {
		metrics.IncAnalysisFailSoft()
		telemetry.Warn("analysis.fail_soft", map[string]any{
			"user_id": userID,
			"job_id":  jobID,
			"locale":  locale,
			"error":   err.Error(),
		})
	} else {
		metrics.IncAnalysisCompleted()
		metrics.ObserveScore(result.Score)
	}

	now := s.now()
	stored, err := s.Repo.Upsert(ctx, Analysis{
		ID:        s.newID(),
		UserID:    userID,
		JobID:     jobID,
		Category:  categoryOf(job),
		Locale:    locale,
		Source:    source,
		Result:    result,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return Analysis{}, err
	}

	telemetry.Info("analysis.completed", map[string]any{
		"analysis_id":      stored.ID,
		"user_id":          userID,
		"job_id":           jobID,
		"category":         stored.Category,
		"locale":           locale,
		"source":           source,
		"score":            result.Score,
		"match_percentage": result.MatchPercentage,
		"duration_ms":      durationMs,
	})
	return stored, nil
}

func (s *Service) analyzer(locale string) matching.Analyzer {
	if s.AnalyzerFor != nil {
		return s.AnalyzerFor(locale)
	}
	return matching.NewAnalyzer(locale)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func validateIdentity(userID, jobID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	if strings.TrimSpace(jobID) == "" {
		return fmt.Errorf("%w: jobId is required", ErrInvalidInput)
	}
	return nil
}

func categoryOf(job matching.JobDescriptor) string {
	if c := strings.TrimSpace(job.Category); c != "" {
		return c
	}
	return matching.DefaultCategory
}

