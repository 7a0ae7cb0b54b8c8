package analyses

import (
	"time"

	"resume-match/internal/matching"
)

const (
	SourceText   = "text"
	SourceUpload = "upload"
)

// Analysis is the stored outcome of matching one résumé against one job.
// A user holds at most one analysis per job; re-analyzing replaces it.
type Analysis struct {
	ID        string                  `json:"id"`
	UserID    string                  `json:"userId"`
	JobID     string                  `json:"jobId"`
	Category  string                  `json:"category"`
	Locale    string                  `json:"locale"`
	Source    string                  `json:"source"`
	Result    matching.AnalysisResult `json:"result"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
}

// AnalyzeInput carries pasted résumé text.
type AnalyzeInput struct {
	UserID     string
	JobID      string
	ResumeText string
	Job        matching.JobDescriptor
	Locale     string
}

// DocumentInput carries an uploaded résumé file.
type DocumentInput struct {
	UserID   string
	JobID    string
	Job      matching.JobDescriptor
	Locale   string
	FileName string
	MimeType string
	Data     []byte
}
