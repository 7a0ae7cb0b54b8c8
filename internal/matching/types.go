package matching

// Suggestion kinds.
const (
	KindMissingKeyword     = "missing_keyword"
	KindFormatIssue        = "format_issue"
	KindContentImprovement = "content_improvement"
	KindStrength           = "strength"
)

// Suggestion severities.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

const (
	// DefaultCategory is used when a job has no category.
	DefaultCategory = "general"

	maxMissingKeywords   = 10
	maxListedSuggestions = 5
	minWordCount         = 200
	maxWordCount         = 1000
	minRequirementToken  = 4
)

// JobDescriptor is the job context a résumé is matched against.
// Requirements may be a []string, a []any of strings, a RequirementList,
// or a map exposing an "items" list; any other shape is ignored.
type JobDescriptor struct {
	Category     string `json:"category"`
	Requirements any    `json:"requirements,omitempty"`
}

// RequirementList is the structured requirements shape with an items list.
type RequirementList struct {
	Items []string `json:"items"`
}

// Suggestion is a single improvement hint or observation for a résumé.
type Suggestion struct {
	Kind     string `json:"kind"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Section  string `json:"section,omitempty"`
}

// AnalysisResult is the outcome of matching a résumé against a job.
type AnalysisResult struct {
	Score           int          `json:"score"`
	MatchPercentage int          `json:"matchPercentage"`
	KeywordMatches  []string     `json:"keywordMatches"`
	MissingKeywords []string     `json:"missingKeywords"`
	Suggestions     []Suggestion `json:"suggestions"`
	Strengths       []string     `json:"strengths"`
}

// SectionFlags records which standard résumé sections and signals were detected.
type SectionFlags struct {
	Education                 bool `json:"education"`
	Experience                bool `json:"experience"`
	Skills                    bool `json:"skills"`
	Contact                   bool `json:"contact"`
	HasYears                  bool `json:"hasYears"`
	HasQuantifiedAchievements bool `json:"hasQuantifiedAchievements"`
}

func (f SectionFlags) sectionCount() int {
	n := 0
	for _, ok := range []bool{f.Education, f.Experience, f.Skills, f.Contact} {
		if ok {
			n++
		}
	}
	return n
}
