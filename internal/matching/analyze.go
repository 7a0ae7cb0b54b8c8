// Package matching scores a résumé against a job using keyword matching,
// section detection and a fixed suggestion rule table. Every function is
// pure and safe for concurrent use.
package matching

import "fmt"

// Analyzer bundles a taxonomy with the section rules of one locale.
type Analyzer struct {
	Taxonomy *Taxonomy
	Rules    *SectionRules
}

// NewAnalyzer returns an Analyzer over the default taxonomy and the locale's built-in rules.
func NewAnalyzer(locale string) Analyzer {
	return Analyzer{Taxonomy: defaultTaxonomy, Rules: RulesForLocale(locale)}
}

// AnalyzeResume analyzes text against job with the default taxonomy and locale.
func AnalyzeResume(resumeText string, job JobDescriptor) AnalysisResult {
	return NewAnalyzer(DefaultLocale).Analyze(resumeText, job)
}

// Analyze never fails: on an internal error it returns FailedResult.
func (a Analyzer) Analyze(resumeText string, job JobDescriptor) AnalysisResult {
	result, _ := a.TryAnalyze(resumeText, job)
	return result
}

// TryAnalyze is Analyze for callers that want to log the failure. When err is
// non-nil the returned result is FailedResult and is still safe to render.
func (a Analyzer) TryAnalyze(resumeText string, job JobDescriptor) (result AnalysisResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			result = FailedResult()
			err = fmt.Errorf("analyze resume: %v", rec)
		}
	}()
	return a.analyze(resumeText, job), nil
}

func (a Analyzer) analyze(resumeText string, job JobDescriptor) AnalysisResult {
	normalized := Normalize(resumeText)
	keywords := a.Taxonomy.RelevantKeywords(job)
	outcome := Match(normalized, keywords)
	flags := a.Rules.Detect(resumeText)
	words := WordCount(resumeText)

	missing := outcome.Misses
	if len(missing) > maxMissingKeywords {
		missing = missing[:maxMissingKeywords]
	}
	suggestions, strengths := Suggest(outcome.Misses, words, flags)

	return AnalysisResult{
		Score:           Score(outcome.Percentage, flags, words),
		MatchPercentage: outcome.Percentage,
		KeywordMatches:  outcome.Hits,
		MissingKeywords: missing,
		Suggestions:     suggestions,
		Strengths:       strengths,
	}
}

// FailedResult is the degenerate result returned when a résumé cannot be analyzed.
func FailedResult() AnalysisResult {
	return AnalysisResult{
		KeywordMatches:  []string{},
		MissingKeywords: []string{},
		Suggestions: []Suggestion{{
			Kind:     KindFormatIssue,
			Message:  msgAnalysisFailed,
			Severity: SeverityHigh,
		}},
		Strengths: []string{},
	}
}
