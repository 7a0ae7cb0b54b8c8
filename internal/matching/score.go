package matching

import "math"

const (
	keywordWeight = 0.4
	sectionWeight = 0.3
	auxWeight     = 0.3

	auxLengthPoints   = 33
	auxYearsPoints    = 33
	auxAchievedPoints = 34
)

// Score combines keyword match, section completeness and auxiliary signals into 0–100.
func Score(matchPct int, flags SectionFlags, wordCount int) int {
	keyword := float64(matchPct) * keywordWeight
	sections := float64(flags.sectionCount()) / 4 * 100 * sectionWeight

	aux := 0
	if wordCount >= minWordCount && wordCount <= maxWordCount {
		aux += auxLengthPoints
	}
	if flags.HasYears {
		aux += auxYearsPoints
	}
	if flags.HasQuantifiedAchievements {
		aux += auxAchievedPoints
	}

	score := int(math.Round(keyword + sections + float64(aux)*auxWeight))
	return min(max(score, 0), 100)
}
