package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestNothingDetected(t *testing.T) {
	missing := []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7"}
	suggestions, strengths := Suggest(missing, 10, SectionFlags{})

	kinds := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		require.NotEmpty(t, s.Message)
		kinds = append(kinds, s.Kind+"/"+s.Severity+"/"+s.Section)
	}
	assert.Equal(t, []string{
		"missing_keyword/high/",
		"content_improvement/high/",
		"format_issue/medium/education",
		"format_issue/high/experience",
		"format_issue/medium/skills",
		"format_issue/medium/",
		"content_improvement/medium/",
	}, kinds)
	assert.Empty(t, strengths)

	assert.True(t, strings.HasSuffix(suggestions[0].Message, "a1, a2, a3, a4, a5"))
	assert.NotContains(t, suggestions[0].Message, "a6")
}

func TestSuggestEverythingPresent(t *testing.T) {
	all := SectionFlags{Education: true, Experience: true, Skills: true, Contact: true, HasYears: true, HasQuantifiedAchievements: true}
	suggestions, strengths := Suggest(nil, 400, all)

	assert.Empty(t, suggestions)
	assert.Equal(t, []string{
		strengthLength,
		strengthEducation,
		strengthExperience,
		strengthSkills,
		strengthDates,
		strengthAchievement,
	}, strengths)
}

func TestSuggestTooLong(t *testing.T) {
	suggestions, strengths := Suggest(nil, 1001, SectionFlags{Education: true, Experience: true, Skills: true, HasYears: true, HasQuantifiedAchievements: true})
	require.Len(t, suggestions, 1)
	assert.Equal(t, KindContentImprovement, suggestions[0].Kind)
	assert.Equal(t, SeverityMedium, suggestions[0].Severity)
	assert.NotContains(t, strengths, strengthLength)
}
