package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	all := SectionFlags{Education: true, Experience: true, Skills: true, Contact: true, HasYears: true, HasQuantifiedAchievements: true}
	cases := []struct {
		name  string
		pct   int
		flags SectionFlags
		words int
		want  int
	}{
		{name: "nothing", pct: 0, flags: SectionFlags{}, words: 0, want: 0},
		{name: "everything", pct: 100, flags: all, words: 500, want: 100},
		{name: "keywords_only", pct: 50, flags: SectionFlags{}, words: 10, want: 20},
		{name: "two_sections", pct: 0, flags: SectionFlags{Education: true, Skills: true}, words: 10, want: 15},
		{name: "length_only_lower_bound", pct: 0, flags: SectionFlags{}, words: 200, want: 10},
		{name: "length_only_upper_bound", pct: 0, flags: SectionFlags{}, words: 1000, want: 10},
		{name: "too_long", pct: 0, flags: SectionFlags{}, words: 1001, want: 0},
		{name: "achievements_only", pct: 0, flags: SectionFlags{HasQuantifiedAchievements: true}, words: 0, want: 10},
		{name: "sections_and_aux_max", pct: 0, flags: all, words: 300, want: 60},
		{name: "mixed", pct: 30, flags: SectionFlags{Experience: true, HasYears: true}, words: 250, want: 39},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Score(tc.pct, tc.flags, tc.words))
		})
	}
}
