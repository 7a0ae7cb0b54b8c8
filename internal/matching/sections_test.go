package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSections(t *testing.T) {
	cases := []struct {
		name string
		text string
		want SectionFlags
	}{
		{name: "empty", text: "", want: SectionFlags{}},
		{name: "education_accent", text: "EDUCACIÓN\nUniversidad de Chile", want: SectionFlags{Education: true}},
		{name: "education_plain", text: "educacion secundaria", want: SectionFlags{Education: true}},
		{name: "formacion", text: "Formación Académica", want: SectionFlags{Education: true}},
		{name: "experience", text: "Trayectoria Profesional", want: SectionFlags{Experience: true}},
		{name: "skills_english_word", text: "Soft skills", want: SectionFlags{Skills: true}},
		{name: "contact", text: "Teléfono: 555-1234", want: SectionFlags{Contact: true}},
		{name: "years", text: "Desde 1998 hasta hoy", want: SectionFlags{HasYears: true}},
		{name: "year_inside_number", text: "Código 120205", want: SectionFlags{}},
		{name: "percent", text: "ventas +35%", want: SectionFlags{HasQuantifiedAchievements: true}},
		{name: "verb_accent", text: "Logré cerrar acuerdos", want: SectionFlags{HasQuantifiedAchievements: true}},
		{name: "verb_plain", text: "reduje costos", want: SectionFlags{HasQuantifiedAchievements: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectSections(tc.text))
		})
	}
}

func TestRulesForLocaleFallsBack(t *testing.T) {
	assert.Same(t, RulesForLocale("es"), RulesForLocale("xx"))
	assert.Same(t, RulesForLocale("es"), RulesForLocale(""))
	assert.NotSame(t, RulesForLocale("es"), RulesForLocale("EN"))
	assert.Equal(t, []string{"en", "es"}, Locales())
}

func TestEnglishRules(t *testing.T) {
	flags := RulesForLocale("en").Detect("Work History 2019\nEducation\nSkills\nPhone\nIncreased revenue")
	assert.Equal(t, SectionFlags{
		Education:                 true,
		Experience:                true,
		Skills:                    true,
		Contact:                   true,
		HasYears:                  true,
		HasQuantifiedAchievements: true,
	}, flags)
}

func TestLoadSectionRulesRejectsBadPattern(t *testing.T) {
	_, err := LoadSectionRules([]byte("es:\n  education: ['(']\n  experience: [a]\n  skills: [a]\n  contact: [a]\n  years: [a]\n  achievements: [a]\n"))
	require.Error(t, err)

	_, err = LoadSectionRules([]byte("es:\n  education: [a]\n"))
	require.Error(t, err)
}
