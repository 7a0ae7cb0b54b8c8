package matching

import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultLocale is the locale used when none or an unknown one is requested.
const DefaultLocale = "es"

//go:embed rules/sections.yaml
var sectionsYAML []byte

var defaultSectionRules = mustLoadSectionRules(sectionsYAML)

// SectionRules holds the compiled detection patterns for one locale.
type SectionRules struct {
	Education    *regexp.Regexp
	Experience   *regexp.Regexp
	Skills       *regexp.Regexp
	Contact      *regexp.Regexp
	Years        *regexp.Regexp
	Achievements *regexp.Regexp
}

type sectionPatterns struct {
	Education    []string `yaml:"education"`
	Experience   []string `yaml:"experience"`
	Skills       []string `yaml:"skills"`
	Contact      []string `yaml:"contact"`
	Years        []string `yaml:"years"`
	Achievements []string `yaml:"achievements"`
}

// LoadSectionRules parses a locale-keyed YAML rule table.
func LoadSectionRules(data []byte) (map[string]*SectionRules, error) {
	var raw map[string]sectionPatterns
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse section rules: %w", err)
	}
	out := make(map[string]*SectionRules, len(raw))
	for locale, p := range raw {
		rules, err := compileSectionRules(p)
		if err != nil {
			return nil, fmt.Errorf("section rules %s: %w", locale, err)
		}
		out[strings.ToLower(locale)] = rules
	}
	return out, nil
}

func mustLoadSectionRules(data []byte) map[string]*SectionRules {
	rules, err := LoadSectionRules(data)
	if err != nil {
		panic(err)
	}
	if _, ok := rules[DefaultLocale]; !ok {
		panic("section rules: missing default locale " + DefaultLocale)
	}
	return rules
}

func compileSectionRules(p sectionPatterns) (*SectionRules, error) {
	var r SectionRules
	fields := []struct {
		name     string
		patterns []string
		dst      **regexp.Regexp
	}{
		{"education", p.Education, &r.Education},
		{"experience", p.Experience, &r.Experience},
		{"skills", p.Skills, &r.Skills},
		{"contact", p.Contact, &r.Contact},
		{"years", p.Years, &r.Years},
		{"achievements", p.Achievements, &r.Achievements},
	}
	for _, f := range fields {
		if len(f.patterns) == 0 {
			return nil, fmt.Errorf("%s: no patterns", f.name)
		}
		re, err := regexp.Compile(`(?i)(?:` + strings.Join(f.patterns, "|") + `)`)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = re
	}
	return &r, nil
}

// RulesForLocale returns the built-in rules for locale, falling back to DefaultLocale.
func RulesForLocale(locale string) *SectionRules {
	if rules, ok := defaultSectionRules[strings.ToLower(strings.TrimSpace(locale))]; ok {
		return rules
	}
	return defaultSectionRules[DefaultLocale]
}

// Locales lists the built-in locales.
func Locales() []string {
	out := make([]string, 0, len(defaultSectionRules))
	for locale := range defaultSectionRules {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Detect runs every section predicate over the raw résumé text.
func (r *SectionRules) Detect(rawText string) SectionFlags {
	return SectionFlags{
		Education:                 r.Education.MatchString(rawText),
		Experience:                r.Experience.MatchString(rawText),
		Skills:                    r.Skills.MatchString(rawText),
		Contact:                   r.Contact.MatchString(rawText),
		HasYears:                  r.Years.MatchString(rawText),
		HasQuantifiedAchievements: r.Achievements.MatchString(rawText),
	}
}

// DetectSections applies the default locale rules to rawText.
func DetectSections(rawText string) SectionFlags {
	return defaultSectionRules[DefaultLocale].Detect(rawText)
}
