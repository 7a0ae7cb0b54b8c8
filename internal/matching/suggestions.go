package matching

import "strings"

const (
	msgMissingKeywords  = "Agrega palabras clave relevantes para el puesto: "
	msgTooShort         = "Tu CV es demasiado corto. Amplía la descripción de tu experiencia, formación y logros."
	msgTooLong          = "Tu CV es demasiado extenso. Intenta resumirlo y conservar solo la información más relevante."
	msgNoEducation      = "Incluye una sección de educación o formación académica."
	msgNoExperience     = "Incluye una sección de experiencia laboral con tus puestos y responsabilidades."
	msgNoSkills         = "Agrega una sección de habilidades o competencias."
	msgNoDates          = "No se detectaron fechas. Indica los periodos de tus estudios y empleos."
	msgNoAchievements   = "Agrega logros cuantificables, por ejemplo porcentajes o cifras de resultados."
	msgAnalysisFailed   = "No se pudo analizar el CV. Intenta nuevamente con otro archivo o pega el texto."
	strengthLength      = "Longitud del CV adecuada"
	strengthEducation   = "Incluye sección de educación"
	strengthExperience  = "Incluye experiencia laboral"
	strengthSkills      = "Incluye sección de habilidades"
	strengthDates       = "Incluye fechas en su trayectoria"
	strengthAchievement = "Incluye logros cuantificables"
)

// Suggest evaluates every rule in a fixed order and returns the triggered
// suggestions together with the strengths of the positive branches.
func Suggest(missing []string, wordCount int, flags SectionFlags) ([]Suggestion, []string) {
	suggestions := make([]Suggestion, 0, 8)
	strengths := make([]string, 0, 6)

	if len(missing) > 0 {
		listed := missing
		if len(listed) > maxListedSuggestions {
			listed = listed[:maxListedSuggestions]
		}
		suggestions = append(suggestions, Suggestion{
			Kind:     KindMissingKeyword,
			Message:  msgMissingKeywords + strings.Join(listed, ", "),
			Severity: SeverityHigh,
		})
	}

	switch {
	case wordCount < minWordCount:
		suggestions = append(suggestions, Suggestion{Kind: KindContentImprovement, Message: msgTooShort, Severity: SeverityHigh})
	case wordCount > maxWordCount:
		suggestions = append(suggestions, Suggestion{Kind: KindContentImprovement, Message: msgTooLong, Severity: SeverityMedium})
	default:
		strengths = append(strengths, strengthLength)
	}

	sections := []struct {
		present  bool
		section  string
		severity string
		message  string
		strength string
	}{
		{flags.Education, "education", SeverityMedium, msgNoEducation, strengthEducation},
		{flags.Experience, "experience", SeverityHigh, msgNoExperience, strengthExperience},
		{flags.Skills, "skills", SeverityMedium, msgNoSkills, strengthSkills},
	}
	for _, s := range sections {
		if s.present {
			strengths = append(strengths, s.strength)
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Kind:     KindFormatIssue,
			Message:  s.message,
			Severity: s.severity,
			Section:  s.section,
		})
	}

	if flags.HasYears {
		strengths = append(strengths, strengthDates)
	} else {
		suggestions = append(suggestions, Suggestion{Kind: KindFormatIssue, Message: msgNoDates, Severity: SeverityMedium})
	}

	if flags.HasQuantifiedAchievements {
		strengths = append(strengths, strengthAchievement)
	} else {
		suggestions = append(suggestions, Suggestion{Kind: KindContentImprovement, Message: msgNoAchievements, Severity: SeverityMedium})
	}

	return suggestions, strengths
}
