package matching

import (
	"math"
	"strings"
)

// MatchOutcome splits keywords into those found in the text and those missing.
type MatchOutcome struct {
	Hits       []string
	Misses     []string
	Percentage int
}

// Match checks each keyword for substring containment in normalizedText.
// Containment is not word-boundary aware: "sql" matches inside "mysql".
func Match(normalizedText string, keywords []string) MatchOutcome {
	out := MatchOutcome{
		Hits:   make([]string, 0, len(keywords)),
		Misses: make([]string, 0, len(keywords)),
	}
	for _, kw := range keywords {
		if strings.Contains(normalizedText, kw) {
			out.Hits = append(out.Hits, kw)
		} else {
			out.Misses = append(out.Misses, kw)
		}
	}
	if len(keywords) > 0 {
		out.Percentage = int(math.Round(100 * float64(len(out.Hits)) / float64(len(keywords))))
	}
	return out
}
