package matching

import (
	"strings"
	"unicode/utf8"
)

// RelevantKeywords returns the deduplicated keywords a résumé is checked for:
// the general category, the job's category, then tokens from its requirements.
// Order is stable for a given job.
func (t *Taxonomy) RelevantKeywords(job JobDescriptor) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(kw string) {
		if _, ok := seen[kw]; ok {
			return
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}

	for _, kw := range t.byCategory[DefaultCategory] {
		add(kw)
	}
	category := job.Category
	if strings.TrimSpace(category) == "" {
		category = DefaultCategory
	}
	if keywords, ok := t.byCategory[categoryKey(category)]; ok {
		for _, kw := range keywords {
			add(kw)
		}
	}
	for _, req := range requirementList(job.Requirements) {
		for _, token := range strings.Fields(strings.ToLower(req)) {
			if utf8.RuneCountInString(token) < minRequirementToken {
				continue
			}
			add(token)
		}
	}
	return out
}

// RelevantKeywords resolves keywords against the default taxonomy.
func RelevantKeywords(job JobDescriptor) []string {
	return defaultTaxonomy.RelevantKeywords(job)
}

// requirementList flattens the accepted requirement shapes. Unknown shapes yield nil.
func requirementList(v any) []string {
	switch req := v.(type) {
	case nil:
		return nil
	case []string:
		return req
	case []any:
		out := make([]string, 0, len(req))
		for _, item := range req {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case RequirementList:
		return req.Items
	case *RequirementList:
		if req == nil {
			return nil
		}
		return req.Items
	case map[string]any:
		items, ok := req["items"]
		if !ok {
			return nil
		}
		switch items.(type) {
		case []string, []any:
			return requirementList(items)
		}
		return nil
	default:
		return nil
	}
}
