package matching

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed rules/taxonomy.yaml
var taxonomyYAML []byte

var defaultTaxonomy = mustLoadTaxonomy(taxonomyYAML)

// Category is a named keyword group of the taxonomy.
type Category struct {
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Taxonomy maps lower-case category names to ordered keyword lists.
// A Taxonomy is read-only once built and safe for concurrent use.
type Taxonomy struct {
	order      []string
	byCategory map[string][]string
}

type taxonomyFile struct {
	Categories []Category `yaml:"categories"`
}

// DefaultTaxonomy returns the built-in taxonomy.
func DefaultTaxonomy() *Taxonomy {
	return defaultTaxonomy
}

// LoadTaxonomy parses a YAML taxonomy. The "general" category is required.
func LoadTaxonomy(data []byte) (*Taxonomy, error) {
	var file taxonomyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse taxonomy: %w", err)
	}
	t := &Taxonomy{byCategory: make(map[string][]string, len(file.Categories))}
	for _, c := range file.Categories {
		name := categoryKey(c.Name)
		if name == "" {
			return nil, errors.New("parse taxonomy: category without name")
		}
		if _, dup := t.byCategory[name]; dup {
			return nil, fmt.Errorf("parse taxonomy: duplicate category %q", name)
		}
		keywords := make([]string, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
				keywords = append(keywords, kw)
			}
		}
		t.order = append(t.order, name)
		t.byCategory[name] = keywords
	}
	if _, ok := t.byCategory[DefaultCategory]; !ok {
		return nil, errors.New("parse taxonomy: missing general category")
	}
	return t, nil
}

func mustLoadTaxonomy(data []byte) *Taxonomy {
	t, err := LoadTaxonomy(data)
	if err != nil {
		panic(err)
	}
	return t
}

// Keywords returns a copy of the category's keywords and whether the category exists.
// Lookup is case- and accent-insensitive.
func (t *Taxonomy) Keywords(category string) ([]string, bool) {
	keywords, ok := t.byCategory[categoryKey(category)]
	if !ok {
		return nil, false
	}
	return append([]string(nil), keywords...), true
}

// Categories returns every category in declaration order.
func (t *Taxonomy) Categories() []Category {
	out := make([]Category, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, Category{Name: name, Keywords: append([]string(nil), t.byCategory[name]...)})
	}
	return out
}

// categoryKey folds case and accents, so "Tecnología" and "tecnologia" name the same category.
func categoryKey(name string) string {
	return strings.TrimSpace(Normalize(name))
}
