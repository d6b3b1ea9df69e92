package catalog

import (
	"github.com/sahilm/fuzzy"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/normalize"
)

// Suggestion is a mapped key that resembles a software name.
type Suggestion struct {
	Key   string `json:"key"`
	Score int    `json:"score"`
}

// Suggest returns up to limit keys known to any registered catalog that
// fuzzily match name, best first. It helps extend the mapping tables for
// names that resolve nowhere.
func (r *Registry) Suggest(name string, limit int) []Suggestion {
	pattern := normalize.Normalize(name)
	if pattern == "" {
		return nil
	}

	seen := make(map[string]bool)
	var keys []string
	for _, k := range normalize.Keys() {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for _, c := range r.All() {
		kl, ok := c.(interface{ Keys() []string })
		if !ok {
			continue
		}
		for _, k := range kl.Keys() {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}

	matches := fuzzy.Find(pattern, keys)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]Suggestion, len(matches))
	for i, m := range matches {
		out[i] = Suggestion{Key: m.Str, Score: m.Score}
	}
	return out
}
