// Package normalize canonicalizes free-text software names into the keys
// used by the alias and catalog mapping tables.
package normalize

import (
	"regexp"
	"strings"
)

var (
	invalidChars = regexp.MustCompile(`[^\w\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
	stopwordRe   = compileStopwords(stopwords)

	// aliasIndex holds the alias table with every name passed through clean
	// so that matching compares like with like.
	aliasIndex = buildAliasIndex(aliases)
)

type aliasEntry struct {
	key   string
	names []string
}

func compileStopwords(words []string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

func buildAliasIndex(table []Alias) []aliasEntry {
	index := make([]aliasEntry, 0, len(table))
	for _, a := range table {
		entry := aliasEntry{key: a.Key}
		seen := make(map[string]struct{})
		for _, n := range append([]string{a.Key}, a.Names...) {
			c := clean(n)
			if c == "" {
				continue
			}
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			entry.names = append(entry.names, c)
		}
		index = append(index, entry)
	}
	return index
}

// clean lower-cases the name, drops punctuation, removes stopwords and
// collapses whitespace. It does not apply aliases.
func clean(raw string) string {
	s := strings.ToLower(raw)
	s = invalidChars.ReplaceAllString(s, "")
	s = stopwordRe.ReplaceAllString(s, " ")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.Trim(s, " -")
}

// Normalize returns the canonical lookup key for a software name.
//
// An exact alias match wins over a containment match, and within each pass
// the alias table is scanned in declaration order. Names that match no
// alias are returned in their cleaned form.
func Normalize(raw string) string {
	cleaned := clean(raw)
	if cleaned == "" {
		return ""
	}

	for _, entry := range aliasIndex {
		for _, name := range entry.names {
			if cleaned == name {
				return entry.key
			}
		}
	}

	padded := " " + cleaned + " "
	for _, entry := range aliasIndex {
		for _, name := range entry.names {
			if strings.Contains(padded, " "+name+" ") {
				return entry.key
			}
		}
	}

	return cleaned
}

// Keys returns the canonical keys of the alias table in declaration order.
func Keys() []string {
	keys := make([]string, len(aliases))
	for i, a := range aliases {
		keys[i] = a.Key
	}
	return keys
}
