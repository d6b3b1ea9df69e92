package catalog

import "strings"

// Mapping ties a normalized software key to a catalog identifier.
type Mapping struct {
	Key string
	ID  string
}

// Resolver maps normalized names to identifiers of one catalog. Its table is
// never modified after construction, so it is safe for concurrent use.
type Resolver struct {
	table []Mapping
	exact map[string]string
}

// NewResolver builds a resolver over table. Table order decides which entry
// wins when more than one key overlaps the name; on duplicate keys the first
// entry is kept.
func NewResolver(table []Mapping) *Resolver {
	r := &Resolver{
		table: make([]Mapping, len(table)),
		exact: make(map[string]string, len(table)),
	}
	copy(r.table, table)
	for _, m := range table {
		if _, dup := r.exact[m.Key]; !dup {
			r.exact[m.Key] = m.ID
		}
	}
	return r
}

// Resolve returns the identifier for a normalized name. An exact key match
// wins; otherwise the first entry whose key contains the name, or is
// contained in it, is used.
func (r *Resolver) Resolve(normalizedName string) (string, bool) {
	name := strings.TrimSpace(normalizedName)
	if name == "" {
		return "", false
	}
	if id, ok := r.exact[name]; ok {
		return id, true
	}
	for _, m := range r.table {
		if strings.Contains(name, m.Key) || strings.Contains(m.Key, name) {
			return m.ID, true
		}
	}
	return "", false
}

// Keys returns the mapped keys in table order.
func (r *Resolver) Keys() []string {
	keys := make([]string, len(r.table))
	for i, m := range r.table {
		keys[i] = m.Key
	}
	return keys
}

// Len reports the number of mappings.
func (r *Resolver) Len() int {
	return len(r.table)
}
