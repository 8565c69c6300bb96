// lookup.go compiles a registry snapshot into the read-only tables the
// tokenizer, constraint checker and renderer share.
package bbcode

import "strings"

// tagTable is the compiled, immutable form of a Registry.
type tagTable struct {
	tags      map[string]*Tag   // lowercase name or alias -> descriptor copy
	canonical map[string]string // lowercase name or alias -> lowercase canonical name
}

// compile validates r and copies its descriptors so later changes to the
// registry or to the Tag values cannot leak into a built Engine. Aliases end
// up pointing at the same copy as their target.
func compile(r *Registry) (*tagTable, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	table := &tagTable{
		tags:      make(map[string]*Tag, len(r.tags)+len(r.aliases)),
		canonical: make(map[string]string, len(r.tags)+len(r.aliases)),
	}

	for key, t := range r.tags {
		cp := *t
		cp.Name = key
		table.tags[key] = &cp
		table.canonical[key] = key
	}
	for alias, target := range r.aliases {
		table.tags[alias] = table.tags[target]
		table.canonical[alias] = target
	}

	// Restrictions are compared by canonical name so an alias satisfies
	// a restriction written against its target and vice versa.
	for key, t := range table.tags {
		if table.canonical[key] != key {
			continue
		}
		t.AllowedChildren = table.canonicalList(t.AllowedChildren)
		t.AllowedParents = table.canonicalList(t.AllowedParents)
	}

	return table, nil
}

func (tt *tagTable) canonicalList(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, tt.canonicalName(n))
	}
	return out
}

// lookup returns the descriptor registered under name (case-insensitive).
func (tt *tagTable) lookup(name string) (*Tag, bool) {
	t, ok := tt.tags[strings.ToLower(name)]
	return t, ok
}

// canonicalName resolves aliases; unknown names are returned lowercased.
func (tt *tagTable) canonicalName(name string) string {
	key := strings.ToLower(name)
	if c, ok := tt.canonical[key]; ok {
		return c
	}
	return key
}

// isNoParse reports whether name is registered with NoParse set.
func (tt *tagTable) isNoParse(name string) bool {
	t, ok := tt.lookup(name)
	return ok && t.NoParse
}
