// registry.go holds the mutable set of tag definitions an Engine is built from.
package bbcode

import (
	"fmt"
	"sort"
	"strings"
)

// Registry maps tag names to their descriptors.
// Adding a new tag = registering one Tag here.
//
// A Registry is not safe for concurrent mutation. Engines take a snapshot of
// it in New, so changing a registry afterwards never affects a built Engine.
type Registry struct {
	tags    map[string]*Tag   // lowercase canonical name -> descriptor
	aliases map[string]string // lowercase alias -> lowercase target name
}

// NewRegistry returns a registry containing tags.
func NewRegistry(tags ...*Tag) *Registry {
	r := &Registry{
		tags:    make(map[string]*Tag),
		aliases: make(map[string]string),
	}
	for _, t := range tags {
		r.Register(t)
	}
	return r
}

// DefaultRegistry returns a registry holding DefaultTags and the "link" alias
// for "url".
func DefaultRegistry() *Registry {
	r := NewRegistry(DefaultTags()...)
	// Cannot fail: "url" is a default tag.
	_ = r.Alias("link", "url")
	return r
}

// Register adds t, replacing any tag or alias previously registered under
// the same name.
func (r *Registry) Register(t *Tag) {
	if t == nil {
		return
	}
	key := strings.ToLower(t.Name)
	delete(r.aliases, key)
	r.tags[key] = t
}

// Alias makes alias resolve to the same descriptor as target. The target must
// already be registered as a tag (aliases of aliases are not allowed).
func (r *Registry) Alias(alias, target string) error {
	a := strings.ToLower(alias)
	t := strings.ToLower(target)
	if !isValidTagName(a) {
		return fmt.Errorf("%w: invalid alias name %q", ErrInvalidRegistry, alias)
	}
	if _, ok := r.tags[t]; !ok {
		return fmt.Errorf("%w: alias %q targets unknown tag %q", ErrInvalidRegistry, alias, target)
	}
	delete(r.tags, a)
	r.aliases[a] = t
	return nil
}

// Lookup returns the descriptor for name, resolving aliases.
func (r *Registry) Lookup(name string) (*Tag, bool) {
	key := strings.ToLower(name)
	if target, ok := r.aliases[key]; ok {
		key = target
	}
	t, ok := r.tags[key]
	return t, ok
}

// AliasOf returns the target of alias, or ok=false if name is not an alias.
func (r *Registry) AliasOf(name string) (string, bool) {
	target, ok := r.aliases[strings.ToLower(name)]
	return target, ok
}

// Names returns every registered tag and alias name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tags)+len(r.aliases))
	for name := range r.tags {
		names = append(names, name)
	}
	for name := range r.aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a shallow copy: the maps are new, the descriptors are shared.
func (r *Registry) Clone() *Registry {
	c := &Registry{
		tags:    make(map[string]*Tag, len(r.tags)),
		aliases: make(map[string]string, len(r.aliases)),
	}
	for k, v := range r.tags {
		c.tags[k] = v
	}
	for k, v := range r.aliases {
		c.aliases[k] = v
	}
	return c
}

// Validate checks tag names, renderers, alias targets and that every name
// used in a restriction list is registered (or is RootTag).
func (r *Registry) Validate() error {
	for _, key := range r.Names() {
		if target, ok := r.aliases[key]; ok {
			if _, ok := r.tags[target]; !ok {
				return fmt.Errorf("%w: alias %q targets unknown tag %q", ErrInvalidRegistry, key, target)
			}
			continue
		}

		t := r.tags[key]
		if !isValidTagName(t.Name) {
			return fmt.Errorf("%w: invalid tag name %q", ErrInvalidRegistry, t.Name)
		}
		if t.Renderer == nil {
			return fmt.Errorf("%w: tag %q has no renderer", ErrInvalidRegistry, t.Name)
		}
		for _, child := range t.AllowedChildren {
			if !r.known(child) {
				return fmt.Errorf("%w: tag %q allows unknown child %q", ErrInvalidRegistry, t.Name, child)
			}
		}
		for _, parent := range t.AllowedParents {
			if !r.known(parent) {
				return fmt.Errorf("%w: tag %q allows unknown parent %q", ErrInvalidRegistry, t.Name, parent)
			}
		}
	}
	return nil
}

func (r *Registry) known(name string) bool {
	if strings.EqualFold(name, RootTag) {
		return true
	}
	_, ok := r.Lookup(name)
	return ok
}
