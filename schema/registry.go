package schema

import (
	"sync"

	"github.com/signadot/otype-schema/debug"
)

type typeKey struct {
	identifier string
	variant    bool
}

// Registry is the keyed store of canonical composite nodes, one per
// (identifier, variant) pair. It is the only long-lived mutable state of
// a unification run: construct a fresh Registry per run. The mutex gives
// callers that parallelize document ingestion the single-writer
// discipline merges require.
type Registry struct {
	mu      sync.RWMutex
	entries map[typeKey]*Node
	names   map[typeKey]string
	order   []typeKey
}

func NewRegistry() *Registry {
	return &Registry{
		entries: map[typeKey]*Node{},
		names:   map[typeKey]string{},
	}
}

// RegisterType merges node into the canonical entry at (identifier,
// variant), inserting node as the new canonical entry on first sighting.
// Entries are mutated in place and never removed.
func (r *Registry) RegisterType(identifier string, variant bool, node *Node, opts ...MergeOpt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := typeKey{identifier: identifier, variant: variant}
	if cur, ok := r.entries[key]; ok {
		if debug.Registry() {
			debug.Logf("registry: merging sighting of %q (snippet=%v)", identifier, variant)
		}
		_, err := Merge(cur, node, opts...)
		return err
	}
	name := identifier
	if variant {
		name += "_snippet"
	}
	if debug.Registry() {
		debug.Logf("registry: new entry %q", name)
	}
	r.entries[key] = node
	r.names[key] = name
	r.order = append(r.order, key)
	return nil
}

// Type returns the canonical entry at (identifier, variant).
func (r *Registry) Type(identifier string, variant bool) (*Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.entries[typeKey{identifier: identifier, variant: variant}]
	return n, ok
}

// Name returns the assigned name of the entry at (identifier, variant).
func (r *Registry) Name(identifier string, variant bool) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.names[typeKey{identifier: identifier, variant: variant}]
	return name, ok
}

// Ref resolves an identifier to a type name, preferring the full
// (variant=false) entry over the snippet one when both exist.
func (r *Registry) Ref(identifier string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, variant := range []bool{false, true} {
		if name, ok := r.names[typeKey{identifier: identifier, variant: variant}]; ok {
			return name, true
		}
	}
	return "", false
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
