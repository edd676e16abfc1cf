package jsonschema

import (
	"os"
	"sync"

	"github.com/cockroachdb/errors"
)

// regKey identifies one compiled validator by the (authority, pointer)
// pair the registry keys on. Two independent compilations may only
// share an identifier if they share an authority.
type regKey struct {
	authority string
	pointer   string
}

// Registry is the process-wide (per-Compiler, in this port) mapping from
// (authority, pointer) to validator identifier. It records which schema
// texts have been loaded from disk, which (authority, pointer) pairs still
// need a compiled validator, and which have already been materialized.
//
// Generalized from a single compiler's own schemas/unresolvedRefs maps
// to an explicit authority/pointer keying so two independent
// compilations sharing an authority can share identifiers.
type Registry struct {
	mu sync.Mutex

	loaded      map[string][]byte // path -> schema text, idempotent load
	loadedOrder []string          // insertion order, for deterministic precache replay

	needed      map[regKey]struct{}
	neededOrder []regKey // preserves request order for deterministic drains

	materialized map[regKey]struct{}
	nodes        map[regKey]*Schema // (authority, pointer) -> node, populated by assignPointers
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		loaded:       make(map[string][]byte),
		needed:       make(map[regKey]struct{}),
		materialized: make(map[regKey]struct{}),
		nodes:        make(map[regKey]*Schema),
	}
}

// GetFile performs an idempotent load of path's contents. A second call
// for the same path returns the cached text without touching disk.
func (r *Registry) GetFile(path string) (text []byte, cached bool, err error) {
	r.mu.Lock()
	if data, ok := r.loaded[path]; ok {
		r.mu.Unlock()
		return data, true, nil
	}
	r.mu.Unlock()

	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, false, errors.Wrapf(err, "jsonschema: read schema file %q", path)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.loaded[path]; ok {
		// Another goroutine raced us; keep whichever was recorded first.
		return existing, true, nil
	}
	r.loaded[path] = data
	r.loadedOrder = append(r.loadedOrder, path)
	return data, false, nil
}

// Precache inserts path's contents into the registry ahead of time, so a
// later `$ref` by path does not re-read the file.
func (r *Registry) Precache(path string) error {
	_, _, err := r.GetFile(path)
	return err
}

// Request returns the stable validator identifier for (authority, pointer).
// If that pair is not yet materialized, it is recorded in `needed` and the
// identifier is returned anyway — a forward reference the caller may wire
// up immediately, trusting the fixpoint compilation loop to produce a
// matching validator before the program runs.
func (r *Registry) Request(authority string, ptr Pointer) string {
	key := regKey{authority: authority, pointer: ptr.ToRFC6901()}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.materialized[key]; !ok {
		if _, pending := r.needed[key]; !pending {
			r.needed[key] = struct{}{}
			r.neededOrder = append(r.neededOrder, key)
		}
	}
	return ptr.ToFunID(authority)
}

// MarkMaterialized records that (authority, pointer) now has a compiled
// validator, satisfying invariant 1 (every identifier compiled at most
// once) together with Needed's dedup.
func (r *Registry) MarkMaterialized(authority string, ptr Pointer) {
	key := regKey{authority: authority, pointer: ptr.ToRFC6901()}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.materialized[key] = struct{}{}
	delete(r.needed, key)
}

// IsMaterialized reports whether (authority, pointer) already has a
// compiled validator.
func (r *Registry) IsMaterialized(authority string, ptr Pointer) bool {
	key := regKey{authority: authority, pointer: ptr.ToRFC6901()}

	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.materialized[key]
	return ok
}

// IndexNode records which Schema node lives at (authority, pointer), so a
// later Request for that key — discovered from a $ref elsewhere, possibly
// in a different authority's document — can be resolved to a concrete
// node by the fixpoint loop in Compiler.Compile. Populated by
// assignPointers as it walks a compiled document.
func (r *Registry) IndexNode(authority string, ptr Pointer, node *Schema) {
	key := regKey{authority: authority, pointer: ptr.ToRFC6901()}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.nodes == nil {
		r.nodes = make(map[regKey]*Schema)
	}
	r.nodes[key] = node
}

// Lookup returns the Schema node indexed at (authority, pointer), if any.
func (r *Registry) Lookup(authority string, ptr Pointer) (*Schema, bool) {
	key := regKey{authority: authority, pointer: ptr.ToRFC6901()}

	r.mu.Lock()
	defer r.mu.Unlock()
	node, ok := r.nodes[key]
	return node, ok
}

// Needed drains and returns the snapshot of pending (authority, pointer)
// requests made since the last drain, in request order. The top-level
// compiler calls this in a loop — compiling each pending entry may itself
// call Request and discover more work — until the snapshot comes back
// empty (the fixpoint of §4.7 step 4).
func (r *Registry) Needed() []regKey {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.neededOrder) == 0 {
		return nil
	}
	snapshot := make([]regKey, 0, len(r.neededOrder))
	for _, key := range r.neededOrder {
		if _, stillPending := r.needed[key]; stillPending {
			snapshot = append(snapshot, key)
		}
	}
	r.neededOrder = nil
	return snapshot
}
