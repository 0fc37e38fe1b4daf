package state

import (
	"fmt"
	"strings"

	"github.com/go-drift/hoisting/pkg/errors"
)

// Registry tracks the live stores of one presentation tree and carries their
// snapshots across reconstruction.
//
// The host calls SaveAll before tearing the tree down. When the rebuilt tree
// attaches a store with the same scope, the pending snapshot is restored into
// it and dropped.
type Registry struct {
	live      map[string]*Store
	pending   map[string]Bundle
	overrides map[string]Durability
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		live:    make(map[string]*Store),
		pending: make(map[string]Bundle),
	}
}

// SetOverrides replaces the per-value durability overrides. Keys are
// "scope/key". Overrides apply to stores attached afterwards.
func (r *Registry) SetOverrides(overrides map[string]Durability) {
	r.overrides = make(map[string]Durability, len(overrides))
	for k, v := range overrides {
		r.overrides[k] = v
	}
}

// Attach registers a store, applying durability overrides and restoring any
// pending snapshot for its scope. A store already attached under the same
// scope is replaced.
func (r *Registry) Attach(s *Store) {
	if prev, ok := r.live[s.scope]; ok && prev != s {
		errors.Report(&errors.HoistError{
			Op:   "state.Registry.Attach",
			Kind: errors.KindInit,
			Key:  s.scope,
			Err:  fmt.Errorf("scope %q attached twice", s.scope),
		})
	}
	prefix := s.scope + "/"
	for k, d := range r.overrides {
		if key, ok := strings.CutPrefix(k, prefix); ok {
			s.SetDurability(key, d)
		}
	}
	if b, ok := r.pending[s.scope]; ok {
		s.Restore(b)
		delete(r.pending, s.scope)
	}
	r.live[s.scope] = s
}

// Detach unregisters a store. It is a no-op if a different store now owns
// the scope.
func (r *Registry) Detach(s *Store) {
	if r.live[s.scope] == s {
		delete(r.live, s.scope)
	}
}

// Live returns the attached store for scope, or nil.
func (r *Registry) Live(scope string) *Store {
	return r.live[scope]
}

// SaveAll snapshots every live store into the pending set.
func (r *Registry) SaveAll() {
	for scope, s := range r.live {
		r.pending[scope] = s.Snapshot()
	}
}

// Pending returns the scopes with a snapshot waiting to be restored.
func (r *Registry) Pending() []string {
	out := make([]string, 0, len(r.pending))
	for scope := range r.pending {
		out = append(out, scope)
	}
	return out
}

// Clear drops all pending snapshots.
func (r *Registry) Clear() {
	clear(r.pending)
}

// Encode serializes the pending snapshots.
func (r *Registry) Encode() ([]byte, error) {
	return EncodeBundles(r.pending)
}

// Decode replaces the pending snapshots with data from Encode.
func (r *Registry) Decode(data []byte) error {
	bundles, err := DecodeBundles(data)
	if err != nil {
		errors.Report(&errors.HoistError{
			Op:   "state.Registry.Decode",
			Kind: errors.KindParsing,
			Err:  err,
		})
		return err
	}
	r.pending = bundles
	return nil
}
