package loader

import (
	"encoding/json"
	"maps"
	"slices"
)

// Registry is a keyed collection of loader slots. It is a value: Apply
// returns a new Registry and never mutates the receiver.
type Registry[T any] struct {
	entries map[string]State[T]
}

// Get returns the slot for key, NOT_LOADED when absent.
func (r Registry[T]) Get(key string) State[T] {
	return r.entries[key]
}

// Has reports whether key has been created.
func (r Registry[T]) Has(key string) bool {
	_, ok := r.entries[key]
	return ok
}

func (r Registry[T]) Len() int {
	return len(r.entries)
}

// Keys returns the created keys in sorted order.
func (r Registry[T]) Keys() []string {
	return slices.Sorted(maps.Keys(r.entries))
}

// Apply routes m to the slot m.ID. Keys are created by the first accepted
// LOAD and removed only by RESET. Rejected completions leave r untouched.
func (r Registry[T]) Apply(m Meta, value T) Registry[T] {
	cur, ok := r.entries[m.ID]

	switch m.Phase {
	case PhaseReset:
		if !ok {
			return r
		}
		next := maps.Clone(r.entries)
		delete(next, m.ID)
		if len(next) == 0 {
			next = nil
		}
		return Registry[T]{entries: next}
	case PhaseSuccess, PhaseFail:
		if !cur.accepts(m) {
			return r
		}
	case PhaseLoad:
		if cur.Loading {
			return r
		}
	default:
		return r
	}

	next := maps.Clone(r.entries)
	if next == nil {
		next = make(map[string]State[T], 1)
	}
	next[m.ID] = Reduce(cur, m, value)
	return Registry[T]{entries: next}
}

// DeleteFunc resets every slot whose key del reports true.
func (r Registry[T]) DeleteFunc(del func(key string) bool) Registry[T] {
	next := maps.Clone(r.entries)
	maps.DeleteFunc(next, func(key string, _ State[T]) bool { return del(key) })
	if len(next) == len(r.entries) {
		return r
	}
	if len(next) == 0 {
		next = nil
	}
	return Registry[T]{entries: next}
}

// Settle settles every slot, see State.Settle.
func (r Registry[T]) Settle() Registry[T] {
	if len(r.entries) == 0 {
		return r
	}
	next := make(map[string]State[T], len(r.entries))
	for k, v := range r.entries {
		next[k] = v.Settle()
	}
	return Registry[T]{entries: next}
}

func (r Registry[T]) MarshalJSON() ([]byte, error) {
	if r.entries == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.entries)
}

func (r *Registry[T]) UnmarshalJSON(data []byte) error {
	var entries map[string]State[T]
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	if len(entries) == 0 {
		entries = nil
	}
	r.entries = entries
	return nil
}
