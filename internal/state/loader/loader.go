// Package loader implements the lifecycle of one asynchronous resource fetch
// as a plain value type, plus a keyed registry of such values.
//
// A slot moves NOT_LOADED -> LOADING -> SUCCESS | ERROR. A LOAD from SUCCESS or
// ERROR re-enters LOADING and keeps the last value. RESET returns to
// NOT_LOADED from anywhere. Completions (SUCCESS, FAIL) only apply while the
// slot is LOADING and only when they belong to the outstanding flight, so a
// completion that outlives a RESET or a newer LOAD is dropped.
package loader

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
)

// Phase is a loader command.
type Phase int

const (
	PhaseLoad Phase = iota + 1
	PhaseSuccess
	PhaseFail
	PhaseReset
)

func (p Phase) String() string {
	switch p {
	case PhaseLoad:
		return "LOAD"
	case PhaseSuccess:
		return "SUCCESS"
	case PhaseFail:
		return "FAIL"
	case PhaseReset:
		return "RESET"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Meta addresses a loader command to a slot.
type Meta struct {
	// Entity names the state slot, e.g. "cart" or "process".
	Entity string
	// ID is the registry key; empty for single-slot entities.
	ID    string
	Phase Phase
	Error *domain.ErrorPayload
	// Flight identifies the LOAD a completion answers. Zero means unstamped.
	Flight uint64
}

// Failure is the error slot of a State. On the wire it is false, true, or
// the error payload object.
type Failure struct {
	Failed  bool
	Payload *domain.ErrorPayload
}

// Fail builds a Failure carrying p.
func Fail(p *domain.ErrorPayload) Failure {
	return Failure{Failed: true, Payload: p}
}

func (f Failure) MarshalJSON() ([]byte, error) {
	if f.Payload != nil {
		return json.Marshal(f.Payload)
	}
	return json.Marshal(f.Failed)
}

func (f *Failure) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		*f = Failure{}
	case bytes.Equal(data, []byte("true")):
		*f = Failure{Failed: true}
	default:
		var p domain.ErrorPayload
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("loader error slot: %w", err)
		}
		*f = Fail(&p)
	}
	return nil
}

// State is one loader slot.
type State[T any] struct {
	Value   T       `json:"value"`
	Loading bool    `json:"loading"`
	Success bool    `json:"success"`
	Error   Failure `json:"error"`
	Flight  uint64  `json:"-"`
}

// NotLoaded reports whether the slot has never been loaded (or was reset).
func (s State[T]) NotLoaded() bool {
	return !s.Loading && !s.Success && !s.Error.Failed
}

// Failed reports whether the slot is in the ERROR phase.
func (s State[T]) Failed() bool {
	return s.Error.Failed
}

// Settle drops an outstanding LOAD. Used when a slot is restored from a
// snapshot written by another process whose flight can never complete here.
func (s State[T]) Settle() State[T] {
	s.Loading = false
	s.Flight = 0
	return s
}

// accepts reports whether a completion addressed by m may be applied.
func (s State[T]) accepts(m Meta) bool {
	if !s.Loading {
		return false
	}
	return m.Flight == 0 || m.Flight == s.Flight
}

// Reduce applies m to st. value is only read for PhaseSuccess.
func Reduce[T any](st State[T], m Meta, value T) State[T] {
	switch m.Phase {
	case PhaseLoad:
		if st.Loading {
			return st
		}
		return State[T]{Value: st.Value, Loading: true, Flight: m.Flight}
	case PhaseSuccess:
		if !st.accepts(m) {
			return st
		}
		return State[T]{Value: value, Success: true}
	case PhaseFail:
		if !st.accepts(m) {
			return st
		}
		return State[T]{Value: st.Value, Error: Fail(m.Error)}
	case PhaseReset:
		return State[T]{}
	default:
		return st
	}
}
