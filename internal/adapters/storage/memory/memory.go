// Package memory provides an in-process SnapshotMedium. Every Store sharing
// one Medium behaves like a browser tab sharing one origin's local storage.
package memory

import (
	"bytes"
	"context"
	"slices"
	"sync"

	"github.com/jsamuelsen11/go-storefront-state/internal/ports"
)

var _ ports.SnapshotMedium = (*Medium)(nil)

// Medium is a goroutine-safe in-memory key-value medium.
type Medium struct {
	// deliver serializes mutation and notification so handlers observe
	// events in write order.
	deliver sync.Mutex

	mu       sync.Mutex
	values   map[string][]byte
	watchers map[int]func(ports.StorageEvent)
	nextID   int
}

// New returns an empty medium.
func New() *Medium {
	return &Medium{
		values:   make(map[string][]byte),
		watchers: make(map[int]func(ports.StorageEvent)),
	}
}

func (m *Medium) Read(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return bytes.Clone(m.values[key]), nil
}

// Write stores value and notifies watchers when it differs from the stored
// value.
func (m *Medium) Write(_ context.Context, key string, value []byte, origin string) error {
	m.set(key, bytes.Clone(value), origin)
	return nil
}

func (m *Medium) Remove(_ context.Context, key, origin string) error {
	m.set(key, nil, origin)
	return nil
}

func (m *Medium) set(key string, value []byte, origin string) {
	m.deliver.Lock()
	defer m.deliver.Unlock()

	m.mu.Lock()
	old, existed := m.values[key]
	if value == nil {
		delete(m.values, key)
	} else {
		m.values[key] = value
	}
	handlers := m.handlers()
	m.mu.Unlock()

	if (value == nil && !existed) || (existed && value != nil && bytes.Equal(old, value)) {
		return
	}

	for _, h := range handlers {
		h(ports.StorageEvent{
			Key:      key,
			OldValue: bytes.Clone(old),
			NewValue: bytes.Clone(value),
			Origin:   origin,
		})
	}
}

// handlers returns the registered handlers in registration order. Callers
// hold m.mu.
func (m *Medium) handlers() []func(ports.StorageEvent) {
	ids := make([]int, 0, len(m.watchers))
	for id := range m.watchers {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	hs := make([]func(ports.StorageEvent), 0, len(ids))
	for _, id := range ids {
		hs = append(hs, m.watchers[id])
	}
	return hs
}

func (m *Medium) Watch(handler func(ports.StorageEvent)) (ports.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.watchers[id] = handler

	return &subscription{medium: m, id: id}, nil
}

type subscription struct {
	medium *Medium
	id     int
	once   sync.Once
}

func (s *subscription) Close() error {
	s.once.Do(func() {
		s.medium.mu.Lock()
		defer s.medium.mu.Unlock()
		delete(s.medium.watchers, s.id)
	})
	return nil
}
