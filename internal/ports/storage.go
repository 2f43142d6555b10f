package ports

import "context"

// StorageEvent reports a change of one key in a SnapshotMedium. A nil value
// means the key was absent before (OldValue) or was removed (NewValue).
type StorageEvent struct {
	Key      string
	OldValue []byte
	NewValue []byte
	// Origin is the tab id passed to Write or Remove by the writer.
	Origin string
}

// Subscription is a registered Watch handler. Close stops delivery; it is
// safe to call more than once.
type Subscription interface {
	Close() error
}

// SnapshotMedium is a key-value medium shared by every tab of a session.
// Writes made by one tab are delivered to the Watch handlers of all tabs,
// the writer included; receivers use Origin to recognize their own writes.
type SnapshotMedium interface {
	// Read returns the stored value, or nil when key is absent.
	Read(ctx context.Context, key string) ([]byte, error)

	// Write stores value under key on behalf of origin.
	Write(ctx context.Context, key string, value []byte, origin string) error

	// Remove deletes key on behalf of origin. Removing an absent key is a
	// no-op.
	Remove(ctx context.Context, key, origin string) error

	// Watch registers handler for changes. Handlers are called one event at
	// a time, in write order.
	Watch(handler func(StorageEvent)) (Subscription, error)
}
