// Package bolt provides a SnapshotMedium backed by a bbolt file shared by
// several processes. Each process plays the part of one tab: writes are
// appended to a change log inside the file, and every Medium watching the
// file replays new log entries to its handlers.
//
// The database is opened per operation and closed right after, because bbolt
// holds an exclusive file lock for as long as a writer has it open.
package bolt

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	bolt "go.etcd.io/bbolt"

	"github.com/jsamuelsen11/go-storefront-state/internal/ports"
)

var (
	_ ports.SnapshotMedium = (*Medium)(nil)
	_ ports.HealthChecker  = (*Medium)(nil)
)

// Bucket names
var (
	bucketValues = []byte("values")
	bucketEvents = []byte("events")
)

const (
	defaultOpenTimeout  = time.Second
	defaultPollInterval = 500 * time.Millisecond
	defaultLogSize      = 256
)

// ErrClosed is returned by Watch after Close.
var ErrClosed = errors.New("medium closed")

// logEntry is one change in the event log.
type logEntry struct {
	Key      string `json:"key"`
	OldValue []byte `json:"old,omitempty"`
	NewValue []byte `json:"new,omitempty"`
	Origin   string `json:"origin"`
}

// Option configures a Medium.
type Option func(*Medium)

// WithOpenTimeout bounds how long an operation waits for the file lock.
func WithOpenTimeout(d time.Duration) Option {
	return func(m *Medium) { m.timeout = d }
}

// WithPollInterval sets how often the log is checked when no file
// notification arrives. Zero disables polling.
func WithPollInterval(d time.Duration) Option {
	return func(m *Medium) { m.poll = d }
}

// WithLogSize sets how many change log entries are kept.
func WithLogSize(n int) Option {
	return func(m *Medium) { m.logSize = n }
}

func WithLogger(logger *slog.Logger) Option {
	return func(m *Medium) { m.logger = logger }
}

// Medium is a SnapshotMedium stored in a bbolt file.
type Medium struct {
	path    string
	timeout time.Duration
	poll    time.Duration
	logSize int
	logger  *slog.Logger

	mu       sync.Mutex
	watchers map[int]func(ports.StorageEvent)
	nextID   int
	running  bool
	closed   bool
	stop     chan struct{}
	done     chan struct{}

	// pump serializes log replay so handlers see events in log order.
	pump    sync.Mutex
	lastSeq uint64
}

// Open prepares the file at path and returns a Medium positioned at the end
// of the change log: watchers only see changes made after Open.
func Open(path string, opts ...Option) (*Medium, error) {
	m := &Medium{
		path:     path,
		timeout:  defaultOpenTimeout,
		poll:     defaultPollInterval,
		logSize:  defaultLogSize,
		logger:   slog.Default(),
		watchers: make(map[int]func(ports.StorageEvent)),
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating storage dir: %w", err)
	}

	err := m.update(func(tx *bolt.Tx) error {
		for _, b := range [][]byte{bucketValues, bucketEvents} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return err
			}
		}
		m.lastSeq = tx.Bucket(bucketEvents).Sequence()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Medium) open(readOnly bool) (*bolt.DB, error) {
	db, err := bolt.Open(m.path, 0o600, &bolt.Options{Timeout: m.timeout, ReadOnly: readOnly})
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", m.path, err)
	}
	return db, nil
}

func (m *Medium) update(fn func(*bolt.Tx) error) error {
	db, err := m.open(false)
	if err != nil {
		return err
	}
	return errors.Join(db.Update(fn), db.Close())
}

func (m *Medium) view(fn func(*bolt.Tx) error) error {
	db, err := m.open(true)
	if err != nil {
		return err
	}
	return errors.Join(db.View(fn), db.Close())
}

// Name implements ports.HealthChecker.
func (m *Medium) Name() string { return "snapshot-store" }

// HealthCheck reports whether the file can be opened and its buckets exist.
func (m *Medium) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.view(func(tx *bolt.Tx) error {
		for _, b := range [][]byte{bucketValues, bucketEvents} {
			if tx.Bucket(b) == nil {
				return fmt.Errorf("bucket %q missing", b)
			}
		}
		return nil
	})
}

func (m *Medium) Read(_ context.Context, key string) ([]byte, error) {
	var value []byte
	err := m.view(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketValues).Get([]byte(key)); v != nil {
			value = bytes.Clone(v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	return value, nil
}

// Write stores value and appends a change entry when it differs from the
// stored value.
func (m *Medium) Write(ctx context.Context, key string, value []byte, origin string) error {
	if value == nil {
		value = []byte{}
	}
	return m.set(ctx, key, value, origin)
}

func (m *Medium) Remove(ctx context.Context, key, origin string) error {
	return m.set(ctx, key, nil, origin)
}

func (m *Medium) set(ctx context.Context, key string, value []byte, origin string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	changed := false
	err := m.update(func(tx *bolt.Tx) error {
		values := tx.Bucket(bucketValues)
		old := values.Get([]byte(key))
		switch {
		case value == nil && old == nil:
			return nil
		case value != nil && old != nil && bytes.Equal(old, value):
			return nil
		}

		entry := logEntry{Key: key, OldValue: bytes.Clone(old), NewValue: value, Origin: origin}
		if value == nil {
			if err := values.Delete([]byte(key)); err != nil {
				return err
			}
		} else if err := values.Put([]byte(key), value); err != nil {
			return err
		}

		changed = true
		return m.appendLog(tx.Bucket(bucketEvents), entry)
	})
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}

	if changed {
		m.replay()
	}
	return nil
}

// appendLog stores entry under the next sequence number and drops entries
// older than the configured log size.
func (m *Medium) appendLog(events *bolt.Bucket, entry logEntry) error {
	seq, err := events.NextSequence()
	if err != nil {
		return err
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if err := events.Put(seqKey(seq), data); err != nil {
		return err
	}

	if seq <= uint64(m.logSize) {
		return nil
	}
	cutoff := seqKey(seq - uint64(m.logSize))
	var stale [][]byte
	c := events.Cursor()
	for k, _ := c.First(); k != nil && bytes.Compare(k, cutoff) <= 0; k, _ = c.Next() {
		stale = append(stale, bytes.Clone(k))
	}
	for _, k := range stale {
		if err := events.Delete(k); err != nil {
			return err
		}
	}
	return nil
}

func seqKey(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)
	return k
}

// Watch registers handler and starts following the file on first use.
func (m *Medium) Watch(handler func(ports.StorageEvent)) (ports.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrClosed
	}

	id := m.nextID
	m.nextID++
	m.watchers[id] = handler

	if !m.running {
		if err := m.start(); err != nil {
			delete(m.watchers, id)
			return nil, err
		}
	}
	return &subscription{medium: m, id: id}, nil
}

// start launches the follower goroutine. Callers hold m.mu.
func (m *Medium) start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	// bbolt rewrites pages in place, so watching the directory catches writes
	// regardless of how the file is replaced.
	if err := fsw.Add(filepath.Dir(m.path)); err != nil {
		_ = fsw.Close()
		return fmt.Errorf("watching %s: %w", filepath.Dir(m.path), err)
	}

	m.running = true
	m.stop = make(chan struct{})
	m.done = make(chan struct{})
	go m.follow(fsw, m.stop, m.done)
	return nil
}

func (m *Medium) follow(fsw *fsnotify.Watcher, stop, done chan struct{}) {
	defer close(done)
	defer func() { _ = fsw.Close() }()

	var tick <-chan time.Time
	if m.poll > 0 {
		t := time.NewTicker(m.poll)
		defer t.Stop()
		tick = t.C
	}

	name := filepath.Clean(m.path)
	for {
		select {
		case <-stop:
			return
		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) == name && ev.Has(fsnotify.Write) {
				m.replay()
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			m.logger.Warn("file watcher error", slog.String("path", m.path), slog.Any("error", err))
		case <-tick:
			m.replay()
		}
	}
}

// replay delivers log entries newer than the last delivered one. Entries
// trimmed before this medium read them are reported and skipped.
func (m *Medium) replay() {
	m.pump.Lock()
	defer m.pump.Unlock()

	var (
		entries []logEntry
		missed  uint64
	)
	last := m.lastSeq
	err := m.view(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketEvents).Cursor()
		k, v := c.Seek(seqKey(m.lastSeq + 1))
		if k != nil {
			missed = binary.BigEndian.Uint64(k) - m.lastSeq - 1
		}
		for ; k != nil; k, v = c.Next() {
			var e logEntry
			if err := json.Unmarshal(v, &e); err != nil {
				m.logger.Debug("skipping malformed log entry", slog.Any("error", err))
			} else {
				entries = append(entries, e)
			}
			last = binary.BigEndian.Uint64(k)
		}
		return nil
	})
	if err != nil {
		m.logger.Warn("reading change log", slog.String("path", m.path), slog.Any("error", err))
		return
	}
	if missed > 0 {
		m.logger.Warn("change log trimmed past unreplayed entries",
			slog.String("path", m.path),
			slog.Uint64("after_seq", m.lastSeq),
			slog.Uint64("missed", missed),
		)
	}
	m.lastSeq = last

	if len(entries) == 0 {
		return
	}
	handlers := m.handlers()
	for _, e := range entries {
		for _, h := range handlers {
			h(ports.StorageEvent{
				Key:      e.Key,
				OldValue: bytes.Clone(e.OldValue),
				NewValue: bytes.Clone(e.NewValue),
				Origin:   e.Origin,
			})
		}
	}
}

func (m *Medium) handlers() []func(ports.StorageEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

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

// Close stops following the file. Registered handlers receive nothing more.
func (m *Medium) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	running, stop, done := m.running, m.stop, m.done
	m.watchers = map[int]func(ports.StorageEvent){}
	m.mu.Unlock()

	if running {
		close(stop)
		<-done
	}
	return nil
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
