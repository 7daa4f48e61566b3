package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/skilllink-dev/skilllink/pkg/reactive"
	"github.com/skilllink-dev/skilllink/pkg/storage"
	"github.com/skilllink-dev/skilllink/pkg/toast"
)

// storageKey is the durable-storage key for the notification snapshot.
const storageKey = "notifications"

// Config configures the notification store.
type Config struct {
	// Storage is the durable key-value backend for snapshots.
	// Defaults to an in-memory store.
	Storage storage.Store

	// Toasts receives a transient alert for every added notification.
	// Optional.
	Toasts *toast.Hub

	// Logger receives persistence warnings. Defaults to slog.Default.
	Logger *slog.Logger

	// Now is the clock, overridable in tests. Defaults to time.Now.
	Now func() time.Time
}

// Store owns the ordered notification list and its read state.
type Store struct {
	items  *reactive.Signal[[]Notification]
	kv     storage.Store
	toasts *toast.Hub
	logger *slog.Logger
	now    func() time.Time
	seq    atomic.Int64

	// wake nudges the persister; buffer of one coalesces bursts.
	wake chan struct{}
	stop chan struct{}
	done chan struct{}

	closeOnce sync.Once
}

// NewStore creates the notification store and reloads the persisted snapshot.
// A corrupt snapshot is discarded wholesale (the store starts empty) and
// logged, never fatal.
func NewStore(cfg Config) *Store {
	if cfg.Storage == nil {
		cfg.Storage = storage.NewMemoryStore()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	s := &Store{
		kv:     cfg.Storage,
		toasts: cfg.Toasts,
		logger: cfg.Logger,
		now:    cfg.Now,
		wake:   make(chan struct{}, 1),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	s.items = reactive.NewSignal(s.load())
	s.seq.Store(s.seed())

	go s.persistLoop()
	return s
}

// load reads the persisted snapshot, if any.
func (s *Store) load() []Notification {
	raw, err := s.kv.Get(context.Background(), storageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			perr := &storage.PersistenceError{Op: "get", Key: storageKey, Err: err}
			s.logger.Warn("notify: failed to load snapshot", "error", perr)
		}
		return nil
	}

	var items []Notification
	if err := json.Unmarshal(raw, &items); err != nil {
		s.logger.Warn("notify: discarding corrupt snapshot", "error", err)
		return nil
	}
	return items
}

// seed resolves the starting point for new IDs: the highest sequence number
// already in the loaded list, so IDs stay unique and ordered across
// restarts, or the clock for a fresh store.
func (s *Store) seed() int64 {
	var max int64
	for _, n := range s.items.Get() {
		v, err := strconv.ParseInt(strings.TrimPrefix(n.ID, "notif_"), 10, 64)
		if err == nil && v > max {
			max = v
		}
	}
	if max == 0 {
		return s.now().UnixMilli()
	}
	return max
}

// All returns the notifications newest-first.
func (s *Store) All() []Notification {
	items := s.items.Get()
	out := make([]Notification, len(items))
	copy(out, items)
	return out
}

// Subscribe registers fn to run after every mutation with the new list.
func (s *Store) Subscribe(fn func([]Notification)) (cancel func()) {
	return s.items.Subscribe(fn)
}

// UnreadCount counts the entries with Read == false.
// It is always recomputed from the list, never stored separately.
func (s *Store) UnreadCount() int {
	count := 0
	for _, n := range s.items.Get() {
		if !n.Read {
			count++
		}
	}
	return count
}

// Add creates a notification from draft, prepends it to the list, and emits
// a transient toast for immediate display. Persistence happens in the
// background; Add never blocks on it.
func (s *Store) Add(ctx context.Context, draft Draft) Notification {
	n := Notification{
		ID:        fmt.Sprintf("notif_%d", s.seq.Add(1)),
		Title:     draft.Title,
		Message:   draft.Message,
		Category:  draft.Category,
		Link:      draft.Link,
		CreatedAt: s.now(),
	}

	s.items.Update(func(items []Notification) []Notification {
		next := make([]Notification, 0, len(items)+1)
		next = append(next, n)
		return append(next, items...)
	})

	if s.toasts != nil {
		s.toasts.WithTitle(toast.TypeInfo, n.Title, n.Message, n.Link)
	}

	s.schedulePersist()
	return n
}

// MarkAsRead sets Read on the matching entry.
// A missing id is a no-op, not an error.
func (s *Store) MarkAsRead(ctx context.Context, id string) {
	s.items.Update(func(items []Notification) []Notification {
		next := make([]Notification, len(items))
		copy(next, items)
		for i := range next {
			if next[i].ID == id {
				next[i].Read = true
				break
			}
		}
		return next
	})
	s.schedulePersist()
}

// MarkAllAsRead sets Read on every entry. Idempotent.
func (s *Store) MarkAllAsRead(ctx context.Context) {
	s.items.Update(func(items []Notification) []Notification {
		next := make([]Notification, len(items))
		copy(next, items)
		for i := range next {
			next[i].Read = true
		}
		return next
	})
	s.schedulePersist()
}

// Clear empties the list unconditionally. Irreversible.
func (s *Store) Clear(ctx context.Context) {
	s.items.Set(nil)
	s.schedulePersist()
}

// Close stops the background persister after writing a final snapshot.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
		<-s.done
	})
	return nil
}

// schedulePersist wakes the persister without blocking.
func (s *Store) schedulePersist() {
	select {
	case s.wake <- struct{}{}:
	default:
		// A wake-up is already pending; the persister reads the latest
		// list when it runs, so coalescing is safe.
	}
}

// persistLoop writes snapshots until Close, then writes one final snapshot.
func (s *Store) persistLoop() {
	defer close(s.done)
	for {
		select {
		case <-s.wake:
			s.persist()
		case <-s.stop:
			s.persist()
			return
		}
	}
}

// persist snapshots the current list. Failures affect only durability and
// are logged, never surfaced.
func (s *Store) persist() {
	items := s.items.Get()
	raw, err := json.Marshal(items)
	if err != nil {
		s.logger.Warn("notify: failed to encode snapshot", "error", err)
		return
	}
	if err := s.kv.Set(context.Background(), storageKey, raw); err != nil {
		perr := &storage.PersistenceError{Op: "set", Key: storageKey, Err: err}
		s.logger.Warn("notify: failed to persist snapshot", "error", perr)
	}
}
