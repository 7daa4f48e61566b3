package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/skilllink-dev/skilllink/pkg/reactive"
	"github.com/skilllink-dev/skilllink/pkg/storage"
)

const (
	savedKey        = "savedJobs"
	applicationsKey = "applications"
)

// ErrAlreadyApplied is returned by Apply for a job with an existing
// application.
var ErrAlreadyApplied = errors.New("jobs: already applied to this job")

// ErrUnknownJob is returned when a job ID is not in the current feed.
var ErrUnknownJob = errors.New("jobs: unknown job id")

// Notifier receives inbox-worthy events from the store (application
// submitted, status changed). The app wires it to the notification store.
type Notifier func(title, message, link string)

// Config configures the job feed store.
type Config struct {
	// Source supplies listings. Defaults to FixtureSource.
	Source Source

	// Storage persists saved jobs and applications.
	// Defaults to an in-memory store.
	Storage storage.Store

	// Notify receives application events. Optional.
	Notify Notifier

	// Logger receives persistence warnings. Defaults to slog.Default.
	Logger *slog.Logger

	// Now is the clock, overridable in tests. Defaults to time.Now.
	Now func() time.Time
}

// Store owns the job feed, saved jobs, and application tracking.
type Store struct {
	source Source
	kv     storage.Store
	notify Notifier
	logger *slog.Logger
	now    func() time.Time

	feed         *reactive.Signal[[]Job]
	saved        *reactive.Signal[[]string]
	applications *reactive.Signal[[]Application]
}

// NewStore creates the job store, reloading persisted saved jobs and
// applications. The feed itself starts empty until Refresh.
func NewStore(cfg Config) *Store {
	if cfg.Source == nil {
		cfg.Source = FixtureSource{}
	}
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
		source: cfg.Source,
		kv:     cfg.Storage,
		notify: cfg.Notify,
		logger: cfg.Logger,
		now:    cfg.Now,
		feed:   reactive.NewSignal[[]Job](nil),
	}
	s.saved = reactive.NewSignal(loadJSON[[]string](s.kv, savedKey, s.logger))
	s.applications = reactive.NewSignal(loadJSON[[]Application](s.kv, applicationsKey, s.logger))
	return s
}

// Refresh fetches the listings from the source.
func (s *Store) Refresh(ctx context.Context) error {
	listings, err := s.source.Jobs(ctx)
	if err != nil {
		return err
	}
	s.feed.Set(listings)
	return nil
}

// All returns the current feed.
func (s *Store) All() []Job {
	feed := s.feed.Get()
	out := make([]Job, len(feed))
	copy(out, feed)
	return out
}

// Subscribe registers fn to run when the feed changes.
func (s *Store) Subscribe(fn func([]Job)) (cancel func()) {
	return s.feed.Subscribe(fn)
}

// Search returns the feed entries passing the filter.
func (s *Store) Search(f Filter) []Job {
	var out []Job
	for _, j := range s.feed.Get() {
		if f.Matches(j) {
			out = append(out, j)
		}
	}
	return out
}

// Get returns a job from the current feed by ID.
func (s *Store) Get(id string) (Job, bool) {
	for _, j := range s.feed.Get() {
		if j.ID == id {
			return j, true
		}
	}
	return Job{}, false
}

// Save adds a job to the saved list. Saving twice is a no-op.
func (s *Store) Save(ctx context.Context, jobID string) error {
	if _, ok := s.Get(jobID); !ok {
		return ErrUnknownJob
	}
	s.saved.Update(func(ids []string) []string {
		for _, id := range ids {
			if id == jobID {
				return ids
			}
		}
		next := make([]string, len(ids), len(ids)+1)
		copy(next, ids)
		return append(next, jobID)
	})
	s.persist(ctx, savedKey, s.saved.Get())
	return nil
}

// Unsave removes a job from the saved list. Unknown IDs are a no-op.
func (s *Store) Unsave(ctx context.Context, jobID string) {
	s.saved.Update(func(ids []string) []string {
		next := make([]string, 0, len(ids))
		for _, id := range ids {
			if id != jobID {
				next = append(next, id)
			}
		}
		return next
	})
	s.persist(ctx, savedKey, s.saved.Get())
}

// Saved returns the saved jobs that are present in the current feed.
func (s *Store) Saved() []Job {
	var out []Job
	for _, id := range s.saved.Get() {
		if j, ok := s.Get(id); ok {
			out = append(out, j)
		}
	}
	return out
}

// IsSaved reports whether the job is on the saved list.
func (s *Store) IsSaved(jobID string) bool {
	for _, id := range s.saved.Get() {
		if id == jobID {
			return true
		}
	}
	return false
}

// Apply submits an application for the job and notifies the inbox.
// A job can be applied to once; repeats fail with ErrAlreadyApplied.
func (s *Store) Apply(ctx context.Context, jobID string) (Application, error) {
	job, ok := s.Get(jobID)
	if !ok {
		return Application{}, ErrUnknownJob
	}
	for _, app := range s.applications.Get() {
		if app.JobID == jobID {
			return Application{}, ErrAlreadyApplied
		}
	}

	app := Application{
		ID:        uuid.NewString(),
		JobID:     job.ID,
		JobTitle:  job.Title,
		Company:   job.Company,
		Status:    StatusPending,
		AppliedAt: s.now(),
	}
	s.applications.Update(func(apps []Application) []Application {
		next := make([]Application, len(apps), len(apps)+1)
		copy(next, apps)
		return append(next, app)
	})
	s.persist(ctx, applicationsKey, s.applications.Get())

	if s.notify != nil {
		s.notify(
			"Application Submitted",
			fmt.Sprintf("You applied for %q at %s.", job.Title, job.Company),
			"/applications",
		)
	}
	return app, nil
}

// Applications returns the user's applications, oldest first.
func (s *Store) Applications() []Application {
	apps := s.applications.Get()
	out := make([]Application, len(apps))
	copy(out, apps)
	return out
}

// SetApplicationStatus moves an application through the pipeline and
// notifies the inbox. Unknown IDs are a no-op.
func (s *Store) SetApplicationStatus(ctx context.Context, applicationID string, status ApplicationStatus) {
	var changed *Application
	s.applications.Update(func(apps []Application) []Application {
		next := make([]Application, len(apps))
		copy(next, apps)
		for i := range next {
			if next[i].ID == applicationID && next[i].Status != status {
				next[i].Status = status
				changed = &next[i]
				break
			}
		}
		return next
	})
	if changed == nil {
		return
	}
	s.persist(ctx, applicationsKey, s.applications.Get())

	if s.notify != nil {
		s.notify(
			"Application Update",
			fmt.Sprintf("Your application for %q at %s is now %s.", changed.JobTitle, changed.Company, changed.Status),
			"/applications",
		)
	}
}

// persist writes a JSON snapshot. Failures are logged, never surfaced.
func (s *Store) persist(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("jobs: failed to encode snapshot", "key", key, "error", err)
		return
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		perr := &storage.PersistenceError{Op: "set", Key: key, Err: err}
		s.logger.Warn("jobs: failed to persist snapshot", "error", perr)
	}
}

// loadJSON reads and decodes a snapshot, discarding corrupt data wholesale.
func loadJSON[T any](kv storage.Store, key string, logger *slog.Logger) T {
	var zero T
	raw, err := kv.Get(context.Background(), key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			perr := &storage.PersistenceError{Op: "get", Key: key, Err: err}
			logger.Warn("jobs: failed to load snapshot", "error", perr)
		}
		return zero
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		logger.Warn("jobs: discarding corrupt snapshot", "key", key, "error", err)
		return zero
	}
	return value
}
