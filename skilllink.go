// Package skilllink assembles the client-side state model of the SkillLink
// job-matching app: session, notifications, localization, job feed, and chat,
// all backed by a durable key-value store.
//
// Create an App and read or mutate state through its stores:
//
//	app, err := skilllink.New(skilllink.Options{DataDir: "data"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer app.Close()
//
//	cancel := app.Auth.Subscribe(func(st auth.State) {
//	    log.Println("auth phase:", st.Phase)
//	})
//	defer cancel()
//
//	err = app.Auth.LoginWithEmail(ctx, "ravi@example.com", "secret")
package skilllink

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/skilllink-dev/skilllink/internal/config"
	"github.com/skilllink-dev/skilllink/pkg/auth"
	"github.com/skilllink-dev/skilllink/pkg/chat"
	"github.com/skilllink-dev/skilllink/pkg/i18n"
	"github.com/skilllink-dev/skilllink/pkg/jobs"
	"github.com/skilllink-dev/skilllink/pkg/notify"
	"github.com/skilllink-dev/skilllink/pkg/storage"
	"github.com/skilllink-dev/skilllink/pkg/telemetry"
	"github.com/skilllink-dev/skilllink/pkg/toast"
)

// Options configures an App. The zero value gives an in-memory app with the
// mock backend, suitable for tests and demos.
type Options struct {
	// Config supplies project settings. Optional; individual fields
	// below override it.
	Config *config.Config

	// DataDir enables durable file-backed persistence. Empty means
	// state lives in memory only.
	DataDir string

	// Storage overrides the durable backend entirely. Takes precedence
	// over DataDir.
	Storage storage.Store

	// Backend performs authentication. Defaults to the built-in mock.
	Backend auth.Backend

	// JobSource supplies the job feed. Defaults to the built-in fixtures.
	JobSource jobs.Source

	// ChatTransport carries chat messages. Defaults to the in-process
	// simulated party.
	ChatTransport chat.Transport

	// EnvLocale is the host locale consulted when no language has been
	// persisted. Defaults to $LANG.
	EnvLocale string

	// Tracer wraps backend calls in spans. Optional.
	Tracer *telemetry.Tracer

	// Metrics registers storage metrics with the given registerer.
	// Optional; nil disables instrumentation.
	Metrics prometheus.Registerer

	// Logger receives warnings from all stores. Defaults to slog.Default.
	Logger *slog.Logger
}

// App is the assembled SkillLink client state model.
type App struct {
	// Toasts carries transient operation feedback for the UI layer.
	Toasts *toast.Hub

	// Auth owns the session and the authentication lifecycle.
	Auth *auth.Store

	// I18n owns the display language and string lookup.
	I18n *i18n.Store

	// Notifications owns the persistent notification list.
	Notifications *notify.Store

	// Jobs owns the feed, saved jobs, and applications.
	Jobs *jobs.Store

	// Chat owns contacts and message threads.
	Chat *chat.Store

	kv storage.Store
}

// New assembles an App from the given options.
func New(opts Options) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.New()
	}

	kv := opts.Storage
	if kv == nil {
		dir := opts.DataDir
		if dir == "" && opts.Config != nil {
			dir = cfg.DataDir
		}
		if dir != "" {
			fs, err := storage.NewFileStore(dir)
			if err != nil {
				return nil, fmt.Errorf("skilllink: opening data dir: %w", err)
			}
			kv = fs
		} else {
			kv = storage.NewMemoryStore()
		}
	}
	if opts.Metrics != nil {
		kv = storage.Instrument(kv, storage.WithRegistry(opts.Metrics))
	}

	envLocale := opts.EnvLocale
	if envLocale == "" {
		envLocale = os.Getenv("LANG")
	}

	backend := opts.Backend
	jobSource := opts.JobSource
	var defaultLang i18n.Language
	if opts.Config != nil {
		if backend == nil {
			backend = auth.NewMockBackend(
				auth.WithLatency(time.Duration(cfg.Backend.LatencyMS) * time.Millisecond))
		}
		if jobSource == nil && cfg.Jobs.SourceURL != "" {
			jobSource = &jobs.HTTPSource{BaseURL: cfg.Jobs.SourceURL}
		}
		defaultLang = i18n.Language(cfg.Language)
	}

	hub := toast.NewHub()

	notifications := notify.NewStore(notify.Config{
		Storage: kv,
		Toasts:  hub,
		Logger:  logger,
	})

	// Job and chat events land in the notification list.
	jobNotify := func(title, message, link string) {
		notifications.Add(context.Background(), notify.Draft{
			Title:    title,
			Message:  message,
			Category: notify.CategoryApplication,
			Link:     link,
		})
	}
	chatNotify := func(title, message, link string) {
		notifications.Add(context.Background(), notify.Draft{
			Title:    title,
			Message:  message,
			Category: notify.CategoryChat,
			Link:     link,
		})
	}

	app := &App{
		Toasts: hub,
		Auth: auth.NewStore(auth.Config{
			Backend: backend,
			Storage: kv,
			Toasts:  hub,
			Logger:  logger,
			Tracer:  opts.Tracer,
		}),
		I18n: i18n.NewStore(i18n.Config{
			Storage:   kv,
			EnvLocale: envLocale,
			Default:   defaultLang,
			Logger:    logger,
		}),
		Notifications: notifications,
		Jobs: jobs.NewStore(jobs.Config{
			Source:  jobSource,
			Storage: kv,
			Notify:  jobNotify,
			Logger:  logger,
		}),
		Chat: chat.NewStore(chat.Config{
			Transport: opts.ChatTransport,
			Notify:    chatNotify,
			Logger:    logger,
		}),
		kv: kv,
	}
	return app, nil
}

// Close flushes pending state and releases resources. The App must not be
// used afterwards.
func (a *App) Close() error {
	var firstErr error
	if err := a.Chat.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := a.Notifications.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := a.kv.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
