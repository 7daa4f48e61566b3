package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skilllink-dev/skilllink/internal/config"
	"github.com/skilllink-dev/skilllink/internal/errors"
	"github.com/skilllink-dev/skilllink/pkg/avatar"
	"github.com/skilllink-dev/skilllink/pkg/jobs"
)

const shutdownTimeout = 10 * time.Second

// Options configures a Gateway. Config is required; everything else has a
// working default.
type Options struct {
	Config *config.Config

	// Jobs supplies the listings for /api/jobs. Defaults to the built-in
	// fixtures.
	Jobs jobs.Source

	// Avatars stores uploads from /api/avatar. Defaults to a DiskStore
	// under the configured avatar directory.
	Avatars avatar.Store

	// Metrics is the gatherer behind /metrics. Defaults to the global
	// Prometheus registry.
	Metrics prometheus.Gatherer

	Logger *slog.Logger
}

// Gateway is the SkillLink HTTP/WebSocket server.
type Gateway struct {
	cfg     *config.Config
	jobs    jobs.Source
	avatars avatar.Store
	metrics prometheus.Gatherer
	logger  *slog.Logger

	upgrader   websocket.Upgrader
	httpServer *http.Server
}

// New creates a Gateway from the given options.
func New(opts Options) (*Gateway, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.New()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "gateway")

	source := opts.Jobs
	if source == nil {
		source = jobs.FixtureSource{}
	}

	avatars := opts.Avatars
	if avatars == nil {
		store, err := avatar.NewDiskStore(cfg.Avatar.Dir, cfg.Avatar.BaseURL, int64(cfg.Avatar.MaxSizeMB)<<20)
		if err != nil {
			return nil, errors.New("E120").
				WithDetail("avatar directory " + cfg.Avatar.Dir + " could not be created").
				Wrap(err)
		}
		avatars = store
	}

	metrics := opts.Metrics
	if metrics == nil {
		metrics = prometheus.DefaultGatherer
	}

	return &Gateway{
		cfg:     cfg,
		jobs:    source,
		avatars: avatars,
		metrics: metrics,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}, nil
}

// Handler returns the gateway's router for mounting or testing.
func (g *Gateway) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Get("/api/jobs", g.handleJobs)
	r.Post("/api/avatar", avatar.Handler(g.avatars).ServeHTTP)
	r.Get("/ws/chat", g.handleChat)

	if disk, ok := g.avatars.(*avatar.DiskStore); ok {
		prefix := g.cfg.Avatar.BaseURL
		r.Handle(prefix+"/*", http.StripPrefix(prefix+"/", http.FileServer(http.Dir(disk.Dir()))))
	}

	if g.cfg.Gateway.MetricsEnabled {
		r.Handle("/metrics", promhttp.HandlerFor(g.metrics, promhttp.HandlerOpts{}))
	}

	return r
}

// handleJobs serves the job feed, filtered by the search, location, type,
// and category query parameters.
func (g *Gateway) handleJobs(w http.ResponseWriter, r *http.Request) {
	listings, err := g.jobs.Jobs(r.Context())
	if err != nil {
		g.logger.Error("job feed unavailable", "error", err)
		http.Error(w, "job feed unavailable", http.StatusBadGateway)
		return
	}

	q := r.URL.Query()
	filter := jobs.Filter{
		Search:   q.Get("search"),
		Location: q.Get("location"),
		Type:     q.Get("type"),
		Category: q.Get("category"),
	}

	out := make([]jobs.Job, 0, len(listings))
	for _, j := range listings {
		if filter.Matches(j) {
			out = append(out, j)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// Run starts the gateway and blocks until shutdown.
func (g *Gateway) Run() error {
	g.httpServer = &http.Server{
		Addr:              g.cfg.Gateway.Addr(),
		Handler:           g.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		g.logger.Info("gateway starting", "address", g.cfg.Gateway.Addr())
		errCh <- g.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return errors.New("E140").
				WithDetail("could not listen on " + g.cfg.Gateway.Addr()).
				Wrap(err)
		}
		return nil

	case <-shutdown:
		g.logger.Info("shutting down...")
		return g.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the gateway.
func (g *Gateway) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if g.httpServer != nil {
		if err := g.httpServer.Shutdown(ctx); err != nil {
			g.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	g.logger.Info("gateway shutdown complete")
	return nil
}
