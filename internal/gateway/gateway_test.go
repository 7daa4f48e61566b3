package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/skilllink-dev/skilllink/internal/config"
	"github.com/skilllink-dev/skilllink/pkg/chat"
	"github.com/skilllink-dev/skilllink/pkg/jobs"
	"github.com/skilllink-dev/skilllink/pkg/storage"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.DataDir = t.TempDir()
	cfg.Avatar.Dir = cfg.DataDir + "/avatars"
	return cfg
}

func newTestGateway(t *testing.T, cfg *config.Config) *Gateway {
	t.Helper()
	g, err := New(Options{Config: cfg})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestHealth(t *testing.T) {
	g := newTestGateway(t, testConfig(t))
	rec := httptest.NewRecorder()
	g.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "OK" {
		t.Errorf("body = %q, want OK", rec.Body.String())
	}
}

func TestJobsFeed(t *testing.T) {
	g := newTestGateway(t, testConfig(t))
	handler := g.Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/jobs", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var all []jobs.Job
	if err := json.NewDecoder(rec.Body).Decode(&all); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(all) != len(jobs.Fixtures()) {
		t.Errorf("got %d listings, want %d", len(all), len(jobs.Fixtures()))
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/jobs?search=plumber", nil))
	var filtered []jobs.Job
	if err := json.NewDecoder(rec.Body).Decode(&filtered); err != nil {
		t.Fatalf("decode filtered: %v", err)
	}
	if len(filtered) == 0 || len(filtered) >= len(all) {
		t.Errorf("search=plumber returned %d of %d listings", len(filtered), len(all))
	}
	for _, j := range filtered {
		hay := strings.ToLower(j.Title + j.Company + strings.Join(j.Skills, " "))
		if !strings.Contains(hay, "plumb") {
			t.Errorf("listing %q does not match search", j.Title)
		}
	}
}

func TestJobsFeedSourceError(t *testing.T) {
	g := newTestGateway(t, testConfig(t))
	g.jobs = &jobs.HTTPSource{BaseURL: "http://127.0.0.1:0"} // unreachable

	rec := httptest.NewRecorder()
	g.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/jobs", nil))
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

func TestAvatarUploadAndServe(t *testing.T) {
	g := newTestGateway(t, testConfig(t))
	srv := httptest.NewServer(g.Handler())
	defer srv.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	w.WriteField("user_id", "user_7")
	part, err := w.CreatePart(map[string][]string{
		"Content-Disposition": {`form-data; name="file"; filename="me.png"`},
		"Content-Type":        {"image/png"},
	})
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	part.Write([]byte("png-bytes"))
	w.Close()

	resp, err := http.Post(srv.URL+"/api/avatar", w.FormDataContentType(), &buf)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upload status = %d, want 200", resp.StatusCode)
	}
	var out map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// The returned URL is served back by the gateway itself.
	got, err := http.Get(srv.URL + out["url"])
	if err != nil {
		t.Fatalf("GET avatar: %v", err)
	}
	defer got.Body.Close()
	if got.StatusCode != http.StatusOK {
		t.Errorf("avatar fetch status = %d, want 200", got.StatusCode)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	cfg := testConfig(t)
	cfg.Gateway.MetricsEnabled = true

	reg := prometheus.NewRegistry()
	store := storage.Instrument(storage.NewMemoryStore(), storage.WithRegistry(reg))
	if err := store.Set(context.Background(), "k", []byte("v")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	g, err := New(Options{Config: cfg, Metrics: reg})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rec := httptest.NewRecorder()
	g.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "skilllink_storage_ops_total") {
		t.Errorf("metrics output missing skilllink_storage_ops_total:\n%s", rec.Body.String())
	}
}

func TestMetricsDisabled(t *testing.T) {
	g := newTestGateway(t, testConfig(t))
	rec := httptest.NewRecorder()
	g.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestChatWebSocket(t *testing.T) {
	g := newTestGateway(t, testConfig(t))
	srv := httptest.NewServer(g.Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat"
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	transport, err := chat.DialWS(ctx, url, nil)
	if err != nil {
		t.Fatalf("DialWS: %v", err)
	}
	defer transport.Close()

	err = transport.Send(ctx, chat.Message{ContactID: "1", Text: "Hello", SentAt: time.Now()})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	select {
	case reply, ok := <-transport.Incoming():
		if !ok {
			t.Fatalf("transport closed before reply")
		}
		if reply.ContactID != "1" {
			t.Errorf("reply ContactID = %q, want 1", reply.ContactID)
		}
		if !reply.Inbound {
			t.Errorf("reply not marked inbound")
		}
		if reply.Text == "" {
			t.Errorf("reply has empty text")
		}
	case <-ctx.Done():
		t.Fatalf("no reply before timeout")
	}
}
