package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Source supplies the job listings the feed shows.
type Source interface {
	// Jobs returns the current listings, newest first.
	Jobs(ctx context.Context) ([]Job, error)
}

// FixtureSource serves the built-in demo listings.
type FixtureSource struct{}

func (FixtureSource) Jobs(ctx context.Context) ([]Job, error) {
	return Fixtures(), nil
}

// HTTPSource fetches listings from the gateway's REST API.
type HTTPSource struct {
	// BaseURL is the gateway address, e.g. "http://localhost:8090".
	BaseURL string

	// Client is the HTTP client. Defaults to http.DefaultClient.
	Client *http.Client
}

func (s *HTTPSource) Jobs(ctx context.Context) ([]Job, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"/api/jobs", nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jobs: gateway returned %s", resp.Status)
	}

	var listings []Job
	if err := json.NewDecoder(resp.Body).Decode(&listings); err != nil {
		return nil, fmt.Errorf("jobs: decoding listings: %w", err)
	}
	return listings, nil
}
