// Package repository reads from and writes to the course platform's REST API.
package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/actuallystonmai/course-recommendation-service/internal/domain"
	"github.com/actuallystonmai/course-recommendation-service/internal/metrics"
)

type Repository struct {
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

func NewRepository(baseURL string, httpClient *http.Client, m *metrics.Metrics) *Repository {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Repository{
		baseURL:    baseURL,
		httpClient: httpClient,
		metrics:    m,
	}
}

// getJSON issues a GET for path and decodes a 2xx body into out. Any other
// outcome is reported as a *domain.UpstreamError naming resource.
func (r *Repository) getJSON(ctx context.Context, resource, path string, out any) error {
	body, err := r.do(ctx, http.MethodGet, resource, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		r.observe(resource, "decode_error")
		return &domain.UpstreamError{Resource: resource, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (r *Repository) post(ctx context.Context, resource, path string) error {
	_, err := r.do(ctx, http.MethodPost, resource, path)
	return err
}

func (r *Repository) do(ctx context.Context, method, resource, path string) ([]byte, error) {
	var reqBody io.Reader
	if method == http.MethodPost {
		reqBody = bytes.NewReader([]byte("{}"))
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reqBody)
	if err != nil {
		return nil, &domain.UpstreamError{Resource: resource, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := r.httpClient.Do(req)
	r.metrics.UpstreamRequestDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
	if err != nil {
		r.observe(resource, "transport_error")
		return nil, &domain.UpstreamError{Resource: resource, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		r.observe(resource, "transport_error")
		return nil, &domain.UpstreamError{Resource: resource, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.observe(resource, "status_error")
		return nil, &domain.UpstreamError{Resource: resource, StatusCode: resp.StatusCode}
	}

	r.observe(resource, "ok")
	return body, nil
}

func (r *Repository) observe(resource, outcome string) {
	r.metrics.UpstreamRequestsTotal.WithLabelValues(resource, outcome).Inc()
}
