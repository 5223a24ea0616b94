package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/davidmontoya/vesper/internal/dialogue"
	"github.com/davidmontoya/vesper/internal/domain"
)

// Recommendations holds the three named lists returned by the
// recommendation service. Each list arrives already ordered; the client
// never re-ranks them.
type Recommendations struct {
	Primary []domain.Record
	After   []domain.Record
	Events  []domain.Record
}

// Client provides access to the remote content and recommendation service.
type Client interface {
	// FetchContent returns the raw venue/event records for a city. An
	// empty list is a valid response.
	FetchContent(ctx context.Context, city string) ([]domain.Record, error)

	// Recommend requests picks for a completed dialogue context.
	Recommend(ctx context.Context, city string, rctx dialogue.RecommendationContext) (*Recommendations, error)
}

// httpClient implements Client against the Vesper HTTP API.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client that talks to the content service over HTTP.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// contentResponse is the JSON body returned by GET /v1/content.
type contentResponse struct {
	Items []wireRecord `json:"items"`
}

// recommendRequest is the JSON body sent to POST /v1/recommendations.
type recommendRequest struct {
	City    string                         `json:"city"`
	Context dialogue.RecommendationContext `json:"context"`
}

// recommendResponse is the JSON body returned by POST /v1/recommendations.
type recommendResponse struct {
	Picks  []wireRecord `json:"picks"`
	After  []wireRecord `json:"after"`
	Events []wireRecord `json:"events"`
}

func (c *httpClient) FetchContent(ctx context.Context, city string) ([]domain.Record, error) {
	path := "/v1/content?city=" + url.QueryEscape(city)

	var resp contentResponse
	if err := c.call(ctx, "fetch_content", city, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0, len(resp.Items))
	for _, item := range resp.Items {
		records = append(records, item.toDomain())
	}
	return records, nil
}

func (c *httpClient) Recommend(ctx context.Context, city string, rctx dialogue.RecommendationContext) (*Recommendations, error) {
	body := recommendRequest{City: city, Context: rctx}

	var resp recommendResponse
	if err := c.call(ctx, "recommend", city, http.MethodPost, "/v1/recommendations", body, &resp); err != nil {
		return nil, err
	}

	return &Recommendations{
		Primary: toDomainList(resp.Picks),
		After:   toDomainList(resp.After),
		Events:  toDomainList(resp.Events),
	}, nil
}

// call performs one logical API operation with timeout, bounded retries,
// and observer notification.
func (c *httpClient) call(ctx context.Context, op, city, method, path string, body, out any) error {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries
	for i := 0; i < attempts; i++ {
		err := c.doRequest(ctx, method, path, body, out)
		if err == nil {
			c.observer.OnCallComplete(CallEvent{
				Op:        op,
				City:      city,
				LatencyMs: time.Since(start).Milliseconds(),
				Success:   true,
			})
			return nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout.
		if ctx.Err() != nil {
			break
		}
	}

	err := classifyErr(ctx, lastErr)
	c.observer.OnCallComplete(CallEvent{
		Op:        op,
		City:      city,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(err),
	})
	return err
}

func (c *httpClient) doRequest(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.Endpoint+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("content service returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func classifyErr(ctx context.Context, lastErr error) error {
	if ctx.Err() != nil {
		return ErrTimeout
	}
	if isConnectionError(lastErr) {
		return ErrUnavailable
	}
	return fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	default:
		return "UNKNOWN"
	}
}
