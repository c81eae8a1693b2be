package pihole

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"netscene/internal/logging"
)

const (
	// DefaultTimeout bounds every network call made by the client
	DefaultTimeout = 10 * time.Second

	// DefaultUserAgent identifies NetScene to the Pi-hole
	DefaultUserAgent = "NetScene/1.0"

	// sessionHeader carries the session credential on stats requests
	sessionHeader = "X-FTL-SID"
)

// Client retrieves ad-blocking statistics from a Pi-hole instance whose API
// surface (modern vs. legacy, authenticated vs. open) is unknown in advance.
//
// A Client holds no mutable state between calls: fetching twice with the same
// arguments against unchanged remote state yields identical results, and no
// session is carried over from one fetch to the next.
type Client struct {
	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// UserAgent is sent with every request
	UserAgent string
}

// NewClient creates a Pi-hole client with the default timeout
func NewClient() *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		UserAgent:  DefaultUserAgent,
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// FetchStats retrieves statistics from the Pi-hole at the given host.
// Pass an empty password to skip authentication.
func (c *Client) FetchStats(host, password string) (*Stats, error) {
	return c.FetchStatsWithContext(context.Background(), host, password)
}

// FetchStatsWithContext retrieves statistics with a custom context.
//
// The fetch proceeds in fixed stages: resolve the candidate endpoints,
// optionally authenticate (best-effort, see authenticate), then probe the
// modern endpoint followed by the legacy endpoint. The first endpoint whose
// response is non-empty, non-HTML, JSON-parseable as Stats, and passes
// ValidateStats wins. Transport failures, bad statuses, and unparseable
// bodies skip to the next endpoint; a validation failure on a parsed payload
// is a hard answer and aborts immediately without trying the remaining
// endpoint. If both endpoints are exhausted, a parse-kind error is returned
// advising the caller to check reachability and authentication.
func (c *Client) FetchStatsWithContext(ctx context.Context, host, password string) (*Stats, error) {
	logging.Info("Requesting Pi-hole stats", zap.String("host", host))

	modern, legacy, err := ResolveEndpoints(host)
	if err != nil {
		return nil, err
	}

	session := c.authenticate(ctx, host, password)

	for _, endpoint := range []Endpoint{modern, legacy} {
		stats, err := c.probe(ctx, endpoint, session)
		if err != nil {
			if IsValidationError(err) {
				// A structurally valid but semantically invalid payload is a
				// hard answer, not a probe failure.
				return nil, err
			}
			logging.LogEndpointProbe(endpoint.Label, endpoint.URL.String(), err)
			continue
		}

		logging.Info("Successfully retrieved Pi-hole stats",
			zap.String("endpoint", endpoint.Label),
			zap.String("status", stats.Status),
			zap.Uint64("blocked_today", stats.AdsBlockedToday),
		)
		return stats, nil
	}

	return nil, NewParseError(
		"failed to get valid response from any Pi-hole API endpoint; "+
			"check if Pi-hole is running and accessible, or if authentication is required",
		nil,
	)
}

// probe attempts a single candidate endpoint and classifies the outcome.
// Returned errors other than validation errors mean "skip to the next
// endpoint"; a nil error means the endpoint produced usable stats.
func (c *Client) probe(ctx context.Context, endpoint Endpoint, session *Session) (*Stats, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.URL.String(), nil)
	if err != nil {
		return nil, NewNetworkError("failed to build request", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	if session != nil {
		req.Header.Set(sessionHeader, session.SID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, NewNetworkError("request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewServerError(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError("failed to read response body", err)
	}

	if len(body) == 0 {
		return nil, NewParseError("empty response body", nil)
	}

	logging.LogResponsePreview(endpoint.Label, body)

	// An HTML document here means the path served an app shell or login page
	// rather than API data.
	trimmed := strings.TrimLeftFunc(string(body), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if strings.HasPrefix(trimmed, "<!DOCTYPE") || strings.HasPrefix(trimmed, "<html") {
		return nil, NewParseError("response is an HTML document (likely a login page)", nil)
	}

	var stats Stats
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, NewParseError("response did not parse as Pi-hole stats", err)
	}

	if err := ValidateStats(&stats); err != nil {
		return nil, err
	}

	return &stats, nil
}
