package pihole

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"netscene/internal/logging"
)

// Session is a short-lived credential obtained from a successful password
// exchange with the modern API. It is valid for the duration of one stats
// fetch only; expiry is not tracked and sessions are never reused across
// calls.
type Session struct {
	// SID is the session identifier attached to subsequent requests
	SID string
}

// authRequest is the JSON body sent to /api/auth
type authRequest struct {
	Password string `json:"password"`
}

// authResponse is the session descriptor returned by /api/auth
type authResponse struct {
	Session struct {
		Valid    bool   `json:"valid"`
		SID      string `json:"sid"`
		CSRF     string `json:"csrf"`
		Validity uint64 `json:"validity"`
	} `json:"session"`
}

// authenticate exchanges a password for a session credential against the
// modern API at /api/auth.
//
// Authentication is best-effort by design: a wrong password, a non-success
// status, or any transport failure all return nil rather than an error, so
// the stats fetch degrades to an unauthenticated attempt instead of
// aborting. Failures are logged at debug level but are not observable from
// the result. Exactly one request is issued; there is no retry.
func (c *Client) authenticate(ctx context.Context, host, password string) *Session {
	if password == "" {
		return nil
	}

	u, err := authURL(host)
	if err != nil {
		logging.Debug("Authentication skipped: host did not resolve", zap.Error(err))
		return nil
	}

	body, err := json.Marshal(authRequest{Password: password})
	if err != nil {
		logging.Debug("Authentication skipped: failed to encode request", zap.Error(err))
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		logging.Debug("Authentication skipped: failed to build request", zap.Error(err))
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)

	logging.Debug("Attempting authentication", zap.String("url", u.String()))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logging.Debug("Authentication failed, continuing without auth", zap.Error(err))
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logging.Debug("Authentication failed, continuing without auth",
			zap.Int("status", resp.StatusCode))
		return nil
	}

	var auth authResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		logging.Debug("Authentication response did not parse, continuing without auth",
			zap.Error(err))
		return nil
	}

	logging.Debug("Authentication successful, SID obtained")
	return &Session{SID: auth.Session.SID}
}
