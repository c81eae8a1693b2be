package pihole

import (
	"net/url"
	"strings"

	"go.uber.org/zap"

	"netscene/internal/logging"
)

// Endpoint is one candidate URL shape under which a Pi-hole instance might
// expose its statistics API.
type Endpoint struct {
	// Label is a diagnostic name for log messages ("modern API", "legacy API")
	Label string

	// URL is the fully derived request URL
	URL *url.URL
}

// normalizeHost trims a user-supplied host string and parses it as a base
// URL, defaulting to plain HTTP when no scheme is given. The http:// default
// is a heuristic: callers with HTTPS-only Pi-holes must pass the scheme
// explicitly.
func normalizeHost(host string) (*url.URL, error) {
	trimmed := strings.TrimSpace(host)
	if trimmed == "" {
		return nil, NewInvalidHostError("host cannot be empty")
	}

	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "http://" + trimmed
	}

	base, err := url.Parse(trimmed)
	if err != nil {
		return nil, NewInvalidURLError("failed to parse host as URL", err)
	}

	return base, nil
}

// ResolveEndpoints derives the two candidate stats endpoints for a host.
//
// Both candidates share the base URL's scheme, host, and port; only path and
// query differ. The modern candidate targets the v6 FTL API
// (/api/stats/summary); the legacy candidate targets the pre-v6 PHP admin
// API (/admin/api.php?summaryRaw). Pure function: no network I/O,
// deterministic for a given input.
func ResolveEndpoints(host string) (modern, legacy Endpoint, err error) {
	base, err := normalizeHost(host)
	if err != nil {
		return Endpoint{}, Endpoint{}, err
	}

	modernURL := *base
	modernURL.Path = "/api/stats/summary"
	modernURL.RawQuery = ""

	legacyURL := *base
	legacyURL.Path = "/admin/api.php"
	legacyURL.RawQuery = "summaryRaw"

	modern = Endpoint{Label: "modern API", URL: &modernURL}
	legacy = Endpoint{Label: "legacy API", URL: &legacyURL}

	logging.Debug("Resolved Pi-hole endpoints",
		zap.String("modern", modern.URL.String()),
		zap.String("legacy", legacy.URL.String()),
	)

	return modern, legacy, nil
}

// authURL derives the authentication endpoint (/api/auth) for a host using
// the same normalization as ResolveEndpoints.
func authURL(host string) (*url.URL, error) {
	base, err := normalizeHost(host)
	if err != nil {
		return nil, err
	}

	u := *base
	u.Path = "/api/auth"
	u.RawQuery = ""
	return &u, nil
}
