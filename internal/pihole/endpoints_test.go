package pihole

import "testing"

func TestResolveEndpoints(t *testing.T) {
	tests := []struct {
		name       string
		host       string
		wantModern string
		wantLegacy string
	}{
		{
			name:       "bare IP defaults to http",
			host:       "192.168.1.100",
			wantModern: "http://192.168.1.100/api/stats/summary",
			wantLegacy: "http://192.168.1.100/admin/api.php?summaryRaw",
		},
		{
			name:       "hostname defaults to http",
			host:       "pi.hole",
			wantModern: "http://pi.hole/api/stats/summary",
			wantLegacy: "http://pi.hole/admin/api.php?summaryRaw",
		},
		{
			name:       "https scheme preserved",
			host:       "https://192.168.1.100",
			wantModern: "https://192.168.1.100/api/stats/summary",
			wantLegacy: "https://192.168.1.100/admin/api.php?summaryRaw",
		},
		{
			name:       "explicit http scheme preserved",
			host:       "http://pi.hole",
			wantModern: "http://pi.hole/api/stats/summary",
			wantLegacy: "http://pi.hole/admin/api.php?summaryRaw",
		},
		{
			name:       "port preserved",
			host:       "192.168.1.100:8080",
			wantModern: "http://192.168.1.100:8080/api/stats/summary",
			wantLegacy: "http://192.168.1.100:8080/admin/api.php?summaryRaw",
		},
		{
			name:       "surrounding whitespace trimmed",
			host:       "  192.168.1.100  ",
			wantModern: "http://192.168.1.100/api/stats/summary",
			wantLegacy: "http://192.168.1.100/admin/api.php?summaryRaw",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			modern, legacy, err := ResolveEndpoints(tt.host)
			if err != nil {
				t.Fatalf("ResolveEndpoints(%q) error = %v", tt.host, err)
			}
			if got := modern.URL.String(); got != tt.wantModern {
				t.Errorf("modern = %s, want %s", got, tt.wantModern)
			}
			if got := legacy.URL.String(); got != tt.wantLegacy {
				t.Errorf("legacy = %s, want %s", got, tt.wantLegacy)
			}
		})
	}
}

func TestResolveEndpoints_InvalidHost(t *testing.T) {
	tests := []struct {
		name string
		host string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"tabs and newlines", "\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ResolveEndpoints(tt.host)
			if err == nil {
				t.Fatalf("ResolveEndpoints(%q) expected error, got nil", tt.host)
			}
			if !IsInvalidHostError(err) {
				t.Errorf("ResolveEndpoints(%q) error = %v, want invalid-host error", tt.host, err)
			}
		})
	}
}

func TestResolveEndpoints_UnparseableURL(t *testing.T) {
	// A malformed port makes url.Parse fail
	_, _, err := ResolveEndpoints("http://192.168.1.100:bad-port")
	if err == nil {
		t.Fatal("expected error for unparseable URL, got nil")
	}
	if !IsInvalidURLError(err) {
		t.Errorf("error = %v, want invalid-URL error", err)
	}
}

func TestResolveEndpoints_Deterministic(t *testing.T) {
	m1, l1, err1 := ResolveEndpoints("pi.hole")
	m2, l2, err2 := ResolveEndpoints("pi.hole")
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if m1.URL.String() != m2.URL.String() || l1.URL.String() != l2.URL.String() {
		t.Error("ResolveEndpoints is not deterministic for the same input")
	}
}

func TestAuthURL(t *testing.T) {
	u, err := authURL("192.168.1.100")
	if err != nil {
		t.Fatalf("authURL() error = %v", err)
	}
	if got := u.String(); got != "http://192.168.1.100/api/auth" {
		t.Errorf("authURL() = %s, want http://192.168.1.100/api/auth", got)
	}
}
