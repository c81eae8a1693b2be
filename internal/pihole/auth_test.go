package pihole

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestAuthenticate_EmptyPasswordSkipsRequest(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	}))
	defer server.Close()

	client := NewClient()
	session := client.authenticate(context.Background(), server.URL, "")

	if session != nil {
		t.Errorf("authenticate() = %v, want nil for empty password", session)
	}
	if atomic.LoadInt32(&requests) != 0 {
		t.Error("authenticate() issued a request despite empty password")
	}
}

func TestAuthenticate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth" {
			t.Errorf("path = %s, want /api/auth", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %s, want application/json", got)
		}

		var req struct {
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode auth request: %v", err)
		}
		if req.Password != "hunter2" {
			t.Errorf("password = %q, want hunter2", req.Password)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"session":{"valid":true,"sid":"abc123","csrf":"tok","validity":300}}`))
	}))
	defer server.Close()

	client := NewClient()
	session := client.authenticate(context.Background(), server.URL, "hunter2")

	if session == nil {
		t.Fatal("authenticate() = nil, want session")
	}
	if session.SID != "abc123" {
		t.Errorf("SID = %q, want abc123", session.SID)
	}
}

func TestAuthenticate_FailuresReturnNil(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "wrong password",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "unparseable body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient()
			session := client.authenticate(context.Background(), server.URL, "hunter2")
			if session != nil {
				t.Errorf("authenticate() = %v, want nil on failure", session)
			}
		})
	}
}

func TestAuthenticate_UnreachableHostReturnsNil(t *testing.T) {
	// Nothing listens here; failure must still be silent
	client := NewClient()
	session := client.authenticate(context.Background(), "http://127.0.0.1:1", "hunter2")
	if session != nil {
		t.Errorf("authenticate() = %v, want nil for unreachable host", session)
	}
}
