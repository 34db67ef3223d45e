package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/minsung-kang/dalcal/internal/config"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func authConfig(t *testing.T, user, pass string) *config.BasicAuthConfig {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &config.BasicAuthConfig{Username: user, PasswordHash: string(hash)}
}

func TestBasicAuthDisabled(t *testing.T) {
	h := BasicAuth(nil, NewRateLimiter())(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/events", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 with auth disabled", rec.Code)
	}
}

func TestBasicAuthAccepts(t *testing.T) {
	h := BasicAuth(authConfig(t, "me", "secret"), NewRateLimiter())(okHandler())

	req := httptest.NewRequest("GET", "/api/events", nil)
	req.SetBasicAuth("me", "secret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestBasicAuthRejects(t *testing.T) {
	h := BasicAuth(authConfig(t, "me", "secret"), NewRateLimiter())(okHandler())

	cases := []struct{ user, pass string }{
		{"me", "wrong"},
		{"other", "secret"},
		{"", ""},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/api/events", nil)
		if tc.user != "" {
			req.SetBasicAuth(tc.user, tc.pass)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s/%s: status = %d, want 401", tc.user, tc.pass, rec.Code)
		}
	}
}

func TestBasicAuthRateLimitsFailures(t *testing.T) {
	h := BasicAuth(authConfig(t, "me", "secret"), NewRateLimiter())(okHandler())

	var last int
	for i := 0; i < authAttemptLimit+1; i++ {
		req := httptest.NewRequest("GET", "/api/events", nil)
		req.RemoteAddr = "10.1.2.3:5555"
		req.SetBasicAuth("me", "wrong")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		last = rec.Code
	}

	if last != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429 after repeated failures", last)
	}
}
