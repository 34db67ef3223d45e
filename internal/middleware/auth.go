package middleware

import (
	"crypto/subtle"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/minsung-kang/dalcal/internal/config"
)

const (
	authAttemptLimit  = 10
	authAttemptWindow = time.Minute
)

// BasicAuth enforces HTTP Basic credentials when configured. Failed attempts
// are rate-limited per client IP. A nil config disables the check entirely.
func BasicAuth(cfg *config.BasicAuthConfig, limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if cfg == nil || cfg.Username == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if ok && verify(cfg, user, pass) {
				next.ServeHTTP(w, r)
				return
			}

			if !limiter.Allow(RealIP(r), authAttemptLimit, authAttemptWindow) {
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}

			w.Header().Set("WWW-Authenticate", `Basic realm="dalcal"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		})
	}
}

func verify(cfg *config.BasicAuthConfig, user, pass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(cfg.Username)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(cfg.PasswordHash), []byte(pass)) == nil
	return userOK && passOK
}
