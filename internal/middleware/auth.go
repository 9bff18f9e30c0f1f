package middleware

import (
	"net/http"

	"github.com/ghaggin/bingwa/internal/cookie"
	"go.uber.org/zap"
)

// RequireToken sends requests without a token cookie to redirectTo. Presence of
// any non-empty token indicates auth; the value is not checked.
func RequireToken(redirectTo string, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := cookie.Token(r); !ok {
				log.Debug("no token, redirecting", zap.String("path", r.URL.Path), zap.String("to", redirectTo))
				http.Redirect(w, r, redirectTo, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
