package cookie

import (
	"net/http"
	"time"
)

// TokenCookie carries the auth token. Its presence is the only signal the
// guards consult.
const TokenCookie = "token"

// SetToken sets the token cookie for the whole site
func SetToken(w http.ResponseWriter, value string, maxAge time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(maxAge.Seconds()),
	})
}

// ClearToken removes the token cookie by setting MaxAge to -1. Attributes
// match SetToken.
func ClearToken(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// Token returns the token cookie value. An empty value counts as absent.
func Token(r *http.Request) (string, bool) {
	c, err := r.Cookie(TokenCookie)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}
