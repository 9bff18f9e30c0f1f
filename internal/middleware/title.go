package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const titleContextKey = contextKey("title")

// Title stores the page title for the rest of the chain, falling back when
// the route declares none.
func Title(title, fallback string) func(http.Handler) http.Handler {
	if title == "" {
		title = fallback
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), titleContextKey, title)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func TitleFromContext(ctx context.Context) string {
	title, _ := ctx.Value(titleContextKey).(string)
	return title
}
