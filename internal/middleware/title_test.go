package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{title: "Bingwa - users", want: "Bingwa - users"},
		{title: "", want: "Bingwa CRM"},
	}

	for _, c := range cases {
		var got string
		next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got = TitleFromContext(r.Context())
		})

		Title(c.title, "Bingwa CRM")(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, c.want, got)
	}
}

func TestTitleFromContext_unset(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	assert.Empty(t, TitleFromContext(r.Context()))
}
