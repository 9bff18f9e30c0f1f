package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	assert := assert.New(t)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := Token(r)
	assert.False(ok)

	r.AddCookie(&http.Cookie{Name: TokenCookie, Value: ""})
	_, ok = Token(r)
	assert.False(ok)

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: TokenCookie, Value: "abc"})
	v, ok := Token(r)
	assert.True(ok)
	assert.Equal("abc", v)
}

func TestSetAndClear(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	rr := httptest.NewRecorder()
	SetToken(rr, "abc", time.Hour, true)

	cookies := rr.Result().Cookies()
	require.Len(cookies, 1)
	assert.Equal(TokenCookie, cookies[0].Name)
	assert.Equal("abc", cookies[0].Value)
	assert.Equal(3600, cookies[0].MaxAge)
	assert.True(cookies[0].HttpOnly)
	assert.True(cookies[0].Secure)

	rr = httptest.NewRecorder()
	ClearToken(rr, true)

	cookies = rr.Result().Cookies()
	require.Len(cookies, 1)
	assert.Equal(TokenCookie, cookies[0].Name)
	assert.Equal(-1, cookies[0].MaxAge)
	assert.Equal("/", cookies[0].Path)
	assert.True(cookies[0].HttpOnly)
	assert.True(cookies[0].Secure)
	assert.Equal(http.SameSiteLaxMode, cookies[0].SameSite)
}
