package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	assert := assert.New(t)

	protected := map[string]bool{
		"/":             false,
		"/login/:role":  false,
		"/signup/:role": false,
		"/dashboard":    true,
		"/users":        true,
		"/customers":    true,
		"/leads":        true,
		"/settings":     true,
	}

	matches := Flatten(Table())
	assert.Len(matches, len(protected))

	for _, m := range matches {
		want, ok := protected[m.Route.Path]
		if assert.True(ok, m.Route.Path) {
			assert.Equal(want, m.RequiresAuth(), m.Route.Path)
		}
		if m.RequiresAuth() {
			assert.Equal("Bingwa - "+m.Route.Name, m.Title())
		} else {
			assert.Empty(m.Title())
		}
		assert.NotEmpty(m.Route.View)
	}
}

func TestPattern(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("/login/{role}", Route{Path: "/login/:role"}.Pattern())
	assert.Equal("/", Route{Path: "/"}.Pattern())
	assert.Equal([]string{"a", "b"}, Route{Path: "/x/:a/y/:b"}.ParamNames())
	assert.Nil(Route{Path: "/users"}.ParamNames())
}

func TestFlatten_nested(t *testing.T) {
	assert := assert.New(t)

	matches := Flatten([]Route{
		{
			Name: "admin",
			Path: "/admin",
			Meta: Meta{Auth: true, Title: "admin"},
			Children: []Route{
				{Name: "reports", Path: "reports"},
				{Name: "audit", Path: "/audit", Meta: Meta{Title: "audit"}},
			},
		},
	})

	reports, ok := Lookup(matches, "reports")
	assert.True(ok)
	assert.Equal("/admin/reports", reports.Route.Path)
	assert.True(reports.RequiresAuth())
	assert.Equal("admin", reports.Title())
	assert.Len(reports.Matched, 2)

	audit, ok := Lookup(matches, "audit")
	assert.True(ok)
	assert.Equal("/audit", audit.Route.Path)
	assert.True(audit.RequiresAuth())
	assert.Equal("audit", audit.Title())

	admin, _ := Lookup(matches, "admin")
	assert.Nil(admin.Route.Children)
}

func TestURL(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	matches := Flatten(Table())

	u, err := URL(matches, "login", map[string]string{"role": "admin"})
	require.NoError(err)
	assert.Equal("/login/admin", u)

	u, err = URL(matches, "signup", map[string]string{"role": "sales rep"})
	require.NoError(err)
	assert.Equal("/signup/sales%20rep", u)

	u, err = URL(matches, "users", nil)
	require.NoError(err)
	assert.Equal("/users", u)

	_, err = URL(matches, "login", nil)
	assert.ErrorIs(err, ErrMissingParam)

	_, err = URL(matches, "reports", nil)
	assert.ErrorIs(err, ErrUnknownRoute)
}

func TestHref(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("/", Href("", "/"))
	assert.Equal("/users", Href("/", "/users"))
	assert.Equal("/crm/", Href("/crm", "/"))
	assert.Equal("/crm/users", Href("/crm/", "/users"))
}
