// Package route holds the CRM route table and the metadata guards consult
// before a page is served.
package route

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrUnknownRoute = errors.New("unknown route")
	ErrMissingParam = errors.New("missing route param")
)

// Meta annotates a route. Auth is inherited by every child route.
type Meta struct {
	Auth  bool
	Title string
}

type Route struct {
	Name string
	// Path uses ":param" segments, e.g. "/login/:role". Child paths without a
	// leading slash are relative to the parent.
	Path string
	// Props exposes path params to the view.
	Props    bool
	Meta     Meta
	View     string
	Children []Route
}

// Match is a flattened route together with the records it was nested under,
// outermost first and ending with the route itself.
type Match struct {
	Route   Route
	Matched []Route
}

func Table() []Route {
	return []Route{
		{
			Name: "home",
			Path: "/",
			View: "home.html",
		},
		{
			Name:  "login",
			Path:  "/login/:role",
			Props: true,
			View:  "login.html",
		},
		{
			Name:  "signup",
			Path:  "/signup/:role",
			Props: true,
			View:  "signup.html",
		},
		{
			Name: "dashboard",
			Path: "/dashboard",
			Meta: Meta{Auth: true, Title: "Bingwa - dashboard"},
			View: "dashboard.html",
		},
		{
			Name: "users",
			Path: "/users",
			Meta: Meta{Auth: true, Title: "Bingwa - users"},
			View: "users.html",
		},
		{
			Name: "customers",
			Path: "/customers",
			Meta: Meta{Auth: true, Title: "Bingwa - customers"},
			View: "customers.html",
		},
		{
			Name: "leads",
			Path: "/leads",
			Meta: Meta{Auth: true, Title: "Bingwa - leads"},
			View: "leads.html",
		},
		{
			Name: "settings",
			Path: "/settings",
			Meta: Meta{Auth: true, Title: "Bingwa - settings"},
			View: "settings.html",
		},
	}
}

// Flatten walks routes depth first. The returned routes carry their full path.
func Flatten(routes []Route) []Match {
	var out []Match
	flatten(routes, "", nil, &out)
	return out
}

func flatten(routes []Route, parent string, ancestors []Route, out *[]Match) {
	for _, r := range routes {
		r.Path = joinPath(parent, r.Path)

		matched := make([]Route, 0, len(ancestors)+1)
		matched = append(matched, ancestors...)
		matched = append(matched, r)

		leaf := r
		leaf.Children = nil
		*out = append(*out, Match{Route: leaf, Matched: matched})

		if len(r.Children) > 0 {
			flatten(r.Children, r.Path, matched, out)
		}
	}
}

func joinPath(parent, child string) string {
	if strings.HasPrefix(child, "/") || parent == "" {
		return "/" + strings.TrimPrefix(child, "/")
	}
	if child == "" {
		return parent
	}
	return strings.TrimSuffix(parent, "/") + "/" + child
}

// RequiresAuth reports whether the route or any ancestor is marked Auth.
func (m Match) RequiresAuth() bool {
	for _, r := range m.Matched {
		if r.Meta.Auth {
			return true
		}
	}
	return false
}

// Title is the deepest non-empty title in the chain, or "" when none is set.
func (m Match) Title() string {
	for i := len(m.Matched) - 1; i >= 0; i-- {
		if m.Matched[i].Meta.Title != "" {
			return m.Matched[i].Meta.Title
		}
	}
	return ""
}

// Pattern converts the route path to chi syntax.
func (r Route) Pattern() string {
	segs := strings.Split(r.Path, "/")
	for i, s := range segs {
		if strings.HasPrefix(s, ":") {
			segs[i] = "{" + s[1:] + "}"
		}
	}
	return strings.Join(segs, "/")
}

func (r Route) ParamNames() []string {
	var names []string
	for _, s := range strings.Split(r.Path, "/") {
		if strings.HasPrefix(s, ":") {
			names = append(names, s[1:])
		}
	}
	return names
}

func Lookup(matches []Match, name string) (Match, bool) {
	for _, m := range matches {
		if m.Route.Name == name {
			return m, true
		}
	}
	return Match{}, false
}

// URL builds the path of a named route, escaping param values.
func URL(matches []Match, name string, params map[string]string) (string, error) {
	m, ok := Lookup(matches, name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}

	segs := strings.Split(m.Route.Path, "/")
	for i, s := range segs {
		if !strings.HasPrefix(s, ":") {
			continue
		}
		v, ok := params[s[1:]]
		if !ok || v == "" {
			return "", fmt.Errorf("%w: %s requires %s", ErrMissingParam, name, s[1:])
		}
		segs[i] = url.PathEscape(v)
	}
	return strings.Join(segs, "/"), nil
}

// Href prefixes an in-app path with the history base path.
func Href(base, p string) string {
	base = strings.TrimSuffix(base, "/")
	if base == "" {
		return p
	}
	return base + "/" + strings.TrimPrefix(p, "/")
}
