package server

import (
	"net/http"

	"github.com/ghaggin/bingwa/internal/middleware"
	"github.com/ghaggin/bingwa/internal/route"
	"github.com/ghaggin/bingwa/internal/template"
	"github.com/ghaggin/bingwa/web"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// NewHandler assembles the router: every route in the table gets the title
// guard, and routes that require auth also get the token guard.
func NewHandler(p Params) (http.Handler, error) {
	a := &app{
		log:      p.Log,
		cfg:      p.Config,
		sessions: p.Sessions,
		accounts: p.Accounts,
		views:    template.NewRenderer(web.Templates()),
		routes:   route.Flatten(route.Table()),
	}

	base := a.base()

	// Mount leaves r.URL.Path untouched, so the prefix to strip includes the base.
	router := chi.NewRouter()
	router.Handle("/static/*", http.StripPrefix(route.Href(base, "/static"), http.FileServer(http.FS(web.Static()))))

	for _, m := range a.routes {
		guards := chi.Chain(middleware.Title(m.Title(), p.Config.App.Title))
		if m.RequiresAuth() {
			guards = append(guards, middleware.RequireToken(a.href("/"), p.Log))
		}

		router.With(guards...).Get(m.Route.Pattern(), a.view(m))
	}

	// Forms
	router.Post("/login/{role}", a.login)
	router.Post("/signup/{role}", a.signup)
	router.Post("/logout", a.logout)

	root := chi.NewRouter()
	root.Use(chimw.RequestID)
	root.Use(chimw.RealIP)
	root.Use(middleware.RequestLogger(p.Log))
	root.Use(chimw.Recoverer)
	root.Use(p.Sessions.Wrap)

	if base == "" {
		root.Mount("/", router)
	} else {
		root.Mount(base, router)
	}

	return root, nil
}
