package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ghaggin/bingwa/internal/account"
	"github.com/ghaggin/bingwa/internal/config"
	"github.com/ghaggin/bingwa/internal/cookie"
	"github.com/ghaggin/bingwa/internal/middleware"
	"github.com/ghaggin/bingwa/internal/model"
	"github.com/ghaggin/bingwa/internal/route"
	"github.com/ghaggin/bingwa/internal/template"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type app struct {
	log      *zap.Logger
	cfg      *config.Config
	sessions *middleware.SessionManager
	accounts *account.Controller
	views    *template.Renderer
	routes   []route.Match
}

// Page is the data every view is rendered with.
type Page struct {
	Title string
	// Base is the mount point without a trailing slash, "" at the root.
	Base  string
	Route string
	// Params holds path params for routes with props, Role among them.
	Params        map[string]string
	Role          string
	Account       *model.Account
	Notifications []model.Notification

	Users     []model.User
	UserCount int
}

func (a *app) base() string {
	return strings.TrimSuffix(a.cfg.App.BasePath, "/")
}

func (a *app) href(p string) string {
	return route.Href(a.base(), p)
}

func (a *app) view(m route.Match) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		page := &Page{
			Title:         middleware.TitleFromContext(ctx),
			Base:          a.base(),
			Route:         m.Route.Name,
			Notifications: a.sessions.PopNotifications(ctx),
		}
		if acc, err := a.sessions.Account(ctx); err == nil {
			page.Account = acc
		}

		if m.Route.Props {
			page.Params = map[string]string{}
			for _, name := range m.Route.ParamNames() {
				page.Params[name] = chi.URLParam(r, name)
			}
			page.Role = page.Params["role"]
		}

		switch m.Route.Name {
		case "dashboard", "users":
			users, err := a.accounts.GetUsers(ctx)
			if err != nil {
				a.serverError(w, r, err)
				return
			}
			page.Users = users
			page.UserCount = len(users)
		}

		a.render(w, r, m.Route.View, page)
	}
}

func (a *app) render(w http.ResponseWriter, r *http.Request, view string, page *Page) {
	if err := a.views.Render(w, view, page); err != nil {
		a.serverError(w, r, err)
	}
}

func (a *app) serverError(w http.ResponseWriter, r *http.Request, err error) {
	a.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (a *app) redirect(w http.ResponseWriter, r *http.Request, name string, params map[string]string) {
	u, err := route.URL(a.routes, name, params)
	if err != nil {
		a.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, a.href(u), http.StatusSeeOther)
}

func (a *app) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	role := chi.URLParam(r, "role")

	if err := r.ParseForm(); err != nil {
		a.sessions.Notify(ctx, model.NotifyError, "could not read the form")
		a.redirect(w, r, "login", map[string]string{"role": role})
		return
	}

	user, err := a.accounts.Login(ctx, r.PostForm.Get("email"), r.PostForm.Get("password"))
	if errors.Is(err, account.ErrInvalidCredentials) {
		a.sessions.Notify(ctx, model.NotifyError, err.Error())
		a.redirect(w, r, "login", map[string]string{"role": role})
		return
	}
	if err != nil {
		a.serverError(w, r, err)
		return
	}

	if err := a.authenticate(w, r, user); err != nil {
		a.serverError(w, r, err)
		return
	}

	a.sessions.Notify(ctx, model.NotifySuccess, "Welcome back, "+user.Name)
	a.redirect(w, r, "dashboard", nil)
}

func (a *app) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	role := chi.URLParam(r, "role")

	if err := r.ParseForm(); err != nil {
		a.sessions.Notify(ctx, model.NotifyError, "could not read the form")
		a.redirect(w, r, "signup", map[string]string{"role": role})
		return
	}

	user, err := a.accounts.Signup(ctx, account.SignupInput{
		Name:     r.PostForm.Get("name"),
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
		Role:     role,
	})
	if errors.Is(err, account.ErrInvalidInput) || errors.Is(err, account.ErrEmailTaken) {
		a.sessions.Notify(ctx, model.NotifyError, err.Error())
		a.redirect(w, r, "signup", map[string]string{"role": role})
		return
	}
	if err != nil {
		a.serverError(w, r, err)
		return
	}

	if err := a.authenticate(w, r, user); err != nil {
		a.serverError(w, r, err)
		return
	}

	a.sessions.Notify(ctx, model.NotifySuccess, "Account created, welcome "+user.Name)
	a.redirect(w, r, "dashboard", nil)
}

func (a *app) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cookie.ClearToken(w, a.cfg.Auth.SecureCookies)
	if err := a.sessions.Destroy(ctx); err != nil {
		a.serverError(w, r, err)
		return
	}

	a.sessions.Notify(ctx, model.NotifyInfo, "You have been logged out")
	a.redirect(w, r, "home", nil)
}

// authenticate hands out a fresh token cookie and records the account in the session.
func (a *app) authenticate(w http.ResponseWriter, r *http.Request, user *model.User) error {
	err := a.sessions.SetAccount(r.Context(), &model.Account{
		UID:  strconv.Itoa(user.ID),
		Name: user.Name,
		Role: user.Role,
	})
	if err != nil {
		return err
	}

	cookie.SetToken(w, a.accounts.IssueToken(), a.cfg.Auth.TokenMaxAge, a.cfg.Auth.SecureCookies)
	return nil
}
