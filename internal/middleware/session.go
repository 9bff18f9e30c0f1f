package middleware

import (
	"context"
	"encoding/gob"
	"errors"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/ghaggin/bingwa/internal/config"
	"github.com/ghaggin/bingwa/internal/model"
)

const (
	accountKey       = "account"
	notificationsKey = "notifications"
)

var (
	ErrNoAccount = errors.New("no account in session")
)

// SessionManager is the application state store. It keeps the logged in
// account and pending toast notifications between requests.
type SessionManager struct {
	impl *scs.SessionManager
}

func NewSessionManager(cfg *config.Config) (*SessionManager, error) {
	gob.Register(&model.Account{})
	gob.Register([]model.Notification{})

	sm := &SessionManager{}
	sm.impl = scs.New()
	sm.impl.Lifetime = cfg.Session.Lifetime
	sm.impl.Cookie.Path = "/"
	sm.impl.Cookie.Secure = cfg.Auth.SecureCookies
	sm.impl.Cookie.SameSite = http.SameSiteLaxMode

	return sm, nil
}

func (s *SessionManager) Wrap(next http.Handler) http.Handler {
	return s.impl.LoadAndSave(next)
}

func (s *SessionManager) Account(ctx context.Context) (*model.Account, error) {
	account, ok := s.impl.Get(ctx, accountKey).(*model.Account)
	if !ok {
		return nil, ErrNoAccount
	}

	return account, nil
}

func (s *SessionManager) SetAccount(ctx context.Context, account *model.Account) error {
	if err := s.impl.RenewToken(ctx); err != nil {
		return err
	}

	if account.LoggedIn.IsZero() {
		account.LoggedIn = time.Now()
	}

	s.impl.Put(ctx, accountKey, account)
	return nil
}

// Destroy drops the session, pending notifications included.
func (s *SessionManager) Destroy(ctx context.Context) error {
	return s.impl.Destroy(ctx)
}

func (s *SessionManager) Notify(ctx context.Context, kind model.NotificationKind, message string) {
	pending, _ := s.impl.Get(ctx, notificationsKey).([]model.Notification)
	pending = append(pending, model.Notification{Kind: kind, Message: message})
	s.impl.Put(ctx, notificationsKey, pending)
}

// PopNotifications returns pending notifications and removes them from the session.
func (s *SessionManager) PopNotifications(ctx context.Context) []model.Notification {
	pending, _ := s.impl.Pop(ctx, notificationsKey).([]model.Notification)
	return pending
}
