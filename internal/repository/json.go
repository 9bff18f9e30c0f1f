package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ghaggin/bingwa/internal/config"
	"github.com/ghaggin/bingwa/internal/model"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	errTableFileIsDir = errors.New("table file is dir")
)

type Data struct {
	Users []model.User `json:"users"`
}

type jsonRepo struct {
	// empty path keeps everything in memory
	path string
	log  *zap.Logger

	mu   sync.RWMutex
	data *Data
}

type jsonParams struct {
	fx.In

	LC     fx.Lifecycle
	Config *config.Config
	Log    *zap.Logger
}

func NewJSON(p jsonParams) (Repository, error) {
	r := &jsonRepo{
		path: p.Config.JSONRepo.Path,
		log:  p.Log,
		data: &Data{},
	}

	if r.path == "" {
		r.log.Info("json repo path empty, users are kept in memory only")
		return r, nil
	}

	err := r.readfile()
	if err != nil {
		// only log, data will be empty and will overwrite when
		// the service is stopped
		r.log.Warn("failed reading json repo data file", zap.String("path", r.path), zap.Error(err))
	}

	p.LC.Append(fx.Hook{
		OnStop: r.stop,
	})

	return r, nil
}

// NewMemory returns a repository that is never written to disk.
func NewMemory() Repository {
	return &jsonRepo{
		log:  zap.NewNop(),
		data: &Data{},
	}
}

func (r *jsonRepo) stop(_ context.Context) error {
	return r.writefile()
}

func (r *jsonRepo) readfile() error {
	finfo, err := os.Stat(r.path)
	if err != nil {
		return err
	}

	if finfo.IsDir() {
		return errTableFileIsDir
	}

	f, err := os.Open(r.path)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(&r.data)
}

func (r *jsonRepo) writefile() error {
	r.mu.RLock()
	b, err := json.MarshalIndent(r.data, "", "  ")
	r.mu.RUnlock()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(r.path, b, 0o600)
}

func (r *jsonRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.data.Users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}

	return nil, ErrNotFound
}

func (r *jsonRepo) AddUser(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.data.Users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrDuplicate
		}
	}

	user.ID = 0
	l := len(r.data.Users)
	if l > 0 {
		user.ID = r.data.Users[l-1].ID + 1
	}

	r.data.Users = append(r.data.Users, *user)
	return nil
}

func (r *jsonRepo) GetUsers(_ context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, len(r.data.Users))
	copy(users, r.data.Users)
	return users, nil
}
