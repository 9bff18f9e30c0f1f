package account

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/ghaggin/bingwa/internal/config"
	"github.com/ghaggin/bingwa/internal/model"
	"github.com/ghaggin/bingwa/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 8

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Controller struct {
	repo repository.Repository
	log  *zap.Logger
	cost int
}

type ControllerParams struct {
	fx.In

	Logger *zap.Logger
	Repo   repository.Repository
	Config *config.Config
}

func NewController(p ControllerParams) (*Controller, error) {
	cost := p.Config.Auth.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &Controller{
		log:  p.Logger,
		repo: p.Repo,
		cost: cost,
	}, nil
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
	// Role is recorded as given; it grants nothing.
	Role string
}

func (c *Controller) Signup(ctx context.Context, in SignupInput) (*model.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(in.Email))
	if err != nil {
		return nil, fmt.Errorf("%w: email is not valid", ErrInvalidInput)
	}
	if len(in.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), c.cost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         name,
		Email:        addr.Address,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    time.Now().UTC(),
	}

	err = c.repo.AddUser(ctx, user)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}

	c.log.Info("user signed up", zap.Int("id", user.ID), zap.String("role", user.Role))
	return user, nil
}

func (c *Controller) Login(ctx context.Context, email string, password string) (*model.User, error) {
	u, err := c.repo.GetUserByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// IssueToken returns a fresh opaque token for the token cookie.
func (c *Controller) IssueToken() string {
	return uuid.NewString()
}

func (c *Controller) GetUsers(ctx context.Context) ([]model.User, error) {
	return c.repo.GetUsers(ctx)
}
