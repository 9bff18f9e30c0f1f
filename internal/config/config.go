package config

import (
	"fmt"
	"strings"
	"time"
)

// Path is the location of the YAML config file. A missing file is not an error.
type Path string

type Config struct {
	App      App      `yaml:"app"`
	Server   Server   `yaml:"server"`
	Session  Session  `yaml:"session"`
	Auth     Auth     `yaml:"auth"`
	JSONRepo JSONRepo `yaml:"json_repo"`
	Log      Log      `yaml:"log"`
}

type App struct {
	Title    string `yaml:"title"`
	BasePath string `yaml:"base_path"`
}

type Server struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type Session struct {
	Lifetime time.Duration `yaml:"lifetime"`
}

type Auth struct {
	TokenMaxAge   time.Duration `yaml:"token_max_age"`
	SecureCookies bool          `yaml:"secure_cookies"`
	BcryptCost    int           `yaml:"bcrypt_cost"`
}

type JSONRepo struct {
	Path string `yaml:"path"`
}

type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func Default() *Config {
	return &Config{
		App: App{
			Title: "Bingwa CRM",
		},
		Server: Server{
			Host: "localhost",
			Port: 8123,
		},
		Session: Session{
			Lifetime: 24 * time.Hour,
		},
		Auth: Auth{
			TokenMaxAge: 24 * time.Hour,
			BcryptCost:  10,
		},
		JSONRepo: JSONRepo{
			Path: "data/users.json",
		},
		Log: Log{
			Level:       "info",
			Development: true,
		},
	}
}

// New layers the config file, then .env, then the process environment over Default.
func New(path Path) (*Config, error) {
	cfg := Default()

	if err := readFile(string(path), cfg); err != nil {
		return nil, err
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	cfg.App.BasePath = normalizeBasePath(cfg.App.BasePath)
	return cfg, nil
}

// normalizeBasePath returns "" for the root, otherwise a path with a leading
// slash and no trailing slash.
func normalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}

func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
