package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_defaults(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	cfg, err := New(Path(filepath.Join(t.TempDir(), "missing.yaml")))
	require.NoError(err)

	assert.Equal("Bingwa CRM", cfg.App.Title)
	assert.Equal("localhost:8123", cfg.Server.Addr())
	assert.Equal(24*time.Hour, cfg.Session.Lifetime)
	assert.False(cfg.Auth.SecureCookies)
}

func TestNew_file(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(`
app:
  base_path: /crm
server:
  port: 9000
session:
  lifetime: 30m
json_repo:
  path: ""
`), 0o600)
	require.NoError(err)

	cfg, err := New(Path(path))
	require.NoError(err)

	assert.Equal("/crm", cfg.App.BasePath)
	assert.Equal("Bingwa CRM", cfg.App.Title)
	assert.Equal(9000, cfg.Server.Port)
	assert.Equal(30*time.Minute, cfg.Session.Lifetime)
	assert.Equal("", cfg.JSONRepo.Path)
}

func TestNew_env(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	t.Setenv("BINGWA_PORT", "9100")
	t.Setenv("BINGWA_SECURE_COOKIES", "true")
	t.Setenv("BINGWA_LOG_LEVEL", "DEBUG")

	cfg, err := New("")
	require.NoError(err)

	assert.Equal(9100, cfg.Server.Port)
	assert.True(cfg.Auth.SecureCookies)
	assert.Equal("debug", cfg.Log.Level)
}

func TestNew_badEnv(t *testing.T) {
	t.Setenv("BINGWA_PORT", "eighty")

	_, err := New("")
	assert.Error(t, err)
}

func TestNew_badFile(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(os.WriteFile(path, []byte("server: [not, a, map"), 0o600))

	_, err := New(Path(path))
	require.Error(err)

	_, err = New(Path(t.TempDir()))
	require.ErrorIs(err, errConfigIsDir)
}

func TestNew_basePath(t *testing.T) {
	cases := map[string]string{
		"crm":    "/crm",
		"/crm/":  "/crm",
		"crm/v2": "/crm/v2",
		"/":      "",
		" ":      "",
	}

	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte("app:\n  base_path: \""+in+"\"\n"), 0o600))

			cfg, err := New(Path(path))
			require.NoError(t, err)
			assert.Equal(t, want, cfg.App.BasePath)
		})
	}
}

func TestNew_basePathEnv(t *testing.T) {
	t.Setenv("BINGWA_BASE_PATH", "crm")

	cfg, err := New("")
	require.NoError(t, err)
	assert.Equal(t, "/crm", cfg.App.BasePath)
}
