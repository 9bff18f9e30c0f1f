package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const envPrefix = "BINGWA_"

var (
	errConfigIsDir = errors.New("config file is dir")
)

func readFile(path string, cfg *Config) error {
	if path == "" {
		return nil
	}

	filename, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	finfo, err := os.Stat(filename)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if finfo.IsDir() {
		return errConfigIsDir
	}

	yamlFile, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(yamlFile, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	// .env is optional; values already in the environment win
	_ = godotenv.Load()

	if v, ok := lookup("HOST"); ok {
		cfg.Server.Host = v
	}
	if v, ok := lookup("PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sPORT: %w", envPrefix, err)
		}
		cfg.Server.Port = port
	}
	if v, ok := lookup("BASE_PATH"); ok {
		cfg.App.BasePath = v
	}
	if v, ok := lookup("TITLE"); ok {
		cfg.App.Title = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v, ok := lookup("DATA_PATH"); ok {
		cfg.JSONRepo.Path = v
	}
	if v, ok := lookup("SECURE_COOKIES"); ok {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sSECURE_COOKIES: %w", envPrefix, err)
		}
		cfg.Auth.SecureCookies = secure
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
