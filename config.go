package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	PackageRunner string `json:"package_runner,omitempty"`
	LogCount      int    `json:"log_count,omitempty"`
}

const (
	defaultPackageRunner = "npm"
	defaultLogCount      = 20
)

func (c Config) withDefaults() Config {
	c.PackageRunner = strings.TrimSpace(c.PackageRunner)
	if c.PackageRunner == "" {
		c.PackageRunner = defaultPackageRunner
	}
	if c.LogCount <= 0 {
		c.LogCount = defaultLogCount
	}
	return c
}

func LoadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func SaveConfig(cfg Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

func configPath() (string, error) {
	home := os.Getenv("HOME")
	if strings.TrimSpace(home) == "" {
		return "", errors.New("HOME not set")
	}
	return filepath.Join(home, ".gx", "config.json"), nil
}
