package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// File mirrors the optional YAML configuration file.
type File struct {
	Socket       string `yaml:"socket"`
	LogFile      string `yaml:"log_file"`
	Trace        bool   `yaml:"trace"`
	Refresh      string `yaml:"refresh"`
	Legend       bool   `yaml:"legend"`
	DetachOthers bool   `yaml:"detach_others"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
}

// Default returns the values used when no file is present.
func Default() *File {
	return &File{
		Legend:       true,
		DetachOthers: true,
	}
}

// DefaultPath returns the per-user config location derived from env.
// It honours XDG_CONFIG_HOME before falling back to HOME.
func DefaultPath(env map[string]string) string {
	if dir := env["XDG_CONFIG_HOME"]; dir != "" {
		return filepath.Join(dir, "tmm", "config.yaml")
	}
	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "tmm", "config.yaml")
	}
	return ""
}

// LoadFile reads path over the defaults. A missing file yields defaults.
func LoadFile(path string) (*File, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// RefreshInterval parses the refresh field. Empty means disabled.
func (f *File) RefreshInterval() (time.Duration, error) {
	if f.Refresh == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(f.Refresh)
	if err != nil {
		return 0, fmt.Errorf("refresh: %w", err)
	}
	return d, nil
}
