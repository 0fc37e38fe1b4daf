// Package config resolves the optional hoist.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/hoisting/pkg/state"
)

// FileName is the name of the optional project configuration file.
const FileName = "hoist.yaml"

// Default surface size, matching a small phone in logical pixels.
const (
	DefaultWidth  = 400
	DefaultHeight = 600
)

// Config represents the optional hoist.yaml configuration.
type Config struct {
	App     AppConfig     `yaml:"app"`
	Surface SurfaceConfig `yaml:"surface"`
	// Durability overrides the declared durability of individual values,
	// keyed by "scope/key".
	Durability map[string]string `yaml:"durability,omitempty"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// SurfaceConfig is the logical size samples are laid out in.
type SurfaceConfig struct {
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	Width      float64
	Height     float64
	Durability map[string]state.Durability
}

// Defaults returns the configuration used outside of a Go module.
func Defaults() *Resolved {
	return &Resolved{
		AppName:    "hoist",
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Durability: map[string]state.Durability{},
	}
}

// OverrideKeys returns the configured override keys in sorted order.
func (r *Resolved) OverrideKeys() []string {
	keys := make([]string, 0, len(r.Durability))
	for k := range r.Durability {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LoadOptional reads hoist.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads hoist.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	width, height := cfg.Surface.Width, cfg.Surface.Height
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("surface size must not be negative (got %gx%g)", width, height)
	}
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}

	durability, err := parseOverrides(cfg.Durability)
	if err != nil {
		return nil, err
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
		Width:      width,
		Height:     height,
		Durability: durability,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func parseOverrides(raw map[string]string) (map[string]state.Durability, error) {
	out := make(map[string]state.Durability, len(raw))
	for key, name := range raw {
		scope, value, ok := strings.Cut(key, "/")
		if !ok || scope == "" || value == "" {
			return nil, fmt.Errorf("durability key %q must have the form scope/key", key)
		}
		d, err := state.ParseDurability(strings.TrimSpace(name))
		if err != nil {
			return nil, fmt.Errorf("durability for %q: %w", key, err)
		}
		out[key] = d
	}
	return out, nil
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 {
			base = parts[len(parts)-1]
		}
	}
	if base == "" {
		return "hoist_app"
	}
	return base
}
