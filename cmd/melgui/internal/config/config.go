// Package config loads the optional melgui.yaml project configuration and
// resolves defaults from the enclosing Go module.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// Config represents the optional melgui.yaml configuration.
type Config struct {
	Fmt FmtConfig `yaml:"fmt"`
	Gen GenConfig `yaml:"gen"`
}

// FmtConfig configures canonical formatting.
type FmtConfig struct {
	// Indent is the number of spaces per nesting level.
	Indent int `yaml:"indent,omitempty"`
}

// GenConfig configures Go code generation.
type GenConfig struct {
	// Package is the package name for generated files.
	Package string `yaml:"package,omitempty"`
	// Dir is the output directory for generated files, relative to the
	// project root.
	Dir string `yaml:"dir,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	FmtIndent  int
	GenPackage string
	GenDir     string
}

// LoadOptional reads melgui.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "melgui.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read melgui.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse melgui.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads melgui.yaml (if present) and resolves defaults, including the
// module path from go.mod.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		FmtIndent:  cfg.Fmt.Indent,
		GenPackage: strings.TrimSpace(cfg.Gen.Package),
		GenDir:     strings.TrimSpace(cfg.Gen.Dir),
	}
	if r.FmtIndent < 1 {
		r.FmtIndent = 2
	}
	if r.GenPackage == "" {
		r.GenPackage = "ui"
	}
	if r.GenDir == "" {
		r.GenDir = "."
	}
	if err := validatePackageName(r.GenPackage); err != nil {
		return nil, err
	}
	return r, nil
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

// Indent returns the configured fmt indent for the project enclosing the
// current directory, or the default when no project or config exists.
func Indent() int {
	root, err := FindProjectRoot()
	if err != nil {
		return 2
	}
	cfg, err := LoadOptional(root)
	if err != nil || cfg.Fmt.Indent < 1 {
		return 2
	}
	return cfg.Fmt.Indent
}

// GeneratedImportPath returns the import path of the directory gen writes to,
// validated as an importable path.
func (r *Resolved) GeneratedImportPath() (string, error) {
	path := r.ModulePath
	if r.GenDir != "." {
		path = r.ModulePath + "/" + filepath.ToSlash(r.GenDir)
	}
	if err := module.CheckImportPath(path); err != nil {
		return "", fmt.Errorf("invalid generated import path %q: %w", path, err)
	}
	return path, nil
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

func validatePackageName(name string) error {
	if name == "" {
		return fmt.Errorf("gen.package must not be empty")
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r == '_':
		case i > 0 && (r >= '0' && r <= '9'):
		default:
			return fmt.Errorf("gen.package %q is not a valid package name", name)
		}
	}
	return nil
}
