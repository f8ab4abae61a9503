// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config defines the publish.yaml configuration file.
package config

//go:generate go run ../../cmd/configdoc -input . -output ../../doc/config-schema.md

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/aury-dev/publish/internal/yaml"
)

const (
	// DefaultPath is the configuration file read when no --config flag is
	// given. It is optional.
	DefaultPath = "publish.yaml"

	// DefaultDistDir is the directory `uv build` writes to, and the
	// directory `uv publish` uploads from when no files are given.
	DefaultDistDir = "dist"

	// DefaultPyProject is the project metadata file.
	DefaultPyProject = "pyproject.toml"

	// ProdEndpoint is the PyPI upload endpoint. It is uv's default.
	ProdEndpoint = "https://upload.pypi.org/legacy/"

	// TestEndpoint is the TestPyPI upload endpoint.
	TestEndpoint = "https://test.pypi.org/legacy/"

	// DefaultKeyringUsername is the username PyPI API tokens are stored
	// under.
	DefaultKeyringUsername = "__token__"
)

// Config is the publish.yaml configuration.
type Config struct {
	// DistDir is the build output directory to publish from.
	DistDir string `yaml:"dist_dir,omitempty"`

	// PyProject is the path to pyproject.toml, used to detect stale
	// artifacts.
	PyProject string `yaml:"pyproject,omitempty"`

	// Endpoints holds the upload URLs for each target.
	Endpoints Endpoints `yaml:"endpoints,omitempty"`

	// Keyring configures the credential store lookup.
	Keyring Keyring `yaml:"keyring,omitempty"`

	// Preinstalled tool mapping (e.g., "uv": "/opt/uv/bin/uv").
	Preinstalled map[string]string `yaml:"preinstalled,omitempty"`

	// IgnoredChanges are gitignore-style patterns excluded from the
	// working tree cleanliness check. An explicit empty list disables the
	// default.
	IgnoredChanges yaml.StringSlice `yaml:"ignored_changes,omitempty"`

	// RequireClean turns uncommitted changes, or a working tree that cannot
	// be checked, into an error instead of a warning.
	RequireClean bool `yaml:"require_clean,omitempty"`
}

// Endpoints holds the upload URL for each target.
type Endpoints struct {
	Prod string `yaml:"prod,omitempty"`
	Test string `yaml:"test,omitempty"`
}

// Keyring configures the credential store lookup.
type Keyring struct {
	// Username is the account the token is stored under.
	Username string `yaml:"username,omitempty"`
}

// Default returns the configuration used when publish.yaml is absent.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Read reads the configuration at path and fills in defaults. A missing file
// at the default path is not an error; a missing file anywhere else is.
func Read(path string) (*Config, error) {
	cfg, err := yaml.Read[Config](path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.DistDir == "" {
		c.DistDir = DefaultDistDir
	}
	if c.PyProject == "" {
		c.PyProject = DefaultPyProject
	}
	if c.Endpoints.Prod == "" {
		c.Endpoints.Prod = ProdEndpoint
	}
	if c.Endpoints.Test == "" {
		c.Endpoints.Test = TestEndpoint
	}
	if c.Keyring.Username == "" {
		c.Keyring.Username = DefaultKeyringUsername
	}
	if c.IgnoredChanges == nil {
		c.IgnoredChanges = defaultIgnoredChanges(c.DistDir)
	}
}

// SetDistDir replaces the dist directory. Ignored changes that were
// defaulted from the previous directory follow the new one.
func (c *Config) SetDistDir(dir string) {
	if slices.Equal(c.IgnoredChanges, defaultIgnoredChanges(c.DistDir)) {
		c.IgnoredChanges = defaultIgnoredChanges(dir)
	}
	c.DistDir = dir
}

func defaultIgnoredChanges(distDir string) yaml.StringSlice {
	return yaml.StringSlice{filepath.ToSlash(filepath.Clean(distDir)) + "/"}
}
