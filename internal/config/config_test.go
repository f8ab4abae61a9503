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

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/aury-dev/publish/internal/yaml"
	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	want := &Config{
		DistDir:   "dist",
		PyProject: "pyproject.toml",
		Endpoints: Endpoints{
			Prod: "https://upload.pypi.org/legacy/",
			Test: "https://test.pypi.org/legacy/",
		},
		Keyring:        Keyring{Username: "__token__"},
		IgnoredChanges: yaml.StringSlice{"dist/"},
	}
	if diff := cmp.Diff(want, Default()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRead(t *testing.T) {
	for _, test := range []struct {
		name    string
		content string
		want    *Config
	}{
		{
			name:    "empty file",
			content: "",
			want:    Default(),
		},
		{
			name: "overrides",
			content: `dist_dir: build/dist
endpoints:
  test: https://test.example.com/legacy/
preinstalled:
  uv: /opt/uv/bin/uv
`,
			want: &Config{
				DistDir:   "build/dist",
				PyProject: "pyproject.toml",
				Endpoints: Endpoints{
					Prod: "https://upload.pypi.org/legacy/",
					Test: "https://test.example.com/legacy/",
				},
				Keyring:        Keyring{Username: "__token__"},
				Preinstalled:   map[string]string{"uv": "/opt/uv/bin/uv"},
				IgnoredChanges: yaml.StringSlice{"build/dist/"},
			},
		},
		{
			name:    "explicitly empty ignored changes",
			content: "ignored_changes: []\n",
			want: &Config{
				DistDir:   "dist",
				PyProject: "pyproject.toml",
				Endpoints: Endpoints{
					Prod: "https://upload.pypi.org/legacy/",
					Test: "https://test.pypi.org/legacy/",
				},
				Keyring:        Keyring{Username: "__token__"},
				IgnoredChanges: yaml.StringSlice{},
			},
		},
		{
			name:    "require clean",
			content: "require_clean: true\n",
			want: &Config{
				DistDir:   "dist",
				PyProject: "pyproject.toml",
				Endpoints: Endpoints{
					Prod: "https://upload.pypi.org/legacy/",
					Test: "https://test.pypi.org/legacy/",
				},
				Keyring:        Keyring{Username: "__token__"},
				IgnoredChanges: yaml.StringSlice{"dist/"},
				RequireClean:   true,
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "publish.yaml")
			if err := os.WriteFile(path, []byte(test.content), 0644); err != nil {
				t.Fatal(err)
			}
			got, err := Read(path)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRead_DefaultPathMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	got, err := Read(DefaultPath)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_Errors(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("dist_dir: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	misspelled := filepath.Join(dir, "misspelled.yaml")
	if err := os.WriteFile(misspelled, []byte("dist-dir: out\n"), 0644); err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		name         string
		path         string
		wantNotExist bool
	}{
		{
			name:         "explicit path missing",
			path:         filepath.Join(dir, "missing.yaml"),
			wantNotExist: true,
		},
		{
			name: "misspelled key",
			path: misspelled,
		},
		{
			name: "invalid yaml",
			path: invalid,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := Read(test.path)
			if err == nil {
				t.Fatal("Read() error = nil, want non-nil")
			}
			if got := errors.Is(err, fs.ErrNotExist); got != test.wantNotExist {
				t.Errorf("errors.Is(err, fs.ErrNotExist) = %t, want %t", got, test.wantNotExist)
			}
		})
	}
}

func TestSetDistDir(t *testing.T) {
	for _, test := range []struct {
		name    string
		ignored yaml.StringSlice
		want    yaml.StringSlice
	}{
		{
			name:    "default follows",
			ignored: yaml.StringSlice{"dist/"},
			want:    yaml.StringSlice{"build/out/"},
		},
		{
			name:    "custom kept",
			ignored: yaml.StringSlice{"dist/", "uv.lock"},
			want:    yaml.StringSlice{"dist/", "uv.lock"},
		},
		{
			name:    "empty kept",
			ignored: yaml.StringSlice{},
			want:    yaml.StringSlice{},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			cfg.IgnoredChanges = test.ignored
			cfg.SetDistDir("build/out/")
			if cfg.DistDir != "build/out/" {
				t.Errorf("DistDir = %q, want %q", cfg.DistDir, "build/out/")
			}
			if diff := cmp.Diff(test.want, cfg.IgnoredChanges); diff != "" {
				t.Errorf("IgnoredChanges mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
