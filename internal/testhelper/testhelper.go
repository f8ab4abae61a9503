// Copyright 2025 Google LLC
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

// Package testhelper provides helper functions for tests.
// These are used across packages
package testhelper

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aury-dev/publish/internal/command"
)

const (
	// Wheel is the file name of a wheel for [ProjectName] at [ProjectVersion].
	Wheel = "aury-0.3.1-py3-none-any.whl"

	// Sdist is the file name of a source archive for [ProjectName] at
	// [ProjectVersion].
	Sdist = "aury-0.3.1.tar.gz"

	// ProjectName is the name declared by [PyProjectContents].
	ProjectName = "aury"

	// ProjectVersion is the version declared by [PyProjectContents].
	ProjectVersion = "0.3.1"

	// PyProjectContents defines the content of a pyproject.toml file.
	PyProjectContents = `[project]
name = "aury"
version = "0.3.1"
requires-python = ">=3.11"

[build-system]
requires = ["hatchling"]
build-backend = "hatchling.build"
`
)

// RequireCommand skips the test if the specified command is not found in PATH.
// Use this to skip tests that depend on external tools like uv, keyring, or
// git, so that `go test ./...` will always pass on a fresh clone of the
// repo.
func RequireCommand(t *testing.T, cmd string) {
	t.Helper()
	command.RequireCommand(t, cmd)
}

// WriteDist creates dir (and its parents) and writes one small file per
// name into it. It returns dir.
func WriteDist(t *testing.T, dir string, names ...string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		contents := fmt.Sprintf("contents of %s\n", name)
		if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// WritePyProject writes [PyProjectContents] to pyproject.toml in dir.
func WritePyProject(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "pyproject.toml")
	if err := os.WriteFile(path, []byte(PyProjectContents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// Stub is a fake external tool. Each invocation records its arguments, one
// per line, in ArgsFile.
type Stub struct {
	// Path is the executable to configure in place of the real tool.
	Path string
	// ArgsFile receives the arguments of the last invocation.
	ArgsFile string
}

// NewStub writes a fake tool named name into dir. The stub records its
// arguments, then runs script (which may be empty) and exits with its
// status.
func NewStub(t *testing.T, dir, name, script string) *Stub {
	t.Helper()
	argsFile := filepath.Join(dir, name+".args")
	body := fmt.Sprintf("printf '%%s\\n' \"$@\" > %q\n%s\n", argsFile, script)
	return &Stub{
		Path:     command.WriteScript(t, dir, name, body),
		ArgsFile: argsFile,
	}
}

// Called reports whether the stub has been invoked.
func (s *Stub) Called(t *testing.T) bool {
	t.Helper()
	_, err := os.Stat(s.ArgsFile)
	if err == nil {
		return true
	}
	if os.IsNotExist(err) {
		return false
	}
	t.Fatal(err)
	return false
}

// Args returns the arguments of the last invocation.
func (s *Stub) Args(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(s.ArgsFile)
	if err != nil {
		t.Fatalf("stub %s was not invoked: %v", s.Path, err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

// ReadmeFile is the file committed by [SetupRepo] alongside pyproject.toml.
const ReadmeFile = "README.md"

// ContinueInNewGitRepository initializes a git repository in tmpDir and
// changes the current working directory to it.
func ContinueInNewGitRepository(t *testing.T, tmpDir string) {
	t.Helper()
	RequireCommand(t, "git")
	t.Chdir(tmpDir)
	if err := command.Run(t.Context(), "git", "init", "-b", "main"); err != nil {
		t.Fatal(err)
	}
	configNewGitRepository(t)
}

func configNewGitRepository(t *testing.T) {
	t.Helper()
	for _, kv := range [][2]string{
		{"user.email", "test@test-only.com"},
		{"user.name", "Test Account"},
		{"commit.gpgsign", "false"},
	} {
		if err := command.Run(t.Context(), "git", "config", kv[0], kv[1]); err != nil {
			t.Fatal(err)
		}
	}
}

// SetupRepo creates a git repository in a new temporary directory with a
// committed pyproject.toml and README, and changes the current working
// directory to it. It returns the repository directory.
func SetupRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	ContinueInNewGitRepository(t, dir)
	WritePyProject(t, ".")
	if err := os.WriteFile(ReadmeFile, []byte("# aury\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := command.Run(t.Context(), "git", "add", "."); err != nil {
		t.Fatal(err)
	}
	if err := command.Run(t.Context(), "git", "commit", "-m", "initial version"); err != nil {
		t.Fatal(err)
	}
	return dir
}
