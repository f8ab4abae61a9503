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

package command

import (
	"bytes"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRun(t *testing.T) {
	if err := Run(t.Context(), "go", "version"); err != nil {
		t.Fatal(err)
	}
}

func TestRunError(t *testing.T) {
	err := Run(t.Context(), "go", "invalid-subcommand-bad-bad-bad")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "invalid-subcommand-bad-bad-bad") {
		t.Errorf("error should mention the invalid subcommand, got: %v", err)
	}
}

func TestOutput(t *testing.T) {
	RequireCommand(t, "sh")
	got, err := Output(t.Context(), "sh", "-c", "echo out; echo err >&2")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("out\n", string(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRunInteractive(t *testing.T) {
	RequireCommand(t, "sh")
	var stdout, stderr bytes.Buffer
	streams := Streams{
		In:  strings.NewReader("hello\n"),
		Out: &stdout,
		Err: &stderr,
	}
	if err := RunInteractive(t.Context(), streams, "sh", "-c", "read line; echo \"got $line\"; echo warn >&2"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("got hello\n", stdout.String()); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("warn\n", stderr.String()); diff != "" {
		t.Errorf("stderr mismatch (-want +got):\n%s", diff)
	}
}

func TestRunInteractive_ExitStatus(t *testing.T) {
	RequireCommand(t, "sh")
	var out bytes.Buffer
	err := RunInteractive(t.Context(), Streams{Out: &out, Err: &out}, "sh", "-c", "exit 7")
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("RunInteractive() = %v, want *exec.ExitError", err)
	}
	if got := exitErr.ExitCode(); got != 7 {
		t.Errorf("ExitCode() = %d, want 7", got)
	}
}

func TestGetExecutablePath(t *testing.T) {
	tests := []struct {
		name           string
		preinstalled   map[string]string
		executableName string
		want           string
	}{
		{
			name: "Preinstalled tool found",
			preinstalled: map[string]string{
				"uv":      "/opt/uv/bin/uv",
				"keyring": "/usr/bin/keyring",
			},
			executableName: "uv",
			want:           "/opt/uv/bin/uv",
		},
		{
			name: "Preinstalled tool not found",
			preinstalled: map[string]string{
				"keyring": "/usr/bin/keyring",
			},
			executableName: "uv",
			want:           "uv",
		},
		{
			name:           "No preinstalled section",
			executableName: "uv",
			want:           "uv",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := GetExecutablePath(test.preinstalled, test.executableName)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLookPath_Missing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-tool")
	if _, err := LookPath(missing); err == nil {
		t.Fatalf("LookPath(%q) = nil error, want non-nil", missing)
	}
}
