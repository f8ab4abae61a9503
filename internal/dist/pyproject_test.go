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

package dist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aury-dev/publish/internal/testhelper"
	"github.com/google/go-cmp/cmp"
)

func TestReadProject(t *testing.T) {
	path := testhelper.WritePyProject(t, t.TempDir())
	got, err := ReadProject(path)
	if err != nil {
		t.Fatal(err)
	}
	want := &Project{Name: testhelper.ProjectName, Version: testhelper.ProjectVersion}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestReadProject_Dynamic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pyproject.toml")
	contents := `[project]
name = "aury"
dynamic = ["version"]
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadProject(path)
	if err != nil {
		t.Fatal(err)
	}
	want := &Project{Name: "aury", Dynamic: []string{"version"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestReadProject_Errors(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.toml")
	if err := os.WriteFile(invalid, []byte("[project\nname ="), 0644); err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{filepath.Join(dir, "missing.toml"), invalid} {
		if _, err := ReadProject(path); err == nil {
			t.Errorf("ReadProject(%q) error = nil, want non-nil", path)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	for _, test := range []struct {
		input string
		want  string
	}{
		{input: "aury", want: "aury"},
		{input: "Aury-AI", want: "aury_ai"},
		{input: "aury.ai", want: "aury_ai"},
		{input: "aury__-.ai", want: "aury_ai"},
	} {
		t.Run(test.input, func(t *testing.T) {
			if got := NormalizeName(test.input); got != test.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", test.input, got, test.want)
			}
		})
	}
}

func TestStale(t *testing.T) {
	current := &Artifact{Name: "aury_ai-0.3.1.tar.gz", Project: "aury_ai", Version: "0.3.1"}
	old := &Artifact{Name: "aury_ai-0.3.0.tar.gz", Project: "aury_ai", Version: "0.3.0"}
	other := &Artifact{Name: "other-0.3.1.tar.gz", Project: "other", Version: "0.3.1"}
	unnamed := &Artifact{Name: "weird.whl"}
	artifacts := []*Artifact{current, old, other, unnamed}

	for _, test := range []struct {
		name    string
		project *Project
		want    []*Artifact
	}{
		{
			name:    "matching project",
			project: &Project{Name: "Aury-AI", Version: "0.3.1"},
			want:    []*Artifact{old, other},
		},
		{
			name:    "dynamic version",
			project: &Project{Name: "aury-ai", Dynamic: []string{"version"}},
		},
		{
			name: "no project",
		},
		{
			name:    "unnamed project",
			project: &Project{Version: "0.3.1"},
			want:    []*Artifact{old},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := Stale(artifacts, test.project)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
