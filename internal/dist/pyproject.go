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
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// separatorRegex matches the runs of characters PEP 503 treats as equivalent.
var separatorRegex = regexp.MustCompile(`[-_.]+`)

// Project is the [project] table of a pyproject.toml file.
type Project struct {
	Name    string   `toml:"name"`
	Version string   `toml:"version"`
	Dynamic []string `toml:"dynamic"`
}

type pyProject struct {
	Project Project `toml:"project"`
}

// ReadProject reads the [project] table from the pyproject.toml at path.
func ReadProject(path string) (*Project, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var py pyProject
	if err := toml.Unmarshal(contents, &py); err != nil {
		return nil, fmt.Errorf("error unmarshaling %s: %w", path, err)
	}
	return &py.Project, nil
}

// NormalizeName normalizes a project name the way distribution file names
// do: lower case, with every run of "-", "_" and "." replaced by "_".
func NormalizeName(name string) string {
	return separatorRegex.ReplaceAllString(strings.ToLower(name), "_")
}

// Stale returns the artifacts that were not built from project: those whose
// file name carries a different project name or version. Nothing is stale
// when the project has no static version.
func Stale(artifacts []*Artifact, project *Project) []*Artifact {
	if project == nil || project.Version == "" {
		return nil
	}
	name := NormalizeName(project.Name)
	var stale []*Artifact
	for _, a := range artifacts {
		if a.Version == "" {
			continue
		}
		if name != "" && NormalizeName(a.Project) != name {
			stale = append(stale, a)
			continue
		}
		if !strings.EqualFold(a.Version, project.Version) {
			stale = append(stale, a)
		}
	}
	return stale
}
