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

// Package dist inspects the build output directory written by `uv build`.
// Files are classified by name only; their contents are never read.
package dist

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aury-dev/publish/internal/ui"
	"github.com/dustin/go-humanize"
)

var (
	// ErrDistNotFound is returned when the dist directory does not exist.
	ErrDistNotFound = errors.New("dist directory not found")

	// ErrDistEmpty is returned when the dist directory has no visible
	// entries.
	ErrDistEmpty = errors.New("dist directory is empty")

	// ErrNoWheel is returned when no .whl file is present.
	ErrNoWheel = errors.New("no wheel found")

	// ErrNoSdist is returned when no .tar.gz file is present.
	ErrNoSdist = errors.New("no source archive found")
)

const (
	wheelExt = ".whl"
	sdistExt = ".tar.gz"
)

// Kind is the distribution format of an artifact.
type Kind int

const (
	// Wheel is a built distribution (.whl).
	Wheel Kind = iota + 1
	// Sdist is a source distribution (.tar.gz).
	Sdist
)

func (k Kind) String() string {
	switch k {
	case Wheel:
		return "wheel"
	case Sdist:
		return "sdist"
	default:
		return "unknown"
	}
}

// Artifact is a distribution file found in the dist directory.
type Artifact struct {
	// Name is the file name.
	Name string
	// Path is the file path, rooted at the inspected directory.
	Path string
	Kind Kind
	Size int64
	// Project and Version are taken from the file name. They are empty when
	// the name does not follow the wheel or sdist naming convention.
	Project string
	Version string
}

// Row returns the artifact as a table row: file, kind, version, size.
func (a *Artifact) Row() []string {
	version := a.Version
	if version == "" {
		version = "-"
	}
	return []string{a.Name, a.Kind.String(), version, humanize.Bytes(uint64(a.Size))}
}

// sizeColumn is the index of the size in [Artifact.Row].
const sizeColumn = 3

// Render returns artifacts as a table under headers (file, type, version,
// size), with the size column right aligned.
func Render(artifacts []*Artifact, headers []string) string {
	columns := make([]ui.Column, len(headers))
	for i, h := range headers {
		columns[i] = ui.Column{Header: h, Numeric: i == sizeColumn}
	}
	rows := make([][]string, 0, len(artifacts))
	for _, a := range artifacts {
		rows = append(rows, a.Row())
	}
	return ui.Table(columns, rows)
}

// Inspect lists the wheels and source archives in dir, sorted by name. It
// fails when dir does not exist, has no visible entries, or lacks either a
// wheel or a source archive; the wheel is checked first. Hidden files, such
// as the .gitignore that `uv build` writes, are ignored.
func Inspect(dir string) ([]*Artifact, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDistNotFound, dir)
		}
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var (
		artifacts []*Artifact
		visible   int
	)
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		visible++
		if entry.IsDir() {
			continue
		}
		kind, ok := kindOf(name)
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", name, err)
		}
		project, version := splitName(name, kind)
		artifacts = append(artifacts, &Artifact{
			Name:    name,
			Path:    filepath.Join(dir, name),
			Kind:    kind,
			Size:    info.Size(),
			Project: project,
			Version: version,
		})
	}

	if visible == 0 {
		return nil, fmt.Errorf("%w: %s", ErrDistEmpty, dir)
	}
	if Count(artifacts, Wheel) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoWheel, dir)
	}
	if Count(artifacts, Sdist) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoSdist, dir)
	}
	slices.SortFunc(artifacts, func(a, b *Artifact) int {
		return strings.Compare(a.Name, b.Name)
	})
	return artifacts, nil
}

// Count returns the number of artifacts of the given kind.
func Count(artifacts []*Artifact, kind Kind) int {
	n := 0
	for _, a := range artifacts {
		if a.Kind == kind {
			n++
		}
	}
	return n
}

func kindOf(name string) (Kind, bool) {
	switch {
	case strings.HasSuffix(name, wheelExt):
		return Wheel, true
	case strings.HasSuffix(name, sdistExt):
		return Sdist, true
	default:
		return 0, false
	}
}

// splitName extracts the project name and version from a distribution file
// name. Wheels are named {name}-{version}(-{build})?-{python}-{abi}-{platform}.whl
// and source archives {name}-{version}.tar.gz.
func splitName(name string, kind Kind) (project, version string) {
	switch kind {
	case Wheel:
		parts := strings.Split(strings.TrimSuffix(name, wheelExt), "-")
		if len(parts) < 5 {
			return "", ""
		}
		return parts[0], parts[1]
	case Sdist:
		base := strings.TrimSuffix(name, sdistExt)
		i := strings.LastIndex(base, "-")
		if i <= 0 || i == len(base)-1 {
			return "", ""
		}
		return base[:i], base[i+1:]
	}
	return "", ""
}
