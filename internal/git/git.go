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

// Package git inspects the state of the git working tree a release is built
// from.
package git

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/aury-dev/publish/internal/command"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// ErrGitStatusUnclean reported when the git status reports uncommitted
// changes.
var ErrGitStatusUnclean = errors.New("git working directory is not clean")

// UncleanError lists the uncommitted changes found by
// [AssertGitStatusClean]. It matches [ErrGitStatusUnclean].
type UncleanError struct {
	Files []string
}

func (e *UncleanError) Error() string {
	return fmt.Sprintf("%v: %s", ErrGitStatusUnclean, strings.Join(e.Files, ", "))
}

// Is reports whether target is [ErrGitStatusUnclean].
func (e *UncleanError) Is(target error) bool {
	return target == ErrGitStatusUnclean
}

// IsWorkTree reports whether the current directory is inside a git working
// tree.
func IsWorkTree(ctx context.Context, gitExe string) bool {
	output, err := command.Output(ctx, gitExe, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(output)) == "true"
}

// UncommittedChanges returns the paths git reports as modified, staged, or
// untracked, minus those matching the gitignore-style ignoredChanges
// patterns. Untracked directories are reported with a trailing slash.
func UncommittedChanges(ctx context.Context, gitExe string, ignoredChanges []string) ([]string, error) {
	output, err := command.Output(ctx, gitExe, "status", "--porcelain", "-z")
	if err != nil {
		return nil, fmt.Errorf("failed to check git status: %w", err)
	}
	return filesFilter(ignoredChanges, parseStatus(string(output))), nil
}

// AssertGitStatusClean returns an *UncleanError if the git working directory
// has uncommitted changes outside ignoredChanges.
func AssertGitStatusClean(ctx context.Context, gitExe string, ignoredChanges []string) error {
	files, err := UncommittedChanges(ctx, gitExe, ignoredChanges)
	if err != nil {
		return err
	}
	if len(files) > 0 {
		return &UncleanError{Files: files}
	}
	return nil
}

// parseStatus extracts paths from `git status --porcelain -z` output. Each
// entry is "XY path"; renames and copies are followed by an extra entry
// holding the original path, which is skipped.
func parseStatus(output string) []string {
	var files []string
	entries := strings.Split(output, "\x00")
	for i := 0; i < len(entries); i++ {
		entry := entries[i]
		if len(entry) < 4 {
			continue
		}
		files = append(files, entry[3:])
		if entry[0] == 'R' || entry[0] == 'C' {
			i++
		}
	}
	return files
}

func filesFilter(ignoredChanges []string, files []string) []string {
	var patterns []gitignore.Pattern
	for _, p := range ignoredChanges {
		patterns = append(patterns, gitignore.ParsePattern(p, nil))
	}
	matcher := gitignore.NewMatcher(patterns)

	files = slices.DeleteFunc(files, func(a string) bool {
		if a == "" {
			return true
		}
		isDir := strings.HasSuffix(a, "/")
		return matcher.Match(strings.Split(strings.TrimSuffix(a, "/"), "/"), isDir)
	})
	return files
}
