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

package publish

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"
)

var (
	// ErrEnvironmentMissing is reported when uv cannot be found.
	ErrEnvironmentMissing = errors.New("environment missing")

	// ErrArtifactsMissing is reported when the dist directory is absent,
	// empty, or lacks a wheel or a source archive.
	ErrArtifactsMissing = errors.New("artifacts missing")

	// ErrInvalidArgument is reported for an unknown target, an unknown
	// flag, or an unreadable configuration file.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConfirmation is reported when the confirmation answer cannot be
	// read.
	ErrConfirmation = errors.New("confirmation failed")

	// ErrWorkTreeUnclean is reported when a clean git working tree is
	// required and it has uncommitted changes or cannot be checked.
	ErrWorkTreeUnclean = errors.New("work tree unclean")
)

// failure is a fatal precondition error. Its message has already been
// localized and printed.
type failure struct {
	kind error
	msg  string
	err  error
}

func (f *failure) Error() string {
	if f.err != nil {
		return fmt.Sprintf("%v: %s: %v", f.kind, f.msg, f.err)
	}
	return fmt.Sprintf("%v: %s", f.kind, f.msg)
}

// Is reports kind as the sentinel this failure belongs to.
func (f *failure) Is(target error) bool {
	return target == f.kind
}

func (f *failure) Unwrap() error {
	return f.err
}

// ExitCode implements [cli.ExitCoder].
func (f *failure) ExitCode() int {
	return 1
}

// UpstreamError is returned when `uv publish` runs and fails. The program
// exits with the same status.
type UpstreamError struct {
	// Code is the exit status of uv.
	Code int
	err  error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("uv publish failed with exit status %d: %v", e.Code, e.err)
}

func (e *UpstreamError) Unwrap() error {
	return e.err
}

// ExitCode implements [cli.ExitCoder]. A child killed by a signal reports 1.
func (e *UpstreamError) ExitCode() int {
	if e.Code <= 0 {
		return 1
	}
	return e.Code
}

// ExitCode returns the process exit status for an error returned by [Run]:
// 0 for nil, the status carried by a [cli.ExitCoder], and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}
