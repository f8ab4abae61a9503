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

// Package command provides helpers to execute external commands with logging.
package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Verbose controls whether commands are printed to stderr before execution.
var Verbose bool

// Streams holds the standard streams handed to an interactive child process.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run executes a program (with arguments) and captures any error output.
func Run(ctx context.Context, command string, arg ...string) error {
	cmd := exec.CommandContext(ctx, command, arg...)
	if Verbose {
		fmt.Fprintf(os.Stderr, "%s\n", cmd.String())
	}
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%v: %v\n%s", cmd, err, output)
	}
	return nil
}

// Output executes a program and returns its standard output. Standard error
// is discarded.
func Output(ctx context.Context, command string, arg ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, command, arg...)
	if Verbose {
		fmt.Fprintf(os.Stderr, "%s\n", cmd.String())
	}
	return cmd.Output()
}

// RunInteractive executes a program connected to the given streams, so that
// it can prompt the user. The returned error is the *exec.ExitError from the
// child, unwrapped, so callers can inspect the exit status.
func RunInteractive(ctx context.Context, streams Streams, command string, arg ...string) error {
	cmd := exec.CommandContext(ctx, command, arg...)
	cmd.Stdin = streams.In
	cmd.Stdout = streams.Out
	cmd.Stderr = streams.Err
	return cmd.Run()
}

// GetExecutablePath finds the path for a given command, checking for an
// override in the provided commandOverrides map first.
func GetExecutablePath(commandOverrides map[string]string, commandName string) string {
	if exe, ok := commandOverrides[commandName]; ok {
		return exe
	}
	return commandName
}

// LookPath reports where the given executable resolves to. Absolute and
// relative paths are checked directly; bare names are searched for in PATH.
func LookPath(command string) (string, error) {
	path, err := exec.LookPath(command)
	if err != nil {
		return "", fmt.Errorf("%s not found: %w", command, err)
	}
	return path, nil
}
