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

// Package ui writes labelled status lines to the terminal and reads the
// publish confirmation.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ConfirmWord is the only answer accepted by [Reporter.Confirm].
const ConfirmWord = "yes"

type level int

const (
	levelInfo level = iota
	levelSuccess
	levelWarn
	levelError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

func (l level) label() string {
	switch l {
	case levelSuccess:
		return "SUCCESS"
	case levelWarn:
		return "WARNING"
	case levelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func (l level) color() string {
	switch l {
	case levelSuccess:
		return ansiGreen
	case levelWarn:
		return ansiYellow
	case levelError:
		return ansiRed
	default:
		return ansiBlue
	}
}

// Reporter writes labelled lines: info and success to Out, warnings and
// errors to Err.
type Reporter struct {
	Out io.Writer
	Err io.Writer
	// Color enables ANSI colouring of the labels.
	Color bool
}

// New returns a Reporter that colours its labels when out is a terminal
// and NO_COLOR is unset.
func New(out, err io.Writer) *Reporter {
	return &Reporter{Out: out, Err: err, Color: colorize(out)}
}

func colorize(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Info writes an informational line.
func (r *Reporter) Info(msg string) { r.write(r.Out, levelInfo, msg) }

// Success writes a success line.
func (r *Reporter) Success(msg string) { r.write(r.Out, levelSuccess, msg) }

// Warn writes a warning line.
func (r *Reporter) Warn(msg string) { r.write(r.Err, levelWarn, msg) }

// Error writes an error line.
func (r *Reporter) Error(msg string) { r.write(r.Err, levelError, msg) }

// Println writes msg to Out without a label.
func (r *Reporter) Println(msg string) {
	fmt.Fprintln(r.Out, msg)
}

func (r *Reporter) write(w io.Writer, l level, msg string) {
	label := "[" + l.label() + "]"
	if r.Color {
		label = l.color() + label + ansiReset
	}
	fmt.Fprintf(w, "%s %s\n", label, msg)
}

// Confirm writes prompt to Out and reads one line from in. It reports true
// only when the line, without surrounding whitespace, is exactly
// [ConfirmWord]. End of input counts as a refusal. Input after the line is
// left unread for the next reader of in.
func (r *Reporter) Confirm(in io.Reader, prompt string) (bool, error) {
	fmt.Fprint(r.Out, prompt)
	line, err := readLine(in)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	if errors.Is(err, io.EOF) {
		// Keep the next line of output off the prompt line.
		fmt.Fprintln(r.Out)
	}
	return strings.TrimSpace(line) == ConfirmWord, nil
}

// readLine reads up to and including the next newline one byte at a time.
func readLine(in io.Reader) (string, error) {
	var line []byte
	b := make([]byte, 1)
	for {
		n, err := in.Read(b)
		if n > 0 {
			line = append(line, b[0])
			if b[0] == '\n' {
				return string(line), nil
			}
		}
		if err != nil {
			return string(line), err
		}
	}
}
