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


// Package yaml reads configuration files strictly and writes them in
// yamlfmt's layout.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/google/yamlfmt/formatters/basic"
	"gopkg.in/yaml.v3"
)

// StringSlice is a list whose nil and empty forms stay distinct. An absent
// key decodes to nil and is dropped by omitempty; `key: []` decodes to an
// empty list and is written back as `[]`.
type StringSlice []string

// IsZero lets omitempty drop only a nil StringSlice.
func (s StringSlice) IsZero() bool {
	return s == nil
}

// Unmarshal decodes data into a new T. Keys that T does not declare are an
// error, so a misspelled key is reported rather than ignored. Empty input
// yields the zero T.
func Unmarshal[T any](data []byte) (*T, error) {
	var v T
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&v); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &v, nil
}

// Marshal encodes v with two-space indentation and formats it with yamlfmt.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	formatter, err := (&basic.BasicFormatterFactory{}).NewFormatter(nil)
	if err != nil {
		return nil, err
	}
	return formatter.Format(buf.Bytes())
}

// Read decodes the file at path with [Unmarshal].
func Read[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Unmarshal[T](data)
}
