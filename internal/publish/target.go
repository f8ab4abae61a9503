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
	"fmt"

	"github.com/aury-dev/publish/internal/config"
)

// Target selects the package index to upload to.
type Target string

const (
	// TargetProd is PyPI. It is the default.
	TargetProd Target = "prod"
	// TargetTest is TestPyPI.
	TargetTest Target = "test"
)

// ParseTarget parses the positional argument. An empty string selects
// [TargetProd].
func ParseTarget(s string) (Target, error) {
	switch Target(s) {
	case "", TargetProd:
		return TargetProd, nil
	case TargetTest:
		return TargetTest, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidArgument, s)
}

// Endpoint returns the upload URL for the target.
func (t Target) Endpoint(cfg *config.Config) string {
	if t == TargetTest {
		return cfg.Endpoints.Test
	}
	return cfg.Endpoints.Prod
}

// ProjectURL returns the page of project on the target's index.
func (t Target) ProjectURL(project string) string {
	if t == TargetTest {
		return "https://test.pypi.org/project/" + project + "/"
	}
	return "https://pypi.org/project/" + project + "/"
}
