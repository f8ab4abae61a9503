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
	"testing"

	"github.com/aury-dev/publish/internal/config"
)

func TestParseTarget(t *testing.T) {
	for _, test := range []struct {
		in      string
		want    Target
		wantErr bool
	}{
		{in: "", want: TargetProd},
		{in: "prod", want: TargetProd},
		{in: "test", want: TargetTest},
		{in: "Test", wantErr: true},
		{in: "production", wantErr: true},
		{in: "-h", wantErr: true},
	} {
		t.Run(test.in, func(t *testing.T) {
			got, err := ParseTarget(test.in)
			if test.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Fatalf("ParseTarget(%q) error = %v, want %v", test.in, err, ErrInvalidArgument)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != test.want {
				t.Errorf("ParseTarget(%q) = %q, want %q", test.in, got, test.want)
			}
		})
	}
}

func TestTargetEndpoint(t *testing.T) {
	cfg := config.Default()
	cfg.Endpoints.Test = "https://test.example.com/legacy/"
	if got, want := TargetProd.Endpoint(cfg), config.ProdEndpoint; got != want {
		t.Errorf("TargetProd.Endpoint() = %q, want %q", got, want)
	}
	if got, want := TargetTest.Endpoint(cfg), "https://test.example.com/legacy/"; got != want {
		t.Errorf("TargetTest.Endpoint() = %q, want %q", got, want)
	}
}

func TestTargetProjectURL(t *testing.T) {
	if got, want := TargetProd.ProjectURL("aury"), "https://pypi.org/project/aury/"; got != want {
		t.Errorf("TargetProd.ProjectURL() = %q, want %q", got, want)
	}
	if got, want := TargetTest.ProjectURL("aury"), "https://test.pypi.org/project/aury/"; got != want {
		t.Errorf("TargetTest.ProjectURL() = %q, want %q", got, want)
	}
}
