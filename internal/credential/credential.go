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

// Package credential detects where upload credentials will come from. It
// never stores credentials and never returns a secret read from a credential
// store; only a token supplied through the environment is passed on.
package credential

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/aury-dev/publish/internal/command"
	"github.com/zalando/go-keyring"
)

// TokenEnv is the environment variable uv reads its upload token from.
const TokenEnv = "UV_PUBLISH_TOKEN"

// errProbeUnavailable is returned by a Prober that cannot run at all, for
// example because the keyring CLI is not installed.
var errProbeUnavailable = errors.New("credential probe unavailable")

// Source identifies where the upload credential comes from.
type Source int

const (
	// None means no credential was found; uv will prompt.
	None Source = iota
	// Env means the token comes from [TokenEnv].
	Env
	// Keyring means a credential is saved in a credential store.
	Keyring
)

func (s Source) String() string {
	switch s {
	case Env:
		return "env"
	case Keyring:
		return "keyring"
	default:
		return "none"
	}
}

// Result is the outcome of [Detector.Detect].
type Result struct {
	Source Source
	// Token is the value of [TokenEnv]. It is empty unless Source is Env.
	Token string
	// Via names what found the credential: the environment variable or the
	// probe that answered.
	Via string
}

// Prober checks a credential store for a saved credential.
type Prober interface {
	// Name identifies the credential store in user-facing messages.
	Name() string
	// Probe reports whether a credential is saved for service and user.
	Probe(ctx context.Context, service, user string) (bool, error)
}

// Detector finds the credential source for an upload.
type Detector struct {
	// Probers are tried in order after the environment.
	Probers []Prober
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// NewDetector returns a Detector that consults the keyring CLI at
// keyringExe and then the OS keyring.
func NewDetector(keyringExe string) *Detector {
	return &Detector{
		Probers: []Prober{
			&CLIProber{Exe: keyringExe},
			&OSProber{},
		},
	}
}

// Detect reports where the credential for service will come from. It never
// fails: probe errors are logged and treated as "not found", leaving uv to
// resolve credentials on its own.
func (d *Detector) Detect(ctx context.Context, service, user string) Result {
	lookup := d.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if token, ok := lookup(TokenEnv); ok && token != "" {
		return Result{Source: Env, Token: token, Via: TokenEnv}
	}
	for _, p := range d.Probers {
		found, err := p.Probe(ctx, service, user)
		if err != nil {
			slog.Debug("credential probe failed", "probe", p.Name(), "error", err)
			continue
		}
		if found {
			return Result{Source: Keyring, Via: p.Name()}
		}
	}
	return Result{Source: None}
}

// CLIProber queries the `keyring` command line tool, which is the backend
// `uv --keyring-provider subprocess` uses. The secret it prints is
// discarded.
type CLIProber struct {
	// Exe is the keyring executable.
	Exe string
}

// Name implements [Prober].
func (p *CLIProber) Name() string {
	return "keyring"
}

// Probe implements [Prober].
func (p *CLIProber) Probe(ctx context.Context, service, user string) (bool, error) {
	if _, err := command.LookPath(p.Exe); err != nil {
		return false, fmt.Errorf("%w: %w", errProbeUnavailable, err)
	}
	out, err := command.Output(ctx, p.Exe, "get", service, user)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// keyring exits non-zero when nothing is stored.
			return false, nil
		}
		return false, err
	}
	return len(out) > 0, nil
}

// OSProber queries the operating system keyring directly.
type OSProber struct{}

// Name implements [Prober].
func (p *OSProber) Name() string {
	return "system keyring"
}

// Probe implements [Prober].
func (p *OSProber) Probe(_ context.Context, service, user string) (bool, error) {
	secret, err := keyring.Get(service, user)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return secret != "", nil
}
