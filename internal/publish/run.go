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
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/aury-dev/publish/internal/command"
	"github.com/aury-dev/publish/internal/config"
	"github.com/aury-dev/publish/internal/credential"
	"github.com/aury-dev/publish/internal/dist"
	"github.com/aury-dev/publish/internal/git"
	"github.com/kballard/go-shellquote"
)

const (
	uvInstallHint = "%s was not found. Install uv first:\n  curl -LsSf https://astral.sh/uv/install.sh | sh\n  pip install uv\nSee https://docs.astral.sh/uv/getting-started/installation/"

	redacted = "****"
)

var errNotWorkTree = errors.New("not a git working tree")

// runner performs one publish: the gates, the confirmation and the upload.
type runner struct {
	*app
	cfg    *config.Config
	target Target
	dryRun bool
}

func (r *runner) run(ctx context.Context) error {
	uvExe := command.GetExecutablePath(r.cfg.Preinstalled, "uv")
	if _, err := command.LookPath(uvExe); err != nil {
		return r.fail(ErrEnvironmentMissing, r.printer.Sprintf(uvInstallHint, uvExe), err)
	}

	artifacts, err := dist.Inspect(r.cfg.DistDir)
	if err != nil {
		return r.fail(ErrArtifactsMissing, r.distMessage(err), err)
	}
	r.listArtifacts(artifacts)
	project := r.checkArtifacts(artifacts)
	if err := r.checkWorkTree(ctx); err != nil {
		return err
	}

	endpoint := r.target.Endpoint(r.cfg)
	cred := r.detectCredential(ctx)

	ok, err := r.report.Confirm(r.in, r.printer.Sprintf("Publish to %s at %s? Type \"yes\" to continue: ", r.targetName(), endpoint))
	if err != nil {
		return r.fail(ErrConfirmation, r.printer.Sprintf("Could not read the confirmation: %v", err), err)
	}
	if !ok {
		r.report.Info(r.printer.Sprintf("Publish cancelled."))
		return nil
	}

	args := uvArgs(r.cfg.DistDir, endpoint, cred.Token)
	line := commandLine(uvExe, args)
	if r.dryRun {
		r.report.Info(r.printer.Sprintf("Dry run; would run: %s", line))
		return nil
	}
	slog.Debug("running uv", "command", line)
	r.report.Info(r.printer.Sprintf("Uploading to %s...", endpoint))
	streams := command.Streams{In: r.in, Out: r.out, Err: r.err}
	if err := command.RunInteractive(ctx, streams, uvExe, args...); err != nil {
		return r.upstreamFailure(err)
	}

	if project != "" {
		r.report.Success(r.printer.Sprintf("Published successfully: %s", r.target.ProjectURL(project)))
	} else {
		r.report.Success(r.printer.Sprintf("Published successfully."))
	}
	return nil
}

func (r *runner) distMessage(err error) string {
	dir := r.cfg.DistDir
	switch {
	case errors.Is(err, dist.ErrDistNotFound):
		return r.printer.Sprintf("%s does not exist. Run \"uv build\" first.", dir)
	case errors.Is(err, dist.ErrDistEmpty):
		return r.printer.Sprintf("%s is empty. Run \"uv build\" first.", dir)
	case errors.Is(err, dist.ErrNoWheel):
		return r.printer.Sprintf("No wheel file (*.whl) found in %s. Run \"uv build\" first.", dir)
	case errors.Is(err, dist.ErrNoSdist):
		return r.printer.Sprintf("No source archive (*.tar.gz) found in %s. Run \"uv build\" first.", dir)
	default:
		return r.printer.Sprintf("Cannot read %s: %v", dir, err)
	}
}

func (r *runner) listArtifacts(artifacts []*dist.Artifact) {
	r.report.Info(r.printer.Sprintf("Found %d distribution file(s) in %s:", len(artifacts), r.cfg.DistDir))
	headers := []string{
		r.printer.Sprintf("File"),
		r.printer.Sprintf("Type"),
		r.printer.Sprintf("Version"),
		r.printer.Sprintf("Size"),
	}
	r.report.Println(dist.Render(artifacts, headers))
}

// checkArtifacts warns about multiple or stale artifacts and returns the
// project name to link to after the upload, which may be empty.
func (r *runner) checkArtifacts(artifacts []*dist.Artifact) string {
	wheels, sdists := dist.Count(artifacts, dist.Wheel), dist.Count(artifacts, dist.Sdist)
	if wheels > 1 || sdists > 1 {
		r.report.Warn(r.printer.Sprintf("Found %d wheel files and %d source archives; all of them will be uploaded.", wheels, sdists))
	}

	project, err := dist.ReadProject(r.cfg.PyProject)
	if err != nil {
		slog.Debug("skipping stale artifact check", "path", r.cfg.PyProject, "error", err)
		return projectFromArtifacts(artifacts)
	}
	for _, a := range dist.Stale(artifacts, project) {
		r.report.Warn(r.printer.Sprintf("%s does not match %s %s from %s; it may be a stale build.",
			a.Name, project.Name, project.Version, r.cfg.PyProject))
	}
	if project.Name != "" {
		return project.Name
	}
	return projectFromArtifacts(artifacts)
}

func projectFromArtifacts(artifacts []*dist.Artifact) string {
	for _, a := range artifacts {
		if a.Project != "" {
			return a.Project
		}
	}
	return ""
}

// checkWorkTree reports uncommitted changes as a warning, or as an error when
// cfg.RequireClean is set. Without git or a repository the check is skipped
// unless a clean tree is required.
func (r *runner) checkWorkTree(ctx context.Context) error {
	gitExe := command.GetExecutablePath(r.cfg.Preinstalled, "git")
	if _, err := command.LookPath(gitExe); err != nil {
		return r.uncheckedWorkTree(err)
	}
	if !git.IsWorkTree(ctx, gitExe) {
		return r.uncheckedWorkTree(errNotWorkTree)
	}
	err := git.AssertGitStatusClean(ctx, gitExe, r.cfg.IgnoredChanges)
	var unclean *git.UncleanError
	switch {
	case errors.As(err, &unclean):
		msg := r.printer.Sprintf("The git working tree has uncommitted changes: %s", strings.Join(unclean.Files, ", "))
		if r.cfg.RequireClean {
			return r.fail(ErrWorkTreeUnclean, msg, err)
		}
		r.report.Warn(msg)
	case err != nil:
		return r.uncheckedWorkTree(err)
	}
	return nil
}

func (r *runner) uncheckedWorkTree(err error) error {
	if r.cfg.RequireClean {
		return r.fail(ErrWorkTreeUnclean, r.printer.Sprintf("Cannot check the git working tree: %v", err), err)
	}
	slog.Debug("skipping git status check", "error", err)
	return nil
}

func (r *runner) detectCredential(ctx context.Context) credential.Result {
	keyringExe := command.GetExecutablePath(r.cfg.Preinstalled, "keyring")
	// uv looks credentials up under its default endpoint.
	cred := credential.NewDetector(keyringExe).Detect(ctx, r.cfg.Endpoints.Prod, r.cfg.Keyring.Username)
	slog.Debug("credential detected", "source", cred.Source.String(), "via", cred.Via)
	switch cred.Source {
	case credential.Env:
		r.report.Info(r.printer.Sprintf("Using the token from %s.", cred.Via))
	case credential.Keyring:
		r.report.Info(r.printer.Sprintf("Found a saved credential for %s (%s).", r.cfg.Endpoints.Prod, cred.Via))
	default:
		r.report.Warn(r.printer.Sprintf("No token found in %s or the keyring; uv will prompt for credentials.", credential.TokenEnv))
	}
	return cred
}

func (r *runner) targetName() string {
	if r.target == TargetTest {
		return r.printer.Sprintf("TestPyPI (test)")
	}
	return r.printer.Sprintf("PyPI (production)")
}

func (r *runner) upstreamFailure(err error) error {
	code := 1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	upstream := &UpstreamError{Code: code, err: err}
	r.report.Error(r.printer.Sprintf("uv publish failed with exit status %d", upstream.ExitCode()))
	return upstream
}

// uvArgs returns the arguments for `uv publish`. The endpoint is passed only
// when it differs from uv's default, and the files only when distDir is not
// the directory uv reads by default.
func uvArgs(distDir, endpoint, token string) []string {
	args := []string{"publish"}
	if endpoint != config.ProdEndpoint {
		args = append(args, "--publish-url", endpoint)
	}
	if token != "" {
		args = append(args, "--token", token)
	}
	if filepath.Clean(distDir) != config.DefaultDistDir {
		args = append(args, filepath.Join(distDir, "*"))
	}
	return args
}

// commandLine renders exe and args as a shell command with the token value
// replaced by a placeholder.
func commandLine(exe string, args []string) string {
	parts := []string{shellquote.Join(exe)}
	for i, arg := range args {
		if i > 0 && args[i-1] == "--token" {
			parts = append(parts, redacted)
			continue
		}
		parts = append(parts, shellquote.Join(arg))
	}
	return strings.Join(parts, " ")
}
