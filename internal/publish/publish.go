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

// Package publish implements the publish command, which uploads the
// distributions built by `uv build` to PyPI or TestPyPI with `uv publish`
// after confirming with the user.
package publish

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/aury-dev/publish/internal/command"
	"github.com/aury-dev/publish/internal/config"
	"github.com/aury-dev/publish/internal/i18n"
	"github.com/aury-dev/publish/internal/ui"
	"github.com/aury-dev/publish/internal/yaml"
	"github.com/urfave/cli/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	flagConfig       = "config"
	flagDistDir      = "dist-dir"
	flagDryRun       = "dry-run"
	flagRequireClean = "require-clean"
	flagShowConfig   = "show-config"
	flagVerbose      = "verbose"

	envConfig       = "PUBLISH_CONFIG"
	envDistDir      = "PUBLISH_DIST_DIR"
	envRequireClean = "PUBLISH_REQUIRE_CLEAN"
)

// Run executes the publish CLI with the given command line arguments. The
// first argument is the program name.
func Run(ctx context.Context, args ...string) error {
	a := newApp(os.Stdin, os.Stdout, os.Stderr, i18n.Detect(os.Getenv))
	return a.run(ctx, args)
}

// app holds the streams and localized output of one invocation.
type app struct {
	in      io.Reader
	out     io.Writer
	err     io.Writer
	tag     language.Tag
	printer *message.Printer
	report  *ui.Reporter
}

func newApp(in io.Reader, out, err io.Writer, tag language.Tag) *app {
	return &app{
		in:      in,
		out:     out,
		err:     err,
		tag:     tag,
		printer: i18n.NewPrinter(tag),
		report:  ui.New(out, err),
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	err := a.command().Run(ctx, args)
	var f *failure
	var upstream *UpstreamError
	if err != nil && !errors.As(err, &f) && !errors.As(err, &upstream) {
		// Errors raised by the CLI library itself.
		a.report.Error(err.Error())
	}
	return err
}

func setupLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	handler := slog.NewTextHandler(os.Stderr, opts)
	slog.SetDefault(slog.New(handler))
}

func (a *app) command() *cli.Command {
	usage := i18n.Usage(a.tag)
	return &cli.Command{
		Name:                          "publish",
		Usage:                         a.printer.Sprintf("publish Python distributions to PyPI with uv"),
		UsageText:                     "publish [test|prod] [flags]",
		CustomRootCommandHelpTemplate: usage,
		CustomHelpTemplate:            usage,
		HideHelpCommand:               true,
		HideVersion:                   true,
		Writer:                        a.out,
		ErrWriter:                     a.err,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Usage:   "read configuration from `path`",
				Value:   config.DefaultPath,
				Sources: cli.EnvVars(envConfig),
			},
			&cli.StringFlag{
				Name:    flagDistDir,
				Usage:   "publish the distributions in `directory`",
				Sources: cli.EnvVars(envDistDir),
			},
			&cli.BoolFlag{
				Name:  flagDryRun,
				Usage: "run every check, then print the uv command instead of running it",
			},
			&cli.BoolFlag{
				Name:    flagRequireClean,
				Usage:   "fail when the git working tree has uncommitted changes",
				Sources: cli.EnvVars(envRequireClean),
			},
			&cli.BoolFlag{
				Name:  flagShowConfig,
				Usage: "print the effective configuration and exit",
			},
			&cli.BoolFlag{
				Name:    flagVerbose,
				Aliases: []string{"v"},
				Usage:   "enable verbose logging",
			},
		},
		OnUsageError: func(ctx context.Context, cmd *cli.Command, err error, isSubcommand bool) error {
			return a.fail(ErrInvalidArgument, a.printer.Sprintf("invalid argument: %v", err), err)
		},
		// A target given before -h or --help arrives here as a help topic.
		CommandNotFound: func(_ context.Context, cmd *cli.Command, _ string) {
			_ = cli.ShowRootCommandHelp(cmd)
		},
		// Exit codes are chosen by the caller; the library must not exit.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			verbose := cmd.Bool(flagVerbose)
			setupLogger(verbose)
			command.Verbose = verbose

			if cmd.Args().Len() > 1 {
				return a.fail(ErrInvalidArgument, a.printer.Sprintf("invalid argument %q: expected \"test\" or \"prod\"", cmd.Args().Get(1)), nil)
			}
			target, err := ParseTarget(cmd.Args().First())
			if err != nil {
				return a.fail(ErrInvalidArgument, a.printer.Sprintf("invalid argument %q: expected \"test\" or \"prod\"", cmd.Args().First()), err)
			}

			path := cmd.String(flagConfig)
			if path == "" {
				path = config.DefaultPath
			}
			cfg, err := config.Read(path)
			if err != nil {
				return a.fail(ErrInvalidArgument, a.printer.Sprintf("Cannot read %s: %v", path, err), err)
			}
			if dir := cmd.String(flagDistDir); dir != "" {
				cfg.SetDistDir(dir)
			}
			if cmd.Bool(flagRequireClean) {
				cfg.RequireClean = true
			}
			slog.Debug("configuration loaded", "path", path, "dist_dir", cfg.DistDir, "target", string(target))

			if cmd.Bool(flagShowConfig) {
				return a.showConfig(cfg)
			}
			r := &runner{
				app:    a,
				cfg:    cfg,
				target: target,
				dryRun: cmd.Bool(flagDryRun),
			}
			return r.run(ctx)
		},
	}
}

// fail prints msg as an error and returns it as a failure of the given kind.
func (a *app) fail(kind error, msg string, err error) error {
	a.report.Error(msg)
	return &failure{kind: kind, msg: msg, err: err}
}

func (a *app) showConfig(cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = a.out.Write(data)
	return err
}
