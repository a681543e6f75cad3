// Copyright 2026 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/mdfmt/pkg/config"
	"github.com/walteh/mdfmt/pkg/finder"
	"github.com/walteh/mdfmt/pkg/log"
	"github.com/walteh/mdfmt/pkg/operation"
	"github.com/walteh/mdfmt/pkg/status"
)

// ErrFilesFailed is returned when at least one document could not be processed
var ErrFilesFailed = errors.Base("one or more files failed")

// rootOpts holds the flags of the root command
type rootOpts struct {
	configFile  string
	debug       bool
	verbose     bool
	dryRun      bool
	delete      bool
	diff        bool
	concurrency int
}

// newRootCmd builds the mdfmt command writing user output to stdout and diagnostics to stderr
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:   "mdfmt [PATH]",
		Short: "Normalize blank lines in markdown files",
		Long: `mdfmt collapses runs of blank lines and puts exactly one blank line around
headings, lists and code fences. Frontmatter and fence contents are left alone.

PATH may be a markdown file or a directory to search recursively. It defaults
to the current directory.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), stderr, opts.debug)
			return opts.run(ctx, cmd, args, stdout)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	addRootFlags(cmd, opts)
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// addRootFlags adds the root command flags
func addRootFlags(cmd *cobra.Command, opts *rootOpts) {
	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "config file path (default: .mdfmt.{yaml,yml,hcl,json} in the target directory)")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "also list unchanged files")
	flags.BoolVarP(&opts.dryRun, "dry-run", "n", false, "report changes without writing or deleting files")
	flags.BoolVar(&opts.delete, "delete", false, "delete empty files and files with an empty body after frontmatter")
	flags.BoolVar(&opts.diff, "diff", false, "print a unified diff for each file that would change (with --dry-run)")
	flags.IntVarP(&opts.concurrency, "concurrency", "j", runtime.NumCPU(), "number of files processed in parallel")
}

// setupLogging attaches a zerolog logger to the context
func setupLogging(ctx context.Context, w io.Writer, debug bool) context.Context {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}

func (o *rootOpts) run(ctx context.Context, cmd *cobra.Command, args []string, stdout io.Writer) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}

	info, err := os.Stat(target)
	if err != nil {
		return errors.Errorf("accessing path %q: %w", target, err)
	}

	dir := target
	if !info.IsDir() {
		dir = filepath.Dir(target)
	}

	cfg, err := o.loadConfig(ctx, cmd, dir)
	if err != nil {
		return err
	}
	zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Msg("configuration resolved")

	user := log.NewUserLogger(ctx, stdout)
	user.LogConfig(cfg.Location())

	// directory runs report paths relative to the directory, single files as given
	baseDir := ""
	findOpts := finder.Options{Extensions: cfg.Extensions, Ignore: cfg.Ignore}
	var files []string
	if info.IsDir() {
		baseDir = target
		files, err = findRelative(ctx, target, findOpts)
		if err != nil {
			return err
		}
	} else {
		if !info.Mode().IsRegular() || !finder.IsDocument(target, findOpts) {
			return errors.Errorf("%s is not a markdown file", target)
		}
		files = []string{target}
	}

	user.LogFound(len(files))
	if len(files) == 0 {
		return nil
	}
	if cfg.DryRun {
		user.LogDryRun()
	}

	mgr := status.New(baseDir)
	logger := log.New(stdout, cfg.Verbose)
	logger.Header(fmt.Sprintf("formatting %s", target))

	op, err := operation.NewFormatOperation(operation.Options{
		Config:    cfg,
		Files:     files,
		StatusMgr: mgr,
		Logger:    logger,
	})
	if err != nil {
		return errors.Errorf("creating operation: %w", err)
	}
	if err := op.Execute(ctx); err != nil {
		return errors.Errorf("running format operation: %w", err)
	}

	summary := mgr.Summary()
	logger.Summary(ctx, summary, cfg.DryRun)
	if summary.Errors > 0 {
		for _, file := range mgr.ListFiles(ctx) {
			if file.Status == status.StatusError {
				user.LogFailed(file.Path, file.Error)
			}
		}
		return errors.Errorf("%d of %d files: %w", summary.Errors, summary.Processed, ErrFilesFailed)
	}
	return nil
}

// findRelative discovers the documents under dir and returns them relative to dir
func findRelative(ctx context.Context, dir string, opts finder.Options) ([]string, error) {
	found, err := finder.Find(ctx, dir, opts)
	if err != nil {
		return nil, errors.Errorf("finding markdown files: %w", err)
	}

	files := make([]string, 0, len(found))
	for _, path := range found {
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil, errors.Errorf("resolving %s: %w", path, err)
		}
		files = append(files, rel)
	}
	return files, nil
}

// loadConfig reads the config file and applies the flags the user set explicitly
func (o *rootOpts) loadConfig(ctx context.Context, cmd *cobra.Command, dir string) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if o.configFile != "" {
		cfg, err = config.Load(ctx, o.configFile)
	} else {
		cfg, err = config.Discover(ctx, dir)
	}
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = o.verbose
	}
	if flags.Changed("dry-run") {
		cfg.DryRun = o.dryRun
	}
	if flags.Changed("delete") {
		cfg.Delete = o.delete
	}
	if flags.Changed("diff") {
		cfg.Diff = o.diff
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = o.concurrency
	}

	if err := cfg.Validate(ctx); err != nil {
		return nil, errors.Errorf("validating flags: %w", err)
	}
	return cfg, nil
}
