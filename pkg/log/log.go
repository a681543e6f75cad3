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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/walteh/mdfmt/pkg/status"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // base width for the document path
	statusWidth = 14 // width for the status text
)

// 🎯 Logger prints one line per document and the run summary.
// Every console line is mirrored to the zerolog logger found in the context.
type Logger struct {
	console io.Writer
	verbose bool
	mu      sync.Mutex
}

// 🏭 New creates a new logger. Unchanged documents are only printed when verbose.
func New(console io.Writer, verbose bool) *Logger {
	return &Logger{
		console: console,
		verbose: verbose,
	}
}

// 📝 statusLabel is the console word for a document outcome
func statusLabel(info status.FileInfo) string {
	switch info.Status {
	case status.StatusModified:
		if info.DryRun {
			return "would modify"
		}
		return "modified"
	case status.StatusDeleted:
		if info.DryRun {
			return "would delete"
		}
		return "deleted"
	case status.StatusError:
		return "error"
	default:
		return "unchanged"
	}
}

// 📝 formatFile formats a document outcome for display
func (l *Logger) formatFile(info status.FileInfo) string {
	var symbol rune
	var symbolColor color.Attribute
	switch info.Status {
	case status.StatusDeleted:
		symbol = '✗'
		symbolColor = color.FgRed
	case status.StatusModified:
		symbol = '⟳'
		symbolColor = color.FgBlue
	case status.StatusError:
		symbol = '!'
		symbolColor = color.FgRed
	default:
		symbol = '•'
		symbolColor = color.FgCyan
	}

	line := fmt.Sprintf("%s%s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, info.Path),
		fmt.Sprintf("%-*s", statusWidth, statusLabel(info)))

	switch {
	case info.Error != nil:
		line += color.New(color.FgRed).Sprint(info.Error.Error())
	case info.Reason != "":
		line += color.New(color.Faint).Sprint(info.Reason)
	}
	return line
}

// 📝 LogFile prints the outcome of a single document
func (l *Logger) LogFile(ctx context.Context, info status.FileInfo) {
	l.LogFileDiff(ctx, info, nil)
}

// 📝 LogFileDiff prints the outcome of a single document followed by its unified diff.
// Both are written under one lock so concurrent documents never interleave.
func (l *Logger) LogFileDiff(ctx context.Context, info status.FileInfo, diff []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()

	event := zerolog.Ctx(ctx).Info()
	if info.Error != nil {
		event = zerolog.Ctx(ctx).Error().Err(info.Error)
	}
	event.
		Str("file", info.Path).
		Str("status", info.Status.String()).
		Str("reason", info.Reason).
		Bool("dry_run", info.DryRun).
		Msg("file processed")

	if info.Status == status.StatusUnchanged && !l.verbose {
		return
	}
	fmt.Fprintln(l.console, l.formatFile(info))
	if len(diff) > 0 {
		_, _ = l.console.Write(diff)
	}
}

// 📊 Summary prints the aggregate counts of a run
func (l *Logger) Summary(ctx context.Context, s status.Summary, dryRun bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	modified, deleted := "Files modified", "Files deleted"
	if dryRun {
		modified, deleted = "Files to modify", "Files to delete"
	}

	errCount := fmt.Sprint(s.Errors)
	if s.Errors > 0 {
		errCount = color.New(color.FgRed).Sprint(s.Errors)
	}

	fmt.Fprintf(l.console, "\n%s\n", color.New(color.Bold).Sprint("Summary:"))
	fmt.Fprintf(l.console, "  Files processed: %d\n", s.Processed)
	fmt.Fprintf(l.console, "  %s: %d\n", modified, s.Modified)
	fmt.Fprintf(l.console, "  %s: %d\n", deleted, s.Deleted)
	fmt.Fprintf(l.console, "  Errors: %s\n", errCount)

	zerolog.Ctx(ctx).Info().
		Int("processed", s.Processed).
		Int("unchanged", s.Unchanged).
		Int("modified", s.Modified).
		Int("deleted", s.Deleted).
		Int("errors", s.Errors).
		Bool("dry_run", dryRun).
		Msg("run complete")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("mdfmt")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
}
