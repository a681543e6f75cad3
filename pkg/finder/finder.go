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

// Package finder discovers markdown documents below a directory.
package finder

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultExtensions is used when Options.Extensions is empty
var DefaultExtensions = []string{".md"}

// 🔧 Options controls which files are treated as documents
type Options struct {
	Extensions []string // file extensions including the dot
	Ignore     []string // doublestar patterns, relative to the root, slash separated
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions
	}
	return o.Extensions
}

// 🔍 Find walks root recursively and returns every regular file with a document extension,
// sorted by path. Entries that cannot be read are logged and skipped.
func Find(ctx context.Context, root string, opts Options) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	include := make([]string, 0, len(opts.extensions()))
	for _, ext := range opts.extensions() {
		include = append(include, "**/*"+ext)
	}
	for _, pattern := range append(include, opts.Ignore...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid pattern: %q", pattern)
		}
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			if path == root {
				return errors.Errorf("reading %s: %w", root, err)
			}
			logger.Warn().Err(err).Str("path", path).Msg("skipping unreadable entry")
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if matchAny(opts.Ignore, rel) {
			logger.Debug().Str("path", path).Msg("ignored by pattern")
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !matchAny(include, rel) {
			return nil
		}

		regular, err := isRegular(path, d)
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("skipping unreadable entry")
			return nil
		}
		if regular {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

// 📄 IsDocument reports whether a path carries one of the document extensions
func IsDocument(path string, opts Options) bool {
	ext := filepath.Ext(path)
	for _, want := range opts.extensions() {
		if ext == want {
			return true
		}
	}
	return false
}

func matchAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, rel); err == nil && matched {
			return true
		}
	}
	return false
}

// isRegular resolves symlinks so that a link to a document counts and a link to a directory does not
func isRegular(path string, d fs.DirEntry) (bool, error) {
	if d.Type().IsRegular() {
		return true, nil
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, errors.Errorf("resolving symlink: %w", err)
	}
	return info.Mode().IsRegular(), nil
}
