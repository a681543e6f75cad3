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

package status

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents what happened to a document
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusUnchanged            // Document already in normal form, or skipped
	StatusModified             // Document was rewritten
	StatusDeleted              // Document was removed because it was empty
	StatusError                // Reading, writing or deleting failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusModified:
		return "modified"
	case StatusDeleted:
		return "deleted"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains the outcome for a single document
type FileInfo struct {
	Path   string     // Path as discovered
	Status FileStatus // What happened (or would happen in a dry run)
	Reason string     // Short human readable explanation
	DryRun bool       // Whether the change was only reported
	Error  error      // Any error associated with this file
}

// 📈 Summary aggregates the outcome of a run
type Summary struct {
	Processed int
	Unchanged int
	Modified  int
	Deleted   int
	Errors    int
}

// 💾 FileManager handles all file system operations on documents
type FileManager interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFileAtomic(ctx context.Context, path string, content []byte) error
	DeleteFile(ctx context.Context, path string) error
}

// 📈 StatusReporter tracks per-document outcomes and progress
type StatusReporter interface {
	TrackFile(ctx context.Context, info FileInfo)
	ListFiles(ctx context.Context) []FileInfo
	Summary() Summary

	StartOperation(ctx context.Context, total int)
	UpdateProgress(ctx context.Context)
	FinishOperation(ctx context.Context)
}

var (
	_ FileManager    = (*Manager)(nil)
	_ StatusReporter = (*Manager)(nil)
)

// 🔧 Manager implements both FileManager and StatusReporter.
// It is safe for concurrent use by the workers of a run.
type Manager struct {
	baseDir   string        // Base directory for relative paths, empty to use paths as given
	formatter FileFormatter // Formatter for status messages

	// Status tracking
	mu    sync.RWMutex
	files map[string]FileInfo

	// Progress tracking
	total     int
	processed int
}

// 🏭 New creates a new status manager
func New(baseDir string) *Manager {
	if baseDir != "" {
		baseDir = filepath.Clean(baseDir)
	}
	return &Manager{
		baseDir:   baseDir,
		formatter: NewDefaultFileFormatter(),
		files:     make(map[string]FileInfo),
	}
}

// 🔒 getAbsPath resolves a path against the base directory
func (m *Manager) getAbsPath(path string) string {
	if m.baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.baseDir, path)
}

// FileManager interface implementation

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(m.getAbsPath(path))
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// WriteFileAtomic replaces the file through a temp file in the same directory,
// keeping the permissions of the file being replaced.
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	absPath := m.getAbsPath(path)

	mode := os.FileMode(0644)
	if info, err := os.Stat(absPath); err == nil {
		mode = info.Mode().Perm()
	} else if !os.IsNotExist(err) {
		return errors.Errorf("checking file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(absPath), "."+filepath.Base(absPath)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, mode); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("setting temp file mode: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

func (m *Manager) DeleteFile(ctx context.Context, path string) error {
	if err := os.Remove(m.getAbsPath(path)); err != nil {
		return errors.Errorf("deleting file: %w", err)
	}
	return nil
}

// StatusReporter interface implementation

func (m *Manager) TrackFile(ctx context.Context, info FileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[info.Path] = info

	logger := zerolog.Ctx(ctx)
	if info.Error != nil {
		logger.Debug().Err(info.Error).Str("path", info.Path).Msg(m.formatter.FormatError(info.Error))
		return
	}
	logger.Debug().
		Str("path", info.Path).
		Str("status", info.Status.String()).
		Bool("dry_run", info.DryRun).
		Msg(m.formatter.FormatFileOperation(info))
}

// ListFiles returns the tracked documents sorted by path
func (m *Manager) ListFiles(ctx context.Context) []FileInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]FileInfo, 0, len(m.files))
	for _, info := range m.files {
		files = append(files, info)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files
}

// Summary counts the tracked documents by status
func (m *Manager) Summary() Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Summary{Processed: len(m.files)}
	for _, info := range m.files {
		switch info.Status {
		case StatusUnchanged:
			s.Unchanged++
		case StatusModified:
			s.Modified++
		case StatusDeleted:
			s.Deleted++
		case StatusError:
			s.Errors++
		}
	}
	return s
}

func (m *Manager) StartOperation(ctx context.Context, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total = total
	m.processed = 0
	zerolog.Ctx(ctx).Debug().Int("total", total).Msg(m.formatter.FormatProgress(0, total))
}

func (m *Manager) UpdateProgress(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.processed++
	zerolog.Ctx(ctx).Trace().
		Int("processed", m.processed).
		Int("total", m.total).
		Msg(m.formatter.FormatProgress(m.processed, m.total))
}

func (m *Manager) FinishOperation(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	zerolog.Ctx(ctx).Debug().
		Int("processed", m.processed).
		Int("total", m.total).
		Msg(m.formatter.FormatProgress(m.processed, m.total))
}
