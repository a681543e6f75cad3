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

package operation

import (
	"context"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/mdfmt/pkg/config"
	"github.com/walteh/mdfmt/pkg/log"
	"github.com/walteh/mdfmt/pkg/status"
)

// 🎯 Operation is a unit of work over a set of documents
type Operation interface {
	Execute(ctx context.Context) error
}

// 🔧 StatusManager is the file and status backend an operation writes through
type StatusManager interface {
	status.FileManager
	status.StatusReporter
}

// 🔧 Options contains configuration for an operation
type Options struct {
	// Config holds the run flags: delete, dry run, diff and concurrency
	Config *config.Config
	// Files are the document paths to process, in order
	Files []string
	// StatusMgr reads, writes and deletes documents and tracks outcomes
	StatusMgr StatusManager
	// Logger prints one line per document, followed by its diff in a dry run with diffs enabled
	Logger *log.Logger
}

// 🧱 BaseOperation carries the options shared by every operation
type BaseOperation struct {
	Options
}

// 🏭 NewBaseOperation checks the required options
func NewBaseOperation(opts Options) (BaseOperation, error) {
	if opts.Config == nil {
		return BaseOperation{}, errors.Errorf("config is required")
	}
	if opts.StatusMgr == nil {
		return BaseOperation{}, errors.Errorf("status manager is required")
	}
	if opts.Logger == nil {
		return BaseOperation{}, errors.Errorf("logger is required")
	}
	return BaseOperation{Options: opts}, nil
}
