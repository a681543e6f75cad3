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

	"github.com/rs/zerolog"
	diff "github.com/shogoki/gotextdiff"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/mdfmt/pkg/status"
	"github.com/walteh/mdfmt/pkg/text"
)

// 📦 NewFormatOperation creates the operation that normalizes every document in opts.Files
func NewFormatOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, errors.Errorf("creating format operation: %w", err)
	}
	return &formatOperation{
		BaseOperation: base,
	}, nil
}

// 📦 formatOperation implements the format operation
type formatOperation struct {
	BaseOperation
}

// 🏃 Execute processes every document. A failing document is recorded and
// does not stop the others.
func (op *formatOperation) Execute(ctx context.Context) error {
	op.StatusMgr.StartOperation(ctx, len(op.Files))
	defer op.StatusMgr.FinishOperation(ctx)

	runner := NewRunner(op.Config.Concurrency)
	err := runner.Run(ctx, op.Files, func(ctx context.Context, path string) {
		info, patch := op.processFile(ctx, path)
		op.StatusMgr.TrackFile(ctx, info)
		op.Logger.LogFileDiff(ctx, info, patch)
		op.StatusMgr.UpdateProgress(ctx)
	})
	if err != nil {
		return errors.Errorf("formatting files: %w", err)
	}
	return nil
}

// 📄 processFile applies the emptiness policy and the normalizer to one document.
// The returned diff is only set for an intended change in a dry run with diffs enabled.
func (op *formatOperation) processFile(ctx context.Context, path string) (status.FileInfo, []byte) {
	logger := zerolog.Ctx(ctx).With().Str("file", path).Logger()
	info := status.FileInfo{Path: path, DryRun: op.Config.DryRun}

	content, err := op.StatusMgr.ReadFile(ctx, path)
	if err != nil {
		return failed(info, err), nil
	}

	result := text.Process(string(content), op.Config.Delete)
	logger.Trace().Str("action", result.Action.String()).Msg("document processed")

	switch result.Action {
	case text.ActionDeleted:
		info.Status = status.StatusDeleted
		info.Reason = result.Emptiness.String()
		if op.Config.DryRun {
			return info, nil
		}
		if err := op.StatusMgr.DeleteFile(ctx, path); err != nil {
			return failed(info, err), nil
		}

	case text.ActionModified:
		info.Status = status.StatusModified
		if op.Config.DryRun {
			if op.Config.Diff {
				return info, diff.Diff(path, content, path, []byte(result.Content))
			}
			return info, nil
		}
		if err := op.StatusMgr.WriteFileAtomic(ctx, path, []byte(result.Content)); err != nil {
			return failed(info, err), nil
		}

	default:
		info.Status = status.StatusUnchanged
		if result.Emptiness != text.NotEmpty {
			// empty but deletion was not allowed
			info.Reason = result.Emptiness.String()
		}
	}

	return info, nil
}

func failed(info status.FileInfo, err error) status.FileInfo {
	info.Status = status.StatusError
	info.Error = err
	return info
}
