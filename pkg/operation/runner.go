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
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 Runner dispatches per-document work with bounded concurrency
type Runner struct {
	concurrency int
}

// 🏗️ NewRunner creates a new runner. A concurrency below one runs documents in order.
func NewRunner(concurrency int) *Runner {
	return &Runner{
		concurrency: concurrency,
	}
}

// 🏃 Run calls fn once per path. fn owns its own error handling, so the only
// error Run reports is cancellation of ctx.
func (r *Runner) Run(ctx context.Context, paths []string, fn func(ctx context.Context, path string)) error {
	if r.concurrency <= 1 {
		return r.runSync(ctx, paths, fn)
	}
	return r.runAsync(ctx, paths, fn)
}

// 🔄 runSync runs each path in order
func (r *Runner) runSync(ctx context.Context, paths []string, fn func(ctx context.Context, path string)) error {
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("operation cancelled: %w", err)
		}
		fn(ctx, path)
	}
	return nil
}

// ⚡ runAsync runs paths on at most r.concurrency goroutines
func (r *Runner) runAsync(ctx context.Context, paths []string, fn func(ctx context.Context, path string)) error {
	zerolog.Ctx(ctx).Debug().Int("workers", r.concurrency).Int("files", len(paths)).Msg("starting workers")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for _, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(gctx, path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return errors.Errorf("operation cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return errors.Errorf("operation cancelled: %w", err)
	}
	return nil
}
