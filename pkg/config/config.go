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

package config

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 📚 Config is the resolved configuration of a formatting run
type Config struct {
	Delete      bool     // delete empty and frontmatter-only documents
	DryRun      bool     // report actions without touching any file
	Verbose     bool     // also report unchanged documents
	Diff        bool     // print unified diffs of intended changes in a dry run
	Concurrency int      // number of documents processed in parallel
	Extensions  []string // document extensions, including the dot
	Ignore      []string // doublestar patterns relative to the search root

	location string
}

// 🏭 Default returns the configuration used when no file and no flags say otherwise
func Default() *Config {
	return &Config{
		Concurrency: runtime.NumCPU(),
		Extensions:  []string{".md"},
	}
}

// 📄 File is the on-disk representation of a config file. Unset keys stay nil
// so that only what the file mentions overrides the defaults.
type File struct {
	Delete      *bool    `json:"delete,omitempty" yaml:"delete,omitempty" hcl:"delete,optional"`
	DryRun      *bool    `json:"dry_run,omitempty" yaml:"dry_run,omitempty" hcl:"dry_run,optional"`
	Verbose     *bool    `json:"verbose,omitempty" yaml:"verbose,omitempty" hcl:"verbose,optional"`
	Diff        *bool    `json:"diff,omitempty" yaml:"diff,omitempty" hcl:"diff,optional"`
	Concurrency *int     `json:"concurrency,omitempty" yaml:"concurrency,omitempty" hcl:"concurrency,optional"`
	Extensions  []string `json:"extensions,omitempty" yaml:"extensions,omitempty" hcl:"extensions,optional"`
	Ignore      []string `json:"ignore,omitempty" yaml:"ignore,omitempty" hcl:"ignore,optional"`
}

// 🔀 Apply copies every key set in the file onto cfg
func (f *File) Apply(cfg *Config) {
	if f.Delete != nil {
		cfg.Delete = *f.Delete
	}
	if f.DryRun != nil {
		cfg.DryRun = *f.DryRun
	}
	if f.Verbose != nil {
		cfg.Verbose = *f.Verbose
	}
	if f.Diff != nil {
		cfg.Diff = *f.Diff
	}
	if f.Concurrency != nil {
		cfg.Concurrency = *f.Concurrency
	}
	if f.Extensions != nil {
		cfg.Extensions = f.Extensions
	}
	if f.Ignore != nil {
		cfg.Ignore = f.Ignore
	}
}

// 🔍 Validate checks the configuration and fills in derived defaults
func (cfg *Config) Validate(ctx context.Context) error {
	if cfg.Concurrency < 0 {
		return errors.Errorf("concurrency must not be negative, got %d", cfg.Concurrency)
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = runtime.NumCPU()
	}

	if len(cfg.Extensions) == 0 {
		return errors.Errorf("at least one extension is required")
	}
	for _, ext := range cfg.Extensions {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
			return errors.Errorf("extension %q must start with a dot", ext)
		}
		if strings.ContainsAny(ext, `/\*?[]{}`) {
			return errors.Errorf("extension %q must not contain separators or glob characters", ext)
		}
	}

	for _, pattern := range cfg.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid ignore pattern %q", pattern)
		}
	}

	return nil
}

// Location returns the file the configuration was loaded from, if any
func (cfg *Config) Location() string {
	return cfg.location
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("delete=%t dry_run=%t verbose=%t diff=%t concurrency=%d extensions=%v ignore=%v",
		cfg.Delete, cfg.DryRun, cfg.Verbose, cfg.Diff, cfg.Concurrency, cfg.Extensions, cfg.Ignore)
}
