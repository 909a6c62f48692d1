// Copyright 2025 walteh LLC
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
	"io"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/extprep/pkg/config"
	"github.com/walteh/extprep/pkg/log"
	"github.com/walteh/extprep/pkg/status"
	"github.com/walteh/extprep/pkg/strip"
	"gitlab.com/tozd/go/errors"
)

// 📋 BuildOptions tune a production build
type BuildOptions struct {
	// ShowDiff prints the removed lines of each cleaned file
	ShowDiff bool
}

// 🚀 Build runs a full production build: check the source, clean the build
// root, copy and strip the tree, then print the summary.
// The logger must be stored in ctx with log.NewContext.
func Build(ctx context.Context, cfg *config.Config, opts BuildOptions) (*Stats, error) {
	cfg = cfg.Clone()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	// nothing may be written before the source is known to be readable
	if err := CheckSource(cfg.Source); err != nil {
		return nil, err
	}

	mgr, err := status.New(cfg.Destination)
	if err != nil {
		return nil, errors.Errorf("creating file manager: %w", err)
	}

	stats := &Stats{}
	base := Options{
		Config: cfg,
		Stripper: strip.New(strip.Options{
			DebugCall: cfg.DebugCall,
			KeepCalls: cfg.KeepCalls,
		}),
		Files:    mgr,
		Reporter: mgr,
		Stats:    stats,
		ShowDiff: opts.ShowDiff,
	}

	runner := NewRunner(zerolog.Ctx(ctx))
	if err := runner.Run(ctx, NewCleanOperation(base), NewBuildOperation(base)); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().Int("tracked_files", len(mgr.ListFiles(ctx))).Msg("build finished")

	log.FromContext(ctx).EndBuild(ctx, stats.Summary(cfg, mgr.Root()))

	return stats, nil
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}

// relPath renders path relative to root with forward slashes
func relPath(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", errors.Errorf("resolving relative path: %w", err)
	}
	return filepath.ToSlash(rel), nil
}
