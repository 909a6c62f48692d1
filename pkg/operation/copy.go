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
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog"
	"github.com/walteh/extprep/pkg/log"
	"github.com/walteh/extprep/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📦 NewBuildOperation creates the operation that copies the source tree into
// the build root, stripping debug calls from processed files
func NewBuildOperation(opts Options) Operation {
	base := NewBaseOperation(opts)
	return &buildOperation{
		BaseOperation: base,
		matcher:       NewMatcher(base.Config.Exclude, base.Config.ExcludeGlobs),
	}
}

// 📦 buildOperation walks the source tree
type buildOperation struct {
	BaseOperation
	matcher *Matcher
}

// Name implements Operation
func (op *buildOperation) Name() string {
	return "build"
}

// 🏃 Execute runs the build operation
func (op *buildOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	source := op.Config.Source

	srcAbs, err := resolvePath(source)
	if err != nil {
		return errors.Errorf("resolving source: %w", err)
	}
	// the build root exists after the clean operation, so links resolve
	buildRoot, err := resolvePath(op.Files.Root())
	if err != nil {
		return errors.Errorf("resolving build root: %w", err)
	}

	log.FromContext(ctx).StartBuild(ctx, op.Config.Destination)

	err = filepath.WalkDir(srcAbs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Errorf("walking %s: %w", path, err)
		}
		if err := ctx.Err(); err != nil {
			return errors.Errorf("build cancelled: %w", err)
		}

		if path == srcAbs {
			return nil
		}

		rel, err := relPath(srcAbs, path)
		if err != nil {
			return err
		}

		if d.IsDir() {
			// never copy the build into itself
			if path == buildRoot {
				logger.Debug().Str("path", rel).Msg("skipping build root")
				return filepath.SkipDir
			}
			if excluded, rule := op.matcher.Match(rel); excluded {
				logger.Debug().Str("path", rel).Str("rule", rule).Msg("skipping excluded directory")
				return filepath.SkipDir
			}
			return nil
		}

		if excluded, rule := op.matcher.Match(rel); excluded {
			logger.Debug().Str("path", rel).Str("rule", rule).Msg("skipping excluded file")
			return nil
		}

		if !isRegularFile(path, d) {
			logger.Debug().Str("path", rel).Str("type", d.Type().String()).Msg("skipping non-regular file")
			return nil
		}

		if err := op.processFile(ctx, path, rel, d.Name()); err != nil {
			return errors.Errorf("processing %s: %w", rel, err)
		}
		return nil
	})

	return err
}

// 📄 processFile writes one source file to the build
func (op *buildOperation) processFile(ctx context.Context, path, rel, name string) error {
	var (
		info status.FileInfo
		err  error
	)

	if slices.Contains(op.Config.Process, name) {
		info, err = op.stripFile(ctx, path, rel)
	} else {
		info, err = op.Files.CopyFile(ctx, path, rel)
		info.Kind = status.KindCopied
	}
	if err != nil {
		return err
	}

	op.Reporter.TrackFile(ctx, info)
	op.Stats.Record(info)

	log.FromContext(ctx).LogFileOperation(ctx, log.FileOperation{
		Path:      rel,
		Processed: info.Kind == status.KindProcessed,
		Removed:   info.Removed,
		DebugCall: op.Config.DebugCall,
	})

	return nil
}

// ✂️ stripFile removes debug calls from path and writes the result with the same permissions
func (op *buildOperation) stripFile(ctx context.Context, path, rel string) (status.FileInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return status.FileInfo{}, errors.Errorf("opening file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return status.FileInfo{}, errors.Errorf("reading file info: %w", err)
	}

	res, err := op.Stripper.Strip(ctx, f)
	if err != nil {
		return status.FileInfo{}, errors.Errorf("stripping debug calls: %w", err)
	}

	info, err := op.Files.WriteFile(ctx, rel, res.Cleaned, stat.Mode().Perm())
	if err != nil {
		return status.FileInfo{}, errors.Errorf("writing cleaned file: %w", err)
	}
	info.Kind = status.KindProcessed
	info.Removed = res.Removed

	if op.ShowDiff && res.WasModified {
		log.FromContext(ctx).LogDiff(ctx, rel, string(res.Original), string(res.Cleaned))
	}

	return info, nil
}

// isRegularFile reports whether d is a regular file or a symlink to one
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	target, err := os.Stat(path)
	if err != nil {
		return false
	}
	return target.Mode().IsRegular()
}

// resolvePath returns the absolute path with symlinks resolved, so a linked
// source root is walked instead of being reported as a single entry
func resolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
