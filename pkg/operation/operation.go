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
	"os"

	"github.com/walteh/extprep/pkg/config"
	"github.com/walteh/extprep/pkg/status"
	"github.com/walteh/extprep/pkg/strip"
	"gitlab.com/tozd/go/errors"
)

// ErrSourceUnavailable is returned when the source root cannot be read as a directory.
var ErrSourceUnavailable = errors.Base("source tree unavailable")

// 🎯 Operation is one step of a production build
type Operation interface {
	// Name identifies the operation in logs
	Name() string
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains everything an operation needs
type Options struct {
	// Config is the validated build configuration
	Config *config.Config
	// Stripper removes debug calls from processed files
	Stripper *strip.Stripper
	// Files writes below the build root
	Files status.FileManager
	// Reporter tracks every file written
	Reporter status.StatusReporter
	// Stats accumulates build statistics
	Stats *Stats
	// ShowDiff prints the removed lines of each cleaned file
	ShowDiff bool
}

// 🧱 BaseOperation holds the options shared by all operations
type BaseOperation struct {
	Options
}

// 🏗️ NewBaseOperation creates a new base operation
func NewBaseOperation(opts Options) BaseOperation {
	if opts.Stats == nil {
		opts.Stats = &Stats{}
	}
	return BaseOperation{Options: opts}
}

// 🔍 CheckSource makes sure the source root exists and is a directory
func CheckSource(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Errorf("%w: %s", ErrSourceUnavailable, err.Error())
	}
	if !info.IsDir() {
		return errors.Errorf("%w: %s is not a directory", ErrSourceUnavailable, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Errorf("%w: %s", ErrSourceUnavailable, err.Error())
	}
	defer f.Close()

	if _, err := f.ReadDir(1); err != nil && !isEOF(err) {
		return errors.Errorf("%w: %s", ErrSourceUnavailable, err.Error())
	}

	return nil
}
