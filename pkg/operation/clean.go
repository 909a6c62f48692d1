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

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🧹 NewCleanOperation creates a new clean operation
func NewCleanOperation(opts Options) Operation {
	return &cleanOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

// 🧹 cleanOperation deletes the build root and recreates it empty
type cleanOperation struct {
	BaseOperation
}

// Name implements Operation
func (op *cleanOperation) Name() string {
	return "clean"
}

// 🏃 Execute runs the clean operation
func (op *cleanOperation) Execute(ctx context.Context) error {
	root := op.Files.Root()

	exists, err := op.Files.FileExists(ctx, ".")
	if err != nil {
		return errors.Errorf("checking build root: %w", err)
	}

	if err := op.Files.Reset(ctx); err != nil {
		return errors.Errorf("resetting build root %s: %w", root, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("root", root).
		Bool("existed", exists).
		Msg("build root cleaned")

	return nil
}
