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

package strip

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

const (
	// DefaultDebugCall is the call token stripped when none is configured
	DefaultDebugCall = "console.log"
)

// DefaultKeepCalls are the tokens that always protect a line from removal
var DefaultKeepCalls = []string{"console.error", "console.warn"}

// ErrInvalidEncoding is returned when content is not valid UTF-8
var ErrInvalidEncoding = errors.Base("content is not valid UTF-8")

// 🔧 Options configures a Stripper
type Options struct {
	// DebugCall is the call token to strip, e.g. "console.log"
	DebugCall string
	// KeepCalls are call tokens that keep a line even when it looks strippable
	KeepCalls []string
}

// 📄 Result holds the outcome of stripping one file
type Result struct {
	Original     []byte // Content as read
	Cleaned      []byte // Content after line removal and blank collapse
	Removed      int    // Debug call occurrences before minus after
	LinesDropped int    // Whole lines deleted
	WasModified  bool   // Cleaned differs from Original
}

// ✂️ Stripper removes standalone debug log statements
type Stripper struct {
	debugCall string
	keepCalls []string
}

// 🏭 New creates a Stripper, filling unset options with defaults
func New(opts Options) *Stripper {
	s := &Stripper{
		debugCall: opts.DebugCall,
		keepCalls: opts.KeepCalls,
	}
	if s.debugCall == "" {
		s.debugCall = DefaultDebugCall
	}
	if s.keepCalls == nil {
		s.keepCalls = append([]string(nil), DefaultKeepCalls...)
	}
	return s
}

// 🏃 Strip reads all content, checks its encoding and strips it
func (s *Stripper) Strip(ctx context.Context, content io.Reader) (*Result, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	if _, _, err := transform.Bytes(encoding.UTF8Validator, data); err != nil {
		return nil, errors.Errorf("%w: %s", ErrInvalidEncoding, err.Error())
	}

	res := s.StripText(string(data))

	zerolog.Ctx(ctx).Debug().
		Int("removed", res.Removed).
		Int("lines_dropped", res.LinesDropped).
		Bool("modified", res.WasModified).
		Msg("stripped content")

	return res, nil
}

// ✂️ StripText strips already decoded text
func (s *Stripper) StripText(text string) *Result {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if s.ClassifyLine(line) == Drop {
			continue
		}
		kept = append(kept, line)
	}

	cleaned := CollapseBlankLines(strings.Join(kept, "\n"))

	return &Result{
		Original:     []byte(text),
		Cleaned:      []byte(cleaned),
		Removed:      s.CountCalls(text) - s.CountCalls(cleaned),
		LinesDropped: len(lines) - len(kept),
		WasModified:  cleaned != text,
	}
}

// 🔢 CountCalls counts debug call sites, i.e. occurrences of "<token>("
func (s *Stripper) CountCalls(text string) int {
	return strings.Count(text, s.debugCall+"(")
}
