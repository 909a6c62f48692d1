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

package log

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// 🔍 LogDiff prints the lines a build removed from one file
func (l *Logger) LogDiff(ctx context.Context, path, original, cleaned string) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(original, cleaned)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffDelete {
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			removed++
			fmt.Fprintf(l.console, "%s%s %s\n",
				strings.Repeat(" ", itemIndent*2),
				color.New(color.FgRed).Sprint("-"),
				strings.TrimRight(line, "\r\n"))
		}
	}

	l.zlog.Debug().Str("file", path).Int("lines_removed", removed).Msg("diff")
}
