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

import "strings"

// maxBlankRun is the longest run of blank lines kept in cleaned output
const maxBlankRun = 2

// 🧹 CollapseBlankLines rewrites every run of three or more consecutive blank
// lines as exactly two. A line holding only "\r" counts as blank, so CRLF
// files keep their line endings. The pass is applied once over the whole text.
func CollapseBlankLines(text string) string {
	lines := strings.Split(text, "\n")

	// a trailing newline terminates the last line, it does not start a new one
	last := len(lines)
	if strings.HasSuffix(text, "\n") {
		last--
	}

	out := make([]string, 0, len(lines))
	run := 0
	for i, line := range lines {
		if i < last && strings.TrimSuffix(line, "\r") == "" {
			run++
			if run > maxBlankRun {
				continue
			}
		} else {
			run = 0
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}
