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
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// 🚫 Matcher decides which relative paths stay out of the build
type Matcher struct {
	substrings []string
	globs      []string
}

// 🏭 NewMatcher creates a matcher from exclude substrings and doublestar globs
func NewMatcher(substrings, globs []string) *Matcher {
	return &Matcher{
		substrings: append([]string(nil), substrings...),
		globs:      append([]string(nil), globs...),
	}
}

// 🔍 Match reports whether rel is excluded and which rule matched.
// rel must use forward slashes. Substrings match anywhere in the path,
// so ".git" also excludes ".github" and ".gitignore".
func (m *Matcher) Match(rel string) (bool, string) {
	for _, s := range m.substrings {
		if strings.Contains(rel, s) {
			return true, s
		}
	}
	for _, g := range m.globs {
		// patterns are validated with the config
		if ok, _ := doublestar.Match(g, rel); ok {
			return true, g
		}
	}
	return false, ""
}
