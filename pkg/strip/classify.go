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
	"strings"
	"unicode"
)

// 🚦 Decision says whether a line survives stripping
type Decision int

const (
	Keep Decision = iota
	Drop
)

// String returns a string representation of Decision
func (d Decision) String() string {
	switch d {
	case Drop:
		return "drop"
	default:
		return "keep"
	}
}

// 🔍 ClassifyLine decides whether a single line is a standalone debug call.
//
// A line is dropped only when, after optional leading whitespace, it is a
// debug call whose opening parenthesis closes at the end of the statement,
// followed by an optional ";" and optional trailing whitespace. Lines that
// contain any keep token are always kept.
func (s *Stripper) ClassifyLine(line string) Decision {
	for _, tok := range s.keepCalls {
		if tok != "" && strings.Contains(line, tok) {
			return Keep
		}
	}

	call := s.debugCall + "("
	body := strings.TrimLeftFunc(line, unicode.IsSpace)
	if !strings.HasPrefix(body, call) {
		return Keep
	}

	end := closingParen(body, len(call)-1)
	if end < 0 {
		return Keep
	}

	rest := strings.TrimPrefix(body[end+1:], ";")
	if strings.TrimRightFunc(rest, unicode.IsSpace) != "" {
		return Keep
	}

	return Drop
}

// closingParen returns the index of the parenthesis matching the one at open,
// skipping over quoted string literals. It returns -1 if the line ends first.
func closingParen(s string, open int) int {
	depth := 0
	var quote byte
	for i := open; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			quote = c
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
