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

/*
Package strip removes standalone debug logging statements from script sources.

	+-------------+
	|   Source    |
	|   (bytes)   |
	+------+------+
	       |
	+------+------+
	|  Classify   |
	| (per line)  |
	+------+------+
	       |
	+------+------+
	|  Collapse   |
	| (blanks)    |
	+-------------+

🎯 Purpose:
- Drop lines that are nothing but a debug log call (`console.log(...)`)
- Keep every line that mentions an error or warning log call
- Normalize runs of blank lines left behind by the removals

🔄 Flow:
1. Content is read and checked to be valid UTF-8
2. Each line is classified as Keep or Drop
3. Dropped lines are removed, kept lines are joined back with "\n"
4. Runs of three or more blank lines collapse to two
5. The removed count is the drop in debug call occurrences

📝 Design Philosophy:
The stripper is line based, not a parser. It never rewrites part of a line,
so a line is either kept byte for byte or deleted whole. Anything it is not
sure about is kept.

Known limitation: a debug call whose arguments span several lines is not
recognized and is left in place.

🔍 Example:

	s := strip.New(strip.Options{})
	res, err := s.Strip(ctx, file)
	// res.Cleaned, res.Removed
*/
package strip
