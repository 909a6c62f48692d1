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
	"github.com/walteh/extprep/pkg/config"
	"github.com/walteh/extprep/pkg/log"
	"github.com/walteh/extprep/pkg/status"
)

// 📄 FileResult records one file written to the build
type FileResult struct {
	Path    string          // Path relative to the source root, slash separated
	Kind    status.FileKind // Processed or copied
	Removed int             // Debug calls removed, processed files only
}

// 📊 Stats accumulates the numbers reported at the end of a build
type Stats struct {
	FilesProcessed    int
	FilesCopied       int
	StatementsRemoved int
	Files             []FileResult
}

// 📝 Record adds one written file to the statistics
func (s *Stats) Record(info status.FileInfo) {
	switch info.Kind {
	case status.KindProcessed:
		s.FilesProcessed++
		s.StatementsRemoved += info.Removed
	case status.KindCopied:
		s.FilesCopied++
	}
	s.Files = append(s.Files, FileResult{
		Path:    info.Path,
		Kind:    info.Kind,
		Removed: info.Removed,
	})
}

// 📦 Summary converts the statistics into the final report
func (s *Stats) Summary(cfg *config.Config, absDestination string) log.BuildSummary {
	return log.BuildSummary{
		FilesProcessed:    s.FilesProcessed,
		FilesCopied:       s.FilesCopied,
		StatementsRemoved: s.StatementsRemoved,
		Destination:       cfg.Destination,
		AbsDestination:    absDestination,
		DebugCall:         cfg.DebugCall,
	}
}
