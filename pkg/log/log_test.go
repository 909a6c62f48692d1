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
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_processed_file",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{
					Path:      "js/background.js",
					Processed: true,
					Removed:   2,
					DebugCall: "console.log",
				})
			},
			wantLogs: []string{
				"Processing: js/background.js",
				"- Removed 2 console.log statements",
			},
		},
		{
			name: "log_start_build",
			op: func(t *testing.T, logger *Logger) {
				logger.StartBuild(context.Background(), "production-build")
			},
			wantLogs: []string{
				"Creating production build in: production-build",
				strings.Repeat("-", 60),
			},
		},
		{
			name: "log_error",
			op: func(t *testing.T, logger *Logger) {
				logger.Error("building: source tree unavailable")
			},
			wantLogs: []string{
				"❌ building: source tree unavailable",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create buffer for console output
			buf := &bytes.Buffer{}
			logger := NewWithZerolog(buf, zerolog.New(zerolog.NewTestWriter(t)))

			// Perform operation
			tt.op(t, logger)

			// Check output
			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLogger_CopiedFilesAreQuiet(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewWithZerolog(buf, zerolog.Nop())

	logger.StartBuild(context.Background(), "out")
	buf.Reset()

	logger.LogFileOperation(context.Background(), FileOperation{Path: "manifest.json"})
	logger.LogFileOperation(context.Background(), FileOperation{Path: "popup.js", Processed: true, DebugCall: "console.log"})

	assert.NotContains(t, buf.String(), "manifest.json")
	assert.Contains(t, buf.String(), "popup.js")
}

func TestLogger_ErrorsGoToStderr(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	logger := New(stdout, stderr)

	logger.StartBuild(context.Background(), "out")
	logger.Error("boom")

	assert.Contains(t, stdout.String(), "Creating production build in: out")
	assert.NotContains(t, stdout.String(), "boom")
	assert.Contains(t, stderr.String(), "❌ boom")
}

func TestLogger_EndBuild(t *testing.T) {
	color.NoColor = true
	pterm.DisableStyling()
	defer func() {
		color.NoColor = false
		pterm.EnableStyling()
	}()

	buf := &bytes.Buffer{}
	logger := NewWithZerolog(buf, zerolog.New(zerolog.NewTestWriter(t)))

	logger.EndBuild(context.Background(), BuildSummary{
		FilesProcessed:    3,
		FilesCopied:       12,
		StatementsRemoved: 41,
		Destination:       "production-build",
		AbsDestination:    "/work/ext/production-build",
		DebugCall:         "console.log",
	})

	out := buf.String()
	assert.Contains(t, out, "[SUCCESS] Production build complete!")
	assert.Contains(t, out, "Statistics:")
	assert.Regexp(t, `Files processed \(cleaned\):\s+3`, out)
	assert.Regexp(t, `Files copied \(as-is\):\s+12`, out)
	assert.Regexp(t, `Console\.log statements removed:\s+41`, out)
	assert.Contains(t, out, "Production build location: /work/ext/production-build")
	assert.Contains(t, out, "Ready to zip: production-build")
}

func TestLogger_LogDiff(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	buf := &bytes.Buffer{}
	logger := NewWithZerolog(buf, zerolog.Nop())

	original := "start();\n  console.log(\"a\");\nmiddle();\nconsole.log(\"b\");\nend();\n"
	cleaned := "start();\nmiddle();\nend();\n"
	logger.LogDiff(context.Background(), "background.js", original, cleaned)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "-   console.log(\"a\");", strings.TrimSpace(lines[0]))
	assert.Equal(t, "- console.log(\"b\");", strings.TrimSpace(lines[1]))
}

func TestLoggerContext(t *testing.T) {
	// Create logger
	logger := New(io.Discard, io.Discard)

	// Add to context
	ctx := context.Background()
	ctx = NewContext(ctx, logger)

	// Get from context
	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	// Check panic on missing logger
	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}
