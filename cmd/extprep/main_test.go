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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name        string
		setup       func(t *testing.T, src, dst string) []string
		wantCode    int
		errContains string
		validate    func(t *testing.T, src, dst string, stdout string)
	}{
		{
			name: "basic_run",
			setup: func(t *testing.T, src, dst string) []string {
				writeFile(t, filepath.Join(src, "background.js"), "console.log(\"a\");\nstart();\n")
				writeFile(t, filepath.Join(src, "manifest.json"), "{}")
				return []string{"--source", src, "--destination", dst}
			},
			wantCode: 0,
			validate: func(t *testing.T, src, dst string, stdout string) {
				assertFile(t, filepath.Join(dst, "background.js"), "start();\n")
				assertFile(t, filepath.Join(dst, "manifest.json"), "{}")
				assert.Contains(t, stdout, "Processing: background.js")
				assert.Contains(t, stdout, "Ready to zip: "+dst)
			},
		},
		{
			name: "config_file_with_flag_override",
			setup: func(t *testing.T, src, dst string) []string {
				cfgPath := filepath.Join(t.TempDir(), "build.yaml")
				writeFile(t, cfgPath, "source: "+src+"\ndestination: "+filepath.Join(t.TempDir(), "ignored")+"\nprocess:\n  - app.js\n")
				writeFile(t, filepath.Join(src, "app.js"), "console.log(1);\nrun();\n")
				writeFile(t, filepath.Join(src, "background.js"), "console.log(2);\n")
				return []string{"--config", cfgPath, "--destination", dst}
			},
			wantCode: 0,
			validate: func(t *testing.T, src, dst string, stdout string) {
				assertFile(t, filepath.Join(dst, "app.js"), "run();\n")
				assertFile(t, filepath.Join(dst, "background.js"), "console.log(2);\n")
			},
		},
		{
			name: "show_diff",
			setup: func(t *testing.T, src, dst string) []string {
				writeFile(t, filepath.Join(src, "popup.js"), "console.log(\"gone\");\nkeep();\n")
				return []string{"--source", src, "--destination", dst, "--show-diff"}
			},
			wantCode: 0,
			validate: func(t *testing.T, src, dst string, stdout string) {
				assert.Contains(t, stdout, `- console.log("gone");`)
			},
		},
		{
			name: "missing_source",
			setup: func(t *testing.T, src, dst string) []string {
				return []string{"--source", filepath.Join(src, "nope"), "--destination", dst}
			},
			wantCode:    1,
			errContains: "source tree unavailable",
			validate: func(t *testing.T, src, dst string, stdout string) {
				assert.NoDirExists(t, dst)
			},
		},
		{
			name: "invalid_config",
			setup: func(t *testing.T, src, dst string) []string {
				cfgPath := filepath.Join(t.TempDir(), "build.yaml")
				writeFile(t, cfgPath, "unknown_key: true\n")
				return []string{"--config", cfgPath}
			},
			wantCode:    1,
			errContains: "parsing config",
		},
		{
			name: "destination_contains_source",
			setup: func(t *testing.T, src, dst string) []string {
				return []string{"--source", src, "--destination", filepath.Dir(src)}
			},
			wantCode:    1,
			errContains: "would delete the source tree",
		},
		{
			name: "positional_arguments_are_rejected",
			setup: func(t *testing.T, src, dst string) []string {
				return []string{"extra"}
			},
			wantCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmp := t.TempDir()
			src := filepath.Join(tmp, "extension")
			dst := filepath.Join(tmp, "build")
			require.NoError(t, os.MkdirAll(src, 0755))

			args := tt.setup(t, src, dst)

			var stdout, stderr bytes.Buffer
			code := run(context.Background(), args, &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code, "stderr: %s", stderr.String())
			if tt.errContains != "" {
				assert.Contains(t, stderr.String(), tt.errContains)
			}
			if tt.validate != nil {
				tt.validate(t, src, dst, stdout.String())
			}
		})
	}
}

func TestRun_ErrorsGoToStderr(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tmp := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{
		"--source", filepath.Join(tmp, "missing"),
		"--destination", filepath.Join(tmp, "build"),
	}, &stdout, &stderr)

	require.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "❌ building: ")
	assert.NotContains(t, stdout.String(), "source tree unavailable")
}

func TestVersionCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"version"}, &stdout, &stderr)

	require.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "🚀 extprep version info:")
	assert.Contains(t, stdout.String(), "Go:")
}

func TestFormatVersion(t *testing.T) {
	out := FormatVersion(&VersionInfo{
		Version:   "v1.2.3",
		GoVersion: "go1.24.0",
		Platform:  "linux/amd64",
		Revision:  "abc123",
		Time:      "2025-01-01T00:00:00Z",
		Modified:  true,
	})

	assert.Equal(t, `🚀 extprep version info:
Version:   v1.2.3
Revision:  abc123 (modified)
Built:     2025-01-01T00:00:00Z
Go:        go1.24.0
Platform:  linux/amd64
`, out)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func assertFile(t *testing.T, path, want string) {
	t.Helper()
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}
