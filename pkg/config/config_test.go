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

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ".", cfg.Source)
	assert.Equal(t, "./production-build", cfg.Destination)
	assert.Equal(t, []string{"analytics.js", "background.js", "popup.js", "content.js"}, cfg.Process)
	assert.Contains(t, cfg.Exclude, ".git")
	assert.Contains(t, cfg.Exclude, "production-build")
	assert.Len(t, cfg.Exclude, 10)
	assert.Empty(t, cfg.ExcludeGlobs)
	assert.Equal(t, "console.log", cfg.DebugCall)
	assert.Equal(t, []string{"console.error", "console.warn"}, cfg.KeepCalls)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "production-build", cfg.Destination, "destination should be cleaned")
}

func TestConfig_Validate(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name        string
		mutate      func(cfg *Config)
		wantErr     bool
		errContains string
	}{
		{
			name:   "defaults",
			mutate: func(cfg *Config) {},
		},
		{
			name:        "missing_source",
			mutate:      func(cfg *Config) { cfg.Source = "" },
			wantErr:     true,
			errContains: "source is required",
		},
		{
			name:        "missing_destination",
			mutate:      func(cfg *Config) { cfg.Destination = "" },
			wantErr:     true,
			errContains: "destination is required",
		},
		{
			name:        "missing_debug_call",
			mutate:      func(cfg *Config) { cfg.DebugCall = "" },
			wantErr:     true,
			errContains: "debug_call is required",
		},
		{
			name:        "process_with_directory",
			mutate:      func(cfg *Config) { cfg.Process = []string{"src/background.js"} },
			wantErr:     true,
			errContains: "bare file name",
		},
		{
			name:        "empty_exclude",
			mutate:      func(cfg *Config) { cfg.Exclude = []string{".git", ""} },
			wantErr:     true,
			errContains: "exclude[1] is empty",
		},
		{
			name:        "bad_glob",
			mutate:      func(cfg *Config) { cfg.ExcludeGlobs = []string{"[a-"} },
			wantErr:     true,
			errContains: "not a valid pattern",
		},
		{
			name:   "good_glob",
			mutate: func(cfg *Config) { cfg.ExcludeGlobs = []string{"**/*.map"} },
		},
		{
			name: "destination_equals_source",
			mutate: func(cfg *Config) {
				cfg.Source = tmpDir
				cfg.Destination = tmpDir + "/."
			},
			wantErr:     true,
			errContains: "would delete the source tree",
		},
		{
			name: "destination_above_source",
			mutate: func(cfg *Config) {
				cfg.Source = filepath.Join(tmpDir, "ext")
				cfg.Destination = tmpDir
			},
			wantErr:     true,
			errContains: "would delete the source tree",
		},
		{
			name: "destination_inside_source",
			mutate: func(cfg *Config) {
				cfg.Source = tmpDir
				cfg.Destination = filepath.Join(tmpDir, "production-build")
			},
		},
		{
			name: "sibling_with_shared_prefix",
			mutate: func(cfg *Config) {
				cfg.Source = filepath.Join(tmpDir, "ext")
				cfg.Destination = filepath.Join(tmpDir, "ext-build")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestConfig_Clone(t *testing.T) {
	cfg := Default()
	clone := cfg.Clone()

	clone.Process[0] = "changed.js"
	clone.Exclude = append(clone.Exclude, "dist")
	clone.Destination = "elsewhere"

	assert.Equal(t, "analytics.js", cfg.Process[0])
	assert.Len(t, cfg.Exclude, 10)
	assert.Equal(t, "./production-build", cfg.Destination)
}

func TestConfig_String(t *testing.T) {
	cfg := Default()
	cfg.ExcludeGlobs = []string{"**/*.map"}
	assert.Equal(t, ". -> ./production-build (process 4, exclude 11)", cfg.String())
}

func TestIsWithin(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "work", "ext")

	tests := []struct {
		name string
		path string
		dir  string
		want bool
	}{
		{name: "same_dir", path: root, dir: root, want: true},
		{name: "child", path: filepath.Join(root, "js"), dir: root, want: true},
		{name: "child_named_with_dots", path: filepath.Join(root, "..foo"), dir: root, want: true},
		{name: "parent", path: filepath.Dir(root), dir: root, want: false},
		{name: "sibling", path: filepath.Join(filepath.Dir(root), "other"), dir: root, want: false},
		{name: "sibling_named_with_dots", path: filepath.Join(filepath.Dir(root), "..foo"), dir: root, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isWithin(tt.path, tt.dir))
		})
	}
}
