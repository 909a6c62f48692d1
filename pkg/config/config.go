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
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// ErrInvalidConfig is returned when a configuration fails validation
var ErrInvalidConfig = errors.Base("invalid configuration")

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse decodes data on top of base, leaving fields the file omits untouched
	Parse(ctx context.Context, data []byte, base *Config) error

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config describes one production build
type Config struct {
	// Source is the root of the extension tree to copy
	Source string `json:"source,omitempty" yaml:"source,omitempty" toml:"source,omitempty" hcl:"source,optional"`
	// Destination is the build root, deleted and recreated on every run
	Destination string `json:"destination,omitempty" yaml:"destination,omitempty" toml:"destination,omitempty" hcl:"destination,optional"`
	// Process lists the exact file names whose debug calls are stripped
	Process []string `json:"process,omitempty" yaml:"process,omitempty" toml:"process,omitempty" hcl:"process,optional"`
	// Exclude lists substrings; any relative path containing one is skipped
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty" toml:"exclude,omitempty" hcl:"exclude,optional"`
	// ExcludeGlobs lists doublestar globs matched against relative paths
	ExcludeGlobs []string `json:"exclude_globs,omitempty" yaml:"exclude_globs,omitempty" toml:"exclude_globs,omitempty" hcl:"exclude_globs,optional"`
	// DebugCall is the call token stripped from processed files
	DebugCall string `json:"debug_call,omitempty" yaml:"debug_call,omitempty" toml:"debug_call,omitempty" hcl:"debug_call,optional"`
	// KeepCalls are call tokens that protect a line from removal
	KeepCalls []string `json:"keep_calls,omitempty" yaml:"keep_calls,omitempty" toml:"keep_calls,omitempty" hcl:"keep_calls,optional"`
}

// 🏭 Default returns the built-in production build configuration
func Default() *Config {
	return &Config{
		Source:      ".",
		Destination: "./production-build",
		Process: []string{
			"analytics.js",
			"background.js",
			"popup.js",
			"content.js",
		},
		Exclude: []string{
			"reset-whats-new.js",
			"prepare-production.py",
			".claude",
			"Enhancements",
			"commit_message.txt",
			"USER_GUIDE.md",
			"V1.3.0_RELEASE_NOTES.md",
			".git",
			".gitignore",
			"production-build",
		},
		DebugCall: "console.log",
		KeepCalls: []string{"console.error", "console.warn"},
	}
}

// 📋 Clone returns a deep copy of the config
func (cfg *Config) Clone() *Config {
	c := *cfg
	c.Process = append([]string(nil), cfg.Process...)
	c.Exclude = append([]string(nil), cfg.Exclude...)
	c.ExcludeGlobs = append([]string(nil), cfg.ExcludeGlobs...)
	c.KeepCalls = append([]string(nil), cfg.KeepCalls...)
	return &c
}

// 🔍 Validate checks if the configuration is valid and normalizes paths
func (cfg *Config) Validate() error {
	if cfg.Source == "" {
		return errors.Errorf("%w: source is required", ErrInvalidConfig)
	}
	if cfg.Destination == "" {
		return errors.Errorf("%w: destination is required", ErrInvalidConfig)
	}
	if cfg.DebugCall == "" {
		return errors.Errorf("%w: debug_call is required", ErrInvalidConfig)
	}

	for i, p := range cfg.Process {
		if p == "" || strings.ContainsAny(p, `/\`) {
			return errors.Errorf("%w: process[%d] must be a bare file name, got %q", ErrInvalidConfig, i, p)
		}
	}
	for i, p := range cfg.Exclude {
		// an empty substring is contained in every path
		if p == "" {
			return errors.Errorf("%w: exclude[%d] is empty", ErrInvalidConfig, i)
		}
	}
	for i, g := range cfg.ExcludeGlobs {
		if !doublestar.ValidatePattern(g) {
			return errors.Errorf("%w: exclude_globs[%d] is not a valid pattern: %q", ErrInvalidConfig, i, g)
		}
	}

	// Clean up paths
	cfg.Source = filepath.Clean(cfg.Source)
	cfg.Destination = filepath.Clean(cfg.Destination)

	src, err := filepath.Abs(cfg.Source)
	if err != nil {
		return errors.Errorf("resolving source: %w", err)
	}
	dst, err := filepath.Abs(cfg.Destination)
	if err != nil {
		return errors.Errorf("resolving destination: %w", err)
	}
	if src == dst || isWithin(src, dst) {
		return errors.Errorf("%w: destination %s would delete the source tree", ErrInvalidConfig, cfg.Destination)
	}

	return nil
}

// isWithin reports whether path is inside dir
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s -> %s (process %d, exclude %d)", cfg.Source, cfg.Destination, len(cfg.Process), len(cfg.Exclude)+len(cfg.ExcludeGlobs))
}
