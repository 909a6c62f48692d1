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
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DiscoverNames are the config files looked up in the working directory, in order
var DiscoverNames = []string{
	".extprep.yaml",
	".extprep.yml",
	".extprep.json",
	".extprep.hcl",
	".extprep.toml",
}

// 🎯 LoadConfig loads a configuration file on top of the defaults.
// The format is determined by the file extension:
// - .json for JSON
// - .yaml or .yml for YAML
// - .hcl for HCL
// - .toml for TOML
func LoadConfig(ctx context.Context, path string) (*Config, error) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(filepath.Base(path))
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg := Default()
	if err := p.Parse(ctx, data, cfg); err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Discover returns the first known config file present in dir
func Discover(dir string) (string, bool) {
	for _, name := range DiscoverNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}

// 🧭 Resolve returns the config for a run: the explicit file when given,
// otherwise a discovered file in dir, otherwise the defaults
func Resolve(ctx context.Context, explicit, dir string) (*Config, error) {
	if explicit != "" {
		return LoadConfig(ctx, explicit)
	}

	if path, ok := Discover(dir); ok {
		return LoadConfig(ctx, path)
	}

	zerolog.Ctx(ctx).Debug().Msg("no config file found, using defaults")

	cfg := Default()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating default config: %w", err)
	}
	return cfg, nil
}
