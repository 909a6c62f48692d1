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
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/extprep/pkg/config"
	"github.com/walteh/extprep/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// rootFlags holds the command line flags
type rootFlags struct {
	configFile  string
	source      string
	destination string
	debug       bool
	showDiff    bool
}

// 🌳 newRootCmd creates the extprep command
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "extprep",
		Short: "Prepare a production build of a browser extension",
		Long: `extprep copies a browser extension's source tree into a fresh build
directory, removing standalone console.log statements from the configured
script files and copying everything else unchanged.

With no flags it builds ./production-build from the current directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(flags.debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := flags.resolveConfig(ctx, cmd)
			if err != nil {
				return err
			}

			zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Msg("configuration resolved")

			if _, err := operation.Build(ctx, cfg, operation.BuildOptions{ShowDiff: flags.showDiff}); err != nil {
				return errors.Errorf("building: %w", err)
			}
			return nil
		},
	}

	addRootFlags(cmd, flags)
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "config file path (.yaml, .yml, .json, .hcl or .toml)")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().StringVar(&flags.source, "source", "", "override the source directory")
	cmd.Flags().StringVar(&flags.destination, "destination", "", "override the build directory")
	cmd.Flags().BoolVar(&flags.showDiff, "show-diff", false, "print the lines removed from each cleaned file")
}

// resolveConfig loads the config file (explicit or discovered) and applies flag overrides
func (f *rootFlags) resolveConfig(ctx context.Context, cmd *cobra.Command) (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.Resolve(ctx, f.configFile, wd)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("source") {
		cfg.Source = f.source
	}
	if cmd.Flags().Changed("destination") {
		cfg.Destination = f.destination
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// setupLogging sets the zerolog level based on flags
func setupLogging(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
