// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"

	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"
	"github.com/nawocci/omen-fan/cmd/omen-setup/commands/versioncmd"
	"github.com/nawocci/omen-fan/internal/config"
	"github.com/nawocci/omen-fan/internal/doctor"
	"github.com/spf13/cobra"
)

// examples:
// ./omen-setup install
// ./omen-setup install --bypass
// ./omen-setup uninstall --yes

var (
	// Used for flags.
	flagConfig       string
	flagVersion      bool
	flagOutputFormat string
	flagAssumeYes    bool
	flagBypass       bool

	rootCmd = &cobra.Command{
		Use:   "omen-setup",
		Short: "Installer for the omen-fan laptop fan controller",
		Long:  "omen-setup - installs and removes the omen-fan fan control daemon and its system integration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagVersion {
				versioncmd.PrintVersion(cmd, flagOutputFormat)
				return nil
			}

			return cmd.Help()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "config file path")

	// support '--version', '-v' to show version information
	rootCmd.PersistentFlags().BoolVarP(&flagVersion, "version", "v", false, "Show version")
	rootCmd.PersistentFlags().StringVarP(&flagOutputFormat, "output", "o", "yaml", "Output format (yaml|json)")
	rootCmd.PersistentFlags().BoolVarP(&flagAssumeYes, "yes", "y", false, "Answer yes to all confirmation prompts")
	rootCmd.PersistentFlags().BoolVar(&flagBypass, "bypass", false, "Skip the supported device check")

	// disable command sorting to keep the order of commands as added
	cobra.EnableCommandSorting = false

	// add subcommands
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(versioncmd.Get())
}

// Execute executes the root command.
func Execute(ctx context.Context) error {
	if ctx == nil {
		return errorx.IllegalArgument.New("context is required")
	}

	cobra.OnInitialize(func() {
		initConfig(ctx)
	})

	// execute the root command
	_, err := rootCmd.ExecuteContextC(ctx)
	if err != nil {
		return errorx.IllegalState.Wrap(err, "failed to execute command")
	}

	return nil
}

func initConfig(ctx context.Context) {
	var err error
	err = config.Initialize(flagConfig)
	if err != nil {
		doctor.CheckErr(ctx, err)
	}

	if flagAssumeYes {
		config.SetAssumeYes(true)
	}
	if flagBypass {
		config.SetBypassDeviceCheck(true)
	}

	logConfig := config.Get().Log
	err = logx.Initialize(logConfig)
	if err != nil {
		doctor.CheckErr(ctx, err)
	}
}
