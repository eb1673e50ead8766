// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/nawocci/omen-fan/cmd/omen-setup/commands/common"
	"github.com/nawocci/omen-fan/internal/config"
	"github.com/nawocci/omen-fan/internal/core"
	"github.com/nawocci/omen-fan/internal/workflows"
	"github.com/nawocci/omen-fan/pkg/prompt"
	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the omen-fan daemon from this system",
	Long: "Stops and removes the omen-fan service and executables. Configuration, logs and\n" +
		"kernel module persistence are each removed only after confirmation.",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmer := prompt.Terminal()
		if config.Get().AssumeYes {
			confirmer = prompt.AssumeYes()
		}

		common.RunWorkflow(cmd.Context(), workflows.NewUninstallWorkflow(core.DefaultManifest(), confirmer))
		return nil
	},
}
