// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/nawocci/omen-fan/cmd/omen-setup/commands/common"
	"github.com/nawocci/omen-fan/internal/core"
	"github.com/nawocci/omen-fan/internal/host"
	"github.com/nawocci/omen-fan/internal/workflows"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the omen-fan daemon and its system integration",
	Long: "Installs runtime dependencies, the omen-fan executables, the systemd service unit,\n" +
		"the ec_sys kernel module with write support and log rotation. Safe to rerun.",
	RunE: func(cmd *cobra.Command, args []string) error {
		env := host.Probe()
		common.RunWorkflow(cmd.Context(), workflows.NewInstallWorkflow(env, core.DefaultManifest()))
		return nil
	},
}
