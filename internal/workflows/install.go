// SPDX-License-Identifier: Apache-2.0

// Package workflows builds the saga workflows that install and uninstall the
// omen-fan daemon. Steps run strictly in order and the first failure aborts
// the workflow; every step is idempotent, so the fix is to rerun the whole
// command rather than resume mid-way.
package workflows

import (
	"context"

	"github.com/automa-saga/automa"
	"github.com/nawocci/omen-fan/internal/core"
	"github.com/nawocci/omen-fan/internal/host"
	"github.com/nawocci/omen-fan/internal/workflows/notify"
	"github.com/nawocci/omen-fan/internal/workflows/steps"
)

// NewInstallWorkflow provisions the fan controller onto the host. Package
// installation runs before any filesystem mutation, so an unsupported host
// aborts without leaving any state behind.
func NewInstallWorkflow(env host.Environment, m core.Manifest) *automa.WorkflowBuilder {
	return automa.NewWorkflowBuilder().
		WithId("omen-fan-install").Steps(
		CheckPrivilegesStep(),
		steps.CheckDeviceStep(),
		steps.InstallSystemPackagesStep(env.PackageManager),
		steps.SetupDirectoriesStep(m),
		steps.InstallExecutablesStep(m),
		steps.InstallServiceUnitStep(m),
		steps.EnsureKernelModuleStep(m),
		steps.EnableServiceStep(m),
		steps.SelfCheckStep(m),
		steps.ConfigureLogRotationStep(m),
	).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Starting omen-fan installation")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "omen-fan installation failed")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "omen-fan installation completed successfully")
		})
}
