// SPDX-License-Identifier: Apache-2.0

package workflows

import (
	"context"

	"github.com/automa-saga/automa"
	"github.com/nawocci/omen-fan/internal/core"
	"github.com/nawocci/omen-fan/internal/workflows/notify"
	"github.com/nawocci/omen-fan/internal/workflows/steps"
	"github.com/nawocci/omen-fan/pkg/prompt"
)

// NewUninstallWorkflow removes the fan controller from the host. Service and
// executables go unconditionally; configuration state and kernel module
// persistence are each gated on their own confirmation, defaulting to keep.
func NewUninstallWorkflow(m core.Manifest, confirmer prompt.Confirmer) *automa.WorkflowBuilder {
	return automa.NewWorkflowBuilder().
		WithId("omen-fan-uninstall").Steps(
		CheckPrivilegesStep(),
		steps.RemoveServiceUnitStep(m),
		steps.RemoveExecutablesStep(m),
		steps.RemoveConfigurationStateStep(m, confirmer),
		steps.RemoveModulePersistenceStep(m, confirmer),
	).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Starting omen-fan uninstallation")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "omen-fan uninstallation failed")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "omen-fan uninstallation completed successfully")
		})
}
