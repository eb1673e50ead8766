// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"

	"github.com/automa-saga/automa"
	"github.com/nawocci/omen-fan/internal/core"
	"github.com/nawocci/omen-fan/internal/workflows/notify"
	"github.com/nawocci/omen-fan/pkg/fsx"
	"github.com/nawocci/omen-fan/pkg/prompt"
)

// RemoveConfigurationStateStep removes the configuration directory, the log
// directory and the logrotate drop-in after operator confirmation. Declining
// keeps the state in place and the step still succeeds.
func RemoveConfigurationStateStep(m core.Manifest, confirmer prompt.Confirmer) automa.Builder {
	return automa.NewStepBuilder().WithId("remove_configuration_state").
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			ok, err := confirmer.Confirm("Remove configuration and log files?")
			if err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}
			if !ok {
				return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
					"skipped": "true",
				}))
			}

			for _, dir := range []string{m.ConfigDir, m.LogDir} {
				if err := fsx.RemoveAllIfExists(dir); err != nil {
					return automa.FailureReport(stp, automa.WithError(err))
				}
			}

			if err := fsx.RemoveIfExists(m.LogrotateDropIn); err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			return automa.SuccessReport(stp)
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Removing configuration state")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to remove configuration state")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Configuration state handled")
		})
}
