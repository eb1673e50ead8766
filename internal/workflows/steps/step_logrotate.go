// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"os/exec"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/nawocci/omen-fan/internal/core"
	"github.com/nawocci/omen-fan/internal/workflows/notify"
	"github.com/nawocci/omen-fan/pkg/fsx"
)

// lookPath is indirected for tests.
var lookPath = exec.LookPath

// ConfigureLogRotationStep writes the logrotate drop-in for the daemon log.
// A host without the logrotate utility is not an error: log rotation is a
// nicety, not a requirement, so the step warns and succeeds.
func ConfigureLogRotationStep(m core.Manifest) automa.Builder {
	return automa.NewStepBuilder().WithId("configure_log_rotation").
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			if _, err := lookPath("logrotate"); err != nil {
				logx.As().Warn().
					Msg("logrotate is not installed, skipping log rotation setup")
				return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
					"skipped": "true",
				}))
			}

			if err := fsx.CreateDirectory(m.LogrotateDir, core.DirectoryPermission); err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			if err := fsx.WriteFile(m.LogrotateDropIn, []byte(core.LogrotateContent(m)), core.FilePermission); err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"dropin": m.LogrotateDropIn,
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Configuring log rotation")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to configure log rotation")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Log rotation configuration completed")
		})
}
