// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/nawocci/omen-fan/internal/core"
	"github.com/nawocci/omen-fan/internal/workflows/notify"
)

// SelfCheckStep runs the freshly installed fan control command to verify it
// is executable. A failing self check is reported as a warning rather than
// aborting: the files are in place and the daemon may still work once its
// python dependencies are resolved.
func SelfCheckStep(m core.Manifest) automa.Builder {
	return automa.NewStepBuilder().WithId("self_check").
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			out, err := RunCmdOutput(m.CLIPath(), "version")
			if err != nil {
				logx.As().Warn().Err(err).Str("executable", m.CLIPath()).
					Msg("Installed command failed its self check")
				return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
					"warning": "self check failed: " + err.Error(),
				}))
			}

			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"version": out,
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Running self check")
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Self check completed")
		})
}
