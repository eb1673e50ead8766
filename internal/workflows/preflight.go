// SPDX-License-Identifier: Apache-2.0

package workflows

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"
	"github.com/nawocci/omen-fan/internal/doctor"
	"github.com/nawocci/omen-fan/internal/workflows/notify"
)

// CheckPrivilegesStep validates that the current user has superuser privileges
func CheckPrivilegesStep() automa.Builder {
	return automa.NewStepBuilder().WithId("validate-privileges").
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			current, err := user.Current()
			if err != nil {
				return automa.FailureReport(stp,
					automa.WithError(errorx.IllegalState.Wrap(err, "failed to get current user")))
			}

			if current.Uid != "0" {
				return automa.FailureReport(stp,
					automa.WithError(
						errorx.IllegalState.New("requires superuser privilege").
							WithProperty(doctor.ErrPropertyResolution,
								fmt.Sprintf("Run the command with 'sudo' or as root user: `sudo %s`",
									strings.Join(os.Args, " ")))))
			}

			logx.As().Info().Msg("Superuser privilege validated")
			return automa.SuccessReport(stp)
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Starting privilege validation")
			return ctx, nil

		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Privilege validation failed")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Privilege validation step completed successfully")
		})
}
