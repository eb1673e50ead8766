// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"strings"

	"github.com/automa-saga/automa"
	"github.com/nawocci/omen-fan/internal/core"
	"github.com/nawocci/omen-fan/internal/workflows/notify"
	"github.com/nawocci/omen-fan/pkg/fsx"
)

// SetupDirectoriesStep creates the configuration and log directories.
// Existing directories are left untouched.
func SetupDirectoriesStep(m core.Manifest) automa.Builder {
	return automa.NewStepBuilder().WithId("setup_directories").
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			dirs := []string{m.ConfigDir, m.LogDir, m.BinDir}

			for _, dir := range dirs {
				_, exists, err := fsx.PathExists(dir)
				if err != nil {
					return automa.FailureReport(stp, automa.WithError(err))
				} else if exists {
					// directory already exists, skip
					continue
				}

				if err := fsx.CreateDirectory(dir, core.DirectoryPermission); err != nil {
					return automa.FailureReport(stp, automa.WithError(err))
				}
			}

			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"directories": strings.Join(dirs, ", "),
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Setting up directory structure")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to setup directory structure")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Directory structure setup successfully")
		})
}
