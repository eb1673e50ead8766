// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"strings"

	"github.com/automa-saga/automa"
	"github.com/nawocci/omen-fan/internal/doctor"
	"github.com/nawocci/omen-fan/internal/workflows/notify"
	"github.com/nawocci/omen-fan/pkg/pm"
)

// InstallSystemPackagesStep installs the fan controller's runtime
// dependencies through the host's package manager. The python click-aliases
// library is installed afterwards on a best-effort basis; the packages
// themselves are mandatory.
func InstallSystemPackagesStep(kind pm.Kind) automa.Builder {
	return automa.NewStepBuilder().WithId("system_packages").
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			if kind == pm.KindUnsupported {
				return automa.FailureReport(stp,
					automa.WithError(
						pm.ErrUnsupportedEnvironment.New("no supported package manager found").
							WithProperty(doctor.ErrPropertyResolution,
								"Install python3, pip, python click and logrotate manually,\n"+
									"then rerun the installation.")))
			}

			manager, err := pm.Get(kind)
			if err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			packages := manager.RuntimePackages()
			if err := manager.Install(ctx, packages); err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			pm.InstallAliasesLibrary(ctx, manager)

			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"manager":  string(kind),
				"packages": strings.Join(packages, ", "),
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Installing system packages")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to install system packages")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "System packages installed successfully")
		})
}
