// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"strconv"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/nawocci/omen-fan/internal/core"
	"github.com/nawocci/omen-fan/internal/workflows/notify"
	"github.com/nawocci/omen-fan/pkg/fsx"
	"github.com/nawocci/omen-fan/pkg/sysd"
)

// systemd calls are indirected for tests
var (
	daemonReload     = sysd.DaemonReload
	enableService    = sysd.EnableService
	startService     = sysd.StartService
	stopService      = sysd.StopService
	disableService   = sysd.DisableService
	isServiceRunning = sysd.IsServiceRunning
)

// InstallServiceUnitStep writes the daemon's systemd unit file and reloads
// the systemd daemon so the unit becomes visible. Enabling and starting the
// service happens in a later step, after the kernel module is in place.
func InstallServiceUnitStep(m core.Manifest) automa.Builder {
	return automa.NewStepBuilder().WithId("install_service_unit").
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			if err := fsx.WriteFile(m.UnitFilePath, []byte(core.UnitFileContent(m)), core.FilePermission); err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			if err := daemonReload(ctx); err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"unit": m.UnitFilePath,
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Installing systemd service unit")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to install systemd service unit")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Systemd service unit installed successfully")
		})
}

// EnableServiceStep enables the daemon service at boot and starts it. It runs
// after the kernel module step so the daemon finds the embedded controller
// interface on first start. A failed activity probe after start is only a
// warning; systemd may still be settling the unit.
func EnableServiceStep(m core.Manifest) automa.Builder {
	return automa.NewStepBuilder().WithId("enable_service").
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			if err := enableService(ctx, m.ServiceName); err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			if err := startService(ctx, m.ServiceName); err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			running, err := isServiceRunning(ctx, m.ServiceName)
			if err != nil {
				logx.As().Warn().Err(err).Str("service", m.ServiceName).
					Msg("Could not verify service state")
			}

			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"service": m.ServiceName,
				"active":  strconv.FormatBool(running),
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Enabling and starting the fan control service")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to enable and start the fan control service")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Fan control service enabled and started")
		})
}

// RemoveServiceUnitStep stops and disables the daemon service, removes its
// unit file and reloads systemd. Stop and disable failures are tolerated;
// the service may never have been enabled or the unit may already be gone.
func RemoveServiceUnitStep(m core.Manifest) automa.Builder {
	return automa.NewStepBuilder().WithId("remove_service_unit").
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			if err := stopService(ctx, m.ServiceName); err != nil {
				logx.As().Warn().Err(err).Str("service", m.ServiceName).
					Msg("Could not stop service, continuing")
			}

			if err := disableService(ctx, m.ServiceName); err != nil {
				logx.As().Warn().Err(err).Str("service", m.ServiceName).
					Msg("Could not disable service, continuing")
			}

			if err := fsx.RemoveIfExists(m.UnitFilePath); err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			if err := daemonReload(ctx); err != nil {
				logx.As().Warn().Err(err).Msg("Could not reload systemd daemon, continuing")
			}

			return automa.SuccessReport(stp)
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Removing systemd service unit")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to remove systemd service unit")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Systemd service unit removed successfully")
		})
}
