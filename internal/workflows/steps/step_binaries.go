// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"
	"github.com/nawocci/omen-fan/internal/core"
	"github.com/nawocci/omen-fan/internal/doctor"
	"github.com/nawocci/omen-fan/internal/workflows/notify"
	"github.com/nawocci/omen-fan/pkg/fsx"
)

// executableDir is indirected for tests
var executableDir = func() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errorx.IllegalState.Wrap(err, "failed to resolve own executable path")
	}
	return filepath.Dir(exe), nil
}

// findExecutableSource locates a distributable executable, first next to the
// setup tool itself and then in the working directory.
func findExecutableSource(name string) (string, error) {
	var searched []string

	if dir, err := executableDir(); err == nil {
		p := filepath.Join(dir, name)
		if fi, _, err := fsx.PathExists(p); err == nil && fi != nil && !fi.IsDir() {
			return p, nil
		}
		searched = append(searched, p)
	}

	if wd, err := os.Getwd(); err == nil {
		p := filepath.Join(wd, name)
		if fi, _, err := fsx.PathExists(p); err == nil && fi != nil && !fi.IsDir() {
			return p, nil
		}
		searched = append(searched, p)
	}

	return "", errorx.IllegalState.New("executable %q not found (searched: %s)", name, strings.Join(searched, ", ")).
		WithProperty(doctor.ErrPropertyResolution,
			"Run the setup tool from the directory containing the omen-fan executables.")
}

// InstallExecutablesStep copies the fan control command and daemon into the
// system executable directory.
func InstallExecutablesStep(m core.Manifest) automa.Builder {
	return automa.NewStepBuilder().WithId("install_executables").
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			targets := map[string]string{
				m.CLIName:    m.CLIPath(),
				m.DaemonName: m.DaemonPath(),
			}

			var installed []string
			for name, dst := range targets {
				src, err := findExecutableSource(name)
				if err != nil {
					return automa.FailureReport(stp, automa.WithError(err))
				}

				if err := fsx.CopyFile(src, dst, core.ExecutablePermission); err != nil {
					return automa.FailureReport(stp, automa.WithError(err))
				}
				installed = append(installed, dst)
			}

			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"executables": strings.Join(installed, ", "),
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Installing executables")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to install executables")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Executables installed successfully")
		})
}

// RemoveExecutablesStep removes the installed executables and the daemon's
// PID file. Files that are already absent are skipped.
func RemoveExecutablesStep(m core.Manifest) automa.Builder {
	return automa.NewStepBuilder().WithId("remove_executables").
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			for _, p := range []string{m.CLIPath(), m.DaemonPath(), m.PidFile} {
				if err := fsx.RemoveIfExists(p); err != nil {
					return automa.FailureReport(stp, automa.WithError(err))
				}
				logx.As().Debug().Str("path", p).Msg("Removed if present")
			}
			return automa.SuccessReport(stp)
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Removing executables")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to remove executables")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Executables removed successfully")
		})
}
