// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"

	"github.com/automa-saga/automa"
	"github.com/joomcode/errorx"
	"github.com/nawocci/omen-fan/internal/core"
	"github.com/nawocci/omen-fan/internal/doctor"
	"github.com/nawocci/omen-fan/internal/workflows/notify"
	"github.com/nawocci/omen-fan/pkg/kernel"
	"github.com/nawocci/omen-fan/pkg/prompt"
)

// newKernelModule is indirected for tests
var newKernelModule = kernel.NewModule

// EnsureKernelModuleStep loads the embedded controller module with write
// support and persists it across reboots. An already loaded module is not
// reloaded, so a running system is never disturbed.
func EnsureKernelModuleStep(m core.Manifest) automa.Builder {
	return automa.NewStepBuilder().WithId("ensure_kernel_module").
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			module, err := newKernelModule(m.ModuleName, m.ModuleParams)
			if err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			if err := module.Load(true); err != nil {
				return automa.FailureReport(stp,
					automa.WithError(
						errorx.EnsureStackTrace(err).
							WithProperty(doctor.ErrPropertyResolution,
								"Ensure the kernel was built with the ec_sys module and secure boot\n"+
									"is not blocking unsigned modules, then rerun the installation.")))
			}

			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"module": m.ModuleName,
				"params": m.ModuleParams,
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Loading kernel module %s", m.ModuleName)
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to load kernel module %s", m.ModuleName)
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Kernel module %s loaded and persisted", m.ModuleName)
		})
}

// RemoveModulePersistenceStep removes the module's boot persistence files
// after operator confirmation. The module itself is left loaded; unloading
// ec_sys on a running system serves no purpose once the daemon is gone.
func RemoveModulePersistenceStep(m core.Manifest, confirmer prompt.Confirmer) automa.Builder {
	return automa.NewStepBuilder().WithId("remove_module_persistence").
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			ok, err := confirmer.Confirm("Remove ec_sys kernel module boot persistence?")
			if err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}
			if !ok {
				return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
					"skipped": "true",
				}))
			}

			module, err := newKernelModule(m.ModuleName, m.ModuleParams)
			if err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			if err := module.Unpersist(); err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"module": m.ModuleName,
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Removing kernel module persistence")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to remove kernel module persistence")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Kernel module persistence handled")
		})
}
