// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"
	"github.com/nawocci/omen-fan/internal/config"
	"github.com/nawocci/omen-fan/internal/doctor"
	"github.com/nawocci/omen-fan/internal/host"
	"github.com/nawocci/omen-fan/internal/workflows/notify"
)

// hostProductName is indirected for tests
var hostProductName = host.ProductName

// CheckDeviceStep validates that the machine is a supported OMEN laptop.
// The check can be bypassed via configuration for compatible hardware that
// is not on the supported list.
func CheckDeviceStep() automa.Builder {
	return automa.NewStepBuilder().WithId("validate-device").
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			product := hostProductName()

			if config.Get().BypassDeviceCheck {
				logx.As().Warn().Str("product", product).Msg("Device check bypassed")
				return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
					"product":  product,
					"bypassed": "true",
				}))
			}

			if !host.IsSupportedProduct(product) {
				return automa.FailureReport(stp,
					automa.WithError(
						errorx.IllegalState.New("unsupported device: %q", product).
							WithProperty(doctor.ErrPropertyResolution,
								"This tool supports OMEN by HP Laptop 16 models.\n"+
									"If your hardware is compatible, rerun with --bypass to skip this check.")))
			}

			logx.As().Info().Str("product", product).Msg("Device validated")
			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"product": product,
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Starting device validation")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Device validation failed")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Device validation step completed successfully")
		})
}
