// SPDX-License-Identifier: Apache-2.0

package common

import (
	"context"

	"github.com/automa-saga/automa"
	"github.com/nawocci/omen-fan/internal/doctor"
	"github.com/nawocci/omen-fan/internal/workflows/steps"
)

// RunWorkflow executes a workflow and handles error
func RunWorkflow(ctx context.Context, b automa.Builder) {
	wb, err := b.Build()
	if err != nil {
		doctor.CheckErr(ctx, err)
	}

	report := wb.Execute(ctx)
	CheckWorkflowReport(ctx, report)
}

func CheckWorkflowReport(ctx context.Context, report *automa.Report) {
	if report.Error != nil {
		doctor.CheckReportErr(ctx, report)
	}

	// For each step that failed, run the doctor to diagnose the error
	if len(report.StepReports) > 0 {
		for _, stepReport := range report.StepReports {
			if stepReport.Status == automa.StatusFailed {
				doctor.CheckReportErr(ctx, stepReport)
			}
		}
	}

	steps.PrintWorkflowReport(report)
}
