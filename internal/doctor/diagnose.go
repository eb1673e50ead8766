// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"
	"github.com/nawocci/omen-fan/internal/config"
	"github.com/nawocci/omen-fan/internal/version"
	"github.com/nawocci/omen-fan/pkg/exit"
	"github.com/nawocci/omen-fan/pkg/pm"
)

// ErrPropertyResolution lets any error carry its own resolution hint, one
// line per step. Diagnose prefers it over the generic per-type hints.
var ErrPropertyResolution = errorx.RegisterProperty("resolution")

type ErrorDiagnosis struct {
	Error      error    `yaml:"error" json:"error"`
	Message    string   `yaml:"message" json:"message"`
	Cause      string   `yaml:"cause" json:"cause"`
	ErrorType  string   `yaml:"errorType" json:"errorType"`
	TraceId    string   `yaml:"traceId" json:"traceId"`
	Commit     string   `yaml:"commit" json:"commit"`
	Version    string   `yaml:"version" json:"version"`
	Pid        int      `yaml:"pid" json:"pid"`
	Code       int      `yaml:"code" json:"code"`
	Logfile    string   `yaml:"log" json:"log"`
	Resolution []string `yaml:"steps" json:"steps"`
}

func toErrorCode(err error) int {
	switch {
	case errorx.IsOfType(err, errorx.IllegalArgument):
		return 10400
	default:
		if errorx.HasTrait(err, errorx.NotFound()) {
			return 10404
		}
		return 10500
	}
}

func toErrorMessage(err error) (string, string) {
	e := errorx.Cast(err)
	if e == nil {
		return err.Error(), ""
	}

	return e.Message(), fmt.Sprintf("%s", e.Cause())
}

func findResolution(err error) []string {
	if hint, ok := errorx.ExtractProperty(err, ErrPropertyResolution); ok {
		return strings.Split(hint.(string), "\n")
	}

	switch {
	case errorx.IsOfType(err, errorx.IllegalArgument):
		if arg, ok := errorx.ExtractProperty(err, errorx.PropertyPayload()); ok {
			return []string{fmt.Sprintf("Ensure %q is provided.", arg.(string))}
		}
		return []string{"Ensure all required arguments are provided."}
	case errorx.IsOfType(err, errorx.IllegalFormat):
		return []string{"Ensure provided data is in correct format."}
	case errorx.IsOfType(err, config.NotFoundError):
		if arg, ok := errorx.ExtractProperty(err, errorx.PropertyPayload()); ok {
			return []string{fmt.Sprintf("Ensure configuration file %q exists, is correctly formatted and accessible", arg.(string))}
		}
		return []string{"Ensure configuration file exists and is accessible."}
	case errorx.IsOfType(err, pm.ErrUnsupportedEnvironment):
		return []string{
			"Install python3, pip, python click and logrotate manually.",
			"Supported package managers are apt, dnf and pacman.",
		}
	default:
		return []string{"Check error message for details or retry with --log-level Debug"}
	}
}

// Diagnose attempts to find a resolution and provide a human friendly error response
func Diagnose(ctx context.Context, ex error) *ErrorDiagnosis {
	var traceId string
	if ctx.Value("traceId") == nil {
		traceId = ""
	} else {
		traceId = ctx.Value("traceId").(string)
	}

	msg, cause := toErrorMessage(ex)
	return &ErrorDiagnosis{
		Error:      ex,
		ErrorType:  errorx.GetTypeName(ex),
		Message:    msg,
		Cause:      cause,
		TraceId:    traceId,
		Code:       toErrorCode(ex),
		Commit:     version.Commit(),
		Version:    version.Number(),
		Pid:        os.Getpid(),
		Logfile:    config.Get().Log.Filename,
		Resolution: findResolution(ex),
	}
}

// CheckErr prints diagnosis and exits with error code 1.
// Optional instructions can be provided to give additional context to the user
func CheckErr(ctx context.Context, err error, instructions ...string) {
	logx.As().Error().Err(err).Msg("error occurred")
	fmt.Printf("%+v\n", err)
	resp := Diagnose(ctx, err)

	fmt.Printf("\n%s%s************************************** Error Diagnostics ******************************************%s\n", Bold, Red, Reset)
	fmt.Printf("%s*%s\t%sError:%s %s\n", Red, Reset, Bold+White, Reset, resp.Message)
	if resp.Cause != "" {
		fmt.Printf("%s*%s\t%sCause:%s %s\n", Red, Reset, Bold+White, Reset, resp.Cause)
	}
	fmt.Printf("%s*%s\t%sError Type:%s %s\n", Red, Reset, Bold+White, Reset, resp.ErrorType)
	fmt.Printf("%s*%s\t%sError Code:%s %d\n", Red, Reset, Bold+White, Reset, resp.Code)
	fmt.Printf("%s*%s\t%sCommit:%s %s\n", Red, Reset, Gray, Reset, resp.Commit)
	fmt.Printf("%s*%s\t%sPid:%s %d\n", Red, Reset, Gray, Reset, resp.Pid)
	fmt.Printf("%s*%s\t%sTraceId:%s %s\n", Red, Reset, Gray, Reset, resp.TraceId)
	fmt.Printf("%s*%s\t%sVersion:%s %s\n", Red, Reset, Gray, Reset, resp.Version)
	if resp.Logfile != "" {
		fmt.Printf("%s*%s\t%sLogfile:%s %s\n", Red, Reset, Cyan, Reset, resp.Logfile)
	}
	fmt.Printf("%s%s***************************************************************************************************%s\n", Bold, Red, Reset)
	fmt.Printf("\n%s%s****************************************** Resolution *********************************************%s\n", Bold, Yellow, Reset)

	// Print custom instructions first if provided
	if len(instructions) > 0 && instructions[0] != "" {
		for _, line := range strings.Split(instructions[0], "\n") {
			if line == "" {
				fmt.Printf("%s*%s\n", Yellow, Reset)
			} else {
				fmt.Printf("%s*%s\t%s\n", Yellow, Reset, Bold+White+line+Reset)
			}
		}
		if len(resp.Resolution) > 0 {
			fmt.Printf("%s*%s\n", Yellow, Reset)
		}
	}

	// Print default resolution steps
	for _, r := range resp.Resolution {
		fmt.Printf("%s*%s\t%s\n", Yellow, Reset, White+r+Reset)
	}

	fmt.Printf("%s%s***************************************************************************************************%s\n", Bold, Yellow, Reset)

	exit.GeneralError.TerminateProcess()
}

// CheckReportErr diagnoses a failed workflow report and exits with error code 1.
// Instructions attached to any step report are surfaced in the resolution box.
func CheckReportErr(ctx context.Context, report *automa.Report) {
	if report == nil || report.Error == nil {
		return
	}
	CheckErr(ctx, report.Error, GetInstructionsFromReport(report))
}

// GetInstructionsFromReport recursively searches for instructions in report metadata.
// Returns the first non-empty instructions found in the report tree, or an empty string if none exist.
func GetInstructionsFromReport(report *automa.Report) string {
	if report == nil {
		return ""
	}

	if instructions, ok := report.Metadata["instructions"]; ok {
		return instructions
	}

	for _, stepReport := range report.StepReports {
		if instructions := GetInstructionsFromReport(stepReport); instructions != "" {
			return instructions
		}
	}

	return ""
}
