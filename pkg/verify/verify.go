// Package verify runs the full workshop installation check: data
// directory first, then each required tool, then the sample dataset.
// The pass is strictly linear and stops at the first failure, since a
// participant can only remediate one problem at a time anyway.
package verify

import (
	"fmt"

	"github.com/meegsim/labcheck/pkg/check"
)

// SuccessMessage is the fixed confirmation printed when every check passes.
const SuccessMessage = "✔ Everything seems to work!"

// Report aggregates the results of one verification run.
// It is built once and never mutated afterwards.
type Report struct {
	Results []check.Result // results in execution order; ends at the first failure
	Success bool
	Message string // SuccessMessage, or a line naming the failed check
}

// Run executes the checks in order, short-circuiting at the first failure.
// There are no retries: failures surface verbatim and the participant
// fixes the environment and runs the check again.
func Run(checks ...check.Checker) Report {
	var report Report
	for _, c := range checks {
		result := c.Run()
		report.Results = append(report.Results, result)
		if !result.OK() {
			report.Message = failureMessage(result)
			return report
		}
	}
	report.Success = true
	report.Message = SuccessMessage
	return report
}

func failureMessage(r check.Result) string {
	msg := fmt.Sprintf("✖ %s failed", r.Name)
	if r.Err != nil {
		msg += ": " + r.Err.Error()
	}
	return msg
}
