package output

import (
	"fmt"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/meegsim/labcheck/pkg/check"
	"github.com/meegsim/labcheck/pkg/verify"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// PrintResult outputs a check result with colored status.
func PrintResult(r check.Result) {
	if r.OK() {
		fmt.Printf("%s[OK]%s %s\n", green, reset, r.Name)
		for _, d := range r.Details {
			fmt.Printf("     %s\n", formatLabel(d))
		}
	} else {
		fmt.Printf("%s[FAIL]%s %s\n", red, reset, r.Name)
		for _, d := range r.Details {
			fmt.Printf("       %s\n", formatLabel(d))
		}
	}
}

// PrintReport outputs every result of a verification run, then the
// summary line (the fixed checkmark message on success).
func PrintReport(r verify.Report) {
	for _, result := range r.Results {
		PrintResult(result)
	}
	if r.Success {
		fmt.Printf("%s%s%s\n", green, r.Message, reset)
	} else {
		fmt.Printf("%s%s%s\n", red, r.Message, reset)
	}
}

// formatLabel dims the "key:" prefix of a detail line, if it has one.
func formatLabel(detail string) string {
	idx := strings.Index(detail, ": ")
	if idx == -1 {
		return detail
	}
	return dim + detail[:idx+1] + reset + detail[idx+1:]
}
