package depcheck

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/meegsim/labcheck/pkg/check"
)

// DefaultTimeout bounds the version command; a dependency that hangs on
// --version is as unusable as a missing one.
const DefaultTimeout = 30 * time.Second

// Check verifies that a required tool is installed and can run.
type Check struct {
	Name        string        // tool name to look up on PATH
	VersionArgs []string      // args to get version (default: --version)
	Constraint  string        // semver range the version must satisfy, e.g. ">= 1.7"
	Match       string        // regex pattern to match against version output
	Timeout     time.Duration // timeout for the version command (default: 30s)
	Runner      Runner        // injected for testing
}

// Run executes the dependency check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("dep: %s", c.Name),
	}

	path, err := c.Runner.LookPath(c.Name)
	if err != nil {
		return result.Failf(check.KindDependency, "%s not found in PATH: %v", c.Name, err)
	}

	result.AddDetailf("path: %s", path)

	args := c.VersionArgs
	if len(args) == 0 {
		args = []string{"--version"}
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stdout, stderr, err := c.Runner.RunContext(ctx, c.Name, args...)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return result.Failf(check.KindDependency, "version command timed out after %s", timeout)
		}
		result.AddDetailf("version command failed: %v", err)
		if stderr != "" {
			result.AddDetailf("stderr: %s", stderr)
		}
		result.Status = check.StatusFail
		result.Kind = check.KindDependency
		result.Err = err
		return result
	}

	output := stdout
	if output == "" {
		output = stderr
	}

	switch {
	case c.Match != "":
		if err := c.checkMatch(output, &result); err != nil {
			return result
		}
	case c.Constraint != "":
		if err := c.checkConstraint(output, &result); err != nil {
			return result
		}
	default:
		if output != "" {
			result.AddDetailf("version: %s", output)
		}
	}

	result.Status = check.StatusOK
	return result
}

func (c *Check) checkMatch(output string, result *check.Result) error {
	re, err := check.CompileRegex(c.Match)
	if err != nil {
		result.Failf(check.KindDependency, "invalid regex pattern: %v", err)
		return err
	}
	if !re.MatchString(output) {
		err := fmt.Errorf("version output does not match pattern %q", c.Match)
		result.Fail(check.KindDependency,
			fmt.Sprintf("version output %q does not match pattern %q", output, c.Match), err)
		return err
	}
	result.AddDetailf("version: %s", output)
	return nil
}

func (c *Check) checkConstraint(output string, result *check.Result) error {
	constraint, err := semver.NewConstraint(c.Constraint)
	if err != nil {
		result.Failf(check.KindDependency, "invalid version constraint %q: %v", c.Constraint, err)
		return err
	}

	version, err := ExtractVersion(output)
	if err != nil {
		result.Failf(check.KindDependency, "could not parse version from output: %v", err)
		return err
	}

	result.AddDetailf("version: %s", version)

	if !constraint.Check(version) {
		err := fmt.Errorf("version %s does not satisfy constraint %q", version, c.Constraint)
		result.Fail(check.KindDependency,
			fmt.Sprintf("version %s does not satisfy %q", version, c.Constraint), err)
		return err
	}
	return nil
}
