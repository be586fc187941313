package depcheck

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// versionRegex matches the first version-looking token in command output,
// e.g. "1.7.0" in "mne-tools 1.7.0 (linux-amd64)".
var versionRegex = regexp.MustCompile(`v?(\d+(?:\.\d+){0,2})`)

// ExtractVersion finds and parses the first version number in command output.
func ExtractVersion(output string) (*semver.Version, error) {
	matches := versionRegex.FindStringSubmatch(output)
	if matches == nil {
		return nil, fmt.Errorf("no version found in: %q", output)
	}

	version, err := semver.NewVersion(matches[1])
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", matches[1], err)
	}
	return version, nil
}
