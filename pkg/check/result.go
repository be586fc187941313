package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Kind classifies a failure so callers can tell which stage of the
// installation check broke. Successful results carry no kind.
type Kind string

const (
	// KindFilesystem means the data directory could not be created or accessed.
	KindFilesystem Kind = "filesystem"

	// KindDependency means a required tool is missing or unusable.
	KindDependency Kind = "dependency"

	// KindDataFetch means the sample dataset could not be obtained or verified.
	KindDataFetch Kind = "data-fetch"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // e.g., "datadir: ~/meeg_data", "dep: mne-tools"
	Status  Status   // OK or FAIL
	Kind    Kind     // failure classification, empty on success
	Details []string // human-readable details
	Err     error    // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}
