package check

// Checker is implemented by all check types.
// Each check validates one aspect of the workshop environment
// and returns a Result indicating success or failure.
//
// Implementations:
//   - datadir.Check: resolves and prepares the workshop data directory
//   - depcheck.Check: verifies a required tool is installed and usable
//   - dataset.Check: fetches and verifies the sample dataset
type Checker interface {
	Run() Result
}
