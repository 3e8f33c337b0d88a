package model

// CheckStatus represents the status of a doctor check.
type CheckStatus string

const (
	// CheckStatusOK indicates the check passed.
	CheckStatusOK CheckStatus = "ok"
	// CheckStatusWarning indicates the check passed with a warning.
	CheckStatusWarning CheckStatus = "warning"
	// CheckStatusError indicates the check failed.
	CheckStatusError CheckStatus = "error"
)

// CheckResult represents the result of a single doctor check.
type CheckResult struct {
	ID      string      // Unique identifier for the check (e.g., "db_open").
	Message string      // Human-readable description of the result.
	Status  CheckStatus // Status of the check.
}

// CountStatus returns the number of results with the given status.
func CountStatus(results []CheckResult, status CheckStatus) int {
	n := 0
	for _, r := range results {
		if r.Status == status {
			n++
		}
	}
	return n
}

// HasErrors returns true if any check result has an error status.
func HasErrors(results []CheckResult) bool {
	return CountStatus(results, CheckStatusError) > 0
}
