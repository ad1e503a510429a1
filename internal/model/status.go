package model

// Outcome is the result of a single launch attempt
type Outcome string

const (
	// OutcomeLaunched means the external program was still running at check time
	OutcomeLaunched Outcome = "launched"

	// OutcomeExited means the process ended with status 0 inside the check window
	OutcomeExited Outcome = "exited"

	// OutcomeCrashed means the process ended with a non-zero status inside the check window
	OutcomeCrashed Outcome = "crashed"

	// OutcomeSpawnFailed means the process could not be started at all
	OutcomeSpawnFailed Outcome = "spawn-failed"

	// OutcomeUnsupported means the desktop integration is missing or lacks the action
	OutcomeUnsupported Outcome = "unsupported"

	// OutcomeDesktopFailed means the desktop integration reported an error
	OutcomeDesktopFailed Outcome = "desktop-failed"

	// OutcomeSkipped means the step was not applicable, e.g. a disabled editor
	OutcomeSkipped Outcome = "skipped"
)

// String returns the string representation of Outcome
func (o Outcome) String() string {
	return string(o)
}

// Launched reports whether the attempt counts as a successful launch
func (o Outcome) Launched() bool {
	return o == OutcomeLaunched
}

// IsProcessFailure returns true if a process was involved and did not stay up
func (o Outcome) IsProcessFailure() bool {
	return o == OutcomeExited || o == OutcomeCrashed || o == OutcomeSpawnFailed
}
