package checkout

// Status tracks the order submission handshake for one cart instance.
type Status string

const (
	StatusIdle       Status = "IDLE"
	StatusSubmitting Status = "SUBMITTING"
	StatusSucceeded  Status = "SUCCEEDED"
	StatusFailed     Status = "FAILED"
)

var allowedTransitions = map[Status][]Status{
	StatusIdle:       {StatusSubmitting},
	StatusSubmitting: {StatusSucceeded, StatusFailed},
	// Failed permits retry by resubmission; Succeeded is terminal.
	StatusFailed:    {StatusSubmitting},
	StatusSucceeded: {},
}

func CanTransitionTo(from, to Status) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusSucceeded
}

// String representation (for logging)
func (s Status) String() string {
	return string(s)
}
