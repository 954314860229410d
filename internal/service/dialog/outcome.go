package dialog

// Outcome is the result of one engine turn
type Outcome int

const (
	// OutcomeEmpty means no dialog was active
	OutcomeEmpty Outcome = iota
	// OutcomeWaiting means a step sent a prompt and is suspended
	OutcomeWaiting
	// OutcomeComplete means the reservation was submitted
	OutcomeComplete
	// OutcomeAborted means the dialog ended early and its state was cleared
	OutcomeAborted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEmpty:
		return "empty"
	case OutcomeWaiting:
		return "waiting"
	case OutcomeComplete:
		return "complete"
	case OutcomeAborted:
		return "aborted"
	}
	return "unknown"
}
