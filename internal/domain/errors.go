package domain

import "errors"

var (
	// ErrAuthExpired is returned when the user's booking API token is missing or no longer accepted
	ErrAuthExpired = errors.New("domain: authentication expired")

	// ErrValidationRejected marks user input refused by a step validator
	ErrValidationRejected = errors.New("domain: input rejected")

	// ErrInternalProtocol is returned when a dialog resume does not match the suspended step
	ErrInternalProtocol = errors.New("domain: internal dialog protocol error")

	// ErrNoOpenSlot is returned when a recommendation candidate has no free slot
	ErrNoOpenSlot = errors.New("domain: no open slot found")

	// ErrInvalidTimex is returned for unparseable time expressions
	ErrInvalidTimex = errors.New("domain: invalid time expression")
)

// APIError is a booking API failure other than authentication.
// Message is shown to the user as is.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}
