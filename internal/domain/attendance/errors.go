package attendance

import "errors"

// Attendance domain errors. Gate rejections are Decisions, not errors;
// these cover the true failure paths around them.
var (
	ErrEventNotFound = errors.New("attendance event not found")
	ErrNotPermitted  = errors.New("attendance action not permitted")
)

// GateError carries a rejecting Decision across the service boundary so the
// handler can surface the reason code and message verbatim.
type GateError struct {
	Decision Decision
}

func (e *GateError) Error() string {
	return e.Decision.Message
}

func (e *GateError) Unwrap() error {
	return ErrNotPermitted
}
