package entity

// ValidationError reports a malformed or out-of-range field value, caught
// before any write. The message is safe to surface verbatim to callers.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// InvariantViolation reports a state-dependent business rule failure on an
// otherwise well-formed request (insufficient stock, already deleted,
// duplicate code).
type InvariantViolation struct {
	Message string
}

func (e *InvariantViolation) Error() string {
	return e.Message
}
