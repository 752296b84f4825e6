package result

// Result is a two-variant outcome: a success carrying a value, or a failure
// carrying an error. Use-case operations return Result instead of letting
// business errors propagate; callers inspect IsSuccess/IsFailure rather than
// comparing against sentinel values at the delivery layer.
type Result[T any] struct {
	value T
	err   error
}

// Unit is the payload type for operations that succeed with no value.
type Unit struct{}

// Ok wraps a value in a successful Result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err wraps an error in a failed Result.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Done is a successful Result for void operations.
func Done() Result[Unit] {
	return Result[Unit]{}
}

func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

func (r Result[T]) IsFailure() bool {
	return r.err != nil
}

// Value returns the success payload. Only meaningful when IsSuccess.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure cause, nil on success.
func (r Result[T]) Err() error {
	return r.err
}
