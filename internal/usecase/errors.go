package usecase

import "errors"

var ErrProductNotFound = errors.New("product not found")

// StoreError wraps a persistence failure so the delivery layer can
// distinguish infrastructure faults from business failures. It never escapes
// the use-case layer as anything other than a failed Result.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
