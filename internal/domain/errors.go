package domain

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrNoTransition   = errors.New("order has no next status")
	ErrUpdateInFlight = errors.New("status update already in progress")
	ErrStatusUpdate   = errors.New("status update failed")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrProductUpdate  = errors.New("product update rejected")
)

// BackendError is an application error reported by the bakery backend as {error, details}.
type BackendError struct {
	StatusCode int
	Err        string
	Details    string
}

// Error prefers details over the short error, the way operators expect to read it.
func (e *BackendError) Error() string {
	if e.Details != "" {
		return e.Details
	}
	if e.Err != "" {
		return e.Err
	}
	return "backend error"
}
