package application

import "errors"

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrForbidden signals the caller does not own the order and is not an admin.
	ErrForbidden = errors.New("order access denied")
	// ErrConflict signals a status transition rule was violated.
	ErrConflict = errors.New("order state conflict")
)
