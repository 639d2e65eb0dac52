package application

import "errors"

var (
	// ErrInvalidInput signals the registration request violated an invariant.
	ErrInvalidInput = errors.New("invalid registration input")
	// ErrDuplicateAccount signals the normalized email is already registered.
	ErrDuplicateAccount = errors.New("an account with that email already exists")
	// ErrBadCredentials covers unknown users, wrong passwords, and disabled
	// accounts alike so login failures stay indistinguishable.
	ErrBadCredentials = errors.New("invalid username or password")
)
