package service

import "errors"

var (
	// ErrValidation marks malformed or out-of-policy input. Nothing was
	// persisted.
	ErrValidation = errors.New("validation failed")

	// ErrNotEditable and ErrNotWithdrawable are deliberately coarse: the
	// record may be missing, owned by someone else, or already decided.
	// Callers present one generic "only pending requests" message either way.
	ErrNotEditable     = errors.New("only pending leave requests can be edited")
	ErrNotWithdrawable = errors.New("only pending leave requests can be deleted")

	// ErrNotFound covers a decision on an id that does not exist or is no
	// longer pending.
	ErrNotFound = errors.New("leave request not found")

	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
