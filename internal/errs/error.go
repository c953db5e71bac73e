package errs

import (
	"errors"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidState         = errors.New("resource cannot be reserved")
	ErrAlreadyBorrowed      = errors.New("resource already borrowed")
	ErrResourceNotAvailable = errors.New("resource not available")
	ErrLoanLimitExceeded    = errors.New("maximum loan limit reached")
	ErrInvalidMembership    = errors.New("invalid membership type")
	ErrAlreadyExists        = errors.New("already exists")
	ErrNotReservable        = errors.New("resource is not reservable")
	ErrNotRenewable         = errors.New("resource is not renewable")
)
