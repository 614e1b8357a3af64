package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrUnpaidDeposit indicates a deposit disposition was requested
	// before the security deposit was paid.
	ErrUnpaidDeposit = errors.New("security deposit not paid")
)
