package domain

import "errors"

var (
	// ErrUnknownStatus is returned for status values outside the lifecycle
	ErrUnknownStatus = errors.New("domain: unknown booking status")
)
