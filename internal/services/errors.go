package services

import "errors"

var (
	ErrInvalidIndex = errors.New("alarm index out of range")
	ErrMissingTime  = errors.New("alarm time not set")
)
