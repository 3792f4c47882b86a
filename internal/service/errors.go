package service

import "errors"

var (
	// ErrNotReady is returned when an operation arrives before Initialize
	// has completed successfully.
	ErrNotReady = errors.New("session manager is not initialized")

	// ErrInvalidCredentials deliberately does not distinguish an unknown
	// name from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserAlreadyExists is returned when a registration collides with an
	// existing name or email.
	ErrUserAlreadyExists = errors.New("user with this name or email already exists")

	// ErrCostNotCalculated is returned when profit is requested before the
	// total cost has been calculated.
	ErrCostNotCalculated = errors.New("total cost must be calculated first")
)
