package service

import "errors"

// Common service errors
var (
	// ErrPermissionDenied is returned when a user doesn't have permission for an action
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when there's a conflict (e.g., duplicate)
	ErrConflict = errors.New("resource conflict")

	// ErrUnauthorized is returned when user is not authenticated
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials is returned when login fails
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserInactive is returned when a deactivated user tries to log in
	ErrUserInactive = errors.New("user account is inactive")

	// ErrInvalidStageTransition is returned when an offer stage change moves backwards
	ErrInvalidStageTransition = errors.New("invalid stage transition")

	// ErrOfferClosed is returned when mutating an offer in a terminal stage
	ErrOfferClosed = errors.New("offer is in a terminal stage")

	// ErrDuplicateTarget is returned when a target with the same scope and period exists
	ErrDuplicateTarget = errors.New("target already exists for this scope and period")
)
