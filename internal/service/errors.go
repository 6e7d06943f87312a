package service

import "errors"

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when there's a conflict (e.g., duplicate)
	ErrConflict = errors.New("resource conflict")

	// ErrInvalidStatus is returned when a status value is not one of the allowed values
	ErrInvalidStatus = errors.New("invalid status")

	// ErrLocationInUse is returned when removing an event location that shifts still reference
	ErrLocationInUse = errors.New("location is referenced by shifts")

	// ErrShiftsNotInEvent is returned when a bulk status change names shifts outside the event
	ErrShiftsNotInEvent = errors.New("one or more shifts do not belong to the event")

	// ErrNoShiftsSelected is returned when a bulk status change matches no shifts
	ErrNoShiftsSelected = errors.New("no shifts matched the selection")
)
