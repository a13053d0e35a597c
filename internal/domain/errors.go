// Package domain defines the core business entities and errors.
package domain

import "errors"

// Task validation errors. These are sentinel errors so callers can
// classify failures with errors.Is.
var (
	// ErrTaskTitleEmpty is returned when a task title is empty or
	// whitespace-only after trimming.
	ErrTaskTitleEmpty = errors.New("task title cannot be empty")

	// ErrTaskTitleTooLong is returned when a task title exceeds
	// MaxTitleLength characters after trimming.
	ErrTaskTitleTooLong = errors.New("task title too long")

	// ErrTaskDescriptionTooLong is returned when a task description
	// exceeds MaxDescriptionLength characters.
	ErrTaskDescriptionTooLong = errors.New("task description too long")

	// ErrTaskPriorityInvalid is returned when a priority is not one of
	// the known values.
	ErrTaskPriorityInvalid = errors.New("invalid task priority")

	// ErrTaskStatusInvalid is returned when a status is not one of the
	// known values.
	ErrTaskStatusInvalid = errors.New("invalid task status")
)
