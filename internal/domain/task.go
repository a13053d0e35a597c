package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Field length limits enforced on tasks. These mirror the column sizes
// in the task table.
const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 1000
)

// Priority is the importance level assigned to a task.
type Priority string

// Valid priority values.
const (
	PriorityLow      Priority = "Low"
	PriorityModerate Priority = "Moderate"
	PriorityHigh     Priority = "High"
)

// IsValid reports whether the priority is one of the known values.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityModerate, PriorityHigh:
		return true
	}
	return false
}

// Status is the progress state of a task. Statuses carry no transition
// rules; any status may change to any other at any time.
type Status string

// Valid status values.
const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// IsValid reports whether the status is one of the known values.
func (s Status) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task represents a single to-do item. The ID is assigned by the store
// on creation and is immutable afterwards. Description is nullable and
// therefore a pointer.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskUpdate describes a partial update to a task. Nil fields are left
// untouched; a JSON null in the request body decodes to nil and is
// likewise treated as "not supplied".
type TaskUpdate struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *Priority
	Status      *Status
}

// NewTask creates a new Task with the given title and optional fields.
// Zero-valued priority and status fall back to the defaults
// (PriorityModerate, StatusNotStarted). Both timestamps are set to the
// same instant. Returns an error if validation fails.
func NewTask(title string, description *string, priority Priority, status Status) (*Task, error) {
	if priority == "" {
		priority = PriorityModerate
	}
	if status == "" {
		status = StatusNotStarted
	}

	now := time.Now().UTC()
	task := &Task{
		Title:       title,
		Description: description,
		Completed:   false,
		Priority:    priority,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns a sentinel error for the first field that fails validation.
func (t *Task) Validate() error {
	trimmed := strings.TrimSpace(t.Title)
	if trimmed == "" {
		return ErrTaskTitleEmpty
	}
	// Limits count characters, not bytes, matching the column sizes.
	if utf8.RuneCountInString(trimmed) > MaxTitleLength {
		return ErrTaskTitleTooLong
	}

	if t.Description != nil && utf8.RuneCountInString(*t.Description) > MaxDescriptionLength {
		return ErrTaskDescriptionTooLong
	}

	if !t.Priority.IsValid() {
		return ErrTaskPriorityInvalid
	}

	if !t.Status.IsValid() {
		return ErrTaskStatusInvalid
	}

	return nil
}

// Apply merges a partial update into the task and refreshes the
// UpdatedAt timestamp. The timestamp is refreshed on every successful
// call, even when no field actually changed value. If the merged task
// fails validation the original state is restored and the error
// returned.
func (t *Task) Apply(update TaskUpdate) error {
	orig := *t

	if update.Title != nil {
		t.Title = *update.Title
	}
	if update.Description != nil {
		t.Description = update.Description
	}
	if update.Completed != nil {
		t.Completed = *update.Completed
	}
	if update.Priority != nil {
		t.Priority = *update.Priority
	}
	if update.Status != nil {
		t.Status = *update.Status
	}

	if err := t.Validate(); err != nil {
		*t = orig
		return err
	}

	t.UpdatedAt = time.Now().UTC()
	return nil
}
