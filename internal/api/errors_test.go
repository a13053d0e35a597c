package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "task_not_found", err: store.ErrTaskNotFound, expected: http.StatusNotFound},
		{name: "generic_not_found", err: store.ErrNotFound, expected: http.StatusNotFound},
		{
			name:     "wrapped_not_found",
			err:      fmt.Errorf("lookup failed: %w", store.ErrTaskNotFound),
			expected: http.StatusNotFound,
		},
		{name: "title_empty", err: domain.ErrTaskTitleEmpty, expected: http.StatusBadRequest},
		{name: "title_too_long", err: domain.ErrTaskTitleTooLong, expected: http.StatusBadRequest},
		{
			name:     "description_too_long",
			err:      domain.ErrTaskDescriptionTooLong,
			expected: http.StatusBadRequest,
		},
		{name: "invalid_priority", err: domain.ErrTaskPriorityInvalid, expected: http.StatusBadRequest},
		{name: "invalid_status", err: domain.ErrTaskStatusInvalid, expected: http.StatusBadRequest},
		{name: "invalid_entity", err: store.ErrInvalidEntity, expected: http.StatusBadRequest},
		{name: "unknown_error", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil_error", err: nil, expected: "An unexpected error occurred"},
		{name: "task_not_found", err: store.ErrTaskNotFound, expected: "Task not found"},
		{name: "title_empty", err: domain.ErrTaskTitleEmpty, expected: "Title cannot be empty"},
		{
			name:     "title_too_long",
			err:      domain.ErrTaskTitleTooLong,
			expected: "Title must be at most 255 characters",
		},
		{
			name:     "description_too_long",
			err:      domain.ErrTaskDescriptionTooLong,
			expected: "Description must be at most 1000 characters",
		},
		{name: "invalid_priority", err: domain.ErrTaskPriorityInvalid, expected: "Invalid priority"},
		{name: "invalid_status", err: domain.ErrTaskStatusInvalid, expected: "Invalid status"},
		{
			name:     "raw_storage_error_is_hidden",
			err:      errors.New("pq: connection to server at db.internal failed"),
			expected: "An unexpected error occurred",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	err := errors.New(
		"Key: 'CreateTaskRequest.Priority' Error:Field validation for 'Priority' failed on the 'oneof' tag",
	)
	assert.Equal(t, "Invalid Priority: invalid value", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("boom")))
}
