package store

import (
	"context"

	"github.com/phrazzld/todo-api/internal/domain"
)

// ListTasksParams controls filtering and pagination for TaskStore.List.
type ListTasksParams struct {
	// Completed, when non-nil, adds a completed-equals filter to the
	// query. The store always re-applies the fixed completed = false
	// predicate afterwards, so a true filter produces an empty result.
	Completed *bool

	// Offset is the number of rows to skip after filtering and ordering.
	Offset int

	// Limit is the maximum number of rows to return.
	Limit int
}

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store and assigns its ID.
	// It handles domain validation internally.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// List retrieves tasks ordered most-recently-created first
	// (created_at descending, ties broken by id descending), restricted
	// to incomplete tasks, paginated by params.Offset and params.Limit.
	// Returns an empty slice if no tasks match; an empty result is not
	// an error.
	List(ctx context.Context, params ListTasksParams) ([]*domain.Task, error)

	// Update saves all mutable fields of an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	// Returns validation errors if the task data is invalid.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	// This operation is permanent and cannot be undone.
	Delete(ctx context.Context, id int64) error
}
