package postgres

import (
	"context"
	"fmt"

	"github.com/phrazzld/todo-api/internal/store"
)

// schemaStatements create the task table and its indexes. There is no
// migration system; the schema is ensured at process start and every
// statement is idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS task (
		id BIGSERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description VARCHAR(1000),
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		priority TEXT NOT NULL DEFAULT 'Moderate',
		status TEXT NOT NULL DEFAULT 'Not Started',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_task_title ON task (title)`,
	`CREATE INDEX IF NOT EXISTS idx_task_completed ON task (completed)`,
	`CREATE INDEX IF NOT EXISTS idx_task_created_at ON task (created_at DESC, id DESC)`,
}

// EnsureSchema creates the task table and its indexes if they do not
// already exist. It is safe to call on every startup.
func EnsureSchema(ctx context.Context, db store.DBTX) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure task schema: %w", err)
		}
	}
	return nil
}
