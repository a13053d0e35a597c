package domain

import (
	"strings"
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestNewTask(t *testing.T) {
	t.Parallel()

	task, err := NewTask("Buy groceries", strPtr("Milk, eggs, bread"), "", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.Title != "Buy groceries" {
		t.Errorf("Expected title %q, got %q", "Buy groceries", task.Title)
	}

	if task.Description == nil || *task.Description != "Milk, eggs, bread" {
		t.Errorf("Expected description to be set, got %v", task.Description)
	}

	if task.Completed {
		t.Error("Expected new task to not be completed")
	}

	if task.Priority != PriorityModerate {
		t.Errorf("Expected default priority %s, got %s", PriorityModerate, task.Priority)
	}

	if task.Status != StatusNotStarted {
		t.Errorf("Expected default status %s, got %s", StatusNotStarted, task.Status)
	}

	if task.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if !task.UpdatedAt.Equal(task.CreatedAt) {
		t.Errorf("Expected CreatedAt and UpdatedAt to be equal at creation, got %v and %v",
			task.CreatedAt, task.UpdatedAt)
	}
}

func TestNewTaskExplicitFields(t *testing.T) {
	t.Parallel()

	task, err := NewTask("Write report", nil, PriorityHigh, StatusInProgress)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.Description != nil {
		t.Errorf("Expected nil description, got %v", *task.Description)
	}

	if task.Priority != PriorityHigh {
		t.Errorf("Expected priority %s, got %s", PriorityHigh, task.Priority)
	}

	if task.Status != StatusInProgress {
		t.Errorf("Expected status %s, got %s", StatusInProgress, task.Status)
	}
}

func TestNewTaskValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		title       string
		description *string
		priority    Priority
		status      Status
		wantErr     error
	}{
		{
			name:    "empty_title",
			title:   "",
			wantErr: ErrTaskTitleEmpty,
		},
		{
			name:    "whitespace_title",
			title:   "   \t  ",
			wantErr: ErrTaskTitleEmpty,
		},
		{
			name:    "title_too_long",
			title:   strings.Repeat("a", MaxTitleLength+1),
			wantErr: ErrTaskTitleTooLong,
		},
		{
			name:    "multibyte_title_too_long",
			title:   strings.Repeat("é", MaxTitleLength+1),
			wantErr: ErrTaskTitleTooLong,
		},
		{
			name:        "description_too_long",
			title:       "ok",
			description: strPtr(strings.Repeat("d", MaxDescriptionLength+1)),
			wantErr:     ErrTaskDescriptionTooLong,
		},
		{
			name:        "multibyte_description_too_long",
			title:       "ok",
			description: strPtr(strings.Repeat("日", MaxDescriptionLength+1)),
			wantErr:     ErrTaskDescriptionTooLong,
		},
		{
			name:     "unknown_priority",
			title:    "ok",
			priority: Priority("Urgent"),
			wantErr:  ErrTaskPriorityInvalid,
		},
		{
			name:    "unknown_status",
			title:   "ok",
			status:  Status("Done"),
			wantErr: ErrTaskStatusInvalid,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewTask(tc.title, tc.description, tc.priority, tc.status)
			if err != tc.wantErr {
				t.Errorf("Expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestNewTaskTrimBoundary(t *testing.T) {
	t.Parallel()

	// A title that only fits inside the limit once surrounding
	// whitespace is trimmed must be accepted, and the raw value kept.
	raw := "  " + strings.Repeat("a", MaxTitleLength) + "  "
	task, err := NewTask(raw, nil, "", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.Title != raw {
		t.Errorf("Expected raw title to be preserved, got %q", task.Title)
	}
}

func TestNewTaskMultibyteLengthCountsCharacters(t *testing.T) {
	t.Parallel()

	// Limits are character counts, not byte counts: a title of
	// MaxTitleLength two-byte runes exceeds the limit in bytes but must
	// still be accepted.
	title := strings.Repeat("é", MaxTitleLength)
	desc := strings.Repeat("é", MaxDescriptionLength)

	task, err := NewTask(title, &desc, "", "")
	if err != nil {
		t.Fatalf("Expected no error for max-length multibyte fields, got %v", err)
	}

	if task.Title != title {
		t.Errorf("Expected title to be preserved, got %q", task.Title)
	}
}

func TestTaskApply(t *testing.T) {
	t.Parallel()

	task, err := NewTask("Original", nil, "", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	before := task.UpdatedAt

	completed := true
	update := TaskUpdate{
		Title:       strPtr("Renamed"),
		Description: strPtr("with details"),
		Completed:   &completed,
	}

	time.Sleep(time.Millisecond) // ensure the clock advances
	if err := task.Apply(update); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.Title != "Renamed" {
		t.Errorf("Expected title %q, got %q", "Renamed", task.Title)
	}
	if task.Description == nil || *task.Description != "with details" {
		t.Errorf("Expected description to be updated, got %v", task.Description)
	}
	if !task.Completed {
		t.Error("Expected task to be completed")
	}
	if !task.UpdatedAt.After(before) {
		t.Errorf("Expected UpdatedAt to advance, got %v (was %v)", task.UpdatedAt, before)
	}
	if task.UpdatedAt.Before(task.CreatedAt) {
		t.Error("Expected CreatedAt <= UpdatedAt")
	}
}

func TestTaskApplyEmptyUpdateRefreshesTimestamp(t *testing.T) {
	t.Parallel()

	task, err := NewTask("Untouched", nil, "", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	before := task.UpdatedAt

	time.Sleep(time.Millisecond)
	if err := task.Apply(TaskUpdate{}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !task.UpdatedAt.After(before) {
		t.Error("Expected UpdatedAt to be refreshed even when no field changed")
	}
}

func TestTaskApplyInvalidUpdateRestoresState(t *testing.T) {
	t.Parallel()

	task, err := NewTask("Stable", strPtr("desc"), PriorityHigh, StatusInProgress)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	snapshot := *task

	update := TaskUpdate{Title: strPtr("   ")}
	if err := task.Apply(update); err != ErrTaskTitleEmpty {
		t.Fatalf("Expected error %v, got %v", ErrTaskTitleEmpty, err)
	}

	if *task != snapshot {
		t.Errorf("Expected task to be unchanged after failed update, got %+v", task)
	}
}

func TestPriorityIsValid(t *testing.T) {
	t.Parallel()

	for _, p := range []Priority{PriorityLow, PriorityModerate, PriorityHigh} {
		if !p.IsValid() {
			t.Errorf("Expected priority %s to be valid", p)
		}
	}

	for _, p := range []Priority{"", "low", "Critical"} {
		if p.IsValid() {
			t.Errorf("Expected priority %q to be invalid", p)
		}
	}
}

func TestStatusIsValid(t *testing.T) {
	t.Parallel()

	for _, s := range []Status{StatusNotStarted, StatusInProgress, StatusCompleted} {
		if !s.IsValid() {
			t.Errorf("Expected status %s to be valid", s)
		}
	}

	for _, s := range []Status{"", "NotStarted", "Done"} {
		if s.IsValid() {
			t.Errorf("Expected status %q to be invalid", s)
		}
	}
}
