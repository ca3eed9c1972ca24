// Package validators applies per-entity field constraints before any
// write reaches the store. Each rule is independent; the caller must
// reject the whole write when the returned list is non-empty.
package validators

import (
	"fmt"
	"strings"

	"taskmanager/models"
)

// FieldError reports one violated constraint on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
	maxProjectNameLen = 100
	maxProjectDescLen = 500
	maxCommentLen     = 1000
)

// ValidateTaskInput checks a task creation payload.
func ValidateTaskInput(in models.CreateTaskInput) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, FieldError{"title", "Title is required"})
	} else if len([]rune(in.Title)) > maxTitleLen {
		errs = append(errs, FieldError{"title", fmt.Sprintf("Title cannot exceed %d characters", maxTitleLen)})
	}
	if len([]rune(in.Description)) > maxDescriptionLen {
		errs = append(errs, FieldError{"description", fmt.Sprintf("Description cannot exceed %d characters", maxDescriptionLen)})
	}
	if in.Status != "" && !models.ValidStatuses[in.Status] {
		errs = append(errs, FieldError{"status", "Invalid status value"})
	}
	if in.Priority != "" && !models.ValidPriorities[in.Priority] {
		errs = append(errs, FieldError{"priority", "Invalid priority value"})
	}
	if in.EstimatedHours < 0 {
		errs = append(errs, FieldError{"estimatedHours", "Estimated hours cannot be negative"})
	}
	if in.ActualHours < 0 {
		errs = append(errs, FieldError{"actualHours", "Actual hours cannot be negative"})
	}
	return errs
}

// ValidateTaskUpdate checks an update payload. Only supplied fields are
// checked; nil pointers mean the stored value stays untouched.
func ValidateTaskUpdate(in models.UpdateTaskInput) []FieldError {
	var errs []FieldError
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			errs = append(errs, FieldError{"title", "Title is required"})
		} else if len([]rune(*in.Title)) > maxTitleLen {
			errs = append(errs, FieldError{"title", fmt.Sprintf("Title cannot exceed %d characters", maxTitleLen)})
		}
	}
	if in.Description != nil && len([]rune(*in.Description)) > maxDescriptionLen {
		errs = append(errs, FieldError{"description", fmt.Sprintf("Description cannot exceed %d characters", maxDescriptionLen)})
	}
	if in.Status != nil && !models.ValidStatuses[*in.Status] {
		errs = append(errs, FieldError{"status", "Invalid status value"})
	}
	if in.Priority != nil && !models.ValidPriorities[*in.Priority] {
		errs = append(errs, FieldError{"priority", "Invalid priority value"})
	}
	if in.EstimatedHours != nil && *in.EstimatedHours < 0 {
		errs = append(errs, FieldError{"estimatedHours", "Estimated hours cannot be negative"})
	}
	if in.ActualHours != nil && *in.ActualHours < 0 {
		errs = append(errs, FieldError{"actualHours", "Actual hours cannot be negative"})
	}
	return errs
}

// ValidateProjectInput checks a project payload for create and update.
func ValidateProjectInput(in models.ProjectInput) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, FieldError{"name", "Project name is required"})
	} else if len([]rune(in.Name)) > maxProjectNameLen {
		errs = append(errs, FieldError{"name", fmt.Sprintf("Project name cannot exceed %d characters", maxProjectNameLen)})
	}
	if len([]rune(in.Description)) > maxProjectDescLen {
		errs = append(errs, FieldError{"description", fmt.Sprintf("Description cannot exceed %d characters", maxProjectDescLen)})
	}
	return errs
}

// ValidateCommentInput checks a comment creation payload.
func ValidateCommentInput(in models.CommentInput) []FieldError {
	var errs []FieldError
	if in.TaskID <= 0 {
		errs = append(errs, FieldError{"taskId", "Task ID is required"})
	}
	if strings.TrimSpace(in.CommentText) == "" {
		errs = append(errs, FieldError{"commentText", "Comment text is required"})
	} else if len([]rune(in.CommentText)) > maxCommentLen {
		errs = append(errs, FieldError{"commentText", fmt.Sprintf("Comment cannot exceed %d characters", maxCommentLen)})
	}
	return errs
}
