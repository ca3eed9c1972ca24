package validators

import (
	"strings"
	"testing"

	"taskmanager/models"
)

func fields(errs []FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func hasField(errs []FieldError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func strPtr(s string) *string { return &s }

func f64Ptr(v float64) *float64 { return &v }

func TestValidateTaskInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		input  models.CreateTaskInput
		fields []string
	}{
		{
			name:  "minimal valid",
			input: models.CreateTaskInput{Title: "Preparar informe"},
		},
		{
			name:   "empty title",
			input:  models.CreateTaskInput{Title: "   "},
			fields: []string{"title"},
		},
		{
			name:   "title too long",
			input:  models.CreateTaskInput{Title: strings.Repeat("x", 201)},
			fields: []string{"title"},
		},
		{
			name:  "title at the limit",
			input: models.CreateTaskInput{Title: strings.Repeat("á", 200)},
		},
		{
			name:   "description too long",
			input:  models.CreateTaskInput{Title: "ok", Description: strings.Repeat("x", 1001)},
			fields: []string{"description"},
		},
		{
			name:   "unknown status and priority",
			input:  models.CreateTaskInput{Title: "ok", Status: "Done", Priority: "Urgent"},
			fields: []string{"status", "priority"},
		},
		{
			name:  "empty enum values accepted",
			input: models.CreateTaskInput{Title: "ok"},
		},
		{
			name:   "negative hours",
			input:  models.CreateTaskInput{Title: "ok", EstimatedHours: -1, ActualHours: -0.5},
			fields: []string{"estimatedHours", "actualHours"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := ValidateTaskInput(tc.input)
			if len(errs) != len(tc.fields) {
				t.Fatalf("expected errors on %v, got %v", tc.fields, fields(errs))
			}
			for _, f := range tc.fields {
				if !hasField(errs, f) {
					t.Fatalf("expected an error on %q, got %v", f, fields(errs))
				}
			}
		})
	}
}

func TestValidateTaskUpdate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		input  models.UpdateTaskInput
		fields []string
	}{
		{
			name:  "empty payload is valid",
			input: models.UpdateTaskInput{},
		},
		{
			name:   "supplied empty title rejected",
			input:  models.UpdateTaskInput{Title: strPtr("  ")},
			fields: []string{"title"},
		},
		{
			name:   "supplied empty status rejected",
			input:  models.UpdateTaskInput{Status: strPtr("")},
			fields: []string{"status"},
		},
		{
			name:  "valid enum values",
			input: models.UpdateTaskInput{Status: strPtr(models.StatusBloqueada), Priority: strPtr(models.PriorityCritica)},
		},
		{
			name:   "negative hours rejected",
			input:  models.UpdateTaskInput{EstimatedHours: f64Ptr(-2)},
			fields: []string{"estimatedHours"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := ValidateTaskUpdate(tc.input)
			if len(errs) != len(tc.fields) {
				t.Fatalf("expected errors on %v, got %v", tc.fields, fields(errs))
			}
			for _, f := range tc.fields {
				if !hasField(errs, f) {
					t.Fatalf("expected an error on %q, got %v", f, fields(errs))
				}
			}
		})
	}
}

func TestValidateProjectInput(t *testing.T) {
	t.Parallel()

	if errs := ValidateProjectInput(models.ProjectInput{Name: "Proyecto Demo"}); len(errs) != 0 {
		t.Fatalf("valid project rejected: %v", errs)
	}
	if errs := ValidateProjectInput(models.ProjectInput{Name: ""}); !hasField(errs, "name") {
		t.Fatalf("empty name must be rejected, got %v", errs)
	}
	if errs := ValidateProjectInput(models.ProjectInput{Name: strings.Repeat("x", 101)}); !hasField(errs, "name") {
		t.Fatalf("overlong name must be rejected, got %v", errs)
	}
	if errs := ValidateProjectInput(models.ProjectInput{Name: "ok", Description: strings.Repeat("x", 501)}); !hasField(errs, "description") {
		t.Fatalf("overlong description must be rejected, got %v", errs)
	}
}

func TestValidateCommentInput(t *testing.T) {
	t.Parallel()

	if errs := ValidateCommentInput(models.CommentInput{TaskID: 1, CommentText: "hola"}); len(errs) != 0 {
		t.Fatalf("valid comment rejected: %v", errs)
	}
	if errs := ValidateCommentInput(models.CommentInput{TaskID: 0, CommentText: " "}); len(errs) != 2 {
		t.Fatalf("expected taskId and commentText errors, got %v", errs)
	}
	if errs := ValidateCommentInput(models.CommentInput{TaskID: 1, CommentText: strings.Repeat("x", 1001)}); !hasField(errs, "commentText") {
		t.Fatalf("overlong comment must be rejected, got %v", errs)
	}
}
