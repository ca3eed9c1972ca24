package audit

import (
	"testing"

	"taskmanager/models"
)

func strPtr(s string) *string { return &s }

func TestCreationEntry(t *testing.T) {
	t.Parallel()

	task := models.Task{ID: 3, Title: "Preparar informe"}
	entry := CreationEntry(task, models.Caller{ID: 1, Username: "admin"})

	if entry.Action != models.ActionCreated {
		t.Fatalf("expected CREATED, got %s", entry.Action)
	}
	if entry.TaskID != 3 || entry.UserID != 1 {
		t.Fatalf("entry must carry task and actor ids: %+v", entry)
	}
	if entry.OldValue != "" || entry.NewValue != "Preparar informe" {
		t.Fatalf("creation entry records only the new title: %+v", entry)
	}
}

func TestDeletionEntry(t *testing.T) {
	t.Parallel()

	task := models.Task{ID: 3, Title: "Preparar informe"}
	entry := DeletionEntry(task, models.Caller{ID: 2, Username: "user1"})

	if entry.Action != models.ActionDeleted {
		t.Fatalf("expected DELETED, got %s", entry.Action)
	}
	if entry.OldValue != "Preparar informe" || entry.NewValue != "" {
		t.Fatalf("deletion entry records only the old title: %+v", entry)
	}
}

func TestTrackChanges(t *testing.T) {
	t.Parallel()

	base := models.Task{
		ID:       7,
		Title:    "Old title",
		Status:   models.StatusPendiente,
		Priority: models.PriorityMedia,
	}
	actor := models.Caller{ID: 1, Username: "admin"}

	cases := []struct {
		name    string
		input   models.UpdateTaskInput
		actions []string
	}{
		{
			name:    "status only",
			input:   models.UpdateTaskInput{Status: strPtr(models.StatusCompletada)},
			actions: []string{models.ActionStatusChanged},
		},
		{
			name: "all tracked fields",
			input: models.UpdateTaskInput{
				Status:   strPtr(models.StatusEnProgreso),
				Title:    strPtr("New title"),
				Priority: strPtr(models.PriorityAlta),
			},
			actions: []string{models.ActionStatusChanged, models.ActionTitleChanged, models.ActionPriorityChanged},
		},
		{
			name: "same values produce nothing",
			input: models.UpdateTaskInput{
				Status: strPtr(models.StatusPendiente),
				Title:  strPtr("Old title"),
			},
			actions: nil,
		},
		{
			name:    "unsupplied fields are skipped",
			input:   models.UpdateTaskInput{Description: strPtr("untracked change")},
			actions: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entries := TrackChanges(base, tc.input, actor)
			if len(entries) != len(tc.actions) {
				t.Fatalf("expected %d entries, got %+v", len(tc.actions), entries)
			}
			for i, action := range tc.actions {
				if entries[i].Action != action {
					t.Fatalf("entry %d: expected %s, got %s", i, action, entries[i].Action)
				}
				if entries[i].TaskID != base.ID || entries[i].UserID != actor.ID {
					t.Fatalf("entry %d must carry task and actor ids: %+v", i, entries[i])
				}
			}
		})
	}
}

func TestTrackChanges_RecordsBeforeAndAfterValues(t *testing.T) {
	t.Parallel()

	base := models.Task{ID: 7, Title: "t", Status: models.StatusPendiente, Priority: models.PriorityMedia}
	entries := TrackChanges(base, models.UpdateTaskInput{Status: strPtr(models.StatusBloqueada)}, models.Caller{ID: 1})

	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0].OldValue != models.StatusPendiente || entries[0].NewValue != models.StatusBloqueada {
		t.Fatalf("entry must record the transition: %+v", entries[0])
	}
}

func TestAssignmentNotification(t *testing.T) {
	t.Parallel()

	assignee := int64(5)
	actor := models.Caller{ID: 1, Username: "admin"}

	n := AssignmentNotification(models.Task{Title: "Demo", AssignedTo: &assignee}, actor, true)
	if n == nil || n.UserID != assignee || n.Type != models.NotificationTaskAssigned {
		t.Fatalf("creation must notify the assignee: %+v", n)
	}
	if n.Message != "Nueva tarea asignada: Demo" {
		t.Fatalf("unexpected message: %q", n.Message)
	}

	n = AssignmentNotification(models.Task{Title: "Demo", AssignedTo: &assignee}, actor, false)
	if n == nil || n.Type != models.NotificationTaskUpdated || n.Message != "Tarea actualizada: Demo" {
		t.Fatalf("update must use the updated wording: %+v", n)
	}

	if n := AssignmentNotification(models.Task{Title: "Demo"}, actor, true); n != nil {
		t.Fatalf("unassigned task must not notify: %+v", n)
	}

	self := actor.ID
	if n := AssignmentNotification(models.Task{Title: "Demo", AssignedTo: &self}, actor, false); n != nil {
		t.Fatalf("self-assignment must not notify: %+v", n)
	}
}
