// Package audit turns task mutations into immutable history entries and
// decides when the assignee must be notified. History is written from
// the pre-mutation snapshot so the trail stays decoupled from the task's
// current state.
package audit

import (
	"fmt"

	"taskmanager/models"
)

// trackedField maps one audited task field to its history action.
// Adding an audited field is one more row here.
type trackedField struct {
	action string
	old    func(models.Task) string
	new    func(models.UpdateTaskInput) *string
}

var trackedFields = []trackedField{
	{
		action: models.ActionStatusChanged,
		old:    func(t models.Task) string { return t.Status },
		new:    func(in models.UpdateTaskInput) *string { return in.Status },
	},
	{
		action: models.ActionTitleChanged,
		old:    func(t models.Task) string { return t.Title },
		new:    func(in models.UpdateTaskInput) *string { return in.Title },
	},
	{
		action: models.ActionPriorityChanged,
		old:    func(t models.Task) string { return t.Priority },
		new:    func(in models.UpdateTaskInput) *string { return in.Priority },
	},
}

// CreationEntry is the single CREATED record every task gets on insert.
func CreationEntry(task models.Task, actor models.Caller) models.History {
	return models.History{
		TaskID:   task.ID,
		UserID:   actor.ID,
		Action:   models.ActionCreated,
		OldValue: "",
		NewValue: task.Title,
	}
}

// DeletionEntry must be persisted before the task row is removed.
func DeletionEntry(task models.Task, actor models.Caller) models.History {
	return models.History{
		TaskID:   task.ID,
		UserID:   actor.ID,
		Action:   models.ActionDeleted,
		OldValue: task.Title,
		NewValue: "",
	}
}

// TrackChanges diffs the pre-update snapshot against the incoming
// payload on the tracked fields only. Each changed field yields one
// entry; unsupplied and unchanged fields yield none.
func TrackChanges(old models.Task, in models.UpdateTaskInput, actor models.Caller) []models.History {
	var entries []models.History
	for _, f := range trackedFields {
		incoming := f.new(in)
		if incoming == nil {
			continue
		}
		before := f.old(old)
		if before == *incoming {
			continue
		}
		entries = append(entries, models.History{
			TaskID:   old.ID,
			UserID:   actor.ID,
			Action:   f.action,
			OldValue: before,
			NewValue: *incoming,
		})
	}
	return entries
}

// AssignmentNotification returns the notification owed to the assignee
// after a create or update, or nil when none applies: the task must have
// an assignee and the assignee must not be the acting caller.
func AssignmentNotification(task models.Task, actor models.Caller, created bool) *models.Notification {
	if task.AssignedTo == nil || *task.AssignedTo == actor.ID {
		return nil
	}
	n := &models.Notification{UserID: *task.AssignedTo}
	if created {
		n.Type = models.NotificationTaskAssigned
		n.Message = fmt.Sprintf("Nueva tarea asignada: %s", task.Title)
	} else {
		n.Type = models.NotificationTaskUpdated
		n.Message = fmt.Sprintf("Tarea actualizada: %s", task.Title)
	}
	return n
}
