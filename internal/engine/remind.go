package engine

import (
	"time"

	"github.com/avoronova/ritmo/internal/models"
)

// ReminderCategory classifies why a reminder fires.
type ReminderCategory string

const (
	ReminderOverdue       ReminderCategory = "overdue"
	ReminderDueToday      ReminderCategory = "due_today"
	ReminderDueSoon       ReminderCategory = "due_soon"
	ReminderWellnessBreak ReminderCategory = "wellness_break"
)

// ReminderItem is an ephemeral classification result consumed by a
// notification surface. Never persisted.
type ReminderItem struct {
	TaskID      uint
	Category    ReminderCategory
	GeneratedAt time.Time
}

// ClassifyReminder maps a task's due date against now. Completed and
// cancelled tasks never remind, nor do tasks without a due date. A due
// date in the past is overdue; later the same calendar day is
// due_today; within the configured horizon of calendar days is
// due_soon. Pure: identical inputs always yield identical output.
func ClassifyReminder(task models.Task, now time.Time, cfg Config) (ReminderItem, bool) {
	if task.Status == models.StatusCompleted || task.Status == models.StatusCancelled {
		return ReminderItem{}, false
	}
	if task.Due == nil {
		return ReminderItem{}, false
	}

	due := *task.Due
	item := ReminderItem{TaskID: task.ID, GeneratedAt: now}
	switch {
	case due.Before(now):
		item.Category = ReminderOverdue
	case sameDay(due, now):
		item.Category = ReminderDueToday
	case calendarDaysUntil(now, due) <= cfg.DueSoonDays:
		item.Category = ReminderDueSoon
	default:
		return ReminderItem{}, false
	}
	return item, true
}

// BreakReminders passes the assembler's break slots through as
// wellness_break items; break reminders carry no logic of their own.
func BreakReminders(slots []Slot, now time.Time) []ReminderItem {
	out := make([]ReminderItem, 0)
	for _, s := range slots {
		if s.IsBreak {
			out = append(out, ReminderItem{Category: ReminderWellnessBreak, GeneratedAt: now})
		}
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func calendarDaysUntil(now, due time.Time) int {
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, due.Location())
	return int(dueDay.Sub(nowDay) / (24 * time.Hour))
}
