package engine

import (
	"testing"
	"time"

	"github.com/avoronova/ritmo/internal/models"
)

func dueTask(id uint, status models.Status, due *time.Time) models.Task {
	t := models.Task{
		ID:       id,
		UserID:   1,
		Title:    "due task",
		Category: models.CategoryOther,
		Status:   status,
		Due:      due,
	}
	if status == models.StatusCompleted {
		done := testBase.Add(-time.Hour)
		t.CompletedAt = &done
	}
	return t
}

func TestClassifyReminder(t *testing.T) {
	now := testBase.Add(time.Hour) // Mon 10:00
	ptr := func(ts time.Time) *time.Time { return &ts }

	cases := []struct {
		name     string
		task     models.Task
		want     ReminderCategory
		wantItem bool
	}{
		{"overdue by days", dueTask(1, models.StatusPending, ptr(now.AddDate(0, 0, -5))), ReminderOverdue, true},
		{"overdue earlier today", dueTask(2, models.StatusPending, ptr(now.Add(-time.Hour))), ReminderOverdue, true},
		{"due later today", dueTask(3, models.StatusPending, ptr(now.Add(8 * time.Hour))), ReminderDueToday, true},
		{"due in two days", dueTask(4, models.StatusPending, ptr(now.AddDate(0, 0, 2))), ReminderDueSoon, true},
		{"due exactly at horizon", dueTask(5, models.StatusPending, ptr(now.AddDate(0, 0, 3))), ReminderDueSoon, true},
		{"due past horizon", dueTask(6, models.StatusPending, ptr(now.AddDate(0, 0, 4))), "", false},
		{"in progress overdue", dueTask(7, models.StatusInProgress, ptr(now.AddDate(0, 0, -1))), ReminderOverdue, true},
		{"completed never reminds", dueTask(8, models.StatusCompleted, ptr(now.AddDate(0, 0, -5))), "", false},
		{"cancelled never reminds", dueTask(9, models.StatusCancelled, ptr(now.AddDate(0, 0, -5))), "", false},
		{"no due date", dueTask(10, models.StatusPending, nil), "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item, ok := ClassifyReminder(tc.task, now, DefaultConfig())
			if ok != tc.wantItem {
				t.Fatalf("ok=%v, want %v", ok, tc.wantItem)
			}
			if !ok {
				return
			}
			if item.Category != tc.want {
				t.Errorf("category: got %s, want %s", item.Category, tc.want)
			}
			if item.TaskID != tc.task.ID {
				t.Errorf("task id: got %d, want %d", item.TaskID, tc.task.ID)
			}
			if !item.GeneratedAt.Equal(now) {
				t.Errorf("generated at: got %s, want %s", item.GeneratedAt, now)
			}
		})
	}
}

func TestClassifyReminderIdempotent(t *testing.T) {
	now := testBase
	due := now.AddDate(0, 0, -2)
	task := dueTask(1, models.StatusPending, &due)

	first, ok1 := ClassifyReminder(task, now, DefaultConfig())
	second, ok2 := ClassifyReminder(task, now, DefaultConfig())
	if !ok1 || !ok2 || first != second {
		t.Errorf("classification is not idempotent: %+v vs %+v", first, second)
	}
}

func TestBreakReminders(t *testing.T) {
	now := testBase
	slots := []Slot{
		{Start: now, End: now.Add(time.Hour), TaskID: 1},
		{Start: now.Add(time.Hour), End: now.Add(75 * time.Minute), IsBreak: true},
		{Start: now.Add(75 * time.Minute), End: now.Add(135 * time.Minute), TaskID: 2},
		{Start: now.Add(135 * time.Minute), End: now.Add(150 * time.Minute), IsBreak: true},
	}

	items := BreakReminders(slots, now)
	if len(items) != 2 {
		t.Fatalf("expected 2 wellness reminders, got %d", len(items))
	}
	for i, item := range items {
		if item.Category != ReminderWellnessBreak {
			t.Errorf("item %d: got category %s, want %s", i, item.Category, ReminderWellnessBreak)
		}
	}

	if got := BreakReminders(nil, now); len(got) != 0 {
		t.Errorf("no slots should give no reminders, got %v", got)
	}
}
