package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// TimeLog represents one tracked work session on a task. A log with a
// nil FinishedAt is still running; the db layer guarantees at most one
// open log per task.
type TimeLog struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	TaskID     uint       `gorm:"not null;index" json:"task_id"`
	UserID     uint       `gorm:"not null;index" json:"user_id"`
	StartedAt  time.Time  `gorm:"not null" json:"started_at"`
	FinishedAt *time.Time `json:"finished_at"`
	// DurationMinutes is derived as finished - started when the log stops.
	DurationMinutes int `json:"duration_minutes"`

	Task Task `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"task,omitempty"`
}

func (l TimeLog) Validate() error {
	if l.TaskID == 0 {
		return errors.New("models: time log task_id is required")
	}
	if l.StartedAt.IsZero() {
		return errors.New("models: time log started_at is required")
	}
	if l.FinishedAt != nil && l.FinishedAt.Before(l.StartedAt) {
		return errors.New("models: time log finished_at precedes started_at")
	}
	return nil
}

// IsFinished reports whether the session has ended.
func (l TimeLog) IsFinished() bool {
	return l.FinishedAt != nil
}
