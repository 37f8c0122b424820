package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	ErrInvalidStatus   = errors.New("models: invalid task status")
	ErrInvalidCategory = errors.New("models: invalid task category")
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Category is the kind of work a task represents. The scheduling engine
// uses it to group historical durations.
type Category string

const (
	CategoryCoding        Category = "coding"
	CategoryDesign        Category = "design"
	CategoryPlanning      Category = "planning"
	CategoryTesting       Category = "testing"
	CategoryDocumentation Category = "documentation"
	CategoryMeeting       Category = "meeting"
	CategoryOther         Category = "other"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryCoding, CategoryDesign, CategoryPlanning, CategoryTesting,
		CategoryDocumentation, CategoryMeeting, CategoryOther:
		return true
	default:
		return false
	}
}

// Categories lists every valid category, for CLI help and seeding.
func Categories() []Category {
	return []Category{
		CategoryCoding, CategoryDesign, CategoryPlanning, CategoryTesting,
		CategoryDocumentation, CategoryMeeting, CategoryOther,
	}
}

// Task represents a todo item owned by a single user. The scheduling
// engine only ever reads tasks; all mutation happens in the db layer.
type Task struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID      uint     `gorm:"not null;index" json:"user_id"`
	Title       string   `gorm:"not null" json:"title"`
	Description string   `json:"description"`
	Category    Category `gorm:"default:other" json:"category"`
	Status      Status   `gorm:"default:pending" json:"status"`

	Due         *time.Time `json:"due"`
	CompletedAt *time.Time `json:"completed_at"`

	// EstimatedMinutes holds the last estimate shown to the user; the
	// productivity profile compares it against ActualMinutes.
	EstimatedMinutes *int `json:"estimated_minutes"`
	// ActualMinutes is the summed duration of finished time logs, set
	// when the task completes.
	ActualMinutes *int `json:"actual_minutes"`

	TimeLogs []TimeLog `gorm:"foreignKey:TaskID" json:"time_logs,omitempty"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("models: task title is required")
	}
	if t.UserID == 0 {
		return errors.New("models: task user_id is required")
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if !t.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, t.Category)
	}
	if t.Status == StatusCompleted && t.CompletedAt == nil {
		return errors.New("models: completed_at is required when status is completed")
	}
	return nil
}

// IsOpen reports whether the task still needs work.
func (t Task) IsOpen() bool {
	return t.Status == StatusPending || t.Status == StatusInProgress
}

// HasActualDuration reports whether the task finished with a recorded
// duration, i.e. it can serve as an estimation sample.
func (t Task) HasActualDuration() bool {
	return t.Status == StatusCompleted && t.ActualMinutes != nil && *t.ActualMinutes > 0
}
