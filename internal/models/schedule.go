package models

import (
	"time"

	"gorm.io/gorm"
)

// ScheduleEntry is the persisted form of an assembled schedule slot.
// Only the CLI surface writes these (plan --save); the engine itself
// never persists anything. Saved entries feed back into later planning
// runs as committed intervals.
type ScheduleEntry struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID  uint      `gorm:"not null;index" json:"user_id"`
	TaskID  uint      `gorm:"index" json:"task_id"` // zero for break entries
	StartAt time.Time `gorm:"not null" json:"start_at"`
	EndAt   time.Time `gorm:"not null" json:"end_at"`

	IsBreak    bool    `gorm:"default:false" json:"is_break"`
	Downgraded bool    `gorm:"default:false" json:"downgraded"`
	Method     string  `json:"method"`
	Confidence float64 `json:"confidence"`
}
