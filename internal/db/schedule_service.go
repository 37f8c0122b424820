package db

import (
	"time"

	"gorm.io/gorm"

	"github.com/avoronova/ritmo/internal/engine"
	"github.com/avoronova/ritmo/internal/models"
)

// ReplaceSchedule swaps the user's stored schedule for a freshly
// assembled one. Persisting slots is a choice of this surface; the
// engine itself never stores anything.
func ReplaceSchedule(userID uint, slots []engine.Slot) ([]models.ScheduleEntry, error) {
	entries := make([]models.ScheduleEntry, 0, len(slots))
	for _, s := range slots {
		entries = append(entries, models.ScheduleEntry{
			UserID:     userID,
			TaskID:     s.TaskID,
			StartAt:    s.Start,
			EndAt:      s.End,
			IsBreak:    s.IsBreak,
			Downgraded: s.Downgraded,
			Method:     string(s.Estimate.Method),
			Confidence: s.Estimate.Confidence,
		})
	}

	err := DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.ScheduleEntry{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// GetScheduleEntries returns the user's stored schedule, ordered by
// start time
func GetScheduleEntries(userID uint) ([]models.ScheduleEntry, error) {
	var entries []models.ScheduleEntry

	err := DB.Where("user_id = ?", userID).Order("start_at ASC").Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// CommittedIntervals returns the spans the user is already booked for
// after the given time: saved schedule entries plus the running time
// log. The planner treats these as immovable.
func CommittedIntervals(userID uint, from time.Time) ([]engine.Interval, error) {
	entries, err := GetScheduleEntries(userID)
	if err != nil {
		return nil, err
	}

	intervals := make([]engine.Interval, 0, len(entries)+1)
	for _, e := range entries {
		if e.EndAt.After(from) {
			intervals = append(intervals, engine.Interval{Start: e.StartAt, End: e.EndAt})
		}
	}

	active, err := GetActiveLog(userID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		// Assume the running session lasts until the top of the next hour.
		end := from.Truncate(time.Hour).Add(time.Hour)
		if end.After(active.StartedAt) {
			intervals = append(intervals, engine.Interval{Start: active.StartedAt, End: end})
		}
	}

	return intervals, nil
}
