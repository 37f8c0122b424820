package engine

import (
	"fmt"
	"time"

	"github.com/avoronova/ritmo/internal/models"
)

// TaskFeatures is the input to duration estimation: the task's category
// plus when the work is intended to start and how wordy the task is.
// Title and description feed in only as lengths.
type TaskFeatures struct {
	Category          models.Category
	Weekday           time.Weekday
	Hour              int // hour-of-day of the intended start, 0-23
	TitleLength       int
	DescriptionLength int
}

func (f TaskFeatures) Validate() error {
	if !f.Category.IsValid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidFeature, f.Category)
	}
	if f.Hour < 0 || f.Hour > 23 {
		return fmt.Errorf("%w: hour %d out of range", ErrInvalidFeature, f.Hour)
	}
	if f.Weekday < time.Sunday || f.Weekday > time.Saturday {
		return fmt.Errorf("%w: weekday %d out of range", ErrInvalidFeature, f.Weekday)
	}
	if f.TitleLength < 0 || f.DescriptionLength < 0 {
		return fmt.Errorf("%w: negative text length", ErrInvalidFeature)
	}
	return nil
}

// FeaturesForTask derives estimation features from a stored task and an
// intended start time.
func FeaturesForTask(t models.Task, start time.Time) TaskFeatures {
	return TaskFeatures{
		Category:          t.Category,
		Weekday:           start.Weekday(),
		Hour:              start.Hour(),
		TitleLength:       len(t.Title),
		DescriptionLength: len(t.Description),
	}
}
