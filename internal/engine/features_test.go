package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/avoronova/ritmo/internal/models"
)

func TestFeaturesForTask(t *testing.T) {
	task := models.Task{
		Title:       "write the report",
		Description: "quarterly numbers",
		Category:    models.CategoryDocumentation,
	}
	start := time.Date(2026, 3, 4, 14, 30, 0, 0, time.UTC) // a Wednesday

	f := FeaturesForTask(task, start)
	if f.Category != models.CategoryDocumentation {
		t.Errorf("category: got %s", f.Category)
	}
	if f.Weekday != time.Wednesday {
		t.Errorf("weekday: got %s, want Wednesday", f.Weekday)
	}
	if f.Hour != 14 {
		t.Errorf("hour: got %d, want 14", f.Hour)
	}
	if f.TitleLength != len(task.Title) || f.DescriptionLength != len(task.Description) {
		t.Errorf("lengths: got %d/%d", f.TitleLength, f.DescriptionLength)
	}
	if err := f.Validate(); err != nil {
		t.Errorf("derived features must validate, got %v", err)
	}
}

func TestTaskFeaturesValidate(t *testing.T) {
	valid := TaskFeatures{Category: models.CategoryCoding, Weekday: time.Friday, Hour: 9, TitleLength: 5}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid features rejected: %v", err)
	}

	cases := []TaskFeatures{
		{Category: "chores", Hour: 9},
		{Category: models.CategoryCoding, Hour: -1},
		{Category: models.CategoryCoding, Hour: 24},
		{Category: models.CategoryCoding, Hour: 9, Weekday: 7},
		{Category: models.CategoryCoding, Hour: 9, DescriptionLength: -3},
	}
	for i, f := range cases {
		if err := f.Validate(); !errors.Is(err, ErrInvalidFeature) {
			t.Errorf("case %d: expected ErrInvalidFeature, got %v", i, err)
		}
	}
}
