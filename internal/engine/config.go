package engine

import "github.com/avoronova/ritmo/internal/models"

// Config holds the engine tunables. Zero values are not usable; start
// from DefaultConfig and override.
type Config struct {
	// Estimation.
	MinModelSamples    int     // completed tasks required before fitting a model
	RetrainAfter       int     // refit a cached model after this many new completions
	MinEstimateMinutes int     // floor for any estimate
	MaxEstimateMinutes int     // cap for model predictions
	CategoryConfidence float64 // fixed confidence for category_average
	UserConfidence     float64 // fixed confidence for user_average
	DefaultConfidence  float64 // fixed confidence for default

	// Profile.
	StalenessDays int // in-progress tasks older than this count against completion rate

	// Assembly.
	MinScore       float64 // minimum acceptable hour-bucket productivity score
	LookaheadDays  int     // forward search bound for slot placement
	BurnoutMinutes int     // contiguous work allowed before a break
	BreakMinutes   int     // length of an inserted break
	DayStartHour   int     // inclusive start of the working window
	DayEndHour     int     // exclusive end of the working window
	ImpliedDueDays int     // implied due horizon for tasks without a due date

	// Reminders.
	DueSoonDays int // due_soon horizon in calendar days
}

// DefaultConfig returns the stock tunables.
func DefaultConfig() Config {
	return Config{
		MinModelSamples:    10,
		RetrainAfter:       5,
		MinEstimateMinutes: 5,
		MaxEstimateMinutes: 480,
		CategoryConfidence: 0.5,
		UserConfidence:     0.35,
		DefaultConfidence:  0.2,
		StalenessDays:      14,
		MinScore:           0.4,
		LookaheadDays:      14,
		BurnoutMinutes:     90,
		BreakMinutes:       15,
		DayStartHour:       8,
		DayEndHour:         20,
		ImpliedDueDays:     7,
		DueSoonDays:        3,
	}
}

// defaultDurations are the fallback estimates per category, in minutes,
// used when a user has no completed history at all.
var defaultDurations = map[models.Category]int{
	models.CategoryCoding:        120,
	models.CategoryDesign:        90,
	models.CategoryPlanning:      60,
	models.CategoryTesting:       45,
	models.CategoryDocumentation: 60,
	models.CategoryMeeting:       30,
	models.CategoryOther:         60,
}

// DefaultMinutesFor returns the fixed default estimate for a category.
func (c Config) DefaultMinutesFor(cat models.Category) int {
	if d, ok := defaultDurations[cat]; ok {
		return d
	}
	return 30
}
