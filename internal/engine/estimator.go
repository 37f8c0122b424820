package engine

import (
	"fmt"
	"math"

	"github.com/avoronova/ritmo/internal/models"
)

// EstimateMethod tags how an estimate was produced.
type EstimateMethod string

const (
	MethodModel           EstimateMethod = "model"
	MethodCategoryAverage EstimateMethod = "category_average"
	MethodUserAverage     EstimateMethod = "user_average"
	MethodDefault         EstimateMethod = "default"
)

// Estimate is the estimator's output: a point estimate in minutes, a
// confidence in (0, 1], the method that produced it, and the features
// it was produced from (kept for explainability only).
type Estimate struct {
	Minutes    int
	Confidence float64
	Method     EstimateMethod
	Features   TaskFeatures
}

// Estimator turns a user's task history plus a new task's features into
// a duration estimate. It is a pure function over the snapshot it is
// given; the optional cache only skips model refits.
type Estimator struct {
	cfg   Config
	cache *ModelCache
}

func NewEstimator(cfg Config, cache *ModelCache) *Estimator {
	return &Estimator{cfg: cfg, cache: cache}
}

// Estimate applies the tiered contract: model when history is deep
// enough, then category average, then user average, then the fixed
// default. It always returns some estimate; the only error is invalid
// features.
func (e *Estimator) Estimate(userID uint, history []models.Task, f TaskFeatures) (Estimate, error) {
	if err := f.Validate(); err != nil {
		return Estimate{}, err
	}

	samples := samplesFromHistory(historyForUser(history, userID))
	if len(samples) >= e.cfg.MinModelSamples {
		return e.modelEstimate(userID, samples, f), nil
	}
	if est, ok := e.categoryAverage(samples, f); ok {
		return est, nil
	}
	if est, ok := e.userAverage(samples, f); ok {
		return est, nil
	}
	return Estimate{
		Minutes:    e.cfg.DefaultMinutesFor(f.Category),
		Confidence: e.cfg.DefaultConfidence,
		Method:     MethodDefault,
		Features:   f,
	}, nil
}

// EstimateModelOnly refuses to degrade: it fails with
// ErrInsufficientData below the model sample threshold.
func (e *Estimator) EstimateModelOnly(userID uint, history []models.Task, f TaskFeatures) (Estimate, error) {
	if err := f.Validate(); err != nil {
		return Estimate{}, err
	}
	samples := samplesFromHistory(historyForUser(history, userID))
	if len(samples) < e.cfg.MinModelSamples {
		return Estimate{}, fmt.Errorf("%w: have %d completed tasks, need %d",
			ErrInsufficientData, len(samples), e.cfg.MinModelSamples)
	}
	return e.modelEstimate(userID, samples, f), nil
}

func (e *Estimator) modelEstimate(userID uint, samples []trainingSample, f TaskFeatures) Estimate {
	entry, ok := e.cache.lookup(userID, len(samples), e.cfg.RetrainAfter)
	if !ok {
		entry = cachedModel{
			model:      fitLinearModel(samples),
			confidence: holdoutConfidence(samples),
			trainedOn:  len(samples),
		}
		e.cache.store(userID, entry)
	}

	minutes := entry.model.predict(f)
	minutes = clampFloat(minutes, float64(e.cfg.MinEstimateMinutes), float64(e.cfg.MaxEstimateMinutes))
	return Estimate{
		Minutes:    int(math.Round(minutes)),
		Confidence: entry.confidence,
		Method:     MethodModel,
		Features:   f,
	}
}

func (e *Estimator) categoryAverage(samples []trainingSample, f TaskFeatures) (Estimate, bool) {
	var sum float64
	var n int
	for _, s := range samples {
		if s.features.Category == f.Category {
			sum += s.minutes
			n++
		}
	}
	if n == 0 {
		return Estimate{}, false
	}
	return Estimate{
		Minutes:    e.roundMinutes(sum / float64(n)),
		Confidence: e.cfg.CategoryConfidence,
		Method:     MethodCategoryAverage,
		Features:   f,
	}, true
}

func (e *Estimator) userAverage(samples []trainingSample, f TaskFeatures) (Estimate, bool) {
	if len(samples) == 0 {
		return Estimate{}, false
	}
	var sum float64
	for _, s := range samples {
		sum += s.minutes
	}
	return Estimate{
		Minutes:    e.roundMinutes(sum / float64(len(samples))),
		Confidence: e.cfg.UserConfidence,
		Method:     MethodUserAverage,
		Features:   f,
	}, true
}

func (e *Estimator) roundMinutes(v float64) int {
	if v < float64(e.cfg.MinEstimateMinutes) {
		v = float64(e.cfg.MinEstimateMinutes)
	}
	return int(math.Round(v))
}

// historyForUser keeps only the given user's rows. Snapshots handed in
// by callers may contain more than one user; scores and estimates are
// never comparable across users.
func historyForUser(history []models.Task, userID uint) []models.Task {
	out := make([]models.Task, 0, len(history))
	for _, t := range history {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out
}
