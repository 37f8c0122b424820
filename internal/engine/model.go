package engine

import (
	"math"
	"sort"
	"time"

	"github.com/avoronova/ritmo/internal/models"
)

// featureCount covers: intercept, category mean, hour, weekday,
// title length, description length.
const featureCount = 6

// linearModel is a least-squares fit mapping a task feature vector to
// minutes. The category is target-encoded as the user's mean completed
// duration for that category, so the model degrades to "predict the
// category mean" when the numeric features carry no signal.
//
// Non-intercept features are centered on their training means and the
// normal equations carry a small relative ridge term. Together these
// keep the system solvable and the predictions sane when columns are
// constant or collinear (e.g. a single-category history): a feature
// with no training variance contributes nothing at prediction time
// instead of extrapolating wildly.
type linearModel struct {
	coef       [featureCount]float64
	means      [featureCount]float64
	catMeans   map[models.Category]float64
	globalMean float64
}

type trainingSample struct {
	features TaskFeatures
	minutes  float64
	when     time.Time
}

// samplesFromHistory extracts completed tasks with recorded durations,
// ordered chronologically by completion.
func samplesFromHistory(history []models.Task) []trainingSample {
	out := make([]trainingSample, 0, len(history))
	for _, t := range history {
		if !t.HasActualDuration() {
			continue
		}
		when := t.CreatedAt
		if t.CompletedAt != nil {
			when = *t.CompletedAt
		}
		out = append(out, trainingSample{
			features: FeaturesForTask(t, when),
			minutes:  float64(*t.ActualMinutes),
			when:     when,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].when.Before(out[j].when) })
	return out
}

func fitLinearModel(samples []trainingSample) *linearModel {
	m := &linearModel{catMeans: make(map[models.Category]float64)}

	catSums := make(map[models.Category]float64)
	catCounts := make(map[models.Category]int)
	var total float64
	for _, s := range samples {
		catSums[s.features.Category] += s.minutes
		catCounts[s.features.Category]++
		total += s.minutes
	}
	if len(samples) > 0 {
		m.globalMean = total / float64(len(samples))
	}
	for cat, sum := range catSums {
		m.catMeans[cat] = sum / float64(catCounts[cat])
	}

	rows := make([][featureCount]float64, len(samples))
	for i, s := range samples {
		rows[i] = m.rawVector(s.features)
		for j := 1; j < featureCount; j++ {
			m.means[j] += rows[i][j]
		}
	}
	if len(rows) > 0 {
		for j := 1; j < featureCount; j++ {
			m.means[j] /= float64(len(rows))
		}
	}

	// Normal equations on centered features: (XtX + lambda*I) coef = Xty.
	var xtx [featureCount][featureCount]float64
	var xty [featureCount]float64
	for i, s := range samples {
		x := centered(rows[i], m.means)
		for j := 0; j < featureCount; j++ {
			for k := 0; k < featureCount; k++ {
				xtx[j][k] += x[j] * x[k]
			}
			xty[j] += x[j] * s.minutes
		}
	}

	var trace float64
	for i := 0; i < featureCount; i++ {
		trace += xtx[i][i]
	}
	lambda := 1e-2 * (trace/featureCount + 1)
	for i := 0; i < featureCount; i++ {
		xtx[i][i] += lambda
	}

	m.coef = solve(xtx, xty)
	return m
}

func (m *linearModel) rawVector(f TaskFeatures) [featureCount]float64 {
	catMean := m.globalMean
	if v, ok := m.catMeans[f.Category]; ok {
		catMean = v
	}
	return [featureCount]float64{
		1,
		catMean,
		float64(f.Hour),
		float64(f.Weekday),
		float64(f.TitleLength),
		float64(f.DescriptionLength),
	}
}

func centered(x, means [featureCount]float64) [featureCount]float64 {
	for j := 1; j < featureCount; j++ {
		x[j] -= means[j]
	}
	return x
}

func (m *linearModel) predict(f TaskFeatures) float64 {
	x := centered(m.rawVector(f), m.means)
	var y float64
	for i := 0; i < featureCount; i++ {
		y += m.coef[i] * x[i]
	}
	return y
}

// holdoutConfidence measures prediction reliability: fit on the
// chronologically older samples, score on the newest quarter, and map
// the normalized RMSE into [0.05, 0.95] via 1 - min(1, rmse/mean).
// Monotonic in fit quality and bounded, per the estimator contract.
func holdoutConfidence(samples []trainingSample) float64 {
	n := len(samples)
	split := n - n/4
	if n-split < 2 {
		split = n - 2
	}
	if split < 2 {
		return 0.05
	}
	held := fitLinearModel(samples[:split])

	var se, sum float64
	val := samples[split:]
	for _, s := range val {
		d := held.predict(s.features) - s.minutes
		se += d * d
		sum += s.minutes
	}
	mean := sum / float64(len(val))
	if mean <= 0 {
		return 0.05
	}
	rmse := math.Sqrt(se / float64(len(val)))
	return clampFloat(1-math.Min(1, rmse/mean), 0.05, 0.95)
}

// solve runs Gaussian elimination with partial pivoting on the ridge
// system. The ridge term guarantees a usable pivot.
func solve(a [featureCount][featureCount]float64, b [featureCount]float64) [featureCount]float64 {
	for col := 0; col < featureCount; col++ {
		pivot := col
		for row := col + 1; row < featureCount; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		if a[col][col] == 0 {
			continue
		}
		for row := col + 1; row < featureCount; row++ {
			factor := a[row][col] / a[col][col]
			for k := col; k < featureCount; k++ {
				a[row][k] -= factor * a[col][k]
			}
			b[row] -= factor * b[col]
		}
	}

	var x [featureCount]float64
	for col := featureCount - 1; col >= 0; col-- {
		if a[col][col] == 0 {
			continue
		}
		sum := b[col]
		for k := col + 1; k < featureCount; k++ {
			sum -= a[col][k] * x[k]
		}
		x[col] = sum / a[col][col]
	}
	return x
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
