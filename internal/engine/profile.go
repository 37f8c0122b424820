package engine

import (
	"time"

	"github.com/avoronova/ritmo/internal/models"
)

// BucketScore is a productivity score for one hour-of-day or weekday
// bucket. Known distinguishes "no observations" from a genuinely low
// score, so slot selection never penalizes unexplored hours.
type BucketScore struct {
	Score float64
	Known bool
}

// Profile is a derived, read-only summary of a user's time logs. It is
// recomputed fresh on every Build call and never persisted; scores are
// comparable only within the same user.
type Profile struct {
	UserID            uint
	Hours             [24]BucketScore
	Weekdays          [7]BucketScore
	CompletionRate    float64
	AvgSessionMinutes float64
}

type bucketAccum struct {
	ratioSum float64
	ratioN   int
	count    int
}

// BuildProfile aggregates a user's completed time logs into per-hour
// and per-weekday productivity scores.
//
// The contribution of a session is the inverse-normalized ratio of the
// task's estimated to actual duration, clamp(est/actual, 0, 2)/2, when
// both numbers exist: beating the estimate scores above 0.5, blowing
// through it scores below. Buckets whose sessions carry no estimates
// fall back to completed-session density relative to the busiest
// bucket. Buckets with no sessions at all stay unknown.
func BuildProfile(userID uint, tasks []models.Task, logs []models.TimeLog, now time.Time, cfg Config) Profile {
	p := Profile{UserID: userID}

	taskByID := make(map[uint]models.Task, len(tasks))
	for _, t := range tasks {
		if t.UserID == userID {
			taskByID[t.ID] = t
		}
	}

	var hours [24]bucketAccum
	var days [7]bucketAccum
	var sessionSum float64
	var sessionN int

	for _, l := range logs {
		if l.UserID != userID || !l.IsFinished() || l.DurationMinutes <= 0 {
			continue
		}
		sessionSum += float64(l.DurationMinutes)
		sessionN++

		h := l.StartedAt.Hour()
		d := int(l.StartedAt.Weekday())
		hours[h].count++
		days[d].count++

		t, ok := taskByID[l.TaskID]
		if !ok || t.EstimatedMinutes == nil || t.ActualMinutes == nil || *t.ActualMinutes <= 0 {
			continue
		}
		ratio := float64(*t.EstimatedMinutes) / float64(*t.ActualMinutes)
		contribution := clampFloat(ratio, 0, 2) / 2
		hours[h].ratioSum += contribution
		hours[h].ratioN++
		days[d].ratioSum += contribution
		days[d].ratioN++
	}

	maxHourCount, maxDayCount := 0, 0
	for i := range hours {
		if hours[i].count > maxHourCount {
			maxHourCount = hours[i].count
		}
	}
	for i := range days {
		if days[i].count > maxDayCount {
			maxDayCount = days[i].count
		}
	}
	for i := range hours {
		p.Hours[i] = scoreBucket(hours[i], maxHourCount)
	}
	for i := range days {
		p.Weekdays[i] = scoreBucket(days[i], maxDayCount)
	}

	if sessionN > 0 {
		p.AvgSessionMinutes = sessionSum / float64(sessionN)
	}
	p.CompletionRate = completionRate(taskByID, now, cfg)
	return p
}

func scoreBucket(b bucketAccum, maxCount int) BucketScore {
	if b.ratioN > 0 {
		return BucketScore{Score: b.ratioSum / float64(b.ratioN), Known: true}
	}
	if b.count > 0 && maxCount > 0 {
		return BucketScore{Score: float64(b.count) / float64(maxCount), Known: true}
	}
	return BucketScore{}
}

// completionRate = completed / (completed + cancelled + in-progress
// tasks older than the staleness horizon).
func completionRate(tasks map[uint]models.Task, now time.Time, cfg Config) float64 {
	staleBefore := now.AddDate(0, 0, -cfg.StalenessDays)
	completed, denominator := 0, 0
	for _, t := range tasks {
		switch t.Status {
		case models.StatusCompleted:
			completed++
			denominator++
		case models.StatusCancelled:
			denominator++
		case models.StatusInProgress:
			if t.CreatedAt.Before(staleBefore) {
				denominator++
			}
		}
	}
	if denominator == 0 {
		return 0
	}
	return float64(completed) / float64(denominator)
}

// BestHours returns up to n known hours sorted by score, highest first.
// Used by the insights surface, not by slot placement.
func (p Profile) BestHours(n int) []int {
	type scored struct {
		hour  int
		score float64
	}
	known := make([]scored, 0, 24)
	for h, b := range p.Hours {
		if b.Known {
			known = append(known, scored{hour: h, score: b.Score})
		}
	}
	for i := 1; i < len(known); i++ {
		for j := i; j > 0 && known[j].score > known[j-1].score; j-- {
			known[j], known[j-1] = known[j-1], known[j]
		}
	}
	if n > len(known) {
		n = len(known)
	}
	out := make([]int, 0, n)
	for _, s := range known[:n] {
		out = append(out, s.hour)
	}
	return out
}
