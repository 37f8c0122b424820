package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/avoronova/ritmo/internal/models"
)

// cursorStep is the granularity of the forward window search.
const cursorStep = 15 * time.Minute

// Interval is a half-open committed time span [Start, End) the
// assembler must not collide with.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Slot is one assigned span in an assembled schedule: either a task
// slot carrying its estimate, or an inserted break. Downgraded marks a
// task that could not be placed in an acceptable productivity window;
// its confidence is halved so callers can see the weaker placement.
type Slot struct {
	Start      time.Time
	End        time.Time
	TaskID     uint
	Estimate   Estimate
	IsBreak    bool
	Downgraded bool
}

// Assembler builds a conflict-free, break-aware timeline for a batch of
// pending tasks. It is a greedy single-pass placer, not an optimal
// scheduler.
type Assembler struct {
	cfg       Config
	estimator *Estimator
}

func NewAssembler(cfg Config, estimator *Estimator) *Assembler {
	return &Assembler{cfg: cfg, estimator: estimator}
}

type plannedTask struct {
	task models.Task
	est  Estimate
	due  time.Time
}

// Assemble estimates every pending task, orders the batch by due-date
// urgency (ties broken by descending confidence, then input order), and
// places each task in the earliest acceptable window after now. Breaks
// are inserted so contiguous work never exceeds the burnout threshold;
// the burnout counter resets at the start of each call and whenever a
// placement leaves a rest-sized gap.
//
// An empty batch yields an empty schedule. ErrUnschedulable is returned
// only when even a naive next-free-window search finds no room for a
// task inside the look-ahead bound.
func (a *Assembler) Assemble(userID uint, pending, history []models.Task, profile Profile, committed []Interval, now time.Time) ([]Slot, error) {
	slots := make([]Slot, 0, len(pending)*2)
	if len(pending) == 0 {
		return slots, nil
	}

	planned := make([]plannedTask, 0, len(pending))
	for _, t := range pending {
		est, err := a.estimator.Estimate(userID, history, FeaturesForTask(t, now))
		if err != nil {
			return nil, err
		}
		due := now.AddDate(0, 0, a.cfg.ImpliedDueDays)
		if t.Due != nil {
			due = *t.Due
		}
		planned = append(planned, plannedTask{task: t, est: est, due: due})
	}
	sort.SliceStable(planned, func(i, j int) bool {
		if !planned[i].due.Equal(planned[j].due) {
			return planned[i].due.Before(planned[j].due)
		}
		return planned[i].est.Confidence > planned[j].est.Confidence
	})

	cursor := alignUp(now)
	horizon := now.AddDate(0, 0, a.cfg.LookaheadDays)
	occupied := make([]Interval, len(committed))
	copy(occupied, committed)

	workSince := 0
	breakGap := time.Duration(a.cfg.BreakMinutes) * time.Minute

	for _, pt := range planned {
		dur := time.Duration(pt.est.Minutes) * time.Minute

		// A break goes in before the task that would cross the burnout
		// threshold, keeping every contiguous block under it.
		if workSince > 0 && workSince+pt.est.Minutes > a.cfg.BurnoutMinutes {
			br := Interval{Start: cursor, End: cursor.Add(breakGap)}
			if !overlapsAny(br, occupied) {
				slots = append(slots, Slot{Start: br.Start, End: br.End, IsBreak: true})
				occupied = append(occupied, br)
				cursor = br.End
			}
			// If the break spot is already taken, the committed block
			// itself serves as the rest: the search below jumps past it.
			workSince = 0
		}

		start, downgraded, ok := a.findWindow(cursor, dur, profile, occupied, horizon)
		if !ok {
			return nil, fmt.Errorf("%w: task #%d needs %d minutes before %s",
				ErrUnschedulable, pt.task.ID, pt.est.Minutes, horizon.Format("2006-01-02"))
		}
		if start.Sub(cursor) >= breakGap {
			workSince = 0
		}

		slot := Slot{Start: start, End: start.Add(dur), TaskID: pt.task.ID, Estimate: pt.est}
		if downgraded {
			slot.Downgraded = true
			slot.Estimate.Confidence /= 2
		}
		slots = append(slots, slot)
		occupied = append(occupied, Interval{Start: slot.Start, End: slot.End})
		cursor = slot.End
		workSince += pt.est.Minutes
	}

	return slots, nil
}

// findWindow searches forward from the cursor in three passes: first
// hour buckets rated at or above the minimum score, then unknown
// buckets too, and finally any free window at all (the downgraded
// case). The first two passes stay inside working hours.
func (a *Assembler) findWindow(from time.Time, dur time.Duration, profile Profile, occupied []Interval, horizon time.Time) (time.Time, bool, bool) {
	for pass := 0; pass < 3; pass++ {
		for t := from; t.Before(horizon); t = t.Add(cursorStep) {
			if pass < 2 {
				h := t.Hour()
				if h < a.cfg.DayStartHour || h >= a.cfg.DayEndHour {
					continue
				}
				bucket := profile.Hours[h]
				if pass == 0 && !(bucket.Known && bucket.Score >= a.cfg.MinScore) {
					continue
				}
				if pass == 1 && bucket.Known && bucket.Score < a.cfg.MinScore {
					continue
				}
			}
			candidate := Interval{Start: t, End: t.Add(dur)}
			if overlapsAny(candidate, occupied) {
				continue
			}
			return t, pass == 2, true
		}
	}
	return time.Time{}, false, false
}

func overlapsAny(iv Interval, occupied []Interval) bool {
	for _, o := range occupied {
		if iv.Overlaps(o) {
			return true
		}
	}
	return false
}

// alignUp rounds a time up to the next search-step boundary.
func alignUp(t time.Time) time.Time {
	aligned := t.Truncate(cursorStep)
	if aligned.Before(t) {
		aligned = aligned.Add(cursorStep)
	}
	return aligned
}
