package engine

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/avoronova/ritmo/internal/models"
)

// TestAssembleProperties checks the schedule invariants over random
// batches: slots come out in chronological order without overlap, never
// collide with committed intervals, and contiguous work stays under the
// burnout threshold.
func TestAssembleProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := DefaultConfig()
		a := NewAssembler(cfg, NewEstimator(cfg, nil))
		now := testBase

		// One completed task per category pins each category average
		// below the burnout threshold.
		cats := []models.Category{
			models.CategoryPlanning, models.CategoryTesting, models.CategoryMeeting,
		}
		history := make([]models.Task, 0, len(cats))
		for i, cat := range cats {
			minutes := rapid.IntRange(20, 45).Draw(rt, "histMinutes")
			history = append(history,
				completedTask(uint(100+i), 1, cat, minutes, now.AddDate(0, 0, -i-1)))
		}

		nTasks := rapid.IntRange(0, 6).Draw(rt, "nTasks")
		pending := make([]models.Task, 0, nTasks)
		for i := 0; i < nTasks; i++ {
			cat := rapid.SampledFrom(cats).Draw(rt, "category")
			var due *time.Time
			if rapid.Bool().Draw(rt, "hasDue") {
				d := now.AddDate(0, 0, rapid.IntRange(1, 5).Draw(rt, "dueDays")).Add(9 * time.Hour)
				due = &d
			}
			pending = append(pending, pendingTask(uint(i+1), cat, due))
		}

		nCommitted := rapid.IntRange(0, 2).Draw(rt, "nCommitted")
		committed := make([]Interval, 0, nCommitted)
		for i := 0; i < nCommitted; i++ {
			offset := time.Duration(rapid.IntRange(0, 24*4).Draw(rt, "offsetQuarters")) * cursorStep
			length := time.Duration(rapid.IntRange(2, 4).Draw(rt, "lengthQuarters")) * cursorStep
			committed = append(committed, Interval{Start: now.Add(offset), End: now.Add(offset + length)})
		}

		slots, err := a.Assemble(1, pending, history, Profile{}, committed, now)
		if err != nil {
			rt.Fatalf("assemble failed: %v", err)
		}

		nTaskSlots := 0
		seen := make(map[uint]bool)
		contiguous := 0
		var prevEnd time.Time
		breakGap := time.Duration(cfg.BreakMinutes) * time.Minute

		for i, s := range slots {
			if !s.End.After(s.Start) {
				rt.Fatalf("slot %d is empty or inverted: %s to %s", i, s.Start, s.End)
			}
			if s.Start.Before(now) {
				rt.Fatalf("slot %d starts before now", i)
			}
			if i > 0 && slots[i-1].End.After(s.Start) {
				rt.Fatalf("slot %d overlaps its predecessor", i)
			}
			for _, c := range committed {
				if (Interval{Start: s.Start, End: s.End}).Overlaps(c) {
					rt.Fatalf("slot %d collides with committed interval %s-%s", i, c.Start, c.End)
				}
			}

			if !prevEnd.IsZero() && s.Start.Sub(prevEnd) >= breakGap {
				contiguous = 0
			}
			prevEnd = s.End

			if s.IsBreak {
				contiguous = 0
				if s.TaskID != 0 {
					rt.Fatalf("break slot %d carries task %d", i, s.TaskID)
				}
				if s.End.Sub(s.Start) != breakGap {
					rt.Fatalf("break slot %d lasts %s, want %s", i, s.End.Sub(s.Start), breakGap)
				}
				continue
			}

			nTaskSlots++
			if seen[s.TaskID] {
				rt.Fatalf("task %d scheduled twice", s.TaskID)
			}
			seen[s.TaskID] = true

			minutes := int(s.End.Sub(s.Start) / time.Minute)
			if minutes != s.Estimate.Minutes {
				rt.Fatalf("slot %d spans %d minutes but its estimate says %d", i, minutes, s.Estimate.Minutes)
			}
			contiguous += minutes
			if contiguous > cfg.BurnoutMinutes {
				rt.Fatalf("contiguous work reached %d minutes at slot %d, threshold is %d",
					contiguous, i, cfg.BurnoutMinutes)
			}
		}

		if nTaskSlots != len(pending) {
			rt.Fatalf("scheduled %d of %d tasks", nTaskSlots, len(pending))
		}
	})
}

// TestAssembleDueOrderProperty checks strict urgency ordering: task
// slots appear ordered by effective due date, confidence breaking ties.
func TestAssembleDueOrderProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := DefaultConfig()
		a := NewAssembler(cfg, NewEstimator(cfg, nil))
		now := testBase

		history := planningHistory(30)
		nTasks := rapid.IntRange(1, 5).Draw(rt, "nTasks")
		pending := make([]models.Task, 0, nTasks)
		dueByID := make(map[uint]time.Time, nTasks)
		for i := 0; i < nTasks; i++ {
			id := uint(i + 1)
			effective := now.AddDate(0, 0, cfg.ImpliedDueDays)
			var due *time.Time
			if rapid.Bool().Draw(rt, "hasDue") {
				d := now.AddDate(0, 0, rapid.IntRange(1, 10).Draw(rt, "dueDays"))
				due = &d
				effective = d
			}
			pending = append(pending, pendingTask(id, models.CategoryPlanning, due))
			dueByID[id] = effective
		}

		slots, err := a.Assemble(1, pending, history, Profile{}, nil, now)
		if err != nil {
			rt.Fatalf("assemble failed: %v", err)
		}

		var prev time.Time
		first := true
		for _, s := range slots {
			if s.IsBreak {
				continue
			}
			due := dueByID[s.TaskID]
			if !first && due.Before(prev) {
				rt.Fatalf("task %d (due %s) placed after a later-due task (due %s)",
					s.TaskID, due.Format("2006-01-02"), prev.Format("2006-01-02"))
			}
			prev = due
			first = false
		}
	})
}
