// Package render turns engine output into styled terminal text. It is
// a display surface only: nothing here feeds back into the engine.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/avoronova/ritmo/internal/engine"
	"github.com/avoronova/ritmo/internal/models"
)

// Timeline renders an assembled schedule as one line per slot.
func Timeline(slots []engine.Slot, tasks map[uint]models.Task) string {
	if len(slots) == 0 {
		return labelStyle.Render("Nothing to schedule.") + "\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("PLANNED TIMELINE") + "\n")

	currentDay := ""
	for _, s := range slots {
		day := s.Start.Format("Mon 02 Jan")
		if day != currentDay {
			currentDay = day
			b.WriteString(labelStyle.Render(day) + "\n")
		}

		span := fmt.Sprintf("  %s - %s", s.Start.Format("15:04"), s.End.Format("15:04"))
		if s.IsBreak {
			b.WriteString(breakStyle.Render(span+"  break") + "\n")
			continue
		}

		title := fmt.Sprintf("task #%d", s.TaskID)
		if t, ok := tasks[s.TaskID]; ok {
			title = t.Title
		}
		line := fmt.Sprintf("%s  %s %s", span, valueStyle.Render(title),
			labelStyle.Render(fmt.Sprintf("(%s, conf %.2f)", s.Estimate.Method, s.Estimate.Confidence)))
		if s.Downgraded {
			line += " " + warnStyle.Render("[off-peak]")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// EstimateSummary renders one estimate for a task.
func EstimateSummary(task models.Task, est engine.Estimate) string {
	confStyle := warnStyle
	if est.Confidence >= 0.6 {
		confStyle = successStyle
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Estimate for #%d: %s\n", task.ID, valueStyle.Render(task.Title)))
	b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("duration:"),
		valueStyle.Render(formatMinutes(est.Minutes))))
	b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("confidence:"),
		confStyle.Render(fmt.Sprintf("%.2f", est.Confidence))))
	b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("method:"), string(est.Method)))
	return b.String()
}

// Insights renders a productivity profile.
func Insights(p engine.Profile) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("PRODUCTIVITY INSIGHTS") + "\n")

	best := p.BestHours(3)
	if len(best) == 0 {
		b.WriteString(labelStyle.Render("No tracked sessions yet. Start logging time to build a profile.") + "\n")
	} else {
		hours := make([]string, 0, len(best))
		for _, h := range best {
			hours = append(hours, fmt.Sprintf("%02d:00", h))
		}
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("best hours:"),
			highlightStyle.Render(strings.Join(hours, ", "))))
	}

	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("completion rate:"),
		valueStyle.Render(fmt.Sprintf("%.0f%%", p.CompletionRate*100))))
	if p.AvgSessionMinutes > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("avg session:"),
			valueStyle.Render(formatMinutes(int(p.AvgSessionMinutes)))))
	}

	b.WriteString(labelStyle.Render("hour map:") + "\n  ")
	for h := 0; h < 24; h++ {
		b.WriteString(hourCell(p.Hours[h]))
	}
	b.WriteString("\n  " + labelStyle.Render("00          12          23") + "\n")
	return b.String()
}

// hourCell maps a bucket score onto a one-character heat cell.
func hourCell(b engine.BucketScore) string {
	if !b.Known {
		return breakStyle.Render("·")
	}
	switch {
	case b.Score >= 0.7:
		return highlightStyle.Render("█")
	case b.Score >= 0.4:
		return successStyle.Render("▓")
	default:
		return warnStyle.Render("░")
	}
}

// Reminders renders classification results grouped under their task.
func Reminders(items []engine.ReminderItem, tasks map[uint]models.Task) string {
	if len(items) == 0 {
		return successStyle.Render("Nothing due. You're clear.") + "\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("REMINDERS") + "\n")
	for _, item := range items {
		switch item.Category {
		case engine.ReminderOverdue:
			b.WriteString("  " + errorStyle.Render("overdue  ") + taskLabel(item.TaskID, tasks) + "\n")
		case engine.ReminderDueToday:
			b.WriteString("  " + warnStyle.Render("today    ") + taskLabel(item.TaskID, tasks) + "\n")
		case engine.ReminderDueSoon:
			b.WriteString("  " + valueStyle.Render("soon     ") + taskLabel(item.TaskID, tasks) + "\n")
		case engine.ReminderWellnessBreak:
			b.WriteString("  " + breakStyle.Render("break    scheduled rest period") + "\n")
		}
	}
	return b.String()
}

func taskLabel(taskID uint, tasks map[uint]models.Task) string {
	if t, ok := tasks[taskID]; ok {
		due := ""
		if t.Due != nil {
			due = labelStyle.Render(" (due " + t.Due.Format("02/01 15:04") + ")")
		}
		return valueStyle.Render(t.Title) + due
	}
	return valueStyle.Render(fmt.Sprintf("task #%d", taskID))
}

func formatMinutes(m int) string {
	d := time.Duration(m) * time.Minute
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	}
	return fmt.Sprintf("%dm", m)
}
