package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avoronova/ritmo/internal/db"
	"github.com/avoronova/ritmo/internal/engine"
	"github.com/avoronova/ritmo/internal/models"
	"github.com/avoronova/ritmo/internal/render"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Show what needs attention",
	Long: `Classify every open task against its due date: overdue, due today, or
due soon. Breaks from your saved schedule show up as wellness reminders.`,
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		uid := userID(cmd)
		now := time.Now()

		tasks, err := db.GetHistory(uid)
		if err != nil {
			fmt.Printf("Error fetching tasks: %v\n", err)
			return
		}

		items := make([]engine.ReminderItem, 0)
		taskIndex := make(map[uint]models.Task, len(tasks))
		for _, t := range tasks {
			taskIndex[t.ID] = t
			if item, ok := engine.ClassifyReminder(t, now, cfg.Engine); ok {
				items = append(items, item)
			}
		}

		// Upcoming breaks from the saved schedule pass through as
		// wellness reminders.
		entries, err := db.GetScheduleEntries(uid)
		if err != nil {
			fmt.Printf("Error fetching schedule: %v\n", err)
			return
		}
		for _, e := range entries {
			if e.IsBreak && e.StartAt.After(now) && e.StartAt.Sub(now) < 24*time.Hour {
				items = append(items, engine.ReminderItem{
					Category:    engine.ReminderWellnessBreak,
					GeneratedAt: now,
				})
			}
		}

		fmt.Print(render.Reminders(items, taskIndex))
	},
}

func init() {
	userFlag(remindCmd)
}
