package commands

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/avoronova/ritmo/internal/db"
	"github.com/avoronova/ritmo/internal/models"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo history for a user",
	Long: `Create three weeks of completed tasks and time logs plus a handful of
pending tasks, so estimate, insights, and plan have something to work
with. Intended for trying ritmo out, not for real data.`,
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		uid := userID(cmd)
		rng := rand.New(rand.NewSource(42))
		now := time.Now()

		demoTasks := []struct {
			title    string
			category models.Category
			base     int // typical minutes
		}{
			{"Implement feature branch", models.CategoryCoding, 110},
			{"Fix reported bug", models.CategoryCoding, 70},
			{"Refactor service layer", models.CategoryCoding, 130},
			{"Sketch dashboard layout", models.CategoryDesign, 85},
			{"Sprint planning", models.CategoryPlanning, 55},
			{"Write integration tests", models.CategoryTesting, 50},
			{"Update API docs", models.CategoryDocumentation, 60},
			{"Team sync", models.CategoryMeeting, 30},
		}

		created := 0
		for week := 0; week < 3; week++ {
			for i, d := range demoTasks {
				// Spread sessions over weekday mornings and afternoons.
				day := now.AddDate(0, 0, -(week*7 + (i%5 + 1)))
				hour := 9 + (i % 3) + week // 9..13
				started := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())

				actual := d.base + rng.Intn(21) - 10
				if actual < 15 {
					actual = 15
				}
				estimated := d.base

				finished := started.Add(time.Duration(actual) * time.Minute)
				task := models.Task{
					UserID:           uid,
					Title:            fmt.Sprintf("%s (w%d)", d.title, week+1),
					Category:         d.category,
					Status:           models.StatusCompleted,
					CompletedAt:      &finished,
					EstimatedMinutes: &estimated,
					ActualMinutes:    &actual,
					CreatedAt:        started.AddDate(0, 0, -1),
				}
				if err := db.DB.Create(&task).Error; err != nil {
					fmt.Printf("Error seeding task: %v\n", err)
					return
				}

				log := models.TimeLog{
					TaskID:          task.ID,
					UserID:          uid,
					StartedAt:       started,
					FinishedAt:      &finished,
					DurationMinutes: actual,
				}
				if err := db.DB.Create(&log).Error; err != nil {
					fmt.Printf("Error seeding time log: %v\n", err)
					return
				}
				created++
			}
		}

		demoPending := []struct {
			title    string
			category models.Category
			dueDays  int // <0 means no due date
		}{
			{"Ship the release candidate", models.CategoryCoding, 1},
			{"Design onboarding flow", models.CategoryDesign, 3},
			{"Quarterly roadmap review", models.CategoryPlanning, 5},
			{"Regression pass", models.CategoryTesting, 2},
			{"Tidy the backlog", models.CategoryOther, -1},
		}
		for _, d := range demoPending {
			task := models.Task{
				UserID:   uid,
				Title:    d.title,
				Category: d.category,
				Status:   models.StatusPending,
			}
			if d.dueDays >= 0 {
				due := now.AddDate(0, 0, d.dueDays)
				task.Due = &due
			}
			if err := db.DB.Create(&task).Error; err != nil {
				fmt.Printf("Error seeding task: %v\n", err)
				return
			}
			created++
		}

		fmt.Printf("🌱 Seeded %d tasks for user %d\n", created, uid)
		fmt.Println("Try: ritmo insights, ritmo plan, ritmo remind")
	},
}

func init() {
	userFlag(seedCmd)
}
