package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avoronova/ritmo/internal/db"
	"github.com/avoronova/ritmo/internal/engine"
	"github.com/avoronova/ritmo/internal/models"
	"github.com/avoronova/ritmo/internal/parser"
	"github.com/avoronova/ritmo/internal/render"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Assemble a smart schedule for your pending tasks",
	Long: `Estimate every pending task, order the batch by urgency, and lay the
tasks out over your most productive hours, avoiding anything you are
already committed to and inserting breaks before you burn out.

Use --save to persist the plan; saved slots count as committed time in
later runs.`,
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		uid := userID(cmd)
		now := time.Now()

		if from, _ := cmd.Flags().GetString("from"); from != "" {
			parsed, err := parser.ParseDueDate(from)
			if err != nil || parsed == nil {
				fmt.Printf("Error parsing --from: %v\n", err)
				return
			}
			// Plan from the morning of that day rather than its end.
			start := time.Date(parsed.Year(), parsed.Month(), parsed.Day(),
				cfg.Engine.DayStartHour, 0, 0, 0, parsed.Location())
			if start.After(now) {
				now = start
			}
		}

		pending, err := db.GetPendingTasks(uid)
		if err != nil {
			fmt.Printf("Error fetching pending tasks: %v\n", err)
			return
		}
		history, err := db.GetHistory(uid)
		if err != nil {
			fmt.Printf("Error fetching history: %v\n", err)
			return
		}
		logs, err := db.GetLogs(uid)
		if err != nil {
			fmt.Printf("Error fetching time logs: %v\n", err)
			return
		}
		committed, err := db.CommittedIntervals(uid, now)
		if err != nil {
			fmt.Printf("Error fetching committed slots: %v\n", err)
			return
		}

		profile := engine.BuildProfile(uid, history, logs, now, cfg.Engine)
		estimator := engine.NewEstimator(cfg.Engine, modelCache)
		assembler := engine.NewAssembler(cfg.Engine, estimator)

		slots, err := assembler.Assemble(uid, pending, history, profile, committed, now)
		if errors.Is(err, engine.ErrUnschedulable) {
			fmt.Printf("Could not fit everything: %v\n", err)
			fmt.Println("Free up committed time or extend the look-ahead in your config.")
			return
		}
		if err != nil {
			fmt.Printf("Error assembling schedule: %v\n", err)
			return
		}

		taskIndex := make(map[uint]models.Task, len(pending))
		for _, t := range pending {
			taskIndex[t.ID] = t
		}
		fmt.Print(render.Timeline(slots, taskIndex))

		if save, _ := cmd.Flags().GetBool("save"); save && len(slots) > 0 {
			if _, err := db.ReplaceSchedule(uid, slots); err != nil {
				fmt.Printf("Error saving schedule: %v\n", err)
				return
			}
			fmt.Printf("💾 Saved %d slots\n", len(slots))
		}
	},
}

func init() {
	userFlag(planCmd)
	planCmd.Flags().Bool("save", false, "Persist the assembled schedule")
	planCmd.Flags().String("from", "", "Plan from this day instead of now (today, tomorrow, dd/mm/yyyy)")
}
