package commands

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/avoronova/ritmo/internal/db"
	"github.com/avoronova/ritmo/internal/engine"
	"github.com/avoronova/ritmo/internal/render"
)

// modelCache lives for the process: repeated estimates in one
// invocation (e.g. plan) reuse the fitted model.
var modelCache = engine.NewModelCache()

var estimateCmd = &cobra.Command{
	Use:   "estimate [task-id]",
	Short: "Predict how long a task will take",
	Long: `Predict a task's duration from your completed history. With enough
history a fitted model answers; otherwise the estimate degrades through
category average, your overall average, and a fixed default.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		taskID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}

		task, err := db.GetTaskByID(uint(taskID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		history, err := db.GetHistory(task.UserID)
		if err != nil {
			fmt.Printf("Error fetching history: %v\n", err)
			return
		}

		estimator := engine.NewEstimator(cfg.Engine, modelCache)
		features := engine.FeaturesForTask(*task, time.Now())

		var est engine.Estimate
		if modelOnly, _ := cmd.Flags().GetBool("model-only"); modelOnly {
			est, err = estimator.EstimateModelOnly(task.UserID, history, features)
			if errors.Is(err, engine.ErrInsufficientData) {
				fmt.Printf("Not enough history for a model estimate: %v\n", err)
				return
			}
		} else {
			est, err = estimator.Estimate(task.UserID, history, features)
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := db.SetEstimate(task.ID, est.Minutes); err != nil {
			fmt.Printf("Warning: could not record estimate: %v\n", err)
		}

		fmt.Print(render.EstimateSummary(*task, est))
	},
}

func init() {
	estimateCmd.Flags().Bool("model-only", false, "Fail instead of falling back when history is thin")
}
