package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/avoronova/ritmo/internal/db"
)

var startCmd = &cobra.Command{
	Use:   "start [task-id]",
	Short: "Start tracking time on a task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		taskID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}

		log, err := db.StartLog(uint(taskID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("⏱️  Started tracking task #%d: %s\n", log.TaskID, log.Task.Title)
		fmt.Printf("Started at: %s\n", log.StartedAt.Format("15:04:05"))
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running time log",
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		log, err := db.StopActiveLog(userID(cmd))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("⏹️  Stopped tracking task #%d: %s\n", log.TaskID, log.Task.Title)
		fmt.Printf("Session length: %s\n", formatDuration(time.Duration(log.DurationMinutes)*time.Minute))
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current time tracking status",
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		log, err := db.GetActiveLog(userID(cmd))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if log == nil {
			fmt.Println("No active time log")
			return
		}

		fmt.Printf("⏱️  Currently tracking task #%d: %s\n", log.TaskID, log.Task.Title)
		fmt.Printf("Started at: %s\n", log.StartedAt.Format("15:04:05"))
		fmt.Printf("Elapsed: %s\n", formatDuration(time.Since(log.StartedAt)))
	},
}

func init() {
	userFlag(stopCmd)
	userFlag(statusCmd)
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
	return fmt.Sprintf("%.0fs", d.Seconds())
}
