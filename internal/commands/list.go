package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avoronova/ritmo/internal/db"
	"github.com/avoronova/ritmo/internal/models"
	"github.com/avoronova/ritmo/internal/parser"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tasks",
	Long:    "List a user's tasks with an optional status filter",
	Run: func(cmd *cobra.Command, args []string) {
		initApp()

		status, _ := cmd.Flags().GetString("status")
		if status != "" && !models.Status(status).IsValid() {
			fmt.Printf("Error: invalid status %q. Use: pending, in_progress, completed, cancelled\n", status)
			return
		}

		tasks, err := db.GetTasks(userID(cmd), models.Status(status))
		if err != nil {
			fmt.Printf("Error fetching tasks: %v\n", err)
			return
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks found. Use 'ritmo add \"task title\"' to create your first task.")
			return
		}

		fmt.Printf("%-4s %-12s %-40s %-14s %s\n", "ID", "STATUS", "TITLE", "CATEGORY", "DUE")
		fmt.Println(strings.Repeat("-", 90))

		for _, task := range tasks {
			title := task.Title
			if len(title) > 38 {
				title = title[:35] + "..."
			}
			fmt.Printf("%-4d %-12s %-40s %-14s %s\n",
				task.ID,
				task.Status,
				title,
				task.Category,
				parser.FormatDueDate(task.Due))
		}
	},
}

func init() {
	userFlag(listCmd)
	listCmd.Flags().StringP("status", "s", "", "Filter by status: pending, in_progress, completed, cancelled")
}
