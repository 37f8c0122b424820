package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avoronova/ritmo/internal/db"
	"github.com/avoronova/ritmo/internal/models"
	"github.com/avoronova/ritmo/internal/parser"
)

var addCmd = &cobra.Command{
	Use:   "add [task title]",
	Short: "Add a new task",
	Long: `Add a new task with an optional category, due date, and description.

Examples:
  ritmo add "Fix login bug" --category coding --due "2 days"
  ritmo add "Sprint retro" --category meeting --due today`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()

		title := strings.Join(args, " ")
		category, _ := cmd.Flags().GetString("category")
		description, _ := cmd.Flags().GetString("desc")

		req := db.CreateTaskRequest{
			UserID:      userID(cmd),
			Title:       title,
			Description: description,
			Category:    category,
		}

		if due, _ := cmd.Flags().GetString("due"); due != "" {
			dueDate, err := parser.ParseDueDate(due)
			if err != nil {
				fmt.Printf("Error parsing due date: %v\n", err)
				return
			}
			req.DueDate = dueDate
		}

		task, err := db.CreateTask(req)
		if err != nil {
			fmt.Printf("Error creating task: %v\n", err)
			return
		}

		fmt.Printf("Created task #%d: %s\n", task.ID, task.Title)
		fmt.Printf("  Category: %s\n", task.Category)
		if task.Due != nil {
			fmt.Printf("  Due: %s\n", parser.FormatDueDate(task.Due))
		}
	},
}

func init() {
	userFlag(addCmd)
	addCmd.Flags().StringP("category", "c", string(models.CategoryOther),
		"Category: coding, design, planning, testing, documentation, meeting, other")
	addCmd.Flags().StringP("due", "d", "", "Due date: today, tomorrow, dd/mm/yyyy, X days, X hours, X weeks")
	addCmd.Flags().StringP("desc", "", "", "Longer description")
}
