package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avoronova/ritmo/internal/config"
	"github.com/avoronova/ritmo/internal/db"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "ritmo",
	Short: "A CLI task tracker with a predictive scheduler",
	Long: `ritmo combines task management and time tracking with an intelligent
scheduling engine: it learns how long your tasks really take, finds the
hours you work best, and lays out a conflict-free, break-aware plan for
your pending work.`,
}

// initApp loads config and opens the database, panicking on failure
func initApp() {
	loaded, err := config.Load()
	if err != nil {
		panic(err)
	}
	cfg = loaded
	if err := db.Initialize(cfg.DBPath); err != nil {
		panic(err)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ritmo %s\ncommit: %s\nbuilt:  %s\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

// userFlag registers the shared --user flag on a command
func userFlag(cmd *cobra.Command) {
	cmd.Flags().UintP("user", "u", 1, "User ID to act as")
}

func userID(cmd *cobra.Command) uint {
	id, _ := cmd.Flags().GetUint("user")
	return id
}
