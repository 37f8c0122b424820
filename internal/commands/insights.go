package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avoronova/ritmo/internal/db"
	"github.com/avoronova/ritmo/internal/engine"
	"github.com/avoronova/ritmo/internal/render"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show your productivity profile",
	Long: `Summarize your tracked history: the hours and weekdays you work best,
your completion rate, and your average session length. Recomputed fresh
from time logs on every call.`,
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		uid := userID(cmd)

		tasks, err := db.GetHistory(uid)
		if err != nil {
			fmt.Printf("Error fetching tasks: %v\n", err)
			return
		}
		logs, err := db.GetLogs(uid)
		if err != nil {
			fmt.Printf("Error fetching time logs: %v\n", err)
			return
		}

		profile := engine.BuildProfile(uid, tasks, logs, time.Now(), cfg.Engine)
		fmt.Print(render.Insights(profile))
	},
}

func init() {
	userFlag(insightsCmd)
}
