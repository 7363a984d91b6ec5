package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"simci/internal/cli/client"
	"simci/internal/stats"
)

// NewStatsCommand creates the stats command
func NewStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show delivery metrics",
		Run:   runStats,
	}
}

func runStats(cmd *cobra.Command, args []string) {
	var summary stats.Summary
	if err := client.UnwrapData(http.MethodGet, "/api/stats", nil, &summary); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Deploys today:       %d\n", summary.DeploysToday)
	fmt.Printf("Success rate (7d):   %.1f%%\n", summary.SuccessRate)
	fmt.Printf("Change failure rate: %.1f%%\n", summary.ChangeFailureRate)
	fmt.Printf("Avg duration:        %ds\n", summary.AvgDurationS)
	fmt.Printf("MTTR:                %d min\n", summary.MTTRMinutes)
}
