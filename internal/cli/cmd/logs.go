package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"simci/internal/cli/client"
	"simci/pkg/api"
)

// NewLogsCommand creates the logs command
func NewLogsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the log of a run",
		Run:   runLogs,
	}

	cmd.Flags().StringP("id", "i", "", "Run ID to show logs for (required)")
	cmd.MarkFlagRequired("id")

	return cmd
}

func runLogs(cmd *cobra.Command, args []string) {
	runID, err := cmd.Flags().GetString("id")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	var resp api.LogResponse
	if err := client.UnwrapData(http.MethodGet, "/api/logs/"+runID, nil, &resp); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if resp.Log == "" {
		fmt.Printf("No log for run %s\n", runID)
		return
	}
	fmt.Print(resp.Log)
}
