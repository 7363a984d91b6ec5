package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"simci/internal/cli/client"
	"simci/pkg/api"
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Trigger a pipeline run",
		Run:   runRun,
	}

	cmd.Flags().StringP("job", "j", "app-ci", "Job name to run")

	return cmd
}

func runRun(cmd *cobra.Command, args []string) {
	job, err := cmd.Flags().GetString("job")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	jsonData, err := json.Marshal(api.RunRequest{Job: job})
	if err != nil {
		fmt.Printf("Error: Failed to serialize data - %v\n", err)
		return
	}

	var resp api.RunResponse
	if err := client.UnwrapData(http.MethodPost, "/api/run", bytes.NewBuffer(jsonData), &resp); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Started run %s (job=%s)\n", resp.RunID, job)
}
