package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"simci/internal/cli/client"
	"simci/pkg/api"
)

// NewResetCommand creates the reset command
func NewResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear all persisted runs, history and logs",
		Run:   runReset,
	}
}

func runReset(cmd *cobra.Command, args []string) {
	var resp api.ResetResponse
	if err := client.UnwrapData(http.MethodPost, "/api/reset", nil, &resp); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println(resp.Message)
}
