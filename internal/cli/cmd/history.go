package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"simci/internal/cli/client"
	"simci/internal/model"
)

// NewHistoryCommand creates the history command
func NewHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show completed run history",
		Run:   runHistory,
	}
}

func runHistory(cmd *cobra.Command, args []string) {
	var history []model.Run
	if err := client.UnwrapData(http.MethodGet, "/api/history", nil, &history); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	formatted, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		fmt.Printf("Error: Failed to format output - %v\n", err)
		return
	}

	fmt.Println(string(formatted))
}
