package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"simci/internal/cli/client"
	"simci/internal/model"
)

// NewBuildsCommand creates the builds command
func NewBuildsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "builds",
		Short: "List current runs, most recent first",
		Run:   runBuilds,
	}
}

func runBuilds(cmd *cobra.Command, args []string) {
	var runs []model.Run
	if err := client.UnwrapData(http.MethodGet, "/api/builds", nil, &runs); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	formatted, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		fmt.Printf("Error: Failed to format output - %v\n", err)
		return
	}

	fmt.Println(string(formatted))
}
