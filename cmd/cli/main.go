package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"simci/internal/cli/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "simci",
		Short: "CLI for the simci pipeline dashboard",
	}

	cmd.RegisterCommands(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
