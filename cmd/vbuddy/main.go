package main

import (
	"os"

	"github.com/spf13/cobra"

	"vbuddy/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vbuddy",
		Short: "VBuddy support backend",
		Long:  `Backend service for the VBuddy chat widget: records support tickets and dispatches notification emails.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
