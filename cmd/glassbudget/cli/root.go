package cli

import (
	"github.com/spf13/cobra"
)

// Version is set by main at startup.
var Version = "dev"

var serverURL string

var rootCmd = &cobra.Command{
	Use:          "glassbudget",
	Short:        "Glass Budget local server",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://127.0.0.1:8000", "Glass Budget server URL")
}

func Execute() error {
	return rootCmd.Execute()
}
