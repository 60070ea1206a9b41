package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the client config served by a running server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, status, err := doGet(cmd.Context(), "/config")
		if err != nil {
			return err
		}
		if status < 200 || status >= 300 {
			return fmt.Errorf("server returned %d: %s", status, string(data))
		}
		fmt.Fprintln(cmd.OutOrStdout(), prettyJSON(data))
		return nil
	},
}
