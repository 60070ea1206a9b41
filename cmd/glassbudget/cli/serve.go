package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/alexis/glassbudget/internal/config"
	"github.com/alexis/glassbudget/internal/server"
)

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from GLASS_ADDR or 127.0.0.1:8000)")
	serveCmd.Flags().String("dir", "", "directory holding the entry file and static assets")
	serveCmd.Flags().String("entry", "", "entry file served at /")
	serveCmd.Flags().String("env-file", "", "re-read Supabase settings from this .env file on every request")
	serveCmd.Flags().Bool("cors", false, "allow cross-origin GET requests")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Glass Budget server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := applyServeFlags(cmd, config.Load())
		if err != nil {
			return err
		}

		slog.Info("starting glassbudget", "version", Version, "addr", cfg.Addr, "dir", cfg.Dir, "env_file", cfg.EnvFile)

		return server.Run(cmd.Context(), cfg, cmd.OutOrStdout())
	},
}

// applyServeFlags overrides cfg with the flags set on the command line.
func applyServeFlags(cmd *cobra.Command, cfg config.Config) (config.Config, error) {
	f := cmd.Flags()
	strs := []struct {
		name string
		dst  *string
	}{
		{"addr", &cfg.Addr},
		{"dir", &cfg.Dir},
		{"entry", &cfg.EntryFile},
		{"env-file", &cfg.EnvFile},
	}
	for _, s := range strs {
		if !f.Changed(s.name) {
			continue
		}
		v, err := f.GetString(s.name)
		if err != nil {
			return cfg, fmt.Errorf("read --%s: %w", s.name, err)
		}
		*s.dst = v
	}
	if f.Changed("cors") {
		v, err := f.GetBool("cors")
		if err != nil {
			return cfg, fmt.Errorf("read --cors: %w", err)
		}
		cfg.CORSEnabled = v
	}
	return cfg, nil
}
