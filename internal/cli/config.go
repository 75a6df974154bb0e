package cli

import (
	"fmt"
	"os"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/infra/config"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command. Without a subcommand it shows
// the effective configuration.
func newConfigCommand(c *app.Container) *cobra.Command {
	show := newConfigShowCommand(c)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Show or initialize board configuration files.`,
		Args:  cobra.NoArgs,
		RunE:  show.RunE,
	}

	// Add subcommands
	cmd.AddCommand(show)
	cmd.AddCommand(newConfigInitCommand(c))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging the global and local
config files over the defaults. The files are read again, so edits made
since startup are shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			_, _ = fmt.Fprintf(w, "# Data directory: %s\n", c.Config.DataDir)
			if c.Config.RepoRoot != "" {
				_, _ = fmt.Fprintf(w, "# Repository: %s\n", c.Config.RepoRoot)
			}
			_, _ = fmt.Fprintln(w, "# Loaded from")
			for _, path := range []string{c.ConfigManager.GlobalPath(), c.ConfigManager.LocalPath()} {
				if path == "" {
					continue
				}
				if fileExists(path) {
					_, _ = fmt.Fprintf(w, "# - %s\n", path)
				} else {
					_, _ = fmt.Fprintf(w, "# - %s (not found)\n", path)
				}
			}
			_, _ = fmt.Fprintln(w)

			rendered, err := config.Render(cfg)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(w, rendered)
			return nil
		},
	}
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default local config file",
		Long:  `Write the default configuration to the board data directory.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := c.ConfigManager.InitLocal(domain.NewDefaultConfig())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
