package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase"
	"github.com/spf13/cobra"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all issues as JSON or YAML",
		Long: `Write the whole issue list to stdout, or to a file with -o.

The format defaults to the output file extension, then to JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := resolveFormat(format, output)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer func() { _ = file.Close() }()
				w = file
			}

			out, err := c.ExportIssuesUseCase().Execute(cmd.Context(), usecase.ExportIssuesInput{
				Writer: w,
				Format: f,
			})
			if err != nil {
				return err
			}

			if output != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d issues to %s\n", out.Count, output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Output format: json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	var format string
	var appendMode bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Load issues from a JSON or YAML file",
		Long: `Load an issue list from a file ("-" reads stdin).

By default the board is replaced by the file contents, which must give
every issue a unique id. With --append each record is added as a new issue
with a freshly generated id.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			var r io.Reader = cmd.InOrStdin()
			if path != "-" {
				file, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("open %s: %w", path, err)
				}
				defer func() { _ = file.Close() }()
				r = file
			}

			f, err := resolveFormat(format, path)
			if err != nil {
				return err
			}

			out, err := c.ImportIssuesUseCase().Execute(cmd.Context(), usecase.ImportIssuesInput{
				Reader: r,
				Format: f,
				Append: appendMode,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d issues (%d total)\n", out.Imported, out.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Input format: json or yaml")
	cmd.Flags().BoolVar(&appendMode, "append", false, "Add to the board instead of replacing it")

	return cmd
}

// resolveFormat returns the explicit format, or guesses it from path.
func resolveFormat(explicit, path string) (domain.Format, error) {
	if explicit != "" {
		return domain.ParseFormat(explicit)
	}
	if path == "" || path == "-" {
		return domain.FormatJSON, nil
	}
	return domain.FormatForPath(path), nil
}
