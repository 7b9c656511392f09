package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	chartio "github.com/matzehuels/chartscript/pkg/io"
	"github.com/matzehuels/chartscript/pkg/store"
)

// chartsCommand manages the chart store.
func (c *CLI) chartsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Manage stored chart definitions",
	}

	cmd.AddCommand(c.chartsListCommand())
	cmd.AddCommand(c.chartsImportCommand())
	cmd.AddCommand(c.chartsExportCommand())
	cmd.AddCommand(c.chartsRemoveCommand())

	return cmd
}

// withStore opens the configured store for the duration of fn.
func (c *CLI) withStore(ctx context.Context, fn func(store.Store) error) error {
	st, err := c.openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(st)
}

func (c *CLI) chartsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored charts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd.Context(), func(st store.Store) error {
				charts, err := st.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(charts) == 0 {
					printInfo("No stored charts")
					return nil
				}
				for _, s := range charts {
					fmt.Fprintf(stdout, "%-24s %s\n", s.ID, s.Title)
				}
				return nil
			})
		},
	}
}

func (c *CLI) chartsImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file...]",
		Short: "Validate definition files and add them to the store",
		Long: `Import builds each definition to check it, then stores it under its id.
A definition without an id is given a generated one.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return c.withStore(ctx, func(st store.Store) error {
				for _, path := range args {
					def, err := chartio.ImportDefinition(path)
					if err != nil {
						return err
					}
					if _, err := def.Build(); err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					if err := st.Put(ctx, def); err != nil {
						return err
					}
					printSuccess("Imported %s", def.ID)
					printDetail("From: %s", path)
				}
				return nil
			})
		},
	}
}

func (c *CLI) chartsExportCommand() *cobra.Command {
	var output string
	var format string

	cmd := &cobra.Command{
		Use:   "export [chart-id]",
		Short: "Write a stored chart definition to a file or stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return c.withStore(ctx, func(st store.Store) error {
				def, err := st.Get(ctx, args[0])
				if err != nil {
					return err
				}
				if output != "" && output != stdoutPath {
					if err := chartio.ExportDefinition(def, output); err != nil {
						return err
					}
					printFile(output)
					return nil
				}
				return chartio.WriteDefinition(def, stdout, chartio.Format(format))
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; format follows the extension (default stdout)")
	cmd.Flags().StringVar(&format, "format", string(chartio.FormatTOML), "stdout format: toml or json")
	return cmd
}

func (c *CLI) chartsRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm [chart-id...]",
		Aliases: []string{"remove"},
		Short:   "Remove stored charts",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return c.withStore(ctx, func(st store.Store) error {
				for _, id := range args {
					if err := st.Delete(ctx, id); err != nil {
						return err
					}
					printSuccess("Removed %s", id)
				}
				return nil
			})
		},
	}
}
