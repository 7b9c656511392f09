package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartscript/pkg/jqplot"
	"github.com/matzehuels/chartscript/pkg/pipeline"
)

// graphCommand renders the plugin dependency graph of a chart.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		output  string
		svg     bool
		noCache bool
	)
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "graph [file|chart-id]",
		Short: "Render the plugin dependency graph of a chart",
		Long: `Graph draws which option components pull in which jqPlot plugin scripts,
and which plugins depend on others. The output is Graphviz DOT unless --svg is set.`,
		Example: `  chartscript graph sales.toml | dot -Tpng > sales.png
  chartscript graph sales.toml --svg --detailed -o sales.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = []string{pipeline.FormatDOT}
			if svg {
				opts.formats = []string{pipeline.FormatSVG}
			}
			opts.output = output
			opts.noCache = noCache
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&svg, "svg", false, "render SVG via Graphviz instead of DOT")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "number plugins in load order")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the script cache")

	return cmd
}

// dateformatCommand converts Java date patterns to date renderer tokens.
func (c *CLI) dateformatCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "dateformat [pattern...]",
		Short:   "Convert Java date patterns to jqPlot date tokens",
		Example: `  chartscript dateformat "yyyy-MM-dd HH:mm"   # %Y-%m-%d %H:%M`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range args {
				fmt.Fprintln(stdout, jqplot.ConvertDateFormat(p))
			}
			return nil
		},
	}
}
