package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartscript/pkg/chartdef"
	"github.com/matzehuels/chartscript/pkg/errors"
	chartio "github.com/matzehuels/chartscript/pkg/io"
	"github.com/matzehuels/chartscript/pkg/pipeline"
)

// stdoutPath as --output writes to stdout.
const stdoutPath = "-"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output        string   // output file (single format) or base path (multiple)
	formats       []string // js, html, dot, svg
	disableRedraw bool     // make the plot's redraw a no-op
	plotVar       string   // page variable bound to the plot
	width         int      // preview container width
	height        int      // preview container height
	assetBase     string   // where the preview page loads jqPlot from
	detailed      bool     // number plugins in load order (dot, svg)
	noCache       bool
	refresh       bool
}

func (o *renderOpts) pipelineOptions(def *chartdef.Definition) pipeline.Options {
	return pipeline.Options{
		Definition:    def,
		DisableRedraw: o.disableRedraw,
		PlotVar:       o.plotVar,
		Formats:       o.formats,
		Width:         o.width,
		Height:        o.height,
		AssetBase:     o.assetBase,
		Detailed:      o.detailed,
		Refresh:       o.refresh,
	}
}

// renderCommand creates the render command.
//
// With a single format and no --output the artifact goes to stdout. With
// several formats each is written next to the base path with the format
// as extension (sales.js, sales.html).
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file|chart-id]",
		Short: "Render a chart to a jqPlot script or preview page",
		Long: `Render builds the jqPlot options for a chart and writes the resulting script.

The argument is a .toml or .json definition file, or the id of a stored chart.`,
		Example: `  chartscript render sales.toml
  chartscript render sales.toml -f html -o sales.html
  chartscript render sales -f js,html,svg -o out/sales`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple); - for stdout")
	f.StringVarP(&formatsStr, "format", "f", "", "output format(s): js (default), html, dot, svg (comma-separated)")
	f.BoolVar(&opts.disableRedraw, "disable-redraw", false, "make the plot's redraw a no-op")
	f.StringVar(&opts.plotVar, "plot-var", pipeline.DefaultPlotVar, "page variable holding the plot (html)")
	f.IntVar(&opts.width, "width", 0, "preview width in pixels (html; default from the chart or 600)")
	f.IntVar(&opts.height, "height", 0, "preview height in pixels (html; default from the chart or 400)")
	f.StringVar(&opts.assetBase, "asset-base", pipeline.DefaultAssetBase, "base URL of the jqPlot distribution (html)")
	f.BoolVar(&opts.detailed, "detailed", false, "number plugins in load order (dot, svg)")
	f.BoolVar(&opts.noCache, "no-cache", false, "disable the script cache")
	f.BoolVar(&opts.refresh, "refresh", false, "ignore cached results and rebuild")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	def, err := c.loadDefinition(ctx, input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, opts.pipelineOptions(def))
	if err != nil {
		return err
	}
	s := result.Script
	prog.done(fmt.Sprintf("Rendered %s", s.ChartID))
	printScriptStats(len(s.Plugins), len(s.Components), result.CacheInfo.ScriptHit)
	printDetail("Plugins: %s", formatPlugins(s.Plugins))
	if s.NothingToDisplay {
		fmt.Fprintln(stderr, StyleWarning.Render(s.ChartID+" has no data to display"))
	}

	return writeArtifacts(result.Artifacts, opts.formats, opts.output, outputStem(input, s.ChartID))
}

// loadDefinition reads input as a definition file when one exists at that
// path and otherwise looks it up as a chart id in the store.
func (c *CLI) loadDefinition(ctx context.Context, input string) (*chartdef.Definition, error) {
	if _, err := os.Stat(input); err == nil {
		return chartio.ImportDefinition(input)
	}
	if _, err := chartio.FormatOf(input); err == nil {
		return nil, errors.New(errors.ErrCodeFileNotFound, "definition file %s does not exist", input)
	}
	if err := errors.ValidateChartID(input); err != nil {
		return nil, err
	}

	st, err := c.openStore(ctx)
	if err != nil {
		return nil, err
	}
	defer st.Close()
	return st.Get(ctx, input)
}

// outputStem is the default base path: the input without its extension, or
// the chart id when input names a stored chart.
func outputStem(input, chartID string) string {
	if _, err := chartio.FormatOf(input); err == nil {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	return chartID
}

// basePath derives the base output path. A known format extension on
// output is dropped.
func basePath(output, stem string) string {
	if output == "" {
		return stem
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func writeArtifacts(artifacts map[string][]byte, formats []string, output, stem string) error {
	if len(formats) == 1 {
		data := artifacts[formats[0]]
		if output == "" || output == stdoutPath {
			_, err := stdout.Write(data)
			return err
		}
		if err := writeFile(output, data); err != nil {
			return err
		}
		printFile(output)
		return nil
	}

	base := basePath(output, stem)
	for _, f := range formats {
		path := base + "." + f
		if err := writeFile(path, artifacts[f]); err != nil {
			return err
		}
		printFile(path)
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// pluginsCommand lists the plugin scripts a chart loads, in load order.
func (c *CLI) pluginsCommand() *cobra.Command {
	var assetBase string
	var urls, noCache bool

	cmd := &cobra.Command{
		Use:   "plugins [file|chart-id]",
		Short: "List the jqPlot plugin scripts a chart needs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			def, err := c.loadDefinition(ctx, args[0])
			if err != nil {
				return err
			}
			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			s, cached, err := runner.ScriptWithCacheInfo(ctx, pipeline.Options{Definition: def})
			if err != nil {
				return err
			}
			loggerFromContext(ctx).Debug("script ready", "chart", s.ChartID, "cached", cached)

			base := strings.TrimSuffix(assetBase, "/") + "/plugins/"
			for _, p := range s.Plugins {
				if urls {
					p = base + p
				}
				fmt.Fprintln(stdout, p)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&urls, "urls", false, "print full script URLs")
	cmd.Flags().StringVar(&assetBase, "asset-base", pipeline.DefaultAssetBase, "base URL of the jqPlot distribution")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the script cache")
	return cmd
}
