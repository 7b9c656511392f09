// Package pkg provides the core libraries for chartscript.
//
// # Overview
//
// Chartscript writes the client-side JavaScript that draws jqPlot charts. A
// chart is a tree of typed option values; rendering the tree yields a
// JavaScript object literal in which unset options are simply left out, and
// walking it yields the plugin scripts the page has to load. The pkg
// directory is organized in three layers:
//
//  1. Engine: [optional], [js], [series] and [jqplot] build and render
//     value trees.
//  2. Definitions: [chartdef] maps declarative TOML or JSON charts onto the
//     engine, and [io] reads and writes them.
//  3. Services: [pipeline] runs definitions through the engine with
//     [cache] in front, [store] keeps definitions, [depgraph] draws plugin
//     dependencies, [observability] counts what happens, and [server]
//     exposes it all over HTTP.
//
// # Architecture
//
//	chart definition (.toml / .json / store)
//	         ↓
//	    [chartdef] Build
//	         ↓
//	    [jqplot] Plot  ← options tree of [js] values, data from [series]
//	         ↓
//	    [pipeline] script + plugin list
//	         ↓
//	    js / html / dot / svg
//
// # Quick Start
//
// Build options by hand and render a plot:
//
//	b := jqplot.NewBuilder()
//	if _, err := b.UseChartID("sales"); err != nil {
//	    return err
//	}
//	b.UseData().AddSeriaDataIfNotNil(line.AsArray())
//	b.UseOptions().Axes().AddIfNotNil(jqplot.NewAxis(jqplot.XAxis).
//	    SetRenderer(jqplot.DateAxisRenderer()))
//	plot, err := b.Build()
//	if err != nil {
//	    return err
//	}
//	script := plot.String()       // $.jqplot("sales", [...], {...});
//	plugins := plot.UsedPlugins() // [jqplot.dateAxisRenderer.min.js]
//
// Or start from a definition file:
//
//	def, err := io.ImportDefinition("sales.toml")
//	if err != nil {
//	    return err
//	}
//	result, err := pipeline.NewRunner(nil, nil, logger).Execute(ctx, pipeline.Options{
//	    Definition: def,
//	    Formats:    []string{pipeline.FormatHTML},
//	})
//
// # Error Handling
//
// Errors carry a code from [errors]: NULL_ARGUMENT for missing required
// arguments, INVALID_STATE for builder misuse, TYPE_MISMATCH for attributes
// of the wrong type, and so on. Use errors.Is(err, code) to branch on them.
//
// [optional]: https://pkg.go.dev/github.com/matzehuels/chartscript/pkg/optional
// [js]: https://pkg.go.dev/github.com/matzehuels/chartscript/pkg/js
// [series]: https://pkg.go.dev/github.com/matzehuels/chartscript/pkg/series
// [jqplot]: https://pkg.go.dev/github.com/matzehuels/chartscript/pkg/jqplot
// [chartdef]: https://pkg.go.dev/github.com/matzehuels/chartscript/pkg/chartdef
// [io]: https://pkg.go.dev/github.com/matzehuels/chartscript/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/chartscript/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/chartscript/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/chartscript/pkg/store
// [depgraph]: https://pkg.go.dev/github.com/matzehuels/chartscript/pkg/depgraph
// [observability]: https://pkg.go.dev/github.com/matzehuels/chartscript/pkg/observability
// [server]: https://pkg.go.dev/github.com/matzehuels/chartscript/pkg/server
// [errors]: https://pkg.go.dev/github.com/matzehuels/chartscript/pkg/errors
package pkg
