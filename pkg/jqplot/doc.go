// Package jqplot models the jqPlot chart option tree and renders it as the
// script that instantiates a plot.
//
// # Overview
//
// A [Plot] couples a chart id, a data set and an [Options] tree:
//
//	b := jqplot.NewBuilder()
//	if _, err := b.UseChartID("chartA"); err != nil {
//	    return err
//	}
//	b.UseData().AddSeriaDataIfNotNil(line.AsArray())
//	b.UseOptions().SetTitle(jqplot.NewTitle("Incident date"))
//	plot, err := b.Build()
//	script, _ := plot.Render()
//	// $.jqplot("chartA", [[...]], {title: {text:"Incident date",escapeHtml:true}});
//
// Every option type renders through [js.RenderObject] in a fixed property
// order, so output is byte-stable for a given tree.
//
// # Plugins
//
// Renderers and some option objects need extra client script files. Each
// option type reports them through UsedPlugins; [Plot.UsedPlugins] returns
// the ordered, deduplicated union for the whole tree.
//
// # Hooks
//
// Code that must run after the plot is created (event bindings, helper
// functions) is collected as [Hook] values and appended to the script in
// first-added order, deduplicated by identifier.
//
// # Date formats
//
// [ConvertDateFormat] rewrites Java-style date patterns ("yyyy-MM-dd") into
// the strftime-like tokens used by the date axis renderer ("%Y-%m-%d").
package jqplot
