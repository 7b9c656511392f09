package pipeline

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/matzehuels/chartscript/pkg/chartdef"
	"github.com/matzehuels/chartscript/pkg/depgraph"
	"github.com/matzehuels/chartscript/pkg/jqplot"
)

// BuildScript runs the script stage without caching.
func BuildScript(def *chartdef.Definition, opts Options) (Script, error) {
	if err := opts.ValidateForScript(); err != nil {
		return Script{}, err
	}
	plot, err := def.Build()
	if err != nil {
		return Script{}, err
	}
	if opts.DisableRedraw {
		plot.AddHook(jqplot.DestroyRedraw(opts.PlotVar))
	}

	s := Script{
		ChartID:          plot.ChartID(),
		Title:            def.Title,
		Code:             plot.String(),
		Plugins:          plot.UsedPlugins(),
		NothingToDisplay: plot.NothingToDisplay(),
	}
	if !s.NothingToDisplay && plot.Options() != nil {
		s.Components = plot.Options().Components()
	}
	return s, nil
}

// Render derives every requested format from s without caching.
func Render(ctx context.Context, s Script, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := RenderFormat(ctx, s, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// RenderFormat derives a single format from s. opts must have been
// validated.
func RenderFormat(ctx context.Context, s Script, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatJS:
		return []byte(s.Code), nil
	case FormatHTML:
		return renderPage(s, opts)
	case FormatDOT:
		return []byte(depgraph.ToDOT(s.Graph(), depgraph.Options{Detailed: opts.Detailed})), nil
	case FormatSVG:
		return depgraph.RenderSVG(ctx, depgraph.ToDOT(s.Graph(), depgraph.Options{Detailed: opts.Detailed}))
	}
	return nil, ValidateFormat(format)
}

// Graph returns the plugin dependency graph of the script.
func (s Script) Graph() depgraph.Graph {
	return depgraph.Graph{ChartID: s.ChartID, Components: s.Components, Plugins: s.Plugins}
}

//go:embed page.html.tmpl
var pageSource string

var pageTemplate = template.Must(template.New("page").Parse(pageSource))

type pageData struct {
	Title     string
	ChartID   string
	Width     int
	Height    int
	StyleURL  string
	CoreURL   string
	PluginURL []string
	Script    template.JS
}

// renderPage writes a standalone page loading jQuery, the jqPlot core and
// every plugin the script uses, then runs the script on DOM ready with the
// plot bound to opts.PlotVar.
func renderPage(s Script, opts Options) ([]byte, error) {
	title := s.Title
	if title == "" {
		title = s.ChartID
	}
	d := pageData{
		Title:    title,
		ChartID:  s.ChartID,
		Width:    opts.Width,
		Height:   opts.Height,
		StyleURL: opts.AssetBase + "jquery.jqplot.min.css",
		CoreURL:  opts.AssetBase + depgraph.CoreScript,
		Script:   template.JS("var " + opts.PlotVar + " = " + s.Code),
	}
	for _, p := range s.Plugins {
		d.PluginURL = append(d.PluginURL, opts.AssetBase+"plugins/"+p)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, d); err != nil {
		return nil, fmt.Errorf("execute page template: %w", err)
	}
	return buf.Bytes(), nil
}
