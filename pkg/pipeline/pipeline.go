// Package pipeline turns chart definitions into client scripts and the
// artifacts derived from them.
//
// A run has two stages:
//
//  1. Script: build the [jqplot.Plot] from the definition and render its
//     $.jqplot call, hook code and plugin list.
//  2. Render: derive the requested formats from the script: the bare
//     script, a standalone HTML page, or the plugin dependency graph as DOT
//     or SVG.
//
// Both stages are cached by a [Runner]. The CLI and the HTTP server share
// the same Runner so a chart renders identically from either.
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Definition: def,
//	    Formats:    []string{pipeline.FormatHTML},
//	})
//	if err != nil {
//	    return err
//	}
//	page := result.Artifacts[pipeline.FormatHTML]
package pipeline

import (
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartscript/pkg/cache"
	"github.com/matzehuels/chartscript/pkg/chartdef"
	"github.com/matzehuels/chartscript/pkg/errors"
	"github.com/matzehuels/chartscript/pkg/jqplot"
)

const (
	// DefaultWidth and DefaultHeight size the preview container when
	// neither the options nor the definition's width/height attributes do.
	DefaultWidth  = 600
	DefaultHeight = 400

	// DefaultAssetBase hosts jquery.jqplot.min.js; plugins live under
	// plugins/ below it.
	DefaultAssetBase = "https://cdnjs.cloudflare.com/ajax/libs/jqPlot/1.0.9/"

	// DefaultPlotVar is the page variable holding the plot object.
	DefaultPlotVar = "plot"
)

// Output formats.
const (
	FormatJS   = "js"
	FormatHTML = "html"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJS:   true,
	FormatHTML: true,
	FormatDOT:  true,
	FormatSVG:  true,
}

// ContentTypes maps each format to its HTTP content type.
var ContentTypes = map[string]string{
	FormatJS:   "application/javascript; charset=utf-8",
	FormatHTML: "text/html; charset=utf-8",
	FormatDOT:  "text/vnd.graphviz; charset=utf-8",
	FormatSVG:  "image/svg+xml",
}

var identRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Options configures a pipeline run. The JSON form is the body of the
// server's render endpoint.
type Options struct {
	Definition *chartdef.Definition `json:"definition"`

	// Script options
	DisableRedraw bool   `json:"disable_redraw,omitempty"`
	PlotVar       string `json:"plot_var,omitempty"`

	// Render options
	Formats   []string `json:"formats,omitempty"`
	Width     int      `json:"width,omitempty"`
	Height    int      `json:"height,omitempty"`
	AssetBase string   `json:"asset_base,omitempty"`
	Detailed  bool     `json:"detailed,omitempty"`

	// Refresh skips cache reads; results are still written.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result is the output of a run.
type Result struct {
	Script Script

	// DefinitionHash identifies the definition the script was built from.
	DefinitionHash string

	// Artifacts holds rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

type Stats struct {
	BuildTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo records which stages were served from cache.
type CacheInfo struct {
	ScriptHit bool
	RenderHit bool // every requested format came from cache
}

// ValidateFormat checks that format is supported. Formats are
// case-sensitive.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidArgument,
			"invalid format: %q (must be one of: js, html, dot, svg)", format)
	}
	return nil
}

func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and fills in defaults. It
// assigns the definition an id if it has none. Calling it again is a no-op.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForScript(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForScript checks the options the script stage reads.
func (o *Options) ValidateForScript() error {
	if o.Definition == nil {
		return errors.NullArgument("definition")
	}
	if err := errors.ValidateChartID(o.Definition.EnsureID()); err != nil {
		return err
	}
	if o.PlotVar == "" {
		o.PlotVar = DefaultPlotVar
	}
	if !identRe.MatchString(o.PlotVar) {
		return errors.New(errors.ErrCodeInvalidArgument, "plot_var %q is not a JavaScript identifier", o.PlotVar)
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return nil
}

// ValidateForRender checks the options the render stage reads. Width and
// height fall back to the definition's width and height attributes.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJS}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	var err error
	if o.Width, err = dimension(o.Definition, "width", o.Width, DefaultWidth); err != nil {
		return err
	}
	if o.Height, err = dimension(o.Definition, "height", o.Height, DefaultHeight); err != nil {
		return err
	}
	if o.AssetBase == "" {
		o.AssetBase = DefaultAssetBase
	}
	if !strings.HasSuffix(o.AssetBase, "/") {
		o.AssetBase += "/"
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return nil
}

func dimension(def *chartdef.Definition, name string, set, fallback int) (int, error) {
	if set < 0 {
		return 0, errors.New(errors.ErrCodeInvalidArgument, "%s must not be negative", name)
	}
	if set > 0 {
		return set, nil
	}
	if def != nil {
		v, ok, err := chartdef.Attribute[int](def, name)
		if err != nil {
			return 0, err
		}
		if ok && v > 0 {
			return v, nil
		}
	}
	return fallback, nil
}

// ScriptKeyOpts returns the cache key options of the script stage.
func (o *Options) ScriptKeyOpts() cache.ScriptKeyOpts {
	k := cache.ScriptKeyOpts{DisableRedraw: o.DisableRedraw}
	if o.DisableRedraw {
		k.PlotVar = o.PlotVar
	}
	return k
}

// ArtifactKeyOpts returns the cache key options for one rendered format.
// Only the options a format reads take part in its key.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatHTML:
		k.Width, k.Height, k.AssetBase, k.PlotVar = o.Width, o.Height, o.AssetBase, o.PlotVar
	case FormatDOT, FormatSVG:
		k.Detailed = o.Detailed
	}
	return k
}

// Script is the output of the script stage. It is what gets cached, so
// later stages must not need the plot itself.
type Script struct {
	ChartID          string             `json:"chartId"`
	Title            string             `json:"title,omitempty"`
	Code             string             `json:"code"`
	Plugins          []string           `json:"plugins"`
	NothingToDisplay bool               `json:"nothingToDisplay,omitempty"`
	Components       []jqplot.Component `json:"components,omitempty"`
}
