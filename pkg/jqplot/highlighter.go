package jqplot

import (
	"fmt"

	"github.com/matzehuels/chartscript/pkg/js"
	"github.com/matzehuels/chartscript/pkg/optional"
)

const (
	DefaultTooltipEditorName = "tooltipContentEditor"
	defaultTooltipEditorBody = `return "";`
)

// TooltipContentEditor is a client function that computes highlighter
// tooltip content. The option renders as a reference to the function; the
// function itself is emitted as hook code after the plot.
type TooltipContentEditor struct {
	name string
	body string
}

// NewTooltipContentEditor returns an editor named name whose function body
// is body. Empty arguments fall back to "tooltipContentEditor" and an empty
// string result.
func NewTooltipContentEditor(name, body string) *TooltipContentEditor {
	if name == "" {
		name = DefaultTooltipEditorName
	}
	if body == "" {
		body = defaultTooltipEditorBody
	}
	return &TooltipContentEditor{name: name, body: body}
}

func (e *TooltipContentEditor) Render() (string, bool) {
	return js.NewIdentifier(e.name).Render()
}

// HookFunctionCode returns the function declaration.
func (e *TooltipContentEditor) HookFunctionCode() string {
	return fmt.Sprintf("function %s(str,seriesIndex,pointIndex,plot){%s};", e.name, e.body)
}

// Highlighter configures the highlighter plugin: point highlighting on
// mouse over and the tooltip.
type Highlighter struct {
	show                 js.Bool
	showMarker           js.Bool
	lineWidthAdjust      js.Double
	sizeAdjust           js.Double
	showTooltip          js.Bool
	tooltipLocation      js.String
	fadeTooltip          js.Bool
	tooltipFadeSpeed     js.String
	tooltipOffset        js.Double
	tooltipAxes          js.String
	useAxesFormatters    js.Bool
	tooltipFormatString  js.String
	formatString         js.String
	yvalues              js.Int
	bringSeriesToFront   js.Bool
	tooltipContentEditor *TooltipContentEditor
}

func NewHighlighter() *Highlighter { return &Highlighter{} }

func (h *Highlighter) SetShow(v optional.Option[bool]) *Highlighter {
	h.show = js.BoolOf(v)
	return h
}

func (h *Highlighter) SetShowMarker(v optional.Option[bool]) *Highlighter {
	h.showMarker = js.BoolOf(v)
	return h
}

func (h *Highlighter) SetLineWidthAdjust(v optional.Option[float64]) *Highlighter {
	h.lineWidthAdjust = js.DoubleOf(v)
	return h
}

func (h *Highlighter) SetSizeAdjust(v optional.Option[float64]) *Highlighter {
	h.sizeAdjust = js.DoubleOf(v)
	return h
}

func (h *Highlighter) SetShowTooltip(v optional.Option[bool]) *Highlighter {
	h.showTooltip = js.BoolOf(v)
	return h
}

func (h *Highlighter) SetTooltipLocation(loc Location) *Highlighter {
	h.tooltipLocation = js.NonEmptyString(string(loc))
	return h
}

func (h *Highlighter) SetFadeTooltip(v optional.Option[bool]) *Highlighter {
	h.fadeTooltip = js.BoolOf(v)
	return h
}

// SetTooltipFadeSpeed takes "slow", "def", "fast" or milliseconds.
func (h *Highlighter) SetTooltipFadeSpeed(v optional.Option[string]) *Highlighter {
	h.tooltipFadeSpeed = js.StringOf(v)
	return h
}

func (h *Highlighter) SetTooltipOffset(v optional.Option[float64]) *Highlighter {
	h.tooltipOffset = js.DoubleOf(v)
	return h
}

func (h *Highlighter) SetTooltipAxes(a TooltipAxes) *Highlighter {
	h.tooltipAxes = js.NonEmptyString(string(a))
	return h
}

func (h *Highlighter) SetUseAxesFormatters(v optional.Option[bool]) *Highlighter {
	h.useAxesFormatters = js.BoolOf(v)
	return h
}

func (h *Highlighter) SetTooltipFormatString(v optional.Option[string]) *Highlighter {
	h.tooltipFormatString = js.StringOf(v)
	return h
}

func (h *Highlighter) SetFormatString(v optional.Option[string]) *Highlighter {
	h.formatString = js.StringOf(v)
	return h
}

// SetYvalues sets how many y values a data point carries, e.g. 4 for OHLC.
func (h *Highlighter) SetYvalues(v optional.Option[int]) *Highlighter {
	h.yvalues = js.IntOf(v)
	return h
}

func (h *Highlighter) SetBringSeriesToFront(v optional.Option[bool]) *Highlighter {
	h.bringSeriesToFront = js.BoolOf(v)
	return h
}

func (h *Highlighter) SetTooltipContentEditor(e *TooltipContentEditor) *Highlighter {
	h.tooltipContentEditor = e
	return h
}

func (h *Highlighter) Render() (string, bool) {
	return js.RenderObject("highlighter", js.Properties{}.
		Add("show", h.show).
		Add("showMarker", h.showMarker).
		Add("lineWidthAdjust", h.lineWidthAdjust).
		Add("sizeAdjust", h.sizeAdjust).
		Add("showTooltip", h.showTooltip).
		Add("tooltipLocation", h.tooltipLocation).
		Add("fadeTooltip", h.fadeTooltip).
		Add("tooltipFadeSpeed", h.tooltipFadeSpeed).
		Add("tooltipOffset", h.tooltipOffset).
		Add("tooltipAxes", h.tooltipAxes).
		Add("useAxesFormatters", h.useAxesFormatters).
		Add("tooltipFormatString", h.tooltipFormatString).
		Add("formatString", h.formatString).
		Add("yvalues", h.yvalues).
		Add("bringSeriesToFront", h.bringSeriesToFront).
		Add("tooltipContentEditor", h.tooltipContentEditor))
}

// UsedPlugins always reports the highlighter plugin.
func (h *Highlighter) UsedPlugins() []string {
	return []string{PluginHighlighter}
}

// Hook returns the tooltip editor function, or an empty hook when no editor
// is set.
func (h *Highlighter) Hook() Hook {
	if h.tooltipContentEditor == nil {
		return Hook{ID: "highlighter_hook"}
	}
	return Hook{ID: "highlighter_hook", Code: h.tooltipContentEditor.HookFunctionCode()}
}
