package chartdef

// Definition is a declarative chart. Optional scalars are pointers so an
// unset field stays absent in the rendered options.
type Definition struct {
	ID             string         `toml:"id,omitempty" json:"id,omitempty"`
	Title          string         `toml:"title,omitempty" json:"title,omitempty"`
	Theme          []string       `toml:"theme,omitempty" json:"theme,omitempty"`
	Axes           []Axis         `toml:"axes,omitempty" json:"axes,omitempty"`
	SeriesDefaults *Series        `toml:"series_defaults,omitempty" json:"seriesDefaults,omitempty"`
	Series         []Series       `toml:"series,omitempty" json:"series,omitempty"`
	Legend         *Legend        `toml:"legend,omitempty" json:"legend,omitempty"`
	Highlighter    *Highlighter   `toml:"highlighter,omitempty" json:"highlighter,omitempty"`
	Cursor         *Cursor        `toml:"cursor,omitempty" json:"cursor,omitempty"`
	Grid           *Grid          `toml:"grid,omitempty" json:"grid,omitempty"`
	Data           []Data         `toml:"data,omitempty" json:"data"`
	Hooks          []Hook         `toml:"hooks,omitempty" json:"hooks,omitempty"`
	Attributes     map[string]any `toml:"attributes,omitempty" json:"attributes,omitempty"`
}

// Axis configures one axis. Renderer names are looked up with
// jqplot.LookupRenderer.
type Axis struct {
	Type          string `toml:"type,omitempty" json:"type"`
	Renderer      string `toml:"renderer,omitempty" json:"renderer,omitempty"`
	TickRenderer  string `toml:"tick_renderer,omitempty" json:"tickRenderer,omitempty"`
	LabelRenderer string `toml:"label_renderer,omitempty" json:"labelRenderer,omitempty"`
	Label         string `toml:"label,omitempty" json:"label,omitempty"`
	Min           any    `toml:"min,omitempty" json:"min,omitempty"`
	Max           any    `toml:"max,omitempty" json:"max,omitempty"`
	TickInterval  string `toml:"tick_interval,omitempty" json:"tickInterval,omitempty"`
	NumberTicks   *int   `toml:"number_ticks,omitempty" json:"numberTicks,omitempty"`
	TickFormat    string `toml:"tick_format,omitempty" json:"tickFormat,omitempty"`
	DateFormat    string `toml:"date_format,omitempty" json:"dateFormat,omitempty"`
	TickAngle     *int   `toml:"tick_angle,omitempty" json:"tickAngle,omitempty"`
	FontSize      string `toml:"font_size,omitempty" json:"fontSize,omitempty"`
	ShowGridline  *bool  `toml:"show_gridline,omitempty" json:"showGridline,omitempty"`
}

// Series configures how a data series is drawn.
type Series struct {
	Label      string   `toml:"label,omitempty" json:"label,omitempty"`
	Renderer   string   `toml:"renderer,omitempty" json:"renderer,omitempty"`
	Color      *string  `toml:"color,omitempty" json:"color,omitempty"`
	LineWidth  *float64 `toml:"line_width,omitempty" json:"lineWidth,omitempty"`
	ShowLine   *bool    `toml:"show_line,omitempty" json:"showLine,omitempty"`
	ShowMarker *bool    `toml:"show_marker,omitempty" json:"showMarker,omitempty"`
	Fill       *bool    `toml:"fill,omitempty" json:"fill,omitempty"`
	Shadow     *bool    `toml:"shadow,omitempty" json:"shadow,omitempty"`
	XAxis      string   `toml:"xaxis,omitempty" json:"xaxis,omitempty"`
	YAxis      string   `toml:"yaxis,omitempty" json:"yaxis,omitempty"`
	Marker     *Marker  `toml:"marker,omitempty" json:"marker,omitempty"`
	Bar        *Bar     `toml:"bar,omitempty" json:"bar,omitempty"`
}

type Marker struct {
	Show  *bool    `toml:"show,omitempty" json:"show,omitempty"`
	Style string   `toml:"style,omitempty" json:"style,omitempty"`
	Size  *float64 `toml:"size,omitempty" json:"size,omitempty"`
	Color *string  `toml:"color,omitempty" json:"color,omitempty"`
}

type Bar struct {
	Direction          string   `toml:"direction,omitempty" json:"direction,omitempty"`
	Width              *float64 `toml:"width,omitempty" json:"width,omitempty"`
	Padding            *int     `toml:"padding,omitempty" json:"padding,omitempty"`
	Margin             *int     `toml:"margin,omitempty" json:"margin,omitempty"`
	VaryColor          *bool    `toml:"vary_color,omitempty" json:"varyColor,omitempty"`
	HighlightMouseOver *bool    `toml:"highlight_mouse_over,omitempty" json:"highlightMouseOver,omitempty"`
	HighlightColors    []string `toml:"highlight_colors,omitempty" json:"highlightColors,omitempty"`
}

type Legend struct {
	Show      *bool    `toml:"show,omitempty" json:"show,omitempty"`
	Location  string   `toml:"location,omitempty" json:"location,omitempty"`
	Placement string   `toml:"placement,omitempty" json:"placement,omitempty"`
	Labels    []string `toml:"labels,omitempty" json:"labels,omitempty"`
	Renderer  string   `toml:"renderer,omitempty" json:"renderer,omitempty"`
}

type Highlighter struct {
	Show            *bool    `toml:"show,omitempty" json:"show,omitempty"`
	ShowTooltip     *bool    `toml:"show_tooltip,omitempty" json:"showTooltip,omitempty"`
	TooltipAxes     string   `toml:"tooltip_axes,omitempty" json:"tooltipAxes,omitempty"`
	TooltipLocation string   `toml:"tooltip_location,omitempty" json:"tooltipLocation,omitempty"`
	FormatString    string   `toml:"format_string,omitempty" json:"formatString,omitempty"`
	SizeAdjust      *float64 `toml:"size_adjust,omitempty" json:"sizeAdjust,omitempty"`
	// TooltipEditor is the body of a tooltipContentEditor function.
	TooltipEditor string `toml:"tooltip_editor,omitempty" json:"tooltipEditor,omitempty"`
}

type Cursor struct {
	Show            *bool  `toml:"show,omitempty" json:"show,omitempty"`
	ShowTooltip     *bool  `toml:"show_tooltip,omitempty" json:"showTooltip,omitempty"`
	Zoom            *bool  `toml:"zoom,omitempty" json:"zoom,omitempty"`
	LooseZoom       *bool  `toml:"loose_zoom,omitempty" json:"looseZoom,omitempty"`
	ConstrainZoomTo string `toml:"constrain_zoom_to,omitempty" json:"constrainZoomTo,omitempty"`
}

type Grid struct {
	DrawGridLines *bool    `toml:"draw_grid_lines,omitempty" json:"drawGridLines,omitempty"`
	GridLineColor *string  `toml:"grid_line_color,omitempty" json:"gridLineColor,omitempty"`
	Background    *string  `toml:"background,omitempty" json:"background,omitempty"`
	BorderColor   *string  `toml:"border_color,omitempty" json:"borderColor,omitempty"`
	BorderWidth   *float64 `toml:"border_width,omitempty" json:"borderWidth,omitempty"`
	Shadow        *bool    `toml:"shadow,omitempty" json:"shadow,omitempty"`
}

// Data kinds.
const (
	KindSeria    = "seria"
	KindTimeline = "timeline"
)

// Data is one data series. Points are [x, y] pairs; for timelines x is a
// date (native TOML date or an RFC 3339 / yyyy-mm-dd string) and y a number.
type Data struct {
	Kind   string  `toml:"kind,omitempty" json:"kind"`
	Format string  `toml:"format,omitempty" json:"format,omitempty"`
	Values string  `toml:"values,omitempty" json:"values,omitempty"`
	Points [][]any `toml:"points,omitempty" json:"points"`
}

// Hook events.
const (
	EventZoom          = "zoom"
	EventResetZoom     = "resetZoom"
	EventMouseDown     = "mouseDown"
	EventMouseUp       = "mouseUp"
	EventDblClick      = "dblClick"
	EventDestroyRedraw = "destroyRedraw"
)

// Hook binds client code to a plot event. For destroyRedraw, Code names the
// client variable holding the plot.
type Hook struct {
	Event string `toml:"event,omitempty" json:"event"`
	Code  string `toml:"code,omitempty" json:"code"`
}
