package chartdef

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/chartscript/pkg/errors"
	"github.com/matzehuels/chartscript/pkg/jqplot"
	"github.com/matzehuels/chartscript/pkg/js"
	"github.com/matzehuels/chartscript/pkg/optional"
	"github.com/matzehuels/chartscript/pkg/series"
)

// NewChartID returns a fresh DOM id for definitions that do not set one.
func NewChartID() string {
	return "chart-" + uuid.NewString()
}

// EnsureID assigns a generated id when the definition has none and returns
// the id.
func (d *Definition) EnsureID() string {
	if d.ID == "" {
		d.ID = NewChartID()
	}
	return d.ID
}

// Build validates the definition and assembles the plot. A definition
// without an id gets a generated one.
func (d *Definition) Build() (*jqplot.Plot, error) {
	id := d.EnsureID()
	if err := errors.ValidateChartID(id); err != nil {
		return nil, err
	}
	if err := d.checkFinite(); err != nil {
		return nil, err
	}

	data, err := d.buildData()
	if err != nil {
		return nil, err
	}
	opts, err := d.buildOptions()
	if err != nil {
		return nil, err
	}

	plot, err := jqplot.NewPlot(id, data, opts)
	if err != nil {
		return nil, err
	}
	for i, h := range d.Hooks {
		hook, err := buildHook(id, h)
		if err != nil {
			return nil, fmt.Errorf("hooks[%d]: %w", i, err)
		}
		plot.AddHook(hook)
	}
	return plot, nil
}

func (d *Definition) buildData() (*series.SeriesData, error) {
	var b series.Builder
	for i, dd := range d.Data {
		name := fmt.Sprintf("data[%d]", i)
		for j, p := range dd.Points {
			if len(p) != 2 {
				return nil, errors.New(errors.ErrCodeInvalidFormat,
					"%s.points[%d]: want [x, y], got %d values", name, j, len(p))
			}
		}

		switch dd.Kind {
		case KindSeria, "":
			s := b.CreateSeria()
			for j, p := range dd.Points {
				at := fmt.Sprintf("%s.points[%d]", name, j)
				x, err := scalar(at, p[0], js.DateOnly)
				if err != nil {
					return nil, err
				}
				y, err := scalar(at, p[1], js.DateOnly)
				if err != nil {
					return nil, err
				}
				s.AddTupleIfComplete(x, y)
			}
		case KindTimeline:
			format := js.DateOnly
			if dd.Format != "" {
				f, err := js.ParseDateTimeFormat(dd.Format)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", name, err)
				}
				format = f
			}
			if err := fillTimeline(&b, name, format, dd); err != nil {
				return nil, err
			}
		default:
			return nil, errors.New(errors.ErrCodeInvalidArgument, "%s: unknown kind %q", name, dd.Kind)
		}
	}
	return b.Build(), nil
}

func fillTimeline(b *series.Builder, name string, format js.DateTimeFormat, dd Data) error {
	switch dd.Values {
	case "", "double":
		tl, err := b.CreateTimeLineWithDoubleValues(format)
		if err != nil {
			return err
		}
		return addPoints(tl, name, dd.Points, decimal)
	case "integer":
		tl, err := b.CreateTimeLineWithIntegerValues(format)
		if err != nil {
			return err
		}
		return addPoints(tl, name, dd.Points, integer)
	}
	return errors.New(errors.ErrCodeInvalidArgument,
		"%s: unknown values %q (must be double or integer)", name, dd.Values)
}

// addPoints skips points with a missing coordinate.
func addPoints[N series.Number](tl *series.TimeLineSeries[N], name string, points [][]any, yOf func(string, any) (N, error)) error {
	for j, p := range points {
		if p[0] == nil || p[1] == nil {
			continue
		}
		at := fmt.Sprintf("%s.points[%d]", name, j)
		x, err := date(at, p[0])
		if err != nil {
			return err
		}
		y, err := yOf(at, p[1])
		if err != nil {
			return err
		}
		if err := tl.Add(optional.Some(x), optional.Some(y)); err != nil {
			return err
		}
	}
	return nil
}

func (d *Definition) buildOptions() (*jqplot.Options, error) {
	o := jqplot.NewOptions()
	if d.Title != "" {
		o.SetTitle(jqplot.NewTitle(d.Title))
	}

	for i, a := range d.Axes {
		axis, err := buildAxis(a)
		if err != nil {
			return nil, fmt.Errorf("axes[%d]: %w", i, err)
		}
		o.Axes().AddIfNotNil(axis)
	}

	if d.SeriesDefaults != nil {
		s := jqplot.NewSeriesDefaults()
		if err := applySeries(s, *d.SeriesDefaults); err != nil {
			return nil, fmt.Errorf("series_defaults: %w", err)
		}
		o.SetSeriesDefaults(s)
	}
	for i, def := range d.Series {
		s := jqplot.NewSeries()
		if err := applySeries(s, def); err != nil {
			return nil, fmt.Errorf("series[%d]: %w", i, err)
		}
		o.AddSeriaOption(s)
	}

	if d.Legend != nil {
		l, err := buildLegend(*d.Legend)
		if err != nil {
			return nil, fmt.Errorf("legend: %w", err)
		}
		o.SetLegend(l)
	}
	if d.Highlighter != nil {
		if err := applyHighlighter(o.Highlighter(), *d.Highlighter); err != nil {
			return nil, fmt.Errorf("highlighter: %w", err)
		}
	}
	if d.Cursor != nil {
		c, err := buildCursor(*d.Cursor)
		if err != nil {
			return nil, fmt.Errorf("cursor: %w", err)
		}
		o.SetCursor(c)
	}

	if len(d.Theme) > 0 {
		grid, colors, err := parseTheme(d.Theme)
		if err != nil {
			return nil, fmt.Errorf("theme: %w", err)
		}
		o.ApplyTheme(grid, colors)
	}
	if d.Grid != nil {
		applyGrid(o, *d.Grid)
	}
	return o, nil
}

func lookupRenderer(name string) (*js.Renderer, error) {
	if name == "" {
		return nil, nil
	}
	r, ok := jqplot.LookupRenderer(name)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			"unknown renderer %q (known: %s)", name, strings.Join(jqplot.RendererNames(), ", "))
	}
	return r, nil
}

func buildAxis(a Axis) (*jqplot.Axis, error) {
	t, err := jqplot.ParseAxisType(a.Type)
	if err != nil {
		return nil, err
	}
	axis := jqplot.NewAxis(t).SetLabel(a.Label)

	for _, r := range []struct {
		name string
		set  func(*js.Renderer) *jqplot.Axis
	}{
		{a.Renderer, axis.SetRenderer},
		{a.TickRenderer, axis.SetTickRenderer},
		{a.LabelRenderer, axis.SetLabelRenderer},
	} {
		renderer, err := lookupRenderer(r.name)
		if err != nil {
			return nil, err
		}
		r.set(renderer)
	}

	lo, err := scalar("min", a.Min, js.DateOnly)
	if err != nil {
		return nil, err
	}
	hi, err := scalar("max", a.Max, js.DateOnly)
	if err != nil {
		return nil, err
	}
	axis.SetMin(lo).
		SetMax(hi).
		SetTickInterval(optional.FromNonDefault(a.TickInterval)).
		SetNumberTicks(optional.FromPtr(a.NumberTicks))

	format := a.TickFormat
	if format == "" && a.DateFormat != "" {
		format = jqplot.ConvertDateFormat(a.DateFormat)
	}
	if format != "" || a.TickAngle != nil || a.FontSize != "" || a.ShowGridline != nil {
		axis.SetTickOptions(jqplot.NewTickOptions().
			SetShowGridline(optional.FromPtr(a.ShowGridline)).
			SetFormatString(optional.FromNonDefault(format)).
			SetAngle(optional.FromPtr(a.TickAngle)).
			SetFontSize(optional.FromNonDefault(a.FontSize)))
	}
	return axis, nil
}

func applySeries(s *jqplot.Series, def Series) error {
	renderer, err := lookupRenderer(def.Renderer)
	if err != nil {
		return err
	}
	s.SetLabel(optional.FromNonDefault(def.Label)).
		SetRenderer(renderer).
		SetColor(optional.FromPtr(def.Color)).
		SetLineWidth(optional.FromPtr(def.LineWidth)).
		SetShowLine(optional.FromPtr(def.ShowLine)).
		SetShowMarker(optional.FromPtr(def.ShowMarker)).
		SetFill(optional.FromPtr(def.Fill)).
		SetShadow(optional.FromPtr(def.Shadow))

	if def.XAxis != "" {
		t, err := jqplot.ParseAxisType(def.XAxis)
		if err != nil {
			return err
		}
		if _, err := s.SetXaxis(t); err != nil {
			return err
		}
	}
	if def.YAxis != "" {
		t, err := jqplot.ParseAxisType(def.YAxis)
		if err != nil {
			return err
		}
		if _, err := s.SetYaxis(t); err != nil {
			return err
		}
	}

	if m := def.Marker; m != nil {
		opts := jqplot.NewMarkerOptions().
			SetShow(optional.FromPtr(m.Show)).
			SetSize(optional.FromPtr(m.Size)).
			SetColor(optional.FromPtr(m.Color))
		if m.Style != "" {
			style, err := jqplot.ParsePointStyle(m.Style)
			if err != nil {
				return err
			}
			opts.SetStyle(style)
		}
		s.SetMarkerOptions(opts)
	}

	if bar := def.Bar; bar != nil {
		opts := jqplot.NewBarRendererOptions().
			SetBarWidth(optional.FromPtr(bar.Width)).
			SetBarPadding(optional.FromPtr(bar.Padding)).
			SetBarMargin(optional.FromPtr(bar.Margin)).
			SetVaryBarColor(optional.FromPtr(bar.VaryColor)).
			SetHighlightMouseOver(optional.FromPtr(bar.HighlightMouseOver))
		if bar.Direction != "" {
			dir, err := jqplot.ParseBarDirection(bar.Direction)
			if err != nil {
				return err
			}
			opts.SetBarDirection(dir)
		}
		for _, c := range bar.HighlightColors {
			opts.AddHighlightColor(c)
		}
		if renderer == nil {
			s.SetRenderer(jqplot.BarRenderer())
		}
		s.SetRendererOptions(opts)
	}
	return nil
}

func buildLegend(def Legend) (*jqplot.Legend, error) {
	l := jqplot.NewLegend().SetShow(optional.FromPtr(def.Show))
	if def.Location != "" {
		loc, err := jqplot.ParseLocation(def.Location)
		if err != nil {
			return nil, err
		}
		l.SetLocation(loc)
	}
	if def.Placement != "" {
		p, err := jqplot.ParseLegendPlacement(def.Placement)
		if err != nil {
			return nil, err
		}
		l.SetPlacement(p)
	}
	for _, label := range def.Labels {
		l.AddLabel(label)
	}
	if def.Renderer != "" {
		r, err := lookupRenderer(def.Renderer)
		if err != nil {
			return nil, err
		}
		l.SetRenderer(r)
	}
	return l, nil
}

func applyHighlighter(h *jqplot.Highlighter, def Highlighter) error {
	h.SetShow(optional.FromPtr(def.Show)).
		SetShowTooltip(optional.FromPtr(def.ShowTooltip)).
		SetFormatString(optional.FromNonDefault(def.FormatString)).
		SetSizeAdjust(optional.FromPtr(def.SizeAdjust))
	if def.TooltipAxes != "" {
		axes, err := jqplot.ParseTooltipAxes(def.TooltipAxes)
		if err != nil {
			return err
		}
		h.SetTooltipAxes(axes)
	}
	if def.TooltipLocation != "" {
		loc, err := jqplot.ParseLocation(def.TooltipLocation)
		if err != nil {
			return err
		}
		h.SetTooltipLocation(loc)
	}
	if def.TooltipEditor != "" {
		h.SetTooltipContentEditor(jqplot.NewTooltipContentEditor("", def.TooltipEditor))
	}
	return nil
}

func buildCursor(def Cursor) (*jqplot.Cursor, error) {
	c := jqplot.NewCursor().
		SetShow(optional.FromPtr(def.Show)).
		SetShowTooltip(optional.FromPtr(def.ShowTooltip)).
		SetZoom(optional.FromPtr(def.Zoom)).
		SetLooseZoom(optional.FromPtr(def.LooseZoom))
	if def.ConstrainZoomTo != "" {
		z, err := jqplot.ParseZoomConstraint(def.ConstrainZoomTo)
		if err != nil {
			return nil, err
		}
		c.SetConstrainZoomTo(z)
	}
	return c, nil
}

// applyGrid overlays explicit grid settings on whatever grid the theme
// produced.
func applyGrid(o *jqplot.Options, def Grid) {
	g := o.Grid()
	if def.DrawGridLines != nil {
		g.SetDrawGridLines(optional.FromPtr(def.DrawGridLines))
	}
	if def.GridLineColor != nil {
		g.SetGridLineColor(optional.FromPtr(def.GridLineColor))
	}
	if def.Background != nil {
		g.SetBackground(optional.FromPtr(def.Background))
	}
	if def.BorderWidth != nil {
		g.SetBorderWidth(optional.FromPtr(def.BorderWidth))
	}
	g.SetBorderColor(optional.FromPtr(def.BorderColor)).
		SetShadow(optional.FromPtr(def.Shadow))
}

// parseTheme reads CSS rules for the grid and series color classes. Rules
// for other selectors are ignored.
func parseTheme(rules []string) (jqplot.GridTheme, jqplot.SeriesColors, error) {
	grid, colors := jqplot.DefaultGridTheme, jqplot.DefaultSeriesColors
	for i, text := range rules {
		rule, err := jqplot.ParseCssRule(text)
		if err != nil {
			return grid, colors, fmt.Errorf("rule %d: %w", i, err)
		}
		switch {
		case strings.Contains(rule.Selector, jqplot.GridThemeClass):
			grid = jqplot.GridThemeFrom(rule)
		case strings.Contains(rule.Selector, jqplot.SeriesColorsClass):
			if colors, err = jqplot.SeriesColorsFrom(rule); err != nil {
				return grid, colors, fmt.Errorf("rule %d: %w", i, err)
			}
		}
	}
	return grid, colors, nil
}

func buildHook(chartID string, h Hook) (jqplot.Hook, error) {
	switch h.Event {
	case EventZoom:
		return jqplot.OnZoom(chartID, h.Code), nil
	case EventResetZoom:
		return jqplot.OnResetZoom(chartID, h.Code), nil
	case EventMouseDown:
		return jqplot.OnMouseDown(chartID, h.Code), nil
	case EventMouseUp:
		return jqplot.OnMouseUp(chartID, h.Code), nil
	case EventDblClick:
		return jqplot.OnDblClick(chartID, h.Code), nil
	case EventDestroyRedraw:
		if h.Code == "" {
			return jqplot.Hook{}, errors.NullArgument("plot variable")
		}
		return jqplot.DestroyRedraw(h.Code), nil
	}
	return jqplot.Hook{}, errors.New(errors.ErrCodeInvalidArgument, "unknown event %q", h.Event)
}
