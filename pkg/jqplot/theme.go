package jqplot

import (
	"strconv"
	"strings"

	"github.com/matzehuels/chartscript/pkg/errors"
)

// CSS class names whose rules carry the theme.
const (
	GridThemeClass    = "jqplot-grid"
	SeriesColorsClass = "jqplot-series-styles"
)

// CssRule is a single parsed CSS rule. Declaration names are stored in
// lower case; the first declaration of a name wins.
type CssRule struct {
	Selector     string
	declarations map[string]string
}

// ParseCssRule parses "selector { name: value; ... }". Declarations that
// do not split into exactly one name and one value are ignored.
func ParseCssRule(text string) (*CssRule, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.NullArgument("css text")
	}
	selector, body, ok := strings.Cut(text, "{")
	selector = strings.TrimSpace(selector)
	if !ok || selector == "" {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "css rule %q has no selector block", text)
	}

	decls := make(map[string]string)
	body = strings.TrimSpace(strings.ReplaceAll(body, "}", ""))
	for _, pair := range strings.Split(body, ";") {
		parts := splitNonEmpty(pair, ":")
		if len(parts) != 2 {
			continue
		}
		key := strings.ToLower(parts[0])
		if _, exists := decls[key]; !exists {
			decls[key] = parts[1]
		}
	}
	return &CssRule{Selector: selector, declarations: decls}, nil
}

// Value returns the declaration value for name, ignoring case.
func (r *CssRule) Value(name string) (string, bool) {
	v, ok := r.declarations[strings.ToLower(name)]
	return v, ok
}

// Names returns the declared property names.
func (r *CssRule) Names() []string {
	names := make([]string, 0, len(r.declarations))
	for k := range r.declarations {
		names = append(names, k)
	}
	return names
}

// GridTheme is the themeable part of the grid.
type GridTheme struct {
	DrawGridLines bool
	Background    string
}

// DefaultGridTheme is used when no theme rule is available.
var DefaultGridTheme = GridTheme{DrawGridLines: true, Background: "#fffdf6"}

// GridThemeFrom reads -jqplot-drawGridlines and -jqplot-backgroundColor.
// A nil rule yields the default theme. A missing or malformed switch reads
// as false.
func GridThemeFrom(r *CssRule) GridTheme {
	if r == nil {
		return DefaultGridTheme
	}
	draw, _ := r.Value("-jqplot-drawGridlines")
	on, _ := strconv.ParseBool(draw)
	bg, _ := r.Value("-jqplot-backgroundColor")
	return GridTheme{DrawGridLines: on, Background: bg}
}

// SeriesColors is the color cycle applied to series.
type SeriesColors struct {
	Colors []string
}

// DefaultSeriesColors is used when no theme rule is available.
var DefaultSeriesColors = SeriesColors{Colors: []string{"red", "green"}}

// SeriesColorsFrom reads the comma separated -jqplot-seriescolors list,
// stripping quotes. A nil rule yields the defaults.
func SeriesColorsFrom(r *CssRule) (SeriesColors, error) {
	if r == nil {
		return DefaultSeriesColors, nil
	}
	v, _ := r.Value("-jqplot-seriescolors")
	if strings.TrimSpace(v) == "" {
		return SeriesColors{}, errors.NullArgument("-jqplot-seriescolors")
	}
	var colors []string
	for _, c := range splitNonEmpty(v, ",") {
		c = strings.NewReplacer("'", "", `"`, "").Replace(c)
		colors = append(colors, c)
	}
	return SeriesColors{Colors: colors}, nil
}

func splitNonEmpty(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
