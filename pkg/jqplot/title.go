package jqplot

import (
	"github.com/matzehuels/chartscript/pkg/js"
	"github.com/matzehuels/chartscript/pkg/optional"
)

// Title is the plot title. A zero Title renders nothing.
type Title struct {
	text            js.String
	show            js.Bool
	fontFamily      js.String
	fontSize        js.String
	textAlign       js.String
	textColor       js.Color
	renderer        *js.Renderer
	rendererOptions js.Value
	escapeHTML      js.Bool
}

// NewTitle returns a title showing text with HTML escaping enabled.
func NewTitle(text string) *Title {
	return &Title{text: js.NewString(text), escapeHTML: js.True}
}

func (t *Title) SetText(v optional.Option[string]) *Title {
	t.text = js.StringOf(v)
	return t
}

func (t *Title) SetShow(v optional.Option[bool]) *Title {
	t.show = js.BoolOf(v)
	return t
}

func (t *Title) SetFontFamily(v optional.Option[string]) *Title {
	t.fontFamily = js.StringOf(v)
	return t
}

func (t *Title) SetFontSize(v optional.Option[string]) *Title {
	t.fontSize = js.StringOf(v)
	return t
}

// SetTextAlign takes a CSS text-align value.
func (t *Title) SetTextAlign(v optional.Option[string]) *Title {
	t.textAlign = js.StringOf(v)
	return t
}

func (t *Title) SetTextColor(v optional.Option[string]) *Title {
	t.textColor = js.ColorOf(v)
	return t
}

func (t *Title) SetRenderer(r *js.Renderer) *Title {
	t.renderer = r
	return t
}

func (t *Title) SetRendererOptions(o js.Value) *Title {
	t.rendererOptions = o
	return t
}

// SetEscapeHTML controls whether the client escapes the title text.
func (t *Title) SetEscapeHTML(v optional.Option[bool]) *Title {
	t.escapeHTML = js.BoolOf(v)
	return t
}

func (t *Title) Render() (string, bool) {
	return js.RenderObject("title", js.Properties{}.
		Add("text", t.text).
		Add("show", t.show).
		Add("fontFamily", t.fontFamily).
		Add("fontSize", t.fontSize).
		Add("textAlign", t.textAlign).
		Add("textColor", t.textColor).
		Add("renderer", t.renderer).
		Embed(t.rendererOptions).
		Add("escapeHtml", t.escapeHTML))
}
