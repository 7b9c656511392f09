package js

import (
	"testing"

	"github.com/matzehuels/chartscript/pkg/errors"
	"github.com/matzehuels/chartscript/pkg/optional"
)

// markerHost mirrors how option types compose a renderer base with
// property groups.
type markerHost struct {
	RendererOptions
	*Shadow[*markerHost]
	*Highlighting[*markerHost]
	style String
}

func newMarkerHost() *markerHost {
	m := &markerHost{RendererOptions: NewRendererOptions("markerOptions")}
	m.Shadow = Must(NewShadow(m))
	m.Highlighting = Must(NewHighlighting(m))
	return m
}

func (m *markerHost) setStyle(s string) *markerHost {
	m.style = NewString(s)
	return m
}

func (m *markerHost) Render() (string, bool) {
	return m.RenderProperties(Properties{}.
		Add("style", m.style).
		Splice(m.Shadow).
		Splice(m.Highlighting))
}

type tickHost struct {
	*Label[*tickHost]
	show Bool
}

func (h *tickHost) Render() (string, bool) {
	return RenderObject("tickOptions", Properties{}.Add("show", h.show).Splice(h.Label))
}

func TestShadowDecorator(t *testing.T) {
	m := newMarkerHost()
	m.SetShadow(optional.Some(true))
	if got, _ := m.Render(); got != "markerOptions: {shadow:true}" {
		t.Errorf("Render() = %s", got)
	}

	m.SetShadow(optional.Some(false))
	if got, _ := m.Render(); got != "markerOptions: {shadow:false}" {
		t.Errorf("Render() = %s", got)
	}

	m.SetShadow(optional.None[bool]())
	if got, ok := m.Render(); ok {
		t.Errorf("Render() = %s, want absent", got)
	}

	m.SetShadow(optional.Some(true)).
		SetShadowAlpha(optional.Some("0.07")).
		SetShadowAngle(optional.Some(10.0)).
		SetShadowDepth(optional.Some(5)).
		SetShadowOffset(optional.Some(7))
	want := `markerOptions: {shadow:true,shadowAlpha:"0.07",shadowAngle:10.000,shadowDepth:5,shadowOffset:7}`
	if got, _ := m.Render(); got != want {
		t.Errorf("Render() = %s, want %s", got, want)
	}
}

func TestSettersReturnHost(t *testing.T) {
	m := newMarkerHost()
	got := m.SetShadowDepth(optional.Some(3)).setStyle("circle").SetHighlightMouseOver(optional.Some(true))
	if got != m {
		t.Fatal("decorator setters must return the host")
	}
	want := `markerOptions: {style:"circle",shadowDepth:3,highlightMouseOver:true}`
	if s, _ := m.Render(); s != want {
		t.Errorf("Render() = %s, want %s", s, want)
	}
}

func TestLabelDecorator(t *testing.T) {
	h := &tickHost{}
	h.Label = Must(NewLabel(h))

	h.SetEscapeHTML(optional.Some(true)).
		SetAngle(optional.Some(-30)).
		SetTextColor(optional.Some("")).
		SetFontSize(optional.Some("10pt")).
		SetFormatString(optional.Some("%d")).
		SetFontFamily(optional.Some("Arial")).
		SetShowLabel(optional.Some(true))

	want := `tickOptions: {showLabel:true,fontFamily:"Arial",fontSize:"10pt",formatString:"%d",angle:-30,textColor:"transparent",escapeHTML:true}`
	if got, _ := h.Render(); got != want {
		t.Errorf("Render() = %s, want %s", got, want)
	}
}

func TestDecoratorRequiresHost(t *testing.T) {
	var nilHost *markerHost

	if _, err := NewShadow(nilHost); !errors.Is(err, errors.ErrCodeNullArgument) {
		t.Errorf("NewShadow(nil) error = %v, want NULL_ARGUMENT", err)
	}
	if _, err := NewLabel[*tickHost](nil); !errors.Is(err, errors.ErrCodeNullArgument) {
		t.Errorf("NewLabel(nil) error = %v, want NULL_ARGUMENT", err)
	}
	if _, err := NewHighlighting(nilHost); !errors.Is(err, errors.ErrCodeNullArgument) {
		t.Errorf("NewHighlighting(nil) error = %v, want NULL_ARGUMENT", err)
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must should panic on error")
		}
	}()
	var nilHost *markerHost
	Must(NewShadow(nilHost))
}
