package js

import (
	"github.com/matzehuels/chartscript/pkg/errors"
	"github.com/matzehuels/chartscript/pkg/optional"
)

// decorator holds the back-reference every property group keeps to its
// host. The host owns the decorator, never the other way round.
type decorator[T any] struct {
	host T
}

func newDecorator[T any](host T, kind string) (decorator[T], error) {
	if isNil(host) {
		return decorator[T]{}, errors.NullArgument(kind + " host")
	}
	return decorator[T]{host: host}, nil
}

// Must unwraps a decorator constructor result, panicking on error. Hosts use
// it while constructing themselves, where the host is never nil.
func Must[D any](d D, err error) D {
	if err != nil {
		panic(err)
	}
	return d
}

// =============================================================================
// Shadow
// =============================================================================

// Shadow is the shadow property group: shadow, shadowAlpha, shadowAngle,
// shadowDepth, shadowOffset.
type Shadow[T any] struct {
	decorator[T]
	shadow       Bool
	shadowAlpha  String
	shadowAngle  Double
	shadowDepth  Int
	shadowOffset Int
}

// NewShadow returns a shadow group bound to host.
func NewShadow[T any](host T) (*Shadow[T], error) {
	d, err := newDecorator(host, "shadow")
	if err != nil {
		return nil, err
	}
	return &Shadow[T]{decorator: d}, nil
}

// SetShadow toggles the shadow.
func (s *Shadow[T]) SetShadow(v optional.Option[bool]) T {
	s.shadow = BoolOf(v)
	return s.host
}

// SetShadowAlpha sets the shadow opacity, e.g. "0.07".
func (s *Shadow[T]) SetShadowAlpha(v optional.Option[string]) T {
	s.shadowAlpha = StringOf(v)
	return s.host
}

// SetShadowAngle sets the shadow angle in degrees.
func (s *Shadow[T]) SetShadowAngle(v optional.Option[float64]) T {
	s.shadowAngle = DoubleOf(v)
	return s.host
}

// SetShadowDepth sets the number of strokes making up the shadow.
func (s *Shadow[T]) SetShadowDepth(v optional.Option[int]) T {
	s.shadowDepth = IntOf(v)
	return s.host
}

// SetShadowOffset sets the offset of each shadow stroke.
func (s *Shadow[T]) SetShadowOffset(v optional.Option[int]) T {
	s.shadowOffset = IntOf(v)
	return s.host
}

func (s *Shadow[T]) Properties() Properties {
	return Properties{}.
		Add("shadow", s.shadow).
		Add("shadowAlpha", s.shadowAlpha).
		Add("shadowAngle", s.shadowAngle).
		Add("shadowDepth", s.shadowDepth).
		Add("shadowOffset", s.shadowOffset)
}

// =============================================================================
// Label
// =============================================================================

// Label is the text label property group shared by tick and axis label
// options.
type Label[T any] struct {
	decorator[T]
	showLabel    Bool
	fontFamily   String
	fontSize     String
	formatString String
	angle        Int
	textColor    Color
	escapeHTML   Bool
}

// NewLabel returns a label group bound to host.
func NewLabel[T any](host T) (*Label[T], error) {
	d, err := newDecorator(host, "label")
	if err != nil {
		return nil, err
	}
	return &Label[T]{decorator: d}, nil
}

func (l *Label[T]) SetShowLabel(v optional.Option[bool]) T {
	l.showLabel = BoolOf(v)
	return l.host
}

func (l *Label[T]) SetFontFamily(v optional.Option[string]) T {
	l.fontFamily = StringOf(v)
	return l.host
}

// SetFontSize takes a CSS size such as "10pt".
func (l *Label[T]) SetFontSize(v optional.Option[string]) T {
	l.fontSize = StringOf(v)
	return l.host
}

// SetFormatString takes a sprintf-style format applied client side.
func (l *Label[T]) SetFormatString(v optional.Option[string]) T {
	l.formatString = StringOf(v)
	return l.host
}

// SetAngle rotates the text; only honored by canvas renderers.
func (l *Label[T]) SetAngle(v optional.Option[int]) T {
	l.angle = IntOf(v)
	return l.host
}

func (l *Label[T]) SetTextColor(v optional.Option[string]) T {
	l.textColor = ColorOf(v)
	return l.host
}

func (l *Label[T]) SetEscapeHTML(v optional.Option[bool]) T {
	l.escapeHTML = BoolOf(v)
	return l.host
}

func (l *Label[T]) Properties() Properties {
	return Properties{}.
		Add("showLabel", l.showLabel).
		Add("fontFamily", l.fontFamily).
		Add("fontSize", l.fontSize).
		Add("formatString", l.formatString).
		Add("angle", l.angle).
		Add("textColor", l.textColor).
		Add("escapeHTML", l.escapeHTML)
}

// =============================================================================
// Highlighting
// =============================================================================

// Highlighting is the mouse highlighting property group of series renderers.
type Highlighting[T any] struct {
	decorator[T]
	highlightMouseOver Bool
	highlightMouseDown Bool
}

// NewHighlighting returns a highlighting group bound to host.
func NewHighlighting[T any](host T) (*Highlighting[T], error) {
	d, err := newDecorator(host, "highlighting")
	if err != nil {
		return nil, err
	}
	return &Highlighting[T]{decorator: d}, nil
}

// SetHighlightMouseOver highlights the hovered slice or bar.
func (h *Highlighting[T]) SetHighlightMouseOver(v optional.Option[bool]) T {
	h.highlightMouseOver = BoolOf(v)
	return h.host
}

// SetHighlightMouseDown highlights on mouse down; disables mouse over.
func (h *Highlighting[T]) SetHighlightMouseDown(v optional.Option[bool]) T {
	h.highlightMouseDown = BoolOf(v)
	return h.host
}

func (h *Highlighting[T]) Properties() Properties {
	return Properties{}.
		Add("highlightMouseOver", h.highlightMouseOver).
		Add("highlightMouseDown", h.highlightMouseDown)
}
