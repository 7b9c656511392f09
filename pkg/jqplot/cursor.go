package jqplot

import (
	"github.com/matzehuels/chartscript/pkg/js"
	"github.com/matzehuels/chartscript/pkg/optional"
)

// Cursor configures the cursor plugin: zooming and the position tooltip.
type Cursor struct {
	show               js.Bool
	showTooltip        js.Bool
	zoom               js.Bool
	clickReset         js.Bool
	dblClickReset      js.Bool
	constrainZoomTo    js.String
	looseZoom          js.Bool
	followMouse        js.Bool
	showVerticalLine   js.Bool
	showHorizontalLine js.Bool
}

func NewCursor() *Cursor { return &Cursor{} }

func (c *Cursor) SetShow(v optional.Option[bool]) *Cursor {
	c.show = js.BoolOf(v)
	return c
}

func (c *Cursor) SetShowTooltip(v optional.Option[bool]) *Cursor {
	c.showTooltip = js.BoolOf(v)
	return c
}

func (c *Cursor) SetZoom(v optional.Option[bool]) *Cursor {
	c.zoom = js.BoolOf(v)
	return c
}

func (c *Cursor) SetClickReset(v optional.Option[bool]) *Cursor {
	c.clickReset = js.BoolOf(v)
	return c
}

func (c *Cursor) SetDblClickReset(v optional.Option[bool]) *Cursor {
	c.dblClickReset = js.BoolOf(v)
	return c
}

func (c *Cursor) SetConstrainZoomTo(z ZoomConstraint) *Cursor {
	c.constrainZoomTo = js.NonEmptyString(string(z))
	return c
}

// SetLooseZoom rounds zoom bounds to nice tick values.
func (c *Cursor) SetLooseZoom(v optional.Option[bool]) *Cursor {
	c.looseZoom = js.BoolOf(v)
	return c
}

func (c *Cursor) SetFollowMouse(v optional.Option[bool]) *Cursor {
	c.followMouse = js.BoolOf(v)
	return c
}

func (c *Cursor) SetShowVerticalLine(v optional.Option[bool]) *Cursor {
	c.showVerticalLine = js.BoolOf(v)
	return c
}

func (c *Cursor) SetShowHorizontalLine(v optional.Option[bool]) *Cursor {
	c.showHorizontalLine = js.BoolOf(v)
	return c
}

func (c *Cursor) Render() (string, bool) {
	return js.RenderObject("cursor", js.Properties{}.
		Add("show", c.show).
		Add("showTooltip", c.showTooltip).
		Add("zoom", c.zoom).
		Add("clickReset", c.clickReset).
		Add("dblClickReset", c.dblClickReset).
		Add("constrainZoomTo", c.constrainZoomTo).
		Add("looseZoom", c.looseZoom).
		Add("followMouse", c.followMouse).
		Add("showVerticalLine", c.showVerticalLine).
		Add("showHorizontalLine", c.showHorizontalLine))
}

// UsedPlugins always reports the cursor plugin.
func (c *Cursor) UsedPlugins() []string {
	return []string{PluginCursor}
}
