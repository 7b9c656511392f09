package jqplot

import (
	"fmt"
	"strings"
)

// Hook is a piece of script appended after the plot is created. Hooks with
// the same ID are emitted once.
type Hook struct {
	ID   string
	Code string
}

// DestroyRedraw disables redrawing of the plot held in the client variable
// plotVar.
func DestroyRedraw(plotVar string) Hook {
	return Hook{ID: "destroyRedraw_hook", Code: fmt.Sprintf("%s.redraw=function(clear){return};", plotVar)}
}

// OnResetZoom runs fn when the cursor plugin resets the zoom of chartID.
func OnResetZoom(chartID, fn string) Hook {
	return Hook{
		ID:   "resetZoomEvent_hook",
		Code: fmt.Sprintf("$('#%s').bind('jqplotResetZoom',function(){%s});", chartID, fn),
	}
}

// OnZoom runs fn when the user zooms chartID.
func OnZoom(chartID, fn string) Hook {
	return Hook{
		ID:   "zoomEvent_hook",
		Code: fmt.Sprintf("$('#%s').bind('jqplotZoom',function(ev,gridpos,datapos,plot,cursor){%s});", chartID, fn),
	}
}

// OnMouseDown, OnMouseUp and OnDblClick bind fn to mouse events on a data
// point of chartID.

func OnMouseDown(chartID, fn string) Hook {
	return mouseBinding("mouseDownEvent_hook", "jqplotMouseDown", chartID, fn)
}

func OnMouseUp(chartID, fn string) Hook {
	return mouseBinding("mouseUpEvent_hook", "jqplotMouseUp", chartID, fn)
}

func OnDblClick(chartID, fn string) Hook {
	return mouseBinding("mouseDblClickEvent_hook", "jqplotDblClick", chartID, fn)
}

func mouseBinding(id, event, chartID, fn string) Hook {
	return Hook{
		ID:   id,
		Code: fmt.Sprintf("$('#%s').bind('%s',function(ev,seriesIndex,pointIndex,data){%s});", chartID, event, fn),
	}
}

// hookSet keeps hooks in first-added order, one per ID.
type hookSet struct {
	hooks []Hook
}

func (s *hookSet) add(h Hook) bool {
	if h.ID == "" {
		return false
	}
	for _, existing := range s.hooks {
		if existing.ID == h.ID {
			return false
		}
	}
	s.hooks = append(s.hooks, h)
	return true
}

func (s *hookSet) code() string {
	var b strings.Builder
	for _, h := range s.hooks {
		b.WriteString(h.Code)
	}
	return b.String()
}
