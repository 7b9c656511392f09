package js

import (
	"reflect"
	"testing"
)

type fakeConsumer []string

func (f fakeConsumer) UsedPlugins() []string { return f }

func TestRegistryOrderAndDedup(t *testing.T) {
	r := NewRegistry("jqplot.cursor.min.js", "", "jqplot.cursor.min.js")
	r.Add("jqplot.highlighter.min.js", "jqplot.cursor.min.js")
	r.Attach(fakeConsumer{"jqplot.dateAxisRenderer.min.js", "jqplot.highlighter.min.js"}, nil)

	want := []string{"jqplot.cursor.min.js", "jqplot.highlighter.min.js", "jqplot.dateAxisRenderer.min.js"}
	if got := r.UsedPlugins(); !reflect.DeepEqual(got, want) {
		t.Errorf("UsedPlugins() = %v, want %v", got, want)
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
	if !r.Contains("jqplot.cursor.min.js") || r.Contains("x.js") {
		t.Error("Contains() mismatch")
	}
}

func TestRegistryAttachIsEager(t *testing.T) {
	child := NewRegistry("a.js")
	parent := NewRegistry().Attach(child)
	child.Add("b.js")

	if got := parent.UsedPlugins(); !reflect.DeepEqual(got, []string{"a.js"}) {
		t.Errorf("UsedPlugins() = %v, want [a.js]", got)
	}
}

func TestRegistryZeroValue(t *testing.T) {
	var r Registry
	if got := r.UsedPlugins(); got == nil || len(got) != 0 {
		t.Errorf("UsedPlugins() = %#v, want empty non-nil slice", got)
	}
	r.Add("a.js")
	if r.Len() != 1 {
		t.Errorf("Len() = %d", r.Len())
	}
	var nilRenderer *Renderer
	r.Attach(nilRenderer)
	if r.Len() != 1 {
		t.Error("attaching a nil consumer should be a no-op")
	}
}

func TestRenderer(t *testing.T) {
	r := NewRenderer("$.jqplot.CanvasAxisTickRenderer", "jqplot.canvasTextRenderer.min.js", "jqplot.canvasAxisTickRenderer.min.js")
	if got, ok := r.Render(); !ok || got != "$.jqplot.CanvasAxisTickRenderer" {
		t.Errorf("Render() = %s, %v", got, ok)
	}
	if r.Identifier() != "$.jqplot.CanvasAxisTickRenderer" {
		t.Errorf("Identifier() = %s", r.Identifier())
	}
	want := []string{"jqplot.canvasTextRenderer.min.js", "jqplot.canvasAxisTickRenderer.min.js"}
	if got := r.UsedPlugins(); !reflect.DeepEqual(got, want) {
		t.Errorf("UsedPlugins() = %v, want %v", got, want)
	}
}

func TestRendererOptions(t *testing.T) {
	o := NewRendererOptions("", "jqplot.barRenderer.min.js")
	if o.Name() != DefaultRendererOptionsName {
		t.Errorf("Name() = %s, want %s", o.Name(), DefaultRendererOptionsName)
	}
	o.AddPlugin(NewRenderer("$.jqplot.CategoryAxisRenderer", "jqplot.categoryAxisRenderer.min.js"))

	want := []string{"jqplot.barRenderer.min.js", "jqplot.categoryAxisRenderer.min.js"}
	if got := o.UsedPlugins(); !reflect.DeepEqual(got, want) {
		t.Errorf("UsedPlugins() = %v, want %v", got, want)
	}
	if got, _ := o.RenderProperties(Properties{}.Add("barWidth", NewDouble(5))); got != "rendererOptions: {barWidth:5.000}" {
		t.Errorf("RenderProperties() = %s", got)
	}
	var zero RendererOptions
	if zero.Name() != DefaultRendererOptionsName {
		t.Errorf("zero Name() = %s", zero.Name())
	}
}
