package js

// Renderer references a client-side class to instantiate, together with the
// script files that class needs.
type Renderer struct {
	id      Identifier
	plugins Registry
}

// NewRenderer returns a reference to identifier requiring plugins.
func NewRenderer(identifier string, plugins ...string) *Renderer {
	r := &Renderer{id: NewIdentifier(identifier)}
	r.plugins.Add(plugins...)
	return r
}

// Identifier returns the raw JavaScript reference.
func (r *Renderer) Identifier() string {
	return Literal(r.id, "")
}

func (r *Renderer) Render() (string, bool) { return r.id.Render() }

// UsedPlugins returns the renderer's script files.
func (r *Renderer) UsedPlugins() []string { return r.plugins.UsedPlugins() }

// DefaultRendererOptionsName is the object name renderer configuration
// objects use unless they declare their own.
const DefaultRendererOptionsName = "rendererOptions"

// RendererOptions is the shared base of renderer configuration objects.
// Hosts embed it, declare their properties, and render through
// [RendererOptions.RenderProperties]:
//
//	type MarkerOptions struct {
//	    js.RendererOptions
//	    style js.String
//	}
//
//	func (m *MarkerOptions) Render() (string, bool) {
//	    return m.RenderProperties(js.Properties{}.Add("style", m.style))
//	}
type RendererOptions struct {
	name    string
	plugins Registry
}

// NewRendererOptions returns a base named name, or "rendererOptions" when
// name is empty.
func NewRendererOptions(name string, plugins ...string) RendererOptions {
	if name == "" {
		name = DefaultRendererOptionsName
	}
	o := RendererOptions{name: name}
	o.plugins.Add(plugins...)
	return o
}

// Name returns the object name.
func (o *RendererOptions) Name() string {
	if o.name == "" {
		return DefaultRendererOptionsName
	}
	return o.name
}

// RenderProperties renders props under the options' name.
func (o *RendererOptions) RenderProperties(props Properties) (string, bool) {
	return RenderObject(o.Name(), props)
}

// AddPlugin attaches a consumer's plugins eagerly.
func (o *RendererOptions) AddPlugin(c PluginConsumer) {
	o.plugins.Attach(c)
}

// UsedPlugins returns the plugins recorded so far.
func (o *RendererOptions) UsedPlugins() []string { return o.plugins.UsedPlugins() }
