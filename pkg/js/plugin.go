package js

// PluginConsumer is anything that requires client script files.
type PluginConsumer interface {
	UsedPlugins() []string
}

// Registry is an ordered set of plugin script identifiers. Order is first
// seen; duplicates are ignored. The zero value is ready to use.
type Registry struct {
	names []string
	seen  map[string]struct{}
}

// NewRegistry returns a registry holding names.
func NewRegistry(names ...string) *Registry {
	r := &Registry{}
	return r.Add(names...)
}

// Add records script identifiers; empty names are ignored.
func (r *Registry) Add(names ...string) *Registry {
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, ok := r.seen[n]; ok {
			continue
		}
		if r.seen == nil {
			r.seen = make(map[string]struct{})
		}
		r.seen[n] = struct{}{}
		r.names = append(r.names, n)
	}
	return r
}

// Attach copies the consumer's currently resolved plugin list into r.
// Later changes to the consumer are not observed.
func (r *Registry) Attach(consumers ...PluginConsumer) *Registry {
	for _, c := range consumers {
		if isNil(c) {
			continue
		}
		r.Add(c.UsedPlugins()...)
	}
	return r
}

// UsedPlugins returns a copy of the ordered list.
func (r *Registry) UsedPlugins() []string {
	return append([]string{}, r.names...)
}

// Len returns the number of distinct plugins.
func (r *Registry) Len() int { return len(r.names) }

// Contains reports whether name has been recorded.
func (r *Registry) Contains(name string) bool {
	_, ok := r.seen[name]
	return ok
}
