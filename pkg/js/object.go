package js

import "strings"

// Property is a declared (key, value) pair. An empty Key marks a spliced
// fragment whose rendering already carries its own name.
type Property struct {
	Key   string
	Value Value
}

// Properties is an author-ordered property list. Order is output order.
// Add, Embed and Splice never write into the receiver's backing array, so
// several lists can grow from one shared base.
type Properties []Property

// Add appends key:value.
func (p Properties) Add(key string, v Value) Properties {
	return append(p.clip(), Property{Key: key, Value: v})
}

func (p Properties) clip() Properties { return p[:len(p):len(p)] }

// Embed appends a fragment rendered without a key, typically a named object
// such as title: {...}.
func (p Properties) Embed(v Value) Properties {
	return append(p.clip(), Property{Value: v})
}

// Splice appends the current properties of a decorator or other aggregator.
func (p Properties) Splice(a PropertyAggregator) Properties {
	if isNil(a) {
		return p
	}
	return append(p.clip(), a.Properties()...)
}

// Get returns the value declared under key.
func (p Properties) Get(key string) (Value, bool) {
	for _, prop := range p {
		if prop.Key == key && key != "" {
			return prop.Value, true
		}
	}
	return nil, false
}

// PropertyAggregator hands a batch of optional properties to a host object.
type PropertyAggregator interface {
	Properties() Properties
}

// RenderObject serializes an object from its declared properties.
//
// Absent values are skipped. When nothing remains the object itself is
// absent. Otherwise the output is name: {k:v,...}, or {k:v,...} for an
// empty name.
func RenderObject(name string, props Properties) (string, bool) {
	parts := make([]string, 0, len(props))
	for _, p := range props {
		s, ok := Render(p.Value)
		if !ok {
			continue
		}
		if p.Key == "" {
			parts = append(parts, s)
		} else {
			parts = append(parts, p.Key+":"+s)
		}
	}
	if len(parts) == 0 {
		return "", false
	}

	var b strings.Builder
	if name != "" {
		b.WriteString(name)
		b.WriteString(": ")
	}
	b.WriteByte('{')
	b.WriteString(strings.Join(parts, ","))
	b.WriteByte('}')
	return b.String(), true
}

// Object is a free-form named object whose properties are declared at run
// time, for trees assembled from configuration rather than option types.
type Object struct {
	name  string
	props Properties
}

// NewObject returns an empty object; an empty name renders a bare {...}.
func NewObject(name string) *Object {
	return &Object{name: name}
}

// Name returns the object name.
func (o *Object) Name() string { return o.name }

// Set declares key:value, replacing an earlier declaration of the same key
// in place so the original position is kept.
func (o *Object) Set(key string, v Value) *Object {
	for i := range o.props {
		if o.props[i].Key == key && key != "" {
			o.props[i].Value = v
			return o
		}
	}
	o.props = o.props.Add(key, v)
	return o
}

// Embed declares a spliced fragment.
func (o *Object) Embed(v Value) *Object {
	o.props = o.props.Embed(v)
	return o
}

// Properties returns a copy of the declared properties.
func (o *Object) Properties() Properties {
	return append(Properties(nil), o.props...)
}

func (o *Object) Render() (string, bool) {
	return RenderObject(o.name, o.props)
}
