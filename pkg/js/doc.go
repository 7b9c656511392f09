// Package js renders typed option trees as JavaScript object-literal source.
//
// The output grammar is JavaScript-literal-like, not JSON: identifiers are
// emitted unquoted, doubles always carry exactly three decimals, and a named
// object renders as a complete "name: {...}" fragment that its parent splices
// in verbatim.
//
// # Values
//
// A [Value] renders itself or reports that it is absent:
//
//	s, ok := js.NewString("Incident date").Render() // `"Incident date"`, true
//	_, ok = js.String{}.Render()                     // "", false
//
// Absent values contribute nothing to their parent. The primitives are
// [String], [Bool], [Int], [Double], [DateTime], [Identifier] and [Color];
// each wraps an [optional.Option] and is absent when the option is None.
//
// # Objects
//
// [RenderObject] is the serializer. It takes an object name and the
// author-declared property list, skips absent values and returns absent when
// nothing is left:
//
//	js.RenderObject("title", js.Properties{}.
//	    Add("text", js.NewString("Incident date")).
//	    Add("escapeHtml", js.True))
//	// title: {text:"Incident date",escapeHtml:true}
//
// A property with an empty key is a spliced fragment: the value's rendering
// is inserted without a "key:" prefix. This is how nested named objects are
// composed. An empty object name yields a bare "{...}".
//
// # Arrays
//
// [Array] is an ordered sequence that drops nil and null entries on insertion
// and always renders, "[]" when empty.
//
// # Decorators
//
// [Shadow], [Label] and [Highlighting] share a closed property group across
// unrelated host types. A host embeds the decorator, the decorator's setters
// return the host, and the host splices the decorator's [Properties] into its
// own property list at a position of its choosing.
//
// # Plugins
//
// A [Registry] is an ordered, deduplicated list of client script files.
// Attaching a [PluginConsumer] copies its resolved list at that moment.
// [Renderer] and [RendererOptions] pair a rendered value with a registry.
package js
