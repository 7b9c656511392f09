// Package chartdef describes charts declaratively and turns them into
// renderable plots.
//
// A [Definition] is the decoded form of a chart file. Files are TOML or
// JSON; see package io for reading and writing them. A minimal TOML
// definition:
//
//	id = "incidents"
//	title = "Incident date"
//
//	[[axes]]
//	type = "xaxis"
//	renderer = "date"
//	date_format = "dd.MM.yyyy"
//
//	[[data]]
//	kind = "timeline"
//	format = "date"
//	values = "integer"
//	points = [[2010-10-20, 3], [2010-10-21, 5]]
//
// [Definition.Build] validates the definition and returns a [jqplot.Plot].
// Names of renderers, axes, point styles and locations are checked against
// the closed sets known to package jqplot; unknown names fail with
// INVALID_ARGUMENT.
//
// # Attributes
//
// The attributes table carries free-form settings for consumers of a
// definition, such as the preview page size. [Attribute] looks a value up
// with an expected type and fails with TYPE_MISMATCH when the decoded value
// has a different one.
package chartdef
