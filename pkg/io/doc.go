// Package io reads and writes chart definition files.
//
// # Formats
//
// Definitions are stored as TOML or JSON. The format is chosen from the
// file extension by [FormatOf]: ".toml" selects TOML, ".json" selects JSON.
// Both encode the same [chartdef.Definition]; TOML keys are snake_case,
// JSON keys camelCase:
//
//	id = "incidents"
//	title = "Incident date"
//
//	[[data]]
//	kind = "timeline"
//	points = [[2010-10-20, 3.5], [2010-10-21, 5.0]]
//
//	{"id": "incidents", "title": "Incident date",
//	 "data": [{"kind": "timeline", "points": [["2010-10-20", 3.5]]}]}
//
// TOML has native dates; JSON carries them as strings that
// [chartdef.Definition.Build] parses.
//
// # Import
//
// Use [ImportDefinition] to read a file, or [ReadDefinition] to decode from
// any io.Reader:
//
//	def, err := io.ImportDefinition("incidents.toml")
//	if err != nil {
//	    return err
//	}
//
// Decoding failures are returned as INVALID_FORMAT errors naming the
// source. A missing file yields FILE_NOT_FOUND.
//
// # Export
//
// Use [ExportDefinition] to write a file, or [WriteDefinition] to encode to
// any io.Writer. Export followed by import yields an equal definition.
package io
