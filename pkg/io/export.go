package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/chartscript/pkg/chartdef"
	"github.com/matzehuels/chartscript/pkg/errors"
)

// WriteDefinition encodes def to w. JSON output is indented.
func WriteDefinition(def *chartdef.Definition, w io.Writer, format Format) error {
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(def); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode toml")
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(def); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode json")
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
	}
	return nil
}

// ExportDefinition writes def to path in the format its extension selects.
func ExportDefinition(def *chartdef.Definition, path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "create %s", path)
	}
	defer f.Close()
	return WriteDefinition(def, f, format)
}
