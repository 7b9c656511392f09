package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// chartIDRegex matches ids usable both as DOM element ids and as file stems.
var chartIDRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_:.-]*$`)

// ValidateChartID validates the DOM id a chart is mounted into.
//
// The id is embedded verbatim in generated hook code such as
// $('#id').bind(...), so anything outside the id grammar is rejected.
func ValidateChartID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidChartID, "chart id cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidChartID, "chart id too long (max 128 characters)")
	}
	if !chartIDRegex.MatchString(id) {
		return New(ErrCodeInvalidChartID, "invalid chart id: %q", id)
	}
	return nil
}

// pluginNameRegex matches client script file names like jqplot.cursor.min.js.
var pluginNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*\.js$`)

// ValidatePluginName validates a plugin script identifier.
func ValidatePluginName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPlugin, "plugin name cannot be empty")
	}
	if !pluginNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPlugin, "invalid plugin name: %q", name)
	}
	return nil
}

// ValidatePath validates a relative path for safety.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
