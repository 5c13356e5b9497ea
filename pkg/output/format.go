package output

import (
	"strings"

	"github.com/darthunder/bases/pkg/errors"
)

// Format selects how data is printed
type Format string

const (
	// FormatBox draws box tables and record boxes
	FormatBox Format = "box"
	// FormatJSON prints indented JSON
	FormatJSON Format = "json"
	// FormatYAML prints a YAML document
	FormatYAML Format = "yaml"
	// FormatXML prints an XML document
	FormatXML Format = "xml"
)

// Formats lists every supported format in help order
var Formats = []Format{FormatBox, FormatJSON, FormatYAML, FormatXML}

// String returns the format name
func (f Format) String() string { return string(f) }

// ParseFormat parses a format name; the empty string means box.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "box", "table":
		return FormatBox, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xml":
		return FormatXML, nil
	default:
		return FormatBox, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
			WithDetail("format", s)
	}
}
