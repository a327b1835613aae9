// Package export writes drawings out as text, JSON documents or PNG images.
package export

import (
	"errors"
	"fmt"

	"asciidraw/store"
)

// ErrEmpty is returned when a drawing has nothing visible to export.
var ErrEmpty = errors.New("nothing to export")

// Format represents an export format
type Format string

const (
	// FormatText exports the visible shapes as plain text
	FormatText Format = "text"
	// FormatJSON exports the persisted document
	FormatJSON Format = "json"
	// FormatPNG rasterizes the visible shapes, one monospace cell per grid cell
	FormatPNG Format = "png"
)

// Exporter interface for different export formats
type Exporter interface {
	// Export converts the drawing to the target format
	Export(s *store.Store) ([]byte, error)
	// GetFileExtension returns the recommended file extension for this format
	GetFileExtension() string
	// GetFormatName returns a human-readable name for this format
	GetFormatName() string
	// GetContentType returns the MIME type of the output
	GetContentType() string
}

// NewExporter creates an exporter for the specified format
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatText:
		return NewTextExporter(), nil
	case FormatJSON:
		return NewJSONExporter(), nil
	case FormatPNG:
		return NewPNGExporter()
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text", "txt", "ascii":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "png":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// GetAvailableFormats returns a list of all available export formats
func GetAvailableFormats() []Format {
	return []Format{
		FormatText,
		FormatJSON,
		FormatPNG,
	}
}

// GetFormatDescriptions returns human-readable descriptions of all formats
func GetFormatDescriptions() map[Format]string {
	return map[Format]string{
		FormatText: "Plain text, trailing spaces trimmed",
		FormatJSON: "Document JSON (the persisted format)",
		FormatPNG:  "PNG image, 10x20 pixels per cell",
	}
}
