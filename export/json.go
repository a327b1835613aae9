package export

import (
	"encoding/json"

	"asciidraw/store"
)

// JSONExporter exports the document in its persisted form
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export converts the document to indented JSON. Hidden shapes are kept.
func (e *JSONExporter) Export(s *store.Store) ([]byte, error) {
	data, err := json.MarshalIndent(s.Document(), "", "  ")
	if err != nil {
		return nil, err
	}
	return data, nil
}

// GetFileExtension returns the file extension for JSON
func (e *JSONExporter) GetFileExtension() string {
	return ".json"
}

// GetFormatName returns the format name
func (e *JSONExporter) GetFormatName() string {
	return "JSON"
}

// GetContentType returns the MIME type
func (e *JSONExporter) GetContentType() string {
	return "application/json"
}
