package export

import (
	"asciidraw/render"
	"asciidraw/store"
)

// TextExporter exports the visible shapes as plain text.
type TextExporter struct {
	// ASCII replaces box drawing and arrow glyphs with ASCII stand-ins.
	ASCII bool
	// Color wraps runs of colored cells in 24-bit ANSI escapes.
	Color bool
}

// NewTextExporter creates a new text exporter
func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

// Export composites the visible shapes over their combined extent.
func (e *TextExporter) Export(s *store.Store) ([]byte, error) {
	visible := s.VisibleShapes()
	if len(visible) == 0 {
		return nil, ErrEmpty
	}
	g := render.Compose(visible, render.Extent(visible))
	if g == nil {
		return nil, ErrEmpty
	}
	text := render.TrimLines(g.Lines())
	if e.Color {
		text = g.ColoredString()
	}
	if e.ASCII {
		text = render.ASCII(text)
	}
	return []byte(text + "\n"), nil
}

// GetFileExtension returns the file extension for text
func (e *TextExporter) GetFileExtension() string {
	return ".txt"
}

// GetFormatName returns the format name
func (e *TextExporter) GetFormatName() string {
	return "Text"
}

// GetContentType returns the MIME type
func (e *TextExporter) GetContentType() string {
	return "text/plain; charset=utf-8"
}
