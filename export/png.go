package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"asciidraw/canvas"
	"asciidraw/core"
	"asciidraw/geometry"
	"asciidraw/render"
	"asciidraw/store"
)

const (
	cellW = int(geometry.CellWidth)
	cellH = int(geometry.CellHeight)
)

var (
	monoOnce sync.Once
	monoFont *opentype.Font
	monoErr  error
)

func loadMono() (*opentype.Font, error) {
	monoOnce.Do(func() {
		monoFont, monoErr = opentype.Parse(gomono.TTF)
	})
	return monoFont, monoErr
}

// PNGExporter rasterizes the visible shapes with Go Mono, one cell per
// grid cell.
type PNGExporter struct {
	face       font.Face
	Background color.Color
	Foreground color.Color
}

// NewPNGExporter creates a PNG exporter with black glyphs on white.
func NewPNGExporter() (*PNGExporter, error) {
	f, err := loadMono()
	if err != nil {
		return nil, fmt.Errorf("parse gomono: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    16,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return &PNGExporter{
		face:       face,
		Background: color.White,
		Foreground: color.Black,
	}, nil
}

// Export draws every non-empty cell and encodes the result.
func (e *PNGExporter) Export(s *store.Store) ([]byte, error) {
	visible := s.VisibleShapes()
	if len(visible) == 0 {
		return nil, ErrEmpty
	}
	g := render.Compose(visible, render.Extent(visible))
	if g == nil {
		return nil, ErrEmpty
	}
	img := e.Rasterize(g)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Rasterize paints a grid into an RGBA image.
func (e *PNGExporter) Rasterize(g *canvas.Grid) *image.RGBA {
	w, h := g.Size()
	img := image.NewRGBA(image.Rect(0, 0, w*cellW, h*cellH))
	draw.Draw(img, img.Bounds(), image.NewUniform(e.Background), image.Point{}, draw.Src)

	m := e.face.Metrics()
	// center the line box vertically inside the cell
	baseline := (cellH-(m.Ascent+m.Descent).Ceil())/2 + m.Ascent.Ceil()

	origin := g.Bounds().Min
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := g.Get(core.Point{X: origin.X + x, Y: origin.Y + y})
			if cell.Glyph == "" {
				continue
			}
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(e.cellColor(cell.Color)),
				Face: e.face,
				Dot:  fixed.P(x*cellW, y*cellH+baseline),
			}
			d.DrawString(e.printable(cell.Glyph))
		}
	}
	return img
}

func (e *PNGExporter) cellColor(c string) color.Color {
	if col, ok := canvas.ParseColor(c); ok {
		r, g, b := col.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return e.Foreground
}

// printable swaps runes the font lacks for their ASCII stand-ins.
func (e *PNGExporter) printable(glyph string) string {
	out := []rune(glyph)
	for i, r := range out {
		if _, ok := e.face.GlyphAdvance(r); ok {
			continue
		}
		if a, ok := render.ASCIIRune(r); ok {
			out[i] = a
		}
	}
	return string(out)
}

// GetFileExtension returns the file extension for PNG
func (e *PNGExporter) GetFileExtension() string {
	return ".png"
}

// GetFormatName returns the format name
func (e *PNGExporter) GetFormatName() string {
	return "PNG"
}

// GetContentType returns the MIME type
func (e *PNGExporter) GetContentType() string {
	return "image/png"
}
