package canvas

// BorderStyle defines the characters used to draw a box outline.
type BorderStyle struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

// Named border styles.
const (
	BorderSingle  = "single"
	BorderDouble  = "double"
	BorderRounded = "rounded"
	BorderDashed  = "dashed"
	BorderHeavy   = "heavy"
	BorderMixed   = "mixed"
	BorderASCII   = "ascii"
	BorderDotted  = "dotted"
)

// BorderStyles is the table of available box styles.
var BorderStyles = map[string]BorderStyle{
	BorderSingle: {
		TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
		Horizontal: '─', Vertical: '│',
	},
	BorderDouble: {
		TopLeft: '╔', TopRight: '╗', BottomLeft: '╚', BottomRight: '╝',
		Horizontal: '═', Vertical: '║',
	},
	BorderRounded: {
		TopLeft: '╭', TopRight: '╮', BottomLeft: '╰', BottomRight: '╯',
		Horizontal: '─', Vertical: '│',
	},
	BorderDashed: {
		TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
		Horizontal: '╌', Vertical: '╎',
	},
	BorderHeavy: {
		TopLeft: '┏', TopRight: '┓', BottomLeft: '┗', BottomRight: '┛',
		Horizontal: '━', Vertical: '┃',
	},
	// double horizontals, single verticals
	BorderMixed: {
		TopLeft: '╒', TopRight: '╕', BottomLeft: '╘', BottomRight: '╛',
		Horizontal: '═', Vertical: '│',
	},
	BorderASCII: {
		TopLeft: '+', TopRight: '+', BottomLeft: '+', BottomRight: '+',
		Horizontal: '-', Vertical: '|',
	},
	BorderDotted: {
		TopLeft: '·', TopRight: '·', BottomLeft: '·', BottomRight: '·',
		Horizontal: '·', Vertical: '┊',
	},
}

// GetBorderStyle returns the named style, falling back to single.
func GetBorderStyle(name string) BorderStyle {
	if style, ok := BorderStyles[name]; ok {
		return style
	}
	return BorderStyles[BorderSingle]
}

// LineStyle defines the body glyphs of a straight line per direction bucket.
type LineStyle struct {
	Horizontal rune
	Vertical   rune
	// DiagonalDown runs top-left to bottom-right, DiagonalUp bottom-left to top-right.
	DiagonalDown rune
	DiagonalUp   rune
}

// LineStyles is the table of available line styles.
var LineStyles = map[string]LineStyle{
	"solid":  {Horizontal: '─', Vertical: '│', DiagonalDown: '\\', DiagonalUp: '/'},
	"dashed": {Horizontal: '╌', Vertical: '╎', DiagonalDown: '\\', DiagonalUp: '/'},
	"double": {Horizontal: '═', Vertical: '║', DiagonalDown: '\\', DiagonalUp: '/'},
	"heavy":  {Horizontal: '━', Vertical: '┃', DiagonalDown: '╲', DiagonalUp: '╱'},
	"ascii":  {Horizontal: '-', Vertical: '|', DiagonalDown: '\\', DiagonalUp: '/'},
	"dotted": {Horizontal: '·', Vertical: '·', DiagonalDown: '·', DiagonalUp: '·'},
}

// GetLineStyle returns the named line style, falling back to solid.
func GetLineStyle(name string) LineStyle {
	if style, ok := LineStyles[name]; ok {
		return style
	}
	return LineStyles["solid"]
}

// Direction is one of the eight compass directions a line end can point to.
type Direction int

const (
	DirRight Direction = iota
	DirDownRight
	DirDown
	DirDownLeft
	DirLeft
	DirUpLeft
	DirUp
	DirUpRight
)

// CapStyle gives the glyph drawn at a line end for each direction.
type CapStyle [8]rune

// Glyph returns the cap glyph pointing in direction d.
func (c CapStyle) Glyph(d Direction) rune {
	return c[d]
}

// CapStyles is the table of available line end caps. "none" draws nothing.
var CapStyles = map[string]CapStyle{
	"arrow":    {'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'},
	"triangle": {'▶', '◢', '▼', '◣', '◀', '◤', '▲', '◥'},
	"simple":   {'>', '\\', 'v', '/', '<', '\\', '^', '/'},
	"dot":      {'●', '●', '●', '●', '●', '●', '●', '●'},
	"circle":   {'○', '○', '○', '○', '○', '○', '○', '○'},
	"diamond":  {'◆', '◆', '◆', '◆', '◆', '◆', '◆', '◆'},
}

// GetCapStyle returns the named cap style and whether a cap should be drawn.
func GetCapStyle(name string) (CapStyle, bool) {
	style, ok := CapStyles[name]
	return style, ok
}

// Diamond edge and point glyphs.
const (
	DiamondTop         = '^'
	DiamondBottom      = 'v'
	DiamondSingle      = '◇'
	DiamondRisingEdge  = '/'
	DiamondFallingEdge = '\\'
)

// Glyphs returns every rune the style draws.
func (s BorderStyle) Glyphs() []rune {
	return []rune{s.TopLeft, s.TopRight, s.BottomLeft, s.BottomRight, s.Horizontal, s.Vertical}
}

// Glyphs returns every rune the style draws.
func (s LineStyle) Glyphs() []rune {
	return []rune{s.Horizontal, s.Vertical, s.DiagonalDown, s.DiagonalUp}
}
