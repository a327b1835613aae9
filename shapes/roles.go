package shapes

import (
	"asciidraw/canvas"
	"asciidraw/core"
)

// Role is the part of a shape a glyph belongs to. It selects which of the
// shape's colors paints the glyph.
type Role int

const (
	RoleText Role = iota
	RoleBorder
	RoleFill
	RoleShadow
)

// String implements fmt.Stringer.
func (r Role) String() string {
	switch r {
	case RoleBorder:
		return "border"
	case RoleFill:
		return "fill"
	case RoleShadow:
		return "shadow"
	}
	return "text"
}

// GlyphRole classifies glyph against the features enabled in s. Glyphs of
// settings-free kinds are text.
func GlyphRole(s Settings, glyph string) Role {
	if glyph == core.ShadowGlyph {
		return RoleShadow
	}
	switch v := s.(type) {
	case RectangleSettings:
		return boxRole(v.BoxSettings, glyph, canvas.GetBorderStyle(v.BorderStyle).Glyphs())
	case DiamondSettings:
		edges := []rune{canvas.DiamondTop, canvas.DiamondBottom, canvas.DiamondSingle,
			canvas.DiamondRisingEdge, canvas.DiamondFallingEdge}
		return boxRole(v.BoxSettings, glyph, edges)
	case TextSettings:
		if v.ShowBorder && containsGlyph(canvas.GetBorderStyle(canvas.BorderSingle).Glyphs(), glyph) {
			return RoleBorder
		}
	case LineSettings:
		return RoleBorder
	}
	return RoleText
}

func boxRole(b BoxSettings, glyph string, border []rune) Role {
	if b.ShowBorder && containsGlyph(border, glyph) {
		return RoleBorder
	}
	if b.ShowFill && glyph == b.Fill() {
		return RoleFill
	}
	return RoleText
}

func containsGlyph(runes []rune, glyph string) bool {
	for _, r := range runes {
		if string(r) == glyph {
			return true
		}
	}
	return false
}
