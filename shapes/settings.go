// Package shapes generates the cell maps of the drawable shape types.
//
// Every geometry type has a typed settings record that is the source of
// truth for its cells: calling the type's Generator with the shape's bounds
// and settings reproduces its cell map exactly.
package shapes

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"asciidraw/canvas"
	"asciidraw/core"
)

// Kind is the type tag of a shape.
type Kind string

// Built-in shape kinds.
const (
	KindRectangle Kind = "rectangle"
	KindDiamond   Kind = "diamond"
	KindLine      Kind = "line"
	KindText      Kind = "text"
	KindPencil    Kind = "pencil"
	KindImage     Kind = "image"
)

// ErrUnknownKind is returned when no generator or settings type is
// registered for a kind.
var ErrUnknownKind = errors.New("unknown shape kind")

// DefaultFillChar is used when a fill is enabled without a usable character.
const DefaultFillChar = "█"

// Settings is the tagged union of per-kind tool settings.
type Settings interface {
	Kind() Kind
}

// Translator is implemented by settings that store absolute grid positions
// and must move with the shape.
type Translator interface {
	Translate(d core.Point) Settings
}

// BoxSettings configures rectangles and diamonds.
type BoxSettings struct {
	BorderStyle string        `json:"borderStyle"`
	ShowBorder  bool          `json:"showBorder"`
	ShowFill    bool          `json:"showFill"`
	FillChar    string        `json:"fillChar,omitempty"`
	ShowShadow  bool          `json:"showShadow"`
	Text        string        `json:"text,omitempty"`
	AlignH      canvas.HAlign `json:"textAlign,omitempty"`
	AlignV      canvas.VAlign `json:"verticalAlign,omitempty"`
}

// Fill returns the glyph used for the interior fill. It never returns the
// shadow glyph.
func (b BoxSettings) Fill() string {
	r, _ := utf8.DecodeRuneInString(b.FillChar)
	if r == utf8.RuneError || r == ' ' || string(r) == core.ShadowGlyph {
		return DefaultFillChar
	}
	return string(r)
}

// RectangleSettings configures the rectangle generator.
type RectangleSettings struct {
	BoxSettings
}

// Kind implements Settings.
func (RectangleSettings) Kind() Kind { return KindRectangle }

// DiamondSettings configures the diamond generator.
type DiamondSettings struct {
	BoxSettings
}

// Kind implements Settings.
func (DiamondSettings) Kind() Kind { return KindDiamond }

// LineSettings configures the line generator. Start and End keep the
// endpoint order, which bounds alone cannot express.
type LineSettings struct {
	Style    string     `json:"lineStyle"`
	StartCap string     `json:"startCap"`
	EndCap   string     `json:"endCap"`
	Start    core.Point `json:"start"`
	End      core.Point `json:"end"`
}

// Kind implements Settings.
func (LineSettings) Kind() Kind { return KindLine }

// Translate implements Translator.
func (l LineSettings) Translate(d core.Point) Settings {
	l.Start = l.Start.Add(d)
	l.End = l.End.Add(d)
	return l
}

// TextSettings configures the text box generator.
type TextSettings struct {
	Content    string        `json:"content"`
	ShowBorder bool          `json:"showBorder"`
	AlignH     canvas.HAlign `json:"textAlign,omitempty"`
	AlignV     canvas.VAlign `json:"verticalAlign,omitempty"`
}

// Kind implements Settings.
func (TextSettings) Kind() Kind { return KindText }

// PencilSettings records the brush used for a freehand stroke.
type PencilSettings struct {
	Char string `json:"char"`
}

// Kind implements Settings.
func (PencilSettings) Kind() Kind { return KindPencil }

// ImageSettings keeps the original pasted rows so the image can be
// resampled at any size.
type ImageSettings struct {
	Lines []string `json:"lines"`
}

// Kind implements Settings.
func (ImageSettings) Kind() Kind { return KindImage }

// RawSettings preserves the settings of kinds this build does not know.
type RawSettings struct {
	Type Kind
	Raw  json.RawMessage
}

// Kind implements Settings.
func (r RawSettings) Kind() Kind { return r.Type }

// MarshalJSON writes the preserved bytes unchanged.
func (r RawSettings) MarshalJSON() ([]byte, error) {
	if len(r.Raw) == 0 {
		return []byte("null"), nil
	}
	return r.Raw, nil
}

// Decoder parses a settings record. An empty record must yield defaults.
type Decoder func(data []byte) (Settings, error)

var decoders = map[Kind]Decoder{
	KindRectangle: decodeInto[RectangleSettings](KindRectangle),
	KindDiamond:   decodeInto[DiamondSettings](KindDiamond),
	KindLine:      decodeInto[LineSettings](KindLine),
	KindText:      decodeInto[TextSettings](KindText),
	KindPencil:    decodeInto[PencilSettings](KindPencil),
	KindImage:     decodeInto[ImageSettings](KindImage),
}

// Defaults returns the tool defaults for a built-in kind, or nil.
func Defaults(kind Kind) Settings {
	switch kind {
	case KindRectangle:
		return RectangleSettings{BoxSettings{
			BorderStyle: canvas.BorderSingle,
			ShowBorder:  true,
			FillChar:    DefaultFillChar,
			AlignH:      canvas.AlignCenter,
			AlignV:      canvas.AlignMiddle,
		}}
	case KindDiamond:
		return DiamondSettings{BoxSettings{
			BorderStyle: canvas.BorderSingle,
			ShowBorder:  true,
			FillChar:    DefaultFillChar,
			AlignH:      canvas.AlignCenter,
			AlignV:      canvas.AlignMiddle,
		}}
	case KindLine:
		return LineSettings{Style: "solid", StartCap: "none", EndCap: "arrow"}
	case KindText:
		return TextSettings{AlignH: canvas.AlignLeft, AlignV: canvas.AlignTop}
	case KindPencil:
		return PencilSettings{Char: "*"}
	case KindImage:
		return ImageSettings{}
	}
	return nil
}

// DecodeSettings parses the settings record of a shape of the given kind.
// Unknown kinds are preserved as RawSettings. A null or empty record yields
// the kind's defaults.
func DecodeSettings(kind Kind, data []byte) (Settings, error) {
	decode, ok := decoders[kind]
	if !ok {
		if len(data) == 0 {
			return RawSettings{Type: kind}, nil
		}
		raw := make(json.RawMessage, len(data))
		copy(raw, data)
		return RawSettings{Type: kind, Raw: raw}, nil
	}
	if string(data) == "null" {
		data = nil
	}
	return decode(data)
}

func decodeInto[T Settings](kind Kind) Decoder {
	return func(data []byte) (Settings, error) {
		v, _ := Defaults(kind).(T)
		if len(data) == 0 {
			return v, nil
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decode %s settings: %w", kind, err)
		}
		return v, nil
	}
}

// Translate moves settings that hold absolute positions by d. Other
// settings are returned unchanged.
func Translate(s Settings, d core.Point) Settings {
	if t, ok := s.(Translator); ok {
		return t.Translate(d)
	}
	return s
}
