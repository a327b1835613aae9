package store

import (
	"encoding/json"
	"fmt"

	"asciidraw/core"
	"asciidraw/shapes"
)

// Shape is one drawable object of a document.
//
// Shapes returned by the Store are live; mutate them only through Store
// methods so events fire and the document is persisted.
type Shape struct {
	ID   int
	Type shapes.Kind
	Name string
	// Data is the rendered cell cache. For geometry kinds it is derived from
	// the bounds and Settings; for pencil and image it is the source of truth.
	Data core.CellMap

	Color       string
	BorderColor string
	FillColor   string
	TextColor   string

	ZOrder   int
	Visible  bool
	Locked   bool
	Selected bool
	// GroupID is 0 when the shape is not grouped.
	GroupID int

	Settings  shapes.Settings
	Timestamp int64
}

// Bounds returns the grid bounds of the shape's cells, ignoring shadows.
func (s *Shape) Bounds() core.Bounds {
	return s.Data.Bounds()
}

// CellColor returns the color a glyph of this shape is painted with: the
// role color for border, fill and text glyphs when set, else Color.
func (s *Shape) CellColor(glyph string) string {
	var role string
	switch shapes.GlyphRole(s.Settings, glyph) {
	case shapes.RoleBorder:
		role = s.BorderColor
	case shapes.RoleFill:
		role = s.FillColor
	case shapes.RoleText:
		role = s.TextColor
	}
	if role != "" {
		return role
	}
	return s.Color
}

// Clone returns a deep copy.
func (s *Shape) Clone() *Shape {
	c := *s
	c.Data = s.Data.Clone()
	return &c
}

// Group is an organizational overlay over shapes. It owns no geometry.
type Group struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Visible  bool   `json:"visible"`
	Order    int    `json:"order"`
	Expanded bool   `json:"expanded"`
}

// shapeJSON is the persisted form of a Shape. Selection is never written.
type shapeJSON struct {
	ID          int             `json:"id"`
	Type        shapes.Kind     `json:"type"`
	Name        string          `json:"name"`
	Data        core.CellMap    `json:"data"`
	Color       string          `json:"color,omitempty"`
	BorderColor string          `json:"borderColor,omitempty"`
	FillColor   string          `json:"fillColor,omitempty"`
	TextColor   string          `json:"textColor,omitempty"`
	ZOrder      int             `json:"zOrder"`
	Visible     *bool           `json:"visible,omitempty"`
	Locked      bool            `json:"locked"`
	GroupID     *int            `json:"groupId"`
	Settings    json.RawMessage `json:"toolSettings,omitempty"`
	Timestamp   int64           `json:"timestamp"`
}

// MarshalJSON implements json.Marshaler.
func (s *Shape) MarshalJSON() ([]byte, error) {
	visible := s.Visible
	w := shapeJSON{
		ID:          s.ID,
		Type:        s.Type,
		Name:        s.Name,
		Data:        s.Data,
		Color:       s.Color,
		BorderColor: s.BorderColor,
		FillColor:   s.FillColor,
		TextColor:   s.TextColor,
		ZOrder:      s.ZOrder,
		Visible:     &visible,
		Locked:      s.Locked,
		Timestamp:   s.Timestamp,
	}
	if w.Data == nil {
		w.Data = core.CellMap{}
	}
	if s.GroupID != 0 {
		g := s.GroupID
		w.GroupID = &g
	}
	if s.Settings != nil {
		raw, err := json.Marshal(s.Settings)
		if err != nil {
			return nil, fmt.Errorf("shape %d settings: %w", s.ID, err)
		}
		w.Settings = raw
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler. A missing visible flag means
// visible; selected is always false after decoding.
func (s *Shape) UnmarshalJSON(data []byte) error {
	var w shapeJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	settings, err := shapes.DecodeSettings(w.Type, w.Settings)
	if err != nil {
		return fmt.Errorf("shape %d: %w", w.ID, err)
	}

	*s = Shape{
		ID:          w.ID,
		Type:        w.Type,
		Name:        w.Name,
		Data:        w.Data,
		Color:       w.Color,
		BorderColor: w.BorderColor,
		FillColor:   w.FillColor,
		TextColor:   w.TextColor,
		ZOrder:      w.ZOrder,
		Visible:     w.Visible == nil || *w.Visible,
		Locked:      w.Locked,
		Settings:    settings,
		Timestamp:   w.Timestamp,
	}
	if s.Data == nil {
		s.Data = core.CellMap{}
	}
	if w.GroupID != nil {
		s.GroupID = *w.GroupID
	}
	return nil
}

// ShapeOption customizes AddShape.
type ShapeOption func(*Shape)

// WithName sets an explicit name instead of the generated one.
func WithName(name string) ShapeOption {
	return func(s *Shape) { s.Name = name }
}

// WithSettings attaches the tool settings the shape was drawn with.
func WithSettings(settings shapes.Settings) ShapeOption {
	return func(s *Shape) { s.Settings = settings }
}

// WithRoleColors sets the border, fill and text colors.
func WithRoleColors(border, fill, text string) ShapeOption {
	return func(s *Shape) {
		s.BorderColor = border
		s.FillColor = fill
		s.TextColor = text
	}
}

// WithGroup places the new shape in an existing group.
func WithGroup(groupID int) ShapeOption {
	return func(s *Shape) { s.GroupID = groupID }
}

// ShapeUpdate is a partial change applied by UpdateShape. Nil fields are
// left untouched.
type ShapeUpdate struct {
	Name        *string
	Color       *string
	BorderColor *string
	FillColor   *string
	TextColor   *string
	Visible     *bool
	Locked      *bool
	GroupID     *int
	Settings    shapes.Settings
	// Data replaces the cell map wholesale. Besides core.CellMap it accepts
	// the shapes a JSON round trip degrades a map into; see NormalizeData.
	Data any
}

// NormalizeData converts the representations a cell map can arrive in to a
// fresh core.CellMap: a CellMap, "x,y"-keyed maps, and lists of
// [key, glyph] pairs as produced by decoding JSON into interface values.
func NormalizeData(v any) (core.CellMap, error) {
	switch d := v.(type) {
	case core.CellMap:
		return d.Clone(), nil
	case map[core.Point]string:
		return core.CellMap(d).Clone(), nil
	case map[string]string:
		out := make(core.CellMap, len(d))
		for k, g := range d {
			p, err := core.ParseKey(k)
			if err != nil {
				return nil, err
			}
			out[p] = g
		}
		return out, nil
	case map[string]any:
		out := make(core.CellMap, len(d))
		for k, g := range d {
			p, err := core.ParseKey(k)
			if err != nil {
				return nil, err
			}
			s, ok := g.(string)
			if !ok {
				return nil, fmt.Errorf("cell %s: glyph is %T, not string", k, g)
			}
			out[p] = s
		}
		return out, nil
	case [][2]string:
		out := make(core.CellMap, len(d))
		for _, pair := range d {
			p, err := core.ParseKey(pair[0])
			if err != nil {
				return nil, err
			}
			out[p] = pair[1]
		}
		return out, nil
	case [][]string:
		out := make(core.CellMap, len(d))
		for _, pair := range d {
			if len(pair) != 2 {
				return nil, fmt.Errorf("cell pair has %d elements", len(pair))
			}
			p, err := core.ParseKey(pair[0])
			if err != nil {
				return nil, err
			}
			out[p] = pair[1]
		}
		return out, nil
	case []any:
		out := make(core.CellMap, len(d))
		for _, item := range d {
			pair, ok := item.([]any)
			if !ok || len(pair) != 2 {
				return nil, fmt.Errorf("cell entry %v is not a [key, glyph] pair", item)
			}
			k, ok1 := pair[0].(string)
			g, ok2 := pair[1].(string)
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("cell entry %v is not a [key, glyph] pair", item)
			}
			p, err := core.ParseKey(k)
			if err != nil {
				return nil, err
			}
			out[p] = g
		}
		return out, nil
	case json.RawMessage:
		var m core.CellMap
		if err := json.Unmarshal(d, &m); err != nil {
			return nil, err
		}
		return m, nil
	case nil:
		return core.CellMap{}, nil
	}
	return nil, fmt.Errorf("unsupported cell data %T", v)
}
