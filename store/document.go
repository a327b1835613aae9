package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"asciidraw/logging"
	"asciidraw/shapes"
)

// Document is the persisted form of a store.
type Document struct {
	Shapes            []*Shape            `json:"shapes"`
	Groups            []*Group            `json:"groups"`
	NextShapeID       int                 `json:"nextShapeId"`
	NextGroupID       int                 `json:"nextGroupId"`
	ShapeTypeCounters map[shapes.Kind]int `json:"shapeTypeCounters"`
}

// Document snapshots the store. Shapes are deep copies in z-order.
func (s *Store) Document() *Document {
	doc := &Document{
		Shapes:            make([]*Shape, 0, len(s.shapes)),
		Groups:            make([]*Group, 0, len(s.groups)),
		NextShapeID:       s.nextShapeID,
		NextGroupID:       s.nextGroupID,
		ShapeTypeCounters: make(map[shapes.Kind]int, len(s.typeCounters)),
	}
	for _, sh := range s.AllShapes() {
		c := sh.Clone()
		c.Selected = false
		doc.Shapes = append(doc.Shapes, c)
	}
	for _, g := range s.Groups() {
		c := *g
		doc.Groups = append(doc.Groups, &c)
	}
	for k, v := range s.typeCounters {
		doc.ShapeTypeCounters[k] = v
	}
	return doc
}

// restore replaces the store contents with doc. Id counters only move
// forward so ids are never reused, and selection is cleared.
func (s *Store) restore(doc *Document) {
	s.shapes = make(map[int]*Shape, len(doc.Shapes))
	s.groups = make(map[int]*Group, len(doc.Groups))
	s.typeCounters = make(map[shapes.Kind]int, len(doc.ShapeTypeCounters))
	s.primary = 0

	for _, g := range doc.Groups {
		c := *g
		s.groups[c.ID] = &c
		s.nextGroupID = max(s.nextGroupID, c.ID+1)
	}
	for _, sh := range doc.Shapes {
		c := sh.Clone()
		c.Selected = false
		if _, ok := s.groups[c.GroupID]; !ok {
			c.GroupID = 0
		}
		s.shapes[c.ID] = c
		s.nextShapeID = max(s.nextShapeID, c.ID+1)
	}
	s.nextShapeID = max(s.nextShapeID, doc.NextShapeID)
	s.nextGroupID = max(s.nextGroupID, doc.NextGroupID)
	for k, v := range doc.ShapeTypeCounters {
		s.typeCounters[k] = v
	}
	for _, sh := range s.shapes {
		if s.typeCounters[sh.Type] == 0 {
			s.typeCounters[sh.Type] = 1
		}
	}
	for id := range s.groups {
		s.collectGroup(id)
	}
}

// Replace swaps the store contents for doc, such as a document received
// over the wire. The undo history is kept.
func (s *Store) Replace(doc *Document) {
	s.applySnapshot(doc)
}

// legacyLayer is one layer of the layer-based schema.
type legacyLayer struct {
	ID      int               `json:"id"`
	Name    string            `json:"name"`
	Visible *bool             `json:"visible"`
	Order   *int              `json:"order"`
	Shapes  []json.RawMessage `json:"shapes"`
}

type legacyDocument struct {
	Layers            []legacyLayer       `json:"layers"`
	NextShapeID       int                 `json:"nextShapeId"`
	ShapeTypeCounters map[shapes.Kind]int `json:"shapeTypeCounters"`
}

// ErrUnknownSchema is returned for JSON that is neither the current nor the
// legacy document schema.
var ErrUnknownSchema = errors.New("document has neither shapes nor layers")

// DecodeDocument parses a persisted document. The legacy layer schema
// (detected by the absence of a root "shapes" array) is migrated: every
// non-empty layer becomes a group carrying the layer's name, visibility and
// order, and its shapes join that group.
func DecodeDocument(data []byte) (*Document, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	if raw, ok := probe["shapes"]; ok && isArray(raw) {
		var doc Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		return &doc, nil
	}
	if _, ok := probe["layers"]; !ok {
		return nil, ErrUnknownSchema
	}

	var legacy legacyDocument
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("decode legacy document: %w", err)
	}
	doc, err := migrateLegacy(&legacy)
	if err != nil {
		return nil, err
	}
	logging.Logger().Info("migrated legacy document", "layers", len(legacy.Layers), "groups", len(doc.Groups))
	return doc, nil
}

func isArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b == '['
	}
	return false
}

func migrateLegacy(legacy *legacyDocument) (*Document, error) {
	doc := &Document{
		NextShapeID:       legacy.NextShapeID,
		NextGroupID:       1,
		ShapeTypeCounters: legacy.ShapeTypeCounters,
	}
	if doc.ShapeTypeCounters == nil {
		doc.ShapeTypeCounters = make(map[shapes.Kind]int)
	}

	// layers without an order keep their position in the file
	type orderedLayer struct {
		legacyLayer
		order int
	}
	layers := make([]orderedLayer, len(legacy.Layers))
	for i, l := range legacy.Layers {
		layers[i] = orderedLayer{legacyLayer: l, order: layerOrder(l, i)}
	}
	sort.SliceStable(layers, func(i, j int) bool {
		return layers[i].order < layers[j].order
	})

	z := 0
	for i, layer := range layers {
		if len(layer.Shapes) == 0 {
			continue
		}
		g := &Group{
			ID:       doc.NextGroupID,
			Name:     layer.Name,
			Visible:  layer.Visible == nil || *layer.Visible,
			Order:    layer.order,
			Expanded: true,
		}
		if g.Name == "" {
			g.Name = fmt.Sprintf("Layer %d", i+1)
		}
		doc.NextGroupID++
		doc.Groups = append(doc.Groups, g)

		members := make([]*Shape, 0, len(layer.Shapes))
		for _, raw := range layer.Shapes {
			var sh Shape
			if err := json.Unmarshal(raw, &sh); err != nil {
				return nil, fmt.Errorf("decode legacy shape: %w", err)
			}
			members = append(members, &sh)
		}
		sortByZ(members)
		for _, sh := range members {
			sh.GroupID = g.ID
			sh.ZOrder = z
			z++
			doc.Shapes = append(doc.Shapes, sh)
			doc.NextShapeID = max(doc.NextShapeID, sh.ID+1)
		}
	}
	return doc, nil
}

func layerOrder(l legacyLayer, index int) int {
	if l.Order != nil {
		return *l.Order
	}
	return index
}
