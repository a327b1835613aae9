package editor

import (
	"asciidraw/core"
	"asciidraw/geometry"
	"asciidraw/logging"
	"asciidraw/shapes"
	"asciidraw/store"
)

// Tool is the active drawing tool.
type Tool string

const (
	ToolSelect    Tool = "select"
	ToolRectangle Tool = "rectangle"
	ToolDiamond   Tool = "diamond"
	ToolLine      Tool = "line"
	ToolText      Tool = "text"
	ToolPencil    Tool = "pencil"
)

// Kind returns the shape kind the tool draws, or "" for the select tool.
func (t Tool) Kind() shapes.Kind {
	switch t {
	case ToolRectangle:
		return shapes.KindRectangle
	case ToolDiamond:
		return shapes.KindDiamond
	case ToolLine:
		return shapes.KindLine
	case ToolText:
		return shapes.KindText
	case ToolPencil:
		return shapes.KindPencil
	}
	return ""
}

// State is the interaction currently in progress.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateResizing
	StateDrawing
	StateSelecting
)

// String returns the state name for display
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateDragging:
		return "DRAG"
	case StateResizing:
		return "RESIZE"
	case StateDrawing:
		return "DRAW"
	case StateSelecting:
		return "SELECT"
	default:
		return "UNKNOWN"
	}
}

// DefaultText is the content of new text boxes.
const DefaultText = "Text"

type dragSnapshot struct {
	data     core.CellMap
	settings shapes.Settings
}

// Editor drives a store from pointer input. Only one interaction is active
// at a time; a pointer-down while not idle is ignored.
type Editor struct {
	store  *store.Store
	camera *geometry.Camera

	tool     Tool
	color    string
	settings map[shapes.Kind]shapes.Settings
	// TextContent fills text boxes drawn with the text tool.
	TextContent string

	state State
	// checkpointed is set once the current interaction has saved an undo
	// step.
	checkpointed bool

	// drag
	dragStart  core.Point
	dragOffset core.Point
	originals  map[int]dragSnapshot

	// resize
	resizeID       int
	resizeAnchor   AnchorKind
	resizeStart    core.Point
	resizeDelta    core.Point
	origBounds     core.Bounds
	origSettings   shapes.Settings
	origImageLines []string

	// drawing; generators run on the world positions, the grid cells
	// track line endpoints and pencil strokes
	drawFrom  core.WorldPoint
	drawTo    core.WorldPoint
	drawStart core.Point
	drawEnd   core.Point
	stroke    core.CellMap
	lastPoint core.Point

	// marquee
	marqueeStart core.Point
	marqueeEnd   core.Point
	marqueeAdd   bool
}

// New creates an editor over s with the select tool active.
func New(s *store.Store, cam *geometry.Camera) *Editor {
	if cam == nil {
		cam = geometry.NewCamera()
	}
	return &Editor{
		store:       s,
		camera:      cam,
		tool:        ToolSelect,
		settings:    make(map[shapes.Kind]shapes.Settings),
		TextContent: DefaultText,
	}
}

// Store returns the edited store.
func (e *Editor) Store() *store.Store { return e.store }

// Camera returns the view camera.
func (e *Editor) Camera() *geometry.Camera { return e.camera }

// State returns the active interaction.
func (e *Editor) State() State { return e.state }

// Tool returns the active tool.
func (e *Editor) Tool() Tool { return e.tool }

// SetTool switches tools. An interaction in progress is cancelled.
func (e *Editor) SetTool(t Tool) {
	if e.state != StateIdle {
		e.Escape()
	}
	e.tool = t
}

// Color returns the color applied to new shapes.
func (e *Editor) Color() string { return e.color }

// SetColor sets the color applied to new shapes.
func (e *Editor) SetColor(c string) { e.color = c }

// ToolSettings returns the settings new shapes of kind are drawn with.
func (e *Editor) ToolSettings(kind shapes.Kind) shapes.Settings {
	if s, ok := e.settings[kind]; ok {
		return s
	}
	return shapes.Defaults(kind)
}

// SetToolSettings replaces the settings used for new shapes of s.Kind().
func (e *Editor) SetToolSettings(s shapes.Settings) {
	if s == nil {
		return
	}
	e.settings[s.Kind()] = s
}

func (e *Editor) gridAt(p geometry.ScreenPoint) core.Point {
	return e.camera.ScreenToGrid(p)
}

// checkpoint saves one undo step per interaction, on its first mutation.
func (e *Editor) checkpoint() {
	if e.checkpointed {
		return
	}
	e.checkpointed = true
	e.store.Checkpoint()
}

// PointerDown starts an interaction at screen position p. With add the
// selection is extended (shift-click) instead of replaced.
func (e *Editor) PointerDown(p geometry.ScreenPoint, add bool) {
	if e.state != StateIdle {
		return
	}
	e.checkpointed = false
	grid := e.gridAt(p)

	if e.tool != ToolSelect {
		e.beginDraw(e.camera.ScreenToWorld(p))
		return
	}

	if sh, ok := e.store.SingleSelection(); ok && !sh.Locked && e.store.IsEffectivelyVisible(sh) {
		if a, ok := AnchorAt(sh, e.camera.ScreenToWorld(p)); ok {
			e.beginResize(sh, a, grid)
			return
		}
	}

	if hit := ShapeAt(grid, e.store.VisibleShapes()); hit != nil {
		switch {
		case add:
			e.store.SelectShape(hit.ID, true)
		case !hit.Selected:
			e.store.SelectShape(hit.ID, false)
		}
		if hit.Selected {
			e.beginDrag(grid)
		}
		return
	}

	if !add {
		e.store.ClearSelection()
	}
	e.state = StateSelecting
	e.marqueeStart, e.marqueeEnd = grid, grid
	e.marqueeAdd = add
}

// PointerMove advances the active interaction.
func (e *Editor) PointerMove(p geometry.ScreenPoint) {
	grid := e.gridAt(p)
	switch e.state {
	case StateDragging:
		e.dragTo(grid)
	case StateResizing:
		e.resizeTo(grid)
	case StateDrawing:
		e.extendDraw(e.camera.ScreenToWorld(p))
	case StateSelecting:
		e.marqueeEnd = grid
	}
}

// PointerUp finishes the active interaction.
func (e *Editor) PointerUp(p geometry.ScreenPoint) {
	if e.state == StateIdle {
		return
	}
	e.PointerMove(p)
	e.finish(true)
}

// PointerLeave ends the active interaction exactly like a pointer-up at the
// last known position.
func (e *Editor) PointerLeave() {
	e.finish(true)
}

// Escape ends the active interaction. A shape being drawn is discarded;
// drag and resize keep their last applied state.
func (e *Editor) Escape() {
	e.finish(false)
}

func (e *Editor) finish(commit bool) {
	switch e.state {
	case StateDrawing:
		if commit {
			e.commitDraw()
		}
		e.stroke = nil
	case StateSelecting:
		if commit {
			e.store.SelectInBounds(core.BoundsOf(e.marqueeStart, e.marqueeEnd), e.marqueeAdd)
		}
	case StateDragging:
		e.originals = nil
	case StateResizing:
		e.origSettings = nil
		e.origImageLines = nil
	}
	e.state = StateIdle
}

func (e *Editor) beginDrag(grid core.Point) {
	e.originals = make(map[int]dragSnapshot)
	for _, sh := range e.store.SelectedShapes() {
		if sh.Locked {
			continue
		}
		e.originals[sh.ID] = dragSnapshot{data: sh.Data.Clone(), settings: sh.Settings}
	}
	if len(e.originals) == 0 {
		e.originals = nil
		return
	}
	e.state = StateDragging
	e.dragStart = grid
	e.dragOffset = core.Point{}
}

// dragTo translates every dragged shape from its snapshot. The generator
// is never rerun, so any glyph content survives unchanged.
func (e *Editor) dragTo(grid core.Point) {
	offset := grid.Sub(e.dragStart)
	if offset == e.dragOffset {
		return
	}
	e.dragOffset = offset
	e.checkpoint()
	e.store.Batch(func() {
		for id, snap := range e.originals {
			u := store.ShapeUpdate{Data: snap.data.Translate(offset)}
			if snap.settings != nil {
				u.Settings = shapes.Translate(snap.settings, offset)
			}
			e.store.UpdateShape(id, u)
		}
	})
}

func (e *Editor) beginResize(sh *store.Shape, a Anchor, grid core.Point) {
	e.state = StateResizing
	e.resizeID = sh.ID
	e.resizeAnchor = a.Kind
	e.resizeStart = grid
	e.resizeDelta = core.Point{}
	e.origBounds = sh.Bounds()
	e.origSettings = sh.Settings
	if e.origSettings == nil {
		e.origSettings = shapes.Defaults(sh.Type)
	}
	if sh.Type == shapes.KindImage {
		e.origImageLines = imageLines(sh.Settings, sh.Data)
	}
}

func (e *Editor) resizeTo(grid core.Point) {
	delta := grid.Sub(e.resizeStart)
	if delta == e.resizeDelta {
		return
	}
	e.resizeDelta = delta
	sh, ok := e.store.Shape(e.resizeID)
	if !ok {
		e.state = StateIdle
		return
	}

	settings := e.origSettings
	var cells core.CellMap
	switch sh.Type {
	case shapes.KindLine:
		ls, ok := settings.(shapes.LineSettings)
		if !ok {
			return
		}
		ls = MoveEndpoint(ls, e.resizeAnchor, delta)
		settings = ls
		c, err := e.store.Registry().Draw(sh.Type, ls.Start, ls.End, ls)
		if err != nil {
			return
		}
		cells = c
	case shapes.KindImage:
		nb := ResizeBounds(sh.Type, e.resizeAnchor, e.origBounds, delta)
		cells = shapes.Resample(e.origImageLines, nb)
		settings = nil
	default:
		nb := ResizeBounds(sh.Type, e.resizeAnchor, e.origBounds, delta)
		c, err := e.store.Registry().Draw(sh.Type, nb.Min, nb.Max, settings)
		if err != nil {
			logging.Logger().Debug("resize skipped", "shape", sh.ID, "error", err)
			return
		}
		cells = c
	}

	e.checkpoint()
	e.store.UpdateShape(sh.ID, store.ShapeUpdate{Data: cells, Settings: settings})
}

func (e *Editor) beginDraw(w core.WorldPoint) {
	grid := geometry.WorldToGrid(w)
	e.state = StateDrawing
	e.drawFrom, e.drawTo = w, w
	e.drawStart, e.drawEnd = grid, grid
	e.lastPoint = grid
	e.stroke = nil
	if e.tool == ToolPencil {
		e.stroke = core.CellMap{}
		e.stroke[grid] = e.pencilChar()
	}
}

func (e *Editor) extendDraw(w core.WorldPoint) {
	grid := geometry.WorldToGrid(w)
	e.drawTo = w
	e.drawEnd = grid
	if e.tool != ToolPencil || grid == e.lastPoint {
		return
	}
	ch := e.pencilChar()
	for _, p := range geometry.GridLine(e.lastPoint, grid) {
		e.stroke[p] = ch
	}
	e.lastPoint = grid
}

func (e *Editor) pencilChar() string {
	if ps, ok := e.ToolSettings(shapes.KindPencil).(shapes.PencilSettings); ok && ps.Char != "" {
		return ps.Char
	}
	return "*"
}

// drawSettings returns the settings for the shape being drawn. Lines get
// their endpoints; empty text boxes get TextContent.
func (e *Editor) drawSettings() shapes.Settings {
	s := e.ToolSettings(e.tool.Kind())
	switch v := s.(type) {
	case shapes.LineSettings:
		v.Start, v.End = e.drawStart, e.drawEnd
		return v
	case shapes.TextSettings:
		if v.Content == "" {
			v.Content = e.TextContent
		}
		return v
	}
	return s
}

// Preview returns the cells of the shape being drawn, or nil when no
// drawing is in progress.
func (e *Editor) Preview() core.CellMap {
	if e.state != StateDrawing {
		return nil
	}
	if e.tool == ToolPencil {
		return e.stroke.Clone()
	}
	cells, err := e.store.Registry().DrawWorld(e.tool.Kind(), e.drawFrom, e.drawTo, e.drawSettings())
	if err != nil {
		return nil
	}
	return cells
}

// Marquee returns the selection rectangle being dragged.
func (e *Editor) Marquee() (core.Bounds, bool) {
	if e.state != StateSelecting {
		return core.EmptyBounds(), false
	}
	return core.BoundsOf(e.marqueeStart, e.marqueeEnd), true
}

// commitDraw adds the drawn shape. A click without movement draws nothing
// except with the pencil.
func (e *Editor) commitDraw() {
	kind := e.tool.Kind()
	var cells core.CellMap
	var settings shapes.Settings
	if e.tool == ToolPencil {
		if len(e.stroke) == 0 {
			return
		}
		cells = e.stroke
		settings = e.ToolSettings(kind)
	} else {
		if e.drawStart == e.drawEnd {
			return
		}
		settings = e.drawSettings()
		c, err := e.store.Registry().DrawWorld(kind, e.drawFrom, e.drawTo, settings)
		if err != nil {
			logging.Logger().Warn("draw failed", "tool", string(e.tool), "error", err)
			return
		}
		cells = c
	}

	e.checkpoint()
	sh := e.store.AddShape(kind, cells, e.color, store.WithSettings(settings))
	e.store.SelectShape(sh.ID, false)
}

// DeleteSelected removes the selection as one undo step.
func (e *Editor) DeleteSelected() int {
	if len(e.store.SelectedIDs()) == 0 {
		return 0
	}
	e.store.Checkpoint()
	return e.store.DeleteSelected()
}

// Duplicate copies the selection one cell down and right.
func (e *Editor) Duplicate() []int {
	if len(e.store.SelectedIDs()) == 0 {
		return nil
	}
	e.store.Checkpoint()
	return e.store.DuplicateSelected(core.Point{X: 1, Y: 1})
}

// GroupSelection groups the selected shapes.
func (e *Editor) GroupSelection(name string) (*store.Group, bool) {
	if len(e.store.SelectedIDs()) == 0 {
		return nil, false
	}
	e.store.Checkpoint()
	return e.store.GroupSelected(name)
}

// Reorder applies a z-order operation to every selected shape. Shapes are
// visited so that their relative order is kept.
func (e *Editor) Reorder(op func(s *store.Store, id int) bool, topFirst bool) bool {
	sel := e.store.SelectedShapes()
	if len(sel) == 0 {
		return false
	}
	e.store.Checkpoint()
	changed := false
	e.store.Batch(func() {
		for i := range sel {
			sh := sel[i]
			if topFirst {
				sh = sel[len(sel)-1-i]
			}
			if op(e.store, sh.ID) {
				changed = true
			}
		}
	})
	return changed
}

// BringToFront moves the selection to the top of the paint order.
func (e *Editor) BringToFront() bool {
	return e.Reorder((*store.Store).MoveToFront, false)
}

// SendToBack moves the selection to the bottom of the paint order and
// renumbers z-orders from 0.
func (e *Editor) SendToBack() bool {
	return e.Reorder((*store.Store).SendToBack, true)
}

// BringForward moves each selected shape one step up.
func (e *Editor) BringForward() bool {
	return e.Reorder((*store.Store).MoveForward, true)
}

// SendBackward moves each selected shape one step down.
func (e *Editor) SendBackward() bool {
	return e.Reorder((*store.Store).MoveBackward, false)
}

// Undo restores the previous undo step.
func (e *Editor) Undo() bool {
	if e.state != StateIdle {
		e.Escape()
	}
	return e.store.Undo()
}

// Redo reapplies an undone step.
func (e *Editor) Redo() bool {
	if e.state != StateIdle {
		e.Escape()
	}
	return e.store.Redo()
}
