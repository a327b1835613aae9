// Package terminal runs the editor full-screen on a tcell screen. Each
// terminal cell shows one grid cell; mouse input is translated to pointer
// events at the cell center.
package terminal

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"asciidraw/canvas"
	"asciidraw/core"
	"asciidraw/editor"
	"asciidraw/geometry"
	"asciidraw/logging"
	"asciidraw/render"
	"asciidraw/store"
)

// Clipboard is the system clipboard seen by copy and paste.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Option configures an App.
type Option func(*App)

// WithClipboard replaces the system clipboard.
func WithClipboard(c Clipboard) Option {
	return func(a *App) { a.clip = c }
}

// WithCapabilities sets what the terminal can display.
func WithCapabilities(c render.Capabilities) Option {
	return func(a *App) { a.caps = c }
}

// App is the interactive terminal front end.
type App struct {
	screen tcell.Screen
	ed     *editor.Editor
	clip   Clipboard
	caps   render.Capabilities

	status    string
	mouseDown bool
	lastCell  core.Point
	dirty     bool
	showHelp  bool

	// prompt is non-nil while a text prompt owns the keyboard.
	prompt *prompt
}

type prompt struct {
	label  string
	input  []rune
	commit func(string)
}

// New wraps an initialized screen. The app repaints whenever the store
// reports a change.
func New(screen tcell.Screen, ed *editor.Editor, opts ...Option) *App {
	a := &App{
		screen: screen,
		ed:     ed,
		clip:   systemClipboard{},
		caps:   render.Capabilities{Color: true, Unicode: true},
		status: GetCompactHelp(),
		dirty:  true,
	}
	for _, opt := range opts {
		opt(a)
	}
	ed.Store().Subscribe(store.RenderRequired, func(store.Event) { a.dirty = true })
	return a
}

// Run processes events until the user quits.
func (a *App) Run() error {
	a.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	a.Draw()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !a.HandleEvent(ev) {
			return nil
		}
		if a.dirty {
			a.Draw()
		}
	}
}

// HandleEvent applies one event. It returns false when the app should exit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.dirty = true
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return true
}

// cellPoint returns the screen position of the center of terminal cell
// (x, y). The editor camera turns it into world coordinates.
func cellPoint(x, y int) geometry.ScreenPoint {
	return geometry.ScreenPoint{
		X: float64(x)*geometry.CellWidth + geometry.CellWidth/2,
		Y: float64(y)*geometry.CellHeight + geometry.CellHeight/2,
	}
}

func (a *App) canvasHeight() int {
	_, h := a.screen.Size()
	return h - 1
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	btn := ev.Buttons()

	switch {
	case btn&tcell.WheelUp != 0:
		a.pan(0, 1)
		return
	case btn&tcell.WheelDown != 0:
		a.pan(0, -1)
		return
	}

	inCanvas := y < a.canvasHeight()
	if inCanvas {
		a.lastCell = a.ed.Camera().ScreenToGrid(cellPoint(x, y))
	}
	p := cellPoint(x, y)

	switch {
	case btn&tcell.Button1 != 0 && !a.mouseDown:
		if !inCanvas {
			return
		}
		a.mouseDown = true
		a.ed.PointerDown(p, ev.Modifiers()&tcell.ModShift != 0)
	case btn&tcell.Button1 != 0:
		if !inCanvas {
			a.ed.PointerLeave()
			a.mouseDown = false
			break
		}
		a.ed.PointerMove(p)
	case a.mouseDown:
		a.mouseDown = false
		if inCanvas {
			a.ed.PointerUp(p)
		} else {
			a.ed.PointerLeave()
		}
	default:
		return
	}
	a.dirty = true
}

func (a *App) pan(dx, dy int) {
	a.ed.Camera().Pan(float64(dx)*geometry.CellWidth, float64(dy)*geometry.CellHeight)
	a.dirty = true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	if a.prompt != nil {
		a.handlePromptKey(ev)
		return true
	}

	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return false
	case tcell.KeyEscape:
		if a.ed.State() != editor.StateIdle {
			a.ed.Escape()
			a.mouseDown = false
		} else {
			a.ed.Store().ClearSelection()
		}
		a.setStatus("")
	case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
		if n := a.ed.DeleteSelected(); n > 0 {
			a.setStatus(fmt.Sprintf("deleted %d", n))
		}
	case tcell.KeyCtrlZ:
		a.undo()
	case tcell.KeyCtrlY:
		a.redo()
	case tcell.KeyCtrlD:
		a.ed.Duplicate()
	case tcell.KeyCtrlA:
		a.ed.Store().SelectAll()
	case tcell.KeyCtrlC:
		a.copySelection()
	case tcell.KeyCtrlV:
		a.paste()
	case tcell.KeyUp:
		a.pan(0, 1)
	case tcell.KeyDown:
		a.pan(0, -1)
	case tcell.KeyLeft:
		a.pan(1, 0)
	case tcell.KeyRight:
		a.pan(-1, 0)
	case tcell.KeyRune:
		return a.handleRune(ev.Rune())
	}
	a.dirty = true
	return true
}

var toolKeys = map[rune]editor.Tool{
	's': editor.ToolSelect,
	'r': editor.ToolRectangle,
	'd': editor.ToolDiamond,
	'l': editor.ToolLine,
	't': editor.ToolText,
	'p': editor.ToolPencil,
}

func (a *App) handleRune(r rune) bool {
	if tool, ok := toolKeys[r]; ok {
		a.ed.SetTool(tool)
		a.setStatus("")
		return true
	}

	switch r {
	case 'q':
		return false
	case 'u':
		a.undo()
	case 'U':
		a.redo()
	case ']':
		a.ed.BringForward()
	case '[':
		a.ed.SendBackward()
	case '}':
		a.ed.BringToFront()
	case '{':
		a.ed.SendToBack()
	case 'g':
		a.openPrompt("group name: ", func(name string) {
			if _, ok := a.ed.GroupSelection(name); ok {
				a.setStatus("grouped")
			}
		})
	case 'e':
		a.openPrompt("text: ", func(s string) {
			if s != "" {
				a.ed.TextContent = s
			}
		})
	case 'c':
		a.openPrompt("color: ", func(s string) {
			if s == "" {
				a.ed.SetColor("")
				return
			}
			if _, ok := canvas.ParseColor(s); !ok {
				a.setStatus("unknown color " + s)
				return
			}
			a.ed.SetColor(s)
		})
	case 'L':
		a.toggleLock()
	case '?':
		a.showHelp = !a.showHelp
	}
	a.dirty = true
	return true
}

func (a *App) undo() {
	if !a.ed.Undo() {
		a.setStatus("nothing to undo")
	}
}

func (a *App) redo() {
	if !a.ed.Redo() {
		a.setStatus("nothing to redo")
	}
}

func (a *App) toggleLock() {
	sel := a.ed.Store().SelectedShapes()
	if len(sel) == 0 {
		return
	}
	locked := !sel[0].Locked
	a.ed.Store().Checkpoint()
	a.ed.Store().Batch(func() {
		for _, sh := range sel {
			a.ed.Store().SetLocked(sh.ID, locked)
		}
	})
	if locked {
		a.setStatus("locked")
	} else {
		a.setStatus("unlocked")
	}
}

func (a *App) copySelection() {
	text := a.ed.CopySelectionText()
	if text == "" {
		return
	}
	if err := a.clip.WriteAll(text); err != nil {
		logging.Logger().Warn("clipboard write failed", "error", err)
		a.setStatus("clipboard unavailable")
		return
	}
	a.setStatus("copied")
}

func (a *App) paste() {
	text, err := a.clip.ReadAll()
	if err != nil {
		logging.Logger().Warn("clipboard read failed", "error", err)
		a.setStatus("clipboard unavailable")
		return
	}
	a.pasteText(text)
}

func (a *App) pasteText(text string) {
	if _, ok := a.ed.Paste(text, a.lastCell); ok {
		a.setStatus("pasted")
	}
}

func (a *App) openPrompt(label string, commit func(string)) {
	a.prompt = &prompt{label: label, commit: commit}
	a.dirty = true
}

func (a *App) handlePromptKey(ev *tcell.EventKey) {
	p := a.prompt
	switch ev.Key() {
	case tcell.KeyEscape:
		a.prompt = nil
	case tcell.KeyEnter:
		a.prompt = nil
		p.commit(strings.TrimSpace(string(p.input)))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.input) > 0 {
			p.input = p.input[:len(p.input)-1]
		}
	case tcell.KeyRune:
		p.input = append(p.input, ev.Rune())
	}
	a.dirty = true
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.dirty = true
}

// Draw repaints the whole screen.
func (a *App) Draw() {
	a.dirty = false
	a.screen.Clear()
	w, _ := a.screen.Size()
	h := a.canvasHeight()
	if w <= 0 || h <= 0 {
		a.screen.Show()
		return
	}

	window := a.ed.Camera().VisibleGrid(float64(w)*geometry.CellWidth, float64(h)*geometry.CellHeight)
	s := a.ed.Store()
	g := render.Compose(s.VisibleShapes(), window)
	if g == nil {
		a.screen.Show()
		return
	}
	render.PaintCells(g, a.ed.Preview(), a.ed.Color())

	selected := make(map[core.Point]bool)
	for _, sh := range s.SelectedShapes() {
		for p := range sh.Data {
			selected[p] = true
		}
	}

	origin := window.Min
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := core.Point{X: origin.X + x, Y: origin.Y + y}
			cell := g.Get(p)
			if cell.Glyph == "" {
				continue
			}
			style := a.style(cell.Color)
			if selected[p] {
				style = style.Reverse(true)
			}
			a.putGlyph(x, y, cell.Glyph, style)
			if width := canvas.StringWidth(cell.Glyph); width > 1 {
				x += width - 1
			}
		}
	}

	a.drawOverlays(origin, w, h)
	if a.showHelp {
		a.drawHelp(w, h)
	}
	a.drawStatus(w, h)
	a.screen.Show()
}

func (a *App) drawOverlays(origin core.Point, w, h int) {
	view := core.Bounds{Min: origin, Max: core.Point{X: origin.X + w - 1, Y: origin.Y + h - 1}}
	mark := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	if b, ok := a.ed.Marquee(); ok {
		for _, p := range geometry.RectOutline(b) {
			if view.Contains(p) {
				a.putGlyph(p.X-origin.X, p.Y-origin.Y, "·", mark)
			}
		}
	}

	sh, ok := a.ed.Store().SingleSelection()
	if !ok || sh.Locked || a.ed.State() != editor.StateIdle {
		return
	}
	for _, an := range editor.Anchors(sh) {
		if view.Contains(an.Pos) {
			a.putGlyph(an.Pos.X-origin.X, an.Pos.Y-origin.Y, "■", mark)
		}
	}
}

func (a *App) drawHelp(w, h int) {
	style := tcell.StyleDefault.Reverse(true)
	lines := strings.Split(strings.TrimRight(GetHelpText(), "\n"), "\n")
	for y, line := range lines {
		if y >= h {
			break
		}
		a.writeLine(0, y, w, " "+line, style)
	}
}

func (a *App) drawStatus(w, h int) {
	var line string
	if a.prompt != nil {
		line = a.prompt.label + string(a.prompt.input)
	} else {
		s := a.ed.Store()
		undo, redo := s.History().Stats()
		line = fmt.Sprintf(" %s | %s | shapes %d | selected %d | undo %d redo %d",
			a.ed.Tool(), a.ed.State(), s.Len(), len(s.SelectedIDs()), undo, redo)
		if a.status != "" {
			line += " | " + a.status
		}
	}
	a.writeLine(0, h, w, line, tcell.StyleDefault.Reverse(true))
}

// writeLine writes text from column x and pads the row to width w.
func (a *App) writeLine(x, y, w int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= w {
			break
		}
		a.screen.SetContent(x, y, r, nil, style)
		x += canvas.UnicodeWidth(r)
	}
	for ; x < w; x++ {
		a.screen.SetContent(x, y, ' ', nil, style)
	}
}

// putGlyph writes a possibly multi-rune glyph at a terminal cell.
func (a *App) putGlyph(x, y int, glyph string, style tcell.Style) {
	if !a.caps.Unicode {
		glyph = render.ASCII(glyph)
	}
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	a.screen.SetContent(x, y, runes[0], runes[1:], style)
}

func (a *App) style(color string) tcell.Style {
	style := tcell.StyleDefault
	if !a.caps.Color || color == "" {
		return style
	}
	c, ok := canvas.ParseColor(color)
	if !ok {
		return style
	}
	r, g, b := c.RGB255()
	return style.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}
