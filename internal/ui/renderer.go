package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonprobe/internal/grid"
	"github.com/samdwyer/dungeonprobe/internal/probe"
)

const (
	RuneEntrance = '@'
	RuneRoom     = '#'
	RuneGround   = '_' // Drawn above y=0, where no room may go
)

// Canvas is the drawing surface a Renderer writes to. *Screen implements it.
type Canvas interface {
	Clear()
	SetContent(x, y int, r rune, style tcell.Style)
	Show()
	Size() (width, height int)
}

// Renderer draws surveyed layouts to a canvas.
type Renderer struct {
	canvas Canvas
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// Origin returns the position of grid cell xy relative to the layout's
// top-left corner. Row 0 is reserved for the ground line, so the topmost
// room row is drawn at row 1.
func Origin(layout *probe.Layout, xy grid.Coord) (int, int) {
	lo, _ := layout.Bounds()
	return xy.X - lo.X, xy.Y - lo.Y + 1
}

// Render draws the layout and a one-line summary beneath it. A layout that
// fits the canvas width is centered; a wider one is centered on its entrance
// and clipped.
func (r *Renderer) Render(layout *probe.Layout) {
	r.canvas.Clear()

	width, height := r.canvas.Size()
	offset := r.offsetX(layout, width)
	set := func(x, y int, ch rune, style tcell.Style) {
		x += offset
		if x < 0 || x >= width || y < 0 || y >= height {
			return
		}
		r.canvas.SetContent(x, y, ch, style)
	}

	lo, hi := layout.Bounds()
	if layout.Len() > 0 && lo.Y == 0 {
		groundStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
		for x := lo.X; x <= hi.X; x++ {
			sx, _ := Origin(layout, grid.Coord{X: x, Y: 0})
			set(sx, 0, RuneGround, groundStyle)
		}
	}

	for _, room := range layout.Rooms {
		ch, style := r.roomStyle(layout, room)
		for _, xy := range room.Cells {
			sx, sy := Origin(layout, xy)
			set(sx, sy, ch, style)
		}
	}

	statusRow := 1
	if layout.Len() > 0 {
		statusRow = hi.Y - lo.Y + 3
	}
	if statusRow >= height {
		statusRow = height - 1
	}
	status := fmt.Sprintf("rooms: %d  accepted: %v  (q to quit)", layout.Len(), layout.Accepted)
	r.RenderMessage(status, statusRow)

	r.canvas.Show()
}

// offsetX returns the column shift applied to layout-relative positions.
func (r *Renderer) offsetX(layout *probe.Layout, width int) int {
	lw, _ := layout.Size()
	if lw <= width {
		return (width - lw) / 2
	}
	entrance, ok := layout.Room(layout.Entrance)
	if !ok || len(entrance.Cells) == 0 {
		return 0
	}
	ex, _ := Origin(layout, entrance.Cells[0])
	return width/2 - ex
}

// roomStyle returns the glyph and style for a room.
func (r *Renderer) roomStyle(layout *probe.Layout, room probe.Room) (rune, tcell.Style) {
	if room.ID == layout.Entrance {
		return RuneEntrance, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	}
	return RuneRoom, tcell.StyleDefault.Foreground(tcell.ColorGray)
}

// RenderMessage displays a message on the given row, clipped to the canvas.
func (r *Renderer) RenderMessage(msg string, y int) {
	width, height := r.canvas.Size()
	if y < 0 || y >= height {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		if i >= width {
			return
		}
		r.canvas.SetContent(i, y, ch, style)
	}
}
