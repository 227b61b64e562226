package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonprobe/internal/constraints"
	"github.com/samdwyer/dungeonprobe/internal/grid"
	"github.com/samdwyer/dungeonprobe/internal/probe"
	"github.com/samdwyer/dungeonprobe/internal/telemetry"
)

// fakeCanvas records drawn cells for inspection.
type fakeCanvas struct {
	width, height int
	cells         map[[2]int]rune
	shown         int
	clears        int
}

func newFakeCanvas(width, height int) *fakeCanvas {
	return &fakeCanvas{width: width, height: height, cells: make(map[[2]int]rune)}
}

func (f *fakeCanvas) Clear() {
	f.clears++
	f.cells = make(map[[2]int]rune)
}

func (f *fakeCanvas) SetContent(x, y int, r rune, _ tcell.Style) {
	f.cells[[2]int{x, y}] = r
}

func (f *fakeCanvas) Show() { f.shown++ }

func (f *fakeCanvas) Size() (int, int) { return f.width, f.height }

func (f *fakeCanvas) row(y, from, to int) string {
	var b strings.Builder
	for x := from; x < to; x++ {
		if r, ok := f.cells[[2]int{x, y}]; ok {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// column is a test constraint set whose rooms form a vertical line starting
// at a given cell, each room adjacent only to the one below it.
type column struct {
	*constraints.Count
	space *grid.Space
	start grid.RoomID
}

func newColumn(top grid.Coord, maxSpaces int) *column {
	s := grid.NewSpace()
	return &column{
		Count: constraints.NewCount(maxSpaces, 0, 0),
		space: s,
		start: s.Resolve(top),
	}
}

func (c *column) InitialRooms() []grid.RoomID { return []grid.RoomID{c.start} }

func (c *column) AdjacentRooms(id grid.RoomID) []grid.RoomID {
	return []grid.RoomID{c.space.Resolve(c.space.CoordOf(id).Step(grid.Down))}
}

func (c *column) Coords(id grid.RoomID) []grid.Coord {
	return []grid.Coord{c.space.CoordOf(id)}
}

func survey(c constraints.Constraints) *probe.Layout {
	return probe.Survey(context.Background(), telemetry.NoopTracer(), c)
}

func TestRenderLayout(t *testing.T) {
	layout := survey(constraints.NewCount(4, 0, 0))
	canvas := newFakeCanvas(40, 10)

	NewRenderer(canvas).Render(layout)

	if canvas.shown != 1 || canvas.clears != 1 {
		t.Errorf("Expected one clear and one show, got %d and %d", canvas.clears, canvas.shown)
	}

	// Entrance (0,0) plus (0,1), (-1,0), (1,0), centered: (40-3)/2 = 18.
	if got := canvas.row(0, 18, 21); got != "___" {
		t.Errorf("Ground row = %q", got)
	}
	if got := canvas.row(1, 18, 21); got != "#@#" {
		t.Errorf("Row 1 = %q, expected %q", got, "#@#")
	}
	if got := canvas.row(2, 18, 21); got != " # " {
		t.Errorf("Row 2 = %q, expected %q", got, " # ")
	}

	if status := canvas.row(4, 0, 9); status != "rooms: 4 " {
		t.Errorf("Status row = %q", status)
	}
}

func TestRenderWideLayoutCentersOnEntrance(t *testing.T) {
	layout := survey(constraints.NewCount(60, 0, 0))
	if w, _ := layout.Size(); w <= 5 {
		t.Fatalf("Layout width %d should exceed the canvas", w)
	}
	canvas := newFakeCanvas(5, 4)

	NewRenderer(canvas).Render(layout)

	if got := canvas.cells[[2]int{2, 1}]; got != RuneEntrance {
		t.Errorf("Entrance not centered: cell (2,1) = %q", got)
	}
	for pos := range canvas.cells {
		if pos[0] < 0 || pos[0] >= 5 || pos[1] < 0 || pos[1] >= 4 {
			t.Errorf("Drew outside the canvas at %v", pos)
		}
	}
}

func TestRenderLayoutBelowGround(t *testing.T) {
	layout := survey(newColumn(grid.Coord{X: 0, Y: 2}, 3))
	canvas := newFakeCanvas(40, 10)

	NewRenderer(canvas).Render(layout)

	x, y := Origin(layout, grid.Coord{X: 0, Y: 2})
	if x != 0 || y != 1 {
		t.Errorf("Origin(0,2) = (%d,%d), expected (0,1)", x, y)
	}

	// Width 1 is centered at column 19.
	if got := canvas.row(0, 19, 20); got != " " {
		t.Errorf("Ground line should not be drawn below y=0, row 0 = %q", got)
	}
	for i, want := range []rune{RuneEntrance, RuneRoom, RuneRoom} {
		if got := canvas.cells[[2]int{19, i + 1}]; got != want {
			t.Errorf("Row %d = %q, expected %q", i+1, got, want)
		}
	}
	if status := canvas.row(5, 0, 8); status != "rooms: 3" {
		t.Errorf("Status row = %q, expected it below the rooms", status)
	}
}

func TestOrigin(t *testing.T) {
	layout := survey(constraints.NewCount(4, 0, 0))

	x, y := Origin(layout, grid.Coord{X: -1, Y: 0})
	if x != 0 || y != 1 {
		t.Errorf("Origin(-1,0) = (%d,%d), expected (0,1)", x, y)
	}
}

func TestRenderEmptyLayout(t *testing.T) {
	layout := survey(constraints.NewCount(0, 0, 0))
	canvas := newFakeCanvas(40, 10)

	NewRenderer(canvas).Render(layout)

	if got := canvas.row(1, 0, 8); got != "rooms: 0" {
		t.Errorf("Status row = %q", got)
	}
	if got := canvas.row(0, 0, 40); strings.TrimSpace(got) != "" {
		t.Errorf("Empty layout drew a ground line: %q", got)
	}
}
