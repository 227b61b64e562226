// Package ui draws surveyed layouts on a terminal using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen is the terminal the viewer draws on. It embeds tcell.Screen and
// narrows SetContent to the single-rune form a Canvas needs.
type Screen struct {
	tcell.Screen
}

var _ Canvas = (*Screen)(nil)

// NewScreen creates and initializes a terminal screen with the cursor hidden.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()
	return &Screen{Screen: s}, nil
}

// SetContent draws a single rune with no combining characters.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.Screen.SetContent(x, y, r, nil, style)
}
