package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonprobe/internal/probe"
	"github.com/samdwyer/dungeonprobe/internal/ui"
)

// view shows the layout until the user quits.
func view(layout *probe.Layout) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	renderer := ui.NewRenderer(screen)
	for {
		renderer.Render(layout)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if quitKey(ev) {
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			return nil
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		}
	}
	return false
}
