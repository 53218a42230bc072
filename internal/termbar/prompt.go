package termbar

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"starbar/internal/rating"
)

const promptHelp = "click a star · enter/q save · esc cancel"

// Prompt shows title and a bar for model on screen and lets the user pick a
// rating with the mouse. It returns true when the user saves and false when
// they cancel. The screen must already be initialised; Prompt enables mouse
// reporting but does not finalise the screen.
func Prompt(screen tcell.Screen, title string, model *rating.Model) (bool, error) {
	if screen == nil {
		return false, fmt.Errorf("prompt needs a screen")
	}
	screen.EnableMouse()
	screen.Clear()

	drawText(screen, 1, 1, title, tcell.StyleDefault.Bold(true))
	bar := New(screen, 1, 3, model)
	status := func() {
		drawText(screen, 1, 5, fmt.Sprintf("%-12s", fmt.Sprintf("%g / %d", model.Rating(), model.Max())), tcell.StyleDefault)
	}
	bar.SetChangeListener(func(_ *Bar, _ float32, _ bool) { status() })
	drawText(screen, 1, 7, promptHelp, tcell.StyleDefault.Dim(true))
	bar.Draw()
	status()
	screen.Show()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return false, fmt.Errorf("screen closed before a rating was chosen")
		}
		if bar.HandleEvent(ev) {
			screen.Show()
			continue
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEnter:
				return true, nil
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				return true, nil
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return false, nil
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
