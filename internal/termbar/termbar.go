// Package termbar draws a star rating selector on a terminal screen and
// lets the mouse pick a rating.
package termbar

import (
	"github.com/gdamore/tcell/v2"

	"starbar/internal/rating"
)

const (
	FilledRune = '★'
	EmptyRune  = '☆'

	// DefaultStarWidth is the number of cells a star covers. The left cell
	// of the first star clears the rating when zero is selectable.
	DefaultStarWidth = 2
	DefaultSpacing   = 1
)

// ChangeListener is told about every rating change.
type ChangeListener func(bar *Bar, rating float32, fromUser bool)

// Bar is a one-row star rating selector at a fixed screen position.
type Bar struct {
	screen tcell.Screen
	model  *rating.Model
	x, y   int

	StarWidth   int
	Spacing     int
	FilledStyle tcell.Style
	EmptyStyle  tcell.Style

	listener ChangeListener
	drawn    int // cells painted by the last Draw
	drawing  bool
}

// New places a bar for model at column x, row y of screen.
func New(screen tcell.Screen, x, y int, model *rating.Model) *Bar {
	b := &Bar{
		screen:      screen,
		model:       model,
		x:           x,
		y:           y,
		StarWidth:   DefaultStarWidth,
		Spacing:     DefaultSpacing,
		FilledStyle: tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		EmptyStyle:  tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
	model.SetNotifier(b.notify)
	return b
}

// Model returns the state behind the bar.
func (b *Bar) Model() *rating.Model {
	return b.model
}

// SetChangeListener installs the single listener. nil removes it.
func (b *Bar) SetChangeListener(l ChangeListener) {
	b.listener = l
}

// notify tells the listener about a model change, then redraws unless the
// change came from Draw itself.
func (b *Bar) notify(value float32, fromUser bool) {
	if b.listener != nil {
		b.listener(b, value, fromUser)
	}
	if !b.drawing {
		b.Draw()
	}
}

// SetRating sets the rating programmatically and redraws.
func (b *Bar) SetRating(value float32) {
	b.model.SetRating(value, false)
}

// SetMax changes the number of stars and redraws.
func (b *Bar) SetMax(count int) {
	b.model.SetMax(count)
	b.Draw()
}

// Width returns the number of cells the stars cover.
func (b *Bar) Width() int {
	if b.model.Max() == 0 {
		return 0
	}
	return b.model.Max()*(b.StarWidth+b.Spacing) - b.Spacing
}

// Boxes returns the column extent of every star.
func (b *Bar) Boxes() []rating.Box {
	boxes := make([]rating.Box, b.model.Max())
	for i := range boxes {
		left := b.x + i*(b.StarWidth+b.Spacing)
		boxes[i] = rating.Box{Left: float32(left), Right: float32(left + b.StarWidth - 1)}
	}
	return boxes
}

// Draw paints every star filled or empty and clears cells left over from a
// longer row. It does not call Show.
func (b *Bar) Draw() {
	b.drawing = true
	defer func() { b.drawing = false }()

	fills := b.model.Reconcile()
	for i, filled := range fills {
		r, style := EmptyRune, b.EmptyStyle
		if filled {
			r, style = FilledRune, b.FilledStyle
		}
		left := b.x + i*(b.StarWidth+b.Spacing)
		b.screen.SetContent(left, b.y, r, nil, style)
		for c := 1; c < b.StarWidth+b.Spacing; c++ {
			b.screen.SetContent(left+c, b.y, ' ', nil, tcell.StyleDefault)
		}
	}
	width := len(fills) * (b.StarWidth + b.Spacing)
	for c := width; c < b.drawn; c++ {
		b.screen.SetContent(b.x+c, b.y, ' ', nil, tcell.StyleDefault)
	}
	b.drawn = width
}

// HandleEvent applies a primary-button mouse event on the bar's row and
// reports whether it was consumed. Every such event is consumed, including in
// indicator mode and between stars. Other events are left to the caller.
func (b *Bar) HandleEvent(ev tcell.Event) bool {
	mouse, ok := ev.(*tcell.EventMouse)
	if !ok || mouse.Buttons()&tcell.Button1 == 0 {
		return false
	}
	x, y := mouse.Position()
	if y != b.y {
		return false
	}
	return b.model.Touch(float32(x), b.Boxes())
}
