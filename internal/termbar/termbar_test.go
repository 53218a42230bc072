package termbar

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starbar/internal/rating"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 10)
	t.Cleanup(screen.Fini)
	return screen
}

func rowRunes(screen tcell.Screen, x, y, n int) string {
	out := make([]rune, n)
	for i := range out {
		r, _, _, _ := screen.GetContent(x+i, y)
		out[i] = r
	}
	return string(out)
}

func click(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)
}

func TestDraw(t *testing.T) {
	screen := newScreen(t)
	bar := New(screen, 2, 1, rating.NewModel(5, 0, 0))

	bar.SetRating(3)

	assert.Equal(t, "★  ★  ★  ☆  ☆", rowRunes(screen, 2, 1, 13))
	assert.Equal(t, 14, bar.Width())
}

func TestDrawClearsShrunkRow(t *testing.T) {
	screen := newScreen(t)
	bar := New(screen, 0, 0, rating.NewModel(5, 0, 5))
	bar.Draw()

	bar.SetMax(2)

	assert.Equal(t, "★  ★  ", rowRunes(screen, 0, 0, 6))
	assert.Equal(t, "         ", rowRunes(screen, 6, 0, 9))
}

func TestBoxes(t *testing.T) {
	screen := newScreen(t)
	bar := New(screen, 3, 0, rating.NewModel(3, 0, 0))

	assert.Equal(t, []rating.Box{{Left: 3, Right: 4}, {Left: 6, Right: 7}, {Left: 9, Right: 10}}, bar.Boxes())
}

func TestHandleEventSelects(t *testing.T) {
	screen := newScreen(t)
	model := rating.NewModel(5, 0, 0)
	bar := New(screen, 0, 2, model)
	var changes []float32
	bar.SetChangeListener(func(_ *Bar, r float32, fromUser bool) {
		assert.True(t, fromUser)
		changes = append(changes, r)
	})

	assert.True(t, bar.HandleEvent(click(7, 2)))
	assert.Equal(t, float32(3), model.Rating())
	assert.Equal(t, "★  ★  ★  ☆  ☆", rowRunes(screen, 0, 2, 13))

	assert.True(t, bar.HandleEvent(click(1, 2)), "right cell of the first star")
	assert.Equal(t, float32(1), model.Rating())

	assert.True(t, bar.HandleEvent(click(0, 2)), "left cell of the first star")
	assert.Equal(t, float32(0), model.Rating())

	assert.Equal(t, []float32{3, 1, 0}, changes)
}

func TestHandleEventIgnored(t *testing.T) {
	screen := newScreen(t)
	model := rating.NewModel(5, 0, 2)
	bar := New(screen, 0, 2, model)

	assert.False(t, bar.HandleEvent(click(3, 4)), "other rows")
	assert.False(t, bar.HandleEvent(tcell.NewEventMouse(3, 2, tcell.ButtonNone, tcell.ModNone)), "motion")
	assert.False(t, bar.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	assert.True(t, bar.HandleEvent(click(2, 2)), "spacing is consumed")
	assert.True(t, bar.HandleEvent(click(30, 2)), "past the last star is consumed")
	assert.Equal(t, float32(2), model.Rating())
}

func TestHandleEventIndicator(t *testing.T) {
	screen := newScreen(t)
	model := rating.NewModel(5, 0, 2)
	model.SetIndicator(true)
	bar := New(screen, 0, 0, model)

	assert.True(t, bar.HandleEvent(click(9, 0)))
	assert.Equal(t, float32(2), model.Rating())
}

func TestHandleEventBetweenStars(t *testing.T) {
	screen := newScreen(t)
	model := rating.NewModel(5, 0, 2)
	bar := New(screen, 0, 0, model)
	var changes []float32
	bar.SetChangeListener(func(_ *Bar, r float32, _ bool) { changes = append(changes, r) })

	assert.True(t, bar.HandleEvent(click(5, 0)))
	assert.Equal(t, float32(2), model.Rating())
	assert.Empty(t, changes)
}

func TestModelChangeRedraws(t *testing.T) {
	screen := newScreen(t)
	model := rating.NewModel(5, 0, 0)
	bar := New(screen, 0, 0, model)
	var changes []float32
	bar.SetChangeListener(func(_ *Bar, r float32, _ bool) { changes = append(changes, r) })

	model.SetRating(2, false)
	assert.Equal(t, "★  ★  ☆  ☆  ☆", rowRunes(screen, 0, 0, 13))

	model.SetMin(4)
	bar.Draw()
	assert.Equal(t, "★  ★  ★  ★  ☆", rowRunes(screen, 0, 0, 13))
	assert.Equal(t, []float32{2, 4}, changes, "raising to the minimum notifies once")
}

func TestHandleEventMinimum(t *testing.T) {
	screen := newScreen(t)
	model := rating.NewModel(5, 1, 1)
	bar := New(screen, 0, 0, model)

	bar.HandleEvent(click(0, 0))

	assert.Equal(t, float32(1), model.Rating())
}

func TestPromptSave(t *testing.T) {
	screen := newScreen(t)
	model := rating.NewModel(5, 0, 0)

	// the bar is drawn at column 1, row 3
	screen.InjectMouse(1+3*3, 3, tcell.Button1, tcell.ModNone)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	saved, err := Prompt(screen, "Rate: demo", model)

	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, float32(4), model.Rating())
	assert.Equal(t, "Rate: demo", rowRunes(screen, 1, 1, len("Rate: demo")))
}

func TestPromptCancel(t *testing.T) {
	screen := newScreen(t)
	model := rating.NewModel(5, 0, 2)

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	saved, err := Prompt(screen, "Rate", model)

	require.NoError(t, err)
	assert.False(t, saved)
	assert.Equal(t, float32(2), model.Rating())
}
