package ratingbar

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// naturalStarSize is the side of a star with no fixed size. The bundled stars
// are vector images, so they take the theme's inline icon size.
func naturalStarSize() float32 {
	return theme.IconInlineSize()
}

// starRowLayout places stars left to right, each surrounded by its margin and
// centred vertically in the row.
type starRowLayout struct {
	bar *RatingBar
}

var _ fyne.Layout = (*starRowLayout)(nil)

func (l *starRowLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	scale := l.bar.scale()
	x := float32(0)
	for _, o := range objects {
		star, ok := o.(*starIcon)
		if !ok {
			continue
		}
		side, margin := star.extent(scale)
		star.Resize(fyne.NewSize(side, side))
		star.Move(fyne.NewPos(x+margin, (size.Height-side)/2))
		x += side + 2*margin
	}
}

func (l *starRowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	scale := l.bar.scale()
	min := fyne.NewSize(0, 0)
	for _, o := range objects {
		star, ok := o.(*starIcon)
		if !ok {
			continue
		}
		side, margin := star.extent(scale)
		min.Width += side + 2*margin
		if h := side + 2*margin; h > min.Height {
			min.Height = h
		}
	}
	return min
}
