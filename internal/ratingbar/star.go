package ratingbar

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// starLayoutParams are the per-star layout values, in pixels.
type starLayoutParams struct {
	size   int // width and height; 0 uses the natural size
	margin int // on every side
}

// starIcon is one star in the row. It only draws; the rating bar handles input.
type starIcon struct {
	widget.BaseWidget
	image  *canvas.Image
	params starLayoutParams
}

func newStarIcon(res fyne.Resource, params starLayoutParams) *starIcon {
	s := &starIcon{
		image:  canvas.NewImageFromResource(res),
		params: params,
	}
	s.image.FillMode = canvas.ImageFillContain
	s.image.ScaleMode = canvas.ImageScaleSmooth
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer is a mandatory method for a Fyne widget.
func (s *starIcon) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.image)
}

// Resource returns the image currently shown.
func (s *starIcon) Resource() fyne.Resource {
	return s.image.Resource
}

// SetResource swaps the image and repaints.
func (s *starIcon) SetResource(res fyne.Resource) {
	s.image.Resource = res
	canvas.Refresh(s.image)
}

// extent returns the star's side and margin in canvas units.
func (s *starIcon) extent(scale float32) (side, margin float32) {
	side = naturalStarSize()
	if s.params.size != 0 {
		side = float32(s.params.size) / scale
	}
	return side, float32(s.params.margin) / scale
}
