package ratingbar

import (
	"fyne.io/fyne/v2"

	"starbar/internal/rating"
)

// DefaultStarSpacing is the margin around each star, in canvas units, used
// when the spacing is negative.
const DefaultStarSpacing = 5

// UseDefaultSpacing asks the bar to convert DefaultStarSpacing to pixels at
// the current scale.
const UseDefaultSpacing = -1

// Attributes configure a RatingBar at construction. Sizes are in pixels.
type Attributes struct {
	FilledDrawable fyne.Resource
	EmptyDrawable  fyne.Resource
	StarSize       int // 0 uses the natural size
	MaxStars       int
	MinStars       int
	StarSpacing    int      // negative uses DefaultStarSpacing
	StarsSelected  *float32 // nil starts at MinStars
}

// DefaultAttributes returns the attributes New uses.
func DefaultAttributes() Attributes {
	return Attributes{
		FilledDrawable: FilledStarResource,
		EmptyDrawable:  EmptyStarResource,
		MaxStars:       rating.DefaultMaxStars,
		MinStars:       rating.DefaultMinStars,
		StarSpacing:    UseDefaultSpacing,
	}
}

// Selected returns the initial rating these attributes describe.
func (a Attributes) Selected() float32 {
	if a.StarsSelected != nil {
		return *a.StarsSelected
	}
	return float32(a.MinStars)
}
