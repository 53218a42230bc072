// Package ratingbar provides a Fyne star rating widget: a row of star images
// that are filled up to the current rating and can be tapped or dragged to
// select a new one.
package ratingbar

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"starbar/internal/rating"
)

// ChangeListener is notified after every rating change, including changes
// that leave the value as it was. rating is the stored, clamped value and
// fromUser is true only for changes made by tapping or dragging.
type ChangeListener interface {
	OnRatingChanged(bar *RatingBar, rating float32, fromUser bool)
}

// ChangeListenerFunc adapts a function to a ChangeListener.
type ChangeListenerFunc func(bar *RatingBar, rating float32, fromUser bool)

// OnRatingChanged calls f.
func (f ChangeListenerFunc) OnRatingChanged(bar *RatingBar, rating float32, fromUser bool) {
	f(bar, rating, fromUser)
}

// RatingBar is a row of stars showing a rating.
//
// The bar always handles its own taps and drags; there is no way to replace
// that handling. In indicator mode input is swallowed without effect.
type RatingBar struct {
	widget.BaseWidget

	model    *rating.Model
	filled   fyne.Resource
	empty    fyne.Resource
	starSize int // pixels, 0 for natural size
	margin   int // pixels
	listener ChangeListener

	row         *fyne.Container
	reconciling bool
}

var _ fyne.Widget = (*RatingBar)(nil)
var _ fyne.Tappable = (*RatingBar)(nil)
var _ fyne.Draggable = (*RatingBar)(nil)

// New creates a rating bar with DefaultAttributes.
func New() *RatingBar {
	return NewWithAttributes(DefaultAttributes())
}

// NewWithAttributes creates a rating bar from attrs. Missing drawables fall
// back to the bundled stars.
func NewWithAttributes(attrs Attributes) *RatingBar {
	r := &RatingBar{
		model:    rating.NewModel(attrs.MaxStars, attrs.MinStars, attrs.Selected()),
		filled:   attrs.FilledDrawable,
		empty:    attrs.EmptyDrawable,
		starSize: attrs.StarSize,
		margin:   attrs.StarSpacing,
	}
	if r.filled == nil {
		r.filled = FilledStarResource
	}
	if r.empty == nil {
		r.empty = EmptyStarResource
	}
	r.model.SetNotifier(r.notify)
	r.row = container.New(&starRowLayout{bar: r})
	r.ExtendBaseWidget(r)
	r.reconcile()
	return r
}

// CreateRenderer is a mandatory method for a Fyne widget.
func (r *RatingBar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.row)
}

// notify runs on every model change. The listener is told first, then the
// stars are redrawn unless a redraw is already in progress.
func (r *RatingBar) notify(value float32, fromUser bool) {
	if r.listener != nil {
		r.listener.OnRatingChanged(r, value, fromUser)
	}
	if !r.reconciling {
		r.reconcile()
	}
}

// SetRating sets the rating programmatically. The value is clamped to
// [MinStarCount, Max] and the listener is told with fromUser false.
func (r *RatingBar) SetRating(value float32) {
	r.model.SetRating(value, false)
}

// Rating returns the current rating.
func (r *RatingBar) Rating() float32 {
	return r.model.Rating()
}

// SetMax changes the number of stars. The rating is not re-clamped, so a
// rating above the new count shows every star filled.
func (r *RatingBar) SetMax(count int) {
	r.model.SetMax(count)
	r.reconcile()
}

// Max returns the number of stars.
func (r *RatingBar) Max() int {
	return r.model.Max()
}

// SetMinStarCount changes the lowest rating the user can select. The change
// takes effect on the next rating change or redraw.
func (r *RatingBar) SetMinStarCount(count int) {
	r.model.SetMin(count)
}

// MinStarCount returns the lowest rating the user can select.
func (r *RatingBar) MinStarCount() int {
	return r.model.Min()
}

// SetFilledDrawable changes the image of selected stars.
func (r *RatingBar) SetFilledDrawable(res fyne.Resource) {
	r.filled = res
	r.reconcile()
}

// SetEmptyDrawable changes the image of unselected stars.
func (r *RatingBar) SetEmptyDrawable(res fyne.Resource) {
	r.empty = res
	r.reconcile()
}

// SetIsIndicator makes the bar read-only when true.
func (r *RatingBar) SetIsIndicator(indicator bool) {
	r.model.SetIndicator(indicator)
}

// IsIndicator reports whether the bar ignores input.
func (r *RatingBar) IsIndicator() bool {
	return r.model.Indicator()
}

// SetStarSizeInDp resizes every existing star to size by size canvas units
// without rebuilding the row. A size of 0 restores the natural size.
func (r *RatingBar) SetStarSizeInDp(size int) {
	r.starSize = r.toPixels(float32(size))
	for _, o := range r.row.Objects {
		star := o.(*starIcon)
		star.params.size = r.starSize
		star.Refresh()
	}
	r.row.Refresh()
}

// SetChangeListener installs the single listener, replacing any previous one.
// nil removes it.
func (r *RatingBar) SetChangeListener(l ChangeListener) {
	r.listener = l
}

// ChangeListener returns the installed listener, or nil.
func (r *RatingBar) ChangeListener() ChangeListener {
	return r.listener
}

// Tapped selects the star under the pointer.
func (r *RatingBar) Tapped(ev *fyne.PointEvent) {
	r.touch(ev.Position.X)
}

// Dragged follows the pointer across the row.
func (r *RatingBar) Dragged(ev *fyne.DragEvent) {
	r.touch(ev.Position.X)
}

// DragEnd is required by fyne.Draggable.
func (r *RatingBar) DragEnd() {}

// touch maps a pointer at x, relative to the bar, onto the stars. It always
// reports the event as consumed.
func (r *RatingBar) touch(x float32) bool {
	return r.model.Touch(x, r.starBoxes())
}

func (r *RatingBar) starBoxes() []rating.Box {
	boxes := make([]rating.Box, len(r.row.Objects))
	for i, o := range r.row.Objects {
		left := o.Position().X
		boxes[i] = rating.Box{Left: left, Right: left + o.Size().Width}
	}
	return boxes
}

// reconcile matches the stars to the model: trims or extends the row, then
// shows each star filled or empty.
func (r *RatingBar) reconcile() {
	r.reconciling = true
	defer func() { r.reconciling = false }()

	for len(r.row.Objects) > r.model.Max() {
		r.row.Remove(r.row.Objects[len(r.row.Objects)-1])
	}
	for len(r.row.Objects) < r.model.Max() {
		r.row.Add(r.newStar())
	}

	for i, filled := range r.model.Reconcile() {
		star := r.row.Objects[i].(*starIcon)
		if filled {
			star.SetResource(r.filled)
		} else {
			star.SetResource(r.empty)
		}
	}
}

func (r *RatingBar) newStar() *starIcon {
	if r.margin < 0 {
		r.margin = r.toPixels(DefaultStarSpacing)
	}
	return newStarIcon(r.empty, starLayoutParams{size: r.starSize, margin: r.margin})
}

// scale is the number of pixels per canvas unit, taken from the app's scale
// setting. It is 1 when no app is running.
func (r *RatingBar) scale() float32 {
	app := fyne.CurrentApp()
	if app == nil {
		return 1
	}
	if s := app.Settings().Scale(); s > 0 {
		return s
	}
	return 1
}

func (r *RatingBar) toPixels(units float32) int {
	return int(units*r.scale() + 0.5)
}
