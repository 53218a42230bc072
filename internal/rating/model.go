// Package rating holds the state of a star rating selector independently of
// how the stars are drawn. Front-ends own the star views; the Model owns the
// count, the selectable range and the current value, and decides which stars
// are filled and what a pointer position selects.
package rating

import "math"

const (
	// DefaultMaxStars is the number of stars shown when nothing else is configured.
	DefaultMaxStars = 5
	// DefaultMinStars is the lowest rating reachable by the pointer by default.
	DefaultMinStars = 0

	// clearFraction is the share of the first star, measured from its left
	// edge, that selects a rating of zero when zero is selectable.
	clearFraction float32 = 0.25
)

// Notifier receives every rating change. rating is the value that was stored.
type Notifier func(rating float32, fromUser bool)

// Box is the horizontal extent of one star in the same coordinate space as
// the pointer. Both edges are inclusive.
type Box struct {
	Left, Right float32
}

// Width returns the width of the box.
func (b Box) Width() float32 {
	return b.Right - b.Left
}

// Contains reports whether x lies within [Left, Right].
func (b Box) Contains(x float32) bool {
	return x >= b.Left && x <= b.Right
}

// Model is the state of a star rating selector.
type Model struct {
	max       int
	min       int
	current   float32
	indicator bool
	notify    Notifier
}

// NewModel creates a model with the given star count, minimum and initial
// value. The initial value is stored as given; Reconcile raises it to the
// minimum if needed.
func NewModel(max, min int, selected float32) *Model {
	if max < 0 {
		max = 0
	}
	return &Model{
		max:     max,
		min:     min,
		current: selected,
	}
}

// SetNotifier installs the single change notifier. nil removes it.
func (m *Model) SetNotifier(n Notifier) {
	m.notify = n
}

// Max returns the number of stars.
func (m *Model) Max() int {
	return m.max
}

// SetMax changes the number of stars. Negative counts are treated as zero.
// The current value is left alone even when it exceeds the new count.
func (m *Model) SetMax(count int) {
	if count < 0 {
		count = 0
	}
	m.max = count
}

// Min returns the lowest rating the pointer can select.
func (m *Model) Min() int {
	return m.min
}

// SetMin changes the lowest selectable rating. It does not re-clamp.
func (m *Model) SetMin(count int) {
	m.min = count
}

// Rating returns the current value.
func (m *Model) Rating() float32 {
	return m.current
}

// Indicator reports whether pointer input is ignored.
func (m *Model) Indicator() bool {
	return m.indicator
}

// SetIndicator switches between read-only and interactive mode.
func (m *Model) SetIndicator(indicator bool) {
	m.indicator = indicator
}

// Clamp limits v to [Min, Max]. A value below Min becomes Min, otherwise a
// value above Max becomes Max, so with Min > Max a large value ends at Max.
// NaN becomes Min.
func (m *Model) Clamp(v float32) float32 {
	if math.IsNaN(float64(v)) {
		return float32(m.min)
	}
	if v < float32(m.min) {
		return float32(m.min)
	} else if v > float32(m.max) {
		return float32(m.max)
	}
	return v
}

// SetRating clamps and stores v, then notifies. Every call notifies, even
// when the stored value does not change.
func (m *Model) SetRating(v float32, fromUser bool) {
	m.current = m.Clamp(v)
	if m.notify != nil {
		m.notify(m.current, fromUser)
	}
}

// Reconcile raises the current value to the minimum if it has fallen below
// it (notifying with fromUser false) and returns, for every star index, whether
// that star is filled.
func (m *Model) Reconcile() []bool {
	if m.current < float32(m.min) {
		m.current = float32(m.min)
		if m.notify != nil {
			m.notify(m.current, false)
		}
	}
	fills := make([]bool, m.max)
	for i := range fills {
		fills[i] = m.Filled(i)
	}
	return fills
}

// Filled reports whether star i is drawn filled.
func (m *Model) Filled(i int) bool {
	return float32(i) < m.current
}

// Select returns the rating a pointer at x selects on star i whose extent is
// box.
func (m *Model) Select(i int, box Box, x float32) float32 {
	if i == 0 && m.min == 0 {
		if (x-box.Left)/box.Width() <= clearFraction {
			return 0
		}
		return 1
	}
	return float32(i + 1)
}

// Hits returns the rating selected by every box containing x, in box order.
// The scan does not stop at the first match, so with overlapping boxes the
// last selection is the one that sticks.
func (m *Model) Hits(x float32, boxes []Box) []float32 {
	var hits []float32
	for i, box := range boxes {
		if box.Contains(x) {
			hits = append(hits, m.Select(i, box, x))
		}
	}
	return hits
}

// Touch applies a pointer event at x against the star extents in boxes,
// setting the rating once per hit with fromUser true. In indicator mode
// nothing changes. The event is always consumed.
func (m *Model) Touch(x float32, boxes []Box) bool {
	if m.indicator {
		return true
	}
	for _, sel := range m.Hits(x, boxes) {
		m.SetRating(sel, true)
	}
	return true
}
