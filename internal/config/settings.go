package config

import (
	"fyne.io/fyne/v2"

	"starbar/internal/rating"
	"starbar/internal/ratingbar"
)

// Settings keys for Fyne preferences
const (
	KeyMaxStars    = "max_stars"
	KeyMinStars    = "min_stars"
	KeyStarSize    = "star_size_dp"
	KeyStarSpacing = "star_spacing"
	KeyIndicator   = "indicator_only"
	KeyDBDir       = "database_directory"
)

// Default values
const (
	DefaultStarSize  = 0
	DefaultIndicator = false
	MaxStarsLimit    = 20
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetMaxStars returns the number of stars rating bars show
func (s *Settings) GetMaxStars() int {
	return s.app.Preferences().IntWithFallback(KeyMaxStars, rating.DefaultMaxStars)
}

// SetMaxStars sets the number of stars, limited to [1, MaxStarsLimit]
func (s *Settings) SetMaxStars(count int) {
	if count < 1 {
		count = 1
	}
	if count > MaxStarsLimit {
		count = MaxStarsLimit
	}
	s.app.Preferences().SetInt(KeyMaxStars, count)
}

// GetMinStars returns the lowest rating users can pick
func (s *Settings) GetMinStars() int {
	return s.app.Preferences().IntWithFallback(KeyMinStars, rating.DefaultMinStars)
}

// SetMinStars sets the lowest rating users can pick
func (s *Settings) SetMinStars(count int) {
	if count < 0 {
		count = 0
	}
	s.app.Preferences().SetInt(KeyMinStars, count)
}

// GetStarSize returns the star size in canvas units, 0 for the natural size
func (s *Settings) GetStarSize() int {
	return s.app.Preferences().IntWithFallback(KeyStarSize, DefaultStarSize)
}

// SetStarSize sets the star size in canvas units
func (s *Settings) SetStarSize(size int) {
	if size < 0 {
		size = DefaultStarSize
	}
	s.app.Preferences().SetInt(KeyStarSize, size)
}

// GetStarSpacing returns the spacing around each star in pixels. It is
// negative until set, so bars scale the default spacing themselves.
func (s *Settings) GetStarSpacing() int {
	return s.app.Preferences().IntWithFallback(KeyStarSpacing, ratingbar.UseDefaultSpacing)
}

// SetStarSpacing sets the spacing around each star in pixels
func (s *Settings) SetStarSpacing(spacing int) {
	s.app.Preferences().SetInt(KeyStarSpacing, spacing)
}

// GetIndicator returns whether rating bars are read-only
func (s *Settings) GetIndicator() bool {
	return s.app.Preferences().BoolWithFallback(KeyIndicator, DefaultIndicator)
}

// SetIndicator sets whether rating bars are read-only
func (s *Settings) SetIndicator(indicator bool) {
	s.app.Preferences().SetBool(KeyIndicator, indicator)
}

// GetDBDir returns the ratings database directory, empty for the default
func (s *Settings) GetDBDir() string {
	return s.app.Preferences().String(KeyDBDir)
}

// SetDBDir sets the ratings database directory
func (s *Settings) SetDBDir(dir string) {
	s.app.Preferences().SetString(KeyDBDir, dir)
}

// Attributes returns rating bar attributes built from these settings.
// The star size is left at 0; apply GetStarSize with SetStarSizeInDp once
// the bar exists so it is converted for the app's scale.
func (s *Settings) Attributes() ratingbar.Attributes {
	attrs := ratingbar.DefaultAttributes()
	attrs.MaxStars = s.GetMaxStars()
	attrs.MinStars = s.GetMinStars()
	attrs.StarSpacing = s.GetStarSpacing()
	return attrs
}

// GetMaxStarsOptions returns the star counts offered in the settings row
func (s *Settings) GetMaxStarsOptions() []int {
	return []int{3, 5, 7, 10}
}

// GetStarSizeOptions returns the star sizes offered in the settings row
func (s *Settings) GetStarSizeOptions() []int {
	return []int{0, 16, 24, 32, 48}
}
