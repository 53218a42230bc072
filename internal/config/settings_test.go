package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"starbar/internal/ratingbar"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestMaxStars(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if got := settings.GetMaxStars(); got != 5 {
		t.Errorf("Expected default max stars 5, got %d", got)
	}

	settings.SetMaxStars(7)
	if got := settings.GetMaxStars(); got != 7 {
		t.Errorf("Expected max stars 7, got %d", got)
	}

	settings.SetMaxStars(0)
	if settings.GetMaxStars() != 1 {
		t.Error("Max stars should be clamped to minimum 1")
	}

	settings.SetMaxStars(100)
	if settings.GetMaxStars() != MaxStarsLimit {
		t.Errorf("Max stars should be clamped to maximum %d", MaxStarsLimit)
	}
}

func TestMinStars(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if got := settings.GetMinStars(); got != 0 {
		t.Errorf("Expected default min stars 0, got %d", got)
	}

	settings.SetMinStars(1)
	if got := settings.GetMinStars(); got != 1 {
		t.Errorf("Expected min stars 1, got %d", got)
	}

	settings.SetMinStars(-3)
	if settings.GetMinStars() != 0 {
		t.Error("Min stars should be clamped to 0")
	}
}

func TestStarSizeAndSpacing(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if settings.GetStarSize() != DefaultStarSize {
		t.Errorf("Expected default star size %d", DefaultStarSize)
	}
	settings.SetStarSize(32)
	if settings.GetStarSize() != 32 {
		t.Error("Star size should be 32")
	}
	settings.SetStarSize(-1)
	if settings.GetStarSize() != DefaultStarSize {
		t.Error("Negative star size should reset to the default")
	}

	if settings.GetStarSpacing() != ratingbar.UseDefaultSpacing {
		t.Errorf("Expected default spacing %d", ratingbar.UseDefaultSpacing)
	}
	settings.SetStarSpacing(2)
	if settings.GetStarSpacing() != 2 {
		t.Error("Spacing should be 2")
	}
}

func TestIndicatorAndDBDir(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if settings.GetIndicator() {
		t.Error("Indicator should default to false")
	}
	settings.SetIndicator(true)
	if !settings.GetIndicator() {
		t.Error("Indicator should be true")
	}

	if settings.GetDBDir() != "" {
		t.Error("Database directory should default to empty")
	}
	settings.SetDBDir("/tmp/ratings")
	if settings.GetDBDir() != "/tmp/ratings" {
		t.Error("Database directory should be /tmp/ratings")
	}
}

func TestSettingsAttributes(t *testing.T) {
	settings := NewSettings(test.NewApp())
	settings.SetMaxStars(10)
	settings.SetMinStars(1)
	settings.SetStarSpacing(3)

	attrs := settings.Attributes()

	if attrs.MaxStars != 10 || attrs.MinStars != 1 || attrs.StarSpacing != 3 {
		t.Errorf("Unexpected attributes %+v", attrs)
	}
	if attrs.FilledDrawable != ratingbar.FilledStarResource || attrs.EmptyDrawable != ratingbar.EmptyStarResource {
		t.Error("Attributes should use the bundled stars")
	}
	if attrs.Selected() != 1 {
		t.Errorf("Initial rating should be the minimum, got %v", attrs.Selected())
	}
}
