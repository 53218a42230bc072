package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starbar/internal/ratingbar"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadAttributesFull(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "gold.svg", `<svg xmlns="http://www.w3.org/2000/svg"/>`)
	writeFile(t, dir, "outline.svg", `<svg xmlns="http://www.w3.org/2000/svg"/>`)
	path := writeFile(t, dir, "bar.toml", `
filled_drawable = "gold.svg"
empty_drawable = "outline.svg"
star_size = 40
max_stars = 10
min_stars = 1
star_spacing = 2
stars_selected = 3.5
`)

	attrs, err := LoadAttributes(path)

	require.NoError(t, err)
	assert.Equal(t, "gold.svg", attrs.FilledDrawable.Name())
	assert.Equal(t, "outline.svg", attrs.EmptyDrawable.Name())
	assert.Equal(t, 40, attrs.StarSize)
	assert.Equal(t, 10, attrs.MaxStars)
	assert.Equal(t, 1, attrs.MinStars)
	assert.Equal(t, 2, attrs.StarSpacing)
	assert.Equal(t, float32(3.5), attrs.Selected())
}

func TestLoadAttributesDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bar.toml", "min_stars = 2\n")

	attrs, err := LoadAttributes(path)

	require.NoError(t, err)
	defaults := ratingbar.DefaultAttributes()
	assert.Equal(t, defaults.FilledDrawable, attrs.FilledDrawable)
	assert.Equal(t, defaults.EmptyDrawable, attrs.EmptyDrawable)
	assert.Equal(t, defaults.MaxStars, attrs.MaxStars)
	assert.Equal(t, defaults.StarSpacing, attrs.StarSpacing)
	assert.Equal(t, 0, attrs.StarSize)
	assert.Nil(t, attrs.StarsSelected)
	assert.Equal(t, float32(2), attrs.Selected(), "initial rating follows min_stars")
}

func TestLoadAttributesZeroValuesKept(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bar.toml", "max_stars = 0\nstar_spacing = 0\n")

	attrs, err := LoadAttributes(path)

	require.NoError(t, err)
	assert.Equal(t, 0, attrs.MaxStars)
	assert.Equal(t, 0, attrs.StarSpacing)
}

func TestLoadAttributesErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadAttributes(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	bad := writeFile(t, dir, "bad.toml", "max_stars = \n")
	_, err = LoadAttributes(bad)
	assert.Error(t, err)

	unknown := writeFile(t, dir, "unknown.toml", "star_colour = \"red\"\n")
	_, err = LoadAttributes(unknown)
	assert.ErrorContains(t, err, "star_colour")

	missingDrawable := writeFile(t, dir, "drawable.toml", "filled_drawable = \"nope.svg\"\n")
	_, err = LoadAttributes(missingDrawable)
	assert.ErrorContains(t, err, "nope.svg")
}
