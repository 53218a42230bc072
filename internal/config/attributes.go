package config

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"github.com/BurntSushi/toml"

	"starbar/internal/ratingbar"
)

// attributeFile is the TOML form of ratingbar.Attributes. Pointer fields
// distinguish a missing key from a zero value.
type attributeFile struct {
	FilledDrawable string   `toml:"filled_drawable"`
	EmptyDrawable  string   `toml:"empty_drawable"`
	StarSize       *int     `toml:"star_size"`
	MaxStars       *int     `toml:"max_stars"`
	MinStars       *int     `toml:"min_stars"`
	StarSpacing    *int     `toml:"star_spacing"`
	StarsSelected  *float32 `toml:"stars_selected"`
}

// LoadAttributes reads rating bar attributes from a TOML file. Keys that are
// missing keep their defaults. Drawable paths are resolved relative to the
// file.
func LoadAttributes(path string) (ratingbar.Attributes, error) {
	attrs := ratingbar.DefaultAttributes()

	var file attributeFile
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return attrs, fmt.Errorf("failed to read attributes %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return attrs, fmt.Errorf("unknown attribute %q in %s", undecoded[0].String(), path)
	}

	dir := filepath.Dir(path)
	if file.FilledDrawable != "" {
		if attrs.FilledDrawable, err = loadDrawable(dir, file.FilledDrawable); err != nil {
			return attrs, err
		}
	}
	if file.EmptyDrawable != "" {
		if attrs.EmptyDrawable, err = loadDrawable(dir, file.EmptyDrawable); err != nil {
			return attrs, err
		}
	}
	if file.StarSize != nil {
		attrs.StarSize = *file.StarSize
	}
	if file.MaxStars != nil {
		attrs.MaxStars = *file.MaxStars
	}
	if file.MinStars != nil {
		attrs.MinStars = *file.MinStars
	}
	if file.StarSpacing != nil {
		attrs.StarSpacing = *file.StarSpacing
	}
	attrs.StarsSelected = file.StarsSelected
	return attrs, nil
}

func loadDrawable(dir, name string) (fyne.Resource, error) {
	if !filepath.IsAbs(name) {
		name = filepath.Join(dir, name)
	}
	res, err := fyne.LoadResourceFromPath(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load drawable %s: %w", name, err)
	}
	return res, nil
}
