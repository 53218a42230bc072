// Package config reads rating bar configuration from Fyne preferences and
// from TOML attribute files.
package config
