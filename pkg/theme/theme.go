// Package theme loads shared widget styling from an optional
// surface.yaml file and overlays it onto widget options.
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/surface/pkg/graphics"
	"github.com/go-drift/surface/pkg/widgets"
)

// Version is the library version a theme's minVersion is checked
// against.
const Version = "v0.3.0"

// Theme represents the optional surface.yaml configuration.
type Theme struct {
	// MinVersion rejects the theme when the running library is older.
	// Empty means any version.
	MinVersion string `yaml:"minVersion,omitempty"`
	// Palette holds named colors for hosts that build their own nodes.
	Palette map[string]graphics.Color `yaml:"palette,omitempty"`
	// Slider and DropMenu supply defaults for zero-valued option
	// fields; explicit option values always win.
	Slider   widgets.SliderOptions   `yaml:"slider,omitempty"`
	DropMenu widgets.DropMenuOptions `yaml:"dropMenu,omitempty"`
}

// Parse decodes a theme document and validates its version gate.
func Parse(data []byte) (*Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	if t.MinVersion != "" {
		if !semver.IsValid(t.MinVersion) {
			return nil, fmt.Errorf("theme minVersion %q is not a valid semantic version", t.MinVersion)
		}
		if semver.Compare(Version, t.MinVersion) < 0 {
			return nil, fmt.Errorf("theme requires %s, library is %s", t.MinVersion, Version)
		}
	}
	return &t, nil
}

// Load reads and parses a theme file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadOptional reads surface.yaml from dir if present. A missing file
// yields an empty theme, not an error.
func LoadOptional(dir string) (*Theme, error) {
	t, err := Load(filepath.Join(dir, "surface.yaml"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Theme{}, nil
		}
		return nil, err
	}
	return t, nil
}

// Color looks up a palette color by name.
func (t *Theme) Color(name string) (graphics.Color, bool) {
	c, ok := t.Palette[name]
	return c, ok
}

// ApplySlider fills zero-valued fields of opts from the theme's
// slider section.
func (t *Theme) ApplySlider(opts widgets.SliderOptions) widgets.SliderOptions {
	if opts.MinVal == 0 && opts.MaxVal == 0 {
		opts.MinVal = t.Slider.MinVal
		opts.MaxVal = t.Slider.MaxVal
	}
	if opts.Decimals == 0 {
		opts.Decimals = t.Slider.Decimals
	}
	if opts.Width == 0 {
		opts.Width = t.Slider.Width
	}
	if opts.Height == 0 {
		opts.Height = t.Slider.Height
	}
	if opts.SliderBodyColor == 0 {
		opts.SliderBodyColor = t.Slider.SliderBodyColor
	}
	if opts.SliderHandleColor == 0 {
		opts.SliderHandleColor = t.Slider.SliderHandleColor
	}
	if opts.MouseSensitivity == 0 {
		opts.MouseSensitivity = t.Slider.MouseSensitivity
	}
	return opts
}

// ApplyDropMenu fills zero-valued fields of opts from the theme's
// dropMenu section. MenuItems and SelectedItemNum are per-widget
// state and never come from a theme.
func (t *Theme) ApplyDropMenu(opts widgets.DropMenuOptions) widgets.DropMenuOptions {
	if opts.BackgroundColor == 0 {
		opts.BackgroundColor = t.DropMenu.BackgroundColor
	}
	if opts.FontColor == 0 {
		opts.FontColor = t.DropMenu.FontColor
	}
	if opts.FontSize == 0 {
		opts.FontSize = t.DropMenu.FontSize
	}
	if opts.FontFamily == "" {
		opts.FontFamily = t.DropMenu.FontFamily
	}
	if opts.SelectedItemBackgroundColor == 0 {
		opts.SelectedItemBackgroundColor = t.DropMenu.SelectedItemBackgroundColor
	}
	if opts.SelectedItemFontColor == 0 {
		opts.SelectedItemFontColor = t.DropMenu.SelectedItemFontColor
	}
	if opts.Padding == 0 {
		opts.Padding = t.DropMenu.Padding
	}
	return opts
}
