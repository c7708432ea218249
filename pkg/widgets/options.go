package widgets

import "github.com/go-drift/surface/pkg/graphics"

// Default option values. Zero-valued fields resolve to these at
// construction; a supplied value always wins.
const (
	DefaultMaxVal           = 127
	DefaultSliderWidth      = 40
	DefaultSliderHeight     = 160
	DefaultHandleHeight     = 14
	DefaultMouseSensitivity = 1.0
	DefaultFontSize         = 14
	DefaultMenuPadding      = 6
	// rowHeightFactor converts a font size into a menu row height.
	rowHeightFactor = 1.5
)

// SliderOptions configures a Slider. The zero value of every field
// selects its default; unknown keys in a decoded config are ignored.
type SliderOptions struct {
	// MinVal is the value at the bottom of the travel. Default 0.
	MinVal float64 `yaml:"minVal"`
	// MaxVal is the value at the top of the travel. Default 127.
	MaxVal float64 `yaml:"maxVal"`
	// Val is the initial value. Default MinVal.
	Val float64 `yaml:"val"`
	// Decimals rounds committed values to this many decimal places.
	// Default 0 (whole numbers).
	Decimals int `yaml:"decimals"`
	// Width and Height size the control in pixels.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// SliderBodyColor fills the track.
	SliderBodyColor graphics.Color `yaml:"sliderBodyColor"`
	// SliderHandleColor fills the handle.
	SliderHandleColor graphics.Color `yaml:"sliderHandleColor"`
	// MouseSensitivity scales pixel movement into value movement
	// during handle drags. Default 1.
	MouseSensitivity float64 `yaml:"mouseSensitivity"`
}

// withDefaults resolves zero-valued fields.
func (o SliderOptions) withDefaults() SliderOptions {
	if o.MaxVal == 0 && o.MinVal == 0 {
		o.MaxVal = DefaultMaxVal
	}
	if o.Width == 0 {
		o.Width = DefaultSliderWidth
	}
	if o.Height == 0 {
		o.Height = DefaultSliderHeight
	}
	if o.SliderBodyColor == 0 {
		o.SliderBodyColor = graphics.RGB(0x44, 0x44, 0x44)
	}
	if o.SliderHandleColor == 0 {
		o.SliderHandleColor = graphics.RGB(0x1E, 0x90, 0xFF)
	}
	if o.MouseSensitivity == 0 {
		o.MouseSensitivity = DefaultMouseSensitivity
	}
	return o
}

// DropMenuOptions configures a DropMenu.
type DropMenuOptions struct {
	// MenuItems are the selectable labels, in display order.
	MenuItems []string `yaml:"menuItems"`
	// SelectedItemNum is the initially selected index. Default 0.
	SelectedItemNum int `yaml:"selectedItemNum"`
	// BackgroundColor fills the closed box and unhighlighted rows.
	BackgroundColor graphics.Color `yaml:"backgroundColor"`
	// FontColor paints labels.
	FontColor graphics.Color `yaml:"fontColor"`
	// FontSize in pixels. Default 14.
	FontSize float64 `yaml:"fontSize"`
	// FontFamily selects the face by name.
	FontFamily string `yaml:"fontFamily"`
	// SelectedItemBackgroundColor highlights the hovered row.
	SelectedItemBackgroundColor graphics.Color `yaml:"selectedItemBackgroundColor"`
	// SelectedItemFontColor paints the hovered row's label.
	SelectedItemFontColor graphics.Color `yaml:"selectedItemFontColor"`
	// Padding is the pixel inset around labels. Default 6.
	Padding float64 `yaml:"padding"`
}

func (o DropMenuOptions) withDefaults() DropMenuOptions {
	if o.BackgroundColor == 0 {
		o.BackgroundColor = graphics.RGB(0xF2, 0xF2, 0xF2)
	}
	if o.FontColor == 0 {
		o.FontColor = graphics.ColorBlack
	}
	if o.FontSize == 0 {
		o.FontSize = DefaultFontSize
	}
	if o.SelectedItemBackgroundColor == 0 {
		o.SelectedItemBackgroundColor = graphics.RGB(0x33, 0x66, 0x99)
	}
	if o.SelectedItemFontColor == 0 {
		o.SelectedItemFontColor = graphics.ColorWhite
	}
	if o.Padding == 0 {
		o.Padding = DefaultMenuPadding
	}
	return o
}
