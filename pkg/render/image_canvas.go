package render

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/surface/pkg/graphics"
)

// ImageCanvas rasterizes drawing operations onto an in-memory RGBA
// image. It is the raster Canvas used for snapshots; a vector host can
// substitute its own implementation.
type ImageCanvas struct {
	img  *image.RGBA
	face font.Face
}

// NewImageCanvas allocates a canvas of the given pixel size.
func NewImageCanvas(size graphics.Size) *ImageCanvas {
	w := int(math.Ceil(size.Width))
	h := int(math.Ceil(size.Height))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &ImageCanvas{
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		face: basicfont.Face7x13,
	}
}

// Image returns the backing image.
func (c *ImageCanvas) Image() *image.RGBA {
	return c.img
}

func (c *ImageCanvas) Size() graphics.Size {
	b := c.img.Bounds()
	return graphics.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (c *ImageCanvas) Clear(color graphics.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(color.NRGBA()), image.Point{}, draw.Src)
}

func (c *ImageCanvas) FillRect(rect graphics.Rect, color graphics.Color) {
	draw.Draw(c.img, pixelRect(rect), image.NewUniform(color.NRGBA()), image.Point{}, draw.Over)
}

func (c *ImageCanvas) StrokeRect(rect graphics.Rect, color graphics.Color, width float64) {
	if width <= 0 {
		width = 1
	}
	w := rect.Width()
	h := rect.Height()
	c.FillRect(graphics.RectFromLTWH(rect.Left, rect.Top, w, width), color)
	c.FillRect(graphics.RectFromLTWH(rect.Left, rect.Bottom-width, w, width), color)
	c.FillRect(graphics.RectFromLTWH(rect.Left, rect.Top, width, h), color)
	c.FillRect(graphics.RectFromLTWH(rect.Right-width, rect.Top, width, h), color)
}

func (c *ImageCanvas) FillCircle(center graphics.Offset, radius float64, color graphics.Color) {
	src := image.NewUniform(color.NRGBA())
	top := int(math.Floor(center.Y - radius))
	bottom := int(math.Ceil(center.Y + radius))
	for y := top; y <= bottom; y++ {
		dy := float64(y) + 0.5 - center.Y
		span := radius*radius - dy*dy
		if span < 0 {
			continue
		}
		half := math.Sqrt(span)
		row := image.Rect(
			int(math.Floor(center.X-half)), y,
			int(math.Ceil(center.X+half)), y+1,
		)
		draw.Draw(c.img, row, src, image.Point{}, draw.Over)
	}
}

func (c *ImageCanvas) DrawText(text string, origin graphics.Offset, style graphics.TextStyle) {
	drawer := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(style.Color.NRGBA()),
		Face: c.face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(origin.X * 64),
			Y: fixed.Int26_6(origin.Y * 64),
		},
	}
	drawer.DrawString(text)
}

func pixelRect(r graphics.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Left)), int(math.Floor(r.Top)),
		int(math.Ceil(r.Right)), int(math.Ceil(r.Bottom)),
	)
}
