// Package render rasterises a display snapshot into a portrait frame.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"aura_display/internal/models"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Frame size of the 2.8" panel in portrait orientation.
const (
	Width  = 240
	Height = 320

	margin     = 6
	lineHeight = 16
)

var (
	background = color.RGBA{R: 0x10, G: 0x18, B: 0x28, A: 0xff}
	foreground = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	accent     = color.RGBA{R: 0xff, G: 0xc8, B: 0x40, A: 0xff}
	muted      = color.RGBA{R: 0x90, G: 0x98, B: 0xa8, A: 0xff}
	off        = color.RGBA{A: 0xff}
)

// Frame draws snap. A dimmed screen is a black frame.
func Frame(snap *models.DisplaySnapshot) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	if snap == nil || snap.NightState == "dimmed" {
		draw.Draw(img, img.Bounds(), image.NewUniform(off), image.Point{}, draw.Src)
		return img
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	c := &canvas{img: img, y: margin + lineHeight}
	c.text(snap.Location.Name, accent)
	c.textRight(snap.Clock, foreground)
	c.newline()

	if snap.HasWeather {
		c.text(snap.CurrentTemp+"  "+snap.FeelsLike, foreground)
		c.newline()
		c.text(snap.Sunrise+"  "+snap.Sunset, muted)
		c.newline()
	} else if snap.WeatherError != "" {
		c.text(snap.WeatherError, muted)
		c.newline()
	}
	c.newline()

	c.text(snap.PanelTitle, accent)
	c.newline()
	switch snap.Panel {
	case models.PanelDaily:
		for _, r := range snap.Daily {
			c.columns(foreground, r.Day, r.High, r.Low)
		}
	case models.PanelHourly:
		for _, r := range snap.Hourly {
			c.columns(foreground, r.Time, r.Temperature, r.Precipitation)
		}
	case models.PanelTransit:
		for _, row := range snap.BusRows {
			c.text(row, foreground)
			c.newline()
		}
		if len(snap.BusRows) > 0 && len(snap.TubeRows) > 0 {
			c.newline()
		}
		for _, row := range snap.TubeRows {
			c.text(row, foreground)
			c.newline()
		}
	}
	return img
}

// WritePNG encodes the frame for snap.
func WritePNG(w io.Writer, snap *models.DisplaySnapshot) error {
	return png.Encode(w, Frame(snap))
}

type canvas struct {
	img *image.RGBA
	y   int
}

// The bitmap face has no arrow glyph.
var glyphFallback = strings.NewReplacer("→", "->")

func (c *canvas) drawer(col color.Color) *font.Drawer {
	return &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
	}
}

func (c *canvas) textAt(x int, s string, col color.Color) {
	d := c.drawer(col)
	d.Dot = fixed.P(x, c.y)
	d.DrawString(glyphFallback.Replace(s))
}

func (c *canvas) text(s string, col color.Color) { c.textAt(margin, s, col) }

func (c *canvas) textRight(s string, col color.Color) {
	s = glyphFallback.Replace(s)
	w := c.drawer(col).MeasureString(s).Ceil()
	c.textAt(Width-margin-w, s, col)
}

// columns lays out a label and two values in fixed columns.
func (c *canvas) columns(col color.Color, label, a, b string) {
	c.textAt(margin, label, col)
	c.textAt(Width/2, a, col)
	c.textAt(Width*3/4, b, muted)
	c.newline()
}

func (c *canvas) newline() { c.y += lineHeight }
