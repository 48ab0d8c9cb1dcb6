package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/san-kum/vlab/internal/lab"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	Background = color.RGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 0xff}
	Foreground = color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff}
	Highlight  = color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}
)

// Image is a raster lab.Surface. Strokes are drawn Stroke pixels wide.
type Image struct {
	img    *image.RGBA
	fg, bg color.RGBA
	Stroke int
}

func NewImage(w, h int) *Image {
	im := &Image{
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		fg:     Foreground,
		bg:     Background,
		Stroke: 2,
	}
	im.Clear()
	return im
}

func (im *Image) RGBA() *image.RGBA { return im.img }

func (im *Image) Size() (int, int) {
	b := im.img.Bounds()
	return b.Dx(), b.Dy()
}

func (im *Image) Clear() {
	draw.Draw(im.img, im.img.Bounds(), image.NewUniform(im.bg), image.Point{}, draw.Src)
}

// SetColor changes the stroke color for subsequent drawing.
func (im *Image) SetColor(c color.RGBA) { im.fg = c }

func (im *Image) Set(x, y int) {
	if im.Stroke <= 1 {
		im.img.SetRGBA(x, y, im.fg)
		return
	}
	half := im.Stroke / 2
	for dy := -half; dy < im.Stroke-half; dy++ {
		for dx := -half; dx < im.Stroke-half; dx++ {
			im.img.SetRGBA(x+dx, y+dy, im.fg)
		}
	}
}

func (im *Image) Line(x0, y0, x1, y1 int) {
	lab.PlotLine(x0, y0, x1, y1, im.Set)
}

func (im *Image) Circle(cx, cy, r int, fill bool) {
	if fill {
		lab.PlotCircle(cx, cy, r, true, func(x, y int) { im.img.SetRGBA(x, y, im.fg) })
		return
	}
	lab.PlotCircle(cx, cy, r, false, im.Set)
}

// Text draws s with its top-left corner at (x, y).
func (im *Image) Text(x, y int, s string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  im.img,
		Src:  image.NewUniform(im.fg),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y + face.Ascent)},
	}
	d.DrawString(s)
}

func (im *Image) EncodePNG(w io.Writer) error {
	return png.Encode(w, im.img)
}

var _ lab.Surface = (*Image)(nil)
