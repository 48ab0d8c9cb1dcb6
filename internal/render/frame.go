package render

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"math"

	"github.com/san-kum/vlab/internal/lab"
)

const lineHeight = 15

// Frame draws inst at its current clock time with the readout panel in the
// bottom-left corner.
func Frame(inst lab.Instance, w, h int) *Image {
	im := NewImage(w, h)
	inst.Draw(im)

	readings := inst.Readout()
	y := h - 6 - lineHeight*len(readings)
	im.SetColor(Highlight)
	for _, r := range readings {
		im.Text(6, y, r.Format())
		y += lineHeight
	}
	im.SetColor(Foreground)
	return im
}

// WritePNG renders one frame at simulation time t.
func WritePNG(out io.Writer, inst lab.Instance, t float64, w, h int) error {
	inst.Seek(t)
	return Frame(inst, w, h).EncodePNG(out)
}

// WriteGIF renders seconds of simulated time at fps into a looping GIF.
func WriteGIF(out io.Writer, inst lab.Instance, seconds float64, fps, w, h int) error {
	if fps <= 0 {
		fps = 20
	}
	n := max(int(math.Ceil(seconds*float64(fps))), 1)
	delay := max(100/fps, 1)

	anim := &gif.GIF{LoopCount: 0}
	for i := 0; i < n; i++ {
		inst.Seek(float64(i) / float64(fps))
		frame := Frame(inst, w, h).RGBA()
		pal := image.NewPaletted(frame.Bounds(), paletteFor())
		draw.Draw(pal, frame.Bounds(), frame, image.Point{}, draw.Src)
		anim.Image = append(anim.Image, pal)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(out, anim)
}

func paletteFor() color.Palette {
	p := make(color.Palette, 0, len(palette.WebSafe)+3)
	p = append(p, Background, Foreground, Highlight)
	return append(p, palette.WebSafe...)
}
