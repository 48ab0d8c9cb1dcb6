package export

import (
	"fmt"
	"image/color"
	"io"

	"github.com/san-kum/vlab/internal/lab"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

var palette = []color.Color{
	color.RGBA{R: 0x00, G: 0x77, B: 0xbe, A: 0xff},
	color.RGBA{R: 0xe0, G: 0x4a, B: 0x3a, A: 0xff},
	color.RGBA{R: 0x2a, G: 0xa1, B: 0x5f, A: 0xff},
	color.RGBA{R: 0x8e, G: 0x44, B: 0xad, A: 0xff},
}

// ChartOptions controls chart size. Zero values select 8x6 inches.
type ChartOptions struct {
	Title  string
	Width  vg.Length
	Height vg.Length
	// Column plots a single dependent column; negative plots all of them.
	Column int
}

// Chart builds a line plot of ser, one line per dependent column.
func Chart(ser lab.Series, opts ChartOptions) (*plot.Plot, error) {
	if len(ser.Points) == 0 {
		return nil, fmt.Errorf("chart %s: %w", ser.Label, lab.ErrEmptySeries)
	}

	p := plot.New()
	p.Title.Text = opts.Title
	if p.Title.Text == "" {
		p.Title.Text = ser.Label
	}
	p.X.Label.Text = ser.XName
	p.Add(plotter.NewGrid())

	for col, name := range ser.YNames {
		if opts.Column >= 0 && col != opts.Column {
			continue
		}
		pts := make(plotter.XYs, len(ser.Points))
		for i, pt := range ser.Points {
			pts[i].X = pt.X
			pts[i].Y = pt.Y[col]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("chart %s/%s: %w", ser.Label, name, err)
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = palette[col%len(palette)]
		p.Add(line)
		p.Legend.Add(name, line)
		if opts.Column >= 0 {
			p.Y.Label.Text = name
		}
	}
	p.Legend.Top = true
	return p, nil
}

// WriteChart renders ser as PNG or SVG.
func WriteChart(w io.Writer, ser lab.Series, format string, opts ChartOptions) error {
	p, err := Chart(ser, opts)
	if err != nil {
		return err
	}
	width, height := opts.Width, opts.Height
	if width == 0 {
		width = 8 * vg.Inch
	}
	if height == 0 {
		height = 6 * vg.Inch
	}

	switch format {
	case FormatPNG:
		c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(96))
		p.Draw(draw.New(c))
		_, err = vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	case FormatSVG:
		c := vgsvg.New(width, height)
		p.Draw(draw.New(c))
		_, err = c.WriteTo(w)
	default:
		return fmt.Errorf("unsupported chart format: %s", format)
	}
	return err
}
