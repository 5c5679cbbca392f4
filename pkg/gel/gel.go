// Package gel draws digestion lanes next to a size ladder as an agarose
// gel image.
package gel

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/liserjrqlxue/seqviz/pkg/digest"
)

// ErrNoLanes is returned when there is nothing to draw.
var ErrNoLanes = errors.New("no lanes to draw")

// Band is one band in a lane. Top is the relative migration, 0 at the well.
type Band struct {
	Size int
	Top  float64
}

// Lane is a labelled column of bands. Ladder lanes label the size axis.
type Lane struct {
	Label  string
	Bands  []Band
	Ladder bool
}

// LadderLane is the lane for a size marker.
func LadderLane(l digest.Ladder) Lane {
	lane := Lane{Label: l.Name, Ladder: true}
	for _, s := range l.Sizes {
		lane.Bands = append(lane.Bands, Band{Size: s, Top: l.Top(s)})
	}
	return lane
}

// DigestLane is the lane for the fragments of one digestion.
func DigestLane(label string, frags []digest.GelFragment) Lane {
	lane := Lane{Label: label}
	for _, f := range frags {
		lane.Bands = append(lane.Bands, Band{Size: f.Size, Top: f.Top})
	}
	return lane
}

// Options size and title the image. Zero sizes use the defaults.
type Options struct {
	Title  string
	Width  vg.Length
	Height vg.Length
}

const (
	bandWidth  = 0.6 // in lanes
	bandHeight = vg.Length(3)
)

var bandColor = color.Gray{Y: 0x20}

// lanes draws every band as a bar centred on its lane.
type lanes []Lane

func (ls lanes) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, lane := range ls {
		x0, x1 := trX(float64(i)-bandWidth/2), trX(float64(i)+bandWidth/2)
		for _, b := range lane.Bands {
			y := trY(b.Top)
			pts := []vg.Point{
				{X: x0, Y: y - bandHeight/2},
				{X: x1, Y: y - bandHeight/2},
				{X: x1, Y: y + bandHeight/2},
				{X: x0, Y: y + bandHeight/2},
			}
			c.FillPolygon(bandColor, c.ClipPolygonXY(pts))
		}
	}
}

func (ls lanes) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -0.5, float64(len(ls)) - 0.5, 0, 1
}

// Plot builds the gel plot. The y axis runs from the well at the top down
// to the smallest ladder band.
func Plot(ls []Lane, title string) (*plot.Plot, error) {
	if len(ls) == 0 {
		return nil, ErrNoLanes
	}
	p := plot.New()
	p.Title.Text = title
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Y.Min, p.Y.Max = 0, 1
	p.Y.Label.Text = "bp"
	p.X.Padding, p.Y.Padding = 0, 0

	var xTicks []plot.Tick
	for i, lane := range ls {
		xTicks = append(xTicks, plot.Tick{Value: float64(i), Label: lane.Label})
	}
	p.X.Tick.Marker = plot.ConstantTicks(xTicks)

	var (
		yTicks []plot.Tick
		sizes  plotter.XYLabels
	)
	for i, lane := range ls {
		for _, b := range lane.Bands {
			if lane.Ladder {
				yTicks = append(yTicks, plot.Tick{Value: b.Top, Label: strconv.Itoa(b.Size)})
				continue
			}
			sizes.XYs = append(sizes.XYs, plotter.XY{X: float64(i) + bandWidth/2, Y: b.Top})
			sizes.Labels = append(sizes.Labels, strconv.Itoa(b.Size))
		}
	}
	if len(yTicks) > 0 {
		p.Y.Tick.Marker = plot.ConstantTicks(yTicks)
	} else {
		p.HideY()
	}

	p.Add(lanes(ls))
	if len(sizes.XYs) > 0 {
		labels, err := plotter.NewLabels(sizes)
		if err != nil {
			return nil, err
		}
		labels.Offset = vg.Point{X: vg.Points(2), Y: -bandHeight}
		p.Add(labels)
	}
	return p, nil
}

func (o Options) size(lanes int) (w, h vg.Length) {
	w, h = o.Width, o.Height
	if w <= 0 {
		w = vg.Length(lanes+1) * vg.Centimeter * 2
	}
	if h <= 0 {
		h = 12 * vg.Centimeter
	}
	return w, h
}

// Render writes the gel to w in format, one of svg, png, pdf, eps, jpg or tif.
func Render(w io.Writer, ls []Lane, format string, opts Options) error {
	p, err := Plot(ls, opts.Title)
	if err != nil {
		return err
	}
	width, height := opts.size(len(ls))
	wt, err := p.WriterTo(width, height, strings.ToLower(strings.TrimPrefix(format, ".")))
	if err != nil {
		return fmt.Errorf("render gel: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save writes the gel to path, the format taken from its extension.
func Save(path string, ls []Lane, opts Options) error {
	p, err := Plot(ls, opts.Title)
	if err != nil {
		return err
	}
	if filepath.Ext(path) == "" {
		return fmt.Errorf("save gel: %s has no extension to pick a format", path)
	}
	width, height := opts.size(len(ls))
	return p.Save(width, height, path)
}
