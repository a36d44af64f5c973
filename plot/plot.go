// Package plot draws a value series as a line chart on a fixed-size surface.
//
// The chart has no axes: the series label is written in the top-left corner,
// values are scaled between 85% of the minimum and 115% of the maximum, the
// line is stroked, the area under it is tinted and each sample is marked with
// a small disk.
package plot

import (
	"image/color"
	"math"
	"slices"
)

// Chart constants, in surface units.
const (
	Padding     = 28
	LineWidth   = 3
	PointRadius = 3

	headroom = 1.15
	footroom = 0.85
	// minSpan is the smallest value range, below it the range is widened to
	// one unit around its middle.
	minSpan = 1e-9
)

// Placeholder is written instead of the chart for an empty series.
const Placeholder = "no history"

var (
	LineColor  = color.RGBA{R: 0x6A, G: 0x4C, B: 0x9A, A: 0xFF}
	AreaColor  = color.NRGBA{R: 79, G: 209, B: 197, A: 31} // 12% opacity
	LabelColor = color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xFF}

	labelAnchor = Point{X: 6, Y: 14}
)

// Point is a position on a surface, Y grows downward.
type Point struct{ X, Y float64 }

// Surface is a fixed-size 2D drawing target.
type Surface interface {
	// Size returns the surface dimensions.
	Size() (width, height float64)
	// Clear erases the whole surface.
	Clear()
	// Text writes s with its baseline starting at 'at'.
	Text(at Point, s string, c color.Color)
	// Stroke draws the polyline through path.
	Stroke(path []Point, width float64, c color.Color)
	// Fill paints the closed polygon.
	Fill(polygon []Point, c color.Color)
	// Disk paints a filled circle.
	Disk(center Point, radius float64, c color.Color)
}

// Series is a labelled sequence of values, in chronological order.
type Series struct {
	Label  string
	Values []float64
}

// Geometry is the layout of a series inside the plot area.
type Geometry struct {
	Left, Top, Width, Height float64 // plot area
	Min, Max                 float64 // values mapped to the bottom and top of the plot area
	Points                   []Point
}

// Bottom returns the y coordinate of the plot area's bottom edge.
func (g Geometry) Bottom() float64 { return g.Top + g.Height }

// Layout maps values to points in a width x height surface.
//
// A single value is centered horizontally, and when all values are equal to
// zero the range is widened so that they sit in the vertical center.
func Layout(width, height float64, values []float64) Geometry {
	g := Geometry{
		Left:   Padding,
		Top:    Padding,
		Width:  math.Max(0, width-2*Padding),
		Height: math.Max(0, height-2*Padding),
	}
	if len(values) == 0 {
		return g
	}

	g.Max = slices.Max(values) * headroom
	g.Min = slices.Min(values) * footroom
	if g.Max-g.Min < minSpan {
		mid := (g.Max + g.Min) / 2
		g.Min, g.Max = mid-0.5, mid+0.5
	}

	n := len(values)
	g.Points = make([]Point, n)
	for i, v := range values {
		fx := 0.5
		if n > 1 {
			fx = float64(i) / float64(n-1)
		}
		g.Points[i] = Point{
			X: g.Left + fx*g.Width,
			Y: g.Top + (1-(v-g.Min)/(g.Max-g.Min))*g.Height,
		}
	}
	return g
}

// Render draws series on s.
func Render(s Surface, series Series) {
	s.Clear()
	s.Text(labelAnchor, series.Label, LabelColor)

	width, height := s.Size()
	if len(series.Values) == 0 {
		s.Text(Point{X: Padding, Y: height / 2}, Placeholder, LabelColor)
		return
	}
	g := Layout(width, height, series.Values)

	s.Stroke(g.Points, LineWidth, LineColor)

	// close the line down to the bottom corners of the plot area.
	area := append(slices.Clone(g.Points),
		Point{X: g.Left + g.Width, Y: g.Bottom()},
		Point{X: g.Left, Y: g.Bottom()},
	)
	s.Fill(area, AreaColor)

	for _, p := range g.Points {
		s.Disk(p, PointRadius, LineColor)
	}
}
