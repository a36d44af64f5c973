package plot

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// diskSegments is the number of sides of the polygon approximating a disk.
const diskSegments = 32

// Canvas is a raster Surface.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
	// Background is the color of a cleared canvas.
	Background color.Color
}

// NewCanvas returns a white canvas of the given size in pixels.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		z:          vector.NewRasterizer(width, height),
		Background: color.White,
	}
}

// Image returns the canvas pixels.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (width, height float64) {
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.Background), image.Point{}, draw.Src)
}

func (c *Canvas) Text(at Point, s string, col color.Color) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(at.X * 64), Y: fixed.Int26_6(at.Y * 64)},
	}
	d.DrawString(s)
}

func (c *Canvas) Fill(polygon []Point, col color.Color) {
	if len(polygon) < 3 {
		return
	}
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.MoveTo(float32(polygon[0].X), float32(polygon[0].Y))
	for _, p := range polygon[1:] {
		c.z.LineTo(float32(p.X), float32(p.Y))
	}
	c.z.ClosePath()
	c.z.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// Stroke paints each segment as a rectangle, with round joins.
func (c *Canvas) Stroke(path []Point, width float64, col color.Color) {
	half := width / 2
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*half, dx/l*half
		c.Fill([]Point{
			{a.X + nx, a.Y + ny},
			{b.X + nx, b.Y + ny},
			{b.X - nx, b.Y - ny},
			{a.X - nx, a.Y - ny},
		}, col)
		if i < len(path)-1 {
			c.Disk(b, half, col)
		}
	}
}

func (c *Canvas) Disk(center Point, radius float64, col color.Color) {
	polygon := make([]Point, diskSegments)
	for i := range polygon {
		a := 2 * math.Pi * float64(i) / diskSegments
		polygon[i] = Point{center.X + radius*math.Cos(a), center.Y + radius*math.Sin(a)}
	}
	c.Fill(polygon, col)
}

// EncodePNG renders series on a width x height canvas and writes it as PNG.
func EncodePNG(w io.Writer, width, height int, series Series) error {
	c := NewCanvas(width, height)
	Render(c, series)
	return png.Encode(w, c.Image())
}
