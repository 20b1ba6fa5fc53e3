package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/smooth"
)

// ErrEmptyPath is returned when there is nothing to draw.
var ErrEmptyPath = errors.New("preview: empty path")

// Options controls the rendered image.
type Options struct {
	Width, Height int

	// Margin is the blank border, in pixels, around the fitted geometry.
	Margin float64

	// StrokeWidth is the curve width in pixels.
	StrokeWidth float64

	// MarkerSize is the side of the square drawn at each waypoint.
	// Zero hides the markers.
	MarkerSize float64

	Background    color.Color
	CurveColor    color.Color
	WaypointColor color.Color

	// Caption is drawn in the top-left corner when not empty.
	Caption string
}

// DefaultOptions returns an 800x600 preview with a dark curve on white.
func DefaultOptions() Options {
	return Options{
		Width:         800,
		Height:        600,
		Margin:        24,
		StrokeWidth:   2,
		MarkerSize:    7,
		Background:    color.White,
		CurveColor:    color.RGBA{R: 0x1f, G: 0x4e, B: 0x9c, A: 0xff},
		WaypointColor: color.RGBA{R: 0xd6, G: 0x3a, B: 0x2f, A: 0xff},
	}
}

// Render draws curve and, if not nil, its waypoints.
// Both are fitted together so markers line up with the curve.
func Render(curve, waypoints *smooth.Path, opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("preview: invalid size %dx%d", opts.Width, opts.Height)
	}
	if curve == nil || curve.Len() == 0 {
		return nil, ErrEmptyPath
	}

	bounds := curve.Bounds()
	if waypoints != nil && waypoints.Len() > 0 {
		bounds = bounds.Union(waypoints.Bounds())
	}
	tr := newTransform(bounds, opts)

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	z := vector.NewRasterizer(opts.Width, opts.Height)
	strokePolyline(z, curve, tr, opts.StrokeWidth)
	z.Draw(img, img.Bounds(), image.NewUniform(opts.CurveColor), image.Point{})

	if waypoints != nil && waypoints.Len() > 0 && opts.MarkerSize > 0 {
		z.Reset(opts.Width, opts.Height)
		for _, pt := range waypoints.All() {
			square(z, tr.apply(pt), opts.MarkerSize/2)
		}
		z.Draw(img, img.Bounds(), image.NewUniform(opts.WaypointColor), image.Point{})
	}

	if opts.Caption != "" {
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(opts.CurveColor),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(int(opts.Margin/2)+2, int(opts.Margin/2)+basicfont.Face7x13.Ascent),
		}
		d.DrawString(opts.Caption)
	}
	return img, nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

// SavePNG writes img to a PNG file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	if err := WritePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// transform maps world coordinates to pixels.
type transform struct {
	scale      float64
	offX, offY float64
	minX, minY float64
	height     float64
}

func newTransform(b smooth.Rect, opts Options) transform {
	availW := math.Max(float64(opts.Width)-2*opts.Margin, 1)
	availH := math.Max(float64(opts.Height)-2*opts.Margin, 1)

	// A flat or single-point extent still needs a finite scale.
	w := math.Max(b.Width(), 1e-9)
	h := math.Max(b.Height(), 1e-9)
	scale := math.Min(availW/w, availH/h)
	if b.Width() == 0 && b.Height() == 0 {
		scale = 1
	}

	return transform{
		scale:  scale,
		offX:   opts.Margin + (availW-b.Width()*scale)/2,
		offY:   opts.Margin + (availH-b.Height()*scale)/2,
		minX:   b.Min.X,
		minY:   b.Min.Y,
		height: float64(opts.Height),
	}
}

func (t transform) apply(p smooth.Point) smooth.Point {
	return smooth.Pt(
		t.offX+(p.X-t.minX)*t.scale,
		t.height-(t.offY+(p.Y-t.minY)*t.scale),
	)
}

// strokePolyline adds one quad per span plus a square cap at each vertex.
// Quads and squares must share a winding direction; opposite windings
// cancel where they overlap.
func strokePolyline(z *vector.Rasterizer, p *smooth.Path, tr transform, width float64) {
	half := math.Max(width, 0.5) / 2
	prev := tr.apply(p.First())
	square(z, prev, half)
	for i := 1; i < p.Len(); i++ {
		cur := tr.apply(p.At(i))
		d := cur.Sub(prev)
		if l := d.Magnitude(); l > 0 {
			n := smooth.Pt(-d.Y, d.X).Mul(half / l)
			a, b, c, e := prev.Add(n), cur.Add(n), cur.Sub(n), prev.Sub(n)
			z.MoveTo(float32(a.X), float32(a.Y))
			z.LineTo(float32(b.X), float32(b.Y))
			z.LineTo(float32(c.X), float32(c.Y))
			z.LineTo(float32(e.X), float32(e.Y))
			z.ClosePath()
		}
		square(z, cur, half)
		prev = cur
	}
}

func square(z *vector.Rasterizer, c smooth.Point, half float64) {
	x0, y0 := float32(c.X-half), float32(c.Y-half)
	x1, y1 := float32(c.X+half), float32(c.Y+half)
	z.MoveTo(x0, y0)
	z.LineTo(x0, y1)
	z.LineTo(x1, y1)
	z.LineTo(x1, y0)
	z.ClosePath()
}
