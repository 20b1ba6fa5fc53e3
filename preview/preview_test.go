package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/smooth"
)

func demo(t *testing.T) (*smooth.Path, *smooth.Path) {
	t.Helper()
	waypoints := smooth.NewPath(
		smooth.Pt(10, 7), smooth.Pt(15, 10), smooth.Pt(20, 13), smooth.Pt(25, 12),
		smooth.Pt(30, 7), smooth.Pt(35, 8), smooth.Pt(40, 10),
	)
	curve, err := smooth.Smooth(waypoints)
	require.NoError(t, err)
	return curve, waypoints
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// assertColorNear allows one step of rounding from the coverage mask.
func assertColorNear(t *testing.T, want color.Color, got color.RGBA, msgAndArgs ...any) {
	t.Helper()
	w := rgba(want)
	assert.InDelta(t, float64(w.R), float64(got.R), 1, msgAndArgs...)
	assert.InDelta(t, float64(w.G), float64(got.G), 1, msgAndArgs...)
	assert.InDelta(t, float64(w.B), float64(got.B), 1, msgAndArgs...)
	assert.InDelta(t, float64(w.A), float64(got.A), 1, msgAndArgs...)
}

func TestRender_Basics(t *testing.T) {
	curve, waypoints := demo(t)
	opts := DefaultOptions()

	img, err := Render(curve, waypoints, opts)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, opts.Width, opts.Height), img.Bounds())

	// Corners stay background.
	assert.Equal(t, rgba(opts.Background), img.RGBAAt(0, 0))
	assert.Equal(t, rgba(opts.Background), img.RGBAAt(opts.Width-1, opts.Height-1))

	tr := newTransform(curve.Bounds().Union(waypoints.Bounds()), opts)

	// Waypoint markers are drawn on top of the curve.
	for _, wp := range waypoints.All() {
		px := tr.apply(wp)
		assertColorNear(t, opts.WaypointColor, img.RGBAAt(int(px.X), int(px.Y)), "waypoint %v", wp)
	}

	// Between waypoints the curve colour shows.
	mid := tr.apply(curve.At(5))
	assertColorNear(t, opts.CurveColor, img.RGBAAt(int(mid.X), int(mid.Y)))
}

func TestRender_FitsInsideMargin(t *testing.T) {
	curve, waypoints := demo(t)
	opts := DefaultOptions()
	tr := newTransform(curve.Bounds().Union(waypoints.Bounds()), opts)

	for _, pt := range curve.All() {
		px := tr.apply(pt)
		assert.GreaterOrEqual(t, px.X, opts.Margin-1e-9)
		assert.LessOrEqual(t, px.X, float64(opts.Width)-opts.Margin+1e-9)
		assert.GreaterOrEqual(t, px.Y, opts.Margin-1e-9)
		assert.LessOrEqual(t, px.Y, float64(opts.Height)-opts.Margin+1e-9)
	}
}

func TestTransform_YAxisUp(t *testing.T) {
	opts := DefaultOptions()
	tr := newTransform(smooth.NewRect(smooth.Pt(0, 0), smooth.Pt(10, 10)), opts)
	low := tr.apply(smooth.Pt(5, 0))
	high := tr.apply(smooth.Pt(5, 10))
	assert.Greater(t, low.Y, high.Y, "larger y must be higher in the image")
}

func TestTransform_DegenerateBounds(t *testing.T) {
	opts := DefaultOptions()

	tr := newTransform(smooth.NewRect(smooth.Pt(3, 3), smooth.Pt(3, 3)), opts)
	px := tr.apply(smooth.Pt(3, 3))
	assert.InDelta(t, float64(opts.Width)/2, px.X, 1e-9)
	assert.InDelta(t, float64(opts.Height)/2, px.Y, 1e-9)

	// Horizontal line: zero height, still finite.
	tr = newTransform(smooth.NewRect(smooth.Pt(0, 1), smooth.Pt(10, 1)), opts)
	px = tr.apply(smooth.Pt(10, 1))
	assert.InDelta(t, float64(opts.Width)-opts.Margin, px.X, 1e-9)
}

func TestRender_Caption(t *testing.T) {
	curve, _ := demo(t)
	opts := DefaultOptions()
	opts.Caption = "61 points"

	withCaption, err := Render(curve, nil, opts)
	require.NoError(t, err)
	opts.Caption = ""
	without, err := Render(curve, nil, opts)
	require.NoError(t, err)

	assert.NotEqual(t, withCaption.Pix, without.Pix)
}

func TestRender_Errors(t *testing.T) {
	curve, _ := demo(t)

	opts := DefaultOptions()
	opts.Width = 0
	_, err := Render(curve, nil, opts)
	assert.Error(t, err)

	_, err = Render(nil, nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrEmptyPath)

	_, err = Render(smooth.NewPath(), nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestWritePNG(t *testing.T) {
	curve, waypoints := demo(t)
	opts := DefaultOptions()
	opts.Width, opts.Height = 64, 48
	img, err := Render(curve, waypoints, opts)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, img))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())

	name := filepath.Join(t.TempDir(), "out.png")
	assert.NoError(t, SavePNG(name, img))
}
