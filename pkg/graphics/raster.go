package graphics

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/go-drift/cardview/pkg/errors"
)

// cornerSegments is the number of line segments used per rounded corner.
const cornerSegments = 8

// circleSegments is the number of line segments used per circle.
const circleSegments = 64

// RasterCanvas implements Canvas on an in-memory RGBA image.
type RasterCanvas struct {
	img   *image.RGBA
	state rasterState
	stack []rasterState
}

type rasterState struct {
	dx, dy float64
	clip   image.Rectangle
}

// NewRasterCanvas creates a transparent canvas of the given pixel size.
func NewRasterCanvas(width, height int) *RasterCanvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &RasterCanvas{img: img, state: rasterState{clip: img.Bounds()}}
}

// Image returns the backing image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the whole canvas with color, ignoring the clip.
func (c *RasterCanvas) Clear(color Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(color.NRGBA()), image.Point{}, draw.Src)
}

func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *RasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *RasterCanvas) Translate(dx, dy float64) {
	c.state.dx += dx
	c.state.dy += dy
}

func (c *RasterCanvas) ClipRect(rect Rect) {
	r := rect.Translate(c.state.dx, c.state.dy)
	clip := image.Rect(
		int(math.Floor(r.Left)), int(math.Floor(r.Top)),
		int(math.Ceil(r.Right)), int(math.Ceil(r.Bottom)),
	)
	c.state.clip = c.state.clip.Intersect(clip)
}

func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	c.DrawRRect(RRectFromRectAndRadius(rect, Radius{}), paint)
}

func (c *RasterCanvas) DrawRRect(rrect RRect, paint Paint) {
	rect := rrect.Rect.Translate(c.state.dx, c.state.dy)
	radius := rrect.UniformRadius()
	if paint.Style == PaintStyleStroke {
		half := paint.StrokeWidth / 2
		if half <= 0 {
			return
		}
		outer := rrectPolygon(rect.Inflate(half), radius+half)
		inner := rrectPolygon(rect.Inflate(-half), math.Max(radius-half, 0))
		reverse(inner)
		c.fill(paint.Color, outer, inner)
		return
	}
	c.fill(paint.Color, rrectPolygon(rect, radius))
}

func (c *RasterCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	center = Offset{X: center.X + c.state.dx, Y: center.Y + c.state.dy}
	if paint.Style == PaintStyleStroke {
		half := paint.StrokeWidth / 2
		inner := circlePolygon(center, math.Max(radius-half, 0))
		reverse(inner)
		c.fill(paint.Color, circlePolygon(center, radius+half), inner)
		return
	}
	c.fill(paint.Color, circlePolygon(center, radius))
}

func (c *RasterCanvas) DrawText(text string, origin Offset, paint TextPaint) {
	face, err := paint.Face()
	if err != nil {
		errors.Report(&errors.CardError{Op: "graphics.DrawText", Kind: errors.KindRender, Err: err})
		return
	}
	dst, ok := c.img.SubImage(c.state.clip).(*image.RGBA)
	if !ok {
		return
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(paint.Color.NRGBA()),
		Face: face,
		Dot: fixed.Point26_6{
			X: toFixed(origin.X + c.state.dx),
			Y: toFixed(origin.Y + c.state.dy),
		},
	}
	d.DrawString(text)
}

func (c *RasterCanvas) DrawImage(img image.Image, dst Rect, tint *Color) {
	if img == nil {
		return
	}
	r := dst.Translate(c.state.dx, c.state.dy)
	target := image.Rect(
		int(math.Round(r.Left)), int(math.Round(r.Top)),
		int(math.Round(r.Right)), int(math.Round(r.Bottom)),
	)
	if target.Empty() {
		return
	}
	scaled := image.NewRGBA(image.Rect(0, 0, target.Dx(), target.Dy()))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Over, nil)

	out, ok := c.img.SubImage(c.state.clip).(*image.RGBA)
	if !ok {
		return
	}
	if tint == nil {
		draw.Draw(out, target, scaled, image.Point{}, draw.Over)
		return
	}
	draw.DrawMask(out, target, image.NewUniform(tint.NRGBA()), image.Point{}, scaled, image.Point{}, draw.Over)
}

func (c *RasterCanvas) Size() Size {
	b := c.img.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// fill rasterizes the polygons into a coverage mask and composites color
// through it, honoring the current clip.
func (c *RasterCanvas) fill(color Color, polygons ...[]Offset) {
	if color.Alpha() == 0 || c.state.clip.Empty() {
		return
	}
	b := c.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	for _, poly := range polygons {
		if len(poly) < 3 {
			continue
		}
		z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, p := range poly[1:] {
			z.LineTo(float32(p.X), float32(p.Y))
		}
		z.ClosePath()
	}
	mask := image.NewAlpha(b)
	z.Draw(mask, b, image.Opaque, image.Point{})
	draw.DrawMask(c.img, c.state.clip, image.NewUniform(color.NRGBA()), image.Point{}, mask, c.state.clip.Min, draw.Over)
}

// rrectPolygon flattens a rounded rectangle into a clockwise polygon.
func rrectPolygon(rect Rect, radius float64) []Offset {
	radius = math.Min(radius, math.Min(rect.Width(), rect.Height())/2)
	if radius <= 0 {
		return []Offset{
			{rect.Left, rect.Top}, {rect.Right, rect.Top},
			{rect.Right, rect.Bottom}, {rect.Left, rect.Bottom},
		}
	}
	corners := []struct {
		center Offset
		start  float64
	}{
		{Offset{rect.Right - radius, rect.Top + radius}, -math.Pi / 2},
		{Offset{rect.Right - radius, rect.Bottom - radius}, 0},
		{Offset{rect.Left + radius, rect.Bottom - radius}, math.Pi / 2},
		{Offset{rect.Left + radius, rect.Top + radius}, math.Pi},
	}
	points := make([]Offset, 0, 4*(cornerSegments+1))
	for _, corner := range corners {
		for i := 0; i <= cornerSegments; i++ {
			a := corner.start + (math.Pi/2)*float64(i)/cornerSegments
			points = append(points, Offset{
				X: corner.center.X + radius*math.Cos(a),
				Y: corner.center.Y + radius*math.Sin(a),
			})
		}
	}
	return points
}

func circlePolygon(center Offset, radius float64) []Offset {
	points := make([]Offset, circleSegments)
	for i := range points {
		a := 2 * math.Pi * float64(i) / circleSegments
		points[i] = Offset{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}
	return points
}

func reverse(points []Offset) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}
