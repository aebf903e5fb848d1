package view

import "github.com/go-drift/cardview/pkg/graphics"

// Drawable paints itself into a rectangle.
type Drawable interface {
	Draw(canvas graphics.Canvas, bounds graphics.Rect)
}

// Shape is the outline of a ShapeDrawable.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeOval
)

// ShapeDrawable fills a rectangle or the largest centered circle.
type ShapeDrawable struct {
	shape Shape
	color graphics.Color
}

// NewShapeDrawable creates a shape filled with color.
func NewShapeDrawable(shape Shape, color graphics.Color) *ShapeDrawable {
	return &ShapeDrawable{shape: shape, color: color}
}

// Color returns the fill color.
func (d *ShapeDrawable) Color() graphics.Color {
	return d.color
}

// SetColor changes the fill color.
func (d *ShapeDrawable) SetColor(c graphics.Color) {
	d.color = c
}

// Shape returns the outline.
func (d *ShapeDrawable) Shape() Shape {
	return d.shape
}

// Draw fills bounds with the shape.
func (d *ShapeDrawable) Draw(canvas graphics.Canvas, bounds graphics.Rect) {
	paint := graphics.FillPaint(d.color)
	if d.shape == ShapeOval {
		r := bounds.Width()
		if bounds.Height() < r {
			r = bounds.Height()
		}
		canvas.DrawCircle(bounds.Center(), r/2, paint)
		return
	}
	canvas.DrawRect(bounds, paint)
}
