package view

import (
	"math"

	"github.com/go-drift/cardview/pkg/graphics"
)

// FrameLayout stacks children on top of each other, each placed by its own
// layout gravity.
type FrameLayout struct {
	GroupBase
}

// NewFrameLayout creates an empty frame.
func NewFrameLayout() *FrameLayout {
	f := &FrameLayout{}
	f.SetSelf(f)
	return f
}

// Measure returns the largest child extent plus padding.
func (f *FrameLayout) Measure(maxWidth float64) graphics.Size {
	return f.MeasureChildren(maxWidth)
}

// MeasureChildren is the frame measurement, exposed for nodes that embed
// FrameLayout and add their own insets.
func (f *FrameLayout) MeasureChildren(maxWidth float64) graphics.Size {
	pad := f.padding
	inner := math.Max(maxWidth-pad.Horizontal(), 0)
	var w, h float64
	for _, child := range f.children {
		if child.Visibility() == Gone {
			continue
		}
		p := paramsOf(child)
		s := childSize(child, inner)
		w = math.Max(w, s.Width+p.Margins.Horizontal())
		h = math.Max(h, s.Height+p.Margins.Vertical())
	}
	return graphics.Size{Width: w + pad.Horizontal(), Height: h + pad.Vertical()}
}

// Layout places each child inside the padded area by its gravity.
func (f *FrameLayout) Layout(bounds graphics.Rect) {
	f.SetBounds(bounds)
	pad := f.padding
	innerW := math.Max(bounds.Width()-pad.Horizontal(), 0)
	innerH := math.Max(bounds.Height()-pad.Vertical(), 0)
	for _, child := range f.children {
		if child.Visibility() == Gone {
			continue
		}
		p := paramsOf(child)
		s := childSize(child, innerW)
		x := alignHorizontal(p.Gravity, pad.Left, innerW, s.Width+p.Margins.Horizontal()) + p.Margins.Left
		y := alignVertical(p.Gravity, pad.Top, innerH, s.Height+p.Margins.Vertical()) + p.Margins.Top
		child.Layout(graphics.RectFromLTWH(x, y, s.Width, s.Height))
	}
}

// Draw paints the background and the children.
func (f *FrameLayout) Draw(canvas graphics.Canvas) {
	f.DrawBackground(canvas)
	f.DrawChildren(canvas)
}
