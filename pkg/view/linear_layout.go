package view

import (
	"math"

	"github.com/go-drift/cardview/pkg/graphics"
)

// Orientation is the stacking axis of a LinearLayout.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// LinearLayout stacks its children along one axis in insertion order.
type LinearLayout struct {
	GroupBase
	orientation Orientation
	gravity     Gravity
}

// NewLinearLayout creates an empty stack.
func NewLinearLayout(orientation Orientation) *LinearLayout {
	l := &LinearLayout{orientation: orientation}
	l.SetSelf(l)
	return l
}

// Orientation returns the stacking axis.
func (l *LinearLayout) Orientation() Orientation {
	return l.orientation
}

// SetOrientation changes the stacking axis.
func (l *LinearLayout) SetOrientation(o Orientation) {
	l.orientation = o
	l.RequestLayout()
}

// Gravity returns the default alignment applied to children.
func (l *LinearLayout) Gravity() Gravity {
	return l.gravity
}

// SetGravity sets the default alignment for children that do not set their
// own layout gravity.
func (l *LinearLayout) SetGravity(g Gravity) {
	if l.gravity == g {
		return
	}
	l.gravity = g
	l.RequestLayout()
}

func (l *LinearLayout) childGravity(child View) Gravity {
	if g := paramsOf(child).Gravity; g != GravityNone {
		return g
	}
	return l.gravity
}

// Measure sums children along the stacking axis and takes the maximum
// across it.
func (l *LinearLayout) Measure(maxWidth float64) graphics.Size {
	pad := l.padding
	inner := math.Max(maxWidth-pad.Horizontal(), 0)
	var w, h float64
	for _, child := range l.children {
		if child.Visibility() == Gone {
			continue
		}
		p := paramsOf(child)
		if l.orientation == Vertical {
			s := childSize(child, inner)
			w = math.Max(w, s.Width+p.Margins.Horizontal())
			h += s.Height + p.Margins.Vertical()
			continue
		}
		s := childSize(child, math.Max(inner-w, 0))
		w += s.Width + p.Margins.Horizontal()
		h = math.Max(h, s.Height+p.Margins.Vertical())
	}
	return graphics.Size{Width: w + pad.Horizontal(), Height: h + pad.Vertical()}
}

// Layout positions children one after another.
func (l *LinearLayout) Layout(bounds graphics.Rect) {
	l.SetBounds(bounds)
	pad := l.padding
	innerW := math.Max(bounds.Width()-pad.Horizontal(), 0)
	innerH := math.Max(bounds.Height()-pad.Vertical(), 0)

	x, y := pad.Left, pad.Top
	for _, child := range l.children {
		if child.Visibility() == Gone {
			continue
		}
		p := paramsOf(child)
		g := l.childGravity(child)
		if l.orientation == Vertical {
			s := childSize(child, innerW)
			cx := alignHorizontal(g, pad.Left, innerW, s.Width+p.Margins.Horizontal()) + p.Margins.Left
			y += p.Margins.Top
			child.Layout(graphics.RectFromLTWH(cx, y, s.Width, s.Height))
			y += s.Height + p.Margins.Bottom
			continue
		}
		s := childSize(child, math.Max(innerW-(x-pad.Left), 0))
		cy := alignVertical(g, pad.Top, innerH, s.Height+p.Margins.Vertical()) + p.Margins.Top
		x += p.Margins.Left
		child.Layout(graphics.RectFromLTWH(x, cy, s.Width, s.Height))
		x += s.Width + p.Margins.Right
	}
}

// Draw paints the background and the children.
func (l *LinearLayout) Draw(canvas graphics.Canvas) {
	l.DrawBackground(canvas)
	l.DrawChildren(canvas)
}
