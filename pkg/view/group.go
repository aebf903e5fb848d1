package view

import (
	"fmt"
	"math"

	"github.com/go-drift/cardview/pkg/graphics"
)

// GroupBase implements child management for container nodes.
type GroupBase struct {
	ViewBase
	children []View
}

func (g *GroupBase) group() ViewGroup {
	return g.self.(ViewGroup)
}

// ChildCount returns the number of children.
func (g *GroupBase) ChildCount() int {
	return len(g.children)
}

// ChildAt returns the child at index.
func (g *GroupBase) ChildAt(index int) View {
	return g.children[index]
}

// Children returns a copy of the children in order.
func (g *GroupBase) Children() []View {
	out := make([]View, len(g.children))
	copy(out, g.children)
	return out
}

// IndexOfChild returns the position of child, or -1 if it is not a child.
func (g *GroupBase) IndexOfChild(child View) int {
	for i, c := range g.children {
		if c == child {
			return i
		}
	}
	return -1
}

// AddView appends child.
func (g *GroupBase) AddView(child View) {
	g.AddViewAtWithParams(child, IndexAppend, nil)
}

// AddViewAt inserts child at index; IndexAppend appends.
func (g *GroupBase) AddViewAt(child View, index int) {
	g.AddViewAtWithParams(child, index, nil)
}

// AddViewWithParams appends child with the given params.
func (g *GroupBase) AddViewWithParams(child View, params *LayoutParams) {
	g.AddViewAtWithParams(child, IndexAppend, params)
}

// AddViewAtWithParams inserts child at index with params. IndexAppend
// appends. A child that already has a parent, or an index outside
// [0, ChildCount()], is a programming error and panics.
func (g *GroupBase) AddViewAtWithParams(child View, index int, params *LayoutParams) {
	if child == nil {
		panic("view: cannot add a nil child")
	}
	if child.Parent() != nil {
		panic("view: child already has a parent; remove it from its parent first")
	}
	if index == IndexAppend {
		index = len(g.children)
	}
	if index < 0 || index > len(g.children) {
		panic(fmt.Sprintf("view: insert index %d out of range [0, %d]", index, len(g.children)))
	}
	if params != nil {
		child.SetLayoutParams(params)
	}
	g.children = append(g.children, nil)
	copy(g.children[index+1:], g.children[index:])
	g.children[index] = child
	child.setParent(g.group())
	g.RequestLayout()
}

// RemoveView detaches child. It reports whether child was found.
func (g *GroupBase) RemoveView(child View) bool {
	i := g.IndexOfChild(child)
	if i < 0 {
		return false
	}
	g.children = append(g.children[:i], g.children[i+1:]...)
	child.setParent(nil)
	g.RequestLayout()
	return true
}

// RemoveAllViews detaches every child.
func (g *GroupBase) RemoveAllViews() {
	if len(g.children) == 0 {
		return
	}
	for _, c := range g.children {
		c.setParent(nil)
	}
	g.children = nil
	g.RequestLayout()
}

// DrawChildren draws every visible child translated to its bounds.
func (g *GroupBase) DrawChildren(canvas graphics.Canvas) {
	for _, child := range g.children {
		if child.Visibility() != Visible {
			continue
		}
		b := child.Bounds()
		canvas.Save()
		canvas.Translate(b.Left, b.Top)
		child.Draw(canvas)
		canvas.Restore()
	}
	g.needsPaint = false
}

// childSize resolves a child's size from its params given availWidth pixels
// of horizontal space, margins included.
func childSize(child View, availWidth float64) graphics.Size {
	p := paramsOf(child)
	inner := math.Max(availWidth-p.Margins.Horizontal(), 0)

	measureWidth := inner
	if p.Width >= 0 {
		measureWidth = p.Width
	}
	measured := child.Measure(measureWidth)

	var size graphics.Size
	switch {
	case p.Width >= 0:
		size.Width = p.Width
	case p.Width == MatchParent:
		size.Width = inner
	default:
		size.Width = math.Min(measured.Width, inner)
	}
	if p.Height >= 0 {
		size.Height = p.Height
	} else {
		size.Height = measured.Height
	}
	return size
}

// alignHorizontal returns the x offset of an item of width w inside a span.
func alignHorizontal(g Gravity, start, span, w float64) float64 {
	switch {
	case g&GravityCenterHorizontal != 0:
		return start + (span-w)/2
	case g&GravityEnd != 0:
		return start + span - w
	default:
		return start
	}
}

// alignVertical returns the y offset of an item of height h inside a span.
func alignVertical(g Gravity, start, span, h float64) float64 {
	switch {
	case g&GravityCenterVertical != 0:
		return start + (span-h)/2
	case g&GravityBottom != 0:
		return start + span - h
	default:
		return start
	}
}
