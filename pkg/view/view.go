// Package view provides the retained visual nodes card components are
// composed from: stacking containers, a frame, image and text nodes.
//
// Nodes form a tree. A parent measures, positions and draws its children;
// dirty flags raised by RequestLayout and Invalidate walk up to the root,
// where the host decides when to lay out and repaint.
package view

import (
	"fmt"

	"github.com/go-drift/cardview/pkg/graphics"
)

// Size sentinels for LayoutParams.
const (
	MatchParent = -1
	WrapContent = -2
)

// IndexAppend is the insertion index that means "after the last child".
const IndexAppend = -1

// Visibility controls whether a node is drawn and whether it takes space.
type Visibility int

const (
	Visible   Visibility = iota // drawn and measured
	Invisible                   // measured but not drawn
	Gone                        // neither drawn nor measured
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Invisible:
		return "invisible"
	case Gone:
		return "gone"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}

// Gravity is a set of alignment flags.
type Gravity int

const (
	GravityNone             Gravity = 0
	GravityStart            Gravity = 1 << 0
	GravityCenterHorizontal Gravity = 1 << 1
	GravityEnd              Gravity = 1 << 2
	GravityTop              Gravity = 1 << 3
	GravityCenterVertical   Gravity = 1 << 4
	GravityBottom           Gravity = 1 << 5
	GravityCenter                   = GravityCenterHorizontal | GravityCenterVertical
)

// EdgeInsets holds left, top, right and bottom distances in pixels.
type EdgeInsets struct {
	Left, Top, Right, Bottom float64
}

// EdgeInsetsAll returns insets of v on every side.
func EdgeInsetsAll(v float64) EdgeInsets {
	return EdgeInsets{Left: v, Top: v, Right: v, Bottom: v}
}

// Horizontal returns Left + Right.
func (e EdgeInsets) Horizontal() float64 { return e.Left + e.Right }

// Vertical returns Top + Bottom.
func (e EdgeInsets) Vertical() float64 { return e.Top + e.Bottom }

// LayoutParams carry the size and placement a parent applies to a child.
type LayoutParams struct {
	// Width and Height are pixels, MatchParent or WrapContent.
	Width, Height float64
	Margins       EdgeInsets
	// Gravity positions the child within the parent. GravityNone defers to
	// the parent's own gravity.
	Gravity Gravity
}

// NewLayoutParams returns params with the given width and height.
func NewLayoutParams(width, height float64) *LayoutParams {
	return &LayoutParams{Width: width, Height: height}
}

// View is a node in the visual tree.
type View interface {
	Parent() ViewGroup
	LayoutParams() *LayoutParams
	SetLayoutParams(params *LayoutParams)
	Visibility() Visibility
	SetVisibility(v Visibility)

	// Measure returns the size the node wants given at most maxWidth pixels.
	Measure(maxWidth float64) graphics.Size
	// Layout assigns the node its bounds in parent coordinates.
	Layout(bounds graphics.Rect)
	// Bounds returns the last assigned bounds.
	Bounds() graphics.Rect
	// Draw paints the node with the canvas origin at its top-left corner.
	Draw(canvas graphics.Canvas)

	RequestLayout()
	Invalidate()

	setParent(parent ViewGroup)
}

// ViewGroup is a View that holds children.
type ViewGroup interface {
	View
	ChildCount() int
	ChildAt(index int) View
	IndexOfChild(child View) int
	AddView(child View)
	AddViewAt(child View, index int)
	AddViewWithParams(child View, params *LayoutParams)
	AddViewAtWithParams(child View, index int, params *LayoutParams)
	RemoveView(child View) bool
	RemoveAllViews()
}

// ViewBase provides the state shared by all nodes. Concrete nodes embed it
// and register themselves with SetSelf.
type ViewBase struct {
	self        View
	parent      ViewGroup
	params      *LayoutParams
	visibility  Visibility
	padding     EdgeInsets
	background  Drawable
	alpha       float64
	bounds      graphics.Rect
	needsLayout bool
	needsPaint  bool
	layoutCount int
	paintCount  int
}

// SetSelf registers the concrete node. It must be called once by every
// constructor before the node is used.
func (v *ViewBase) SetSelf(self View) {
	v.self = self
	v.alpha = 1
	v.needsLayout = true
	v.needsPaint = true
}

// Self returns the concrete node registered via SetSelf.
func (v *ViewBase) Self() View {
	return v.self
}

// Parent returns the parent group, or nil for a detached node.
func (v *ViewBase) Parent() ViewGroup {
	return v.parent
}

func (v *ViewBase) setParent(parent ViewGroup) {
	v.parent = parent
}

// LayoutParams returns the node's layout params. It may be nil before the
// node is attached.
func (v *ViewBase) LayoutParams() *LayoutParams {
	return v.params
}

// SetLayoutParams replaces the layout params and requests layout.
func (v *ViewBase) SetLayoutParams(params *LayoutParams) {
	v.params = params
	v.RequestLayout()
}

// Visibility returns the node's visibility.
func (v *ViewBase) Visibility() Visibility {
	return v.visibility
}

// SetVisibility changes visibility. Switching to or from Gone requests
// layout; other changes only repaint.
func (v *ViewBase) SetVisibility(vis Visibility) {
	if v.visibility == vis {
		return
	}
	old := v.visibility
	v.visibility = vis
	if old == Gone || vis == Gone {
		v.RequestLayout()
		return
	}
	v.Invalidate()
}

// Padding returns the inner padding.
func (v *ViewBase) Padding() EdgeInsets {
	return v.padding
}

// SetPadding sets the inner padding.
func (v *ViewBase) SetPadding(p EdgeInsets) {
	v.padding = p
	v.RequestLayout()
}

// Background returns the background drawable, or nil.
func (v *ViewBase) Background() Drawable {
	return v.background
}

// SetBackground sets or clears (nil) the background drawable.
func (v *ViewBase) SetBackground(d Drawable) {
	v.background = d
	v.Invalidate()
}

// Alpha returns the node opacity.
func (v *ViewBase) Alpha() float64 {
	return v.alpha
}

// SetAlpha sets the node opacity (0.0 to 1.0).
func (v *ViewBase) SetAlpha(alpha float64) {
	v.alpha = alpha
	v.Invalidate()
}

// Bounds returns the last assigned bounds in parent coordinates.
func (v *ViewBase) Bounds() graphics.Rect {
	return v.bounds
}

// Width returns the laid-out width.
func (v *ViewBase) Width() float64 {
	return v.bounds.Width()
}

// Height returns the laid-out height.
func (v *ViewBase) Height() float64 {
	return v.bounds.Height()
}

// SetBounds records the bounds and clears the layout flag. Node Layout
// implementations call it before positioning children.
func (v *ViewBase) SetBounds(bounds graphics.Rect) {
	v.bounds = bounds
	v.needsLayout = false
}

// Layout assigns bounds to a leaf node.
func (v *ViewBase) Layout(bounds graphics.Rect) {
	v.SetBounds(bounds)
}

// RequestLayout marks this node and its ancestors as needing layout and paint.
func (v *ViewBase) RequestLayout() {
	v.layoutCount++
	v.needsLayout = true
	v.needsPaint = true
	if v.parent != nil {
		v.parent.RequestLayout()
	}
}

// Invalidate marks this node and its ancestors as needing paint.
func (v *ViewBase) Invalidate() {
	v.paintCount++
	v.needsPaint = true
	if v.parent != nil {
		v.parent.Invalidate()
	}
}

// NeedsLayout reports whether layout was requested since the last Layout.
func (v *ViewBase) NeedsLayout() bool {
	return v.needsLayout
}

// NeedsPaint reports whether paint was requested since the last draw.
func (v *ViewBase) NeedsPaint() bool {
	return v.needsPaint
}

// ClearNeedsPaint marks the node as painted.
func (v *ViewBase) ClearNeedsPaint() {
	v.needsPaint = false
}

// LayoutRequests returns how many times RequestLayout reached this node.
func (v *ViewBase) LayoutRequests() int {
	return v.layoutCount
}

// PaintRequests returns how many times Invalidate reached this node.
func (v *ViewBase) PaintRequests() int {
	return v.paintCount
}

// DrawBackground paints the background drawable over the node's bounds.
func (v *ViewBase) DrawBackground(canvas graphics.Canvas) {
	if v.background == nil {
		return
	}
	v.background.Draw(canvas, graphics.RectFromLTWH(0, 0, v.bounds.Width(), v.bounds.Height()))
}

// paramsOf returns the child's params, or wrap-content params when unset.
func paramsOf(child View) *LayoutParams {
	if p := child.LayoutParams(); p != nil {
		return p
	}
	return &LayoutParams{Width: WrapContent, Height: WrapContent}
}
