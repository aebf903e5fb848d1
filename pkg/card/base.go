package card

import (
	"image"
	"math"

	"github.com/go-drift/cardview/pkg/errors"
	"github.com/go-drift/cardview/pkg/graphics"
	"github.com/go-drift/cardview/pkg/theme"
	"github.com/go-drift/cardview/pkg/view"
)

// BaseCard is a rounded, optionally stroked container that can be checked
// and clicked. Card embeds it; it is usable on its own.
type BaseCard struct {
	view.FrameLayout

	host *view.Host

	checkable bool
	checked   bool
	clickable bool
	focusable bool

	radius      float64
	elevation   float64
	background  graphics.Color
	strokeWidth float64
	strokeColor graphics.Color

	checkedIcon        image.Image
	checkedIconGravity CheckedIconGravity
	checkedIconMargin  float64

	onClick          func()
	onCheckedChanged func(checked bool)
}

// NewBaseCard returns a bare card with default styling.
func NewBaseCard(host *view.Host) *BaseCard {
	b := &BaseCard{}
	b.SetSelf(b)
	b.initBase(host)
	return b
}

// initBase applies the default card properties. The concrete node must
// already be registered with SetSelf.
func (b *BaseCard) initBase(host *view.Host) {
	b.host = host
	b.checkable = true
	b.clickable = true
	b.focusable = true
	b.radius = float64(host.DpToPx(cardRadiusDp))
	b.elevation = 0
	b.checkedIconGravity = TopEnd
	b.checkedIconMargin = unsetMargin
	b.strokeColor = DefaultStrokeColor
	b.SetPadding(view.EdgeInsetsAll(float64(host.DpToPx(contentPaddingDp))))
	b.background = theme.ResolveColor(host.Theme, theme.KeySurfaceContainerLow, DefaultCardBackground)
}

// Host returns the environment the card was created in.
func (b *BaseCard) Host() *view.Host {
	return b.host
}

// SetCheckable sets whether the card can be checked. Unchecks it when
// disabled.
func (b *BaseCard) SetCheckable(checkable bool) {
	b.checkable = checkable
	if !checkable && b.checked {
		b.setChecked(false)
	}
}

// Checkable reports whether the card can be checked.
func (b *BaseCard) Checkable() bool {
	return b.checkable
}

// SetChecked checks or unchecks a checkable card. It is a no-op otherwise.
func (b *BaseCard) SetChecked(checked bool) {
	if !b.checkable || b.checked == checked {
		return
	}
	b.setChecked(checked)
}

func (b *BaseCard) setChecked(checked bool) {
	b.checked = checked
	b.Invalidate()
	if b.onCheckedChanged != nil {
		b.onCheckedChanged(checked)
	}
}

// Checked reports whether the card is checked.
func (b *BaseCard) Checked() bool {
	return b.checked
}

// Toggle flips the checked state of a checkable card.
func (b *BaseCard) Toggle() {
	b.SetChecked(!b.checked)
}

// SetOnCheckedChanged registers a callback for checked-state changes.
func (b *BaseCard) SetOnCheckedChanged(fn func(checked bool)) {
	b.onCheckedChanged = fn
}

// SetClickable sets whether PerformClick dispatches.
func (b *BaseCard) SetClickable(clickable bool) {
	b.clickable = clickable
}

// Clickable reports whether the card is clickable.
func (b *BaseCard) Clickable() bool {
	return b.clickable
}

// SetOnClick registers the click callback.
func (b *BaseCard) SetOnClick(fn func()) {
	b.onClick = fn
}

// PerformClick invokes the click callback of a clickable card and reports
// whether one ran.
func (b *BaseCard) PerformClick() bool {
	if !b.clickable || b.onClick == nil {
		return false
	}
	b.onClick()
	return true
}

// SetFocusable sets whether the card can take focus.
func (b *BaseCard) SetFocusable(focusable bool) {
	b.focusable = focusable
}

// Focusable reports whether the card can take focus.
func (b *BaseCard) Focusable() bool {
	return b.focusable
}

// SetRadius sets the corner radius in pixels.
func (b *BaseCard) SetRadius(radius float64) {
	b.radius = radius
	b.Invalidate()
}

// Radius returns the corner radius in pixels.
func (b *BaseCard) Radius() float64 {
	return b.radius
}

// SetElevation sets the elevation in pixels.
func (b *BaseCard) SetElevation(elevation float64) {
	b.elevation = elevation
	b.Invalidate()
}

// Elevation returns the elevation in pixels.
func (b *BaseCard) Elevation() float64 {
	return b.elevation
}

// SetBackgroundColor sets the card fill.
func (b *BaseCard) SetBackgroundColor(c graphics.Color) {
	b.background = c
	b.Invalidate()
}

// BackgroundColor returns the card fill.
func (b *BaseCard) BackgroundColor() graphics.Color {
	return b.background
}

// SetStrokeWidth sets the outline width in pixels; 0 draws no outline.
func (b *BaseCard) SetStrokeWidth(width float64) {
	b.strokeWidth = math.Max(width, 0)
	b.Invalidate()
}

// StrokeWidth returns the outline width in pixels.
func (b *BaseCard) StrokeWidth() float64 {
	return b.strokeWidth
}

// SetStrokeColor sets the outline color.
func (b *BaseCard) SetStrokeColor(c graphics.Color) {
	b.strokeColor = c
	b.Invalidate()
}

// StrokeColor returns the outline color.
func (b *BaseCard) StrokeColor() graphics.Color {
	return b.strokeColor
}

// SetContentPadding sets the padding around the card's content.
func (b *BaseCard) SetContentPadding(p view.EdgeInsets) {
	b.SetPadding(p)
}

// SetCheckedIcon loads the checked icon from the host's resources. A
// missing resource is reported and the current icon kept.
func (b *BaseCard) SetCheckedIcon(resourceID string) {
	if b.host == nil || b.host.Resources == nil {
		return
	}
	img, err := b.host.Resources.Drawable(resourceID)
	if err != nil {
		errors.Report(&errors.CardError{
			Op:   "card.SetCheckedIcon",
			Kind: errors.KindResource,
			Key:  resourceID,
			Err:  err,
		})
		return
	}
	b.SetCheckedIconDrawable(img)
}

// SetCheckedIconDrawable sets the checked icon; nil removes it.
func (b *BaseCard) SetCheckedIconDrawable(img image.Image) {
	b.checkedIcon = img
	b.Invalidate()
}

// CheckedIcon returns the checked icon, or nil.
func (b *BaseCard) CheckedIcon() image.Image {
	return b.checkedIcon
}

// SetCheckedIconGravity sets the corner the checked icon is drawn in.
// Unknown values select TopEnd.
func (b *BaseCard) SetCheckedIconGravity(g CheckedIconGravity) {
	switch g {
	case TopEnd, TopStart, BottomEnd, BottomStart:
	default:
		g = TopEnd
	}
	b.checkedIconGravity = g
	b.Invalidate()
}

// CheckedIconGravity returns the checked icon corner.
func (b *BaseCard) CheckedIconGravity() CheckedIconGravity {
	return b.checkedIconGravity
}

// SetCheckedIconMargin sets the checked icon's distance from the card edges
// in pixels.
func (b *BaseCard) SetCheckedIconMargin(margin float64) {
	b.checkedIconMargin = margin
	b.Invalidate()
}

// CheckedIconMargin returns the checked icon margin in pixels.
func (b *BaseCard) CheckedIconMargin() float64 {
	if b.checkedIconMargin < 0 {
		return float64(b.host.DpToPx(checkedIconMarginDp))
	}
	return b.checkedIconMargin
}

// LayoutWidth measures the card for width pixels and lays it out at the
// origin. It returns the laid-out size.
func (b *BaseCard) LayoutWidth(width float64) graphics.Size {
	self := b.Self()
	size := self.Measure(width)
	self.Layout(graphics.RectFromLTWH(0, 0, size.Width, size.Height))
	return size
}

func (b *BaseCard) shape() graphics.RRect {
	rect := graphics.RectFromLTWH(0, 0, b.Width(), b.Height())
	return graphics.RRectFromRectAndRadius(rect, graphics.CircularRadius(b.radius))
}

// DrawCardBackground paints the elevation shadow and the rounded fill.
func (b *BaseCard) DrawCardBackground(canvas graphics.Canvas) {
	if b.elevation > 0 {
		graphics.BoxShadowElevation(b.elevation, shadowColor).Draw(canvas, b.shape())
	}
	canvas.DrawRRect(b.shape(), graphics.FillPaint(b.background))
}

// DrawCardForeground paints the outline and, when checked, the checked
// icon.
func (b *BaseCard) DrawCardForeground(canvas graphics.Canvas) {
	if b.strokeWidth > 0 {
		half := b.strokeWidth / 2
		rect := graphics.RectFromLTWH(half, half, b.Width()-b.strokeWidth, b.Height()-b.strokeWidth)
		rrect := graphics.RRectFromRectAndRadius(rect, graphics.CircularRadius(math.Max(b.radius-half, 0)))
		canvas.DrawRRect(rrect, graphics.StrokePaint(b.strokeColor, b.strokeWidth))
	}
	if b.checked && b.checkedIcon != nil {
		canvas.DrawImage(b.checkedIcon, b.checkedIconRect(), nil)
	}
}

func (b *BaseCard) checkedIconRect() graphics.Rect {
	size := float64(b.host.DpToPx(checkedIconSizeDp))
	margin := b.CheckedIconMargin()
	left, top := b.Width()-margin-size, margin
	switch b.checkedIconGravity {
	case TopStart:
		left = margin
	case BottomEnd:
		top = b.Height() - margin - size
	case BottomStart:
		left, top = margin, b.Height()-margin-size
	}
	return graphics.RectFromLTWH(left, top, size, size)
}

// Draw paints the background, the children and the foreground.
func (b *BaseCard) Draw(canvas graphics.Canvas) {
	b.DrawCardBackground(canvas)
	b.DrawChildren(canvas)
	b.DrawCardForeground(canvas)
}
