// Package card implements a configurable card component: a rounded
// container with an optional icon, a title, a summary, a "recommended" badge
// and a content slot for caller-supplied nodes.
//
// A Card is built once from a host and an optional attribute set:
//
//	c, err := card.New(host, attrs.Set{
//		card.AttrTitle:   "Wi-Fi",
//		card.AttrSummary: `Connected\nStrong signal`,
//	})
//
// Nodes added with AddView and its variants land in the content slot, never
// beside the card's own scaffold.
package card

import (
	"image"

	"github.com/go-drift/cardview/pkg/attrs"
	"github.com/go-drift/cardview/pkg/errors"
	"github.com/go-drift/cardview/pkg/graphics"
	"github.com/go-drift/cardview/pkg/theme"
	"github.com/go-drift/cardview/pkg/view"
)

// Card is the card component. Create it with New.
type Card struct {
	BaseCard

	config Configuration
	sc     *scaffold
	// installed is set once the scaffold exists; from then on inserted nodes
	// other than the scaffold root go to the content slot.
	installed bool

	circle *view.ShapeDrawable
	badge  *badgeRenderer
}

// New builds a card in host. A nil set skips attribute ingestion and shows
// the header with both title and summary; a non-nil set, even an empty one,
// is read with every attribute's default applied. A malformed attribute
// fails construction with a *errors.CardError of kind KindAttribute.
func New(host *view.Host, set attrs.Set) (*Card, error) {
	if host == nil {
		host = view.NewHost()
	}
	c := &Card{config: defaultConfiguration()}
	c.SetSelf(c)

	c.config.IconBackgroundColor = theme.ResolveColor(host.Theme, theme.KeyPrimaryContainer, DefaultIconBackground)
	c.badge = newBadgeRenderer(host)
	c.config.BadgeTextWidth = c.badge.textWidth
	c.config.BadgeHeight = c.badge.height
	c.initBase(host)

	c.sc = compose(host)
	c.installed = true

	c.circle = view.NewShapeDrawable(view.ShapeOval, c.config.IconBackgroundColor)
	c.sc.iconSlot.SetBackground(c.circle)
	c.setupMarquee()
	c.AddView(c.sc.root)

	if set == nil {
		c.sc.root.AddViewAt(c.sc.header, 0)
		return c, nil
	}
	if err := c.applyAttributes(set); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Card) setupMarquee() {
	t := c.sc.title
	t.SetSingleLine(true)
	t.SetEllipsize(view.EllipsizeMarquee)
	t.SetMarqueeRepeatLimit(view.MarqueeForever)
	t.SetFocusable(true, true)
	t.SetHorizontallyScrolling(true)
	t.SetSelected(true)
}

// Config returns a snapshot of the card's configuration.
func (c *Card) Config() Configuration {
	return c.config.clone()
}

// SetIcon loads the icon from the host's resources.
func (c *Card) SetIcon(resourceID string) {
	c.sc.icon.SetImageResource(resourceID)
}

// SetIconDrawable sets the icon image; nil clears it.
func (c *Card) SetIconDrawable(img image.Image) {
	c.sc.icon.SetImage(img)
}

// SetIconSize sets the icon's width and height in pixels.
func (c *Card) SetIconSize(width, height float64) {
	p := *c.sc.icon.LayoutParams()
	p.Width, p.Height = width, height
	c.sc.icon.SetLayoutParams(&p)
}

// SetIconWidth sets the icon width in pixels.
func (c *Card) SetIconWidth(width float64) {
	p := *c.sc.icon.LayoutParams()
	p.Width = width
	c.sc.icon.SetLayoutParams(&p)
}

// SetIconHeight sets the icon height in pixels.
func (c *Card) SetIconHeight(height float64) {
	p := *c.sc.icon.LayoutParams()
	p.Height = height
	c.sc.icon.SetLayoutParams(&p)
}

// SetIconBackgroundColor sets the fill of the circle behind the icon.
func (c *Card) SetIconBackgroundColor(color graphics.Color) {
	c.config.IconBackgroundColor = color
	c.circle.SetColor(color)
	if !c.config.NoIconBackground {
		c.sc.iconSlot.Invalidate()
	}
}

// IconBackgroundColor returns the icon circle fill.
func (c *Card) IconBackgroundColor() graphics.Color {
	return c.config.IconBackgroundColor
}

// SetIconBackgroundSize sets the icon slot's width and height in pixels.
func (c *Card) SetIconBackgroundSize(size float64) {
	p := *c.sc.iconSlot.LayoutParams()
	p.Width, p.Height = size, size
	c.sc.iconSlot.SetLayoutParams(&p)
}

// SetIconTint sets the icon tint; nil removes it.
func (c *Card) SetIconTint(tint *graphics.Color) {
	if tint != nil {
		t := *tint
		tint = &t
	}
	c.config.IconTint = tint
	c.sc.icon.SetTint(tint)
}

// SetIconTintColor tints the icon with color.
func (c *Card) SetIconTintColor(color graphics.Color) {
	c.SetIconTint(&color)
}

// IconTint returns the icon tint, or nil.
func (c *Card) IconTint() *graphics.Color {
	if c.config.IconTint == nil {
		return nil
	}
	t := *c.config.IconTint
	return &t
}

// SetAutoTintIcon switches theme-derived tinting. Enabling it replaces any
// tint with the theme's onSurface color; disabling it removes the tint.
func (c *Card) SetAutoTintIcon(auto bool) {
	c.config.AutoTintIcon = auto
	if !auto {
		c.SetIconTint(nil)
		return
	}
	c.SetIconTintColor(theme.ResolveColor(c.host.Theme, theme.KeyOnSurface, DefaultIconTint))
}

// AutoTintIcon reports whether theme-derived tinting is on.
func (c *Card) AutoTintIcon() bool {
	return c.config.AutoTintIcon
}

// SetTitle replaces the title. Escapes are not interpreted.
func (c *Card) SetTitle(title string) {
	c.sc.title.SetText(title)
}

// Title returns the title.
func (c *Card) Title() string {
	return c.sc.title.Text()
}

// SetSummary replaces the summary. Each literal backslash-n pair becomes a
// line break.
func (c *Card) SetSummary(summary string) {
	c.sc.summary.SetText(normalizeEscapes(summary))
}

// Summary returns the summary as stored, line breaks included.
func (c *Card) Summary() string {
	return c.sc.summary.Text()
}

// SetTitleTextSize sets the title size from pixels, converted to sp with the
// display's scaled density.
func (c *Card) SetTitleTextSize(px float64) {
	c.sc.title.SetTextSize(px / c.scaledDensity())
}

// SetSummaryTextSize sets the summary size from pixels, converted to sp with
// the display's scaled density.
func (c *Card) SetSummaryTextSize(px float64) {
	c.sc.summary.SetTextSize(px / c.scaledDensity())
}

func (c *Card) scaledDensity() float64 {
	if d := c.host.Metrics.ScaledDensity; d > 0 {
		return d
	}
	return 1
}

// SetTitleFont sets the title family in the normal style.
func (c *Card) SetTitleFont(family string) {
	c.SetTitleFontStyle(family, graphics.FontStyleNormal)
}

// SetTitleFontStyle sets the title family and style. A family that cannot
// be resolved is reported and the current typeface kept.
func (c *Card) SetTitleFontStyle(family string, style graphics.FontStyle) {
	if tf := c.createTypeface("card.SetTitleFont", family, style); tf != nil {
		c.sc.title.SetTypeface(tf)
	}
}

// SetSummaryFont sets the summary family in the normal style.
func (c *Card) SetSummaryFont(family string) {
	c.SetSummaryFontStyle(family, graphics.FontStyleNormal)
}

// SetSummaryFontStyle sets the summary family and style. A family that
// cannot be resolved is reported and the current typeface kept.
func (c *Card) SetSummaryFontStyle(family string, style graphics.FontStyle) {
	if tf := c.createTypeface("card.SetSummaryFont", family, style); tf != nil {
		c.sc.summary.SetTypeface(tf)
	}
}

// createTypeface returns nil after reporting a failure; a panicking font
// loader counts as one.
func (c *Card) createTypeface(op, family string, style graphics.FontStyle) (tf *graphics.Typeface) {
	defer errors.Recover(op)
	tf, err := c.host.FontManager().Create(family, style)
	if err != nil {
		errors.Report(&errors.CardError{Op: op, Kind: errors.KindFont, Key: family, Err: err})
		return nil
	}
	return tf
}

// SetTitleTypeface sets the title typeface. Nil is ignored.
func (c *Card) SetTitleTypeface(tf *graphics.Typeface) {
	if tf != nil {
		c.sc.title.SetTypeface(tf)
	}
}

// SetSummaryTypeface sets the summary typeface. Nil is ignored.
func (c *Card) SetSummaryTypeface(tf *graphics.Typeface) {
	if tf != nil {
		c.sc.summary.SetTypeface(tf)
	}
}

// SetNoIconBackground removes (true) or restores the circle behind the icon.
func (c *Card) SetNoIconBackground(noBackground bool) {
	c.config.NoIconBackground = noBackground
	if noBackground {
		c.sc.iconSlot.SetBackground(nil)
	} else {
		c.sc.iconSlot.SetBackground(c.circle)
	}
}

// NoIconBackground reports whether the icon circle is removed.
func (c *Card) NoIconBackground() bool {
	return c.config.NoIconBackground
}

// SetNoIcon hides (true) or shows the icon slot.
func (c *Card) SetNoIcon(noIcon bool) {
	c.config.NoIcon = noIcon
	c.sc.iconSlot.SetVisibility(visibleUnless(noIcon))
}

// NoIcon reports whether the icon slot is hidden.
func (c *Card) NoIcon() bool {
	return c.config.NoIcon
}

// SetContentAlign aligns the nodes in the content slot.
func (c *Card) SetContentAlign(align ContentAlign) {
	c.config.ContentAlignment = align
	c.sc.content.SetGravity(align.gravity())
}

// ContentAlign returns the content slot alignment.
func (c *Card) ContentAlign() ContentAlign {
	return c.config.ContentAlignment
}

// SetCheckable sets whether the card can be checked and focused.
func (c *Card) SetCheckable(checkable bool) {
	c.BaseCard.SetCheckable(checkable)
	c.SetFocusable(checkable)
}

// SetRecommended shows or hides the badge on the next paint.
func (c *Card) SetRecommended(recommended bool) {
	c.config.Recommended = recommended
	c.Invalidate()
}

// Recommended reports whether the badge is shown.
func (c *Card) Recommended() bool {
	return c.config.Recommended
}

// Draw paints the card background, the badge, the scaffold and content,
// then the outline and checked icon.
func (c *Card) Draw(canvas graphics.Canvas) {
	c.DrawCardBackground(canvas)
	c.badge.draw(canvas, c.Width(), c.config.Recommended)
	c.DrawChildren(canvas)
	c.DrawCardForeground(canvas)
}

// NodeName names the card's own nodes ("root", "header", "iconSlot",
// "icon", "textStack", "title", "summary", "content"). It returns "" for any
// other node.
func (c *Card) NodeName(v view.View) string {
	switch v {
	case view.View(c.sc.root):
		return "root"
	case view.View(c.sc.header):
		return "header"
	case view.View(c.sc.iconSlot):
		return "iconSlot"
	case view.View(c.sc.icon):
		return "icon"
	case view.View(c.sc.textStack):
		return "textStack"
	case view.View(c.sc.title):
		return "title"
	case view.View(c.sc.summary):
		return "summary"
	case view.View(c.sc.content):
		return "content"
	}
	return ""
}

func visibleUnless(hidden bool) view.Visibility {
	if hidden {
		return view.Gone
	}
	return view.Visible
}
