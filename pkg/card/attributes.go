package card

import (
	"math"

	"github.com/go-drift/cardview/pkg/attrs"
	"github.com/go-drift/cardview/pkg/errors"
)

// applyAttributes reads set and applies it through the card's mutators,
// group by group. The first malformed attribute stops ingestion.
func (c *Card) applyAttributes(set attrs.Set) error {
	ta := set.Obtain(c.host.Metrics)
	defer ta.Recycle()

	groups := []func(*attrs.TypedArray) error{
		c.applyIconAttributes,
		c.applyTextAttributes,
		c.applyStyleAttributes,
		c.applyCardAttributes,
		c.applyBehaviorAttributes,
		c.applyLayoutAttributes,
	}
	for _, apply := range groups {
		if err := apply(ta); err != nil {
			return err
		}
	}
	return nil
}

func attrError(key string, err error) error {
	return &errors.CardError{
		Op:   "card.New",
		Kind: errors.KindAttribute,
		Key:  key,
		Err:  err,
	}
}

func (c *Card) dp(v float64) float64 {
	return float64(c.host.DpToPx(v))
}

func (c *Card) applyIconAttributes(ta *attrs.TypedArray) error {
	icon, err := ta.Resource(AttrIcon)
	if err != nil {
		return attrError(AttrIcon, err)
	}
	switch {
	case icon.ID != "":
		c.SetIcon(icon.ID)
	case icon.Image != nil:
		c.SetIconDrawable(icon.Image)
	}

	w, err := ta.Dimension(AttrIconWidth, c.dp(defaultIconSizeAttr))
	if err != nil {
		return attrError(AttrIconWidth, err)
	}
	h, err := ta.Dimension(AttrIconHeight, c.dp(defaultIconSizeAttr))
	if err != nil {
		return attrError(AttrIconHeight, err)
	}
	c.SetIconSize(math.Trunc(w), math.Trunc(h))

	bg, err := ta.Color(AttrIconBackgroundColor, c.config.IconBackgroundColor)
	if err != nil {
		return attrError(AttrIconBackgroundColor, err)
	}
	c.SetIconBackgroundColor(bg)

	noBg, err := ta.Bool(AttrNoIconBackground, false)
	if err != nil {
		return attrError(AttrNoIconBackground, err)
	}
	c.SetNoIconBackground(noBg)

	noIcon, err := ta.Bool(AttrNoIcon, false)
	if err != nil {
		return attrError(AttrNoIcon, err)
	}
	c.SetNoIcon(noIcon)
	return nil
}

func (c *Card) applyTextAttributes(ta *attrs.TypedArray) error {
	texts := []struct {
		key   string
		apply func(string)
	}{
		{AttrTitle, c.SetTitle},
		{AttrSummary, c.SetSummary},
		{AttrTitleFont, c.SetTitleFont},
		{AttrSummaryFont, c.SetSummaryFont},
	}
	for _, s := range texts {
		if !ta.Has(s.key) {
			continue
		}
		v, err := ta.String(s.key, "")
		if err != nil {
			return attrError(s.key, err)
		}
		s.apply(v)
	}

	titlePx, err := ta.DimensionPixelSize(AttrTitleTextSize, c.host.DpToPx(titleTextSizeSp))
	if err != nil {
		return attrError(AttrTitleTextSize, err)
	}
	c.SetTitleTextSize(float64(titlePx))

	summaryPx, err := ta.DimensionPixelSize(AttrSummaryTextSize, c.host.DpToPx(summaryTextSizeSp))
	if err != nil {
		return attrError(AttrSummaryTextSize, err)
	}
	c.SetSummaryTextSize(float64(summaryPx))
	return nil
}

func (c *Card) applyStyleAttributes(ta *attrs.TypedArray) error {
	stroke, err := ta.Dimension(AttrStrokeWidth, c.dp(defaultStrokeDp))
	if err != nil {
		return attrError(AttrStrokeWidth, err)
	}
	c.SetStrokeWidth(math.Trunc(stroke))

	strokeColor, err := ta.Color(AttrStrokeColor, DefaultStrokeColor)
	if err != nil {
		return attrError(AttrStrokeColor, err)
	}
	c.SetStrokeColor(strokeColor)

	bg, err := ta.Color(AttrBackgroundColor, c.BackgroundColor())
	if err != nil {
		return attrError(AttrBackgroundColor, err)
	}
	c.SetBackgroundColor(bg)

	elevation, err := ta.Dimension(AttrElevation, c.Elevation())
	if err != nil {
		return attrError(AttrElevation, err)
	}
	c.SetElevation(elevation)
	return nil
}

func (c *Card) applyCardAttributes(ta *attrs.TypedArray) error {
	icon, err := ta.Resource(AttrCheckedIcon)
	if err != nil {
		return attrError(AttrCheckedIcon, err)
	}
	switch {
	case icon.ID != "":
		c.SetCheckedIcon(icon.ID)
	case icon.Image != nil:
		c.SetCheckedIconDrawable(icon.Image)
	}

	gravity, err := ta.Enum(AttrCheckedIconGravity, int(TopEnd), gravityValues)
	if err != nil {
		return attrError(AttrCheckedIconGravity, err)
	}
	c.SetCheckedIconGravity(CheckedIconGravity(gravity))

	margin, err := ta.Dimension(AttrCheckedIconMargin, unsetMargin)
	if err != nil {
		return attrError(AttrCheckedIconMargin, err)
	}
	if margin != unsetMargin {
		c.SetCheckedIconMargin(math.Trunc(margin))
	}

	recommended, err := ta.Bool(AttrRecommended, false)
	if err != nil {
		return attrError(AttrRecommended, err)
	}
	c.SetRecommended(recommended)
	return nil
}

func (c *Card) applyBehaviorAttributes(ta *attrs.TypedArray) error {
	checkable, err := ta.Bool(AttrCheckable, true)
	if err != nil {
		return attrError(AttrCheckable, err)
	}
	c.SetCheckable(checkable)

	clickable, err := ta.Bool(AttrClickable, true)
	if err != nil {
		return attrError(AttrClickable, err)
	}
	c.SetClickable(clickable)
	return nil
}

func (c *Card) applyLayoutAttributes(ta *attrs.TypedArray) error {
	noTitle, err := ta.Bool(AttrNoTitle, false)
	if err != nil {
		return attrError(AttrNoTitle, err)
	}
	noSummary, err := ta.Bool(AttrNoSummary, false)
	if err != nil {
		return attrError(AttrNoSummary, err)
	}
	c.SetNoTitle(noTitle)
	c.SetNoSummary(noSummary)

	align, err := ta.Enum(AttrContentAlign, int(AlignStart), alignValues)
	if err != nil {
		return attrError(AttrContentAlign, err)
	}
	c.SetContentAlign(ContentAlign(align))
	return nil
}
