package card

import "github.com/go-drift/cardview/pkg/view"

// SetNoTitle hides (true) or shows the title and recomposes the header.
func (c *Card) SetNoTitle(noTitle bool) {
	c.config.NoTitle = noTitle
	c.recomposeHeader()
}

// NoTitle reports whether the title is hidden.
func (c *Card) NoTitle() bool {
	return c.config.NoTitle
}

// SetNoSummary hides (true) or shows the summary and recomposes the header.
func (c *Card) SetNoSummary(noSummary bool) {
	c.config.NoSummary = noSummary
	c.recomposeHeader()
}

// NoSummary reports whether the summary is hidden.
func (c *Card) NoSummary() bool {
	return c.config.NoSummary
}

// HideHeader hides or shows the header without detaching it.
func (c *Card) HideHeader(hide bool) {
	c.sc.header.SetVisibility(visibleUnless(hide))
}

// recomposeHeader detaches the header and, unless both title and summary
// are hidden, reattaches it first in the root with each part's visibility
// applied.
func (c *Card) recomposeHeader() {
	root := c.sc.root
	if root.IndexOfChild(c.sc.header) != -1 {
		root.RemoveView(c.sc.header)
	}
	if !(c.config.NoTitle && c.config.NoSummary) {
		c.sc.title.SetVisibility(visibleUnless(c.config.NoTitle))
		c.sc.summary.SetVisibility(visibleUnless(c.config.NoSummary))
		c.sc.iconSlot.SetVisibility(visibleUnless(c.config.NoIcon))
		root.AddViewAt(c.sc.header, 0)
	}
	c.RequestLayout()
	c.Invalidate()
}

// HeaderState reports which parts of the header are attached and visible.
func (c *Card) HeaderState() HeaderState {
	if c.sc.root.IndexOfChild(c.sc.header) == -1 {
		return HeaderAbsent
	}
	title := c.sc.title.Visibility() != view.Gone
	summary := c.sc.summary.Visibility() != view.Gone
	switch {
	case title && summary:
		return BothVisible
	case title:
		return TitleOnly
	case summary:
		return SummaryOnly
	}
	return HeaderAbsent
}
