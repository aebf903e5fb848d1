package card

import "github.com/go-drift/cardview/pkg/view"

// redirect reports whether an inserted node belongs in the content slot:
// once the scaffold is installed, everything but the scaffold root does.
func (c *Card) redirect(child view.View) bool {
	return c.installed && child != view.View(c.sc.root)
}

// AddView appends child to the content slot.
func (c *Card) AddView(child view.View) {
	if c.redirect(child) {
		c.sc.content.AddView(child)
		return
	}
	c.BaseCard.AddView(child)
}

// AddViewAt inserts child into the content slot at index. view.IndexAppend
// appends.
func (c *Card) AddViewAt(child view.View, index int) {
	if c.redirect(child) {
		if index == view.IndexAppend {
			c.sc.content.AddView(child)
		} else {
			c.sc.content.AddViewAt(child, index)
		}
		return
	}
	c.BaseCard.AddViewAt(child, index)
}

// AddViewWithParams appends child to the content slot with params.
func (c *Card) AddViewWithParams(child view.View, params *view.LayoutParams) {
	if c.redirect(child) {
		c.sc.content.AddViewWithParams(child, params)
		return
	}
	c.BaseCard.AddViewWithParams(child, params)
}

// AddViewAtWithParams inserts child into the content slot at index with
// params. view.IndexAppend appends.
func (c *Card) AddViewAtWithParams(child view.View, index int, params *view.LayoutParams) {
	if c.redirect(child) {
		if index == view.IndexAppend {
			c.sc.content.AddViewWithParams(child, params)
		} else {
			c.sc.content.AddViewAtWithParams(child, index, params)
		}
		return
	}
	c.BaseCard.AddViewAtWithParams(child, index, params)
}

// ChildContentLayout returns the content slot.
func (c *Card) ChildContentLayout() *view.LinearLayout {
	return c.sc.content
}

// RemoveAllChildContent detaches every node from the content slot.
func (c *Card) RemoveAllChildContent() {
	c.sc.content.RemoveAllViews()
}
