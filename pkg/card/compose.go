package card

import (
	"math"

	"github.com/go-drift/cardview/pkg/view"
)

// scaffold holds the card's internal nodes.
//
//	root (vertical)
//	 ├─ header (horizontal)       attached by the card, not here
//	 │    ├─ iconSlot (frame)
//	 │    │    └─ icon
//	 │    └─ textStack (vertical)
//	 │         ├─ title
//	 │         └─ summary
//	 └─ content (vertical)
type scaffold struct {
	root      *view.LinearLayout
	header    *view.LinearLayout
	iconSlot  *view.FrameLayout
	icon      *view.ImageView
	textStack *view.LinearLayout
	title     *view.TextView
	summary   *view.TextView
	content   *view.LinearLayout
}

// compose builds the scaffold. It sizes nodes but applies no styling.
func compose(host *view.Host) *scaffold {
	dp := func(v float64) float64 { return float64(host.DpToPx(v)) }

	s := &scaffold{
		root:      view.NewLinearLayout(view.Vertical),
		header:    view.NewLinearLayout(view.Horizontal),
		iconSlot:  view.NewFrameLayout(),
		icon:      view.NewImageView(host),
		textStack: view.NewLinearLayout(view.Vertical),
		title:     view.NewTextView(host),
		summary:   view.NewTextView(host),
		content:   view.NewLinearLayout(view.Vertical),
	}

	s.root.SetLayoutParams(view.NewLayoutParams(view.MatchParent, view.WrapContent))
	s.root.SetPadding(view.EdgeInsetsAll(dp(rootPaddingDp)))
	s.header.SetLayoutParams(view.NewLayoutParams(view.MatchParent, view.WrapContent))

	s.iconSlot.SetLayoutParams(view.NewLayoutParams(dp(iconSlotSizeDp), dp(iconSlotSizeDp)))
	iconParams := view.NewLayoutParams(dp(iconSizeDp), dp(iconSizeDp))
	iconParams.Gravity = view.GravityCenter
	s.iconSlot.AddViewWithParams(s.icon, iconParams)

	stackParams := view.NewLayoutParams(view.MatchParent, view.WrapContent)
	stackParams.Margins.Left = dp(textStackMarginDp)
	s.textStack.SetLayoutParams(stackParams)

	titleParams := view.NewLayoutParams(view.WrapContent, view.WrapContent)
	titleParams.Margins.Top = math.Trunc(titleTopMarginDp * host.Metrics.Density)
	s.title.SetTextSize(titleTextSizeSp)
	s.textStack.AddViewWithParams(s.title, titleParams)

	s.summary.SetTextSize(summaryTextSizeSp)
	s.summary.SetAlpha(summaryAlpha)
	s.summary.SetSingleLine(false)
	s.summary.SetMaxLines(0)
	s.summary.SetEllipsize(view.EllipsizeNone)
	s.textStack.AddView(s.summary)

	s.header.AddView(s.iconSlot)
	s.header.AddView(s.textStack)

	s.content.SetLayoutParams(view.NewLayoutParams(view.MatchParent, view.WrapContent))
	s.root.AddView(s.content)
	return s
}
