package card

import (
	"fmt"

	"github.com/go-drift/cardview/pkg/graphics"
	"github.com/go-drift/cardview/pkg/view"
)

// Badge geometry in dp.
const (
	BadgeText           = "New"
	badgeTextSizeDp     = 10
	badgePaddingHDp     = 8
	badgePaddingVDp     = 4
	badgeCornerRadiusDp = 4
)

// Scaffold geometry in dp.
const (
	rootPaddingDp       = 1
	iconSlotSizeDp      = 40
	iconSizeDp          = 20
	textStackMarginDp   = 8
	titleTopMarginDp    = 6
	titleTextSizeSp     = 17
	summaryTextSizeSp   = 12
	summaryAlpha        = 0.6
	defaultIconSizeAttr = 24
	defaultStrokeDp     = 2
)

// Base card geometry in dp.
const (
	cardRadiusDp        = 30
	contentPaddingDp    = 16
	checkedIconSizeDp   = 24
	checkedIconMarginDp = 8
	unsetMargin         = -1
)

// Fixed colors.
const (
	BadgeColor            = graphics.Color(0xFFFFD700)
	BadgeTextColor        = graphics.Color(0xFF000000)
	DefaultIconBackground = graphics.Color(0xFFE0E0E0)
	DefaultCardBackground = graphics.Color(0xFF282E2A)
	DefaultIconTint       = graphics.Color(0xFF757575)
	DefaultStrokeColor    = graphics.Color(0xFFFFFFFF)
	shadowColor           = graphics.Color(0x33000000)
)

// ContentAlign positions nodes in the content slot.
type ContentAlign int

const (
	AlignStart ContentAlign = iota
	AlignCenter
	AlignEnd
)

func (a ContentAlign) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return fmt.Sprintf("ContentAlign(%d)", int(a))
	}
}

func (a ContentAlign) gravity() view.Gravity {
	switch a {
	case AlignCenter:
		return view.GravityCenterHorizontal
	case AlignEnd:
		return view.GravityEnd
	default:
		return view.GravityStart
	}
}

// CheckedIconGravity selects the corner the checked icon is drawn in.
type CheckedIconGravity int

const (
	TopEnd CheckedIconGravity = iota + 1
	TopStart
	BottomEnd
	BottomStart
)

func (g CheckedIconGravity) String() string {
	switch g {
	case TopEnd:
		return "topEnd"
	case TopStart:
		return "topStart"
	case BottomEnd:
		return "bottomEnd"
	case BottomStart:
		return "bottomStart"
	default:
		return fmt.Sprintf("CheckedIconGravity(%d)", int(g))
	}
}

// HeaderState describes which parts of the header are shown.
type HeaderState int

const (
	BothVisible HeaderState = iota
	TitleOnly
	SummaryOnly
	HeaderAbsent
)

func (s HeaderState) String() string {
	switch s {
	case BothVisible:
		return "both"
	case TitleOnly:
		return "title-only"
	case SummaryOnly:
		return "summary-only"
	case HeaderAbsent:
		return "absent"
	default:
		return fmt.Sprintf("HeaderState(%d)", int(s))
	}
}

// Attribute keys read at construction.
const (
	AttrIcon                = "icon"
	AttrIconWidth           = "iconWidth"
	AttrIconHeight          = "iconHeight"
	AttrIconBackgroundColor = "iconBackgroundColor"
	AttrNoIconBackground    = "noIconBackground"
	AttrNoIcon              = "noIcon"
	AttrTitle               = "title"
	AttrSummary             = "summary"
	AttrTitleFont           = "titleFont"
	AttrSummaryFont         = "summaryFont"
	AttrTitleTextSize       = "titleTextSize"
	AttrSummaryTextSize     = "summaryTextSize"
	AttrStrokeWidth         = "strokeWidth"
	AttrStrokeColor         = "strokeColor"
	AttrBackgroundColor     = "backgroundColor"
	AttrElevation           = "elevation"
	AttrCheckedIcon         = "checkedIcon"
	AttrCheckedIconGravity  = "checkedIconGravity"
	AttrCheckedIconMargin   = "checkedIconMargin"
	AttrRecommended         = "recommended"
	AttrCheckable           = "checkable"
	AttrClickable           = "clickable"
	AttrNoTitle             = "noTitle"
	AttrNoSummary           = "noSummary"
	AttrContentAlign        = "contentAlign"
)

// AttributeKeys lists every key the card reads, in ingestion order.
var AttributeKeys = []string{
	AttrIcon, AttrIconWidth, AttrIconHeight, AttrIconBackgroundColor, AttrNoIconBackground, AttrNoIcon,
	AttrTitle, AttrSummary, AttrTitleFont, AttrSummaryFont, AttrTitleTextSize, AttrSummaryTextSize,
	AttrStrokeWidth, AttrStrokeColor, AttrBackgroundColor, AttrElevation,
	AttrCheckedIcon, AttrCheckedIconGravity, AttrCheckedIconMargin, AttrRecommended,
	AttrCheckable, AttrClickable,
	AttrNoTitle, AttrNoSummary, AttrContentAlign,
}

var (
	gravityValues = map[string]int{
		"topEnd":      int(TopEnd),
		"topStart":    int(TopStart),
		"bottomEnd":   int(BottomEnd),
		"bottomStart": int(BottomStart),
	}
	alignValues = map[string]int{
		"start":  int(AlignStart),
		"center": int(AlignCenter),
		"end":    int(AlignEnd),
	}
)
