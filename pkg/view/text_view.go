package view

import (
	"math"
	"strings"

	"github.com/go-drift/cardview/pkg/graphics"
)

// Ellipsize selects how single-line text that overflows is presented.
type Ellipsize int

const (
	EllipsizeNone Ellipsize = iota
	// EllipsizeMarquee scrolls overflowing text horizontally while the node
	// is selected.
	EllipsizeMarquee
)

// MarqueeForever is the repeat limit that scrolls indefinitely.
const MarqueeForever = -1

// TextView draws text, wrapped to its width unless single-line.
type TextView struct {
	ViewBase
	host             *Host
	text             string
	textSize         float64 // sp
	typeface         *graphics.Typeface
	color            graphics.Color
	singleLine       bool
	maxLines         int // 0 means unlimited
	ellipsize        Ellipsize
	marqueeRepeat    int
	horizontalScroll bool
	selected         bool
	focusable        bool
	focusableInTouch bool
}

// NewTextView creates an empty text node with the default typeface.
func NewTextView(host *Host) *TextView {
	v := &TextView{
		host:     host,
		textSize: 14,
		color:    graphics.ColorBlack,
	}
	v.SetSelf(v)
	return v
}

// SetText replaces the text.
func (v *TextView) SetText(text string) {
	if v.text == text {
		return
	}
	v.text = text
	v.RequestLayout()
}

// Text returns the text.
func (v *TextView) Text() string {
	return v.text
}

// SetTextSize sets the size in sp.
func (v *TextView) SetTextSize(sp float64) {
	v.textSize = sp
	v.RequestLayout()
}

// TextSize returns the size in sp.
func (v *TextView) TextSize() float64 {
	return v.textSize
}

// TextSizePx returns the size in pixels.
func (v *TextView) TextSizePx() float64 {
	if v.host == nil {
		return v.textSize
	}
	return v.host.Metrics.SpToPx(v.textSize)
}

// SetTypeface sets the typeface. Nil restores the default.
func (v *TextView) SetTypeface(tf *graphics.Typeface) {
	v.typeface = tf
	v.RequestLayout()
}

// Typeface returns the typeface in use.
func (v *TextView) Typeface() *graphics.Typeface {
	if v.typeface != nil {
		return v.typeface
	}
	if v.host != nil {
		return v.host.FontManager().Default()
	}
	return graphics.DefaultFontManager().Default()
}

// SetTextColor sets the text color.
func (v *TextView) SetTextColor(c graphics.Color) {
	v.color = c
	v.Invalidate()
}

// TextColor returns the text color.
func (v *TextView) TextColor() graphics.Color {
	return v.color
}

// SetSingleLine keeps the text on one line; line breaks render as spaces.
func (v *TextView) SetSingleLine(single bool) {
	v.singleLine = single
	if single {
		v.maxLines = 1
	} else if v.maxLines == 1 {
		v.maxLines = 0
	}
	v.RequestLayout()
}

// SingleLine reports whether the node is single-line.
func (v *TextView) SingleLine() bool {
	return v.singleLine
}

// SetMaxLines limits the number of lines; 0 or negative is unlimited.
func (v *TextView) SetMaxLines(n int) {
	if n < 0 {
		n = 0
	}
	v.maxLines = n
	v.RequestLayout()
}

// MaxLines returns the line limit; 0 is unlimited.
func (v *TextView) MaxLines() int {
	return v.maxLines
}

// SetEllipsize sets overflow presentation.
func (v *TextView) SetEllipsize(e Ellipsize) {
	v.ellipsize = e
	v.Invalidate()
}

// Ellipsize returns the overflow presentation.
func (v *TextView) Ellipsize() Ellipsize {
	return v.ellipsize
}

// SetMarqueeRepeatLimit sets how many times a marquee scrolls;
// MarqueeForever scrolls indefinitely.
func (v *TextView) SetMarqueeRepeatLimit(n int) {
	v.marqueeRepeat = n
}

// MarqueeRepeatLimit returns the marquee repeat limit.
func (v *TextView) MarqueeRepeatLimit() int {
	return v.marqueeRepeat
}

// SetHorizontallyScrolling lets text extend past the node's width.
func (v *TextView) SetHorizontallyScrolling(scroll bool) {
	v.horizontalScroll = scroll
	v.RequestLayout()
}

// SetSelected marks the node selected; a selected marquee node scrolls.
func (v *TextView) SetSelected(selected bool) {
	v.selected = selected
	v.Invalidate()
}

// Selected reports whether the node is selected.
func (v *TextView) Selected() bool {
	return v.selected
}

// SetFocusable sets whether the node can take focus, in touch mode or not.
func (v *TextView) SetFocusable(focusable, inTouchMode bool) {
	v.focusable = focusable
	v.focusableInTouch = inTouchMode
}

// Focusable reports whether the node can take focus, and whether it can in
// touch mode.
func (v *TextView) Focusable() (focusable, inTouchMode bool) {
	return v.focusable, v.focusableInTouch
}

// HorizontallyScrolling reports whether text may extend past the width.
func (v *TextView) HorizontallyScrolling() bool {
	return v.horizontalScroll
}

// Marquee reports whether the node scrolls overflowing text.
func (v *TextView) Marquee() bool {
	return v.singleLine && v.ellipsize == EllipsizeMarquee && v.selected
}

// Paint returns the text paint used to draw the node.
func (v *TextView) Paint() graphics.TextPaint {
	return graphics.TextPaint{
		Typeface: v.Typeface(),
		Size:     v.TextSizePx(),
		Color:    v.color.WithOpacity(v.alpha),
	}
}

// Lines splits the text into the lines drawn at maxWidth.
func (v *TextView) Lines(maxWidth float64) []string {
	if v.singleLine {
		return []string{strings.ReplaceAll(v.text, "\n", " ")}
	}
	paint := v.Paint()
	var lines []string
	for _, para := range strings.Split(v.text, "\n") {
		lines = append(lines, wrap(para, maxWidth, paint)...)
	}
	if v.maxLines > 0 && len(lines) > v.maxLines {
		lines = lines[:v.maxLines]
	}
	return lines
}

// wrap breaks a paragraph greedily at spaces so each line fits maxWidth.
// A single word wider than maxWidth keeps its own line.
func wrap(para string, maxWidth float64, paint graphics.TextPaint) []string {
	words := strings.Fields(para)
	if len(words) == 0 || maxWidth <= 0 {
		return []string{para}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if paint.MeasureText(candidate) <= maxWidth {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}

// Measure returns the width of the longest line and the height of all lines.
func (v *TextView) Measure(maxWidth float64) graphics.Size {
	pad := v.padding
	inner := math.Max(maxWidth-pad.Horizontal(), 0)
	paint := v.Paint()
	lines := v.Lines(inner)
	var w float64
	for _, line := range lines {
		w = math.Max(w, paint.MeasureText(line))
	}
	if !v.horizontalScroll || !v.singleLine {
		w = math.Min(w, inner)
	}
	h := paint.Metrics().LineHeight() * float64(len(lines))
	return graphics.Size{Width: math.Min(w+pad.Horizontal(), maxWidth), Height: h + pad.Vertical()}
}

// Draw paints each line, clipped to the node's bounds.
func (v *TextView) Draw(canvas graphics.Canvas) {
	v.DrawBackground(canvas)
	defer v.ClearNeedsPaint()
	pad := v.padding
	paint := v.Paint()
	metrics := paint.Metrics()
	lines := v.Lines(math.Max(v.Width()-pad.Horizontal(), 0))

	canvas.Save()
	canvas.ClipRect(graphics.RectFromLTWH(0, 0, v.Width(), v.Height()))
	for i, line := range lines {
		if line == "" {
			continue
		}
		baseline := pad.Top + float64(i)*metrics.LineHeight() - metrics.Ascent
		canvas.DrawText(line, graphics.Offset{X: pad.Left, Y: baseline}, paint)
	}
	canvas.Restore()
}
