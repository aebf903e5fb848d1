package card

import (
	"github.com/go-drift/cardview/pkg/graphics"
	"github.com/go-drift/cardview/pkg/view"
)

// badgeRenderer draws the "recommended" badge in the top-right corner.
// Paints and text metrics are fixed at construction; only the placement
// depends on the surface width.
type badgeRenderer struct {
	fill      graphics.Paint
	text      graphics.TextPaint
	metrics   graphics.FontMetrics
	textWidth float64
	height    float64
	paddingH  float64
	radius    float64
}

func newBadgeRenderer(host *view.Host) *badgeRenderer {
	text := graphics.TextPaint{
		Typeface: host.FontManager().Default(),
		Size:     float64(host.DpToPx(badgeTextSizeDp)),
		Color:    BadgeTextColor,
	}
	metrics := text.Metrics()
	return &badgeRenderer{
		fill:      graphics.FillPaint(BadgeColor),
		text:      text,
		metrics:   metrics,
		textWidth: text.MeasureText(BadgeText),
		height:    metrics.Bottom - metrics.Top + 2*float64(host.DpToPx(badgePaddingVDp)),
		paddingH:  float64(host.DpToPx(badgePaddingHDp)),
		radius:    float64(host.DpToPx(badgeCornerRadiusDp)),
	}
}

// width returns the badge width: the text plus horizontal padding.
func (r *badgeRenderer) width() float64 {
	return r.textWidth + 2*r.paddingH
}

// draw paints the badge flush with the top-right corner of a surface
// surfaceWidth pixels wide. It issues no calls unless recommended.
func (r *badgeRenderer) draw(canvas graphics.Canvas, surfaceWidth float64, recommended bool) {
	if !recommended {
		return
	}
	w := r.width()
	canvas.Save()
	canvas.Translate(surfaceWidth-w/2, 0)
	rect := graphics.Rect{Left: -w / 2, Top: 0, Right: w / 2, Bottom: r.height}
	canvas.DrawRRect(graphics.RRectFromRectAndRadius(rect, graphics.CircularRadius(r.radius)), r.fill)
	// Center on the glyph box, not the line box.
	y := r.height/2 - (r.metrics.Descent+r.metrics.Ascent)/2
	canvas.DrawText(BadgeText, graphics.Offset{X: -r.textWidth / 2, Y: y}, r.text)
	canvas.Restore()
}
