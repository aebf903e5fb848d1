// Package graphics provides colors, geometry, fonts, and the drawing surfaces
// card components paint onto.
package graphics

import "image"

// Canvas records or renders drawing commands.
//
// Only translation is supported as a transform. Coordinates passed to draw
// calls are relative to the current origin.
type Canvas interface {
	// Save pushes the current translation and clip state.
	Save()

	// Restore pops the most recent translation and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect RRect, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawText draws a single line of text. origin is the left end of the
	// baseline.
	DrawText(text string, origin Offset, paint TextPaint)

	// DrawImage scales img into dst. A non-nil tint replaces the image's
	// colors while keeping its alpha.
	DrawImage(img image.Image, dst Rect, tint *Color)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
