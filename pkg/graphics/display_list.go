package graphics

import (
	"fmt"
	"image"
	"math"
)

// DisplayOp is one recorded canvas call.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// RecordingCanvas implements Canvas by recording every call as a DisplayOp.
// It draws nothing and is used to inspect what a paint pass issued.
type RecordingCanvas struct {
	ops  []DisplayOp
	size Size
}

// NewRecordingCanvas creates a recording canvas reporting the given size.
func NewRecordingCanvas(size Size) *RecordingCanvas {
	return &RecordingCanvas{size: size}
}

// Ops returns the recorded operations in call order.
func (c *RecordingCanvas) Ops() []DisplayOp {
	return c.ops
}

// Count returns the number of recorded calls named op.
func (c *RecordingCanvas) Count(op string) int {
	n := 0
	for _, o := range c.ops {
		if o.Op == op {
			n++
		}
	}
	return n
}

// Find returns the recorded calls named op.
func (c *RecordingCanvas) Find(op string) []DisplayOp {
	var found []DisplayOp
	for _, o := range c.ops {
		if o.Op == op {
			found = append(found, o)
		}
	}
	return found
}

// Reset discards all recorded operations.
func (c *RecordingCanvas) Reset() {
	c.ops = c.ops[:0]
}

func (c *RecordingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *RecordingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *RecordingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *RecordingCanvas) ClipRect(rect Rect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRect",
		Params: sortedMap("rect", serializeRect(rect)),
	})
}

func (c *RecordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawRect",
		Params: sortedMap(
			"rect", serializeRect(rect),
			"color", serializeColor(paint.Color),
			"style", paint.Style.String(),
		),
	})
}

func (c *RecordingCanvas) DrawRRect(rrect RRect, paint Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawRRect",
		Params: sortedMap(
			"rect", serializeRect(rrect.Rect),
			"radius", round2(rrect.UniformRadius()),
			"color", serializeColor(paint.Color),
			"style", paint.Style.String(),
		),
	})
}

func (c *RecordingCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawCircle",
		Params: sortedMap(
			"cx", round2(center.X),
			"cy", round2(center.Y),
			"radius", round2(radius),
			"color", serializeColor(paint.Color),
		),
	})
}

func (c *RecordingCanvas) DrawText(text string, origin Offset, paint TextPaint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawText",
		Params: sortedMap(
			"text", text,
			"x", round2(origin.X),
			"y", round2(origin.Y),
			"size", round2(paint.Size),
			"color", serializeColor(paint.Color),
		),
	})
}

func (c *RecordingCanvas) DrawImage(_ image.Image, dst Rect, tint *Color) {
	params := sortedMap("dst", serializeRect(dst))
	if tint != nil {
		params["tint"] = serializeColor(*tint)
	}
	c.ops = append(c.ops, DisplayOp{Op: "drawImage", Params: params})
}

func (c *RecordingCanvas) Size() Size {
	return c.size
}

func serializeRect(r Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
