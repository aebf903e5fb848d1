package graphics

import (
	stderrors "errors"
	"image"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#FFD700", Color(0xFFFFD700)},
		{"#ffd700", Color(0xFFFFD700)},
		{"#80FFFFFF", Color(0x80FFFFFF)},
		{"#E0E0E0", Color(0xFFE0E0E0)},
		{"white", ColorWhite},
		{" black ", ColorBlack},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "FFD700", "#GG0000", "#12345", "#ZZFFFFFF"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) expected error", in)
		}
	}
}

func TestColorWithOpacity(t *testing.T) {
	c := Color(0xFF102030)
	if got := c.WithOpacity(0.6); got.Alpha() != 153 {
		t.Errorf("alpha = %d, want 153", got.Alpha())
	}
	if got := c.WithOpacity(1); got != c {
		t.Errorf("WithOpacity(1) = %v, want %v", got, c)
	}
}

func TestFontManagerCreate(t *testing.T) {
	m := NewFontManager()
	tf, err := m.Create("Sans-Serif", FontStyleBold)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if tf.Family != "sans-serif" || tf.Style != FontStyleBold {
		t.Errorf("got %s/%s", tf.Family, tf.Style)
	}
	again, err := m.Create("sans-serif", FontStyleBold)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if again != tf {
		t.Error("expected cached typeface to be reused")
	}
}

func TestFontManagerUnknownFamily(t *testing.T) {
	m := NewFontManager()
	_, err := m.Create("comic-sans", FontStyleNormal)
	if !stderrors.Is(err, ErrUnknownFamily) {
		t.Fatalf("err = %v, want ErrUnknownFamily", err)
	}
	if err := m.RegisterFont("broken", FontStyleNormal, []byte("not a font")); err == nil {
		t.Error("expected RegisterFont to reject invalid data")
	}
	if m.HasFamily("broken") {
		t.Error("invalid font should not be registered")
	}
}

func TestTextPaintMetrics(t *testing.T) {
	p := TextPaint{Size: 20}
	m := p.Metrics()
	if m.Ascent >= 0 {
		t.Errorf("Ascent = %v, want negative", m.Ascent)
	}
	if m.Descent <= 0 {
		t.Errorf("Descent = %v, want positive", m.Descent)
	}
	if m.Top >= 0 || m.Bottom <= 0 {
		t.Errorf("bounds %v..%v should straddle the baseline", m.Top, m.Bottom)
	}
	short := p.MeasureText("New")
	long := p.MeasureText("Newer")
	if short <= 0 || long <= short {
		t.Errorf("MeasureText: New=%v Newer=%v", short, long)
	}
	if p.MeasureText("") != 0 {
		t.Error("empty text should measure zero")
	}
}

func TestRecordingCanvas(t *testing.T) {
	c := NewRecordingCanvas(Size{Width: 100, Height: 50})
	c.Save()
	c.Translate(10, 0)
	c.DrawRRect(RRectFromRectAndRadius(RectFromLTWH(0, 0, 20, 10), CircularRadius(4)), FillPaint(ColorRed))
	c.DrawText("hi", Offset{X: 1, Y: 2}, TextPaint{Size: 10, Color: ColorBlack})
	c.Restore()

	if got := len(c.Ops()); got != 5 {
		t.Fatalf("recorded %d ops, want 5", got)
	}
	rr := c.Find("drawRRect")
	if len(rr) != 1 {
		t.Fatalf("drawRRect count = %d", len(rr))
	}
	if rr[0].Params["radius"] != 4.0 {
		t.Errorf("radius = %v, want 4", rr[0].Params["radius"])
	}
	if c.Find("drawText")[0].Params["text"] != "hi" {
		t.Error("drawText should record its text")
	}
	c.Reset()
	if len(c.Ops()) != 0 {
		t.Error("Reset should clear ops")
	}
}

func TestRasterCanvasFillAndClip(t *testing.T) {
	c := NewRasterCanvas(40, 40)
	c.Clear(ColorWhite)
	c.Save()
	c.Translate(10, 10)
	c.DrawRect(RectFromLTWH(0, 0, 10, 10), FillPaint(ColorRed))
	c.Restore()

	if got := c.Image().At(15, 15); !sameRGB(got, color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel inside rect = %v, want red", got)
	}
	if got := c.Image().At(5, 5); !sameRGB(got, color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("pixel outside rect = %v, want white", got)
	}

	c.Save()
	c.ClipRect(RectFromLTWH(0, 0, 20, 40))
	c.DrawRect(RectFromLTWH(0, 30, 40, 10), FillPaint(ColorBlue))
	c.Restore()
	if got := c.Image().At(10, 35); !sameRGB(got, color.RGBA{B: 255, A: 255}) {
		t.Errorf("pixel inside clip = %v, want blue", got)
	}
	if got := c.Image().At(30, 35); !sameRGB(got, color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("pixel outside clip = %v, want white", got)
	}
}

func TestRasterCanvasStrokeLeavesInterior(t *testing.T) {
	c := NewRasterCanvas(40, 40)
	c.DrawRRect(RRectFromRectAndRadius(RectFromLTWH(5, 5, 30, 30), CircularRadius(2)), StrokePaint(ColorBlack, 2))
	if _, _, _, a := c.Image().At(20, 20).RGBA(); a != 0 {
		t.Errorf("interior alpha = %d, want 0", a)
	}
	if _, _, _, a := c.Image().At(20, 5).RGBA(); a == 0 {
		t.Error("expected stroke on the top edge")
	}
}

func TestRasterCanvasTintedImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.RGBA{R: 10, G: 200, B: 30, A: 255})
		}
	}
	c := NewRasterCanvas(10, 10)
	tint := ColorBlue
	c.DrawImage(src, RectFromLTWH(0, 0, 8, 8), &tint)
	if got := c.Image().At(4, 4); !sameRGB(got, color.RGBA{B: 255, A: 255}) {
		t.Errorf("tinted pixel = %v, want blue", got)
	}
}

func sameRGB(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar>>8 == br>>8 && ag>>8 == bg>>8 && ab>>8 == bb>>8 && aa>>8 == ba>>8
}

func TestBoxShadowElevation(t *testing.T) {
	shape := RRectFromRectAndRadius(RectFromLTWH(0, 0, 100, 50), CircularRadius(10))

	c := NewRecordingCanvas(Size{Width: 200, Height: 200})
	BoxShadowElevation(8, Color(0x40000000)).Draw(c, shape)

	if got := c.Find("translate"); len(got) != 1 || got[0].Params["dy"] != 4.0 {
		t.Fatalf("translate = %v, want dy 4", got)
	}
	rings := c.Find("drawRRect")
	if len(rings) != shadowRings {
		t.Fatalf("rings = %d, want %d", len(rings), shadowRings)
	}
	// Outermost ring first, each with a quarter of the alpha.
	if r := rings[0].Params["radius"]; r != 18.0 {
		t.Errorf("outer radius = %v, want 18", r)
	}
	if r := rings[len(rings)-1].Params["radius"]; r != 12.0 {
		t.Errorf("inner radius = %v, want 12", r)
	}
	for _, ring := range rings {
		if ring.Params["color"] != "0x10000000" {
			t.Errorf("ring color = %v, want 0x10000000", ring.Params["color"])
		}
	}
	if c.Count("save") != 1 || c.Count("restore") != 1 {
		t.Error("shadow did not restore the canvas")
	}
}

func TestBoxShadowWithoutBlur(t *testing.T) {
	c := NewRecordingCanvas(Size{Width: 10, Height: 10})
	BoxShadow{Color: ColorBlack, Offset: Offset{X: 1, Y: 1}}.Draw(c, RRectFromRectAndRadius(RectFromLTWH(0, 0, 4, 4), CircularRadius(0)))
	if c.Count("drawRRect") != 1 {
		t.Errorf("drawRRect = %d, want a single hard shadow", c.Count("drawRRect"))
	}
}

func TestRRectInflate(t *testing.T) {
	r := RRectFromRectAndRadius(RectFromLTWH(10, 10, 20, 20), CircularRadius(4)).Inflate(-6)
	if r.Rect != (Rect{Left: 16, Top: 16, Right: 24, Bottom: 24}) {
		t.Errorf("rect = %+v", r.Rect)
	}
	if r.UniformRadius() != 0 {
		t.Errorf("radius = %v, want clamped to 0", r.UniformRadius())
	}
}
