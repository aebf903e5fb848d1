package view

import (
	"image"
	"strings"
	"testing"

	"github.com/go-drift/cardview/pkg/errors"
	"github.com/go-drift/cardview/pkg/graphics"
)

func fixed(w, h float64) *LayoutParams {
	return NewLayoutParams(w, h)
}

func TestAddViewOrdering(t *testing.T) {
	g := NewLinearLayout(Vertical)
	a, b, c, d := NewFrameLayout(), NewFrameLayout(), NewFrameLayout(), NewFrameLayout()

	g.AddView(a)
	g.AddView(b)
	g.AddViewAt(c, 0)
	g.AddViewAt(d, IndexAppend)

	want := []View{c, a, b, d}
	if g.ChildCount() != len(want) {
		t.Fatalf("ChildCount = %d, want %d", g.ChildCount(), len(want))
	}
	for i, v := range want {
		if g.ChildAt(i) != v {
			t.Errorf("ChildAt(%d) is not the expected child", i)
		}
	}
	if a.Parent() != ViewGroup(g) {
		t.Error("child parent not set to the group")
	}
	if g.IndexOfChild(b) != 2 {
		t.Errorf("IndexOfChild(b) = %d, want 2", g.IndexOfChild(b))
	}
}

func TestAddViewWithParams(t *testing.T) {
	g := NewFrameLayout()
	child := NewFrameLayout()
	params := fixed(10, 20)
	g.AddViewWithParams(child, params)
	if child.LayoutParams() != params {
		t.Error("params not applied to child")
	}
}

func TestAddViewPanics(t *testing.T) {
	tests := []struct {
		name string
		add  func(g *LinearLayout)
	}{
		{"nil child", func(g *LinearLayout) { g.AddView(nil) }},
		{"index past end", func(g *LinearLayout) { g.AddViewAt(NewFrameLayout(), 1) }},
		{"negative index", func(g *LinearLayout) { g.AddViewAt(NewFrameLayout(), -2) }},
		{"already parented", func(g *LinearLayout) {
			child := NewFrameLayout()
			NewFrameLayout().AddView(child)
			g.AddView(child)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.add(NewLinearLayout(Vertical))
		})
	}
}

func TestRemoveView(t *testing.T) {
	g := NewFrameLayout()
	child := NewFrameLayout()
	g.AddView(child)
	if !g.RemoveView(child) {
		t.Fatal("RemoveView returned false for a child")
	}
	if child.Parent() != nil {
		t.Error("removed child still has a parent")
	}
	if g.RemoveView(child) {
		t.Error("RemoveView returned true for a detached node")
	}
	g.AddView(child)
	g.RemoveAllViews()
	if g.ChildCount() != 0 || child.Parent() != nil {
		t.Error("RemoveAllViews left children attached")
	}
}

func TestRequestLayoutPropagates(t *testing.T) {
	root := NewFrameLayout()
	mid := NewLinearLayout(Horizontal)
	leaf := NewTextView(NewHost())
	root.AddView(mid)
	mid.AddView(leaf)
	root.Layout(graphics.RectFromLTWH(0, 0, 100, 100))
	if root.NeedsLayout() {
		t.Fatal("root still needs layout after Layout")
	}

	before := root.LayoutRequests()
	leaf.SetText("hello")
	if !root.NeedsLayout() {
		t.Error("root does not need layout after a leaf change")
	}
	if root.LayoutRequests() != before+1 {
		t.Errorf("LayoutRequests = %d, want %d", root.LayoutRequests(), before+1)
	}

	paints := root.PaintRequests()
	leaf.SetTextColor(graphics.ColorRed)
	if root.PaintRequests() != paints+1 {
		t.Error("Invalidate did not reach the root")
	}
}

func TestVerticalLayoutPositions(t *testing.T) {
	col := NewLinearLayout(Vertical)
	a, b := NewFrameLayout(), NewFrameLayout()
	col.AddViewWithParams(a, fixed(40, 10))
	pb := fixed(20, 30)
	pb.Margins = EdgeInsets{Left: 5, Top: 6}
	col.AddViewWithParams(b, pb)
	col.SetPadding(EdgeInsetsAll(1))

	size := col.Measure(200)
	if size.Width != 42 || size.Height != 48 {
		t.Errorf("Measure = %+v, want 42x48", size)
	}
	col.Layout(graphics.RectFromLTWH(0, 0, size.Width, size.Height))
	if got := a.Bounds(); got != graphics.RectFromLTWH(1, 1, 40, 10) {
		t.Errorf("a bounds = %+v", got)
	}
	if got := b.Bounds(); got != graphics.RectFromLTWH(6, 17, 20, 30) {
		t.Errorf("b bounds = %+v", got)
	}
}

func TestHorizontalLayoutCentersVertically(t *testing.T) {
	row := NewLinearLayout(Horizontal)
	row.SetGravity(GravityCenterVertical)
	a, b := NewFrameLayout(), NewFrameLayout()
	row.AddViewWithParams(a, fixed(40, 40))
	pb := fixed(10, 20)
	pb.Margins = EdgeInsets{Left: 8}
	row.AddViewWithParams(b, pb)

	size := row.Measure(300)
	if size.Width != 58 || size.Height != 40 {
		t.Errorf("Measure = %+v, want 58x40", size)
	}
	row.Layout(graphics.RectFromLTWH(0, 0, 300, 40))
	if got := b.Bounds(); got != graphics.RectFromLTWH(48, 10, 10, 20) {
		t.Errorf("b bounds = %+v", got)
	}
}

func TestGoneChildTakesNoSpace(t *testing.T) {
	col := NewLinearLayout(Vertical)
	a, b := NewFrameLayout(), NewFrameLayout()
	col.AddViewWithParams(a, fixed(10, 10))
	col.AddViewWithParams(b, fixed(10, 10))
	b.SetVisibility(Gone)
	if got := col.Measure(100).Height; got != 10 {
		t.Errorf("height with gone child = %v, want 10", got)
	}
	b.SetVisibility(Invisible)
	if got := col.Measure(100).Height; got != 20 {
		t.Errorf("height with invisible child = %v, want 20", got)
	}

	rec := graphics.NewRecordingCanvas(graphics.Size{Width: 100, Height: 100})
	b.SetBackground(NewShapeDrawable(ShapeRect, graphics.ColorRed))
	col.Layout(graphics.RectFromLTWH(0, 0, 100, 20))
	col.Draw(rec)
	if rec.Count("drawRect") != 0 {
		t.Error("invisible child was drawn")
	}
}

func TestFrameGravity(t *testing.T) {
	f := NewFrameLayout()
	child := NewFrameLayout()
	p := fixed(20, 20)
	p.Gravity = GravityCenter
	f.AddViewWithParams(child, p)
	f.Layout(graphics.RectFromLTWH(0, 0, 40, 60))
	if got := child.Bounds(); got != graphics.RectFromLTWH(10, 20, 20, 20) {
		t.Errorf("centered bounds = %+v", got)
	}
}

func TestMatchParentWidth(t *testing.T) {
	col := NewLinearLayout(Vertical)
	child := NewFrameLayout()
	col.AddViewWithParams(child, fixed(MatchParent, 5))
	col.Layout(graphics.RectFromLTWH(0, 0, 120, 5))
	if got := child.Bounds().Width(); got != 120 {
		t.Errorf("match-parent width = %v, want 120", got)
	}
}

func TestOvalDrawable(t *testing.T) {
	rec := graphics.NewRecordingCanvas(graphics.Size{Width: 40, Height: 40})
	NewShapeDrawable(ShapeOval, graphics.ColorBlue).Draw(rec, graphics.RectFromLTWH(0, 0, 40, 30))
	ops := rec.Find("drawCircle")
	if len(ops) != 1 {
		t.Fatalf("drawCircle count = %d, want 1", len(ops))
	}
	if ops[0].Params["radius"] != 15.0 || ops[0].Params["cx"] != 20.0 {
		t.Errorf("circle params = %v", ops[0].Params)
	}
}

func TestDisplayMetrics(t *testing.T) {
	m := DisplayMetrics{Density: 2.625, ScaledDensity: 2.625}
	if got := m.DpToPx(16); got != 42 {
		t.Errorf("DpToPx(16) = %d, want 42", got)
	}
	if got := m.DpToPx(1); got != 3 {
		t.Errorf("DpToPx(1) = %d, want 3", got)
	}
	if got := m.SpToPx(2); got != 5.25 {
		t.Errorf("SpToPx(2) = %v, want 5.25", got)
	}
}

func TestImageViewFitsCentered(t *testing.T) {
	host := NewHost()
	host.Resources = MapResources{"star": image.NewRGBA(image.Rect(0, 0, 20, 10))}
	v := NewImageView(host)
	v.SetImageResource("star")
	tint := graphics.ColorRed
	v.SetTint(&tint)
	v.Layout(graphics.RectFromLTWH(0, 0, 40, 40))

	rec := graphics.NewRecordingCanvas(graphics.Size{Width: 40, Height: 40})
	v.Draw(rec)
	ops := rec.Find("drawImage")
	if len(ops) != 1 {
		t.Fatalf("drawImage count = %d, want 1", len(ops))
	}
	dst := ops[0].Params["dst"].(map[string]any)
	if dst["left"] != 0.0 || dst["top"] != 10.0 || dst["right"] != 40.0 || dst["bottom"] != 30.0 {
		t.Errorf("dst = %v", dst)
	}
	if ops[0].Params["tint"] != "0xFFFF0000" {
		t.Errorf("tint = %v", ops[0].Params["tint"])
	}
}

func TestImageViewMissingResource(t *testing.T) {
	var got *errors.CardError
	errors.SetHandler(&recordingHandler{onError: func(err *errors.CardError) { got = err }})
	defer errors.SetHandler(nil)

	v := NewImageView(NewHost())
	v.SetImage(image.NewRGBA(image.Rect(0, 0, 4, 4)))
	v.SetImageResource("missing")
	if got == nil || got.Kind != errors.KindResource || got.Key != "missing" {
		t.Fatalf("reported error = %v, want resource error for key missing", got)
	}
	if v.Image() != nil {
		t.Error("image not cleared after failed load")
	}
}

func TestTextViewSingleLine(t *testing.T) {
	v := NewTextView(NewHost())
	v.SetText("one\ntwo")
	v.SetSingleLine(true)
	lines := v.Lines(10)
	if len(lines) != 1 || lines[0] != "one two" {
		t.Errorf("Lines = %q, want [\"one two\"]", lines)
	}
	v.SetEllipsize(EllipsizeMarquee)
	if v.Marquee() {
		t.Error("marquee active before selection")
	}
	v.SetSelected(true)
	if !v.Marquee() {
		t.Error("marquee inactive after selection")
	}
}

func TestTextViewWraps(t *testing.T) {
	v := NewTextView(NewHost())
	v.SetTextSize(12)
	text := strings.Repeat("word ", 20)
	v.SetText(strings.TrimSpace(text))
	wide := v.Paint().MeasureText(text)

	lines := v.Lines(wide / 3)
	if len(lines) < 3 {
		t.Errorf("got %d lines at a third of the width, want at least 3", len(lines))
	}
	if got := strings.Join(lines, " "); got != v.Text() {
		t.Errorf("wrapped text %q lost words", got)
	}

	v.SetMaxLines(2)
	if got := len(v.Lines(wide / 3)); got != 2 {
		t.Errorf("lines with max 2 = %d", got)
	}

	one := v.Paint().Metrics().LineHeight()
	if got := v.Measure(wide / 3).Height; got != 2*one {
		t.Errorf("height = %v, want %v", got, 2*one)
	}
}

func TestTextViewScaledSize(t *testing.T) {
	host := NewHost()
	host.Metrics = DisplayMetrics{Density: 2, ScaledDensity: 3}
	v := NewTextView(host)
	v.SetTextSize(12)
	if v.TextSize() != 12 || v.TextSizePx() != 36 {
		t.Errorf("size = %v sp / %v px, want 12 / 36", v.TextSize(), v.TextSizePx())
	}
}

func TestTextViewDraw(t *testing.T) {
	v := NewTextView(NewHost())
	v.SetText("Title")
	v.SetTextColor(graphics.ColorBlack)
	v.SetAlpha(0.6)
	size := v.Measure(200)
	v.Layout(graphics.RectFromLTWH(0, 0, size.Width, size.Height))

	rec := graphics.NewRecordingCanvas(graphics.Size{Width: 200, Height: 50})
	v.Draw(rec)
	if rec.Count("clipRect") != 1 {
		t.Error("text not clipped to bounds")
	}
	ops := rec.Find("drawText")
	if len(ops) != 1 {
		t.Fatalf("drawText count = %d, want 1", len(ops))
	}
	if ops[0].Params["text"] != "Title" || ops[0].Params["color"] != "0x99000000" {
		t.Errorf("drawText params = %v", ops[0].Params)
	}
	if y := ops[0].Params["y"].(float64); y <= 0 {
		t.Errorf("baseline y = %v, want below the top", y)
	}
}

type recordingHandler struct {
	onError func(*errors.CardError)
}

func (h *recordingHandler) HandleError(err *errors.CardError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *recordingHandler) HandlePanic(*errors.PanicError) {}
