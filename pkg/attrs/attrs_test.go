package attrs

import (
	stderrors "errors"
	"image"
	"testing"

	"github.com/go-drift/cardview/pkg/errors"
	"github.com/go-drift/cardview/pkg/graphics"
	"github.com/go-drift/cardview/pkg/view"
)

var dense = view.DisplayMetrics{Density: 2, ScaledDensity: 3}

func TestObtainRecycle(t *testing.T) {
	before := Outstanding()
	ta := Set{"a": 1}.Obtain(dense)
	if Outstanding() != before+1 {
		t.Fatalf("Outstanding = %d, want %d", Outstanding(), before+1)
	}
	if !ta.Has("a") || ta.Has("b") {
		t.Error("Has reports wrong keys")
	}
	ta.Recycle()
	if Outstanding() != before {
		t.Errorf("Outstanding after Recycle = %d, want %d", Outstanding(), before)
	}

	defer func() {
		if recover() == nil {
			t.Error("use after Recycle did not panic")
		}
	}()
	ta.Has("a")
}

func TestNilSetIsEmpty(t *testing.T) {
	var s Set
	ta := s.Obtain(dense)
	defer ta.Recycle()
	if ta.Len() != 0 {
		t.Errorf("Len = %d, want 0", ta.Len())
	}
	got, err := ta.Bool("checkable", true)
	if err != nil || !got {
		t.Errorf("Bool default = %v, %v", got, err)
	}
}

func TestDimension(t *testing.T) {
	tests := []struct {
		value any
		want  float64
	}{
		{"16dp", 32},
		{"12sp", 36},
		{"5px", 5},
		{"7", 7},
		{" 1.5dip ", 3},
		{9, 9},
		{2.5, 2.5},
	}
	for _, tt := range tests {
		ta := Set{"d": tt.value}.Obtain(dense)
		got, err := ta.Dimension("d", -1)
		ta.Recycle()
		if err != nil {
			t.Errorf("Dimension(%v) error: %v", tt.value, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Dimension(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestDimensionPixelSizeRounds(t *testing.T) {
	ta := Set{"d": "24dp"}.Obtain(view.DisplayMetrics{Density: 2.625, ScaledDensity: 2.625})
	defer ta.Recycle()
	got, err := ta.DimensionPixelSize("d", 0)
	if err != nil || got != 63 {
		t.Errorf("DimensionPixelSize = %d, %v, want 63", got, err)
	}
	if got, _ := ta.DimensionPixelSize("missing", 48); got != 48 {
		t.Errorf("default = %d, want 48", got)
	}
}

func TestAccessorErrors(t *testing.T) {
	ta := Set{
		"flag":  []int{1},
		"dim":   "wide",
		"color": "#GG0000",
		"gold":  "#FFD700",
		"enum":  "sideways",
		"count": "x",
		"img":   3.5,
	}.Obtain(dense)
	defer ta.Recycle()

	var attrErr *errors.AttributeError
	if _, err := ta.Bool("flag", false); !stderrors.As(err, &attrErr) || attrErr.Key != "flag" {
		t.Errorf("Bool mismatch error = %v", err)
	}
	if _, err := ta.Dimension("dim", 0); err == nil {
		t.Error("malformed dimension accepted")
	}
	if _, err := ta.Color("color", 0); err == nil {
		t.Error("malformed color accepted")
	}
	if c, err := ta.Color("gold", 0); err != nil || c != graphics.Color(0xFFFFD700) {
		t.Errorf("Color = %v, %v", c, err)
	}
	if _, err := ta.Enum("enum", 0, map[string]int{"start": 0}); err == nil {
		t.Error("unknown enum value accepted")
	}
	if _, err := ta.Int("count", 0); err == nil {
		t.Error("non-numeric int accepted")
	}
	if _, err := ta.Resource("img"); !stderrors.As(err, &attrErr) {
		t.Errorf("Resource mismatch error = %v", err)
	}
}

func TestResource(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	ta := Set{"a": "@drawable/star", "b": "wifi", "c": img}.Obtain(dense)
	defer ta.Recycle()

	if r, _ := ta.Resource("a"); r.ID != "star" {
		t.Errorf("prefixed id = %q, want star", r.ID)
	}
	if r, _ := ta.Resource("b"); r.ID != "wifi" {
		t.Errorf("bare id = %q, want wifi", r.ID)
	}
	if r, _ := ta.Resource("c"); r.Image != img {
		t.Error("image value not passed through")
	}
	if r, _ := ta.Resource("none"); !r.IsZero() {
		t.Error("absent resource not zero")
	}
}

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(`
version: 1.2.0
display:
  density: 2
theme:
  primaryContainer: "#FFD8E4"
attributes:
  title: Wi-Fi
  summary: Connected\nStrong signal
  iconWidth: 24dp
  recommended: true
content:
  - text: Details
    size: 14
`))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if doc.Display.Metrics().Density != 2 || doc.Display.Metrics().ScaledDensity != 2 {
		t.Errorf("metrics = %+v", doc.Display.Metrics())
	}
	if doc.Theme["primaryContainer"] != "#FFD8E4" {
		t.Errorf("theme = %v", doc.Theme)
	}
	if len(doc.Content) != 1 || doc.Content[0].Text != "Details" {
		t.Errorf("content = %+v", doc.Content)
	}

	ta := doc.Attributes.Obtain(doc.Display.Metrics())
	defer ta.Recycle()
	if s, _ := ta.String("summary", ""); s != `Connected\nStrong signal` {
		t.Errorf("summary = %q, want the literal escape kept", s)
	}
	if w, _ := ta.Dimension("iconWidth", 0); w != 48 {
		t.Errorf("iconWidth = %v, want 48", w)
	}
	if r, _ := ta.Bool("recommended", false); !r {
		t.Error("recommended not read")
	}
}

func TestParseDocumentVersion(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{"v prefix", "version: v1.0.0\n", false},
		{"short", "version: \"1\"\n", false},
		{"missing", "attributes: {}\n", true},
		{"garbage", "version: one\n", true},
		{"major 2", "version: 2.0.0\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseDocument([]byte(tt.src))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && doc.Attributes == nil {
				t.Error("Attributes is nil for a valid document")
			}
		})
	}
	if _, err := ParseDocument([]byte("version: 2.0.0\n")); !stderrors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("major 2 error = %v, want ErrUnsupportedVersion", err)
	}
}

func TestSetKeysSorted(t *testing.T) {
	keys := Set{"b": 1, "a": 2, "c": 3}.Keys()
	if len(keys) != 3 || keys[0] != "a" || keys[2] != "c" {
		t.Errorf("Keys = %v", keys)
	}
}
