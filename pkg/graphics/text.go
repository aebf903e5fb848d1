package graphics

import (
	stderrors "errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

const (
	// DefaultFamily is the family used when none is requested.
	DefaultFamily = "sans-serif"

	// defaultFontSize is used when a TextPaint has no size.
	defaultFontSize = 16
)

// ErrUnknownFamily is returned when a font family has not been registered.
var ErrUnknownFamily = stderrors.New("unknown font family")

// FontStyle selects the weight and slant of a typeface.
// Values follow the common NORMAL/BOLD/ITALIC/BOLD_ITALIC numbering.
type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleBold
	FontStyleItalic
	FontStyleBoldItalic
)

// String returns a human-readable representation of the font style.
func (s FontStyle) String() string {
	switch s {
	case FontStyleNormal:
		return "normal"
	case FontStyleBold:
		return "bold"
	case FontStyleItalic:
		return "italic"
	case FontStyleBoldItalic:
		return "bold_italic"
	default:
		return fmt.Sprintf("FontStyle(%d)", int(s))
	}
}

// ParseFontStyle parses "normal", "bold", "italic" or "bold_italic".
func ParseFontStyle(s string) (FontStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return FontStyleNormal, nil
	case "bold":
		return FontStyleBold, nil
	case "italic":
		return FontStyleItalic, nil
	case "bold_italic", "bolditalic", "bold|italic":
		return FontStyleBoldItalic, nil
	default:
		return 0, fmt.Errorf("invalid font style %q", s)
	}
}

// FontMetrics describes vertical font extents relative to the baseline.
// Values above the baseline are negative.
type FontMetrics struct {
	Top     float64
	Ascent  float64
	Descent float64
	Bottom  float64
	Leading float64
}

// LineHeight returns the recommended distance between baselines.
func (m FontMetrics) LineHeight() float64 {
	return m.Descent - m.Ascent + m.Leading
}

// Typeface is a resolved font family and style.
type Typeface struct {
	Family string
	Style  FontStyle

	font  *opentype.Font
	mu    sync.Mutex
	faces map[float64]font.Face
}

// Face returns a font face of the typeface at size pixels.
// Faces are cached per size.
func (t *Typeface) Face(size float64) (font.Face, error) {
	if size <= 0 {
		size = defaultFontSize
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if face, ok := t.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(t.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	if t.faces == nil {
		t.faces = make(map[float64]font.Face)
	}
	t.faces[size] = face
	return face, nil
}

// Metrics returns the vertical metrics of the typeface at size pixels.
func (t *Typeface) Metrics(size float64) (FontMetrics, error) {
	face, err := t.Face(size)
	if err != nil {
		return FontMetrics{}, err
	}
	m := face.Metrics()
	metrics := FontMetrics{
		Ascent:  -fromFixed(m.Ascent),
		Descent: fromFixed(m.Descent),
	}
	metrics.Leading = fromFixed(m.Height) - (metrics.Descent - metrics.Ascent)
	if metrics.Leading < 0 {
		metrics.Leading = 0
	}

	var buf sfnt.Buffer
	bounds, err := t.font.Bounds(&buf, toFixed(sizeOrDefault(size)), font.HintingNone)
	if err != nil {
		metrics.Top = metrics.Ascent
		metrics.Bottom = metrics.Descent
		return metrics, nil
	}
	metrics.Top = fromFixed(bounds.Min.Y)
	metrics.Bottom = fromFixed(bounds.Max.Y)
	return metrics, nil
}

// Measure returns the advance width of text at size pixels.
func (t *Typeface) Measure(text string, size float64) (float64, error) {
	face, err := t.Face(size)
	if err != nil {
		return 0, err
	}
	return fromFixed(font.MeasureString(face, text)), nil
}

// FontManager resolves family names to typefaces.
type FontManager struct {
	mu       sync.RWMutex
	families map[string]map[FontStyle][]byte
	resolved map[typefaceKey]*Typeface
}

type typefaceKey struct {
	family string
	style  FontStyle
}

var (
	defaultFontManager     *FontManager
	defaultFontManagerOnce sync.Once
)

// NewFontManager creates a font manager with the bundled Go font families
// registered as "sans-serif" (alias "go"), "sans-serif-medium" and
// "monospace" (alias "go-mono").
func NewFontManager() *FontManager {
	m := &FontManager{
		families: make(map[string]map[FontStyle][]byte),
		resolved: make(map[typefaceKey]*Typeface),
	}
	sans := map[FontStyle][]byte{
		FontStyleNormal:     goregular.TTF,
		FontStyleBold:       gobold.TTF,
		FontStyleItalic:     goitalic.TTF,
		FontStyleBoldItalic: gobolditalic.TTF,
	}
	medium := map[FontStyle][]byte{
		FontStyleNormal:     gomedium.TTF,
		FontStyleBold:       gobold.TTF,
		FontStyleItalic:     gomediumitalic.TTF,
		FontStyleBoldItalic: gobolditalic.TTF,
	}
	mono := map[FontStyle][]byte{
		FontStyleNormal:     gomono.TTF,
		FontStyleBold:       gomonobold.TTF,
		FontStyleItalic:     gomonoitalic.TTF,
		FontStyleBoldItalic: gomonobolditalic.TTF,
	}
	m.families[DefaultFamily] = sans
	m.families["go"] = sans
	m.families["sans-serif-medium"] = medium
	m.families["monospace"] = mono
	m.families["go-mono"] = mono
	return m
}

// DefaultFontManager returns the shared font manager.
func DefaultFontManager() *FontManager {
	defaultFontManagerOnce.Do(func() {
		defaultFontManager = NewFontManager()
	})
	return defaultFontManager
}

// RegisterFont registers TrueType or OpenType data for a family and style.
func (m *FontManager) RegisterFont(family string, style FontStyle, data []byte) error {
	family = normalizeFamily(family)
	if family == "" {
		return stderrors.New("font family required")
	}
	if _, err := opentype.Parse(data); err != nil {
		return fmt.Errorf("parse font %q: %w", family, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	styles, ok := m.families[family]
	if !ok {
		styles = make(map[FontStyle][]byte)
		m.families[family] = styles
	}
	styles[style] = data
	delete(m.resolved, typefaceKey{family, style})
	return nil
}

// HasFamily reports whether family is registered.
func (m *FontManager) HasFamily(family string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.families[normalizeFamily(family)]
	return ok
}

// Create resolves a typeface for family and style. A registered family that
// lacks the requested style falls back to its normal style.
func (m *FontManager) Create(family string, style FontStyle) (*Typeface, error) {
	family = normalizeFamily(family)
	key := typefaceKey{family, style}

	m.mu.RLock()
	tf, ok := m.resolved[key]
	styles, known := m.families[family]
	m.mu.RUnlock()
	if ok {
		return tf, nil
	}
	if !known {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}
	data, ok := styles[style]
	if !ok {
		data, ok = styles[FontStyleNormal]
		if !ok {
			return nil, fmt.Errorf("%w: %q has no %s style", ErrUnknownFamily, family, style)
		}
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %q: %w", family, err)
	}
	tf = &Typeface{Family: family, Style: style, font: parsed}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.resolved[key]; ok {
		return existing, nil
	}
	m.resolved[key] = tf
	return tf, nil
}

// Default returns the normal style of the default family.
func (m *FontManager) Default() *Typeface {
	tf, err := m.Create(DefaultFamily, FontStyleNormal)
	if err != nil {
		// The default family is bundled; failing to parse it is unrecoverable.
		panic(err)
	}
	return tf
}

// TextPaint describes how a run of text is drawn.
type TextPaint struct {
	Typeface *Typeface
	Size     float64 // pixels
	Color    Color
}

func (p TextPaint) typeface() *Typeface {
	if p.Typeface != nil {
		return p.Typeface
	}
	return DefaultFontManager().Default()
}

// Face returns the font face for the paint.
func (p TextPaint) Face() (font.Face, error) {
	return p.typeface().Face(p.Size)
}

// MeasureText returns the advance width of text.
func (p TextPaint) MeasureText(text string) float64 {
	w, err := p.typeface().Measure(text, p.Size)
	if err != nil {
		return 0
	}
	return w
}

// Metrics returns the font metrics for the paint.
func (p TextPaint) Metrics() FontMetrics {
	m, err := p.typeface().Metrics(p.Size)
	if err != nil {
		return FontMetrics{}
	}
	return m
}

func normalizeFamily(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}

func sizeOrDefault(size float64) float64 {
	if size <= 0 {
		return defaultFontSize
	}
	return size
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
