package attrs

import (
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"

	"github.com/go-drift/cardview/pkg/errors"
	"github.com/go-drift/cardview/pkg/graphics"
)

// DrawablePrefix marks a string value as a drawable resource reference.
const DrawablePrefix = "@drawable/"

// Resource is a resolved image attribute: either a resource id or an image.
type Resource struct {
	ID    string
	Image image.Image
}

// IsZero reports whether neither an id nor an image is set.
func (r Resource) IsZero() bool {
	return r.ID == "" && r.Image == nil
}

func mismatch(key, want string, got any) error {
	return &errors.AttributeError{Key: key, Want: want, Got: got}
}

// String returns the string value of key, or def when absent.
func (ta *TypedArray) String(key, def string) (string, error) {
	v, ok := ta.raw(key)
	if !ok {
		return def, nil
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	}
	return def, mismatch(key, "string", v)
}

// Bool returns the boolean value of key, or def when absent. Strings are
// parsed with strconv.ParseBool.
func (ta *TypedArray) Bool(key string, def bool) (bool, error) {
	v, ok := ta.raw(key)
	if !ok {
		return def, nil
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return def, mismatch(key, "bool", v)
		}
		return parsed, nil
	}
	return def, mismatch(key, "bool", v)
}

// Int returns the integer value of key, or def when absent.
func (ta *TypedArray) Int(key string, def int) (int, error) {
	v, ok := ta.raw(key)
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == math.Trunc(n) {
			return int(n), nil
		}
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err == nil {
			return parsed, nil
		}
	}
	return def, mismatch(key, "int", v)
}

// Float returns the numeric value of key, or def when absent.
func (ta *TypedArray) Float(key string, def float64) (float64, error) {
	v, ok := ta.raw(key)
	if !ok {
		return def, nil
	}
	if f, ok := toFloat(v); ok {
		return f, nil
	}
	if s, ok := v.(string); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f, nil
		}
	}
	return def, mismatch(key, "number", v)
}

// Color returns the color value of key, or def when absent. Strings are
// parsed with graphics.ParseColor; integers are ARGB.
func (ta *TypedArray) Color(key string, def graphics.Color) (graphics.Color, error) {
	v, ok := ta.raw(key)
	if !ok {
		return def, nil
	}
	switch c := v.(type) {
	case graphics.Color:
		return c, nil
	case int:
		return graphics.Color(uint32(c)), nil
	case uint32:
		return graphics.Color(c), nil
	case string:
		parsed, err := graphics.ParseColor(c)
		if err != nil {
			return def, fmt.Errorf("attribute %q: %w", key, err)
		}
		return parsed, nil
	}
	return def, mismatch(key, "color", v)
}

// Dimension returns the value of key in pixels, or def when absent. Plain
// numbers are pixels; strings carry a dp, sp or px unit.
func (ta *TypedArray) Dimension(key string, def float64) (float64, error) {
	v, ok := ta.raw(key)
	if !ok {
		return def, nil
	}
	if f, ok := toFloat(v); ok {
		return f, nil
	}
	if s, ok := v.(string); ok {
		px, err := ParseDimension(s, ta.metrics.Density, ta.metrics.ScaledDensity)
		if err != nil {
			return def, fmt.Errorf("attribute %q: %w", key, err)
		}
		return px, nil
	}
	return def, mismatch(key, "dimension", v)
}

// DimensionPixelSize returns Dimension rounded to whole pixels.
func (ta *TypedArray) DimensionPixelSize(key string, def int) (int, error) {
	px, err := ta.Dimension(key, float64(def))
	if err != nil {
		return def, err
	}
	return int(math.Round(px)), nil
}

// Enum maps the string value of key through values, returning def when
// absent. Integer values are accepted as-is.
func (ta *TypedArray) Enum(key string, def int, values map[string]int) (int, error) {
	v, ok := ta.raw(key)
	if !ok {
		return def, nil
	}
	switch e := v.(type) {
	case int:
		return e, nil
	case string:
		if n, ok := values[strings.TrimSpace(e)]; ok {
			return n, nil
		}
		return def, fmt.Errorf("attribute %q: unknown value %q", key, e)
	}
	return def, mismatch(key, "enum", v)
}

// Resource returns an image attribute. Strings are resource ids, with an
// optional "@drawable/" prefix; image.Image values are used directly.
func (ta *TypedArray) Resource(key string) (Resource, error) {
	v, ok := ta.raw(key)
	if !ok {
		return Resource{}, nil
	}
	switch r := v.(type) {
	case image.Image:
		return Resource{Image: r}, nil
	case string:
		id := strings.TrimPrefix(strings.TrimSpace(r), DrawablePrefix)
		if id == "" {
			return Resource{}, fmt.Errorf("attribute %q: empty resource id", key)
		}
		return Resource{ID: id}, nil
	}
	return Resource{}, mismatch(key, "resource", v)
}

// ParseDimension converts "<n>dp", "<n>sp", "<n>px" or "<n>" to pixels.
func ParseDimension(s string, density, scaledDensity float64) (float64, error) {
	in := s
	s = strings.TrimSpace(s)
	scale := 1.0
	switch {
	case strings.HasSuffix(s, "dp"):
		s, scale = strings.TrimSuffix(s, "dp"), density
	case strings.HasSuffix(s, "dip"):
		s, scale = strings.TrimSuffix(s, "dip"), density
	case strings.HasSuffix(s, "sp"):
		s, scale = strings.TrimSuffix(s, "sp"), scaledDensity
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid dimension %q", in)
	}
	return n * scale, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
