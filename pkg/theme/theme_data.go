// Package theme provides color schemes and the color resolver card components
// read their defaults from.
package theme

import (
	"fmt"
	"sort"

	"github.com/go-drift/cardview/pkg/graphics"
)

// Brightness indicates if a theme is light or dark.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

// Color role keys understood by [ThemeData.ResolveColor].
const (
	KeyPrimary              = "primary"
	KeyOnPrimary            = "onPrimary"
	KeyPrimaryContainer     = "primaryContainer"
	KeyOnPrimaryContainer   = "onPrimaryContainer"
	KeySurface              = "surface"
	KeyOnSurface            = "onSurface"
	KeySurfaceContainerLow  = "surfaceContainerLow"
	KeySurfaceContainerHigh = "surfaceContainerHigh"
	KeyOutline              = "outline"
)

// ColorScheme defines the color roles of a theme.
type ColorScheme struct {
	Primary              graphics.Color
	OnPrimary            graphics.Color
	PrimaryContainer     graphics.Color
	OnPrimaryContainer   graphics.Color
	Surface              graphics.Color
	OnSurface            graphics.Color
	SurfaceContainerLow  graphics.Color
	SurfaceContainerHigh graphics.Color
	Outline              graphics.Color
}

// LightColorScheme returns the default light color scheme.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Primary:              graphics.Color(0xFF006E1C),
		OnPrimary:            graphics.ColorWhite,
		PrimaryContainer:     graphics.Color(0xFF94F990),
		OnPrimaryContainer:   graphics.Color(0xFF002204),
		Surface:              graphics.Color(0xFFF6FBF3),
		OnSurface:            graphics.Color(0xFF181D18),
		SurfaceContainerLow:  graphics.Color(0xFFF0F5ED),
		SurfaceContainerHigh: graphics.Color(0xFFE5EAE2),
		Outline:              graphics.Color(0xFF72796F),
	}
}

// DarkColorScheme returns the default dark color scheme.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:              graphics.Color(0xFF78DC77),
		OnPrimary:            graphics.Color(0xFF00390A),
		PrimaryContainer:     graphics.Color(0xFF005313),
		OnPrimaryContainer:   graphics.Color(0xFF94F990),
		Surface:              graphics.Color(0xFF101510),
		OnSurface:            graphics.Color(0xFFDFE4DC),
		SurfaceContainerLow:  graphics.Color(0xFF181D18),
		SurfaceContainerHigh: graphics.Color(0xFF262B26),
		Outline:              graphics.Color(0xFF8C9388),
	}
}

// ThemeData contains the theme configuration for a host.
type ThemeData struct {
	ColorScheme ColorScheme
	Brightness  Brightness
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	return &ThemeData{ColorScheme: LightColorScheme(), Brightness: BrightnessLight}
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	return &ThemeData{ColorScheme: DarkColorScheme(), Brightness: BrightnessDark}
}

func (t *ThemeData) role(key string) *graphics.Color {
	cs := &t.ColorScheme
	switch key {
	case KeyPrimary:
		return &cs.Primary
	case KeyOnPrimary:
		return &cs.OnPrimary
	case KeyPrimaryContainer:
		return &cs.PrimaryContainer
	case KeyOnPrimaryContainer:
		return &cs.OnPrimaryContainer
	case KeySurface:
		return &cs.Surface
	case KeyOnSurface:
		return &cs.OnSurface
	case KeySurfaceContainerLow:
		return &cs.SurfaceContainerLow
	case KeySurfaceContainerHigh:
		return &cs.SurfaceContainerHigh
	case KeyOutline:
		return &cs.Outline
	default:
		return nil
	}
}

// ResolveColor returns the color of the named role.
func (t *ThemeData) ResolveColor(key string) (graphics.Color, error) {
	if t == nil {
		return 0, fmt.Errorf("resolve %q: %w", key, ErrNoTheme)
	}
	c := t.role(key)
	if c == nil {
		return 0, fmt.Errorf("resolve %q: %w", key, ErrUnknownKey)
	}
	return *c, nil
}

// ApplyOverrides replaces color roles with the given "#RRGGBB" values.
// It stops at the first invalid key or color, leaving earlier roles applied.
func (t *ThemeData) ApplyOverrides(overrides map[string]string) error {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		c := t.role(key)
		if c == nil {
			return fmt.Errorf("theme override %q: %w", key, ErrUnknownKey)
		}
		parsed, err := graphics.ParseColor(overrides[key])
		if err != nil {
			return fmt.Errorf("theme override %q: %w", key, err)
		}
		*c = parsed
	}
	return nil
}
