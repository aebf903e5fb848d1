package view

import (
	"fmt"
	"image"
	_ "image/jpeg" // drawable decoders
	_ "image/png"
	"math"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/go-drift/cardview/pkg/graphics"
	"github.com/go-drift/cardview/pkg/theme"
)

// DisplayMetrics describes the scale factors of the display.
type DisplayMetrics struct {
	// Density is pixels per dp.
	Density float64
	// ScaledDensity is pixels per sp (Density times the user font scale).
	ScaledDensity float64
}

// DefaultDisplayMetrics returns a 1:1 display.
func DefaultDisplayMetrics() DisplayMetrics {
	return DisplayMetrics{Density: 1, ScaledDensity: 1}
}

// DpToPx converts dp to whole pixels, rounding to nearest.
func (m DisplayMetrics) DpToPx(dp float64) int {
	return int(math.Round(dp * m.Density))
}

// SpToPx converts sp to pixels.
func (m DisplayMetrics) SpToPx(sp float64) float64 {
	return sp * m.ScaledDensity
}

// Resources loads drawables by id.
type Resources interface {
	Drawable(id string) (image.Image, error)
}

// MapResources serves drawables from memory.
type MapResources map[string]image.Image

// Drawable returns the image registered under id.
func (r MapResources) Drawable(id string) (image.Image, error) {
	img, ok := r[id]
	if !ok {
		return nil, fmt.Errorf("drawable %q not found", id)
	}
	return img, nil
}

// DirResources loads drawables from image files in a directory. The id is
// the file name without extension; .png, .jpg, .webp and .bmp are tried in
// that order.
type DirResources string

// Drawable decodes the image file for id.
func (d DirResources) Drawable(id string) (image.Image, error) {
	for _, ext := range []string{".png", ".jpg", ".webp", ".bmp"} {
		f, err := os.Open(filepath.Join(string(d), id+ext))
		if err != nil {
			continue
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decode drawable %q: %w", id, err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("drawable %q not found in %s", id, string(d))
}

// Host is the environment nodes are created in: display metrics, theme,
// fonts and resources.
type Host struct {
	Metrics   DisplayMetrics
	Theme     theme.Resolver
	Fonts     *graphics.FontManager
	Resources Resources
}

// NewHost returns a host with a 1:1 display, the default light theme, the
// shared font manager and no resources.
func NewHost() *Host {
	return &Host{
		Metrics:   DefaultDisplayMetrics(),
		Theme:     theme.DefaultLightTheme(),
		Fonts:     graphics.DefaultFontManager(),
		Resources: MapResources{},
	}
}

// FontManager returns the host's font manager, or the shared one.
func (h *Host) FontManager() *graphics.FontManager {
	if h.Fonts != nil {
		return h.Fonts
	}
	return graphics.DefaultFontManager()
}

// DpToPx converts dp using the host's metrics.
func (h *Host) DpToPx(dp float64) int {
	return h.Metrics.DpToPx(dp)
}
