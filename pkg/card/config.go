package card

import "github.com/go-drift/cardview/pkg/graphics"

// Configuration holds the card's configurable state. The card owns it; read
// a snapshot with Card.Config.
type Configuration struct {
	IconBackgroundColor graphics.Color
	// IconTint is nil when the icon is drawn untinted.
	IconTint *graphics.Color
	// AutoTintIcon re-derives the tint from the theme when switched on.
	AutoTintIcon     bool
	ContentAlignment ContentAlign

	NoTitle          bool
	NoSummary        bool
	NoIcon           bool
	NoIconBackground bool

	Recommended bool

	// Badge metrics, measured once at construction.
	BadgeTextWidth float64
	BadgeHeight    float64
}

func defaultConfiguration() Configuration {
	return Configuration{
		IconBackgroundColor: DefaultIconBackground,
		AutoTintIcon:        true,
		ContentAlignment:    AlignStart,
	}
}

func (c Configuration) clone() Configuration {
	if c.IconTint != nil {
		tint := *c.IconTint
		c.IconTint = &tint
	}
	return c
}
