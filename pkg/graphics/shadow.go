package graphics

// shadowRings is the number of fading rings that approximate a blur.
const shadowRings = 4

// BoxShadow is a soft shadow cast by a rounded shape.
//
// Canvases here have no blur filter, so a positive BlurRadius is drawn as
// rings that grow outward and split the color's alpha between them.
type BoxShadow struct {
	Color      Color
	Offset     Offset
	BlurRadius float64
}

// BoxShadowElevation returns the shadow of a surface raised by elevation
// pixels: offset down by half the elevation and blurred by all of it.
func BoxShadowElevation(elevation float64, color Color) BoxShadow {
	if elevation < 0 {
		elevation = 0
	}
	return BoxShadow{
		Color:      color,
		Offset:     Offset{Y: elevation / 2},
		BlurRadius: elevation,
	}
}

// Draw paints the shadow of shape onto canvas.
func (s BoxShadow) Draw(canvas Canvas, shape RRect) {
	canvas.Save()
	canvas.Translate(s.Offset.X, s.Offset.Y)
	defer canvas.Restore()

	if s.BlurRadius <= 0 {
		canvas.DrawRRect(shape, FillPaint(s.Color))
		return
	}
	ring := s.Color.WithOpacity(1.0 / shadowRings)
	for i := shadowRings; i >= 1; i-- {
		canvas.DrawRRect(shape.Inflate(s.BlurRadius*float64(i)/shadowRings), FillPaint(ring))
	}
}
