package view

import (
	"image"
	"math"

	"github.com/go-drift/cardview/pkg/errors"
	"github.com/go-drift/cardview/pkg/graphics"
)

// ImageView draws an image scaled to fit its bounds, centered.
type ImageView struct {
	ViewBase
	host       *Host
	drawable   image.Image
	resourceID string
	tint       *graphics.Color
}

// NewImageView creates an empty image node.
func NewImageView(host *Host) *ImageView {
	v := &ImageView{host: host}
	v.SetSelf(v)
	return v
}

// SetImage sets the image directly. Nil clears it.
func (v *ImageView) SetImage(img image.Image) {
	v.drawable = img
	v.resourceID = ""
	v.RequestLayout()
}

// SetImageResource loads the image from the host's resources. A missing
// resource is reported and clears the image.
func (v *ImageView) SetImageResource(id string) {
	var img image.Image
	if v.host != nil && v.host.Resources != nil {
		var err error
		img, err = v.host.Resources.Drawable(id)
		if err != nil {
			errors.Report(&errors.CardError{
				Op:   "view.ImageView.SetImageResource",
				Kind: errors.KindResource,
				Key:  id,
				Err:  err,
			})
			img = nil
		}
	}
	v.drawable = img
	v.resourceID = id
	v.RequestLayout()
}

// Image returns the current image, or nil.
func (v *ImageView) Image() image.Image {
	return v.drawable
}

// ResourceID returns the id passed to SetImageResource, or "".
func (v *ImageView) ResourceID() string {
	return v.resourceID
}

// SetTint sets or clears (nil) the tint color.
func (v *ImageView) SetTint(tint *graphics.Color) {
	if tint != nil {
		c := *tint
		tint = &c
	}
	v.tint = tint
	v.Invalidate()
}

// Tint returns the tint color, or nil.
func (v *ImageView) Tint() *graphics.Color {
	return v.tint
}

// Measure returns the image's intrinsic size, clamped to maxWidth.
func (v *ImageView) Measure(maxWidth float64) graphics.Size {
	if v.drawable == nil {
		return graphics.Size{}
	}
	b := v.drawable.Bounds()
	return graphics.Size{Width: math.Min(float64(b.Dx()), maxWidth), Height: float64(b.Dy())}
}

// Draw paints the image fitted and centered in the node's bounds.
func (v *ImageView) Draw(canvas graphics.Canvas) {
	v.DrawBackground(canvas)
	defer v.ClearNeedsPaint()
	if v.drawable == nil {
		return
	}
	b := v.drawable.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	w, h := v.Width(), v.Height()
	scale := math.Min(w/float64(b.Dx()), h/float64(b.Dy()))
	dw, dh := float64(b.Dx())*scale, float64(b.Dy())*scale
	dst := graphics.RectFromLTWH((w-dw)/2, (h-dh)/2, dw, dh)
	canvas.DrawImage(v.drawable, dst, v.tint)
}
