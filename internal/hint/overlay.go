package hint

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// AnnotateIndex draws a "Hint X/Y" label onto the image pixels.
//
// Modifies pixels in place. Text is drawn in white with a black outline
// so it stays readable on the random binary pattern. Label pixels are
// written as exactly 0 or 255 across all color channels, preserving the
// binary-pixel guarantee; pixels outside the label are left untouched.
func AnnotateIndex(img *Image8, hintNum, total int) error {
	if hintNum < 1 || total < 1 || hintNum > total {
		return fmt.Errorf("invalid hint numbering: %d/%d", hintNum, total)
	}

	text := fmt.Sprintf("Hint %d/%d", hintNum, total)
	face := basicfont.Face7x13

	// Render the label onto a transparent mask first.
	mask := image.NewRGBA(img.Bounds())

	// Centered horizontally, near the top.
	paddingTop := int(float64(img.Height) * 0.05)
	textWidth := font.MeasureString(face, text).Ceil()
	x := (img.Width - textWidth) / 2
	y := paddingTop + face.Metrics().Ascent.Ceil()

	drawer := &font.Drawer{
		Dst:  mask,
		Src:  image.NewUniform(color.NRGBA{A: 255}),
		Face: face,
		Dot:  fixed.P(x, y),
	}

	// Black outline around the glyphs.
	outlineThickness := 2
	for dx := -outlineThickness; dx <= outlineThickness; dx++ {
		for dy := -outlineThickness; dy <= outlineThickness; dy++ {
			if dx != 0 || dy != 0 {
				drawer.Dot = fixed.P(x+dx, y+dy)
				drawer.DrawString(text)
			}
		}
	}

	// Main text in white on top.
	drawer.Src = image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	drawer.Dot = fixed.P(x, y)
	drawer.DrawString(text)

	// Stamp covered pixels into the hint, thresholded to 0 or 255.
	for py := 0; py < img.Height; py++ {
		for px := 0; px < img.Width; px++ {
			r, _, _, a := mask.At(px, py).RGBA()
			if a == 0 {
				continue
			}
			var v uint8
			if r >= 0x8000 {
				v = 255
			}
			i := img.PixOffset(px, py)
			for c := 0; c < img.Channels; c++ {
				// Leave alpha opaque on 4-channel hints.
				if img.Channels == 4 && c == 3 {
					img.Pix[i+c] = 255
					continue
				}
				img.Pix[i+c] = v
			}
		}
	}

	return nil
}
