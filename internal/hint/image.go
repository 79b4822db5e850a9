package hint

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// ErrUnsupportedChannels indicates a channel count the 8-bit image
// container cannot represent.
var ErrUnsupportedChannels = errors.New("unsupported channel count")

// Image8 is an 8-bit, channel-last image.
//
// Pix holds one byte per sample in width-major order: the sample for
// channel c of the pixel at (x, y) lives at (x*Height+y)*Channels + c.
// This is the byte layout Build produces when it transposes a raw
// (b, c, h, w) tensor to (b, w, h, c), kept verbatim so that hint bytes
// can be compared across batch sizes.
//
// Only 1, 3 and 4 channels are supported (grayscale, RGB, RGBA).
type Image8 struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// NewImage8 allocates a zero-filled image. Returns an invalid-argument
// error for non-positive dimensions or an unsupported channel count.
func NewImage8(width, height, channels int) (*Image8, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions: %dx%d", width, height)
	}
	if err := checkChannels(channels); err != nil {
		return nil, err
	}
	return &Image8{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, width*height*channels),
	}, nil
}

func checkChannels(channels int) error {
	switch channels {
	case 1, 3, 4:
		return nil
	default:
		return fmt.Errorf("%w: %d (want 1, 3 or 4)", ErrUnsupportedChannels, channels)
	}
}

// PixOffset returns the index of the first sample of the pixel at (x, y).
func (m *Image8) PixOffset(x, y int) int {
	return (x*m.Height + y) * m.Channels
}

// ColorModel implements image.Image.
func (m *Image8) ColorModel() color.Model {
	if m.Channels == 1 {
		return color.GrayModel
	}
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (m *Image8) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width, m.Height)
}

// At implements image.Image. Three-channel images read as opaque RGB.
func (m *Image8) At(x, y int) color.Color {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		if m.Channels == 1 {
			return color.Gray{}
		}
		return color.NRGBA{}
	}
	i := m.PixOffset(x, y)
	switch m.Channels {
	case 1:
		return color.Gray{Y: m.Pix[i]}
	case 3:
		return color.NRGBA{R: m.Pix[i], G: m.Pix[i+1], B: m.Pix[i+2], A: 0xff}
	default:
		return color.NRGBA{R: m.Pix[i], G: m.Pix[i+1], B: m.Pix[i+2], A: m.Pix[i+3]}
	}
}

// Clone returns a deep copy.
func (m *Image8) Clone() *Image8 {
	pix := make([]uint8, len(m.Pix))
	copy(pix, m.Pix)
	return &Image8{Width: m.Width, Height: m.Height, Channels: m.Channels, Pix: pix}
}

// EqualPix reports whether two images have identical geometry and bytes.
func (m *Image8) EqualPix(o *Image8) bool {
	if m.Width != o.Width || m.Height != o.Height || m.Channels != o.Channels {
		return false
	}
	for i, p := range m.Pix {
		if p != o.Pix[i] {
			return false
		}
	}
	return true
}

// WritePNG encodes the image as PNG.
func (m *Image8) WritePNG(w io.Writer) error {
	if err := png.Encode(w, m); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
