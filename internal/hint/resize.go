package hint

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Resize scales the hint by an integer factor, e.g. to lift a
// latent-resolution hint to the pixel resolution the pipeline consumes
// (latent size times the VAE scale factor).
//
// Nearest-neighbour sampling is used so the {0, 255} pixel guarantee
// survives scaling; interpolating kernels would introduce intermediate
// values.
func Resize(img *Image8, scale int) (*Image8, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("invalid scale factor: %d", scale)
	}
	if scale == 1 {
		return img.Clone(), nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, img.Width*scale, img.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	out, err := NewImage8(img.Width*scale, img.Height*scale, img.Channels)
	if err != nil {
		return nil, err
	}
	for x := 0; x < out.Width; x++ {
		for y := 0; y < out.Height; y++ {
			si := dst.PixOffset(x, y)
			di := out.PixOffset(x, y)
			switch img.Channels {
			case 1:
				out.Pix[di] = dst.Pix[si]
			case 3:
				copy(out.Pix[di:di+3], dst.Pix[si:si+3])
			default:
				copy(out.Pix[di:di+4], dst.Pix[si:si+4])
			}
		}
	}
	return out, nil
}
