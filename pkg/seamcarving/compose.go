package seamcarving

import (
	"fmt"
	"image"
	"image/color"

	"seamcarve/internal/models"
)

// Resize produces the output image. Its width is the requested output width
// and its height the input height.
func (c *Carver) Resize() image.Image {
	switch c.operation {
	case Reduce:
		return c.reduceImageWidth()
	case Enlarge:
		return c.increaseImageWidth()
	default:
		return c.duplicateWorkingImage()
	}
}

// reduceImageWidth samples every output pixel through the active column map,
// which after the last seam lists the surviving columns in order.
func (c *Carver) reduceImageWidth() *image.RGBA {
	c.logger.Printf("seam carving: reduces image width by %d pixels.", c.numSeams)
	out := image.NewRGBA(image.Rect(0, 0, c.outWidth, c.inHeight))
	for y := 0; y < c.inHeight; y++ {
		for x := 0; x < c.outWidth; x++ {
			copyPixel(out, x, y, c.img, c.mapping[y][x], y)
		}
	}
	return out
}

// increaseImageWidth samples every output pixel through the enlarge index
// table built from the seam marks.
func (c *Carver) increaseImageWidth() *image.RGBA {
	c.logger.Printf("seam carving: increases image width by %d pixels.", c.numSeams)
	index := enlargeIndex(c.seams, c.outWidth)
	out := image.NewRGBA(image.Rect(0, 0, c.outWidth, c.inHeight))
	for y := 0; y < c.inHeight; y++ {
		for x := 0; x < c.outWidth; x++ {
			copyPixel(out, x, y, c.img, index[y][x], y)
		}
	}
	return out
}

func (c *Carver) duplicateWorkingImage() *image.RGBA {
	out := image.NewRGBA(c.img.Bounds())
	copy(out.Pix, c.img.Pix)
	return out
}

// enlargeIndex returns, for every output pixel, the original column it is
// sampled from. Each marked column is immediately followed by its duplicate,
// so several seams in one row are applied in a single pass.
func enlargeIndex(seams [][]bool, outWidth int) [][]int {
	index := make([][]int, len(seams))
	for y, row := range seams {
		cols := make([]int, 0, outWidth)
		for x, marked := range row {
			cols = append(cols, x)
			if marked {
				cols = append(cols, x)
			}
		}
		if len(cols) != outWidth {
			panic(fmt.Errorf("%w: row %d has %d columns after enlarging, want %d",
				ErrInternalInconsistency, y, len(cols), outWidth))
		}
		index[y] = cols
	}
	return index
}

// MaskAfterCarving returns the protection mask at output dimensions.
//
// For Reduce it is the working mask left by the remapper. For Enlarge the
// original columns keep their protection and inserted duplicates are
// unprotected. For Identity it is a copy of the input mask.
func (c *Carver) MaskAfterCarving() models.Mask {
	out := models.NewMask(c.outWidth, c.inHeight)

	switch c.operation {
	case Reduce:
		for y := 0; y < c.inHeight; y++ {
			copy(out[y], c.shiftedMask[y][:c.outWidth])
		}
	case Enlarge:
		for y := 0; y < c.inHeight; y++ {
			x := 0
			for col, marked := range c.seams[y] {
				out[y][x] = c.mask[y][col]
				x++
				if marked {
					x++
				}
			}
		}
	default:
		for y := 0; y < c.inHeight; y++ {
			copy(out[y], c.mask[y])
		}
	}

	return out
}

// ShowSeams returns a copy of the input image with every pixel that belongs
// to a discovered seam painted in col. The input image is left untouched.
func (c *Carver) ShowSeams(col color.Color) image.Image {
	out := c.duplicateWorkingImage()
	rgba := color.RGBAModel.Convert(col).(color.RGBA)
	for y, row := range c.seams {
		for x, marked := range row {
			if marked {
				out.SetRGBA(x, y, rgba)
			}
		}
	}
	return out
}

// copyPixel copies pixel (sx, sy) of src to (dx, dy) of dst. Both images
// have zero-origin bounds.
func copyPixel(dst *image.RGBA, dx, dy int, src *image.RGBA, sx, sy int) {
	d := dst.PixOffset(dx, dy)
	s := src.PixOffset(sx, sy)
	copy(dst.Pix[d:d+4], src.Pix[s:s+4])
}
