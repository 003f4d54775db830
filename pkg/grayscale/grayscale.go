// Package grayscale converts colour images into integer intensity grids using
// configurable channel weights.
package grayscale

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"gonum.org/v1/gonum/mat"

	"seamcarve/internal/models"
)

// MaxIntensity is the brightest value an intensity grid can hold
const MaxIntensity = 255

// ErrInvalidWeights is returned when the channel weights cannot be normalised
var ErrInvalidWeights = errors.New("invalid RGB weights")

// Intensities converts img into an H×W grid of 8-bit brightness values.
//
// Each pixel is the weighted average (r*wr + g*wg + b*wb) / (wr + wg + wb) of its
// 8-bit channels, rounded to the nearest integer. A row of pixels is laid out as a
// W×3 matrix and multiplied by the normalised weight vector, so a whole row is
// converted with a single matrix-vector product.
//
// Parameters:
//   - img: source image (any bounds origin)
//   - w: channel weights, all non-negative with a positive sum
//
// Returns:
//   - intensity[y][x] in [0, MaxIntensity], or ErrInvalidWeights
func Intensities(img image.Image, w models.RGBWeights) ([][]int, error) {
	if err := ValidateWeights(w); err != nil {
		return nil, err
	}
	sum := w.Sum()

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	result := make([][]int, height)
	if width == 0 || height == 0 {
		for y := range result {
			result[y] = []int{}
		}
		return result, nil
	}

	weights := mat.NewVecDense(3, []float64{w.Red / sum, w.Green / sum, w.Blue / sum})
	pixels := mat.NewDense(width, 3, nil)
	var row mat.VecDense

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels.Set(x, 0, float64(r>>8))
			pixels.Set(x, 1, float64(g>>8))
			pixels.Set(x, 2, float64(b>>8))
		}
		row.MulVec(pixels, weights)

		result[y] = make([]int, width)
		for x := 0; x < width; x++ {
			result[y][x] = clamp(int(math.Round(row.AtVec(x))))
		}
	}

	return result, nil
}

// ValidateWeights checks that no weight is negative and that they have a
// positive sum
func ValidateWeights(w models.RGBWeights) error {
	if w.Red < 0 || w.Green < 0 || w.Blue < 0 {
		return fmt.Errorf("%w: negative weight in %+v", ErrInvalidWeights, w)
	}
	if sum := w.Sum(); sum <= 0 {
		return fmt.Errorf("%w: weights sum to %v", ErrInvalidWeights, sum)
	}
	return nil
}

// ToImage renders an intensity grid as an 8-bit grayscale image
func ToImage(intensity [][]int) *image.Gray {
	height := len(intensity)
	width := 0
	if height > 0 {
		width = len(intensity[0])
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(clamp(intensity[y][x]))})
		}
	}
	return img
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxIntensity {
		return MaxIntensity
	}
	return v
}
