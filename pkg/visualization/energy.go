// Package visualization renders the intermediate fields of a seam carving run
// as images for inspection.
package visualization

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"seamcarve/pkg/seamcarving"
)

// EnergyMap renders an energy field as a 16-bit grayscale heat map.
//
// Values are scaled so that the largest unprotected energy becomes white.
// Pixels holding seamcarving.ForcedEnergy are rendered white as well.
func EnergyMap(energy [][]int) *image.Gray16 {
	height := len(energy)
	width := 0
	if height > 0 {
		width = len(energy[0])
	}
	img := image.NewGray16(image.Rect(0, 0, width, height))

	values := make([]float64, 0, width*height)
	for _, row := range energy {
		for _, e := range row {
			if e != seamcarving.ForcedEnergy {
				values = append(values, float64(e))
			}
		}
	}

	maxEnergy := 0.0
	if len(values) > 0 {
		maxEnergy = floats.Max(values)
	}

	for y, row := range energy {
		for x, e := range row {
			var value uint16
			switch {
			case e == seamcarving.ForcedEnergy:
				value = math.MaxUint16
			case maxEnergy > 0:
				value = uint16(math.Round(float64(e) / maxEnergy * math.MaxUint16))
			}
			img.SetGray16(x, y, color.Gray16{Y: value})
		}
	}

	return img
}

// ParseHexColor parses "#rrggbb", "rrggbb" or the short "#rgb" form into an
// opaque colour
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: expected #rrggbb", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
