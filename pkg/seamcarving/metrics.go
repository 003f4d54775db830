package seamcarving

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Metrics summarises a finished seam computation
type Metrics struct {
	// Operation is the transform that was selected
	Operation Operation

	// Seams is the number of seams processed
	Seams int

	// MeanSeamEnergy and StdDevSeamEnergy describe the summed energy of the
	// original pixels of each seam
	MeanSeamEnergy   float64
	StdDevSeamEnergy float64

	// MinSeamCost and MaxSeamCost are the extremes of the bottom-row cost of
	// the chosen seams
	MinSeamCost float64
	MaxSeamCost float64

	// MeanImageEnergy is the mean energy over unprotected pixels
	MeanImageEnergy float64

	// ProtectedPixels is the number of pixels protected by the input mask
	ProtectedPixels int

	// ProtectedSeamPixels counts protected pixels that still ended up in a
	// seam, which only happens when no unprotected path exists
	ProtectedSeamPixels int
}

// Metrics computes statistics about the discovered seams
func (c *Carver) Metrics() Metrics {
	m := Metrics{
		Operation:           c.operation,
		Seams:               c.numSeams,
		ProtectedPixels:     c.mask.Count(),
		ProtectedSeamPixels: c.protectedSeamPixels,
	}

	if len(c.seamEnergy) > 0 {
		m.MeanSeamEnergy = stat.Mean(c.seamEnergy, nil)
		if len(c.seamEnergy) > 1 {
			m.StdDevSeamEnergy = stat.StdDev(c.seamEnergy, nil)
		}
	}
	if len(c.seamCost) > 0 {
		m.MinSeamCost = floats.Min(c.seamCost)
		m.MaxSeamCost = floats.Max(c.seamCost)
	}

	var energies []float64
	for _, row := range c.energy {
		for _, e := range row {
			if e != ForcedEnergy {
				energies = append(energies, float64(e))
			}
		}
	}
	if len(energies) > 0 {
		m.MeanImageEnergy = stat.Mean(energies, nil)
	}

	return m
}
