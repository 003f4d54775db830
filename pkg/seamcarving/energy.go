package seamcarving

import (
	"math"

	"golang.org/x/sync/errgroup"

	"seamcarve/internal/models"
)

// ForcedEnergy is the energy given to protected pixels. It is larger than any
// gradient-derived energy, and H*ForcedEnergy still fits an int64 cost.
const ForcedEnergy = math.MaxInt32

// computeEnergy builds the energy field from the intensity grid.
//
// Each pixel's energy is |I(y,x) - I(y,x')| + |I(y,x) - I(y',x)| where x' is
// the next column (the previous one on the last column) and y' the next row
// (the previous one on the last row). Protected pixels get ForcedEnergy.
// Rows are independent, so they are computed concurrently, bounded by workers.
func computeEnergy(intensity [][]int, mask models.Mask, workers int) [][]int {
	height := len(intensity)
	energy := make([][]int, height)
	if workers < 1 {
		workers = 1
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for y := 0; y < height; y++ {
		y := y
		g.Go(func() error {
			energy[y] = energyRow(intensity, mask, y)
			return nil
		})
	}
	// rows cannot fail
	_ = g.Wait()

	return energy
}

func energyRow(intensity [][]int, mask models.Mask, y int) []int {
	height := len(intensity)
	width := len(intensity[y])

	yNeighbor := y + 1
	if y == height-1 {
		yNeighbor = y - 1
	}

	row := make([]int, width)
	for x := 0; x < width; x++ {
		if mask.At(x, y) {
			row[x] = ForcedEnergy
			continue
		}

		xNeighbor := x + 1
		if x == width-1 {
			xNeighbor = x - 1
		}

		derX := abs(intensity[y][x] - intensity[y][xNeighbor])
		derY := abs(intensity[y][x] - intensity[yNeighbor][x])
		row[x] = derX + derY
	}
	return row
}
