package seamcarving

import "seamcarve/pkg/grayscale"

// edgePenalty is the vertical transition cost charged on the first and last
// active column
const edgePenalty = grayscale.MaxIntensity

// buildCostMatrix fills cost[y][0:activeWidth] for the current seam.
//
// Row 0 holds the energy of the mapped columns. Every later cell adds its own
// energy to the cheapest of the vertical, right-diagonal and left-diagonal
// predecessors; edge slots only have two of them.
func (c *Carver) buildCostMatrix() {
	c.logger.Printf("seam carving: calculates the costs matrix \"m\".")
	width := c.activeWidth()

	for x := 0; x < width; x++ {
		c.cost[0][x] = int64(c.energy[0][c.mapping[0][x]])
	}

	// row y needs all of row y-1
	for y := 1; y < c.inHeight; y++ {
		for x := 0; x < width; x++ {
			c.cost[y][x] = c.cellCost(y, x, width)
		}
	}
}

// cellCost evaluates the candidates in a fixed order (vertical, right, left)
// and keeps the first strictly smaller one, which makes ties deterministic.
func (c *Carver) cellCost(y, x, width int) int64 {
	prev := c.cost[y-1]

	best := prev[x] + c.costV(y, x, width)
	if x < width-1 {
		if right := prev[x+1] + c.costR(y, x, width); right < best {
			best = right
		}
	}
	if x > 0 {
		if left := prev[x-1] + c.costL(y, x, width); left < best {
			best = left
		}
	}

	return c.energyAt(y, x) + best
}

// energyAt is the energy of the original pixel occupying slot x of row y
func (c *Carver) energyAt(y, x int) int64 {
	return int64(c.energy[y][c.mapping[y][x]])
}

// intensityAt is the intensity of the original pixel occupying slot x of row y
func (c *Carver) intensityAt(y, x int) int64 {
	return int64(c.intensity[y][c.mapping[y][x]])
}

// costV is the cost of the new edge created between the left and right
// neighbours of slot x when it is removed.
func (c *Carver) costV(y, x, width int) int64 {
	if x == 0 || x == width-1 {
		return edgePenalty
	}
	return abs64(c.intensityAt(y, x+1) - c.intensityAt(y, x-1))
}

// costR is the transition cost when the seam arrives from slot x+1 of row y-1
func (c *Carver) costR(y, x, width int) int64 {
	return c.costV(y, x, width) + abs64(c.intensityAt(y-1, x)-c.intensityAt(y, x+1))
}

// costL is the transition cost when the seam arrives from slot x-1 of row y-1
func (c *Carver) costL(y, x, width int) int64 {
	return c.costV(y, x, width) + abs64(c.intensityAt(y-1, x)-c.intensityAt(y, x-1))
}
