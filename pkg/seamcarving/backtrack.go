package seamcarving

import "fmt"

// backtrackSeam recovers the cheapest seam of the current cost matrix, marks
// it in original coordinates and removes it from the active column map.
// Rows are remapped as soon as the walk has moved above them.
func (c *Carver) backtrackSeam() {
	c.logger.Printf("seam carving: looking for the \"x\" index of the bottom row that holds the minimal cost.")
	width := c.activeWidth()
	bottom := c.inHeight - 1

	x := c.findMinAtBottom(width)
	c.seamCost = append(c.seamCost, float64(c.cost[bottom][x]))

	c.logger.Printf("seam carving: constructs the path of the minimal seam.")
	var seamEnergy float64
	seamEnergy += c.markSeam(bottom, x)

	for y := bottom - 1; y >= 0; y-- {
		below := x
		x = c.predecessor(y+1, below, width)
		seamEnergy += c.markSeam(y, x)
		c.removeSlot(y+1, below)
	}
	c.removeSlot(0, x)

	c.seamEnergy = append(c.seamEnergy, seamEnergy)
}

// findMinAtBottom returns the slot of the smallest cost in the last row; the
// first occurrence wins on ties.
func (c *Carver) findMinAtBottom(width int) int {
	row := c.cost[c.inHeight-1]
	minIndex := 0
	for x := 1; x < width; x++ {
		if row[x] < row[minIndex] {
			minIndex = x
		}
	}
	c.logger.Printf("seam carving: minX = %d.", minIndex)
	return minIndex
}

// predecessor returns the slot in row y-1 through which the seam reached
// slot x of row y, testing candidates in the same order as cellCost.
func (c *Carver) predecessor(y, x, width int) int {
	target := c.cost[y][x] - c.energyAt(y, x)
	prev := c.cost[y-1]

	if prev[x]+c.costV(y, x, width) == target {
		return x
	}
	if x < width-1 && prev[x+1]+c.costR(y, x, width) == target {
		return x + 1
	}
	if x > 0 && prev[x-1]+c.costL(y, x, width) == target {
		return x - 1
	}

	panic(fmt.Errorf("%w: no predecessor matches cost %d at row %d slot %d (seam %d)",
		ErrInternalInconsistency, c.cost[y][x], y, x, c.currentSeam+1))
}

// markSeam records the original pixel at slot x of row y as part of a seam
// and returns its energy.
func (c *Carver) markSeam(y, x int) float64 {
	col := c.mapping[y][x]
	c.seams[y][col] = true
	if c.mask[y][col] {
		c.protectedSeamPixels++
	}
	return float64(c.energy[y][col])
}
