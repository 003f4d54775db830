package seamcarving

import "fmt"

// Exhausted marks a slot of the active column map that no longer holds a column
const Exhausted = -1

// initMapping sets every slot to its own original column
func (c *Carver) initMapping() {
	c.logger.Printf("seam carving: creates a 2D matrix of original \"x\" indices.")
	c.mapping = make([][]int, c.inHeight)
	for y := range c.mapping {
		c.mapping[y] = make([]int, c.inWidth)
		for x := range c.mapping[y] {
			c.mapping[y][x] = x
		}
	}
}

// removeSlot drops slot from row y of the active column map and the working
// mask, shifting the following slots one position left. The freed trailing
// slot is marked Exhausted.
func (c *Carver) removeSlot(y, slot int) {
	width := c.activeWidth()
	if slot < 0 || slot >= width {
		panic(fmt.Errorf("%w: slot %d outside active width %d in row %d",
			ErrInternalInconsistency, slot, width, y))
	}

	copy(c.mapping[y][slot:width-1], c.mapping[y][slot+1:width])
	copy(c.shiftedMask[y][slot:width-1], c.shiftedMask[y][slot+1:width])
	c.mapping[y][width-1] = Exhausted
	c.shiftedMask[y][width-1] = false
}
