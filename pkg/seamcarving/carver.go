// Package seamcarving implements content-aware image width resizing.
//
// A Carver repeatedly finds the vertical seam of pixels whose removal least
// distorts the image and either removes it (reduce) or duplicates it (enlarge).
// A protection mask steers seams away from selected pixels.
//
// The computation is split into the following steps:
// 1. Converting the input to an intensity grid and estimating per-pixel energy
// 2. Building the cost matrix over the currently active columns
// 3. Backtracking the cheapest seam and remapping the active columns
// 4. Composing the output image and mask from the recorded seams
package seamcarving

import (
	"fmt"
	"image"
	"io"
	"log"
	"runtime"

	"golang.org/x/image/draw"

	"seamcarve/internal/models"
	"seamcarve/pkg/grayscale"
)

// Operation is the geometry transform selected for a resize request
type Operation int

const (
	// Identity leaves the image unchanged
	Identity Operation = iota
	// Reduce removes seams
	Reduce
	// Enlarge duplicates seams
	Enlarge
)

func (o Operation) String() string {
	switch o {
	case Reduce:
		return "reduce"
	case Enlarge:
		return "enlarge"
	default:
		return "identity"
	}
}

// Logger receives free-text progress messages. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...any)
}

// Params holds the parameters of a single resize request
type Params struct {
	// OutputWidth is the requested width of the resulting image.
	// The height never changes.
	OutputWidth int

	// Weights are the channel weights used to derive intensities.
	// The zero value selects models.DefaultWeights.
	Weights models.RGBWeights

	// Mask marks pixels to protect from removal. It must match the image
	// dimensions; nil means nothing is protected.
	Mask models.Mask

	// NumCores bounds the number of goroutines used for energy estimation.
	// Values below 1 select runtime.NumCPU.
	NumCores int

	// Logger receives progress messages. nil discards them.
	Logger Logger
}

// Carver is the computation context of one resize request.
//
// Field ownership: energy and seams are written once and afterwards only read
// by the backtracker and the composer; mapping and shiftedMask are only
// mutated by the remapper; cost is rebuilt by the planner for every seam.
type Carver struct {
	params *Params
	logger Logger

	// img is the input normalised to a zero-origin RGBA image
	img *image.RGBA

	inWidth   int
	inHeight  int
	outWidth  int
	numSeams  int
	operation Operation

	// mask is the protection mask as given (all false when none was given)
	mask models.Mask

	intensity   [][]int
	energy      [][]int
	mapping     [][]int
	shiftedMask models.Mask
	cost        [][]int64
	currentSeam int
	seams       [][]bool

	// per-seam bookkeeping for Metrics
	seamEnergy          []float64
	seamCost            []float64
	protectedSeamPixels int
}

// NewCarver validates the request and finds every seam needed to reach the
// requested width. No state is allocated when validation fails.
//
// Parameters:
//   - img: the image to resize
//   - params: the resize request
//
// Returns:
//   - a Carver whose Resize and MaskAfterCarving produce the results, or an
//     error wrapping ErrInvalidDimensions, ErrInfeasibleSeamCount,
//     ErrMaskDimensions or grayscale.ErrInvalidWeights
func NewCarver(img image.Image, params *Params) (*Carver, error) {
	c, err := newCarver(img, params)
	if err != nil {
		return nil, err
	}

	c.logger.Printf("seam carving: begins preliminary calculations.")
	if c.numSeams > 0 {
		c.logger.Printf("seam carving: initializes some additional fields.")
		if err := c.prepare(); err != nil {
			return nil, err
		}
		c.calculateSeams()
	}
	c.logger.Printf("seam carving: preliminary calculations were ended.")

	return c, nil
}

// Resize is a convenience wrapper that carves img and returns the resized
// image together with the mask at output dimensions.
func Resize(img image.Image, params *Params) (image.Image, models.Mask, error) {
	c, err := NewCarver(img, params)
	if err != nil {
		return nil, nil, err
	}
	return c.Resize(), c.MaskAfterCarving(), nil
}

// newCarver validates the request and builds a Carver without running any
// seam computation.
func newCarver(img image.Image, params *Params) (*Carver, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidDimensions)
	}
	if params == nil {
		return nil, fmt.Errorf("seam carving: params must not be nil")
	}

	bounds := img.Bounds()
	inWidth, inHeight := bounds.Dx(), bounds.Dy()
	if inWidth < 2 || inHeight < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, inWidth, inHeight)
	}

	numSeams := abs(params.OutputWidth - inWidth)
	if numSeams > inWidth/2 {
		return nil, fmt.Errorf("%w: %d seams for width %d (at most %d)",
			ErrInfeasibleSeamCount, numSeams, inWidth, inWidth/2)
	}

	if params.Mask != nil {
		if params.Mask.Height() != inHeight {
			return nil, fmt.Errorf("%w: mask has %d rows, image has %d",
				ErrMaskDimensions, params.Mask.Height(), inHeight)
		}
		for y, row := range params.Mask {
			if len(row) != inWidth {
				return nil, fmt.Errorf("%w: mask row %d has %d columns, image has %d",
					ErrMaskDimensions, y, len(row), inWidth)
			}
		}
	}

	weights := params.Weights
	if weights == (models.RGBWeights{}) {
		weights = models.DefaultWeights()
	}
	if err := grayscale.ValidateWeights(weights); err != nil {
		return nil, err
	}

	var logger Logger = log.New(io.Discard, "", 0)
	if params.Logger != nil {
		logger = params.Logger
	}

	c := &Carver{
		params:   params,
		logger:   logger,
		inWidth:  inWidth,
		inHeight: inHeight,
		outWidth: params.OutputWidth,
		numSeams: numSeams,
	}

	switch {
	case params.OutputWidth > inWidth:
		c.operation = Enlarge
	case params.OutputWidth < inWidth:
		c.operation = Reduce
	default:
		c.operation = Identity
	}

	c.img = image.NewRGBA(image.Rect(0, 0, inWidth, inHeight))
	draw.Draw(c.img, c.img.Bounds(), img, bounds.Min, draw.Src)

	if params.Mask != nil {
		c.mask = params.Mask.Clone()
	} else {
		c.mask = models.NewMask(inWidth, inHeight)
	}

	c.seams = make([][]bool, inHeight)
	for y := range c.seams {
		c.seams[y] = make([]bool, inWidth)
	}

	return c, nil
}

// prepare computes the intensity and energy fields and initialises the
// active column map and the working mask.
func (c *Carver) prepare() error {
	weights := c.params.Weights
	if weights == (models.RGBWeights{}) {
		weights = models.DefaultWeights()
	}

	intensity, err := grayscale.Intensities(c.img, weights)
	if err != nil {
		return fmt.Errorf("failed to convert image to grayscale: %w", err)
	}
	c.intensity = intensity
	c.shiftedMask = c.mask.Clone()

	workers := c.params.NumCores
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	c.energy = computeEnergy(c.intensity, c.mask, workers)

	c.initMapping()

	c.cost = make([][]int64, c.inHeight)
	for y := range c.cost {
		c.cost[y] = make([]int64, c.inWidth)
	}

	return nil
}

// calculateSeams finds numSeams seams one after the other; every iteration
// depends on the columns left active by the previous one.
func (c *Carver) calculateSeams() {
	c.logger.Printf("seam carving: finds the %d minimal seams.", c.numSeams)
	for c.currentSeam = 0; c.currentSeam < c.numSeams; c.currentSeam++ {
		c.buildCostMatrix()
		c.logger.Printf("seam carving: finds seam no: %d.", c.currentSeam+1)
		c.backtrackSeam()
	}
}

// activeWidth is the number of columns still present in every row
func (c *Carver) activeWidth() int {
	return c.inWidth - c.currentSeam
}

// Operation returns the transform selected for this request
func (c *Carver) Operation() Operation {
	return c.operation
}

// NumSeams returns the number of seams processed
func (c *Carver) NumSeams() int {
	return c.numSeams
}

// Energy returns a copy of the energy field. It is empty for Identity requests.
func (c *Carver) Energy() [][]int {
	out := make([][]int, len(c.energy))
	for y := range c.energy {
		out[y] = append([]int(nil), c.energy[y]...)
	}
	return out
}

// Seams returns a copy of the seam marks in original image coordinates
func (c *Carver) Seams() [][]bool {
	out := make([][]bool, len(c.seams))
	for y := range c.seams {
		out[y] = append([]bool(nil), c.seams[y]...)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
