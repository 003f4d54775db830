package seamcarving

import "errors"

var (
	// ErrInvalidDimensions is returned when the input image is narrower or
	// shorter than two pixels
	ErrInvalidDimensions = errors.New("image is too small for seam carving")

	// ErrInfeasibleSeamCount is returned when more than half of the input
	// columns would have to be removed or duplicated
	ErrInfeasibleSeamCount = errors.New("too many seams requested")

	// ErrMaskDimensions is returned when the protection mask does not match
	// the input image
	ErrMaskDimensions = errors.New("mask dimensions do not match image")

	// ErrInternalInconsistency signals a defect in the cost matrix or seam
	// bookkeeping. It is only ever raised with panic.
	ErrInternalInconsistency = errors.New("seam carving internal inconsistency")
)
