package system

import (
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"
)

// bytesPerPixel is the working set of one input pixel during a resize:
// the RGBA copy and the output pixel (8), intensity, energy, column map and
// cost (8 each), the mask and its working copy (2) and the seam mark (1).
const bytesPerPixel = 8 + 4*8 + 2 + 1

// ErrInsufficientMemory is returned when a resize would not fit in available memory
var ErrInsufficientMemory = errors.New("insufficient memory")

// MemoryReport compares the estimated working set with the memory of the host
type MemoryReport struct {
	Required  uint64
	Available uint64
	Total     uint64
}

func (r MemoryReport) String() string {
	return fmt.Sprintf("required %d MiB, available %d MiB of %d MiB",
		r.Required>>20, r.Available>>20, r.Total>>20)
}

// EstimateWorkingSet returns the number of bytes a resize of a width×height
// image keeps alive
func EstimateWorkingSet(width, height int) uint64 {
	if width <= 0 || height <= 0 {
		return 0
	}
	return uint64(width) * uint64(height) * bytesPerPixel
}

// CheckMemory reports whether a width×height image can be carved with the
// memory currently available
func CheckMemory(width, height int) (MemoryReport, error) {
	report := MemoryReport{Required: EstimateWorkingSet(width, height)}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return report, fmt.Errorf("failed to read memory statistics: %w", err)
	}
	report.Available = vm.Available
	report.Total = vm.Total

	if report.Required > report.Available {
		return report, fmt.Errorf("%w: %s", ErrInsufficientMemory, report)
	}
	return report, nil
}
