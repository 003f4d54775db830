package seamcarving

import (
	"testing"

	"seamcarve/internal/models"
)

func TestComputeEnergy(t *testing.T) {
	intensity := [][]int{
		{10, 20},
		{40, 80},
	}
	expected := [][]int{
		{40, 70},
		{70, 100},
	}

	energy := computeEnergy(intensity, models.NewMask(2, 2), 2)

	for y := range expected {
		for x := range expected[y] {
			if energy[y][x] != expected[y][x] {
				t.Errorf("At (%d,%d): expected %d, got %d", x, y, expected[y][x], energy[y][x])
			}
		}
	}
}

func TestComputeEnergyColumnScenario(t *testing.T) {
	intensity := [][]int{
		{0, 0, 100, 0},
		{0, 0, 100, 0},
	}
	expected := []int{0, 100, 100, 100}

	energy := computeEnergy(intensity, models.NewMask(4, 2), 1)
	for y := range energy {
		for x := range expected {
			if energy[y][x] != expected[x] {
				t.Errorf("At (%d,%d): expected %d, got %d", x, y, expected[x], energy[y][x])
			}
		}
	}
}

func TestComputeEnergyMaskForcesMaximum(t *testing.T) {
	intensity := make([][]int, 6)
	for y := range intensity {
		intensity[y] = make([]int, 7)
		for x := range intensity[y] {
			intensity[y][x] = (x*53 + y*29) % 256
		}
	}
	mask := models.NewMask(7, 6)
	mask[2][3] = true
	mask[5][6] = true

	energy := computeEnergy(intensity, mask, 4)

	maxUnforced := 0
	for y := range energy {
		for x := range energy[y] {
			e := energy[y][x]
			if e < 0 {
				t.Errorf("Negative energy %d at (%d,%d)", e, x, y)
			}
			if mask[y][x] {
				if e != ForcedEnergy {
					t.Errorf("Protected pixel (%d,%d): expected ForcedEnergy, got %d", x, y, e)
				}
				continue
			}
			if e > maxUnforced {
				maxUnforced = e
			}
		}
	}

	if maxUnforced >= ForcedEnergy {
		t.Errorf("Unforced energy %d reaches ForcedEnergy", maxUnforced)
	}
}

func TestComputeEnergyWorkerCountDoesNotChangeResult(t *testing.T) {
	intensity := make([][]int, 9)
	for y := range intensity {
		intensity[y] = make([]int, 5)
		for x := range intensity[y] {
			intensity[y][x] = (x*x*7 + y*31) % 256
		}
	}
	mask := models.NewMask(5, 9)

	single := computeEnergy(intensity, mask, 1)
	for _, workers := range []int{0, 3, 16} {
		multi := computeEnergy(intensity, mask, workers)
		for y := range single {
			for x := range single[y] {
				if single[y][x] != multi[y][x] {
					t.Fatalf("workers=%d: mismatch at (%d,%d): %d vs %d",
						workers, x, y, single[y][x], multi[y][x])
				}
			}
		}
	}
}
