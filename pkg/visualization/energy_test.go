package visualization

import (
	"image/color"
	"math"
	"testing"

	"seamcarve/pkg/seamcarving"
)

// TestEnergyMap verifies scaling against the largest unprotected energy
func TestEnergyMap(t *testing.T) {
	energy := [][]int{
		{0, 50, 100},
		{25, seamcarving.ForcedEnergy, 100},
	}

	img := EnergyMap(energy)
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("Expected 3x2 image, got %v", img.Bounds())
	}

	testCases := []struct {
		x, y     int
		expected uint16
	}{
		{0, 0, 0},
		{1, 0, 32768},
		{2, 0, math.MaxUint16},
		{0, 1, 16384},
		{1, 1, math.MaxUint16},
	}

	for _, tc := range testCases {
		got := img.Gray16At(tc.x, tc.y).Y
		if got != tc.expected {
			t.Errorf("At (%d,%d): expected %d, got %d", tc.x, tc.y, tc.expected, got)
		}
	}
}

func TestEnergyMapFlatField(t *testing.T) {
	img := EnergyMap([][]int{{0, 0}, {0, 0}})
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if v := img.Gray16At(x, y).Y; v != 0 {
				t.Errorf("At (%d,%d): expected 0, got %d", x, y, v)
			}
		}
	}

	if empty := EnergyMap(nil); !empty.Bounds().Empty() {
		t.Errorf("Expected empty image, got %v", empty.Bounds())
	}
}

func TestParseHexColor(t *testing.T) {
	testCases := []struct {
		input    string
		expected color.RGBA
		wantErr  bool
	}{
		{"#ff0000", color.RGBA{R: 255, A: 255}, false},
		{"00ff7f", color.RGBA{G: 255, B: 127, A: 255}, false},
		{"#0f0", color.RGBA{G: 255, A: 255}, false},
		{" #123456 ", color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}, false},
		{"#ff00", color.RGBA{}, true},
		{"#gg0000", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}

	for _, tc := range testCases {
		got, err := ParseHexColor(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%q: expected error, got %v", tc.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("%q: expected %v, got %v", tc.input, tc.expected, got)
		}
	}
}
