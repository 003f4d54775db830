package grayscale

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"seamcarve/internal/models"
)

// createTestImage creates an RGBA image filled by the given pattern
func createTestImage(width, height int, pattern func(x, y int) color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, pattern(x, y))
		}
	}
	return img
}

func TestIntensitiesGrayInput(t *testing.T) {
	img := createTestImage(4, 3, func(x, y int) color.RGBA {
		v := uint8(x*40 + y*10)
		return color.RGBA{R: v, G: v, B: v, A: 255}
	})

	intensity, err := Intensities(img, models.DefaultWeights())
	if err != nil {
		t.Fatalf("Intensities failed: %v", err)
	}

	if len(intensity) != 3 || len(intensity[0]) != 4 {
		t.Fatalf("Expected 3x4 grid, got %dx%d", len(intensity), len(intensity[0]))
	}

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			expected := x*40 + y*10
			if intensity[y][x] != expected {
				t.Errorf("At (%d,%d): expected %d, got %d", x, y, expected, intensity[y][x])
			}
		}
	}
}

func TestIntensitiesSingleChannelWeights(t *testing.T) {
	img := createTestImage(2, 2, func(x, y int) color.RGBA {
		return color.RGBA{R: 200, G: 100, B: 50, A: 255}
	})

	testCases := []struct {
		name     string
		weights  models.RGBWeights
		expected int
	}{
		{"red", models.RGBWeights{Red: 1}, 200},
		{"green", models.RGBWeights{Green: 3}, 100},
		{"blue", models.RGBWeights{Blue: 0.5}, 50},
		{"red+blue", models.RGBWeights{Red: 1, Blue: 1}, 125},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			intensity, err := Intensities(img, tc.weights)
			if err != nil {
				t.Fatalf("Intensities failed: %v", err)
			}
			if intensity[1][1] != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, intensity[1][1])
			}
		})
	}
}

func TestIntensitiesNonZeroOrigin(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 7, 8, 9))
	img.SetRGBA(5, 7, color.RGBA{R: 10, G: 10, B: 10, A: 255})
	img.SetRGBA(7, 8, color.RGBA{R: 90, G: 90, B: 90, A: 255})

	intensity, err := Intensities(img, models.DefaultWeights())
	if err != nil {
		t.Fatalf("Intensities failed: %v", err)
	}
	if intensity[0][0] != 10 {
		t.Errorf("Expected top-left 10, got %d", intensity[0][0])
	}
	if intensity[1][2] != 90 {
		t.Errorf("Expected bottom-right 90, got %d", intensity[1][2])
	}
}

func TestIntensitiesInvalidWeights(t *testing.T) {
	img := createTestImage(2, 2, func(x, y int) color.RGBA { return color.RGBA{A: 255} })

	for _, w := range []models.RGBWeights{{}, {Red: -1, Green: 2}} {
		if _, err := Intensities(img, w); !errors.Is(err, ErrInvalidWeights) {
			t.Errorf("Weights %+v: expected ErrInvalidWeights, got %v", w, err)
		}
	}
}

func TestToImage(t *testing.T) {
	intensity := [][]int{{0, 128}, {255, 300}}
	img := ToImage(intensity)

	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("Expected 2x2 image, got %v", img.Bounds())
	}
	if img.GrayAt(1, 0).Y != 128 {
		t.Errorf("Expected 128, got %d", img.GrayAt(1, 0).Y)
	}
	if img.GrayAt(1, 1).Y != 255 {
		t.Errorf("Expected clamped 255, got %d", img.GrayAt(1, 1).Y)
	}
}
