package seamcarving

import (
	"errors"
	"fmt"
	"image/color"
	"testing"
)

func TestEnlargeIndex(t *testing.T) {
	testCases := []struct {
		name     string
		seams    [][]bool
		outWidth int
		expected [][]int
	}{
		{
			name:     "single mark",
			seams:    [][]bool{{false, true, false, false}, {false, true, false, false}},
			outWidth: 5,
			expected: [][]int{{0, 1, 1, 2, 3}, {0, 1, 1, 2, 3}},
		},
		{
			name:     "two marks",
			seams:    [][]bool{{true, false, true, false}},
			outWidth: 6,
			expected: [][]int{{0, 0, 1, 2, 2, 3}},
		},
		{
			name:     "last column",
			seams:    [][]bool{{false, false, true}},
			outWidth: 4,
			expected: [][]int{{0, 1, 2, 2}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			index := enlargeIndex(tc.seams, tc.outWidth)
			for y := range tc.expected {
				if fmt.Sprint(index[y]) != fmt.Sprint(tc.expected[y]) {
					t.Errorf("Row %d: expected %v, got %v", y, tc.expected[y], index[y])
				}
			}
		})
	}
}

func TestEnlargeIndexPanicsOnMismatch(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected panic for a row with the wrong number of marks")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInternalInconsistency) {
			t.Errorf("Expected ErrInternalInconsistency, got %v", r)
		}
	}()

	enlargeIndex([][]bool{{true, false, false}, {false, false, false}}, 4)
}

func TestEnlargeDuplicatesSeamPixels(t *testing.T) {
	img := createPatternImage(14, 6)
	c, err := NewCarver(img, &Params{OutputWidth: 19})
	if err != nil {
		t.Fatalf("NewCarver failed: %v", err)
	}

	in := grayRows(img)
	seams := c.Seams()
	expected := make([][]uint8, len(in))
	for y := range in {
		for x, v := range in[y] {
			expected[y] = append(expected[y], v)
			if seams[y][x] {
				expected[y] = append(expected[y], v)
			}
		}
	}

	assertRows(t, grayRows(c.Resize()), expected)
}

func TestShowSeams(t *testing.T) {
	img := createPatternImage(12, 8)
	original := append([]uint8(nil), img.Pix...)

	c, err := NewCarver(img, &Params{OutputWidth: 9})
	if err != nil {
		t.Fatalf("NewCarver failed: %v", err)
	}

	red := color.RGBA{R: 255, A: 255}
	out := c.ShowSeams(red)
	if out.Bounds().Dx() != 12 || out.Bounds().Dy() != 8 {
		t.Fatalf("Expected 12x8 image, got %v", out.Bounds())
	}

	seams := c.Seams()
	painted := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			got := color.RGBAModel.Convert(out.At(x, y)).(color.RGBA)
			if seams[y][x] {
				painted++
				if got != red {
					t.Errorf("Seam pixel (%d,%d): expected %v, got %v", x, y, red, got)
				}
				continue
			}
			if got != img.RGBAAt(x, y) {
				t.Errorf("Pixel (%d,%d) changed outside seams", x, y)
			}
		}
	}

	if painted != 8*3 {
		t.Errorf("Expected %d painted pixels, got %d", 8*3, painted)
	}

	for i := range original {
		if img.Pix[i] != original[i] {
			t.Fatal("Input image was modified")
		}
	}
}

func TestMaskAfterCarvingIsIndependent(t *testing.T) {
	mask := columnMask(4, 2, 2)
	c, err := NewCarver(columnScenarioImage(), &Params{OutputWidth: 3, Mask: mask})
	if err != nil {
		t.Fatalf("NewCarver failed: %v", err)
	}

	out := c.MaskAfterCarving()
	out[0][1] = false

	again := c.MaskAfterCarving()
	if !again[0][1] {
		t.Errorf("Modifying a returned mask changed the carver state")
	}
	if !mask[0][2] {
		t.Errorf("Input mask was modified")
	}
}
