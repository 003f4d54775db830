// Package imageio loads and saves the images and protection masks consumed by
// the seam carver. The file format is chosen from the file extension.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"seamcarve/internal/models"
)

// DefaultQuality is the JPEG quality used when none is configured
const DefaultQuality = 90

// ErrUnsupportedFormat is returned for file extensions without a codec
var ErrUnsupportedFormat = errors.New("unsupported image format")

// ErrMaskSize is returned when a mask image does not match the image it protects
var ErrMaskSize = errors.New("mask image size mismatch")

var extensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
}

// IsImage reports whether path has an extension this package can read
func IsImage(path string) bool {
	return extensions[strings.ToLower(filepath.Ext(path))]
}

// LoadImage decodes the image stored at path
func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var img image.Image
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		img, err = png.Decode(file)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(file)
	case ".gif":
		img, err = gif.Decode(file)
	case ".tif", ".tiff":
		img, err = tiff.Decode(file)
	case ".bmp":
		img, err = bmp.Decode(file)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return img, nil
}

// SaveImage encodes img to path, creating the parent directory if needed.
// quality only applies to JPEG output; values outside 1..100 select
// DefaultQuality.
func SaveImage(path string, img image.Image, quality int) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !extensions[ext] {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	switch ext {
	case ".png":
		err = png.Encode(file, img)
	case ".jpg", ".jpeg":
		if quality < 1 || quality > 100 {
			quality = DefaultQuality
		}
		err = jpeg.Encode(file, img, &jpeg.Options{Quality: quality})
	case ".gif":
		err = gif.Encode(file, img, nil)
	case ".tif", ".tiff":
		err = tiff.Encode(file, img, &tiff.Options{Compression: tiff.Deflate})
	case ".bmp":
		err = bmp.Encode(file, img)
	}
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	return file.Close()
}

// ToRGBA returns img as a zero-origin *image.RGBA. An image that already has
// that form is returned as is.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// MaskFromImage marks every pixel whose gray level is above threshold as
// protected. Transparent pixels are never protected.
func MaskFromImage(img image.Image, threshold uint8) models.Mask {
	b := img.Bounds()
	mask := models.NewMask(b.Dx(), b.Dy())
	for y := range mask {
		for x := range mask[y] {
			c := img.At(b.Min.X+x, b.Min.Y+y)
			if _, _, _, a := c.RGBA(); a == 0 {
				continue
			}
			gray := color.GrayModel.Convert(c).(color.Gray)
			mask[y][x] = gray.Y > threshold
		}
	}
	return mask
}

// LoadMask reads a mask image and checks that it is width×height
func LoadMask(path string, threshold uint8, width, height int) (models.Mask, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Dx() != width || b.Dy() != height {
		return nil, fmt.Errorf("%w: %s is %dx%d, image is %dx%d",
			ErrMaskSize, path, b.Dx(), b.Dy(), width, height)
	}

	return MaskFromImage(img, threshold), nil
}

// MaskToImage renders protected pixels white and the rest black
func MaskToImage(mask models.Mask) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, mask.Width(), mask.Height()))
	for y, row := range mask {
		for x, protected := range row {
			if protected {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

// SaveMask writes mask as a black and white image
func SaveMask(path string, mask models.Mask) error {
	return SaveImage(path, MaskToImage(mask), 100)
}

// ListImages returns the sorted paths of the readable images directly inside dir
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !IsImage(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	return paths, nil
}
