package models

// RGBWeights holds the per-channel weights used for grayscale conversion.
// The weights do not have to sum to one; the converter normalises them.
type RGBWeights struct {
	// Red is the weight of the red channel
	Red float64 `yaml:"red"`

	// Green is the weight of the green channel
	Green float64 `yaml:"green"`

	// Blue is the weight of the blue channel
	Blue float64 `yaml:"blue"`
}

// DefaultWeights returns the ITU-R BT.601 luma weights
func DefaultWeights() RGBWeights {
	return RGBWeights{Red: 0.299, Green: 0.587, Blue: 0.114}
}

// Sum returns the total of the three weights
func (w RGBWeights) Sum() float64 {
	return w.Red + w.Green + w.Blue
}
