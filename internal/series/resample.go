package series

import (
	"math"

	"github.com/buffos/go-sparkline/sparkline"
)

// Resample picks n evenly spaced samples by position, always keeping the
// first and the last one so the trend of the thinned series matches the
// original. n <= 0 or n >= len(samples) returns the input unchanged.
func Resample(samples []sparkline.Sample, n int) []sparkline.Sample {
	if n <= 0 || n >= len(samples) {
		return samples
	}
	if n == 1 {
		return []sparkline.Sample{samples[len(samples)-1]}
	}

	out := make([]sparkline.Sample, n)
	last := len(samples) - 1
	for i := 0; i < n; i++ {
		pos := int(math.Round(float64(i) * float64(last) / float64(n-1)))
		out[i] = samples[pos]
	}
	return out
}
