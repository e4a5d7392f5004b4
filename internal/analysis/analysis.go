// Package analysis computes statistics and spectra from recorded run
// series.
package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"
)

// Summary holds basic descriptive statistics of a series.
type Summary struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

func Summarize(series []float64) Summary {
	if len(series) == 0 {
		return Summary{}
	}

	min, max := series[0], series[0]
	for _, v := range series {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	mean, std := stat.MeanStdDev(series, nil)
	if math.IsNaN(std) {
		std = 0
	}
	return Summary{Mean: mean, StdDev: std, Min: min, Max: max}
}

// MoistureDecayRate fits moisture against time and returns the slope in
// fraction per second. A frying run gives a negative rate.
func MoistureDecayRate(times, moisture []float64) float64 {
	if len(times) < 2 || len(times) != len(moisture) {
		return 0
	}
	_, slope := stat.LinearRegression(times, moisture, nil, false)
	return slope
}

// BubbleSpectrum returns the magnitude spectrum of the bubble count
// series, zero-padded to the next power of two.
func BubbleSpectrum(counts []float64) []float64 {
	if len(counts) == 0 {
		return nil
	}

	n := 1
	for n < len(counts) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, counts)

	spectrum := fft.FFTReal(padded)
	magnitudes := make([]float64, len(spectrum)/2)
	for i := range magnitudes {
		magnitudes[i] = cmplx.Abs(spectrum[i])
	}
	return magnitudes
}

// DominantFrequency locates the strongest non-DC bin of a magnitude
// spectrum and converts it to Hz given the sampling interval.
func DominantFrequency(magnitudes []float64, dt float64) float64 {
	if len(magnitudes) < 2 || dt <= 0 {
		return 0
	}

	best, bestMag := 1, magnitudes[1]
	for i := 2; i < len(magnitudes); i++ {
		if magnitudes[i] > bestMag {
			best, bestMag = i, magnitudes[i]
		}
	}

	sampleRate := 1.0 / dt
	n := float64(len(magnitudes) * 2)
	return float64(best) * sampleRate / n
}
