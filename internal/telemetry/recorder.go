// Package telemetry samples simulation state over time and computes
// summary metrics from the run.
package telemetry

import "github.com/erichobson/deep-frying-simulation/internal/frying"

// Sample is one observation of the simulation, taken once per step.
type Sample struct {
	Time float64

	OilTemperature float64
	OilViscosity   float64
	OilDensity     float64

	FryPresent     bool
	Submerged      bool
	FryTemperature float64
	Moisture       float64
	Cookedness     float64
	Crust          float64
	FryDensity     float64

	BubbleCount int
}

// Recorder accumulates samples and feeds registered metrics.
type Recorder struct {
	samples []Sample
	metrics []Metric
}

func NewRecorder(metrics ...Metric) *Recorder {
	return &Recorder{metrics: metrics}
}

func (r *Recorder) Observe(s *frying.Simulation) {
	sample := Sample{
		Time:           s.Elapsed,
		OilTemperature: s.Oil.Temperature,
		OilViscosity:   s.Oil.Viscosity(),
		OilDensity:     s.Oil.Density(),
		BubbleCount:    s.BubbleCount(),
	}
	if s.HasFry() {
		f := s.Fry()
		sample.FryPresent = true
		sample.Submerged = f.InOil
		sample.FryTemperature = f.Temperature
		sample.Moisture = f.MoistureContent
		sample.Cookedness = f.Cookedness
		sample.Crust = f.CrustThickness
		sample.FryDensity = f.Density
	}

	r.samples = append(r.samples, sample)
	for _, m := range r.metrics {
		m.Observe(sample)
	}
}

func (r *Recorder) Samples() []Sample { return r.samples }

// Values collects the current value of every registered metric.
func (r *Recorder) Values() map[string]float64 {
	out := make(map[string]float64, len(r.metrics))
	for _, m := range r.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

func (r *Recorder) Reset() {
	r.samples = r.samples[:0]
	for _, m := range r.metrics {
		m.Reset()
	}
}

// Series extracts one named column from the samples, for plotting and
// spectral analysis.
func (r *Recorder) Series(extract func(Sample) float64) []float64 {
	out := make([]float64, len(r.samples))
	for i, s := range r.samples {
		out[i] = extract(s)
	}
	return out
}
