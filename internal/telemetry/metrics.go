package telemetry

import "math"

// Metric folds samples into a single summary value.
type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

// TimeToDone records when cookedness first crosses the done threshold.
type TimeToDone struct {
	threshold float64
	doneAt    float64
	done      bool
}

func NewTimeToDone(threshold float64) *TimeToDone {
	return &TimeToDone{threshold: threshold, doneAt: math.NaN()}
}

func (m *TimeToDone) Name() string { return "time_to_done" }

func (m *TimeToDone) Observe(s Sample) {
	if m.done || !s.FryPresent {
		return
	}
	if s.Cookedness >= m.threshold {
		m.doneAt = s.Time
		m.done = true
	}
}

func (m *TimeToDone) Value() float64 { return m.doneAt }

func (m *TimeToDone) Reset() {
	m.doneAt = math.NaN()
	m.done = false
}

// PeakBubbles tracks the maximum live particle count seen in the run.
type PeakBubbles struct {
	peak int
}

func NewPeakBubbles() *PeakBubbles { return &PeakBubbles{} }

func (m *PeakBubbles) Name() string { return "peak_bubbles" }

func (m *PeakBubbles) Observe(s Sample) {
	if s.BubbleCount > m.peak {
		m.peak = s.BubbleCount
	}
}

func (m *PeakBubbles) Value() float64 { return float64(m.peak) }

func (m *PeakBubbles) Reset() { m.peak = 0 }

// FinalMoisture is the moisture fraction at the last observed sample.
type FinalMoisture struct {
	last float64
	seen bool
}

func NewFinalMoisture() *FinalMoisture { return &FinalMoisture{last: math.NaN()} }

func (m *FinalMoisture) Name() string { return "final_moisture" }

func (m *FinalMoisture) Observe(s Sample) {
	if !s.FryPresent {
		return
	}
	m.last = s.Moisture
	m.seen = true
}

func (m *FinalMoisture) Value() float64 { return m.last }

func (m *FinalMoisture) Reset() {
	m.last = math.NaN()
	m.seen = false
}

// MeanTempGap averages the oil-to-fry temperature difference while the
// fry is submerged.
type MeanTempGap struct {
	total   float64
	samples int
}

func NewMeanTempGap() *MeanTempGap { return &MeanTempGap{} }

func (m *MeanTempGap) Name() string { return "mean_temp_gap" }

func (m *MeanTempGap) Observe(s Sample) {
	if !s.FryPresent || !s.Submerged {
		return
	}
	m.total += s.OilTemperature - s.FryTemperature
	m.samples++
}

func (m *MeanTempGap) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanTempGap) Reset() {
	m.total = 0
	m.samples = 0
}
