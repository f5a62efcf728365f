package odf

// Metric identifies an onset detection function variant.
type Metric int

const (
	// MetricEnergyEnvelope sums squared samples over the frame.
	MetricEnergyEnvelope Metric = iota
	// MetricEnergyDifference is the half-wave rectified first
	// difference of frame energy.
	MetricEnergyDifference
	// MetricSpectralDifference sums absolute per-bin magnitude changes.
	MetricSpectralDifference
	// MetricSpectralDifferenceHWR sums only positive per-bin magnitude
	// changes.
	MetricSpectralDifferenceHWR
	// MetricPhaseDeviation sums absolute second-difference phase
	// deviation over non-silent bins.
	MetricPhaseDeviation
	// MetricComplexSpectralDifference sums per-bin complex-domain
	// distances between the current spectrum and a phase-extrapolated
	// previous spectrum.
	MetricComplexSpectralDifference
	// MetricComplexSpectralDifferenceHWR is the complex distance gated
	// on a positive magnitude change.
	MetricComplexSpectralDifferenceHWR
	// MetricHighFrequencyContent sums magnitudes weighted linearly by
	// bin index.
	MetricHighFrequencyContent
	// MetricHighFrequencySpectralDifference sums absolute magnitude
	// changes weighted linearly by bin index.
	MetricHighFrequencySpectralDifference
	// MetricHighFrequencySpectralDifferenceHWR keeps only positive
	// weighted magnitude changes.
	MetricHighFrequencySpectralDifferenceHWR
)

// String returns the canonical lower-case name of the metric.
func (m Metric) String() string {
	switch m {
	case MetricEnergyEnvelope:
		return "energy-envelope"
	case MetricEnergyDifference:
		return "energy-difference"
	case MetricSpectralDifference:
		return "spectral-difference"
	case MetricSpectralDifferenceHWR:
		return "spectral-difference-hwr"
	case MetricPhaseDeviation:
		return "phase-deviation"
	case MetricComplexSpectralDifference:
		return "complex-spectral-difference"
	case MetricComplexSpectralDifferenceHWR:
		return "complex-spectral-difference-hwr"
	case MetricHighFrequencyContent:
		return "high-frequency-content"
	case MetricHighFrequencySpectralDifference:
		return "high-frequency-spectral-difference"
	case MetricHighFrequencySpectralDifferenceHWR:
		return "high-frequency-spectral-difference-hwr"
	default:
		return "unknown"
	}
}

// MetricFromString resolves a metric name to its Metric.
func MetricFromString(name string) (Metric, bool) {
	for _, m := range Metrics() {
		if m.String() == name {
			return m, true
		}
	}

	return MetricComplexSpectralDifferenceHWR, false
}

// Metrics returns all metric variants in declaration order.
func Metrics() []Metric {
	return []Metric{
		MetricEnergyEnvelope,
		MetricEnergyDifference,
		MetricSpectralDifference,
		MetricSpectralDifferenceHWR,
		MetricPhaseDeviation,
		MetricComplexSpectralDifference,
		MetricComplexSpectralDifferenceHWR,
		MetricHighFrequencyContent,
		MetricHighFrequencySpectralDifference,
		MetricHighFrequencySpectralDifferenceHWR,
	}
}

// Spectral reports whether the metric needs the frame's spectrum.
// Time-domain metrics and unrecognized values skip the FFT stage.
func (m Metric) Spectral() bool {
	switch m {
	case MetricSpectralDifference,
		MetricSpectralDifferenceHWR,
		MetricPhaseDeviation,
		MetricComplexSpectralDifference,
		MetricComplexSpectralDifferenceHWR,
		MetricHighFrequencyContent,
		MetricHighFrequencySpectralDifference,
		MetricHighFrequencySpectralDifferenceHWR:
		return true
	default:
		return false
	}
}
