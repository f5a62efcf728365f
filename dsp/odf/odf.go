package odf

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/dafx/BTrack/dsp/frame"
	"github.com/dafx/BTrack/dsp/spectrum"
	"github.com/dafx/BTrack/dsp/window"
)

// Function computes one onset detection function sample per hop of
// input. It owns the sliding frame, the window coefficients, the FFT
// plan, and the spectral history the difference metrics depend on.
//
// Not safe for concurrent use: each call's output depends on the state
// left by all prior calls. Use one Function per stream.
type Function struct {
	metric     Metric
	windowKind window.Kind

	newTransform TransformFactory
	transform    Transform

	slider       *frame.Slider
	windowCoeffs []float64
	windowed     []float64

	complexIn  []complex128
	complexOut []complex128

	magSpec     []float64
	prevMagSpec []float64
	phase       []float64
	prevPhase   []float64
	prevPhase2  []float64

	prevEnergySum float64
}

// Option configures a Function at construction.
type Option func(*Function)

// WithMetric selects the onset detection metric.
func WithMetric(m Metric) Option {
	return func(f *Function) {
		f.metric = m
	}
}

// WithWindow selects the analysis window kind.
func WithWindow(k window.Kind) Option {
	return func(f *Function) {
		f.windowKind = k
	}
}

// WithTransform substitutes the FFT backend, e.g. with a deterministic
// double in tests.
func WithTransform(factory TransformFactory) Option {
	return func(f *Function) {
		if factory != nil {
			f.newTransform = factory
		}
	}
}

// New returns a configured Function. hopSize must be positive and no
// larger than frameSize. Defaults: complex spectral difference (HWR)
// metric, Hanning window, algo-fft plan backend.
func New(hopSize, frameSize int, opts ...Option) (*Function, error) {
	f := &Function{
		metric:       MetricComplexSpectralDifferenceHWR,
		windowKind:   window.KindHanning,
		newTransform: newPlanTransform,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}

	if err := f.rebuildState(hopSize, frameSize); err != nil {
		return nil, err
	}

	return f, nil
}

// Reconfigure resizes the engine, keeping the current metric and
// window kinds. All buffers are reallocated, the FFT plan is rebuilt,
// and all history is reset to zero. On error the previous state is
// left intact.
func (f *Function) Reconfigure(hopSize, frameSize int) error {
	if f.newTransform == nil {
		return ErrNotConfigured
	}

	return f.rebuildState(hopSize, frameSize)
}

// SetMetric changes the metric computed by future calls. Spectral and
// energy history is deliberately left untouched: switching metrics
// mid-stream is allowed and yields one discontinuous sample.
func (f *Function) SetMetric(m Metric) {
	f.metric = m
}

// MetricKind returns the currently selected metric.
func (f *Function) MetricKind() Metric {
	return f.metric
}

// WindowKind returns the currently selected window.
func (f *Function) WindowKind() window.Kind {
	return f.windowKind
}

// HopSize returns the configured hop size in samples.
func (f *Function) HopSize() int {
	if f.slider == nil {
		return 0
	}
	return f.slider.HopSize()
}

// FrameSize returns the configured frame size in samples.
func (f *Function) FrameSize() int {
	if f.slider == nil {
		return 0
	}
	return f.slider.FrameSize()
}

func (f *Function) rebuildState(hopSize, frameSize int) error {
	slider, err := frame.NewSlider(frameSize, hopSize)
	if err != nil {
		return fmt.Errorf("odf: %w", err)
	}

	transform, err := f.newTransform(frameSize)
	if err != nil {
		return err
	}

	f.slider = slider
	f.transform = transform
	f.windowCoeffs = window.Generate(f.windowKind, frameSize)
	f.windowed = make([]float64, frameSize)

	f.complexIn = make([]complex128, frameSize)
	f.complexOut = make([]complex128, frameSize)

	f.magSpec = make([]float64, frameSize)
	f.prevMagSpec = make([]float64, frameSize)
	f.phase = make([]float64, frameSize)
	f.prevPhase = make([]float64, frameSize)
	f.prevPhase2 = make([]float64, frameSize)

	f.prevEnergySum = 0

	return nil
}

// ProcessSample advances the frame by one hop-sized buffer and returns
// the onset detection function sample for the updated frame. The
// buffer must hold exactly HopSize samples.
func (f *Function) ProcessSample(buffer []float64) (float64, error) {
	if f.slider == nil {
		return 0, ErrNotConfigured
	}

	if err := f.slider.Push(buffer); err != nil {
		return 0, fmt.Errorf("%w: expected %d samples, got %d", ErrBufferLength, f.slider.HopSize(), len(buffer))
	}

	switch f.metric {
	case MetricEnergyEnvelope:
		return f.energyEnvelope(), nil
	case MetricEnergyDifference:
		return f.energyDifference(), nil
	case MetricSpectralDifference:
		return f.spectralDifference(false)
	case MetricSpectralDifferenceHWR:
		return f.spectralDifference(true)
	case MetricPhaseDeviation:
		return f.phaseDeviation()
	case MetricComplexSpectralDifference:
		return f.complexSpectralDifference(false)
	case MetricComplexSpectralDifferenceHWR:
		return f.complexSpectralDifference(true)
	case MetricHighFrequencyContent:
		return f.highFrequencyContent()
	case MetricHighFrequencySpectralDifference:
		return f.highFrequencySpectralDifference(false)
	case MetricHighFrequencySpectralDifferenceHWR:
		return f.highFrequencySpectralDifference(true)
	default:
		// Unknown metric kinds resolve to a constant, never an error.
		return 1.0, nil
	}
}

// transformFrame windows the current frame and runs the forward FFT.
// The windowed samples are rotated by half a frame on the way into the
// transform input, so a transient at the frame centre yields zero
// phase at bin 0. The phase-based metrics rely on this convention.
func (f *Function) transformFrame() error {
	n := f.slider.FrameSize()
	half := n / 2

	vecmath.MulBlock(f.windowed, f.slider.Frame(), f.windowCoeffs)

	for i := range f.complexIn {
		j := i + half
		if j >= n {
			j -= n
		}

		f.complexIn[i] = complex(f.windowed[j], 0)
	}

	if err := f.transform.Forward(f.complexOut, f.complexIn); err != nil {
		return fmt.Errorf("odf: forward transform failed: %w", err)
	}

	return nil
}

func (f *Function) energyEnvelope() float64 {
	sum := 0.0
	for _, s := range f.slider.Frame() {
		sum += s * s
	}

	return sum
}

func (f *Function) energyDifference() float64 {
	sum := 0.0
	for _, s := range f.slider.Frame() {
		sum += s * s
	}

	sample := sum - f.prevEnergySum
	f.prevEnergySum = sum

	if sample > 0 {
		return sample
	}

	return 0
}

func (f *Function) spectralDifference(rectified bool) (float64, error) {
	if err := f.transformFrame(); err != nil {
		return 0, err
	}

	// magnitudes are symmetric for real input: compute up to the
	// Nyquist bin and mirror the rest
	n := len(f.magSpec)
	spectrum.MagnitudeInto(f.magSpec[:n/2+1], f.complexOut[:n/2+1])
	spectrum.MirrorMagnitude(f.magSpec)

	sum := 0.0

	for i := range f.magSpec {
		diff := f.magSpec[i] - f.prevMagSpec[i]

		if rectified {
			if diff > 0 {
				sum += diff
			}
		} else {
			sum += math.Abs(diff)
		}

		f.prevMagSpec[i] = f.magSpec[i]
	}

	return sum, nil
}

func (f *Function) phaseDeviation() (float64, error) {
	if err := f.transformFrame(); err != nil {
		return 0, err
	}

	spectrum.PhaseInto(f.phase, f.complexOut)
	spectrum.MagnitudeInto(f.magSpec, f.complexOut)

	sum := 0.0

	for i := range f.phase {
		// near-silent bins carry phase noise, not structure
		if f.magSpec[i] > 0.1 {
			dev := spectrum.Princarg(f.phase[i] - 2*f.prevPhase[i] + f.prevPhase2[i])
			sum += math.Abs(dev)
		}

		f.prevPhase2[i] = f.prevPhase[i]
		f.prevPhase[i] = f.phase[i]
	}

	return sum, nil
}

func (f *Function) complexSpectralDifference(rectified bool) (float64, error) {
	if err := f.transformFrame(); err != nil {
		return 0, err
	}

	spectrum.PhaseInto(f.phase, f.complexOut)
	spectrum.MagnitudeInto(f.magSpec, f.complexOut)

	sum := 0.0

	for i := range f.magSpec {
		mag := f.magSpec[i]
		prevMag := f.prevMagSpec[i]

		// the raw deviation feeds cos() directly; wrapping is redundant
		dev := f.phase[i] - 2*f.prevPhase[i] + f.prevPhase2[i]

		if !rectified || mag-prevMag > 0 {
			// law-of-cosines distance between the current bin and the
			// previous bin rotated by the expected phase advance
			sum += math.Sqrt(mag*mag + prevMag*prevMag - 2*mag*prevMag*math.Cos(dev))
		}

		f.prevPhase2[i] = f.prevPhase[i]
		f.prevPhase[i] = f.phase[i]
		f.prevMagSpec[i] = mag
	}

	return sum, nil
}

func (f *Function) highFrequencyContent() (float64, error) {
	if err := f.transformFrame(); err != nil {
		return 0, err
	}

	spectrum.MagnitudeInto(f.magSpec, f.complexOut)

	sum := 0.0

	for i, mag := range f.magSpec {
		sum += mag * float64(i+1)
		f.prevMagSpec[i] = mag
	}

	return sum, nil
}

func (f *Function) highFrequencySpectralDifference(rectified bool) (float64, error) {
	if err := f.transformFrame(); err != nil {
		return 0, err
	}

	spectrum.MagnitudeInto(f.magSpec, f.complexOut)

	sum := 0.0

	for i, mag := range f.magSpec {
		diff := mag - f.prevMagSpec[i]

		if rectified {
			if diff > 0 {
				sum += diff * float64(i+1)
			}
		} else {
			sum += math.Abs(diff) * float64(i+1)
		}

		f.prevMagSpec[i] = mag
	}

	return sum, nil
}
