package feature

import (
	"math"

	"github.com/katalvlaran/syncalign/mfcc"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/fourier"
)

// MFCCParams configures the mel-filterbank/DCT pipeline (§4.1 "Cost
// kernel" consumes whatever a loader produces; this is the default
// producer). WindowSeconds must be >= mfcc.FrameDuration so consecutive
// windows overlap rather than leave gaps.
type MFCCParams struct {
	WindowSeconds float64
	NumFilters    int
	NumCoefs      int // coefficients emitted BEFORE the first-coefficient drop
}

// DefaultMFCCParams returns a 100ms analysis window stepped every
// mfcc.FrameDuration, a 26-filter mel bank, and 13 cepstral
// coefficients — one energy term plus the 12 the spec calls "typical"
// once that term is dropped (§6, "first coefficient dropped").
func DefaultMFCCParams() MFCCParams {
	return MFCCParams{WindowSeconds: 0.100, NumFilters: 26, NumCoefs: 13}
}

// extractMFCC runs the mel-filterbank/DCT pipeline over mono samples at
// sampleRate, returning a Matrix with the first coefficient already
// dropped (§6 collaborator contract).
func extractMFCC(samples []float32, sampleRate int, p MFCCParams) (mfcc.Matrix, error) {
	winSamples := int(p.WindowSeconds * float64(sampleRate))
	stepSamples := int(mfcc.FrameDuration * float64(sampleRate))
	if winSamples < 1 {
		winSamples = 1
	}
	if stepSamples < 1 {
		stepSamples = 1
	}

	nFrames := 0
	if len(samples) >= winSamples {
		nFrames = (len(samples)-winSamples)/stepSamples + 1
	}
	if nFrames <= 0 {
		return mfcc.Matrix{}, ErrNoSamples
	}

	fft := fourier.NewFFT(winSamples)
	window := hammingWindow(winSamples)
	bank := melFilterbank(p.NumFilters, winSamples, sampleRate)

	outCoefs := p.NumCoefs - 1 // first coefficient dropped
	data := make([]float32, nFrames*outCoefs)

	windowed := make([]float64, winSamples)
	melEnergies := make([]float64, p.NumFilters)
	cepstrum := make([]float64, p.NumCoefs)

	for i := 0; i < nFrames; i++ {
		start := i * stepSamples
		for k := 0; k < winSamples; k++ {
			windowed[k] = float64(samples[start+k]) * window[k]
		}

		spectrum := fft.Coefficients(nil, windowed)
		for m := 0; m < p.NumFilters; m++ {
			var energy float64
			for k, w := range bank[m] {
				if w == 0 {
					continue
				}
				re, im := real(spectrum[k]), imag(spectrum[k])
				energy += w * (re*re + im*im)
			}
			melEnergies[m] = math.Log(energy + 1e-10)
		}

		dctII(melEnergies, cepstrum)
		copy(data[i*outCoefs:(i+1)*outCoefs], float64sToFloat32s(cepstrum[1:]))
	}

	return mfcc.NewMatrix(nFrames, outCoefs, data)
}

func float64sToFloat32s(xs []float64) []float32 {
	out := make([]float32, len(xs))
	for i, x := range xs {
		out[i] = float32(x)
	}

	return out
}

// hammingWindow returns the standard Hamming window of length n.
func hammingWindow(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}

	return w
}

// melFilterbank builds numFilters triangular filters over the FFT's
// nfft/2+1 real-spectrum bins, spaced evenly on the mel scale between 0Hz
// and the Nyquist frequency.
func melFilterbank(numFilters, nfft, sampleRate int) [][]float64 {
	nBins := nfft/2 + 1
	hzToMel := func(hz float64) float64 { return 2595 * math.Log10(1+hz/700) }
	melToHz := func(mel float64) float64 { return 700 * (math.Pow(10, mel/2595) - 1) }

	lowMel, highMel := hzToMel(0), hzToMel(float64(sampleRate)/2)
	points := make([]float64, numFilters+2)
	floats.Span(points, lowMel, highMel)

	bins := make([]int, numFilters+2)
	for i, mel := range points {
		hz := melToHz(mel)
		bins[i] = int(math.Floor(float64(nfft+1) * hz / float64(sampleRate)))
	}

	bank := make([][]float64, numFilters)
	for m := 0; m < numFilters; m++ {
		row := make([]float64, nBins)
		left, center, right := bins[m], bins[m+1], bins[m+2]
		for k := left; k < center && k < nBins; k++ {
			if center > left {
				row[k] = float64(k-left) / float64(center-left)
			}
		}
		for k := center; k < right && k < nBins; k++ {
			if right > center {
				row[k] = float64(right-k) / float64(right-center)
			}
		}
		bank[m] = row
	}

	return bank
}

// dctII computes the type-II discrete cosine transform of in into out
// (same length). gonum has no DCT implementation, so this is a direct
// O(n^2) sum — acceptable given n is the small filter count, not a
// per-sample cost.
func dctII(in, out []float64) {
	n := len(in)
	for k := 0; k < len(out); k++ {
		var sum float64
		for i, v := range in {
			sum += v * math.Cos(math.Pi/float64(n)*(float64(i)+0.5)*float64(k))
		}
		out[k] = sum
	}
}
