package audio

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/mental-health-mirror/mood-core/mood"
)

// FeatureConfig controls framing of the short-time analysis.
type FeatureConfig struct {
	NMFCC     int
	NFFT      int
	HopLength int
	NMels     int
	TopDB     float64 // silence threshold below the loudest frame
}

func DefaultFeatureConfig() FeatureConfig {
	return FeatureConfig{
		NMFCC:     13,
		NFFT:      2048,
		HopLength: 512,
		NMels:     128,
		TopDB:     60,
	}
}

const (
	contrastFMin     = 200.0
	contrastBands    = 6
	contrastQuantile = 0.02
	dbFloor          = 1e-10
	tempoStartBPM    = 120.0
	tempoMinBPM      = 30.0
	tempoMaxBPM      = 320.0
)

// Summarizer reduces a waveform to mood.AcousticFeatures. It holds no
// mutable state; one value can serve concurrent requests.
type Summarizer struct {
	cfg FeatureConfig
}

func NewSummarizer(cfg FeatureConfig) *Summarizer {
	def := DefaultFeatureConfig()
	if cfg.NMFCC <= 0 {
		cfg.NMFCC = def.NMFCC
	}
	if cfg.NFFT <= 0 {
		cfg.NFFT = def.NFFT
	}
	if cfg.HopLength <= 0 {
		cfg.HopLength = def.HopLength
	}
	if cfg.NMels <= 0 {
		cfg.NMels = def.NMels
	}
	if cfg.TopDB <= 0 {
		cfg.TopDB = def.TopDB
	}
	return &Summarizer{cfg: cfg}
}

// Summarize computes per-frame descriptors and averages them.
func (s *Summarizer) Summarize(w Waveform) (mood.AcousticFeatures, error) {
	if len(w.Samples) == 0 || w.SampleRate <= 0 {
		return mood.AcousticFeatures{}, fmt.Errorf("summarize: empty waveform: %w", mood.ErrAudioDecode)
	}

	y := s.trimSilence(toFloat64(w.Samples))
	if len(y) == 0 {
		return mood.AcousticFeatures{}, fmt.Errorf("summarize: signal is silent: %w", mood.ErrFeatureExtraction)
	}
	if len(y) < s.cfg.NFFT {
		y = append(y, make([]float64, s.cfg.NFFT-len(y))...)
	}

	sr := float64(w.SampleRate)
	nBins := s.cfg.NFFT/2 + 1
	nFrames := 1 + (len(y)-s.cfg.NFFT)/s.cfg.HopLength

	window := hannWindow(s.cfg.NFFT)
	fft := fourier.NewFFT(s.cfg.NFFT)
	melFilters := melFilterbank(s.cfg.NFFT, s.cfg.NMels, w.SampleRate)
	dct := dctBasis(s.cfg.NMFCC, s.cfg.NMels)
	bands := contrastBandEdges(sr, s.cfg.NFFT)

	freqs := make([]float64, nBins)
	for k := range freqs {
		freqs[k] = float64(k) * sr / float64(s.cfg.NFFT)
	}

	var (
		zcr       = make([]float64, nFrames)
		rms       = make([]float64, nFrames)
		centroid  = make([]float64, nFrames)
		mfcc      = make([][]float64, s.cfg.NMFCC)
		contrast  = make([][]float64, len(bands))
		onset     = make([]float64, 0, nFrames)
		frame     = make([]float64, s.cfg.NFFT)
		mag       = make([]float64, nBins)
		coeffs    []complex128
		prevMelDB []float64
	)
	for i := range mfcc {
		mfcc[i] = make([]float64, nFrames)
	}
	for i := range contrast {
		contrast[i] = make([]float64, nFrames)
	}

	for t := 0; t < nFrames; t++ {
		raw := y[t*s.cfg.HopLength : t*s.cfg.HopLength+s.cfg.NFFT]

		zcr[t] = zeroCrossingRate(raw)
		rms[t] = rootMeanSquare(raw)

		for i, v := range raw {
			frame[i] = v * window[i]
		}
		coeffs = fft.Coefficients(coeffs, frame)
		for k := 0; k < nBins; k++ {
			mag[k] = math.Hypot(real(coeffs[k]), imag(coeffs[k]))
		}

		centroid[t] = spectralCentroid(mag, freqs)

		melDB := make([]float64, s.cfg.NMels)
		for m, filter := range melFilters {
			sum := 0.0
			for k, wgt := range filter {
				if wgt != 0 {
					sum += wgt * mag[k] * mag[k]
				}
			}
			melDB[m] = powerToDB(sum)
		}

		var c mat.VecDense
		c.MulVec(dct, mat.NewVecDense(len(melDB), melDB))
		for i := range mfcc {
			mfcc[i][t] = c.AtVec(i)
		}

		for b, edge := range bands {
			contrast[b][t] = bandContrast(mag[edge[0]:edge[1]])
		}

		if prevMelDB != nil {
			onset = append(onset, onsetStrength(prevMelDB, melDB))
		}
		prevMelDB = melDB
	}

	out := mood.AcousticFeatures{
		MFCCMean:             make([]float64, s.cfg.NMFCC),
		SpectralCentroidMean: stat.Mean(centroid, nil),
		SpectralContrastMean: make([]float64, len(bands)),
		ZeroCrossingRateMean: stat.Mean(zcr, nil),
		RMSEnergyMean:        stat.Mean(rms, nil),
		TempoBPM:             estimateTempo(onset, sr/float64(s.cfg.HopLength)),
	}
	for i := range mfcc {
		out.MFCCMean[i] = stat.Mean(mfcc[i], nil)
	}
	for b := range contrast {
		out.SpectralContrastMean[b] = stat.Mean(contrast[b], nil)
	}

	if !finite(out) {
		return mood.AcousticFeatures{}, fmt.Errorf("summarize: non-finite descriptor: %w", mood.ErrFeatureExtraction)
	}
	return out, nil
}

// trimSilence drops leading and trailing frames quieter than TopDB below
// the loudest frame.
func (s *Summarizer) trimSilence(y []float64) []float64 {
	n, hop := s.cfg.NFFT, s.cfg.HopLength
	if len(y) <= n {
		if rootMeanSquare(y) == 0 {
			return nil
		}
		return y
	}

	nFrames := 1 + (len(y)-n)/hop
	energies := make([]float64, nFrames)
	peak := 0.0
	for t := range energies {
		energies[t] = rootMeanSquare(y[t*hop : t*hop+n])
		peak = math.Max(peak, energies[t])
	}
	if peak == 0 {
		return nil
	}

	threshold := peak * math.Pow(10, -s.cfg.TopDB/20)
	first, last := -1, -1
	for t, e := range energies {
		if e > threshold {
			if first < 0 {
				first = t
			}
			last = t
		}
	}
	if first < 0 {
		return nil
	}
	end := last*hop + n
	if last == nFrames-1 || end > len(y) {
		end = len(y)
	}
	return y[first*hop : end]
}

func zeroCrossingRate(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	crossings := 0
	for i := 1; i < len(x); i++ {
		if (x[i] >= 0) != (x[i-1] >= 0) {
			crossings++
		}
	}
	return float64(crossings) / float64(len(x))
}

func rootMeanSquare(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(x)))
}

func spectralCentroid(mag, freqs []float64) float64 {
	num, den := 0.0, 0.0
	for k, m := range mag {
		num += freqs[k] * m
		den += m
	}
	if den == 0 {
		return 0
	}
	return num / den
}

func powerToDB(p float64) float64 {
	return 10 * math.Log10(math.Max(dbFloor, p))
}

// bandContrast is the dB gap between the loudest and quietest quantile of
// a band's magnitudes.
func bandContrast(band []float64) float64 {
	if len(band) == 0 {
		return 0
	}
	sorted := append([]float64(nil), band...)
	sort.Float64s(sorted)

	idx := int(math.Round(contrastQuantile * float64(len(sorted))))
	if idx < 1 {
		idx = 1
	}
	valley := stat.Mean(sorted[:idx], nil)
	peak := stat.Mean(sorted[len(sorted)-idx:], nil)
	return powerToDB(peak) - powerToDB(valley)
}

// contrastBandEdges returns [lo, hi) bin ranges for octave bands starting
// at contrastFMin; the last band runs to Nyquist.
func contrastBandEdges(sr float64, nFFT int) [][2]int {
	nBins := nFFT/2 + 1
	binOf := func(f float64) int {
		b := int(math.Round(f * float64(nFFT) / sr))
		if b > nBins {
			return nBins
		}
		return b
	}

	edges := make([][2]int, 0, contrastBands+1)
	lo := 0.0
	hi := contrastFMin
	for i := 0; i <= contrastBands; i++ {
		a, b := binOf(lo), binOf(hi)
		if i == contrastBands {
			b = nBins
		}
		if b < a {
			b = a
		}
		edges = append(edges, [2]int{a, b})
		lo, hi = hi, hi*2
	}
	return edges
}

// onsetStrength is the mean positive change in mel dB between frames.
func onsetStrength(prev, cur []float64) float64 {
	sum := 0.0
	for m := range cur {
		if d := cur[m] - prev[m]; d > 0 {
			sum += d
		}
	}
	return sum / float64(len(cur))
}

// estimateTempo picks the onset autocorrelation lag that best matches a
// log-normal prior around tempoStartBPM. Returns 0 when no periodicity is
// measurable.
func estimateTempo(onset []float64, frameRate float64) float64 {
	minLag := int(math.Ceil(60 * frameRate / tempoMaxBPM))
	maxLag := int(math.Floor(60 * frameRate / tempoMinBPM))
	if minLag < 1 {
		minLag = 1
	}
	if maxLag > len(onset)-1 {
		maxLag = len(onset) - 1
	}
	if maxLag < minLag {
		return 0
	}

	best, bestScore := 0, 0.0
	for lag := minLag; lag <= maxLag; lag++ {
		ac := 0.0
		for i := lag; i < len(onset); i++ {
			ac += onset[i] * onset[i-lag]
		}
		bpm := 60 * frameRate / float64(lag)
		prior := math.Exp(-0.5 * math.Pow(math.Log2(bpm/tempoStartBPM), 2))
		if score := ac * prior; score > bestScore {
			best, bestScore = lag, score
		}
	}
	if best == 0 {
		return 0
	}
	return 60 * frameRate / float64(best)
}

// melFilterbank builds triangular HTK-scale filters over the rfft bins.
func melFilterbank(nFFT, nMels, sampleRate int) [][]float64 {
	hzToMel := func(hz float64) float64 {
		return 2595.0 * math.Log10(1.0+hz/700.0)
	}
	melToHz := func(mel float64) float64 {
		return 700.0 * (math.Pow(10.0, mel/2595.0) - 1.0)
	}

	numBins := nFFT/2 + 1
	fMax := float64(sampleRate) / 2.0

	allFreqs := make([]float64, numBins)
	for i := range allFreqs {
		allFreqs[i] = float64(i) * fMax / float64(numBins-1)
	}

	mMin, mMax := hzToMel(0), hzToMel(fMax)
	fPts := make([]float64, nMels+2)
	for i := range fPts {
		fPts[i] = melToHz(mMin + float64(i)*(mMax-mMin)/float64(nMels+1))
	}

	filters := make([][]float64, nMels)
	for m := range filters {
		filters[m] = make([]float64, numBins)
		lowW, highW := fPts[m+1]-fPts[m], fPts[m+2]-fPts[m+1]
		for k, freq := range allFreqs {
			lower := (freq - fPts[m]) / lowW
			upper := (fPts[m+2] - freq) / highW
			filters[m][k] = math.Max(0, math.Min(lower, upper))
		}
	}
	return filters
}

// dctBasis is the orthonormal DCT-II matrix truncated to nOut rows.
func dctBasis(nOut, nIn int) *mat.Dense {
	data := make([]float64, nOut*nIn)
	for k := 0; k < nOut; k++ {
		scale := math.Sqrt(2 / float64(nIn))
		if k == 0 {
			scale = math.Sqrt(1 / float64(nIn))
		}
		for n := 0; n < nIn; n++ {
			data[k*nIn+n] = scale * math.Cos(math.Pi/float64(nIn)*(float64(n)+0.5)*float64(k))
		}
	}
	return mat.NewDense(nOut, nIn, data)
}

// hannWindow is the periodic Hann window used for spectral analysis.
func hannWindow(size int) []float64 {
	w := make([]float64, size)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(size)))
	}
	return w
}

func toFloat64(x []float32) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}

func finite(f mood.AcousticFeatures) bool {
	vals := append([]float64{
		f.SpectralCentroidMean, f.ZeroCrossingRateMean, f.RMSEnergyMean, f.TempoBPM,
	}, f.MFCCMean...)
	vals = append(vals, f.SpectralContrastMean...)
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
