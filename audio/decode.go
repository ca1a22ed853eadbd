// Package audio decodes uploaded recordings into mono waveforms and reduces
// them to acoustic feature summaries.
package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/h2non/filetype"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"

	"github.com/mental-health-mirror/mood-core/mood"
)

type Format string

const (
	FormatUnknown Format = ""
	FormatWAV     Format = "wav"
	FormatMP3     Format = "mp3"
	FormatOgg     Format = "ogg"
	FormatWebM    Format = "webm"
)

// Waveform is decoded mono PCM in [-1, 1]. Format is the container it
// was decoded from, when known.
type Waveform struct {
	Samples    []float32
	SampleRate int
	Format     Format
}

// WAV fmt-chunk audio format codes.
const (
	wavFormatPCM   = 1
	wavFormatFloat = 3
)

// Duration is the waveform length in seconds.
func (w Waveform) Duration() float64 {
	if w.SampleRate <= 0 {
		return 0
	}
	return float64(len(w.Samples)) / float64(w.SampleRate)
}

// FormatFromFilename maps an upload's extension to a container format.
func FormatFromFilename(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".wav", ".wave":
		return FormatWAV
	case ".mp3":
		return FormatMP3
	case ".ogg", ".oga":
		return FormatOgg
	case ".webm":
		return FormatWebM
	}
	return FormatUnknown
}

// Sniff guesses the container from magic bytes. filetype knows the
// common signatures; bare EBML headers and headerless MPEG frames are
// checked by hand.
func Sniff(data []byte) Format {
	if kind, err := filetype.Match(data); err == nil {
		switch kind.Extension {
		case "wav":
			return FormatWAV
		case "mp3":
			return FormatMP3
		case "ogg":
			return FormatOgg
		case "webm", "mkv":
			return FormatWebM
		}
	}
	switch {
	case len(data) >= 4 && string(data[:4]) == "RIFF":
		return FormatWAV
	case len(data) >= 4 && string(data[:4]) == "OggS":
		return FormatOgg
	case len(data) >= 4 && bytes.Equal(data[:4], []byte{0x1A, 0x45, 0xDF, 0xA3}):
		return FormatWebM
	case len(data) >= 3 && string(data[:3]) == "ID3":
		return FormatMP3
	case len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0:
		return FormatMP3
	}
	return FormatUnknown
}

type Options struct {
	// SampleRate resamples decoded audio; 0 keeps the native rate.
	SampleRate int
	// MaxSeconds truncates long recordings; 0 keeps everything.
	MaxSeconds int
}

type Decoder struct {
	opt Options
}

func NewDecoder(opt Options) *Decoder {
	return &Decoder{opt: opt}
}

// Decode turns raw container bytes into a mono waveform. The declared
// format wins when known; otherwise the bytes are sniffed. Every failure
// wraps mood.ErrAudioDecode.
func (d *Decoder) Decode(data []byte, declared Format) (Waveform, error) {
	if len(data) == 0 {
		return Waveform{}, fmt.Errorf("empty upload: %w", mood.ErrAudioDecode)
	}
	format := declared
	if format == FormatUnknown {
		format = Sniff(data)
	}

	var (
		w   Waveform
		err error
	)
	switch format {
	case FormatWAV:
		w, err = decodeWAV(data)
	case FormatMP3:
		w, err = decodeMP3(data)
	case FormatOgg:
		w, err = decodeOggVorbis(data)
	case FormatWebM:
		err = errors.New("webm is not supported (supported: wav/mp3/ogg-vorbis)")
	default:
		err = errors.New("unsupported format (supported: wav/mp3/ogg-vorbis)")
	}
	if err != nil {
		return Waveform{}, fmt.Errorf("decode %s: %v: %w", format, err, mood.ErrAudioDecode)
	}
	if len(w.Samples) == 0 || w.SampleRate <= 0 {
		return Waveform{}, fmt.Errorf("decode %s: no samples: %w", format, mood.ErrAudioDecode)
	}

	if sr := d.opt.SampleRate; sr > 0 && sr != w.SampleRate {
		w = Waveform{Samples: resampleLinear(w.Samples, w.SampleRate, sr), SampleRate: sr}
	}
	w.Format = format
	if limit := d.opt.MaxSeconds * w.SampleRate; limit > 0 && len(w.Samples) > limit {
		w.Samples = w.Samples[:limit]
	}
	return w, nil
}

func decodeWAV(data []byte) (Waveform, error) {
	dec := wav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return Waveform{}, errors.New("invalid wav")
	}
	pb, err := dec.FullPCMBuffer()
	if err != nil {
		return Waveform{}, err
	}
	if pb == nil || len(pb.Data) == 0 {
		return Waveform{}, errors.New("empty wav")
	}

	bd := int(dec.BitDepth)
	if bd == 0 {
		bd = 16
	}
	x, err := wavSamplesToFloat32(pb.Data, bd, dec.WavAudioFormat)
	if err != nil {
		return Waveform{}, err
	}

	ch, sr := int(dec.NumChans), int(dec.SampleRate)
	if pb.Format != nil {
		if pb.Format.NumChannels > 0 {
			ch = pb.Format.NumChannels
		}
		if pb.Format.SampleRate > 0 {
			sr = pb.Format.SampleRate
		}
	}
	return Waveform{Samples: downmixInterleaved(x, ch), SampleRate: sr}, nil
}

func decodeMP3(data []byte) (Waveform, error) {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return Waveform{}, err
	}
	raw, err := io.ReadAll(dec)
	if err != nil {
		return Waveform{}, err
	}
	ints := make([]int16, len(raw)/2)
	for i := range ints {
		ints[i] = int16(binary.LittleEndian.Uint16(raw[2*i:]))
	}
	// go-mp3 always emits interleaved stereo.
	x := downmixInterleaved(int16SliceToFloat32(ints), 2)
	return Waveform{Samples: x, SampleRate: dec.SampleRate()}, nil
}

func decodeOggVorbis(data []byte) (Waveform, error) {
	pcm, f, err := oggvorbis.ReadAll(bytes.NewReader(data))
	if err != nil {
		return Waveform{}, err
	}
	if f == nil || f.Channels <= 0 || f.SampleRate <= 0 {
		return Waveform{}, errors.New("invalid ogg/vorbis stream")
	}
	return Waveform{Samples: downmixInterleaved(pcm, f.Channels), SampleRate: f.SampleRate}, nil
}

// wavSamplesToFloat32 interprets go-audio's raw ints by the fmt chunk:
// IEEE floats arrive as bit patterns, 8-bit PCM is unsigned around 128.
func wavSamplesToFloat32(data []int, bitDepth int, audioFormat uint16) ([]float32, error) {
	switch {
	case audioFormat == wavFormatFloat && bitDepth == 32:
		out := make([]float32, len(data))
		for i, v := range data {
			f := float64(math.Float32frombits(uint32(int32(v))))
			out[i] = float32(clamp(f, -1.0, 1.0))
		}
		return out, nil
	case audioFormat == wavFormatFloat:
		return nil, fmt.Errorf("unsupported %d-bit float wav", bitDepth)
	case bitDepth == 8:
		out := make([]float32, len(data))
		for i, v := range data {
			out[i] = float32(float64(v-128) / 128)
		}
		return out, nil
	}
	return intSliceToFloat32(data, bitDepth), nil
}

func intSliceToFloat32(data []int, bitDepth int) []float32 {
	out := make([]float32, len(data))
	scale := 1.0 / float64(int64(1)<<(bitDepth-1))
	for i, v := range data {
		out[i] = float32(clamp(float64(v)*scale, -1.0, 1.0))
	}
	return out
}

func int16SliceToFloat32(data []int16) []float32 {
	out := make([]float32, len(data))
	const scale = 1.0 / 32768.0
	for i, v := range data {
		out[i] = float32(float64(v) * scale)
	}
	return out
}

func downmixInterleaved(in []float32, channels int) []float32 {
	if channels <= 1 {
		return in
	}
	nFrames := len(in) / channels
	out := make([]float32, nFrames)
	for i := 0; i < nFrames; i++ {
		sum := 0.0
		base := i * channels
		for c := 0; c < channels; c++ {
			sum += float64(in[base+c])
		}
		out[i] = float32(sum / float64(channels))
	}
	return out
}

func resampleLinear(in []float32, inSR, outSR int) []float32 {
	if inSR == outSR || len(in) == 0 {
		return in
	}
	ratio := float64(outSR) / float64(inSR)
	out := make([]float32, int(math.Ceil(float64(len(in))*ratio)))
	for i := range out {
		src := float64(i) / ratio
		i0 := int(src)
		switch {
		case i0 >= len(in)-1:
			out[i] = in[len(in)-1]
		default:
			a := float32(src - float64(i0))
			out[i] = in[i0]*(1-a) + in[i0+1]*a
		}
	}
	return out
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
