package audio

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mental-health-mirror/mood-core/mood"
)

func sine(freq, amp float64, sr int, seconds float64) Waveform {
	n := int(float64(sr) * seconds)
	s := make([]float32, n)
	for i := range s {
		s[i] = float32(amp * math.Sin(2*math.Pi*freq*float64(i)/float64(sr)))
	}
	return Waveform{Samples: s, SampleRate: sr}
}

func wavBytes(t *testing.T, w Waveform) []byte {
	t.Helper()
	path, err := WriteTempWAV(w)
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(path) })

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return b
}

func TestDecodeWAVRoundTrip(t *testing.T) {
	in := sine(220, 0.5, 16000, 0.5)
	data := wavBytes(t, in)

	for _, declared := range []Format{FormatWAV, FormatUnknown} {
		got, err := NewDecoder(Options{}).Decode(data, declared)
		require.NoError(t, err)
		assert.Equal(t, 16000, got.SampleRate)
		assert.Equal(t, FormatWAV, got.Format)
		require.Len(t, got.Samples, len(in.Samples))
		for i := 0; i < len(in.Samples); i += 97 {
			assert.InDelta(t, in.Samples[i], got.Samples[i], 1e-3)
		}
		assert.InDelta(t, 0.5, got.Duration(), 1e-9)
	}
}

func TestDecodeTruncatesToMaxSeconds(t *testing.T) {
	data := wavBytes(t, sine(220, 0.5, 8000, 3))

	got, err := NewDecoder(Options{MaxSeconds: 1}).Decode(data, FormatWAV)
	require.NoError(t, err)
	assert.Len(t, got.Samples, 8000)
}

func TestDecodeFailures(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		declared Format
	}{
		{"empty", nil, FormatWAV},
		{"garbage wav", []byte("RIFFnot really a wave file"), FormatWAV},
		{"truncated mp3", []byte("ID3"), FormatMP3},
		{"garbage ogg", []byte("OggS\x00\x02garbage"), FormatOgg},
		{"webm", []byte{0x1A, 0x45, 0xDF, 0xA3, 0x01}, FormatUnknown},
		{"unknown", []byte("hello world"), FormatUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDecoder(Options{}).Decode(tt.data, tt.declared)
			assert.ErrorIs(t, err, mood.ErrAudioDecode)
		})
	}
}

func TestFormatFromFilename(t *testing.T) {
	assert.Equal(t, FormatWAV, FormatFromFilename("clip.WAV"))
	assert.Equal(t, FormatMP3, FormatFromFilename("a/b/clip.mp3"))
	assert.Equal(t, FormatOgg, FormatFromFilename("clip.oga"))
	assert.Equal(t, FormatWebM, FormatFromFilename("recording.webm"))
	assert.Equal(t, FormatUnknown, FormatFromFilename("audio_file"))
}

func TestSniff(t *testing.T) {
	assert.Equal(t, FormatWAV, Sniff([]byte("RIFF....WAVE")))
	assert.Equal(t, FormatOgg, Sniff([]byte("OggS")))
	assert.Equal(t, FormatMP3, Sniff([]byte("ID3\x04")))
	assert.Equal(t, FormatMP3, Sniff([]byte{0xFF, 0xFB, 0x90}))
	assert.Equal(t, FormatWebM, Sniff([]byte{0x1A, 0x45, 0xDF, 0xA3}))
	assert.Equal(t, FormatUnknown, Sniff([]byte{0x00}))
}

func TestDownmixInterleaved(t *testing.T) {
	got := downmixInterleaved([]float32{1, 0, 0.5, 0.5, -1, 1}, 2)
	assert.Equal(t, []float32{0.5, 0.5, 0}, got)
}

func TestDecodeResamples(t *testing.T) {
	data := wavBytes(t, sine(220, 0.5, 8000, 1))

	got, err := NewDecoder(Options{SampleRate: 16000}).Decode(data, FormatWAV)
	require.NoError(t, err)
	assert.Equal(t, 16000, got.SampleRate)
	assert.Len(t, got.Samples, 16000)
	assert.InDelta(t, 1.0, got.Duration(), 1e-9)
}

func TestResampleLinear(t *testing.T) {
	assert.Equal(t, []float32{0, 0.5, 1, 1}, resampleLinear([]float32{0, 1}, 1, 2))
	in := []float32{1, 2, 3}
	assert.Equal(t, in, resampleLinear(in, 4, 4))
}

// wavWithEncoding writes raw go-audio ints with an explicit fmt-chunk encoding.
func wavWithEncoding(t *testing.T, data []int, sr, bitDepth, audioFormat int) []byte {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	enc := wav.NewEncoder(f, sr, bitDepth, 1, audioFormat)
	require.NoError(t, enc.Write(&goaudio.IntBuffer{
		Data:           data,
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sr},
		SourceBitDepth: bitDepth,
	}))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return b
}

func TestDecodeUnsigned8BitWAV(t *testing.T) {
	silence := make([]int, 16000)
	for i := range silence {
		silence[i] = 128
	}
	got, err := NewDecoder(Options{}).Decode(wavWithEncoding(t, silence, 16000, 8, wavFormatPCM), FormatWAV)
	require.NoError(t, err)
	for _, v := range got.Samples[:4] {
		assert.Zero(t, v)
	}

	_, err = NewSummarizer(DefaultFeatureConfig()).Summarize(got)
	assert.ErrorIs(t, err, mood.ErrFeatureExtraction)

	got, err = NewDecoder(Options{}).Decode(wavWithEncoding(t, []int{0, 64, 128, 192, 255}, 16000, 8, wavFormatPCM), FormatWAV)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float32{-1, -0.5, 0, 0.5, 127.0 / 128}, got.Samples, 1e-6)
}

func TestDecodeFloatWAV(t *testing.T) {
	in := sine(220, 0.5, 16000, 1)
	data := make([]int, len(in.Samples))
	for i, v := range in.Samples {
		data[i] = int(int32(math.Float32bits(v)))
	}

	got, err := NewDecoder(Options{}).Decode(wavWithEncoding(t, data, 16000, 32, wavFormatFloat), FormatWAV)
	require.NoError(t, err)
	require.Len(t, got.Samples, len(in.Samples))
	for i := 0; i < len(in.Samples); i += 101 {
		assert.InDelta(t, in.Samples[i], got.Samples[i], 1e-6)
	}

	f, err := NewSummarizer(DefaultFeatureConfig()).Summarize(got)
	require.NoError(t, err)
	assert.InDelta(t, 0.5/math.Sqrt2, f.RMSEnergyMean, 0.02)
}

func TestDecodeMP3Fixture(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "clip.mp3"))
	require.NoError(t, err)

	// Reference: go-mp3 emits interleaved 16-bit stereo.
	ref, err := mp3.NewDecoder(bytes.NewReader(data))
	require.NoError(t, err)
	raw, err := io.ReadAll(ref)
	require.NoError(t, err)
	frames := len(raw) / 4
	require.NotZero(t, frames)

	got, err := NewDecoder(Options{}).Decode(data, FormatUnknown)
	require.NoError(t, err)
	assert.Equal(t, FormatMP3, got.Format)
	assert.Equal(t, 32000, got.SampleRate)
	require.Len(t, got.Samples, frames)
	assert.InDelta(t, 0.18, got.Duration(), 0.05)

	for i := 0; i < frames; i += 97 {
		l := float64(int16(binary.LittleEndian.Uint16(raw[4*i:]))) / 32768
		r := float64(int16(binary.LittleEndian.Uint16(raw[4*i+2:]))) / 32768
		assert.InDelta(t, (l+r)/2, got.Samples[i], 1e-6)
	}
}

func TestDecodeOggVorbisFixture(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "clip.ogg"))
	require.NoError(t, err)

	got, err := NewDecoder(Options{}).Decode(data, FormatFromFilename("clip.ogg"))
	require.NoError(t, err)
	assert.Equal(t, FormatOgg, got.Format)
	assert.Equal(t, 44100, got.SampleRate)
	assert.Len(t, got.Samples, 44100)
	assert.InDelta(t, 1.0, got.Duration(), 1e-9)

	resampled, err := NewDecoder(Options{SampleRate: 22050}).Decode(data, FormatOgg)
	require.NoError(t, err)
	assert.Equal(t, 22050, resampled.SampleRate)
	assert.Len(t, resampled.Samples, 22050)
}
