package audio

import (
	"fmt"
	"math"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteTempWAV stores w as 16-bit mono PCM in a temporary file and returns
// its path. The caller removes the file.
func WriteTempWAV(w Waveform) (string, error) {
	f, err := os.CreateTemp("", "moodcore-*.wav")
	if err != nil {
		return "", err
	}
	path := f.Name()

	if err := encodeWAV(f, w); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

func encodeWAV(f *os.File, w Waveform) error {
	enc := wav.NewEncoder(f, w.SampleRate, 16, 1, wavFormatPCM)
	data := make([]int, len(w.Samples))
	for i, s := range w.Samples {
		data[i] = int(math.Round(clamp(float64(s), -1, 1) * 32767))
	}
	buf := &goaudio.IntBuffer{
		Data:           data,
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: w.SampleRate},
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}
	return nil
}
