package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mental-health-mirror/mood-core/audio"
	"github.com/mental-health-mirror/mood-core/clients"
	cfg "github.com/mental-health-mirror/mood-core/config"
)

// CollaboratorsFromConfig builds the HTTP (or OpenAI) collaborators
// named in the services section.
func CollaboratorsFromConfig(c *cfg.Root) (Collaborators, error) {
	h := clients.NewHTTP(cfg.DurSeconds(c.Services.Timeout))

	col := Collaborators{
		Sentiment: clients.NewSentimentService(h, c.Services.Sentiment.URL),
		Emotion:   clients.NewEmotionService(h, c.Services.Emotion.URL, c.Classifiers.TopK),
	}
	switch c.Services.Transcriber.Backend {
	case "openai":
		w, err := clients.NewWhisperTranscriber(h, c.OpenAIKey, c.Services.Transcriber.Model)
		if err != nil {
			return Collaborators{}, err
		}
		col.Transcriber = w
	default:
		col.Transcriber = clients.NewASRService(h, c.Services.ASR.URL)
	}
	return col, nil
}

// transcribe re-encodes w as a temporary WAV for the transcriber.
func (p *Pipeline) transcribe(ctx context.Context, w audio.Waveform) (string, error) {
	if p.col.Transcriber == nil {
		return "", errors.New("no transcriber configured")
	}
	path, err := audio.WriteTempWAV(w)
	if err != nil {
		return "", fmt.Errorf("write temp wav: %w", err)
	}
	defer os.Remove(path)

	return p.col.Transcriber.Transcribe(ctx, path)
}
