package orchestrator

import (
	"context"

	"github.com/mental-health-mirror/mood-core/mood"
)

// Transcriber turns a WAV file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, wavPath string) (string, error)
}

// SentimentClassifier returns a polarity label with its confidence.
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) (mood.Sentiment, error)
}

// EmotionClassifier returns emotion labels ranked by confidence, highest first.
type EmotionClassifier interface {
	Detect(ctx context.Context, text string) ([]string, error)
}

type Collaborators struct {
	Transcriber Transcriber
	Sentiment   SentimentClassifier
	Emotion     EmotionClassifier
}

// VoiceAnalysis carries the fused result together with the intermediate
// per-modality estimates.
type VoiceAnalysis struct {
	Result   mood.FusedResult      `json:"result"`
	Voice    mood.VoiceEstimate    `json:"voice"`
	Text     mood.TextEstimate     `json:"text"`
	Features mood.AcousticFeatures `json:"features"`
	Format   string                `json:"format"`
	Duration float64               `json:"duration_sec"`
}
