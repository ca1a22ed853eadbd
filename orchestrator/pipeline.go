package orchestrator

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/mental-health-mirror/mood-core/audio"
	cfg "github.com/mental-health-mirror/mood-core/config"
	"github.com/mental-health-mirror/mood-core/mood"
)

type Pipeline struct {
	cfg        *cfg.Root
	col        Collaborators
	decoder    *audio.Decoder
	summarizer *audio.Summarizer
	log        logrus.FieldLogger
}

func NewPipeline(c *cfg.Root, col Collaborators, log logrus.FieldLogger) *Pipeline {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Pipeline{
		cfg: c,
		col: col,
		decoder: audio.NewDecoder(audio.Options{
			SampleRate: c.Audio.SampleRate,
			MaxSeconds: c.Audio.MaxSeconds,
		}),
		summarizer: audio.NewSummarizer(audio.FeatureConfig{
			NMFCC:     c.Features.NMFCC,
			NFFT:      c.Features.NFFT,
			HopLength: c.Features.HopLength,
			NMels:     c.Features.NMels,
			TopDB:     c.Features.TopDB,
		}),
		log: log,
	}
}

// AnalyzeText rejects blank text, then runs both classifiers and maps
// their output onto the mood scale.
func (p *Pipeline) AnalyzeText(ctx context.Context, text string) (mood.TextEstimate, error) {
	if err := mood.ValidateText(text); err != nil {
		return mood.TextEstimate{}, err
	}
	sent, emotions, err := p.classify(ctx, text)
	if err != nil {
		return mood.TextEstimate{}, err
	}
	est := mood.EstimateText(sent, emotions)
	p.log.WithFields(logrus.Fields{
		"mood":   est.Mood,
		"score":  est.Score,
		"energy": est.Energy,
	}).Debug("text analyzed")
	return est, nil
}

// AnalyzeVoice decodes an upload, transcribes it and summarizes its
// acoustics concurrently, then fuses the text and voice estimates.
func (p *Pipeline) AnalyzeVoice(ctx context.Context, data []byte, filename string) (*VoiceAnalysis, error) {
	start := time.Now()
	w, err := p.decoder.Decode(data, audio.FormatFromFilename(filename))
	if err != nil {
		return nil, err
	}
	log := p.log.WithFields(logrus.Fields{
		"format":       w.Format,
		"duration_sec": w.Duration(),
	})

	// Both branches always finish so a bad recording is reported as such
	// even when the transcriber fails too.
	var (
		transcript       string
		features         mood.AcousticFeatures
		trErr, featErr   error
		g                errgroup.Group
		branchCtx, abort = context.WithCancel(ctx)
	)
	defer abort()
	g.Go(func() error {
		transcript, trErr = p.transcribe(branchCtx, w)
		return nil
	})
	g.Go(func() error {
		features, featErr = p.summarizer.Summarize(w)
		if featErr != nil {
			abort()
		}
		return nil
	})
	_ = g.Wait()
	if featErr != nil {
		return nil, featErr
	}
	if trErr != nil {
		return nil, mood.Upstream("transcriber", trErr)
	}

	if err := mood.ValidateText(transcript); err != nil {
		return nil, err
	}
	sent, emotions, err := p.classify(ctx, transcript)
	if err != nil {
		return nil, err
	}

	voice := mood.EstimateVoice(features)
	text := mood.EstimateText(sent, emotions)
	res := &VoiceAnalysis{
		Result:   mood.Fuse(voice, text, transcript),
		Voice:    voice,
		Text:     text,
		Features: features,
		Format:   string(w.Format),
		Duration: w.Duration(),
	}
	log.WithFields(logrus.Fields{
		"mood":        res.Result.Mood,
		"energy":      res.Result.Energy,
		"voice_state": voice.EmotionalState,
		"took":        time.Since(start),
	}).Info("voice analyzed")
	return res, nil
}

// classify runs the sentiment and emotion classifiers side by side.
func (p *Pipeline) classify(ctx context.Context, text string) (mood.Sentiment, []string, error) {
	if p.col.Sentiment == nil || p.col.Emotion == nil {
		return mood.Sentiment{}, nil, mood.Upstream("classifier", errors.New("not configured"))
	}
	var (
		sent     mood.Sentiment
		emotions []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := p.col.Sentiment.Classify(gctx, text)
		if err != nil {
			return mood.Upstream("sentiment", err)
		}
		sent = s
		return nil
	})
	g.Go(func() error {
		e, err := p.col.Emotion.Detect(gctx, text)
		if err != nil {
			return mood.Upstream("emotion", err)
		}
		emotions = e
		return nil
	})
	if err := g.Wait(); err != nil {
		return mood.Sentiment{}, nil, err
	}
	return sent, emotions, nil
}
