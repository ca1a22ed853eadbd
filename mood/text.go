package mood

import (
	"fmt"
	"math"
	"strings"
)

// emotionEnergy is the activation associated with each classifier label.
// Labels missing from the table count as 5.
var emotionEnergy = map[string]float64{
	"joy":      8,
	"optimism": 7,
	"neutral":  5,
	"sadness":  3,
	"anger":    6,
	"fear":     4,
	"surprise": 7,
}

const defaultEmotionEnergy = 5

// ValidateText rejects blank input before it reaches any classifier.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("validate text: %w", ErrEmptyInput)
	}
	return nil
}

// SignedSentiment converts a polarity label and confidence to [-1, 1].
func SignedSentiment(s Sentiment) float64 {
	c := math.Max(0, math.Min(1, s.Confidence))
	if strings.EqualFold(s.Label, "positive") {
		return c
	}
	return -c
}

// EstimateText maps a sentiment and the ranked emotion labels
// (highest confidence first) to a text mood estimate.
func EstimateText(s Sentiment, emotions []string) TextEstimate {
	normalized := SignedSentiment(s)

	// 5 + 5*n keeps -0.9 on the 0.5 boundary instead of just below it.
	score := clampInt(int(math.Round(5+5*normalized)), 0, 10)

	var m Mood
	// The two middle bands both land on neutral.
	switch {
	case normalized > 0.6:
		m = Happy
	case normalized > 0.2:
		m = Neutral
	case normalized > -0.2:
		m = Neutral
	case normalized > -0.6:
		m = Sad
	default:
		m = Sad
	}

	if contains(emotions, "anger") {
		m = Angry
	} else if contains(emotions, "fear") {
		m = Anxious
	}

	detected := make([]string, len(emotions))
	copy(detected, emotions)

	state := "neutral"
	if len(detected) > 0 {
		state = detected[0]
	}

	return TextEstimate{
		Mood:             m,
		Score:            score,
		Energy:           emotionLevel(detected),
		SentimentScore:   normalized,
		EmotionalState:   state,
		DetectedEmotions: detected,
	}
}

func emotionLevel(emotions []string) int {
	if len(emotions) == 0 {
		return defaultEmotionEnergy
	}
	total := 0.0
	for _, e := range emotions {
		if v, ok := emotionEnergy[e]; ok {
			total += v
			continue
		}
		total += defaultEmotionEnergy
	}
	return int(math.Round(total / float64(len(emotions))))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
