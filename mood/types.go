// Package mood holds the affect-inference core: the mood vocabulary, the
// per-modality estimators and the fusion of their outputs.
package mood

// Mood is a coarse affect category drawn from a closed vocabulary.
type Mood string

const (
	Happy     Mood = "happy"
	Sad       Mood = "sad"
	Anxious   Mood = "anxious"
	Angry     Mood = "angry"
	Neutral   Mood = "neutral"
	Tired     Mood = "tired"
	Energetic Mood = "energetic"
)

// Vocabulary lists every mood in catalog order.
var Vocabulary = []Mood{Happy, Sad, Anxious, Angry, Neutral, Tired, Energetic}

// Valid reports whether m is a member of the vocabulary.
func (m Mood) Valid() bool {
	switch m {
	case Happy, Sad, Anxious, Angry, Neutral, Tired, Energetic:
		return true
	}
	return false
}

// AcousticFeatures is the fixed-shape summary of one voice recording.
type AcousticFeatures struct {
	MFCCMean             []float64 `json:"mfcc_mean"`
	SpectralCentroidMean float64   `json:"centroid_mean"`
	SpectralContrastMean []float64 `json:"contrast_mean"`
	ZeroCrossingRateMean float64   `json:"zcr_mean"`
	RMSEnergyMean        float64   `json:"rms_mean"`
	TempoBPM             float64   `json:"tempo"`
}

// VoiceEstimate is the mood inferred from acoustic features alone.
type VoiceEstimate struct {
	EmotionalState VoiceState `json:"emotional_state"`
	Energy         int        `json:"energy"`
	Mood           Mood       `json:"mood"`
}

// Sentiment is the output of a binary polarity classifier.
type Sentiment struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"score"`
}

// TextEstimate is the mood inferred from text classifiers.
type TextEstimate struct {
	Mood             Mood     `json:"mood"`
	Score            int      `json:"score"`
	Energy           int      `json:"energy"`
	SentimentScore   float64  `json:"sentimentScore"`
	EmotionalState   string   `json:"emotional_state"`
	DetectedEmotions []string `json:"detected_emotions"`
}

// FusedResult merges the voice and text estimates of one voice submission.
type FusedResult struct {
	Mood             Mood     `json:"mood"`
	Score            int      `json:"score"`
	Energy           int      `json:"energy"`
	SentimentScore   float64  `json:"sentimentScore"`
	EmotionalState   string   `json:"emotional_state"`
	DetectedEmotions []string `json:"detected_emotions"`
	TranscribedText  string   `json:"transcribed_text"`
}
