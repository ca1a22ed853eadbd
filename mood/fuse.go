package mood

// Fuse merges a voice submission's two estimates. Text decides every
// categorical field; voice only tempers the energy.
func Fuse(v VoiceEstimate, t TextEstimate, transcript string) FusedResult {
	detected := t.DetectedEmotions
	if detected == nil {
		detected = []string{}
	}
	return FusedResult{
		Mood:             t.Mood,
		Score:            t.Score,
		Energy:           (t.Energy + v.Energy) / 2,
		SentimentScore:   t.SentimentScore,
		EmotionalState:   t.EmotionalState,
		DetectedEmotions: detected,
		TranscribedText:  transcript,
	}
}
