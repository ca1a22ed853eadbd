package mood

import "math"

// VoiceState is the fine-grained label produced by the acoustic rules.
type VoiceState string

const (
	StateExcited VoiceState = "excited"
	StateAnxious VoiceState = "anxious"
	StateCalm    VoiceState = "calm"
	StateSad     VoiceState = "sad"
	StateTired   VoiceState = "tired"
	StateRelaxed VoiceState = "relaxed"
	StateNeutral VoiceState = "neutral"
)

// Mood maps the state onto the coarse vocabulary.
func (s VoiceState) Mood() Mood {
	switch s {
	case StateExcited:
		return Happy
	case StateAnxious:
		return Anxious
	case StateCalm, StateRelaxed:
		return Neutral
	case StateSad:
		return Sad
	case StateTired:
		return Tired
	}
	return Neutral
}

// voiceRule identifies which branch of the cascade fired.
type voiceRule int

const (
	ruleAroused voiceRule = iota + 1
	ruleQuiet
	ruleSlow
	ruleDefault
)

func classifyVoice(f AcousticFeatures) (VoiceState, voiceRule) {
	switch {
	case f.RMSEnergyMean > 0.1 && f.TempoBPM > 120:
		if f.ZeroCrossingRateMean < 0.1 {
			return StateExcited, ruleAroused
		}
		return StateAnxious, ruleAroused
	case f.RMSEnergyMean < 0.05:
		if f.SpectralCentroidMean < 2000 {
			return StateCalm, ruleQuiet
		}
		return StateSad, ruleQuiet
	case f.TempoBPM < 100:
		if f.RMSEnergyMean < 0.08 {
			return StateTired, ruleSlow
		}
		return StateRelaxed, ruleSlow
	}
	return StateNeutral, ruleDefault
}

// EstimateVoice applies the acoustic threshold cascade. The first matching
// rule wins; energy is loudness scaled onto 1..10.
func EstimateVoice(f AcousticFeatures) VoiceEstimate {
	state, _ := classifyVoice(f)
	return VoiceEstimate{
		EmotionalState: state,
		Energy:         clampInt(int(math.Round(f.RMSEnergyMean*50)), 1, 10),
		Mood:           state.Mood(),
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
