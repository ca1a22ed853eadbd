package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateVoiceCascade(t *testing.T) {
	tests := []struct {
		name   string
		in     AcousticFeatures
		state  VoiceState
		mood   Mood
		energy int
		rule   voiceRule
	}{
		{
			name:   "loud fast clean voice is excited",
			in:     AcousticFeatures{RMSEnergyMean: 0.15, TempoBPM: 130, ZeroCrossingRateMean: 0.05},
			state:  StateExcited,
			mood:   Happy,
			energy: 8,
			rule:   ruleAroused,
		},
		{
			name:   "loud fast noisy voice is anxious",
			in:     AcousticFeatures{RMSEnergyMean: 0.15, TempoBPM: 130, ZeroCrossingRateMean: 0.2},
			state:  StateAnxious,
			mood:   Anxious,
			energy: 8,
			rule:   ruleAroused,
		},
		{
			name:   "quiet dark voice is calm",
			in:     AcousticFeatures{RMSEnergyMean: 0.01, SpectralCentroidMean: 1500, TempoBPM: 150},
			state:  StateCalm,
			mood:   Neutral,
			energy: 1,
			rule:   ruleQuiet,
		},
		{
			name:   "quiet bright voice is sad",
			in:     AcousticFeatures{RMSEnergyMean: 0.04, SpectralCentroidMean: 2500},
			state:  StateSad,
			mood:   Sad,
			energy: 2,
			rule:   ruleQuiet,
		},
		{
			name:   "slow low voice is tired",
			in:     AcousticFeatures{RMSEnergyMean: 0.06, TempoBPM: 90},
			state:  StateTired,
			mood:   Tired,
			energy: 3,
			rule:   ruleSlow,
		},
		{
			name:   "slow louder voice is relaxed",
			in:     AcousticFeatures{RMSEnergyMean: 0.095, TempoBPM: 90},
			state:  StateRelaxed,
			mood:   Neutral,
			energy: 5,
			rule:   ruleSlow,
		},
		{
			name:   "loud but not fast falls through to neutral",
			in:     AcousticFeatures{RMSEnergyMean: 0.5, TempoBPM: 110},
			state:  StateNeutral,
			mood:   Neutral,
			energy: 10,
			rule:   ruleDefault,
		},
		{
			name:   "tempo exactly 120 is not fast",
			in:     AcousticFeatures{RMSEnergyMean: 0.2, TempoBPM: 120},
			state:  StateNeutral,
			mood:   Neutral,
			energy: 10,
			rule:   ruleDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateVoice(tt.in)
			assert.Equal(t, tt.state, got.EmotionalState)
			assert.Equal(t, tt.mood, got.Mood)
			assert.Equal(t, tt.energy, got.Energy)

			_, rule := classifyVoice(tt.in)
			assert.Equal(t, tt.rule, rule)
		})
	}
}

func TestEstimateVoiceEnergyBounds(t *testing.T) {
	for _, rms := range []float64{0, 0.001, 0.02, 0.1, 0.19, 0.21, 1, 5} {
		for _, tempo := range []float64{0, 80, 100, 121, 200} {
			for _, zcr := range []float64{0, 0.05, 0.5} {
				for _, centroid := range []float64{500, 2000, 4000} {
					got := EstimateVoice(AcousticFeatures{
						RMSEnergyMean:        rms,
						TempoBPM:             tempo,
						ZeroCrossingRateMean: zcr,
						SpectralCentroidMean: centroid,
					})
					assert.GreaterOrEqual(t, got.Energy, 1)
					assert.LessOrEqual(t, got.Energy, 10)
					assert.True(t, got.Mood.Valid())
				}
			}
		}
	}
}

func TestVoiceStateMoodDefaultsToNeutral(t *testing.T) {
	assert.Equal(t, Neutral, VoiceState("bored").Mood())
	assert.Equal(t, Neutral, StateNeutral.Mood())
}
