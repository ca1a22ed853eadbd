// Package summary reduces a week of check-ins to averages, a dominant mood,
// a trend and tiered advice.
package summary

import (
	"fmt"
	"strings"

	"github.com/mental-health-mirror/mood-core/mood"
)

// CheckIn is one historical reading, oldest first in a sequence.
// Nil fields were not recorded.
type CheckIn struct {
	Mood        string   `json:"mood"`
	MoodScore   *float64 `json:"moodScore"`
	EnergyLevel *float64 `json:"energyLevel"`
}

type Trend string

const (
	TrendNone      Trend = ""
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// minTrendRecords is the history length below which no trend is reported.
const minTrendRecords = 3

type Weekly struct {
	AvgScore        float64 `json:"avgScore"`
	AvgEnergy       float64 `json:"avgEnergy"`
	DominantMood    string  `json:"dominantMood"`
	Trend           Trend   `json:"trend,omitempty"`
	Insights        string  `json:"insights"`
	Recommendations string  `json:"recommendations"`
}

// Summarize aggregates records. Averages ignore ordering; the trend
// compares only the first and last scores.
func Summarize(records []CheckIn) (Weekly, error) {
	if len(records) == 0 {
		return Weekly{}, fmt.Errorf("summarize: %w", mood.ErrEmptyHistory)
	}

	w := Weekly{
		AvgScore:     mean(records, func(c CheckIn) *float64 { return c.MoodScore }),
		AvgEnergy:    mean(records, func(c CheckIn) *float64 { return c.EnergyLevel }),
		DominantMood: dominantMood(records),
		Trend:        trend(records),
	}
	w.Insights = insights(w)
	w.Recommendations = advice(w.AvgScore, w.AvgEnergy)
	return w, nil
}

func mean(records []CheckIn, field func(CheckIn) *float64) float64 {
	var sum float64
	var n int
	for _, r := range records {
		if v := field(r); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// dominantMood is a stable argmax: ties go to the mood seen first.
func dominantMood(records []CheckIn) string {
	counts := map[string]int{}
	var order []string
	for _, r := range records {
		if r.Mood == "" {
			continue
		}
		if counts[r.Mood] == 0 {
			order = append(order, r.Mood)
		}
		counts[r.Mood]++
	}
	best := string(mood.Neutral)
	bestN := 0
	for _, m := range order {
		if counts[m] > bestN {
			best, bestN = m, counts[m]
		}
	}
	return best
}

func trend(records []CheckIn) Trend {
	if len(records) < minTrendRecords {
		return TrendNone
	}
	first, last := records[0].MoodScore, records[len(records)-1].MoodScore
	if first == nil || last == nil {
		return TrendNone
	}
	switch {
	case *last > *first:
		return TrendImproving
	case *last < *first:
		return TrendDeclining
	}
	return TrendStable
}

func insights(w Weekly) string {
	var b strings.Builder
	fmt.Fprintf(&b, "This week, your average mood score was %.1f/10 and your average energy level was %.1f/10. ", w.AvgScore, w.AvgEnergy)
	fmt.Fprintf(&b, "You most frequently reported feeling %s. ", w.DominantMood)
	switch w.Trend {
	case TrendImproving:
		b.WriteString("Your mood has been improving over the week. ")
	case TrendDeclining:
		b.WriteString("Your mood has slightly declined over the week. ")
	case TrendStable:
		b.WriteString("Your mood has remained relatively stable. ")
	}
	return b.String()
}

var (
	lowScoreAdvice = []string{
		"Your mood has been on the lower side. Consider scheduling time with a trusted friend or mental health professional.",
		"Set aside time each day for self-care activities that have helped you feel better in the past.",
		"Ensure you're getting adequate sleep, nutrition, and some light physical activity.",
	}
	midScoreAdvice = []string{
		"Your mood has been moderate. Pay attention to what activities boost your mood and try to incorporate more of them.",
		"Practice mindfulness or meditation to help maintain emotional balance.",
		"Consider setting small, achievable goals to build momentum and confidence.",
	}
	highScoreAdvice = []string{
		"Your mood has been positive! Reflect on what's working well and continue these practices.",
		"Share your positive energy with others through acts of kindness or connection.",
		"Document what's going well to reference during more challenging times.",
	}
	lowEnergyAdvice = []string{
		"Your energy has been low. Check your sleep quality and quantity.",
		"Consider gentle exercise like walking or stretching to naturally boost energy.",
	}
	highEnergyAdvice = []string{
		"You've had high energy. Channel this productively into activities that matter to you.",
		"Ensure you're also building in adequate rest periods to sustain your energy.",
	}
)

const adviceHeader = "Based on your mood patterns this week, consider the following:\n\n"

func advice(avgScore, avgEnergy float64) string {
	var b strings.Builder
	b.WriteString(adviceHeader)

	switch {
	case avgScore < 4:
		writeBullets(&b, lowScoreAdvice)
	case avgScore < 7:
		writeBullets(&b, midScoreAdvice)
	default:
		writeBullets(&b, highScoreAdvice)
	}

	switch {
	case avgEnergy < 4:
		writeBullets(&b, lowEnergyAdvice)
	case avgEnergy > 7:
		writeBullets(&b, highEnergyAdvice)
	}
	return b.String()
}

func writeBullets(b *strings.Builder, lines []string) {
	for _, l := range lines {
		b.WriteString("• ")
		b.WriteString(l)
		b.WriteString("\n")
	}
}
