package recommend

import "github.com/mental-health-mirror/mood-core/mood"

// synonyms folds free-form mood words onto the vocabulary.
var synonyms = map[string]mood.Mood{
	"excited":    mood.Happy,
	"joyful":     mood.Happy,
	"depressed":  mood.Sad,
	"melancholy": mood.Sad,
	"stressed":   mood.Anxious,
	"worried":    mood.Anxious,
	"fearful":    mood.Anxious,
	"irritated":  mood.Angry,
	"frustrated": mood.Angry,
	"fatigued":   mood.Tired,
	"exhausted":  mood.Tired,
}

// Recommendation is one suggestion emitted for a category.
type Recommendation struct {
	Type        Category  `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link,omitempty"`
	Mood        mood.Mood `json:"mood"`
}

type Selector struct {
	catalog *Catalog
}

func NewSelector(c *Catalog) *Selector {
	return &Selector{catalog: c}
}

// Normalize resolves any label to a vocabulary member. Unknown words fall
// back on energy: 7 and above reads as energetic, otherwise neutral.
func Normalize(label string, energyLevel float64) mood.Mood {
	if m := mood.Mood(label); m.Valid() {
		return m
	}
	if m, ok := synonyms[label]; ok {
		return m
	}
	if energyLevel >= 7 {
		return mood.Energetic
	}
	return mood.Neutral
}

// Select returns at most one recommendation per category, in category
// order. A mood missing from the catalog yields an empty set.
func (s *Selector) Select(label string, energyLevel float64, detectedEmotions []string) []Recommendation {
	m := Normalize(label, energyLevel)

	out := make([]Recommendation, 0, len(Categories))
	if !s.catalog.Has(m) {
		return out
	}
	for _, c := range Categories {
		e, ok := s.catalog.First(m, c)
		if !ok {
			continue
		}
		out = append(out, Recommendation{
			Type:        c,
			Title:       e.Title,
			Description: e.Description,
			Link:        e.Link,
			Mood:        m,
		})
	}
	return out
}
