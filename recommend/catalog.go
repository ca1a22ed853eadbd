// Package recommend turns a mood reading into one suggestion per category,
// drawn from a read-only catalog.
package recommend

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mental-health-mirror/mood-core/mood"
)

type Category string

const (
	Music    Category = "music"
	Video    Category = "video"
	Activity Category = "activity"
	Journal  Category = "journal"
)

// Categories is the emission order of a recommendation set.
var Categories = []Category{Music, Video, Activity, Journal}

type Entry struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Link        string `yaml:"link,omitempty" json:"link,omitempty"`
}

// Catalog maps a mood to ordered entries per category. It is never
// mutated after construction and is safe for concurrent readers.
type Catalog struct {
	entries map[mood.Mood]map[Category][]Entry
}

// NewCatalog validates and copies src.
func NewCatalog(src map[mood.Mood]map[Category][]Entry) (*Catalog, error) {
	entries := make(map[mood.Mood]map[Category][]Entry, len(src))
	for m, cats := range src {
		if !m.Valid() {
			return nil, fmt.Errorf("catalog: unknown mood %q", m)
		}
		byCat := make(map[Category][]Entry, len(cats))
		for c, list := range cats {
			if !c.valid() {
				return nil, fmt.Errorf("catalog: mood %q: unknown category %q", m, c)
			}
			if len(list) == 0 {
				return nil, fmt.Errorf("catalog: mood %q: category %q is empty", m, c)
			}
			byCat[c] = append([]Entry(nil), list...)
		}
		entries[m] = byCat
	}
	return &Catalog{entries: entries}, nil
}

// LoadCatalog reads a YAML catalog of the form
// mood -> category -> [{title, description, link}].
func LoadCatalog(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var raw map[mood.Mood]map[Category][]Entry
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return NewCatalog(raw)
}

// First returns the leading entry for a mood and category.
func (c *Catalog) First(m mood.Mood, cat Category) (Entry, bool) {
	list := c.entries[m][cat]
	if len(list) == 0 {
		return Entry{}, false
	}
	return list[0], true
}

// Has reports whether the catalog knows the mood at all.
func (c *Catalog) Has(m mood.Mood) bool {
	_, ok := c.entries[m]
	return ok
}

func (c Category) valid() bool {
	switch c {
	case Music, Video, Activity, Journal:
		return true
	}
	return false
}
