// Package catalog holds the built-in chord table and base-name resolution.
package catalog

import (
	"strings"

	"github.com/himanishpuri/ChordBook/pkg/models"
)

// Catalog is an immutable, ordered table of chord fingerings. Several
// entries may share a name; lookups prefer the first entry flagged as the
// default and otherwise take the first entry in table order.
type Catalog struct {
	entries []models.Fingering
	byName  map[string][]int
	names   []string
}

// New builds a catalog from entries, keeping their order.
func New(entries []models.Fingering) *Catalog {
	c := &Catalog{
		entries: make([]models.Fingering, len(entries)),
		byName:  make(map[string][]int),
	}
	copy(c.entries, entries)
	for i, e := range c.entries {
		if _, seen := c.byName[e.Name]; !seen {
			c.names = append(c.names, e.Name)
		}
		c.byName[e.Name] = append(c.byName[e.Name], i)
	}
	return c
}

// Builtin returns a catalog over the built-in chord table.
func Builtin() *Catalog {
	return New(builtin)
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// All returns every entry in table order.
func (c *Catalog) All() []models.Fingering {
	out := make([]models.Fingering, len(c.entries))
	copy(out, c.entries)
	return out
}

// Names returns the distinct chord names in table order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Voicings returns every entry named name, in table order.
func (c *Catalog) Voicings(name string) []models.Fingering {
	idx := c.byName[name]
	out := make([]models.Fingering, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.entries[i])
	}
	return out
}

// Exact returns the preferred entry whose name equals name.
func (c *Catalog) Exact(name string) (models.Fingering, bool) {
	idx := c.byName[name]
	if len(idx) == 0 {
		return models.Fingering{}, false
	}
	for _, i := range idx {
		if c.entries[i].IsDefault {
			return c.entries[i], true
		}
	}
	return c.entries[idx[0]], true
}

// Lookup resolves a bare base name: an exact match first, then each name
// variation in order.
func (c *Catalog) Lookup(name string) (models.Fingering, bool) {
	if f, ok := c.Exact(name); ok {
		return f, true
	}
	for _, v := range Variations(name) {
		if f, ok := c.Exact(v); ok {
			return f, true
		}
	}
	return models.Fingering{}, false
}

// FindVoicing returns the entry with the given name and exact positions.
func (c *Catalog) FindVoicing(name string, positions [models.StringCount]int) (models.Fingering, bool) {
	for _, i := range c.byName[name] {
		if c.entries[i].Positions == positions {
			return c.entries[i], true
		}
	}
	return models.Fingering{}, false
}

// Variations lists the alternative spellings tried when a name has no exact
// match, e.g. "Cmin" -> "Cm", "C Major" -> "C", "Bbm" -> "A#m".
func Variations(name string) []string {
	var out []string
	seen := map[string]bool{name: true}
	add := func(v string) {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			return
		}
		seen[v] = true
		out = append(out, v)
	}

	for _, v := range suffixVariations(name) {
		add(v)
	}
	for _, v := range append([]string{name}, out...) {
		if e, ok := enharmonic(v); ok {
			add(e)
		}
	}
	return out
}

func suffixVariations(name string) []string {
	switch {
	case strings.HasSuffix(name, " Minor"):
		base := strings.TrimSuffix(name, " Minor")
		return []string{base + "m", base + "min"}
	case strings.HasSuffix(name, "minor"):
		base := strings.TrimSuffix(name, "minor")
		return []string{base + "m", base + " Minor"}
	case strings.HasSuffix(name, "min"):
		base := strings.TrimSuffix(name, "min")
		return []string{base + "m", base + " Minor"}
	case strings.HasSuffix(name, " Major"):
		base := strings.TrimSuffix(name, " Major")
		return []string{base, base + "maj"}
	case strings.HasSuffix(name, "major"):
		base := strings.TrimSuffix(name, "major")
		return []string{base, base + " Major"}
	case strings.HasSuffix(name, "maj"):
		base := strings.TrimSuffix(name, "maj")
		return []string{base, base + " Major"}
	case strings.HasSuffix(name, "m") && !strings.HasSuffix(name, "dim"):
		base := strings.TrimSuffix(name, "m")
		return []string{base + "min", base + " Minor"}
	default:
		return []string{name + " Major", name + "maj"}
	}
}

var flatToSharp = map[string]string{
	"Ab": "G#",
	"Bb": "A#",
	"Cb": "B",
	"Db": "C#",
	"Eb": "D#",
	"Fb": "E",
	"Gb": "F#",
	"E#": "F",
	"B#": "C",
}

var accidentals = strings.NewReplacer("♭", "b", "♯", "#")

// enharmonic respells the root of name with the sharp names the table uses.
func enharmonic(name string) (string, bool) {
	n := accidentals.Replace(name)
	if len(n) >= 2 {
		if sharp, ok := flatToSharp[n[:2]]; ok {
			return sharp + n[2:], true
		}
	}
	if n != name {
		return n, true
	}
	return "", false
}
