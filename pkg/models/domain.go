package models

import (
	"fmt"
	"time"
)

// Fret limits shared by every fingering.
const (
	StringCount = 6
	Muted       = -1
	Open        = 0
	MinFret     = 1
	MaxFret     = 15
)

// Fingering is one way of playing a chord: a fret/mute/open value per string,
// low E first.
type Fingering struct {
	Name      string           // Display name, e.g. "G" or "Am7"
	Positions [StringCount]int // -1 muted, 0 open, 1..15 fretted
	Barre     int              // Barre fret, 0 when there is none
	IsDefault bool             // Preferred voicing for Name
}

// Label renders the name with its barre annotation, e.g. "G (barre 3)".
func (f Fingering) Label() string {
	if f.Barre > 0 {
		return fmt.Sprintf("%s (barre %d)", f.Name, f.Barre)
	}
	return f.Name
}

// HasOpenStrings reports whether any string is played open.
func (f Fingering) HasOpenStrings() bool {
	for _, p := range f.Positions {
		if p == Open {
			return true
		}
	}
	return false
}

// LowestFret returns the smallest fretted position, or 0 if nothing is fretted.
func (f Fingering) LowestFret() int {
	lowest := 0
	for _, p := range f.Positions {
		if p > 0 && (lowest == 0 || p < lowest) {
			lowest = p
		}
	}
	return lowest
}

// ValidPosition reports whether p is a legal per-string value.
func ValidPosition(p int) bool {
	return p == Muted || p == Open || (p >= MinFret && p <= MaxFret)
}

// CustomChord is a user-defined fingering.
type CustomChord struct {
	ID          string           // Stable unique id, never reused
	BaseName    string           // Chord family, e.g. "G"
	DisplayName string           // Full user-facing name, e.g. "G (Sweet Home)"
	Positions   [StringCount]int // Same semantics as Fingering.Positions
	Barre       int              // 0 when there is none
	CreatedAt   time.Time
}

// Fingering converts the custom chord into a renderable fingering named by
// its display name.
func (c CustomChord) Fingering() Fingering {
	return Fingering{
		Name:      c.DisplayName,
		Positions: c.Positions,
		Barre:     c.Barre,
	}
}

// Match is a catalog entry returned by the fingering matcher.
type Match struct {
	Name      string
	Fingering Fingering
}

// Chart is the result of parsing pasted chord-chart text.
type Chart struct {
	Capo    int      // 0..7, 0 when absent or out of range
	Chords  []string // De-duplicated chord tokens in first-seen order
	RawText string   // Input text, unchanged
}
