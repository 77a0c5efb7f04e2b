// Package transpose moves a fingering's shape up or down the neck.
package transpose

import (
	"errors"

	"github.com/himanishpuri/ChordBook/pkg/models"
)

var (
	ErrOpenString       = errors.New("fingering has an open string")
	ErrNoFrettedNotes   = errors.New("fingering has no fretted notes")
	ErrTargetOutOfRange = errors.New("fret is outside 1-15")
)

// Check reports why f cannot be moved to target, or nil if it can.
func Check(f models.Fingering, target int) error {
	if !inRange(target) {
		return ErrTargetOutOfRange
	}
	if f.HasOpenStrings() {
		return ErrOpenString
	}
	if f.LowestFret() == 0 {
		return ErrNoFrettedNotes
	}
	offset := target - f.LowestFret()
	for _, p := range f.Positions {
		if p > 0 && !inRange(p+offset) {
			return ErrTargetOutOfRange
		}
	}
	if f.Barre > 0 && !inRange(f.Barre+offset) {
		return ErrTargetOutOfRange
	}
	return nil
}

// CanTranspose reports whether f's shape is movable at all: no open strings
// and at least one fretted note.
func CanTranspose(f models.Fingering) bool {
	return !f.HasOpenStrings() && f.LowestFret() > 0
}

// Transpose shifts every fretted note so the lowest one lands on target.
// Muted strings stay muted and the name is kept. ok is false when the shape
// is not movable or any note or the barre would leave frets 1-15.
func Transpose(f models.Fingering, target int) (models.Fingering, bool) {
	if Check(f, target) != nil {
		return models.Fingering{}, false
	}

	offset := target - f.LowestFret()
	out := f
	for i, p := range f.Positions {
		if p > 0 {
			out.Positions[i] = p + offset
		}
	}
	if f.Barre > 0 {
		out.Barre = f.Barre + offset
	}
	return out, true
}

func inRange(fret int) bool {
	return fret >= models.MinFret && fret <= models.MaxFret
}
