package chordbook

import (
	"github.com/himanishpuri/ChordBook/pkg/models"
)

type Service interface {
	Resolve(notation string) (models.Fingering, bool)
	Transpose(f models.Fingering, targetFret int) (models.Fingering, bool)
	CanTranspose(f models.Fingering) bool
	FindMatches(positions [models.StringCount]int, barreHint int) []models.Match
	ParseChart(text string) models.Chart
	VoicingNotation(f models.Fingering) (string, bool)
	ChordNames() []string
	SaveCustomChord(displayName string, positions [models.StringCount]int, barre int) (models.CustomChord, error)
	UpdateCustomChord(chord models.CustomChord) (models.CustomChord, error)
	DeleteCustomChord(id string) (models.CustomChord, error)
	ListCustomChords() []models.CustomChord
	Close() error
}

// CustomChordStore is the in-memory view of user-defined chords consulted
// by every lookup. Implementations must be safe for concurrent use.
type CustomChordStore interface {
	FindByDisplayName(name string) (models.CustomChord, bool)
	Get(id string) (models.CustomChord, bool)
	List() []models.CustomChord
	Add(chord models.CustomChord) error
	Update(chord models.CustomChord) error
	Delete(id string) (models.CustomChord, bool)
}

// Storage persists custom chords between runs.
type Storage interface {
	SaveCustomChord(chord models.CustomChord) error
	DeleteCustomChord(id string) error
	LoadCustomChords() ([]models.CustomChord, error)
	Close() error
}

type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Debugf(format string, args ...any)
}
