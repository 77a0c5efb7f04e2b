package chordbook

import (
	"errors"
	"fmt"
	"strings"

	"github.com/himanishpuri/ChordBook/pkg/chordbook/storage"
	"github.com/himanishpuri/ChordBook/pkg/models"
)

// storageAdapter adapts the storage.DBClient to implement the Storage interface.
type storageAdapter struct {
	db  *storage.DBClient
	log Logger
}

// NewSQLiteStorage creates a new SQLite storage backend.
func NewSQLiteStorage(dbPath string, log Logger) (Storage, error) {
	db, err := storage.NewDBClientWithPath(dbPath)
	if err != nil {
		return nil, err
	}
	return &storageAdapter{db: db, log: log}, nil
}

func (s *storageAdapter) SaveCustomChord(c models.CustomChord) error {
	return s.db.SaveCustomChord(storage.CustomChord{
		ID:          c.ID,
		BaseName:    c.BaseName,
		DisplayName: c.DisplayName,
		Positions:   storage.EncodePositions(c.Positions[:]),
		Barre:       c.Barre,
		CreatedAt:   c.CreatedAt,
	})
}

func (s *storageAdapter) DeleteCustomChord(id string) error {
	err := s.db.DeleteCustomChord(id)
	if errors.Is(err, storage.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return err
}

// LoadCustomChords reads every stored chord. Rows that fail validation are
// logged and skipped; the rest still load.
func (s *storageAdapter) LoadCustomChords() ([]models.CustomChord, error) {
	rows, err := s.db.ListCustomChords()
	if err != nil {
		return nil, err
	}

	chords := make([]models.CustomChord, 0, len(rows))
	for _, row := range rows {
		c, err := chordFromRow(row)
		if err != nil {
			if s.log != nil {
				s.log.Warnf("Skipping malformed custom chord %s: %v", row.ID, err)
			}
			continue
		}
		chords = append(chords, c)
	}
	return chords, nil
}

func (s *storageAdapter) Close() error {
	return s.db.Close()
}

func chordFromRow(row storage.CustomChord) (models.CustomChord, error) {
	positions, err := storage.DecodePositions(row.Positions)
	if err != nil {
		return models.CustomChord{}, fmt.Errorf("%w: %v", ErrInvalidChord, err)
	}
	if len(positions) != models.StringCount {
		return models.CustomChord{}, fmt.Errorf("%w: %d positions", ErrInvalidChord, len(positions))
	}

	c := models.CustomChord{
		ID:          row.ID,
		BaseName:    row.BaseName,
		DisplayName: strings.TrimSpace(row.DisplayName),
		Barre:       row.Barre,
		CreatedAt:   row.CreatedAt,
	}
	copy(c.Positions[:], positions)
	if err := ValidateCustomChord(c); err != nil {
		return models.CustomChord{}, err
	}
	return c, nil
}
