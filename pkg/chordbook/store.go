package chordbook

import (
	"fmt"
	"strings"
	"sync"

	"github.com/himanishpuri/ChordBook/pkg/chordbook/notation"
	"github.com/himanishpuri/ChordBook/pkg/models"
)

// MemoryStore is a CustomChordStore backed by maps. Entries are stored and
// returned by value, so a reader sees a chord either before or after a
// mutation, never half of one. Display names are unique.
type MemoryStore struct {
	mu     sync.RWMutex
	byID   map[string]models.CustomChord
	byName map[string]string // display name -> id
	order  []string          // ids in insertion order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:   make(map[string]models.CustomChord),
		byName: make(map[string]string),
	}
}

// ValidateCustomChord checks the fields every stored chord must have.
func ValidateCustomChord(c models.CustomChord) error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidChord)
	}
	if err := notation.ValidateChordName(c.DisplayName); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidChord, err)
	}
	for i, p := range c.Positions {
		if !models.ValidPosition(p) {
			return fmt.Errorf("%w: string %d has position %d", ErrInvalidChord, i+1, p)
		}
	}
	if c.Barre != 0 && (c.Barre < models.MinFret || c.Barre > models.MaxFret) {
		return fmt.Errorf("%w: barre %d", ErrInvalidChord, c.Barre)
	}
	return nil
}

func (s *MemoryStore) FindByDisplayName(name string) (models.CustomChord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byName[name]
	if !ok {
		return models.CustomChord{}, false
	}
	return s.byID[id], true
}

func (s *MemoryStore) Get(id string) (models.CustomChord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byID[id]
	return c, ok
}

// List returns all chords in insertion order.
func (s *MemoryStore) List() []models.CustomChord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CustomChord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

func (s *MemoryStore) Add(c models.CustomChord) error {
	c.DisplayName = strings.TrimSpace(c.DisplayName)
	if err := ValidateCustomChord(c); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[c.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, c.ID)
	}
	if _, taken := s.byName[c.DisplayName]; taken {
		return fmt.Errorf("%w: %q", ErrDuplicateName, c.DisplayName)
	}
	s.byID[c.ID] = c
	s.byName[c.DisplayName] = c.ID
	s.order = append(s.order, c.ID)
	return nil
}

// Update replaces the chord with c.ID. CreatedAt is kept from the stored
// chord.
func (s *MemoryStore) Update(c models.CustomChord) error {
	c.DisplayName = strings.TrimSpace(c.DisplayName)
	if err := ValidateCustomChord(c); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.byID[c.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, c.ID)
	}
	if owner, taken := s.byName[c.DisplayName]; taken && owner != c.ID {
		return fmt.Errorf("%w: %q", ErrDuplicateName, c.DisplayName)
	}
	c.CreatedAt = prev.CreatedAt
	delete(s.byName, prev.DisplayName)
	s.byID[c.ID] = c
	s.byName[c.DisplayName] = c.ID
	return nil
}

func (s *MemoryStore) Delete(id string) (models.CustomChord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[id]
	if !ok {
		return models.CustomChord{}, false
	}
	delete(s.byID, id)
	delete(s.byName, c.DisplayName)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return c, true
}
