package chordbook

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/himanishpuri/ChordBook/pkg/chordbook/catalog"
	"github.com/himanishpuri/ChordBook/pkg/chordbook/chart"
	"github.com/himanishpuri/ChordBook/pkg/chordbook/match"
	"github.com/himanishpuri/ChordBook/pkg/chordbook/notation"
	"github.com/himanishpuri/ChordBook/pkg/chordbook/transpose"
	"github.com/himanishpuri/ChordBook/pkg/logger"
	"github.com/himanishpuri/ChordBook/pkg/models"
	"github.com/himanishpuri/ChordBook/pkg/utils"
)

type resolution struct {
	fingering models.Fingering
	ok        bool
}

// chordService is the default implementation of the Service interface.
type chordService struct {
	// mu orders custom-chord mutations against resolutions so the cache
	// never keeps a result computed from a store that has since changed.
	mu       sync.RWMutex
	catalog  *catalog.Catalog
	customs  *MemoryStore
	resolver *Resolver
	storage  Storage
	cache    *lru.Cache[string, resolution]
	log      Logger
	now      func() time.Time
}

func NewService(opts ...Option) (Service, error) {
	return newChordService(opts...)
}

func newChordService(opts ...Option) (*chordService, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		cfg.Logger = logger.GetLogger()
	}
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.Builtin()
	}

	var stor Storage
	var err error
	switch {
	case cfg.Storage != nil:
		stor = cfg.Storage
	case !cfg.MemoryOnly:
		stor, err = NewSQLiteStorage(cfg.DBPath, cfg.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage: %w", err)
		}
	}

	var cache *lru.Cache[string, resolution]
	if cfg.CacheSize > 0 {
		cache, err = lru.New[string, resolution](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create resolution cache: %w", err)
		}
	}

	customs := NewMemoryStore()
	s := &chordService{
		catalog:  cfg.Catalog,
		customs:  customs,
		resolver: NewResolver(cfg.Catalog, customs),
		storage:  stor,
		cache:    cache,
		log:      cfg.Logger,
		now:      time.Now,
	}

	if err := s.loadCustomChords(); err != nil {
		if stor != nil {
			stor.Close()
		}
		return nil, err
	}
	return s, nil
}

func (s *chordService) loadCustomChords() error {
	if s.storage == nil {
		return nil
	}
	chords, err := s.storage.LoadCustomChords()
	if err != nil {
		return fmt.Errorf("failed to load custom chords: %w", err)
	}
	for _, c := range chords {
		if err := s.customs.Add(c); err != nil {
			s.log.Warnf("Skipping custom chord %s (%q): %v", c.ID, c.DisplayName, err)
		}
	}
	s.log.Infof("Loaded %d custom chords, %d catalog entries", s.customs.Len(), s.catalog.Len())
	return nil
}

// Resolve returns the fingering for a notation string such as "G",
// "G#320033" or "Am@7".
func (s *chordService) Resolve(input string) (models.Fingering, bool) {
	key := strings.TrimSpace(input)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cache != nil {
		if r, ok := s.cache.Get(key); ok {
			return r.fingering, r.ok
		}
	}

	f, ok := s.resolver.Resolve(key)
	if !ok {
		s.log.Debugf("No chord found for %q", key)
	}
	if s.cache != nil {
		s.cache.Add(key, resolution{fingering: f, ok: ok})
	}
	return f, ok
}

func (s *chordService) Transpose(f models.Fingering, targetFret int) (models.Fingering, bool) {
	return transpose.Transpose(f, targetFret)
}

func (s *chordService) CanTranspose(f models.Fingering) bool {
	return transpose.CanTranspose(f)
}

// FindMatches identifies catalog chords played with exactly these positions.
func (s *chordService) FindMatches(positions [models.StringCount]int, barreHint int) []models.Match {
	return match.FindMatches(s.catalog, positions, barreHint)
}

func (s *chordService) ParseChart(text string) models.Chart {
	return chart.Parse(text)
}

// VoicingNotation returns the string that resolves back to f. Custom chords
// are named by their display name.
func (s *chordService) VoicingNotation(f models.Fingering) (string, bool) {
	if c, ok := s.customs.FindByDisplayName(f.Name); ok && c.Positions == f.Positions {
		return c.DisplayName, true
	}
	return notation.VoicingNotation(f)
}

func (s *chordService) ChordNames() []string {
	return s.catalog.Names()
}

// SaveCustomChord creates a custom chord under a new id.
func (s *chordService) SaveCustomChord(displayName string, positions [models.StringCount]int, barre int) (models.CustomChord, error) {
	c := models.CustomChord{
		ID:          utils.NewChordID(),
		BaseName:    notation.BaseName(displayName),
		DisplayName: strings.TrimSpace(displayName),
		Positions:   positions,
		Barre:       barre,
		CreatedAt:   s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.customs.Add(c); err != nil {
		return models.CustomChord{}, err
	}
	if s.storage != nil {
		if err := s.storage.SaveCustomChord(c); err != nil {
			s.customs.Delete(c.ID) // Rollback
			return models.CustomChord{}, fmt.Errorf("failed to persist custom chord: %w", err)
		}
	}
	s.purgeCache()

	s.log.Infof("Saved custom chord %q (id=%s)", c.DisplayName, c.ID)
	return c, nil
}

// UpdateCustomChord replaces the fields of an existing custom chord. The
// base name is re-derived and the creation time kept.
func (s *chordService) UpdateCustomChord(c models.CustomChord) (models.CustomChord, error) {
	c.DisplayName = strings.TrimSpace(c.DisplayName)
	c.BaseName = notation.BaseName(c.DisplayName)

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.customs.Get(c.ID)
	if !ok {
		return models.CustomChord{}, fmt.Errorf("%w: %s", ErrNotFound, c.ID)
	}
	if err := s.customs.Update(c); err != nil {
		return models.CustomChord{}, err
	}
	updated, _ := s.customs.Get(c.ID)
	if s.storage != nil {
		if err := s.storage.SaveCustomChord(updated); err != nil {
			if rbErr := s.customs.Update(prev); rbErr != nil {
				s.log.Errorf("Rollback of custom chord %s failed: %v", c.ID, rbErr)
			}
			return models.CustomChord{}, fmt.Errorf("failed to persist custom chord: %w", err)
		}
	}
	s.purgeCache()

	s.log.Infof("Updated custom chord %q (id=%s)", updated.DisplayName, updated.ID)
	return updated, nil
}

// DeleteCustomChord removes a custom chord. Songs that refer to it by name
// fall back to the catalog on their next lookup.
func (s *chordService) DeleteCustomChord(id string) (models.CustomChord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, ok := s.customs.Delete(id)
	if !ok {
		return models.CustomChord{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if s.storage != nil {
		if err := s.storage.DeleteCustomChord(id); err != nil && !errors.Is(err, ErrNotFound) {
			if rbErr := s.customs.Add(removed); rbErr != nil {
				s.log.Errorf("Rollback of custom chord %s failed: %v", id, rbErr)
			}
			return models.CustomChord{}, fmt.Errorf("failed to delete custom chord: %w", err)
		}
	}
	s.purgeCache()

	s.log.Infof("Deleted custom chord %q (id=%s)", removed.DisplayName, removed.ID)
	return removed, nil
}

func (s *chordService) ListCustomChords() []models.CustomChord {
	return s.customs.List()
}

// Close releases all resources held by the service.
func (s *chordService) Close() error {
	if s.storage == nil {
		return nil
	}
	return s.storage.Close()
}

func (s *chordService) purgeCache() {
	if s.cache != nil {
		s.cache.Purge()
	}
}
