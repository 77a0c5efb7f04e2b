package chordbook

import (
	"github.com/himanishpuri/ChordBook/pkg/chordbook/catalog"
	"github.com/himanishpuri/ChordBook/pkg/chordbook/notation"
	"github.com/himanishpuri/ChordBook/pkg/chordbook/transpose"
	"github.com/himanishpuri/ChordBook/pkg/models"
)

// Resolver turns notation strings into fingerings. Custom chords win over
// the catalog at every step.
type Resolver struct {
	catalog *catalog.Catalog
	customs CustomChordStore
}

func NewResolver(cat *catalog.Catalog, customs CustomChordStore) *Resolver {
	return &Resolver{catalog: cat, customs: customs}
}

// Resolve handles plain names ("G"), explicit voicings ("G#320033") and
// transpositions ("Am@7"). ok is false when nothing matches or the
// transposition is impossible.
func (r *Resolver) Resolve(input string) (models.Fingering, bool) {
	req := notation.Parse(input)

	// A custom chord may legitimately be named "Riff #2" or "Am@home".
	if c, ok := r.customs.FindByDisplayName(req.Input); ok {
		return c.Fingering(), true
	}

	switch req.Kind {
	case notation.Voiced:
		return r.catalog.FindVoicing(req.BaseName, req.Positions)
	case notation.Transposed:
		src, ok := r.LookupBase(req.BaseName)
		if !ok {
			return models.Fingering{}, false
		}
		return transpose.Transpose(src, req.Target)
	default:
		return r.LookupBase(req.BaseName)
	}
}

// LookupBase resolves a bare chord name: custom chords by display name,
// then the catalog with its name variations.
func (r *Resolver) LookupBase(name string) (models.Fingering, bool) {
	if c, ok := r.customs.FindByDisplayName(name); ok {
		return c.Fingering(), true
	}
	return r.catalog.Lookup(name)
}
