// Package match identifies chords from finger positions.
package match

import (
	"sort"

	"github.com/himanishpuri/ChordBook/pkg/models"
)

// Source is anything that can list chord fingerings to match against.
type Source interface {
	All() []models.Fingering
}

// FindMatches returns every entry of src whose positions equal positions
// exactly. Entries whose barre equals barreHint sort first; within each
// group entries sort by name. A barreHint of 0 means no hint. An empty
// result is a normal outcome.
func FindMatches(src Source, positions [models.StringCount]int, barreHint int) []models.Match {
	var matches []models.Match
	for _, f := range src.All() {
		if f.Positions == positions {
			matches = append(matches, models.Match{Name: f.Name, Fingering: f})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if barreHint > 0 {
			bi := matches[i].Fingering.Barre == barreHint
			bj := matches[j].Fingering.Barre == barreHint
			if bi != bj {
				return bi
			}
		}
		return matches[i].Name < matches[j].Name
	})
	return matches
}
