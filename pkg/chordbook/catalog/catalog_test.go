package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/himanishpuri/ChordBook/pkg/models"
)

func TestBuiltinTableIsWellFormed(t *testing.T) {
	c := Builtin()
	require.Greater(t, c.Len(), 200)

	for _, e := range c.All() {
		assert.NotEmpty(t, e.Name)
		for _, p := range e.Positions {
			assert.True(t, models.ValidPosition(p), "%s has invalid position %d", e.Name, p)
		}
		if e.Barre != 0 {
			assert.True(t, e.Barre >= models.MinFret && e.Barre <= models.MaxFret, "%s barre %d", e.Name, e.Barre)
		}
	}

	for _, name := range c.Names() {
		defaults := 0
		for _, v := range c.Voicings(name) {
			if v.IsDefault {
				defaults++
			}
		}
		assert.Equal(t, 1, defaults, "%s should have exactly one default voicing", name)
	}
}

func TestExactPrefersDefault(t *testing.T) {
	c := Builtin()

	g, ok := c.Exact("G")
	require.True(t, ok)
	assert.True(t, g.IsDefault)
	assert.Equal(t, [6]int{3, 2, 0, 0, 0, 3}, g.Positions)

	f, ok := c.Exact("F")
	require.True(t, ok)
	assert.Equal(t, [6]int{1, 3, 3, 2, 1, 1}, f.Positions)
	assert.Equal(t, 1, f.Barre)

	_, ok = c.Exact("H")
	assert.False(t, ok)
}

func TestExactWithoutDefaultTakesFirst(t *testing.T) {
	c := New([]models.Fingering{
		{Name: "X", Positions: [6]int{1, 1, 1, 1, 1, 1}},
		{Name: "X", Positions: [6]int{2, 2, 2, 2, 2, 2}},
	})
	f, ok := c.Exact("X")
	require.True(t, ok)
	assert.Equal(t, [6]int{1, 1, 1, 1, 1, 1}, f.Positions)
}

func TestLookupVariations(t *testing.T) {
	c := Builtin()
	tests := []struct {
		input string
		want  string
	}{
		{"Am", "Am"},
		{"Amin", "Am"},
		{"A Minor", "Am"},
		{"Aminor", "Am"},
		{"C Major", "C"},
		{"Cmajor", "C"},
		{"Cmaj", "C"},
		{"Bb", "A#"},
		{"Bbm", "A#m"},
		{"Ebmin", "D#m"},
		{"F♯m", "F#m"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, ok := c.Lookup(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.want, f.Name)
			assert.True(t, f.IsDefault)
		})
	}

	_, ok := c.Lookup("Csus")
	assert.False(t, ok)
	_, ok = c.Lookup("")
	assert.False(t, ok)
}

func TestVariationsHaveNoDuplicates(t *testing.T) {
	vs := Variations("Bbmin")
	seen := map[string]bool{}
	for _, v := range vs {
		assert.False(t, seen[v], "duplicate variation %q", v)
		assert.NotEqual(t, "Bbmin", v)
		seen[v] = true
	}
	assert.Contains(t, vs, "Bbm")
	assert.Contains(t, vs, "A#m")
}

func TestFindVoicing(t *testing.T) {
	c := Builtin()

	f, ok := c.FindVoicing("G", [6]int{3, 2, 0, 0, 3, 3})
	require.True(t, ok)
	assert.False(t, f.IsDefault)

	_, ok = c.FindVoicing("C", [6]int{3, 2, 0, 0, 3, 3})
	assert.False(t, ok)
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := Builtin()
	all := c.All()
	all[0].Name = "mutated"
	names := c.Names()
	names[0] = "mutated"

	assert.Equal(t, "C", c.All()[0].Name)
	assert.Equal(t, "C", c.Names()[0])
}
