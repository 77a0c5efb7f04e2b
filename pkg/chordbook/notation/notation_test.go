package notation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/himanishpuri/ChordBook/pkg/models"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input     string
		kind      Kind
		base      string
		positions [6]int
		target    int
	}{
		{input: "G", kind: Plain, base: "G"},
		{input: "  Am7 ", kind: Plain, base: "Am7"},
		{input: "G#320033", kind: Voiced, base: "G", positions: [6]int{3, 2, 0, 0, 3, 3}},
		{input: "Am#x02210", kind: Voiced, base: "Am", positions: [6]int{-1, 0, 2, 2, 1, 0}},
		{input: "C#320033", kind: Voiced, base: "C", positions: [6]int{3, 2, 0, 0, 3, 3}},
		{input: "C#", kind: Plain, base: "C#"},
		{input: "F#m", kind: Plain, base: "F#m"},
		{input: "G#3200", kind: Plain, base: "G#3200"},
		{input: "Am@7", kind: Transposed, base: "Am", target: 7},
		{input: "F#@4", kind: Transposed, base: "F#", target: 4},
		{input: "Am@seven", kind: Plain, base: "Am@seven"},
		{input: "Am@", kind: Plain, base: "Am@"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			req := Parse(tt.input)
			assert.Equal(t, tt.kind, req.Kind)
			assert.Equal(t, tt.base, req.BaseName)
			assert.Equal(t, strings.TrimSpace(tt.input), req.Input)
			if tt.kind == Voiced {
				assert.Equal(t, tt.positions, req.Positions)
			}
			if tt.kind == Transposed {
				assert.Equal(t, tt.target, req.Target)
			}
		})
	}
}

func TestDecodeFingerprint(t *testing.T) {
	positions, ok := DecodeFingerprint("X32010")
	require.True(t, ok)
	assert.Equal(t, [6]int{-1, 3, 2, 0, 1, 0}, positions)

	for _, bad := range []string{"", "32010", "3201000", "3201a0", "32-010", "３2010"} {
		_, ok := DecodeFingerprint(bad)
		assert.False(t, ok, "fingerprint %q should be rejected", bad)
	}
}

func TestFingerprintRoundTrip(t *testing.T) {
	shapes := [][6]int{
		{3, 2, 0, 0, 0, 3},
		{-1, 0, 2, 2, 1, 0},
		{-1, -1, -1, -1, -1, -1},
		{1, 3, 3, 2, 1, 1},
		{9, 9, 9, 9, 9, 9},
	}
	for _, shape := range shapes {
		fp := EncodeFingerprint(shape)
		require.Len(t, fp, 6)
		decoded, ok := DecodeFingerprint(fp)
		require.True(t, ok, "round trip of %v", shape)
		assert.Equal(t, shape, decoded)
	}
}

func TestEncodeFingerprintHighFrets(t *testing.T) {
	shape := [6]int{10, 12, 12, 11, 10, 10}
	assert.Equal(t, "101212111010", EncodeFingerprint(shape))
	assert.False(t, Encodable(shape))

	_, ok := DecodeFingerprint(EncodeFingerprint(shape))
	assert.False(t, ok)
}

func TestVoicingNotation(t *testing.T) {
	def := models.Fingering{Name: "G", Positions: [6]int{3, 2, 0, 0, 0, 3}, IsDefault: true}
	name, ok := VoicingNotation(def)
	require.True(t, ok)
	assert.Equal(t, "G", name)

	alt := models.Fingering{Name: "G", Positions: [6]int{3, 2, 0, 0, 3, 3}}
	name, ok = VoicingNotation(alt)
	require.True(t, ok)
	assert.Equal(t, "G#320033", name)
	assert.Equal(t, Voiced, Parse(name).Kind)

	_, ok = VoicingNotation(models.Fingering{Name: "C#", Positions: [6]int{-1, 4, 6, 6, 6, 4}})
	assert.False(t, ok)

	_, ok = VoicingNotation(models.Fingering{Name: "D", Positions: [6]int{10, 12, 12, 11, 10, 10}})
	assert.False(t, ok)
}

func TestValidateChordName(t *testing.T) {
	assert.NoError(t, ValidateChordName("G (Sweet Home)"))
	assert.ErrorIs(t, ValidateChordName("   "), ErrEmptyName)
	assert.ErrorIs(t, ValidateChordName(strings.Repeat("A", MaxNameLength+1)), ErrNameTooLong)
	assert.ErrorIs(t, ValidateChordName("G\tmajor"), ErrInvalidName)
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "G", BaseName("G (Sweet Home)"))
	assert.Equal(t, "Am7", BaseName("  Am7  "))
	assert.Equal(t, "(weird)", BaseName("(weird)"))
	assert.Equal(t, "Dsus2", BaseName("Dsus2(open)"))
}

func TestParsePositions(t *testing.T) {
	tests := []struct {
		in   string
		want [6]int
	}{
		{"x32010", [6]int{-1, 3, 2, 0, 1, 0}},
		{"-1,3,2,0,1,0", [6]int{-1, 3, 2, 0, 1, 0}},
		{"x, 10, 12, 12, 12, 10", [6]int{-1, 10, 12, 12, 12, 10}},
	}
	for _, tt := range tests {
		got, err := ParsePositions(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"", "x3201", "1,2,3", "1,2,3,4,5,16", "1,2,3,4,5,-2", "a,b,c,d,e,f"} {
		_, err := ParsePositions(bad)
		assert.Error(t, err, bad)
	}
}
