// Package notation converts between chord notation strings and structured
// lookup requests.
//
// Two sigils are understood:
//
//	G#320033   explicit voicing: base name "G", fingerprint 320033
//	Am@7       transposition: base name "Am", moved to fret 7
//
// The voicing split is tried first on the first '#'. When the text after the
// '#' is not a valid fingerprint the whole input is kept as the base name, so
// sharp names such as "C#" and "F#m" still resolve.
package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/himanishpuri/ChordBook/pkg/models"
)

const (
	voicingSigil       = '#'
	transpositionSigil = '@'

	// MaxNameLength bounds user-entered chord names, in runes.
	MaxNameLength = 40
)

var (
	ErrEmptyName   = errors.New("chord name is empty")
	ErrNameTooLong = errors.New("chord name is too long")
	ErrInvalidName = errors.New("chord name contains control characters")
)

// Kind tags the form a notation string was written in.
type Kind int

const (
	Plain Kind = iota
	Voiced
	Transposed
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Voiced:
		return "voiced"
	case Transposed:
		return "transposed"
	default:
		return "unknown"
	}
}

// Request is a parsed notation string.
type Request struct {
	Kind     Kind
	Input    string // Trimmed original input
	BaseName string
	// Positions holds the decoded fingerprint when Kind is Voiced.
	Positions [models.StringCount]int
	// Target is the requested lowest fret when Kind is Transposed.
	Target int
}

// Parse splits a notation string into a Request. It never fails: anything
// that is neither a valid voicing nor a valid transposition is Plain.
func Parse(input string) Request {
	trimmed := strings.TrimSpace(input)

	if base, positions, ok := SplitVoicing(trimmed); ok {
		return Request{Kind: Voiced, Input: trimmed, BaseName: base, Positions: positions}
	}
	if base, target, ok := SplitTransposition(trimmed); ok {
		return Request{Kind: Transposed, Input: trimmed, BaseName: base, Target: target}
	}
	return Request{Kind: Plain, Input: trimmed, BaseName: trimmed}
}

// SplitVoicing splits s on its first '#'. ok is false when there is no '#'
// or the remainder is not a valid fingerprint.
func SplitVoicing(s string) (base string, positions [models.StringCount]int, ok bool) {
	idx := strings.IndexByte(s, voicingSigil)
	if idx < 0 {
		return s, positions, false
	}
	positions, ok = DecodeFingerprint(s[idx+1:])
	if !ok {
		return s, positions, false
	}
	return s[:idx], positions, true
}

// SplitTransposition splits s on its first '@'. ok is false when there is no
// '@' or the suffix is not an integer.
func SplitTransposition(s string) (base string, target int, ok bool) {
	idx := strings.IndexByte(s, transpositionSigil)
	if idx < 0 {
		return s, 0, false
	}
	target, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return s, 0, false
	}
	return s[:idx], target, true
}

// DecodeFingerprint parses a six character fingerprint such as "x32010".
// X or x mutes a string; a digit is a fret 0-9.
func DecodeFingerprint(fp string) ([models.StringCount]int, bool) {
	var positions [models.StringCount]int
	if len(fp) != models.StringCount {
		return positions, false
	}
	for i := 0; i < len(fp); i++ {
		switch c := fp[i]; {
		case c == 'X' || c == 'x':
			positions[i] = models.Muted
		case c >= '0' && c <= '9':
			positions[i] = int(c - '0')
		default:
			return positions, false
		}
	}
	return positions, true
}

// EncodeFingerprint is the inverse of DecodeFingerprint. Frets of 10 and above
// are written as their decimal digits, which DecodeFingerprint will reject.
func EncodeFingerprint(positions [models.StringCount]int) string {
	var b strings.Builder
	for _, p := range positions {
		if p == models.Muted {
			b.WriteByte('X')
			continue
		}
		b.WriteString(strconv.Itoa(p))
	}
	return b.String()
}

// Encodable reports whether positions survive an encode/decode round trip.
func Encodable(positions [models.StringCount]int) bool {
	for _, p := range positions {
		if p < models.Muted || p > 9 {
			return false
		}
	}
	return true
}

// VoicingNotation returns the name a caller should store to get f back from
// a resolver: the plain name for a default voicing, "name#fingerprint"
// otherwise. ok is false when the voicing cannot be written down.
func VoicingNotation(f models.Fingering) (string, bool) {
	if f.IsDefault {
		return f.Name, true
	}
	if strings.ContainsRune(f.Name, voicingSigil) || strings.ContainsRune(f.Name, transpositionSigil) {
		return "", false
	}
	if !Encodable(f.Positions) {
		return "", false
	}
	return f.Name + string(voicingSigil) + EncodeFingerprint(f.Positions), true
}

// ValidateChordName checks a user-entered chord name.
func ValidateChordName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(trimmed) > MaxNameLength {
		return ErrNameTooLong
	}
	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return ErrInvalidName
		}
	}
	return nil
}

// BaseName strips a parenthetical suffix: "G (Sweet Home)" becomes "G".
func BaseName(displayName string) string {
	trimmed := strings.TrimSpace(displayName)
	idx := strings.IndexByte(trimmed, '(')
	if idx <= 0 {
		return trimmed
	}
	if base := strings.TrimSpace(trimmed[:idx]); base != "" {
		return base
	}
	return trimmed
}

// ParsePositions reads positions written either as a fingerprint ("x32010")
// or as a comma-separated list ("-1,3,2,0,1,0" or "x,10,12,12,12,10"). The
// list form is the only way to write frets of 10 and above.
func ParsePositions(s string) ([models.StringCount]int, error) {
	var positions [models.StringCount]int
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ",") {
		p, ok := DecodeFingerprint(s)
		if !ok {
			return positions, fmt.Errorf("invalid fingerprint %q", s)
		}
		return p, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != models.StringCount {
		return positions, fmt.Errorf("expected %d positions, got %d", models.StringCount, len(parts))
	}
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "x" || part == "X" {
			positions[i] = models.Muted
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || !models.ValidPosition(n) {
			return positions, fmt.Errorf("invalid position %q for string %d", part, i+1)
		}
		positions[i] = n
	}
	return positions, nil
}
