// Package chart pulls a capo position and chord names out of pasted chord
// charts (tab sites, lyric sheets). It is a heuristic: lines that look like
// tablature, chord diagrams or instructions are dropped before chord-shaped
// tokens are collected from what remains.
package chart

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/himanishpuri/ChordBook/pkg/models"
)

// MaxCapo is the highest capo position accepted from text.
const MaxCapo = 7

var (
	capoPattern = regexp.MustCompile(`(?i)capo:?\s*(\d+)`)

	// chordPattern is anchored; the boundary after a token is checked by
	// hand since RE2 has no lookahead.
	chordPattern = regexp.MustCompile(`^[A-G](?:#|♯|b|♭)?(?:maj|min|dim|aug|m)?\d*(?:sus\d?)?(?:add\d+)?(?:/[A-G](?:#|♯|b|♭)?)?`)

	diagramXPattern = regexp.MustCompile(`[xX]-|-[xX]`)
)

var (
	instructionPrefixes = []string{"Play:", "Key:", "For ", "or use", "The ", "Capo:"}
	instructionMarkers  = []string{"Real Book", "fret", "---"}
	explanationMarkers  = []string{"(=", "as the root", `"`}
	tabStringMarkers    = []string{"e|", "B|", "G|", "D|", "A|", "E|"}

	blacklist = map[string]bool{"I": true, "Oh": true, "All": true}
)

// Parse extracts the capo and chord list from text. It never fails; text
// with nothing recognisable yields capo 0 and no chords.
func Parse(text string) models.Chart {
	return models.Chart{
		Capo:    Capo(text),
		Chords:  Chords(text),
		RawText: text,
	}
}

// Capo returns the first "capo N" mention in text, or 0 when there is none
// or N is outside 0..MaxCapo.
func Capo(text string) int {
	m := capoPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 0 || n > MaxCapo {
		return 0
	}
	return n
}

// Chords returns the distinct chord tokens of text in first-seen order.
func Chords(text string) []string {
	seen := make(map[string]bool)
	chords := []string{}
	for _, tok := range tokens(Filter(text)) {
		if seen[tok] || blacklist[tok] {
			continue
		}
		seen[tok] = true
		chords = append(chords, tok)
	}
	return chords
}

// Filter drops non-chord lines and joins the rest, each followed by a
// newline.
func Filter(text string) string {
	var b strings.Builder
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), len(text)+1)
	for sc.Scan() {
		line := sc.Text()
		if skipLine(line) {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func skipLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" ||
		isTablature(line) ||
		isChordDiagram(line) ||
		isInstruction(trimmed) ||
		isExplanation(line) ||
		isFingeringDiagram(line)
}

func isTablature(line string) bool {
	if !strings.Contains(line, "|") {
		return false
	}
	return strings.Contains(line, "---") || containsAny(line, tabStringMarkers)
}

func isChordDiagram(line string) bool {
	if strings.Contains(line, "E-A-D-G-B-e") || diagramXPattern.MatchString(line) {
		return true
	}
	return strings.ContainsAny(line, "xX") && strings.Contains(line, "-") && countDigits(line) > 3
}

func isInstruction(trimmed string) bool {
	for _, p := range instructionPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(trimmed), "transpose") || containsAny(trimmed, instructionMarkers)
}

func isExplanation(line string) bool {
	return containsAny(line, explanationMarkers)
}

func isFingeringDiagram(line string) bool {
	return strings.Contains(line, "-") && strings.Contains(line, "(") && countDigits(line) > 4
}

// tokens scans s for chord-shaped tokens. A token must not run straight
// into another letter, digit or accidental; a slash chord that does is
// retried without its bass note.
func tokens(s string) []string {
	var out []string
	for i := 0; i < len(s); {
		if tok, ok := tokenAt(s, i); ok {
			out = append(out, tok)
			i += len(tok)
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return out
}

func tokenAt(s string, i int) (string, bool) {
	m := chordPattern.FindString(s[i:])
	if m == "" {
		return "", false
	}
	if boundaryAfter(s, i+len(m)) {
		return m, true
	}
	if slash := strings.IndexByte(m, '/'); slash > 0 {
		return m[:slash], true
	}
	return "", false
}

func boundaryAfter(s string, end int) bool {
	if end >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[end:])
	switch r {
	case '#', '♯', '♭':
		return false
	}
	return !(r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r))
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
