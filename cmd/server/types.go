package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/himanishpuri/ChordBook/pkg/chordbook/notation"
	"github.com/himanishpuri/ChordBook/pkg/models"
)

// MaxChartBytes bounds the body of POST /api/chart
const MaxChartBytes = 1 << 20

// FingeringDTO represents one voicing in API responses
type FingeringDTO struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Positions   []int  `json:"positions"`
	Barre       int    `json:"barre,omitempty"`
	IsDefault   bool   `json:"is_default"`
	Fingerprint string `json:"fingerprint,omitempty"`
	Notation    string `json:"notation,omitempty"`
}

func toFingeringDTO(f models.Fingering, voicing string) FingeringDTO {
	dto := FingeringDTO{
		Name:      f.Name,
		Label:     f.Label(),
		Positions: f.Positions[:],
		Barre:     f.Barre,
		IsDefault: f.IsDefault,
		Notation:  voicing,
	}
	if notation.Encodable(f.Positions) {
		dto.Fingerprint = notation.EncodeFingerprint(f.Positions)
	}
	return dto
}

// PositionsInput is the shared way clients send a fingering: either a
// fingerprint string or six explicit positions.
type PositionsInput struct {
	Fingerprint string `json:"fingerprint,omitempty"`
	Positions   []int  `json:"positions,omitempty"`
}

// ToPositions validates the input and returns the six string positions
func (p PositionsInput) ToPositions() ([models.StringCount]int, error) {
	var positions [models.StringCount]int
	if p.Fingerprint != "" {
		if len(p.Positions) > 0 {
			return positions, fmt.Errorf("send either fingerprint or positions, not both")
		}
		return notation.ParsePositions(p.Fingerprint)
	}
	if len(p.Positions) != models.StringCount {
		return positions, fmt.Errorf("positions must have %d entries, got %d", models.StringCount, len(p.Positions))
	}
	for i, v := range p.Positions {
		if !models.ValidPosition(v) {
			return positions, fmt.Errorf("invalid position %d for string %d", v, i+1)
		}
		positions[i] = v
	}
	return positions, nil
}

// ChordNamesResponse is the response for GET /api/chords
type ChordNamesResponse struct {
	Names []string `json:"names"`
	Count int      `json:"count"`
}

// TransposeRequest is the request body for POST /api/transpose
type TransposeRequest struct {
	Notation string `json:"notation"`
	Fret     int    `json:"fret"`
}

// Validate checks if the request is valid
func (r *TransposeRequest) Validate() error {
	if strings.TrimSpace(r.Notation) == "" {
		return fmt.Errorf("notation is required")
	}
	if r.Fret < models.MinFret || r.Fret > models.MaxFret {
		return fmt.Errorf("fret must be between %d and %d", models.MinFret, models.MaxFret)
	}
	return nil
}

// TransposeResponse is the response for POST /api/transpose
type TransposeResponse struct {
	Original   FingeringDTO `json:"original"`
	Transposed FingeringDTO `json:"transposed"`
}

// MatchRequest is the request body for POST /api/match
type MatchRequest struct {
	PositionsInput
	Barre int `json:"barre,omitempty"`
}

// MatchResponse is the response for POST /api/match
type MatchResponse struct {
	Matches []FingeringDTO `json:"matches"`
	Count   int            `json:"count"`
}

// ChartRequest is the request body for POST /api/chart
type ChartRequest struct {
	Text string `json:"text"`
}

// ChartResponse is the response for POST /api/chart
type ChartResponse struct {
	Capo   int      `json:"capo"`
	Chords []string `json:"chords"`
	// Unknown lists extracted chords the library cannot resolve
	Unknown []string `json:"unknown"`
}

// CustomChordRequest is the request body for POST and PUT /api/custom-chords
type CustomChordRequest struct {
	DisplayName string `json:"display_name"`
	PositionsInput
	Barre int `json:"barre,omitempty"`
}

// Validate checks if the request is valid
func (r *CustomChordRequest) Validate() error {
	if strings.TrimSpace(r.DisplayName) == "" {
		return fmt.Errorf("display_name is required")
	}
	return nil
}

// CustomChordDTO represents a custom chord in API responses
type CustomChordDTO struct {
	ID          string    `json:"id"`
	BaseName    string    `json:"base_name"`
	DisplayName string    `json:"display_name"`
	Positions   []int     `json:"positions"`
	Barre       int       `json:"barre,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toCustomChordDTO(c models.CustomChord) CustomChordDTO {
	return CustomChordDTO{
		ID:          c.ID,
		BaseName:    c.BaseName,
		DisplayName: c.DisplayName,
		Positions:   c.Positions[:],
		Barre:       c.Barre,
		CreatedAt:   c.CreatedAt,
	}
}

// ListCustomChordsResponse is the response for GET /api/custom-chords
type ListCustomChordsResponse struct {
	Chords []CustomChordDTO `json:"chords"`
	Count  int              `json:"count"`
}

// DeleteCustomChordResponse is the response for DELETE /api/custom-chords/{id}
type DeleteCustomChordResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// MetricsResponse provides server health and library metrics
type MetricsResponse struct {
	Status           string `json:"status"`
	DatabasePath     string `json:"database_path,omitempty"`
	ChordNameCount   int    `json:"chord_name_count"`
	CustomChordCount int    `json:"custom_chord_count"`
}

// ErrorResponse is the standard error response format
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}
