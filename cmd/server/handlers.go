package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/himanishpuri/ChordBook/pkg/chordbook"
	"github.com/himanishpuri/ChordBook/pkg/logger"
	"github.com/himanishpuri/ChordBook/pkg/models"
)

// Server encapsulates the HTTP server and its dependencies
type Server struct {
	service chordbook.Service
	config  *ServerConfig
	log     chordbook.Logger
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	DBPath         string
	AllowedOrigins []string
}

// NewServer creates a new server instance
func NewServer(service chordbook.Service, config *ServerConfig) *Server {
	return &Server{
		service: service,
		config:  config,
		log:     logger.GetLogger(),
	}
}

// respondJSON writes a JSON response
func (s *Server) respondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Errorf("Failed to encode JSON response: %v", err)
	}
}

// respondError writes an error response
func (s *Server) respondError(w http.ResponseWriter, statusCode int, message string) {
	s.respondJSON(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	})
}

// decodeJSON reads a JSON request body, rejecting unknown fields
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// voicing returns the notation that resolves back to f, or "" when none exists
func (s *Server) voicing(f models.Fingering) string {
	name, ok := s.service.VoicingNotation(f)
	if !ok {
		return ""
	}
	return name
}

// handleRoot handles GET /
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"service": "ChordBook API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health":            "GET /health",
			"metrics":           "GET /api/health/metrics",
			"chordNames":        "GET /api/chords",
			"resolve":           "GET /api/chords/{notation}",
			"transpose":         "POST /api/transpose",
			"match":             "POST /api/match",
			"chart":             "POST /api/chart",
			"listCustomChords":  "GET /api/custom-chords",
			"addCustomChord":    "POST /api/custom-chords",
			"updateCustomChord": "PUT /api/custom-chords/{id}",
			"deleteCustomChord": "DELETE /api/custom-chords/{id}",
		},
	})
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleMetrics handles GET /api/health/metrics
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, MetricsResponse{
		Status:           "healthy",
		DatabasePath:     s.config.DBPath,
		ChordNameCount:   len(s.service.ChordNames()),
		CustomChordCount: len(s.service.ListCustomChords()),
	})
}

// handleChordNames handles GET /api/chords
func (s *Server) handleChordNames(w http.ResponseWriter, r *http.Request) {
	names := s.service.ChordNames()
	s.respondJSON(w, http.StatusOK, ChordNamesResponse{
		Names: names,
		Count: len(names),
	})
}

// handleResolve handles GET /api/chords/{notation}. The "#" of a voicing
// must be sent percent-encoded as %23.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request, input string) {
	f, ok := s.service.Resolve(input)
	if !ok {
		s.respondError(w, http.StatusNotFound, fmt.Sprintf("Chord %q not found", input))
		return
	}
	s.respondJSON(w, http.StatusOK, toFingeringDTO(f, s.voicing(f)))
}

// handleTranspose handles POST /api/transpose
func (s *Server) handleTranspose(w http.ResponseWriter, r *http.Request) {
	var req TransposeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.log.Warnf("Failed to decode request: %v", err)
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	f, ok := s.service.Resolve(req.Notation)
	if !ok {
		s.respondError(w, http.StatusNotFound, fmt.Sprintf("Chord %q not found", req.Notation))
		return
	}

	moved, ok := s.service.Transpose(f, req.Fret)
	if !ok {
		s.respondError(w, http.StatusUnprocessableEntity, fmt.Sprintf("%s cannot be moved to fret %d", f.Label(), req.Fret))
		return
	}

	s.respondJSON(w, http.StatusOK, TransposeResponse{
		Original:   toFingeringDTO(f, s.voicing(f)),
		Transposed: toFingeringDTO(moved, s.voicing(moved)),
	})
}

// handleMatch handles POST /api/match
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := decodeJSON(r, &req); err != nil {
		s.log.Warnf("Failed to decode request: %v", err)
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	positions, err := req.ToPositions()
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	matches := s.service.FindMatches(positions, req.Barre)
	dtos := make([]FingeringDTO, len(matches))
	for i, m := range matches {
		dtos[i] = toFingeringDTO(m.Fingering, s.voicing(m.Fingering))
	}

	s.log.Debugf("Match complete: found %d matches", len(dtos))
	s.respondJSON(w, http.StatusOK, MatchResponse{
		Matches: dtos,
		Count:   len(dtos),
	})
}

// handleChart handles POST /api/chart. Both a JSON body {"text": ...} and a
// raw text/plain body are accepted.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxChartBytes+1))
	if err != nil {
		s.log.Errorf("Failed to read chart body: %v", err)
		s.respondError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if len(body) > MaxChartBytes {
		s.respondError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("chart exceeds %d bytes", MaxChartBytes))
		return
	}

	text := string(body)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req ChartRequest
		if err := json.Unmarshal(body, &req); err != nil {
			s.respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		text = req.Text
	}

	chart := s.service.ParseChart(text)
	unknown := []string{}
	for _, name := range chart.Chords {
		if _, ok := s.service.Resolve(name); !ok {
			unknown = append(unknown, name)
		}
	}

	s.respondJSON(w, http.StatusOK, ChartResponse{
		Capo:    chart.Capo,
		Chords:  chart.Chords,
		Unknown: unknown,
	})
}

// handleListCustomChords handles GET /api/custom-chords
func (s *Server) handleListCustomChords(w http.ResponseWriter, r *http.Request) {
	chords := s.service.ListCustomChords()
	dtos := make([]CustomChordDTO, len(chords))
	for i, c := range chords {
		dtos[i] = toCustomChordDTO(c)
	}
	s.respondJSON(w, http.StatusOK, ListCustomChordsResponse{
		Chords: dtos,
		Count:  len(dtos),
	})
}

// handleAddCustomChord handles POST /api/custom-chords
func (s *Server) handleAddCustomChord(w http.ResponseWriter, r *http.Request) {
	req, positions, ok := s.readCustomChordRequest(w, r)
	if !ok {
		return
	}

	c, err := s.service.SaveCustomChord(req.DisplayName, positions, req.Barre)
	if err != nil {
		s.respondStoreError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, toCustomChordDTO(c))
}

// handleUpdateCustomChord handles PUT /api/custom-chords/{id}
func (s *Server) handleUpdateCustomChord(w http.ResponseWriter, r *http.Request, id string) {
	req, positions, ok := s.readCustomChordRequest(w, r)
	if !ok {
		return
	}

	c, err := s.service.UpdateCustomChord(models.CustomChord{
		ID:          id,
		DisplayName: req.DisplayName,
		Positions:   positions,
		Barre:       req.Barre,
	})
	if err != nil {
		s.respondStoreError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, toCustomChordDTO(c))
}

// handleDeleteCustomChord handles DELETE /api/custom-chords/{id}
func (s *Server) handleDeleteCustomChord(w http.ResponseWriter, r *http.Request, id string) {
	removed, err := s.service.DeleteCustomChord(id)
	if err != nil {
		s.respondStoreError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, DeleteCustomChordResponse{
		Message: fmt.Sprintf("Custom chord %s deleted successfully", removed.DisplayName),
		ID:      removed.ID,
	})
}

func (s *Server) readCustomChordRequest(w http.ResponseWriter, r *http.Request) (CustomChordRequest, [models.StringCount]int, bool) {
	var req CustomChordRequest
	var positions [models.StringCount]int
	if err := decodeJSON(r, &req); err != nil {
		s.log.Warnf("Failed to decode request: %v", err)
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return req, positions, false
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return req, positions, false
	}
	positions, err := req.ToPositions()
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return req, positions, false
	}
	return req, positions, true
}

// respondStoreError maps custom chord errors to status codes
func (s *Server) respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chordbook.ErrNotFound):
		s.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, chordbook.ErrDuplicateName), errors.Is(err, chordbook.ErrDuplicateID):
		s.respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, chordbook.ErrInvalidChord):
		s.respondError(w, http.StatusBadRequest, err.Error())
	default:
		s.log.Errorf("Custom chord operation failed: %v", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to update custom chords")
	}
}

// handleChords routes requests to /api/chords
func (s *Server) handleChords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.handleChordNames(w, r)
}

// handleChord routes requests to /api/chords/{notation}
func (s *Server) handleChord(w http.ResponseWriter, r *http.Request) {
	input := strings.TrimPrefix(r.URL.Path, "/api/chords/")
	if input == "" {
		s.respondError(w, http.StatusBadRequest, "Chord notation required")
		return
	}
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.handleResolve(w, r, input)
}

// handleCustomChords routes requests to /api/custom-chords
func (s *Server) handleCustomChords(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListCustomChords(w, r)
	case http.MethodPost:
		s.handleAddCustomChord(w, r)
	default:
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// handleCustomChord routes requests to /api/custom-chords/{id}
func (s *Server) handleCustomChord(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/custom-chords/")
	if id == "" || strings.Contains(id, "/") {
		s.respondError(w, http.StatusBadRequest, "Custom chord ID required")
		return
	}

	switch r.Method {
	case http.MethodPut:
		s.handleUpdateCustomChord(w, r, id)
	case http.MethodDelete:
		s.handleDeleteCustomChord(w, r, id)
	default:
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// postOnly wraps a handler that only accepts POST
func (s *Server) postOnly(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h(w, r)
	}
}
