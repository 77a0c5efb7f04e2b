package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/himanishpuri/ChordBook/pkg/chordbook"
	"github.com/himanishpuri/ChordBook/pkg/logger"
)

func setupTestServer(t *testing.T, origins ...string) http.Handler {
	t.Helper()

	quiet := logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard})
	service, err := chordbook.NewService(chordbook.WithMemoryOnly(), chordbook.WithLogger(quiet))
	require.NoError(t, err)
	t.Cleanup(func() { service.Close() })

	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s := &Server{
		service: service,
		config:  &ServerConfig{Port: 0, AllowedOrigins: origins},
		log:     quiet,
	}
	return s.setupRoutes()
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	h := setupTestServer(t)

	rec := doRequest(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	rec = doRequest(t, h, http.MethodGet, "/api/health/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	metrics := decodeBody[MetricsResponse](t, rec)
	assert.Positive(t, metrics.ChordNameCount)
	assert.Zero(t, metrics.CustomChordCount)
}

func TestResolveEndpoint(t *testing.T) {
	h := setupTestServer(t)

	rec := doRequest(t, h, http.MethodGet, "/api/chords/G", "")
	require.Equal(t, http.StatusOK, rec.Code)
	g := decodeBody[FingeringDTO](t, rec)
	assert.Equal(t, "G", g.Name)
	assert.Equal(t, []int{3, 2, 0, 0, 0, 3}, g.Positions)
	assert.True(t, g.IsDefault)
	assert.Equal(t, "320003", g.Fingerprint)
	assert.Equal(t, "G", g.Notation)

	rec = doRequest(t, h, http.MethodGet, "/api/chords/G%23320033", "")
	require.Equal(t, http.StatusOK, rec.Code)
	alt := decodeBody[FingeringDTO](t, rec)
	assert.Equal(t, []int{3, 2, 0, 0, 3, 3}, alt.Positions)
	assert.Equal(t, "G#320033", alt.Notation)

	rec = doRequest(t, h, http.MethodGet, "/api/chords/F@5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	moved := decodeBody[FingeringDTO](t, rec)
	assert.Equal(t, []int{5, 7, 7, 6, 5, 5}, moved.Positions)
	assert.Equal(t, 5, moved.Barre)

	rec = doRequest(t, h, http.MethodGet, "/api/chords/Hm7", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	errResp := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, http.StatusNotFound, errResp.Code)

	rec = doRequest(t, h, http.MethodPost, "/api/chords/G", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestChordNamesEndpoint(t *testing.T) {
	h := setupTestServer(t)

	rec := doRequest(t, h, http.MethodGet, "/api/chords", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[ChordNamesResponse](t, rec)
	assert.Equal(t, len(resp.Names), resp.Count)
	assert.Contains(t, resp.Names, "C")
	assert.Contains(t, resp.Names, "Am")
}

func TestTransposeEndpoint(t *testing.T) {
	h := setupTestServer(t)

	rec := doRequest(t, h, http.MethodPost, "/api/transpose", `{"notation":"F","fret":3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[TransposeResponse](t, rec)
	assert.Equal(t, []int{1, 3, 3, 2, 1, 1}, resp.Original.Positions)
	assert.Equal(t, []int{3, 5, 5, 4, 3, 3}, resp.Transposed.Positions)
	assert.Equal(t, 3, resp.Transposed.Barre)

	// Open strings cannot move
	rec = doRequest(t, h, http.MethodPost, "/api/transpose", `{"notation":"G","fret":5}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/api/transpose", `{"notation":"F","fret":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/api/transpose", `{"notation":"Hm","fret":3}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/transpose", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestMatchEndpoint(t *testing.T) {
	h := setupTestServer(t)

	rec := doRequest(t, h, http.MethodPost, "/api/match", `{"fingerprint":"x32010"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[MatchResponse](t, rec)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "C", resp.Matches[0].Name)

	rec = doRequest(t, h, http.MethodPost, "/api/match", `{"positions":[-1,3,2,0,1,0]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decodeBody[MatchResponse](t, rec).Count)

	rec = doRequest(t, h, http.MethodPost, "/api/match", `{"positions":[9,9,9,9,9,9]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	empty := decodeBody[MatchResponse](t, rec)
	assert.Zero(t, empty.Count)
	assert.NotNil(t, empty.Matches)

	rec = doRequest(t, h, http.MethodPost, "/api/match", `{"positions":[1,2,3]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/api/match", `{"fingerprint":"x32010","positions":[-1,3,2,0,1,0]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/api/match", `{"fingerprint":"x32010","extra":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChartEndpoint(t *testing.T) {
	h := setupTestServer(t)

	rec := doRequest(t, h, http.MethodPost, "/api/chart", `{"text":"Capo 2\nG D/F# Em C\nG D Hm"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[ChartResponse](t, rec)
	assert.Equal(t, 2, resp.Capo)
	assert.Equal(t, []string{"G", "D/F#", "Em", "C", "D"}, resp.Chords)

	req := httptest.NewRequest(http.MethodPost, "/api/chart", strings.NewReader("Am F C G"))
	req.Header.Set("Content-Type", "text/plain")
	raw := httptest.NewRecorder()
	h.ServeHTTP(raw, req)
	require.Equal(t, http.StatusOK, raw.Code)
	plain := decodeBody[ChartResponse](t, raw)
	assert.Zero(t, plain.Capo)
	assert.Equal(t, []string{"Am", "F", "C", "G"}, plain.Chords)
	assert.Empty(t, plain.Unknown)
}

func TestCustomChordLifecycle(t *testing.T) {
	h := setupTestServer(t)

	rec := doRequest(t, h, http.MethodPost, "/api/custom-chords", `{"display_name":"G (Sweet Home)","fingerprint":"320033"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[CustomChordDTO](t, rec)
	assert.Equal(t, "G", created.BaseName)
	assert.Equal(t, []int{3, 2, 0, 0, 3, 3}, created.Positions)
	require.NotEmpty(t, created.ID)

	// Same name again
	rec = doRequest(t, h, http.MethodPost, "/api/custom-chords", `{"display_name":"G (Sweet Home)","fingerprint":"320003"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/chords/G%20(Sweet%20Home)", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{3, 2, 0, 0, 3, 3}, decodeBody[FingeringDTO](t, rec).Positions)

	rec = doRequest(t, h, http.MethodGet, "/api/custom-chords", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[ListCustomChordsResponse](t, rec)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, created.ID, list.Chords[0].ID)

	rec = doRequest(t, h, http.MethodPut, "/api/custom-chords/"+created.ID, `{"display_name":"G (Sweet Home)","positions":[3,-1,0,0,3,3]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[CustomChordDTO](t, rec)
	assert.Equal(t, []int{3, -1, 0, 0, 3, 3}, updated.Positions)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	rec = doRequest(t, h, http.MethodDelete, "/api/custom-chords/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, decodeBody[DeleteCustomChordResponse](t, rec).ID)

	rec = doRequest(t, h, http.MethodDelete, "/api/custom-chords/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, h, http.MethodPut, "/api/custom-chords/missing", `{"display_name":"X","fingerprint":"320033"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCustomChordValidation(t *testing.T) {
	h := setupTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"fingerprint":"320033"}`},
		{"bad fingerprint", `{"display_name":"Mine","fingerprint":"32003"}`},
		{"bad position", `{"display_name":"Mine","positions":[3,2,0,0,3,16]}`},
		{"name too long", `{"display_name":"` + strings.Repeat("G", 41) + `","fingerprint":"320033"}`},
		{"bad barre", `{"display_name":"Mine","fingerprint":"320033","barre":20}`},
		{"not json", `display_name=Mine`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h, http.MethodPost, "/api/custom-chords", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestCORS(t *testing.T) {
	h := setupTestServer(t, "https://songs.example")

	req := httptest.NewRequest(http.MethodOptions, "/api/match", nil)
	req.Header.Set("Origin", "https://songs.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://songs.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://other.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestParseOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, parseOrigins("*"))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, parseOrigins(" https://a.example, ,https://b.example "))
}
