package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Helper function to create a temporary test database
func setupTestDB(t *testing.T) (*DBClient, string) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test_chordbook.sqlite3")
	t.Setenv("CHORDBOOK_DB_PATH", dbPath)

	client, err := NewDBClient()
	if err != nil {
		t.Fatalf("Failed to create test DB client: %v", err)
	}

	t.Cleanup(func() {
		client.Close()
	})

	return client, dbPath
}

func sampleRow(id, name string, created time.Time) CustomChord {
	return CustomChord{
		ID:          id,
		BaseName:    "G",
		DisplayName: name,
		Positions:   EncodePositions([]int{3, 2, 0, 0, 3, 3}),
		Barre:       0,
		CreatedAt:   created,
	}
}

// TestNewDBClient tests database initialization
func TestNewDBClient(t *testing.T) {
	client, dbPath := setupTestDB(t)

	if client.DB == nil {
		t.Fatal("Expected non-nil GORM DB handle")
	}
	if client.db == nil {
		t.Fatal("Expected non-nil sql.DB handle")
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("Database file was not created at %s", dbPath)
	}
}

// TestNewDBClientWithCustomPath tests database creation in a missing directory
func TestNewDBClientWithCustomPath(t *testing.T) {
	customPath := filepath.Join(t.TempDir(), "subdir", "custom.db")

	client, err := NewDBClientWithPath(customPath)
	if err != nil {
		t.Fatalf("Failed to create DB with custom path: %v", err)
	}
	defer client.Close()

	if _, err := os.Stat(customPath); os.IsNotExist(err) {
		t.Errorf("Database file was not created at custom path %s", customPath)
	}
}

func TestSaveAndGetCustomChord(t *testing.T) {
	client, _ := setupTestDB(t)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	if err := client.SaveCustomChord(sampleRow("id-1", "G (Sweet Home)", created)); err != nil {
		t.Fatalf("SaveCustomChord failed: %v", err)
	}

	row, err := client.GetCustomChord("id-1")
	if err != nil {
		t.Fatalf("GetCustomChord failed: %v", err)
	}
	if row.DisplayName != "G (Sweet Home)" {
		t.Errorf("Expected display name 'G (Sweet Home)', got '%s'", row.DisplayName)
	}
	if row.Positions != "3,2,0,0,3,3" {
		t.Errorf("Expected positions '3,2,0,0,3,3', got '%s'", row.Positions)
	}
	if !row.CreatedAt.Equal(created) {
		t.Errorf("Expected created_at %v, got %v", created, row.CreatedAt)
	}
}

// TestSaveCustomChordReplaces tests that saving an existing id updates in place
func TestSaveCustomChordReplaces(t *testing.T) {
	client, _ := setupTestDB(t)
	created := time.Now().UTC()

	if err := client.SaveCustomChord(sampleRow("id-1", "G (Sweet Home)", created)); err != nil {
		t.Fatalf("First save failed: %v", err)
	}
	updated := sampleRow("id-1", "G (Renamed)", created)
	updated.Positions = EncodePositions([]int{3, 5, 5, 4, 3, 3})
	updated.Barre = 3
	if err := client.SaveCustomChord(updated); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	count, err := client.CountCustomChords()
	if err != nil {
		t.Fatalf("CountCustomChords failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 row after replace, found %d", count)
	}

	row, err := client.GetCustomChord("id-1")
	if err != nil {
		t.Fatalf("GetCustomChord failed: %v", err)
	}
	if row.DisplayName != "G (Renamed)" || row.Barre != 3 {
		t.Errorf("Row was not replaced: %+v", row)
	}
}

func TestSaveCustomChordRequiresID(t *testing.T) {
	client, _ := setupTestDB(t)
	if err := client.SaveCustomChord(sampleRow("", "nameless", time.Now())); err == nil {
		t.Error("Expected error for empty id")
	}
}

func TestDeleteCustomChord(t *testing.T) {
	client, _ := setupTestDB(t)

	if err := client.SaveCustomChord(sampleRow("id-1", "G (Sweet Home)", time.Now())); err != nil {
		t.Fatalf("SaveCustomChord failed: %v", err)
	}
	if err := client.DeleteCustomChord("id-1"); err != nil {
		t.Fatalf("DeleteCustomChord failed: %v", err)
	}
	if _, err := client.GetCustomChord("id-1"); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("Expected ErrRecordNotFound after delete, got %v", err)
	}
	if err := client.DeleteCustomChord("id-1"); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("Expected ErrRecordNotFound deleting twice, got %v", err)
	}
}

// TestListCustomChordsOrder tests rows come back oldest first
func TestListCustomChordsOrder(t *testing.T) {
	client, _ := setupTestDB(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	rows := []CustomChord{
		sampleRow("c", "third", base.Add(2*time.Hour)),
		sampleRow("a", "first", base),
		sampleRow("b", "second", base.Add(time.Hour)),
	}
	for _, r := range rows {
		if err := client.SaveCustomChord(r); err != nil {
			t.Fatalf("SaveCustomChord failed: %v", err)
		}
	}

	got, err := client.ListCustomChords()
	if err != nil {
		t.Fatalf("ListCustomChords failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(got))
	}
	for i, want := range []string{"first", "second", "third"} {
		if got[i].DisplayName != want {
			t.Errorf("Row %d: expected %s, got %s", i, want, got[i].DisplayName)
		}
	}
}

func TestNilClient(t *testing.T) {
	var client *DBClient
	if err := client.Close(); err != nil {
		t.Errorf("Close on nil client should be a no-op, got %v", err)
	}
	if err := client.SaveCustomChord(CustomChord{ID: "x"}); err == nil {
		t.Error("Expected error from nil client")
	}
	if _, err := client.ListCustomChords(); err == nil {
		t.Error("Expected error from nil client")
	}
}

func TestPositionsCodec(t *testing.T) {
	got, err := DecodePositions(EncodePositions([]int{-1, 3, 2, 0, 1, 0}))
	if err != nil {
		t.Fatalf("DecodePositions failed: %v", err)
	}
	want := []int{-1, 3, 2, 0, 1, 0}
	if len(got) != len(want) {
		t.Fatalf("Expected %d positions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected %d, got %d", i, want[i], got[i])
		}
	}

	if short, err := DecodePositions("1,2,3"); err != nil || len(short) != 3 {
		t.Errorf("Expected 3 positions without error, got %v, %v", short, err)
	}
	if _, err := DecodePositions("1,two,3"); err == nil {
		t.Error("Expected error for non-numeric position")
	}
	if empty, err := DecodePositions(""); err != nil || len(empty) != 0 {
		t.Errorf("Expected empty result, got %v, %v", empty, err)
	}
}
