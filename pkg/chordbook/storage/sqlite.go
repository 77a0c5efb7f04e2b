package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/himanishpuri/ChordBook/pkg/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const DefaultDBFile = "chordbook.sqlite3"
const errDBClientNil = "db client is nil"

// ErrRecordNotFound is returned when no custom chord has the requested id.
var ErrRecordNotFound = errors.New("custom chord not found")

type DBClient struct {
	DB *gorm.DB
	db *sql.DB
}

// CustomChord is the persisted form of a user-defined fingering. Positions
// are stored as comma-separated integers so malformed rows can be detected
// on load instead of failing the scan.
type CustomChord struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	BaseName    string `gorm:"index:idx_custom_base" json:"base_name"`
	DisplayName string `gorm:"index:idx_custom_display" json:"display_name"`
	Positions   string `json:"positions"`
	Barre       int    `json:"barre"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CustomChord) TableName() string {
	return "custom_chords"
}

func NewDBClient() (*DBClient, error) {
	dbPath := os.Getenv("CHORDBOOK_DB_PATH")
	if dbPath == "" {
		dbPath = DefaultDBFile
	}
	return NewDBClientWithPath(dbPath)
}

func NewDBClientWithPath(dbPath string) (*DBClient, error) {
	if err := utils.EnsureParentDir(dbPath); err != nil {
		return nil, fmt.Errorf("creating db dir: %w", err)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB from gorm: %w", err)
	}

	// SQLite has a single writer.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&CustomChord{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return &DBClient{DB: db, db: sqlDB}, nil
}

func (c *DBClient) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// SaveCustomChord inserts the row or replaces the one with the same id.
func (c *DBClient) SaveCustomChord(row CustomChord) error {
	if c == nil || c.DB == nil {
		return errors.New(errDBClientNil)
	}
	if row.ID == "" {
		return errors.New("custom chord id is empty")
	}
	if err := c.DB.Save(&row).Error; err != nil {
		return fmt.Errorf("saving custom chord %s: %w", row.ID, err)
	}
	return nil
}

func (c *DBClient) GetCustomChord(id string) (*CustomChord, error) {
	if c == nil || c.DB == nil {
		return nil, errors.New(errDBClientNil)
	}
	var row CustomChord
	err := c.DB.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying custom chord %s: %w", id, err)
	}
	return &row, nil
}

// DeleteCustomChord removes the row with the given id. Deleting a missing
// id returns ErrRecordNotFound.
func (c *DBClient) DeleteCustomChord(id string) error {
	if c == nil || c.DB == nil {
		return errors.New(errDBClientNil)
	}
	return c.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&CustomChord{})
		if res.Error != nil {
			return fmt.Errorf("deleting custom chord %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrRecordNotFound
		}
		return nil
	})
}

// ListCustomChords returns every row, oldest first.
func (c *DBClient) ListCustomChords() ([]CustomChord, error) {
	if c == nil || c.DB == nil {
		return nil, errors.New(errDBClientNil)
	}
	var rows []CustomChord
	if err := c.DB.Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing custom chords: %w", err)
	}
	return rows, nil
}

func (c *DBClient) CountCustomChords() (int, error) {
	if c == nil || c.DB == nil {
		return 0, errors.New(errDBClientNil)
	}
	var count int64
	if err := c.DB.Model(&CustomChord{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting custom chords: %w", err)
	}
	return int(count), nil
}

// EncodePositions renders positions as "3,2,0,0,0,3".
func EncodePositions(positions []int) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}

// DecodePositions parses the output of EncodePositions. It does not check
// the count; callers validate the result.
func DecodePositions(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		out[i] = n
	}
	return out, nil
}
