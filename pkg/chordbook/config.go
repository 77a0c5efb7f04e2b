package chordbook

import "github.com/himanishpuri/ChordBook/pkg/chordbook/catalog"

type Config struct {
	DBPath     string
	CacheSize  int
	MemoryOnly bool
	Logger     Logger
	Storage    Storage
	Catalog    *catalog.Catalog
}

type Option func(*Config)

func WithDBPath(path string) Option {
	return func(c *Config) {
		c.DBPath = path
	}
}

// WithCacheSize bounds the resolution cache; 0 disables it.
func WithCacheSize(size int) Option {
	return func(c *Config) {
		c.CacheSize = size
	}
}

// WithMemoryOnly keeps custom chords in memory only.
func WithMemoryOnly() Option {
	return func(c *Config) {
		c.MemoryOnly = true
	}
}

func WithLogger(log Logger) Option {
	return func(c *Config) {
		c.Logger = log
	}
}

func WithStorage(storage Storage) Option {
	return func(c *Config) {
		c.Storage = storage
	}
}

// WithCatalog replaces the built-in chord table.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(c *Config) {
		c.Catalog = cat
	}
}

func defaultConfig() *Config {
	return &Config{
		DBPath:    "chordbook.sqlite3",
		CacheSize: 512,
		Logger:    nil,
	}
}
