package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/himanishpuri/ChordBook/pkg/chordbook"
)

var (
	port           int
	dbPath         string
	memoryOnly     bool
	cacheSize      int
	allowedOrigins string
)

func init() {
	// Load .env before flag defaults read the environment.
	_ = godotenv.Load()

	flag.IntVar(&port, "port", getEnvIntOrDefault("CHORDBOOK_PORT", 8080), "HTTP server port")
	flag.StringVar(&dbPath, "db", getEnvOrDefault("CHORDBOOK_DB_PATH", "chordbook.sqlite3"), "Path to SQLite database")
	flag.BoolVar(&memoryOnly, "memory", false, "Keep custom chords in memory only")
	flag.IntVar(&cacheSize, "cache", 512, "Number of resolved notations to keep cached")
	flag.StringVar(&allowedOrigins, "origins", getEnvOrDefault("CHORDBOOK_ORIGINS", "*"), "Comma-separated list of allowed CORS origins (use * for all)")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// parseOrigins splits the -origins flag into a list
func parseOrigins(raw string) []string {
	if raw == "*" {
		return []string{"*"}
	}
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func main() {
	flag.Parse()

	opts := []chordbook.Option{
		chordbook.WithDBPath(dbPath),
		chordbook.WithCacheSize(cacheSize),
	}
	if memoryOnly {
		opts = append(opts, chordbook.WithMemoryOnly())
		dbPath = ""
	}

	// Create ChordBook service
	service, err := chordbook.NewService(opts...)
	if err != nil {
		log.Fatalf("Failed to create service: %v", err)
	}
	defer service.Close()

	// Create server configuration
	config := &ServerConfig{
		Port:           port,
		DBPath:         dbPath,
		AllowedOrigins: parseOrigins(allowedOrigins),
	}

	// Create and start server
	server := NewServer(service, config)
	if err := server.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
