package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"github.com/himanishpuri/ChordBook/pkg/chordbook"
	"github.com/himanishpuri/ChordBook/pkg/chordbook/notation"
	"github.com/himanishpuri/ChordBook/pkg/chordbook/transpose"
	"github.com/himanishpuri/ChordBook/pkg/logger"
	"github.com/himanishpuri/ChordBook/pkg/models"
	"github.com/himanishpuri/ChordBook/pkg/utils"
)

// Global flags
var (
	dbPath     string
	memoryOnly bool
	cacheSize  int
)

func init() {
	// Load .env before flag defaults read the environment.
	_ = godotenv.Load()

	flag.StringVar(&dbPath, "db", getEnvOrDefault("CHORDBOOK_DB_PATH", "chordbook.sqlite3"), "Path to the SQLite database holding custom chords")
	flag.BoolVar(&memoryOnly, "memory", false, "Do not read or write custom chords on disk")
	flag.IntVar(&cacheSize, "cache", 512, "Number of resolved notations to keep cached")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// createService creates a new ChordBook service with configured options
func createService() (chordbook.Service, error) {
	opts := []chordbook.Option{
		chordbook.WithDBPath(dbPath),
		chordbook.WithCacheSize(cacheSize),
	}
	if memoryOnly {
		opts = append(opts, chordbook.WithMemoryOnly())
	}
	return chordbook.NewService(opts...)
}

func main() {
	log := logger.GetLogger()
	flag.Usage = printUsage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	log.Debugf("Executing command: %s", command)

	svc, err := createService()
	if err != nil {
		fmt.Printf("❌ Failed to create service: %v\n", err)
		log.Errorf("Service initialization failed: %v", err)
		os.Exit(1)
	}
	code := 0
	switch command {
	case "resolve":
		code = handleResolve(svc, args[1:])
	case "transpose":
		code = handleTranspose(svc, args[1:])
	case "match":
		code = handleMatch(svc, args[1:])
	case "chart":
		code = handleChart(svc, args[1:])
	case "custom":
		code = handleCustom(svc, args[1:])
	case "names":
		code = handleNames(svc)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		code = 1
	}
	if err := svc.Close(); err != nil {
		log.Warnf("Failed to close service: %v", err)
	}
	os.Exit(code)
}

func handleResolve(svc chordbook.Service, args []string) int {
	if len(args) != 1 {
		fmt.Println("Usage: chordbook resolve <notation>")
		return 1
	}

	f, ok := svc.Resolve(args[0])
	if !ok {
		fmt.Printf("❌ Chord %q is not in the library\n", args[0])
		return 1
	}
	printFingering(f)
	return 0
}

func handleTranspose(svc chordbook.Service, args []string) int {
	if len(args) != 2 {
		fmt.Println("Usage: chordbook transpose <notation> <fret>")
		return 1
	}

	target, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Printf("❌ Invalid fret %q\n", args[1])
		return 1
	}

	f, ok := svc.Resolve(args[0])
	if !ok {
		fmt.Printf("❌ Chord %q is not in the library\n", args[0])
		return 1
	}

	moved, ok := svc.Transpose(f, target)
	if !ok {
		switch err := transpose.Check(f, target); {
		case errors.Is(err, transpose.ErrOpenString):
			fmt.Printf("❌ %s uses open strings and cannot be moved\n", f.Label())
		case errors.Is(err, transpose.ErrNoFrettedNotes):
			fmt.Printf("❌ %s has no fretted notes\n", f.Label())
		default:
			fmt.Printf("❌ %s does not fit on the neck at fret %d (frets 1-15)\n", f.Label(), target)
		}
		return 1
	}
	printFingering(moved)
	return 0
}

func handleMatch(svc chordbook.Service, args []string) int {
	matchCmd := flag.NewFlagSet("match", flag.ContinueOnError)
	barre := matchCmd.Int("barre", 0, "Barre fret hint used for ordering")
	positionsArg, flagArgs := splitPositional(args)
	if err := matchCmd.Parse(flagArgs); err != nil || positionsArg == "" {
		fmt.Println("Usage: chordbook match <x32010|-1,3,2,0,1,0> [--barre N]")
		return 1
	}

	positions, err := notation.ParsePositions(positionsArg)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return 1
	}

	matches := svc.FindMatches(positions, *barre)
	if len(matches) == 0 {
		fmt.Println("🤷 No chord in the library uses exactly these positions")
		return 0
	}

	fmt.Printf("✅ Found %d match(es):\n\n", len(matches))
	for i, m := range matches {
		name, ok := svc.VoicingNotation(m.Fingering)
		if !ok {
			name = m.Name
		}
		fmt.Printf("%d. %s   (%s)\n", i+1, m.Fingering.Label(), name)
	}
	return 0
}

func handleChart(svc chordbook.Service, args []string) int {
	path := "-"
	if len(args) > 0 {
		path = args[0]
	}

	text, err := utils.ReadTextFile(path)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return 1
	}

	chart := svc.ParseChart(text)
	fmt.Printf("🎸 Capo: %d\n", chart.Capo)
	if len(chart.Chords) == 0 {
		fmt.Println("   No chords found")
		return 0
	}
	fmt.Printf("   Chords: %s\n", strings.Join(chart.Chords, " "))
	for _, name := range chart.Chords {
		if _, ok := svc.Resolve(name); !ok {
			fmt.Printf("   ⚠️  %s is not in the library\n", name)
		}
	}
	return 0
}

func handleCustom(svc chordbook.Service, args []string) int {
	if len(args) < 1 {
		fmt.Println("Usage: chordbook custom <add|list|delete> ...")
		return 1
	}

	switch args[0] {
	case "add":
		return handleCustomAdd(svc, args[1:])
	case "list":
		return handleCustomList(svc)
	case "delete":
		return handleCustomDelete(svc, args[1:])
	default:
		fmt.Printf("Unknown custom command: %s\n", args[0])
		return 1
	}
}

func handleCustomAdd(svc chordbook.Service, args []string) int {
	addCmd := flag.NewFlagSet("custom add", flag.ContinueOnError)
	barre := addCmd.Int("barre", 0, "Barre fret (optional)")

	var positional []string
	var flagArgs []string
	for i, arg := range args {
		if strings.HasPrefix(arg, "-") && !strings.Contains(arg, ",") {
			flagArgs = args[i:]
			break
		}
		positional = append(positional, arg)
	}
	if err := addCmd.Parse(flagArgs); err != nil || len(positional) != 2 {
		fmt.Println("Usage: chordbook custom add <name> <x32010|-1,3,2,0,1,0> [--barre N]")
		return 1
	}

	positions, err := notation.ParsePositions(positional[1])
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return 1
	}

	c, err := svc.SaveCustomChord(positional[0], positions, *barre)
	if err != nil {
		fmt.Printf("❌ Failed to save custom chord: %v\n", err)
		return 1
	}

	fmt.Println("✅ Saved custom chord")
	fmt.Printf("   ID:   %s\n", c.ID)
	fmt.Printf("   Name: %s (base %s)\n", c.DisplayName, c.BaseName)
	printFingering(c.Fingering())
	return 0
}

func handleCustomList(svc chordbook.Service) int {
	chords := svc.ListCustomChords()
	if len(chords) == 0 {
		fmt.Println("📭 No custom chords")
		return 0
	}

	fmt.Printf("📚 %d custom chord(s):\n\n", len(chords))
	for i, c := range chords {
		fmt.Printf("%d. %s  [%s]\n", i+1, c.Fingering().Label(), formatPositions(c.Positions))
		fmt.Printf("   ID: %s, created %s\n", c.ID, humanize.Time(c.CreatedAt))
	}
	return 0
}

func handleCustomDelete(svc chordbook.Service, args []string) int {
	if len(args) != 1 {
		fmt.Println("Usage: chordbook custom delete <id>")
		return 1
	}

	removed, err := svc.DeleteCustomChord(args[0])
	if errors.Is(err, chordbook.ErrNotFound) {
		fmt.Printf("❌ No custom chord with ID %s\n", args[0])
		return 1
	}
	if err != nil {
		fmt.Printf("❌ Failed to delete custom chord: %v\n", err)
		return 1
	}
	fmt.Printf("✅ Deleted %s (ID: %s)\n", removed.DisplayName, removed.ID)
	return 0
}

func handleNames(svc chordbook.Service) int {
	names := svc.ChordNames()
	fmt.Printf("📚 %s chord names in the library:\n\n", humanize.Comma(int64(len(names))))
	fmt.Println(strings.Join(names, " "))
	return 0
}

// splitPositional separates the first non-flag argument from the flags so
// "match x32010 --barre 3" and "match --barre 3 x32010" both work.
func splitPositional(args []string) (string, []string) {
	var positional string
	var rest []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") && !strings.Contains(arg, ",") {
			rest = append(rest, arg)
			if !strings.Contains(arg, "=") && i+1 < len(args) {
				i++
				rest = append(rest, args[i])
			}
			continue
		}
		if positional == "" {
			positional = arg
		}
	}
	return positional, rest
}

func printFingering(f models.Fingering) {
	fmt.Printf("🎵 %s\n", f.Label())
	fmt.Println("   E  A  D  G  B  e")
	fmt.Printf("   %s\n", formatPositions(f.Positions))
	if notation.Encodable(f.Positions) {
		fmt.Printf("   Fingerprint: %s\n", notation.EncodeFingerprint(f.Positions))
	}
}

func formatPositions(positions [models.StringCount]int) string {
	cells := make([]string, len(positions))
	for i, p := range positions {
		if p == models.Muted {
			cells[i] = "x "
		} else {
			cells[i] = fmt.Sprintf("%-2d", p)
		}
	}
	return strings.TrimRight(strings.Join(cells, " "), " ")
}

func printUsage() {
	fmt.Println("ChordBook - Guitar chord library CLI")
	fmt.Println("\nGlobal Options:")
	fmt.Println("  --db <path>        Path to SQLite database (env: CHORDBOOK_DB_PATH, default: chordbook.sqlite3)")
	fmt.Println("  --memory           Keep custom chords in memory only")
	fmt.Println("  --cache <n>        Resolution cache size (default: 512)")
	fmt.Println("\nUsage:")
	fmt.Println("  chordbook [global-options] resolve <notation>")
	fmt.Println("  chordbook [global-options] transpose <notation> <fret>")
	fmt.Println("  chordbook [global-options] match <positions> [--barre N]")
	fmt.Println("  chordbook [global-options] chart [file|-]")
	fmt.Println("  chordbook [global-options] custom add <name> <positions> [--barre N]")
	fmt.Println("  chordbook [global-options] custom list")
	fmt.Println("  chordbook [global-options] custom delete <id>")
	fmt.Println("  chordbook [global-options] names")
	fmt.Println("\nNotation:")
	fmt.Println("  G          default voicing of G")
	fmt.Println("  G#320033   a specific voicing (X or x mutes a string, frets 0-9)")
	fmt.Println("  F@5        the F shape moved so its lowest fret is 5")
	fmt.Println("\nExamples:")
	fmt.Println("  chordbook resolve Am7")
	fmt.Println("  chordbook match x32010")
	fmt.Println("  chordbook custom add \"G (Sweet Home)\" 320033")
	fmt.Println("  pbpaste | chordbook chart -")
}
