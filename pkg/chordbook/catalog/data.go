package catalog

import "github.com/himanishpuri/ChordBook/pkg/models"

// builtin is the literal chord table, grouped by root. Within a name the
// default voicing comes first, followed by alternates from the lowest
// position up.
var builtin = []models.Fingering{
	// C
	{Name: "C", Positions: [6]int{-1, 3, 2, 0, 1, 0}, IsDefault: true},
	{Name: "C", Positions: [6]int{-1, 3, 5, 5, 5, 3}, Barre: 3},
	{Name: "C", Positions: [6]int{8, 10, 10, 9, 8, 8}, Barre: 8},
	{Name: "Cm", Positions: [6]int{-1, 3, 5, 5, 4, 3}, Barre: 3, IsDefault: true},
	{Name: "Cm", Positions: [6]int{8, 10, 10, 8, 8, 8}, Barre: 8},
	{Name: "C7", Positions: [6]int{-1, 3, 2, 3, 1, 0}, IsDefault: true},
	{Name: "C7", Positions: [6]int{-1, 3, 5, 3, 5, 3}, Barre: 3},
	{Name: "C7", Positions: [6]int{8, 10, 8, 9, 8, 8}, Barre: 8},
	{Name: "Cm7", Positions: [6]int{-1, 3, 5, 3, 4, 3}, Barre: 3, IsDefault: true},
	{Name: "Cm7", Positions: [6]int{8, 10, 8, 8, 8, 8}, Barre: 8},
	{Name: "Cmaj7", Positions: [6]int{-1, 3, 2, 0, 0, 0}, IsDefault: true},
	{Name: "Cmaj7", Positions: [6]int{-1, 3, 5, 4, 5, 3}, Barre: 3},
	{Name: "Cmaj7", Positions: [6]int{8, -1, 9, 9, 8, -1}},
	{Name: "C6", Positions: [6]int{-1, 3, 2, 2, 1, 0}, IsDefault: true},
	{Name: "C6", Positions: [6]int{-1, 3, 5, 5, 5, 5}, Barre: 3},
	{Name: "Csus2", Positions: [6]int{-1, 3, 0, 0, 1, 3}, IsDefault: true},
	{Name: "Csus2", Positions: [6]int{-1, 3, 5, 5, 3, 3}, Barre: 3},
	{Name: "Csus4", Positions: [6]int{-1, 3, 3, 0, 1, 1}, IsDefault: true},
	{Name: "Csus4", Positions: [6]int{-1, 3, 5, 5, 6, 3}, Barre: 3},
	{Name: "Csus4", Positions: [6]int{8, 10, 10, 10, 8, 8}, Barre: 8},
	{Name: "Cadd9", Positions: [6]int{-1, 3, 2, 0, 3, 0}, IsDefault: true},
	{Name: "Cadd9", Positions: [6]int{-1, 3, 5, 7, 5, 3}, Barre: 3},
	{Name: "C9", Positions: [6]int{-1, 3, 2, 3, 3, 3}, Barre: 3, IsDefault: true},
	{Name: "Cdim", Positions: [6]int{-1, 3, 4, 5, 4, -1}, IsDefault: true},
	{Name: "Cdim7", Positions: [6]int{-1, 3, 4, 2, 4, -1}, IsDefault: true},
	{Name: "Cm7b5", Positions: [6]int{-1, 3, 4, 3, 4, -1}, IsDefault: true},
	{Name: "Caug", Positions: [6]int{-1, 3, 6, 5, 5, 4}, IsDefault: true},

	// C#
	{Name: "C#", Positions: [6]int{-1, 4, 6, 6, 6, 4}, Barre: 4, IsDefault: true},
	{Name: "C#", Positions: [6]int{9, 11, 11, 10, 9, 9}, Barre: 9},
	{Name: "C#m", Positions: [6]int{-1, 4, 6, 6, 5, 4}, Barre: 4, IsDefault: true},
	{Name: "C#m", Positions: [6]int{9, 11, 11, 9, 9, 9}, Barre: 9},
	{Name: "C#7", Positions: [6]int{-1, 4, 6, 4, 6, 4}, Barre: 4, IsDefault: true},
	{Name: "C#7", Positions: [6]int{9, 11, 9, 10, 9, 9}, Barre: 9},
	{Name: "C#m7", Positions: [6]int{-1, 4, 6, 4, 5, 4}, Barre: 4, IsDefault: true},
	{Name: "C#m7", Positions: [6]int{9, 11, 9, 9, 9, 9}, Barre: 9},
	{Name: "C#maj7", Positions: [6]int{-1, 4, 6, 5, 6, 4}, Barre: 4, IsDefault: true},
	{Name: "C#maj7", Positions: [6]int{9, -1, 10, 10, 9, -1}},
	{Name: "C#6", Positions: [6]int{-1, 4, 6, 6, 6, 6}, Barre: 4, IsDefault: true},
	{Name: "C#sus2", Positions: [6]int{-1, 4, 6, 6, 4, 4}, Barre: 4, IsDefault: true},
	{Name: "C#sus4", Positions: [6]int{-1, 4, 6, 6, 7, 4}, Barre: 4, IsDefault: true},
	{Name: "C#sus4", Positions: [6]int{9, 11, 11, 11, 9, 9}, Barre: 9},
	{Name: "C#add9", Positions: [6]int{-1, 4, 6, 8, 6, 4}, Barre: 4, IsDefault: true},
	{Name: "C#9", Positions: [6]int{-1, 4, 3, 4, 4, 4}, Barre: 4, IsDefault: true},
	{Name: "C#dim", Positions: [6]int{-1, 4, 5, 6, 5, -1}, IsDefault: true},
	{Name: "C#dim7", Positions: [6]int{-1, 4, 5, 3, 5, -1}, IsDefault: true},
	{Name: "C#m7b5", Positions: [6]int{-1, 4, 5, 4, 5, -1}, IsDefault: true},
	{Name: "C#aug", Positions: [6]int{-1, 4, 7, 6, 6, 5}, IsDefault: true},

	// D
	{Name: "D", Positions: [6]int{-1, -1, 0, 2, 3, 2}, IsDefault: true},
	{Name: "D", Positions: [6]int{-1, 5, 7, 7, 7, 5}, Barre: 5},
	{Name: "D", Positions: [6]int{10, 12, 12, 11, 10, 10}, Barre: 10},
	{Name: "Dm", Positions: [6]int{-1, -1, 0, 2, 3, 1}, IsDefault: true},
	{Name: "Dm", Positions: [6]int{-1, 5, 7, 7, 6, 5}, Barre: 5},
	{Name: "Dm", Positions: [6]int{10, 12, 12, 10, 10, 10}, Barre: 10},
	{Name: "D7", Positions: [6]int{-1, -1, 0, 2, 1, 2}, IsDefault: true},
	{Name: "D7", Positions: [6]int{-1, 5, 7, 5, 7, 5}, Barre: 5},
	{Name: "D7", Positions: [6]int{10, 12, 10, 11, 10, 10}, Barre: 10},
	{Name: "Dm7", Positions: [6]int{-1, -1, 0, 2, 1, 1}, IsDefault: true},
	{Name: "Dm7", Positions: [6]int{-1, 5, 7, 5, 6, 5}, Barre: 5},
	{Name: "Dm7", Positions: [6]int{10, 12, 10, 10, 10, 10}, Barre: 10},
	{Name: "Dmaj7", Positions: [6]int{-1, -1, 0, 2, 2, 2}, IsDefault: true},
	{Name: "Dmaj7", Positions: [6]int{-1, 5, 7, 6, 7, 5}, Barre: 5},
	{Name: "Dmaj7", Positions: [6]int{10, -1, 11, 11, 10, -1}},
	{Name: "D6", Positions: [6]int{-1, -1, 0, 2, 0, 2}, IsDefault: true},
	{Name: "D6", Positions: [6]int{-1, 5, 7, 7, 7, 7}, Barre: 5},
	{Name: "Dm6", Positions: [6]int{-1, -1, 0, 2, 0, 1}, IsDefault: true},
	{Name: "Dsus2", Positions: [6]int{-1, -1, 0, 2, 3, 0}, IsDefault: true},
	{Name: "Dsus2", Positions: [6]int{-1, 5, 7, 7, 5, 5}, Barre: 5},
	{Name: "Dsus4", Positions: [6]int{-1, -1, 0, 2, 3, 3}, IsDefault: true},
	{Name: "Dsus4", Positions: [6]int{-1, 5, 7, 7, 8, 5}, Barre: 5},
	{Name: "Dsus4", Positions: [6]int{10, 12, 12, 12, 10, 10}, Barre: 10},
	{Name: "Dadd9", Positions: [6]int{-1, 5, 7, 9, 7, 5}, Barre: 5, IsDefault: true},
	{Name: "D9", Positions: [6]int{-1, 5, 4, 5, 5, 5}, Barre: 5, IsDefault: true},
	{Name: "Ddim", Positions: [6]int{-1, -1, 0, 1, 3, 1}, IsDefault: true},
	{Name: "Ddim", Positions: [6]int{-1, 5, 6, 7, 6, -1}},
	{Name: "Ddim7", Positions: [6]int{-1, 5, 6, 4, 6, -1}, IsDefault: true},
	{Name: "Dm7b5", Positions: [6]int{-1, 5, 6, 5, 6, -1}, IsDefault: true},
	{Name: "Daug", Positions: [6]int{-1, -1, 0, 3, 3, 2}, IsDefault: true},
	{Name: "Daug", Positions: [6]int{-1, 5, 8, 7, 7, 6}},

	// D#
	{Name: "D#", Positions: [6]int{-1, 6, 8, 8, 8, 6}, Barre: 6, IsDefault: true},
	{Name: "D#", Positions: [6]int{11, 13, 13, 12, 11, 11}, Barre: 11},
	{Name: "D#m", Positions: [6]int{-1, 6, 8, 8, 7, 6}, Barre: 6, IsDefault: true},
	{Name: "D#m", Positions: [6]int{11, 13, 13, 11, 11, 11}, Barre: 11},
	{Name: "D#7", Positions: [6]int{-1, 6, 8, 6, 8, 6}, Barre: 6, IsDefault: true},
	{Name: "D#7", Positions: [6]int{11, 13, 11, 12, 11, 11}, Barre: 11},
	{Name: "D#m7", Positions: [6]int{-1, 6, 8, 6, 7, 6}, Barre: 6, IsDefault: true},
	{Name: "D#m7", Positions: [6]int{11, 13, 11, 11, 11, 11}, Barre: 11},
	{Name: "D#maj7", Positions: [6]int{-1, 6, 8, 7, 8, 6}, Barre: 6, IsDefault: true},
	{Name: "D#maj7", Positions: [6]int{11, -1, 12, 12, 11, -1}},
	{Name: "D#6", Positions: [6]int{-1, 6, 8, 8, 8, 8}, Barre: 6, IsDefault: true},
	{Name: "D#sus2", Positions: [6]int{-1, 6, 8, 8, 6, 6}, Barre: 6, IsDefault: true},
	{Name: "D#sus4", Positions: [6]int{-1, 6, 8, 8, 9, 6}, Barre: 6, IsDefault: true},
	{Name: "D#sus4", Positions: [6]int{11, 13, 13, 13, 11, 11}, Barre: 11},
	{Name: "D#add9", Positions: [6]int{-1, 6, 8, 10, 8, 6}, Barre: 6, IsDefault: true},
	{Name: "D#9", Positions: [6]int{-1, 6, 5, 6, 6, 6}, Barre: 6, IsDefault: true},
	{Name: "D#dim", Positions: [6]int{-1, 6, 7, 8, 7, -1}, IsDefault: true},
	{Name: "D#dim7", Positions: [6]int{-1, 6, 7, 5, 7, -1}, IsDefault: true},
	{Name: "D#m7b5", Positions: [6]int{-1, 6, 7, 6, 7, -1}, IsDefault: true},
	{Name: "D#aug", Positions: [6]int{-1, 6, 9, 8, 8, 7}, IsDefault: true},

	// E
	{Name: "E", Positions: [6]int{0, 2, 2, 1, 0, 0}, IsDefault: true},
	{Name: "E", Positions: [6]int{-1, 7, 9, 9, 9, 7}, Barre: 7},
	{Name: "E", Positions: [6]int{12, 14, 14, 13, 12, 12}, Barre: 12},
	{Name: "Em", Positions: [6]int{0, 2, 2, 0, 0, 0}, IsDefault: true},
	{Name: "Em", Positions: [6]int{-1, 7, 9, 9, 8, 7}, Barre: 7},
	{Name: "Em", Positions: [6]int{12, 14, 14, 12, 12, 12}, Barre: 12},
	{Name: "E7", Positions: [6]int{0, 2, 0, 1, 0, 0}, IsDefault: true},
	{Name: "E7", Positions: [6]int{-1, 7, 9, 7, 9, 7}, Barre: 7},
	{Name: "E7", Positions: [6]int{12, 14, 12, 13, 12, 12}, Barre: 12},
	{Name: "Em7", Positions: [6]int{0, 2, 0, 0, 0, 0}, IsDefault: true},
	{Name: "Em7", Positions: [6]int{0, 2, 2, 0, 3, 0}},
	{Name: "Em7", Positions: [6]int{-1, 7, 9, 7, 8, 7}, Barre: 7},
	{Name: "Em7", Positions: [6]int{12, 14, 12, 12, 12, 12}, Barre: 12},
	{Name: "Emaj7", Positions: [6]int{0, 2, 1, 1, 0, 0}, IsDefault: true},
	{Name: "Emaj7", Positions: [6]int{-1, 7, 9, 8, 9, 7}, Barre: 7},
	{Name: "Emaj7", Positions: [6]int{12, -1, 13, 13, 12, -1}},
	{Name: "E6", Positions: [6]int{0, 2, 2, 1, 2, 0}, IsDefault: true},
	{Name: "E6", Positions: [6]int{-1, 7, 9, 9, 9, 9}, Barre: 7},
	{Name: "Esus2", Positions: [6]int{-1, 7, 9, 9, 7, 7}, Barre: 7, IsDefault: true},
	{Name: "Esus4", Positions: [6]int{0, 2, 2, 2, 0, 0}, IsDefault: true},
	{Name: "Esus4", Positions: [6]int{-1, 7, 9, 9, 10, 7}, Barre: 7},
	{Name: "Esus4", Positions: [6]int{12, 14, 14, 14, 12, 12}, Barre: 12},
	{Name: "Eadd9", Positions: [6]int{0, 2, 2, 1, 0, 2}, IsDefault: true},
	{Name: "Eadd9", Positions: [6]int{-1, 7, 9, 11, 9, 7}, Barre: 7},
	{Name: "E9", Positions: [6]int{0, 2, 0, 1, 0, 2}, IsDefault: true},
	{Name: "E9", Positions: [6]int{-1, 7, 6, 7, 7, 7}, Barre: 7},
	{Name: "Edim", Positions: [6]int{-1, 7, 8, 9, 8, -1}, IsDefault: true},
	{Name: "Edim7", Positions: [6]int{-1, 7, 8, 6, 8, -1}, IsDefault: true},
	{Name: "Em7b5", Positions: [6]int{-1, 7, 8, 7, 8, -1}, IsDefault: true},
	{Name: "Eaug", Positions: [6]int{-1, 7, 10, 9, 9, 8}, IsDefault: true},

	// F
	{Name: "F", Positions: [6]int{1, 3, 3, 2, 1, 1}, Barre: 1, IsDefault: true},
	{Name: "F", Positions: [6]int{-1, -1, 3, 2, 1, 1}},
	{Name: "F", Positions: [6]int{-1, 8, 10, 10, 10, 8}, Barre: 8},
	{Name: "Fm", Positions: [6]int{1, 3, 3, 1, 1, 1}, Barre: 1, IsDefault: true},
	{Name: "Fm", Positions: [6]int{-1, 8, 10, 10, 9, 8}, Barre: 8},
	{Name: "F7", Positions: [6]int{1, 3, 1, 2, 1, 1}, Barre: 1, IsDefault: true},
	{Name: "F7", Positions: [6]int{-1, 8, 10, 8, 10, 8}, Barre: 8},
	{Name: "Fm7", Positions: [6]int{1, 3, 1, 1, 1, 1}, Barre: 1, IsDefault: true},
	{Name: "Fm7", Positions: [6]int{-1, 8, 10, 8, 9, 8}, Barre: 8},
	{Name: "Fmaj7", Positions: [6]int{-1, -1, 3, 2, 1, 0}, IsDefault: true},
	{Name: "Fmaj7", Positions: [6]int{1, -1, 2, 2, 1, -1}},
	{Name: "Fmaj7", Positions: [6]int{-1, 8, 10, 9, 10, 8}, Barre: 8},
	{Name: "F6", Positions: [6]int{-1, 8, 10, 10, 10, 10}, Barre: 8, IsDefault: true},
	{Name: "Fsus2", Positions: [6]int{-1, 8, 10, 10, 8, 8}, Barre: 8, IsDefault: true},
	{Name: "Fsus4", Positions: [6]int{1, 3, 3, 3, 1, 1}, Barre: 1, IsDefault: true},
	{Name: "Fsus4", Positions: [6]int{-1, 8, 10, 10, 11, 8}, Barre: 8},
	{Name: "Fadd9", Positions: [6]int{-1, 8, 10, 12, 10, 8}, Barre: 8, IsDefault: true},
	{Name: "F9", Positions: [6]int{-1, 8, 7, 8, 8, 8}, Barre: 8, IsDefault: true},
	{Name: "Fdim", Positions: [6]int{-1, 8, 9, 10, 9, -1}, IsDefault: true},
	{Name: "Fdim7", Positions: [6]int{-1, 8, 9, 7, 9, -1}, IsDefault: true},
	{Name: "Fm7b5", Positions: [6]int{-1, 8, 9, 8, 9, -1}, IsDefault: true},
	{Name: "Faug", Positions: [6]int{-1, 8, 11, 10, 10, 9}, IsDefault: true},

	// F#
	{Name: "F#", Positions: [6]int{2, 4, 4, 3, 2, 2}, Barre: 2, IsDefault: true},
	{Name: "F#", Positions: [6]int{-1, 9, 11, 11, 11, 9}, Barre: 9},
	{Name: "F#m", Positions: [6]int{2, 4, 4, 2, 2, 2}, Barre: 2, IsDefault: true},
	{Name: "F#m", Positions: [6]int{-1, 9, 11, 11, 10, 9}, Barre: 9},
	{Name: "F#7", Positions: [6]int{2, 4, 2, 3, 2, 2}, Barre: 2, IsDefault: true},
	{Name: "F#7", Positions: [6]int{-1, 9, 11, 9, 11, 9}, Barre: 9},
	{Name: "F#m7", Positions: [6]int{2, 4, 2, 2, 2, 2}, Barre: 2, IsDefault: true},
	{Name: "F#m7", Positions: [6]int{-1, 9, 11, 9, 10, 9}, Barre: 9},
	{Name: "F#maj7", Positions: [6]int{2, -1, 3, 3, 2, -1}, IsDefault: true},
	{Name: "F#maj7", Positions: [6]int{-1, 9, 11, 10, 11, 9}, Barre: 9},
	{Name: "F#6", Positions: [6]int{-1, 9, 11, 11, 11, 11}, Barre: 9, IsDefault: true},
	{Name: "F#sus2", Positions: [6]int{-1, 9, 11, 11, 9, 9}, Barre: 9, IsDefault: true},
	{Name: "F#sus4", Positions: [6]int{2, 4, 4, 4, 2, 2}, Barre: 2, IsDefault: true},
	{Name: "F#sus4", Positions: [6]int{-1, 9, 11, 11, 12, 9}, Barre: 9},
	{Name: "F#add9", Positions: [6]int{-1, 9, 11, 13, 11, 9}, Barre: 9, IsDefault: true},
	{Name: "F#9", Positions: [6]int{-1, 9, 8, 9, 9, 9}, Barre: 9, IsDefault: true},
	{Name: "F#dim", Positions: [6]int{-1, 9, 10, 11, 10, -1}, IsDefault: true},
	{Name: "F#dim7", Positions: [6]int{-1, 9, 10, 8, 10, -1}, IsDefault: true},
	{Name: "F#m7b5", Positions: [6]int{-1, 9, 10, 9, 10, -1}, IsDefault: true},
	{Name: "F#aug", Positions: [6]int{-1, 9, 12, 11, 11, 10}, IsDefault: true},

	// G
	{Name: "G", Positions: [6]int{3, 2, 0, 0, 0, 3}, IsDefault: true},
	{Name: "G", Positions: [6]int{3, 2, 0, 0, 3, 3}},
	{Name: "G", Positions: [6]int{3, 5, 5, 4, 3, 3}, Barre: 3},
	{Name: "G", Positions: [6]int{-1, 10, 12, 12, 12, 10}, Barre: 10},
	{Name: "Gm", Positions: [6]int{3, 5, 5, 3, 3, 3}, Barre: 3, IsDefault: true},
	{Name: "Gm", Positions: [6]int{-1, 10, 12, 12, 11, 10}, Barre: 10},
	{Name: "G7", Positions: [6]int{3, 2, 0, 0, 0, 1}, IsDefault: true},
	{Name: "G7", Positions: [6]int{3, 5, 3, 4, 3, 3}, Barre: 3},
	{Name: "G7", Positions: [6]int{-1, 10, 12, 10, 12, 10}, Barre: 10},
	{Name: "Gm7", Positions: [6]int{3, 5, 3, 3, 3, 3}, Barre: 3, IsDefault: true},
	{Name: "Gm7", Positions: [6]int{-1, 10, 12, 10, 11, 10}, Barre: 10},
	{Name: "Gmaj7", Positions: [6]int{3, 2, 0, 0, 0, 2}, IsDefault: true},
	{Name: "Gmaj7", Positions: [6]int{3, -1, 4, 4, 3, -1}},
	{Name: "Gmaj7", Positions: [6]int{-1, 10, 12, 11, 12, 10}, Barre: 10},
	{Name: "G6", Positions: [6]int{3, 2, 0, 0, 0, 0}, IsDefault: true},
	{Name: "G6", Positions: [6]int{-1, 10, 12, 12, 12, 12}, Barre: 10},
	{Name: "Gsus2", Positions: [6]int{3, 0, 0, 0, 3, 3}, IsDefault: true},
	{Name: "Gsus2", Positions: [6]int{-1, 10, 12, 12, 10, 10}, Barre: 10},
	{Name: "Gsus4", Positions: [6]int{3, 3, 0, 0, 1, 3}, IsDefault: true},
	{Name: "Gsus4", Positions: [6]int{3, 5, 5, 5, 3, 3}, Barre: 3},
	{Name: "Gsus4", Positions: [6]int{-1, 10, 12, 12, 13, 10}, Barre: 10},
	{Name: "Gadd9", Positions: [6]int{3, 0, 0, 2, 0, 3}, IsDefault: true},
	{Name: "Gadd9", Positions: [6]int{-1, 10, 12, 14, 12, 10}, Barre: 10},
	{Name: "G9", Positions: [6]int{-1, 10, 9, 10, 10, 10}, Barre: 10, IsDefault: true},
	{Name: "Gdim", Positions: [6]int{-1, 10, 11, 12, 11, -1}, IsDefault: true},
	{Name: "Gdim7", Positions: [6]int{-1, 10, 11, 9, 11, -1}, IsDefault: true},
	{Name: "Gm7b5", Positions: [6]int{-1, 10, 11, 10, 11, -1}, IsDefault: true},
	{Name: "Gaug", Positions: [6]int{-1, 10, 13, 12, 12, 11}, IsDefault: true},

	// G#
	{Name: "G#", Positions: [6]int{4, 6, 6, 5, 4, 4}, Barre: 4, IsDefault: true},
	{Name: "G#", Positions: [6]int{-1, 11, 13, 13, 13, 11}, Barre: 11},
	{Name: "G#m", Positions: [6]int{4, 6, 6, 4, 4, 4}, Barre: 4, IsDefault: true},
	{Name: "G#m", Positions: [6]int{-1, 11, 13, 13, 12, 11}, Barre: 11},
	{Name: "G#7", Positions: [6]int{4, 6, 4, 5, 4, 4}, Barre: 4, IsDefault: true},
	{Name: "G#7", Positions: [6]int{-1, 11, 13, 11, 13, 11}, Barre: 11},
	{Name: "G#m7", Positions: [6]int{4, 6, 4, 4, 4, 4}, Barre: 4, IsDefault: true},
	{Name: "G#m7", Positions: [6]int{-1, 11, 13, 11, 12, 11}, Barre: 11},
	{Name: "G#maj7", Positions: [6]int{4, -1, 5, 5, 4, -1}, IsDefault: true},
	{Name: "G#maj7", Positions: [6]int{-1, 11, 13, 12, 13, 11}, Barre: 11},
	{Name: "G#6", Positions: [6]int{-1, 11, 13, 13, 13, 13}, Barre: 11, IsDefault: true},
	{Name: "G#sus2", Positions: [6]int{-1, 11, 13, 13, 11, 11}, Barre: 11, IsDefault: true},
	{Name: "G#sus4", Positions: [6]int{4, 6, 6, 6, 4, 4}, Barre: 4, IsDefault: true},
	{Name: "G#sus4", Positions: [6]int{-1, 11, 13, 13, 14, 11}, Barre: 11},
	{Name: "G#add9", Positions: [6]int{-1, 11, 13, 15, 13, 11}, Barre: 11, IsDefault: true},
	{Name: "G#9", Positions: [6]int{-1, 11, 10, 11, 11, 11}, Barre: 11, IsDefault: true},
	{Name: "G#dim", Positions: [6]int{-1, 11, 12, 13, 12, -1}, IsDefault: true},
	{Name: "G#dim7", Positions: [6]int{-1, 11, 12, 10, 12, -1}, IsDefault: true},
	{Name: "G#m7b5", Positions: [6]int{-1, 11, 12, 11, 12, -1}, IsDefault: true},
	{Name: "G#aug", Positions: [6]int{-1, 11, 14, 13, 13, 12}, IsDefault: true},

	// A
	{Name: "A", Positions: [6]int{-1, 0, 2, 2, 2, 0}, IsDefault: true},
	{Name: "A", Positions: [6]int{5, 7, 7, 6, 5, 5}, Barre: 5},
	{Name: "A", Positions: [6]int{-1, 12, 14, 14, 14, 12}, Barre: 12},
	{Name: "Am", Positions: [6]int{-1, 0, 2, 2, 1, 0}, IsDefault: true},
	{Name: "Am", Positions: [6]int{5, 7, 7, 5, 5, 5}, Barre: 5},
	{Name: "Am", Positions: [6]int{-1, 12, 14, 14, 13, 12}, Barre: 12},
	{Name: "A7", Positions: [6]int{-1, 0, 2, 0, 2, 0}, IsDefault: true},
	{Name: "A7", Positions: [6]int{5, 7, 5, 6, 5, 5}, Barre: 5},
	{Name: "A7", Positions: [6]int{-1, 12, 14, 12, 14, 12}, Barre: 12},
	{Name: "Am7", Positions: [6]int{-1, 0, 2, 0, 1, 0}, IsDefault: true},
	{Name: "Am7", Positions: [6]int{5, 7, 5, 5, 5, 5}, Barre: 5},
	{Name: "Am7", Positions: [6]int{-1, 12, 14, 12, 13, 12}, Barre: 12},
	{Name: "Amaj7", Positions: [6]int{-1, 0, 2, 1, 2, 0}, IsDefault: true},
	{Name: "Amaj7", Positions: [6]int{5, -1, 6, 6, 5, -1}},
	{Name: "Amaj7", Positions: [6]int{-1, 12, 14, 13, 14, 12}, Barre: 12},
	{Name: "A6", Positions: [6]int{-1, 0, 2, 2, 2, 2}, IsDefault: true},
	{Name: "A6", Positions: [6]int{-1, 12, 14, 14, 14, 14}, Barre: 12},
	{Name: "Am6", Positions: [6]int{-1, 0, 2, 2, 1, 2}, IsDefault: true},
	{Name: "Asus2", Positions: [6]int{-1, 0, 2, 2, 0, 0}, IsDefault: true},
	{Name: "Asus2", Positions: [6]int{-1, 12, 14, 14, 12, 12}, Barre: 12},
	{Name: "Asus4", Positions: [6]int{-1, 0, 2, 2, 3, 0}, IsDefault: true},
	{Name: "Asus4", Positions: [6]int{5, 7, 7, 7, 5, 5}, Barre: 5},
	{Name: "Asus4", Positions: [6]int{-1, 12, 14, 14, 15, 12}, Barre: 12},
	{Name: "A7sus4", Positions: [6]int{-1, 0, 2, 0, 3, 0}, IsDefault: true},
	{Name: "Aadd9", Positions: [6]int{-1, 0, 2, 4, 2, 0}, IsDefault: true},
	{Name: "A9", Positions: [6]int{-1, 12, 11, 12, 12, 12}, Barre: 12, IsDefault: true},
	{Name: "Adim", Positions: [6]int{-1, 0, 1, 2, 1, -1}, IsDefault: true},
	{Name: "Adim", Positions: [6]int{-1, 12, 13, 14, 13, -1}},
	{Name: "Adim7", Positions: [6]int{-1, 12, 13, 11, 13, -1}, IsDefault: true},
	{Name: "Am7b5", Positions: [6]int{-1, 12, 13, 12, 13, -1}, IsDefault: true},
	{Name: "Aaug", Positions: [6]int{-1, 0, 3, 2, 2, 1}, IsDefault: true},
	{Name: "Aaug", Positions: [6]int{-1, 12, 15, 14, 14, 13}},

	// A#
	{Name: "A#", Positions: [6]int{-1, 1, 3, 3, 3, 1}, Barre: 1, IsDefault: true},
	{Name: "A#", Positions: [6]int{6, 8, 8, 7, 6, 6}, Barre: 6},
	{Name: "A#m", Positions: [6]int{-1, 1, 3, 3, 2, 1}, Barre: 1, IsDefault: true},
	{Name: "A#m", Positions: [6]int{6, 8, 8, 6, 6, 6}, Barre: 6},
	{Name: "A#7", Positions: [6]int{-1, 1, 3, 1, 3, 1}, Barre: 1, IsDefault: true},
	{Name: "A#7", Positions: [6]int{6, 8, 6, 7, 6, 6}, Barre: 6},
	{Name: "A#m7", Positions: [6]int{-1, 1, 3, 1, 2, 1}, Barre: 1, IsDefault: true},
	{Name: "A#m7", Positions: [6]int{6, 8, 6, 6, 6, 6}, Barre: 6},
	{Name: "A#maj7", Positions: [6]int{-1, 1, 3, 2, 3, 1}, Barre: 1, IsDefault: true},
	{Name: "A#maj7", Positions: [6]int{6, -1, 7, 7, 6, -1}},
	{Name: "A#6", Positions: [6]int{-1, 1, 3, 3, 3, 3}, Barre: 1, IsDefault: true},
	{Name: "A#sus2", Positions: [6]int{-1, 1, 3, 3, 1, 1}, Barre: 1, IsDefault: true},
	{Name: "A#sus4", Positions: [6]int{-1, 1, 3, 3, 4, 1}, Barre: 1, IsDefault: true},
	{Name: "A#sus4", Positions: [6]int{6, 8, 8, 8, 6, 6}, Barre: 6},
	{Name: "A#add9", Positions: [6]int{-1, 1, 3, 5, 3, 1}, Barre: 1, IsDefault: true},
	{Name: "A#dim", Positions: [6]int{-1, 1, 2, 3, 2, -1}, IsDefault: true},
	{Name: "A#m7b5", Positions: [6]int{-1, 1, 2, 1, 2, -1}, IsDefault: true},
	{Name: "A#aug", Positions: [6]int{-1, 1, 4, 3, 3, 2}, IsDefault: true},

	// B
	{Name: "B", Positions: [6]int{-1, 2, 4, 4, 4, 2}, Barre: 2, IsDefault: true},
	{Name: "B", Positions: [6]int{7, 9, 9, 8, 7, 7}, Barre: 7},
	{Name: "Bm", Positions: [6]int{-1, 2, 4, 4, 3, 2}, Barre: 2, IsDefault: true},
	{Name: "Bm", Positions: [6]int{7, 9, 9, 7, 7, 7}, Barre: 7},
	{Name: "B7", Positions: [6]int{-1, 2, 1, 2, 0, 2}, IsDefault: true},
	{Name: "B7", Positions: [6]int{-1, 2, 4, 2, 4, 2}, Barre: 2},
	{Name: "B7", Positions: [6]int{7, 9, 7, 8, 7, 7}, Barre: 7},
	{Name: "Bm7", Positions: [6]int{-1, 2, 4, 2, 3, 2}, Barre: 2, IsDefault: true},
	{Name: "Bm7", Positions: [6]int{7, 9, 7, 7, 7, 7}, Barre: 7},
	{Name: "Bmaj7", Positions: [6]int{-1, 2, 4, 3, 4, 2}, Barre: 2, IsDefault: true},
	{Name: "Bmaj7", Positions: [6]int{7, -1, 8, 8, 7, -1}},
	{Name: "B6", Positions: [6]int{-1, 2, 4, 4, 4, 4}, Barre: 2, IsDefault: true},
	{Name: "Bsus2", Positions: [6]int{-1, 2, 4, 4, 2, 2}, Barre: 2, IsDefault: true},
	{Name: "Bsus4", Positions: [6]int{-1, 2, 4, 4, 5, 2}, Barre: 2, IsDefault: true},
	{Name: "Bsus4", Positions: [6]int{7, 9, 9, 9, 7, 7}, Barre: 7},
	{Name: "Badd9", Positions: [6]int{-1, 2, 4, 6, 4, 2}, Barre: 2, IsDefault: true},
	{Name: "B9", Positions: [6]int{-1, 2, 1, 2, 2, 2}, Barre: 2, IsDefault: true},
	{Name: "Bdim", Positions: [6]int{-1, 2, 3, 4, 3, -1}, IsDefault: true},
	{Name: "Bdim7", Positions: [6]int{-1, 2, 3, 1, 3, -1}, IsDefault: true},
	{Name: "Bm7b5", Positions: [6]int{-1, 2, 3, 2, 3, -1}, IsDefault: true},
	{Name: "Baug", Positions: [6]int{-1, 2, 5, 4, 4, 3}, IsDefault: true},
}
