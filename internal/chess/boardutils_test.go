package chess

import "testing"

func TestCoordinateAt(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		ok       bool
	}{
		{"a8", 0, true},
		{"h8", 7, true},
		{"e2", 52, true},
		{"E2", 52, true},
		{"a1", 56, true},
		{"h1", 63, true},
		{"i1", -1, false},
		{"a9", -1, false},
		{"e", -1, false},
		{"", -1, false},
	}

	for _, test := range tests {
		got, ok := CoordinateAt(test.input)
		if got != test.expected || ok != test.ok {
			t.Errorf("CoordinateAt(%q) = %d, %v, expected %d, %v", test.input, got, ok, test.expected, test.ok)
		}
	}
}

func TestPositionAtRoundTrip(t *testing.T) {
	for c := 0; c < NumTiles; c++ {
		back, ok := CoordinateAt(PositionAt(c))
		if !ok || back != c {
			t.Errorf("coordinate %d round-tripped to %d", c, back)
		}
	}
	if PositionAt(-1) != "-" || PositionAt(64) != "-" {
		t.Error("Expected off-board coordinates to render as -")
	}
}

func TestColumnAndRankTables(t *testing.T) {
	columns := [][NumTiles]bool{FirstColumn, SecondColumn, ThirdColumn, FourthColumn, FifthColumn, SixthColumn, SeventhColumn, EighthColumn}
	ranks := [][NumTiles]bool{FirstRank, SecondRank, ThirdRank, FourthRank, FifthRank, SixthRank, SeventhRank, EighthRank}

	for c := 0; c < NumTiles; c++ {
		name := PositionAt(c)
		file := int(name[0] - 'a')
		rank := int(name[1] - '1')
		for i, col := range columns {
			if col[c] != (i == file) {
				t.Errorf("column table %d wrong at %s", i, name)
			}
		}
		for i, r := range ranks {
			if r[c] != (i == rank) {
				t.Errorf("rank table %d wrong at %s", i, name)
			}
		}
	}
}

func TestIsValidTileCoordinate(t *testing.T) {
	if IsValidTileCoordinate(-1) || IsValidTileCoordinate(64) {
		t.Error("Expected -1 and 64 to be invalid")
	}
	if !IsValidTileCoordinate(0) || !IsValidTileCoordinate(63) {
		t.Error("Expected 0 and 63 to be valid")
	}
}
