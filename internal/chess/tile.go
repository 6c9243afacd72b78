package chess

import (
	"strings"
	"sync"
)

// Tile is one square of a board. An empty tile has no piece; empty tiles are
// shared from a pool, one per coordinate.
type Tile struct {
	coordinate int
	piece      *Piece
}

var (
	emptyTilesOnce sync.Once
	emptyTiles     [NumTiles]*Tile
)

func emptyTile(coordinate int) *Tile {
	emptyTilesOnce.Do(func() {
		for c := 0; c < NumTiles; c++ {
			emptyTiles[c] = &Tile{coordinate: c}
		}
	})
	return emptyTiles[coordinate]
}

// NewTile returns the pooled empty tile when piece is nil, otherwise a new
// occupied tile.
func NewTile(coordinate int, piece *Piece) *Tile {
	if piece == nil {
		return emptyTile(coordinate)
	}
	return &Tile{coordinate: coordinate, piece: piece}
}

func (t *Tile) Coordinate() int { return t.coordinate }

func (t *Tile) IsOccupied() bool { return t.piece != nil }

// Piece returns the occupant, or nil for an empty tile.
func (t *Tile) Piece() *Piece { return t.piece }

func (t *Tile) String() string {
	if t.piece == nil {
		return "-"
	}
	if t.piece.Alliance().IsBlack() {
		return strings.ToLower(t.piece.String())
	}
	return t.piece.String()
}
