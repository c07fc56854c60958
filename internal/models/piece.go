package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Color int

const (
	NoColor Color = iota
	Red
	White
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case White:
		return "white"
	default:
		return "none"
	}
}

func (c Color) Opponent() Color {
	switch c {
	case Red:
		return White
	case White:
		return Red
	default:
		return NoColor
	}
}

// Direction is the row delta of a forward step: red moves up the board,
// white moves down.
func (c Color) Direction() int {
	if c == Red {
		return -1
	}
	return 1
}

// KingRow is the row on which a piece of this color is crowned.
func (c Color) KingRow() int {
	if c == Red {
		return 0
	}
	return Rows - 1
}

func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return Red, nil
	case "white", "w":
		return White, nil
	}
	return NoColor, fmt.Errorf("unknown color %q", s)
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

type Piece struct {
	ID    string `json:"piece_id"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Color Color  `json:"color"`
	King  bool   `json:"is_kinged"`
}

func newPiece(color Color, row, col int) *Piece {
	return &Piece{ID: uuid.NewString(), Row: row, Col: col, Color: color}
}

func (p *Piece) Position() Position {
	return Position{Row: p.Row, Col: p.Col}
}

// directions lists the diagonals the piece may travel along. Kings get all
// four, men only the two forward ones.
func (p *Piece) directions() []Position {
	if p.King {
		return []Position{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	}
	d := p.Color.Direction()
	return []Position{{d, -1}, {d, 1}}
}

func (p *Piece) String() string {
	kind := "man"
	if p.King {
		kind = "king"
	}
	return fmt.Sprintf("%s %s at %s", p.Color, kind, p.Position())
}
