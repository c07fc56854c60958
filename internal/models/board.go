package models

import "strings"

const (
	Rows = 8
	Cols = 8

	// Rows of men each side starts with.
	startingRows = 3
)

type Board struct {
	grid   [Rows][Cols]*Piece
	pieces [3]int // live pieces, indexed by Color
	kings  [3]int // live kings, indexed by Color
}

// NewBoard initializes the board with the starting pieces: white on the
// dark squares of rows 0-2, red on rows 5-7.
func NewBoard() *Board {
	b := NewEmptyBoard()
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			// Only place pieces on dark squares
			if col%2 != (row+1)%2 {
				continue
			}
			if row < startingRows {
				b.Place(White, row, col)
			} else if row >= Rows-startingRows {
				b.Place(Red, row, col)
			}
		}
	}
	return b
}

func NewEmptyBoard() *Board {
	return &Board{}
}

// Place puts a new piece of color on an empty square and returns it, or nil
// when the square is off the board or taken. A man placed on its crowning
// row becomes a king.
func (b *Board) Place(color Color, row, col int) *Piece {
	pos := Position{Row: row, Col: col}
	if !pos.Valid() || b.grid[row][col] != nil || (color != Red && color != White) {
		return nil
	}
	p := newPiece(color, row, col)
	b.grid[row][col] = p
	b.pieces[color]++
	if row == color.KingRow() {
		p.King = true
		b.kings[color]++
	}
	return p
}

// PlaceKing is Place for an already crowned piece.
func (b *Board) PlaceKing(color Color, row, col int) *Piece {
	p := b.Place(color, row, col)
	if p != nil && !p.King {
		p.King = true
		b.kings[color]++
	}
	return p
}

// GetPiece returns the piece at (row, col), or nil for an empty or
// off-board square.
func (b *Board) GetPiece(row, col int) *Piece {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return nil
	}
	return b.grid[row][col]
}

func (b *Board) at(p Position) *Piece {
	return b.GetPiece(p.Row, p.Col)
}

// Move relocates piece to (row, col) and crowns it when it lands on its
// king row. The destination must have been validated by the caller.
func (b *Board) Move(piece *Piece, row, col int) {
	b.grid[piece.Row][piece.Col] = nil
	b.grid[row][col] = piece
	piece.Row, piece.Col = row, col

	if !piece.King && row == piece.Color.KingRow() {
		piece.King = true
		b.kings[piece.Color]++
	}
}

// Remove takes captured pieces off the board. Pieces that are not on the
// board are ignored.
func (b *Board) Remove(pieces []*Piece) {
	for _, p := range pieces {
		if p == nil || b.GetPiece(p.Row, p.Col) != p {
			continue
		}
		b.grid[p.Row][p.Col] = nil
		b.pieces[p.Color]--
		if p.King {
			b.kings[p.Color]--
		}
	}
}

// Winner returns the side whose opponent has no pieces left, or NoColor.
// A side that still has pieces but cannot move is not reported.
func (b *Board) Winner() Color {
	if b.pieces[Red] <= 0 {
		return White
	}
	if b.pieces[White] <= 0 {
		return Red
	}
	return NoColor
}

func (b *Board) Counts() (red, white int) {
	return b.pieces[Red], b.pieces[White]
}

func (b *Board) Kings() (red, white int) {
	return b.kings[Red], b.kings[White]
}

// Pieces returns the live pieces of color in row-major order.
func (b *Board) Pieces(color Color) []*Piece {
	pieces := make([]*Piece, 0, b.pieces[color])
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if p := b.grid[row][col]; p != nil && p.Color == color {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// HasMoves reports whether any piece of color has a legal move.
func (b *Board) HasMoves(color Color) bool {
	for _, p := range b.Pieces(color) {
		if b.ValidMoves(p).Len() > 0 {
			return true
		}
	}
	return false
}

// ValidMoves returns every destination reachable by piece this turn: single
// diagonal steps from its square and every landing square of a capture
// chain. Captures are not mandatory, so both kinds are listed.
func (b *Board) ValidMoves(piece *Piece) Moves {
	var moves Moves
	if piece == nil || b.GetPiece(piece.Row, piece.Col) != piece {
		return moves
	}

	origin := piece.Position()
	for _, d := range piece.directions() {
		adj := origin.Add(d)
		if !adj.Valid() {
			continue
		}
		if b.at(adj) == nil {
			moves.Set(adj, nil)
			continue
		}
		b.collectJumps(piece, origin, d, nil, &moves)
	}
	return moves
}

// collectJumps follows a jump from `from` along d and, if it lands, records
// the landing square with every piece captured on the path so far before
// exploring further jumps from there. A later path to the same landing
// square overwrites an earlier one.
func (b *Board) collectJumps(piece *Piece, from, d Position, path []*Piece, moves *Moves) {
	over := from.Add(d)
	land := over.Add(d)
	if !land.Valid() {
		return
	}
	enemy := b.at(over)
	if enemy == nil || enemy.Color == piece.Color || containsPiece(path, enemy) {
		return
	}
	// Landing squares must be empty at query time, which also rules out a
	// king's chain returning to its own origin.
	if b.at(land) != nil {
		return
	}

	captured := make([]*Piece, len(path), len(path)+1)
	copy(captured, path)
	captured = append(captured, enemy)
	moves.Set(land, captured)

	for _, next := range piece.directions() {
		b.collectJumps(piece, land, next, captured, moves)
	}
}

func containsPiece(pieces []*Piece, p *Piece) bool {
	for _, q := range pieces {
		if q == p {
			return true
		}
	}
	return false
}

// Clone returns a deep copy; pieces are duplicated and keep their IDs.
func (b *Board) Clone() *Board {
	c := &Board{pieces: b.pieces, kings: b.kings}
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if p := b.grid[row][col]; p != nil {
				cp := *p
				c.grid[row][col] = &cp
			}
		}
	}
	return c
}

// Undo records what Apply changed so the move can be taken back.
type Undo struct {
	piece    *Piece
	from     Position
	crowned  bool
	captured []*Piece
}

// Apply moves piece to dest and removes captured, returning the record
// needed to revert it with Undo. Like Move, it does not validate.
func (b *Board) Apply(piece *Piece, dest Position, captured []*Piece) Undo {
	u := Undo{piece: piece, from: piece.Position(), crowned: !piece.King}
	b.Move(piece, dest.Row, dest.Col)
	u.crowned = u.crowned && piece.King

	for _, p := range captured {
		if b.GetPiece(p.Row, p.Col) == p {
			u.captured = append(u.captured, p)
		}
	}
	b.Remove(u.captured)
	return u
}

// Undo reverts a move made by Apply. Moves must be undone in reverse order.
func (b *Board) Undo(u Undo) {
	p := u.piece
	b.grid[p.Row][p.Col] = nil
	p.Row, p.Col = u.from.Row, u.from.Col
	b.grid[p.Row][p.Col] = p
	if u.crowned {
		p.King = false
		b.kings[p.Color]--
	}

	for _, c := range u.captured {
		b.grid[c.Row][c.Col] = c
		b.pieces[c.Color]++
		if c.King {
			b.kings[c.Color]++
		}
	}
}

// String draws the board one row per line: '.' empty, r/w men, R/W kings.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			sb.WriteByte(pieceRune(b.grid[row][col]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func pieceRune(p *Piece) byte {
	switch {
	case p == nil:
		return '.'
	case p.Color == Red && p.King:
		return 'R'
	case p.Color == Red:
		return 'r'
	case p.King:
		return 'W'
	default:
		return 'w'
	}
}
