package models

import (
	"github.com/google/uuid"

	"github.com/Lavizord/checkers-engine/internal/logger"
)

// MoveRecord is one completed move as kept in the game history.
type MoveRecord struct {
	Turn     int        `json:"turn"`
	PieceID  string     `json:"piece_id"`
	Color    Color      `json:"color"`
	From     Position   `json:"from"`
	To       Position   `json:"to"`
	Captured []Position `json:"captured"`
	Crowned  bool       `json:"is_kinged"`
}

// Game tracks whose turn it is and the current selection, and applies the
// moves players make against the board rules.
type Game struct {
	ID string

	board      *Board
	selected   *Piece
	validMoves Moves
	turn       Color
	turns      int
	history    []MoveRecord
}

// NewGame starts a game from the standard position with red to move.
func NewGame() *Game {
	return NewGameFromBoard(NewBoard(), Red)
}

// NewGameFromBoard starts a game on an arbitrary position.
func NewGameFromBoard(board *Board, toMove Color) *Game {
	g := &Game{
		ID:    uuid.NewString(),
		board: board,
		turn:  toMove,
	}
	logger.Default.Debugf("(NewGame) - game %v created, %v to move", g.ID, toMove)
	return g
}

// SelectAt handles a click on (row, col). With a piece selected, a legal
// destination completes the move; anything else drops the selection and
// is retried as a new selection. Without a selection, only a piece of the
// side to move can be selected.
func (g *Game) SelectAt(row, col int) bool {
	if g.selected != nil {
		if g.move(row, col) {
			return true
		}
		g.clearSelection()
		return g.SelectAt(row, col)
	}

	piece := g.board.GetPiece(row, col)
	if piece == nil || piece.Color != g.turn {
		return false
	}
	g.selected = piece
	g.validMoves = g.board.ValidMoves(piece)
	return true
}

// Play moves piece to dest, the same as selecting the piece and then the
// destination. Reports whether the move was made.
func (g *Game) Play(piece *Piece, dest Position) bool {
	if piece == nil {
		return false
	}
	g.clearSelection()
	if !g.SelectAt(piece.Row, piece.Col) || g.selected != piece {
		return false
	}
	before := g.turns
	g.SelectAt(dest.Row, dest.Col)
	return g.turns > before
}

func (g *Game) move(row, col int) bool {
	dest := Position{Row: row, Col: col}
	captured, ok := g.validMoves.Captured(dest)
	if !ok || g.board.GetPiece(row, col) != nil {
		return false
	}

	piece := g.selected
	from := piece.Position()
	wasKing := piece.King
	g.board.Move(piece, row, col)
	if len(captured) > 0 {
		g.board.Remove(captured)
	}

	record := MoveRecord{
		Turn:    g.turns + 1,
		PieceID: piece.ID,
		Color:   piece.Color,
		From:    from,
		To:      dest,
		Crowned: !wasKing && piece.King,
	}
	for _, c := range captured {
		record.Captured = append(record.Captured, c.Position())
	}
	g.history = append(g.history, record)
	logger.Default.Debugf("(Game %v) - %v moved %v -> %v, captured %d, crowned %v",
		g.ID, piece.Color, from, dest, len(captured), record.Crowned)

	g.changeTurn()
	return true
}

func (g *Game) changeTurn() {
	g.clearSelection()
	g.turn = g.turn.Opponent()
	g.turns++
}

func (g *Game) clearSelection() {
	g.selected = nil
	g.validMoves = Moves{}
}

// LegalDestinationsForSelection returns the moves of the selected piece,
// empty when nothing is selected.
func (g *Game) LegalDestinationsForSelection() Moves {
	return g.validMoves
}

func (g *Game) Selected() *Piece {
	return g.selected
}

func (g *Game) Winner() Color {
	return g.board.Winner()
}

func (g *Game) SideToMove() Color {
	return g.turn
}

func (g *Game) PieceCounts() (red, white int) {
	return g.board.Counts()
}

func (g *Game) Board() *Board {
	return g.board
}

// Turn is the number of moves made so far.
func (g *Game) Turn() int {
	return g.turns
}

func (g *Game) History() []MoveRecord {
	return append([]MoveRecord(nil), g.history...)
}
