package ai

import (
	"context"
	"math"
	"math/rand"

	"github.com/Lavizord/checkers-engine/internal/models"
)

// Infinity bounds the alpha-beta window; no evaluation reaches it.
const Infinity = math.MaxInt32

// Choice is a move picked for a side. Piece and Captured refer to pieces of
// the board that was searched, never to the search's private copy.
type Choice struct {
	Piece    *models.Piece
	Dest     models.Position
	Captured []*models.Piece
	Score    int
}

type candidate struct {
	piece *models.Piece
	moves []models.Move
}

// movable lists the pieces of side that can move, row-major, each with its
// moves ordered captures first.
func movable(b *models.Board, side models.Color) []candidate {
	var out []candidate
	for _, p := range b.Pieces(side) {
		moves := b.ValidMoves(p)
		if moves.Len() == 0 {
			continue
		}
		out = append(out, candidate{piece: p, moves: moves.ByCaptures()})
	}
	return out
}

// Minimax scores b with alpha-beta pruning. The side to move is red when
// maximizing. Moves are applied and undone on b, which is left as found.
func Minimax(b *models.Board, depth, alpha, beta int, maximizing bool) int {
	switch b.Winner() {
	case models.Red:
		return WinScore
	case models.White:
		return -WinScore
	}
	if depth <= 0 {
		return Evaluate(b)
	}

	side := models.White
	if maximizing {
		side = models.Red
	}
	candidates := movable(b, side)
	if len(candidates) == 0 {
		// Blocked side: scored as a draw.
		return 0
	}

	best := Infinity
	if maximizing {
		best = -Infinity
	}
	for _, c := range candidates {
		for _, m := range c.moves {
			u := b.Apply(c.piece, m.Dest, m.Captured)
			value := Minimax(b, depth-1, alpha, beta, !maximizing)
			b.Undo(u)

			if maximizing {
				best = max(best, value)
				alpha = max(alpha, best)
			} else {
				best = min(best, value)
				beta = min(beta, best)
			}
			if beta <= alpha {
				break
			}
		}
		if beta <= alpha {
			break
		}
	}
	return best
}

// ChooseMove searches depth plies for side and returns its best move. The
// first of equally scored moves wins. Reports false when side cannot move.
func ChooseMove(board *models.Board, side models.Color, depth int) (Choice, bool) {
	if depth < 1 {
		depth = 1
	}
	scratch := board.Clone()
	candidates := movable(scratch, side)
	if len(candidates) == 0 {
		return Choice{}, false
	}

	var best Choice
	found := false
	for _, c := range candidates {
		from := c.piece.Position()
		for _, m := range c.moves {
			u := scratch.Apply(c.piece, m.Dest, m.Captured)
			value := Minimax(scratch, depth-1, -Infinity, Infinity, side.Opponent() == models.Red)
			scratch.Undo(u)

			if found && !better(side, value, best.Score) {
				continue
			}
			found = true
			best = Choice{
				Piece:    board.GetPiece(from.Row, from.Col),
				Dest:     m.Dest,
				Captured: originals(board, m.Captured),
				Score:    value,
			}
		}
	}
	return best, found
}

// ChooseMoveContext deepens the search one ply at a time up to maxDepth and
// returns the result of the deepest completed search. ctx is checked
// between depths only; depth 1 always runs.
func ChooseMoveContext(ctx context.Context, board *models.Board, side models.Color, maxDepth int) (Choice, int, bool) {
	var best Choice
	reached := 0
	for depth := 1; depth <= max(maxDepth, 1); depth++ {
		if depth > 1 && ctx.Err() != nil {
			break
		}
		c, ok := ChooseMove(board, side, depth)
		if !ok {
			return Choice{}, 0, false
		}
		best, reached = c, depth
	}
	return best, reached, true
}

// RandomMove picks uniformly among every legal move of side.
func RandomMove(board *models.Board, side models.Color, rng *rand.Rand) (Choice, bool) {
	var all []Choice
	for _, p := range board.Pieces(side) {
		for _, m := range board.ValidMoves(p).List() {
			all = append(all, Choice{Piece: p, Dest: m.Dest, Captured: m.Captured})
		}
	}
	if len(all) == 0 {
		return Choice{}, false
	}
	return all[rng.Intn(len(all))], true
}

func better(side models.Color, value, best int) bool {
	if side == models.Red {
		return value > best
	}
	return value < best
}

func originals(board *models.Board, pieces []*models.Piece) []*models.Piece {
	if len(pieces) == 0 {
		return nil
	}
	out := make([]*models.Piece, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, board.GetPiece(p.Row, p.Col))
	}
	return out
}
