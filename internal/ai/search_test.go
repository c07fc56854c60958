package ai

import (
	"context"
	"math/rand"
	"testing"

	"github.com/Lavizord/checkers-engine/internal/models"
	"github.com/Lavizord/checkers-engine/internal/testutil"
)

// fullMinimax is plain minimax without pruning, on a fresh clone per node.
func fullMinimax(b *models.Board, depth int, maximizing bool) int {
	switch b.Winner() {
	case models.Red:
		return WinScore
	case models.White:
		return -WinScore
	}
	if depth == 0 {
		return Evaluate(b)
	}
	side := models.White
	if maximizing {
		side = models.Red
	}
	best := Infinity
	if maximizing {
		best = -Infinity
	}
	moved := false
	for _, p := range b.Pieces(side) {
		for _, m := range b.ValidMoves(p).List() {
			moved = true
			c := b.Clone()
			cp := c.GetPiece(p.Row, p.Col)
			var captured []*models.Piece
			for _, x := range m.Captured {
				captured = append(captured, c.GetPiece(x.Row, x.Col))
			}
			c.Move(cp, m.Dest.Row, m.Dest.Col)
			c.Remove(captured)
			v := fullMinimax(c, depth-1, !maximizing)
			if maximizing {
				best = max(best, v)
			} else {
				best = min(best, v)
			}
		}
	}
	if !moved {
		return 0
	}
	return best
}

// playout advances b by n seeded random plies and returns the side to move.
func playout(b *models.Board, seed int64, n int) models.Color {
	rng := rand.New(rand.NewSource(seed))
	side := models.Red
	for i := 0; i < n && b.Winner() == models.NoColor; i++ {
		c, ok := RandomMove(b, side, rng)
		if !ok {
			break
		}
		b.Move(c.Piece, c.Dest.Row, c.Dest.Col)
		b.Remove(c.Captured)
		side = side.Opponent()
	}
	return side
}

func TestMinimaxTerminal(t *testing.T) {
	redOnly := models.NewEmptyBoard()
	redOnly.Place(models.Red, 5, 0)
	whiteOnly := models.NewEmptyBoard()
	whiteOnly.Place(models.White, 2, 1)

	for _, depth := range []int{0, 1, 3} {
		testutil.AssertEqual(t, Minimax(redOnly, depth, -Infinity, Infinity, false), WinScore)
		testutil.AssertEqual(t, Minimax(whiteOnly, depth, -Infinity, Infinity, true), -WinScore)
	}
}

func TestMinimaxDepthZeroIsEvaluation(t *testing.T) {
	b := models.NewBoard()
	playout(b, 7, 12)
	testutil.AssertEqual(t, Minimax(b, 0, -Infinity, Infinity, true), Evaluate(b))
}

func TestMinimaxBlockedSideScoresZero(t *testing.T) {
	b := models.NewEmptyBoard()
	b.Place(models.Red, 7, 0)
	b.Place(models.White, 6, 1)
	b.Place(models.White, 5, 2)

	testutil.AssertEqual(t, Minimax(b, 3, -Infinity, Infinity, true), 0)
}

func TestMinimaxRestoresBoard(t *testing.T) {
	b := models.NewBoard()
	playout(b, 3, 10)
	before := b.String()
	red, white := b.Counts()

	Minimax(b, 4, -Infinity, Infinity, true)

	testutil.AssertEqual(t, b.String(), before)
	redAfter, whiteAfter := b.Counts()
	testutil.AssertEqual(t, []int{redAfter, whiteAfter}, []int{red, white})
}

func TestAlphaBetaMatchesFullMinimax(t *testing.T) {
	type position struct {
		name  string
		board *models.Board
		side  models.Color
	}
	positions := []position{{"start", models.NewBoard(), models.Red}}
	for _, seed := range []int64{1, 2, 5, 11} {
		b := models.NewBoard()
		side := playout(b, seed, 16+int(seed))
		positions = append(positions, position{"playout", b, side})
	}

	for _, pos := range positions {
		for depth := 1; depth <= 4; depth++ {
			maximizing := pos.side == models.Red
			want := fullMinimax(pos.board, depth, maximizing)
			got := Minimax(pos.board, depth, -Infinity, Infinity, maximizing)
			if got != want {
				t.Errorf("%s depth %d: pruned %d, full %d\n%s", pos.name, depth, got, want, pos.board)
			}
		}
	}
}

func TestChooseMoveTakesWinningCapture(t *testing.T) {
	for depth := 1; depth <= 3; depth++ {
		b := models.NewEmptyBoard()
		red := b.Place(models.Red, 5, 2)
		white := b.Place(models.White, 4, 3)

		c, ok := ChooseMove(b, models.Red, depth)
		testutil.AssertTrue(t, ok)
		testutil.AssertTrue(t, c.Piece == red, "returns the caller's piece")
		testutil.AssertEqual(t, c.Dest, models.Position{Row: 3, Col: 4})
		testutil.AssertTrue(t, len(c.Captured) == 1 && c.Captured[0] == white, "captured refers to caller's board")
		testutil.AssertEqual(t, c.Score, WinScore)
	}
}

func TestChooseMoveWhiteMinimizes(t *testing.T) {
	b := models.NewEmptyBoard()
	b.Place(models.Red, 7, 0)
	b.Place(models.Red, 3, 4)
	white := b.Place(models.White, 2, 3)

	c, ok := ChooseMove(b, models.White, 1)
	testutil.AssertTrue(t, ok)
	testutil.AssertTrue(t, c.Piece == white)
	testutil.AssertEqual(t, c.Dest, models.Position{Row: 4, Col: 5})
	testutil.AssertEqual(t, c.Score, -1)
}

func TestChooseMoveNoMoves(t *testing.T) {
	b := models.NewEmptyBoard()
	b.Place(models.Red, 7, 0)
	b.Place(models.White, 6, 1)
	b.Place(models.White, 5, 2)

	_, ok := ChooseMove(b, models.Red, 3)
	testutil.AssertTrue(t, !ok)

	_, ok = ChooseMove(models.NewEmptyBoard(), models.White, 2)
	testutil.AssertTrue(t, !ok, "no pieces at all")
}

func TestChooseMoveIsDeterministicAndPure(t *testing.T) {
	b := models.NewBoard()
	playout(b, 9, 8)
	before := b.String()

	first, ok := ChooseMove(b, models.Red, 4)
	testutil.AssertTrue(t, ok)
	for i := 0; i < 3; i++ {
		again, _ := ChooseMove(b, models.Red, 4)
		testutil.AssertTrue(t, again.Piece == first.Piece, "same piece")
		testutil.AssertEqual(t, again.Dest, first.Dest)
		testutil.AssertEqual(t, again.Score, first.Score)
	}
	testutil.AssertEqual(t, b.String(), before, "board untouched")
	testutil.AssertTrue(t, b.ValidMoves(first.Piece).Has(first.Dest), "choice is legal")
}

func TestChooseMoveScoreMatchesSearch(t *testing.T) {
	b := models.NewBoard()
	c, _ := ChooseMove(b, models.Red, 3)
	testutil.AssertEqual(t, c.Score, Minimax(b, 3, -Infinity, Infinity, true))
}

func TestChooseMoveDepthFloor(t *testing.T) {
	b := models.NewBoard()
	zero, _ := ChooseMove(b, models.Red, 0)
	one, _ := ChooseMove(b, models.Red, 1)
	testutil.AssertTrue(t, zero.Piece == one.Piece)
	testutil.AssertEqual(t, zero.Dest, one.Dest)
}

func TestChooseMoveContext(t *testing.T) {
	b := models.NewBoard()

	c, depth, ok := ChooseMoveContext(context.Background(), b, models.Red, 3)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, depth, 3)
	want, _ := ChooseMove(b, models.Red, 3)
	testutil.AssertTrue(t, c.Piece == want.Piece)
	testutil.AssertEqual(t, c.Dest, want.Dest)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c, depth, ok = ChooseMoveContext(ctx, b, models.Red, 5)
	testutil.AssertTrue(t, ok, "depth 1 always completes")
	testutil.AssertEqual(t, depth, 1)
	want, _ = ChooseMove(b, models.Red, 1)
	testutil.AssertEqual(t, c.Dest, want.Dest)

	_, _, ok = ChooseMoveContext(context.Background(), models.NewEmptyBoard(), models.Red, 2)
	testutil.AssertTrue(t, !ok)
}

func TestRandomMove(t *testing.T) {
	b := models.NewBoard()
	for seed := int64(0); seed < 10; seed++ {
		a, ok := RandomMove(b, models.White, rand.New(rand.NewSource(seed)))
		testutil.AssertTrue(t, ok)
		again, _ := RandomMove(b, models.White, rand.New(rand.NewSource(seed)))
		testutil.AssertTrue(t, a.Piece == again.Piece && a.Dest == again.Dest, "seeded source is repeatable")
		testutil.AssertEqual(t, a.Piece.Color, models.White)
		testutil.AssertTrue(t, b.ValidMoves(a.Piece).Has(a.Dest), "random move is legal")
	}

	_, ok := RandomMove(models.NewEmptyBoard(), models.Red, rand.New(rand.NewSource(1)))
	testutil.AssertTrue(t, !ok)
}
