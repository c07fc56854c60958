package render

import (
	"testing"

	"github.com/Lavizord/checkers-engine/internal/models"
	"github.com/Lavizord/checkers-engine/internal/testutil"
)

func TestBoard(t *testing.T) {
	g := models.NewGame()
	g.SelectAt(5, 2)

	got := New(false).Board(g.Board(), g.LegalDestinationsForSelection())
	want := "" +
		"   0 1 2 3 4 5 6 7\n" +
		"0  . w . w . w . w\n" +
		"1  w . w . w . w .\n" +
		"2  . w . w . w . w\n" +
		"3  . . . . . . . .\n" +
		"4  . * . * . . . .\n" +
		"5  r . r . r . r .\n" +
		"6  . r . r . r . r\n" +
		"7  r . r . r . r .\n"
	testutil.AssertEqual(t, got, want)
}

func TestBoardKings(t *testing.T) {
	b := models.NewEmptyBoard()
	b.PlaceKing(models.Red, 3, 3)
	b.Place(models.White, 7, 0)

	got := New(false).Board(b, models.Moves{})
	testutil.AssertEqual(t, got[len("   0 1 2 3 4 5 6 7\n")*4:][:19], "3  . . . R . . . .\n")
	testutil.AssertEqual(t, got[len(got)-19:], "7  W . . . . . . .\n")
}

func TestStatus(t *testing.T) {
	r := New(false)
	g := models.NewGame()
	testutil.AssertEqual(t, r.Status(g), "red 12  white 12  |  turn 1, red to move")

	g.SelectAt(5, 0)
	g.SelectAt(4, 1)
	testutil.AssertEqual(t, r.Status(g), "red 12  white 12  |  turn 2, white to move")

	b := models.NewEmptyBoard()
	b.Place(models.White, 3, 3)
	testutil.AssertEqual(t, r.Status(models.NewGameFromBoard(b, models.Red)), "red 0  white 1  |  WHITE wins!")
}
