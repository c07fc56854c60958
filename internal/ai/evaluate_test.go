package ai

import (
	"testing"

	"github.com/Lavizord/checkers-engine/internal/models"
	"github.com/Lavizord/checkers-engine/internal/testutil"
)

func TestEvaluateStartIsBalanced(t *testing.T) {
	testutil.AssertEqual(t, Evaluate(models.NewBoard()), 0)
}

func TestEvaluatePieces(t *testing.T) {
	tests := []struct {
		name  string
		color models.Color
		row   int
		col   int
		king  bool
		want  int
	}{
		{"red man far from crowning", models.Red, 6, 1, false, 10},
		{"red man one row away", models.Red, 1, 0, false, 12},
		{"red man two rows away in center", models.Red, 2, 3, false, 12},
		{"red man three rows away", models.Red, 3, 0, false, 10},
		{"red king in center", models.Red, 4, 4, true, 16},
		{"red king on edge", models.Red, 0, 1, true, 15},
		{"white man one row away", models.White, 6, 1, false, -12},
		{"white man two rows away", models.White, 5, 0, false, -11},
		{"white man in center", models.White, 3, 2, false, -11},
		{"white king", models.White, 7, 0, true, -15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := models.NewEmptyBoard()
			if tt.king {
				b.PlaceKing(tt.color, tt.row, tt.col)
			} else {
				b.Place(tt.color, tt.row, tt.col)
			}
			testutil.AssertEqual(t, Evaluate(b), tt.want)
		})
	}
}

func TestEvaluateIsDifference(t *testing.T) {
	b := models.NewEmptyBoard()
	b.Place(models.Red, 1, 2)   // 12
	b.Place(models.White, 5, 0) // 11
	b.PlaceKing(models.White, 3, 3)

	testutil.AssertEqual(t, Evaluate(b), 12-11-16)
}
