package ai

import "github.com/Lavizord/checkers-engine/internal/models"

// Scores are from red's point of view: red maximizes, white minimizes.
const (
	WinScore = 1000

	manValue  = 10
	kingValue = 15

	// Men this many rows or fewer from their king row earn an advance bonus.
	advanceRows = 3
)

// Evaluate scores a position statically: material (kings replace the man
// value), an advance bonus for men close to crowning and a point for each
// piece in the central 4x4. Returns red's total minus white's.
func Evaluate(b *models.Board) int {
	var score [3]int
	for row := 0; row < models.Rows; row++ {
		for col := 0; col < models.Cols; col++ {
			p := b.GetPiece(row, col)
			if p == nil {
				continue
			}
			score[p.Color] += pieceValue(p)
		}
	}
	return score[models.Red] - score[models.White]
}

func pieceValue(p *models.Piece) int {
	value := manValue
	if p.King {
		value = kingValue
	} else if dist := abs(p.Row - p.Color.KingRow()); dist < advanceRows {
		value += advanceRows - dist
	}
	if p.Row >= 2 && p.Row <= 5 && p.Col >= 2 && p.Col <= 5 {
		value++
	}
	return value
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
