package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/Lavizord/checkers-engine/internal/models"
)

// Renderer draws boards and status lines as terminal text.
type Renderer struct {
	red       *color.Color
	white     *color.Color
	highlight *color.Color
	dim       *color.Color
}

// New returns a Renderer. With enabled false no escape codes are written;
// with true the fatih/color terminal detection still applies.
func New(enabled bool) *Renderer {
	r := &Renderer{
		red:       color.New(color.FgRed, color.Bold),
		white:     color.New(color.FgHiWhite, color.Bold),
		highlight: color.New(color.FgGreen),
		dim:       color.New(color.FgHiBlack),
	}
	if !enabled {
		for _, c := range []*color.Color{r.red, r.white, r.highlight, r.dim} {
			c.DisableColor()
		}
	}
	return r
}

// Board draws b with row and column indices. Destinations in highlights are
// marked with '*'.
func (r *Renderer) Board(b *models.Board, highlights models.Moves) string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < models.Cols; col++ {
		fmt.Fprintf(&sb, " %d", col)
	}
	sb.WriteByte('\n')

	for row := 0; row < models.Rows; row++ {
		fmt.Fprintf(&sb, "%d ", row)
		for col := 0; col < models.Cols; col++ {
			sb.WriteByte(' ')
			sb.WriteString(r.cell(b.GetPiece(row, col), highlights.Has(models.Position{Row: row, Col: col})))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r *Renderer) cell(p *models.Piece, highlighted bool) string {
	switch {
	case p == nil && highlighted:
		return r.highlight.Sprint("*")
	case p == nil:
		return r.dim.Sprint(".")
	case p.Color == models.Red && p.King:
		return r.red.Sprint("R")
	case p.Color == models.Red:
		return r.red.Sprint("r")
	case p.King:
		return r.white.Sprint("W")
	default:
		return r.white.Sprint("w")
	}
}

// Status is the info line: whose turn, piece counts and the winner if any.
func (r *Renderer) Status(g *models.Game) string {
	red, white := g.PieceCounts()
	counts := fmt.Sprintf("%s %d  %s %d", r.red.Sprint("red"), red, r.white.Sprint("white"), white)
	if w := g.Winner(); w != models.NoColor {
		return fmt.Sprintf("%s  |  %s wins!", counts, r.paint(w).Sprint(strings.ToUpper(w.String())))
	}
	return fmt.Sprintf("%s  |  turn %d, %s to move", counts, g.Turn()+1, r.paint(g.SideToMove()).Sprint(g.SideToMove()))
}

func (r *Renderer) paint(c models.Color) *color.Color {
	if c == models.Red {
		return r.red
	}
	return r.white
}
