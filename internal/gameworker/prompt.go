package gameworker

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Lavizord/checkers-engine/internal/ai"
	"github.com/Lavizord/checkers-engine/internal/models"
)

// Prompt is a human participant reading moves as text lines:
//
//	row col row col   move a piece
//	row col           select a piece, or move the selected piece there
//	level N           change the computer's difficulty
//	quit              resign
type Prompt struct {
	color models.Color
	in    *Lines
	out   io.Writer
	// Show, if set, is called before each move and after each selection,
	// e.g. to draw the board with the selection's destinations.
	Show func(g *models.Game)
	// ChangeLevel, if set, handles "level N" and returns the level in effect.
	ChangeLevel func(level int) int
}

func NewPrompt(color models.Color, in *Lines, out io.Writer) *Prompt {
	return &Prompt{color: color, in: in, out: out}
}

func (p *Prompt) Color() models.Color { return p.color }

// NextMove keeps asking until it reads a legal move. End of input, "quit"
// or ctx being done report false. It may leave a piece selected in g but
// never moves one.
func (p *Prompt) NextMove(ctx context.Context, g *models.Game) (ai.Choice, bool) {
	p.show(g)
	for {
		fmt.Fprintf(p.out, "%v> ", p.color)
		line, err := p.in.Next(ctx)
		if err != nil {
			fmt.Fprintln(p.out)
			return ai.Choice{}, false
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "q" || line == "quit" {
			return ai.Choice{}, false
		}
		if rest, ok := strings.CutPrefix(line, "level"); ok {
			p.level(strings.TrimSpace(rest))
			continue
		}

		nums, err := parseInts(line)
		if err != nil {
			fmt.Fprintf(p.out, "%v\n", err)
			continue
		}
		switch len(nums) {
		case 2:
			if c, ok := p.click(g, nums[0], nums[1]); ok {
				return c, true
			}
		case 4:
			c, err := p.choice(g, nums)
			if err != nil {
				fmt.Fprintf(p.out, "%v\n", err)
				continue
			}
			return c, true
		default:
			fmt.Fprintln(p.out, "enter 'row col row col', 'row col', 'level N' or 'quit'")
		}
	}
}

func (p *Prompt) show(g *models.Game) {
	if p.Show != nil {
		p.Show(g)
	}
}

// click works like a click on the board: a legal destination of the
// selected piece is a move, anything else selects a new piece.
func (p *Prompt) click(g *models.Game, row, col int) (ai.Choice, bool) {
	dest := models.Position{Row: row, Col: col}
	if sel := g.Selected(); sel != nil {
		if captured, ok := g.LegalDestinationsForSelection().Captured(dest); ok {
			return ai.Choice{Piece: sel, Dest: dest, Captured: captured}, true
		}
	}

	if !g.SelectAt(row, col) {
		fmt.Fprintf(p.out, "no %v piece at (%d,%d)\n", p.color, row, col)
		return ai.Choice{}, false
	}
	p.show(g)
	moves := g.LegalDestinationsForSelection()
	if moves.Len() == 0 {
		fmt.Fprintln(p.out, "no moves")
		return ai.Choice{}, false
	}
	for _, m := range moves.List() {
		fmt.Fprintf(p.out, "  %v captures %d\n", m.Dest, len(m.Captured))
	}
	return ai.Choice{}, false
}

func (p *Prompt) choice(g *models.Game, nums []int) (ai.Choice, error) {
	piece := g.Board().GetPiece(nums[0], nums[1])
	if piece == nil || piece.Color != p.color || !g.SelectAt(nums[0], nums[1]) || g.Selected() != piece {
		return ai.Choice{}, fmt.Errorf("no %v piece at (%d,%d)", p.color, nums[0], nums[1])
	}
	dest := models.Position{Row: nums[2], Col: nums[3]}
	captured, ok := g.LegalDestinationsForSelection().Captured(dest)
	if !ok {
		return ai.Choice{}, fmt.Errorf("%v cannot move to %v", piece.Position(), dest)
	}
	return ai.Choice{Piece: piece, Dest: dest, Captured: captured}, nil
}

func (p *Prompt) level(arg string) {
	if p.ChangeLevel == nil {
		fmt.Fprintln(p.out, "no computer player to adjust")
		return
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintf(p.out, "level needs a number from 1 to 5, got %q\n", arg)
		return
	}
	fmt.Fprintf(p.out, "difficulty set to %d\n", p.ChangeLevel(n))
}

func parseInts(line string) ([]int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", f)
		}
		nums = append(nums, n)
	}
	return nums, nil
}
