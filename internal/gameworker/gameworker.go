package gameworker

import (
	"context"
	"fmt"

	"github.com/Lavizord/checkers-engine/internal/ai"
	"github.com/Lavizord/checkers-engine/internal/logger"
	"github.com/Lavizord/checkers-engine/internal/models"
)

// Participant is anything that can pick a move for its color: the AI, a
// human at a prompt, a scripted test player. NextMove should give up once
// ctx is done.
type Participant interface {
	Color() models.Color
	NextMove(ctx context.Context, g *models.Game) (ai.Choice, bool)
}

type Outcome string

const (
	OutcomeWin       Outcome = "win"
	OutcomeBlocked   Outcome = "blocked"
	OutcomeTurnLimit Outcome = "turn_limit"
	OutcomeResigned  Outcome = "resigned"
)

// Result describes how a run ended. Winner is NoColor for draws.
type Result struct {
	Winner  models.Color
	Outcome Outcome
	Turns   int
}

func (r Result) Draw() bool {
	return r.Winner == models.NoColor
}

// GameWorker drives one game, asking the participant whose turn it is for
// a move and feeding it back through the game's selection flow.
type GameWorker struct {
	Game *models.Game
	// MaxTurns ends the game as a draw once reached; 0 means no limit.
	MaxTurns int
	// OnMove, if set, is called after every applied move.
	OnMove func(g *models.Game, record models.MoveRecord)

	participants map[models.Color]Participant
}

func New(game *models.Game, red, white Participant) (*GameWorker, error) {
	if red == nil || white == nil {
		return nil, fmt.Errorf("[gameworker] - both participants are required")
	}
	if red.Color() != models.Red || white.Color() != models.White {
		return nil, fmt.Errorf("[gameworker] - participants play %v and %v, want red and white", red.Color(), white.Color())
	}
	return &GameWorker{
		Game: game,
		participants: map[models.Color]Participant{
			models.Red:   red,
			models.White: white,
		},
	}, nil
}

// Run plays until the game ends or ctx is done. A move returned after ctx
// is done is not played.
func (gw *GameWorker) Run(ctx context.Context) (Result, error) {
	g := gw.Game
	logger.Default.Infof("(GameWorker) - starting game %v", g.ID)
	for {
		if err := ctx.Err(); err != nil {
			return gw.interrupted(err)
		}
		if res, done := gw.finished(); done {
			logger.Default.Infof("(GameWorker) - game %v over: %v, winner %v after %d turns", g.ID, res.Outcome, res.Winner, res.Turns)
			return res, nil
		}

		side := g.SideToMove()
		choice, ok := gw.participants[side].NextMove(ctx, g)
		if err := ctx.Err(); err != nil {
			return gw.interrupted(err)
		}
		if !ok {
			logger.Default.Infof("(GameWorker) - %v resigned game %v", side, g.ID)
			return Result{Winner: side.Opponent(), Outcome: OutcomeResigned, Turns: g.Turn()}, nil
		}
		if choice.Piece == nil || choice.Piece.Color != side || !g.Play(choice.Piece, choice.Dest) {
			return Result{Turns: g.Turn()}, fmt.Errorf("[gameworker] - illegal move from %v to %v", side, choice.Dest)
		}

		if gw.OnMove != nil {
			history := g.History()
			gw.OnMove(g, history[len(history)-1])
		}
	}
}

func (gw *GameWorker) interrupted(err error) (Result, error) {
	logger.Default.Infof("(GameWorker) - game %v interrupted after %d turns", gw.Game.ID, gw.Game.Turn())
	return Result{Turns: gw.Game.Turn()}, fmt.Errorf("[gameworker] - game %v interrupted: %w", gw.Game.ID, err)
}

func (gw *GameWorker) finished() (Result, bool) {
	g := gw.Game
	if w := g.Winner(); w != models.NoColor {
		return Result{Winner: w, Outcome: OutcomeWin, Turns: g.Turn()}, true
	}
	// The engine does not score a blocked side; the driver ends the game
	// as a draw so it cannot stall.
	if !g.Board().HasMoves(g.SideToMove()) {
		return Result{Outcome: OutcomeBlocked, Turns: g.Turn()}, true
	}
	if gw.MaxTurns > 0 && g.Turn() >= gw.MaxTurns {
		return Result{Outcome: OutcomeTurnLimit, Turns: g.Turn()}, true
	}
	return Result{}, false
}
