package ai

import (
	"context"
	"math/rand"
	"time"

	"github.com/Lavizord/checkers-engine/internal/config"
	"github.com/Lavizord/checkers-engine/internal/logger"
	"github.com/Lavizord/checkers-engine/internal/models"
)

// Chance of a random move at the lowest level.
const DefaultRandomMoveChance = 0.3

// Player is a computer opponent for one color. The level (1-5) sets the
// search depth; level 1 also plays a random move some of the time.
type Player struct {
	color            models.Color
	level            int
	depth            int
	randomMoveChance float64
	chanceOverride   *float64
	rng              *rand.Rand
}

type Option func(*Player)

// WithRand sets the source used for random moves. Tests pass a seeded one.
func WithRand(rng *rand.Rand) Option {
	return func(p *Player) { p.rng = rng }
}

// WithRandomMoveChance replaces DefaultRandomMoveChance. It still only
// applies at level 1.
func WithRandomMoveChance(chance float64) Option {
	return func(p *Player) { p.chanceOverride = &chance }
}

func NewPlayer(color models.Color, level int, opts ...Option) *Player {
	p := &Player{color: color}
	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	p.SetLevel(level)
	return p
}

// SetLevel clamps level into 1-5 and derives depth and random-move chance.
func (p *Player) SetLevel(level int) {
	p.level = config.ClampDifficulty(level)
	p.depth = p.level
	p.randomMoveChance = 0
	if p.level == config.MinDifficulty {
		p.randomMoveChance = DefaultRandomMoveChance
		if p.chanceOverride != nil {
			p.randomMoveChance = *p.chanceOverride
		}
	}
}

func (p *Player) Color() models.Color { return p.color }
func (p *Player) Level() int          { return p.level }
func (p *Player) Depth() int          { return p.depth }

// NextMove picks the player's move in g without changing g. The search
// deepens one ply at a time and stops early once ctx is done.
func (p *Player) NextMove(ctx context.Context, g *models.Game) (Choice, bool) {
	board := g.Board()

	if p.randomMoveChance > 0 && p.rng.Float64() < p.randomMoveChance {
		c, ok := RandomMove(board, p.color, p.rng)
		if !ok {
			logger.Default.Infof("(AI %v) - no legal moves", p.color)
			return c, false
		}
		logger.Default.Debugf("(AI %v) - random move %v -> %v", p.color, c.Piece.Position(), c.Dest)
		return c, true
	}

	start := time.Now()
	c, depth, ok := ChooseMoveContext(ctx, board, p.color, p.depth)
	if !ok {
		logger.Default.Infof("(AI %v) - no legal moves", p.color)
		return c, false
	}
	logger.Default.Debugf("(AI %v) - depth %d/%d chose %v -> %v, score %d, took %v",
		p.color, depth, p.depth, c.Piece.Position(), c.Dest, c.Score, time.Since(start))
	return c, true
}
