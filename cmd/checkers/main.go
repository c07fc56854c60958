package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Lavizord/checkers-engine/internal/ai"
	"github.com/Lavizord/checkers-engine/internal/config"
	"github.com/Lavizord/checkers-engine/internal/gameworker"
	"github.com/Lavizord/checkers-engine/internal/logger"
	"github.com/Lavizord/checkers-engine/internal/models"
	"github.com/Lavizord/checkers-engine/internal/render"
	"github.com/Lavizord/checkers-engine/internal/stats"
)

var name = "checkers"

// Upper bound on turns when two AIs play each other.
const autoMaxTurns = 200

type options struct {
	mode  string
	color string
	level int
	seed  int64
}

func parseFlags() options {
	var o options
	configPath := flag.String("config", "", "path to a JSON config file (overrides CONFIG_PATH)")
	flag.StringVar(&o.mode, "mode", "", "ai (play the computer), pvp (two humans) or auto (computer vs computer)")
	flag.StringVar(&o.color, "color", "", "color played by the computer in ai mode: red or white")
	flag.IntVar(&o.level, "level", 0, "computer difficulty, 1 (very easy) to 5 (very hard)")
	flag.Int64Var(&o.seed, "seed", 0, "random seed for the easiest level, 0 uses the clock")
	flag.Parse()

	if *configPath != "" {
		os.Setenv("CONFIG_PATH", *configPath)
	}
	return o
}

func main() {
	opts := parseFlags()
	if err := config.LoadConfig(); err != nil {
		logger.Default.Fatalf("[%s] - error loading config: %v", name, err)
	}
	if err := logger.SetLevel(config.Cfg.Log.Level); err != nil {
		logger.Default.Fatalf("[%s] - %v", name, err)
	}
	applyFlags(&opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, opts)
	switch {
	case errors.Is(err, context.Canceled):
		fmt.Println("Interrupted.")
	case err != nil:
		logger.Default.Errorf("[%s] - %v", name, err)
		os.Exit(1)
	}
}

// applyFlags fills unset flags from the config.
func applyFlags(o *options) {
	if o.mode == "" {
		o.mode = "pvp"
		if config.Cfg.AI.Enabled {
			o.mode = "ai"
		}
	}
	if o.color == "" {
		o.color = config.Cfg.AI.Color
	}
	if o.level == 0 {
		o.level = config.Cfg.AI.Difficulty
	}
	o.level = config.ClampDifficulty(o.level)
	if o.seed == 0 {
		o.seed = config.Cfg.AI.Seed
	}
	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}
}

func run(ctx context.Context, o options) error {
	aiColor, err := models.ParseColor(o.color)
	if err != nil {
		return fmt.Errorf("invalid -color: %w", err)
	}
	r := render.New(config.Cfg.Display.Color)
	tracker := stats.NewTracker()
	stdin := gameworker.NewLines(os.Stdin)

	for {
		game := models.NewGame()
		red, white, err := participants(o, aiColor, r, stdin)
		if err != nil {
			return err
		}
		gw, err := gameworker.New(game, red, white)
		if err != nil {
			return err
		}
		if o.mode == "auto" {
			gw.MaxTurns = autoMaxTurns
			gw.OnMove = func(g *models.Game, rec models.MoveRecord) {
				fmt.Printf("%d. %v %v -> %v\n", rec.Turn, rec.Color, rec.From, rec.To)
			}
		}

		fmt.Println(describe(o, aiColor))
		res, err := gw.Run(ctx)
		if err != nil {
			return err
		}
		fmt.Print(r.Board(game.Board(), models.Moves{}))
		fmt.Println(r.Status(game))
		fmt.Println(summary(res))

		tracker.RecordResult(res.Winner)
		fmt.Print(tracker)

		if o.mode == "auto" || !again(ctx, stdin) {
			return nil
		}
	}
}

func participants(o options, aiColor models.Color, r *render.Renderer, stdin *gameworker.Lines) (gameworker.Participant, gameworker.Participant, error) {
	show := func(g *models.Game) {
		fmt.Print(r.Board(g.Board(), g.LegalDestinationsForSelection()))
		fmt.Println(r.Status(g))
	}
	human := func(c models.Color, opponent *ai.Player) gameworker.Participant {
		p := gameworker.NewPrompt(c, stdin, os.Stdout)
		p.Show = show
		if opponent != nil {
			p.ChangeLevel = func(level int) int {
				opponent.SetLevel(level)
				logger.Default.Infof("[%s] - difficulty changed to %d", name, opponent.Level())
				return opponent.Level()
			}
		}
		return p
	}
	computer := func(c models.Color) *ai.Player {
		var chance []ai.Option
		if p := config.Cfg.AI.RandomMoveChance; p != nil {
			chance = append(chance, ai.WithRandomMoveChance(*p))
		}
		opts := append(chance, ai.WithRand(rand.New(rand.NewSource(o.seed))))
		return ai.NewPlayer(c, o.level, opts...)
	}

	switch o.mode {
	case "pvp":
		return human(models.Red, nil), human(models.White, nil), nil
	case "auto":
		return computer(models.Red), computer(models.White), nil
	case "ai":
		if aiColor == models.Red {
			cpu := computer(models.Red)
			return cpu, human(models.White, cpu), nil
		}
		cpu := computer(models.White)
		return human(models.Red, cpu), cpu, nil
	}
	return nil, nil, fmt.Errorf("unknown -mode %q", o.mode)
}

func describe(o options, aiColor models.Color) string {
	switch o.mode {
	case "ai":
		return fmt.Sprintf("Playing against AI (level %d, 'level N' changes it). You are %s.", o.level, strings.ToUpper(aiColor.Opponent().String()))
	case "auto":
		return fmt.Sprintf("AI vs AI (level %d).", o.level)
	}
	return "Two player mode. Enter moves as 'row col row col', or 'row col' to select a piece and then its destination, 'quit' to resign."
}

func summary(res gameworker.Result) string {
	switch res.Outcome {
	case gameworker.OutcomeWin:
		return fmt.Sprintf("%s wins after %d turns.", strings.ToUpper(res.Winner.String()), res.Turns)
	case gameworker.OutcomeResigned:
		return fmt.Sprintf("%s resigned, %s wins.", strings.ToUpper(res.Winner.Opponent().String()), strings.ToUpper(res.Winner.String()))
	case gameworker.OutcomeBlocked:
		return "No legal moves left: draw."
	default:
		return fmt.Sprintf("Turn limit reached after %d turns: draw.", res.Turns)
	}
}

func again(ctx context.Context, stdin *gameworker.Lines) bool {
	fmt.Print("Play again? [y/N] ")
	line, err := stdin.Next(ctx)
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
