package stats

import (
	"fmt"
	"strings"

	"github.com/Lavizord/checkers-engine/internal/models"
)

type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// Tracker keeps win/loss/draw totals across the games of one session.
type Tracker struct {
	records map[models.Color]*Record
	draws   int
	played  int
}

func NewTracker() *Tracker {
	t := &Tracker{}
	t.Reset()
	return t
}

// RecordResult counts a finished game. NoColor records a draw.
func (t *Tracker) RecordResult(winner models.Color) {
	if winner == models.NoColor {
		t.draws++
	} else {
		t.records[winner].Wins++
		t.records[winner.Opponent()].Losses++
	}
	t.played++
}

func (t *Tracker) Reset() {
	t.records = map[models.Color]*Record{
		models.Red:   {},
		models.White: {},
	}
	t.draws = 0
	t.played = 0
}

func (t *Tracker) Record(c models.Color) Record {
	if r, ok := t.records[c]; ok {
		return *r
	}
	return Record{}
}

func (t *Tracker) Draws() int       { return t.draws }
func (t *Tracker) GamesPlayed() int { return t.played }

func (t *Tracker) String() string {
	var sb strings.Builder
	for _, c := range []models.Color{models.Red, models.White} {
		r := t.records[c]
		fmt.Fprintf(&sb, "%s: %d wins, %d losses\n", label(c), r.Wins, r.Losses)
	}
	fmt.Fprintf(&sb, "Draws: %d\nTotal games: %d\n", t.draws, t.played)
	return sb.String()
}

func label(c models.Color) string {
	name := c.String()
	return strings.ToUpper(name[:1]) + name[1:]
}
