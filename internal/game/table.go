package game

import (
	"math/rand"
	"time"

	"skat/internal/domain"
)

// Table runs a series of games for three fixed players, rotating the deal
// so each player takes every seat in turn. A failed game never poisons the
// table; the next call starts fresh.
type Table struct {
	players [3]Player
	rng     *rand.Rand
	log     Logger
	gate    *Gate

	// RamschOnPassIn is handed to every game of the series.
	RamschOnPassIn bool

	gamesPlayed int
}

// NewTable seats three players in initial forehand, middlehand, rearhand
// order.
func NewTable(first, second, third Player, rng *rand.Rand, log Logger) *Table {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = NopLogger{}
	}
	return &Table{
		players:        [3]Player{first, second, third},
		rng:            rng,
		log:            log,
		gate:           NewGate(),
		RamschOnPassIn: true,
	}
}

// PlayGame runs the next game of the series with rotated seating.
func (t *Table) PlayGame() (*domain.GameState, error) {
	r := t.gamesPlayed % 3
	g := New(t.players[r], t.players[(r+1)%3], t.players[(r+2)%3], t.rng, t.log)
	g.gate = t.gate
	g.RamschOnPassIn = t.RamschOnPassIn
	t.gamesPlayed++
	return g.Play()
}

// GamesPlayed returns the number of games started at this table.
func (t *Table) GamesPlayed() int { return t.gamesPlayed }

// Pause suspends the running game at its next turn boundary. In-trick state
// is retained.
func (t *Table) Pause() { t.gate.Pause() }

// Resume continues a paused game.
func (t *Table) Resume() { t.gate.Resume() }

// Paused reports whether the table is paused.
func (t *Table) Paused() bool { return t.gate.Paused() }
