package bot

import (
	"sync"

	"skat/internal/domain"
)

// SimulationResults accumulates per-game-type outcomes of simulated
// episodes. Created fresh per decision query; safe for concurrent Record
// calls from fanned-out episodes.
type SimulationResults struct {
	mu       sync.Mutex
	won      map[domain.GameType]int
	episodes map[domain.GameType]int
}

func NewSimulationResults() *SimulationResults {
	return &SimulationResults{
		won:      make(map[domain.GameType]int),
		episodes: make(map[domain.GameType]int),
	}
}

// Record adds one episode outcome.
func (r *SimulationResults) Record(gt domain.GameType, won bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.episodes[gt]++
	if won {
		r.won[gt]++
	}
}

// WonRate returns the estimated win rate for a game type in [0, 1].
func (r *SimulationResults) WonRate(gt domain.GameType) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.episodes[gt] == 0 {
		return 0
	}
	return float64(r.won[gt]) / float64(r.episodes[gt])
}

// Episodes returns the number of episodes recorded for a game type.
func (r *SimulationResults) Episodes(gt domain.GameType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.episodes[gt]
}

// Rates returns all win rates keyed by game type.
func (r *SimulationResults) Rates() map[domain.GameType]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[domain.GameType]float64, len(r.episodes))
	for gt, n := range r.episodes {
		if n > 0 {
			out[gt] = float64(r.won[gt]) / float64(n)
		}
	}
	return out
}
