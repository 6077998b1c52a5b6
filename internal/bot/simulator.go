package bot

import (
	"math/rand"
	"sync"
	"time"

	"skat/internal/config"
	"skat/internal/domain"
	"skat/internal/game"
)

// Simulator estimates win rates over hidden information by playing out
// bounded numbers of hypothetical games. Episodes are independent and are
// fanned out across goroutines; each owns a throwaway GameState that never
// aliases the real game.
type Simulator struct {
	cfg  config.Engine
	eval Evaluator
	log  game.Logger

	mu    sync.Mutex
	seeds *rand.Rand
}

// NewSimulator builds a simulator. rng may be nil for a time-seeded default.
func NewSimulator(cfg config.Engine, eval Evaluator, rng *rand.Rand, log game.Logger) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = game.NopLogger{}
	}
	return &Simulator{cfg: cfg, eval: eval, log: log, seeds: rng}
}

// Simulate runs up to cfg.MaxEpisodes episodes for every candidate game
// type. ownCards are the perspective seat's cards; knownSkat is non-nil only
// when the skat contents are known (after a discard decision).
func (s *Simulator) Simulate(gameTypes []domain.GameType, pos domain.Position, ownCards, knownSkat []domain.Card) *SimulationResults {
	results := NewSimulationResults()
	if len(gameTypes) == 0 {
		return results
	}

	var wg sync.WaitGroup
	for _, gt := range gameTypes {
		for ep := 0; ep < s.cfg.MaxEpisodes; ep++ {
			seed := s.nextSeed()
			wg.Add(1)
			go func(gt domain.GameType, seed int64) {
				defer wg.Done()
				won, err := s.playEpisode(gt, pos, ownCards, knownSkat, seed)
				if err != nil {
					s.log.Error("simulation episode failed: %v", err)
					return
				}
				results.Record(gt, won)
			}(gt, seed)
		}
	}
	wg.Wait()
	return results
}

func (s *Simulator) nextSeed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seeds.Int63()
}

// playEpisode deals the unseen cards randomly over the unknown positions,
// consistent with what is already known, and plays the guessed game to
// completion with policy players.
func (s *Simulator) playEpisode(gt domain.GameType, pos domain.Position, ownCards, knownSkat []domain.Card, seed int64) (bool, error) {
	rng := rand.New(rand.NewSource(seed))

	unseen := domain.RemoveCards(domain.NewDeck(), ownCards)
	unseen = domain.RemoveCards(unseen, knownSkat)
	unseen = domain.ShuffleDeck(rng, unseen)

	hands := map[domain.Position][]domain.Card{
		pos: domain.CopyCards(ownCards),
	}
	next := 0
	for _, other := range domain.Positions {
		if other == pos {
			continue
		}
		hands[other] = domain.CopyCards(unseen[next : next+10])
		next += 10
	}

	skat := knownSkat
	if len(skat) != 2 {
		skat = unseen[next : next+2]
	}

	players := make(map[domain.Position]game.Player, 3)
	for _, p := range domain.Positions {
		players[p] = newPolicyPlayer(s.eval, rng)
	}

	g := game.New(players[domain.Forehand], players[domain.Middlehand], players[domain.Rearhand], rng, game.NopLogger{})
	for _, p := range domain.Positions {
		players[p].NewGame(p)
	}
	g.DealPreset(hands, skat)
	if len(knownSkat) == 2 {
		g.State().SkatKnown = true
	}

	if err := g.ForceAnnouncement(pos, domain.Announcement{GameType: gt}); err != nil {
		return false, err
	}

	g.PlayTricks()
	g.Score()
	return g.State().Won, nil
}
