// Package bot implements the automated Skat player: simulation-backed
// bidding, discarding and hand-game decisions plus evaluator-guided card
// play.
package bot

import (
	"math/rand"
	"time"

	"skat/internal/config"
	"skat/internal/domain"
	"skat/internal/game"
	"skat/internal/rules"
)

// candidateGameTypes are the types an automated declarer considers. Ramsch
// and passed-in games are never announced.
var candidateGameTypes = []domain.GameType{
	domain.GameTypeClubs,
	domain.GameTypeSpades,
	domain.GameTypeHearts,
	domain.GameTypeDiamonds,
	domain.GameTypeGrand,
	domain.GameTypeNull,
}

// Bot is an automated player. It answers bidding, skat and announcement
// questions with bounded Monte-Carlo simulation over the hidden cards and
// picks live cards through the position evaluator.
type Bot struct {
	name string
	cfg  config.Engine
	sim  *Simulator
	eval Evaluator
	rng  *rand.Rand
	log  game.Logger

	pos domain.Position

	bestGameType    domain.GameType
	hasBestGameType bool
	won             bool
	gameValue       int
}

// NewBot builds an automated player. eval may be nil for the shipped
// heuristic, rng nil for a time-seeded default, log nil to discard.
func NewBot(name string, cfg config.Engine, eval Evaluator, rng *rand.Rand, log game.Logger) *Bot {
	if eval == nil {
		eval = &HeuristicEvaluator{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = game.NopLogger{}
	}
	return &Bot{
		name: name,
		cfg:  cfg,
		sim:  NewSimulator(cfg, eval, rng, log),
		eval: eval,
		rng:  rng,
		log:  log,
	}
}

// Name returns the bot's display name.
func (b *Bot) Name() string { return b.name }

func (b *Bot) NewGame(pos domain.Position) {
	b.pos = pos
	b.hasBestGameType = false
	b.won = false
	b.gameValue = 0
}

func (b *Bot) TakeCard(card domain.Card)                     {}
func (b *Bot) TakeSkat(cards []domain.Card)                  {}
func (b *Bot) BidByPlayer(pos domain.Position, v int)        {}
func (b *Bot) GameStarted(k *domain.Knowledge)               {}
func (b *Bot) CardPlayed(pos domain.Position, c domain.Card) {}
func (b *Bot) ShowTrick(t domain.Trick)                      {}
func (b *Bot) FinalizeGame()                                 {}
func (b *Bot) IsHuman() bool                                 { return false }

func (b *Bot) SetGameResult(won bool, value int) {
	b.won = won
	b.gameValue = value
}

// BidMore accepts the next bid value when simulation supports any feasible
// game type at that value; otherwise it declines ("no viable game" is a
// pass, not an error).
func (b *Bot) BidMore(k *domain.Knowledge, nextBid int) int {
	if b.anyGamePossible(k, nextBid) {
		return nextBid
	}
	return -1
}

// HoldBid holds when simulation supports any feasible game type at the
// current bid value.
func (b *Bot) HoldBid(k *domain.Knowledge, bid int) bool {
	return b.anyGamePossible(k, bid)
}

// PickUpSkat declines the skat (a hand game) only when a feasible game type
// clears the stricter hand-game threshold.
func (b *Bot) PickUpSkat(k *domain.Knowledge) bool {
	feasible := b.feasibleGameTypes(k, k.Bids[k.Self])
	results := b.sim.Simulate(feasible, k.Self, k.OwnCards, nil)
	for _, rate := range results.Rates() {
		if rate > b.cfg.MinWonRateForHandGame {
			return false
		}
	}
	return true
}

// DiscardSkat tries every discard of two cards, simulating each remaining
// hand, and keeps the discard and game type with the highest win rate.
func (b *Bot) DiscardSkat(k *domain.Knowledge) []domain.Card {
	cards := k.OwnCards
	best := domain.CopyCards(cards[:2])
	bestRate := -1.0

	for i := 0; i < len(cards)-1; i++ {
		for j := i + 1; j < len(cards); j++ {
			skat := []domain.Card{cards[i], cards[j]}
			remaining := domain.RemoveCards(cards, skat)

			feasible := b.feasibleCardsGameTypes(remaining, skat, k.Bids[k.Self])
			results := b.sim.Simulate(feasible, k.Self, remaining, skat)

			for _, gt := range feasible {
				if rate := results.WonRate(gt); rate > bestRate {
					bestRate = rate
					best = skat
					b.bestGameType = gt
					b.hasBestGameType = true
				}
			}
		}
	}

	return best
}

// AnnounceGame announces the game type remembered from discarding, or the
// best simulated type for a hand game. With no viable type at all the
// cheapest null is announced.
func (b *Bot) AnnounceGame(k *domain.Knowledge) domain.Announcement {
	if b.hasBestGameType {
		return domain.Announcement{GameType: b.bestGameType}
	}

	feasible := b.feasibleGameTypes(k, k.Bids[k.Self])
	results := b.sim.Simulate(feasible, k.Self, k.OwnCards, nil)

	bestType := domain.GameTypeNull
	bestRate := 0.0
	for gt, rate := range results.Rates() {
		if rate > bestRate {
			bestRate = rate
			bestType = gt
		}
	}
	if bestRate == 0 {
		b.log.Warn("%s: no viable game type, announcing null", b.name)
	}
	return domain.Announcement{GameType: bestType, Hand: len(k.Skat) == 0}
}

// PlayCard derives the legal candidates from the rule set, scores them with
// the evaluator and picks uniformly at random among near-optimal cards. The
// randomized tie-break avoids deterministic exploitability.
func (b *Bot) PlayCard(k *domain.Knowledge) domain.Card {
	r, err := rules.ForGameType(k.Announcement.GameType)
	if err != nil {
		b.log.Error("%s: %v", b.name, err)
		return k.OwnCards[0]
	}

	legal := rules.PlayableCards(r, k.CurrentTrick, k.OwnCards)
	if len(legal) == 0 {
		legal = domain.CopyCards(k.OwnCards)
	}

	var nearOptimal, top []domain.Card
	highest := -1.0
	for _, c := range legal {
		score := b.eval.Score(k, c)
		if score > 1.0-b.cfg.Epsilon {
			nearOptimal = append(nearOptimal, c)
		}
		if score > highest {
			highest = score
			top = top[:0]
			top = append(top, c)
		} else if score == highest {
			top = append(top, c)
		}
	}

	pool := nearOptimal
	if len(pool) == 0 {
		pool = top
	}
	return pool[b.rng.Intn(len(pool))]
}

// anyGamePossible reports whether any feasible game type clears the bidding
// threshold at the given bid value.
func (b *Bot) anyGamePossible(k *domain.Knowledge, bidValue int) bool {
	feasible := b.feasibleGameTypes(k, bidValue)
	if len(feasible) == 0 {
		return false
	}
	results := b.sim.Simulate(feasible, k.Self, k.OwnCards, nil)
	for _, rate := range results.Rates() {
		if rate > b.cfg.MinWonRateForBidding {
			return true
		}
	}
	return false
}

// feasibleGameTypes filters the candidate types down to those whose value,
// assuming a won game, covers the bid.
func (b *Bot) feasibleGameTypes(k *domain.Knowledge, bidValue int) []domain.GameType {
	return b.feasibleCardsGameTypes(k.OwnCards, k.Skat, bidValue)
}

func (b *Bot) feasibleCardsGameTypes(ownCards, skat []domain.Card, bidValue int) []domain.GameType {
	var out []domain.GameType
	for _, gt := range candidateGameTypes {
		r, err := rules.ForGameType(gt)
		if err != nil {
			continue
		}

		// The seat does not matter; the state exists only to compute the
		// best-case game value.
		st := domain.NewGameState()
		st.SetDeclarer(domain.Forehand)
		st.Dealt[domain.Forehand] = domain.CopyCards(ownCards)
		st.DealtSkat = domain.CopyCards(skat)
		st.SetAnnouncement(domain.Announcement{GameType: gt})
		st.Won = true

		if r.GameResult(st) >= bidValue {
			out = append(out, gt)
		}
	}
	return out
}

var _ game.Player = (*Bot)(nil)
