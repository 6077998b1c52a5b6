package bot

import (
	"math/rand"
	"testing"

	"skat/internal/config"
	"skat/internal/domain"
)

func c(s domain.Suit, r domain.Rank) domain.Card { return domain.Card{Suit: s, Rank: r} }

// monsterHand holds every trump of a clubs game except the seven. It wins
// all ten tricks no matter how the hidden cards fall.
func monsterHand() []domain.Card {
	return []domain.Card{
		c(domain.Clubs, domain.Jack), c(domain.Spades, domain.Jack),
		c(domain.Hearts, domain.Jack), c(domain.Diamonds, domain.Jack),
		c(domain.Clubs, domain.Ace), c(domain.Clubs, domain.Ten),
		c(domain.Clubs, domain.King), c(domain.Clubs, domain.Queen),
		c(domain.Clubs, domain.Nine), c(domain.Clubs, domain.Eight),
	}
}

func newTestBot(t *testing.T, cfg config.Engine) *Bot {
	t.Helper()
	return NewBot("tester", cfg, nil, rand.New(rand.NewSource(42)), nil)
}

func TestSimulatorEpisodeCap(t *testing.T) {
	cfg := config.Default()
	cfg.MaxEpisodes = 3

	sim := NewSimulator(cfg, &HeuristicEvaluator{}, rand.New(rand.NewSource(1)), nil)
	results := sim.Simulate([]domain.GameType{domain.GameTypeGrand}, domain.Forehand, monsterHand(), nil)

	if got := results.Episodes(domain.GameTypeGrand); got != 3 {
		t.Fatalf("Episodes() = %d, want 3", got)
	}
	rate := results.WonRate(domain.GameTypeGrand)
	if rate < 0 || rate > 1 {
		t.Errorf("WonRate() = %v, out of [0, 1]", rate)
	}
}

func TestSimulateEmptyCandidates(t *testing.T) {
	sim := NewSimulator(config.Default(), &HeuristicEvaluator{}, rand.New(rand.NewSource(1)), nil)
	results := sim.Simulate(nil, domain.Forehand, monsterHand(), nil)
	if len(results.Rates()) != 0 {
		t.Error("no candidates must produce no rates")
	}
}

func TestFeasibleGameTypes(t *testing.T) {
	b := newTestBot(t, config.Default())

	high := b.feasibleCardsGameTypes(monsterHand(), nil, 100)
	wantIn := map[domain.GameType]bool{domain.GameTypeClubs: true, domain.GameTypeGrand: true}
	for _, gt := range high {
		delete(wantIn, gt)
		if gt == domain.GameTypeNull {
			t.Error("null (23) cannot cover a bid of 100")
		}
	}
	for gt := range wantIn {
		t.Errorf("%s missing from feasible types at bid 100", gt)
	}

	low := b.feasibleCardsGameTypes(monsterHand(), nil, 18)
	foundNull := false
	for _, gt := range low {
		if gt == domain.GameTypeNull {
			foundNull = true
		}
	}
	if !foundNull {
		t.Error("null must be feasible at bid 18")
	}
}

func TestBidMoreWithMonsterHand(t *testing.T) {
	b := newTestBot(t, config.Default())
	k := &domain.Knowledge{Self: domain.Forehand, OwnCards: monsterHand()}

	if got := b.BidMore(k, 18); got != 18 {
		t.Errorf("BidMore() = %d, want 18 for an unbeatable hand", got)
	}
	if !b.HoldBid(k, 24) {
		t.Error("HoldBid() must hold 24 with an unbeatable hand")
	}
}

// weakHand holds no jacks and almost no card points. It loses any trump
// game against simulated opponents holding the rest of the deck.
func weakHand() []domain.Card {
	return []domain.Card{
		c(domain.Clubs, domain.Seven), c(domain.Clubs, domain.Eight), c(domain.Clubs, domain.Nine),
		c(domain.Spades, domain.Seven), c(domain.Spades, domain.Eight), c(domain.Spades, domain.Nine),
		c(domain.Hearts, domain.Seven), c(domain.Hearts, domain.Eight), c(domain.Hearts, domain.Nine),
		c(domain.Diamonds, domain.Queen),
	}
}

func TestBidDeclinedWithWeakHand(t *testing.T) {
	b := newTestBot(t, config.Default())
	k := &domain.Knowledge{Self: domain.Middlehand, OwnCards: weakHand()}

	// Null (23) no longer covers a bid of 24, and no trump game with zero
	// jacks clears the win-rate threshold.
	if got := b.BidMore(k, 24); got != -1 {
		t.Errorf("BidMore() = %d, want -1 for a hand without trumps or points", got)
	}
	if b.HoldBid(k, 24) {
		t.Error("HoldBid() must give up 24 with a hand without trumps or points")
	}
}

func TestPickUpSkatDeclinedForSureHandGame(t *testing.T) {
	b := newTestBot(t, config.Default())
	k := &domain.Knowledge{
		Self:     domain.Forehand,
		OwnCards: monsterHand(),
		Bids:     map[domain.Position]int{domain.Forehand: 18},
	}

	if b.PickUpSkat(k) {
		t.Error("an unbeatable hand should play without the skat")
	}
}

func TestDiscardSkatReturnsTwoHeldCards(t *testing.T) {
	cfg := config.Default()
	cfg.MaxEpisodes = 1
	b := newTestBot(t, cfg)

	cards := append(monsterHand(), c(domain.Hearts, domain.Seven), c(domain.Spades, domain.Eight))
	k := &domain.Knowledge{
		Self:     domain.Forehand,
		OwnCards: cards,
		Bids:     map[domain.Position]int{domain.Forehand: 18},
	}

	discard := b.DiscardSkat(k)
	if len(discard) != 2 {
		t.Fatalf("discard has %d cards, want 2", len(discard))
	}
	if discard[0] == discard[1] {
		t.Fatal("discard contains the same card twice")
	}
	for _, card := range discard {
		if !domain.ContainsCard(cards, card) {
			t.Errorf("discarded %s is not held", card)
		}
	}
	if !b.hasBestGameType {
		t.Error("discarding must settle on a game type for the announcement")
	}
}

func TestAnnounceAfterDiscardKeepsGameType(t *testing.T) {
	cfg := config.Default()
	cfg.MaxEpisodes = 1
	b := newTestBot(t, cfg)

	b.bestGameType = domain.GameTypeGrand
	b.hasBestGameType = true

	ann := b.AnnounceGame(&domain.Knowledge{Self: domain.Forehand, OwnCards: monsterHand()})
	if ann.GameType != domain.GameTypeGrand {
		t.Errorf("announced %s, want the grand settled during discarding", ann.GameType)
	}
	if ann.Hand {
		t.Error("a game announced after discarding is not a hand game")
	}
}

func TestPlayCardIsLegal(t *testing.T) {
	b := newTestBot(t, config.Default())

	trick := domain.NewTrick(0, domain.Forehand)
	trick.AddPlay(domain.Forehand, c(domain.Clubs, domain.Seven))

	k := &domain.Knowledge{
		Self:         domain.Middlehand,
		OwnCards:     []domain.Card{c(domain.Clubs, domain.King), c(domain.Spades, domain.Ace), c(domain.Hearts, domain.Ace)},
		Announcement: domain.Announcement{GameType: domain.GameTypeClubs},
		Announced:    true,
		Declarer:     domain.Forehand,
		HasDeclarer:  true,
		CurrentTrick: trick,
	}

	if got := b.PlayCard(k); got != c(domain.Clubs, domain.King) {
		t.Errorf("PlayCard() = %s, want the only legal card CK", got)
	}
}

func TestEvaluatorScoresInRange(t *testing.T) {
	eval := &HeuristicEvaluator{}
	trick := domain.NewTrick(0, domain.Forehand)
	trick.AddPlay(domain.Forehand, c(domain.Hearts, domain.Ace))

	k := &domain.Knowledge{
		Self:         domain.Middlehand,
		OwnCards:     []domain.Card{c(domain.Hearts, domain.King), c(domain.Clubs, domain.Jack), c(domain.Spades, domain.Seven)},
		Announcement: domain.Announcement{GameType: domain.GameTypeClubs},
		Announced:    true,
		Declarer:     domain.Forehand,
		HasDeclarer:  true,
		CurrentTrick: trick,
	}

	for _, card := range k.OwnCards {
		score := eval.Score(k, card)
		if score < 0 || score > 1 {
			t.Errorf("Score(%s) = %v, out of [0, 1]", card, score)
		}
	}
}
