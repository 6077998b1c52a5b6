// Package game runs one Skat game: bidding, skat handling, announcement,
// ten trick rounds and scoring. It owns the authoritative GameState and
// consults the rule set for every legality and scoring decision.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"skat/internal/domain"
	"skat/internal/rules"
)

var (
	// ErrIllegalPlay marks a candidate card that is not legal under the
	// current trick and hand. Recovered locally, never fatal.
	ErrIllegalPlay = errors.New("illegal play")
	// ErrProtocolViolation marks a player response that breaks the engine
	// contract (card not held, wrong discard count, no response). The turn
	// is forfeited to a legal substitute.
	ErrProtocolViolation = errors.New("protocol violation")
)

// playRetries bounds re-prompting of human players before the engine
// substitutes a legal card to keep the table alive.
const playRetries = 3

// Game drives a single Skat game through its phases. One Game instance is
// the sole owner of its GameState; player turns are strictly sequential.
type Game struct {
	state   *domain.GameState
	players map[domain.Position]Player
	rules   rules.Rules
	rng     *rand.Rand
	log     Logger
	gate    *Gate

	// RamschOnPassIn plays a ramsch instead of throwing the cards in when
	// all three players pass.
	RamschOnPassIn bool
}

// New creates a game for the three seated players. rng may be nil for a
// time-seeded default, log may be nil to discard.
func New(forehand, middlehand, rearhand Player, rng *rand.Rand, log Logger) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = NopLogger{}
	}
	return &Game{
		state: domain.NewGameState(),
		players: map[domain.Position]Player{
			domain.Forehand:   forehand,
			domain.Middlehand: middlehand,
			domain.Rearhand:   rearhand,
		},
		rng:            rng,
		log:            log,
		gate:           NewGate(),
		RamschOnPassIn: true,
	}
}

// State exposes the authoritative state to the owning table. Players never
// see this, only Knowledge projections.
func (g *Game) State() *domain.GameState { return g.state }

// Gate returns the cooperative pause point checked between turns.
func (g *Game) Gate() *Gate { return g.gate }

// Play runs the full game: deal, bidding, skat handling, announcement,
// tricks and scoring. The returned state is terminal.
func (g *Game) Play() (*domain.GameState, error) {
	for pos, p := range g.players {
		p.NewGame(pos)
	}

	g.Deal()

	if !g.RunBidding() {
		if !g.RamschOnPassIn {
			return g.passIn(), nil
		}
		g.state.SetAnnouncement(domain.Announcement{GameType: domain.GameTypeRamsch})
		r, err := rules.ForGameType(domain.GameTypeRamsch)
		if err != nil {
			return nil, err
		}
		g.rules = r
		g.state.Status = domain.StatusRunning
		g.notifyGameStarted()
	} else {
		g.HandleSkat()
		if err := g.Announce(); err != nil {
			return nil, err
		}
	}

	g.PlayTricks()
	g.Score()
	return g.state, nil
}

// Deal shuffles a fresh deck and deals it in the traditional 3, skat,
// 4, 3 pattern: 10 cards per hand, 2 to the skat, 32 in total.
func (g *Game) Deal() {
	deck := domain.ShuffleDeck(g.rng, domain.NewDeck())

	next := 0
	take := func() domain.Card {
		c := deck[next]
		next++
		return c
	}

	for round, count := range []int{3, 4, 3} {
		for _, pos := range domain.Positions {
			for i := 0; i < count; i++ {
				g.dealCard(pos, take())
			}
		}
		if round == 0 {
			g.state.DealSkat(take(), take())
		}
	}
}

// DealPreset seeds an exact deal instead of shuffling. Used by the
// simulation engine for hypothetical games.
func (g *Game) DealPreset(hands map[domain.Position][]domain.Card, skat []domain.Card) {
	for _, pos := range domain.Positions {
		for _, c := range hands[pos] {
			g.dealCard(pos, c)
		}
	}
	g.state.DealSkat(skat[0], skat[1])
}

func (g *Game) dealCard(pos domain.Position, c domain.Card) {
	g.state.DealCard(pos, c)
	g.players[pos].TakeCard(c)
}

// RunBidding performs the two bidding duels: middlehand against forehand,
// then rearhand against the survivor. Returns false when all players passed.
func (g *Game) RunBidding() bool {
	survivor, bid := g.duel(domain.Middlehand, domain.Forehand, 0)
	declarer, bid := g.duel(domain.Rearhand, survivor, bid)

	if bid == 0 {
		// Nobody bid; the remaining player may still take the game at 18.
		k := g.state.KnowledgeFor(declarer)
		if v := g.players[declarer].BidMore(k, 18); v >= 18 {
			g.recordBid(declarer, v)
			bid = v
		} else {
			g.recordPass(declarer)
			g.log.Info("game %s passed in", g.state.ID)
			return false
		}
	}

	g.state.SetDeclarer(declarer)
	g.log.Debug("bidding won by %s at %d", declarer, bid)
	return true
}

// duel lets bidder raise against holder until one of them gives up. Bids
// must be strictly increasing; anything else counts as a pass.
func (g *Game) duel(bidder, holder domain.Position, currentBid int) (domain.Position, int) {
	for {
		g.gate.Wait()

		next := rules.NextBidValue(currentBid)
		if next < 0 {
			return holder, currentBid
		}

		k := g.state.KnowledgeFor(bidder)
		v := g.players[bidder].BidMore(k, next)
		if v < next {
			if v >= 0 {
				g.log.Warn("%s bid %d below required %d: %v", bidder, v, next, ErrProtocolViolation)
			}
			g.recordPass(bidder)
			return holder, currentBid
		}
		g.recordBid(bidder, v)
		currentBid = v

		hk := g.state.KnowledgeFor(holder)
		if !g.players[holder].HoldBid(hk, currentBid) {
			g.recordPass(holder)
			return bidder, currentBid
		}
		g.recordBid(holder, currentBid)
	}
}

func (g *Game) recordBid(pos domain.Position, value int) {
	g.state.SetBid(pos, value)
	for _, p := range g.players {
		p.BidByPlayer(pos, value)
	}
}

func (g *Game) recordPass(pos domain.Position) {
	g.state.Passed[pos] = true
	for _, p := range g.players {
		p.BidByPlayer(pos, -1)
	}
}

// HandleSkat asks the declarer to pick up the skat or play a hand game.
// On pickup the declarer must discard exactly two cards it holds; anything
// else forfeits to a logged substitute discard.
func (g *Game) HandleSkat() {
	declarer := g.state.Declarer
	player := g.players[declarer]

	g.gate.Wait()

	if !player.PickUpSkat(g.state.KnowledgeFor(declarer)) {
		g.log.Debug("%s plays a hand game", declarer)
		return
	}

	g.state.SkatKnown = true
	player.TakeSkat(domain.CopyCards(g.state.Skat))
	g.state.Hands[declarer] = append(g.state.Hands[declarer], g.state.Skat...)

	discard := player.DiscardSkat(g.state.KnowledgeFor(declarer))
	if !g.validDiscard(declarer, discard) {
		g.log.Error("%s returned bad discard %v: %v", declarer, discard, ErrProtocolViolation)
		discard = domain.CopyCards(g.state.Hands[declarer][:2])
	}

	g.state.Skat = domain.CopyCards(discard)
	g.state.Hands[declarer] = domain.RemoveCards(g.state.Hands[declarer], discard)
}

func (g *Game) validDiscard(declarer domain.Position, discard []domain.Card) bool {
	if len(discard) != 2 || discard[0] == discard[1] {
		return false
	}
	hand := g.state.Hands[declarer]
	return domain.ContainsCard(hand, discard[0]) && domain.ContainsCard(hand, discard[1])
}

// Announce asks the declarer to fix the game. The announcement is terminal;
// an unsupported game type is fatal to this game (not the table).
func (g *Game) Announce() error {
	declarer := g.state.Declarer
	g.gate.Wait()

	// The hand flag follows the skat, not the player's claim: picking it up
	// forfeits hand, leaving it down implies it.
	ann := g.players[declarer].AnnounceGame(g.state.KnowledgeFor(declarer))
	ann.Hand = !g.state.SkatKnown

	if ann.GameType == domain.GameTypeRamsch || ann.GameType == domain.GameTypePassedIn {
		return fmt.Errorf("%w: %s cannot be announced", rules.ErrUnsupportedGameType, ann.GameType)
	}
	r, err := rules.ForGameType(ann.GameType)
	if err != nil {
		return err
	}

	g.rules = r
	g.state.SetAnnouncement(ann)
	g.state.Status = domain.StatusRunning
	g.log.Debug("%s announces %s (hand=%v ouvert=%v)", declarer, ann.GameType, ann.Hand, ann.Ouvert)
	g.notifyGameStarted()
	return nil
}

// ForceAnnouncement skips bidding and skat handling, fixing declarer and
// announcement directly. Used by the simulation engine.
func (g *Game) ForceAnnouncement(declarer domain.Position, ann domain.Announcement) error {
	r, err := rules.ForGameType(ann.GameType)
	if err != nil {
		return err
	}
	g.rules = r
	g.state.SetDeclarer(declarer)
	g.state.SetAnnouncement(ann)
	g.state.Status = domain.StatusRunning
	g.notifyGameStarted()
	return nil
}

func (g *Game) notifyGameStarted() {
	for pos, p := range g.players {
		p.GameStarted(g.state.KnowledgeFor(pos))
	}
}

// PlayTricks runs up to ten trick rounds. The winner of a trick leads the
// next one. A null game ends preliminarily at the earliest trick the
// declarer wins.
func (g *Game) PlayTricks() {
	forehand := domain.Forehand

	for trickNo := 0; trickNo < 10; trickNo++ {
		trick := domain.NewTrick(trickNo, forehand)
		g.state.AddTrick(trick)

		pos := forehand
		for i := 0; i < 3; i++ {
			g.gate.Wait()
			g.playCard(trick, pos)
			pos = pos.Next()
		}

		winner := g.rules.TrickWinner(*trick)
		trick.Winner = winner
		trick.Resolved = true
		g.state.AddPoints(winner, trick.Points())
		forehand = winner

		for _, p := range g.players {
			p.ShowTrick(trick.Copy())
		}

		if g.state.Announcement.GameType == domain.GameTypeNull && winner == g.state.Declarer {
			g.state.Status = domain.StatusPreliminaryEnd
			g.log.Debug("null game lost preliminarily in trick %d", trickNo)
			return
		}
	}
}

// playCard obtains one card from the seat and applies it. Illegal plays by
// automated players are logged as rule violations and accepted to avoid
// deadlock; humans are re-prompted a bounded number of times. A card the
// player does not hold forfeits the turn to the first legal card.
func (g *Game) playCard(trick *domain.Trick, pos domain.Position) {
	player := g.players[pos]
	hand := g.state.Hands[pos]
	lead, hasLead := trick.FirstCard()

	var card domain.Card
	accepted := false
	for attempt := 0; attempt < playRetries && !accepted; attempt++ {
		card = player.PlayCard(g.state.KnowledgeFor(pos))

		switch {
		case !domain.ContainsCard(hand, card):
			g.log.Error("%s played %s it does not hold: %v", pos, card, ErrProtocolViolation)
		case !g.rules.IsCardAllowed(lead, hasLead, hand, card):
			if player.IsHuman() {
				g.log.Debug("%s: %s not allowed, re-prompting: %v", pos, card, ErrIllegalPlay)
				continue
			}
			g.log.Warn("rule violation by %s: %s accepted for liveness: %v", pos, card, ErrIllegalPlay)
			accepted = true
			continue
		default:
			accepted = true
			continue
		}

		// Not held, or retries exhausted below: substitute.
		break
	}

	if !accepted {
		legal := rules.PlayableCards(g.rules, trick, hand)
		if len(legal) == 0 {
			legal = hand
		}
		card = legal[0]
		g.log.Warn("substituting %s for %s's turn", card, pos)
	}

	g.state.Hands[pos] = domain.RemoveCard(hand, card)
	trick.AddPlay(pos, card)

	for _, p := range g.players {
		p.CardPlayed(pos, card)
	}
}

// Score finishes the game: skat points, schneider/schwarz respectively
// jungfrau/durchmarsch flags, result computation and the overbid check.
// All players are notified exactly once.
func (g *Game) Score() {
	st := g.state
	gameType := st.Announcement.GameType

	if gameType == domain.GameTypeRamsch {
		// Skat points go to the winner of the last trick.
		if last := st.CurrentTrick(); last != nil && last.Resolved {
			st.AddPoints(last.Winner, domain.CardsTotalPoints(st.Skat))
		}
		for _, pos := range domain.Positions {
			if st.TricksWonBy(pos) == 0 {
				st.Jungfrau = true
			}
			if len(st.Tricks) == 10 && st.TricksWonBy(pos) == 10 {
				st.Durchmarsch = true
				if !st.HasDeclarer {
					st.SetDeclarer(pos)
				}
			}
		}
	} else {
		st.AddPoints(st.Declarer, domain.CardsTotalPoints(st.Skat))

		if gameType != domain.GameTypeNull {
			declarerPoints := st.Points[st.Declarer]
			st.Schneider = declarerPoints >= 90 || declarerPoints <= 30
			tricksWon := st.TricksWonBy(st.Declarer)
			st.Schwarz = tricksWon == len(st.Tricks) || tricksWon == 0
		}
	}

	// A passed-in ramsch has no declarer; every seat gets its own outcome.
	// Announced games share the declarer's outcome (defenders read the sign).
	wonBySeat := make(map[domain.Position]bool, len(domain.Positions))
	if gameType == domain.GameTypeRamsch {
		savedDeclarer, savedHasDeclarer := st.Declarer, st.HasDeclarer
		for _, pos := range domain.Positions {
			st.Declarer, st.HasDeclarer = pos, true
			wonBySeat[pos] = g.rules.GameWon(st)
		}
		st.Declarer, st.HasDeclarer = savedDeclarer, savedHasDeclarer
	}

	st.Won = g.rules.GameWon(st)
	st.Lost = !st.Won
	st.Result = g.rules.GameResult(st)

	// Ramsch has no bid to overbid; its won results are negative anyway.
	if gameType != domain.GameTypeRamsch && st.Won && st.BidValue > st.Result {
		g.log.Info("game %s overbid: bid %d above value %d", st.ID, st.BidValue, st.Result)
		st.Overbid = true
		st.Won = false
		st.Lost = true
		st.Result = g.rules.GameResult(st)
	}

	st.Status = domain.StatusOver

	for pos, p := range g.players {
		won := st.Won
		if gameType == domain.GameTypeRamsch {
			won = wonBySeat[pos]
		}
		p.SetGameResult(won, st.Result)
		p.FinalizeGame()
	}
}

func (g *Game) passIn() *domain.GameState {
	st := g.state
	st.SetAnnouncement(domain.Announcement{GameType: domain.GameTypePassedIn})
	st.Status = domain.StatusOver
	for _, p := range g.players {
		p.SetGameResult(false, 0)
		p.FinalizeGame()
	}
	return st
}
