package bot

import (
	"math/rand"

	"skat/internal/domain"
	"skat/internal/game"
	"skat/internal/rules"
)

// policyPlayer is the lightweight automated player driving simulated
// episodes. It plays greedily by evaluator score and never simulates
// itself, so episodes terminate without recursion.
type policyPlayer struct {
	pos  domain.Position
	eval Evaluator
	rng  *rand.Rand
}

func newPolicyPlayer(eval Evaluator, rng *rand.Rand) *policyPlayer {
	return &policyPlayer{eval: eval, rng: rng}
}

func (p *policyPlayer) NewGame(pos domain.Position)                   { p.pos = pos }
func (p *policyPlayer) TakeCard(card domain.Card)                     {}
func (p *policyPlayer) TakeSkat(cards []domain.Card)                  {}
func (p *policyPlayer) BidByPlayer(pos domain.Position, v int)        {}
func (p *policyPlayer) GameStarted(k *domain.Knowledge)               {}
func (p *policyPlayer) CardPlayed(pos domain.Position, c domain.Card) {}
func (p *policyPlayer) ShowTrick(t domain.Trick)                      {}
func (p *policyPlayer) SetGameResult(won bool, value int)             {}
func (p *policyPlayer) FinalizeGame()                                 {}
func (p *policyPlayer) IsHuman() bool                                 { return false }

// Episodes are set up with ForceAnnouncement, so bidding and skat handling
// never reach a policy player. The defaults are inert.
func (p *policyPlayer) BidMore(k *domain.Knowledge, nextBid int) int { return -1 }
func (p *policyPlayer) HoldBid(k *domain.Knowledge, bid int) bool    { return false }
func (p *policyPlayer) PickUpSkat(k *domain.Knowledge) bool          { return false }

func (p *policyPlayer) DiscardSkat(k *domain.Knowledge) []domain.Card {
	if len(k.OwnCards) < 2 {
		return nil
	}
	return domain.CopyCards(k.OwnCards[:2])
}

func (p *policyPlayer) AnnounceGame(k *domain.Knowledge) domain.Announcement {
	return domain.Announcement{GameType: domain.GameTypeNull}
}

func (p *policyPlayer) PlayCard(k *domain.Knowledge) domain.Card {
	r, err := rules.ForGameType(k.Announcement.GameType)
	if err != nil {
		return k.OwnCards[0]
	}
	legal := rules.PlayableCards(r, k.CurrentTrick, k.OwnCards)
	if len(legal) == 0 {
		legal = k.OwnCards
	}

	best := legal[0]
	bestScore := -1.0
	for _, c := range legal {
		if s := p.eval.Score(k, c); s > bestScore {
			bestScore = s
			best = c
		}
	}
	return best
}

var _ game.Player = (*policyPlayer)(nil)
