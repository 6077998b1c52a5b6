package rules

import "skat/internal/domain"

// suitRules covers the four suit games. The trump class is the trump suit
// plus all jacks.
type suitRules struct {
	trump domain.Suit
	base  int
}

func (r *suitRules) IsCardAllowed(lead domain.Card, hasLead bool, hand []domain.Card, card domain.Card) bool {
	return trumpGameCardAllowed(lead, hasLead, hand, card, r.trump, true)
}

func (r *suitRules) TrickWinner(t domain.Trick) domain.Position {
	return trumpGameTrickWinner(t, r.trump, true)
}

func (r *suitRules) GameWon(g *domain.GameState) bool {
	return trumpGameWon(g)
}

func (r *suitRules) GameResult(g *domain.GameState) int {
	return trumpGameResult(g, r.base)
}

// grandRules covers grand games, where only the four jacks are trump.
type grandRules struct{}

func (r *grandRules) IsCardAllowed(lead domain.Card, hasLead bool, hand []domain.Card, card domain.Card) bool {
	return trumpGameCardAllowed(lead, hasLead, hand, card, 0, false)
}

func (r *grandRules) TrickWinner(t domain.Trick) domain.Position {
	return trumpGameTrickWinner(t, 0, false)
}

func (r *grandRules) GameWon(g *domain.GameState) bool {
	return trumpGameWon(g)
}

func (r *grandRules) GameResult(g *domain.GameState) int {
	return trumpGameResult(g, BaseValue(domain.GameTypeGrand))
}

func trumpGameWon(g *domain.GameState) bool {
	points := g.Points[g.Declarer]
	ann := g.Announcement
	if ann.SchwarzAnnounced {
		return g.TricksWonBy(g.Declarer) == 10
	}
	if ann.SchneiderAnnounced {
		return points >= 90
	}
	return points >= 61
}

// trumpGameResult computes base value times the multiplier built from
// matadors and the announcement flags. Lost games count double.
func trumpGameResult(g *domain.GameState, base int) int {
	declarerCards := append(domain.CopyCards(g.Dealt[g.Declarer]), g.DealtSkat...)
	mult := Matadors(g.Announcement.GameType, declarerCards) + 1

	ann := g.Announcement
	if ann.Hand {
		mult++
	}
	if g.Schneider {
		mult++
	}
	if ann.SchneiderAnnounced {
		mult++
	}
	if g.Schwarz {
		mult++
	}
	if ann.SchwarzAnnounced {
		mult++
	}
	if ann.Ouvert {
		mult++
	}

	value := base * mult
	if !g.Won {
		return -2 * value
	}
	return value
}
