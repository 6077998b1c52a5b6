package rules

import "skat/internal/domain"

// nullRules covers null games: no trump, natural card order with the jack
// between ten and queen, declarer must not win a single trick.
type nullRules struct{}

func (r *nullRules) IsCardAllowed(lead domain.Card, hasLead bool, hand []domain.Card, card domain.Card) bool {
	if !hasLead {
		return true
	}
	for _, c := range hand {
		if c.Suit == lead.Suit {
			return card.Suit == lead.Suit
		}
	}
	return true
}

func (r *nullRules) TrickWinner(t domain.Trick) domain.Position {
	winner := t.Plays[0]
	for _, p := range t.Plays[1:] {
		if p.Card.Suit == winner.Card.Suit && p.Card.NullOrder() > winner.Card.NullOrder() {
			winner = p
		}
	}
	return winner.Player
}

func (r *nullRules) GameWon(g *domain.GameState) bool {
	return g.TricksWonBy(g.Declarer) == 0
}

// Null game values are a fixed ladder, not base times multiplier.
func (r *nullRules) GameResult(g *domain.GameState) int {
	ann := g.Announcement
	value := 23
	switch {
	case ann.Hand && ann.Ouvert:
		value = 59
	case ann.Ouvert:
		value = 46
	case ann.Hand:
		value = 35
	}
	if !g.Won {
		return -2 * value
	}
	return value
}
