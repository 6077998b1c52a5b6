package rules

import "skat/internal/domain"

// ramschRules covers the punitive variant played when nobody bids. Jacks are
// trump as in grand; the player with the most card points loses.
//
// Skat disposition: the card points of the skat go to the winner of the last
// trick (the state machine credits them before scoring). This keeps the
// 120-point total intact and follows common tournament practice.
type ramschRules struct{}

func (r *ramschRules) IsCardAllowed(lead domain.Card, hasLead bool, hand []domain.Card, card domain.Card) bool {
	return trumpGameCardAllowed(lead, hasLead, hand, card, 0, false)
}

func (r *ramschRules) TrickWinner(t domain.Trick) domain.Position {
	return trumpGameTrickWinner(t, 0, false)
}

// GameWon reports the outcome for the perspective seat stored in the
// declarer slot: a ramsch is won by everyone who does not hold the highest
// point total. A durchmarsch (all ten tricks) wins outright.
func (r *ramschRules) GameWon(g *domain.GameState) bool {
	if g.Durchmarsch {
		return g.TricksWonBy(g.Declarer) == len(g.Tricks)
	}
	own := g.Points[g.Declarer]
	for _, pos := range domain.Positions {
		if g.Points[pos] > own {
			return true
		}
	}
	return false
}

// GameResult returns the table result of a ramsch: the loser's point total,
// negated. Jungfrau (a player without a single trick) doubles it; a
// durchmarsch turns the game into a 120-point win instead.
func (r *ramschRules) GameResult(g *domain.GameState) int {
	if g.Durchmarsch {
		return 120
	}
	highest := 0
	for _, pos := range domain.Positions {
		if g.Points[pos] > highest {
			highest = g.Points[pos]
		}
	}
	result := -highest
	if g.Jungfrau {
		result *= 2
	}
	return result
}
