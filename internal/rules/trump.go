package rules

import "skat/internal/domain"

// isTrumpCard reports whether the card belongs to the trump class. hasSuit is
// false for grand and ramsch, where only the jacks are trump.
func isTrumpCard(c domain.Card, trump domain.Suit, hasSuit bool) bool {
	if c.Rank == domain.Jack {
		return true
	}
	return hasSuit && c.Suit == trump
}

// trumpOrder ranks trump cards against each other. Jacks sit on top of the
// trump suit, club jack highest.
func trumpOrder(c domain.Card) int {
	if c.Rank == domain.Jack {
		return 7 + c.JackOrder()
	}
	return c.SuitOrder()
}

// hasTrump reports whether the hand holds any trump card.
func hasTrump(hand []domain.Card, trump domain.Suit, hasSuit bool) bool {
	for _, c := range hand {
		if isTrumpCard(c, trump, hasSuit) {
			return true
		}
	}
	return false
}

// hasPlainSuit reports whether the hand holds a non-trump card of the suit.
// Jacks never count as members of their printed suit in trump games.
func hasPlainSuit(hand []domain.Card, suit domain.Suit) bool {
	for _, c := range hand {
		if c.Rank != domain.Jack && c.Suit == suit {
			return true
		}
	}
	return false
}

// trumpGameCardAllowed is the shared legality check for suit, grand and
// ramsch games.
func trumpGameCardAllowed(lead domain.Card, hasLead bool, hand []domain.Card, card domain.Card, trump domain.Suit, hasSuit bool) bool {
	if !hasLead {
		return true
	}
	if isTrumpCard(lead, trump, hasSuit) {
		if hasTrump(hand, trump, hasSuit) {
			return isTrumpCard(card, trump, hasSuit)
		}
		return true
	}
	if hasPlainSuit(hand, lead.Suit) {
		return card.Rank != domain.Jack && card.Suit == lead.Suit
	}
	return true
}

// trumpGameTrickWinner is the shared trick resolution for suit, grand and
// ramsch games.
func trumpGameTrickWinner(t domain.Trick, trump domain.Suit, hasSuit bool) domain.Position {
	winner := t.Plays[0]
	for _, p := range t.Plays[1:] {
		if beatsTrumpGame(winner.Card, p.Card, trump, hasSuit) {
			winner = p
		}
	}
	return winner.Player
}

func beatsTrumpGame(current, challenger domain.Card, trump domain.Suit, hasSuit bool) bool {
	curTrump := isTrumpCard(current, trump, hasSuit)
	chTrump := isTrumpCard(challenger, trump, hasSuit)
	switch {
	case chTrump && !curTrump:
		return true
	case chTrump && curTrump:
		return trumpOrder(challenger) > trumpOrder(current)
	case !chTrump && !curTrump:
		return challenger.Suit == current.Suit && challenger.SuitOrder() > current.SuitOrder()
	}
	return false
}

// Matadors counts the unbroken run of top trumps ("with N" when the club
// jack is held, "without N" otherwise) over the declarer's dealt cards plus
// the skat.
func Matadors(gt domain.GameType, cards []domain.Card) int {
	top := []domain.Card{
		{Suit: domain.Clubs, Rank: domain.Jack},
		{Suit: domain.Spades, Rank: domain.Jack},
		{Suit: domain.Hearts, Rank: domain.Jack},
		{Suit: domain.Diamonds, Rank: domain.Jack},
	}
	if trump, ok := gt.TrumpSuit(); ok {
		for _, r := range []domain.Rank{domain.Ace, domain.Ten, domain.King, domain.Queen, domain.Nine, domain.Eight, domain.Seven} {
			top = append(top, domain.Card{Suit: trump, Rank: r})
		}
	}

	with := domain.ContainsCard(cards, top[0])
	count := 0
	for _, c := range top {
		if domain.ContainsCard(cards, c) == with {
			count++
		} else {
			break
		}
	}
	return count
}
