package domain

// Suit of a Skat card. Ordered clubs-high as in the bid value table.
type Suit int32

const (
	Clubs Suit = iota
	Spades
	Hearts
	Diamonds
)

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	}
	return "?"
}

// Rank of a Skat card. The iota order is the suit-game order of the plain
// cards (jack last, it outranks everything as trump).
type Rank int32

const (
	Seven Rank = iota
	Eight
	Nine
	Queen
	King
	Ten
	Ace
	Jack
)

func (r Rank) String() string {
	switch r {
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	return "?"
}

// Card is a single Skat card. Value type, comparable, no identity semantics.
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return c.Suit.String() + c.Rank.String()
}

// Points returns the card's counting value per the standard Skat point table.
func (c Card) Points() int {
	switch c.Rank {
	case Jack:
		return 2
	case Queen:
		return 3
	case King:
		return 4
	case Ten:
		return 10
	case Ace:
		return 11
	}
	return 0
}

// NullOrder ranks cards within one suit for null games (no trump, natural
// order with the jack between ten and queen).
func (c Card) NullOrder() int {
	switch c.Rank {
	case Seven:
		return 0
	case Eight:
		return 1
	case Nine:
		return 2
	case Ten:
		return 3
	case Jack:
		return 4
	case Queen:
		return 5
	case King:
		return 6
	case Ace:
		return 7
	}
	return -1
}

// SuitOrder ranks plain (non-jack) cards within one suit for suit, grand and
// ramsch games.
func (c Card) SuitOrder() int {
	return int(c.Rank)
}

// JackOrder ranks the four jacks against each other, club jack highest.
func (c Card) JackOrder() int {
	return 3 - int(c.Suit)
}

// CardsTotalPoints sums the counting values of the given cards.
func CardsTotalPoints(cards []Card) int {
	sum := 0
	for _, c := range cards {
		sum += c.Points()
	}
	return sum
}

// ContainsCard reports whether the card is present in the slice.
func ContainsCard(cards []Card, card Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}

// RemoveCard returns a copy of cards with the first occurrence of card removed.
func RemoveCard(cards []Card, card Card) []Card {
	out := make([]Card, 0, len(cards))
	removed := false
	for _, c := range cards {
		if !removed && c == card {
			removed = true
			continue
		}
		out = append(out, c)
	}
	return out
}

// RemoveCards returns a copy of cards with every card in toRemove removed once.
func RemoveCards(cards []Card, toRemove []Card) []Card {
	out := append([]Card(nil), cards...)
	for _, c := range toRemove {
		out = RemoveCard(out, c)
	}
	return out
}

// CopyCards returns an independent copy of the slice.
func CopyCards(cards []Card) []Card {
	return append([]Card(nil), cards...)
}
