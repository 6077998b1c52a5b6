package domain

// Play is a single card played by a seat within a trick.
type Play struct {
	Player Position
	Card   Card
}

// Trick holds up to three plays in play order. The winner is assigned only
// after the third card; cards once played are never removed.
type Trick struct {
	Number   int // 0..9
	Forehand Position
	Plays    []Play
	Winner   Position
	Resolved bool
}

// NewTrick starts an empty trick led by the given seat.
func NewTrick(number int, forehand Position) *Trick {
	return &Trick{Number: number, Forehand: forehand}
}

// FirstCard returns the lead card, if any card has been played yet.
func (t *Trick) FirstCard() (Card, bool) {
	if len(t.Plays) == 0 {
		return Card{}, false
	}
	return t.Plays[0].Card, true
}

// AddPlay appends a play. Callers must not add more than three.
func (t *Trick) AddPlay(player Position, card Card) {
	t.Plays = append(t.Plays, Play{Player: player, Card: card})
}

// CardOf returns the card the given seat played into this trick.
func (t *Trick) CardOf(player Position) (Card, bool) {
	for _, p := range t.Plays {
		if p.Player == player {
			return p.Card, true
		}
	}
	return Card{}, false
}

// Complete reports whether all three seats have played.
func (t *Trick) Complete() bool {
	return len(t.Plays) == 3
}

// Points sums the counting values of the cards in the trick.
func (t *Trick) Points() int {
	sum := 0
	for _, p := range t.Plays {
		sum += p.Card.Points()
	}
	return sum
}

// Copy returns an independent copy so players cannot mutate shared state.
func (t *Trick) Copy() Trick {
	cp := *t
	cp.Plays = append([]Play(nil), t.Plays...)
	return cp
}
