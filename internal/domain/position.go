package domain

// Position is one of the three fixed seating roles at a Skat table.
// Forehand leads the first trick and speaks first in bidding responses.
type Position int32

const (
	Forehand Position = iota
	Middlehand
	Rearhand
)

// Positions lists the seats in table order.
var Positions = [3]Position{Forehand, Middlehand, Rearhand}

func (p Position) String() string {
	switch p {
	case Forehand:
		return "forehand"
	case Middlehand:
		return "middlehand"
	case Rearhand:
		return "rearhand"
	}
	return "unknown"
}

// Next returns the seat playing after p in trick order.
func (p Position) Next() Position {
	return (p + 1) % 3
}
