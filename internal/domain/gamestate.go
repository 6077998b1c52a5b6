package domain

import "github.com/google/uuid"

// GameStatus is the lifecycle stage of one game.
type GameStatus int32

const (
	StatusNotStarted GameStatus = iota
	StatusRunning
	StatusPreliminaryEnd
	StatusOver
)

func (s GameStatus) String() string {
	switch s {
	case StatusNotStarted:
		return "not started"
	case StatusRunning:
		return "running"
	case StatusPreliminaryEnd:
		return "preliminary end"
	case StatusOver:
		return "over"
	}
	return "unknown"
}

// GameState is the authoritative state of one game in progress. It is owned
// exclusively by the trick-play state machine; players only ever see the
// Knowledge projection.
type GameState struct {
	ID string

	Hands map[Position][]Card // current hands, shrink as cards are played
	Dealt map[Position][]Card // dealt snapshot, never mutated after dealing

	Skat      []Card // current skat (the discard after pickup)
	DealtSkat []Card
	SkatKnown bool // declarer has picked up the skat

	Declarer        Position
	HasDeclarer     bool
	Announcement    Announcement
	AnnouncementSet bool

	Tricks []*Trick
	Points map[Position]int

	Bids     map[Position]int
	Passed   map[Position]bool
	BidValue int // winning bid

	Status GameStatus

	Won         bool
	Lost        bool
	Overbid     bool
	Schneider   bool
	Schwarz     bool
	Jungfrau    bool
	Durchmarsch bool
	Result      int
}

// NewGameState returns an empty game with a fresh ID.
func NewGameState() *GameState {
	return &GameState{
		ID:     uuid.New().String(),
		Hands:  make(map[Position][]Card),
		Dealt:  make(map[Position][]Card),
		Points: make(map[Position]int),
		Bids:   make(map[Position]int),
		Passed: make(map[Position]bool),
	}
}

// DealCard adds a card to the seat's hand and dealt snapshot.
func (g *GameState) DealCard(pos Position, card Card) {
	g.Hands[pos] = append(g.Hands[pos], card)
	g.Dealt[pos] = append(g.Dealt[pos], card)
}

// DealSkat records the two face-down skat cards.
func (g *GameState) DealSkat(first, second Card) {
	g.DealtSkat = []Card{first, second}
	g.Skat = []Card{first, second}
}

// SetDeclarer fixes the declarer seat (or, for ramsch simulations, the
// perspective seat results are reported for).
func (g *GameState) SetDeclarer(pos Position) {
	g.Declarer = pos
	g.HasDeclarer = true
}

// SetAnnouncement fixes the declarer's announcement. No further changes are
// permitted once play starts.
func (g *GameState) SetAnnouncement(ann Announcement) {
	g.Announcement = ann
	g.AnnouncementSet = true
}

// CurrentTrick returns the most recently added trick.
func (g *GameState) CurrentTrick() *Trick {
	if len(g.Tricks) == 0 {
		return nil
	}
	return g.Tricks[len(g.Tricks)-1]
}

// AddTrick appends a new trick.
func (g *GameState) AddTrick(t *Trick) {
	g.Tricks = append(g.Tricks, t)
}

// AddPoints credits card points to a seat.
func (g *GameState) AddPoints(pos Position, points int) {
	g.Points[pos] += points
}

// TricksWonBy counts the resolved tricks won by the seat.
func (g *GameState) TricksWonBy(pos Position) int {
	n := 0
	for _, t := range g.Tricks {
		if t.Resolved && t.Winner == pos {
			n++
		}
	}
	return n
}

// SetBid records a seat's highest bid and the running winning bid value.
func (g *GameState) SetBid(pos Position, value int) {
	if value > g.Bids[pos] {
		g.Bids[pos] = value
	}
	if value > g.BidValue {
		g.BidValue = value
	}
}

// PlayedCards lists every card played into tricks so far, in play order.
func (g *GameState) PlayedCards() []Card {
	var out []Card
	for _, t := range g.Tricks {
		for _, p := range t.Plays {
			out = append(out, p.Card)
		}
	}
	return out
}

// Finished reports whether the game reached a terminal or preliminary end.
func (g *GameState) Finished() bool {
	return g.Status == StatusPreliminaryEnd || g.Status == StatusOver
}
