package domain

// GameType identifies the rule variant of a single game.
type GameType int32

const (
	GameTypeClubs GameType = iota
	GameTypeSpades
	GameTypeHearts
	GameTypeDiamonds
	GameTypeGrand
	GameTypeNull
	GameTypeRamsch
	GameTypePassedIn
)

func (gt GameType) String() string {
	switch gt {
	case GameTypeClubs:
		return "clubs"
	case GameTypeSpades:
		return "spades"
	case GameTypeHearts:
		return "hearts"
	case GameTypeDiamonds:
		return "diamonds"
	case GameTypeGrand:
		return "grand"
	case GameTypeNull:
		return "null"
	case GameTypeRamsch:
		return "ramsch"
	case GameTypePassedIn:
		return "passed in"
	}
	return "unknown"
}

// IsSuitGame reports whether the game type is one of the four suit games.
func (gt GameType) IsSuitGame() bool {
	switch gt {
	case GameTypeClubs, GameTypeSpades, GameTypeHearts, GameTypeDiamonds:
		return true
	}
	return false
}

// TrumpSuit returns the trump suit for suit games.
func (gt GameType) TrumpSuit() (Suit, bool) {
	switch gt {
	case GameTypeClubs:
		return Clubs, true
	case GameTypeSpades:
		return Spades, true
	case GameTypeHearts:
		return Hearts, true
	case GameTypeDiamonds:
		return Diamonds, true
	}
	return 0, false
}

// Announcement fixes the declarer's game. Immutable once play starts.
type Announcement struct {
	GameType           GameType
	Hand               bool
	Ouvert             bool
	SchneiderAnnounced bool
	SchwarzAnnounced   bool
}
