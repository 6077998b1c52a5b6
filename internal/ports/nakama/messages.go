package nakama

import (
	"fmt"

	"skat/internal/domain"
)

// Wire payloads are JSON. Cards travel as two-letter codes, suit then rank:
// "CJ" is the club jack, "D7" the diamond seven, "HT" the heart ten.

// EncodeCard renders a card as its wire code.
func EncodeCard(c domain.Card) string {
	return c.String()
}

// EncodeCards renders a hand as wire codes.
func EncodeCards(cards []domain.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = EncodeCard(c)
	}
	return out
}

// DecodeCard parses a wire code back into a card.
func DecodeCard(code string) (domain.Card, error) {
	if len(code) != 2 {
		return domain.Card{}, fmt.Errorf("bad card code %q", code)
	}

	var suit domain.Suit
	switch code[0] {
	case 'C':
		suit = domain.Clubs
	case 'S':
		suit = domain.Spades
	case 'H':
		suit = domain.Hearts
	case 'D':
		suit = domain.Diamonds
	default:
		return domain.Card{}, fmt.Errorf("bad suit in card code %q", code)
	}

	var rank domain.Rank
	switch code[1] {
	case '7':
		rank = domain.Seven
	case '8':
		rank = domain.Eight
	case '9':
		rank = domain.Nine
	case 'T':
		rank = domain.Ten
	case 'J':
		rank = domain.Jack
	case 'Q':
		rank = domain.Queen
	case 'K':
		rank = domain.King
	case 'A':
		rank = domain.Ace
	default:
		return domain.Card{}, fmt.Errorf("bad rank in card code %q", code)
	}

	return domain.Card{Suit: suit, Rank: rank}, nil
}

// DecodeCards parses a list of wire codes.
func DecodeCards(codes []string) ([]domain.Card, error) {
	out := make([]domain.Card, len(codes))
	for i, code := range codes {
		c, err := DecodeCard(code)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// ParseGameType maps a wire game type name to the domain constant. Ramsch and
// passed-in games cannot be announced and are rejected.
func ParseGameType(name string) (domain.GameType, error) {
	switch name {
	case "clubs":
		return domain.GameTypeClubs, nil
	case "spades":
		return domain.GameTypeSpades, nil
	case "hearts":
		return domain.GameTypeHearts, nil
	case "diamonds":
		return domain.GameTypeDiamonds, nil
	case "grand":
		return domain.GameTypeGrand, nil
	case "null":
		return domain.GameTypeNull, nil
	}
	return 0, fmt.Errorf("bad game type %q", name)
}

// Client -> Server payloads.

type BidRequest struct {
	// Value is the bid to make; negative passes.
	Value int `json:"value"`
}

type HoldRequest struct {
	Hold bool `json:"hold"`
}

type PickUpSkatRequest struct {
	PickUp bool `json:"pick_up"`
}

type DiscardSkatRequest struct {
	Cards []string `json:"cards"`
}

type AnnounceRequest struct {
	GameType  string `json:"game_type"`
	Ouvert    bool   `json:"ouvert"`
	Schneider bool   `json:"schneider"`
	Schwarz   bool   `json:"schwarz"`
}

type PlayCardRequest struct {
	Card string `json:"card"`
}

// Server -> Client payloads.

type LobbyStateEvent struct {
	Seats     []SeatInfo `json:"seats"`
	OpenSeats int        `json:"open_seats"`
	Playing   bool       `json:"playing"`
	Paused    bool       `json:"paused"`
}

type SeatInfo struct {
	Seat        int    `json:"seat"`
	UserID      string `json:"user_id,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	IsBot       bool   `json:"is_bot"`
}

type CardDealtEvent struct {
	Card string `json:"card"`
}

type SkatTakenEvent struct {
	Cards []string `json:"cards"`
}

type BidPromptEvent struct {
	// Value is the bid the player is asked to make or hold.
	Value int  `json:"value"`
	Hold  bool `json:"hold"`
}

type BidMadeEvent struct {
	Position string `json:"position"`
	// Value is the bid made; negative means a pass.
	Value int `json:"value"`
}

type SkatPromptEvent struct{}

type DiscardPromptEvent struct {
	Hand []string `json:"hand"`
}

type AnnouncePromptEvent struct{}

type GameStartedEvent struct {
	Position      string   `json:"position"`
	Declarer      string   `json:"declarer"`
	GameType      string   `json:"game_type"`
	Hand          bool     `json:"hand"`
	Ouvert        bool     `json:"ouvert"`
	BidValue      int      `json:"bid_value"`
	OwnCards      []string `json:"own_cards"`
	DeclarerCards []string `json:"declarer_cards,omitempty"`
}

type PlayPromptEvent struct {
	Hand  []string `json:"hand"`
	Trick []string `json:"trick"`
}

type CardPlayedEvent struct {
	Position string `json:"position"`
	Card     string `json:"card"`
}

type TrickCompleteEvent struct {
	Number int      `json:"number"`
	Winner string   `json:"winner"`
	Cards  []string `json:"cards"`
	Points int      `json:"points"`
}

type GameResultEvent struct {
	Won   bool `json:"won"`
	Value int  `json:"value"`
}

type GameErrorEvent struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
