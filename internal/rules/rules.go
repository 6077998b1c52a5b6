// Package rules implements the Skat rule set, one implementation per game
// type: legality of plays, trick winners and game scoring.
package rules

import (
	"errors"
	"fmt"

	"skat/internal/domain"
)

// ErrUnsupportedGameType is returned for game types without a rule set.
// It is fatal to the current game, never to the table.
var ErrUnsupportedGameType = errors.New("unsupported game type")

// Rules is the contract every game-type variant satisfies.
type Rules interface {
	// IsCardAllowed reports whether card is a legal play from hand given the
	// trick's lead card. hasLead is false when the player leads the trick.
	IsCardAllowed(lead domain.Card, hasLead bool, hand []domain.Card, card domain.Card) bool

	// TrickWinner determines the winning seat of a complete trick. Pure
	// function of the trick and the variant's card order.
	TrickWinner(t domain.Trick) domain.Position

	// GameWon reports whether the game was won from the declarer's
	// perspective (for ramsch, the perspective seat stored in the declarer
	// slot).
	GameWon(g *domain.GameState) bool

	// GameResult computes the signed game value. Positive means won; the
	// caller is responsible for the overbid check afterwards.
	GameResult(g *domain.GameState) int
}

// ForGameType returns the rule set for the given game type.
func ForGameType(gt domain.GameType) (Rules, error) {
	switch gt {
	case domain.GameTypeClubs, domain.GameTypeSpades, domain.GameTypeHearts, domain.GameTypeDiamonds:
		trump, _ := gt.TrumpSuit()
		return &suitRules{trump: trump, base: BaseValue(gt)}, nil
	case domain.GameTypeGrand:
		return &grandRules{}, nil
	case domain.GameTypeNull:
		return &nullRules{}, nil
	case domain.GameTypeRamsch:
		return &ramschRules{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedGameType, gt)
	}
}

// BaseValue returns the game-type base value used for bids and scoring.
func BaseValue(gt domain.GameType) int {
	switch gt {
	case domain.GameTypeDiamonds:
		return 9
	case domain.GameTypeHearts:
		return 10
	case domain.GameTypeSpades:
		return 11
	case domain.GameTypeClubs:
		return 12
	case domain.GameTypeGrand:
		return 24
	case domain.GameTypeNull:
		return 23
	}
	return 0
}

// PlayableCards filters a hand down to the cards the rule set allows against
// the current trick. Automated players derive their candidates from this, so
// they cannot propose illegal moves.
func PlayableCards(r Rules, t *domain.Trick, hand []domain.Card) []domain.Card {
	var out []domain.Card
	lead, hasLead := domain.Card{}, false
	if t != nil {
		lead, hasLead = t.FirstCard()
	}
	for _, c := range hand {
		if r.IsCardAllowed(lead, hasLead, hand, c) {
			out = append(out, c)
		}
	}
	return out
}
