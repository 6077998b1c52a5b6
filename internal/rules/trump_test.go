package rules

import (
	"testing"

	"skat/internal/domain"
)

func c(s domain.Suit, r domain.Rank) domain.Card { return domain.Card{Suit: s, Rank: r} }

func trick(plays ...domain.Card) domain.Trick {
	t := domain.Trick{Forehand: domain.Forehand}
	pos := domain.Forehand
	for _, card := range plays {
		t.AddPlay(pos, card)
		pos = pos.Next()
	}
	return t
}

func TestMatadors(t *testing.T) {
	tests := []struct {
		name  string
		gt    domain.GameType
		cards []domain.Card
		want  int
	}{
		{
			name:  "with two",
			gt:    domain.GameTypeClubs,
			cards: []domain.Card{c(domain.Clubs, domain.Jack), c(domain.Spades, domain.Jack)},
			want:  2,
		},
		{
			name: "with five through trump ace",
			gt:   domain.GameTypeClubs,
			cards: []domain.Card{
				c(domain.Clubs, domain.Jack), c(domain.Spades, domain.Jack),
				c(domain.Hearts, domain.Jack), c(domain.Diamonds, domain.Jack),
				c(domain.Clubs, domain.Ace),
			},
			want: 5,
		},
		{
			name:  "with one broken by missing spade jack",
			gt:    domain.GameTypeClubs,
			cards: []domain.Card{c(domain.Clubs, domain.Jack), c(domain.Hearts, domain.Jack)},
			want:  1,
		},
		{
			name:  "without one",
			gt:    domain.GameTypeGrand,
			cards: []domain.Card{c(domain.Spades, domain.Jack)},
			want:  1,
		},
		{
			name:  "grand with four",
			gt:    domain.GameTypeGrand,
			cards: []domain.Card{c(domain.Clubs, domain.Jack), c(domain.Spades, domain.Jack), c(domain.Hearts, domain.Jack), c(domain.Diamonds, domain.Jack)},
			want:  4,
		},
		{
			name:  "without four into the trump suit",
			gt:    domain.GameTypeHearts,
			cards: []domain.Card{c(domain.Hearts, domain.Ace), c(domain.Hearts, domain.Seven)},
			want:  4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matadors(tt.gt, tt.cards); got != tt.want {
				t.Errorf("Matadors() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTrumpGameTrickWinner(t *testing.T) {
	clubs, err := ForGameType(domain.GameTypeClubs)
	if err != nil {
		t.Fatal(err)
	}
	grand, err := ForGameType(domain.GameTypeGrand)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		rules Rules
		trick domain.Trick
		want  domain.Position
	}{
		{
			name:  "jack beats trump ace",
			rules: clubs,
			trick: trick(c(domain.Clubs, domain.Ace), c(domain.Diamonds, domain.Jack), c(domain.Clubs, domain.King)),
			want:  domain.Middlehand,
		},
		{
			name:  "club jack beats diamond jack",
			rules: clubs,
			trick: trick(c(domain.Diamonds, domain.Jack), c(domain.Clubs, domain.Jack), c(domain.Clubs, domain.Seven)),
			want:  domain.Middlehand,
		},
		{
			name:  "low trump beats plain ace",
			rules: clubs,
			trick: trick(c(domain.Hearts, domain.Ace), c(domain.Clubs, domain.Seven), c(domain.Hearts, domain.King)),
			want:  domain.Middlehand,
		},
		{
			name:  "highest of the lead suit wins without trump",
			rules: clubs,
			trick: trick(c(domain.Hearts, domain.King), c(domain.Hearts, domain.Ace), c(domain.Hearts, domain.Ten)),
			want:  domain.Middlehand,
		},
		{
			name:  "off suit discard never wins",
			rules: clubs,
			trick: trick(c(domain.Hearts, domain.Seven), c(domain.Spades, domain.Ace), c(domain.Hearts, domain.Eight)),
			want:  domain.Rearhand,
		},
		{
			name:  "ten beats king in suit order",
			rules: grand,
			trick: trick(c(domain.Hearts, domain.King), c(domain.Hearts, domain.Ten), c(domain.Hearts, domain.Nine)),
			want:  domain.Middlehand,
		},
		{
			name:  "grand has no suit trump",
			rules: grand,
			trick: trick(c(domain.Clubs, domain.Ace), c(domain.Clubs, domain.Seven), c(domain.Hearts, domain.Ace)),
			want:  domain.Forehand,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rules.TrickWinner(tt.trick); got != tt.want {
				t.Errorf("TrickWinner() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTrumpGameCardAllowed(t *testing.T) {
	clubs, err := ForGameType(domain.GameTypeClubs)
	if err != nil {
		t.Fatal(err)
	}

	hand := []domain.Card{
		c(domain.Clubs, domain.Seven),
		c(domain.Hearts, domain.Jack),
		c(domain.Hearts, domain.Ace),
		c(domain.Spades, domain.Nine),
	}

	tests := []struct {
		name string
		lead domain.Card
		card domain.Card
		want bool
	}{
		{"jack led, trump required", c(domain.Diamonds, domain.Jack), c(domain.Hearts, domain.Ace), false},
		{"jack led, club serves", c(domain.Diamonds, domain.Jack), c(domain.Clubs, domain.Seven), true},
		{"jack led, other jack serves", c(domain.Diamonds, domain.Jack), c(domain.Hearts, domain.Jack), true},
		{"hearts led, must follow", c(domain.Hearts, domain.Seven), c(domain.Spades, domain.Nine), false},
		{"hearts led, heart ace follows", c(domain.Hearts, domain.Seven), c(domain.Hearts, domain.Ace), true},
		{"hearts led, heart jack does not follow", c(domain.Hearts, domain.Seven), c(domain.Hearts, domain.Jack), false},
		{"void suit, anything goes", c(domain.Diamonds, domain.Ace), c(domain.Spades, domain.Nine), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clubs.IsCardAllowed(tt.lead, true, hand, tt.card); got != tt.want {
				t.Errorf("IsCardAllowed(%s after %s) = %v, want %v", tt.card, tt.lead, got, tt.want)
			}
		})
	}

	if !clubs.IsCardAllowed(domain.Card{}, false, hand, c(domain.Spades, domain.Nine)) {
		t.Error("leading any held card must be allowed")
	}
}
